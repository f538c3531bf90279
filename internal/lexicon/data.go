package lexicon

// masculineWords are agentic, competitive and dominance-coded terms.
var masculineWords = []string{
	"competitive", "aggressive", "dominant", "driven", "ambitious", "decisive", "strong",
	"leader", "lead", "manage", "control", "challenge", "achieve", "dominate", "excel",
	"individual", "independent", "self-sufficient", "results-driven", "performance",
	"efficiency", "strategic", "execution", "analytical", "objective", "autonomous",
	"determined", "superior", "direct", "drive", "compete", "win", "hierarchy",
	"decision", "responsibility", "active", "outperform", "metrics", "targets",
	"self-motivated", "self-reliant", "assertive", "confident", "command", "conquer",
	"dominate", "rule", "govern", "supervise", "direct", "oversee", "boss", "chief",
	"head", "chairman", "master", "principal", "senior", "primary", "first", "top",
	"apex", "peak", "supreme", "ultimate", "maximum", "premier", "elite", "exclusive",
	"beat", "crush", "destroy", "demolish", "eliminate", "defeat", "overcome", "surpass",
	"overtake", "outdo", "outclass", "outrank", "triumph", "victory", "winner",
	"champion", "first-place", "top-tier", "best-in-class", "market-leading",
	"industry-leading", "cutting-edge", "attack", "strike", "hit", "punch", "kick",
	"fight", "battle", "war", "combat", "militant", "warrior", "soldier", "tactical",
	"strategic", "offensive", "defensive", "target", "aim", "shoot", "fire", "blast",
	"explosive", "powerful", "forceful", "intense", "optimize", "maximize", "algorithm",
	"data-driven", "quantitative", "analytical", "systematic", "methodical", "rigorous",
	"precise", "exact", "accurate", "efficient", "effective", "productive", "streamlined",
	"automated", "scalable", "robust", "sophisticated", "disruptive", "revolutionary",
	"breakthrough", "pioneering", "groundbreaking", "innovative", "cutting-edge",
	"state-of-the-art", "advanced", "next-generation", "future-proof", "game-changing",
	"paradigm-shifting", "transformational", "visionary", "forward-thinking",
	"progressive", "dynamic", "agile",
}

// feminineWords are communal, supportive and relationship-coded terms.
var feminineWords = []string{
	"collaborative", "supportive", "nurturing", "empathetic", "caring", "team",
	"together", "partnership", "inclusive", "responsive", "communicate", "understand",
	"help", "assist", "share", "community", "relationship", "trust", "kind",
	"cooperative", "interpersonal", "motivated", "committed", "dedicated", "facilitation",
	"coordination", "consultation", "liaison", "consensus", "engagement", "support",
	"stakeholder", "patient", "gentle", "warm", "welcoming", "considerate", "connect",
	"bond", "relate", "communicate", "listen", "hear", "understand", "empathize",
	"sympathize", "comfort", "console", "encourage", "inspire", "motivate", "uplift",
	"support", "guide", "mentor", "coach", "teach", "educate", "train", "develop", "grow",
	"nurture", "foster", "cultivate", "inclusive", "diverse", "multicultural", "varied",
	"broad", "wide-ranging", "comprehensive", "holistic", "integrated", "balanced",
	"harmonious", "peaceful", "calm", "serene", "stable", "consistent", "reliable",
	"dependable", "trustworthy", "serve", "service", "help", "assist", "aid", "support",
	"care", "tend", "look after", "protect", "preserve", "maintain", "sustain", "nourish",
	"feed", "provide", "give", "offer", "share", "contribute", "participate",
}

var biasPatterns = []Pattern{
	{"competitive environment", 25},
	{"fast-paced environment", 20},
	{"challenging role", 15},
	{"high-pressure", 22},
	{"demanding environment", 20},
	{"aggressive approach", 30},
	{"dominant position", 28},
	{"results-driven culture", 22},
	{"individual contributor", 20},
	{"strong leadership", 16},
	{"exceed expectations", 18},
	{"drive results", 20},
	{"take charge", 24},
	{"outperform competitors", 26},
	{"prove yourself", 25},
	{"beat targets", 23},
	{"crush the competition", 35},
	{"dominate the market", 32},
	{"aggressive sales", 28},
	{"competitive advantage", 24},
	{"win at all costs", 33},
	{"take no prisoners", 35},
	{"survival of the fittest", 30},
	{"dog-eat-dog", 32},
	{"cut-throat environment", 34},
	{"winner takes all", 30},
	{"first to market", 22},
	{"market domination", 28},
	{"industry leader", 20},
	{"top performer", 18},
	{"best in class", 16},
	{"world-class", 15},
	{"elite team", 19},
	{"a-team", 17},
	{"hit the ground running", 25},
	{"shoot for the stars", 22},
	{"aim high", 18},
	{"target achievement", 20},
	{"fire on all cylinders", 28},
	{"full steam ahead", 24},
	{"go for the kill", 35},
	{"finish strong", 22},
	{"power through", 26},
	{"drive hard", 24},
	{"push boundaries", 20},
	{"break barriers", 18},
	{"smash goals", 28},
	{"attack the problem", 26},
	{"tackle challenges", 20},
	{"fight for success", 30},
	{"battle-tested", 28},
	{"war room", 32},
	{"frontline", 25},
	{"in the trenches", 27},
	{"combat ready", 30},
	{"tactical approach", 22},
	{"strategic offensive", 28},
	{"launch attack", 32},
	{"take control", 25},
	{"seize opportunity", 22},
	{"command respect", 26},
	{"assert authority", 28},
	{"establish dominance", 30},
	{"rule the market", 32},
	{"govern processes", 24},
	{"master the domain", 26},
	{"own the space", 24},
	{"lead from the front", 20},
	{"take the helm", 22},
	{"drive change", 18},
	{"spearhead initiative", 24},
	{"pioneer solutions", 20},
	{"champion results", 18},
	{"decision maker", 20},
	{"final say", 22},
	{"ultimate authority", 26},
	{"call the shots", 24},
	{"run the show", 23},
	{"boss level", 21},
	{"top tier performance", 20},
	{"exceptional results", 18},
	{"outstanding achievement", 16},
	{"superior performance", 22},
	{"maximum impact", 20},
	{"optimal results", 18},
	{"peak performance", 21},
	{"record-breaking", 23},
	{"game-changing", 24},
	{"revolutionary approach", 22},
	{"disruptive innovation", 25},
	{"paradigm shift", 23},
	{"breakthrough results", 21},
	{"cutting-edge solution", 20},
	{"state-of-the-art", 19},
	{"next-generation", 18},
	{"future-proof", 17},
	{"industry-leading", 20},
	{"best-in-breed", 19},
	{"world-renowned", 18},
	{"globally recognized", 17},
	{"internationally acclaimed", 18},
	{"award-winning", 16},
	{"celebrated", 15},
	{"self-starter", 20},
	{"self-motivated", 18},
	{"self-driven", 19},
	{"independent worker", 22},
	{"autonomous role", 21},
	{"solo contributor", 24},
	{"individual responsibility", 20},
	{"personal accountability", 18},
	{"own your success", 23},
	{"personal brand", 19},
	{"individual achievement", 21},
	{"self-reliant", 20},
	{"stand alone", 22},
	{"single-handedly", 25},
	{"one-person show", 24},
	{"individual expertise", 19},
	{"personal mastery", 20},
	{"home run", 25},
	{"slam dunk", 28},
	{"touchdown", 26},
	{"grand slam", 30},
	{"hat trick", 24},
	{"knockout punch", 32},
	{"winning formula", 22},
	{"championship level", 24},
	{"gold medal", 20},
	{"trophy", 18},
	{"hall of fame", 21},
	{"mvp", 23},
	{"all-star", 22},
	{"pro level", 20},
	{"major league", 21},
	{"world series", 23},
	{"super bowl", 25},
	{"olympics", 19},
	{"marathon", 17},
	{"sprint", 19},
	{"race to finish", 21},
	{"algorithm optimization", 18},
	{"data mining", 15},
	{"machine learning", 12},
	{"artificial intelligence", 14},
	{"big data", 13},
	{"analytics engine", 16},
	{"optimization model", 17},
	{"computational power", 19},
	{"processing speed", 18},
	{"system architecture", 16},
	{"database performance", 17},
	{"code efficiency", 18},
	{"technical mastery", 20},
	{"engineering excellence", 19},
	{"systematic approach", 15},
	{"collaborative team", -18},
	{"supportive environment", -20},
	{"inclusive culture", -15},
	{"work-life balance", -12},
	{"team player", -14},
	{"diverse team", -16},
	{"stakeholder engagement", -15},
	{"consensus building", -18},
	{"relationship building", -16},
	{"mentoring opportunities", -12},
	{"flexible working", -10},
	{"welcoming environment", -14},
	{"caring culture", -16},
	{"nurturing talent", -18},
	{"collaborative approach", -17},
	{"team-oriented", -15},
	{"group dynamics", -14},
	{"collective effort", -16},
	{"shared responsibility", -15},
	{"joint venture", -13},
	{"partnership model", -14},
	{"cooperative strategy", -16},
	{"unified approach", -15},
	{"together we", -17},
	{"our team", -14},
	{"we believe", -13},
	{"community focus", -16},
	{"open communication", -15},
	{"active listening", -17},
	{"meaningful dialogue", -16},
	{"transparent communication", -14},
	{"honest feedback", -13},
	{"constructive input", -15},
	{"empathetic leadership", -20},
	{"compassionate management", -19},
	{"understanding approach", -16},
	{"patient guidance", -18},
	{"gentle coaching", -19},
	{"kind supervision", -17},
	{"thoughtful consideration", -15},
	{"careful planning", -13},
	{"mindful approach", -16},
	{"considerate leadership", -17},
	{"respectful workplace", -15},
	{"dignified treatment", -14},
	{"service excellence", -14},
	{"customer care", -16},
	{"client service", -15},
	{"helping others", -18},
	{"serving community", -17},
	{"supporting colleagues", -16},
	{"assisting customers", -15},
	{"caring for clients", -18},
	{"nurturing relationships", -19},
	{"fostering growth", -17},
	{"cultivating talent", -18},
	{"developing people", -16},
	{"growing together", -17},
	{"learning environment", -15},
	{"educational focus", -14},
	{"teaching moments", -16},
	{"guidance and support", -17},
	{"mentorship program", -15},
	{"diversity and inclusion", -16},
	{"equal opportunity", -15},
	{"fair treatment", -14},
	{"inclusive practices", -17},
	{"diverse perspectives", -16},
	{"multicultural team", -15},
	{"varied backgrounds", -14},
	{"different viewpoints", -15},
	{"broad representation", -16},
	{"wide range", -13},
	{"comprehensive view", -14},
	{"holistic approach", -15},
	{"integrated solution", -14},
	{"balanced perspective", -16},
	{"harmonious workplace", -17},
	{"peaceful environment", -16},
	{"calm atmosphere", -15},
	{"serene setting", -17},
	{"flexible schedule", -12},
	{"remote work", -10},
	{"home office", -11},
	{"flexible hours", -12},
	{"part-time options", -13},
	{"job sharing", -14},
	{"compressed schedule", -11},
	{"flexible arrangement", -12},
	{"work from home", -10},
	{"life balance", -14},
	{"personal time", -13},
	{"family friendly", -15},
	{"child care", -16},
	{"maternity leave", -17},
	{"paternity leave", -15},
	{"wellness program", -14},
	{"health benefits", -13},
	{"mental health", -15},
	{"emotional intelligence", -18},
	{"interpersonal skills", -16},
	{"social awareness", -15},
	{"cultural sensitivity", -17},
	{"empathy training", -19},
	{"compassion focus", -18},
	{"understanding nature", -16},
	{"patient approach", -17},
	{"gentle manner", -18},
	{"kind leadership", -17},
	{"warm environment", -16},
	{"friendly atmosphere", -15},
	{"welcoming culture", -16},
	{"accepting workplace", -15},
	{"tolerant environment", -14},
	{"personal development", -14},
	{"professional growth", -13},
	{"career advancement", -12},
	{"skill building", -13},
	{"knowledge sharing", -15},
	{"learning opportunities", -14},
	{"training programs", -13},
	{"development path", -12},
	{"growth mindset", -14},
	{"continuous learning", -15},
	{"lifelong education", -14},
	{"skill enhancement", -13},
	{"capability building", -14},
	{"talent development", -15},
	{"potential realization", -14},
	{"professional environment", 0},
	{"business focus", 0},
	{"corporate culture", 0},
	{"organizational goals", 0},
	{"company objectives", 0},
	{"strategic planning", 2},
	{"operational excellence", 1},
	{"quality assurance", 0},
	{"process improvement", 1},
	{"continuous improvement", 0},
	{"best practices", 1},
	{"industry standards", 0},
	{"regulatory compliance", 0},
	{"policy adherence", 0},
	{"procedure following", 0},
}

var intensityMarkers = map[string]int{
	"excellent":     12,
	"outstanding":   18,
	"exceptional":   22,
	"superior":      20,
	"strong":        10,
	"powerful":      16,
	"competitive":   20,
	"intense":       16,
	"aggressive":    25,
	"driven":        15,
	"ambitious":     14,
	"demanding":     18,
	"challenging":   12,
	"rigorous":      14,
	"tough":         16,
	"hardcore":      22,
	"supportive":    -12,
	"caring":        -15,
	"collaborative": -10,
	"cooperative":   -12,
	"inclusive":     -12,
	"nurturing":     -18,
	"empathetic":    -20,
	"understanding": -10,
	"patient":       -8,
	"kind":          -10,
	"gentle":        -12,
	"warm":          -10,
	"welcoming":     -14,
	"considerate":   -8,
	"thoughtful":    -6,
	"helpful":       -8,
}

var phraseReplacements = []Replacement{
	{"fast-paced environment", "dynamic work environment"},
	{"high-pressure environment", "results-focused environment"},
	{"competitive environment", "performance-oriented environment"},
	{"demanding environment", "challenging and supportive environment"},
	{"aggressive environment", "proactive work environment"},
	{"cut-throat environment", "performance-driven environment"},
	{"dog-eat-dog environment", "merit-based environment"},
	{"survival of the fittest", "performance excellence"},
	{"winner takes all", "merit-based success"},
	{"top-tier environment", "excellence-focused environment"},
	{"individual contributor", "independent professional"},
	{"self-starter required", "motivated professional needed"},
	{"must be self-motivated", "should be proactive"},
	{"work independently", "work autonomously with team support"},
	{"solo contributor", "independent team member"},
	{"one-person operation", "independent role with collaboration"},
	{"single-handedly manage", "take ownership while collaborating"},
	{"own the project", "lead the project"},
	{"take charge of", "coordinate and manage"},
	{"command the team", "lead the team"},
	{"crush the competition", "outperform competitors"},
	{"beat the competition", "exceed market standards"},
	{"dominate the market", "lead in the market"},
	{"destroy the competition", "surpass competitors"},
	{"kill it in sales", "excel in sales"},
	{"smash targets", "exceed targets"},
	{"blow away expectations", "surpass expectations"},
	{"hit it out of the park", "achieve outstanding results"},
	{"slam dunk opportunity", "excellent opportunity"},
	{"home run performance", "outstanding performance"},
	{"attack the problem", "address the challenge"},
	{"tackle the issue", "resolve the issue"},
	{"fight for results", "work diligently for results"},
	{"battle-tested experience", "proven experience"},
	{"war room strategy", "strategic planning session"},
	{"frontline experience", "hands-on experience"},
	{"in the trenches", "in operational roles"},
	{"combat ready", "fully prepared"},
	{"tactical approach", "strategic approach"},
	{"strategic offensive", "strategic initiative"},
	{"launch attack", "implement strategy"},
	{"fire on all cylinders", "perform at full capacity"},
	{"full steam ahead", "move forward decisively"},
	{"go for the kill", "pursue success"},
	{"take no prisoners", "maintain high standards"},
	{"take control", "take leadership"},
	{"seize control", "assume leadership"},
	{"assert dominance", "demonstrate leadership"},
	{"establish dominance", "establish leadership"},
	{"rule the market", "lead the market"},
	{"govern the process", "guide the process"},
	{"master the domain", "excel in the field"},
	{"own the space", "lead in the sector"},
	{"call the shots", "make key decisions"},
	{"run the show", "manage operations"},
	{"boss the project", "lead the project"},
	{"think outside the box", "approach creatively"},
	{"move the needle", "drive meaningful change"},
	{"low-hanging fruit", "immediate opportunities"},
	{"boil the ocean", "comprehensive approach"},
	{"drink the kool-aid", "embrace company culture"},
	{"circle back", "follow up"},
	{"touch base", "connect"},
	{"ping me", "contact me"},
	{"loop in", "include"},
	{"dive deep", "analyze thoroughly"},
	{"drill down", "examine in detail"},
	{"bottom line", "key result"},
	{"net-net", "overall result"},
	{"at the end of the day", "ultimately"},
	{"when push comes to shove", "when necessary"},
	{"analytics ninja", "analytics professional"},
	{"data wizard", "data specialist"},
	{"algorithm guru", "algorithm expert"},
	{"optimization master", "optimization specialist"},
	{"machine learning rockstar", "machine learning expert"},
	{"ai superhero", "AI specialist"},
	{"coding warrior", "skilled developer"},
	{"tech guru", "technology expert"},
	{"digital native", "technology-savvy professional"},
	{"innovation champion", "innovation leader"},
	{"disruptor mindset", "innovative thinking"},
	{"game-changer attitude", "transformational approach"},
	{"killer instinct", "strong business acumen"},
	{"hunter mentality", "proactive sales approach"},
	{"shark in sales", "effective salesperson"},
	{"predatory pricing", "competitive pricing"},
	{"blood in the water", "market opportunity"},
	{"feeding frenzy", "high activity period"},
	{"circle the wagons", "coordinate response"},
	{"batten down hatches", "prepare thoroughly"},
	{"hunker down", "focus intensively"},
	{"lock and load", "prepare for action"},
}

var wordReplacements = map[string]string{
	"competitive":       "results-focused",
	"aggressive":        "proactive",
	"dominate":          "excel in",
	"driven":            "motivated",
	"ambitious":         "goal-oriented",
	"strong":            "effective",
	"challenging":       "engaging",
	"demanding":         "comprehensive",
	"individual":        "collaborative",
	"manage":            "coordinate",
	"control":           "guide",
	"lead":              "facilitate",
	"achieve":           "accomplish",
	"exceed":            "surpass",
	"outperform":        "excel",
	"high-pressure":     "dynamic",
	"fast-paced":        "efficient",
	"results-driven":    "results-oriented",
	"self-sufficient":   "independent and collaborative",
	"dominant":          "leading",
	"superior":          "excellent",
	"command":           "lead",
	"conquer":           "succeed in",
	"rule":              "guide",
	"govern":            "oversee",
	"supervise":         "coordinate",
	"direct":            "guide",
	"boss":              "lead",
	"chief":             "lead",
	"master":            "expert in",
	"principal":         "primary",
	"supreme":           "excellent",
	"ultimate":          "optimal",
	"maximum":           "highest",
	"premier":           "leading",
	"elite":             "skilled",
	"exclusive":         "specialized",
	"top-tier":          "high-quality",
	"first-class":       "excellent",
	"world-class":       "outstanding",
	"best-in-class":     "leading",
	"beat":              "surpass",
	"crush":             "excel against",
	"destroy":           "outperform",
	"demolish":          "significantly exceed",
	"eliminate":         "surpass",
	"defeat":            "outperform",
	"overcome":          "address successfully",
	"overtake":          "surpass",
	"outdo":             "exceed",
	"outclass":          "excel beyond",
	"outrank":           "perform better than",
	"triumph":           "succeed",
	"victory":           "success",
	"winner":            "successful candidate",
	"champion":          "leader",
	"market-leading":    "industry-leading",
	"cutting-edge":      "advanced",
	"attack":            "address",
	"strike":            "implement",
	"hit":               "achieve",
	"punch":             "impact",
	"kick":              "initiate",
	"fight":             "work diligently",
	"battle":            "work on",
	"war":               "intensive effort",
	"combat":            "address",
	"militant":          "dedicated",
	"warrior":           "dedicated professional",
	"soldier":           "team member",
	"tactical":          "strategic",
	"offensive":         "proactive",
	"defensive":         "protective",
	"target":            "objective",
	"aim":               "focus on",
	"shoot":             "strive for",
	"fire":              "launch",
	"blast":             "accelerate",
	"explosive":         "dynamic",
	"powerful":          "effective",
	"forceful":          "decisive",
	"intense":           "focused",
	"hardcore":          "dedicated",
	"brutal":            "intensive",
	"optimize":          "improve",
	"maximize":          "enhance",
	"algorithm":         "systematic method",
	"data-driven":       "data-informed",
	"quantitative":      "analytical",
	"systematic":        "organized",
	"methodical":        "thorough",
	"rigorous":          "comprehensive",
	"precise":           "accurate",
	"exact":             "accurate",
	"efficient":         "effective",
	"productive":        "effective",
	"streamlined":       "efficient",
	"automated":         "systematized",
	"scalable":          "adaptable",
	"robust":            "reliable",
	"sophisticated":     "advanced",
	"complex":           "comprehensive",
	"disruptive":        "innovative",
	"revolutionary":     "transformational",
	"breakthrough":      "significant advance",
	"pioneering":        "leading-edge",
	"groundbreaking":    "innovative",
	"state-of-the-art":  "current best practice",
	"next-generation":   "advanced",
	"future-proof":      "adaptable",
	"game-changing":     "transformational",
	"paradigm-shifting": "innovative",
	"transformational":  "significant",
	"visionary":         "forward-thinking",
	"progressive":       "forward-looking",
	"dynamic":           "adaptable",
	"agile":             "flexible",
	"nimble":            "responsive",
	"killer":            "excellent",
	"beast":             "professional",
	"machine":           "systematic professional",
	"monster":           "significant",
	"insane":            "remarkable",
	"sick":              "impressive",
	"wicked":            "excellent",
	"badass":            "skilled",
	"ninja":             "expert",
	"guru":              "specialist",
	"wizard":            "expert",
	"rockstar":          "outstanding professional",
	"superhero":         "exceptional professional",
	"legend":            "experienced professional",
	"savage":            "intense",
	"fierce":            "dedicated",
	"ruthless":          "focused",
	"merciless":         "thorough",
	"relentless":        "persistent",
	"unstoppable":       "determined",
	"unbeatable":        "excellent",
	"invincible":        "highly capable",
	"bulletproof":       "reliable",
	"rock-solid":        "dependable",
	"iron-clad":         "secure",
	"dictate":           "determine",
	"mandate":           "require",
	"decree":            "establish",
	"enforce":           "implement",
	"impose":            "apply",
	"demand":            "require",
	"insist":            "require",
	"compel":            "encourage",
	"force":             "drive",
	"pressure":          "encourage",
	"push":              "motivate",
	"drive":             "guide",
}
