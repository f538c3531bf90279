package benchmark

// DefaultIndustry is used when a requested industry is unknown.
const DefaultIndustry = "General OR/Analytics"

var defaultIndustries = []Industry{
	{
		Name:              "Healthcare & Medical OR",
		AverageBias:       22.5,
		NeutralThreshold:  18.0,
		BestPractice:      12.0,
		SampleSize:        89,
		MasculineTendency: 15.8,
		FeminineTendency:  6.7,
		Description:       "Healthcare OR shows moderate bias with emphasis on collaborative language",
	},
	{
		Name:              "Financial Services & Banking",
		AverageBias:       35.2,
		NeutralThreshold:  20.0,
		BestPractice:      15.0,
		SampleSize:        156,
		MasculineTendency: 28.1,
		FeminineTendency:  7.1,
		Description:       "Financial sector exhibits highest masculine bias in OR roles",
	},
	{
		Name:              "Supply Chain & Logistics",
		AverageBias:       31.8,
		NeutralThreshold:  20.0,
		BestPractice:      14.0,
		SampleSize:        203,
		MasculineTendency: 25.4,
		FeminineTendency:  6.4,
		Description:       "Logistics shows strong masculine coding in operational roles",
	},
	{
		Name:              "Manufacturing & Production",
		AverageBias:       33.1,
		NeutralThreshold:  20.0,
		BestPractice:      15.0,
		SampleSize:        134,
		MasculineTendency: 26.7,
		FeminineTendency:  6.4,
		Description:       "Manufacturing emphasizes efficiency and performance language",
	},
	{
		Name:              "Transportation & Airlines",
		AverageBias:       29.4,
		NeutralThreshold:  20.0,
		BestPractice:      14.0,
		SampleSize:        78,
		MasculineTendency: 23.1,
		FeminineTendency:  6.3,
		Description:       "Transportation sector shows moderate masculine bias",
	},
	{
		Name:              "Energy & Utilities",
		AverageBias:       27.8,
		NeutralThreshold:  19.0,
		BestPractice:      13.0,
		SampleSize:        92,
		MasculineTendency: 21.5,
		FeminineTendency:  6.3,
		Description:       "Energy sector shows technical masculine language patterns",
	},
	{
		Name:              "Telecommunications",
		AverageBias:       32.6,
		NeutralThreshold:  20.0,
		BestPractice:      15.0,
		SampleSize:        67,
		MasculineTendency: 25.8,
		FeminineTendency:  6.8,
		Description:       "Telecom sector emphasizes competitive and technical language",
	},
	{
		Name:              "Defence & Aerospace",
		AverageBias:       42.3,
		NeutralThreshold:  25.0,
		BestPractice:      18.0,
		SampleSize:        54,
		MasculineTendency: 36.1,
		FeminineTendency:  6.2,
		Description:       "Defence shows highest masculine bias with military language",
	},
	{
		Name:              "Government & Public Sector",
		AverageBias:       18.7,
		NeutralThreshold:  15.0,
		BestPractice:      10.0,
		SampleSize:        98,
		MasculineTendency: 12.4,
		FeminineTendency:  6.3,
		Description:       "Public sector shows most balanced language patterns",
	},
	{
		Name:              "Academic & Research Institutions",
		AverageBias:       16.2,
		NeutralThreshold:  15.0,
		BestPractice:      8.0,
		SampleSize:        145,
		MasculineTendency: 10.8,
		FeminineTendency:  5.4,
		Description:       "Academic sector shows lowest bias with collaborative emphasis",
	},
	{
		Name:              "Consulting Services",
		AverageBias:       34.7,
		NeutralThreshold:  22.0,
		BestPractice:      16.0,
		SampleSize:        112,
		MasculineTendency: 27.3,
		FeminineTendency:  7.4,
		Description:       "Consulting emphasizes competitive and client-focused language",
	},
	{
		Name:              "Technology & Software",
		AverageBias:       30.5,
		NeutralThreshold:  20.0,
		BestPractice:      14.0,
		SampleSize:        87,
		MasculineTendency: 24.2,
		FeminineTendency:  6.3,
		Description:       "Tech sector shows innovation-focused masculine language",
	},
	{
		Name:              "Retail & E-commerce",
		AverageBias:       25.1,
		NeutralThreshold:  18.0,
		BestPractice:      12.0,
		SampleSize:        76,
		MasculineTendency: 18.7,
		FeminineTendency:  6.4,
		Description:       "Retail shows moderate bias with customer service balance",
	},
	{
		Name:              "General OR/Analytics",
		AverageBias:       28.4,
		NeutralThreshold:  20.0,
		BestPractice:      15.0,
		SampleSize:        308,
		MasculineTendency: 22.1,
		FeminineTendency:  6.3,
		Description:       "General OR roles show moderate masculine bias overall",
	},
	{
		Name:              "Other",
		AverageBias:       28.4,
		NeutralThreshold:  20.0,
		BestPractice:      15.0,
		SampleSize:        50,
		MasculineTendency: 22.1,
		FeminineTendency:  6.3,
		Description:       "Other sectors follow general OR patterns",
	},
}
