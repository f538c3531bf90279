package analysis

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/ZanzyTHEbar/inclusive-o-meter/internal/lexicon"
)

// tokenPunctuation is stripped from both ends of a token before lookup.
const tokenPunctuation = `.,!?;:()"`

type RewriteResult struct {
	Text    string   `json:"text"`
	Changes []string `json:"changes"`
}

type phraseRule struct {
	lexicon.Replacement
	pattern *regexp.Regexp
}

// Rewriter substitutes biased phrases, then biased words. It is safe for
// concurrent use.
type Rewriter struct {
	phrases []phraseRule
	words   map[string]string
}

// NewRewriter compiles the replacement tables once.
func NewRewriter(t *lexicon.Tables) *Rewriter {
	phrases := make([]phraseRule, 0, len(t.PhraseReplacements))
	for _, r := range t.PhraseReplacements {
		phrases = append(phrases, phraseRule{
			Replacement: r,
			pattern:     regexp.MustCompile("(?i)" + regexp.QuoteMeta(r.From)),
		})
	}
	return &Rewriter{phrases: phrases, words: t.WordReplacements}
}

func change(from, to string) string {
	return from + " → " + to
}

// Rewrite applies phrase replacements, then word replacements, and rejoins the
// tokens with single spaces.
func (rw *Rewriter) Rewrite(text string) RewriteResult {
	changes := []string{}
	seen := make(map[string]struct{})
	record := func(c string) {
		if _, ok := seen[c]; ok {
			return
		}
		seen[c] = struct{}{}
		changes = append(changes, c)
	}

	out := text
	for _, p := range rw.phrases {
		if !p.pattern.MatchString(out) {
			continue
		}
		out = p.pattern.ReplaceAllLiteralString(out, p.To)
		record(change(p.From, p.To))
	}

	tokens := strings.Fields(out)
	for i, tok := range tokens {
		start := strings.IndexFunc(tok, func(r rune) bool { return !strings.ContainsRune(tokenPunctuation, r) })
		if start < 0 {
			continue
		}
		end := strings.LastIndexFunc(tok, func(r rune) bool { return !strings.ContainsRune(tokenPunctuation, r) })
		_, width := utf8.DecodeRuneInString(tok[end:])
		end += width

		core := tok[start:end]
		key := strings.ToLower(core)
		repl, ok := rw.words[key]
		if !ok {
			continue
		}
		tokens[i] = tok[:start] + ApplyCase(core, repl) + tok[end:]
		record(change(key, repl))
	}

	return RewriteResult{Text: strings.Join(tokens, " "), Changes: changes}
}

// ApplyCase shapes replacement after the case pattern of template: a title-case
// template capitalizes the first letter and keeps the rest as written, an
// all-upper template upper-cases the replacement, anything else lower-cases it.
func ApplyCase(template, replacement string) string {
	switch {
	case isTitle(template):
		runes := []rune(replacement)
		for i, r := range runes {
			if unicode.IsLetter(r) {
				runes[i] = unicode.ToUpper(r)
				break
			}
		}
		return string(runes)
	case isUpper(template):
		return strings.ToUpper(replacement)
	default:
		return strings.ToLower(replacement)
	}
}

// isTitle reports whether s has at least one cased letter, every upper-case
// letter starts a word, and every lower-case letter follows a cased one.
func isTitle(s string) bool {
	cased, prevCased := false, false
	for _, r := range s {
		switch {
		case unicode.IsUpper(r) || unicode.IsTitle(r):
			if prevCased {
				return false
			}
			prevCased, cased = true, true
		case unicode.IsLower(r):
			if !prevCased {
				return false
			}
			prevCased, cased = true, true
		default:
			prevCased = false
		}
	}
	return cased
}

// isUpper reports whether s has at least one cased letter and no lower-case ones.
func isUpper(s string) bool {
	cased := false
	for _, r := range s {
		if unicode.IsLower(r) {
			return false
		}
		if unicode.IsUpper(r) || unicode.IsTitle(r) {
			cased = true
		}
	}
	return cased
}
