package buffer

import (
	"strings"

	"github.com/dlclark/regexp2"
)

// Patterns that do not depend on the Language.
const (
	numberPattern      = `\b\d+(\.\d+)?\b`
	referencePattern   = `[\w]*@[\w-]+`
	stringPattern      = `(["'])(?:\\.|[^\\])*?\1` // Lazy; closes on the opening quote
	lineCommentPattern = `//.*`

	blockCommentStart = "/*"
	blockCommentEnd   = "*/"
)

// A Rule binds a pattern to the Category its matches are painted with. A Rule
// with a nil Pattern matches nothing.
type Rule struct {
	Pattern  *regexp2.Regexp
	Category Category
}

// A RuleSet holds one Rule per single-line Category, in precedence order.
// Block comments are not a Rule: they are an overlay applied by the
// classifier because they carry state across lines.
type RuleSet struct {
	Rules []Rule

	commentStart []rune
	commentEnd   []rune
}

// NewRuleSet builds the category rules for lang. Keyword, type, and function
// rules match the configured identifiers as whole words only.
func NewRuleSet(lang *Language) *RuleSet {
	if lang == nil {
		lang = &Language{}
	}
	return &RuleSet{
		Rules: []Rule{
			{mustCompile(numberPattern), Number},
			{wordsPattern(lang.Functions), Function},
			{wordsPattern(lang.Keywords), Keyword},
			{wordsPattern(lang.DataTypes), Type},
			{mustCompile(referencePattern), Reference},
			{mustCompile(stringPattern), String},
			{mustCompile(lineCommentPattern), LineComment},
		},
		commentStart: []rune(blockCommentStart),
		commentEnd:   []rune(blockCommentEnd),
	}
}

// wordsPattern joins words into a whole-word alternation. Returns nil when
// there is nothing to match.
func wordsPattern(words []string) *regexp2.Regexp {
	escaped := make([]string, 0, len(words))
	for _, w := range words {
		if w = strings.TrimSpace(w); w != "" {
			escaped = append(escaped, regexp2.Escape(w))
		}
	}
	if len(escaped) == 0 {
		return nil
	}
	return mustCompile(`\b(` + strings.Join(escaped, "|") + `)\b`)
}

func mustCompile(pattern string) *regexp2.Regexp {
	return regexp2.MustCompile(pattern, regexp2.None)
}

// FindAll returns the [start, end) rune offsets of every non-overlapping match
// of the Rule in line, left to right.
func (r Rule) FindAll(line []rune) [][2]int {
	if r.Pattern == nil || len(line) == 0 {
		return nil
	}

	var indexes [][2]int
	m, err := r.Pattern.FindRunesMatch(line)
	for err == nil && m != nil {
		if m.Length == 0 { // Guard against patterns that can match nothing
			if m.Index >= len(line) {
				break
			}
			m, err = r.Pattern.FindRunesMatchStartingAt(line, m.Index+1)
			continue
		}
		indexes = append(indexes, [2]int{m.Index, m.Index + m.Length})
		m, err = r.Pattern.FindNextMatch(m)
	}
	return indexes
}
