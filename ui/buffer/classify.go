package buffer

// A Span is a run of a single line painted with one Category. Col and Len are
// counted in runes from the start of that line.
type Span struct {
	Col      int
	Len      int
	Category Category
}

// End returns the rune offset one past the last rune of the Span.
func (s Span) End() int {
	return s.Col + s.Len
}

// A Classifier splits one line into Spans. inComment reports whether the line
// before it ended inside an unterminated block comment; the returned bool is
// the same fact for this line.
type Classifier interface {
	ClassifyLine(text string, inComment bool) ([]Span, bool)
}

// ClassifyLine paints the line with every Rule in precedence order, each one
// scanning the whole line on its own, so that a later Rule overwrites an
// earlier one wherever both match. Block comments are painted last and win
// over everything. The result is a sequence of adjacent Spans covering the
// whole line.
func (rs *RuleSet) ClassifyLine(text string, inComment bool) ([]Span, bool) {
	line := []rune(text)
	cats := make([]Category, len(line)) // Zero value is Plain

	for _, rule := range rs.Rules {
		for _, idx := range rule.FindAll(line) {
			paint(cats, idx[0], idx[1], rule.Category)
		}
	}

	inComment = rs.paintBlockComments(line, cats, inComment)

	return collapse(cats), inComment
}

// paintBlockComments overlays block comments on cats and returns whether the
// line ends inside one. The search for a closing marker starts at the opening
// marker itself, or at zero when the comment was opened on an earlier line.
// An unterminated comment consumes the rest of the line and nothing after it
// is scanned.
func (rs *RuleSet) paintBlockComments(line []rune, cats []Category, inComment bool) bool {
	start := 0
	if !inComment {
		start = indexRunes(line, rs.commentStart, 0)
	}

	inComment = false
	for start >= 0 {
		var end int
		if closeAt := indexRunes(line, rs.commentEnd, start); closeAt < 0 {
			inComment = true
			end = len(line)
		} else {
			end = closeAt + len(rs.commentEnd)
		}

		paint(cats, start, end, BlockComment)

		if inComment {
			break
		}
		start = indexRunes(line, rs.commentStart, end)
	}

	return inComment
}

func paint(cats []Category, start, end int, c Category) {
	if end > len(cats) {
		end = len(cats)
	}
	for i := start; i < end; i++ {
		cats[i] = c
	}
}

// collapse turns a per-rune Category slice into adjacent Spans.
func collapse(cats []Category) []Span {
	if len(cats) == 0 {
		return nil
	}

	spans := make([]Span, 0, 8)
	cur := Span{0, 1, cats[0]}
	for i := 1; i < len(cats); i++ {
		if cats[i] == cur.Category {
			cur.Len++
			continue
		}
		spans = append(spans, cur)
		cur = Span{i, 1, cats[i]}
	}
	return append(spans, cur)
}

// indexRunes returns the index of the first occurrence of sep in s at or
// after from, or -1.
func indexRunes(s, sep []rune, from int) int {
	if from < 0 {
		from = 0
	}
outer:
	for i := from; i+len(sep) <= len(s); i++ {
		for j := range sep {
			if s[i+j] != sep[j] {
				continue outer
			}
		}
		return i
	}
	return -1
}
