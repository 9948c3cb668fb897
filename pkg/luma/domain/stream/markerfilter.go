package stream

import "strings"

// MarkerFilter removes spans of text delimited by a pair of literal open/close markers,
// such as the `<think>`/`</think>` tags reasoning models wrap their inner monologue in.
// The markers are plain strings, not regular expressions: matching is a linear scan, which
// keeps the filter safe for unbounded streaming input.
type MarkerFilter struct {
	openMarker  string
	closeMarker string
}

func NewMarkerFilter(openMarker, closeMarker string) *MarkerFilter {
	return &MarkerFilter{
		openMarker:  openMarker,
		closeMarker: closeMarker,
	}
}

// Strip removes every maximal span which starts at an opening marker and ends at the nearest
// following closing marker, scanning left to right, non-overlapping. An opening marker which
// is never closed removes everything up to the end of the input: end-of-input is treated as
// an implicit close. Text with no markers is returned unchanged. Strip is idempotent.
func (m *MarkerFilter) Strip(text string) string {
	if m.openMarker == "" {
		return text
	}
	var visible strings.Builder
	for {
		openIndex := strings.Index(text, m.openMarker)
		if openIndex == -1 {
			visible.WriteString(text)
			return visible.String()
		}
		visible.WriteString(text[:openIndex])
		rest := text[openIndex+len(m.openMarker):]
		closeIndex := strings.Index(rest, m.closeMarker)
		if closeIndex == -1 {
			// Unclosed marker: suppress the remainder. A dropped closing tag therefore hides
			// all subsequent output -- a known, deliberate trade-off of this policy.
			return visible.String()
		}
		text = rest[closeIndex+len(m.closeMarker):]
	}
}

// withheldSuffixLen returns the length of the longest suffix of `text` which is a proper
// prefix of the opening marker. Such a suffix may still grow into a full marker with the
// next chunk, so the assembler must not emit it yet.
func (m *MarkerFilter) withheldSuffixLen(text string) int {
	longest := len(m.openMarker) - 1
	if longest > len(text) {
		longest = len(text)
	}
	for n := longest; n > 0; n-- {
		if strings.HasSuffix(text, m.openMarker[:n]) {
			return n
		}
	}
	return 0
}
