package stream

import "strings"

// Assembler composes DecodeLines and a MarkerFilter into an incremental pipeline: for each
// incoming chunk it decodes the content, accumulates it, filters the accumulation and emits
// only the newly revealed suffix since the last emission. One Assembler serves exactly one
// stream: chunks must be pushed in arrival order from a single goroutine, and the accumulated
// state is discarded with the Assembler at end of stream. Independent streams use independent
// Assemblers and may run in parallel.
type Assembler struct {
	filter          *MarkerFilter
	filterReasoning bool
	accumulated     strings.Builder
	emitted         int
}

// NewAssembler creates an assembler for one stream. When `filterReasoning` is false the
// assembler is a plain unbuffered decoder; when true, spans delimited by the filter's markers
// are removed even when a marker is split across chunk boundaries.
func NewAssembler(filter *MarkerFilter, filterReasoning bool) *Assembler {
	return &Assembler{
		filter:          filter,
		filterReasoning: filterReasoning,
	}
}

// Push decodes one chunk and returns only the text it newly revealed, possibly "".
// With filtering disabled the decoded content is returned as-is, in real time. With filtering
// enabled the whole accumulation is re-filtered and the delta past the emission cursor is
// returned. A trailing fragment that could still grow into an opening marker is withheld:
// emitted text can never be taken back, so we only reveal it once the next chunk (or Finish)
// resolves what it is.
func (a *Assembler) Push(chunk string) string {
	newContent := strings.Join(DecodeLines(chunk), "")
	if !a.filterReasoning {
		return newContent
	}
	a.accumulated.WriteString(newContent)
	filtered := a.filter.Strip(a.accumulated.String())
	visible := len(filtered) - a.filter.withheldSuffixLen(filtered)
	if visible <= a.emitted {
		return ""
	}
	delta := filtered[a.emitted:visible]
	a.emitted = visible
	return delta
}

// Finish signals end of stream and returns whatever is still withheld (a trailing partial
// marker that never completed), possibly "". After Finish, the concatenation of everything
// returned by Push and Finish equals the one-shot filtering of the full decoded text.
func (a *Assembler) Finish() string {
	if !a.filterReasoning {
		return ""
	}
	filtered := a.filter.Strip(a.accumulated.String())
	if len(filtered) <= a.emitted {
		return ""
	}
	delta := filtered[a.emitted:]
	a.emitted = len(filtered)
	return delta
}
