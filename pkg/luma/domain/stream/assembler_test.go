package stream

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// chatLine frames content the way the backend does, one JSON object per line.
func chatLine(t *testing.T, content string) string {
	t.Helper()
	data, err := json.Marshal(map[string]any{"message": map[string]any{"content": content}})
	require.NoError(t, err)
	return string(data)
}

func collect(t *testing.T, assembler *Assembler, contents []string) string {
	t.Helper()
	var emitted strings.Builder
	for _, content := range contents {
		emitted.WriteString(assembler.Push(chatLine(t, content)))
	}
	emitted.WriteString(assembler.Finish())
	return emitted.String()
}

func TestAssembler_MarkerStraddlingChunkBoundary(t *testing.T) {
	assembler := NewAssembler(thinkFilter(), true)
	total := collect(t, assembler, []string{"<th", "ink>hidden</think>visible"})
	assert.Equal(t, "visible", total)
}

func TestAssembler_MarkerSplitAcrossManyChunks(t *testing.T) {
	assembler := NewAssembler(thinkFilter(), true)
	total := collect(t, assembler, []string{"answer: <", "t", "hink", ">secret</thi", "nk>42"})
	assert.Equal(t, "answer: 42", total)
}

func TestAssembler_StreamingEquivalence(t *testing.T) {
	filter := thinkFilter()
	full := "Okay.<think>Let me reason about this for a while...</think> The capital of France is Paris.<think>done"
	// Any chunking of the same text must reveal exactly what one-shot filtering reveals.
	for _, size := range []int{1, 2, 3, 5, 7, 11, len(full)} {
		assembler := NewAssembler(thinkFilter(), true)
		var contents []string
		for start := 0; start < len(full); start += size {
			end := start + size
			if end > len(full) {
				end = len(full)
			}
			contents = append(contents, full[start:end])
		}
		total := collect(t, assembler, contents)
		assert.Equal(t, filter.Strip(full), total, "chunk size %d", size)
	}
}

func TestAssembler_PassthroughWhenFilteringDisabled(t *testing.T) {
	assembler := NewAssembler(thinkFilter(), false)
	var emitted strings.Builder
	for _, content := range []string{"<think>not ", "filtered</think>", " at all"} {
		emitted.WriteString(assembler.Push(chatLine(t, content)))
	}
	emitted.WriteString(assembler.Finish())
	assert.Equal(t, "<think>not filtered</think> at all", emitted.String())
}

func TestAssembler_MalformedLineAmongValidOnes(t *testing.T) {
	assembler := NewAssembler(thinkFilter(), true)
	chunk := chatLine(t, "good ") + "\ngarbage that is not JSON\n" + chatLine(t, "content")
	delta := assembler.Push(chunk)
	assert.Equal(t, "good content", delta)
}

func TestAssembler_InsideMarkerYieldsNothingUntilClose(t *testing.T) {
	assembler := NewAssembler(thinkFilter(), true)
	assert.Equal(t, "", assembler.Push(chatLine(t, "<think>step one")))
	assert.Equal(t, "", assembler.Push(chatLine(t, " step two")))
	assert.Equal(t, "done", assembler.Push(chatLine(t, "</think>done")))
	assert.Equal(t, "", assembler.Finish())
}

func TestAssembler_FinishFlushesTrailingPartialMarker(t *testing.T) {
	assembler := NewAssembler(thinkFilter(), true)
	assert.Equal(t, "a ", assembler.Push(chatLine(t, "a <th")))
	// The stream genuinely ended mid-"<th": it never became a marker, so it belongs to the user.
	assert.Equal(t, "<th", assembler.Finish())
}

func TestAssembler_EmptyChunksYieldEmptyDeltas(t *testing.T) {
	assembler := NewAssembler(thinkFilter(), true)
	assert.Equal(t, "", assembler.Push(""))
	assert.Equal(t, "", assembler.Push("\n\n"))
	assert.Equal(t, "", assembler.Finish())
}
