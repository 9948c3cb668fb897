// Package stream reconstructs clean response text from the newline-delimited JSON fragments
// produced by a chat model backend, removing reasoning markup which may straddle fragment
// boundaries.
package stream

import (
	"encoding/json"
	"strings"
)

// DecodeLines parses newline-delimited JSON objects out of the chunk and extracts the nested
// `message.content` field from each well-formed object, in order. Lines which are empty,
// malformed, or miss the expected fields contribute nothing: the backend occasionally emits
// framing noise, and a dropped line is always preferable to a broken stream. DecodeLines
// never fails; in the worst case it returns nothing.
func DecodeLines(chunk string) []string {
	var contents []string
	for _, line := range strings.Split(chunk, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		var object map[string]any
		if err := json.Unmarshal([]byte(line), &object); err != nil {
			continue
		}
		message, ok := object["message"].(map[string]any)
		if !ok {
			continue
		}
		content, ok := message["content"].(string)
		if !ok {
			continue
		}
		contents = append(contents, content)
	}
	return contents
}
