package vision

import (
	"fmt"
	"strings"

	"lumachat.dev/luma/pkg/luma/domain"
)

const (
	// An image is considered text-heavy when OCR found more than this many fragments...
	textHeavyMaxEntries = 5
	// ...or any single fragment longer than this many characters.
	textHeavyMaxEntryLength = 50
)

const fallbackDescription = "This appears to be an image that I cannot identify clearly."

// Body-style phrases for vehicle descriptions, scanned in order across all predictions.
var bodyStyles = []struct {
	keyword string
	phrase  string
}{
	{"convertible", "a convertible body style"},
	{"sedan", "a sedan body style"},
	{"suv", "an SUV body style"},
}

// Compose assembles the final description from the classifier predictions, the ranked
// dominant colors and the recognized text. The output is a deterministic plain-text sentence
// (two for the text-heavy branch) which downstream callers treat as opaque narration.
func Compose(predictions []domain.Prediction, colors []string, extractedText []string) string {
	// When an image is mostly text, the text dominates: classification and color narration
	// are suppressed entirely.
	if isTextHeavy(extractedText) {
		if len(extractedText) == 1 {
			return fmt.Sprintf("This appears to be an image containing text that reads: %q.", extractedText[0])
		}
		return fmt.Sprintf("This appears to be a text-heavy image. The text begins with: %q.", extractedText[0])
	}
	if len(predictions) == 0 {
		return fallbackDescription
	}
	consolidated := Consolidate(predictions)
	subject := subjectFor(consolidated.Label)
	var description strings.Builder
	description.WriteString("This appears to be a ")
	if len(colors) > 0 {
		description.WriteString(colors[0])
		description.WriteString(" ")
	}
	description.WriteString(subject)
	switch subject {
	case "vehicle":
		description.WriteString(" with ")
		description.WriteString(bodyStyleFor(predictions))
	case "cat", "dog", "bird":
		description.WriteString(" that is clearly visible")
	case "flower":
		description.WriteString(" showing its natural beauty")
	}
	if len(extractedText) > 0 {
		description.WriteString(fmt.Sprintf(", along with the text %q", extractedText[0]))
	}
	description.WriteString(".")
	return description.String()
}

func isTextHeavy(extractedText []string) bool {
	if len(extractedText) > textHeavyMaxEntries {
		return true
	}
	for _, entry := range extractedText {
		if len(entry) > textHeavyMaxEntryLength {
			return true
		}
	}
	return false
}

// subjectFor derives a coarse subject from the consolidated label. Buckets are checked in
// priority order, first match wins; an unrecognized label is used verbatim.
func subjectFor(label string) string {
	lowered := strings.ToLower(label)
	switch {
	case strings.Contains(lowered, "cat"):
		return "cat"
	case strings.Contains(lowered, "dog"):
		return "dog"
	case strings.Contains(lowered, "vehicle"), strings.Contains(lowered, "car"):
		return "vehicle"
	case strings.Contains(lowered, "flower"):
		return "flower"
	case strings.Contains(lowered, "bird"):
		return "bird"
	}
	return label
}

func bodyStyleFor(predictions []domain.Prediction) string {
	for _, prediction := range predictions {
		label := strings.ToLower(prediction.Label)
		for _, style := range bodyStyles {
			if strings.Contains(label, style.keyword) {
				return style.phrase
			}
		}
	}
	return "a standard body style"
}
