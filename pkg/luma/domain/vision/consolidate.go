package vision

import (
	"strings"

	"lumachat.dev/luma/pkg/luma/domain"
)

// Classifiers trained on fine-grained datasets tend to split one subject over several
// near-duplicate labels (a cat becomes "tabby" + "Persian cat" + ...). The keyword tables
// below drive the consolidation of such labels into one canonical category.
var catKeywords = []string{
	"cat", "kitten", "tabby", "siamese", "persian", "tiger cat", "egyptian", "tomcat", "lynx",
}

var dogKeywords = []string{
	"dog", "puppy", "hound", "retriever", "labrador", "terrier", "shepherd", "spaniel",
	"beagle", "bulldog", "collie", "poodle", "husky", "pug", "chihuahua",
}

var vehicleKeywords = []string{
	"car", "truck", "bus", "van", "jeep", "cab", "wagon", "minivan", "convertible",
	"limousine", "ambulance", "pickup", "motorcycle", "moped",
}

// Consolidate merges near-duplicate predictions into a single representative. If two or more
// of the given predictions match the same category's keyword table, a synthetic prediction
// with the canonical label and the top prediction's confidence is returned; otherwise the
// top prediction is returned unchanged. Categories are checked in a fixed order: cat, dog,
// vehicle.
func Consolidate(predictions []domain.Prediction) domain.Prediction {
	if len(predictions) == 0 {
		return domain.Prediction{}
	}
	top := predictions[0]
	if countMatches(predictions, catKeywords) >= 2 {
		return domain.Prediction{Label: "cat", Confidence: top.Confidence}
	}
	if countMatches(predictions, dogKeywords) >= 2 {
		return domain.Prediction{Label: "dog", Confidence: top.Confidence}
	}
	if countMatches(predictions, vehicleKeywords) >= 2 {
		return domain.Prediction{Label: "vehicle", Confidence: top.Confidence}
	}
	return top
}

// countMatches counts predictions whose label contains at least one of the keywords.
// Matching is case-insensitive substring containment; a prediction counts at most once
// per table no matter how many keywords it contains.
func countMatches(predictions []domain.Prediction, keywords []string) int {
	count := 0
	for _, prediction := range predictions {
		label := strings.ToLower(prediction.Label)
		for _, keyword := range keywords {
			if strings.Contains(label, keyword) {
				count++
				break
			}
		}
	}
	return count
}
