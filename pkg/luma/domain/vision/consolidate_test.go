package vision

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"lumachat.dev/luma/pkg/luma/domain"
)

func TestConsolidate_CatBreeds(t *testing.T) {
	predictions := []domain.Prediction{
		{Label: "tabby", Confidence: 0.55},
		{Label: "Persian cat", Confidence: 0.3},
		{Label: "labrador", Confidence: 0.05},
	}
	consolidated := Consolidate(predictions)
	assert.Equal(t, "cat", consolidated.Label)
	assert.Equal(t, 0.55, consolidated.Confidence)
}

func TestConsolidate_DogBreeds(t *testing.T) {
	predictions := []domain.Prediction{
		{Label: "golden retriever", Confidence: 0.6},
		{Label: "Irish terrier", Confidence: 0.25},
	}
	consolidated := Consolidate(predictions)
	assert.Equal(t, "dog", consolidated.Label)
	assert.Equal(t, 0.6, consolidated.Confidence)
}

func TestConsolidate_Vehicles(t *testing.T) {
	predictions := []domain.Prediction{
		{Label: "sports car", Confidence: 0.5},
		{Label: "convertible", Confidence: 0.4},
	}
	consolidated := Consolidate(predictions)
	assert.Equal(t, "vehicle", consolidated.Label)
}

func TestConsolidate_SingleMatchKeepsTopPrediction(t *testing.T) {
	predictions := []domain.Prediction{
		{Label: "tabby", Confidence: 0.7},
		{Label: "goldfish", Confidence: 0.2},
	}
	consolidated := Consolidate(predictions)
	assert.Equal(t, "tabby", consolidated.Label)
	assert.Equal(t, 0.7, consolidated.Confidence)
}

func TestConsolidate_CatsWinOverDogs(t *testing.T) {
	// Both tables have two matches; the cat table is checked first.
	predictions := []domain.Prediction{
		{Label: "tabby", Confidence: 0.4},
		{Label: "siamese", Confidence: 0.3},
		{Label: "beagle", Confidence: 0.2},
		{Label: "poodle", Confidence: 0.1},
	}
	assert.Equal(t, "cat", Consolidate(predictions).Label)
}

func TestConsolidate_NoPredictions(t *testing.T) {
	assert.Equal(t, domain.Prediction{}, Consolidate(nil))
}
