package vision

import (
	"bytes"
	"context"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	"lumachat.dev/luma/pkg/common"
	"lumachat.dev/luma/pkg/luma/domain"
)

const (
	// ConfigKeyMaxPredictions how many of the classifier's top predictions to keep per image
	ConfigKeyMaxPredictions = "visionMaxPredictions"
)

// DescriptionResult everything the description engine produced for one image. Value object:
// computed once per image request and owned solely by the caller after return.
type DescriptionResult struct {
	Text          string
	Predictions   []domain.Prediction
	Colors        []string
	ExtractedText []string
}

// Describer orchestrates the external classifier and text recognizer capabilities with local
// color sampling and the description composer. All work is synchronous and CPU-only apart
// from the capability calls themselves.
type Describer struct {
	classifier domain.ImageClassifier
	recognizer domain.TextRecognizer
	logger     common.Logger

	maxPredictions int
}

func NewDescriber(
	classifier domain.ImageClassifier,
	recognizer domain.TextRecognizer,
	config *common.Config,
	logger common.Logger,
) *Describer {
	return &Describer{
		classifier:     classifier,
		recognizer:     recognizer,
		logger:         logger,
		maxPredictions: config.GetIntOrDefault(ConfigKeyMaxPredictions, 5),
	}
}

// Describe turns raw image bytes into a human-readable description. Capability failures
// (classifier or recognizer unreachable) are surfaced as explicit errors; an image that
// simply yields no predictions still produces a valid fallback description.
func (d *Describer) Describe(ctx context.Context, imageData []byte) (*DescriptionResult, error) {
	img, _, err := image.Decode(bytes.NewReader(imageData))
	if err != nil {
		return nil, fmt.Errorf("failed to decode image: %w", err)
	}
	predictions, err := d.classifier.Classify(ctx, imageData)
	if err != nil {
		return nil, fmt.Errorf("failed to classify image: %w", err)
	}
	if len(predictions) > d.maxPredictions {
		predictions = predictions[:d.maxPredictions]
	}
	var extractedText []string
	if d.recognizer != nil {
		extractedText, err = d.recognizer.RecognizeText(ctx, imageData)
		if err != nil {
			return nil, fmt.Errorf("failed to recognize text: %w", err)
		}
	}
	colors := SampleColors(img)
	text := Compose(predictions, colors, extractedText)
	d.logger.Log("described image: " + text)
	return &DescriptionResult{
		Text:          text,
		Predictions:   predictions,
		Colors:        colors,
		ExtractedText: extractedText,
	}, nil
}
