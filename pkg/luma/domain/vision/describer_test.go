package vision

import (
	"bytes"
	"context"
	"errors"
	"image"
	"image/color"
	"image/png"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lumachat.dev/luma/pkg/common"
	"lumachat.dev/luma/pkg/luma/domain"
)

type stubClassifier struct {
	predictions []domain.Prediction
	err         error
}

func (s *stubClassifier) Classify(ctx context.Context, image []byte) ([]domain.Prediction, error) {
	return s.predictions, s.err
}

type stubRecognizer struct {
	lines []string
	err   error
}

func (s *stubRecognizer) RecognizeText(ctx context.Context, image []byte) ([]string, error) {
	return s.lines, s.err
}

func encodePNG(t *testing.T, fill color.RGBA) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, 16, 16))
	for y := 0; y < 16; y++ {
		for x := 0; x < 16; x++ {
			img.SetRGBA(x, y, fill)
		}
	}
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func TestDescriber_EndToEnd(t *testing.T) {
	classifier := &stubClassifier{predictions: []domain.Prediction{
		{Label: "dog", Confidence: 0.9},
		{Label: "retriever", Confidence: 0.05},
	}}
	recognizer := &stubRecognizer{}
	describer := NewDescriber(classifier, recognizer, common.EmptyConfig(), common.NewNullLogger())

	result, err := describer.Describe(context.Background(), encodePNG(t, color.RGBA{R: 220, A: 255}))
	require.NoError(t, err)
	assert.Equal(t, "This appears to be a red dog that is clearly visible.", result.Text)
	assert.Equal(t, []string{"red"}, result.Colors)
	assert.Len(t, result.Predictions, 2)
	assert.Empty(t, result.ExtractedText)
}

func TestDescriber_TruncatesPredictions(t *testing.T) {
	classifier := &stubClassifier{}
	for i := 0; i < 10; i++ {
		classifier.predictions = append(classifier.predictions, domain.Prediction{Label: "laptop", Confidence: 0.1})
	}
	describer := NewDescriber(classifier, &stubRecognizer{}, common.EmptyConfig(), common.NewNullLogger())

	result, err := describer.Describe(context.Background(), encodePNG(t, color.RGBA{R: 128, G: 128, B: 128, A: 255}))
	require.NoError(t, err)
	assert.Len(t, result.Predictions, 5)
}

func TestDescriber_InvalidImageBytes(t *testing.T) {
	describer := NewDescriber(&stubClassifier{}, &stubRecognizer{}, common.EmptyConfig(), common.NewNullLogger())
	_, err := describer.Describe(context.Background(), []byte("not an image"))
	assert.Error(t, err)
}

func TestDescriber_ClassifierFailureIsSurfaced(t *testing.T) {
	classifier := &stubClassifier{err: errors.New("model server unreachable")}
	describer := NewDescriber(classifier, &stubRecognizer{}, common.EmptyConfig(), common.NewNullLogger())
	_, err := describer.Describe(context.Background(), encodePNG(t, color.RGBA{A: 255}))
	assert.ErrorContains(t, err, "model server unreachable")
}

func TestDescriber_NoPredictionsFallbackText(t *testing.T) {
	describer := NewDescriber(&stubClassifier{}, &stubRecognizer{}, common.EmptyConfig(), common.NewNullLogger())
	result, err := describer.Describe(context.Background(), encodePNG(t, color.RGBA{A: 255}))
	require.NoError(t, err)
	assert.Equal(t, fallbackDescription, result.Text)
}
