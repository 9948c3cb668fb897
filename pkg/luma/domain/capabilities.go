package domain

import "context"

// ImageClassifier an external classifier capability. The domain treats inference as opaque:
// it only consumes the resulting label/confidence pairs.
type ImageClassifier interface {
	// Classify returns predictions for the image, ordered by descending confidence.
	// The image data should be the full contents of an image file, including the header.
	Classify(ctx context.Context, image []byte) ([]Prediction, error)
}

// TextRecognizer an external OCR capability which extracts readable text from an image.
type TextRecognizer interface {
	// RecognizeText returns the recognized text fragments in reading order.
	// An image with no readable text yields an empty slice, not an error.
	RecognizeText(ctx context.Context, image []byte) ([]string, error)
}
