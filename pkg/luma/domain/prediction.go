package domain

// Prediction a single classification result as produced by an external image classifier.
// Confidence is normalized to [0, 1]. Classifiers return predictions ordered by descending
// confidence; labels are not guaranteed to be unique.
type Prediction struct {
	Label      string
	Confidence float64
}
