package image

import (
	"context"
	"fmt"
	"os"
	"strings"

	"lumachat.dev/luma/pkg/common"
	"lumachat.dev/luma/pkg/luma/domain"
	"lumachat.dev/luma/pkg/luma/domain/vision"
)

const couldntLoadImageFormatMessage = "%s Description: \"no description because the image failed to load\""
const imageDescriptionFormatMessage = "%s\nThe description of the picture says: \"%s\"\n%s"

// URLFinder finds all URLs in a message.
type URLFinder interface {
	FindURLs(str string) []string
}

// Describer turns raw image bytes into a human-readable description.
type Describer interface {
	Describe(ctx context.Context, imageData []byte) (*vision.DescriptionResult, error)
}

type filter struct {
	urlFinder URLFinder
	describer Describer
	logger    common.Logger
}

// NewFilter this prompt filter allows chat to discuss pictures: an image URL or a local image
// path mentioned in the prompt is replaced with the vision engine's description of the image.
func NewFilter(urlFinder URLFinder, describer Describer, logger common.Logger) domain.PromptFilter {
	return &filter{
		urlFinder: urlFinder,
		describer: describer,
		logger:    logger,
	}
}

func (f *filter) Apply(ctx context.Context, prompt string, next domain.NextPromptFunc) (string, error) {
	ref := f.findImageRef(prompt)
	if ref == "" {
		return next(ctx, prompt)
	}
	imageData, err := f.loadImage(ref)
	if err != nil {
		f.logger.Log(err.Error())
		return next(ctx, fmt.Sprintf(couldntLoadImageFormatMessage, prompt))
	}
	result, err := f.describer.Describe(ctx, imageData)
	if err != nil {
		f.logger.Log(err.Error())
		return next(ctx, fmt.Sprintf(couldntLoadImageFormatMessage, prompt))
	}
	promptWithoutRef := strings.TrimSpace(strings.ReplaceAll(prompt, ref, ""))
	return next(ctx, fmt.Sprintf(imageDescriptionFormatMessage, ref, result.Text, promptWithoutRef))
}

// findImageRef returns the first image URL in the prompt, or, failing that, the first
// whitespace-separated token which looks like a local image path. Only one image is handled
// per prompt so far.
func (f *filter) findImageRef(prompt string) string {
	for _, url := range f.urlFinder.FindURLs(prompt) {
		if common.IsImageFormat(url) {
			return url
		}
	}
	for _, token := range strings.Fields(prompt) {
		if common.IsImageFormat(token) {
			return token
		}
	}
	return ""
}

func (f *filter) loadImage(ref string) ([]byte, error) {
	if strings.HasPrefix(ref, "http://") || strings.HasPrefix(ref, "https://") {
		return common.ReadAllFromURL(ref)
	}
	return os.ReadFile(ref)
}
