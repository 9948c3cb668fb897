package image

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lumachat.dev/luma/pkg/common"
	"lumachat.dev/luma/pkg/luma/domain/vision"
)

type stubURLFinder struct{}

func (s *stubURLFinder) FindURLs(str string) []string {
	return nil
}

type stubDescriber struct {
	description string
	err         error
	sawData     []byte
}

func (s *stubDescriber) Describe(ctx context.Context, imageData []byte) (*vision.DescriptionResult, error) {
	s.sawData = imageData
	if s.err != nil {
		return nil, s.err
	}
	return &vision.DescriptionResult{Text: s.description}, nil
}

func passthrough(ctx context.Context, prompt string) (string, error) {
	return prompt, nil
}

func TestApplyDescribesLocalImage(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cat.png")
	require.NoError(t, os.WriteFile(path, []byte("fake image bytes"), 0o644))
	describer := &stubDescriber{description: "This appears to be a orange cat that is clearly visible."}
	filter := NewFilter(&stubURLFinder{}, describer, common.NewNullLogger())
	prompt, err := filter.Apply(context.Background(), "what is in "+path+" ?", passthrough)
	require.NoError(t, err)
	assert.Equal(t, []byte("fake image bytes"), describer.sawData)
	assert.Contains(t, prompt, "This appears to be a orange cat that is clearly visible.")
	assert.Contains(t, prompt, "what is in  ?")
}

func TestApplyWithoutImage(t *testing.T) {
	filter := NewFilter(&stubURLFinder{}, &stubDescriber{description: "ignored"}, common.NewNullLogger())
	prompt, err := filter.Apply(context.Background(), "hello there", passthrough)
	require.NoError(t, err)
	assert.Equal(t, "hello there", prompt)
}

func TestApplyMissingFileKeptVisible(t *testing.T) {
	filter := NewFilter(&stubURLFinder{}, &stubDescriber{}, common.NewNullLogger())
	prompt, err := filter.Apply(context.Background(), "describe /nonexistent/cat.jpg", passthrough)
	require.NoError(t, err)
	assert.Contains(t, prompt, "no description because the image failed to load")
}

func TestApplyDescriberFailureKeptVisible(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cat.png")
	require.NoError(t, os.WriteFile(path, []byte("fake image bytes"), 0o644))
	filter := NewFilter(&stubURLFinder{}, &stubDescriber{err: errors.New("vision server down")}, common.NewNullLogger())
	prompt, err := filter.Apply(context.Background(), "describe "+path, passthrough)
	require.NoError(t, err)
	assert.Contains(t, prompt, "no description because the image failed to load")
}
