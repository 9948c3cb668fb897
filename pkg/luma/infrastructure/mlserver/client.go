// Package mlserver talks to a local computer vision sidecar which serves image classification
// and text recognition over HTTP.
package mlserver

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/google/uuid"

	"lumachat.dev/luma/pkg/common"
	"lumachat.dev/luma/pkg/luma/domain"
)

const (
	// ConfigKeyServerURL the address of the vision sidecar
	ConfigKeyServerURL = "mlServerURL"
)

type visionRequest struct {
	Image     string `json:"image"`
	RequestID string `json:"request_id"`
}

type classifyResponse struct {
	Predictions []struct {
		Label      string  `json:"label"`
		Confidence float64 `json:"confidence"`
	} `json:"predictions"`
}

type ocrResponse struct {
	Lines []string `json:"lines"`
}

type Client struct {
	serverURL  string
	httpClient *http.Client
	logger     common.Logger
}

var _ domain.ImageClassifier = &Client{}
var _ domain.TextRecognizer = &Client{}

// NewClient creates a client for the vision sidecar. `httpClient` may be nil, in which case
// http.DefaultClient is used.
func NewClient(config *common.Config, httpClient *http.Client, logger common.Logger) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &Client{
		serverURL:  config.GetStringOrDefault(ConfigKeyServerURL, "http://localhost:8500"),
		httpClient: httpClient,
		logger:     logger,
	}
}

// Classify see domain.ImageClassifier.Classify
func (c *Client) Classify(ctx context.Context, image []byte) ([]domain.Prediction, error) {
	var response classifyResponse
	err := c.post(ctx, "/classify", image, &response)
	if err != nil {
		return nil, err
	}
	predictions := make([]domain.Prediction, 0, len(response.Predictions))
	for _, prediction := range response.Predictions {
		predictions = append(predictions, domain.Prediction{
			Label:      prediction.Label,
			Confidence: prediction.Confidence,
		})
	}
	return predictions, nil
}

// RecognizeText see domain.TextRecognizer.RecognizeText
func (c *Client) RecognizeText(ctx context.Context, image []byte) ([]string, error) {
	var response ocrResponse
	err := c.post(ctx, "/ocr", image, &response)
	if err != nil {
		return nil, err
	}
	return response.Lines, nil
}

func (c *Client) IsHealthy() bool {
	resp, err := c.httpClient.Get(c.serverURL + "/health")
	if err != nil {
		return false
	}
	defer resp.Body.Close()
	return resp.StatusCode == http.StatusOK
}

func (c *Client) post(ctx context.Context, path string, image []byte, result any) error {
	body, err := json.Marshal(visionRequest{
		Image:     base64.StdEncoding.EncodeToString(image),
		RequestID: uuid.NewString(),
	})
	if err != nil {
		return err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.serverURL+path, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		data, _ := io.ReadAll(resp.Body)
		err = fmt.Errorf("vision server returned status %d: %s", resp.StatusCode, string(data))
		c.logger.Log(err.Error())
		return err
	}
	return json.NewDecoder(resp.Body).Decode(result)
}
