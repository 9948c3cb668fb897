// Package ollama implements domain.LanguageModel on top of an ollama server's chat endpoint.
package ollama

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"lumachat.dev/luma/pkg/common"
	"lumachat.dev/luma/pkg/luma/domain"
	"lumachat.dev/luma/pkg/luma/domain/stream"
)

const (
	// ConfigKeyServerURL the address of the ollama server
	ConfigKeyServerURL = "ollamaServerURL"
	// ConfigKeyModel which installed model to chat with
	ConfigKeyModel = "ollamaModel"
	// ConfigKeyFilterReasoning whether to hide <think>...</think> spans produced by reasoning models
	ConfigKeyFilterReasoning = "ollamaFilterReasoning"
	// ConfigKeyReasoningOpenMarker the literal tag which opens a reasoning span
	ConfigKeyReasoningOpenMarker = "ollamaReasoningOpenMarker"
	// ConfigKeyReasoningCloseMarker the literal tag which closes a reasoning span
	ConfigKeyReasoningCloseMarker = "ollamaReasoningCloseMarker"
)

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model    string        `json:"model"`
	Messages []chatMessage `json:"messages"`
	Stream   bool          `json:"stream"`
}

type Client struct {
	serverURL       string
	model           string
	filterReasoning bool
	openMarker      string
	closeMarker     string
	httpClient      *http.Client
	logger          common.Logger
}

var _ domain.LanguageModel = &Client{}

// NewClient creates a language model backed by an ollama server. `httpClient` may be nil,
// in which case http.DefaultClient is used; request deadlines come from the caller's context.
func NewClient(config *common.Config, httpClient *http.Client, logger common.Logger) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &Client{
		serverURL:       config.GetStringOrDefault(ConfigKeyServerURL, "http://localhost:11434"),
		model:           config.GetStringOrDefault(ConfigKeyModel, "deepseek-r1:1.5b"),
		filterReasoning: config.GetBoolOrDefault(ConfigKeyFilterReasoning, true),
		openMarker:      config.GetStringOrDefault(ConfigKeyReasoningOpenMarker, "<think>"),
		closeMarker:     config.GetStringOrDefault(ConfigKeyReasoningCloseMarker, "</think>"),
		httpClient:      httpClient,
		logger:          logger,
	}
}

func (c *Client) Name() string {
	return "ollama/" + c.model
}

func (c *Client) IsHealthy() bool {
	resp, err := c.httpClient.Get(c.serverURL)
	if err != nil {
		return false
	}
	defer resp.Body.Close()
	return resp.StatusCode == http.StatusOK
}

// Complete see domain.LanguageModel.Complete
func (c *Client) Complete(ctx context.Context, prompt string) (string, error) {
	return c.CompleteStream(ctx, prompt, nil)
}

// CompleteStream sends the prompt to the chat endpoint and reads back the newline-delimited
// JSON response line by line, feeding every line to a per-request stream assembler. With
// reasoning filtering enabled, `onDelta` only ever sees clean text, even when a reasoning
// tag is split across response lines.
func (c *Client) CompleteStream(ctx context.Context, prompt string, onDelta func(text string)) (string, error) {
	body, err := json.Marshal(chatRequest{
		Model:    c.model,
		Messages: []chatMessage{{Role: "user", Content: prompt}},
		Stream:   true,
	})
	if err != nil {
		return "", err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.serverURL+"/api/chat", bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("ollama server returned status %d", resp.StatusCode)
	}

	c.logger.Log("prompt to " + c.Name() + ": " + prompt)
	assembler := stream.NewAssembler(stream.NewMarkerFilter(c.openMarker, c.closeMarker), c.filterReasoning)
	var response strings.Builder
	scanner := bufio.NewScanner(resp.Body)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		delta := assembler.Push(scanner.Text())
		if delta == "" {
			continue
		}
		response.WriteString(delta)
		if onDelta != nil {
			onDelta(delta)
		}
	}
	if err := scanner.Err(); err != nil {
		return "", err
	}
	if tail := assembler.Finish(); tail != "" {
		response.WriteString(tail)
		if onDelta != nil {
			onDelta(tail)
		}
	}
	result := strings.TrimLeft(response.String(), " \n")
	c.logger.Log("response from " + c.Name() + ": " + result)
	return result, nil
}
