// Package ocr is a thin client for the Gemini vision API, consumed as an
// opaque image-to-text oracle.
package ocr

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

const DefaultBaseURL = "https://generativelanguage.googleapis.com/v1beta"

// DefaultModels is the fixed ordered list of models tried per extraction.
var DefaultModels = []string{
	"gemini-2.0-flash",
	"gemini-1.5-flash",
	"gemini-1.5-pro",
}

const extractPrompt = "Extract all readable text from this image. " +
	"Return only the text, preserving line breaks."

// ErrMissingKey means the client was constructed without a provider API key.
var ErrMissingKey = errors.New("ocr: missing api key")

type Client struct {
	APIKey     string
	BaseURL    string
	Models     []string
	HTTPClient *http.Client
}

func New(apiKey string) *Client {
	return &Client{
		APIKey:  apiKey,
		BaseURL: DefaultBaseURL,
		Models:  DefaultModels,
		HTTPClient: &http.Client{
			Timeout: 60 * time.Second,
		},
	}
}

// Extract sends the image to each configured model in order and returns the
// first successful extraction: all text fragments joined by newlines,
// trimmed. When every model fails, the last model's error is returned.
func (c *Client) Extract(ctx context.Context, mimeType, base64 string) (string, error) {
	if c.APIKey == "" {
		return "", ErrMissingKey
	}

	var lastErr error
	for _, model := range c.Models {
		text, err := c.extractWith(ctx, model, mimeType, base64)
		if err == nil {
			return text, nil
		}
		lastErr = err
	}
	if lastErr == nil {
		lastErr = errors.New("ocr: no models configured")
	}
	return "", lastErr
}

type generateRequest struct {
	Contents []content `json:"contents"`
}

type content struct {
	Parts []part `json:"parts"`
}

type part struct {
	Text       string      `json:"text,omitempty"`
	InlineData *inlineData `json:"inline_data,omitempty"`
}

type inlineData struct {
	MimeType string `json:"mime_type"`
	Data     string `json:"data"`
}

type generateResponse struct {
	Candidates []struct {
		Content content `json:"content"`
	} `json:"candidates"`
}

func (c *Client) extractWith(ctx context.Context, model, mimeType, base64 string) (string, error) {
	reqBody := generateRequest{
		Contents: []content{{
			Parts: []part{
				{Text: extractPrompt},
				{InlineData: &inlineData{MimeType: mimeType, Data: base64}},
			},
		}},
	}

	body, err := json.Marshal(reqBody)
	if err != nil {
		return "", fmt.Errorf("ocr: marshal request: %w", err)
	}

	url := fmt.Sprintf("%s/models/%s:generateContent?key=%s", c.BaseURL, model, c.APIKey)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("ocr: build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("ocr: %s: %w", model, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("ocr: %s: read response: %w", model, err)
	}

	if resp.StatusCode != http.StatusOK {
		return "", errors.New(providerError(raw))
	}

	var result generateResponse
	if err := json.Unmarshal(raw, &result); err != nil {
		return "", fmt.Errorf("ocr: %s: decode response: %w", model, err)
	}

	var fragments []string
	for _, cand := range result.Candidates {
		for _, p := range cand.Content.Parts {
			if p.Text != "" {
				fragments = append(fragments, p.Text)
			}
		}
	}
	return strings.TrimSpace(strings.Join(fragments, "\n")), nil
}

// providerError extracts the provider's error message when the body is the
// usual {"error": {"message": ...}} envelope, else returns the raw body.
func providerError(raw []byte) string {
	var envelope struct {
		Error struct {
			Message string `json:"message"`
		} `json:"error"`
	}
	if err := json.Unmarshal(raw, &envelope); err == nil && envelope.Error.Message != "" {
		return envelope.Error.Message
	}
	return string(raw)
}
