package stability

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"

	"github.com/povarna/generative-ai-agents/jewelry-agent/internal/generation"
)

const (
	DefaultURL = "https://api.stability.ai/v2beta/stable-image/generate/core"

	model          = "sd3"
	outputFormat   = "webp"
	promptSuffix   = ", jewelry design, ultra-detailed, 8k"
	negativePrompt = "blurry, low quality, sketch"

	maxResponseBytes = 32 << 20
)

// Client calls the Stability AI image generation endpoint.
type Client struct {
	httpClient *http.Client
	url        string
	apiKey     string
}

func NewClient(cfg generation.ClientConfig) *Client {
	url := cfg.BaseURL
	if url == "" {
		url = DefaultURL
	}
	return &Client{
		httpClient: generation.NewHTTPClient(cfg),
		url:        url,
		apiKey:     cfg.APIKey,
	}
}

// Generate returns the raw image bytes for prompt. Non-200 answers come back
// as *generation.UpstreamError, everything else as *generation.UnexpectedError.
func (c *Client) Generate(ctx context.Context, prompt string) ([]byte, error) {
	body, contentType, err := buildForm(prompt)
	if err != nil {
		return nil, &generation.UnexpectedError{Op: "build stability request", Err: err}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, body)
	if err != nil {
		return nil, &generation.UnexpectedError{Op: "build stability request", Err: err}
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Accept", "image/*")
	req.Header.Set("Content-Type", contentType)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &generation.UnexpectedError{Op: "call stability", Err: err}
	}
	defer resp.Body.Close()

	payload, err := generation.ReadBody(resp.Body, maxResponseBytes)
	if err != nil {
		return nil, &generation.UnexpectedError{Op: "read stability response", Err: err}
	}

	if resp.StatusCode != http.StatusOK {
		return nil, &generation.UpstreamError{
			Service:    "stability",
			StatusCode: resp.StatusCode,
			Body:       payload,
		}
	}

	return payload, nil
}

// buildForm encodes the request as multipart/form-data. The endpoint only
// accepts multipart, so an empty file part is always attached.
func buildForm(prompt string) (io.Reader, string, error) {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)

	fields := []struct{ key, value string }{
		{"prompt", prompt + promptSuffix},
		{"model", model},
		{"output_format", outputFormat},
		{"negative_prompt", negativePrompt},
	}
	for _, f := range fields {
		if err := w.WriteField(f.key, f.value); err != nil {
			return nil, "", fmt.Errorf("write field %s: %w", f.key, err)
		}
	}

	if _, err := w.CreateFormFile("none", "none"); err != nil {
		return nil, "", fmt.Errorf("write file part: %w", err)
	}

	if err := w.Close(); err != nil {
		return nil, "", err
	}
	return &buf, w.FormDataContentType(), nil
}
