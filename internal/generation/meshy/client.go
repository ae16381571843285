package meshy

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"

	"github.com/povarna/generative-ai-agents/jewelry-agent/internal/generation"
	"github.com/povarna/generative-ai-agents/jewelry-agent/internal/models"
)

const (
	DefaultURL = "https://api.meshy.ai/openapi/v2/text-to-3d"

	maxResponseBytes = 4 << 20
)

type textTo3DRequest struct {
	Prompt       string `json:"prompt"`
	OutputFormat string `json:"output_format"`
	Mode         string `json:"mode"`
	ArtStyle     string `json:"art_style"`
	ShouldRemesh bool   `json:"should_remesh"`
}

type textTo3DResponse struct {
	ModelURL     *string `json:"model_url"`
	ThumbnailURL *string `json:"thumbnail_url"`
}

// Client calls the Meshy text-to-3D endpoint.
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

func (c *Client) Generate(ctx context.Context, prompt string) (*models.Model3DResponse, error) {
	body, err := json.Marshal(textTo3DRequest{
		Prompt:       prompt,
		OutputFormat: "glb",
		Mode:         "preview",
		ArtStyle:     "realistic",
		ShouldRemesh: true,
	})
	if err != nil {
		return nil, &generation.UnexpectedError{Op: "encode meshy request", Err: err}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(body))
	if err != nil {
		return nil, &generation.UnexpectedError{Op: "build meshy request", Err: err}
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &generation.UnexpectedError{Op: "call meshy", Err: err}
	}
	defer resp.Body.Close()

	payload, err := generation.ReadBody(resp.Body, maxResponseBytes)
	if err != nil {
		return nil, &generation.UnexpectedError{Op: "read meshy response", Err: err}
	}

	if resp.StatusCode != http.StatusOK {
		return nil, &generation.UpstreamError{
			Service:    "meshy",
			StatusCode: resp.StatusCode,
			Body:       payload,
		}
	}

	var out textTo3DResponse
	if err := json.Unmarshal(payload, &out); err != nil {
		return nil, &generation.UnexpectedError{Op: "decode meshy response", Err: err}
	}

	return &models.Model3DResponse{
		ModelURL:  out.ModelURL,
		Thumbnail: out.ThumbnailURL,
	}, nil
}
