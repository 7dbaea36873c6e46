package providers

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"google.golang.org/genai"

	"github.com/imgedit/imgedit/internal/config"
)

// Gemini implements ImageProvider on Google's Gemini API via the official
// Go SDK.
type Gemini struct {
	apiKey  string
	model   string
	quality string
	client  *genai.Client
}

// NewGemini creates a Gemini provider from the effective configuration.
// The SDK client is created lazily so that status queries work without
// credentials.
func NewGemini(cfg config.Config) *Gemini {
	return &Gemini{
		apiKey:  cfg.APIKey,
		model:   cfg.Model,
		quality: strings.ToUpper(cfg.DefaultQuality),
	}
}

func (g *Gemini) Name() string { return "gemini" }

// Model returns the model name requests are sent to.
func (g *Gemini) Model() string { return g.model }

func (g *Gemini) Configured() bool { return g.apiKey != "" }

func (g *Gemini) getClient(ctx context.Context) (*genai.Client, error) {
	if g.client != nil {
		return g.client, nil
	}
	if g.apiKey == "" {
		return nil, &authError{
			message: "Gemini API key not configured. Run 'imgedit config set api-key' or set GEMINI_API_KEY",
		}
	}
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  g.apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("creating Gemini client: %w", err)
	}
	g.client = client
	return g.client, nil
}

// Generate creates an image from a text prompt.
func (g *Gemini) Generate(ctx context.Context, prompt string) (Result, error) {
	return g.call(ctx, []*genai.Part{{Text: prompt}})
}

// Edit modifies an image according to a text prompt. The image precedes the
// instruction in the request, matching the API's multimodal ordering.
func (g *Gemini) Edit(ctx context.Context, img Image, prompt string) (Result, error) {
	parts := []*genai.Part{
		{InlineData: &genai.Blob{Data: img.Data, MIMEType: img.MIMEType}},
		{Text: prompt},
	}
	return g.call(ctx, parts)
}

// EditMultiple combines two or more images in a single request.
func (g *Gemini) EditMultiple(ctx context.Context, imgs []Image, prompt string) (Result, error) {
	if len(imgs) < 2 {
		return Result{}, fmt.Errorf("at least 2 images are required to combine, got %d", len(imgs))
	}
	parts := make([]*genai.Part, 0, len(imgs)+1)
	for _, img := range imgs {
		parts = append(parts, &genai.Part{
			InlineData: &genai.Blob{Data: img.Data, MIMEType: img.MIMEType},
		})
	}
	parts = append(parts, &genai.Part{Text: prompt})
	return g.call(ctx, parts)
}

func (g *Gemini) call(ctx context.Context, parts []*genai.Part) (Result, error) {
	client, err := g.getClient(ctx)
	if err != nil {
		return Result{}, err
	}

	contents := []*genai.Content{{Parts: parts}}
	genConfig := &genai.GenerateContentConfig{
		ResponseModalities: []string{"IMAGE", "TEXT"},
	}
	if g.quality != "" {
		genConfig.ImageConfig = &genai.ImageConfig{ImageSize: g.quality}
	}

	var resp *genai.GenerateContentResponse
	err = retryWithBackoff(ctx, 3, func() error {
		r, err := client.Models.GenerateContent(ctx, g.model, contents, genConfig)
		if err != nil {
			return classifyAPIError(err)
		}
		resp = r
		return nil
	})
	if err != nil {
		return Result{}, err
	}

	return g.extractImage(resp)
}

// extractImage walks the response candidates for inline image data. A
// text-only response is an error: the model declined or misunderstood.
func (g *Gemini) extractImage(resp *genai.GenerateContentResponse) (Result, error) {
	if resp == nil || len(resp.Candidates) == 0 {
		return Result{}, fmt.Errorf("empty response from model")
	}

	var textParts []string
	for _, candidate := range resp.Candidates {
		if candidate.Content == nil {
			continue
		}
		for _, part := range candidate.Content.Parts {
			if part.InlineData != nil && len(part.InlineData.Data) > 0 {
				mime := part.InlineData.MIMEType
				if mime == "" {
					mime = "image/png"
				}
				return Result{
					Data:     part.InlineData.Data,
					MIMEType: mime,
					Provider: g.Name(),
					Model:    g.model,
				}, nil
			}
			if part.Text != "" {
				textParts = append(textParts, part.Text)
			}
		}
	}

	if len(textParts) > 0 {
		return Result{}, fmt.Errorf("model returned text instead of an image: %s", strings.Join(textParts, " "))
	}
	return Result{}, fmt.Errorf("response contained no image data")
}

// classifyAPIError maps SDK errors onto the retry/auth taxonomy. Anything
// else surfaces as-is.
func classifyAPIError(err error) error {
	var apiErr genai.APIError
	if !errors.As(err, &apiErr) {
		return err
	}
	switch {
	case apiErr.Code == 429 || apiErr.Status == "RESOURCE_EXHAUSTED":
		return &rateLimitError{cause: err}
	case apiErr.Code == 401 || apiErr.Code == 403:
		return &authError{message: apiErr.Message}
	default:
		return err
	}
}
