package providers

import (
	"strings"
	"testing"

	"google.golang.org/genai"

	"github.com/imgedit/imgedit/internal/config"
)

func TestNewGemini(t *testing.T) {
	g := NewGemini(config.Config{APIKey: "key", Model: "gemini-3-pro-image-preview"})
	if g.Name() != "gemini" {
		t.Errorf("Name = %q, want %q", g.Name(), "gemini")
	}
	if g.Model() != "gemini-3-pro-image-preview" {
		t.Errorf("Model = %q", g.Model())
	}
	if !g.Configured() {
		t.Error("provider with key should report configured")
	}
}

func TestNewGeminiQualityNormalized(t *testing.T) {
	g := NewGemini(config.Config{APIKey: "key", Model: "m", DefaultQuality: "2k"})
	if g.quality != "2K" {
		t.Errorf("quality = %q, want %q", g.quality, "2K")
	}
}

func TestGeminiNotConfigured(t *testing.T) {
	g := NewGemini(config.Config{Model: "gemini-3-pro-image-preview"})
	if g.Configured() {
		t.Error("provider without key should report unconfigured")
	}
}

func TestExtractImage(t *testing.T) {
	g := NewGemini(config.Config{APIKey: "key", Model: "m"})
	imgBytes := []byte{0x89, 0x50, 0x4e, 0x47}

	resp := &genai.GenerateContentResponse{
		Candidates: []*genai.Candidate{
			{
				Content: &genai.Content{
					Parts: []*genai.Part{
						{Text: "Here is your image."},
						{InlineData: &genai.Blob{Data: imgBytes, MIMEType: "image/png"}},
					},
				},
			},
		},
	}

	res, err := g.extractImage(resp)
	if err != nil {
		t.Fatalf("extractImage error: %v", err)
	}
	if string(res.Data) != string(imgBytes) {
		t.Error("extracted bytes do not match inline data")
	}
	if res.MIMEType != "image/png" {
		t.Errorf("MIMEType = %q, want %q", res.MIMEType, "image/png")
	}
	if res.Provider != "gemini" || res.Model != "m" {
		t.Errorf("provenance = %q/%q", res.Provider, res.Model)
	}
}

func TestExtractImageDefaultMIME(t *testing.T) {
	g := NewGemini(config.Config{APIKey: "key", Model: "m"})
	resp := &genai.GenerateContentResponse{
		Candidates: []*genai.Candidate{
			{
				Content: &genai.Content{
					Parts: []*genai.Part{
						{InlineData: &genai.Blob{Data: []byte{1, 2, 3}}},
					},
				},
			},
		},
	}

	res, err := g.extractImage(resp)
	if err != nil {
		t.Fatal(err)
	}
	if res.MIMEType != "image/png" {
		t.Errorf("MIMEType = %q, want default image/png", res.MIMEType)
	}
}

func TestExtractImageTextOnly(t *testing.T) {
	g := NewGemini(config.Config{APIKey: "key", Model: "m"})
	resp := &genai.GenerateContentResponse{
		Candidates: []*genai.Candidate{
			{
				Content: &genai.Content{
					Parts: []*genai.Part{
						{Text: "I cannot edit this image."},
					},
				},
			},
		},
	}

	_, err := g.extractImage(resp)
	if err == nil {
		t.Fatal("text-only response should fail")
	}
	if !strings.Contains(err.Error(), "I cannot edit this image.") {
		t.Errorf("error %q does not include the model text", err)
	}
}

func TestExtractImageEmpty(t *testing.T) {
	g := NewGemini(config.Config{APIKey: "key", Model: "m"})
	if _, err := g.extractImage(&genai.GenerateContentResponse{}); err == nil {
		t.Error("empty response should fail")
	}
	if _, err := g.extractImage(nil); err == nil {
		t.Error("nil response should fail")
	}
}
