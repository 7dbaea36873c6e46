package providers

import (
	"context"
	"fmt"

	"github.com/imgedit/imgedit/internal/config"
)

// Image is an input image with its MIME type.
type Image struct {
	Data     []byte
	MIMEType string
}

// Result is the image returned by a provider.
type Result struct {
	Data     []byte
	MIMEType string
	Provider string
	Model    string
}

// ImageProvider is the provider abstraction interface.
type ImageProvider interface {
	// Name returns the provider name for display.
	Name() string
	// Configured reports whether credentials are available.
	Configured() bool
	// Generate creates an image from a text prompt.
	Generate(ctx context.Context, prompt string) (Result, error)
	// Edit modifies an image according to a text prompt.
	Edit(ctx context.Context, img Image, prompt string) (Result, error)
	// EditMultiple combines two or more images according to a text prompt.
	EditMultiple(ctx context.Context, imgs []Image, prompt string) (Result, error)
}

// New creates a provider by name.
func New(name string, cfg config.Config) (ImageProvider, error) {
	switch name {
	case "gemini", "google":
		return NewGemini(cfg), nil
	default:
		return nil, fmt.Errorf("unknown provider: %s (available: gemini)", name)
	}
}
