package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/imgedit/imgedit/internal/config"
	"github.com/imgedit/imgedit/internal/imageio"
	"github.com/imgedit/imgedit/internal/providers"
	"github.com/imgedit/imgedit/internal/redact"
	"github.com/imgedit/imgedit/internal/templates"
	"github.com/spf13/cobra"
)

// Shared edit/generate flags
var (
	flagInputs []string
	flagOutput string
	flagFormat string
	flagModel  string
)

func addOutputFlags(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&flagOutput, "output", "o", "", "Output file path (default: stdout)")
	cmd.Flags().StringVarP(&flagFormat, "format", "f", "", "Output format (png, jpeg, webp, gif)")
	cmd.Flags().StringVarP(&flagModel, "model", "m", "", "Model name override")
}

// loadEffectiveConfig builds the run configuration with the model flag
// applied on top.
func loadEffectiveConfig() (config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return config.Config{}, err
	}
	if flagModel != "" {
		cfg.Model = flagModel
	}
	return cfg, nil
}

// resolvePrompt expands a template name or alias into its stored prompt.
// Unknown tokens pass through as literal prompts. Template file warnings go
// to stderr so they never pollute piped image output.
func resolvePrompt(prompt string) (string, error) {
	reg, err := templates.Load()
	if err != nil {
		return "", err
	}
	for _, w := range reg.Warnings() {
		fmt.Fprintf(os.Stderr, "Warning: %s\n", w)
	}
	res := reg.Resolve(prompt)
	if res.FromTemplate {
		fmt.Fprintf(os.Stderr, "Using template %q\n", res.Name)
	}
	return res.Prompt, nil
}

// outputMIME picks the target output format: the -f flag wins, then the
// output file extension, then the configured default (stdout only). An
// unrecognized -f value is a usage error.
func outputMIME(format, outPath, defaultFormat string) (string, error) {
	if format != "" {
		mime, ok := imageio.MIMEFromName(format)
		if !ok {
			return "", fmt.Errorf("unsupported format %q (supported: png, jpeg, webp, gif)", format)
		}
		return mime, nil
	}
	if outPath != "" {
		if mime, ok := imageio.MIMEFromName(filepath.Ext(outPath)); ok {
			return mime, nil
		}
		return "", nil
	}
	if mime, ok := imageio.MIMEFromName(defaultFormat); ok {
		return mime, nil
	}
	return "", nil
}

// gatherInputs collects the images for an edit. Files given with -i are
// used as-is, in flag order; stdin is consulted only when no -i flag was
// provided, so scripted invocations with an empty stdin still work.
func gatherInputs() ([]providers.Image, error) {
	if len(flagInputs) > 0 {
		imgs := make([]providers.Image, 0, len(flagInputs))
		for _, path := range flagInputs {
			data, mime, err := imageio.ReadFile(path)
			if err != nil {
				return nil, err
			}
			imgs = append(imgs, providers.Image{Data: data, MIMEType: mime})
		}
		return imgs, nil
	}
	data, mime, err := imageio.ReadStdin()
	if err != nil {
		return nil, err
	}
	return []providers.Image{{Data: data, MIMEType: mime}}, nil
}

// fail prints the error with the API key scrubbed and sets the exit code.
func fail(cfg config.Config, err error) {
	fmt.Fprintf(os.Stderr, "Error: %s\n", redact.Scrub(err.Error(), cfg.APIKey))
	if providers.IsAuthError(err) {
		exitCode = ExitAuthError
		return
	}
	exitCode = ExitRuntimeError
}

// writeResult converts the returned image to the target format and writes it
// to the output path or stdout.
func writeResult(cfg config.Config, target string, res providers.Result) {
	data, err := imageio.Convert(res.Data, target)
	if err != nil {
		fail(cfg, err)
		return
	}
	if err := imageio.WriteOutput(flagOutput, data); err != nil {
		fail(cfg, err)
		return
	}
	if flagOutput != "" {
		fmt.Fprintf(os.Stderr, "Saved to %s (%d bytes)\n", flagOutput, len(data))
	}
}

var editCmd = &cobra.Command{
	Use:   "edit <prompt>",
	Short: "Edit an image with a text prompt",
	Long:  "Edit an image according to a text prompt or template name. The image comes from stdin or -i/--input; with multiple inputs they are combined in one request.",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadEffectiveConfig()
		if err != nil {
			fail(config.Config{}, err)
			return nil
		}

		target, err := outputMIME(flagFormat, flagOutput, cfg.DefaultFormat)
		if err != nil {
			return err
		}

		prompt, err := resolvePrompt(args[0])
		if err != nil {
			fail(cfg, err)
			return nil
		}

		imgs, err := gatherInputs()
		if err != nil {
			fail(cfg, err)
			return nil
		}

		provider, err := providers.New("gemini", cfg)
		if err != nil {
			fail(cfg, err)
			return nil
		}

		ctx := context.Background()
		var res providers.Result
		if len(imgs) == 1 {
			res, err = provider.Edit(ctx, imgs[0], prompt)
		} else {
			res, err = provider.EditMultiple(ctx, imgs, prompt)
		}
		if err != nil {
			fail(cfg, err)
			return nil
		}

		writeResult(cfg, target, res)
		return nil
	},
}

func init() {
	editCmd.Flags().StringArrayVarP(&flagInputs, "input", "i", nil, "Input image file (repeatable to combine images)")
	addOutputFlags(editCmd)
}
