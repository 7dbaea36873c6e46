package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/imgedit/imgedit/internal/config"
	"github.com/imgedit/imgedit/internal/providers"
	"github.com/spf13/cobra"
)

var generateCmd = &cobra.Command{
	Use:     "generate <prompt>",
	Aliases: []string{"gen"},
	Short:   "Generate an image from a text prompt",
	Args:    cobra.ExactArgs(1),
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

		provider, err := providers.New("gemini", cfg)
		if err != nil {
			fail(cfg, err)
			return nil
		}

		if flagOutput == "" && !flagStdoutOK() {
			fmt.Fprintln(os.Stderr, "Warning: writing binary image data to a terminal; use -o or redirect stdout")
		}

		res, err := provider.Generate(context.Background(), prompt)
		if err != nil {
			fail(cfg, err)
			return nil
		}

		writeResult(cfg, target, res)
		return nil
	},
}

// flagStdoutOK reports whether stdout is safe for raw image bytes.
func flagStdoutOK() bool {
	fi, err := os.Stdout.Stat()
	if err != nil {
		return true
	}
	return fi.Mode()&os.ModeCharDevice == 0
}

func init() {
	addOutputFlags(generateCmd)
}
