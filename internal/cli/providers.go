package cli

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/imgedit/imgedit/internal/config"
	"github.com/imgedit/imgedit/internal/providers"
	"github.com/spf13/cobra"
)

var providersCmd = &cobra.Command{
	Use:   "providers",
	Short: "List image providers and their status",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}

		gemini := providers.NewGemini(cfg)

		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "PROVIDER\tMODEL\tSTATUS")
		status := "ready"
		if !gemini.Configured() {
			status = "no API key"
		}
		fmt.Fprintf(w, "%s\t%s\t%s\n", gemini.Name(), gemini.Model(), status)
		if err := w.Flush(); err != nil {
			return err
		}

		if !gemini.Configured() {
			fmt.Fprintln(os.Stdout, "\nRun 'imgedit config set api-key' or set GEMINI_API_KEY to get started.")
		}
		return nil
	},
}
