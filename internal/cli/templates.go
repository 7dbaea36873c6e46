package cli

import (
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/imgedit/imgedit/internal/templates"
	"github.com/spf13/cobra"
)

var templatesCmd = &cobra.Command{
	Use:   "templates",
	Short: "List prompt templates",
	Long:  "List the built-in prompt templates plus any user templates from templates.toml. User templates with the same name replace built-ins.",
	RunE: func(cmd *cobra.Command, args []string) error {
		reg, err := templates.Load()
		if err != nil {
			return err
		}
		for _, warn := range reg.Warnings() {
			fmt.Fprintf(os.Stderr, "Warning: %s\n", warn)
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "NAME\tALIASES\tDESCRIPTION")
		for _, t := range reg.All() {
			fmt.Fprintf(w, "%s\t%s\t%s\n", t.Name, strings.Join(t.Aliases, ", "), t.Description)
		}
		return w.Flush()
	},
}
