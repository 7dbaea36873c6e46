package cli

import (
	"bufio"
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/imgedit/imgedit/internal/config"
	"github.com/imgedit/imgedit/internal/redact"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage imgedit configuration",
}

var configSetCmd = &cobra.Command{
	Use:   "set <key> [value]",
	Short: "Set a configuration value",
	Long:  "Set a configuration value. When the value is omitted it is read interactively; for api-key the input is not echoed.",
	Args:  cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		key := args[0]
		spec, ok := config.Lookup(key)
		if !ok {
			return &config.RejectedKeyError{Key: key}
		}

		var value string
		if len(args) == 2 {
			value = args[1]
		} else {
			v, err := promptValue(spec)
			if err != nil {
				return err
			}
			value = v
		}

		if err := config.Set(key, value); err != nil {
			return err
		}

		if spec.Secret {
			fmt.Fprintf(os.Stdout, "Set %s = %s\n", key, redact.Mask(value))
		} else {
			fmt.Fprintf(os.Stdout, "Set %s = %s\n", key, value)
		}
		return nil
	},
}

// promptValue reads a value interactively. Secrets are read without echo
// when stdin is a terminal.
func promptValue(spec config.Spec) (string, error) {
	fmt.Fprintf(os.Stderr, "Enter value for %s: ", spec.Key)
	if spec.Secret && term.IsTerminal(int(os.Stdin.Fd())) {
		raw, err := term.ReadPassword(int(os.Stdin.Fd()))
		fmt.Fprintln(os.Stderr)
		if err != nil {
			return "", fmt.Errorf("reading value: %w", err)
		}
		return strings.TrimSpace(string(raw)), nil
	}
	line, err := bufio.NewReader(os.Stdin).ReadString('\n')
	if err != nil && line == "" {
		return "", fmt.Errorf("reading value: %w", err)
	}
	return strings.TrimSpace(line), nil
}

var configGetCmd = &cobra.Command{
	Use:   "get <key>",
	Short: "Print the effective value for a key",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		key := args[0]
		spec, ok := config.Lookup(key)
		if !ok {
			return &config.RejectedKeyError{Key: key}
		}
		value, err := config.Get(key)
		if err != nil {
			return err
		}
		if value == "" {
			fmt.Fprintf(os.Stdout, "%s is not set\n", key)
			return nil
		}
		if spec.Secret {
			value = redact.Mask(value)
		}
		fmt.Fprintln(os.Stdout, value)
		return nil
	},
}

var configUnsetCmd = &cobra.Command{
	Use:   "unset <key>",
	Short: "Remove a key from the config file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		key := args[0]
		removed, err := config.Unset(key)
		if err != nil {
			return err
		}
		if removed {
			fmt.Fprintf(os.Stdout, "Unset %s\n", key)
		} else {
			fmt.Fprintf(os.Stdout, "%s was not set in the config file\n", key)
		}
		return nil
	},
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show effective configuration with sources",
	RunE: func(cmd *cobra.Command, args []string) error {
		entries, err := config.All()
		if err != nil {
			return err
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "KEY\tVALUE\tSOURCE")
		for _, e := range entries {
			value := e.Value
			if e.Secret {
				value = redact.Mask(value)
			}
			if value == "" {
				value = "(not set)"
			}
			fmt.Fprintf(w, "%s\t%s\t%s\n", e.Key, value, e.Source)
		}
		if err := w.Flush(); err != nil {
			return err
		}

		path, err := config.Path()
		if err != nil {
			return err
		}
		fmt.Fprintf(os.Stdout, "\nConfig file: %s\n", path)
		return nil
	},
}

func init() {
	configCmd.AddCommand(configSetCmd)
	configCmd.AddCommand(configGetCmd)
	configCmd.AddCommand(configUnsetCmd)
	configCmd.AddCommand(configShowCmd)
}
