// internal/cli/flags.go
package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var outputFormat string

var flagsCmd = &cobra.Command{
	Use:   "flags [source]",
	Short: "Print the build flags a source file needs",
	Long: `Preprocess the source file, resolve every include against the host
package database and print the flags in six categories.`,
	Args: cobra.ExactArgs(1),
	RunE: runFlags,
}

func init() {
	flagsCmd.Flags().StringVar(&outputFormat, "format", "text", "output format (text, yaml)")
}

func runFlags(cmd *cobra.Command, args []string) error {
	logger := newLogger()
	engine, err := newEngine(logger)
	if err != nil {
		return err
	}

	fs, err := engine.BuildFlags(cmd.Context(), args[0], platformContext())
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	switch outputFormat {
	case "text":
		fmt.Fprint(out, fs.Text())
	case "yaml":
		data, err := fs.YAML()
		if err != nil {
			return err
		}
		fmt.Fprint(out, data)
	default:
		return fmt.Errorf("unknown format: %s", outputFormat)
	}
	return nil
}
