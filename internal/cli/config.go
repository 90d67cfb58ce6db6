// internal/cli/config.go
package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/arc-language/depflags/pkg/core"
)

var saveConfig bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print or save the effective configuration",
	Args:  cobra.NoArgs,
	RunE:  runConfig,
}

func init() {
	configCmd.Flags().BoolVar(&saveConfig, "save", false, "write the effective configuration to the config file")
}

func runConfig(cmd *cobra.Command, args []string) error {
	if saveConfig {
		path := cfgFile
		if path == "" {
			path = core.DefaultConfigPath()
		}
		if err := core.SaveConfig(config, path); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Saved %s\n", path)
		return nil
	}

	data, err := yaml.Marshal(config)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	fmt.Fprint(cmd.OutOrStdout(), string(data))
	return nil
}
