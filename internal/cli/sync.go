// internal/cli/sync.go
package cli

import (
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/arc-language/depflags/pkg/index"
)

var syncCmd = &cobra.Command{
	Use:   "sync",
	Short: "Update the package recommendation registry",
	Long:  `Shallow-clone the registry repository and refresh the cached deps/ entries.`,
	Args:  cobra.NoArgs,
	RunE:  runSync,
}

func runSync(cmd *cobra.Command, args []string) error {
	var progress io.Writer
	if config.Debug {
		progress = os.Stderr
	}
	return index.Sync(cmd.Context(), index.Options{
		CacheDir: config.CachePath,
		URL:      config.RegistryURL,
		Progress: progress,
		Logger:   newLogger(),
	})
}
