// internal/cli/owner.go
package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var ownerCmd = &cobra.Command{
	Use:   "owner [header-path]",
	Short: "Show which package owns a header",
	Long:  `Display the owning package, its pkg-config files and the flags they give.`,
	Args:  cobra.ExactArgs(1),
	RunE:  runOwner,
}

func runOwner(cmd *cobra.Command, args []string) error {
	engine, err := newEngine(newLogger())
	if err != nil {
		return err
	}

	o, err := engine.Owner(cmd.Context(), args[0])
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	pkg := o.Package
	if pkg == "" {
		pkg = "(none)"
	}
	fmt.Fprintf(out, "Path: %s\n", o.Path)
	fmt.Fprintf(out, "Backend: %s\n", engine.Backend())
	fmt.Fprintf(out, "Package: %s\n", pkg)
	if len(o.PCFiles) > 0 {
		fmt.Fprintf(out, "PC files: %s\n", strings.Join(o.PCFiles, " "))
	}
	if o.Flags != "" {
		fmt.Fprintf(out, "Flags: %s\n", o.Flags)
	}
	return nil
}
