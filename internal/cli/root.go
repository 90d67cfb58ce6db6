// internal/cli/root.go
package cli

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/arc-language/depflags"
	"github.com/arc-language/depflags/pkg/core"
	"github.com/arc-language/depflags/pkg/platform"
)

var (
	cfgFile          string
	backendName      string
	debug            bool
	lenient          bool
	strict           bool
	clang            bool
	win64            bool
	cxx              string
	systemIncludes   []string
	compilerIncludes []string
	config           *core.Config
)

// newRunner creates the process runner; tests replace it
var newRunner = func(logger *log.Logger) platform.Runner {
	return platform.ExecRunner{Logger: logger}
}

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "depflags",
	Short: "Find the build flags a C or C++ source file needs",
	Long: `depflags - dependency to build flag resolution

Reads the #include directives of a source file, asks the host package
database who owns each header and prints the compiler and linker flags
needed to build against the installed packages.`,
	Version:       version,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute executes the root command
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	// Global flags
	pf := rootCmd.PersistentFlags()
	pf.StringVar(&cfgFile, "config", "", "config file (default is $HOME/.config/depflags/config.yaml)")
	pf.StringVar(&backendName, "backend", "", "package database to query (dpkg, pacman, pkg, openbsd, brew, generic)")
	pf.BoolVar(&debug, "debug", false, "enable debug logging")
	pf.BoolVar(&lenient, "lenient", false, "warn about missing includes instead of failing")
	pf.BoolVar(&strict, "strict", false, "do not add flags that silence library warnings")
	pf.BoolVar(&clang, "clang", false, "the compiler is clang")
	pf.BoolVar(&win64, "win64", false, "cross compile for 64-bit Windows")
	pf.StringVar(&cxx, "cxx", "", "C++ compiler used for -dumpmachine")
	pf.StringSliceVarP(&systemIncludes, "system-include", "I", nil, "system include directory (repeatable)")
	pf.StringSliceVar(&compilerIncludes, "compiler-include", nil, "include directory the compiler searches by default (repeatable)")

	// Add commands
	rootCmd.AddCommand(flagsCmd)
	rootCmd.AddCommand(ownerCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(syncCmd)
	rootCmd.AddCommand(versionCmd)
}

func initConfig() {
	var err error
	config, err = core.LoadConfig(cfgFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		config = core.DefaultConfig()
	}

	// Override config with flags
	pf := rootCmd.PersistentFlags()
	if backendName != "" {
		config.Backend = backendName
	}
	if pf.Changed("debug") {
		config.Debug = debug
	}
	if pf.Changed("lenient") {
		config.Lenient = lenient
	}
	if pf.Changed("strict") {
		config.Strict = strict
	}
	if pf.Changed("clang") {
		config.Clang = clang
	}
	if len(systemIncludes) > 0 {
		config.SystemIncludeDirs = systemIncludes
	}
}

func newLogger() *log.Logger {
	level := log.WarnLevel
	if config.Debug {
		level = log.DebugLevel
	}
	return log.NewWithOptions(os.Stdout, log.Options{Level: level})
}

func newEngine(logger *log.Logger) (*depflags.Engine, error) {
	cfg := depflags.DefaultConfig()
	cfg.Logger = logger
	cfg.Runner = newRunner(logger)
	cfg.Backend = depflags.BackendType(config.Backend)
	cfg.Compiler = cxx
	cfg.Lenient = config.Lenient
	cfg.Strict = config.Strict
	cfg.LocalIncludePaths = config.LocalIncludePaths
	cfg.CachePath = config.CachePath
	return depflags.New(cfg)
}

func platformContext() *platform.Context {
	pc := platform.NewContext()
	pc.CrossWindows = win64
	pc.Clang = config.Clang
	pc.Compiler = cxx
	pc.SystemIncludeDirs = config.SystemIncludeDirs
	pc.CompilerIncludeDirs = compilerIncludes
	return pc
}
