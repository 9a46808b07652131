package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/msto63/pkit/core/config"
	"github.com/msto63/pkit/core/log"
	"github.com/msto63/pkit/pkg/registry"
)

var (
	cfgFile string
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "pkit",
	Short: "pkit - Primitive Toolkit",
	Long: `pkit exposes the primitive toolkit's method tables on the command line.

Subjects and arguments are given as JSON; anything that is not valid JSON
is passed as a plain string.

Tables:
  string   - text transforms, predicates and parsing
  number   - arithmetic, formatting and unit conversions
  array    - record queries, grouping, sorting and aggregates
  object   - key selection, merging and schema defaults
  math     - interpolation, rounding and colour mixing
  path     - POSIX path helpers`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setup,
}

func Execute() error {
	if err := rootCmd.Execute(); err != nil {
		printError("pkit", err)
		return err
	}
	return nil
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (TOML or YAML)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}

// setup loads the configuration, installs the logger and the built-in tables
func setup(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cfgFile)
	if err != nil {
		return err
	}

	settings, err := cfg.Settings()
	if err != nil {
		printError("invalid settings, using defaults", err)
	}
	if verbose {
		settings.LogLevel = log.LevelDebug
	}
	log.SetDefault(settings.Logger(cmd.ErrOrStderr()))

	registry.InstallBuiltins(registry.Options{
		TruncateSuffix: settings.TruncateSuffix,
		ArrayStrategy:  settings.ArrayStrategy,
		SortAscending:  settings.SortAscending,
	})
	return nil
}

func loadConfig(path string) (*config.Config, error) {
	if path == "" {
		return config.New(config.Defaults(), config.DefaultEnvPrefix), nil
	}
	return config.LoadWithOptions(path, config.LoadOptions{
		EnvPrefix: config.DefaultEnvPrefix,
		Defaults:  config.Defaults(),
	})
}

func printError(msg string, err error) {
	fmt.Fprintf(os.Stderr, "Error: %s: %v\n", msg, err)
}
