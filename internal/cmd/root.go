// Package cmd provides CLI command implementations.
package cmd

import (
	"github.com/spf13/cobra"

	"github.com/filament-tools/filament-page/internal/config"
	"github.com/filament-tools/filament-page/internal/output"
	"github.com/filament-tools/filament-page/internal/version"
)

var (
	// Global flags
	configFlag     string
	projectFlag    string
	verboseFlag    bool
	timestampsFlag bool

	// Loaded configuration (set during PersistentPreRunE)
	loadedConfig *config.Loaded
	loadErr      error
)

// NewRootCmd creates the root command.
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "filament-page",
		Short: "Scaffold Filament pages",
		Long: `filament-page generates Filament page classes and their Blade views
inside a Laravel project, optionally attached to a resource.`,
		Version:       version.GetInfo().Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			initializeGlobals(cmd)
			return nil
		},
	}

	rootCmd.PersistentFlags().StringVarP(&configFlag, "config", "c", "", "Path to config file (env: "+config.EnvConfig+")")
	rootCmd.PersistentFlags().StringVarP(&projectFlag, "project", "p", ".", "Laravel project root")
	rootCmd.PersistentFlags().BoolVarP(&verboseFlag, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().BoolVar(&timestampsFlag, "timestamps", false, "Show timestamps in log output")

	rootCmd.AddCommand(NewMakePageCmd())
	rootCmd.AddCommand(NewConfigCmd())
	rootCmd.AddCommand(NewVersionCmd())

	return rootCmd
}

// initializeGlobals sets up logging and loads configuration. Load errors
// are kept so that only commands needing configuration fail on them.
func initializeGlobals(cmd *cobra.Command) {
	logCfg := output.LogConfig{
		Verbose: verboseFlag,
		Writer:  cmd.ErrOrStderr(),
	}
	if cmd.Flags().Changed("timestamps") {
		logCfg.Timestamps = output.BoolPtr(timestampsFlag)
	}
	output.SetupLogging(logCfg)

	info := version.GetInfo()
	output.Debug("filament-page started", "version", info.Version, "go", info.GoVersion)

	loadedConfig, loadErr = config.NewLoader().Load(config.LoadOptions{
		ProjectDir: projectFlag,
		ConfigFlag: configFlag,
	})
	if loadErr != nil {
		output.Debug("config load error", "error", loadErr)
		return
	}

	if verboseFlag {
		config.LogResolvedValues(append([]config.ResolvedValue{loadedConfig.ConfigPath}, loadedConfig.Values...))
	}
}

// requireConfig returns the loaded configuration or the error that
// prevented loading it.
func requireConfig() (*config.Loaded, error) {
	if loadErr != nil {
		return nil, exitError(loadErr)
	}
	return loadedConfig, nil
}
