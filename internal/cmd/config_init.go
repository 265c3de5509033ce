package cmd

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/filament-tools/filament-page/internal/config"
	oerrors "github.com/filament-tools/filament-page/internal/errors"
	"github.com/filament-tools/filament-page/internal/output"
)

const configHeader = `# filament-page configuration.
# Paths are relative to the project root.
`

// NewConfigInitCmd creates the config init command.
func NewConfigInitCmd() *cobra.Command {
	var force bool

	c := &cobra.Command{
		Use:   "init",
		Short: "Write the default configuration file",
		Long: `Write .filament-page.yaml with default values to the project root,
or to the path given by --config.

Examples:
  # Initialize configuration
  filament-page config init

  # Overwrite existing configuration
  filament-page config init --force`,
		Args: cobra.NoArgs,
		RunE: func(c *cobra.Command, _ []string) error {
			return runConfigInit(c, force)
		},
	}

	c.Flags().BoolVarP(&force, "force", "F", false, "Overwrite existing configuration")

	return c
}

func runConfigInit(c *cobra.Command, force bool) error {
	target := config.ResolveConfigPath(config.ResolveConfigPathOptions{
		FlagValue:  configFlag,
		ProjectDir: projectFlag,
	})
	path, err := config.ExpandPath(target.Value)
	if err != nil {
		return exitError(err)
	}

	if _, err := os.Stat(path); err == nil && !force {
		return exitError(oerrors.NewCollisionError([]string{path}))
	} else if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return exitError(fmt.Errorf("checking %s: %w", path, err))
	}

	var buf bytes.Buffer
	buf.WriteString(configHeader)
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(config.DefaultConfig()); err != nil {
		return exitError(fmt.Errorf("encoding config: %w", err))
	}
	if err := enc.Close(); err != nil {
		return exitError(fmt.Errorf("encoding config: %w", err))
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return exitError(fmt.Errorf("creating directory for %s: %w", path, err))
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return exitError(fmt.Errorf("writing %s: %w", path, err))
	}

	output.Debug("wrote config", "path", path, "source", target.Source)
	fmt.Fprintln(c.OutOrStdout(), output.FormatCheckmark("Configuration written to "+output.StyleNoun.Render(path)))
	return nil
}
