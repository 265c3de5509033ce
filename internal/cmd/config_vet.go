package cmd

import (
	"fmt"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/filament-tools/filament-page/internal/config"
	oerrors "github.com/filament-tools/filament-page/internal/errors"
	"github.com/filament-tools/filament-page/internal/output"
	"github.com/filament-tools/filament-page/internal/stubs"
)

// NewConfigVetCmd creates the config vet command.
func NewConfigVetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "vet",
		Short: "Validate configuration",
		Long: `Load the configuration, validate it against the embedded schema and
show where every value and stub came from.

Examples:
  filament-page config vet
  filament-page config vet --config ./ci/.filament-page.yaml`,
		Args: cobra.NoArgs,
		RunE: runConfigVet,
	}
}

func runConfigVet(c *cobra.Command, _ []string) error {
	loaded, err := requireConfig()
	if err != nil {
		return err
	}

	out := c.OutOrStdout()

	file := loaded.ConfigPath.Value
	if !loaded.ConfigFound {
		file += " (not found, using defaults)"
	}
	fmt.Fprintf(out, "Config: %s\n", file)
	if loaded.DotEnv != "" {
		fmt.Fprintf(out, "Env file: %s\n", loaded.DotEnv)
	}

	tbl := output.NewTable("KEY", "VALUE", "SOURCE", "SHADOWED")
	for _, v := range loaded.Values {
		tbl.Row(v.Key, v.Value, string(v.Source), formatShadowed(v.Shadowed))
	}
	fmt.Fprintln(out, tbl.String())

	stubTbl, err := stubSources(config.ProjectPath(loaded.ProjectDir, loaded.Config.StubsPath))
	if err != nil {
		return exitError(err)
	}
	fmt.Fprintln(out, stubTbl.String())

	fmt.Fprintln(out, output.FormatCheckmark("Configuration is valid"))
	return nil
}

// stubSources lists every stub and whether a published copy overrides it.
func stubSources(overrideDir string) (*output.Table, error) {
	ids, err := stubs.List()
	if err != nil {
		return nil, err
	}

	renderer := stubs.NewRenderer(overrideDir)
	tbl := output.NewTable("STUB", "SOURCE")
	for _, id := range ids {
		_, source, err := renderer.Source(id)
		if err != nil {
			return nil, oerrors.NewStubError(string(id), overrideDir, err)
		}
		tbl.Row(string(id), source)
	}
	return tbl, nil
}

func formatShadowed(shadowed map[config.ConfigSource]string) string {
	parts := make([]string, 0, len(shadowed))
	for source, value := range shadowed {
		parts = append(parts, fmt.Sprintf("%s=%s", source, value))
	}
	sort.Strings(parts)
	return strings.Join(parts, ", ")
}
