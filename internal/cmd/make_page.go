package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/filament-tools/filament-page/internal/output"
	"github.com/filament-tools/filament-page/internal/page"
	"github.com/filament-tools/filament-page/internal/prompt"
)

// makePageFlags holds the make:page flags.
type makePageFlags struct {
	resource      string
	kind          string
	force         bool
	noInteraction bool
}

// NewMakePageCmd creates the make:page command.
func NewMakePageCmd() *cobra.Command {
	var flags makePageFlags

	c := &cobra.Command{
		Use:     "make:page [name]",
		Aliases: []string{"page"},
		Short:   "Create a Filament page class and view",
		Long: `Create a Filament page class and, where it has one, its Blade view.

Without --resource the page is standalone and lives in Filament/Pages.
With --resource it lives in the resource's Pages directory; custom
resource pages get a view, the built-in record pages do not.

Missing inputs are prompted for unless --no-interaction is set.

Page types:
  ` + strings.Join(page.KindChoices(), ", ") + `

Examples:
  # Standalone page with its view
  filament-page make:page Settings

  # Nested page
  filament-page make:page Admin/Reports

  # List page for UserResource, no prompts
  filament-page make:page Index --resource User --type ListRecords -n`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			return runMakePage(c, args, flags)
		},
	}

	c.Flags().StringVarP(&flags.resource, "resource", "R", "",
		"Resource the page belongs to (e.g. UserResource)")
	c.Flags().StringVarP(&flags.kind, "type", "t", "",
		"Resource page type (custom, ListRecords, ManageRecords, CreateRecord, EditRecord, ViewRecord)")
	c.Flags().BoolVarP(&flags.force, "force", "F", false,
		"Overwrite existing files")
	c.Flags().BoolVarP(&flags.noInteraction, "no-interaction", "n", false,
		"Never prompt; missing optional inputs use their defaults")

	return c
}

func runMakePage(c *cobra.Command, args []string, flags makePageFlags) error {
	loaded, err := requireConfig()
	if err != nil {
		return err
	}

	var p prompt.Prompter = prompt.NonInteractive{}
	if !flags.noInteraction {
		p = prompt.New(c.InOrStdin(), c.OutOrStdout())
	}

	opts := page.Options{
		Resource:    flags.resource,
		ResourceSet: c.Flags().Changed("resource") || flags.noInteraction,
		Kind:        flags.kind,
		Force:       flags.force,
	}
	if len(args) > 0 {
		opts.Name = args[0]
	}

	gen := page.NewGeneratorFromConfig(loaded, page.WithPrompter(p))
	result, err := gen.Generate(c.Context(), opts)
	if result != nil && len(result.Files) > 0 {
		printFiles(c.OutOrStdout(), loaded.ProjectDir, result.Files)
	}
	if err != nil {
		return exitError(err)
	}

	out := c.OutOrStdout()
	fmt.Fprintln(out, output.FormatCheckmark("Successfully created "+output.StyleNoun.Render(result.Page)+"!"))
	if reminder := result.Reminder(); reminder != "" {
		fmt.Fprintln(out, output.StyleDim.Render(reminder))
	}
	return nil
}

// printFiles renders the written files as a tree rooted at the project.
func printFiles(w io.Writer, projectDir string, files []page.File) {
	tree := make(map[string]string, len(files))
	for _, f := range files {
		tree[f.Path] = f.Status
	}
	fmt.Fprint(w, output.RenderFileTree(projectDir, tree))
}
