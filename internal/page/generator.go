// Package page scaffolds Filament page classes and their views.
package page

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/filament-tools/filament-page/internal/config"
	oerrors "github.com/filament-tools/filament-page/internal/errors"
	"github.com/filament-tools/filament-page/internal/output"
	"github.com/filament-tools/filament-page/internal/prompt"
	"github.com/filament-tools/filament-page/internal/stubs"
)

// Prompt texts.
const (
	QuestionName     = "Name (e.g. `Settings`)"
	QuestionResource = "(Optional) Resource (e.g. `UserResource`)"
	QuestionKind     = "Which page type would you like to create?"
)

// StubRenderer renders a stub with tokens.
type StubRenderer interface {
	Render(id stubs.ID, tokens stubs.Tokens) ([]byte, error)
}

// Options are the inputs of a single generation.
type Options struct {
	// Name is the page name. Prompted when empty.
	Name string

	// Resource is the resource reference. Prompted when ResourceSet is false.
	Resource string

	// ResourceSet reports whether Resource was given on the command line.
	// An explicitly empty value means no resource.
	ResourceSet bool

	// Kind is the resource page kind. Prompted when empty.
	Kind string

	// Force overwrites existing files instead of failing.
	Force bool
}

// File is a written file.
type File struct {
	// Path is relative to the project.
	Path string

	// Status is output.StatusCreated or output.StatusOverwritten.
	Status string
}

// Result describes a completed generation.
type Result struct {
	// Page is the normalized page name.
	Page string

	// Resource is the resource the page belongs to, nil for standalone pages.
	Resource *Resource

	// Target is the computed target.
	Target Target

	// Files lists the written files in write order.
	Files []File
}

// Reminder returns the follow-up instruction for resource pages, or "".
func (r *Result) Reminder() string {
	if r.Resource == nil {
		return ""
	}
	return fmt.Sprintf("Make sure to register the page in `%s::getPages()`.", r.Resource.ClassName)
}

// Generator scaffolds pages inside one project.
type Generator struct {
	projectDir string
	layout     Layout
	prompter   prompt.Prompter
	renderer   StubRenderer
	checker    CollisionChecker
}

// Option configures a Generator.
type Option func(*Generator)

// WithPrompter sets the prompter used for missing inputs.
func WithPrompter(p prompt.Prompter) Option {
	return func(g *Generator) { g.prompter = p }
}

// WithRenderer sets the stub renderer.
func WithRenderer(r StubRenderer) Option {
	return func(g *Generator) { g.renderer = r }
}

// WithCollisionChecker sets the collision checker.
func WithCollisionChecker(c CollisionChecker) Option {
	return func(g *Generator) { g.checker = c }
}

// NewGenerator creates a generator for projectDir. By default it never
// prompts, renders embedded stubs and checks the local filesystem.
func NewGenerator(projectDir string, layout Layout, opts ...Option) *Generator {
	g := &Generator{
		projectDir: projectDir,
		layout:     layout,
		prompter:   prompt.NonInteractive{},
		renderer:   stubs.NewRenderer(""),
		checker:    FSChecker{},
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// NewGeneratorFromConfig creates a generator using the loaded configuration.
// Published stubs under the configured stubs path override embedded ones.
func NewGeneratorFromConfig(loaded *config.Loaded, opts ...Option) *Generator {
	cfg := loaded.Config
	layout := Layout{
		AppPath:   filepath.ToSlash(cfg.AppPath),
		ViewsPath: filepath.ToSlash(cfg.ViewsPath),
		Namespace: cfg.Namespace,
	}
	renderer := stubs.NewRenderer(config.ProjectPath(loaded.ProjectDir, cfg.StubsPath))
	return NewGenerator(loaded.ProjectDir, layout, append([]Option{WithRenderer(renderer)}, opts...)...)
}

// Resolve collects missing inputs and computes the target. It never
// touches the filesystem.
func (g *Generator) Resolve(opts Options) (Spec, *Resource, error) {
	rawName := opts.Name
	if rawName == "" {
		answer, err := g.prompter.AskRequired(QuestionName)
		if err != nil {
			return Spec{}, nil, oerrors.NewValidationError(
				fmt.Sprintf("page name is required: %v", err),
				"name",
				"Pass the page name as an argument, e.g. make:page Settings.",
			)
		}
		rawName = answer
	}

	spec, err := ParseName(rawName)
	if err != nil {
		return Spec{}, nil, err
	}

	rawResource := opts.Resource
	if !opts.ResourceSet {
		answer, err := g.prompter.Ask(QuestionResource)
		if err != nil {
			return Spec{}, nil, fmt.Errorf("reading resource: %w", err)
		}
		rawResource = answer
	}

	res, err := ParseResource(rawResource)
	if err != nil {
		return Spec{}, nil, err
	}
	if res == nil {
		if opts.Kind != "" {
			output.Warn("page type ignored without a resource", "type", opts.Kind)
		}
		return spec, nil, nil
	}

	if opts.Kind != "" {
		kind, err := ParseKind(opts.Kind)
		if err != nil {
			return Spec{}, nil, oerrors.NewValidationError(
				err.Error(),
				"type",
				fmt.Sprintf("Valid page types: %v", KindChoices()),
			)
		}
		res.Kind = kind
	} else {
		answer, err := g.prompter.Choice(QuestionKind, KindChoices(), 0)
		if err != nil {
			return Spec{}, nil, fmt.Errorf("reading page type: %w", err)
		}
		kind, err := ParseKind(answer)
		if err != nil {
			return Spec{}, nil, oerrors.NewValidationError(err.Error(), "type", "")
		}
		res.Kind = kind
	}

	return spec, res, nil
}

// Generate resolves inputs, checks for collisions and writes the page and
// its view. Nothing is written when a collision is found or a stub fails
// to render. A failed write leaves earlier files in place.
func (g *Generator) Generate(ctx context.Context, opts Options) (*Result, error) {
	spec, res, err := g.Resolve(opts)
	if err != nil {
		return nil, err
	}

	target := Plan(g.layout, spec, res)
	output.Debug("planned page",
		"name", spec.Name,
		"file", target.FilePath,
		"view", target.ViewID,
		"stub", target.Stub,
	)

	files := target.Files()
	existing := g.existing(files)
	if len(existing) > 0 && !opts.Force {
		return nil, oerrors.NewCollisionError(existing)
	}

	type pending struct {
		rel     string
		content []byte
	}

	pageContent, err := g.renderer.Render(target.Stub, target.Tokens)
	if err != nil {
		return nil, oerrors.NewStubError(string(target.Stub), target.FilePath, err)
	}
	writes := []pending{{target.FilePath, pageContent}}

	if target.ViewPath != "" {
		viewContent, err := g.renderer.Render(stubs.PageView, nil)
		if err != nil {
			return nil, oerrors.NewStubError(string(stubs.PageView), target.ViewPath, err)
		}
		writes = append(writes, pending{target.ViewPath, viewContent})
	}

	overwritten := make(map[string]bool, len(existing))
	for _, p := range existing {
		overwritten[p] = true
	}

	result := &Result{Page: spec.Name, Resource: res, Target: target}

	err = output.RunWithSpinner(ctx, func() error {
		for _, w := range writes {
			if err := g.write(w.rel, w.content); err != nil {
				return err
			}
			status := output.StatusCreated
			if overwritten[w.rel] {
				status = output.StatusOverwritten
			}
			result.Files = append(result.Files, File{Path: w.rel, Status: status})
		}
		return nil
	}, output.WithTitle("Writing "+spec.Name))
	if err != nil {
		return result, err
	}

	return result, nil
}

// existing returns the project-relative paths that already exist.
func (g *Generator) existing(rel []string) []string {
	abs := make([]string, len(rel))
	byAbs := make(map[string]string, len(rel))
	for i, r := range rel {
		abs[i] = g.abs(r)
		byAbs[abs[i]] = r
	}

	var out []string
	for _, p := range g.checker.Existing(abs) {
		out = append(out, byAbs[p])
	}
	return out
}

func (g *Generator) abs(rel string) string {
	return config.ProjectPath(g.projectDir, rel)
}

// write creates parent directories and writes content to the
// project-relative path rel.
func (g *Generator) write(rel string, content []byte) error {
	target := g.abs(rel)
	if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
		return oerrors.NewStubError("write", rel, fmt.Errorf("creating directory: %w", err))
	}
	if err := os.WriteFile(target, content, 0o644); err != nil {
		return oerrors.NewStubError("write", rel, err)
	}
	output.Debug("created file", "path", rel)
	return nil
}
