package page

import (
	"path"
	"strings"

	"github.com/filament-tools/filament-page/internal/naming"
	"github.com/filament-tools/filament-page/internal/stubs"
)

const (
	// SourceExtension is appended to page class files.
	SourceExtension = ".php"

	// ViewExtension is appended to view files.
	ViewExtension = ".blade.php"
)

// Layout locates the application inside the project. Paths use forward
// slashes and are relative to the project root.
type Layout struct {
	// AppPath is the application source root, e.g. "app".
	AppPath string

	// ViewsPath is the views root, e.g. "resources/views".
	ViewsPath string

	// Namespace is the PHP namespace of AppPath, e.g. "App".
	Namespace string
}

// DefaultLayout returns the layout of a stock Laravel application.
func DefaultLayout() Layout {
	return Layout{AppPath: "app", ViewsPath: "resources/views", Namespace: "App"}
}

// Target is everything needed to write a page.
type Target struct {
	// FilePath is the page class file, relative to the project.
	FilePath string

	// ViewPath is the view file, empty when no view is written.
	ViewPath string

	// ViewID is the dot-separated view identifier.
	ViewID string

	// Namespace is the namespace of the page class.
	Namespace string

	// Stub renders the page class.
	Stub stubs.ID

	// Tokens are substituted into Stub.
	Tokens stubs.Tokens
}

// Files returns every file the target writes.
func (t Target) Files() []string {
	files := []string{t.FilePath}
	if t.ViewPath != "" {
		files = append(files, t.ViewPath)
	}
	return files
}

// Plan derives paths, identifiers and stub tokens for spec. res is nil for
// a standalone page.
func Plan(layout Layout, spec Spec, res *Resource) Target {
	// Every path and identifier below comes from these same segments.
	var prefix []string
	if res == nil {
		prefix = []string{"Filament", "Pages"}
	} else {
		prefix = append([]string{"Filament", "Resources"}, naming.Segments(res.Name)...)
		prefix = append(prefix, "Pages")
	}
	segments := append(prefix, naming.Segments(spec.Name)...)

	viewSegments := make([]string, len(segments))
	for i, seg := range segments {
		viewSegments[i] = naming.Kebab(seg)
	}

	t := Target{
		FilePath:  path.Join(layout.AppPath, path.Join(segments...)+SourceExtension),
		ViewID:    strings.Join(viewSegments, "."),
		Namespace: joinNamespace(layout.Namespace, strings.Join(prefix, naming.NamespaceSeparator), spec.NamespaceSuffix),
	}

	if res == nil || res.Kind.IsCustom() {
		t.ViewPath = path.Join(layout.ViewsPath, path.Join(viewSegments...)+ViewExtension)
	}

	if res == nil {
		t.Stub = stubs.Page
		t.Tokens = stubs.Tokens{
			"class":     spec.ClassName,
			"namespace": t.Namespace,
			"view":      t.ViewID,
		}
		return t
	}

	t.Stub = res.Kind.Stub()
	t.Tokens = stubs.Tokens{
		"baseResourcePage":      res.Kind.BaseClass(),
		"baseResourcePageClass": string(res.Kind),
		"namespace":             t.Namespace,
		"resource":              res.Name,
		"resourceClass":         res.ClassName,
		"resourceNamespace":     joinNamespace(layout.Namespace, `Filament\Resources`),
		"resourcePageClass":     spec.ClassName,
		"view":                  t.ViewID,
	}
	return t
}

// joinNamespace joins the non-empty parts with the namespace separator.
func joinNamespace(parts ...string) string {
	nonEmpty := make([]string, 0, len(parts))
	for _, p := range parts {
		if p != "" {
			nonEmpty = append(nonEmpty, p)
		}
	}
	return strings.Join(nonEmpty, naming.NamespaceSeparator)
}
