package stubs

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"text/template"

	"github.com/filament-tools/filament-page/internal/output"
)

// Tokens maps placeholder names to their values.
type Tokens map[string]string

// Renderer renders stubs. Published stubs in OverrideDir take precedence
// over the embedded ones.
type Renderer struct {
	// OverrideDir holds published stubs (e.g. <project>/stubs/filament).
	// Empty disables the lookup.
	OverrideDir string
}

// NewRenderer creates a renderer that checks overrideDir before falling back
// to the embedded stubs.
func NewRenderer(overrideDir string) *Renderer {
	return &Renderer{OverrideDir: overrideDir}
}

// Source returns the raw stub content and where it was loaded from.
func (r *Renderer) Source(id ID) ([]byte, string, error) {
	if r.OverrideDir != "" {
		path := filepath.Join(r.OverrideDir, id.FileName())
		content, err := os.ReadFile(path)
		if err == nil {
			return content, path, nil
		}
		if !errors.Is(err, fs.ErrNotExist) {
			return nil, "", fmt.Errorf("reading published stub %s: %w", path, err)
		}
	}

	content, err := readEmbedded(id)
	if err != nil {
		return nil, "", err
	}
	return content, "embedded:" + id.FileName(), nil
}

// Render renders the stub with the given tokens. A placeholder without a
// matching token is an error.
func (r *Renderer) Render(id ID, tokens Tokens) ([]byte, error) {
	content, source, err := r.Source(id)
	if err != nil {
		return nil, err
	}

	output.Debug("rendering stub", "stub", id, "source", source)

	tmpl, err := template.New(id.FileName()).Option("missingkey=error").Parse(string(content))
	if err != nil {
		return nil, fmt.Errorf("parsing stub %s: %w", source, err)
	}

	if tokens == nil {
		tokens = Tokens{}
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, map[string]string(tokens)); err != nil {
		return nil, fmt.Errorf("executing stub %s: %w", source, err)
	}

	return buf.Bytes(), nil
}
