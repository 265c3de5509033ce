// Package stubs provides the embedded page stubs and renders them with
// token substitution.
package stubs

import (
	"embed"
	"fmt"
	"io/fs"
	"sort"
	"strings"
)

//go:embed files/*.stub
var stubFS embed.FS

// ID identifies a stub.
type ID string

const (
	// Page is the standalone page class.
	Page ID = "Page"

	// CustomResourcePage is a page attached to a resource with its own view.
	CustomResourcePage ID = "CustomResourcePage"

	// ResourcePage is a page extending one of the built-in resource pages.
	ResourcePage ID = "ResourcePage"

	// PageView is the Blade view for a page.
	PageView ID = "PageView"
)

// Extension is the file extension of stub files.
const Extension = ".stub"

// FileName returns the stub's file name.
func (id ID) FileName() string {
	return string(id) + Extension
}

// List returns the IDs of all embedded stubs, sorted.
func List() ([]ID, error) {
	entries, err := fs.ReadDir(stubFS, "files")
	if err != nil {
		return nil, fmt.Errorf("listing embedded stubs: %w", err)
	}

	ids := make([]ID, 0, len(entries))
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), Extension) {
			continue
		}
		ids = append(ids, ID(strings.TrimSuffix(e.Name(), Extension)))
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids, nil
}

// readEmbedded returns the raw content of an embedded stub.
func readEmbedded(id ID) ([]byte, error) {
	content, err := fs.ReadFile(stubFS, "files/"+id.FileName())
	if err != nil {
		return nil, fmt.Errorf("stub %s not found: %w", id, err)
	}
	return content, nil
}
