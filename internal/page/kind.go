package page

import (
	"fmt"
	"strings"

	"github.com/filament-tools/filament-page/internal/stubs"
)

// Kind is the type of page attached to a resource.
type Kind string

const (
	KindCustom Kind = "Page"
	KindList   Kind = "ListRecords"
	KindManage Kind = "ManageRecords"
	KindCreate Kind = "CreateRecord"
	KindEdit   Kind = "EditRecord"
	KindView   Kind = "ViewRecord"
)

// baseResourcePageNamespace holds the framework's resource page classes.
const baseResourcePageNamespace = `Filament\Resources\Pages`

type kindInfo struct {
	kind    Kind
	display string
	aliases []string
	stub    stubs.ID
}

// kinds lists the page kinds in prompt order. The first is the default.
var kinds = []kindInfo{
	{KindCustom, "Custom Page", []string{"custom", "page"}, stubs.CustomResourcePage},
	{KindList, "ListRecords", []string{"list"}, stubs.ResourcePage},
	{KindManage, "ManageRecords", []string{"manage"}, stubs.ResourcePage},
	{KindCreate, "CreateRecord", []string{"create"}, stubs.ResourcePage},
	{KindEdit, "EditRecord", []string{"edit"}, stubs.ResourcePage},
	{KindView, "ViewRecord", []string{"view"}, stubs.ResourcePage},
}

// KindChoices returns the display names offered when prompting.
func KindChoices() []string {
	out := make([]string, len(kinds))
	for i, k := range kinds {
		out[i] = k.display
	}
	return out
}

// ParseKind accepts a display name, base class name or alias,
// case-insensitively.
func ParseKind(s string) (Kind, error) {
	s = strings.TrimSpace(s)
	for _, k := range kinds {
		if strings.EqualFold(s, k.display) || strings.EqualFold(s, string(k.kind)) {
			return k.kind, nil
		}
		for _, alias := range k.aliases {
			if strings.EqualFold(s, alias) {
				return k.kind, nil
			}
		}
	}
	return "", fmt.Errorf("unknown page type %q", s)
}

func (k Kind) info() kindInfo {
	for _, info := range kinds {
		if info.kind == k {
			return info
		}
	}
	return kinds[0]
}

// Display returns the name shown in the prompt.
func (k Kind) Display() string {
	return k.info().display
}

// IsCustom reports whether the page has its own view.
func (k Kind) IsCustom() bool {
	return k == KindCustom
}

// BaseClass returns the fully qualified base class the page extends.
func (k Kind) BaseClass() string {
	return baseResourcePageNamespace + `\` + string(k)
}

// Stub returns the stub used to render a page of this kind.
func (k Kind) Stub() stubs.ID {
	return k.info().stub
}
