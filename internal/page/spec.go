package page

import (
	"fmt"

	oerrors "github.com/filament-tools/filament-page/internal/errors"
	"github.com/filament-tools/filament-page/internal/naming"
)

// Spec is the page being generated, derived from the user-supplied name.
type Spec struct {
	// Name is the normalized name, e.g. `Admin\Reports`.
	Name string

	// ClassName is the last segment of Name.
	ClassName string

	// NamespaceSuffix is everything before ClassName, empty for top-level pages.
	NamespaceSuffix string
}

// ParseName normalizes raw and splits it into class name and namespace
// suffix. Empty names and invalid segments are validation errors.
func ParseName(raw string) (Spec, error) {
	name := naming.NormalizeName(raw)
	if name == "" {
		return Spec{}, oerrors.NewValidationError(
			"page name cannot be empty",
			"name",
			"Provide a page name such as Settings or Admin/Reports.",
		)
	}

	if seg, bad := naming.InvalidSegment(name); bad {
		return Spec{}, oerrors.NewValidationError(
			fmt.Sprintf("invalid page name %q: segment %q is not a valid class name", name, seg),
			"name",
			"Segments must start with a letter or underscore and contain only letters, digits and underscores.",
		)
	}

	class, suffix := naming.Split(name)
	return Spec{Name: name, ClassName: class, NamespaceSuffix: suffix}, nil
}

// Resource is the resource a page is attached to.
type Resource struct {
	// Name is the normalized reference, e.g. `Shop\ProductResource`.
	Name string

	// ClassName is the last segment of Name.
	ClassName string

	// Kind is the type of page to create.
	Kind Kind
}

// ParseResource normalizes raw. It returns nil when raw is empty after
// normalization, meaning no resource.
func ParseResource(raw string) (*Resource, error) {
	name := naming.NormalizeResource(raw)
	if name == "" {
		return nil, nil
	}

	if seg, bad := naming.InvalidSegment(name); bad {
		return nil, oerrors.NewValidationError(
			fmt.Sprintf("invalid resource %q: segment %q is not a valid class name", name, seg),
			"resource",
			"Use a resource class name such as UserResource.",
		)
	}

	class, _ := naming.Split(name)
	return &Resource{Name: name, ClassName: class, Kind: KindCustom}, nil
}
