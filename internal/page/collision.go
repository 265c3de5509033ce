package page

import (
	"errors"
	"io/fs"
	"os"
)

// CollisionChecker reports which candidate paths already exist.
type CollisionChecker interface {
	Existing(paths []string) []string
}

// FSChecker checks the local filesystem.
type FSChecker struct{}

// Existing implements CollisionChecker. Paths that cannot be inspected for
// reasons other than absence are reported as existing so they are never
// silently overwritten.
func (FSChecker) Existing(paths []string) []string {
	var existing []string
	for _, p := range paths {
		if _, err := os.Stat(p); err == nil || !errors.Is(err, fs.ErrNotExist) {
			existing = append(existing, p)
		}
	}
	return existing
}
