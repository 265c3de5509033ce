package cmd

import (
	"errors"

	oerrors "github.com/filament-tools/filament-page/internal/errors"
)

// exitError attaches the exit code derived from err. Errors that already
// carry a code are returned unchanged.
func exitError(err error) error {
	if err == nil {
		return nil
	}
	var exitErr *oerrors.ExitError
	if errors.As(err, &exitErr) {
		return err
	}
	return oerrors.NewExitError(err)
}
