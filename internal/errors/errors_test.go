//nolint:revive // Package name matches the package it tests
package errors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSentinelErrors(t *testing.T) {
	assert.NotEqual(t, ErrValidation, ErrCollision)
	assert.NotEqual(t, ErrValidation, ErrStub)
	assert.NotEqual(t, ErrCollision, ErrNotFound)
}

func TestDetailErrorError(t *testing.T) {
	detail := &DetailError{
		Type:     "file collision",
		Message:  "2 file(s) already exist, aborting",
		Location: "app/Filament/Pages",
		Paths:    []string{"app/Filament/Pages/Settings.php", "resources/views/filament/pages/settings.blade.php"},
		Context:  map[string]string{"Resource": "UserResource"},
		Hint:     "Use --force to overwrite existing files.",
	}

	output := detail.Error()

	assert.Contains(t, output, "Error: file collision")
	assert.Contains(t, output, "Location: app/Filament/Pages")
	assert.Contains(t, output, "Resource: UserResource")
	assert.Contains(t, output, "- app/Filament/Pages/Settings.php")
	assert.Contains(t, output, "- resources/views/filament/pages/settings.blade.php")
	assert.Contains(t, output, "Hint: Use --force")
}

func TestDetailErrorUnwrap(t *testing.T) {
	detail := &DetailError{Type: "test", Message: "test message", Cause: ErrValidation}

	assert.True(t, errors.Is(detail, ErrValidation))
	assert.Equal(t, ErrValidation, detail.Unwrap())
}

func TestNewValidationError(t *testing.T) {
	err := NewValidationError("name cannot be empty", "name", "Provide a page name such as Settings.")

	require.NotNil(t, err)
	assert.True(t, errors.Is(err, ErrValidation))
	assert.Contains(t, err.Error(), "Field: name")
}

func TestNewCollisionError(t *testing.T) {
	err := NewCollisionError([]string{"a.php", "b.blade.php"})

	assert.True(t, errors.Is(err, ErrCollision))
	assert.Contains(t, err.Error(), "2 file(s) already exist")
	assert.Contains(t, err.Error(), "- a.php")
	assert.Contains(t, err.Error(), "- b.blade.php")
}

func TestNewStubError(t *testing.T) {
	cause := fmt.Errorf("open Page.stub: file does not exist")
	err := NewStubError("Page", "app/Filament/Pages/Settings.php", cause)

	assert.True(t, errors.Is(err, ErrStub))
	assert.Contains(t, err.Error(), "stub Page")
}

func TestExitCodeFromError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"nil", nil, ExitSuccess},
		{"validation", NewValidationError("bad", "", ""), ExitValidationError},
		{"collision", NewCollisionError([]string{"x"}), ExitCollision},
		{"stub", NewStubError("Page", "", errors.New("boom")), ExitGeneralError},
		{"not found", NewNotFoundError("missing", "x", ""), ExitNotFound},
		{"wrapped validation", fmt.Errorf("config: %w", ErrValidation), ExitValidationError},
		{"explicit exit error", &ExitError{Code: 42, Err: errors.New("x")}, 42},
		{"unknown", errors.New("other"), ExitGeneralError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ExitCodeFromError(tt.err))
		})
	}
}

func TestExitCodeName(t *testing.T) {
	assert.Equal(t, "Collision", ExitCodeName(ExitCollision))
	assert.Equal(t, "Validation Error", ExitCodeName(ExitValidationError))
	assert.Equal(t, "Unknown", ExitCodeName(99))
}
