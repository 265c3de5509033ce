package config

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolveConfigPath_FlagPrecedence(t *testing.T) {
	t.Setenv(EnvConfig, "/env/.filament-page.yaml")

	result := ResolveConfigPath(ResolveConfigPathOptions{
		FlagValue:  "/flag/.filament-page.yaml",
		ProjectDir: "/project",
	})

	assert.Equal(t, "/flag/.filament-page.yaml", result.Value)
	assert.Equal(t, SourceFlag, result.Source)
	assert.Equal(t, "/env/.filament-page.yaml", result.Shadowed[SourceEnv])
	assert.Equal(t, filepath.Join("/project", FileName), result.Shadowed[SourceDefault])
}

func TestResolveConfigPath_EnvPrecedence(t *testing.T) {
	t.Setenv(EnvConfig, "/env/.filament-page.yaml")

	result := ResolveConfigPath(ResolveConfigPathOptions{ProjectDir: "/project"})

	assert.Equal(t, "/env/.filament-page.yaml", result.Value)
	assert.Equal(t, SourceEnv, result.Source)
	assert.NotEmpty(t, result.Shadowed[SourceDefault])
}

func TestResolveConfigPath_Default(t *testing.T) {
	t.Setenv(EnvConfig, "")

	result := ResolveConfigPath(ResolveConfigPathOptions{ProjectDir: "/project"})

	assert.Equal(t, filepath.Join("/project", FileName), result.Value)
	assert.Equal(t, SourceDefault, result.Source)
	assert.Empty(t, result.Shadowed)
}

func TestProjectPath(t *testing.T) {
	assert.Equal(t, filepath.Join("/project", "resources", "views"), ProjectPath("/project", "resources/views"))
	assert.Equal(t, "/abs/app", ProjectPath("/project", "/abs/app"))
}

func TestExpandPath(t *testing.T) {
	got, err := ExpandPath("")
	assert.NoError(t, err)
	assert.Empty(t, got)

	got, err = ExpandPath("relative/path")
	assert.NoError(t, err)
	assert.Equal(t, "relative/path", got)

	got, err = ExpandPath("~/config.yaml")
	assert.NoError(t, err)
	assert.NotContains(t, got, "~")
}
