package cmd

import (
	"bytes"
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/filament-tools/filament-page/internal/config"
	oerrors "github.com/filament-tools/filament-page/internal/errors"
	"github.com/filament-tools/filament-page/internal/testutil"
)

// runCLI executes the root command against project with stdin as input.
func runCLI(t *testing.T, project, stdin string, args ...string) (string, error) {
	t.Helper()
	root := NewRootCmd()
	var out, errOut bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&errOut)
	root.SetIn(strings.NewReader(stdin))
	root.SetArgs(append([]string{"--project", project}, args...))

	err := root.Execute()
	return out.String(), err
}

// newProject returns an empty project root isolated from FILAMENT_PAGE_* env.
func newProject(t *testing.T) string {
	t.Helper()
	return testutil.Project(t, config.EnvConfig, config.EnvAppPath, config.EnvViewsPath, config.EnvNamespace, config.EnvStubsPath)
}

func exitCode(t *testing.T, err error) int {
	t.Helper()
	var exitErr *oerrors.ExitError
	require.True(t, errors.As(err, &exitErr), "expected ExitError, got %T", err)
	return exitErr.Code
}

func TestNewMakePageCmd(t *testing.T) {
	c := NewMakePageCmd()

	assert.Equal(t, "make:page [name]", c.Use)
	assert.Contains(t, c.Aliases, "page")
	assert.NotEmpty(t, c.Short)

	for _, name := range []string{"resource", "type", "force", "no-interaction"} {
		assert.NotNil(t, c.Flags().Lookup(name), name)
	}
	assert.Equal(t, "R", c.Flags().Lookup("resource").Shorthand)
	assert.Equal(t, "F", c.Flags().Lookup("force").Shorthand)
}

func TestMakePage_Standalone(t *testing.T) {
	dir := newProject(t)

	out, err := runCLI(t, dir, "", "make:page", "Settings", "-n")
	require.NoError(t, err)

	assert.FileExists(t, filepath.Join(dir, "app", "Filament", "Pages", "Settings.php"))
	assert.FileExists(t, filepath.Join(dir, "resources", "views", "filament", "pages", "settings.blade.php"))
	assert.Contains(t, out, "Successfully created")
	assert.Contains(t, out, "Settings")
	assert.NotContains(t, out, "getPages()")
}

func TestMakePage_ResourcePage(t *testing.T) {
	dir := newProject(t)

	out, err := runCLI(t, dir, "", "make:page", "Index", "--resource", "User", "--type", "ListRecords")
	require.NoError(t, err)

	assert.FileExists(t, filepath.Join(dir, "app", "Filament", "Resources", "UserResource", "Pages", "Index.php"))
	assert.NoDirExists(t, filepath.Join(dir, "resources", "views"))
	assert.Contains(t, out, "Make sure to register the page in `UserResource::getPages()`.")
}

func TestMakePage_PipedAnswers(t *testing.T) {
	dir := newProject(t)

	// name, resource, page type (by index)
	out, err := runCLI(t, dir, "Admin/Stats\nPost\n4\n", "make:page")
	require.NoError(t, err)

	content := testutil.ReadFile(t, dir, "app/Filament/Resources/PostResource/Pages/Admin/Stats.php")
	assert.Contains(t, content, "class Stats extends EditRecord")
	assert.Contains(t, out, "Which page type would you like to create?")
}

func TestMakePage_EmptyResourceFlagSkipsPrompt(t *testing.T) {
	dir := newProject(t)

	out, err := runCLI(t, dir, "", "make:page", "Settings", "--resource", "")
	require.NoError(t, err)

	assert.NotContains(t, out, "(Optional) Resource")
	assert.FileExists(t, filepath.Join(dir, "app", "Filament", "Pages", "Settings.php"))
}

func TestMakePage_MissingNameNonInteractive(t *testing.T) {
	dir := newProject(t)

	_, err := runCLI(t, dir, "", "make:page", "-n")
	require.Error(t, err)
	assert.Equal(t, oerrors.ExitValidationError, exitCode(t, err))

	assert.Empty(t, testutil.Files(t, dir))
}

func TestMakePage_InvalidType(t *testing.T) {
	dir := newProject(t)

	_, err := runCLI(t, dir, "", "make:page", "Index", "-R", "User", "-t", "Dashboard")
	require.Error(t, err)
	assert.Equal(t, oerrors.ExitValidationError, exitCode(t, err))
	assert.Contains(t, err.Error(), "unknown page type")
}

func TestMakePage_CollisionAndForce(t *testing.T) {
	dir := newProject(t)
	testutil.WriteFile(t, dir, "app/Filament/Pages/Settings.php", "original")

	_, err := runCLI(t, dir, "", "make:page", "Settings", "-n")
	require.Error(t, err)
	assert.Equal(t, oerrors.ExitCollision, exitCode(t, err))
	assert.Contains(t, err.Error(), "app/Filament/Pages/Settings.php")
	assert.NoDirExists(t, filepath.Join(dir, "resources"))

	assert.Equal(t, "original", testutil.ReadFile(t, dir, "app/Filament/Pages/Settings.php"))

	out, err := runCLI(t, dir, "", "make:page", "Settings", "-n", "--force")
	require.NoError(t, err)
	assert.Contains(t, out, "overwritten")

	assert.Contains(t, testutil.ReadFile(t, dir, "app/Filament/Pages/Settings.php"), "class Settings extends Page")
}

func TestMakePage_UsesProjectConfig(t *testing.T) {
	dir := newProject(t)
	cfg := "appPath: src\nviewsPath: templates\nnamespace: Acme\n"
	testutil.WriteFile(t, dir, config.FileName, cfg)

	_, err := runCLI(t, dir, "", "make:page", "Settings", "-n")
	require.NoError(t, err)

	assert.Contains(t, testutil.ReadFile(t, dir, "src/Filament/Pages/Settings.php"), `namespace Acme\Filament\Pages;`)
	assert.FileExists(t, filepath.Join(dir, "templates", "filament", "pages", "settings.blade.php"))
}

func TestMakePage_InvalidConfig(t *testing.T) {
	dir := newProject(t)
	testutil.WriteFile(t, dir, config.FileName, "namespace: Acme/Admin\n")

	_, err := runCLI(t, dir, "", "make:page", "Settings", "-n")
	require.Error(t, err)
	assert.Equal(t, oerrors.ExitValidationError, exitCode(t, err))
}

func TestConfigInit(t *testing.T) {
	dir := newProject(t)

	out, err := runCLI(t, dir, "", "config", "init")
	require.NoError(t, err)
	assert.Contains(t, out, "Configuration written")

	content := testutil.ReadFile(t, dir, config.FileName)
	assert.Contains(t, content, "appPath: app")
	assert.Contains(t, content, "viewsPath: resources/views")
	assert.Contains(t, content, "namespace: App")

	_, err = runCLI(t, dir, "", "config", "init")
	require.Error(t, err)
	assert.Equal(t, oerrors.ExitCollision, exitCode(t, err))

	_, err = runCLI(t, dir, "", "config", "init", "--force")
	require.NoError(t, err)
}

func TestConfigInit_CreatesParentDirectory(t *testing.T) {
	dir := newProject(t)
	target := filepath.Join(dir, "ci", "nested", config.FileName)

	_, err := runCLI(t, dir, "", "--config", target, "config", "init")
	require.NoError(t, err)

	assert.Contains(t, testutil.ReadFile(t, dir, "ci/nested/"+config.FileName), "namespace: App")
}

func TestConfigVet(t *testing.T) {
	dir := newProject(t)
	testutil.WriteFile(t, dir, config.FileName, "appPath: src\n")

	out, err := runCLI(t, dir, "", "config", "vet")
	require.NoError(t, err)

	assert.Contains(t, out, "appPath")
	assert.Contains(t, out, "src")
	assert.Contains(t, out, "config")
	assert.Contains(t, out, "default=app")
	assert.Contains(t, out, "embedded:Page.stub")
	assert.Contains(t, out, "Configuration is valid")
}

func TestConfigVet_PublishedStub(t *testing.T) {
	dir := newProject(t)
	testutil.WriteFile(t, dir, "stubs/filament/PageView.stub", "<div></div>")

	out, err := runCLI(t, dir, "", "config", "vet")
	require.NoError(t, err)

	assert.Contains(t, out, "PageView.stub")
	assert.NotContains(t, out, "embedded:PageView.stub")
	assert.Contains(t, out, "embedded:CustomResourcePage.stub")
}

func TestVersionCmd(t *testing.T) {
	out, err := runCLI(t, newProject(t), "", "version")
	require.NoError(t, err)
	assert.Contains(t, out, "filament-page")
}
