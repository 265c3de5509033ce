// Package config provides configuration loading and management.
package config

// FileName is the project-level config file name.
const FileName = ".filament-page.yaml"

// Environment variable names.
const (
	EnvConfig    = "FILAMENT_PAGE_CONFIG"
	EnvAppPath   = "FILAMENT_PAGE_APP_PATH"
	EnvViewsPath = "FILAMENT_PAGE_VIEWS_PATH"
	EnvNamespace = "FILAMENT_PAGE_NAMESPACE"
	EnvStubsPath = "FILAMENT_PAGE_STUBS_PATH"
)

// Config keys.
const (
	KeyAppPath   = "appPath"
	KeyViewsPath = "viewsPath"
	KeyNamespace = "namespace"
	KeyStubsPath = "stubsPath"
)

// Config describes where generated files go inside a Laravel project.
// Paths are relative to the project directory.
type Config struct {
	// AppPath is the application source root.
	// Env: FILAMENT_PAGE_APP_PATH, Default: app
	AppPath string `mapstructure:"appPath" yaml:"appPath" json:"appPath"`

	// ViewsPath is the root of the Blade views.
	// Env: FILAMENT_PAGE_VIEWS_PATH, Default: resources/views
	ViewsPath string `mapstructure:"viewsPath" yaml:"viewsPath" json:"viewsPath"`

	// Namespace is the PHP namespace mapped to AppPath.
	// Env: FILAMENT_PAGE_NAMESPACE, Default: App
	Namespace string `mapstructure:"namespace" yaml:"namespace" json:"namespace"`

	// StubsPath holds published stubs that override the embedded ones.
	// Env: FILAMENT_PAGE_STUBS_PATH, Default: stubs/filament
	StubsPath string `mapstructure:"stubsPath" yaml:"stubsPath" json:"stubsPath"`
}

// DefaultConfig returns a Config with all default values populated.
// Used by `config init` to generate the initial config file.
func DefaultConfig() *Config {
	return &Config{
		AppPath:   "app",
		ViewsPath: "resources/views",
		Namespace: "App",
		StubsPath: "stubs/filament",
	}
}

// keyEnv pairs every config key with its environment variable.
var keyEnv = []struct {
	key string
	env string
}{
	{KeyAppPath, EnvAppPath},
	{KeyViewsPath, EnvViewsPath},
	{KeyNamespace, EnvNamespace},
	{KeyStubsPath, EnvStubsPath},
}

// Get returns the value for a config key.
func (c *Config) Get(key string) string {
	switch key {
	case KeyAppPath:
		return c.AppPath
	case KeyViewsPath:
		return c.ViewsPath
	case KeyNamespace:
		return c.Namespace
	case KeyStubsPath:
		return c.StubsPath
	default:
		return ""
	}
}
