package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	oerrors "github.com/filament-tools/filament-page/internal/errors"
	"github.com/filament-tools/filament-page/internal/output"
)

// DotEnvFile is the Laravel environment file loaded from the project root.
const DotEnvFile = ".env"

// LoadOptions controls configuration loading.
type LoadOptions struct {
	// ProjectDir is the Laravel project root. Defaults to ".".
	ProjectDir string

	// ConfigFlag is the --config flag value.
	ConfigFlag string

	// SkipDotEnv disables loading <project>/.env.
	SkipDotEnv bool
}

// Loaded is the result of loading configuration.
type Loaded struct {
	// Config is the merged and validated configuration.
	Config *Config

	// ProjectDir is the project root used for relative paths.
	ProjectDir string

	// ConfigPath records which config file was used and why.
	ConfigPath ResolvedValue

	// ConfigFound reports whether the config file existed.
	ConfigFound bool

	// DotEnv is the .env file that was loaded, empty if none.
	DotEnv string

	// Values records the source of every config key.
	Values []ResolvedValue
}

// Loader handles loading and merging configuration from multiple sources.
type Loader struct {
	v *viper.Viper
}

// NewLoader creates a new configuration loader with defaults registered.
func NewLoader() *Loader {
	v := viper.New()

	defaults := DefaultConfig()
	for _, ke := range keyEnv {
		v.SetDefault(ke.key, defaults.Get(ke.key))
	}

	return &Loader{v: v}
}

// Load merges defaults, the config file, <project>/.env and environment
// variables, in increasing precedence, and validates the result.
func (l *Loader) Load(opts LoadOptions) (*Loaded, error) {
	projectDir := opts.ProjectDir
	if projectDir == "" {
		projectDir = "."
	}

	loaded := &Loaded{ProjectDir: projectDir}

	// .env never overrides variables that are already set.
	if !opts.SkipDotEnv {
		dotEnv, err := loadDotEnv(projectDir)
		if err != nil {
			return nil, err
		}
		loaded.DotEnv = dotEnv
	}

	loaded.ConfigPath = ResolveConfigPath(ResolveConfigPathOptions{
		FlagValue:  opts.ConfigFlag,
		ProjectDir: projectDir,
	})

	configFile, err := ExpandPath(loaded.ConfigPath.Value)
	if err != nil {
		return nil, fmt.Errorf("expanding config path: %w", err)
	}

	l.v.SetConfigFile(configFile)
	l.v.SetConfigType("yaml")

	if err := l.v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("reading config file %s: %w", configFile, err)
		}
		// A missing config file is fine; an explicitly requested one is not.
		if loaded.ConfigPath.Source != SourceDefault {
			return nil, oerrors.NewNotFoundError(
				"config file not found",
				configFile,
				"Run 'filament-page config init' to create it.",
			)
		}
		output.Debug("no config file", "path", configFile)
	} else {
		loaded.ConfigFound = true
	}

	// Captured before env binding so shadowed file values can be reported.
	fileValues := make(map[string]string)
	for _, ke := range keyEnv {
		if l.v.InConfig(ke.key) {
			fileValues[ke.key] = l.v.GetString(ke.key)
		}
	}

	for _, ke := range keyEnv {
		if err := l.v.BindEnv(ke.key, ke.env); err != nil {
			return nil, fmt.Errorf("binding %s to %s: %w", ke.key, ke.env, err)
		}
	}

	var cfg Config
	if err := l.v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}
	loaded.Config = &cfg

	defaults := DefaultConfig()
	for _, ke := range keyEnv {
		rv := ResolvedValue{
			Key:      ke.key,
			Value:    cfg.Get(ke.key),
			Source:   SourceDefault,
			Shadowed: make(map[ConfigSource]string),
		}
		fileValue, inFile := fileValues[ke.key]

		switch {
		case os.Getenv(ke.env) != "":
			rv.Source = SourceEnv
			if inFile {
				rv.Shadowed[SourceConfig] = fileValue
			}
			rv.Shadowed[SourceDefault] = defaults.Get(ke.key)
		case inFile:
			rv.Source = SourceConfig
			rv.Shadowed[SourceDefault] = defaults.Get(ke.key)
		}
		loaded.Values = append(loaded.Values, rv)
	}

	validator, err := NewValidator()
	if err != nil {
		return nil, err
	}
	if err := validator.Validate(&cfg); err != nil {
		return nil, err
	}

	return loaded, nil
}

// loadDotEnv loads <projectDir>/.env if present and returns its path.
func loadDotEnv(projectDir string) (string, error) {
	path := filepath.Join(projectDir, DotEnvFile)
	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", nil
		}
		return "", fmt.Errorf("checking %s: %w", path, err)
	}

	if err := godotenv.Load(path); err != nil {
		return "", fmt.Errorf("loading %s: %w", path, err)
	}

	output.Debug("loaded environment file", "path", path)
	return path, nil
}
