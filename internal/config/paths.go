package config

import (
	"os"
	"path/filepath"
)

// DefaultConfigFile returns the config file path inside projectDir.
func DefaultConfigFile(projectDir string) string {
	return filepath.Join(projectDir, FileName)
}

// ProjectPath joins a config-relative path onto projectDir. Absolute paths
// are returned unchanged.
func ProjectPath(projectDir, rel string) string {
	if filepath.IsAbs(rel) {
		return rel
	}
	return filepath.Join(projectDir, filepath.FromSlash(rel))
}

// ExpandPath expands ~ to the user's home directory.
func ExpandPath(path string) (string, error) {
	if len(path) == 0 || path[0] != '~' {
		return path, nil
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}

	if len(path) == 1 {
		return homeDir, nil
	}

	// Handle ~/path/to/something
	if path[1] == '/' || path[1] == filepath.Separator {
		return filepath.Join(homeDir, path[2:]), nil
	}

	// ~username is not supported
	return path, nil
}
