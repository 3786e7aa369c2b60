package config

import (
	"os"
	"path/filepath"
	"strings"
)

const (
	// envConfigFile overrides the config file location.
	envConfigFile = "APPSEED_CONFIG"

	homeDirName    = ".appseed"
	configFileName = "config.yaml"
)

// Paths locates appseed's config file under the user's home directory.
type Paths struct {
	// HomeDir holds appseed's files: ~/.appseed.
	HomeDir string

	// ConfigFile is read on every run and written by `config init`.
	ConfigFile string
}

// DefaultPaths resolves Paths for the current user.
func DefaultPaths() (*Paths, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return nil, err
	}

	dir := filepath.Join(home, homeDirName)
	return &Paths{
		HomeDir:    dir,
		ConfigFile: filepath.Join(dir, configFileName),
	}, nil
}

// GetConfigFile returns the config file to load when --config is not given.
// APPSEED_CONFIG wins over ~/.appseed/config.yaml.
func GetConfigFile() (string, error) {
	if p := os.Getenv(envConfigFile); p != "" {
		return p, nil
	}

	paths, err := DefaultPaths()
	if err != nil {
		return "", err
	}
	return paths.ConfigFile, nil
}

// ExpandPath replaces a leading ~ with the home directory.
// Other paths, including ~user forms, are returned unchanged.
func ExpandPath(path string) (string, error) {
	rest, ok := strings.CutPrefix(path, "~")
	if !ok {
		return path, nil
	}
	if rest != "" && rest[0] != '/' && rest[0] != filepath.Separator {
		return path, nil
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, rest), nil
}
