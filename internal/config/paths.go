// ABOUTME: Standard filesystem paths for tui-dropdown configuration
// ABOUTME: Global files live under the user config dir; project files are dotfiles in the cwd

package config

import (
	"os"
	"path/filepath"
)

const (
	appDirName      = "tui-dropdown"
	globalBaseName  = "dropdown"
	projectBaseName = ".dropdown"
)

var configExts = []string{".yaml", ".yml", ".toml"}

// GlobalDir returns the user-global config directory.
func GlobalDir() string {
	if dir, err := os.UserConfigDir(); err == nil {
		return filepath.Join(dir, appDirName)
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", "."+appDirName)
	}
	return filepath.Join(home, ".config", appDirName)
}

// GlobalConfigFiles returns the candidate global config files in lookup order.
func GlobalConfigFiles() []string {
	return withExts(filepath.Join(GlobalDir(), globalBaseName))
}

// ProjectConfigFiles returns the candidate project config files in lookup order.
func ProjectConfigFiles(projectRoot string) []string {
	return withExts(filepath.Join(projectRoot, projectBaseName))
}

func withExts(base string) []string {
	out := make([]string, len(configExts))
	for i, ext := range configExts {
		out[i] = base + ext
	}
	return out
}
