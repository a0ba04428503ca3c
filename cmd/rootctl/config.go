package main

import (
	"github.com/danmuck/rootctl/internal/config"
)

// loadProfile resolves the shell profile: built-in defaults when no path was
// given, otherwise the TOML file with defaults for absent keys.
func loadProfile(path string) (config.Profile, error) {
	if path == "" {
		return config.DefaultProfile(), nil
	}
	return config.LoadProfile(path)
}
