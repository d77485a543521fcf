package template

import (
	_ "embed"
)

//go:embed config.yaml
var DefaultConfig string

//go:embed gitignore
var DefaultGitignore string

// SpecgenDir is the name of the specgen data directory.
const SpecgenDir = ".specgen"

// File name constants for consistent usage across the codebase.
const (
	ConfigFile    = "config.yaml"
	DBFile        = "specs.db"
	LogFile       = "specgen.log"
	GitignoreFile = ".gitignore"
	EnvFile       = ".env" // Loaded from the project root, not .specgen/
)

// DefaultFiles returns the default files to create in .specgen/
func DefaultFiles() map[string]string {
	return map[string]string{
		ConfigFile:    DefaultConfig,
		GitignoreFile: DefaultGitignore,
	}
}
