package analyze

import (
	"optgen/internal/options"
)

// Config selects which annotations the analyzer reads.
type Config struct {
	// Tag is the struct-tag key holding field directives.
	Tag string
	// Prefix follows "//" on a doc comment line marking a container.
	Prefix string
}

// DefaultConfig returns the default annotation names.
func DefaultConfig() Config {
	return Config{
		Tag:    "opt",
		Prefix: "optgen:",
	}
}

// Package holds the containers found in one Go package.
type Package struct {
	Path string // import path
	Name string // package name
	Dir  string // directory of the package's files

	Containers []options.ContainerInput
}
