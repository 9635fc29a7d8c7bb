// Package config loads archivist settings from an optional .archivist.yaml
// file in the target directory.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Filename is the per-directory config file name.
const Filename = ".archivist.yaml"

// Config holds the effective settings for a run.
type Config struct {
	// Index is the root index filename. It is excluded from the scan and
	// is the file whose archive section gets rewritten.
	Index string

	// Heading is the marker heading that delimits the archive section.
	Heading string

	// UseTitles enables the frontmatter-title rule ahead of the filename
	// rules.
	UseTitles bool

	// Names is the special-case display-name table: exact filename to
	// predetermined label.
	Names map[string]string
}

// File is the on-disk structure of .archivist.yaml. Absent fields keep
// their defaults; the names table is merged over the default table.
type File struct {
	Index     string            `yaml:"index"`
	Heading   string            `yaml:"heading"`
	UseTitles bool              `yaml:"use_titles"`
	Names     map[string]string `yaml:"names"`
}

// Default returns the built-in settings, matching the reference behavior:
// README.md index, "## Archive" heading, and a single special-case name.
func Default() *Config {
	return &Config{
		Index:   "README.md",
		Heading: "## Archive",
		Names: map[string]string{
			"CLAUDE.local.md": "Claude.Local",
		},
	}
}

// Load reads .archivist.yaml from dir. A missing file is not an error; the
// defaults are returned.
func Load(dir string) (*Config, error) {
	path := filepath.Join(dir, Filename)
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return Default(), nil
	}
	return LoadFile(path)
}

// LoadFile reads a config file from an explicit path. Unlike Load, a
// missing file is an error.
func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	var file File
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}

	return file.ToConfig(), nil
}

// ToConfig applies the file's settings on top of the defaults.
func (f *File) ToConfig() *Config {
	config := Default()

	if f.Index != "" {
		config.Index = f.Index
	}
	if f.Heading != "" {
		config.Heading = f.Heading
	}
	config.UseTitles = f.UseTitles

	// User entries win over the built-in table on conflict.
	for name, display := range f.Names {
		config.Names[name] = display
	}

	return config
}

// ExampleConfigFile returns an example configuration file content.
func ExampleConfigFile() string {
	return `# archivist configuration

# Root index file whose archive section is regenerated
index: README.md

# Marker heading for the archive section
heading: "## Archive"

# Prefer frontmatter titles over filename-derived names
use_titles: false

# Special-case display names (exact filename -> label)
names:
  CLAUDE.local.md: Claude.Local
`
}
