package project

import (
	"errors"
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"
)

// Manifest describes a project's rivet.toml.
type Manifest struct {
	// Package name; required.
	Name string
	// Snapshot is the default snapshot file consulted by CLI commands when
	// no path argument is given.
	Snapshot string
	// Dump holds rendering preferences for `rivet dump`.
	Dump DumpOptions
}

// DumpOptions configures snapshot rendering.
type DumpOptions struct {
	Color string `toml:"color"` // auto|on|off
	Limit int    `toml:"limit"` // max identifiers to print, 0 = all
}

var (
	// ErrPackageSectionMissing indicates that [package] is missing in a manifest.
	ErrPackageSectionMissing = errors.New("missing [package]")
	// ErrPackageNameMissing indicates that [package].name is missing.
	ErrPackageNameMissing = errors.New("missing [package].name")
)

type manifestFile struct {
	Package struct {
		Name     string `toml:"name"`
		Snapshot string `toml:"snapshot"`
	} `toml:"package"`
	Dump DumpOptions `toml:"dump"`
}

// Load parses a rivet.toml manifest.
func Load(path string) (Manifest, error) {
	var cfg manifestFile
	meta, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return Manifest{}, fmt.Errorf("%s: failed to parse TOML: %w", path, err)
	}
	if !meta.IsDefined("package") {
		return Manifest{}, fmt.Errorf("%s: %w", path, ErrPackageSectionMissing)
	}
	name := strings.TrimSpace(cfg.Package.Name)
	if !meta.IsDefined("package", "name") || name == "" {
		return Manifest{}, fmt.Errorf("%s: %w", path, ErrPackageNameMissing)
	}
	m := Manifest{
		Name:     name,
		Snapshot: strings.TrimSpace(cfg.Package.Snapshot),
		Dump:     cfg.Dump,
	}
	if m.Dump.Color == "" {
		m.Dump.Color = "auto"
	}
	return m, nil
}
