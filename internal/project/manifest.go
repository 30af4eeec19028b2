package project

import (
	"errors"
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"

	"ferro/internal/hygiene"
	"ferro/internal/source"
)

// Manifest is the decoded ferro.toml of a project.
//
//	[package]
//	name = "myproject"
//
//	[macros]
//	serde = 3        # $crate inside serde-expanded code resolves to crate 3
type Manifest struct {
	Name   string
	Macros map[string]hygiene.CrateID
}

// ErrPackageSectionMissing indicates that [package] is missing in a manifest.
var ErrPackageSectionMissing = errors.New("missing [package]")

type manifestFile struct {
	Package struct {
		Name string `toml:"name"`
	} `toml:"package"`
	Macros map[string]uint32 `toml:"macros"`
}

// LoadManifest parses a ferro.toml manifest.
func LoadManifest(path string) (Manifest, error) {
	var cfg manifestFile
	meta, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return Manifest{}, fmt.Errorf("%s: failed to parse TOML: %w", path, err)
	}
	if !meta.IsDefined("package") {
		return Manifest{}, fmt.Errorf("%s: %w", path, ErrPackageSectionMissing)
	}

	m := Manifest{Name: strings.TrimSpace(cfg.Package.Name)}
	if len(cfg.Macros) > 0 {
		m.Macros = make(map[string]hygiene.CrateID, len(cfg.Macros))
		for ident, crate := range cfg.Macros {
			m.Macros[ident] = hygiene.CrateID(crate)
		}
	}
	return m, nil
}

// Hygiene builds the hygiene table declared by the [macros] section, keyed
// on interned identifiers. An empty section yields plain source hygiene.
func (m Manifest) Hygiene(in *source.Interner) *hygiene.Hygiene {
	if len(m.Macros) == 0 {
		return hygiene.New()
	}
	defs := make(map[source.StringID]hygiene.CrateID, len(m.Macros))
	for ident, crate := range m.Macros {
		defs[in.Intern(ident)] = crate
	}
	return hygiene.NewForMacro(defs)
}
