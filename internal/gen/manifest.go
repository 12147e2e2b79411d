package gen

import (
	"bytes"
	"errors"
	"fmt"
	"go/token"
	"os"
	"slices"
	"strings"

	"gopkg.in/yaml.v3"
)

// ErrInvalidManifest is wrapped by every validation failure.
var ErrInvalidManifest = errors.New("invalid manifest")

// DefaultImportPrefix is the module path used when a manifest sets none.
const DefaultImportPrefix = "hacspec"

// Widths lists the element widths, in bits, a manifest entry may use.
var Widths = []int{8, 16, 32, 64, 128}

// Manifest describes one generated file.
type Manifest struct {
	Package      string  `yaml:"package"`
	ImportPrefix string  `yaml:"import_prefix"`
	Arrays       []Entry `yaml:"arrays"`
}

// Entry is a single named array type. Width defaults to 8. Public entries
// hold plain integers instead of classified ones.
type Entry struct {
	Name   string `yaml:"name"`
	Length int    `yaml:"length"`
	Width  int    `yaml:"width"`
	Public bool   `yaml:"public"`
	Doc    string `yaml:"doc"`
}

// LoadManifest reads and parses the manifest at path.
func LoadManifest(path string) (*Manifest, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read manifest: %w", err)
	}
	m, err := ParseManifest(b)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return m, nil
}

// ParseManifest decodes YAML, fills defaults and validates the result.
// Unknown keys are rejected.
func ParseManifest(b []byte) (*Manifest, error) {
	dec := yaml.NewDecoder(bytes.NewReader(b))
	dec.KnownFields(true)

	var m Manifest
	if err := dec.Decode(&m); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidManifest, err)
	}
	m.applyDefaults()
	if err := m.Validate(); err != nil {
		return nil, err
	}
	return &m, nil
}

func (m *Manifest) applyDefaults() {
	if m.ImportPrefix == "" {
		m.ImportPrefix = DefaultImportPrefix
	}
	for i := range m.Arrays {
		if m.Arrays[i].Width == 0 {
			m.Arrays[i].Width = 8
		}
	}
}

// NeedsSecret reports whether the rendered file refers to package secret.
func (m *Manifest) NeedsSecret() bool {
	for _, e := range m.Arrays {
		if !e.Public || e.Width == 128 {
			return true
		}
	}
	return false
}

// Validate checks that the manifest renders to a compilable file.
func (m *Manifest) Validate() error {
	if !token.IsIdentifier(m.Package) {
		return fmt.Errorf("%w: package %q is not an identifier", ErrInvalidManifest, m.Package)
	}
	if m.ImportPrefix == "" || strings.ContainsAny(m.ImportPrefix, " \"\\") {
		return fmt.Errorf("%w: bad import_prefix %q", ErrInvalidManifest, m.ImportPrefix)
	}
	if len(m.Arrays) == 0 {
		return fmt.Errorf("%w: no arrays", ErrInvalidManifest)
	}

	seen := make(map[string]bool, len(m.Arrays))
	for i, e := range m.Arrays {
		if err := e.validate(); err != nil {
			return fmt.Errorf("%w: arrays[%d] (%s): %w", ErrInvalidManifest, i, e.Name, err)
		}
		if seen[e.Name] {
			return fmt.Errorf("%w: arrays[%d]: duplicate name %q", ErrInvalidManifest, i, e.Name)
		}
		seen[e.Name] = true
	}
	return nil
}

func (e Entry) validate() error {
	switch {
	case !token.IsIdentifier(e.Name) || !token.IsExported(e.Name):
		return fmt.Errorf("name %q is not an exported identifier", e.Name)
	case e.Length <= 0:
		return fmt.Errorf("length %d must be positive", e.Length)
	case !slices.Contains(Widths, e.Width):
		return fmt.Errorf("width %d not in %v", e.Width, Widths)
	case strings.ContainsAny(e.Doc, "\r\n"):
		return errors.New("doc must be a single line")
	}
	return nil
}
