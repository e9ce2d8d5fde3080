package merge

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Source is one labeled input of a merge.
type Source struct {
	Path      string `yaml:"path"`
	Memorable int    `yaml:"memorable"`
}

// Manifest lists the inputs of a merge and where the result goes.
type Manifest struct {
	Output  string   `yaml:"output"`
	Sources []Source `yaml:"sources"`
}

// DefaultManifest is the layout of the augmented datasets directory: four
// memorable variants and the non-memorable texts.
func DefaultManifest(dir string) Manifest {
	return Manifest{
		Output: filepath.Join(dir, "merged_dataset.csv"),
		Sources: []Source{
			{Path: filepath.Join(dir, "memorable_concreteness.csv"), Memorable: 1},
			{Path: filepath.Join(dir, "memorable_emotional.csv"), Memorable: 1},
			{Path: filepath.Join(dir, "memorable_imagery.csv"), Memorable: 1},
			{Path: filepath.Join(dir, "memorable_valence.csv"), Memorable: 1},
			{Path: filepath.Join(dir, "non_memorable_texts.csv"), Memorable: 0},
		},
	}
}

// LoadManifest reads a YAML manifest. Relative paths are resolved against
// the manifest's directory.
func LoadManifest(path string) (Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Manifest{}, fmt.Errorf("read manifest: %w", err)
	}

	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return Manifest{}, fmt.Errorf("parse manifest %s: %w", path, err)
	}

	if err := m.Validate(); err != nil {
		return Manifest{}, fmt.Errorf("manifest %s: %w", path, err)
	}

	base := filepath.Dir(path)
	m.Output = resolve(base, m.Output)
	for i := range m.Sources {
		m.Sources[i].Path = resolve(base, m.Sources[i].Path)
	}

	return m, nil
}

// Validate checks that the manifest names an output and at least one source
// with a 0/1 label.
func (m Manifest) Validate() error {
	if m.Output == "" {
		return fmt.Errorf("output is required")
	}
	if len(m.Sources) == 0 {
		return fmt.Errorf("at least one source is required")
	}
	for i, s := range m.Sources {
		if s.Path == "" {
			return fmt.Errorf("source %d: path is required", i+1)
		}
		if s.Memorable != 0 && s.Memorable != 1 {
			return fmt.Errorf("source %d: memorable must be 0 or 1, got %d", i+1, s.Memorable)
		}
	}
	return nil
}

func resolve(base, path string) string {
	if path == "" || filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(base, path)
}
