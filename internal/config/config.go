// Package config loads token specs from a YAML document, so a complete
// grammar can live in a file instead of a sequence of AddToken calls.
package config

import (
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/lexgen-project/lexgen/internal/generator"
)

// ErrIO is the sentinel error kind for file-system and parse failures
// while loading a token-spec document.
var ErrIO = errors.New("io error")

// tokenSpecDoc mirrors the on-disk shape of a token-spec file: an
// ordered list, since list order is the priority order Generator
// expects.
type tokenSpecDoc struct {
	Tokens []struct {
		Name    string `yaml:"name"`
		Pattern string `yaml:"pattern"`
	} `yaml:"tokens"`
}

// Load reads a YAML token-spec file and returns its entries in file
// order, ready to hand to Generator.AddToken one at a time.
func Load(path string) ([]generator.TokenSpec, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(ErrIO, "reading %s: %v", path, err)
	}

	var doc tokenSpecDoc
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, errors.Wrapf(ErrIO, "parsing %s: %v", path, err)
	}

	specs := make([]generator.TokenSpec, 0, len(doc.Tokens))
	for _, t := range doc.Tokens {
		specs = append(specs, generator.TokenSpec{Name: t.Name, Pattern: t.Pattern})
	}
	return specs, nil
}
