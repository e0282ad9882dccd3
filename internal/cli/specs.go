package cli

import (
	"github.com/lexgen-project/lexgen/internal/config"
	"github.com/lexgen-project/lexgen/internal/generator"
)

// loadSpecs resolves the token specs for a command: a YAML file if
// specPath is non-empty, otherwise the built-in standard catalogue.
func loadSpecs(specPath string) ([]generator.TokenSpec, error) {
	if specPath == "" {
		return config.Standard(), nil
	}
	return config.Load(specPath)
}

// buildGenerator loads specs and builds a Generator from them in one
// step, the shape every subcommand that needs a compiled DFA wants.
func buildGenerator(specPath string) (*generator.Generator, error) {
	specs, err := loadSpecs(specPath)
	if err != nil {
		return nil, err
	}

	g := generator.New()
	for _, spec := range specs {
		g.AddToken(spec.Name, spec.Pattern)
	}
	if err := g.Build(); err != nil {
		return nil, err
	}
	return g, nil
}
