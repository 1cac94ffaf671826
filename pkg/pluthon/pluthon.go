// Package pluthon is the programmatic embedding API: build a Program with
// internal/ast and internal/sugar, then call Compile to run the
// optimisation fixpoint and hand the result to a chosen back-end.
package pluthon

import (
	"github.com/OpShin/pluthon-go/internal/ast"
	"github.com/OpShin/pluthon-go/internal/backend"
	"github.com/OpShin/pluthon-go/internal/config"
	"github.com/OpShin/pluthon-go/internal/pipeline"
)

// Compile optimises prog per cfg and lowers it to the back-end's term
// vocabulary, then asks be to produce an Artifact from it.
func Compile(prog *ast.Program, cfg config.CompilationConfig, be backend.Backend) (*backend.Artifact, error) {
	lowered, err := pipeline.Lower(prog, cfg)
	if err != nil {
		return nil, err
	}
	return be.Compile(lowered, cfg)
}

// Optimise runs just the fixpoint optimisation loop, returning the
// stabilised Term tree without lowering or invoking a back-end. Useful for
// callers who want to inspect or dumps() the optimised tree themselves.
func Optimise(prog *ast.Program, cfg config.CompilationConfig) (*ast.Program, error) {
	return pipeline.Optimize(prog, cfg)
}
