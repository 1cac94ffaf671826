package pipeline

import (
	"github.com/OpShin/pluthon-go/internal/ast"
	"github.com/OpShin/pluthon-go/internal/backend"
	"github.com/OpShin/pluthon-go/internal/compileerr"
	"github.com/OpShin/pluthon-go/internal/config"
)

// maxFixpointIterations caps the driver loop; exceeding it surfaces as an
// internal compiler error rather than looping forever.
const maxFixpointIterations = 64

// Optimize runs the fixpoint loop: repeatedly apply the enabled passes, in
// the fixed order [constant-index, pattern-optimiser, trace-remover],
// re-serialising after each round, until the serialised form stops
// changing or the iteration cap is hit.
func Optimize(prog *ast.Program, cfg config.CompilationConfig) (out *ast.Program, err error) {
	defer func() {
		if r := recover(); r != nil {
			if ce, ok := r.(*compileerr.Error); ok {
				err = ce
				return
			}
			panic(r)
		}
	}()

	current := prog
	before := ast.Dumps(current.Body)

	for i := 0; i < maxFixpointIterations; i++ {
		current = runRound(current, cfg)
		after := ast.Dumps(current.Body)
		if after == before {
			return current, nil
		}
		before = after
	}

	return nil, compileerr.New(
		compileerr.FixpointDidNotConverge,
		"optimisation pipeline did not converge after %d iterations", maxFixpointIterations,
	)
}

func runRound(prog *ast.Program, cfg config.CompilationConfig) *ast.Program {
	out := buildPipeline(cfg).Run(&Context{Program: prog})
	return out.Program
}

// Lower stabilizes prog through Optimize and then lowers it to the backend's
// term vocabulary, ready to hand to a backend.Backend.
func Lower(prog *ast.Program, cfg config.CompilationConfig) (out *backend.Program, err error) {
	defer func() {
		if r := recover(); r != nil {
			if ce, ok := r.(*compileerr.Error); ok {
				err = ce
				return
			}
			panic(r)
		}
	}()

	stable, err := Optimize(prog, cfg)
	if err != nil {
		return nil, err
	}
	return &backend.Program{Version: stable.Version, Body: ast.Lower(stable.Body)}, nil
}
