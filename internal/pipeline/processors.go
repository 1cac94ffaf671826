package pipeline

import (
	"github.com/OpShin/pluthon-go/internal/config"
	"github.com/OpShin/pluthon-go/internal/optimize"
)

// constantIndexProcessor wraps optimize.IndexAccessOptimizer as a Processor.
type constantIndexProcessor struct{}

func (constantIndexProcessor) Process(ctx *Context) *Context {
	return &Context{Program: optimize.IndexAccessOptimizer(ctx.Program)}
}

// patternProcessor wraps the pattern-sharing optimiser, picking the
// all-at-once or once-at-a-time replayer per cfg.IterativeUnfoldPatterns.
type patternProcessor struct {
	iterative bool
}

func (p patternProcessor) Process(ctx *Context) *Context {
	if p.iterative {
		return &Context{Program: optimize.OncePatternReplacer(ctx.Program)}
	}
	return &Context{Program: optimize.AllPatternReplacer(ctx.Program)}
}

// traceProcessor wraps optimize.RemoveTrace as a Processor.
type traceProcessor struct{}

func (traceProcessor) Process(ctx *Context) *Context {
	return &Context{Program: optimize.RemoveTrace(ctx.Program)}
}

// buildPipeline assembles the fixed pass order
// ([constant-index, pattern-optimiser, trace-remover]), including only the
// stages cfg enables.
func buildPipeline(cfg config.CompilationConfig) *Pipeline {
	var stages []Processor
	if cfg.ConstantIndexAccessListOr(false) {
		stages = append(stages, constantIndexProcessor{})
	}
	if cfg.CompressPatternsOr(false) {
		stages = append(stages, patternProcessor{iterative: cfg.IterativeUnfoldOr(false)})
	}
	if cfg.RemoveTraceOr(false) {
		stages = append(stages, traceProcessor{})
	}
	return New(stages...)
}
