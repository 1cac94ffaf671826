// Package pipeline runs the fixpoint optimisation loop: repeatedly apply
// the enabled passes until the tree's serialised form stops changing, then
// lower to the backend term vocabulary.
package pipeline

// Processor is one stage of a Pipeline; Process takes a context and
// returns the (possibly new) context to hand to the next stage. A
// Processor never mutates in place, it returns the next context, so a
// Pipeline stays a pure reduction over its stages.
type Processor interface {
	Process(ctx *Context) *Context
}

// Pipeline represents a sequence of processing stages.
type Pipeline struct {
	processors []Processor
}

// New builds a Pipeline from processors, run in the given order.
func New(processors ...Processor) *Pipeline {
	return &Pipeline{processors: processors}
}

// Run executes the pipeline, threading ctx through every processor in
// order. A stage that sets ctx.Err halts the run immediately: these stages
// are pure tree transforms, not independent diagnostic collectors, so
// there is nothing useful to salvage by continuing past the first failure.
func (p *Pipeline) Run(initialCtx *Context) *Context {
	ctx := initialCtx
	for _, processor := range p.processors {
		ctx = processor.Process(ctx)
		if ctx.Err != nil {
			return ctx
		}
	}
	return ctx
}
