package optimize

import "github.com/OpShin/pluthon-go/internal/ast"

// traceRemover elides Trace(message, value) to value, but only when
// message is a literal Text constant — a dynamic message might carry a
// side effect the rest of the program depends on, so only the
// provably-pure literal form is safe to drop. Grounded exactly on
// remove_trace.py's RemoveTrace.visit_Apply guard.
type traceRemover struct {
	ast.BaseTransformer
}

func (t *traceRemover) TransformApply(n *ast.Apply) ast.Term {
	if force, ok := n.Fun.(*ast.Force); ok {
		if b, ok := force.Inner.(*ast.BuiltIn); ok && b.Op == ast.Trace && len(n.Args) == 2 {
			if c, ok := n.Args[0].(*ast.Constant); ok && c.Kind == ast.KindText {
				return ast.TransformTerm(t.Self, n.Args[1])
			}
		}
	}
	return t.BaseTransformer.TransformApply(n)
}

// RemoveTrace strips every trace call in prog whose message is a literal
// string constant, leaving only its value.
func RemoveTrace(prog *ast.Program) *ast.Program {
	t := &traceRemover{}
	t.Self = t
	return ast.TransformTerm(t, prog).(*ast.Program)
}
