// Package taint implements the strictness (taint) analysis: for each
// pattern kind, which declared fields occur at least once in a
// conditionally evaluated position of the kind's composed body. Those fields must
// be Delay'd at call sites and Force'd inside the shared function body so
// that hoisting the pattern into an eagerly-applied shared function
// (internal/optimize) does not change which subterms actually get
// evaluated.
package taint

import (
	"sync"

	"github.com/google/uuid"

	"github.com/OpShin/pluthon-go/internal/ast"
)

// evaluatedCollector gathers every Var name that textually occurs in a
// term, mirroring patterns.py's EvaluatedVariableCollector.
type evaluatedCollector struct {
	ast.BaseVisitor
	names map[string]bool
}

func newEvaluatedCollector() *evaluatedCollector {
	c := &evaluatedCollector{names: map[string]bool{}}
	c.Self = c
	return c
}

func (c *evaluatedCollector) VisitVar(n *ast.Var) { c.names[n.Name] = true }

func evaluatedVars(t ast.Term) map[string]bool {
	c := newEvaluatedCollector()
	ast.Walk(c, t)
	return c.names
}

// conditionalCollector gathers every Var name that occurs at least once
// inside a context the taint analysis treats as conditionally evaluated
// (whether or not it also occurs outside one): an Ite's
// then/else branch, a Delay's body, or a Lambda's body. It does NOT
// recurse further once it enters one of those contexts — the inner
// evaluatedCollector does that, matching
// ConditionallyEvaluatedVariableCollector's visit_Ite/visit_Delay/visit_Lambda
// exactly (each calls a fresh EvaluatedVariableCollector on the subtree
// rather than continuing its own traversal into it).
type conditionalCollector struct {
	ast.BaseVisitor
	names map[string]bool
}

func newConditionalCollector() *conditionalCollector {
	c := &conditionalCollector{names: map[string]bool{}}
	c.Self = c
	return c
}

func (c *conditionalCollector) merge(t ast.Term) {
	for n := range evaluatedVars(t) {
		c.names[n] = true
	}
}

func (c *conditionalCollector) VisitIte(n *ast.Ite) {
	c.merge(n.Then)
	c.merge(n.Else)
	// Cond is unconditionally evaluated; patterns.py's visit_Ite likewise
	// never looks at node.i.
}

func (c *conditionalCollector) VisitDelay(n *ast.Delay) { c.merge(n.Inner) }

func (c *conditionalCollector) VisitLambda(n *ast.Lambda) { c.merge(n.Body) }

func conditionallyEvaluatedVars(t ast.Term) map[string]bool {
	c := newConditionalCollector()
	ast.Walk(c, t)
	return c.names
}

var (
	mu    sync.Mutex
	cache = map[string]map[string]bool{}
)

// ConditionallyEvaluated returns the set of k's declared field names that
// occur at least once in a conditionally evaluated position (an Ite branch,
// a Delay body or a Lambda body) of k's composed body, memoised per
// kind name. The driver itself is single-threaded, so a plain map plus a
// mutex is enough; a concurrent host should keep this cache thread-local.
func ConditionallyEvaluated(k ast.PatternKind) map[string]bool {
	mu.Lock()
	if cached, ok := cache[k.Name()]; ok {
		mu.Unlock()
		return cached
	}
	mu.Unlock()

	fieldNames := k.FieldNames()
	uuidNames := make([]string, len(fieldNames))
	fields := make([]ast.Term, len(fieldNames))
	for i, name := range fieldNames {
		fresh := name + "_" + uuid.New().String()
		uuidNames[i] = fresh
		fields[i] = &ast.Var{Name: fresh}
	}
	term := k.Compose(fields)
	cond := conditionallyEvaluatedVars(term)

	tainted := map[string]bool{}
	for i, name := range fieldNames {
		if cond[uuidNames[i]] {
			tainted[name] = true
		}
	}

	mu.Lock()
	cache[k.Name()] = tainted
	mu.Unlock()
	return tainted
}

// ConditionallyEvaluatedIndex is ConditionallyEvaluated keyed by field
// index instead of name, the form internal/optimize's replacer needs when
// deciding which positional field to Delay.
func ConditionallyEvaluatedIndex(k ast.PatternKind) map[int]bool {
	byName := ConditionallyEvaluated(k)
	out := map[int]bool{}
	for i, name := range k.FieldNames() {
		if byName[name] {
			out[i] = true
		}
	}
	return out
}
