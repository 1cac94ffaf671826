// Package optimize implements the fixpoint-driven passes: pattern sharing,
// constant-index specialisation, and trace removal.
package optimize

import (
	"github.com/OpShin/pluthon-go/internal/ast"
	"github.com/OpShin/pluthon-go/internal/taint"
)

const sharedFuncPrefix = "p_"

func sharedName(k ast.PatternKind) string { return ast.SugarName(sharedFuncPrefix + k.Name()) }

// kindCollector gathers every distinct pattern kind reachable from a term,
// in first-encountered order, descending into a Pattern's own composition
// so dependency kinds are found too — mirrors patterns.py's
// PatternCollector, which recurses via node.compose() rather than treating
// Pattern as opaque.
type kindCollector struct {
	ast.BaseVisitor
	seen  map[string]bool
	order []ast.PatternKind
}

func newKindCollector() *kindCollector {
	c := &kindCollector{seen: map[string]bool{}}
	c.Self = c
	return c
}

func (c *kindCollector) VisitPattern(n *ast.Pattern) {
	if !c.seen[n.Kind.Name()] {
		c.seen[n.Kind.Name()] = true
		c.order = append(c.order, n.Kind)
	}
	ast.Walk(c.Self, ast.Compose(n))
}

// collectKinds returns every distinct pattern kind reachable from t, in
// first-encountered order.
func collectKinds(t ast.Term) []ast.PatternKind {
	c := newKindCollector()
	ast.Walk(c, t)
	return c.order
}

// abstractBody returns the kind's make_abstract_function body: its compose
// with every declared field replaced by a bare Var of the same name (no
// uuid suffix needed here — this is only used to discover which other
// pattern kinds a kind's body references, not to run the taint analysis,
// which already does its own fresh-naming internally).
func abstractBody(k ast.PatternKind) ast.Term {
	names := k.FieldNames()
	fields := make([]ast.Term, len(names))
	for i, n := range names {
		fields[i] = &ast.Var{Name: n}
	}
	return k.Compose(fields)
}

// buildDeps maps every kind in kinds to the set of other collected kinds
// that appear in its own composed body (patterns.py's PatternDepBuilder).
func buildDeps(kinds []ast.PatternKind) map[string][]string {
	deps := make(map[string][]string, len(kinds))
	for _, k := range kinds {
		sub := collectKinds(abstractBody(k))
		names := make([]string, 0, len(sub))
		for _, s := range sub {
			if s.Name() != k.Name() {
				names = append(names, s.Name())
			}
		}
		deps[k.Name()] = names
	}
	return deps
}

// topoOrder returns kinds topologically sorted so each kind's dependencies
// precede it, ties broken by first-encountered order (the order kinds
// appears in, i.e. the order of the kinds slice itself) — a small
// hand-rolled Kahn's algorithm standing in for graphlib.TopologicalSorter.
func topoOrder(kinds []ast.PatternKind) []ast.PatternKind {
	byName := make(map[string]ast.PatternKind, len(kinds))
	indexOf := make(map[string]int, len(kinds))
	for i, k := range kinds {
		byName[k.Name()] = k
		indexOf[k.Name()] = i
	}
	deps := buildDeps(kinds)

	inDegree := map[string]int{}
	dependents := map[string][]string{}
	for name := range byName {
		inDegree[name] = 0
	}
	for name, ds := range deps {
		for _, d := range ds {
			if _, ok := byName[d]; !ok {
				continue
			}
			inDegree[name]++
			dependents[d] = append(dependents[d], name)
		}
	}

	var ready []string
	for name := range byName {
		if inDegree[name] == 0 {
			ready = append(ready, name)
		}
	}
	sortByFirstEncountered(ready, indexOf)

	var out []ast.PatternKind
	for len(ready) > 0 {
		next := ready[0]
		ready = ready[1:]
		out = append(out, byName[next])
		var freed []string
		for _, d := range dependents[next] {
			inDegree[d]--
			if inDegree[d] == 0 {
				freed = append(freed, d)
			}
		}
		sortByFirstEncountered(freed, indexOf)
		ready = append(ready, freed...)
		sortByFirstEncountered(ready, indexOf)
	}
	return out
}

func sortByFirstEncountered(names []string, indexOf map[string]int) {
	for i := 1; i < len(names); i++ {
		for j := i; j > 0 && indexOf[names[j-1]] > indexOf[names[j]]; j-- {
			names[j-1], names[j] = names[j], names[j-1]
		}
	}
}

// makeAbstractFunction builds the shared function body for k: a Lambda
// over its declared fields with every tainted field wrapped in Force,
// or the bare composition if k has no fields.
func makeAbstractFunction(k ast.PatternKind) ast.Term {
	names := k.FieldNames()
	if len(names) == 0 {
		return k.Compose(nil)
	}
	tainted := taint.ConditionallyEvaluatedIndex(k)
	fields := make([]ast.Term, len(names))
	for i, n := range names {
		v := ast.Term(&ast.Var{Name: n})
		if tainted[i] {
			v = &ast.Force{Inner: v}
		}
		fields[i] = v
	}
	return &ast.Lambda{Params: names, Body: k.Compose(fields)}
}

// callSite rewrites an occurrence of k's pattern into a call to its shared
// function: tainted fields get Delay'd at the call site to match the Force
// the shared body applies.
func callSite(k ast.PatternKind, fields []ast.Term) ast.Term {
	if len(fields) == 0 {
		return &ast.Var{Name: sharedName(k)}
	}
	tainted := taint.ConditionallyEvaluatedIndex(k)
	args := make([]ast.Term, len(fields))
	for i, f := range fields {
		if tainted[i] {
			args[i] = &ast.Delay{Inner: f}
		} else {
			args[i] = f
		}
	}
	return &ast.Apply{Fun: &ast.Var{Name: sharedName(k)}, Args: args}
}

// allPatternReplacer implements AllPatternReplacer: every pattern
// occurrence is rewritten to a call, and one flat Let binding every
// collected kind (in dependency order) is installed at the program root.
type allPatternReplacer struct {
	ast.BaseTransformer
	extract map[string]bool
}

func (r *allPatternReplacer) TransformPattern(n *ast.Pattern) ast.Term {
	if !r.extract[n.Kind.Name()] {
		return r.BaseTransformer.TransformPattern(n)
	}
	fields := make([]ast.Term, len(n.Fields))
	for i, f := range n.Fields {
		fields[i] = ast.TransformTerm(r.Self, f)
	}
	return callSite(n.Kind, fields)
}

func (r *allPatternReplacer) TransformProgram(n *ast.Program) ast.Term {
	kinds := collectKinds(n.Body)
	order := topoOrder(kinds)

	bindings := make([]ast.Binding, len(order))
	for i, k := range order {
		bindings[i] = ast.Binding{
			Name:  sharedName(k),
			Value: ast.TransformTerm(r.Self, makeAbstractFunction(k)),
		}
	}
	body := ast.TransformTerm(r.Self, n.Body)
	if len(bindings) > 0 {
		body = &ast.Let{Bindings: bindings, Body: body}
	}
	return &ast.Program{Version: n.Version, Body: body}
}

// AllPatternReplacer hoists every pattern kind in prog, including kinds used
// only once, into one shared function per kind, bound in a single Let at the
// program root.
func AllPatternReplacer(prog *ast.Program) *ast.Program {
	r := &allPatternReplacer{extract: map[string]bool{}}
	r.Self = r
	for _, k := range collectKinds(prog.Body) {
		r.extract[k.Name()] = true
	}
	return ast.TransformTerm(r, prog).(*ast.Program)
}

// countOccurrences counts how many Pattern nodes of kind name occur in t,
// without descending into already-extracted kinds' own bodies (callers
// pass the current, partially-rewritten tree).
type occurrenceCounter struct {
	ast.BaseVisitor
	name  string
	count int
}

func (c *occurrenceCounter) VisitPattern(n *ast.Pattern) {
	if n.Kind.Name() == c.name {
		c.count++
	}
	ast.Walk(c.Self, ast.Compose(n))
}

func countOccurrences(t ast.Term, name string) int {
	c := &occurrenceCounter{name: name}
	c.Self = c
	ast.Walk(c, t)
	return c.count
}

// inlineReplacer substitutes every occurrence of a single-use kind with
// its composed body (field terms threaded straight through, no Delay/Force
// wrapping — there is only one call site, so evaluation order is
// unaffected by skipping the shared-function indirection entirely).
type inlineReplacer struct {
	ast.BaseTransformer
	name string
}

func (r *inlineReplacer) TransformPattern(n *ast.Pattern) ast.Term {
	if n.Kind.Name() != r.name {
		return r.BaseTransformer.TransformPattern(n)
	}
	fields := make([]ast.Term, len(n.Fields))
	for i, f := range n.Fields {
		fields[i] = ast.TransformTerm(r.Self, f)
	}
	return ast.TransformTerm(r.Self, n.Kind.Compose(fields))
}

// bindReplacer rewrites every occurrence of a multi-use kind into a call
// site, leaving other kinds untouched (used by OncePatternReplacer, one
// kind per round).
type bindReplacer struct {
	ast.BaseTransformer
	name string
}

func (r *bindReplacer) TransformPattern(n *ast.Pattern) ast.Term {
	if n.Kind.Name() != r.name {
		return r.BaseTransformer.TransformPattern(n)
	}
	fields := make([]ast.Term, len(n.Fields))
	for i, f := range n.Fields {
		fields[i] = ast.TransformTerm(r.Self, f)
	}
	return callSite(n.Kind, fields)
}

// patternAction records one round's decision so it can be replayed against
// a freshly composed shared-function body discovered in a later round (a
// dependent kind's raw composition still contains an unresolved Pattern
// node for every dependency kind, even after that dependency has already
// been inlined or bound elsewhere in the tree).
type patternAction struct {
	name   string
	inline bool
}

func applyPatternAction(t ast.Term, a patternAction) ast.Term {
	if a.inline {
		r := &inlineReplacer{name: a.name}
		r.Self = r
		return ast.TransformTerm(r, t)
	}
	r := &bindReplacer{name: a.name}
	r.Self = r
	return ast.TransformTerm(r, t)
}

// OncePatternReplacer processes one pattern kind at a time, always the kind
// last in dependency order (one no other remaining kind depends on, so every
// occurrence of it sits in the tree itself rather than inside another kind's
// composition): a kind used exactly once is inlined directly (no shared
// function introduced); a kind used more than once gets a shared-function
// binding, same as AllPatternReplacer's abstraction step. Each new binding is
// placed outside the previous ones, so the kinds bound later (dependencies)
// are in scope for the earlier bindings that call them.
func OncePatternReplacer(prog *ast.Program) *ast.Program {
	body := prog.Body
	var bindings []ast.Binding
	var actions []patternAction

	for {
		current := body
		if len(bindings) > 0 {
			current = &ast.Let{Bindings: bindings, Body: body}
		}
		kinds := collectKinds(current)
		if len(kinds) == 0 {
			break
		}
		order := topoOrder(kinds)
		k := order[len(order)-1]
		act := patternAction{name: k.Name(), inline: countOccurrences(current, k.Name()) <= 1}

		body = applyPatternAction(body, act)
		for i := range bindings {
			bindings[i].Value = applyPatternAction(bindings[i].Value, act)
		}

		if !act.inline {
			raw := makeAbstractFunction(k)
			for _, prior := range actions {
				raw = applyPatternAction(raw, prior)
			}
			bindings = append([]ast.Binding{{Name: sharedName(k), Value: raw}}, bindings...)
		}
		actions = append(actions, act)
	}

	if len(bindings) > 0 {
		body = &ast.Let{Bindings: bindings, Body: body}
	}
	return &ast.Program{Version: prog.Version, Body: body}
}
