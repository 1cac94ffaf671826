// Package sugar is the pattern library: named, parameterised constructs
// built on top of internal/ast, plus a handful of one-shot builder
// functions for constructs that are never meant to be shared.
package sugar

import "github.com/OpShin/pluthon-go/internal/ast"

// recList builds the self-applying recursive-lambda idiom
// original_source/pluthon/pluthon_sugar.py's IndexAccessList uses: a
// Let-bound lambda g(params..., f) whose body calls Var(f) with itself as
// the last argument to recurse, applied once at the top with g standing in
// for f. bodyFn receives the (sugar-named) Vars for each declared inner
// parameter plus a Var referring to the recursive call target, and returns
// the lambda body; args supplies the initial values for the inner
// parameters.
func recList(innerParams []string, bodyFn func(p map[string]ast.Term, self ast.Term) ast.Term, args ...ast.Term) ast.Term {
	names := make([]string, len(innerParams))
	p := make(map[string]ast.Term, len(innerParams))
	for i, n := range innerParams {
		sn := ast.SugarName(n)
		names[i] = sn
		p[n] = &ast.Var{Name: sn}
	}
	selfName := ast.SugarName("f")
	gName := ast.SugarName("g")
	self := &ast.Var{Name: selfName}

	lambdaParams := make([]string, 0, len(names)+1)
	lambdaParams = append(lambdaParams, names...)
	lambdaParams = append(lambdaParams, selfName)

	body := bodyFn(p, self)

	callArgs := make([]ast.Term, 0, len(args)+1)
	callArgs = append(callArgs, args...)
	callArgs = append(callArgs, &ast.Var{Name: gName})

	return &ast.Let{
		Bindings: []ast.Binding{{Name: gName, Value: &ast.Lambda{Params: lambdaParams, Body: body}}},
		Body:     &ast.Apply{Fun: &ast.Var{Name: gName}, Args: callArgs},
	}
}

// RecFun builds a named recursive function kind on top of the recList
// self-apply combinator, for callers that need a shared recursive helper
// this package does not already provide. name must be unique among the
// program's pattern kinds; params is the declared parameter list (not
// including the implicit self-reference); bodyFn receives each declared
// parameter's Var (by name) and a Var standing for the recursive call
// target.
func RecFun(name string, params []string, bodyFn func(p map[string]ast.Term, self ast.Term) ast.Term) func(args ...ast.Term) ast.Term {
	kind := newKind(name, params, func(fields []ast.Term) ast.Term {
		return recList(params, bodyFn, fields...)
	})
	return func(args ...ast.Term) ast.Term { return pattern(kind, args...) }
}
