package sugar

import "github.com/OpShin/pluthon-go/internal/ast"

var notKind = newKind("Not", []string{"x"}, func(f []ast.Term) ast.Term {
	return &ast.Ite{Cond: f[0], Then: ast.Bool(false), Else: ast.Bool(true)}
})

// Not negates a boolean term, grounded on pluthon_sugar.py's Not.
func Not(x ast.Term) ast.Term { return pattern(notKind, x) }

var andKind = newKind("And", []string{"x", "y"}, func(f []ast.Term) ast.Term {
	return &ast.Ite{Cond: f[0], Then: f[1], Else: ast.Bool(false)}
})

// And is a short-circuiting boolean conjunction: y is only evaluated when
// x is true.
func And(x, y ast.Term) ast.Term { return pattern(andKind, x, y) }

var orKind = newKind("Or", []string{"x", "y"}, func(f []ast.Term) ast.Term {
	return &ast.Ite{Cond: f[0], Then: ast.Bool(true), Else: f[1]}
})

// Or is a short-circuiting boolean disjunction.
func Or(x, y ast.Term) ast.Term { return pattern(orKind, x, y) }

var iffKind = newKind("Iff", []string{"x", "y"}, func(f []ast.Term) ast.Term {
	return &ast.Ite{Cond: f[0], Then: f[1], Else: Not(f[1])}
})

// Iff is boolean equivalence, grounded on pluthon_sugar.py's Iff.
func Iff(x, y ast.Term) ast.Term { return pattern(iffKind, x, y) }

var xorKind = newKind("Xor", []string{"x", "y"}, func(f []ast.Term) ast.Term {
	return &ast.Ite{Cond: f[0], Then: Not(f[1]), Else: f[1]}
})

// Xor is boolean exclusive-or.
func Xor(x, y ast.Term) ast.Term { return pattern(xorKind, x, y) }

var impliesKind = newKind("Implies", []string{"x", "y"}, func(f []ast.Term) ast.Term {
	return &ast.Ite{Cond: f[0], Then: f[1], Else: ast.Bool(true)}
})

// Implies is boolean material implication: x -> y.
func Implies(x, y ast.Term) ast.Term { return pattern(impliesKind, x, y) }

var notEqualsIntegerKind = newKind("NotEqualsInteger", []string{"a", "b"}, func(f []ast.Term) ast.Term {
	return Not(EqualsInteger(f[0], f[1]))
})

// NotEqualsInteger negates EqualsInteger, grounded on pluthon_sugar.py's
// NotEqualsInteger.
func NotEqualsInteger(a, b ast.Term) ast.Term { return pattern(notEqualsIntegerKind, a, b) }

var negateKind = newKind("Negate", []string{"x"}, func(f []ast.Term) ast.Term {
	return SubtractInteger(ast.Integer(0), f[0])
})

// Negate computes the integer additive inverse of x.
func Negate(x ast.Term) ast.Term { return pattern(negateKind, x) }

// EqualsBool is boolean equality, the same term as Iff (pluthon_sugar.py
// aliases EqualsBool = Iff).
func EqualsBool(x, y ast.Term) ast.Term { return Iff(x, y) }
