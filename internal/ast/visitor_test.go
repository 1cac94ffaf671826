package ast_test

import (
	"testing"

	"github.com/OpShin/pluthon-go/internal/ast"
)

type varCounter struct {
	ast.BaseVisitor
	count int
}

func newVarCounter() *varCounter {
	c := &varCounter{}
	c.Self = c
	return c
}

func (c *varCounter) VisitVar(n *ast.Var) { c.count++ }

func TestBaseVisitorWalksEveryChild(t *testing.T) {
	term := &ast.Apply{
		Fun: &ast.Lambda{Params: []string{"x"}, Body: &ast.Var{Name: "x"}},
		Args: []ast.Term{
			&ast.Var{Name: "a"},
			&ast.Ite{Cond: &ast.Var{Name: "c"}, Then: &ast.Var{Name: "t"}, Else: &ast.Var{Name: "e"}},
		},
	}

	c := newVarCounter()
	ast.Walk(c, term)

	if c.count != 5 {
		t.Errorf("expected 5 Var nodes visited, got %d", c.count)
	}
}

// overridingVisitor stops descending into Lambda bodies, proving that a
// concrete pass overriding one method has that override honored even when
// BaseVisitor recurses into its children through Self.
type overridingVisitor struct {
	ast.BaseVisitor
	count int
}

func newOverridingVisitor() *overridingVisitor {
	v := &overridingVisitor{}
	v.Self = v
	return v
}

func (v *overridingVisitor) VisitVar(n *ast.Var)       { v.count++ }
func (v *overridingVisitor) VisitLambda(n *ast.Lambda) {}

func TestVisitorOverrideIsHonoredDuringRecursion(t *testing.T) {
	term := &ast.Apply{
		Fun:  &ast.Lambda{Params: []string{"x"}, Body: &ast.Var{Name: "x"}},
		Args: []ast.Term{&ast.Var{Name: "a"}},
	}

	v := newOverridingVisitor()
	ast.Walk(v, term)

	if v.count != 1 {
		t.Errorf("expected the Lambda body's Var to be skipped, got count %d", v.count)
	}
}

func TestPatternIsOpaqueToDefaultWalk(t *testing.T) {
	pat := &ast.Pattern{
		Kind:   constKind{name: "Id"},
		Fields: []ast.Term{&ast.Var{Name: "only_field"}},
	}

	c := newVarCounter()
	ast.Walk(c, pat)

	if c.count != 1 {
		t.Errorf("expected BaseVisitor to walk the Pattern's own Fields, got count %d", c.count)
	}
}
