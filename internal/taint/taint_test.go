package taint_test

import (
	"testing"

	"github.com/OpShin/pluthon-go/internal/ast"
	"github.com/OpShin/pluthon-go/internal/sugar"
	"github.com/OpShin/pluthon-go/internal/taint"
)

// kindOf extracts the PatternKind driving a sugar.* call by building a
// throwaway Pattern and reading its Kind back off, since sugar's kind
// variables are unexported.
func kindOf(t *testing.T, term ast.Term) ast.PatternKind {
	t.Helper()
	p, ok := term.(*ast.Pattern)
	if !ok {
		t.Fatalf("got %T, want *ast.Pattern", term)
	}
	return p.Kind
}

func TestAndTaintsOnlyTheShortCircuitedOperand(t *testing.T) {
	k := kindOf(t, sugar.And(&ast.Var{Name: "x"}, &ast.Var{Name: "y"}))
	tainted := taint.ConditionallyEvaluatedIndex(k)
	if tainted[0] {
		t.Errorf("x (the condition) must not be tainted")
	}
	if !tainted[1] {
		t.Errorf("y (the conditionally-evaluated operand) must be tainted")
	}
}

func TestOrTaintsOnlyTheShortCircuitedOperand(t *testing.T) {
	k := kindOf(t, sugar.Or(&ast.Var{Name: "x"}, &ast.Var{Name: "y"}))
	tainted := taint.ConditionallyEvaluatedIndex(k)
	if tainted[0] {
		t.Errorf("x (the condition) must not be tainted")
	}
	if !tainted[1] {
		t.Errorf("y (the conditionally-evaluated operand) must be tainted")
	}
}

func TestNotHasNoTaintedFields(t *testing.T) {
	k := kindOf(t, sugar.Not(&ast.Var{Name: "x"}))
	tainted := taint.ConditionallyEvaluatedIndex(k)
	if len(tainted) != 0 {
		t.Errorf("expected no tainted fields, got %v", tainted)
	}
}

func TestIndexAccessListArgumentsAreNotTainted(t *testing.T) {
	// Both fields are consumed as the self-applying combinator's initial
	// call arguments, evaluated eagerly before the recursive body ever
	// runs, so neither should need a Delay/Force wrapper.
	k := kindOf(t, sugar.IndexAccessList(&ast.Var{Name: "l"}, &ast.Var{Name: "i"}))
	tainted := taint.ConditionallyEvaluatedIndex(k)
	if len(tainted) != 0 {
		t.Errorf("expected no tainted fields, got %v", tainted)
	}
}

func TestConditionallyEvaluatedIsMemoizedConsistently(t *testing.T) {
	k1 := kindOf(t, sugar.And(&ast.Var{Name: "x"}, &ast.Var{Name: "y"}))
	k2 := kindOf(t, sugar.And(&ast.Var{Name: "p"}, &ast.Var{Name: "q"}))
	if k1.Name() != k2.Name() {
		t.Fatalf("expected both And patterns to share one kind name")
	}
	first := taint.ConditionallyEvaluated(k1)
	second := taint.ConditionallyEvaluated(k2)
	if len(first) != len(second) || !first["y"] || !second["y"] {
		t.Errorf("expected the cached result to agree across calls: %v vs %v", first, second)
	}
}
