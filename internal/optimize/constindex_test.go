package optimize_test

import (
	"testing"

	"github.com/OpShin/pluthon-go/internal/ast"
	"github.com/OpShin/pluthon-go/internal/compileerr"
	"github.com/OpShin/pluthon-go/internal/optimize"
	"github.com/OpShin/pluthon-go/internal/refmachine"
	"github.com/OpShin/pluthon-go/internal/sugar"
)

func wantDataI(t *testing.T, obj refmachine.Object, want int64) {
	t.Helper()
	d, ok := obj.(*refmachine.Data)
	if !ok || d.Kind != refmachine.DataI {
		t.Fatalf("got %T (%s), want Data(I)", obj, obj.Inspect())
	}
	if d.Int.Int64() != want {
		t.Fatalf("got %s, want %d", d.Int.String(), want)
	}
}

func TestIndexAccessOptimizerSpecializesLiteralIndex(t *testing.T) {
	prog := &ast.Program{Body: sugar.IndexAccessList(sugar.Range(ast.Integer(5)), ast.Integer(2))}

	out := optimize.IndexAccessOptimizer(prog)

	pat, ok := out.Body.(*ast.Pattern)
	if !ok {
		t.Fatalf("got %#v", out.Body)
	}
	if got, want := pat.Kind.Name(), "ConstantIndexAccessList[2]"; got != want {
		t.Fatalf("Kind.Name() = %q, want %q", got, want)
	}
}

func TestIndexAccessOptimizerPreservesValue(t *testing.T) {
	prog := &ast.Program{Body: sugar.IndexAccessList(sugar.Range(ast.Integer(5)), ast.Integer(3))}

	before := evalProgram(t, prog)
	after := evalProgram(t, optimize.IndexAccessOptimizer(prog))

	wantDataI(t, before, 3)
	wantDataI(t, after, 3)
}

func TestIndexAccessOptimizerIgnoresNonLiteralIndex(t *testing.T) {
	prog := &ast.Program{Body: sugar.IndexAccessList(sugar.Range(ast.Integer(5)), &ast.Var{Name: "i"})}

	out := optimize.IndexAccessOptimizer(prog)

	pat, ok := out.Body.(*ast.Pattern)
	if !ok || pat.Kind.Name() != "IndexAccessList" {
		t.Fatalf("expected IndexAccessList pattern left untouched, got %#v", out.Body)
	}
}

func TestIndexAccessOptimizerNegativeIndexPanics(t *testing.T) {
	defer func() {
		r := recover()
		if r == nil {
			t.Fatal("expected a panic for a negative constant index")
		}
		ce, ok := r.(*compileerr.Error)
		if !ok || ce.Code != compileerr.NegativeConstantIndex {
			t.Fatalf("expected compileerr.NegativeConstantIndex, got %#v", r)
		}
	}()
	prog := &ast.Program{Body: sugar.IndexAccessList(sugar.Range(ast.Integer(5)), ast.Integer(-1))}
	optimize.IndexAccessOptimizer(prog)
}

func TestIndexAccessOptimizerUnrollIsLinearInIndex(t *testing.T) {
	// A naive nested-Ite rebuild duplicates the whole prior chain at every
	// unrolled level, so its dumps() length roughly doubles per added
	// index. Guard against that regression by checking the length ratio
	// between a small and a 4x-larger index stays close to 4, not anywhere
	// near 2^(24-6).
	small := &ast.Program{Body: sugar.IndexAccessList(sugar.Range(ast.Integer(10)), ast.Integer(6))}
	large := &ast.Program{Body: sugar.IndexAccessList(sugar.Range(ast.Integer(30)), ast.Integer(24))}

	smallLen := len(ast.Dumps(optimize.IndexAccessOptimizer(small).Body))
	largeLen := len(ast.Dumps(optimize.IndexAccessOptimizer(large).Body))

	if ratio := float64(largeLen) / float64(smallLen); ratio > 10 {
		t.Fatalf("dumps length grew %.1fx for a 4x larger index (small=%d, large=%d); expected roughly linear growth",
			ratio, smallLen, largeLen)
	}
}

func TestIndexAccessOptimizerPreservesValueForLargerIndex(t *testing.T) {
	prog := &ast.Program{Body: sugar.IndexAccessList(sugar.Range(ast.Integer(20)), ast.Integer(17))}

	before := evalProgram(t, prog)
	after := evalProgram(t, optimize.IndexAccessOptimizer(prog))

	wantDataI(t, before, 17)
	wantDataI(t, after, 17)
}

func TestIndexAccessOptimizerSpecializesNthField(t *testing.T) {
	d := sugar.ConstrData(ast.Integer(0), sugar.AppendList(
		sugar.SingleDataList(sugar.IData(ast.Integer(10))),
		sugar.SingleDataList(sugar.IData(ast.Integer(20))),
	))
	prog := &ast.Program{Body: sugar.NthField(d, ast.Integer(1))}

	before := evalProgram(t, prog)
	out := optimize.IndexAccessOptimizer(prog)
	after := evalProgram(t, out)

	wantDataI(t, before, 20)
	wantDataI(t, after, 20)

	pat, ok := out.Body.(*ast.Pattern)
	if !ok || pat.Kind.Name() != "ConstantNthField[1]" {
		t.Fatalf("got %#v", out.Body)
	}
}
