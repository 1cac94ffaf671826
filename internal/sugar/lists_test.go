package sugar_test

import (
	"testing"

	"github.com/OpShin/pluthon-go/internal/ast"
	"github.com/OpShin/pluthon-go/internal/sugar"
)

func TestRangeBuildsDataIntegerList(t *testing.T) {
	l := wantListLen(t, run(t, sugar.Range(ast.Integer(3))), 3)
	wantDataI(t, l.Items[0], 0)
	wantDataI(t, l.Items[1], 1)
	wantDataI(t, l.Items[2], 2)
}

func TestLengthList(t *testing.T) {
	wantInteger(t, run(t, sugar.LengthList(sugar.Range(ast.Integer(5)))), 5)
}

func TestLengthListEmpty(t *testing.T) {
	wantInteger(t, run(t, sugar.LengthList(sugar.EmptyList())), 0)
}

func TestIndexAccessList(t *testing.T) {
	l := sugar.Range(ast.Integer(5))
	wantDataI(t, run(t, sugar.IndexAccessList(l, ast.Integer(2))), 2)
}

func TestIndexAccessListOutOfRangeDiverges(t *testing.T) {
	l := sugar.Range(ast.Integer(2))
	runDiverges(t, sugar.IndexAccessList(l, ast.Integer(5)))
}

func TestUnsafeIndexAccessList(t *testing.T) {
	l := sugar.Range(ast.Integer(5))
	wantDataI(t, run(t, sugar.UnsafeIndexAccessList(l, ast.Integer(4))), 4)
}

func TestFoldListSumsElements(t *testing.T) {
	sumFn := &ast.Lambda{
		Params: []string{"acc", "x"},
		Body: sugar.AddInteger(
			&ast.Var{Name: "acc"},
			sugar.UnIData(&ast.Var{Name: "x"}),
		),
	}
	got := sugar.FoldList(sugar.Range(ast.Integer(4)), ast.Integer(0), sumFn)
	wantInteger(t, run(t, got), 0+1+2+3)
}

func TestRFoldListPreservesOrder(t *testing.T) {
	// consFn rebuilds the very list it folds over via PrependList, so
	// RFoldList(l, EmptyList(), PrependList) should round-trip l unchanged.
	consFn := &ast.Lambda{
		Params: []string{"x", "acc"},
		Body:   sugar.PrependList(&ast.Var{Name: "x"}, &ast.Var{Name: "acc"}),
	}
	l := sugar.Range(ast.Integer(3))
	got := sugar.RFoldList(l, sugar.EmptyList(), consFn)
	out := wantListLen(t, run(t, got), 3)
	wantDataI(t, out.Items[0], 0)
	wantDataI(t, out.Items[1], 1)
	wantDataI(t, out.Items[2], 2)
}

func TestMapListDoublesEachElement(t *testing.T) {
	doubleFn := &ast.Lambda{
		Params: []string{"x"},
		Body:   sugar.IData(sugar.AddInteger(sugar.UnIData(&ast.Var{Name: "x"}), sugar.UnIData(&ast.Var{Name: "x"}))),
	}
	got := sugar.MapList(sugar.Range(ast.Integer(3)), doubleFn)
	out := wantListLen(t, run(t, got), 3)
	wantDataI(t, out.Items[0], 0)
	wantDataI(t, out.Items[1], 2)
	wantDataI(t, out.Items[2], 4)
}

func isEvenFn() ast.Term {
	return &ast.Lambda{
		Params: []string{"x"},
		Body: sugar.EqualsInteger(
			sugar.ModInteger(sugar.UnIData(&ast.Var{Name: "x"}), ast.Integer(2)),
			ast.Integer(0),
		),
	}
}

func TestFilterListKeepsMatchingElements(t *testing.T) {
	got := sugar.FilterList(sugar.Range(ast.Integer(5)), isEvenFn())
	out := wantListLen(t, run(t, got), 3)
	wantDataI(t, out.Items[0], 0)
	wantDataI(t, out.Items[1], 2)
	wantDataI(t, out.Items[2], 4)
}

func TestFindListReturnsFirstMatch(t *testing.T) {
	got := sugar.FindList(sugar.Range(ast.Integer(5)), isEvenFn())
	wantDataI(t, run(t, got), 0)
}

func TestFindListDivergesWhenNoMatch(t *testing.T) {
	alwaysFalse := &ast.Lambda{Params: []string{"x"}, Body: ast.Bool(false)}
	runDiverges(t, sugar.FindList(sugar.Range(ast.Integer(3)), alwaysFalse))
}

func TestAnyListAllList(t *testing.T) {
	wantBool(t, run(t, sugar.AnyList(sugar.Range(ast.Integer(5)), isEvenFn())), true)
	wantBool(t, run(t, sugar.AnyList(sugar.EmptyList(), isEvenFn())), false)

	allEven := sugar.MapList(sugar.Range(ast.Integer(3)), &ast.Lambda{
		Params: []string{"x"},
		Body:   sugar.IData(sugar.MultiplyInteger(sugar.UnIData(&ast.Var{Name: "x"}), ast.Integer(2))),
	})
	wantBool(t, run(t, sugar.AllList(allEven, isEvenFn())), true)
	wantBool(t, run(t, sugar.AllList(sugar.Range(ast.Integer(5)), isEvenFn())), false)
}

func TestTakeListDropList(t *testing.T) {
	l := sugar.Range(ast.Integer(5))
	wantListLen(t, run(t, sugar.TakeList(l, ast.Integer(2))), 2)
	wantListLen(t, run(t, sugar.TakeList(l, ast.Integer(100))), 5)
	wantListLen(t, run(t, sugar.DropList(l, ast.Integer(2))), 3)
	wantListLen(t, run(t, sugar.DropList(l, ast.Integer(100))), 0)
}

func TestSliceList(t *testing.T) {
	l := sugar.Range(ast.Integer(10))
	out := wantListLen(t, run(t, sugar.SliceList(l, ast.Integer(3), ast.Integer(2))), 2)
	wantDataI(t, out.Items[0], 3)
	wantDataI(t, out.Items[1], 4)
}

func TestAppendList(t *testing.T) {
	got := sugar.AppendList(sugar.Range(ast.Integer(2)), sugar.Range(ast.Integer(3)))
	out := wantListLen(t, run(t, got), 5)
	wantDataI(t, out.Items[0], 0)
	wantDataI(t, out.Items[1], 1)
	wantDataI(t, out.Items[2], 0)
}

func TestSingleDataList(t *testing.T) {
	out := wantListLen(t, run(t, sugar.SingleDataList(sugar.IData(ast.Integer(7)))), 1)
	wantDataI(t, out.Items[0], 7)
}
