package optimize_test

import (
	"testing"

	"github.com/OpShin/pluthon-go/internal/ast"
	"github.com/OpShin/pluthon-go/internal/optimize"
	"github.com/OpShin/pluthon-go/internal/sugar"
)

// twiceUsedLengthSum builds a term that uses the LengthList pattern kind
// twice, so the pattern-sharing passes have something to hoist.
func twiceUsedLengthSum() ast.Term {
	return sugar.AddInteger(
		sugar.LengthList(sugar.Range(ast.Integer(3))),
		sugar.LengthList(sugar.Range(ast.Integer(5))),
	)
}

func TestAllPatternReplacerHoistsSharedKindIntoOneLet(t *testing.T) {
	prog := &ast.Program{Body: twiceUsedLengthSum()}

	out := optimize.AllPatternReplacer(prog)

	let, ok := out.Body.(*ast.Let)
	if !ok {
		t.Fatalf("expected a root Let binding the shared function, got %#v", out.Body)
	}
	if len(let.Bindings) == 0 {
		t.Fatalf("expected at least one binding")
	}

	wantInteger(t, evalProgram(t, prog), 3+5)
	wantInteger(t, evalProgram(t, out), 3+5)
}

func TestAllPatternReplacerPreservesValueWithoutRepeatedPatterns(t *testing.T) {
	prog := &ast.Program{Body: sugar.LengthList(sugar.Range(ast.Integer(4)))}

	out := optimize.AllPatternReplacer(prog)

	wantInteger(t, evalProgram(t, prog), 4)
	wantInteger(t, evalProgram(t, out), 4)
}

func TestOncePatternReplacerPreservesSemantics(t *testing.T) {
	prog := &ast.Program{Body: twiceUsedLengthSum()}

	out := optimize.OncePatternReplacer(prog)

	wantInteger(t, evalProgram(t, prog), 3+5)
	wantInteger(t, evalProgram(t, out), 3+5)
}

func TestOncePatternReplacerHandlesDependentKinds(t *testing.T) {
	// SliceList composes TakeList(DropList(l, start), size): a kind whose
	// own body references two other kinds, used twice to exercise the
	// dependency-replay path (patternAction history) across both rounds.
	l := sugar.Range(ast.Integer(10))
	body := sugar.AppendList(
		sugar.SliceList(l, ast.Integer(1), ast.Integer(2)),
		sugar.SliceList(l, ast.Integer(4), ast.Integer(3)),
	)
	prog := &ast.Program{Body: body}

	out := optimize.OncePatternReplacer(prog)

	before := wantListLen(t, evalProgram(t, prog), 5)
	after := wantListLen(t, evalProgram(t, out), 5)
	want := []int64{1, 2, 4, 5, 6}
	for i, w := range want {
		wantDataI(t, before.Items[i], w)
		wantDataI(t, after.Items[i], w)
	}
}
