package sugar_test

import (
	"testing"

	"github.com/OpShin/pluthon-go/internal/ast"
	"github.com/OpShin/pluthon-go/internal/backend"
	"github.com/OpShin/pluthon-go/internal/refmachine"
)

// run lowers term (composing away any Pattern nodes sugar.* built) and
// evaluates it with refmachine, failing the test on divergence.
func run(t *testing.T, term ast.Term) refmachine.Object {
	t.Helper()
	prog := &backend.Program{Version: [3]int{1, 0, 0}, Body: ast.Lower(term)}
	result, err := refmachine.Run(prog)
	if err != nil {
		t.Fatalf("refmachine.Run diverged: %v", err)
	}
	return result
}

// runDiverges asserts term diverges when evaluated.
func runDiverges(t *testing.T, term ast.Term) {
	t.Helper()
	prog := &backend.Program{Version: [3]int{1, 0, 0}, Body: ast.Lower(term)}
	if _, err := refmachine.Run(prog); err == nil {
		t.Fatalf("expected divergence, evaluation succeeded")
	}
}

func wantInteger(t *testing.T, obj refmachine.Object, want int64) {
	t.Helper()
	i, ok := obj.(*refmachine.Integer)
	if !ok {
		t.Fatalf("got %T (%s), want Integer", obj, obj.Inspect())
	}
	if i.Value.Int64() != want {
		t.Fatalf("got %s, want %d", i.Value.String(), want)
	}
}

func wantBool(t *testing.T, obj refmachine.Object, want bool) {
	t.Helper()
	b, ok := obj.(*refmachine.Bool)
	if !ok {
		t.Fatalf("got %T (%s), want Bool", obj, obj.Inspect())
	}
	if b.Value != want {
		t.Fatalf("got %v, want %v", b.Value, want)
	}
}

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

func wantListLen(t *testing.T, obj refmachine.Object, want int) *refmachine.List {
	t.Helper()
	l, ok := obj.(*refmachine.List)
	if !ok {
		t.Fatalf("got %T (%s), want List", obj, obj.Inspect())
	}
	if len(l.Items) != want {
		t.Fatalf("got length %d, want %d", len(l.Items), want)
	}
	return l
}
