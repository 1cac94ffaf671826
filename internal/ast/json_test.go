package ast_test

import (
	"encoding/json"
	"testing"

	"github.com/OpShin/pluthon-go/internal/ast"
)

func TestProgramJSONRoundTrip(t *testing.T) {
	prog := &ast.Program{
		Version: [3]int{1, 0, 0},
		Body: &ast.Let{
			Bindings: []ast.Binding{
				{Name: "x", Value: ast.Integer(7)},
				{Name: "msg", Value: ast.Text("hi")},
				{Name: "raw", Value: &ast.Constant{Kind: ast.KindByteString, Bytes: []byte{0xde, 0xad, 0xbe, 0xef}}},
			},
			Body: &ast.Ite{
				Cond: ast.Bool(true),
				Then: &ast.Apply{
					Fun:  &ast.BuiltIn{Op: ast.AddInteger},
					Args: []ast.Term{&ast.Var{Name: "x"}, ast.Integer(1)},
				},
				Else: &ast.Force{Inner: &ast.Delay{Inner: ast.Unit()}},
			},
		},
	}

	data, err := json.Marshal(prog)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}

	var got ast.Program
	if err := json.Unmarshal(data, &got); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}

	if got.Version != prog.Version {
		t.Errorf("Version = %v, want %v", got.Version, prog.Version)
	}
	if ast.Dumps(got.Body) != ast.Dumps(prog.Body) {
		t.Errorf("round-tripped Dumps() = %q, want %q", ast.Dumps(got.Body), ast.Dumps(prog.Body))
	}
}

func TestProgramJSONRoundTripsEmptyListPairSample(t *testing.T) {
	prog := &ast.Program{Body: &ast.EmptyList{Sample: *ast.PairSample()}}

	data, err := json.Marshal(prog)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}

	var got ast.Program
	if err := json.Unmarshal(data, &got); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}

	el, ok := got.Body.(*ast.EmptyList)
	if !ok || !el.Sample.Pair {
		t.Fatalf("round-tripped body = %#v, want an EmptyList with a Pair sample", got.Body)
	}
}

func TestProgramJSONRejectsPattern(t *testing.T) {
	prog := &ast.Program{Body: &ast.Pattern{Kind: constKind{name: "Id"}, Fields: []ast.Term{&ast.Var{Name: "x"}}}}
	if _, err := json.Marshal(prog); err == nil {
		t.Fatalf("expected an error encoding a Pattern, got none")
	}
}

func TestProgramJSONRejectsUnknownBuiltin(t *testing.T) {
	data := []byte(`{"version":[1,0,0],"body":{"kind":"builtin","op":"NotARealBuiltin"}}`)
	var prog ast.Program
	if err := json.Unmarshal(data, &prog); err == nil {
		t.Fatalf("expected an error for an unknown builtin name, got none")
	}
}
