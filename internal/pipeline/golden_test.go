package pipeline_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"golang.org/x/tools/txtar"

	"github.com/OpShin/pluthon-go/internal/ast"
	"github.com/OpShin/pluthon-go/internal/config"
	"github.com/OpShin/pluthon-go/internal/pipeline"
	"github.com/OpShin/pluthon-go/internal/sugar"
)

func boolPtr(b bool) *bool { return &b }

// goldenCase pairs a fixpoint input tree with the CompilationConfig it
// should stabilise under; the txtar fixture of the same name carries the
// expected dumps() of the result.
type goldenCase struct {
	body ast.Term
	cfg  config.CompilationConfig
}

var goldenCases = map[string]goldenCase{
	"ite": {
		body: &ast.Ite{Cond: ast.Bool(true), Then: ast.Integer(1), Else: ast.Integer(2)},
	},
	"trace_removal": {
		body: sugar.TraceConst("dbg", ast.Integer(7)),
		cfg:  config.CompilationConfig{RemoveTrace: boolPtr(true)},
	},
	"pattern_sharing_zero_field": {
		body: &ast.Ite{Cond: ast.Bool(true), Then: sugar.NoneData(), Else: sugar.NoneData()},
		cfg:  config.CompilationConfig{CompressPatterns: boolPtr(true)},
	},
}

// TestFixpointGoldenFixtures runs every testdata/golden/*.txtar fixture's
// input tree through the driver and compares the stabilised dumps against
// the fixture's "golden" file. Fixtures are stored as golang.org/x/tools/txtar
// archives, repurposed here from package-loading to golden test data.
func TestFixpointGoldenFixtures(t *testing.T) {
	matches, err := filepath.Glob("testdata/golden/*.txtar")
	if err != nil {
		t.Fatal(err)
	}
	if len(matches) == 0 {
		t.Fatal("no golden fixtures found under testdata/golden")
	}

	for _, path := range matches {
		name := strings.TrimSuffix(filepath.Base(path), ".txtar")
		t.Run(name, func(t *testing.T) {
			tc, ok := goldenCases[name]
			if !ok {
				t.Fatalf("no registered goldenCases entry for fixture %q", name)
			}

			data, err := os.ReadFile(path)
			if err != nil {
				t.Fatal(err)
			}
			arc := txtar.Parse(data)
			var golden []byte
			found := false
			for _, f := range arc.Files {
				if f.Name == "golden" {
					golden, found = f.Data, true
					break
				}
			}
			if !found {
				t.Fatalf("fixture %q has no \"golden\" file", path)
			}

			out, err := pipeline.Optimize(&ast.Program{Body: tc.body}, tc.cfg)
			if err != nil {
				t.Fatalf("Optimize: %v", err)
			}

			got := ast.Dumps(out.Body)
			want := strings.TrimRight(string(golden), "\n")
			if got != want {
				t.Errorf("dumps mismatch for %q:\n got:  %s\n want: %s", name, got, want)
			}
		})
	}
}
