package pipeline

import "github.com/OpShin/pluthon-go/internal/ast"

// Context carries the tree being optimised plus any error so far, threaded
// through each stage: a Program in, a Program (or an error) out.
type Context struct {
	Program *ast.Program
	Err     error
}
