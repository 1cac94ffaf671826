// Package backend models the UPLC back-end boundary: the small term
// vocabulary this module's lowering step constructs, and the Backend
// interface a concrete back-end (off-chain, out of scope for this
// repository) implements to turn that vocabulary into an executable
// program.
package backend

import (
	"math/big"

	"github.com/OpShin/pluthon-go/internal/config"
)

// Term is a lowered UPLC term, the target of internal/ast's lowering step.
// It is a strictly smaller vocabulary than ast.Term: by the time a tree
// reaches here, Lambda has been curried, Apply has been made binary, Let
// has been desugared to nested application, Ite has been rewritten via the
// Force/Delay IfThenElse trick, and every Pattern has been composed away.
type Term interface {
	isBackendTerm()
}

// Program pairs a UPLC version triple with its lowered body.
type Program struct {
	Version [3]int
	Body    Term
}

func (*Program) isBackendTerm() {}

type Variable struct{ Name string }

func (*Variable) isBackendTerm() {}

type Lambda struct {
	Param string
	Body  Term
}

func (*Lambda) isBackendTerm() {}

type Apply struct {
	Fun Term
	Arg Term
}

func (*Apply) isBackendTerm() {}

type Force struct{ Term Term }

func (*Force) isBackendTerm() {}

type Delay struct{ Term Term }

func (*Delay) isBackendTerm() {}

type ErrorTerm struct{}

func (*ErrorTerm) isBackendTerm() {}

// BuiltinFun names a UPLC primitive; values track internal/ast.BuiltinOp
// one-to-one so lowering is a direct conversion.
type BuiltinFun int

func (b BuiltinFun) String() string { return builtinFunNames[b] }

type Builtin struct{ Fun BuiltinFun }

func (*Builtin) isBackendTerm() {}

// ConstantKind identifies which field of Constant is meaningful.
type ConstantKind int

const (
	ConstInteger ConstantKind = iota
	ConstByteString
	ConstString
	ConstBool
	ConstUnit
	ConstData
)

// Constant is a literal value embedded directly in the lowered program.
type Constant struct {
	Kind  ConstantKind
	I     *big.Int
	Bytes []byte
	Str   string
	Bool  bool
}

func (*Constant) isBackendTerm() {}

// Backend turns a lowered Program into whatever a concrete execution
// environment needs (on-chain script bytes, a disassembly, a cost-model
// budget report, ...). This repository ships no concrete implementation:
// selecting, validating, and running a real UPLC back-end is an external
// concern this module hands a finished Program to and otherwise stays out
// of. The core's CompilationConfig is handed along unexamined: fields the
// core itself never branches on (e.g. UniqueVariableNames) are exactly the
// unknown back-end options a real backend reads out of it.
type Backend interface {
	// Compile turns prog into whatever this backend produces, honoring
	// whichever of cfg's fields it understands.
	Compile(prog *Program, cfg config.CompilationConfig) (*Artifact, error)

	// Name identifies the backend for diagnostics.
	Name() string
}

// Artifact is an opaque result handed back by a Backend; this module does
// not interpret its contents.
type Artifact struct {
	Data []byte
}

// CountNodes returns the number of Term nodes in t. Flat term count is the
// back-of-envelope proxy for on-chain script size pkg/cli reports before a
// real back-end ever sees the program.
func CountNodes(t Term) int {
	switch n := t.(type) {
	case *Lambda:
		return 1 + CountNodes(n.Body)
	case *Apply:
		return 1 + CountNodes(n.Fun) + CountNodes(n.Arg)
	case *Force:
		return 1 + CountNodes(n.Term)
	case *Delay:
		return 1 + CountNodes(n.Term)
	default:
		return 1
	}
}
