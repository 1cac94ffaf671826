// Package refmachine is a small tree-walking evaluator over
// internal/backend's lowered term vocabulary. It exists only so this
// module's own tests can check that an optimisation pass never changes
// what a program evaluates to — it is not, and does not claim to be, a
// production UPLC VM; cost accounting, real cryptographic primitives, and
// the full Plutus builtin semantics are all out of scope.
package refmachine

import (
	"fmt"
	"math/big"

	"github.com/OpShin/pluthon-go/internal/backend"
)

// ObjectType tags the dynamic kind of a runtime Object produced while
// tree-walking a lowered term for semantic-preservation checks.
type ObjectType string

const (
	IntegerObj    ObjectType = "INTEGER"
	ByteStringObj ObjectType = "BYTESTRING"
	StringObj     ObjectType = "STRING"
	BoolObj       ObjectType = "BOOL"
	UnitObj       ObjectType = "UNIT"
	DataObj       ObjectType = "DATA"
	PairObj       ObjectType = "PAIR"
	ListObj       ObjectType = "LIST"
	ClosureObj    ObjectType = "CLOSURE"
	BuiltinObj    ObjectType = "BUILTIN"
	DelayedObj    ObjectType = "DELAYED"
)

// Object is a runtime value produced by Eval.
type Object interface {
	Type() ObjectType
	Inspect() string
}

type Integer struct{ Value *big.Int }

func (o *Integer) Type() ObjectType { return IntegerObj }
func (o *Integer) Inspect() string  { return o.Value.String() }

type ByteString struct{ Value []byte }

func (o *ByteString) Type() ObjectType { return ByteStringObj }
func (o *ByteString) Inspect() string  { return fmt.Sprintf("0x%x", o.Value) }

type String struct{ Value string }

func (o *String) Type() ObjectType { return StringObj }
func (o *String) Inspect() string  { return o.Value }

type Bool struct{ Value bool }

func (o *Bool) Type() ObjectType { return BoolObj }
func (o *Bool) Inspect() string {
	if o.Value {
		return "True"
	}
	return "False"
}

type Unit struct{}

func (o *Unit) Type() ObjectType { return UnitObj }
func (o *Unit) Inspect() string  { return "()" }

// Pair is MkPairData's runtime value: a pair of Data.
type Pair struct{ Fst, Snd Object }

func (o *Pair) Type() ObjectType { return PairObj }
func (o *Pair) Inspect() string  { return fmt.Sprintf("(%s, %s)", o.Fst.Inspect(), o.Snd.Inspect()) }

// List is a builtin list value (of Data, or of Pair for Map-shaped data).
type List struct{ Items []Object }

func (o *List) Type() ObjectType { return ListObj }
func (o *List) Inspect() string  { return fmt.Sprintf("%v", o.Items) }

// DataKind distinguishes Plutus Data's five constructors.
type DataKind int

const (
	DataConstr DataKind = iota
	DataMap
	DataList
	DataI
	DataB
)

// Data is a Plutus Data value: the only structured payload UPLC scripts
// exchange with the chain.
type Data struct {
	Kind    DataKind
	Constr  int64
	Fields  []*Data    // DataConstr, DataList
	Entries []DataEntry // DataMap
	Int     *big.Int   // DataI
	Bytes   []byte     // DataB
}

type DataEntry struct{ Key, Value *Data }

func (o *Data) Type() ObjectType { return DataObj }
func (o *Data) Inspect() string {
	switch o.Kind {
	case DataConstr:
		return fmt.Sprintf("Constr(%d, %v)", o.Constr, o.Fields)
	case DataMap:
		return fmt.Sprintf("Map(%v)", o.Entries)
	case DataList:
		return fmt.Sprintf("List(%v)", o.Fields)
	case DataI:
		return o.Int.String()
	default:
		return fmt.Sprintf("0x%x", o.Bytes)
	}
}

// Closure is an evaluated Lambda: its body plus the environment it closed
// over.
type Closure struct {
	Param string
	Body  backend.Term
	Env   *Environment
}

func (o *Closure) Type() ObjectType { return ClosureObj }
func (o *Closure) Inspect() string  { return fmt.Sprintf("<closure %s>", o.Param) }

// Delayed is an unforced Delay: every Force evaluates Term in Env again; the
// result is not memoised.
type Delayed struct {
	Term backend.Term
	Env  *Environment
}

func (o *Delayed) Type() ObjectType { return DelayedObj }
func (o *Delayed) Inspect() string  { return "<delayed>" }

// PartialBuiltin accumulates a builtin's value arguments (Force
// applications on a builtin are no-ops in this simplified model, since it
// carries no type-level polymorphism to instantiate) until arity is
// reached, then Apply dispatches it.
type PartialBuiltin struct {
	Fun  backend.BuiltinFun
	Args []Object
}

func (o *PartialBuiltin) Type() ObjectType { return BuiltinObj }
func (o *PartialBuiltin) Inspect() string  { return fmt.Sprintf("<builtin %s>", o.Fun) }

// DivergeError is raised (via panic, caught by Run) whenever evaluation
// hits a pluthon Error term or an internal type mismatch a well-typed
// UPLC program would never exhibit.
type DivergeError struct{ Message string }

func (e *DivergeError) Error() string { return e.Message }

func diverge(format string, args ...any) {
	panic(&DivergeError{Message: fmt.Sprintf(format, args...)})
}
