// Package ast defines the Pluthon Term IR: a tagged-variant tree over the
// UPLC term language enriched with an open-ended Pattern node.
package ast

import "math/big"

// Term is the base interface for every node of the tree. It carries no
// TokenLiteral/GetToken-style methods because this core builds trees
// programmatically and never carries source positions.
type Term interface {
	// Accept dispatches to the matching method of v.
	Accept(v Visitor)
	isTerm()
}

// Program is the root of every tree this module lowers.
type Program struct {
	Version [3]int
	Body    Term
}

func (p *Program) Accept(v Visitor) { v.VisitProgram(p) }
func (*Program) isTerm()            {}

// Var is a variable reference.
type Var struct {
	Name string
}

func (n *Var) Accept(v Visitor) { v.VisitVar(n) }
func (*Var) isTerm()            {}

// Lambda is a multi-parameter shorthand, lowered right-to-left into curried
// single-parameter UPLC lambdas. Params must be non-empty.
type Lambda struct {
	Params []string
	Body   Term
}

func (n *Lambda) Accept(v Visitor) { v.VisitLambda(n) }
func (*Lambda) isTerm()            {}

// Apply is an n-ary application, lowered left-associatively.
type Apply struct {
	Fun  Term
	Args []Term
}

func (n *Apply) Accept(v Visitor) { v.VisitApply(n) }
func (*Apply) isTerm()            {}

// Force resumes a Delay-suspended thunk.
type Force struct {
	Inner Term
}

func (n *Force) Accept(v Visitor) { v.VisitForce(n) }
func (*Force) isTerm()            {}

// Delay suspends evaluation of its inner term.
type Delay struct {
	Inner Term
}

func (n *Delay) Accept(v Visitor) { v.VisitDelay(n) }
func (*Delay) isTerm()            {}

// Binding is one (name, value) pair of a Let. Order matters: later bindings
// may reference earlier ones, and lowering pops from the end.
type Binding struct {
	Name  string
	Value Term
}

// Let is sugar for nested (\x. body) value, popping bindings from the end.
type Let struct {
	Bindings []Binding
	Body     Term
}

func (n *Let) Accept(v Visitor) { v.VisitLet(n) }
func (*Let) isTerm()            {}

// Ite is an if-then-else, lowered via the force/delay IfThenElse trick.
type Ite struct {
	Cond Term
	Then Term
	Else Term
}

func (n *Ite) Accept(v Visitor) { v.VisitIte(n) }
func (*Ite) isTerm()            {}

// BuiltIn references a UPLC primitive operation.
type BuiltIn struct {
	Op BuiltinOp
}

func (n *BuiltIn) Accept(v Visitor) { v.VisitBuiltIn(n) }
func (*BuiltIn) isTerm()            {}

// Error is a diverging term. Lowering wraps it in a dummy lambda so the
// back-end can never reduce it eagerly; the wrap happens in the lowering
// step, not at construction, so Error can still be composed freely inside
// pattern bodies like any other term.
type Error struct{}

func (n *Error) Accept(v Visitor) { v.VisitError(n) }
func (*Error) isTerm()            {}

// EmptyList is a typed empty list witness; Sample fixes the element type.
type EmptyList struct {
	Sample Constant
}

func (n *EmptyList) Accept(v Visitor) { v.VisitEmptyList(n) }
func (*EmptyList) isTerm()            {}

// Constant is a literal UPLC constant. Exactly one of the Kind-matching
// fields is meaningful; Raw is the escape hatch for a constant this IR has
// no dedicated node for.
type ConstantKind int

const (
	KindInteger ConstantKind = iota
	KindByteString
	KindText
	KindBool
	KindUnit
	KindRaw
)

type Constant struct {
	Kind  ConstantKind
	I     *big.Int // KindInteger
	Bytes []byte    // KindByteString
	Str   string    // KindText
	Bool  bool      // KindBool
	Raw   RawValue  // KindRaw: back-end-native constant, opaque to this IR

	// Pair marks a Constant used only as an EmptyList.Sample: it denotes the
	// (Data, Data) pair element type rather than plain Data, selecting
	// MkNilPairData over MkNilData at lowering. Meaningless outside that
	// role.
	Pair bool
}

func (n *Constant) Accept(v Visitor) { v.VisitConstant(n) }
func (*Constant) isTerm()            {}

// RawValue is the back-end's native constant representation, carried
// unexamined by KindRaw constants.
type RawValue interface {
	isRawValue()
}

func Integer(x int64) *Constant       { return &Constant{Kind: KindInteger, I: big.NewInt(x)} }
func BigInteger(x *big.Int) *Constant { return &Constant{Kind: KindInteger, I: x} }
func ByteString(x []byte) *Constant   { return &Constant{Kind: KindByteString, Bytes: x} }
func Text(x string) *Constant         { return &Constant{Kind: KindText, Str: x} }
func Bool(x bool) *Constant           { return &Constant{Kind: KindBool, Bool: x} }
func Unit() *Constant                 { return &Constant{Kind: KindUnit} }
func Raw(x RawValue) *Constant        { return &Constant{Kind: KindRaw, Raw: x} }

// PairSample builds an EmptyList.Sample prototype denoting a (Data, Data)
// pair element type, so EmptyList lowers via MkNilPairData instead of the
// default MkNilData.
func PairSample() *Constant { return &Constant{Kind: KindUnit, Pair: true} }
