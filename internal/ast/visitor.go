package ast

// Visitor dispatches on node kind to a handler named after the kind. A
// custom pass implements the methods it cares about and embeds *BaseVisitor
// (with Self set to itself) to get default pre-order recursion for
// everything else.
type Visitor interface {
	VisitProgram(*Program)
	VisitVar(*Var)
	VisitLambda(*Lambda)
	VisitApply(*Apply)
	VisitForce(*Force)
	VisitDelay(*Delay)
	VisitLet(*Let)
	VisitIte(*Ite)
	VisitConstant(*Constant)
	VisitBuiltIn(*BuiltIn)
	VisitError(*Error)
	VisitEmptyList(*EmptyList)
	VisitPattern(*Pattern)
}

// Walk dispatches t to the Visit method of v matching t's concrete kind.
func Walk(v Visitor, t Term) {
	switch n := t.(type) {
	case *Program:
		v.VisitProgram(n)
	case *Var:
		v.VisitVar(n)
	case *Lambda:
		v.VisitLambda(n)
	case *Apply:
		v.VisitApply(n)
	case *Force:
		v.VisitForce(n)
	case *Delay:
		v.VisitDelay(n)
	case *Let:
		v.VisitLet(n)
	case *Ite:
		v.VisitIte(n)
	case *Constant:
		v.VisitConstant(n)
	case *BuiltIn:
		v.VisitBuiltIn(n)
	case *Error:
		v.VisitError(n)
	case *EmptyList:
		v.VisitEmptyList(n)
	case *Pattern:
		v.VisitPattern(n)
	default:
		panic("ast.Walk: unhandled Term kind")
	}
}

// BaseVisitor supplies the default pre-order recursion: visit every child
// term, and for a Pattern recurse into its fields (it is treated as an
// opaque node with ordered children, not unfolded into its composition).
// Go has no virtual dispatch through struct
// embedding, so a concrete visitor that embeds BaseVisitor must set Self to
// itself; BaseVisitor's default methods walk through Self rather than
// through themselves, so overrides on the outer type are still honored
// while recursing into children.
type BaseVisitor struct {
	Self Visitor
}

func (b *BaseVisitor) self() Visitor {
	if b.Self != nil {
		return b.Self
	}
	return b
}

func (b *BaseVisitor) VisitProgram(n *Program)   { Walk(b.self(), n.Body) }
func (b *BaseVisitor) VisitVar(n *Var)           {}
func (b *BaseVisitor) VisitLambda(n *Lambda)     { Walk(b.self(), n.Body) }
func (b *BaseVisitor) VisitForce(n *Force)       { Walk(b.self(), n.Inner) }
func (b *BaseVisitor) VisitDelay(n *Delay)       { Walk(b.self(), n.Inner) }
func (b *BaseVisitor) VisitConstant(n *Constant) {}
func (b *BaseVisitor) VisitBuiltIn(n *BuiltIn)   {}
func (b *BaseVisitor) VisitError(n *Error)       {}
func (b *BaseVisitor) VisitEmptyList(n *EmptyList) {
	Walk(b.self(), &n.Sample)
}

func (b *BaseVisitor) VisitApply(n *Apply) {
	Walk(b.self(), n.Fun)
	for _, a := range n.Args {
		Walk(b.self(), a)
	}
}

func (b *BaseVisitor) VisitLet(n *Let) {
	for _, bind := range n.Bindings {
		Walk(b.self(), bind.Value)
	}
	Walk(b.self(), n.Body)
}

func (b *BaseVisitor) VisitIte(n *Ite) {
	Walk(b.self(), n.Cond)
	Walk(b.self(), n.Then)
	Walk(b.self(), n.Else)
}

func (b *BaseVisitor) VisitPattern(n *Pattern) {
	for _, f := range n.Fields {
		Walk(b.self(), f)
	}
}
