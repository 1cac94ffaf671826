package ast

import (
	"fmt"
	"strconv"
	"strings"
)

// Dumps renders t as the deterministic textual form used by the fixpoint
// driver's stability check and by golden test fixtures. A Pattern dumps as
// its kind name plus its composed body, so two patterns of the same kind
// and fields always render identically regardless of object identity.
func Dumps(t Term) string {
	p := &dumper{}
	p.Self = p
	Walk(p, t)
	return p.out.String()
}

type dumper struct {
	BaseVisitor
	out strings.Builder
}

func (d *dumper) VisitProgram(n *Program) { Walk(d.self(), n.Body) }

func (d *dumper) VisitVar(n *Var) { d.out.WriteString(n.Name) }

func (d *dumper) VisitLambda(n *Lambda) {
	fmt.Fprintf(&d.out, "(\\%s -> ", strings.Join(n.Params, " "))
	Walk(d.self(), n.Body)
	d.out.WriteByte(')')
}

func (d *dumper) VisitApply(n *Apply) {
	d.out.WriteByte('(')
	Walk(d.self(), n.Fun)
	for _, a := range n.Args {
		d.out.WriteByte(' ')
		Walk(d.self(), a)
	}
	d.out.WriteByte(')')
}

func (d *dumper) VisitForce(n *Force) {
	d.out.WriteString("(! ")
	Walk(d.self(), n.Inner)
	d.out.WriteByte(')')
}

func (d *dumper) VisitDelay(n *Delay) {
	d.out.WriteString("(# ")
	Walk(d.self(), n.Inner)
	d.out.WriteByte(')')
}

func (d *dumper) VisitLet(n *Let) {
	d.out.WriteString("(let ")
	for i, b := range n.Bindings {
		if i > 0 {
			d.out.WriteByte(';')
		}
		fmt.Fprintf(&d.out, "%s = ", b.Name)
		Walk(d.self(), b.Value)
	}
	d.out.WriteString(" in ")
	Walk(d.self(), n.Body)
	d.out.WriteByte(')')
}

func (d *dumper) VisitIte(n *Ite) {
	d.out.WriteString("(if ")
	Walk(d.self(), n.Cond)
	d.out.WriteString(" then ")
	Walk(d.self(), n.Then)
	d.out.WriteString(" else ")
	Walk(d.self(), n.Else)
	d.out.WriteByte(')')
}

func (d *dumper) VisitConstant(n *Constant) {
	switch n.Kind {
	case KindInteger:
		d.out.WriteString(n.I.String())
	case KindByteString:
		fmt.Fprintf(&d.out, "0x%x", n.Bytes)
	case KindText:
		d.out.WriteString(strconv.Quote(n.Str))
	case KindBool:
		if n.Bool {
			d.out.WriteString("True")
		} else {
			d.out.WriteString("False")
		}
	case KindUnit:
		if n.Pair {
			d.out.WriteString("()[pair]")
		} else {
			d.out.WriteString("()")
		}
	case KindRaw:
		d.out.WriteString("uplc[raw]")
	}
}

func (d *dumper) VisitBuiltIn(n *BuiltIn) { d.out.WriteString(n.Op.String()) }

func (d *dumper) VisitError(n *Error) { d.out.WriteString("Error") }

func (d *dumper) VisitEmptyList(n *EmptyList) {
	d.out.WriteString("EmptyList[")
	Walk(d.self(), &n.Sample)
	d.out.WriteByte(']')
}

func (d *dumper) VisitPattern(n *Pattern) {
	fmt.Fprintf(&d.out, "<[%s]> ", n.Kind.Name())
	Walk(d.self(), Compose(n))
}
