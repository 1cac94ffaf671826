package ast

// PatternKind identifies a named, parameterised sugar node. Compose must be
// referentially transparent in its field terms: the same field terms
// always realise an α-equivalent term. It must be
// definable using only Vars whose names match FieldNames, in the declared
// order, so the taint analysis (internal/taint) can substitute fresh names
// for the fields and observe how each one is used.
type PatternKind interface {
	// Name identifies the kind for the synthetic binding name p_<Name> and
	// for taint-cache keys. Parameterised families (ConstantIndexAccessList[i])
	// fold their parameter into Name, e.g. "ConstantIndexAccessList[3]".
	Name() string

	// FieldNames is the fixed, ordered list of declared field names.
	FieldNames() []string

	// Compose realises the pattern's meaning from its field terms. len(fields)
	// must equal len(FieldNames()); fields[i] corresponds to FieldNames()[i].
	Compose(fields []Term) Term
}

// Pattern is an abstract node identified by its kind; every kind defines a
// pure Compose from its field terms to a realising Term.
type Pattern struct {
	Kind   PatternKind
	Fields []Term
}

func (n *Pattern) Accept(v Visitor) { v.VisitPattern(n) }
func (*Pattern) isTerm()            {}

// Compose realises p by calling its kind's Compose with p's field terms.
func Compose(p *Pattern) Term {
	return p.Kind.Compose(p.Fields)
}

// Clone makes a shallow copy of p with a fresh Fields slice, so a pass that
// is about to mutate or reuse a pattern's field slice in place never
// aliases another occurrence's fields.
func (p *Pattern) Clone() *Pattern {
	fields := make([]Term, len(p.Fields))
	copy(fields, p.Fields)
	return &Pattern{Kind: p.Kind, Fields: fields}
}
