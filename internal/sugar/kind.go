package sugar

import "github.com/OpShin/pluthon-go/internal/ast"

// simpleKind is a PatternKind built from plain data: a name, an ordered
// field-name list, and a pure compose function. Every named pattern this
// package exports (FoldList, IndexAccessList, Constructor, ...) is one
// instance of simpleKind rather than its own bespoke type, since a
// PatternKind's entire contract is Name/FieldNames/Compose (internal/ast's
// Pattern node is deliberately open-ended).
type simpleKind struct {
	name    string
	fields  []string
	compose func([]ast.Term) ast.Term
}

func (k *simpleKind) Name() string                  { return k.name }
func (k *simpleKind) FieldNames() []string          { return k.fields }
func (k *simpleKind) Compose(f []ast.Term) ast.Term { return k.compose(f) }

func newKind(name string, fields []string, compose func([]ast.Term) ast.Term) ast.PatternKind {
	return &simpleKind{name: name, fields: fields, compose: compose}
}

// pattern builds a *ast.Pattern node for kind k with the given field terms.
func pattern(k ast.PatternKind, fields ...ast.Term) *ast.Pattern {
	return &ast.Pattern{Kind: k, Fields: fields}
}
