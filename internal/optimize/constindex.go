package optimize

import (
	"math/big"

	"github.com/OpShin/pluthon-go/internal/ast"
	"github.com/OpShin/pluthon-go/internal/compileerr"
	"github.com/OpShin/pluthon-go/internal/sugar"
)

// constantIndexKindName is the pattern kind family name for a literal list
// index i, e.g. "ConstantIndexAccessList[3]".
func constantIndexKindName(i int64) string {
	return "ConstantIndexAccessList[" + bigItoa(i) + "]"
}

func constantNthFieldKindName(i int64) string {
	return "ConstantNthField[" + bigItoa(i) + "]"
}

func bigItoa(i int64) string { return big.NewInt(i).String() }

// boundsCheckedTail and boundsCheckedHead carry IndexAccessList's
// per-element NullList guard into the unrolled chain, so an out-of-range
// constant index still diverges with an IndexError trace instead of
// forcing TailList/HeadList on an empty list.
func boundsCheckedTail(l ast.Term) ast.Term {
	return &ast.Ite{Cond: sugar.NullList(l), Then: sugar.TraceError("IndexError"), Else: sugar.TailList(l)}
}

func boundsCheckedHead(l ast.Term) ast.Term {
	return &ast.Ite{Cond: sugar.NullList(l), Then: sugar.TraceError("IndexError"), Else: sugar.HeadList(l)}
}

// unrollIndexChain threads l through i bounds-checked TailList steps and
// applies final to the result. Each step is bound to a fresh Let variable
// rather than substituted inline, so every step after the first refers to
// its predecessor through a single Var instead of duplicating the whole
// prior subtree — keeping the unrolled chain's size linear in i instead of
// the exponential blow-up a naive nested-Ite rebuild would produce.
func unrollIndexChain(l ast.Term, i int64, final func(ast.Term) ast.Term) ast.Term {
	if i == 0 {
		return final(l)
	}
	bindings := make([]ast.Binding, 0, i)
	prev := l
	for n := int64(0); n < i; n++ {
		name := ast.SugarName("cidx" + bigItoa(n))
		bindings = append(bindings, ast.Binding{Name: name, Value: boundsCheckedTail(prev)})
		prev = &ast.Var{Name: name}
	}
	return &ast.Let{Bindings: bindings, Body: final(prev)}
}

// constantIndexKind builds the unrolled head/tail chain for index i: i
// TailLists then a HeadList, with the same out-of-range IndexError trace
// IndexAccessList diverges with. Folding i into the kind's Name means two
// occurrences of the same literal index share one function once the
// pattern optimiser runs afterward.
func constantIndexKind(i int64) ast.PatternKind {
	name := constantIndexKindName(i)
	return newSingleFieldKind(name, "l", func(l ast.Term) ast.Term {
		return unrollIndexChain(l, i, boundsCheckedHead)
	})
}

// newSingleFieldKind is a tiny local helper so constindex.go does not need
// to reach into sugar's unexported simpleKind; it builds a one-field
// PatternKind from a plain Go closure.
func newSingleFieldKind(name, field string, body func(ast.Term) ast.Term) ast.PatternKind {
	return singleFieldKind{name: name, field: field, body: body}
}

type singleFieldKind struct {
	name  string
	field string
	body  func(ast.Term) ast.Term
}

func (k singleFieldKind) Name() string         { return k.name }
func (k singleFieldKind) FieldNames() []string { return []string{k.field} }
func (k singleFieldKind) Compose(f []ast.Term) ast.Term { return k.body(f[0]) }

// indexOptimizer rewrites sugar.IndexAccessList/NthField occurrences whose
// index field is a literal non-negative Integer into the matching constant
// kind family, grounded on constant_index_access_list.py's
// IndexAccessOptimizer.
type indexOptimizer struct {
	ast.BaseTransformer
}

func (o *indexOptimizer) TransformPattern(n *ast.Pattern) ast.Term {
	switch n.Kind.Name() {
	case "IndexAccessList":
		if lit, ok := literalIndex(n.Fields[1]); ok {
			l := ast.TransformTerm(o.Self, n.Fields[0])
			return &ast.Pattern{Kind: constantIndexKind(lit), Fields: []ast.Term{l}}
		}
	case "NthField":
		if lit, ok := literalIndex(n.Fields[1]); ok {
			d := ast.TransformTerm(o.Self, n.Fields[0])
			fields := sugar.Fields(d)
			return &ast.Pattern{Kind: constantIndexKindForField(lit), Fields: []ast.Term{fields}}
		}
	}
	return o.BaseTransformer.TransformPattern(n)
}

func constantIndexKindForField(i int64) ast.PatternKind {
	name := constantNthFieldKindName(i)
	return newSingleFieldKind(name, "d", func(l ast.Term) ast.Term {
		return unrollIndexChain(l, i, boundsCheckedHead)
	})
}

func literalIndex(t ast.Term) (int64, bool) {
	c, ok := t.(*ast.Constant)
	if !ok || c.Kind != ast.KindInteger {
		return 0, false
	}
	if !c.I.IsInt64() {
		return 0, false
	}
	i := c.I.Int64()
	if i < 0 {
		panic(compileerr.New(compileerr.NegativeConstantIndex, "constant index %d is negative", i))
	}
	return i, true
}

// IndexAccessOptimizer replaces literal-index IndexAccessList/NthField
// pattern occurrences in prog with the unrolled constant-index family.
func IndexAccessOptimizer(prog *ast.Program) *ast.Program {
	o := &indexOptimizer{}
	o.Self = o
	return ast.TransformTerm(o, prog).(*ast.Program)
}
