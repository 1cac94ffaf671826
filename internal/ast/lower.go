package ast

import (
	"github.com/OpShin/pluthon-go/internal/backend"
	"github.com/OpShin/pluthon-go/internal/compileerr"
)

// Lower translates a Term tree (normally the driver's fixed point) into the
// backend's smaller UPLC term vocabulary; any Pattern still in the tree is
// composed and lowered in place. It is
// the one place curried Lambda/Apply get split into single-argument form,
// Let gets desugared to nested application, Ite gets rewritten via the
// force/delay IfThenElse trick, and Error gets wrapped in a dummy lambda so
// the backend can never reduce it eagerly.
func Lower(t Term) backend.Term {
	switch n := t.(type) {
	case *Var:
		return &backend.Variable{Name: n.Name}

	case *Lambda:
		if len(n.Params) == 0 {
			panic(compileerr.ErrZeroParamLambda)
		}
		body := Lower(n.Body)
		for i := len(n.Params) - 1; i >= 0; i-- {
			body = &backend.Lambda{Param: n.Params[i], Body: body}
		}
		return body

	case *Apply:
		fun := Lower(n.Fun)
		for _, a := range n.Args {
			fun = &backend.Apply{Fun: fun, Arg: Lower(a)}
		}
		return fun

	case *Force:
		return &backend.Force{Term: Lower(n.Inner)}

	case *Delay:
		return &backend.Delay{Term: Lower(n.Inner)}

	case *Let:
		body := Lower(n.Body)
		for i := len(n.Bindings) - 1; i >= 0; i-- {
			b := n.Bindings[i]
			body = &backend.Apply{
				Fun: &backend.Lambda{Param: b.Name, Body: body},
				Arg: Lower(b.Value),
			}
		}
		return body

	case *Ite:
		return &backend.Force{Term: &backend.Apply{
			Fun: &backend.Apply{
				Fun: &backend.Apply{
					Fun: &backend.Force{Term: &backend.Builtin{Fun: backend.IfThenElse}},
					Arg: Lower(n.Cond),
				},
				Arg: &backend.Delay{Term: Lower(n.Then)},
			},
			Arg: &backend.Delay{Term: Lower(n.Else)},
		}}

	case *BuiltIn:
		return &backend.Builtin{Fun: backend.BuiltinFun(n.Op)}

	case *Error:
		return &backend.Lambda{Param: "_", Body: &backend.ErrorTerm{}}

	case *EmptyList:
		return lowerEmptyList(n)

	case *Constant:
		return lowerConstant(n)

	case *Pattern:
		return Lower(Compose(n))

	default:
		panic("ast.Lower: unhandled Term kind")
	}
}

func lowerConstant(n *Constant) backend.Term {
	c := &backend.Constant{}
	switch n.Kind {
	case KindInteger:
		c.Kind, c.I = backend.ConstInteger, n.I
	case KindByteString:
		c.Kind, c.Bytes = backend.ConstByteString, n.Bytes
	case KindText:
		c.Kind, c.Str = backend.ConstString, n.Str
	case KindBool:
		c.Kind, c.Bool = backend.ConstBool, n.Bool
	case KindUnit:
		c.Kind = backend.ConstUnit
	case KindRaw:
		panic("ast.Lower: KindRaw constant reached lowering without a backend-specific rule")
	}
	return c
}

// lowerEmptyList realises EmptyList as `MkNilData ()`/`MkNilPairData ()`
// depending on the element sample, same as original_source's EmptyList()/
// EmptyPairList() helpers: a sample built with PairSample lowers via
// MkNilPairData, every other sample (the Data-element case, by far the
// common one in this domain) lowers via MkNilData.
func lowerEmptyList(n *EmptyList) backend.Term {
	fn := backend.MkNilData
	if n.Sample.Pair {
		fn = backend.MkNilPairData
	}
	return &backend.Apply{
		Fun: &backend.Builtin{Fun: fn},
		Arg: lowerConstant(&Constant{Kind: KindUnit}),
	}
}
