package sugar

import "github.com/OpShin/pluthon-go/internal/ast"

var constructorKind = newKind("Constructor", []string{"d"}, func(f []ast.Term) ast.Term {
	return FstPair(UnConstrData(f[0]))
})

// Constructor extracts the constructor tag of a data value, grounded on
// pluthon_sugar.py's Constructor.
func Constructor(d ast.Term) ast.Term { return pattern(constructorKind, d) }

var fieldsKind = newKind("Fields", []string{"d"}, func(f []ast.Term) ast.Term {
	return SndPair(UnConstrData(f[0]))
})

// Fields extracts the constructor field list of a data value.
func Fields(d ast.Term) ast.Term { return pattern(fieldsKind, d) }

var nthFieldKind = newKind("NthField", []string{"d", "n"}, func(f []ast.Term) ast.Term {
	return IndexAccessList(Fields(f[0]), f[1])
})

// NthField extracts the n-th constructor field of a data value.
func NthField(d, n ast.Term) ast.Term { return pattern(nthFieldKind, d, n) }

var noneDataKind = newKind("NoneData", nil, func(f []ast.Term) ast.Term {
	return ConstrData(ast.Integer(0), EmptyList())
})

// NoneData builds the Option.None data encoding, constructor tag 0.
func NoneData() ast.Term { return pattern(noneDataKind) }

var someDataKind = newKind("SomeData", []string{"x"}, func(f []ast.Term) ast.Term {
	return ConstrData(ast.Integer(1), SingleDataList(f[0]))
})

// SomeData builds the Option.Some data encoding, constructor tag 1. x must
// already be of Data type.
func SomeData(x ast.Term) ast.Term { return pattern(someDataKind, x) }

// DelayedChooseData is a one-shot builder, not a pattern kind: its six
// continuation branches are typically each a distinct Delay'd term built
// fresh at the call site, so sharing the call itself (rather than its
// branches) would not save anything. It wraps ChooseData's Force/Delay
// convention: each of constr/mapv/listv/intv/bytesv is forced only along
// the branch ChooseData selects.
func DelayedChooseData(d, constr, mapv, listv, intv, bytesv ast.Term) ast.Term {
	return &ast.Force{Inner: ChooseData(d,
		&ast.Delay{Inner: constr},
		&ast.Delay{Inner: mapv},
		&ast.Delay{Inner: listv},
		&ast.Delay{Inner: intv},
		&ast.Delay{Inner: bytesv},
	)}
}
