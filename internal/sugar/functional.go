package sugar

import (
	"strconv"

	"github.com/OpShin/pluthon-go/internal/ast"
	"github.com/OpShin/pluthon-go/internal/compileerr"
)

// MapEntry is one statically-known key/value pair of a FunctionalMap.
type MapEntry struct {
	Key   ast.Term // a literal Integer, ByteString, Text, or Bool
	Value ast.Term
}

// equalsFor picks the equality builtin matching a literal key's kind, the
// same dispatch pluthon_functional_data.py's _EQUALS_MAP performs.
func equalsFor(key ast.Term) func(ast.Term, ast.Term) ast.Term {
	c, ok := key.(*ast.Constant)
	if !ok {
		panic("sugar.FunctionalMap: key must be a literal constant")
	}
	switch c.Kind {
	case ast.KindInteger:
		return EqualsInteger
	case ast.KindByteString:
		return EqualsByteString
	case ast.KindBool:
		return EqualsBool
	case ast.KindText:
		return func(a, b ast.Term) ast.Term {
			return EqualsByteString(EncodeUtf8(a), EncodeUtf8(b))
		}
	default:
		panic("sugar.FunctionalMap: unsupported key kind")
	}
}

// FunctionalMap builds a linear-scan lookup function over statically known
// entries: `\x def -> if x == k0 then #v0 else if x == k1 then #v1 ... else
// def`, the wrapped-lambda encoding pluthon_functional_data.py's
// FunctionalMap/FunctionalMapExtend use since Data has no native map of
// heterogeneous value types.
func FunctionalMap(entries []MapEntry) ast.Term {
	x := ast.SugarName("x")
	def := ast.SugarName("def")
	body := ast.Term(&ast.Var{Name: def})
	for i := len(entries) - 1; i >= 0; i-- {
		e := entries[i]
		body = &ast.Ite{
			Cond: equalsFor(e.Key)(&ast.Var{Name: x}, e.Key),
			Then: &ast.Delay{Inner: e.Value},
			Else: body,
		}
	}
	return &ast.Lambda{Params: []string{x, def}, Body: body}
}

// FunctionalMapAccess looks up k in m, Force-ing the matching Delay'd
// value, or evaluating the (also Delay'd) defaultVal on miss.
func FunctionalMapAccess(m, k, defaultVal ast.Term) ast.Term {
	return &ast.Force{Inner: &ast.Apply{Fun: m, Args: []ast.Term{k, &ast.Delay{Inner: defaultVal}}}}
}

// FunctionalTuple builds a fixed-size heterogeneous tuple as a
// self-applying lambda: `\f -> f (#v0) (#v1) ... (#vn)`, exactly
// pluthon_functional_data.py's FunctionalTuple encoding. An empty tuple
// lowers to Unit, since a zero-argument continuation has nothing to apply.
func FunctionalTuple(values ...ast.Term) ast.Term {
	if len(values) == 0 {
		return ast.Unit()
	}
	f := ast.SugarName("f")
	args := make([]ast.Term, len(values))
	for i, v := range values {
		args[i] = &ast.Delay{Inner: v}
	}
	return &ast.Lambda{Params: []string{f}, Body: &ast.Apply{Fun: &ast.Var{Name: f}, Args: args}}
}

// FunctionalTupleAccess extracts element index out of a size-element
// FunctionalTuple by applying it to a continuation that forces only that
// position.
func FunctionalTupleAccess(tuple ast.Term, index, size int) ast.Term {
	if size == 0 {
		panic(compileerr.ErrEmptyFunctionalTuple)
	}
	params := make([]string, size)
	for i := range params {
		params[i] = ast.SugarName("v" + strconv.Itoa(i))
	}
	return &ast.Apply{
		Fun: tuple,
		Args: []ast.Term{&ast.Lambda{
			Params: params,
			Body:   &ast.Force{Inner: &ast.Var{Name: params[index]}},
		}},
	}
}
