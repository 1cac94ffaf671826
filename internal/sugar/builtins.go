package sugar

import "github.com/OpShin/pluthon-go/internal/ast"

// These mirror original_source/pluthon/pluthon_sugar.py's wrap_builtin_*
// family: a builtin is applied directly, or first Force'd once or twice,
// matching each primitive's declared arity in the UPLC builtin table. They
// are plain functions, not pattern kinds: a bare builtin application has no
// internal structure for the taint analysis to examine, and sharing one
// two-node Apply/BuiltIn term would cost more than it saves.

func builtin(op ast.BuiltinOp) ast.Term { return &ast.BuiltIn{Op: op} }

func unop(op ast.BuiltinOp) func(ast.Term) ast.Term {
	return func(x ast.Term) ast.Term { return &ast.Apply{Fun: builtin(op), Args: []ast.Term{x}} }
}

func unopForce(op ast.BuiltinOp) func(ast.Term) ast.Term {
	return func(x ast.Term) ast.Term {
		return &ast.Apply{Fun: &ast.Force{Inner: builtin(op)}, Args: []ast.Term{x}}
	}
}

func unopForceForce(op ast.BuiltinOp) func(ast.Term) ast.Term {
	return func(x ast.Term) ast.Term {
		return &ast.Apply{Fun: &ast.Force{Inner: &ast.Force{Inner: builtin(op)}}, Args: []ast.Term{x}}
	}
}

func binop(op ast.BuiltinOp) func(ast.Term, ast.Term) ast.Term {
	return func(x, y ast.Term) ast.Term { return &ast.Apply{Fun: builtin(op), Args: []ast.Term{x, y}} }
}

func binopForce(op ast.BuiltinOp) func(ast.Term, ast.Term) ast.Term {
	return func(x, y ast.Term) ast.Term {
		return &ast.Apply{Fun: &ast.Force{Inner: builtin(op)}, Args: []ast.Term{x, y}}
	}
}

func ternop(op ast.BuiltinOp) func(ast.Term, ast.Term, ast.Term) ast.Term {
	return func(x, y, z ast.Term) ast.Term {
		return &ast.Apply{Fun: builtin(op), Args: []ast.Term{x, y, z}}
	}
}

func ternopForceForce(op ast.BuiltinOp) func(ast.Term, ast.Term, ast.Term) ast.Term {
	return func(x, y, z ast.Term) ast.Term {
		return &ast.Apply{Fun: &ast.Force{Inner: &ast.Force{Inner: builtin(op)}}, Args: []ast.Term{x, y, z}}
	}
}

// hexopForce wraps ChooseData's scrutinee plus its 5 data-branch
// continuations, all behind one Force (the original's wrap_builtin_hexop_force).
func hexopForce(op ast.BuiltinOp) func(d, v, w, x, y, z ast.Term) ast.Term {
	return func(d, v, w, x, y, z ast.Term) ast.Term {
		return &ast.Apply{Fun: &ast.Force{Inner: builtin(op)}, Args: []ast.Term{d, v, w, x, y, z}}
	}
}

var (
	AddInteger             = binop(ast.AddInteger)
	SubtractInteger        = binop(ast.SubtractInteger)
	MultiplyInteger        = binop(ast.MultiplyInteger)
	DivideInteger          = binop(ast.DivideInteger)
	QuotientInteger        = binop(ast.QuotientInteger)
	RemainderInteger       = binop(ast.RemainderInteger)
	ModInteger             = binop(ast.ModInteger)
	EqualsInteger          = binop(ast.EqualsInteger)
	LessThanInteger        = binop(ast.LessThanInteger)
	LessThanEqualsInteger  = binop(ast.LessThanEqualsInteger)

	AppendByteString         = binop(ast.AppendByteString)
	ConsByteString           = binop(ast.ConsByteString)
	SliceByteString          = ternop(ast.SliceByteString)
	LengthOfByteString       = unop(ast.LengthOfByteString)
	IndexByteString          = binop(ast.IndexByteString)
	EqualsByteString         = binop(ast.EqualsByteString)
	LessThanByteString       = binop(ast.LessThanByteString)
	LessThanEqualsByteString = binop(ast.LessThanEqualsByteString)
	Sha2_256                 = unop(ast.Sha2_256)
	Sha3_256                 = unop(ast.Sha3_256)
	Blake2b_256              = unop(ast.Blake2b_256)
	VerifySignature          = unop(ast.VerifySignature)

	AppendString = binop(ast.AppendString)
	EqualsString = binop(ast.EqualsString)
	EncodeUtf8   = unop(ast.EncodeUtf8)
	DecodeUtf8   = unop(ast.DecodeUtf8)

	IfThenElseBuiltin = unopForce(ast.IfThenElse) // prefer sugar.Ite over calling this directly
	ChooseUnit        = unopForce(ast.ChooseUnit)
	TraceBuiltin      = binopForce(ast.Trace)

	FstPair = unopForceForce(ast.FstPair)
	SndPair = unopForceForce(ast.SndPair)

	ChooseListBuiltin = ternopForceForce(ast.ChooseList)
	MkCons            = binopForce(ast.MkCons)
	HeadList          = unopForce(ast.HeadList)
	TailList          = unopForce(ast.TailList)
	NullList          = unopForce(ast.NullList)

	ChooseData    = hexopForce(ast.ChooseData)
	ConstrData    = binop(ast.ConstrData)
	MapData       = unop(ast.MapData)
	ListData      = unop(ast.ListData)
	IData         = unop(ast.IData)
	BData         = unop(ast.BData)
	UnConstrData  = unop(ast.UnConstrData)
	UnMapData     = unop(ast.UnMapData)
	UnListData    = unop(ast.UnListData)
	UnIData       = unop(ast.UnIData)
	UnBData       = unop(ast.UnBData)
	EqualsData    = binop(ast.EqualsData)
	MkPairData    = binop(ast.MkPairData)
	MkNilData     = unop(ast.MkNilData)
	MkNilPairData = unop(ast.MkNilPairData)
)

// TraceConst traces a literal message (the only form the trace remover
// optimiser is permitted to elide) around value.
func TraceConst(message string, value ast.Term) ast.Term {
	return TraceBuiltin(ast.Text(message), value)
}

// TraceError traces name and then forces an Error, the shape every
// run-time error in a compiled program takes.
func TraceError(name string) ast.Term {
	return &ast.Apply{Fun: &ast.Error{}, Args: []ast.Term{TraceConst(name, ast.Unit())}}
}

// PrependList conses x onto the front of list l.
func PrependList(x, l ast.Term) ast.Term { return MkCons(x, l) }
