package ast

// BuiltinOp names a UPLC primitive. This is the small, fixed vocabulary the
// sugar layer's wrap_builtin_* helpers (internal/sugar) target; it mirrors
// the set original_source/pluthon/pluthon_sugar.py wraps.
type BuiltinOp int

const (
	AddInteger BuiltinOp = iota
	SubtractInteger
	MultiplyInteger
	DivideInteger
	QuotientInteger
	RemainderInteger
	ModInteger
	EqualsInteger
	LessThanInteger
	LessThanEqualsInteger

	AppendByteString
	ConsByteString
	SliceByteString
	LengthOfByteString
	IndexByteString
	EqualsByteString
	LessThanByteString
	LessThanEqualsByteString
	Sha2_256
	Sha3_256
	Blake2b_256
	VerifySignature

	AppendString
	EqualsString
	EncodeUtf8
	DecodeUtf8

	IfThenElse
	ChooseUnit
	Trace

	FstPair
	SndPair

	ChooseList
	MkCons
	HeadList
	TailList
	NullList

	ChooseData
	ConstrData
	MapData
	ListData
	IData
	BData
	UnConstrData
	UnMapData
	UnListData
	UnIData
	UnBData
	EqualsData
	MkPairData
	MkNilData
	MkNilPairData
)

// builtinNames backs BuiltinOp.String(); order must track the const block.
var builtinNames = [...]string{
	"AddInteger", "SubtractInteger", "MultiplyInteger", "DivideInteger",
	"QuotientInteger", "RemainderInteger", "ModInteger", "EqualsInteger",
	"LessThanInteger", "LessThanEqualsInteger",
	"AppendByteString", "ConsByteString", "SliceByteString",
	"LengthOfByteString", "IndexByteString", "EqualsByteString",
	"LessThanByteString", "LessThanEqualsByteString", "Sha2_256", "Sha3_256",
	"Blake2b_256", "VerifySignature",
	"AppendString", "EqualsString", "EncodeUtf8", "DecodeUtf8",
	"IfThenElse", "ChooseUnit", "Trace",
	"FstPair", "SndPair",
	"ChooseList", "MkCons", "HeadList", "TailList", "NullList",
	"ChooseData", "ConstrData", "MapData", "ListData", "IData", "BData",
	"UnConstrData", "UnMapData", "UnListData", "UnIData", "UnBData",
	"EqualsData", "MkPairData", "MkNilData", "MkNilPairData",
}

func (b BuiltinOp) String() string {
	if int(b) < 0 || int(b) >= len(builtinNames) {
		return "UnknownBuiltin"
	}
	return builtinNames[b]
}
