package backend

// builtinFunNames mirrors internal/ast.BuiltinOp's const block order, so
// BuiltinFun(int(op)) always names the same primitive as ast.BuiltinOp.
const (
	AddInteger BuiltinFun = iota
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

var builtinFunNames = [...]string{
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
