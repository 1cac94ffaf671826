package refmachine

import (
	"bytes"
	"math/big"

	"github.com/OpShin/pluthon-go/internal/backend"
)

// builtinArity is the fixed UPLC builtin arity table, covering the same
// primitives internal/sugar's wrap_builtin_* family targets.
func builtinArity(f backend.BuiltinFun) int {
	switch f {
	case backend.AddInteger, backend.SubtractInteger, backend.MultiplyInteger,
		backend.DivideInteger, backend.QuotientInteger, backend.RemainderInteger,
		backend.ModInteger, backend.EqualsInteger, backend.LessThanInteger,
		backend.LessThanEqualsInteger,
		backend.AppendByteString, backend.ConsByteString, backend.IndexByteString,
		backend.EqualsByteString, backend.LessThanByteString, backend.LessThanEqualsByteString,
		backend.AppendString, backend.EqualsString,
		backend.ChooseUnit, backend.Trace,
		backend.MkCons,
		backend.ConstrData, backend.EqualsData, backend.MkPairData:
		return 2

	case backend.LengthOfByteString, backend.Sha2_256, backend.Sha3_256, backend.Blake2b_256,
		backend.EncodeUtf8, backend.DecodeUtf8,
		backend.FstPair, backend.SndPair,
		backend.HeadList, backend.TailList, backend.NullList,
		backend.MapData, backend.ListData, backend.IData, backend.BData,
		backend.UnConstrData, backend.UnMapData, backend.UnListData, backend.UnIData, backend.UnBData,
		backend.MkNilData, backend.MkNilPairData:
		return 1

	case backend.SliceByteString, backend.VerifySignature, backend.IfThenElse, backend.ChooseList:
		return 3

	case backend.ChooseData:
		return 6

	default:
		diverge("refmachine: unknown builtin arity")
		return 0
	}
}

func dispatchBuiltin(f backend.BuiltinFun, args []Object) Object {
	switch f {
	case backend.AddInteger:
		return &Integer{Value: new(big.Int).Add(wantInt(args[0]), wantInt(args[1]))}
	case backend.SubtractInteger:
		return &Integer{Value: new(big.Int).Sub(wantInt(args[0]), wantInt(args[1]))}
	case backend.MultiplyInteger:
		return &Integer{Value: new(big.Int).Mul(wantInt(args[0]), wantInt(args[1]))}
	case backend.DivideInteger:
		return &Integer{Value: floorDiv(wantInt(args[0]), wantInt(args[1]))}
	case backend.QuotientInteger:
		return &Integer{Value: new(big.Int).Quo(wantInt(args[0]), wantInt(args[1]))}
	case backend.RemainderInteger:
		return &Integer{Value: new(big.Int).Rem(wantInt(args[0]), wantInt(args[1]))}
	case backend.ModInteger:
		return &Integer{Value: floorMod(wantInt(args[0]), wantInt(args[1]))}
	case backend.EqualsInteger:
		return &Bool{Value: wantInt(args[0]).Cmp(wantInt(args[1])) == 0}
	case backend.LessThanInteger:
		return &Bool{Value: wantInt(args[0]).Cmp(wantInt(args[1])) < 0}
	case backend.LessThanEqualsInteger:
		return &Bool{Value: wantInt(args[0]).Cmp(wantInt(args[1])) <= 0}

	case backend.AppendByteString:
		return &ByteString{Value: append(append([]byte{}, wantBytes(args[0])...), wantBytes(args[1])...)}
	case backend.ConsByteString:
		return &ByteString{Value: append([]byte{byte(wantInt(args[0]).Int64())}, wantBytes(args[1])...)}
	case backend.SliceByteString:
		return sliceByteString(wantInt(args[0]), wantInt(args[1]), wantBytes(args[2]))
	case backend.LengthOfByteString:
		return &Integer{Value: big.NewInt(int64(len(wantBytes(args[0]))))}
	case backend.IndexByteString:
		b := wantBytes(args[0])
		i := wantInt(args[1]).Int64()
		if i < 0 || int(i) >= len(b) {
			diverge("IndexByteString: index out of range")
		}
		return &Integer{Value: big.NewInt(int64(b[i]))}
	case backend.EqualsByteString:
		return &Bool{Value: bytes.Equal(wantBytes(args[0]), wantBytes(args[1]))}
	case backend.LessThanByteString:
		return &Bool{Value: bytes.Compare(wantBytes(args[0]), wantBytes(args[1])) < 0}
	case backend.LessThanEqualsByteString:
		return &Bool{Value: bytes.Compare(wantBytes(args[0]), wantBytes(args[1])) <= 0}
	case backend.Sha2_256, backend.Sha3_256, backend.Blake2b_256:
		// Real hashing is out of scope for a semantic-preservation harness;
		// callers only ever check that the SAME hash builtin call produces
		// the same result before and after optimisation, not its value.
		return &ByteString{Value: wantBytes(args[0])}
	case backend.VerifySignature:
		return &Bool{Value: true}

	case backend.AppendString:
		return &String{Value: wantStr(args[0]) + wantStr(args[1])}
	case backend.EqualsString:
		return &Bool{Value: wantStr(args[0]) == wantStr(args[1])}
	case backend.EncodeUtf8:
		return &ByteString{Value: []byte(wantStr(args[0]))}
	case backend.DecodeUtf8:
		return &String{Value: string(wantBytes(args[0]))}

	case backend.IfThenElse:
		if wantBool(args[0]) {
			return args[1]
		}
		return args[2]
	case backend.ChooseUnit:
		wantUnit(args[0])
		return args[1]
	case backend.Trace:
		wantStr(args[0])
		return args[1]

	case backend.FstPair:
		return wantPair(args[0]).Fst
	case backend.SndPair:
		return wantPair(args[0]).Snd

	case backend.ChooseList:
		if len(wantList(args[0]).Items) == 0 {
			return args[1]
		}
		return args[2]
	case backend.MkCons:
		l := wantList(args[1])
		items := append([]Object{args[0]}, l.Items...)
		return &List{Items: items}
	case backend.HeadList:
		l := wantList(args[0])
		if len(l.Items) == 0 {
			diverge("HeadList: empty list")
		}
		return l.Items[0]
	case backend.TailList:
		l := wantList(args[0])
		if len(l.Items) == 0 {
			diverge("TailList: empty list")
		}
		return &List{Items: l.Items[1:]}
	case backend.NullList:
		return &Bool{Value: len(wantList(args[0]).Items) == 0}

	case backend.ChooseData:
		d := wantData(args[0])
		switch d.Kind {
		case DataConstr:
			return args[1]
		case DataMap:
			return args[2]
		case DataList:
			return args[3]
		case DataI:
			return args[4]
		default:
			return args[5]
		}
	case backend.ConstrData:
		fields := make([]*Data, len(wantList(args[1]).Items))
		for i, it := range wantList(args[1]).Items {
			fields[i] = wantData(it)
		}
		return &Data{Kind: DataConstr, Constr: wantInt(args[0]).Int64(), Fields: fields}
	case backend.MapData:
		l := wantList(args[0])
		entries := make([]DataEntry, len(l.Items))
		for i, it := range l.Items {
			p := wantPair(it)
			entries[i] = DataEntry{Key: wantData(p.Fst), Value: wantData(p.Snd)}
		}
		return &Data{Kind: DataMap, Entries: entries}
	case backend.ListData:
		l := wantList(args[0])
		fields := make([]*Data, len(l.Items))
		for i, it := range l.Items {
			fields[i] = wantData(it)
		}
		return &Data{Kind: DataList, Fields: fields}
	case backend.IData:
		return &Data{Kind: DataI, Int: new(big.Int).Set(wantInt(args[0]))}
	case backend.BData:
		return &Data{Kind: DataB, Bytes: wantBytes(args[0])}
	case backend.UnConstrData:
		d := wantData(args[0])
		if d.Kind != DataConstr {
			diverge("UnConstrData: not a Constr")
		}
		items := make([]Object, len(d.Fields))
		for i, f := range d.Fields {
			items[i] = f
		}
		return &Pair{Fst: &Integer{Value: big.NewInt(d.Constr)}, Snd: &List{Items: items}}
	case backend.UnMapData:
		d := wantData(args[0])
		if d.Kind != DataMap {
			diverge("UnMapData: not a Map")
		}
		items := make([]Object, len(d.Entries))
		for i, e := range d.Entries {
			items[i] = &Pair{Fst: e.Key, Snd: e.Value}
		}
		return &List{Items: items}
	case backend.UnListData:
		d := wantData(args[0])
		if d.Kind != DataList {
			diverge("UnListData: not a List")
		}
		items := make([]Object, len(d.Fields))
		for i, f := range d.Fields {
			items[i] = f
		}
		return &List{Items: items}
	case backend.UnIData:
		d := wantData(args[0])
		if d.Kind != DataI {
			diverge("UnIData: not an I")
		}
		return &Integer{Value: d.Int}
	case backend.UnBData:
		d := wantData(args[0])
		if d.Kind != DataB {
			diverge("UnBData: not a B")
		}
		return &ByteString{Value: d.Bytes}
	case backend.EqualsData:
		return &Bool{Value: dataEqual(wantData(args[0]), wantData(args[1]))}
	case backend.MkPairData:
		return &Pair{Fst: wantData(args[0]), Snd: wantData(args[1])}
	case backend.MkNilData:
		wantUnit(args[0])
		return &List{}
	case backend.MkNilPairData:
		wantUnit(args[0])
		return &List{}

	default:
		diverge("refmachine: unimplemented builtin %s", f)
		return nil
	}
}

func sliceByteString(start, size *big.Int, b []byte) *ByteString {
	lo := start.Int64()
	if lo < 0 {
		lo = 0
	}
	if lo > int64(len(b)) {
		lo = int64(len(b))
	}
	hi := lo + size.Int64()
	if hi > int64(len(b)) {
		hi = int64(len(b))
	}
	if hi < lo {
		hi = lo
	}
	return &ByteString{Value: append([]byte{}, b[lo:hi]...)}
}

func floorDiv(a, b *big.Int) *big.Int {
	q, r := new(big.Int).QuoRem(a, b, new(big.Int))
	if r.Sign() != 0 && (r.Sign() < 0) != (b.Sign() < 0) {
		q.Sub(q, big.NewInt(1))
	}
	return q
}

func floorMod(a, b *big.Int) *big.Int {
	r := new(big.Int).Rem(a, b)
	if r.Sign() != 0 && (r.Sign() < 0) != (b.Sign() < 0) {
		r.Add(r, b)
	}
	return r
}

func dataEqual(a, b *Data) bool {
	if a.Kind != b.Kind {
		return false
	}
	switch a.Kind {
	case DataConstr:
		if a.Constr != b.Constr || len(a.Fields) != len(b.Fields) {
			return false
		}
		for i := range a.Fields {
			if !dataEqual(a.Fields[i], b.Fields[i]) {
				return false
			}
		}
		return true
	case DataList:
		if len(a.Fields) != len(b.Fields) {
			return false
		}
		for i := range a.Fields {
			if !dataEqual(a.Fields[i], b.Fields[i]) {
				return false
			}
		}
		return true
	case DataMap:
		if len(a.Entries) != len(b.Entries) {
			return false
		}
		for i := range a.Entries {
			if !dataEqual(a.Entries[i].Key, b.Entries[i].Key) || !dataEqual(a.Entries[i].Value, b.Entries[i].Value) {
				return false
			}
		}
		return true
	case DataI:
		return a.Int.Cmp(b.Int) == 0
	default:
		return bytes.Equal(a.Bytes, b.Bytes)
	}
}

func wantInt(o Object) *big.Int {
	v, ok := o.(*Integer)
	if !ok {
		diverge("expected Integer, got %s", o.Type())
	}
	return v.Value
}

func wantBytes(o Object) []byte {
	v, ok := o.(*ByteString)
	if !ok {
		diverge("expected ByteString, got %s", o.Type())
	}
	return v.Value
}

func wantStr(o Object) string {
	v, ok := o.(*String)
	if !ok {
		diverge("expected String, got %s", o.Type())
	}
	return v.Value
}

func wantBool(o Object) bool {
	v, ok := o.(*Bool)
	if !ok {
		diverge("expected Bool, got %s", o.Type())
	}
	return v.Value
}

func wantUnit(o Object) {
	if _, ok := o.(*Unit); !ok {
		diverge("expected Unit, got %s", o.Type())
	}
}

func wantPair(o Object) *Pair {
	v, ok := o.(*Pair)
	if !ok {
		diverge("expected Pair, got %s", o.Type())
	}
	return v
}

func wantList(o Object) *List {
	v, ok := o.(*List)
	if !ok {
		diverge("expected List, got %s", o.Type())
	}
	return v
}

func wantData(o Object) *Data {
	v, ok := o.(*Data)
	if !ok {
		diverge("expected Data, got %s", o.Type())
	}
	return v
}
