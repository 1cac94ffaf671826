package sugar

import "github.com/OpShin/pluthon-go/internal/ast"

// EmptyList builds the empty Data list, Apply(MkNilData, Unit()) in
// original_source/pluthon/pluthon_sugar.py's EmptyList().
func EmptyList() ast.Term { return MkNilData(ast.Unit()) }

// EmptyPairList builds the empty (Data, Data) pair list.
func EmptyPairList() ast.Term { return MkNilPairData(ast.Unit()) }

var singleDataListKind = newKind("SingleDataList", []string{"x"}, func(f []ast.Term) ast.Term {
	return PrependList(f[0], EmptyList())
})

// SingleDataList builds a one-element Data list, pluthon_sugar.py's
// SingleList.
func SingleDataList(x ast.Term) ast.Term { return pattern(singleDataListKind, x) }

var singleDataPairListKind = newKind("SingleDataPairList", []string{"x"}, func(f []ast.Term) ast.Term {
	return PrependList(f[0], EmptyPairList())
})

// SingleDataPairList builds a one-element (Data, Data) pair list.
func SingleDataPairList(x ast.Term) ast.Term { return pattern(singleDataPairListKind, x) }

var indexAccessListKind = newKind("IndexAccessList", []string{"l", "i"}, func(f []ast.Term) ast.Term {
	return recList([]string{"i", "xs"}, func(p map[string]ast.Term, self ast.Term) ast.Term {
		return &ast.Ite{
			Cond: NullList(p["xs"]),
			Then: TraceError("IndexError"),
			Else: &ast.Ite{
				Cond: EqualsInteger(p["i"], ast.Integer(0)),
				Then: HeadList(p["xs"]),
				Else: &ast.Apply{Fun: self, Args: []ast.Term{
					SubtractInteger(p["i"], ast.Integer(1)),
					TailList(p["xs"]),
					self,
				}},
			},
		}
	}, f[1], f[0])
})

// IndexAccessList indexes list l at integer index i, diverging with an
// IndexError trace on out-of-range access. Grounded directly on
// pluthon_sugar.py's IndexAccessList self-applying "g" combinator.
func IndexAccessList(l, i ast.Term) ast.Term { return pattern(indexAccessListKind, l, i) }

var unsafeIndexAccessListKind = newKind("UnsafeIndexAccessList", []string{"l", "i"}, func(f []ast.Term) ast.Term {
	return recList([]string{"i", "xs"}, func(p map[string]ast.Term, self ast.Term) ast.Term {
		return &ast.Ite{
			Cond: EqualsInteger(p["i"], ast.Integer(0)),
			Then: HeadList(p["xs"]),
			Else: &ast.Apply{Fun: self, Args: []ast.Term{
				SubtractInteger(p["i"], ast.Integer(1)),
				TailList(p["xs"]),
				self,
			}},
		}
	}, f[1], f[0])
})

// UnsafeIndexAccessList is IndexAccessList without the NullList bounds
// check (after original_source/pluthon/optimize/fast_index_access_list.py):
// smaller and cheaper, but an out-of-range index is undefined behavior
// instead of a diverging IndexError trace. No optimisation pass or CLI
// option produces it; callers build it directly.
func UnsafeIndexAccessList(l, i ast.Term) ast.Term { return pattern(unsafeIndexAccessListKind, l, i) }

// IteNullList is a one-shot helper for the common "if list is empty use
// onEmpty else use onNonEmpty(head, tail)" shape; not a pattern kind
// because onEmpty/onNonEmpty are normally distinct ast at every call site.
func IteNullList(l, onEmpty, onNonEmptyHead, onNonEmptyTail ast.Term, onNonEmptyFn func(head, tail ast.Term) ast.Term) ast.Term {
	return &ast.Ite{
		Cond: NullList(l),
		Then: onEmpty,
		Else: onNonEmptyFn(onNonEmptyHead, onNonEmptyTail),
	}
}

var foldListKind = newKind("FoldList", []string{"l", "z", "f"}, func(fl []ast.Term) ast.Term {
	return recList([]string{"xs", "acc"}, func(p map[string]ast.Term, self ast.Term) ast.Term {
		return &ast.Ite{
			Cond: NullList(p["xs"]),
			Then: p["acc"],
			Else: &ast.Apply{Fun: self, Args: []ast.Term{
				TailList(p["xs"]),
				&ast.Apply{Fun: fl[2], Args: []ast.Term{p["acc"], HeadList(p["xs"])}},
				self,
			}},
		}
	}, fl[0], fl[1])
})

// FoldList left-folds f over l starting from z: f(...f(f(z, l[0]), l[1])..., l[n-1]).
// Generalises the IndexAccessList self-apply idiom to accumulate a running
// value instead of counting down an index.
func FoldList(l, z, f ast.Term) ast.Term { return pattern(foldListKind, l, z, f) }

var rfoldListKind = newKind("RFoldList", []string{"l", "z", "f"}, func(fl []ast.Term) ast.Term {
	return recList([]string{"xs"}, func(p map[string]ast.Term, self ast.Term) ast.Term {
		return &ast.Ite{
			Cond: NullList(p["xs"]),
			Then: fl[1],
			Else: &ast.Apply{Fun: fl[2], Args: []ast.Term{
				HeadList(p["xs"]),
				&ast.Apply{Fun: self, Args: []ast.Term{TailList(p["xs"]), self}},
			}},
		}
	}, fl[0])
})

// RFoldList right-folds f over l: f(l[0], f(l[1], ... f(l[n-1], z))).
func RFoldList(l, z, f ast.Term) ast.Term { return pattern(rfoldListKind, l, z, f) }

var mapListKind = newKind("MapList", []string{"l", "f"}, func(fl []ast.Term) ast.Term {
	return recList([]string{"xs"}, func(p map[string]ast.Term, self ast.Term) ast.Term {
		return &ast.Ite{
			Cond: NullList(p["xs"]),
			Then: EmptyList(),
			Else: PrependList(
				&ast.Apply{Fun: fl[1], Args: []ast.Term{HeadList(p["xs"])}},
				&ast.Apply{Fun: self, Args: []ast.Term{TailList(p["xs"]), self}},
			),
		}
	}, fl[0])
})

// MapList applies f to every element of l, building a new Data list.
func MapList(l, f ast.Term) ast.Term { return pattern(mapListKind, l, f) }

var filterListKind = newKind("FilterList", []string{"l", "pred"}, func(fl []ast.Term) ast.Term {
	return recList([]string{"xs"}, func(p map[string]ast.Term, self ast.Term) ast.Term {
		return &ast.Ite{
			Cond: NullList(p["xs"]),
			Then: EmptyList(),
			Else: &ast.Ite{
				Cond: &ast.Apply{Fun: fl[1], Args: []ast.Term{HeadList(p["xs"])}},
				Then: PrependList(HeadList(p["xs"]), &ast.Apply{Fun: self, Args: []ast.Term{TailList(p["xs"]), self}}),
				Else: &ast.Apply{Fun: self, Args: []ast.Term{TailList(p["xs"]), self}},
			},
		}
	}, fl[0])
})

// FilterList keeps only the elements of l for which pred is true.
func FilterList(l, pred ast.Term) ast.Term { return pattern(filterListKind, l, pred) }

var mapFilterListKind = newKind("MapFilterList", []string{"l", "pred", "f"}, func(fl []ast.Term) ast.Term {
	return recList([]string{"xs"}, func(p map[string]ast.Term, self ast.Term) ast.Term {
		return &ast.Ite{
			Cond: NullList(p["xs"]),
			Then: EmptyList(),
			Else: &ast.Ite{
				Cond: &ast.Apply{Fun: fl[1], Args: []ast.Term{HeadList(p["xs"])}},
				Then: PrependList(
					&ast.Apply{Fun: fl[2], Args: []ast.Term{HeadList(p["xs"])}},
					&ast.Apply{Fun: self, Args: []ast.Term{TailList(p["xs"]), self}},
				),
				Else: &ast.Apply{Fun: self, Args: []ast.Term{TailList(p["xs"]), self}},
			},
		}
	}, fl[0])
})

// MapFilterList filters l by pred then maps f over the survivors in one
// traversal, avoiding building the intermediate filtered list FilterList
// followed by MapList would allocate.
func MapFilterList(l, pred, f ast.Term) ast.Term { return pattern(mapFilterListKind, l, pred, f) }

var findListKind = newKind("FindList", []string{"l", "pred"}, func(fl []ast.Term) ast.Term {
	return recList([]string{"xs"}, func(p map[string]ast.Term, self ast.Term) ast.Term {
		return &ast.Ite{
			Cond: NullList(p["xs"]),
			Then: TraceError("NotFoundError"),
			Else: &ast.Ite{
				Cond: &ast.Apply{Fun: fl[1], Args: []ast.Term{HeadList(p["xs"])}},
				Then: HeadList(p["xs"]),
				Else: &ast.Apply{Fun: self, Args: []ast.Term{TailList(p["xs"]), self}},
			},
		}
	}, fl[0])
})

// FindList returns the first element of l satisfying pred, or diverges
// with a NotFoundError trace.
func FindList(l, pred ast.Term) ast.Term { return pattern(findListKind, l, pred) }

var anyListKind = newKind("AnyList", []string{"l", "pred"}, func(fl []ast.Term) ast.Term {
	return recList([]string{"xs"}, func(p map[string]ast.Term, self ast.Term) ast.Term {
		return &ast.Ite{
			Cond: NullList(p["xs"]),
			Then: ast.Bool(false),
			Else: Or(
				&ast.Apply{Fun: fl[1], Args: []ast.Term{HeadList(p["xs"])}},
				&ast.Apply{Fun: self, Args: []ast.Term{TailList(p["xs"]), self}},
			),
		}
	}, fl[0])
})

// AnyList reports whether pred holds for at least one element of l.
func AnyList(l, pred ast.Term) ast.Term { return pattern(anyListKind, l, pred) }

var allListKind = newKind("AllList", []string{"l", "pred"}, func(fl []ast.Term) ast.Term {
	return recList([]string{"xs"}, func(p map[string]ast.Term, self ast.Term) ast.Term {
		return &ast.Ite{
			Cond: NullList(p["xs"]),
			Then: ast.Bool(true),
			Else: And(
				&ast.Apply{Fun: fl[1], Args: []ast.Term{HeadList(p["xs"])}},
				&ast.Apply{Fun: self, Args: []ast.Term{TailList(p["xs"]), self}},
			),
		}
	}, fl[0])
})

// AllList reports whether pred holds for every element of l.
func AllList(l, pred ast.Term) ast.Term { return pattern(allListKind, l, pred) }

var lengthListKind = newKind("LengthList", []string{"l"}, func(f []ast.Term) ast.Term {
	return FoldList(f[0], ast.Integer(0), &ast.Lambda{
		Params: []string{ast.SugarName("acc"), ast.SugarName("x")},
		Body:   AddInteger(&ast.Var{Name: ast.SugarName("acc")}, ast.Integer(1)),
	})
})

// LengthList counts the elements of l, built on FoldList.
func LengthList(l ast.Term) ast.Term { return pattern(lengthListKind, l) }

var takeListKind = newKind("TakeList", []string{"l", "n"}, func(fl []ast.Term) ast.Term {
	return recList([]string{"n", "xs"}, func(p map[string]ast.Term, self ast.Term) ast.Term {
		return &ast.Ite{
			Cond: Or(LessThanEqualsInteger(p["n"], ast.Integer(0)), NullList(p["xs"])),
			Then: EmptyList(),
			Else: PrependList(HeadList(p["xs"]), &ast.Apply{Fun: self, Args: []ast.Term{
				SubtractInteger(p["n"], ast.Integer(1)), TailList(p["xs"]), self,
			}}),
		}
	}, fl[1], fl[0])
})

// TakeList returns the first n elements of l (or fewer, if l is shorter).
func TakeList(l, n ast.Term) ast.Term { return pattern(takeListKind, l, n) }

var dropListKind = newKind("DropList", []string{"l", "n"}, func(fl []ast.Term) ast.Term {
	return recList([]string{"n", "xs"}, func(p map[string]ast.Term, self ast.Term) ast.Term {
		return &ast.Ite{
			Cond: Or(LessThanEqualsInteger(p["n"], ast.Integer(0)), NullList(p["xs"])),
			Then: p["xs"],
			Else: &ast.Apply{Fun: self, Args: []ast.Term{
				SubtractInteger(p["n"], ast.Integer(1)), TailList(p["xs"]), self,
			}},
		}
	}, fl[1], fl[0])
})

// DropList drops the first n elements of l (or all of it, if shorter).
func DropList(l, n ast.Term) ast.Term { return pattern(dropListKind, l, n) }

var sliceListKind = newKind("SliceList", []string{"l", "start", "size"}, func(f []ast.Term) ast.Term {
	return TakeList(DropList(f[0], f[1]), f[2])
})

// SliceList returns up to size elements of l starting at index start.
func SliceList(l, start, size ast.Term) ast.Term { return pattern(sliceListKind, l, start, size) }

var appendListKind = newKind("AppendList", []string{"l1", "l2"}, func(fl []ast.Term) ast.Term {
	return recList([]string{"xs"}, func(p map[string]ast.Term, self ast.Term) ast.Term {
		return &ast.Ite{
			Cond: NullList(p["xs"]),
			Then: fl[1],
			Else: PrependList(HeadList(p["xs"]), &ast.Apply{Fun: self, Args: []ast.Term{TailList(p["xs"]), self}}),
		}
	}, fl[0])
})

// AppendList concatenates l1 and l2.
func AppendList(l1, l2 ast.Term) ast.Term { return pattern(appendListKind, l1, l2) }

var rangeKind = newKind("Range", []string{"n"}, func(f []ast.Term) ast.Term {
	return recList([]string{"i"}, func(p map[string]ast.Term, self ast.Term) ast.Term {
		return &ast.Ite{
			Cond: EqualsInteger(p["i"], f[0]),
			Then: EmptyList(),
			Else: PrependList(
				IData(p["i"]),
				&ast.Apply{Fun: self, Args: []ast.Term{AddInteger(p["i"], ast.Integer(1)), self}},
			),
		}
	}, ast.Integer(0))
})

// Range builds the Data-encoded integer list [0, 1, ..., n-1].
func Range(n ast.Term) ast.Term { return pattern(rangeKind, n) }
