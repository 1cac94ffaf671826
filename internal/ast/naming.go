package ast

import "strings"

// SugarName wraps a logical name as "0<name>_", the reserved scheme used by
// every compiler-introduced binding: user code that avoids names matching
// 0*_ is guaranteed no collisions with compiler-generated names. The sugar
// layer's binders and the pattern optimiser's shared-function names
// ("0p_<Kind>_") go through this function rather than building the "0..._"
// form inline. The parameters of a shared function are the kind's bare
// field names, and the taint analysis's UUID-suffixed names exist only in
// its own throwaway compositions; neither uses this scheme.
func SugarName(name string) string {
	return "0" + name + "_"
}

// IsSugarName reports whether name could only have been produced by
// SugarName, i.e. matches the reserved 0*_ scheme.
func IsSugarName(name string) bool {
	return strings.HasPrefix(name, "0") && strings.HasSuffix(name, "_")
}
