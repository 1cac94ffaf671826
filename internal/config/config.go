// Package config holds the compiler's CompilationConfig: an Option<bool>
// record merged in layers (defaults, an optimisation level, a YAML file,
// CLI flags) the way compiler_config.py's CompilationConfig.update does.
package config

// Version is the current pluthon-go version, set at build time via
// -ldflags.
var Version = "0.1.0"

// CompilationConfig controls which optimisation passes the driver
// (internal/pipeline) runs. Every field is a pointer so "unset" and
// "explicitly false" are distinguishable — the same Option<bool> shape
// compiler_config.py's dataclass fields use, translated from Python's
// "is not None" check to a Go nil check.
type CompilationConfig struct {
	CompressPatterns        *bool
	IterativeUnfoldPatterns *bool
	ConstantIndexAccessList *bool
	RemoveTrace             *bool
	UniqueVariableNames     *bool
}

func boolPtr(b bool) *bool { return &b }

// Update merges other onto c: a non-nil field of other always wins, a nil
// field of other falls back to c's own value. Mirrors
// CompilationConfig.update's "own_dict vs other_dict, prefer other when
// set" rule, field by field instead of through a dict comprehension.
func (c CompilationConfig) Update(other CompilationConfig) CompilationConfig {
	return CompilationConfig{
		CompressPatterns:        pickBool(c.CompressPatterns, other.CompressPatterns),
		IterativeUnfoldPatterns: pickBool(c.IterativeUnfoldPatterns, other.IterativeUnfoldPatterns),
		ConstantIndexAccessList: pickBool(c.ConstantIndexAccessList, other.ConstantIndexAccessList),
		RemoveTrace:             pickBool(c.RemoveTrace, other.RemoveTrace),
		UniqueVariableNames:     pickBool(c.UniqueVariableNames, other.UniqueVariableNames),
	}
}

func pickBool(own, other *bool) *bool {
	if other != nil {
		return other
	}
	return own
}

// get returns the field's value, or def if the field is unset.
func get(b *bool, def bool) bool {
	if b == nil {
		return def
	}
	return *b
}

// CompressPatternsOr reports whether pattern-sharing is enabled, defaulting
// to def when the field is unset.
func (c CompilationConfig) CompressPatternsOr(def bool) bool {
	return get(c.CompressPatterns, def)
}

// IterativeUnfoldOr reports whether the once-at-a-time pattern replacer
// runs instead of the all-at-once one, defaulting to def.
func (c CompilationConfig) IterativeUnfoldOr(def bool) bool {
	return get(c.IterativeUnfoldPatterns, def)
}

// ConstantIndexAccessListOr reports whether the constant-index specialiser
// runs, defaulting to def.
func (c CompilationConfig) ConstantIndexAccessListOr(def bool) bool {
	return get(c.ConstantIndexAccessList, def)
}

// RemoveTraceOr reports whether the trace-remover runs, defaulting to def.
func (c CompilationConfig) RemoveTraceOr(def bool) bool {
	return get(c.RemoveTrace, def)
}

// UniqueVariableNamesOr reports whether every bound variable should be
// renamed to a globally unique name before lowering. No pass in this
// core's own pipeline reads this field — it is a back-end option,
// forwarded unexamined through Backend.Compile's cfg argument; this
// accessor exists for a Backend implementation to call, not for
// internal/pipeline.
func (c CompilationConfig) UniqueVariableNamesOr(def bool) bool {
	return get(c.UniqueVariableNames, def)
}

// Optimisation levels, mirroring compiler_config.py's OPT_O0..OPT_O3
// ladder: each level updates onto the previous one, so O2 differs from O1
// only in what it explicitly flips.
var (
	OptO0 = CompilationConfig{
		CompressPatterns:        boolPtr(false),
		IterativeUnfoldPatterns: boolPtr(false),
	}
	OptO1 = OptO0.Update(CompilationConfig{
		CompressPatterns:        boolPtr(true),
		ConstantIndexAccessList: boolPtr(true),
	})
	OptO2 = OptO1.Update(CompilationConfig{})
	OptO3 = OptO2.Update(CompilationConfig{
		UniqueVariableNames:     boolPtr(true),
		IterativeUnfoldPatterns: boolPtr(true),
		RemoveTrace:             boolPtr(true),
	})
)

// OptLevels indexes the ladder by -O level for CLI/YAML lookups.
var OptLevels = []CompilationConfig{OptO0, OptO1, OptO2, OptO3}

// Default is the configuration used when no level and no file override it,
// same role as compiler_config.py's DEFAULT_CONFIG (which pins to O1).
var Default = CompilationConfig{}.Update(OptO1)

// HelpText maps each field's snake_case key to a one-sentence description,
// mirroring ARGPARSE_ARGS' per-key help strings. pkg/cli does not print it.
var HelpText = map[string]string{
	"compress_patterns": "Enables the compression of re-occurring code patterns. " +
		"Can reduce memory and CPU steps but increases the size of the compiled contract.",
	"iterative_unfold_patterns": "Enables iterative unfolding of patterns. " +
		"Improves application of pattern optimization but is slower.",
	"constant_index_access_list": "Replaces index accesses with constant indices by optimized constant accesses.",
	"remove_trace":               "Removes trace calls from the compiled code. Makes debugging harder but reduces contract size.",
	"unique_variable_names":      "Renames every bound variable to a globally unique name before lowering.",
}
