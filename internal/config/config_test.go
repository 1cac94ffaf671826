package config_test

import (
	"path/filepath"
	"testing"

	"github.com/OpShin/pluthon-go/internal/config"
)

func boolPtr(b bool) *bool { return &b }

func TestUpdatePrefersOtherWhenSet(t *testing.T) {
	base := config.CompilationConfig{CompressPatterns: boolPtr(true), RemoveTrace: boolPtr(false)}
	other := config.CompilationConfig{CompressPatterns: boolPtr(false)}

	got := base.Update(other)

	if got.CompressPatternsOr(true) != false {
		t.Errorf("expected other's CompressPatterns=false to win")
	}
	if got.RemoveTraceOr(true) != false {
		t.Errorf("expected base's RemoveTrace=false to survive when other leaves it nil")
	}
}

func TestOrHelpersDefaultWhenUnset(t *testing.T) {
	var c config.CompilationConfig
	if !c.CompressPatternsOr(true) {
		t.Errorf("expected default true when unset")
	}
	if c.CompressPatternsOr(false) {
		t.Errorf("expected default false when unset")
	}
}

func TestOptLadderO1EnablesPatternsAndConstantIndex(t *testing.T) {
	if !config.OptO1.CompressPatternsOr(false) {
		t.Errorf("O1 should enable CompressPatterns")
	}
	if !config.OptO1.ConstantIndexAccessListOr(false) {
		t.Errorf("O1 should enable ConstantIndexAccessList")
	}
	if config.OptO1.IterativeUnfoldOr(true) {
		t.Errorf("O1 should not enable IterativeUnfoldPatterns")
	}
}

func TestOptLadderO3EnablesEverything(t *testing.T) {
	o3 := config.OptO3
	if !o3.CompressPatternsOr(false) || !o3.ConstantIndexAccessListOr(false) ||
		!o3.RemoveTraceOr(false) || !o3.IterativeUnfoldOr(false) {
		t.Errorf("O3 should enable every pass, got %#v", o3)
	}
}

func TestOptLevelsIndexedByLevel(t *testing.T) {
	if len(config.OptLevels) != 4 {
		t.Fatalf("expected 4 opt levels, got %d", len(config.OptLevels))
	}
	if config.OptLevels[1].CompressPatternsOr(false) != config.OptO1.CompressPatternsOr(false) {
		t.Errorf("OptLevels[1] should be OptO1")
	}
}

func TestLoadSaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pluthon.yaml")
	want := config.CompilationConfig{
		CompressPatterns: boolPtr(true),
		RemoveTrace:      boolPtr(false),
	}
	if err := config.Save(path, want); err != nil {
		t.Fatalf("Save: %v", err)
	}

	got, err := config.Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got.CompressPatternsOr(false) != true {
		t.Errorf("CompressPatterns did not round-trip")
	}
	if got.RemoveTraceOr(true) != false {
		t.Errorf("RemoveTrace did not round-trip")
	}
	if got.IterativeUnfoldPatterns != nil {
		t.Errorf("unset field should stay nil after round-trip, got %v", *got.IterativeUnfoldPatterns)
	}
}
