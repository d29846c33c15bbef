package env

import (
	"os"
	"path/filepath"
	"testing"

	"slot_backend/internal/payout"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestNewReelConfigFromYAML(t *testing.T) {
	path := writeConfig(t, `
reel:
  presets:
    - name: tight
      weights:
        DD: 2
        "7": 3
        BBB: 5
        BB: 9
        B: 24
        C: 1
        "0": 56
    - name: base
      weights:
        DD: 3
        "7": 3
        BBB: 6
        BB: 10
        B: 25
        C: 1
        "0": 52
`)

	cfgs, err := NewReelConfigFromYAML(path)
	if err != nil {
		t.Fatal(err)
	}
	if len(cfgs) != 2 {
		t.Fatalf("got %d presets, want 2", len(cfgs))
	}
	if cfgs[0].Name() != "tight" || cfgs[1].Name() != "base" {
		t.Errorf("preset names = %q, %q", cfgs[0].Name(), cfgs[1].Name())
	}
	if w := cfgs[1].SymbolWeights()[payout.Blank]; w != 52 {
		t.Errorf("base blank weight = %d, want 52", w)
	}
}

func TestNewReelConfigFromYAMLUnknownSymbol(t *testing.T) {
	path := writeConfig(t, `
reel:
  presets:
    - name: broken
      weights:
        XX: 100
`)
	if _, err := NewReelConfigFromYAML(path); err == nil {
		t.Fatal("expected error for unknown symbol")
	}
}

func TestNewReelConfigFromYAMLBadSum(t *testing.T) {
	path := writeConfig(t, `
reel:
  presets:
    - name: broken
      weights:
        DD: 10
        "0": 50
`)
	if _, err := NewReelConfigFromYAML(path); err == nil {
		t.Fatal("expected error for weights not summing to 100")
	}
}

func TestNewReelConfigFromYAMLEmpty(t *testing.T) {
	path := writeConfig(t, "reel:\n  presets: []\n")
	if _, err := NewReelConfigFromYAML(path); err == nil {
		t.Fatal("expected error for empty preset list")
	}
}
