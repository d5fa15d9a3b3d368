package config

import (
	"os"
	"path/filepath"
	"testing"

	"huffman_compression_go/pkg/huffman"
)

func env(m map[string]string) func(string) string {
	return func(k string) string { return m[k] }
}

func TestDefaults(t *testing.T) {
	cfg, warnings := LoadFrom(env(nil))
	if len(warnings) != 0 {
		t.Fatalf("warnings: %v", warnings)
	}
	if cfg != Default() {
		t.Fatalf("cfg = %+v", cfg)
	}
	opts, err := cfg.CodecOptions()
	if err != nil {
		t.Fatal(err)
	}
	want := huffman.Options{Strategy: huffman.StrategyTree, SymbolWidth: 21, Tagged: true}
	if opts != want {
		t.Fatalf("opts = %+v, want %+v", opts, want)
	}
}

func TestFileThenEnvPrecedence(t *testing.T) {
	path := filepath.Join(t.TempDir(), "huff.json")
	body := `{"port":"9000","strategy":"table","symbol_width":16,"database_url":"postgres://file"}`
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, warnings := LoadFrom(env(map[string]string{
		"HUFF_CONFIG":   path,
		"HUFF_STRATEGY": "depth",
		"HUFF_DEBUG":    "true",
	}))
	if len(warnings) != 0 {
		t.Fatalf("warnings: %v", warnings)
	}
	want := Config{Port: "9000", DatabaseURL: "postgres://file", Strategy: "depth", SymbolWidth: 16, Debug: true}
	if cfg != want {
		t.Fatalf("cfg = %+v, want %+v", cfg, want)
	}
}

func TestInvalidValuesFallBack(t *testing.T) {
	cfg, warnings := LoadFrom(env(map[string]string{
		"HUFF_CONFIG":       filepath.Join(t.TempDir(), "missing.json"),
		"HUFF_STRATEGY":     "lzw",
		"HUFF_SYMBOL_WIDTH": "12",
		"HUFF_DEBUG":        "maybe",
	}))
	if len(warnings) != 4 {
		t.Fatalf("got %d warnings, want 4: %v", len(warnings), warnings)
	}
	def := Default()
	if cfg.Strategy != def.Strategy || cfg.SymbolWidth != def.SymbolWidth || cfg.Debug {
		t.Fatalf("cfg = %+v", cfg)
	}
	if _, err := cfg.CodecOptions(); err != nil {
		t.Fatalf("fallback options invalid: %v", err)
	}
}
