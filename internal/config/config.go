package config

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"strconv"

	"huffman_compression_go/pkg/huffman"
)

type Config struct {
	Port        string `json:"port"`
	DatabaseURL string `json:"database_url,omitempty"`
	Strategy    string `json:"strategy"`
	SymbolWidth int    `json:"symbol_width"`
	Debug       bool   `json:"debug"`
}

// Default: 서버는 한글 같은 입력도 받으므로 기본 폭은 21비트예요.
func Default() Config {
	return Config{
		Port:        "8080",
		Strategy:    huffman.StrategyTree.String(),
		SymbolWidth: 21,
	}
}

// Load는 기본값 → HUFF_CONFIG JSON 파일 → 환경변수 순서로 덮어써요. 실패하지 않아요.
func Load() Config {
	cfg, warnings := LoadFrom(os.Getenv)
	for _, w := range warnings {
		log.Printf("[WARN] config: %v", w)
	}
	return cfg
}

// LoadFrom은 getenv로 값을 읽어요. 잘못된 값은 기본값으로 돌리고 경고로 알려줘요.
func LoadFrom(getenv func(string) string) (Config, []error) {
	cfg := Default()
	var warnings []error

	if path := getenv("HUFF_CONFIG"); path != "" {
		if err := cfg.mergeFile(path); err != nil {
			warnings = append(warnings, err)
		}
	}

	if v := getenv("PORT"); v != "" {
		cfg.Port = v
	}
	if v := getenv("DATABASE_URL"); v != "" {
		cfg.DatabaseURL = v
	}
	if v := getenv("HUFF_STRATEGY"); v != "" {
		cfg.Strategy = v
	}
	if v := getenv("HUFF_SYMBOL_WIDTH"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			warnings = append(warnings, fmt.Errorf("HUFF_SYMBOL_WIDTH: %w", err))
		} else {
			cfg.SymbolWidth = n
		}
	}
	if v := getenv("HUFF_DEBUG"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			warnings = append(warnings, fmt.Errorf("HUFF_DEBUG: %w", err))
		} else {
			cfg.Debug = b
		}
	}

	def := Default()
	if _, err := huffman.ParseStrategy(cfg.Strategy); err != nil {
		warnings = append(warnings, err)
		cfg.Strategy = def.Strategy
	}
	if _, err := cfg.CodecOptions(); err != nil {
		warnings = append(warnings, err)
		cfg.SymbolWidth = def.SymbolWidth
	}
	return cfg, warnings
}

func (c *Config) mergeFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read %s: %w", path, err)
	}
	if err := json.Unmarshal(data, c); err != nil {
		return fmt.Errorf("parse %s: %w", path, err)
	}
	return nil
}

// CodecOptions는 서버가 저장할 때 쓰는 옵션이에요. 저장 스트림은 항상 태그를 붙여요.
func (c Config) CodecOptions() (huffman.Options, error) {
	s, err := huffman.ParseStrategy(c.Strategy)
	if err != nil {
		return huffman.Options{}, err
	}
	opts := huffman.Options{Strategy: s, SymbolWidth: uint(c.SymbolWidth), Tagged: true}
	if c.SymbolWidth < 0 {
		opts.SymbolWidth = 0
	}
	return opts, opts.Validate()
}
