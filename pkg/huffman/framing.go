package huffman

import (
	"fmt"
	"strings"

	"huffman_compression_go/pkg/bitstream"
)

// Strategy는 코드표를 비트 스트림에 기록하는 방식이에요.
// 인코더와 디코더가 같은 값을 써야 해요 (Options.Tagged면 스트림 앞에 기록됨).
type Strategy uint8

const (
	StrategyTree  Strategy = iota + 1 // 트리 모양: 전위 순회 구조 비트 + 심볼 블록
	StrategyTable                     // 고정 폭 레코드 코드표
	StrategyDepth                     // Leaf 깊이 델타
)

var strategyNames = map[Strategy]string{
	StrategyTree:  "tree",
	StrategyTable: "table",
	StrategyDepth: "depth",
}

func (s Strategy) String() string {
	if name, ok := strategyNames[s]; ok {
		return name
	}
	return fmt.Sprintf("Strategy(%d)", uint8(s))
}

func (s Strategy) valid() bool {
	_, ok := strategyNames[s]
	return ok
}

func ParseStrategy(name string) (Strategy, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for s, n := range strategyNames {
		if n == name {
			return s, nil
		}
	}
	return 0, errorf(ErrUnknownStrategy, "%q", name)
}

// framer는 프레이밍 방식 하나의 쓰기/읽기 쌍이에요.
// writeFraming은 실패하지 않아요 (입력 검증은 Encode가 먼저 끝냄).
type framer interface {
	writeFraming(w *bitstream.Writer, root Node, table *CodeTable, width uint)
	readFraming(r *bitstream.Reader, width uint) (*decodeTable, error)
}

func framerFor(s Strategy) (framer, error) {
	switch s {
	case StrategyTree:
		return treeFraming{}, nil
	case StrategyTable:
		return tableFraming{}, nil
	case StrategyDepth:
		return depthFraming{}, nil
	}
	return nil, errorf(ErrUnknownStrategy, "%d", uint8(s))
}

/*** ---------- 태그 헤더: [u8 strategy][u8 symbol width] ---------- ***/

const tagBits = 8

func writeTag(w *bitstream.Writer, opts Options) {
	w.WriteFixed(uint64(opts.Strategy), tagBits)
	w.WriteFixed(uint64(opts.SymbolWidth), tagBits)
}

func readTag(r *bitstream.Reader, opts Options) (Options, error) {
	tag, err := r.ReadFixed(tagBits)
	if err != nil {
		return opts, fmt.Errorf("huffman: tag: %w", err)
	}
	width, err := r.ReadFixed(tagBits)
	if err != nil {
		return opts, fmt.Errorf("huffman: tag: %w", err)
	}
	opts.Strategy = Strategy(tag)
	opts.SymbolWidth = uint(width)
	return opts, opts.Validate()
}
