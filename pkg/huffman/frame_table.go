package huffman

import (
	"fmt"

	"huffman_compression_go/pkg/bitstream"
)

// tableFraming: [u16 n][u16 maxDepth][n × record]
// record = (maxDepth-len) 개의 0 패딩, 종료 비트 1, 코드, symbol.
// 모든 레코드가 maxDepth+1+width 비트로 같은 크기예요.
type tableFraming struct{}

func (tableFraming) writeFraming(w *bitstream.Writer, _ Node, table *CodeTable, width uint) {
	maxDepth := table.MaxDepth()
	w.WriteFixed(uint64(table.Len()), lengthBits)
	w.WriteFixed(uint64(maxDepth), lengthBits)

	// map 순회 순서는 매번 달라요. 출력이 항상 같도록 Leaf 방문 순서를 써요.
	for _, sym := range table.order {
		code := table.codes[sym]
		for i := len(code); i < maxDepth; i++ {
			w.WriteBit(false)
		}
		w.WriteBit(true)
		w.WriteBits(code)
		w.WriteFixed(uint64(sym), width)
	}
}

func (tableFraming) readFraming(r *bitstream.Reader, width uint) (*decodeTable, error) {
	n, err := r.ReadFixed(lengthBits)
	if err != nil {
		return nil, fmt.Errorf("table framing: entry count: %w", err)
	}
	maxDepth, err := r.ReadFixed(lengthBits)
	if err != nil {
		return nil, fmt.Errorf("table framing: max depth: %w", err)
	}
	if n == 0 {
		return nil, errorf(ErrMalformedFraming, "table framing: zero entries")
	}
	if maxDepth > maxCodeDepth {
		return nil, errorf(ErrMalformedFraming, "table framing: max depth %d exceeds %d", maxDepth, maxCodeDepth)
	}

	table := newDecodeTable(int(n))
	for i := uint64(0); i < n; i++ {
		code := make(Code, 0, maxDepth)
		terminated := false
		for j := uint64(0); j <= maxDepth; j++ {
			bit, err := r.ReadBit()
			if err != nil {
				return nil, fmt.Errorf("table framing: record %d: %w", i, err)
			}
			switch {
			case terminated:
				code = append(code, bit)
			case bit:
				terminated = true
			}
		}
		if !terminated {
			return nil, errorf(ErrMalformedFraming, "table framing: record %d has no terminator", i)
		}
		sym, err := r.ReadFixed(width)
		if err != nil {
			return nil, fmt.Errorf("table framing: record %d symbol: %w", i, err)
		}
		if err := table.insert(code, rune(sym)); err != nil {
			return nil, err
		}
	}
	if err := table.validate(); err != nil {
		return nil, err
	}
	return table, nil
}
