package huffman

import (
	"fmt"

	"huffman_compression_go/pkg/bitstream"
)

// treeFraming: [u16 n][n × symbol (Leaf 방문 순서)][전위 순회 구조 비트, 1=Branch 0=Leaf]
// 구조 비트는 길이를 따로 쓰지 않아요. 재귀가 끝나면 트리도 끝난 거예요.
type treeFraming struct{}

func (treeFraming) writeFraming(w *bitstream.Writer, root Node, _ *CodeTable, width uint) {
	var symbols []rune
	var structure []bool

	var walk func(n Node)
	walk = func(n Node) {
		switch n := n.(type) {
		case *Branch:
			structure = append(structure, true)
			walk(n.Left)
			walk(n.Right)
		case Leaf:
			structure = append(structure, false)
			symbols = append(symbols, n.Symbol)
		}
	}
	walk(root)

	w.WriteFixed(uint64(len(symbols)), lengthBits)
	for _, s := range symbols {
		w.WriteFixed(uint64(s), width)
	}
	w.WriteBits(structure)
}

// readFraming은 커서 두 개를 써요: r은 구조 비트를, symbols는 그보다 뒤처진 채 심볼 블록을 읽어요.
// 끝나면 r은 구조 비트 바로 뒤(페이로드 길이 필드)에 있어요.
func (treeFraming) readFraming(r *bitstream.Reader, width uint) (*decodeTable, error) {
	n, err := r.ReadFixed(lengthBits)
	if err != nil {
		return nil, fmt.Errorf("tree framing: symbol count: %w", err)
	}
	if n == 0 {
		return nil, errorf(ErrMalformedFraming, "tree framing: zero symbols")
	}

	symbols := r.Clone()
	r.Skip(n * uint64(width))

	table := newDecodeTable(int(n))
	var leaves uint64

	var walk func(path Code) error
	walk = func(path Code) error {
		if len(path) > maxCodeDepth {
			return errorf(ErrMalformedFraming, "tree framing: depth %d exceeds %d", len(path), maxCodeDepth)
		}
		// Leaf가 n개인 트리의 깊이는 n-1을 넘을 수 없어요.
		if uint64(len(path)) >= n {
			return errorf(ErrMalformedFraming, "tree framing: depth %d with %d symbols", len(path), n)
		}
		bit, err := r.ReadBit()
		if err != nil {
			return fmt.Errorf("tree framing: structure: %w", err)
		}
		if bit {
			if err := walk(path.extend(false)); err != nil {
				return err
			}
			return walk(path.extend(true))
		}
		if leaves == n {
			return errorf(ErrMalformedFraming, "tree framing: more than %d leaves", n)
		}
		sym, err := symbols.ReadFixed(width)
		if err != nil {
			return fmt.Errorf("tree framing: symbol block: %w", err)
		}
		leaves++
		return table.insert(path, rune(sym))
	}
	if err := walk(Code{}); err != nil {
		return nil, err
	}
	if leaves != n {
		return nil, errorf(ErrMalformedFraming, "tree framing: %d leaves for %d symbols", leaves, n)
	}
	return table, nil
}
