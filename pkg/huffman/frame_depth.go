package huffman

import (
	"fmt"

	"huffman_compression_go/pkg/bitstream"
)

// depthFraming: [u16 n][n × (symbol, delta)]
// Leaf를 왼쪽→오른쪽 순서로 쓰고, 깊이는 직전 Leaf와의 부호 있는 차이로 적어요.
// delta = [0][sign][u3] 또는 [1][sign][u16].
// 꽉 찬 이진 트리는 Leaf 깊이 순서만으로 모양이 결정되기 때문에 경로를 다시 만들 수 있어요.
type depthFraming struct{}

const (
	shortDeltaBits = 3
	longDeltaBits  = 16
)

func (depthFraming) writeFraming(w *bitstream.Writer, _ Node, table *CodeTable, width uint) {
	w.WriteFixed(uint64(table.Len()), lengthBits)
	prev := 0
	for _, sym := range table.order {
		depth := len(table.codes[sym])
		w.WriteFixed(uint64(sym), width)
		writeDelta(w, depth-prev)
		prev = depth
	}
}

func writeDelta(w *bitstream.Writer, d int) {
	neg := d < 0
	mag := d
	if neg {
		mag = -d
	}
	if mag < 1<<shortDeltaBits {
		w.WriteBit(false)
		w.WriteBit(neg)
		w.WriteFixed(uint64(mag), shortDeltaBits)
		return
	}
	w.WriteBit(true)
	w.WriteBit(neg)
	w.WriteFixed(uint64(mag), longDeltaBits)
}

func readDelta(r *bitstream.Reader) (int, error) {
	long, err := r.ReadBit()
	if err != nil {
		return 0, err
	}
	neg, err := r.ReadBit()
	if err != nil {
		return 0, err
	}
	width := uint(shortDeltaBits)
	if long {
		width = longDeltaBits
	}
	mag, err := r.ReadFixed(width)
	if err != nil {
		return 0, err
	}
	if neg {
		return -int(mag), nil
	}
	return int(mag), nil
}

func (depthFraming) readFraming(r *bitstream.Reader, width uint) (*decodeTable, error) {
	n, err := r.ReadFixed(lengthBits)
	if err != nil {
		return nil, fmt.Errorf("depth framing: symbol count: %w", err)
	}
	if n == 0 {
		return nil, errorf(ErrMalformedFraming, "depth framing: zero symbols")
	}

	table := newDecodeTable(int(n))
	var path Code
	depth := 0
	for i := uint64(0); i < n; i++ {
		sym, err := r.ReadFixed(width)
		if err != nil {
			return nil, fmt.Errorf("depth framing: leaf %d symbol: %w", i, err)
		}
		delta, err := readDelta(r)
		if err != nil {
			return nil, fmt.Errorf("depth framing: leaf %d depth: %w", i, err)
		}
		depth += delta
		if depth < 0 || depth > maxCodeDepth || uint64(depth) >= n {
			return nil, errorf(ErrMalformedFraming, "depth framing: leaf %d at depth %d", i, depth)
		}

		if i == 0 {
			path = make(Code, depth)
		} else {
			next, ok := nextLeafPath(path, depth)
			if !ok {
				return nil, errorf(ErrMalformedFraming, "depth framing: no slot for leaf %d at depth %d", i, depth)
			}
			path = next
		}
		if err := table.insert(path, rune(sym)); err != nil {
			return nil, err
		}
	}

	// 마지막 Leaf는 가장 오른쪽이어야 해요 (전부 1).
	for _, b := range path {
		if !b {
			return nil, errorf(ErrMalformedFraming, "depth framing: tree is incomplete")
		}
	}
	return table, nil
}

// nextLeafPath는 prev 바로 오른쪽에 오는 깊이 depth의 Leaf 경로를 계산해요.
// 끝의 1들을 떼고, 마지막 0을 1로 바꾼 뒤, depth까지 0으로 채워요.
func nextLeafPath(prev Code, depth int) (Code, bool) {
	i := len(prev)
	for i > 0 && prev[i-1] {
		i--
	}
	if i == 0 || i > depth {
		return nil, false
	}
	next := make(Code, depth)
	copy(next, prev[:i-1])
	next[i-1] = true
	return next, true
}
