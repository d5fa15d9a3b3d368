// Package bitstream은 비트 단위로 쓰고 읽는 버퍼를 제공해요.
//
// 비트 i는 words[i/64]의 (i%64)번째 비트(LSB부터)에 저장돼요.
// Writer는 append만 하고, Reader는 Writer가 만든 스냅샷 위에서 앞으로만 움직여요.
package bitstream

import (
	"github.com/pkg/errors"
)

const wordBits = 64

// ErrEndOfStream은 읽기 커서가 마지막으로 쓴 비트를 넘어섰을 때 반환돼요.
var ErrEndOfStream = errors.New("bitstream: end of stream")

/*** ---------- Writer ---------- ***/

// Writer는 비트를 끝에 이어 붙이기만 하는 버퍼예요. 0값도 빈 Writer로 바로 쓸 수 있어요.
type Writer struct {
	words []uint64
	n     uint64 // 지금까지 쓴 비트 수 = 쓰기 커서
}

// NewWriter는 빈 Writer를 만들어요.
func NewWriter() *Writer { return &Writer{} }

// WriteBit은 비트 하나를 끝에 붙여요.
func (w *Writer) WriteBit(b bool) {
	if w.n%wordBits == 0 {
		w.words = append(w.words, 0)
	}
	if b {
		w.words[w.n/wordBits] |= 1 << (w.n % wordBits)
	}
	w.n++
}

// WriteFixed는 value의 하위 width 비트를 LSB부터 씁니다.
func (w *Writer) WriteFixed(value uint64, width uint) {
	for i := uint(0); i < width; i++ {
		w.WriteBit((value>>i)&1 == 1)
	}
}

// WriteBits는 bits를 순서 그대로 붙여요 (뒤집지 않음).
func (w *Writer) WriteBits(bits []bool) {
	for _, b := range bits {
		w.WriteBit(b)
	}
}

// Len은 지금까지 쓴 비트 수예요.
func (w *Writer) Len() uint64 { return w.n }

// Reader는 지금까지 쓴 비트의 스냅샷 위에 커서 0인 Reader를 만들어요.
// 이후 Writer에 쓰는 내용은 반환된 Reader에 보이지 않아요.
func (w *Writer) Reader() *Reader {
	snap := make([]uint64, len(w.words))
	copy(snap, w.words)
	return &Reader{words: snap, n: w.n}
}

/*** ---------- Reader ---------- ***/

// Reader는 불변 스냅샷을 공유하는 가벼운 읽기 커서예요.
// Clone으로 같은 스냅샷 위에 독립적인 커서를 하나 더 만들 수 있어요.
type Reader struct {
	words []uint64
	n     uint64
	pos   uint64
}

// FromBits는 bits를 그대로 담은 Reader를 만들어요.
func FromBits(bits []bool) *Reader {
	w := NewWriter()
	w.WriteBits(bits)
	return &Reader{words: w.words, n: w.n}
}

// ReadBit은 커서 위치의 비트를 읽고 커서를 한 칸 옮겨요. 끝이면 ErrEndOfStream이에요.
func (r *Reader) ReadBit() (bool, error) {
	if r.pos >= r.n {
		return false, errors.WithStack(ErrEndOfStream)
	}
	bit := (r.words[r.pos/wordBits]>>(r.pos%wordBits))&1 == 1
	r.pos++
	return bit, nil
}

// ReadFixed는 width 비트를 LSB부터 읽어 값을 다시 조립해요.
// 중간에 실패하면 부분 값은 버리고 에러만 돌려줘요.
func (r *Reader) ReadFixed(width uint) (uint64, error) {
	var v uint64
	for i := uint(0); i < width; i++ {
		bit, err := r.ReadBit()
		if err != nil {
			return 0, err
		}
		if bit {
			v |= 1 << i
		}
	}
	return v, nil
}

func (r *Reader) ReadBits(count int) ([]bool, error) {
	out := make([]bool, 0, count)
	for i := 0; i < count; i++ {
		bit, err := r.ReadBit()
		if err != nil {
			return nil, err
		}
		out = append(out, bit)
	}
	return out, nil
}

// Skip은 읽지 않고 커서만 n 비트 앞으로 옮겨요. 끝을 넘어가도 되고, 그 다음 읽기가 ErrEndOfStream을 돌려줘요.
func (r *Reader) Skip(n uint64) { r.pos += n }

func (r *Reader) Clone() *Reader {
	c := *r
	return &c
}

func (r *Reader) Pos() uint64 { return r.pos }
func (r *Reader) Len() uint64 { return r.n }

func (r *Reader) Remaining() uint64 {
	if r.pos >= r.n {
		return 0
	}
	return r.n - r.pos
}
