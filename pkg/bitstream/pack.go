package bitstream

import (
	"bytes"
	"encoding/binary"
	"math"
	"math/bits"

	"github.com/icza/bitio"
	"github.com/pkg/errors"
)

var (
	ErrShortPacket   = errors.New("bitstream: packet shorter than declared bit length")
	ErrTrailingBytes = errors.New("bitstream: trailing bytes after packed bits")
	ErrTooLong       = errors.New("bitstream: bit length does not fit in u32")
)

const packHeaderSize = 4

// Pack은 [u32 LE 비트 길이][ceil(len/8) 바이트] 형태로 직렬화해요.
// 바이트 안에서는 MSB-first 순서예요 (마지막 바이트의 남는 비트는 0).
func (w *Writer) Pack() ([]byte, error) {
	if w.n > math.MaxUint32 {
		return nil, errors.WithStack(ErrTooLong)
	}
	var buf bytes.Buffer
	buf.Grow(packHeaderSize + int((w.n+7)/8))
	if err := binary.Write(&buf, binary.LittleEndian, uint32(w.n)); err != nil {
		return nil, errors.Wrap(err, "bitstream: write header")
	}

	bw := bitio.NewWriter(&buf)
	left := w.n
	for _, word := range w.words {
		k := uint64(wordBits)
		if left < k {
			k = left
		}
		// word는 LSB가 먼저라서 뒤집은 뒤 상위 k 비트를 써요.
		if err := bw.WriteBits(bits.Reverse64(word)>>(wordBits-k), uint8(k)); err != nil {
			return nil, errors.Wrap(err, "bitstream: pack")
		}
		left -= k
	}
	if err := bw.Close(); err != nil {
		return nil, errors.Wrap(err, "bitstream: flush")
	}
	return buf.Bytes(), nil
}

// Unpack은 Pack의 역연산이에요.
func Unpack(b []byte) (*Reader, error) {
	if len(b) < packHeaderSize {
		return nil, errors.WithStack(ErrShortPacket)
	}
	n := uint64(binary.LittleEndian.Uint32(b[:packHeaderSize]))
	body := b[packHeaderSize:]
	need := (n + 7) / 8
	switch {
	case uint64(len(body)) < need:
		return nil, errors.Wrapf(ErrShortPacket, "need %d bytes, got %d", need, len(body))
	case uint64(len(body)) > need:
		return nil, errors.Wrapf(ErrTrailingBytes, "need %d bytes, got %d", need, len(body))
	}

	br := bitio.NewReader(bytes.NewReader(body))
	words := make([]uint64, 0, (n+wordBits-1)/wordBits)
	for left := n; left > 0; {
		k := uint64(wordBits)
		if left < k {
			k = left
		}
		v, err := br.ReadBits(uint8(k))
		if err != nil {
			return nil, errors.Wrap(err, "bitstream: unpack")
		}
		words = append(words, bits.Reverse64(v<<(wordBits-k)))
		left -= k
	}
	return &Reader{words: words, n: n}, nil
}
