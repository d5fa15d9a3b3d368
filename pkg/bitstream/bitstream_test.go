package bitstream

import (
	"bytes"
	"errors"
	"testing"
)

func pattern(i int) bool { return i%3 == 0 || i%7 == 5 }

func TestWriteFixedIsLSBFirst(t *testing.T) {
	w := NewWriter()
	w.WriteFixed(0xB, 4) // 1011
	r := w.Reader()

	want := []bool{true, true, false, true}
	got, err := r.ReadBits(4)
	if err != nil {
		t.Fatalf("ReadBits: %v", err)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("bit %d: got %v, want %v", i, got[i], want[i])
		}
	}
}

func TestZeroValueWriter(t *testing.T) {
	var w Writer
	if w.Len() != 0 {
		t.Fatalf("Len = %d", w.Len())
	}
	w.WriteBit(true)
	w.WriteBit(false)
	if w.Len() != 2 {
		t.Fatalf("Len = %d, want 2", w.Len())
	}
	r := w.Reader()
	for i, want := range []bool{true, false} {
		got, err := r.ReadBit()
		if err != nil || got != want {
			t.Fatalf("bit %d = %v, %v", i, got, err)
		}
	}
	if _, err := r.ReadBit(); !errors.Is(err, ErrEndOfStream) {
		t.Fatalf("past end: %v", err)
	}
}

func TestFixedRoundTrip(t *testing.T) {
	tests := []struct {
		value uint64
		width uint
	}{
		{0, 8},
		{0xFF, 8},
		{0xA5, 8},
		{0xBEEF, 16},
		{0x10FFFF, 21},
		{1, 1},
	}
	w := NewWriter()
	w.WriteBit(true) // 워드 경계와 어긋나게
	for _, tt := range tests {
		w.WriteFixed(tt.value, tt.width)
	}
	r := w.Reader()
	r.Skip(1)
	for _, tt := range tests {
		got, err := r.ReadFixed(tt.width)
		if err != nil {
			t.Fatalf("ReadFixed(%d): %v", tt.width, err)
		}
		if got != tt.value {
			t.Errorf("ReadFixed(%d) = %#x, want %#x", tt.width, got, tt.value)
		}
	}
}

func TestBitsAcrossWordBoundaries(t *testing.T) {
	const n = 200
	w := NewWriter()
	for i := 0; i < n; i++ {
		w.WriteBit(pattern(i))
	}
	if w.Len() != n {
		t.Fatalf("Len = %d, want %d", w.Len(), n)
	}
	r := w.Reader()
	for i := 0; i < n; i++ {
		b, err := r.ReadBit()
		if err != nil {
			t.Fatalf("bit %d: %v", i, err)
		}
		if b != pattern(i) {
			t.Fatalf("bit %d: got %v, want %v", i, b, pattern(i))
		}
	}
}

func TestEndOfStream(t *testing.T) {
	w := NewWriter()
	w.WriteFixed(0x7, 3)
	r := w.Reader()
	if _, err := r.ReadBits(3); err != nil {
		t.Fatalf("ReadBits: %v", err)
	}
	// 워드 안의 나머지 61비트는 쓰지 않았으므로 없는 비트예요.
	if _, err := r.ReadBit(); !errors.Is(err, ErrEndOfStream) {
		t.Fatalf("expected ErrEndOfStream, got %v", err)
	}

	empty := NewWriter().Reader()
	if _, err := empty.ReadBit(); !errors.Is(err, ErrEndOfStream) {
		t.Fatalf("expected ErrEndOfStream on empty stream, got %v", err)
	}
}

func TestPartialReadsAreDiscarded(t *testing.T) {
	w := NewWriter()
	w.WriteFixed(0x3F, 6)
	r := w.Reader()
	v, err := r.ReadFixed(8)
	if !errors.Is(err, ErrEndOfStream) {
		t.Fatalf("expected ErrEndOfStream, got %v", err)
	}
	if v != 0 {
		t.Errorf("partial value leaked: %#x", v)
	}

	r2 := w.Reader()
	bits, err := r2.ReadBits(7)
	if !errors.Is(err, ErrEndOfStream) || bits != nil {
		t.Fatalf("ReadBits past end = %v, %v", bits, err)
	}
}

func TestReaderIsSnapshot(t *testing.T) {
	w := NewWriter()
	w.WriteBit(true)
	r := w.Reader()
	w.WriteBit(true)
	w.WriteFixed(0xFFFF, 16)

	if r.Len() != 1 {
		t.Fatalf("snapshot Len = %d, want 1", r.Len())
	}
	if _, err := r.ReadBit(); err != nil {
		t.Fatal(err)
	}
	if _, err := r.ReadBit(); !errors.Is(err, ErrEndOfStream) {
		t.Fatalf("snapshot saw later writes: %v", err)
	}
}

func TestCloneAndSkipAreIndependent(t *testing.T) {
	w := NewWriter()
	w.WriteFixed(0xAB, 8)
	w.WriteFixed(0xCD, 8)
	r := w.Reader()

	trail := r.Clone()
	r.Skip(8)
	hi, err := r.ReadFixed(8)
	if err != nil || hi != 0xCD {
		t.Fatalf("lead cursor read %#x, %v", hi, err)
	}
	lo, err := trail.ReadFixed(8)
	if err != nil || lo != 0xAB {
		t.Fatalf("trailing cursor read %#x, %v", lo, err)
	}
	if r.Pos() != 16 || trail.Pos() != 8 {
		t.Fatalf("positions = %d/%d, want 16/8", r.Pos(), trail.Pos())
	}
	if trail.Remaining() != 8 || r.Remaining() != 0 {
		t.Fatalf("remaining = %d/%d", trail.Remaining(), r.Remaining())
	}

	r.Skip(100)
	if r.Remaining() != 0 {
		t.Fatalf("Remaining after overskip = %d", r.Remaining())
	}
	if _, err := r.ReadBit(); !errors.Is(err, ErrEndOfStream) {
		t.Fatalf("expected ErrEndOfStream after overskip, got %v", err)
	}
}

func TestFromBits(t *testing.T) {
	in := []bool{true, false, false, true, true}
	r := FromBits(in)
	got, err := r.ReadBits(len(in))
	if err != nil {
		t.Fatal(err)
	}
	for i := range in {
		if got[i] != in[i] {
			t.Fatalf("bit %d mismatch", i)
		}
	}
}

func TestPackLayout(t *testing.T) {
	w := NewWriter()
	w.WriteBits([]bool{true, false, true})
	got, err := w.Pack()
	if err != nil {
		t.Fatalf("Pack: %v", err)
	}
	want := []byte{3, 0, 0, 0, 0xA0}
	if !bytes.Equal(got, want) {
		t.Fatalf("Pack = % x, want % x", got, want)
	}
}

func TestPackUnpackRoundTrip(t *testing.T) {
	for _, n := range []int{0, 1, 7, 8, 63, 64, 65, 128, 1000} {
		w := NewWriter()
		for i := 0; i < n; i++ {
			w.WriteBit(pattern(i))
		}
		packed, err := w.Pack()
		if err != nil {
			t.Fatalf("n=%d: Pack: %v", n, err)
		}
		if len(packed) != packHeaderSize+(n+7)/8 {
			t.Fatalf("n=%d: packed size %d", n, len(packed))
		}
		r, err := Unpack(packed)
		if err != nil {
			t.Fatalf("n=%d: Unpack: %v", n, err)
		}
		if r.Len() != uint64(n) {
			t.Fatalf("n=%d: Len = %d", n, r.Len())
		}
		for i := 0; i < n; i++ {
			b, err := r.ReadBit()
			if err != nil || b != pattern(i) {
				t.Fatalf("n=%d: bit %d = %v, %v", n, i, b, err)
			}
		}
		if _, err := r.ReadBit(); !errors.Is(err, ErrEndOfStream) {
			t.Fatalf("n=%d: expected end of stream, got %v", n, err)
		}
	}
}

func TestUnpackErrors(t *testing.T) {
	tests := []struct {
		name string
		in   []byte
		want error
	}{
		{"no header", []byte{1, 0}, ErrShortPacket},
		{"short body", []byte{9, 0, 0, 0, 0xFF}, ErrShortPacket},
		{"trailing", []byte{1, 0, 0, 0, 0x80, 0x00}, ErrTrailingBytes},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Unpack(tt.in); !errors.Is(err, tt.want) {
				t.Fatalf("Unpack(% x) err = %v, want %v", tt.in, err, tt.want)
			}
		})
	}
}
