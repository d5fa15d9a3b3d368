package huffman

import (
	"huffman_compression_go/pkg/bitstream"
)

/*** ---------- 바이트 단위 공개 API ---------- ***/

// Compress는 text를 인코딩한 뒤 bitstream.Pack 형식의 바이트로 돌려줘요.
func Compress(text string, opts Options) ([]byte, Stats, error) {
	w := bitstream.NewWriter()
	st, err := EncodeStats([]rune(text), w, opts)
	if err != nil {
		return nil, Stats{}, err
	}
	packed, err := w.Pack()
	if err != nil {
		return nil, Stats{}, err
	}
	return packed, st, nil
}

func Decompress(b []byte, opts Options) (string, error) {
	r, err := bitstream.Unpack(b)
	if err != nil {
		return "", err
	}
	out, err := Decode(r, opts)
	if err != nil {
		return "", err
	}
	return string(out), nil
}
