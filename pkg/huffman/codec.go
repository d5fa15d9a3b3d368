package huffman

import (
	"fmt"
	"math"

	"github.com/chronos-tachyon/assert"

	"huffman_compression_go/pkg/bitstream"
)

const (
	lengthBits = 16
	maxLength  = math.MaxUint16
)

// Options는 인코더/디코더가 합의해야 하는 값들이에요.
type Options struct {
	Strategy    Strategy
	SymbolWidth uint // 8, 16, 21 중 하나. 21이면 모든 유니코드 스칼라 값이 들어가요.
	Tagged      bool // 스트림 앞에 [u8 strategy][u8 width] 기록
}

func DefaultOptions() Options {
	return Options{Strategy: StrategyTree, SymbolWidth: 8}
}

func (o Options) Validate() error {
	if !o.Strategy.valid() {
		return errorf(ErrUnknownStrategy, "%d", uint8(o.Strategy))
	}
	switch o.SymbolWidth {
	case 8, 16, 21:
		return nil
	}
	return errorf(ErrInvalidOptions, "symbol width %d (want 8, 16 or 21)", o.SymbolWidth)
}

// Stats는 인코딩 한 번의 결과 크기예요.
// TotalBits = FramingBits(태그 포함) + 16(길이 필드) + PayloadBits.
type Stats struct {
	Symbols     int    `json:"symbols"`
	Distinct    int    `json:"distinct"`
	MaxDepth    int    `json:"max_depth"`
	FramingBits uint64 `json:"framing_bits"`
	PayloadBits uint64 `json:"payload_bits"`
	TotalBits   uint64 `json:"total_bits"`
}

// Ratio는 8비트 원문 대비 압축 비율이에요.
func (s Stats) Ratio() float64 {
	if s.Symbols == 0 {
		return 0
	}
	return float64(s.TotalBits) / float64(s.Symbols*8)
}

func Encode(input []rune, w *bitstream.Writer, opts Options) error {
	_, err := EncodeStats(input, w, opts)
	return err
}

// EncodeStats는 input을 w 뒤에 이어 써요.
// 검증은 모두 첫 비트를 쓰기 전에 끝나므로, 에러가 나면 w는 그대로예요.
// 빈 입력은 아무것도 쓰지 않아요.
func EncodeStats(input []rune, w *bitstream.Writer, opts Options) (Stats, error) {
	if err := opts.Validate(); err != nil {
		return Stats{}, err
	}
	if len(input) == 0 {
		return Stats{}, nil
	}
	if len(input) > maxLength {
		return Stats{}, errorf(ErrInputTooLong, "%d symbols", len(input))
	}
	limit := rune(1) << opts.SymbolWidth
	for i, r := range input {
		if r < 0 || r >= limit {
			return Stats{}, errorf(ErrSymbolOutOfRange, "%U at index %d needs more than %d bits", r, i, opts.SymbolWidth)
		}
	}

	counts := CountSymbols(input)
	if len(counts) > maxLength {
		return Stats{}, errorf(ErrTooManySymbols, "%d distinct symbols", len(counts))
	}
	root := BuildTree(counts)
	assert.Assertf(root.Weight() == len(input), "huffman: root weight %d != input length %d", root.Weight(), len(input))
	table := AssignCodes(root)

	f, err := framerFor(opts.Strategy)
	if err != nil {
		return Stats{}, err
	}

	start := w.Len()
	if opts.Tagged {
		writeTag(w, opts)
	}
	f.writeFraming(w, root, table, opts.SymbolWidth)
	framingEnd := w.Len()

	w.WriteFixed(uint64(len(input)), lengthBits)
	payloadStart := w.Len()
	for _, r := range input {
		code, ok := table.Lookup(r)
		assert.Assertf(ok, "huffman: symbol %q missing from code table", r)
		w.WriteBits(code)
	}

	return Stats{
		Symbols:     len(input),
		Distinct:    table.Len(),
		MaxDepth:    table.MaxDepth(),
		FramingBits: framingEnd - start,
		PayloadBits: w.Len() - payloadStart,
		TotalBits:   w.Len() - start,
	}, nil
}

// Decode는 r에서 코드표를 복원한 뒤 페이로드를 심볼로 풀어요.
// 남은 비트가 없으면 빈 입력으로 보고 빈 결과를 돌려줘요.
// 길이 필드만큼 풀기 전에 스트림이 끝나면 bitstream.ErrEndOfStream을 감싼 에러예요.
func Decode(r *bitstream.Reader, opts Options) ([]rune, error) {
	var err error
	// 태그가 없으면 opts가 곧 스트림 형식이라 빈 스트림이어도 먼저 검증해요.
	// 태그가 있으면 opts의 전략과 폭은 readTag가 덮어써요.
	if !opts.Tagged {
		if err = opts.Validate(); err != nil {
			return nil, err
		}
	}
	if r.Remaining() == 0 {
		return []rune{}, nil
	}

	if opts.Tagged {
		if opts, err = readTag(r, opts); err != nil {
			return nil, err
		}
	}

	f, err := framerFor(opts.Strategy)
	if err != nil {
		return nil, err
	}
	table, err := f.readFraming(r, opts.SymbolWidth)
	if err != nil {
		return nil, fmt.Errorf("huffman: %w", err)
	}

	n, err := r.ReadFixed(lengthBits)
	if err != nil {
		return nil, fmt.Errorf("huffman: length: %w", err)
	}
	out := make([]rune, 0, n)

	// 심볼이 하나뿐이면 코드가 빈 비트열이라 비트 매칭으로는 못 찾아요.
	if sym, ok := table.sole(); ok {
		for uint64(len(out)) < n {
			out = append(out, sym)
		}
		return out, nil
	}

	candidate := make([]byte, 0, table.maxLen)
	for uint64(len(out)) < n {
		bit, err := r.ReadBit()
		if err != nil {
			return nil, fmt.Errorf("huffman: payload after %d of %d symbols: %w", len(out), n, err)
		}
		if bit {
			candidate = append(candidate, '1')
		} else {
			candidate = append(candidate, '0')
		}
		if sym, ok := table.symbols[string(candidate)]; ok {
			out = append(out, sym)
			candidate = candidate[:0]
			continue
		}
		if len(candidate) >= table.maxLen {
			return nil, errorf(ErrInvalidCode, "path %s after %d symbols", candidate, len(out))
		}
	}
	return out, nil
}
