package huffman

import (
	"strings"
)

// Code는 루트에서 Leaf까지의 방향 비트열이에요 (false=왼쪽/0, true=오른쪽/1).
type Code []bool

// extend는 항상 새 슬라이스를 만들어요. 형제 경로끼리 배열을 공유하면 안 돼요.
func (c Code) extend(bit bool) Code {
	out := make(Code, len(c)+1)
	copy(out, c)
	out[len(c)] = bit
	return out
}

func (c Code) String() string {
	var sb strings.Builder
	sb.Grow(len(c))
	for _, b := range c {
		if b {
			sb.WriteByte('1')
		} else {
			sb.WriteByte('0')
		}
	}
	return sb.String()
}

// HasPrefix는 p가 c의 접두사인지 확인해요.
func (c Code) HasPrefix(p Code) bool {
	if len(p) > len(c) {
		return false
	}
	for i := range p {
		if c[i] != p[i] {
			return false
		}
	}
	return true
}

/*** ---------- 인코딩용 코드표 ---------- ***/

// CodeTable은 심볼 → 코드 매핑이에요. 트리에서 만들어졌으므로 접두사 없는 코드가 보장돼요.
type CodeTable struct {
	codes    map[rune]Code
	order    []rune // Leaf 방문 순서
	maxDepth int
}

func (t *CodeTable) Lookup(r rune) (Code, bool) {
	c, ok := t.codes[r]
	return c, ok
}

func (t *CodeTable) Len() int      { return len(t.codes) }
func (t *CodeTable) MaxDepth() int { return t.maxDepth }

// Symbols는 Leaf 방문 순서대로 심볼을 돌려줘요.
func (t *CodeTable) Symbols() []rune {
	out := make([]rune, len(t.order))
	copy(out, t.order)
	return out
}

/*** ---------- 디코딩용 역방향 표 (경로 → 심볼) ---------- ***/

// maxCodeDepth는 디코더가 받아들이는 가장 긴 코드예요.
// 입력 길이가 u16이라 인코더가 만드는 트리는 깊이 22를 넘지 않아요 (피보나치 가중치가 최악).
// 그보다 깊은 프레이밍은 조작된 것으로 보고 거부해요.
const maxCodeDepth = 24

type decodeTable struct {
	symbols map[string]rune // key: Code.String()
	maxLen  int
}

func newDecodeTable(n int) *decodeTable {
	return &decodeTable{symbols: make(map[string]rune, n)}
}

func (d *decodeTable) insert(code Code, sym rune) error {
	key := code.String()
	if _, dup := d.symbols[key]; dup {
		return errorf(ErrMalformedFraming, "duplicate code %q", key)
	}
	d.symbols[key] = sym
	if len(code) > d.maxLen {
		d.maxLen = len(code)
	}
	return nil
}

func (d *decodeTable) len() int { return len(d.symbols) }

// sole은 빈 코드 하나짜리 표(서로 다른 심볼이 하나뿐인 입력)일 때 그 심볼을 돌려줘요.
func (d *decodeTable) sole() (rune, bool) {
	if len(d.symbols) != 1 {
		return 0, false
	}
	sym, ok := d.symbols[""]
	return sym, ok
}

// validate는 빈 코드가 다른 코드와 함께 있는 표를 거부해요 (빈 코드는 모든 코드의 접두사).
func (d *decodeTable) validate() error {
	if _, ok := d.symbols[""]; ok && len(d.symbols) > 1 {
		return errorf(ErrMalformedFraming, "empty code alongside %d other codes", len(d.symbols)-1)
	}
	return nil
}
