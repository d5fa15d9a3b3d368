package huffman

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidOptions   = errors.New("huffman: invalid options")
	ErrUnknownStrategy  = errors.New("huffman: unknown framing strategy")
	ErrInputTooLong     = errors.New("huffman: input longer than 65535 symbols")
	ErrTooManySymbols   = errors.New("huffman: more than 65535 distinct symbols")
	ErrSymbolOutOfRange = errors.New("huffman: symbol does not fit the symbol width")
	ErrMalformedFraming = errors.New("huffman: malformed framing")
	ErrInvalidCode      = errors.New("huffman: payload bits match no code")
)

// errorf는 sentinel을 감싼 에러를 만들어요 (errors.Is로 확인 가능).
func errorf(sentinel error, format string, args ...any) error {
	return fmt.Errorf("%w: %s", sentinel, fmt.Sprintf(format, args...))
}
