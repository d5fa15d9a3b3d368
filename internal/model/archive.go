package model

import "time"

// Archive는 압축해서 저장한 텍스트 하나예요. Payload는 태그가 붙은 스트림을 bitstream.Pack한 바이트예요.
type Archive struct {
	ID          string    `json:"id"`
	Strategy    string    `json:"strategy"`
	SymbolWidth int       `json:"symbol_width"`
	Symbols     int       `json:"symbols"`
	Distinct    int       `json:"distinct"`
	BitLength   int64     `json:"bit_length"`
	Payload     []byte    `json:"payload"`
	CreatedAt   time.Time `json:"created_at"`
}
