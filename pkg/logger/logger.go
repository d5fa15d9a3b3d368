package logger

import (
	"io"
	"log"
	"os"
)

type Logger interface {
	Infof(format string, v ...any)
	Errorf(format string, v ...any)
	Debugf(format string, v ...any)
}

type stdLogger struct {
	l     *log.Logger
	debug bool
}

// New는 표준 log 기반 로거를 만들어요. debug가 false면 Debugf는 아무것도 출력하지 않아요.
func New(debug bool) Logger {
	return &stdLogger{l: log.New(os.Stderr, "", log.LstdFlags), debug: debug}
}

// Discard는 테스트용으로 모든 출력을 버려요.
func Discard() Logger {
	return &stdLogger{l: log.New(io.Discard, "", 0)}
}

func (s *stdLogger) Infof(format string, v ...any)  { s.l.Printf("[INFO] "+format, v...) }
func (s *stdLogger) Errorf(format string, v ...any) { s.l.Printf("[ERROR] "+format, v...) }

func (s *stdLogger) Debugf(format string, v ...any) {
	if s.debug {
		s.l.Printf("[DEBUG] "+format, v...)
	}
}
