package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"huffman_compression_go/internal/model"
	"huffman_compression_go/internal/repo"
	"huffman_compression_go/pkg/huffman"
	"huffman_compression_go/pkg/logger"
)

// ErrInvalidInput은 호출자가 보낸 텍스트/페이로드를 코덱이 거부했을 때예요.
var ErrInvalidInput = errors.New("invalid input")

type ArchiveService struct {
	repo   repo.ArchiveRepo
	logger logger.Logger
	opts   huffman.Options
	now    func() time.Time
}

// NewArchiveService: 저장 스트림은 항상 태그를 붙여서, 설정이 바뀌어도 예전 아카이브를 풀 수 있어요.
func NewArchiveService(r repo.ArchiveRepo, l logger.Logger, opts huffman.Options) *ArchiveService {
	opts.Tagged = true
	return &ArchiveService{repo: r, logger: l, opts: opts, now: time.Now}
}

func (s *ArchiveService) Options() huffman.Options { return s.opts }

// Encode는 저장 없이 압축만 해요.
func (s *ArchiveService) Encode(text string) ([]byte, huffman.Stats, error) {
	payload, st, err := huffman.Compress(text, s.opts)
	if err != nil {
		return nil, huffman.Stats{}, fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}
	s.logger.Debugf("encoded %d symbols into %d bits (%s)", st.Symbols, st.TotalBits, s.opts.Strategy)
	return payload, st, nil
}

// Decode는 태그가 붙은 패킹 페이로드를 풀어요.
func (s *ArchiveService) Decode(payload []byte) (string, error) {
	text, err := huffman.Decompress(payload, huffman.Options{Tagged: true})
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}
	return text, nil
}

func (s *ArchiveService) Compress(ctx context.Context, text string) (*model.Archive, error) {
	payload, st, err := s.Encode(text)
	if err != nil {
		return nil, err
	}
	a := &model.Archive{
		ID:          uuid.NewString(),
		Strategy:    s.opts.Strategy.String(),
		SymbolWidth: int(s.opts.SymbolWidth),
		Symbols:     st.Symbols,
		Distinct:    st.Distinct,
		BitLength:   int64(st.TotalBits),
		Payload:     payload,
		CreatedAt:   s.now().UTC(),
	}
	if err := s.repo.Save(ctx, a); err != nil {
		return nil, err
	}
	s.logger.Infof("archive created: %s (%d symbols, %d bits, ratio %.3f)", a.ID, st.Symbols, st.TotalBits, st.Ratio())
	return a, nil
}

// Decompress는 저장된 아카이브를 풀어요. 저장된 데이터가 깨졌으면 입력 오류가 아니라 내부 오류예요.
func (s *ArchiveService) Decompress(ctx context.Context, id string) (string, error) {
	a, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return "", err
	}
	text, err := huffman.Decompress(a.Payload, huffman.Options{Tagged: true})
	if err != nil {
		s.logger.Errorf("archive %s is corrupted: %v", id, err)
		return "", fmt.Errorf("archive %s: %w", id, err)
	}
	return text, nil
}

func (s *ArchiveService) Get(ctx context.Context, id string) (*model.Archive, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *ArchiveService) List(ctx context.Context) ([]*model.Archive, error) {
	return s.repo.List(ctx)
}

func (s *ArchiveService) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.Infof("archive deleted: %s", id)
	return nil
}
