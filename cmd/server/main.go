package main

import (
	"context"
	"log"

	"github.com/gin-gonic/gin"

	"huffman_compression_go/internal/config"
	"huffman_compression_go/internal/handler"
	"huffman_compression_go/internal/repo"
	"huffman_compression_go/internal/router"
	"huffman_compression_go/internal/service"
	"huffman_compression_go/pkg/logger"
)

func main() {
	// 설정/로거 초기화
	cfg := config.Load()
	logg := logger.New(cfg.Debug)
	opts, err := cfg.CodecOptions()
	if err != nil {
		log.Fatal(err)
	}

	// 의존성 생성. DATABASE_URL이 없으면 메모리 저장소로 떠요.
	archiveRepo := repo.NewArchiveRepoInMemory()
	if cfg.DatabaseURL != "" {
		ctx := context.Background()
		pool, err := repo.Open(ctx, cfg.DatabaseURL)
		if err != nil {
			log.Fatal(err)
		}
		defer pool.Close()
		if err := repo.Migrate(ctx, pool); err != nil {
			log.Fatal(err)
		}
		archiveRepo = repo.NewArchiveRepoPG(pool)
		logg.Infof("using postgres archive store")
	}
	archiveSvc := service.NewArchiveService(archiveRepo, logg, opts)
	archiveH := handler.NewArchiveHandler(archiveSvc)

	// Gin 라우터 생성 및 라우팅 구성
	if !cfg.Debug {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.Default()
	router.Register(r, router.Dependencies{
		ArchiveHandler: archiveH,
	})

	addr := ":" + cfg.Port
	log.Printf("starting server at %s (strategy=%s, width=%d)\n", addr, opts.Strategy, opts.SymbolWidth)
	if err := r.Run(addr); err != nil {
		log.Fatal(err)
	}
}
