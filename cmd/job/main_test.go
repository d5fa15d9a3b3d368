package main

import (
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"huffman_compression_go/internal/handler"
	"huffman_compression_go/internal/repo"
	"huffman_compression_go/internal/router"
	"huffman_compression_go/internal/service"
	"huffman_compression_go/pkg/huffman"
	"huffman_compression_go/pkg/logger"
)

func TestRunLocal(t *testing.T) {
	for _, s := range []string{"tree", "table", "depth"} {
		if err := run(s, 21, "", []string{"hello", "압축"}); err != nil {
			t.Fatalf("%s: %v", s, err)
		}
	}
}

func TestRunLocalRejects(t *testing.T) {
	if err := run("lzw", 8, "", []string{"x"}); err == nil {
		t.Fatal("unknown strategy accepted")
	}
	if err := run("tree", 12, "", []string{"x"}); err == nil {
		t.Fatal("width 12 accepted")
	}
	if err := run("tree", 8, "", []string{"압축"}); err == nil {
		t.Fatal("wide symbol accepted at width 8")
	}
}

func TestRunRemote(t *testing.T) {
	gin.SetMode(gin.TestMode)
	svc := service.NewArchiveService(repo.NewArchiveRepoInMemory(), logger.Discard(), huffman.Options{Strategy: huffman.StrategyDepth, SymbolWidth: 21})
	r := gin.New()
	router.Register(r, router.Dependencies{ArchiveHandler: handler.NewArchiveHandler(svc)})
	srv := httptest.NewServer(r)
	defer srv.Close()

	if err := run("tree", 8, srv.URL, []string{"원격 저장"}); err != nil {
		t.Fatal(err)
	}
}
