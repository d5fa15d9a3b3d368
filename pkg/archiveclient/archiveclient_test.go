package archiveclient

import (
	"context"
	"errors"
	"net/http"
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

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	gin.SetMode(gin.TestMode)
	svc := service.NewArchiveService(repo.NewArchiveRepoInMemory(), logger.Discard(),
		huffman.Options{Strategy: huffman.StrategyTable, SymbolWidth: 21})
	r := gin.New()
	router.Register(r, router.Dependencies{ArchiveHandler: handler.NewArchiveHandler(svc)})
	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)
	return srv
}

func TestArchiveLifecycle(t *testing.T) {
	ctx := context.Background()
	c := New(newTestServer(t).URL + "/")

	a, err := c.CreateArchive(ctx, "클라이언트 테스트")
	if err != nil {
		t.Fatalf("CreateArchive: %v", err)
	}
	if a.Strategy != "table" || a.SymbolWidth != 21 || a.Symbols != 9 || len(a.Payload) == 0 {
		t.Fatalf("archive = %+v", a)
	}

	got, err := c.GetArchive(ctx, a.ID)
	if err != nil || got.BitLength != a.BitLength {
		t.Fatalf("GetArchive = %+v, %v", got, err)
	}

	text, err := c.GetArchiveText(ctx, a.ID)
	if err != nil || text != "클라이언트 테스트" {
		t.Fatalf("GetArchiveText = %q, %v", text, err)
	}

	list, err := c.ListArchives(ctx)
	if err != nil || len(list) != 1 || list[0].ID != a.ID {
		t.Fatalf("ListArchives = %+v, %v", list, err)
	}

	if err := c.DeleteArchive(ctx, a.ID); err != nil {
		t.Fatalf("DeleteArchive: %v", err)
	}
	_, err = c.GetArchive(ctx, a.ID)
	var apiErr *APIError
	if !errors.As(err, &apiErr) || apiErr.Status != http.StatusNotFound || apiErr.Message != "archive not found" {
		t.Fatalf("GetArchive after delete: %v", err)
	}
}

func TestEncodeDecode(t *testing.T) {
	ctx := context.Background()
	c := New(newTestServer(t).URL)

	res, err := c.Encode(ctx, "mississippi")
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	if res.Stats.Symbols != 11 || res.Stats.Distinct != 4 {
		t.Fatalf("stats = %+v", res.Stats)
	}

	text, err := c.Decode(ctx, res.Payload)
	if err != nil || text != "mississippi" {
		t.Fatalf("Decode = %q, %v", text, err)
	}

	_, err = c.Decode(ctx, []byte{0xff})
	var apiErr *APIError
	if !errors.As(err, &apiErr) || apiErr.Status != http.StatusBadRequest {
		t.Fatalf("Decode garbage: %v", err)
	}
}
