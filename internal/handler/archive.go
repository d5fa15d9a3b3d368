package handler

import (
	"errors"
	"net/http"

	"huffman_compression_go/internal/repo"
	"huffman_compression_go/internal/service"
	"huffman_compression_go/pkg/huffman"

	"github.com/gin-gonic/gin"
)

type ArchiveHandler struct {
	svc *service.ArchiveService
}

func NewArchiveHandler(s *service.ArchiveService) *ArchiveHandler {
	return &ArchiveHandler{svc: s}
}

type textReq struct {
	Text string `json:"text" binding:"required"`
}

// payload는 JSON에서 base64 문자열이에요.
type payloadReq struct {
	Payload []byte `json:"payload" binding:"required"`
}

type encodeResp struct {
	Payload []byte        `json:"payload"`
	Stats   huffman.Stats `json:"stats"`
}

type textResp struct {
	Text string `json:"text"`
}

// writeError: 코덱이 거부한 입력은 400, 없는 아카이브는 404, 나머지는 500
func writeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrInvalidInput):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, repo.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "archive not found"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}

func (h *ArchiveHandler) Create(c *gin.Context) {
	var req textReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	a, err := h.svc.Compress(c.Request.Context(), req.Text)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, a)
}

func (h *ArchiveHandler) GetByID(c *gin.Context) {
	a, err := h.svc.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, a)
}

func (h *ArchiveHandler) Text(c *gin.Context) {
	text, err := h.svc.Decompress(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, textResp{Text: text})
}

func (h *ArchiveHandler) List(c *gin.Context) {
	archives, err := h.svc.List(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, archives)
}

func (h *ArchiveHandler) Delete(c *gin.Context) {
	if err := h.svc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *ArchiveHandler) Encode(c *gin.Context) {
	var req textReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	payload, st, err := h.svc.Encode(req.Text)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, encodeResp{Payload: payload, Stats: st})
}

func (h *ArchiveHandler) Decode(c *gin.Context) {
	var req payloadReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	text, err := h.svc.Decode(req.Payload)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, textResp{Text: text})
}
