package router

import (
	"huffman_compression_go/internal/handler"

	"github.com/gin-gonic/gin"
)

type Dependencies struct {
	ArchiveHandler *handler.ArchiveHandler
}

func Register(r *gin.Engine, d Dependencies) {
	// 공용 라우트
	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(200, gin.H{"ok": true})
	})

	// v1 그룹
	v1 := r.Group("/api/v1")
	{
		archives := v1.Group("/archives")
		{
			archives.POST("", d.ArchiveHandler.Create)
			archives.GET("", d.ArchiveHandler.List)
			archives.GET("/:id", d.ArchiveHandler.GetByID)
			archives.GET("/:id/text", d.ArchiveHandler.Text)
			archives.DELETE("/:id", d.ArchiveHandler.Delete)
		}

		// 저장 없이 바로 인코딩/디코딩
		codec := v1.Group("/codec")
		{
			codec.POST("/encode", d.ArchiveHandler.Encode)
			codec.POST("/decode", d.ArchiveHandler.Decode)
		}
	}
}
