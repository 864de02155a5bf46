package router

import (
	"github.com/gin-gonic/gin"

	"github.com/xiaocenxiaocen/huffmantree/internal/handler"
)

type Dependencies struct {
	BlobHandler *handler.BlobHandler
}

func Register(r *gin.Engine, d Dependencies) {
	// 공용 라우트
	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(200, gin.H{"ok": true})
	})

	// v1 그룹
	v1 := r.Group("/api/v1")
	{
		blobs := v1.Group("/blobs")
		{
			blobs.POST("", d.BlobHandler.Create)
			blobs.GET("", d.BlobHandler.List)
			blobs.GET("/:id", d.BlobHandler.GetByID)
			blobs.GET("/:id/raw", d.BlobHandler.Raw)
			blobs.GET("/:id/packed", d.BlobHandler.Packed)
			blobs.POST("/:id/decode", d.BlobHandler.Decode)
			blobs.GET("/:id/codes", d.BlobHandler.Codes)
			blobs.DELETE("/:id", d.BlobHandler.Delete)
		}
		v1.GET("/stats", d.BlobHandler.Stats)
	}
}
