package main

import (
	"context"
	"log"

	"github.com/gin-gonic/gin"

	"github.com/xiaocenxiaocen/huffmantree/internal/config"
	"github.com/xiaocenxiaocen/huffmantree/internal/handler"
	"github.com/xiaocenxiaocen/huffmantree/internal/repo"
	"github.com/xiaocenxiaocen/huffmantree/internal/router"
	"github.com/xiaocenxiaocen/huffmantree/internal/service"
	"github.com/xiaocenxiaocen/huffmantree/pkg/logger"
)

func main() {
	// 설정/로거 초기화
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}
	logger.Setup(cfg.LogLevel)
	logg := logger.New("server")

	// 의존성 생성 (DATABASE_URL 없으면 통계도 메모리)
	statsRepo := repo.NewStatsRepoInMemory()
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
		statsRepo = repo.NewStatsRepoPostgres(pool)
		logg.Infof("stats stored in postgres")
	}
	blobSvc := service.NewCompressionService(repo.NewBlobRepoInMemory(), statsRepo, logger.New("service"), cfg.MaxPayloadBytes)
	blobH := handler.NewBlobHandler(blobSvc)

	// Gin 라우터 생성 및 라우팅 구성
	r := gin.Default()
	router.Register(r, router.Dependencies{
		BlobHandler: blobH,
	})

	addr := ":" + cfg.Port
	logg.Infof("starting server at %s", addr)
	if err := r.Run(addr); err != nil {
		log.Fatal(err)
	}
}
