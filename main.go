package main

import (
	"fmt"
	"log"

	"comboapi/configs"
	"comboapi/pkg/cache"
	"comboapi/routes"

	"github.com/gin-gonic/gin"
	goredis "github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

func main() {
	cfg := configs.LoadConfig()

	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("init logger: %v", err)
	}
	defer logger.Sync()
	sugar := logger.Sugar()

	// DB
	configs.ConnectionDB(cfg)
	db := configs.DB()

	// migrate + seed
	configs.SetupDatabase()

	if err := configs.SeedAdmin(); err != nil {
		sugar.Fatalw("seed admin failed", "error", err)
	}
	if err := configs.SeedLookups(); err != nil {
		sugar.Fatalw("seed lookups failed", "error", err)
	}

	// Cache invalidation hook; without redis the hook is a no-op.
	var inv cache.Invalidator = cache.Noop{}
	if cfg.RedisAddr != "" {
		rdb := goredis.NewClient(&goredis.Options{Addr: cfg.RedisAddr})
		inv = cache.NewRedisInvalidator(rdb)
	}

	// HTTP
	r := gin.Default()
	routes.RegisterRoutes(r, db, cfg, inv, sugar)

	port := cfg.Port
	sugar.Infow("starting server", "port", port)
	if err := r.Run(fmt.Sprintf(":%s", port)); err != nil {
		sugar.Fatalw("server stopped", "error", err)
	}
}
