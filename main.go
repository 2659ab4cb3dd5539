package main

import (
	"fmt"
	"log"

	"github.com/Mawltheus/acaraje-manager/configs"
	"github.com/Mawltheus/acaraje-manager/middlewares"
	"github.com/Mawltheus/acaraje-manager/pkg/cache"
	"github.com/Mawltheus/acaraje-manager/routes"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file, using environment")
	}
	cfg := configs.LoadConfig()

	// DB
	configs.ConnectionDB(cfg.DBSource)
	configs.SetupDatabase()
	db := configs.DB()

	if err := configs.SeedOrderCounter(); err != nil {
		log.Fatalf("seed order counter failed: %v", err)
	}
	if cfg.SeedDemo {
		if err := configs.SeedDemoData(); err != nil {
			log.Fatalf("seed demo data failed: %v", err)
		}
	}

	// optional dashboard cache
	var statsCache *cache.DashboardCache
	if cfg.RedisAddr != "" {
		client := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
		statsCache = cache.NewDashboardCache(client, cfg.CacheTTL)
		log.Println("dashboard cache enabled at", cfg.RedisAddr)
	}

	// HTTP
	r := gin.Default()
	r.Use(middlewares.CORSMiddleware(cfg.AllowedOrigins))
	routes.RegisterRoutes(r, db, cfg, statsCache)

	addr := fmt.Sprintf(":%s", cfg.Port)
	log.Println("server running at", addr)
	if err := r.Run(addr); err != nil {
		log.Fatal(err)
	}
}
