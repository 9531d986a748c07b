package app

import (
	"Gin_postgres_redis_share_it/db"
	"context"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

type Ctx = gin.Context
type H = gin.H

// App 聚合各依赖
type App struct {
	Router *gin.Engine
	DB     *gorm.DB
	RDB    *redis.Client
	Config Config
}

// Config 从环境变量读取
type Config struct {
	RedisAddr     string
	RedisPwd      string
	WebOrigin     string
	RatePerMinute int
}

func MustNew() *App {
	cfg := loadConfig()

	// --- DB: Postgres ---
	dbConn := db.ConnectDB()

	// --- Redis ---
	rdb := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr, Password: cfg.RedisPwd, DB: 0})
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	if err := rdb.Ping(ctx).Err(); err != nil {
		log.Fatalf("redis: %v", err)
	}

	// --- Gin ---
	r := gin.Default()
	useCORS(r, cfg.WebOrigin)
	r.Use(RequestID())
	if cfg.RatePerMinute > 0 {
		r.Use(ThrottleRequests(rdb, cfg.RatePerMinute))
	}

	return &App{Router: r, DB: dbConn, RDB: rdb, Config: cfg}
}

func (a *App) Close() { _ = a.RDB.Close() }

func loadConfig() Config {
	get := func(k, def string) string {
		v := os.Getenv(k)
		if v == "" {
			return def
		}
		return v
	}
	rate := 0
	if v := strings.TrimSpace(os.Getenv("RATE_PER_MINUTE")); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			rate = n
		}
	}
	return Config{
		RedisAddr:     get("REDIS_ADDR", "127.0.0.1:6379"),
		RedisPwd:      os.Getenv("REDIS_PASSWORD"),
		WebOrigin:     get("WEB_ORIGIN", "http://localhost:8080"),
		RatePerMinute: rate,
	}
}
