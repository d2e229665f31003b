package main // Entry point package

import (
    "log"

    "github.com/joho/godotenv"
    "github.com/labstack/echo/v4"

    "github.com/iliyamo/game-store-inventory/internal/config"
    "github.com/iliyamo/game-store-inventory/internal/handler"
    "github.com/iliyamo/game-store-inventory/internal/middleware"
    "github.com/iliyamo/game-store-inventory/internal/queue"
    "github.com/iliyamo/game-store-inventory/internal/repository"
    "github.com/iliyamo/game-store-inventory/internal/router"
    "github.com/iliyamo/game-store-inventory/internal/seed"
)

func main() {
    _ = godotenv.Load() // .env is optional; real env vars win
    cfg := config.Load()

    // The stores are built once here and injected into every handler.
    // State is process memory only and does not survive a restart.
    users := repository.NewUserRepo()
    games := repository.NewGameRepo()

    if _, err := users.Create(cfg.AdminName, cfg.AdminUser, cfg.AdminPassword, cfg.AdminEmail, "admin", cfg.BcryptCost); err != nil {
        log.Fatalf("seed admin user: %v", err)
    }
    seed.Load(games, cfg.SeedFile)

    // Redis is optional; rate limiting and caching turn into no-ops
    // when it is unreachable.
    rdb := config.NewRedisClient()
    if rdb == nil {
        log.Println("redis unavailable; rate limiting and response cache disabled")
    }

    e := echo.New()
    e.Use(middleware.NewTokenBucket(config.LoadRateLimitConfig(), rdb))
    cacheMW := middleware.NewRedisCache(config.LoadCacheConfig(), rdb)

    router.RegisterRoutes(e)
    router.RegisterAuth(e, handler.NewAuthHandler(cfg, users), cfg.JWTSecret)
    router.RegisterInventory(e,
        handler.NewGameHandler(games),
        handler.NewDashboardHandler(games),
        handler.NewAnalyticsHandler(games),
        handler.NewReportHandler(games),
        cfg.JWTSecret,
        cacheMW,
    )

    // Background consumer that turns stock alerts into log lines.
    go func() {
        if err := queue.StartStockAlertConsumer(); err != nil {
            log.Printf("stock-alert consumer stopped: %v", err)
        }
    }()

    addr := ":" + cfg.Port
    log.Printf("listening on %s (env=%s)", addr, cfg.Env)
    if err := e.Start(addr); err != nil {
        log.Fatal(err)
    }
}
