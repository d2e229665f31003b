package router // package router wires HTTP routes to their handlers

import (
    "github.com/labstack/echo/v4"

    "github.com/iliyamo/game-store-inventory/internal/handler"
    "github.com/iliyamo/game-store-inventory/internal/middleware"
)

// RegisterRoutes registers the unauthenticated infrastructure routes.
func RegisterRoutes(e *echo.Echo) {
    // Probed by load balancers and monitoring.
    e.GET("/healthz", handler.Health)
}

// RegisterAuth registers the login flow. Login, logout and auth-check
// are reachable without a token; /api/me requires one.
func RegisterAuth(e *echo.Echo, a *handler.AuthHandler, jwtSecret string) {
    e.POST("/api/login", a.Login)
    e.POST("/api/logout", a.Logout)
    e.GET("/api/auth-check", a.AuthCheck)

    me := e.Group("/api")
    me.Use(middleware.JWTAuth(jwtSecret))
    me.GET("/me", a.Me)
}

// RegisterInventory registers every authenticated inventory route:
// game CRUD with search and platform filtering, the dashboard summary,
// the analytics breakdowns and the report exports. cacheMW is applied
// to the read-only aggregate endpoints; pass nil to disable caching.
func RegisterInventory(
    e *echo.Echo,
    g *handler.GameHandler,
    d *handler.DashboardHandler,
    an *handler.AnalyticsHandler,
    rep *handler.ReportHandler,
    jwtSecret string,
    cacheMW echo.MiddlewareFunc,
) {
    api := e.Group("/api")
    api.Use(middleware.JWTAuth(jwtSecret))
    api.Use(middleware.RequireRole("admin"))

    api.GET("/games", g.List)
    api.GET("/games/:id", g.Get)
    api.POST("/games", g.Create)
    api.PUT("/games/:id", g.Update)
    api.DELETE("/games/:id", g.Delete)

    aggregates := []echo.MiddlewareFunc{}
    if cacheMW != nil {
        aggregates = append(aggregates, cacheMW)
    }
    api.GET("/dashboard/stats", d.Stats, aggregates...)
    api.GET("/analytics", an.Distribution, aggregates...)
    api.GET("/reports/inventory.csv", rep.CSV, aggregates...)
    api.GET("/reports/inventory.txt", rep.Text, aggregates...)
}
