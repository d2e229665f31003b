package handler

import (
    "net/http"
    "time"

    "github.com/labstack/echo/v4"

    "github.com/iliyamo/game-store-inventory/internal/repository"
    "github.com/iliyamo/game-store-inventory/internal/stats"
)

// DashboardHandler serves the aggregated inventory summary.
type DashboardHandler struct {
    Games *repository.GameRepo
}

func NewDashboardHandler(g *repository.GameRepo) *DashboardHandler {
    return &DashboardHandler{Games: g}
}

// Stats handles GET /api/dashboard/stats. The summary is recomputed from
// a full store snapshot on every call.
func (h *DashboardHandler) Stats(c echo.Context) error {
    d := stats.Compute(h.Games.GetAll(), time.Now().UTC())
    return c.JSON(http.StatusOK, d)
}
