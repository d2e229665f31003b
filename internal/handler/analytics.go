package handler

import (
    "net/http"

    "github.com/labstack/echo/v4"

    "github.com/iliyamo/game-store-inventory/internal/model"
    "github.com/iliyamo/game-store-inventory/internal/repository"
    "github.com/iliyamo/game-store-inventory/internal/stats"
)

// AnalyticsHandler serves the distribution breakdowns behind the
// analytics view.
type AnalyticsHandler struct {
    Games *repository.GameRepo
}

func NewAnalyticsHandler(g *repository.GameRepo) *AnalyticsHandler {
    return &AnalyticsHandler{Games: g}
}

type analyticsResp struct {
    TotalGames   int                    `json:"totalGames"`
    Genres       map[string]int         `json:"genres"`
    Platforms    map[model.Platform]int `json:"platforms"`    // raw counts per headline platform
    ReleaseYears map[int]int            `json:"releaseYears"` // games released per calendar year
}

// Distribution handles GET /api/analytics: how the catalog splits across
// genres, headline platforms and release years.
func (h *AnalyticsHandler) Distribution(c echo.Context) error {
    games := h.Games.GetAll()

    resp := analyticsResp{
        TotalGames:   len(games),
        Genres:       map[string]int{},
        Platforms:    map[model.Platform]int{},
        ReleaseYears: map[int]int{},
    }
    for _, p := range stats.HeadlinePlatforms {
        resp.Platforms[p] = 0
    }
    for _, g := range games {
        resp.Genres[g.Genre]++
        resp.ReleaseYears[g.ReleaseDate.Year()]++
        for _, p := range stats.HeadlinePlatforms {
            if g.Platforms.Has(p) {
                resp.Platforms[p]++
            }
        }
    }
    return c.JSON(http.StatusOK, resp)
}
