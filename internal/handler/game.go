package handler

import (
    "context"
    "errors"
    "net/http"
    "strconv"
    "strings"
    "time"

    "github.com/labstack/echo/v4"

    "github.com/iliyamo/game-store-inventory/internal/model"
    "github.com/iliyamo/game-store-inventory/internal/queue"
    "github.com/iliyamo/game-store-inventory/internal/repository"
    queue_publisher "github.com/iliyamo/game-store-inventory/internal/service"
)

// GameHandler serves the inventory CRUD endpoints.
type GameHandler struct {
    Games *repository.GameRepo
}

func NewGameHandler(g *repository.GameRepo) *GameHandler {
    return &GameHandler{Games: g}
}

// List handles GET /api/games. A `search` query wins over `platform`;
// `platform=all` (or none) means no filter.
func (h *GameHandler) List(c echo.Context) error {
    search := strings.TrimSpace(c.QueryParam("search"))
    platform := strings.TrimSpace(c.QueryParam("platform"))

    var games []model.Game
    switch {
    case search != "":
        games = h.Games.Search(search)
    case platform != "" && platform != "all":
        games = h.Games.FilterByPlatform(model.Platform(strings.ToLower(platform)))
    default:
        games = h.Games.GetAll()
    }
    return c.JSON(http.StatusOK, games)
}

// Get handles GET /api/games/:id.
func (h *GameHandler) Get(c echo.Context) error {
    id, err := strconv.ParseUint(c.Param("id"), 10, 64)
    if err != nil {
        return c.JSON(http.StatusBadRequest, echo.Map{"message": "Invalid game ID"})
    }
    g, err := h.Games.GetByID(id)
    if err != nil {
        if errors.Is(err, repository.ErrGameNotFound) {
            return c.JSON(http.StatusNotFound, echo.Map{"message": "Game not found"})
        }
        return c.JSON(http.StatusInternalServerError, echo.Map{"message": "Failed to retrieve game"})
    }
    return c.JSON(http.StatusOK, g)
}

// Create handles POST /api/games. Malformed input comes back as a
// field-to-message map under "errors", never silently coerced.
func (h *GameHandler) Create(c echo.Context) error {
    var form gameForm
    if err := c.Bind(&form); err != nil {
        return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid body"})
    }
    g, fieldErrs := form.validate()
    if len(fieldErrs) > 0 {
        return c.JSON(http.StatusBadRequest, echo.Map{"errors": fieldErrs})
    }
    created := h.Games.Create(g)
    h.alertIfStockLow(created)
    return c.JSON(http.StatusCreated, created)
}

// Update handles PUT /api/games/:id. The body is a partial record: each
// provided field replaces the stored value, absent fields are untouched.
func (h *GameHandler) Update(c echo.Context) error {
    id, err := strconv.ParseUint(c.Param("id"), 10, 64)
    if err != nil {
        return c.JSON(http.StatusBadRequest, echo.Map{"message": "Invalid game ID"})
    }
    var form gamePatchForm
    if err := c.Bind(&form); err != nil {
        return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid body"})
    }
    patch, fieldErrs := form.validate()
    if len(fieldErrs) > 0 {
        return c.JSON(http.StatusBadRequest, echo.Map{"errors": fieldErrs})
    }
    updated, err := h.Games.Update(id, patch)
    if err != nil {
        if errors.Is(err, repository.ErrGameNotFound) {
            return c.JSON(http.StatusNotFound, echo.Map{"message": "Game not found"})
        }
        return c.JSON(http.StatusInternalServerError, echo.Map{"message": "Failed to update game"})
    }
    h.alertIfStockLow(updated)
    return c.JSON(http.StatusOK, updated)
}

// Delete handles DELETE /api/games/:id.
func (h *GameHandler) Delete(c echo.Context) error {
    id, err := strconv.ParseUint(c.Param("id"), 10, 64)
    if err != nil {
        return c.JSON(http.StatusBadRequest, echo.Map{"message": "Invalid game ID"})
    }
    if !h.Games.Delete(id) {
        return c.JSON(http.StatusNotFound, echo.Map{"message": "Game not found"})
    }
    return c.JSON(http.StatusOK, echo.Map{"message": "Game deleted successfully"})
}

// alertIfStockLow publishes a stock alert when the record sits at or
// below the low-stock threshold. Best-effort: the publisher logs its own
// failures and the request never waits on the broker.
func (h *GameHandler) alertIfStockLow(g model.Game) {
    if g.Stock >= 10 {
        return
    }
    level := "low"
    if g.Stock == 0 {
        level = "out"
    }
    ev := queue.StockAlertEvent{
        GameID:     g.ID,
        Title:      g.Title,
        Publisher:  g.Publisher,
        Stock:      g.Stock,
        Price:      g.Price,
        Level:      level,
        OccurredAt: time.Now().UTC().Format(time.RFC3339),
    }
    go func() {
        ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
        defer cancel()
        _ = queue_publisher.PublishStockAlert(ctx, ev)
    }()
}
