package handler

import (
    "bytes"
    "encoding/csv"
    "fmt"
    "net/http"
    "sort"
    "strconv"
    "strings"
    "time"

    "github.com/labstack/echo/v4"

    "github.com/iliyamo/game-store-inventory/internal/model"
    "github.com/iliyamo/game-store-inventory/internal/repository"
)

// ReportHandler renders downloadable inventory exports.
type ReportHandler struct {
    Games *repository.GameRepo
}

func NewReportHandler(g *repository.GameRepo) *ReportHandler {
    return &ReportHandler{Games: g}
}

// enabledPlatforms lists the flagged-true platform keys in a stable order.
func enabledPlatforms(ps model.PlatformSet) []string {
    keys := make([]string, 0, len(ps))
    for k, on := range ps {
        if on {
            keys = append(keys, string(k))
        }
    }
    sort.Strings(keys)
    return keys
}

// CSV handles GET /api/reports/inventory.csv and streams the full
// catalog as a properly quoted CSV file.
func (h *ReportHandler) CSV(c echo.Context) error {
    games := h.Games.GetAll()

    var buf bytes.Buffer
    w := csv.NewWriter(&buf)
    _ = w.Write([]string{"Title", "Genre", "Release Date", "Price", "Stock", "Platforms"})
    for _, g := range games {
        _ = w.Write([]string{
            g.Title,
            g.Genre,
            g.ReleaseDate.Format("2006-01-02"),
            strconv.FormatFloat(g.Price, 'f', 2, 64),
            strconv.Itoa(g.Stock),
            strings.Join(enabledPlatforms(g.Platforms), ", "),
        })
    }
    w.Flush()
    if err := w.Error(); err != nil {
        return c.JSON(http.StatusInternalServerError, echo.Map{"message": "Failed to generate report"})
    }

    name := fmt.Sprintf("inventory-%s.csv", time.Now().UTC().Format("2006-01-02"))
    c.Response().Header().Set(echo.HeaderContentDisposition, `attachment; filename="`+name+`"`)
    return c.Blob(http.StatusOK, "text/csv", buf.Bytes())
}

// Text handles GET /api/reports/inventory.txt: a human-readable summary
// followed by the detailed per-title listing.
func (h *ReportHandler) Text(c echo.Context) error {
    games := h.Games.GetAll()

    totalValue := 0.0
    lowStock := 0
    outOfStock := 0
    for _, g := range games {
        totalValue += g.Price * float64(g.Stock)
        if g.Stock < 10 {
            lowStock++
        }
        if g.Stock == 0 {
            outOfStock++
        }
    }

    var b strings.Builder
    fmt.Fprintf(&b, "GameStore Inventory Report\n")
    fmt.Fprintf(&b, "Generated on: %s\n\n", time.Now().UTC().Format("2006-01-02"))
    fmt.Fprintf(&b, "Summary:\n")
    fmt.Fprintf(&b, "- Total Games: %d\n", len(games))
    fmt.Fprintf(&b, "- Total Inventory Value: $%.2f\n", totalValue)
    fmt.Fprintf(&b, "- Low Stock Items (<10): %d\n", lowStock)
    fmt.Fprintf(&b, "- Out of Stock Items: %d\n\n", outOfStock)
    fmt.Fprintf(&b, "===================\n")
    fmt.Fprintf(&b, "Detailed Inventory:\n")
    fmt.Fprintf(&b, "===================\n")
    for _, g := range games {
        fmt.Fprintf(&b, "\n%s\n", g.Title)
        fmt.Fprintf(&b, "- Genre: %s\n", g.Genre)
        fmt.Fprintf(&b, "- Price: $%.2f\n", g.Price)
        fmt.Fprintf(&b, "- Stock: %d\n", g.Stock)
        fmt.Fprintf(&b, "- Platforms: %s\n", strings.ToUpper(strings.Join(enabledPlatforms(g.Platforms), ", ")))
    }

    name := fmt.Sprintf("inventory-report-%s.txt", time.Now().UTC().Format("2006-01-02"))
    c.Response().Header().Set(echo.HeaderContentDisposition, `attachment; filename="`+name+`"`)
    return c.Blob(http.StatusOK, "text/plain; charset=utf-8", []byte(b.String()))
}
