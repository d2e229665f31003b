package handler

import (
    "encoding/csv"
    "net/http"
    "strings"
    "testing"

    "github.com/stretchr/testify/assert"
    "github.com/stretchr/testify/require"

    "github.com/iliyamo/game-store-inventory/internal/repository"
)

func TestReportCSV(t *testing.T) {
    repo := repository.NewGameRepo()
    g := storedGame(repo, "Elden Ring", 20)
    // A title containing a comma must survive the round trip intact.
    tricky := storedGame(repo, "Divinity: Original Sin 2, Definitive Edition", 12)
    h := NewReportHandler(repo)

    c, rec := newCtx(t, http.MethodGet, "/api/reports/inventory.csv", "")
    require.NoError(t, h.CSV(c))
    require.Equal(t, http.StatusOK, rec.Code)
    assert.Contains(t, rec.Header().Get("Content-Disposition"), "attachment")

    rows, err := csv.NewReader(strings.NewReader(rec.Body.String())).ReadAll()
    require.NoError(t, err)
    require.Len(t, rows, 3) // header + two games

    assert.Equal(t, []string{"Title", "Genre", "Release Date", "Price", "Stock", "Platforms"}, rows[0])
    assert.Equal(t, g.Title, rows[1][0])
    assert.Equal(t, "69.99", rows[1][3])
    assert.Equal(t, "20", rows[1][4])
    assert.Equal(t, "pc", rows[1][5])
    assert.Equal(t, tricky.Title, rows[2][0])
}

func TestReportText(t *testing.T) {
    repo := repository.NewGameRepo()
    storedGame(repo, "Elden Ring", 20)
    out := storedGame(repo, "Starfield", 0)
    h := NewReportHandler(repo)

    c, rec := newCtx(t, http.MethodGet, "/api/reports/inventory.txt", "")
    require.NoError(t, h.Text(c))
    require.Equal(t, http.StatusOK, rec.Code)

    body := rec.Body.String()
    assert.Contains(t, body, "GameStore Inventory Report")
    assert.Contains(t, body, "- Total Games: 2")
    assert.Contains(t, body, "- Out of Stock Items: 1")
    assert.Contains(t, body, out.Title)
    assert.Contains(t, body, "- Platforms: PC")
}

func TestReportCSVEmptyCatalog(t *testing.T) {
    h := NewReportHandler(repository.NewGameRepo())

    c, rec := newCtx(t, http.MethodGet, "/api/reports/inventory.csv", "")
    require.NoError(t, h.CSV(c))
    require.Equal(t, http.StatusOK, rec.Code)

    rows, err := csv.NewReader(strings.NewReader(rec.Body.String())).ReadAll()
    require.NoError(t, err)
    assert.Len(t, rows, 1, "only the header remains")
}
