package stats_test

import (
    "testing"
    "time"

    "github.com/stretchr/testify/assert"
    "github.com/stretchr/testify/require"

    "github.com/iliyamo/game-store-inventory/internal/model"
    "github.com/iliyamo/game-store-inventory/internal/stats"
)

var now = time.Date(2024, time.June, 15, 12, 0, 0, 0, time.UTC)

func game(price float64, stock int, platforms model.PlatformSet) model.Game {
    return model.Game{
        Title:       "Some Game",
        ReleaseDate: now.AddDate(-1, 0, 0),
        Platforms:   platforms,
        Price:       price,
        Stock:       stock,
    }
}

func TestComputeEmptyCollection(t *testing.T) {
    d := stats.Compute(nil, now)

    assert.Equal(t, 0, d.Stats.TotalGames)
    assert.Equal(t, 0, d.Stats.NewReleases)
    assert.Equal(t, 0, d.Stats.LowStock)
    assert.Equal(t, 0, d.Stats.OutOfStock)
    assert.Equal(t, "0.00", d.Stats.Revenue)
    for _, p := range stats.HeadlinePlatforms {
        assert.Equal(t, 0, d.Platforms[p])
    }
    assert.Empty(t, d.RecentGames)
}

func TestComputeStockAndRevenue(t *testing.T) {
    games := []model.Game{
        game(10, 0, nil),
        game(20, 5, nil),
        game(30, 15, nil),
    }
    d := stats.Compute(games, now)

    assert.Equal(t, 3, d.Stats.TotalGames)
    assert.Equal(t, 1, d.Stats.LowStock, "only the stock of 5 is low")
    assert.Equal(t, 1, d.Stats.OutOfStock)
    assert.Equal(t, "550.00", d.Stats.Revenue)
}

func TestComputeNewReleasesWindow(t *testing.T) {
    games := []model.Game{
        {ReleaseDate: now.AddDate(0, 0, -10)}, // inside the window
        {ReleaseDate: now.AddDate(0, 0, -30)}, // boundary: still inside
        {ReleaseDate: now.AddDate(0, 0, -40)}, // too old
        {ReleaseDate: now.AddDate(0, 0, 5)},   // not released yet
    }
    d := stats.Compute(games, now)
    assert.Equal(t, 2, d.Stats.NewReleases)
}

func TestComputePlatformPercentagesRoundHalfUp(t *testing.T) {
    games := []model.Game{}
    for i := 0; i < 1; i++ {
        games = append(games, game(10, 1, model.PlatformSet{model.PlatformPC: true}))
    }
    for i := 0; i < 7; i++ {
        games = append(games, game(10, 1, model.PlatformSet{model.PlatformPS5: true}))
    }
    d := stats.Compute(games, now)

    // 1 of 8 is 12.5% and 7 of 8 is 87.5%; halves round up.
    assert.Equal(t, 13, d.Platforms[model.PlatformPC])
    assert.Equal(t, 88, d.Platforms[model.PlatformPS5])
    assert.Equal(t, 0, d.Platforms[model.PlatformXSX])
    assert.Equal(t, 0, d.Platforms[model.PlatformSwitch])
}

func TestComputePlatformPercentagesMultiPlatform(t *testing.T) {
    // One game on three headline platforms, one on none: percentages
    // are of the summed headline count, not of the game total.
    games := []model.Game{
        game(10, 1, model.PlatformSet{model.PlatformPC: true, model.PlatformPS5: true, model.PlatformXSX: true}),
        game(10, 1, model.PlatformSet{model.PlatformVita: true}),
    }
    d := stats.Compute(games, now)

    assert.Equal(t, 33, d.Platforms[model.PlatformPC])
    assert.Equal(t, 33, d.Platforms[model.PlatformPS5])
    assert.Equal(t, 33, d.Platforms[model.PlatformXSX])
    assert.Equal(t, 0, d.Platforms[model.PlatformSwitch])
}

func TestComputeRecentGames(t *testing.T) {
    games := make([]model.Game, 0, 7)
    for i := 0; i < 7; i++ {
        g := game(10, 1, nil)
        g.ID = uint64(i + 1)
        g.CreatedAt = now.Add(time.Duration(i) * time.Minute)
        games = append(games, g)
    }
    d := stats.Compute(games, now)

    require.Len(t, d.RecentGames, 5)
    assert.Equal(t, uint64(7), d.RecentGames[0].ID, "newest first")
    assert.Equal(t, uint64(3), d.RecentGames[4].ID)
}

func TestComputeRecentGamesTiesKeepInsertionOrder(t *testing.T) {
    ts := now.Add(-time.Hour)
    games := []model.Game{
        {ID: 1, CreatedAt: ts},
        {ID: 2, CreatedAt: ts},
        {ID: 3, CreatedAt: now},
    }
    d := stats.Compute(games, now)

    require.Len(t, d.RecentGames, 3)
    assert.Equal(t, uint64(3), d.RecentGames[0].ID)
    assert.Equal(t, uint64(1), d.RecentGames[1].ID, "equal timestamps keep insertion order")
    assert.Equal(t, uint64(2), d.RecentGames[2].ID)
}
