// Package stats derives the dashboard summary from a full snapshot of the
// game collection. Everything is recomputed on each call; there is no
// caching or incremental maintenance, the dataset is a few hundred records.
package stats

import (
    "fmt"
    "math"
    "sort"
    "time"

    "github.com/iliyamo/game-store-inventory/internal/model"
)

// Thresholds for inventory-health counters.
const (
    lowStockMax   = 10 // stock in [1, lowStockMax) counts as low stock
    recentGamesN  = 5  // size of the recent-games list
    newReleaseAge = 30 * 24 * time.Hour
)

// HeadlinePlatforms is the fixed subset used for the platform breakdown.
var HeadlinePlatforms = []model.Platform{
    model.PlatformPC,
    model.PlatformPS5,
    model.PlatformXSX,
    model.PlatformSwitch,
}

// Totals holds the headline counters shown on the dashboard.
type Totals struct {
    TotalGames  int    `json:"totalGames"`
    NewReleases int    `json:"newReleases"`
    LowStock    int    `json:"lowStock"`
    OutOfStock  int    `json:"outOfStock"`
    Revenue     string `json:"revenue"` // sum of price*stock, two decimals
}

// Dashboard is the full aggregator result.
type Dashboard struct {
    Stats       Totals                 `json:"stats"`
    Platforms   map[model.Platform]int `json:"platforms"` // integer percentages
    RecentGames []model.Game           `json:"recentGames"`
}

// Compute scans the collection once and builds the dashboard summary.
// now is the wall-clock instant used for the trailing-30-day window.
//
// Platform percentages are of the summed headline-platform count, rounded
// half-up. They need not sum to 100: a game can be on several headline
// platforms, or on none. An empty collection yields zeros everywhere and
// revenue "0.00" (0/0 is defined as 0).
func Compute(games []model.Game, now time.Time) Dashboard {
    d := Dashboard{
        Stats:       Totals{TotalGames: len(games)},
        Platforms:   make(map[model.Platform]int, len(HeadlinePlatforms)),
        RecentGames: []model.Game{},
    }

    cutoff := now.Add(-newReleaseAge)
    revenue := 0.0
    counts := make(map[model.Platform]int, len(HeadlinePlatforms))
    for _, g := range games {
        if !g.ReleaseDate.Before(cutoff) && !g.ReleaseDate.After(now) {
            d.Stats.NewReleases++
        }
        switch {
        case g.Stock == 0:
            d.Stats.OutOfStock++
        case g.Stock < lowStockMax:
            d.Stats.LowStock++
        }
        revenue += g.Price * float64(g.Stock)
        for _, p := range HeadlinePlatforms {
            if g.Platforms.Has(p) {
                counts[p]++
            }
        }
    }
    d.Stats.Revenue = fmt.Sprintf("%.2f", revenue)

    total := 0
    for _, p := range HeadlinePlatforms {
        total += counts[p]
    }
    for _, p := range HeadlinePlatforms {
        if total == 0 {
            d.Platforms[p] = 0
            continue
        }
        d.Platforms[p] = int(math.Round(float64(counts[p]) / float64(total) * 100))
    }

    // Newest first; the stable sort keeps insertion order for equal
    // timestamps since the input snapshot is already insertion-ordered.
    recent := make([]model.Game, len(games))
    copy(recent, games)
    sort.SliceStable(recent, func(i, j int) bool {
        return recent[i].CreatedAt.After(recent[j].CreatedAt)
    })
    if len(recent) > recentGamesN {
        recent = recent[:recentGamesN]
    }
    d.RecentGames = recent

    return d
}
