// Package seed populates the game store once at startup. The preferred
// source is a tabular sales dataset (rank,name,platform,year,genre,
// publisher); when that file cannot be read the fixed sample catalog is
// loaded instead. Seeding runs before the first request is served.
package seed

import (
    "fmt"
    "log"
    "os"
    "strconv"
    "strings"
    "time"

    "github.com/iliyamo/game-store-inventory/internal/model"
    "github.com/iliyamo/game-store-inventory/internal/repository"
)

// maxRows bounds startup cost; only the first maxRows data rows are used.
const maxRows = 150

// platformLookup maps the dataset's platform codes onto the availability
// flags. Each legacy console folds into its current-generation family.
var platformLookup = map[string]model.Platform{
    "PS3": model.PlatformPS5, "PS4": model.PlatformPS5,
    "PS2": model.PlatformPS5, "PS": model.PlatformPS5,
    "X360": model.PlatformXSX, "XB": model.PlatformXSX, "XOne": model.PlatformXSX,
    "Wii": model.PlatformSwitch, "WiiU": model.PlatformSwitch,
    "DS": model.PlatformSwitch, "GBA": model.PlatformSwitch,
    "3DS": model.PlatformSwitch, "SNES": model.PlatformSwitch,
    "NES": model.PlatformSwitch, "N64": model.PlatformSwitch,
    "GC": model.PlatformSwitch, "GB": model.PlatformSwitch,
    "PC": model.PlatformPC, "GEN": model.PlatformPC, "2600": model.PlatformPC,
}

// Load fills the repo from the dataset at path. If the file cannot be
// read, it logs the reason once and falls back to the sample catalog.
// Returns the number of games inserted.
func Load(repo *repository.GameRepo, path string) int {
    data, err := os.ReadFile(path)
    if err != nil {
        log.Printf("seed: cannot read %s (%v); loading sample catalog", path, err)
        return loadSample(repo)
    }
    n := loadRows(repo, string(data))
    if n == 0 {
        log.Printf("seed: no usable rows in %s; loading sample catalog", path)
        return loadSample(repo)
    }
    log.Printf("seed: loaded %d games from %s", n, path)
    return n
}

// loadRows parses the raw file contents and inserts one game per valid
// row. The format is a header line followed by comma-separated values
// with no quoting, so values containing commas are a known limitation.
func loadRows(repo *repository.GameRepo, raw string) int {
    lines := strings.Split(strings.TrimSpace(raw), "\n")
    if len(lines) < 2 {
        return 0
    }
    inserted := 0
    for _, line := range lines[1:] {
        if inserted >= maxRows {
            break
        }
        cols := strings.Split(strings.TrimRight(line, "\r"), ",")
        if len(cols) < 6 {
            continue // unparseable row, skipped silently
        }
        rank, err := strconv.Atoi(strings.TrimSpace(cols[0]))
        if err != nil {
            continue
        }
        g := mapRow(rank, cols[1], cols[2], cols[3], cols[4], cols[5])
        repo.Create(g)
        inserted++
    }
    return inserted
}

// mapRow turns one dataset row into a game record:
// price by rank tier, platform flags via platformLookup (unknown codes
// default to pc), a templated description, stock clamp(0,100,100-rank/2)
// and the publisher doubling as developer.
func mapRow(rank int, name, platform, year, genre, publisher string) model.Game {
    name = strings.TrimSpace(name)
    platform = strings.TrimSpace(platform)
    year = strings.TrimSpace(year)
    genre = strings.TrimSpace(genre)
    publisher = strings.TrimSpace(publisher)

    flag, ok := platformLookup[platform]
    if !ok {
        flag = model.PlatformPC
    }

    yearLabel := year
    releaseYear := 2000
    if y, err := strconv.Atoi(year); err == nil {
        releaseYear = y
    } else {
        yearLabel = "Unknown"
    }

    stock := 100 - rank/2
    if stock < 0 {
        stock = 0
    }
    if stock > 100 {
        stock = 100
    }

    return model.Game{
        Title: name,
        Description: fmt.Sprintf("%s is a %s game originally released for %s in %s by %s.",
            name, genre, platform, yearLabel, publisher),
        ReleaseDate: time.Date(releaseYear, time.January, 1, 0, 0, 0, 0, time.UTC),
        Platforms:   model.PlatformSet{flag: true},
        Genre:       genre,
        Developer:   publisher, // the dataset has no separate developer column
        Publisher:   publisher,
        Price:       priceForRank(rank),
        Stock:       stock,
    }
}

// priceForRank derives a synthetic shelf price: more popular titles
// (lower rank) sell higher, in six tiers from 59.99 down to 9.99.
func priceForRank(rank int) float64 {
    switch {
    case rank <= 10:
        return 59.99
    case rank <= 30:
        return 49.99
    case rank <= 50:
        return 39.99
    case rank <= 80:
        return 29.99
    case rank <= 120:
        return 19.99
    default:
        return 9.99
    }
}
