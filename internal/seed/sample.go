package seed

import (
    "log"
    "time"

    "github.com/iliyamo/game-store-inventory/internal/model"
    "github.com/iliyamo/game-store-inventory/internal/repository"
)

func date(y int, m time.Month, d int) time.Time {
    return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// sampleCatalog is the fixed fallback used when the sales dataset is
// unavailable: five fully-specified titles covering every headline
// platform and both stock thresholds.
var sampleCatalog = []model.Game{
    {
        Title:       "Cyberpunk 2077",
        Description: "Cyberpunk 2077 is an open-world, action-adventure story set in Night City, a megalopolis obsessed with power, glamour and body modification.",
        ReleaseDate: date(2020, time.December, 10),
        Platforms:   model.PlatformSet{model.PlatformPC: true, model.PlatformPS5: true, model.PlatformXSX: true, model.PlatformSwitch: false},
        Genre:       "RPG",
        Developer:   "CD Projekt Red",
        Publisher:   "CD Projekt",
        Price:       59.99,
        Stock:       45,
    },
    {
        Title:       "Elden Ring",
        Description: "Elden Ring is an action RPG that takes place in the Lands Between, a realm ruled by demigods who possess fragments of the titular Elden Ring.",
        ReleaseDate: date(2022, time.February, 25),
        Platforms:   model.PlatformSet{model.PlatformPC: true, model.PlatformPS5: true, model.PlatformXSX: true, model.PlatformSwitch: false},
        Genre:       "Action RPG",
        Developer:   "FromSoftware",
        Publisher:   "Bandai Namco",
        Price:       69.99,
        Stock:       8,
    },
    {
        Title:       "God of War: Ragnarök",
        Description: "God of War Ragnarök is an action-adventure game that continues the story of Kratos and his son Atreus as they prepare for Ragnarök.",
        ReleaseDate: date(2022, time.November, 9),
        Platforms:   model.PlatformSet{model.PlatformPS5: true},
        Genre:       "Action Adventure",
        Developer:   "Santa Monica Studio",
        Publisher:   "Sony Interactive Entertainment",
        Price:       69.99,
        Stock:       32,
    },
    {
        Title:       "Starfield",
        Description: "Starfield is the first new universe in 25 years from Bethesda Game Studios, the creators of The Elder Scrolls V: Skyrim and Fallout 4.",
        ReleaseDate: date(2023, time.September, 6),
        Platforms:   model.PlatformSet{model.PlatformPC: true, model.PlatformXSX: true},
        Genre:       "RPG",
        Developer:   "Bethesda Game Studios",
        Publisher:   "Bethesda Softworks",
        Price:       69.99,
        Stock:       0,
    },
    {
        Title:       "The Legend of Zelda: Tears of the Kingdom",
        Description: "The Legend of Zelda: Tears of the Kingdom is the sequel to The Legend of Zelda: Breath of the Wild.",
        ReleaseDate: date(2023, time.May, 12),
        Platforms:   model.PlatformSet{model.PlatformSwitch: true},
        Genre:       "Action Adventure",
        Developer:   "Nintendo",
        Publisher:   "Nintendo",
        Price:       59.99,
        Stock:       55,
    },
}

// loadSample inserts the fallback catalog and returns how many games
// were added.
func loadSample(repo *repository.GameRepo) int {
    for _, g := range sampleCatalog {
        repo.Create(g)
    }
    log.Printf("seed: loaded %d sample games", len(sampleCatalog))
    return len(sampleCatalog)
}
