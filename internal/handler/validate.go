package handler

import (
    "strings"
    "time"

    "github.com/iliyamo/game-store-inventory/internal/model"
)

// gameForm is the create payload. The release date is accepted either as
// a plain calendar date ("2006-01-02") or a full RFC 3339 timestamp.
type gameForm struct {
    Title       string          `json:"title"`
    Description string          `json:"description"`
    ReleaseDate string          `json:"releaseDate"`
    Platforms   map[string]bool `json:"platforms"`
    Genre       string          `json:"genre"`
    Developer   string          `json:"developer"`
    Publisher   string          `json:"publisher"`
    Price       float64         `json:"price"`
    Stock       int             `json:"stock"`
    ImageURL    *string         `json:"imageUrl"`
}

// gamePatchForm is the partial-update payload; nil means "not provided".
type gamePatchForm struct {
    Title       *string          `json:"title"`
    Description *string          `json:"description"`
    ReleaseDate *string          `json:"releaseDate"`
    Platforms   *map[string]bool `json:"platforms"`
    Genre       *string          `json:"genre"`
    Developer   *string          `json:"developer"`
    Publisher   *string          `json:"publisher"`
    Price       *float64         `json:"price"`
    Stock       *int             `json:"stock"`
    ImageURL    *string          `json:"imageUrl"`
}

func parseReleaseDate(s string) (time.Time, error) {
    s = strings.TrimSpace(s)
    if t, err := time.Parse("2006-01-02", s); err == nil {
        return t, nil
    }
    return time.Parse(time.RFC3339, s)
}

func toPlatformSet(m map[string]bool) model.PlatformSet {
    ps := make(model.PlatformSet, len(m))
    for k, v := range m {
        ps[model.Platform(k)] = v
    }
    return ps.Normalize()
}

// validate checks the create payload and returns the game to store plus
// a field-to-message map; the map is empty when the payload is valid.
func (f gameForm) validate() (model.Game, map[string]string) {
    errs := map[string]string{}

    title := strings.TrimSpace(f.Title)
    if title == "" {
        errs["title"] = "Title is required"
    }
    if len(strings.TrimSpace(f.Description)) < 10 {
        errs["description"] = "Description must be at least 10 characters"
    }
    release, err := parseReleaseDate(f.ReleaseDate)
    if err != nil {
        errs["releaseDate"] = "Release date must be a valid date"
    }
    if strings.TrimSpace(f.Genre) == "" {
        errs["genre"] = "Genre is required"
    }
    if strings.TrimSpace(f.Developer) == "" {
        errs["developer"] = "Developer is required"
    }
    if strings.TrimSpace(f.Publisher) == "" {
        errs["publisher"] = "Publisher is required"
    }
    if f.Price <= 0 {
        errs["price"] = "Price must be greater than 0"
    }
    if f.Stock < 0 {
        errs["stock"] = "Stock cannot be negative"
    }
    if len(errs) > 0 {
        return model.Game{}, errs
    }

    return model.Game{
        Title:       title,
        Description: strings.TrimSpace(f.Description),
        ReleaseDate: release,
        Platforms:   toPlatformSet(f.Platforms),
        Genre:       strings.TrimSpace(f.Genre),
        Developer:   strings.TrimSpace(f.Developer),
        Publisher:   strings.TrimSpace(f.Publisher),
        Price:       f.Price,
        Stock:       f.Stock,
        ImageURL:    f.ImageURL,
    }, nil
}

// validate checks only the provided fields and builds the store patch.
func (f gamePatchForm) validate() (model.GamePatch, map[string]string) {
    errs := map[string]string{}
    var p model.GamePatch

    if f.Title != nil {
        t := strings.TrimSpace(*f.Title)
        if t == "" {
            errs["title"] = "Title is required"
        }
        p.Title = &t
    }
    if f.Description != nil {
        d := strings.TrimSpace(*f.Description)
        if len(d) < 10 {
            errs["description"] = "Description must be at least 10 characters"
        }
        p.Description = &d
    }
    if f.ReleaseDate != nil {
        t, err := parseReleaseDate(*f.ReleaseDate)
        if err != nil {
            errs["releaseDate"] = "Release date must be a valid date"
        }
        p.ReleaseDate = &t
    }
    if f.Platforms != nil {
        ps := toPlatformSet(*f.Platforms)
        p.Platforms = &ps
    }
    if f.Genre != nil {
        g := strings.TrimSpace(*f.Genre)
        if g == "" {
            errs["genre"] = "Genre is required"
        }
        p.Genre = &g
    }
    if f.Developer != nil {
        d := strings.TrimSpace(*f.Developer)
        if d == "" {
            errs["developer"] = "Developer is required"
        }
        p.Developer = &d
    }
    if f.Publisher != nil {
        pub := strings.TrimSpace(*f.Publisher)
        if pub == "" {
            errs["publisher"] = "Publisher is required"
        }
        p.Publisher = &pub
    }
    if f.Price != nil {
        if *f.Price <= 0 {
            errs["price"] = "Price must be greater than 0"
        }
        p.Price = f.Price
    }
    if f.Stock != nil {
        if *f.Stock < 0 {
            errs["stock"] = "Stock cannot be negative"
        }
        p.Stock = f.Stock
    }
    if f.ImageURL != nil {
        p.ImageURL = f.ImageURL
    }

    if len(errs) > 0 {
        return model.GamePatch{}, errs
    }
    return p, nil
}
