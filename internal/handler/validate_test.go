package handler

import (
    "testing"
    "time"

    "github.com/stretchr/testify/assert"
    "github.com/stretchr/testify/require"

    "github.com/iliyamo/game-store-inventory/internal/model"
)

func validForm() gameForm {
    return gameForm{
        Title:       "Hades II",
        Description: "A rogue-like dungeon crawler from Supergiant Games.",
        ReleaseDate: "2024-05-06",
        Platforms:   map[string]bool{"pc": true, "switch": true},
        Genre:       "Roguelike",
        Developer:   "Supergiant Games",
        Publisher:   "Supergiant Games",
        Price:       29.99,
        Stock:       12,
    }
}

func TestGameFormValid(t *testing.T) {
    g, errs := validForm().validate()
    require.Empty(t, errs)
    assert.Equal(t, "Hades II", g.Title)
    assert.Equal(t, time.Date(2024, time.May, 6, 0, 0, 0, 0, time.UTC), g.ReleaseDate)
    assert.True(t, g.Platforms.Has(model.PlatformPC))
    assert.True(t, g.Platforms.Has(model.PlatformSwitch))
}

func TestGameFormFieldErrors(t *testing.T) {
    f := gameForm{
        Title:       "  ",
        Description: "too short",
        ReleaseDate: "not-a-date",
        Genre:       "",
        Developer:   "",
        Publisher:   "",
        Price:       0,
        Stock:       -1,
    }
    _, errs := f.validate()

    assert.Equal(t, "Title is required", errs["title"])
    assert.Equal(t, "Description must be at least 10 characters", errs["description"])
    assert.Equal(t, "Release date must be a valid date", errs["releaseDate"])
    assert.Equal(t, "Genre is required", errs["genre"])
    assert.Equal(t, "Developer is required", errs["developer"])
    assert.Equal(t, "Publisher is required", errs["publisher"])
    assert.Equal(t, "Price must be greater than 0", errs["price"])
    assert.Equal(t, "Stock cannot be negative", errs["stock"])
}

func TestGameFormAcceptsRFC3339Date(t *testing.T) {
    f := validForm()
    f.ReleaseDate = "2024-05-06T00:00:00Z"
    _, errs := f.validate()
    assert.Empty(t, errs)
}

func TestGameFormFoldsUnknownPlatforms(t *testing.T) {
    f := validForm()
    f.Platforms = map[string]bool{"PC": true, "dreamcast": true}
    g, errs := f.validate()
    require.Empty(t, errs)
    assert.True(t, g.Platforms.Has(model.PlatformPC), "keys are lower-cased")
    assert.True(t, g.Platforms.Has(model.PlatformOther), "unknown keys fold into other")
}

func TestGamePatchFormOnlyValidatesProvidedFields(t *testing.T) {
    stock := 5
    p, errs := gamePatchForm{Stock: &stock}.validate()
    require.Empty(t, errs)
    require.NotNil(t, p.Stock)
    assert.Equal(t, 5, *p.Stock)
    assert.Nil(t, p.Title)
    assert.Nil(t, p.Price)
}

func TestGamePatchFormRejectsBadValues(t *testing.T) {
    price := -1.0
    title := ""
    _, errs := gamePatchForm{Price: &price, Title: &title}.validate()
    assert.Equal(t, "Price must be greater than 0", errs["price"])
    assert.Equal(t, "Title is required", errs["title"])
    assert.Len(t, errs, 2)
}
