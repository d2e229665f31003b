package repository_test

import (
    "testing"
    "time"

    "github.com/stretchr/testify/assert"
    "github.com/stretchr/testify/require"

    "github.com/iliyamo/game-store-inventory/internal/model"
    "github.com/iliyamo/game-store-inventory/internal/repository"
)

func newGame(title string) model.Game {
    return model.Game{
        Title:       title,
        Description: "A description longer than ten characters.",
        ReleaseDate: time.Date(2023, time.May, 12, 0, 0, 0, 0, time.UTC),
        Platforms:   model.PlatformSet{model.PlatformPC: true},
        Genre:       "Action Adventure",
        Developer:   "Dev Studio",
        Publisher:   "Pub House",
        Price:       59.99,
        Stock:       20,
    }
}

func TestGameRepoCreateThenGet(t *testing.T) {
    repo := repository.NewGameRepo()

    before := time.Now().UTC()
    created := repo.Create(newGame("Hollow Knight"))

    assert.Equal(t, uint64(1), created.ID)
    assert.False(t, created.CreatedAt.Before(before))

    got, err := repo.GetByID(created.ID)
    require.NoError(t, err)
    assert.Equal(t, created, got)

    // Everything besides id and creation timestamp matches the input.
    want := newGame("Hollow Knight")
    want.ID = created.ID
    want.CreatedAt = created.CreatedAt
    assert.Equal(t, want, got)
}

func TestGameRepoIDsAreSequential(t *testing.T) {
    repo := repository.NewGameRepo()
    for i := uint64(1); i <= 3; i++ {
        g := repo.Create(newGame("Game"))
        assert.Equal(t, i, g.ID)
    }
    // Deleting does not recycle ids.
    require.True(t, repo.Delete(3))
    assert.Equal(t, uint64(4), repo.Create(newGame("Game")).ID)
}

func TestGameRepoGetAllInsertionOrder(t *testing.T) {
    repo := repository.NewGameRepo()
    repo.Create(newGame("first"))
    repo.Create(newGame("second"))
    repo.Create(newGame("third"))

    all := repo.GetAll()
    require.Len(t, all, 3)
    assert.Equal(t, "first", all[0].Title)
    assert.Equal(t, "second", all[1].Title)
    assert.Equal(t, "third", all[2].Title)
}

func TestGameRepoGetMissing(t *testing.T) {
    repo := repository.NewGameRepo()
    _, err := repo.GetByID(42)
    assert.ErrorIs(t, err, repository.ErrGameNotFound)
}

func TestGameRepoUpdatePatchesOnlyProvidedFields(t *testing.T) {
    repo := repository.NewGameRepo()
    created := repo.Create(newGame("Stellar Blade"))

    stock := 5
    updated, err := repo.Update(created.ID, model.GamePatch{Stock: &stock})
    require.NoError(t, err)

    want := created
    want.Stock = 5
    assert.Equal(t, want, updated)

    got, err := repo.GetByID(created.ID)
    require.NoError(t, err)
    assert.Equal(t, want, got)
}

func TestGameRepoUpdateMissing(t *testing.T) {
    repo := repository.NewGameRepo()
    price := 9.99
    _, err := repo.Update(7, model.GamePatch{Price: &price})
    assert.ErrorIs(t, err, repository.ErrGameNotFound)
}

func TestGameRepoDelete(t *testing.T) {
    repo := repository.NewGameRepo()
    created := repo.Create(newGame("Short Lived"))

    assert.True(t, repo.Delete(created.ID))
    _, err := repo.GetByID(created.ID)
    assert.ErrorIs(t, err, repository.ErrGameNotFound)

    // Deleting an already-absent id is a no-op, not an error.
    assert.False(t, repo.Delete(created.ID))
}

func TestGameRepoSearch(t *testing.T) {
    repo := repository.NewGameRepo()

    zelda := newGame("The Legend of Zelda: Tears of the Kingdom")
    zelda.Developer = "Nintendo"
    zelda.Publisher = "Nintendo"
    repo.Create(zelda)

    other := newGame("Forza Horizon 5")
    other.Developer = "Playground Games"
    other.Publisher = "Xbox Game Studios"
    other.Genre = "Racing"
    repo.Create(other)

    matches := repo.Search("zelda")
    require.Len(t, matches, 1)
    assert.Equal(t, zelda.Title, matches[0].Title)

    // Substring matching applies to developer, publisher and genre too.
    assert.Len(t, repo.Search("NINTENDO"), 1)
    assert.Len(t, repo.Search("playground"), 1)
    assert.Len(t, repo.Search("racing"), 1)
    assert.Empty(t, repo.Search("minecraft"))
}

func TestGameRepoFilterByPlatform(t *testing.T) {
    repo := repository.NewGameRepo()

    pcOnly := newGame("PC Exclusive")
    pcOnly.Platforms = model.PlatformSet{model.PlatformPC: true}
    repo.Create(pcOnly)

    switchOnly := newGame("Switch Exclusive")
    switchOnly.Platforms = model.PlatformSet{model.PlatformSwitch: true, model.PlatformPC: false}
    repo.Create(switchOnly)

    filtered := repo.FilterByPlatform(model.PlatformSwitch)
    require.Len(t, filtered, 1)
    assert.Equal(t, "Switch Exclusive", filtered[0].Title)

    // An explicit false flag does not match.
    pcs := repo.FilterByPlatform(model.PlatformPC)
    require.Len(t, pcs, 1)
    assert.Equal(t, "PC Exclusive", pcs[0].Title)

    // Empty key means no filter.
    assert.Len(t, repo.FilterByPlatform(""), 2)
}
