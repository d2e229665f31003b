package repository

import (
    "strings"
    "sync"
    "time"

    "github.com/iliyamo/game-store-inventory/internal/model"
)

// GameRepo is the single source of truth for game records. State lives in
// process memory only and does not survive a restart. Every method takes
// the mutex so concurrent Echo handlers see each operation as atomic.
type GameRepo struct {
    mu     sync.RWMutex
    games  map[uint64]model.Game
    order  []uint64 // ids in insertion order
    nextID uint64
}

func NewGameRepo() *GameRepo {
    return &GameRepo{games: make(map[uint64]model.Game), nextID: 1}
}

// Create assigns the next id and the creation timestamp, stores the record
// and returns it.
func (r *GameRepo) Create(g model.Game) model.Game {
    r.mu.Lock()
    defer r.mu.Unlock()
    g.ID = r.nextID
    r.nextID++
    g.CreatedAt = time.Now().UTC()
    if g.Platforms == nil {
        g.Platforms = model.PlatformSet{}
    }
    r.games[g.ID] = g
    r.order = append(r.order, g.ID)
    return g
}

// GetByID returns the record or ErrGameNotFound.
func (r *GameRepo) GetByID(id uint64) (model.Game, error) {
    r.mu.RLock()
    defer r.mu.RUnlock()
    g, ok := r.games[id]
    if !ok {
        return model.Game{}, ErrGameNotFound
    }
    return g, nil
}

// GetAll returns every record in insertion order.
func (r *GameRepo) GetAll() []model.Game {
    r.mu.RLock()
    defer r.mu.RUnlock()
    return r.snapshot()
}

// snapshot copies the collection in insertion order. Callers must hold
// at least the read lock.
func (r *GameRepo) snapshot() []model.Game {
    out := make([]model.Game, 0, len(r.order))
    for _, id := range r.order {
        out = append(out, r.games[id])
    }
    return out
}

// Update shallow-merges the patch over the stored record: each non-nil
// field replaces the old value, everything else is untouched. ID and
// CreatedAt are immutable. Returns the updated record or ErrGameNotFound.
func (r *GameRepo) Update(id uint64, p model.GamePatch) (model.Game, error) {
    r.mu.Lock()
    defer r.mu.Unlock()
    g, ok := r.games[id]
    if !ok {
        return model.Game{}, ErrGameNotFound
    }
    if p.Title != nil {
        g.Title = *p.Title
    }
    if p.Description != nil {
        g.Description = *p.Description
    }
    if p.ReleaseDate != nil {
        g.ReleaseDate = *p.ReleaseDate
    }
    if p.Platforms != nil {
        g.Platforms = *p.Platforms
    }
    if p.Genre != nil {
        g.Genre = *p.Genre
    }
    if p.Developer != nil {
        g.Developer = *p.Developer
    }
    if p.Publisher != nil {
        g.Publisher = *p.Publisher
    }
    if p.Price != nil {
        g.Price = *p.Price
    }
    if p.Stock != nil {
        g.Stock = *p.Stock
    }
    if p.ImageURL != nil {
        g.ImageURL = p.ImageURL
    }
    r.games[id] = g
    return g, nil
}

// Delete removes the record if present and reports whether a removal
// occurred. Deleting an absent id is not an error.
func (r *GameRepo) Delete(id uint64) bool {
    r.mu.Lock()
    defer r.mu.Unlock()
    if _, ok := r.games[id]; !ok {
        return false
    }
    delete(r.games, id)
    for i, oid := range r.order {
        if oid == id {
            r.order = append(r.order[:i], r.order[i+1:]...)
            break
        }
    }
    return true
}

// Search returns every game whose title, developer, publisher or genre
// contains the query as a case-insensitive substring. No ranking.
func (r *GameRepo) Search(query string) []model.Game {
    q := strings.ToLower(query)
    r.mu.RLock()
    defer r.mu.RUnlock()
    out := []model.Game{}
    for _, id := range r.order {
        g := r.games[id]
        if strings.Contains(strings.ToLower(g.Title), q) ||
            strings.Contains(strings.ToLower(g.Developer), q) ||
            strings.Contains(strings.ToLower(g.Publisher), q) ||
            strings.Contains(strings.ToLower(g.Genre), q) {
            out = append(out, g)
        }
    }
    return out
}

// FilterByPlatform returns games flagged available on the given platform.
// An empty key means no filter and returns everything.
func (r *GameRepo) FilterByPlatform(platform model.Platform) []model.Game {
    r.mu.RLock()
    defer r.mu.RUnlock()
    if platform == "" {
        return r.snapshot()
    }
    out := []model.Game{}
    for _, id := range r.order {
        if g := r.games[id]; g.Platforms.Has(platform) {
            out = append(out, g)
        }
    }
    return out
}

// Count returns the number of stored games.
func (r *GameRepo) Count() int {
    r.mu.RLock()
    defer r.mu.RUnlock()
    return len(r.games)
}
