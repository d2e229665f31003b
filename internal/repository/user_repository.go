package repository

import (
    "strings"
    "sync"
    "time"

    "github.com/iliyamo/game-store-inventory/internal/model"
    "github.com/iliyamo/game-store-inventory/internal/utils"
)

// UserRepo stores staff accounts in memory. Usernames are matched exactly
// and emails are normalized to lower case. Uniqueness of both is
// re-validated here rather than trusted to upstream validation.
type UserRepo struct {
    mu     sync.RWMutex
    users  map[uint64]model.User
    nextID uint64
}

func NewUserRepo() *UserRepo {
    return &UserRepo{users: make(map[uint64]model.User), nextID: 1}
}

// Create hashes the password, assigns the next id and inserts the user.
// The role defaults to "admin" when empty. Returns ErrUsernameExists or
// ErrEmailExists on collision.
func (r *UserRepo) Create(fullName, username, password, email, role string, bcryptCost int) (model.User, error) {
    username = strings.TrimSpace(username)
    email = strings.ToLower(strings.TrimSpace(email))
    if role == "" {
        role = "admin"
    }
    hash, err := utils.HashPassword(password, bcryptCost)
    if err != nil {
        return model.User{}, err
    }

    r.mu.Lock()
    defer r.mu.Unlock()
    for _, u := range r.users {
        if u.Username == username {
            return model.User{}, ErrUsernameExists
        }
        if u.Email == email {
            return model.User{}, ErrEmailExists
        }
    }
    u := model.User{
        ID:           r.nextID,
        FullName:     fullName,
        Username:     username,
        PasswordHash: hash,
        Email:        email,
        Role:         role,
    }
    r.nextID++
    r.users[u.ID] = u
    return u, nil
}

// GetByID returns the user or ErrUserNotFound.
func (r *UserRepo) GetByID(id uint64) (model.User, error) {
    r.mu.RLock()
    defer r.mu.RUnlock()
    u, ok := r.users[id]
    if !ok {
        return model.User{}, ErrUserNotFound
    }
    return u, nil
}

// GetByUsername returns the user with the exact username or ErrUserNotFound.
func (r *UserRepo) GetByUsername(username string) (model.User, error) {
    r.mu.RLock()
    defer r.mu.RUnlock()
    for _, u := range r.users {
        if u.Username == username {
            return u, nil
        }
    }
    return model.User{}, ErrUserNotFound
}

// Validate checks the credentials and, on success, refreshes LastLogin and
// returns the updated record. Any failure yields ErrInvalidCredentials so
// callers cannot tell which credential was wrong.
func (r *UserRepo) Validate(username, password string) (model.User, error) {
    r.mu.Lock()
    defer r.mu.Unlock()
    for id, u := range r.users {
        if u.Username != username {
            continue
        }
        if !utils.VerifyPassword(u.PasswordHash, password) {
            return model.User{}, ErrInvalidCredentials
        }
        now := time.Now().UTC()
        u.LastLogin = &now
        r.users[id] = u
        return u, nil
    }
    return model.User{}, ErrInvalidCredentials
}
