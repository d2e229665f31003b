package handler

import (
    "encoding/json"
    "net/http"
    "testing"

    "github.com/stretchr/testify/assert"
    "github.com/stretchr/testify/require"
    "golang.org/x/crypto/bcrypt"

    "github.com/iliyamo/game-store-inventory/internal/config"
    "github.com/iliyamo/game-store-inventory/internal/repository"
)

func authHandler(t *testing.T) *AuthHandler {
    t.Helper()
    cfg := config.Config{JWTSecret: "test-secret", AccessTTLMin: 60, BcryptCost: bcrypt.MinCost}
    users := repository.NewUserRepo()
    _, err := users.Create("Admin User", "admin", "admin123", "admin@gamestore.com", "", bcrypt.MinCost)
    require.NoError(t, err)
    return NewAuthHandler(cfg, users)
}

func TestLoginSuccess(t *testing.T) {
    h := authHandler(t)

    c, rec := newCtx(t, http.MethodPost, "/api/login", `{"username":"admin","password":"admin123"}`)
    require.NoError(t, h.Login(c))
    require.Equal(t, http.StatusOK, rec.Code)

    var resp loginResp
    require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
    assert.NotEmpty(t, resp.Token)
    assert.Equal(t, "admin", resp.User.Username)
    assert.Equal(t, "admin", resp.User.Role)
    assert.NotNil(t, resp.User.LastLogin)
}

func TestLoginFailureIsGeneric(t *testing.T) {
    h := authHandler(t)

    // Wrong password and unknown username produce the same response.
    for _, body := range []string{
        `{"username":"admin","password":"wrong-password"}`,
        `{"username":"ghost","password":"admin123"}`,
    } {
        c, rec := newCtx(t, http.MethodPost, "/api/login", body)
        require.NoError(t, h.Login(c))
        assert.Equal(t, http.StatusUnauthorized, rec.Code)
        assert.Contains(t, rec.Body.String(), "Invalid username or password")
    }
}

func TestLoginMissingFields(t *testing.T) {
    h := authHandler(t)

    c, rec := newCtx(t, http.MethodPost, "/api/login", `{"username":"","password":""}`)
    require.NoError(t, h.Login(c))
    assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestAuthCheckWithoutToken(t *testing.T) {
    h := authHandler(t)

    c, rec := newCtx(t, http.MethodGet, "/api/auth-check", "")
    require.NoError(t, h.AuthCheck(c))
    require.Equal(t, http.StatusOK, rec.Code)
    assert.Contains(t, rec.Body.String(), `"authenticated":false`)
}

func TestAuthCheckWithToken(t *testing.T) {
    h := authHandler(t)

    c, rec := newCtx(t, http.MethodPost, "/api/login", `{"username":"admin","password":"admin123"}`)
    require.NoError(t, h.Login(c))
    var resp loginResp
    require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))

    c, rec = newCtx(t, http.MethodGet, "/api/auth-check", "")
    c.Request().Header.Set("Authorization", "Bearer "+resp.Token)
    require.NoError(t, h.AuthCheck(c))
    require.Equal(t, http.StatusOK, rec.Code)
    assert.Contains(t, rec.Body.String(), `"authenticated":true`)
    assert.Contains(t, rec.Body.String(), `"role":"admin"`)
}
