package handler

import (
    "errors"
    "net/http"
    "strings"
    "time"

    "github.com/golang-jwt/jwt/v5"
    "github.com/labstack/echo/v4"

    "github.com/iliyamo/game-store-inventory/internal/config"
    "github.com/iliyamo/game-store-inventory/internal/repository"
    "github.com/iliyamo/game-store-inventory/internal/utils"
)

// AuthHandler bundles dependencies for auth endpoints.
type AuthHandler struct {
    Cfg   config.Config
    Users *repository.UserRepo
}

func NewAuthHandler(cfg config.Config, u *repository.UserRepo) *AuthHandler {
    return &AuthHandler{Cfg: cfg, Users: u}
}

// ----- DTOs -----

type loginReq struct {
    Username string `json:"username"`
    Password string `json:"password"`
}

type userPart struct {
    ID        uint64     `json:"id"`
    Username  string     `json:"username"`
    Email     string     `json:"email"`
    Role      string     `json:"role"`
    LastLogin *time.Time `json:"lastLogin,omitempty"`
}

type loginResp struct {
    User    userPart  `json:"user"`
    Token   string    `json:"token"`
    Expires time.Time `json:"expires"`
}

// Login validates the credentials against the user store and returns an
// access token. A failed login never reveals which credential was wrong.
func (h *AuthHandler) Login(c echo.Context) error {
    var req loginReq
    if err := c.Bind(&req); err != nil {
        return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid body"})
    }
    req.Username = strings.TrimSpace(req.Username)
    if req.Username == "" || req.Password == "" {
        return c.JSON(http.StatusBadRequest, echo.Map{"errors": map[string]string{
            "username": "Username is required",
            "password": "Password is required",
        }})
    }

    u, err := h.Users.Validate(req.Username, req.Password)
    if err != nil {
        if errors.Is(err, repository.ErrInvalidCredentials) {
            return c.JSON(http.StatusUnauthorized, echo.Map{"message": "Invalid username or password"})
        }
        return c.JSON(http.StatusInternalServerError, echo.Map{"message": "Server error during login"})
    }

    access, err := utils.NewAccessToken(h.Cfg.JWTSecret, u.ID, u.Role, h.Cfg.AccessTTLMin)
    if err != nil {
        return c.JSON(http.StatusInternalServerError, echo.Map{"message": "issue token failed"})
    }

    return c.JSON(http.StatusOK, loginResp{
        User:    userPart{ID: u.ID, Username: u.Username, Email: u.Email, Role: u.Role, LastLogin: u.LastLogin},
        Token:   access.Token,
        Expires: access.Exp,
    })
}

// Logout exists for client symmetry. Access tokens are stateless, so the
// server has nothing to invalidate; clients discard the token.
func (h *AuthHandler) Logout(c echo.Context) error {
    return c.JSON(http.StatusOK, echo.Map{"message": "Logged out successfully"})
}

// AuthCheck reports whether the request carries a valid token. Unlike
// the protected routes it always answers 200 so clients can probe their
// session state without triggering an error path.
func (h *AuthHandler) AuthCheck(c echo.Context) error {
    auth := c.Request().Header.Get("Authorization")
    if !strings.HasPrefix(auth, "Bearer ") {
        return c.JSON(http.StatusOK, echo.Map{"authenticated": false})
    }
    tok, err := jwt.Parse(strings.TrimPrefix(auth, "Bearer "), func(t *jwt.Token) (interface{}, error) {
        if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
            return nil, echo.ErrUnauthorized
        }
        return []byte(h.Cfg.JWTSecret), nil
    })
    if err != nil || !tok.Valid {
        return c.JSON(http.StatusOK, echo.Map{"authenticated": false})
    }
    role := ""
    if claims, ok := tok.Claims.(jwt.MapClaims); ok {
        role, _ = claims["role"].(string)
    }
    return c.JSON(http.StatusOK, echo.Map{"authenticated": true, "role": role})
}

// Me returns the authenticated user's record.
func (h *AuthHandler) Me(c echo.Context) error {
    id, ok := c.Get("user_id").(uint64)
    if !ok {
        return c.JSON(http.StatusUnauthorized, echo.Map{"message": "unauthorized"})
    }
    u, err := h.Users.GetByID(id)
    if err != nil {
        return c.JSON(http.StatusNotFound, echo.Map{"message": "user not found"})
    }
    return c.JSON(http.StatusOK, userPart{ID: u.ID, Username: u.Username, Email: u.Email, Role: u.Role, LastLogin: u.LastLogin})
}
