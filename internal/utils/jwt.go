package utils // helpers for issuing the access tokens used by the admin API

import (
    "time"

    "github.com/golang-jwt/jwt/v5"
)

// AccessToken bundles a signed JWT with its expiry so handlers can return
// both to the client in one response.
type AccessToken struct {
    Token string    // serialized JWT
    Exp   time.Time // UTC expiration time
}

// NewAccessToken signs an HS256 JWT for a staff user. Claims follow the
// usual shape: sub is the user id, role the user's role, plus exp and iat.
func NewAccessToken(secret string, userID uint64, role string, ttlMin int) (AccessToken, error) {
    now := time.Now().UTC()
    exp := now.Add(time.Duration(ttlMin) * time.Minute)
    claims := jwt.MapClaims{
        "sub":  userID,
        "role": role,
        "exp":  exp.Unix(),
        "iat":  now.Unix(),
    }
    t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
    signed, err := t.SignedString([]byte(secret))
    if err != nil {
        return AccessToken{}, err
    }
    return AccessToken{Token: signed, Exp: exp}, nil
}
