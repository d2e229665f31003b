package config // package config loads application configuration from environment variables

import (
    "log"
    "os"
    "strconv"
    "time"
)

// Config holds all runtime configuration values. Each field corresponds
// to an environment variable. Required variables are enforced by must();
// the rest fall back to sensible defaults so a bare `go run` works.
type Config struct {
    Env           string // application environment (e.g. "dev", "prod")
    Port          string // HTTP port to listen on
    JWTSecret     string // secret used to sign access tokens
    AccessTTLMin  int    // access token time-to-live in minutes
    BcryptCost    int    // bcrypt cost for password hashing
    SeedFile      string // path to the sales dataset used as seed source
    AdminUser     string // username of the seeded admin account
    AdminPassword string // password of the seeded admin account
    AdminEmail    string // email of the seeded admin account
    AdminName     string // full name of the seeded admin account
}

// Load reads configuration from the environment. Missing required
// variables cause the process to exit with a fatal log message.
func Load() Config {
    return Config{
        Env:           getenv("APP_ENV", "dev"),
        Port:          getenv("APP_PORT", "8080"),
        JWTSecret:     must("JWT_SECRET"),
        AccessTTLMin:  envInt("ACCESS_TOKEN_TTL_MIN", 60),
        BcryptCost:    envInt("BCRYPT_COST", 10),
        SeedFile:      getenv("SEED_FILE", "vgsales.csv"),
        AdminUser:     getenv("ADMIN_USERNAME", "admin"),
        AdminPassword: getenv("ADMIN_PASSWORD", "admin123"),
        AdminEmail:    getenv("ADMIN_EMAIL", "admin@gamestore.com"),
        AdminName:     getenv("ADMIN_FULL_NAME", "Admin User"),
    }
}

// must retrieves a required environment variable or exits the process.
func must(key string) string {
    v, ok := os.LookupEnv(key)
    if !ok || v == "" {
        log.Fatalf("missing required env var: %s", key)
    }
    return v
}

// Shared helpers for the optional variables used across config files.

func getenv(key, def string) string {
    if v := os.Getenv(key); v != "" {
        return v
    }
    return def
}

func envInt(key string, def int) int {
    v := os.Getenv(key)
    if v == "" {
        return def
    }
    if n, err := strconv.Atoi(v); err == nil {
        return n
    }
    return def
}

func envBool(key string, def bool) bool {
    v := os.Getenv(key)
    if v == "" {
        return def
    }
    switch v {
    case "1", "true", "TRUE", "True", "yes", "YES", "on", "ON":
        return true
    case "0", "false", "FALSE", "False", "no", "NO", "off", "OFF":
        return false
    }
    return def
}

func envDur(key string, def time.Duration) time.Duration {
    v := os.Getenv(key)
    if v == "" {
        return def
    }
    if d, err := time.ParseDuration(v); err == nil {
        return d
    }
    return def
}
