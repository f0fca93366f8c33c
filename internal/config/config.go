package config // package config loads application configuration from environment variables

import (
    "log"     // log is used to report configuration errors and halt execution
    "os"      // os provides access to environment variables
    "strconv" // strconv converts strings to other types
)

// Config holds all runtime configuration values.  Each field corresponds to
// an environment variable.  Redis is the primary store, so its settings are
// handled separately by NewRedisClient; everything here is the HTTP surface
// and the admin account.
type Config struct {
    Env           string // application environment (e.g. "dev", "prod")
    Port          string // HTTP port to listen on
    JWTSecret     string // secret used to sign admin access tokens
    AccessTTLMin  int    // access token time-to-live in minutes
    AdminEmail    string // e-mail address of the single administrative account
    AdminPassHash string // bcrypt hash of the admin password
    NotifyEnabled bool   // publish intake events to the broker when true
}

// Load reads configuration values from environment variables and returns a
// Config.  Required variables are enforced by must() and missing values
// cause the program to exit with a fatal log message.
func Load() Config {
    return Config{
        Env:           must("APP_ENV"),                 // environment (dev/test/prod)
        Port:          must("APP_PORT"),                // port to bind the HTTP server
        JWTSecret:     must("JWT_SECRET"),              // secret used for signing JWTs
        AccessTTLMin:  mustInt("ACCESS_TOKEN_TTL_MIN"), // TTL for access tokens in minutes
        AdminEmail:    must("ADMIN_EMAIL"),             // admin login e-mail
        AdminPassHash: must("ADMIN_PASSWORD_HASH"),     // bcrypt hash of the admin password
        NotifyEnabled: envBool("NOTIFY_ENABLED", true), // broker notifications on by default
    }
}

// must retrieves the value of a required environment variable.  If the
// variable is unset or empty, the application logs a fatal error and exits.
func must(key string) string {
    v, ok := os.LookupEnv(key)
    if !ok || v == "" {
        log.Fatalf("missing required env var: %s", key)
    }
    return v
}

// mustInt is like must() but converts the retrieved string into an integer.
// If conversion fails, the application logs a fatal error and exits.
func mustInt(key string) int {
    s := must(key)
    n, err := strconv.Atoi(s)
    if err != nil {
        log.Fatalf("invalid int for %s: %q", key, s)
    }
    return n
}
