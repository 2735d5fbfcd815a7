package config // package config loads application configuration from environment variables

import (
    "log"     // log is used to report configuration errors and halt execution
    "os"      // os provides access to environment variables
    "strconv" // strconv converts strings to other types
)

// Config holds all runtime configuration values.  Each field corresponds to
// an environment variable.  Token secrets are kept separate on purpose: the
// access secret never signs refresh tokens and vice versa, so a leaked
// access secret cannot mint long-lived credentials.
type Config struct {
    Env            string // application environment (e.g. "dev", "prod")
    Port           string // HTTP port to listen on
    DBUser         string // database username
    DBPass         string // database password (optional)
    DBHost         string // database host address
    DBPort         string // database port number
    DBName         string // database name
    AccessSecret   string // secret used to sign access tokens
    RefreshSecret  string // secret used to sign refresh tokens
    CORSOrigin     string // origin accepted by the CORS layer
    AccessTTLMin   int    // access token time-to-live in minutes
    RefreshTTLDays int    // refresh token time-to-live in days
}

// Load reads configuration values from environment variables and returns a
// Config.  Required variables are enforced by must() and missing values
// cause the program to exit with a fatal log message.  The port and the two
// token lifetimes have defaults matching the web client's expectations
// (15 minute access tokens, 7 day refresh tokens).
func Load() Config {
    return Config{
        Env:            must("APP_ENV"),              // environment (dev/test/prod)
        Port:           optional("APP_PORT", "8081"), // port to bind the HTTP server
        DBUser:         must("DB_USER"),              // database user
        DBPass:         os.Getenv("DB_PASS"),         // database password (empty allowed)
        DBHost:         must("DB_HOST"),              // database host
        DBPort:         must("DB_PORT"),              // database port
        DBName:         must("DB_NAME"),              // database name
        AccessSecret:   must("ACCESS_TOKEN_SECRET"),  // signing secret for access tokens
        RefreshSecret:  must("REFRESH_TOKEN_SECRET"), // signing secret for refresh tokens
        CORSOrigin:     must("CORS_ORIGIN"),          // allowed browser origin
        AccessTTLMin:   optionalInt("ACCESS_TOKEN_TTL_MIN", 15),  // TTL for access tokens in minutes
        RefreshTTLDays: optionalInt("REFRESH_TOKEN_TTL_DAYS", 7), // TTL for refresh tokens in days
    }
}

// Prod reports whether the application runs in a production environment.
// Cookie attributes (Secure, SameSite) depend on this.
func (c Config) Prod() bool {
    return c.Env == "prod" || c.Env == "production"
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

// optional retrieves an environment variable or falls back to def.
func optional(key, def string) string {
    if v := os.Getenv(key); v != "" {
        return v
    }
    return def
}

// optionalInt is like optional() but converts the value into an integer.
// An unparsable value is a configuration mistake and aborts startup.
func optionalInt(key string, def int) int {
    s := os.Getenv(key)
    if s == "" {
        return def
    }
    n, err := strconv.Atoi(s)
    if err != nil {
        log.Fatalf("invalid int for %s: %q", key, s)
    }
    return n
}
