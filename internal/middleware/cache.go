package middleware

import (
    "bytes"
    "context"
    "crypto/sha1"
    "fmt"
    "net/http"
    "strconv"
    "time"

    "github.com/labstack/echo/v4"
    "github.com/redis/go-redis/v9"

    "github.com/iliyamo/notes-api/internal/config"
)

// captureWriter tees the response body into a buffer (up to limit bytes)
// while forwarding to the client, so a successful response can be stored
// after the handler ran.
type captureWriter struct {
    http.ResponseWriter
    status int
    buf    bytes.Buffer
    size   int64
    limit  int64
}

func (cw *captureWriter) WriteHeader(code int) {
    cw.status = code
    cw.ResponseWriter.WriteHeader(code)
}

func (cw *captureWriter) Write(b []byte) (int, error) {
    if remain := cw.limit - cw.size; remain > 0 {
        if int64(len(b)) <= remain {
            cw.buf.Write(b)
        } else {
            cw.buf.Write(b[:remain])
        }
    }
    cw.size += int64(len(b))
    return cw.ResponseWriter.Write(b)
}

// cacheKey derives the Redis key for a request.  The authenticated user id
// is always part of the key: every cached route returns user-scoped data,
// so a key built from route and query alone would serve one user's notes
// to another.
func cacheKey(prefix string, c echo.Context) string {
    uid := "anon"
    if v, err := userIDFrom(c); err == nil {
        uid = strconv.FormatUint(v, 10)
    }
    r := c.Request()
    sum := sha1.Sum([]byte(c.Path() + ":" + r.URL.RawQuery + ":" + uid))
    return fmt.Sprintf("%s:%x", prefix, sum[:])
}

// NewRedisCache returns a middleware caching successful GET responses in
// Redis.  Only the JSON body of 200 responses is stored; anything else
// (errors, other methods) passes straight through.  When Redis is absent or
// caching is disabled the middleware is a no-op, so the API works without
// Redis at reduced read performance.
func NewRedisCache(cfg config.CacheConfig, rdb *redis.Client) echo.MiddlewareFunc {
    if !cfg.Enabled || rdb == nil {
        return func(next echo.HandlerFunc) echo.HandlerFunc {
            return func(c echo.Context) error { return next(c) }
        }
    }
    ttl := cfg.TTL
    if ttl <= 0 {
        ttl = 30 * time.Second
    }
    maxBody := int64(cfg.MaxBodyBytes)
    if maxBody <= 0 {
        maxBody = 1 << 20
    }

    return func(next echo.HandlerFunc) echo.HandlerFunc {
        return func(c echo.Context) error {
            if c.Request().Method != http.MethodGet {
                return next(c)
            }

            key := cacheKey(cfg.Prefix, c)
            if body, err := rdb.Get(c.Request().Context(), key).Bytes(); err == nil {
                c.Response().Header().Set("X-Cache", "HIT")
                return c.Blob(http.StatusOK, echo.MIMEApplicationJSONCharsetUTF8, body)
            }

            cw := &captureWriter{ResponseWriter: c.Response().Writer, status: http.StatusOK, limit: maxBody}
            c.Response().Writer = cw
            c.Response().Header().Set("X-Cache", "MISS")

            if err := next(c); err != nil {
                return err
            }

            // Responses larger than the cap are passed through uncached
            // rather than stored truncated.
            if cw.status == http.StatusOK && cw.size <= maxBody {
                _ = rdb.SetEx(context.Background(), key, cw.buf.Bytes(), ttl).Err()
            }
            return nil
        }
    }
}
