package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iliyamo/notes-api/internal/config"
)

// Without Redis both optional middlewares must be transparent: the API has
// to keep serving when the cache tier is down.

func TestRedisCache_NoClientPassesThrough(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/note/snippets", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	mw := NewRedisCache(config.CacheConfig{Enabled: true}, nil)
	called := false
	err := mw(func(c echo.Context) error {
		called = true
		return c.JSON(http.StatusOK, []string{})
	})(c)

	require.NoError(t, err)
	assert.True(t, called)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, rec.Header().Get("X-Cache"))
}

func TestRedisCache_DisabledPassesThrough(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/note/snippets", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	mw := NewRedisCache(config.CacheConfig{Enabled: false}, nil)
	called := false
	err := mw(func(c echo.Context) error {
		called = true
		return c.NoContent(http.StatusOK)
	})(c)

	require.NoError(t, err)
	assert.True(t, called)
}

func TestTokenBucket_NoClientPassesThrough(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/auth/sign-in", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	mw := NewTokenBucket(config.RateLimitConfig{Enabled: true, Capacity: 1}, nil)
	called := false
	err := mw(func(c echo.Context) error {
		called = true
		return c.NoContent(http.StatusOK)
	})(c)

	require.NoError(t, err)
	assert.True(t, called)
	assert.Empty(t, rec.Header().Get("X-RateLimit-Limit"))
}
