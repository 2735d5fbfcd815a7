package auth

// cookie.go centralizes construction of the two session cookies so handlers
// cannot drift apart on attributes.  Both cookies are http-only.  The
// refresh cookie is additionally restricted to the /auth/refresh path, so
// the long-lived credential is only ever transmitted when the client asks
// for a new access token.

import (
    "net/http"
    "time"
)

const (
    AccessCookieName  = "accessToken"  // cookie carrying the short-lived access token
    RefreshCookieName = "refreshToken" // cookie carrying the long-lived refresh token
    RefreshPath       = "/auth/refresh"
)

// AccessCookie wraps a signed access token for the browser.  In production
// the cookie is Secure with SameSite=None (the SPA is served from another
// origin); everywhere else SameSite=Strict keeps local development honest.
func AccessCookie(token string, ttlMin int, prod bool) *http.Cookie {
    c := baseCookie(AccessCookieName, token, "/", prod)
    c.MaxAge = int((time.Duration(ttlMin) * time.Minute).Seconds())
    return c
}

// RefreshCookie wraps a signed refresh token, path-scoped to the refresh
// endpoint.
func RefreshCookie(token string, ttlDays int, prod bool) *http.Cookie {
    c := baseCookie(RefreshCookieName, token, RefreshPath, prod)
    c.MaxAge = int((time.Duration(ttlDays) * 24 * time.Hour).Seconds())
    return c
}

// ClearAccessCookie returns an expired accessToken cookie.
func ClearAccessCookie(prod bool) *http.Cookie {
    c := baseCookie(AccessCookieName, "", "/", prod)
    c.MaxAge = -1
    return c
}

// ClearRefreshCookie returns an expired refreshToken cookie.  The path must
// match RefreshCookie or the browser treats it as a different cookie and
// keeps the original.
func ClearRefreshCookie(prod bool) *http.Cookie {
    c := baseCookie(RefreshCookieName, "", RefreshPath, prod)
    c.MaxAge = -1
    return c
}

func baseCookie(name, value, path string, prod bool) *http.Cookie {
    sameSite := http.SameSiteStrictMode
    if prod {
        // SameSite=None requires Secure; browsers drop the cookie otherwise.
        sameSite = http.SameSiteNoneMode
    }
    return &http.Cookie{
        Name:     name,
        Value:    value,
        Path:     path,
        HttpOnly: true,
        Secure:   prod,
        SameSite: sameSite,
    }
}
