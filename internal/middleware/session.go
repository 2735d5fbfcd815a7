package middleware // middleware provides reusable HTTP middleware functions

import (
    "net/http" // HTTP status codes for responses

    "github.com/labstack/echo/v4" // Echo framework used for defining middleware and handlers

    "github.com/iliyamo/notes-api/internal/auth" // token verification
)

// Session returns an Echo middleware that authenticates a request from the
// "accessToken" cookie and injects the verified user id into the request
// context under the key "user_id".  Every note and category route is
// wrapped by this middleware, so the per-query owner filter in the
// repositories is always populated from a verified token and never from
// client-supplied input.
//
// A missing cookie means the caller never authenticated and yields 401; a
// cookie that fails verification (forged, malformed or expired) yields 403.
// The two cases are kept distinct so the client knows whether to redirect
// to login or to try the refresh endpoint first.
func Session(secret string) echo.MiddlewareFunc {
    return func(next echo.HandlerFunc) echo.HandlerFunc {
        return func(c echo.Context) error {
            cookie, err := c.Cookie(auth.AccessCookieName)
            if err != nil || cookie.Value == "" {
                return c.JSON(http.StatusUnauthorized, echo.Map{"message": "Authentication required"})
            }
            userID, err := auth.ParseUserID(cookie.Value, secret)
            if err != nil {
                return c.JSON(http.StatusForbidden, echo.Map{"message": "Invalid or expired access token"})
            }
            c.Set("user_id", userID)
            return next(c)
        }
    }
}
