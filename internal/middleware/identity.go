package middleware

// identity.go holds the one helper shared across middleware files: reading
// the verified user id that Session() stored on the context.

import (
    "errors"

    "github.com/labstack/echo/v4"
)

var errNoIdentity = errors.New("no authenticated user in context")

// userIDFrom returns the user id bound by the Session middleware, or an
// error when the request is unauthenticated.
func userIDFrom(c echo.Context) (uint64, error) {
    if v, ok := c.Get("user_id").(uint64); ok {
        return v, nil
    }
    return 0, errNoIdentity
}
