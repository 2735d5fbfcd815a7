package handler

import (
    "context"  // provides context with cancellation for DB calls
    "net/http" // HTTP status codes and primitives
    "time"     // timeouts for DB calls

    "github.com/labstack/echo/v4" // Echo framework for HTTP routing

    "github.com/iliyamo/notes-api/internal/auth"       // token issuing and cookies
    "github.com/iliyamo/notes-api/internal/config"     // app configuration
    "github.com/iliyamo/notes-api/internal/repository" // DB repositories
)

// AuthHandler bundles dependencies for the auth endpoints.
type AuthHandler struct {
    Cfg   config.Config
    Users *repository.UserRepo
}

func NewAuthHandler(cfg config.Config, u *repository.UserRepo) *AuthHandler {
    return &AuthHandler{Cfg: cfg, Users: u}
}

// ----- DTOs -----

type credentialsReq struct {
    Email    string `json:"email"`
    Password string `json:"password"`
}

// SignUp: create an account when the email is free.  No tokens are issued
// here; the client signs in afterwards.
func (h *AuthHandler) SignUp(c echo.Context) error {
    var req credentialsReq
    if err := c.Bind(&req); err != nil {
        return c.JSON(http.StatusBadRequest, echo.Map{"message": "Invalid email or password format"})
    }
    if !validCredentials(req.Email, req.Password) {
        return c.JSON(http.StatusBadRequest, echo.Map{"message": "Invalid email or password format"})
    }

    ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
    defer cancel()

    existing, err := h.Users.FindByEmail(ctx, req.Email)
    if err != nil {
        return c.JSON(http.StatusInternalServerError, echo.Map{"message": "Server couldn't register the account"})
    }
    if len(existing) > 0 {
        return c.JSON(http.StatusBadRequest, echo.Map{"message": "User with this email already exists"})
    }
    if _, err := h.Users.Create(ctx, req.Email, req.Password); err != nil {
        return c.JSON(http.StatusInternalServerError, echo.Map{"message": "Server couldn't register the account"})
    }
    return c.JSON(http.StatusOK, echo.Map{"message": "Account registered successfully"})
}

// SignIn: verify credentials and start a session by setting both token
// cookies.  The stored password is compared by plain equality; a lookup
// failure and a wrong password produce the same 401 so the endpoint does
// not reveal which emails have accounts.
func (h *AuthHandler) SignIn(c echo.Context) error {
    var req credentialsReq
    if err := c.Bind(&req); err != nil {
        return c.JSON(http.StatusBadRequest, echo.Map{"message": "Invalid email or password format"})
    }
    if !validCredentials(req.Email, req.Password) {
        return c.JSON(http.StatusBadRequest, echo.Map{"message": "Invalid email or password format"})
    }

    ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
    defer cancel()

    u, err := h.Users.GetByEmail(ctx, req.Email)
    if err != nil || u.Email != req.Email || u.Password != req.Password {
        return c.JSON(http.StatusUnauthorized, echo.Map{"message": "Invalid credentials"})
    }

    access, err := auth.NewAccessToken(h.Cfg.AccessSecret, u.ID, h.Cfg.AccessTTLMin)
    if err != nil {
        return c.JSON(http.StatusInternalServerError, echo.Map{"message": "Server couldn't create the session"})
    }
    refresh, err := auth.NewRefreshToken(h.Cfg.RefreshSecret, u.ID, h.Cfg.RefreshTTLDays)
    if err != nil {
        return c.JSON(http.StatusInternalServerError, echo.Map{"message": "Server couldn't create the session"})
    }

    c.SetCookie(auth.AccessCookie(access, h.Cfg.AccessTTLMin, h.Cfg.Prod()))
    c.SetCookie(auth.RefreshCookie(refresh, h.Cfg.RefreshTTLDays, h.Cfg.Prod()))
    return c.JSON(http.StatusOK, echo.Map{"message": "Login successful"})
}

// SignOut clears both cookies unconditionally.  There is no server-side
// invalidation: a token captured before sign-out stays cryptographically
// valid until its natural expiry.
func (h *AuthHandler) SignOut(c echo.Context) error {
    c.SetCookie(auth.ClearAccessCookie(h.Cfg.Prod()))
    c.SetCookie(auth.ClearRefreshCookie(h.Cfg.Prod()))
    return c.JSON(http.StatusOK, echo.Map{"message": "Logged out successfully"})
}

// Refresh mints a new access token from a valid refresh cookie.  The
// refresh token itself is never rotated; the same one keeps working until
// its original expiry.  On a bad token the cookie is cleared so the client
// stops retrying with it.
func (h *AuthHandler) Refresh(c echo.Context) error {
    cookie, err := c.Cookie(auth.RefreshCookieName)
    if err != nil || cookie.Value == "" {
        return c.JSON(http.StatusUnauthorized, echo.Map{"message": "Refresh token required"})
    }

    userID, err := auth.ParseUserID(cookie.Value, h.Cfg.RefreshSecret)
    if err != nil {
        c.SetCookie(auth.ClearRefreshCookie(h.Cfg.Prod()))
        return c.JSON(http.StatusUnauthorized, echo.Map{"message": "Invalid refresh token"})
    }

    access, err := auth.NewAccessToken(h.Cfg.AccessSecret, userID, h.Cfg.AccessTTLMin)
    if err != nil {
        return c.JSON(http.StatusInternalServerError, echo.Map{"message": "Server couldn't create the session"})
    }
    c.SetCookie(auth.AccessCookie(access, h.Cfg.AccessTTLMin, h.Cfg.Prod()))
    return c.JSON(http.StatusOK, echo.Map{"message": "Token refreshed successfully"})
}
