package router // package router defines how HTTP routes are registered for the API

import (
    "github.com/labstack/echo/v4" // import the Echo web framework to handle routing

    "github.com/iliyamo/notes-api/internal/handler" // import the handlers that implement business logic
)

// RegisterRoutes registers routes that do not require authentication on
// the provided Echo instance.  Currently it exposes only a health check.
func RegisterRoutes(e *echo.Echo) {
    // Load balancers and monitoring systems use this to verify the
    // service is up.
    e.GET("/healthz", handler.Health)
}

// RegisterAuth registers the account endpoints under /auth.  None of them
// sit behind the session middleware: sign-up and sign-in create sessions,
// sign-out only clears cookies, and refresh authenticates with the
// refresh-token cookie instead of an access token.  The token bucket
// limiter wraps the whole group since these are the endpoints worth
// hammering with stolen credential lists.
func RegisterAuth(e *echo.Echo, a *handler.AuthHandler, limiter echo.MiddlewareFunc) {
    g := e.Group("/auth", limiter)
    g.POST("/sign-up", a.SignUp)
    g.POST("/sign-in", a.SignIn)
    g.POST("/sign-out", a.SignOut)
    // The refresh-token cookie is path-scoped to exactly this route.
    g.POST("/refresh", a.Refresh)
}

// RegisterNotes registers the /note endpoints.  The session middleware
// runs before every handler so repositories always receive a verified
// user id; the response cache additionally wraps the snippet listing.
func RegisterNotes(e *echo.Echo, h *handler.NoteHandler, session, cache echo.MiddlewareFunc) {
    g := e.Group("/note", session)
    g.GET("/snippets", h.Snippets, cache)
    g.GET("/:noteId", h.Get)
    g.POST("/create", h.Create)
    g.PUT("/update", h.Update)
    g.PUT("/:noteId/toggle-pin", h.TogglePin)
    g.DELETE("/:noteId", h.Delete)
}

// RegisterCategories registers the /category endpoints, mirroring the
// note group.
func RegisterCategories(e *echo.Echo, h *handler.CategoryHandler, session, cache echo.MiddlewareFunc) {
    g := e.Group("/category", session)
    g.GET("/snippets", h.Snippets, cache)
    g.GET("/:categoryId", h.Get)
    g.GET("/snippet/:categoryId", h.GetSnippet)
    g.GET("/notes/:categoryId", h.CategoryNotes)
    g.POST("/create", h.Create)
    g.PUT("/update", h.Update)
    g.DELETE("/:categoryId", h.Delete)
}
