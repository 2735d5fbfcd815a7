package handler

import (
    "net/http"

    "github.com/labstack/echo/v4"

    "github.com/iliyamo/notes-api/internal/repository"
)

// CategoryHandler implements the /category endpoints.  It also needs the
// note repository for /category/notes/:categoryId, which lists the notes
// filed under a category.
type CategoryHandler struct {
    Categories *repository.CategoryRepo
    Notes      *repository.NoteRepo
}

func NewCategoryHandler(cat *repository.CategoryRepo, n *repository.NoteRepo) *CategoryHandler {
    if cat == nil || n == nil {
        panic("nil repository passed to NewCategoryHandler")
    }
    return &CategoryHandler{Categories: cat, Notes: n}
}

type createCategoryReq struct {
    Name            string `json:"name"`
    BackgroundColor string `json:"backgroundColor"`
    NameColor       string `json:"nameColor"`
}

// Snippets handles GET /category/snippets.
func (h *CategoryHandler) Snippets(c echo.Context) error {
    userID, err := getUserID(c)
    if err != nil {
        return c.JSON(http.StatusUnauthorized, echo.Map{"message": "Authentication required"})
    }
    snippets, err := h.Categories.ListSnippets(c.Request().Context(), userID)
    if err != nil {
        return c.JSON(http.StatusInternalServerError, echo.Map{"message": "Server couldn't retrieve the requested data"})
    }
    return c.JSON(http.StatusOK, snippets)
}

// Get handles GET /category/:categoryId.
func (h *CategoryHandler) Get(c echo.Context) error {
    userID, err := getUserID(c)
    if err != nil {
        return c.JSON(http.StatusUnauthorized, echo.Map{"message": "Authentication required"})
    }
    id, err := pathID(c, "categoryId")
    if err != nil {
        return c.JSON(http.StatusBadRequest, echo.Map{"message": "Invalid category id"})
    }
    cat, err := h.Categories.GetByID(c.Request().Context(), id, userID)
    if err != nil {
        return c.JSON(http.StatusInternalServerError, echo.Map{"message": "Server couldn't retrieve the requested data"})
    }
    return c.JSON(http.StatusOK, cat)
}

// GetSnippet handles GET /category/snippet/:categoryId and returns the
// reduced projection of a single category.
func (h *CategoryHandler) GetSnippet(c echo.Context) error {
    userID, err := getUserID(c)
    if err != nil {
        return c.JSON(http.StatusUnauthorized, echo.Map{"message": "Authentication required"})
    }
    id, err := pathID(c, "categoryId")
    if err != nil {
        return c.JSON(http.StatusBadRequest, echo.Map{"message": "Invalid category id"})
    }
    snippet, err := h.Categories.GetSnippetByID(c.Request().Context(), id, userID)
    if err != nil {
        return c.JSON(http.StatusInternalServerError, echo.Map{"message": "Server couldn't retrieve the requested data"})
    }
    return c.JSON(http.StatusOK, snippet)
}

// CategoryNotes handles GET /category/notes/:categoryId and lists the
// caller's notes filed under the category.
func (h *CategoryHandler) CategoryNotes(c echo.Context) error {
    userID, err := getUserID(c)
    if err != nil {
        return c.JSON(http.StatusUnauthorized, echo.Map{"message": "Authentication required"})
    }
    id, err := pathID(c, "categoryId")
    if err != nil {
        return c.JSON(http.StatusBadRequest, echo.Map{"message": "Invalid category id"})
    }
    notes, err := h.Notes.ListByCategory(c.Request().Context(), id, userID)
    if err != nil {
        return c.JSON(http.StatusInternalServerError, echo.Map{"message": "Server couldn't retrieve the requested data"})
    }
    return c.JSON(http.StatusOK, notes)
}

// Create handles POST /category/create.
func (h *CategoryHandler) Create(c echo.Context) error {
    userID, err := getUserID(c)
    if err != nil {
        return c.JSON(http.StatusUnauthorized, echo.Map{"message": "Authentication required"})
    }
    var req createCategoryReq
    if err := c.Bind(&req); err != nil {
        return c.JSON(http.StatusBadRequest, echo.Map{"message": "At least one field has invalid format"})
    }
    if req.Name == "" {
        return c.JSON(http.StatusBadRequest, echo.Map{"message": "At least one field has invalid format"})
    }
    cat := repository.Category{
        Name:            req.Name,
        BackgroundColor: req.BackgroundColor,
        NameColor:       req.NameColor,
        UserID:          userID,
    }
    if err := h.Categories.Create(c.Request().Context(), &cat); err != nil {
        return c.JSON(http.StatusInternalServerError, echo.Map{"message": "Server couldn't save the new category"})
    }
    return c.JSON(http.StatusOK, echo.Map{"category": cat, "message": "Category created successfully"})
}

// Update handles PUT /category/update.  Same contract as note update: the
// body carries the id, the write is filtered by id+userId.
func (h *CategoryHandler) Update(c echo.Context) error {
    userID, err := getUserID(c)
    if err != nil {
        return c.JSON(http.StatusUnauthorized, echo.Map{"message": "Authentication required"})
    }
    var cat repository.Category
    if err := c.Bind(&cat); err != nil {
        return c.JSON(http.StatusBadRequest, echo.Map{"message": "At least one field has invalid format"})
    }
    if cat.Name == "" {
        return c.JSON(http.StatusBadRequest, echo.Map{"message": "At least one field has invalid format"})
    }
    updated, err := h.Categories.Update(c.Request().Context(), cat, userID)
    if err != nil {
        return c.JSON(http.StatusInternalServerError, echo.Map{"message": "Server couldn't update the specified category"})
    }
    return c.JSON(http.StatusOK, echo.Map{"category": updated, "message": "Category updated successfully"})
}

// Delete handles DELETE /category/:categoryId.
func (h *CategoryHandler) Delete(c echo.Context) error {
    userID, err := getUserID(c)
    if err != nil {
        return c.JSON(http.StatusUnauthorized, echo.Map{"message": "Authentication required"})
    }
    id, err := pathID(c, "categoryId")
    if err != nil {
        return c.JSON(http.StatusBadRequest, echo.Map{"message": "Invalid category id"})
    }
    if err := h.Categories.Delete(c.Request().Context(), id, userID); err != nil {
        return c.JSON(http.StatusInternalServerError, echo.Map{"message": "Server couldn't delete the specified category"})
    }
    return c.JSON(http.StatusOK, echo.Map{"message": "Category deleted successfully"})
}
