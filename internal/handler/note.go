package handler

import (
    "context"
    "net/http"
    "time"

    "github.com/labstack/echo/v4"

    "github.com/iliyamo/notes-api/internal/queue"
    "github.com/iliyamo/notes-api/internal/repository"
    queuepublisher "github.com/iliyamo/notes-api/internal/service"
)

// NoteHandler implements the /note endpoints.  Every handler first reads
// the verified user id bound by the session middleware; all repository
// calls are filtered by it.  Store failures of any kind (connectivity,
// constraint violations, zero-row single fetches) map uniformly to 500
// with a generic message -- the client cannot distinguish a missing note
// from someone else's note.
type NoteHandler struct {
    Notes *repository.NoteRepo
}

func NewNoteHandler(n *repository.NoteRepo) *NoteHandler {
    if n == nil {
        panic("nil repository passed to NewNoteHandler")
    }
    return &NoteHandler{Notes: n}
}

type createNoteReq struct {
    Title      string  `json:"title"`
    Text       string  `json:"text"`
    CategoryID *uint64 `json:"categoryId"`
}

// Snippets handles GET /note/snippets and lists the reduced projection of
// the caller's notes.
func (h *NoteHandler) Snippets(c echo.Context) error {
    userID, err := getUserID(c)
    if err != nil {
        return c.JSON(http.StatusUnauthorized, echo.Map{"message": "Authentication required"})
    }
    snippets, err := h.Notes.ListSnippets(c.Request().Context(), userID)
    if err != nil {
        return c.JSON(http.StatusInternalServerError, echo.Map{"message": "Server couldn't retrieve the requested data"})
    }
    return c.JSON(http.StatusOK, snippets)
}

// Get handles GET /note/:noteId.
func (h *NoteHandler) Get(c echo.Context) error {
    userID, err := getUserID(c)
    if err != nil {
        return c.JSON(http.StatusUnauthorized, echo.Map{"message": "Authentication required"})
    }
    id, err := pathID(c, "noteId")
    if err != nil {
        return c.JSON(http.StatusBadRequest, echo.Map{"message": "Invalid note id"})
    }
    note, err := h.Notes.GetByID(c.Request().Context(), id, userID)
    if err != nil {
        return c.JSON(http.StatusInternalServerError, echo.Map{"message": "Server couldn't retrieve the requested data"})
    }
    return c.JSON(http.StatusOK, note)
}

// Create handles POST /note/create.  The server, not the client, decides
// the defaults: pinned starts false and creationDate is stamped once here.
func (h *NoteHandler) Create(c echo.Context) error {
    userID, err := getUserID(c)
    if err != nil {
        return c.JSON(http.StatusUnauthorized, echo.Map{"message": "Authentication required"})
    }
    var req createNoteReq
    if err := c.Bind(&req); err != nil {
        return c.JSON(http.StatusBadRequest, echo.Map{"message": "At least one field has invalid format"})
    }
    if req.Title == "" {
        return c.JSON(http.StatusBadRequest, echo.Map{"message": "At least one field has invalid format"})
    }

    note := repository.Note{
        Title:        req.Title,
        Text:         req.Text,
        UserID:       userID,
        CategoryID:   req.CategoryID,
        Pinned:       false,
        CreationDate: time.Now().UTC().Format(time.RFC3339),
    }
    if err := h.Notes.Create(c.Request().Context(), &note); err != nil {
        return c.JSON(http.StatusInternalServerError, echo.Map{"message": "Server couldn't save the new note"})
    }
    h.publishActivity(note, "created")
    return c.JSON(http.StatusOK, echo.Map{"note": note, "message": "Note created successfully"})
}

// Update handles PUT /note/update.  The body carries the full note
// including its id, but the write is filtered by id+userId; the id in the
// body selects the row, it cannot re-home it to another user.
func (h *NoteHandler) Update(c echo.Context) error {
    userID, err := getUserID(c)
    if err != nil {
        return c.JSON(http.StatusUnauthorized, echo.Map{"message": "Authentication required"})
    }
    var note repository.Note
    if err := c.Bind(&note); err != nil {
        return c.JSON(http.StatusBadRequest, echo.Map{"message": "At least one field has invalid format"})
    }
    if note.Title == "" {
        return c.JSON(http.StatusBadRequest, echo.Map{"message": "At least one field has invalid format"})
    }
    updated, err := h.Notes.Update(c.Request().Context(), note, userID)
    if err != nil {
        return c.JSON(http.StatusInternalServerError, echo.Map{"message": "Server couldn't update the specified note"})
    }
    h.publishActivity(updated, "updated")
    return c.JSON(http.StatusOK, echo.Map{"note": updated, "message": "Note updated successfully"})
}

// TogglePin handles PUT /note/:noteId/toggle-pin.  This is a read-modify-
// write without any locking: two concurrent toggles of the same note can
// interleave between the read and the write and land on either final
// value.  Tolerated for a single-user pin flag.
func (h *NoteHandler) TogglePin(c echo.Context) error {
    userID, err := getUserID(c)
    if err != nil {
        return c.JSON(http.StatusUnauthorized, echo.Map{"message": "Authentication required"})
    }
    id, err := pathID(c, "noteId")
    if err != nil {
        return c.JSON(http.StatusBadRequest, echo.Map{"message": "Invalid note id"})
    }

    ctx := c.Request().Context()
    note, err := h.Notes.GetByID(ctx, id, userID)
    if err != nil {
        return c.JSON(http.StatusInternalServerError, echo.Map{"message": "Server couldn't find the specified note"})
    }
    if err := h.Notes.SetPinned(ctx, id, userID, !note.Pinned); err != nil {
        return c.JSON(http.StatusInternalServerError, echo.Map{"message": "Server couldn't update the specified note"})
    }
    updated, err := h.Notes.GetByID(ctx, id, userID)
    if err != nil {
        return c.JSON(http.StatusInternalServerError, echo.Map{"message": "Server couldn't update the specified note"})
    }
    h.publishActivity(updated, "pin-toggled")
    return c.JSON(http.StatusOK, echo.Map{"note": updated, "message": "Note updated successfully"})
}

// Delete handles DELETE /note/:noteId.  Deleting a note that is missing or
// owned by someone else matches zero rows and still reports success.
func (h *NoteHandler) Delete(c echo.Context) error {
    userID, err := getUserID(c)
    if err != nil {
        return c.JSON(http.StatusUnauthorized, echo.Map{"message": "Authentication required"})
    }
    id, err := pathID(c, "noteId")
    if err != nil {
        return c.JSON(http.StatusBadRequest, echo.Map{"message": "Invalid note id"})
    }
    if err := h.Notes.Delete(c.Request().Context(), id, userID); err != nil {
        return c.JSON(http.StatusInternalServerError, echo.Map{"message": "Server couldn't delete the specified note"})
    }
    h.publishActivity(repository.Note{ID: id, UserID: userID}, "deleted")
    return c.JSON(http.StatusOK, echo.Map{"message": "Note deleted successfully"})
}

// publishActivity emits a best-effort note.activity event.  Publishing runs
// on its own goroutine with a fresh context so a slow or absent broker
// never delays the HTTP response; errors are logged inside the publisher
// and dropped here.
func (h *NoteHandler) publishActivity(note repository.Note, action string) {
    ev := queue.NoteActivityEvent{
        NoteID:     note.ID,
        UserID:     note.UserID,
        Action:     action,
        Title:      note.Title,
        OccurredAt: time.Now().UTC().Format(time.RFC3339),
    }
    go func() {
        ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
        defer cancel()
        _ = queuepublisher.PublishNoteActivity(ctx, ev)
    }()
}
