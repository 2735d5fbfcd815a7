package handler

import (
	"database/sql"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iliyamo/notes-api/internal/repository"
)

const (
	selectCategorySnippets  = `^SELECT id, name, backgroundColor, nameColor FROM category WHERE userId = \?$`
	selectCategoryByID      = `^SELECT id, name, backgroundColor, nameColor, userId FROM category WHERE id = \? AND userId = \? LIMIT 1$`
	selectCategorySnippetByID = `^SELECT id, name, backgroundColor, nameColor FROM category WHERE id = \? AND userId = \? LIMIT 1$`
	selectNotesByCategory   = `^SELECT id, title, text, userId, categoryId, pinned, creationDate FROM note WHERE categoryId = \? AND userId = \?$`
	insertCategory          = `^INSERT INTO category \(name, backgroundColor, nameColor, userId\) VALUES \(\?, \?, \?, \?\)$`
	deleteCategory          = `^DELETE FROM category WHERE id = \? AND userId = \?$`
)

func newCategoryEnv(t *testing.T) (*CategoryHandler, sqlmock.Sqlmock, *sql.DB) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	return NewCategoryHandler(repository.NewCategoryRepo(db), repository.NewNoteRepo(db)), mock, db
}

type categoryResp struct {
	Category repository.Category `json:"category"`
	Message  string              `json:"message"`
}

func TestCategorySnippets(t *testing.T) {
	h, mock, db := newCategoryEnv(t)
	defer db.Close()

	mock.ExpectQuery(selectCategorySnippets).
		WithArgs(uint64(7)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "backgroundColor", "nameColor"}).
			AddRow(1, "Work", "#fff", "#000"))

	c, rec := authedRequest(http.MethodGet, "/category/snippets", "", 7)
	require.NoError(t, h.Snippets(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	var snippets []repository.CategorySnippet
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &snippets))
	require.Len(t, snippets, 1)
	assert.Equal(t, "Work", snippets[0].Name)
}

func TestCategoryCreate(t *testing.T) {
	h, mock, db := newCategoryEnv(t)
	defer db.Close()

	mock.ExpectExec(insertCategory).
		WithArgs("Work", "#fff", "#000", uint64(7)).
		WillReturnResult(sqlmock.NewResult(3, 1))

	c, rec := authedRequest(http.MethodPost, "/category/create",
		`{"name":"Work","backgroundColor":"#fff","nameColor":"#000"}`, 7)
	require.NoError(t, h.Create(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	var resp categoryResp
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "Category created successfully", resp.Message)
	assert.Equal(t, uint64(3), resp.Category.ID)
	assert.Equal(t, uint64(7), resp.Category.UserID)
}

func TestCategoryCreate_EmptyName(t *testing.T) {
	h, mock, db := newCategoryEnv(t)
	defer db.Close()

	c, rec := authedRequest(http.MethodPost, "/category/create", `{"name":""}`, 7)
	require.NoError(t, h.Create(c))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCategoryGetSnippet(t *testing.T) {
	h, mock, db := newCategoryEnv(t)
	defer db.Close()

	mock.ExpectQuery(selectCategorySnippetByID).
		WithArgs(uint64(3), uint64(7)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "backgroundColor", "nameColor"}).
			AddRow(3, "Work", "#fff", "#000"))

	c, rec := authedRequest(http.MethodGet, "/category/snippet/3", "", 7)
	c.SetParamNames("categoryId")
	c.SetParamValues("3")
	require.NoError(t, h.GetSnippet(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	var s repository.CategorySnippet
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &s))
	assert.Equal(t, uint64(3), s.ID)
}

func TestCategoryGet_OtherUsersCategoryLooksMissing(t *testing.T) {
	h, mock, db := newCategoryEnv(t)
	defer db.Close()

	mock.ExpectQuery(selectCategoryByID).
		WithArgs(uint64(3), uint64(7)).
		WillReturnError(sql.ErrNoRows)

	c, rec := authedRequest(http.MethodGet, "/category/3", "", 7)
	c.SetParamNames("categoryId")
	c.SetParamValues("3")
	require.NoError(t, h.Get(c))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), "Server couldn't retrieve the requested data")
}

func TestCategoryNotes(t *testing.T) {
	h, mock, db := newCategoryEnv(t)
	defer db.Close()

	mock.ExpectQuery(selectNotesByCategory).
		WithArgs(uint64(3), uint64(7)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "title", "text", "userId", "categoryId", "pinned", "creationDate"}).
			AddRow(1, "a", "x", 7, 3, false, "2025-01-01T00:00:00Z"))

	c, rec := authedRequest(http.MethodGet, "/category/notes/3", "", 7)
	c.SetParamNames("categoryId")
	c.SetParamValues("3")
	require.NoError(t, h.CategoryNotes(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	var notes []repository.Note
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &notes))
	require.Len(t, notes, 1)
	require.NotNil(t, notes[0].CategoryID)
	assert.Equal(t, uint64(3), *notes[0].CategoryID)
}

func TestCategoryDelete_ScopedToOwner(t *testing.T) {
	h, mock, db := newCategoryEnv(t)
	defer db.Close()

	mock.ExpectExec(deleteCategory).
		WithArgs(uint64(3), uint64(7)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	c, rec := authedRequest(http.MethodDelete, "/category/3", "", 7)
	c.SetParamNames("categoryId")
	c.SetParamValues("3")
	require.NoError(t, h.Delete(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Category deleted successfully")
}
