package integration

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type noteResponse struct {
	ID      string `json:"id"`
	Title   string `json:"title"`
	Content string `json:"content"`
	UserID  string `json:"user_id"`
}

func createNote(t *testing.T, app *TestApp, token, title, content string) noteResponse {
	t.Helper()

	body, err := json.Marshal(map[string]string{"title": title, "content": content})
	require.NoError(t, err)

	req := authenticatedRequest(t, "POST", app.Server.URL+"/api/notes", token, body)
	resp, err := app.Client.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var note noteResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&note))
	require.NotEmpty(t, note.ID)
	return note
}

func TestNoteCRUD(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	app := setupTestApp(t)
	defer app.Teardown(t)

	user := registerUser(t, app, "a@x.com", "secret1")

	note := createNote(t, app, user.Token, "first", "hello")
	assert.Equal(t, user.User.ID, note.UserID)

	// List contains it.
	req := authenticatedRequest(t, "GET", app.Server.URL+"/api/notes", user.Token, nil)
	resp, err := app.Client.Do(req)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var notes []noteResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&notes))
	resp.Body.Close()
	require.Len(t, notes, 1)
	assert.Equal(t, note.ID, notes[0].ID)

	// Update it.
	body, _ := json.Marshal(map[string]string{"title": "renamed"})
	req = authenticatedRequest(t, "PUT", app.Server.URL+"/api/notes/"+note.ID, user.Token, body)
	resp, err = app.Client.Do(req)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var updated noteResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&updated))
	resp.Body.Close()
	assert.Equal(t, "renamed", updated.Title)
	assert.Equal(t, "hello", updated.Content)

	// Delete it.
	req = authenticatedRequest(t, "DELETE", app.Server.URL+"/api/notes/"+note.ID, user.Token, nil)
	resp, err = app.Client.Do(req)
	require.NoError(t, err)
	resp.Body.Close()
	require.Equal(t, http.StatusNoContent, resp.StatusCode)

	// Gone now.
	req = authenticatedRequest(t, "GET", app.Server.URL+"/api/notes/"+note.ID, user.Token, nil)
	resp, err = app.Client.Do(req)
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestNoteOwnership(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	app := setupTestApp(t)
	defer app.Teardown(t)

	alice := registerUser(t, app, "alice@x.com", "secret1")
	bob := registerUser(t, app, "bob@x.com", "secret2")

	note := createNote(t, app, alice.Token, "private", "alice only")

	// Bob cannot read, update or delete Alice's note.
	for _, tc := range []struct {
		method string
		body   []byte
	}{
		{"GET", nil},
		{"PUT", []byte(`{"title":"stolen"}`)},
		{"DELETE", nil},
	} {
		req := authenticatedRequest(t, tc.method, app.Server.URL+"/api/notes/"+note.ID, bob.Token, tc.body)
		resp, err := app.Client.Do(req)
		require.NoError(t, err)
		resp.Body.Close()
		assert.Equal(t, http.StatusForbidden, resp.StatusCode, "%s should be forbidden", tc.method)
	}

	// The note is untouched.
	req := authenticatedRequest(t, "GET", app.Server.URL+"/api/notes/"+note.ID, alice.Token, nil)
	resp, err := app.Client.Do(req)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var got noteResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&got))
	resp.Body.Close()
	assert.Equal(t, "private", got.Title)

	// Bob's own list does not include it.
	req = authenticatedRequest(t, "GET", app.Server.URL+"/api/notes", bob.Token, nil)
	resp, err = app.Client.Do(req)
	require.NoError(t, err)
	var bobNotes []noteResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&bobNotes))
	resp.Body.Close()
	assert.Empty(t, bobNotes)
}

func TestNote_NotFound(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	app := setupTestApp(t)
	defer app.Teardown(t)

	user := registerUser(t, app, "a@x.com", "secret1")

	req := authenticatedRequest(t, "GET", app.Server.URL+"/api/notes/"+uuid.NewString(), user.Token, nil)
	resp, err := app.Client.Do(req)
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	req = authenticatedRequest(t, "GET", app.Server.URL+"/api/notes/not-a-uuid", user.Token, nil)
	resp, err = app.Client.Do(req)
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestCreateNote_IgnoresClientOwner(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	app := setupTestApp(t)
	defer app.Teardown(t)

	alice := registerUser(t, app, "alice@x.com", "secret1")
	bob := registerUser(t, app, "bob@x.com", "secret2")

	// A client-supplied owner id is dropped; the token decides ownership.
	body := []byte(`{"title":"t","content":"c","user_id":"` + alice.User.ID + `"}`)
	req := authenticatedRequest(t, "POST", app.Server.URL+"/api/notes", bob.Token, body)
	resp, err := app.Client.Do(req)
	require.NoError(t, err)
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var note noteResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&note))
	resp.Body.Close()
	assert.Equal(t, bob.User.ID, note.UserID)
}
