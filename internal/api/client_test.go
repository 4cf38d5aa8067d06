package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return New(srv.URL, time.Second, func() string { return "tok-123" }, nil)
}

func TestBearerHeaderOnEveryRequest(t *testing.T) {
	var got string
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		got = r.Header.Get("Authorization")
		json.NewEncoder(w).Encode(map[string]any{"isLiked": true})
	})

	liked, err := c.CheckLiked(context.Background(), "abc")
	require.NoError(t, err)
	assert.True(t, liked)
	assert.Equal(t, "Bearer tok-123", got)
}

func TestNoBearerHeaderWhenLoggedOut(t *testing.T) {
	var got string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = r.Header.Get("Authorization")
		json.NewEncoder(w).Encode(map[string]any{"isLiked": false})
	}))
	t.Cleanup(srv.Close)

	c := New(srv.URL, time.Second, func() string { return "" }, nil)
	_, err := c.CheckLiked(context.Background(), "abc")
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestEventSuccessFalseMeansNotFound(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{"success": false})
	})

	_, err := c.Event(context.Background(), "abc")
	assert.ErrorIs(t, err, ErrEventNotFound)
}

func TestStatusMapping(t *testing.T) {
	cases := []struct {
		name   string
		status int
		body   string
		check  func(t *testing.T, err error)
	}{
		{
			name:   "401 maps to unauthorized",
			status: http.StatusUnauthorized,
			body:   `{"message":"token expired"}`,
			check: func(t *testing.T, err error) {
				assert.ErrorIs(t, err, ErrUnauthorized)
			},
		},
		{
			name:   "404 maps to not found",
			status: http.StatusNotFound,
			body:   `{}`,
			check: func(t *testing.T, err error) {
				assert.ErrorIs(t, err, ErrEventNotFound)
			},
		},
		{
			name:   "500 keeps the server message",
			status: http.StatusInternalServerError,
			body:   `{"message":"db down"}`,
			check: func(t *testing.T, err error) {
				var apiErr *APIError
				require.ErrorAs(t, err, &apiErr)
				assert.Equal(t, http.StatusInternalServerError, apiErr.Status)
				assert.Equal(t, "db down", apiErr.Message)
			},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tc.status)
				w.Write([]byte(tc.body))
			})
			_, err := c.Event(context.Background(), "abc")
			require.Error(t, err)
			tc.check(t, err)
		})
	}
}

func TestToggleLikeDecodesEnvelope(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/events/abc/toggle-like", r.URL.Path)
		json.NewEncoder(w).Encode(map[string]any{
			"success": true,
			"data":    map[string]any{"isLiked": true, "interestingCount": 7},
		})
	})

	liked, count, err := c.ToggleLike(context.Background(), "abc")
	require.NoError(t, err)
	assert.True(t, liked)
	assert.Equal(t, 7, count)
}

func TestToggleSaveDecodesTopLevelFields(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/events/abc/toggle-save", r.URL.Path)
		json.NewEncoder(w).Encode(map[string]any{
			"success":   true,
			"isSaved":   false,
			"saveCount": 3,
		})
	})

	saved, count, err := c.ToggleSave(context.Background(), "abc")
	require.NoError(t, err)
	assert.False(t, saved)
	assert.Equal(t, 3, count)
}

func TestSaveToFolderPostsEventAndFolder(t *testing.T) {
	var body map[string]string
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/saved-events", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		w.WriteHeader(http.StatusCreated)
	})

	err := c.SaveToFolder(context.Background(), "abc", "Âm nhạc")
	require.NoError(t, err)
	assert.Equal(t, "abc", body["eventId"])
	assert.Equal(t, "Âm nhạc", body["folderName"])
}

func TestFoldersListsServerOrder(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/saved-events/folders", r.URL.Path)
		json.NewEncoder(w).Encode(map[string]any{"folders": []string{"Work", "Fun", "Misc"}})
	})

	folders, err := c.Folders(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"Work", "Fun", "Misc"}, folders)
}

func TestLoginReturnsToken(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/auth/login", r.URL.Path)
		var creds map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&creds))
		assert.Equal(t, "a@b.c", creds["email"])
		assert.Equal(t, "pw", creds["password"])
		json.NewEncoder(w).Encode(map[string]any{"token": "jwt-abc"})
	})

	tok, err := c.Login(context.Background(), "a@b.c", "pw")
	require.NoError(t, err)
	assert.Equal(t, "jwt-abc", tok)
}

func TestEventsListPassesLimit(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "200", r.URL.Query().Get("limit"))
		json.NewEncoder(w).Encode(map[string]any{
			"success": true,
			"data":    []map[string]any{{"_id": "e1", "title": "T1"}},
		})
	})

	events, err := c.Events(context.Background(), 200)
	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.Equal(t, "e1", events[0].ID)
}
