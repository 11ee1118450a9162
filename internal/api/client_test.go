package api

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"storyuniverse/internal/types"
)

func newTestClient(t *testing.T, h http.HandlerFunc) *Client {
	t.Helper()

	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)

	c, err := New(srv.URL, srv.Client(), slog.New(slog.NewTextHandler(io.Discard, nil)))
	require.NoError(t, err)

	return c
}

func TestNewRejectsInvalidBase(t *testing.T) {
	_, err := New("ftp://example.com", nil, nil)
	assert.Error(t, err)

	_, err = New("://nope", nil, nil)
	assert.Error(t, err)

	c, err := New(" http://example.com/prefix ", nil, nil)
	require.NoError(t, err)
	assert.Equal(t, http.DefaultClient, c.Client)
}

func TestListEndpoints(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Accept"))

		w.Header().Set("Content-Type", "application/json")
		switch r.URL.Path {
		case "/api/stories":
			_, _ = io.WriteString(w, `[{"id":"s1","title":"Dune","structure":{"genre":"sci-fi"},"status":"draft","character_ids":["c1","c2"]}]`)
		case "/api/characters":
			_, _ = io.WriteString(w, `[{"id":"c1","name":"Paul","psychology":{"trigger_points":"water"}},{"id":"c2","name":"Jessica"}]`)
		case "/api/worlds":
			_, _ = io.WriteString(w, `[{"id":"w1","name":"Arrakis","geography":{"climate_weather":"dry"}}]`)
		default:
			http.NotFound(w, r)
		}
	})

	ctx := context.Background()

	stories, err := c.Stories(ctx)
	require.NoError(t, err)
	require.Len(t, stories, 1)
	assert.Equal(t, "Dune", stories[0].Title)
	assert.Equal(t, "sci-fi", stories[0].Structure.Genre)
	assert.Equal(t, types.StatusDraft, stories[0].Status)
	assert.Equal(t, []string{"c1", "c2"}, stories[0].CharacterIds)

	characters, err := c.Characters(ctx)
	require.NoError(t, err)
	require.Len(t, characters, 2)
	assert.Equal(t, "water", characters[0].Psychology.TriggerPoints)

	worlds, err := c.Worlds(ctx)
	require.NoError(t, err)
	require.Len(t, worlds, 1)
	assert.Equal(t, "Arrakis", worlds[0].Name)
}

func TestListSkipsNullEntries(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		switch r.URL.Path {
		case "/api/stories":
			_, _ = io.WriteString(w, `[null,{"id":"s1"},null]`)
		case "/api/characters":
			_, _ = io.WriteString(w, `[null]`)
		default:
			_, _ = io.WriteString(w, `[{"id":"w1"},null]`)
		}
	})

	ctx := context.Background()

	stories, err := c.Stories(ctx)
	require.NoError(t, err)
	require.Len(t, stories, 1)
	assert.Equal(t, "s1", stories[0].Id)

	characters, err := c.Characters(ctx)
	require.NoError(t, err)
	assert.Empty(t, characters)

	worlds, err := c.Worlds(ctx)
	require.NoError(t, err)
	require.Len(t, worlds, 1)
	assert.Equal(t, "w1", worlds[0].Id)
}

func TestBasePathPrefixIsKept(t *testing.T) {
	var gotPath string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		_, _ = io.WriteString(w, `[]`)
	}))
	defer srv.Close()

	c, err := New(srv.URL+"/backend/", srv.Client(), nil)
	require.NoError(t, err)

	rows, err := c.Worlds(context.Background())
	require.NoError(t, err)
	assert.Empty(t, rows)
	assert.Equal(t, "/backend/api/worlds", gotPath)
}

func TestCreateStory(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/stories", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var body map[string]any
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "Dune", body["title"])
		assert.Equal(t, "planning", body["status"])
		assert.Equal(t, map[string]any{
			"genre": "sci-fi", "theme": "", "tone": "", "setting_overview": "", "target_audience": "",
		}, body["structure"])
		assert.NotContains(t, body, "id")

		_, _ = io.WriteString(w, `{"id":"new-id","title":"Dune","status":"planning"}`)
	})

	created, err := c.CreateStory(context.Background(), &types.Story{
		Title:     "Dune",
		Structure: types.StoryStructure{Genre: "sci-fi"},
		Status:    types.StatusPlanning,
	})
	require.NoError(t, err)
	assert.Equal(t, "new-id", created.Id)
}

func TestCreateStoryWithoutId(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.WriteString(w, `{"title":"Dune"}`)
	})

	_, err := c.CreateStory(context.Background(), &types.Story{Title: "Dune"})
	assert.ErrorIs(t, err, ErrMissingId)
}

func TestCreateCharacter(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/characters", r.URL.Path)

		var body types.Character
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "Paul", body.Name)
		assert.Equal(t, "sand", body.MoralEdges.LineNeverCross)

		body.Id = "c1"
		assert.NoError(t, json.NewEncoder(w).Encode(body))
	})

	created, err := c.CreateCharacter(context.Background(), &types.Character{
		Name:       "Paul",
		MoralEdges: types.CharacterMoral{LineNeverCross: "sand"},
	})
	require.NoError(t, err)
	assert.Equal(t, "c1", created.Id)
}

func TestStatusError(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
		_, _ = io.WriteString(w, `{"detail":"title required"}`)
	})

	_, err := c.CreateCharacter(context.Background(), &types.Character{})
	require.Error(t, err)

	var se *StatusError
	require.True(t, errors.As(err, &se))
	assert.Equal(t, http.StatusUnprocessableEntity, se.Status)
	assert.Equal(t, "/api/characters", se.Path)
	assert.Contains(t, se.Error(), "title required")
}

func TestInvalidJSON(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.WriteString(w, `{"not":"a list"}`)
	})

	_, err := c.Stories(context.Background())
	assert.Error(t, err)
}

func TestCanceledContext(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.WriteString(w, `[]`)
	})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := c.Stories(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}
