package web

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"storyuniverse/internal/api"
	"storyuniverse/internal/response"
	"storyuniverse/internal/storage/drafts"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

// fakeBackend serves canned list bodies and records created records
type fakeBackend struct {
	mu sync.Mutex

	lists   map[string]string
	failing map[string]bool

	createStatus int
	createBody   string
	posts        map[string][]string

	gate    chan struct{}
	arrived chan string
}

func newFakeBackend() *fakeBackend {
	return &fakeBackend{
		lists: map[string]string{
			"/api/stories":    `[]`,
			"/api/characters": `[]`,
			"/api/worlds":     `[]`,
		},
		failing:      map[string]bool{},
		createStatus: http.StatusOK,
		createBody:   `{"id":"s9"}`,
		posts:        map[string][]string{},
	}
}

func (f *fakeBackend) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	f.mu.Lock()
	gate, arrived := f.gate, f.arrived
	f.mu.Unlock()

	if gate != nil {
		arrived <- r.Method + " " + r.URL.Path
		select {
		case <-gate:
		case <-r.Context().Done():
			return
		}
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	if f.failing[r.URL.Path] {
		http.Error(w, "boom", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")

	if r.Method == http.MethodPost {
		bs, _ := io.ReadAll(r.Body)
		f.posts[r.URL.Path] = append(f.posts[r.URL.Path], string(bs))
		w.WriteHeader(f.createStatus)
		_, _ = io.WriteString(w, f.createBody)
		return
	}

	body, ok := f.lists[r.URL.Path]
	if !ok {
		http.NotFound(w, r)
		return
	}

	_, _ = io.WriteString(w, body)
}

func (f *fakeBackend) setList(path, body string) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.lists[path] = body
}

func (f *fakeBackend) fail(path string) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.failing[path] = true
}

func (f *fakeBackend) respondToCreate(status int, body string) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.createStatus = status
	f.createBody = body
}

// hold parks every request until the returned release is called
func (f *fakeBackend) hold(t *testing.T) (arrived <-chan string, release func()) {
	t.Helper()

	f.mu.Lock()
	f.gate = make(chan struct{})
	f.arrived = make(chan string, 16)
	gate, ch := f.gate, f.arrived
	f.mu.Unlock()

	var once sync.Once
	release = func() { once.Do(func() { close(gate) }) }
	t.Cleanup(release)

	return ch, release
}

func waitArrival(t *testing.T, arrived <-chan string) string {
	t.Helper()

	select {
	case got := <-arrived:
		return got
	case <-time.After(5 * time.Second):
		require.Fail(t, "backend was never called")
		return ""
	}
}

func (f *fakeBackend) postsTo(path string) []string {
	f.mu.Lock()
	defer f.mu.Unlock()

	return append([]string(nil), f.posts[path]...)
}

type testApp struct {
	backend *fakeBackend
	drafts  drafts.Repository
	handler http.Handler
	cookies []*http.Cookie
}

func newTestApp(t *testing.T) *testApp {
	t.Helper()

	fb := newFakeBackend()
	srv := httptest.NewServer(fb)
	t.Cleanup(srv.Close)

	l := slog.New(slog.NewTextHandler(io.Discard, nil))

	client, err := api.New(srv.URL, srv.Client(), l)
	require.NoError(t, err)

	repo := drafts.NewMemoryRepository()

	return &testApp{
		backend: fb,
		drafts:  repo,
		handler: Handler(client, repo, &response.Responder{}, l),
	}
}

// request builds a request carrying the cookies collected so far, like a browser would
func (a *testApp) request(ctx context.Context, method, target string, form url.Values) *http.Request {
	var body io.Reader
	if form != nil {
		body = strings.NewReader(form.Encode())
	}

	req := httptest.NewRequest(method, target, body).WithContext(ctx)
	if form != nil {
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	}

	for _, c := range a.cookies {
		req.AddCookie(c)
	}

	return req
}

func (a *testApp) do(method, target string, form url.Values) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	a.handler.ServeHTTP(rec, a.request(context.Background(), method, target, form))

	a.cookies = append(a.cookies, rec.Result().Cookies()...)

	return rec
}

func (a *testApp) draftId(t *testing.T) string {
	t.Helper()

	for _, c := range a.cookies {
		if c.Name == draftCookie {
			return c.Value
		}
	}

	require.Fail(t, "no draft cookie issued")
	return ""
}

func decodePost(t *testing.T, raw string) map[string]any {
	t.Helper()

	var m map[string]any
	require.NoError(t, json.Unmarshal([]byte(raw), &m))

	return m
}

func TestPlaceholders(t *testing.T) {
	app := newTestApp(t)

	rec := app.do(http.MethodGet, "/create-world", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "World Builder - Coming Soon!")

	rec = app.do(http.MethodGet, "/story/abc", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Story View - Coming Soon!")
}

func TestNotFound(t *testing.T) {
	app := newTestApp(t)

	rec := app.do(http.MethodGet, "/nowhere/else", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Header().Get("Content-Type"), "text/html")
	assert.Contains(t, rec.Body.String(), "Nothing lives at /nowhere/else")
}

func TestHealthzAndStatic(t *testing.T) {
	app := newTestApp(t)

	rec := app.do(http.MethodGet, "/healthz", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())

	rec = app.do(http.MethodGet, "/static/app.css", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), ".badge-planning")

	rec = app.do(http.MethodGet, "/static/app.js", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "data-pending")
}

func TestDraftCookieIsReissuedWhenMalformed(t *testing.T) {
	app := newTestApp(t)
	app.cookies = []*http.Cookie{{Name: draftCookie, Value: "not-a-uuid"}}

	rec := app.do(http.MethodGet, "/create-story", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	issued := rec.Result().Cookies()
	require.Len(t, issued, 1)
	assert.Equal(t, draftCookie, issued[0].Name)
	assert.NotEqual(t, "not-a-uuid", issued[0].Value)
	assert.True(t, issued[0].HttpOnly)
}
