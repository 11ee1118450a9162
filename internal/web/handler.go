package web

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"golang.org/x/sync/singleflight"

	"storyuniverse/internal/response"
	"storyuniverse/internal/storage/drafts"
	"storyuniverse/internal/types"
)

// Backend is the REST API holding the records, *api.Client implements it
type Backend interface {
	Stories(ctx context.Context) ([]*types.Story, error)
	Characters(ctx context.Context) ([]*types.Character, error)
	Worlds(ctx context.Context) ([]*types.World, error)
	CreateStory(ctx context.Context, story *types.Story) (*types.Story, error)
	CreateCharacter(ctx context.Context, character *types.Character) (*types.Character, error)
}

type handler struct {
	backend Backend
	drafts  drafts.Repository
	rr      *response.Responder
	logger  *slog.Logger

	// one backend POST per draft in flight
	submits singleflight.Group
}

func Handler(backend Backend, dr drafts.Repository, rr *response.Responder, l *slog.Logger) http.Handler {
	h := &handler{
		backend: backend,
		drafts:  dr,
		rr:      rr,
		logger:  l,
	}

	r := chi.NewRouter()

	r.Get("/", h.dashboard)

	r.Get("/create-story", h.storyForm)
	r.Post("/create-story", h.createStory)

	r.Get("/create-character", h.characterForm)
	r.Post("/create-character", h.createCharacter)

	r.Get("/create-world", h.placeholder("World Builder", "World Builder - Coming Soon!"))
	r.Get("/story/{id}", h.placeholder("Story View", "Story View - Coming Soon!"))

	r.Get("/opds/stories", h.opdsStories)

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		rr.SendJson(w, r.Context(), struct {
			Status string `json:"status"`
		}{Status: "ok"})
	})

	Static(r)

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		h.render(w, r, http.StatusNotFound, pageNotFound, notFoundPage{Path: r.URL.Path})
	})

	return r
}

// Static serves the embedded stylesheet and script under /static/
func Static(r chi.Router) {
	r.Handle("/static/*", http.FileServer(http.FS(staticFS)))
}

func (h *handler) placeholder(title, message string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		h.render(w, r, http.StatusOK, pagePlaceholder, placeholderPage{Title: title, Message: message})
	}
}

func (h *handler) render(w http.ResponseWriter, r *http.Request, status int, page string, data any) {
	h.rr.SendHTML(w, r.Context(), status, pages[page], "layout", data)
}
