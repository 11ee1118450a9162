package web

import (
	"net/http"

	"golang.org/x/sync/errgroup"

	"storyuniverse/internal/types"
)

func (h *handler) dashboard(w http.ResponseWriter, r *http.Request) {
	var (
		stories    []*types.Story
		characters []*types.Character
		worlds     []*types.World
	)

	// the group context is cancelled on the first failure or when the client goes away
	g, ctx := errgroup.WithContext(r.Context())

	g.Go(func() (err error) {
		stories, err = h.backend.Stories(ctx)
		return err
	})

	g.Go(func() (err error) {
		characters, err = h.backend.Characters(ctx)
		return err
	})

	g.Go(func() (err error) {
		worlds, err = h.backend.Worlds(ctx)
		return err
	})

	if err := g.Wait(); err != nil {
		h.logger.ErrorContext(r.Context(), "Failed to load dashboard: "+err.Error())
		stories, characters, worlds = nil, nil, nil
	}

	page := dashboardPage{
		Stories:        make([]storyCard, 0, len(stories)),
		StoryCount:     len(stories),
		CharacterCount: len(characters),
		WorldCount:     len(worlds),
	}

	for _, s := range stories {
		page.Stories = append(page.Stories, newStoryCard(s))
	}

	h.render(w, r, http.StatusOK, pageDashboard, page)
}

func newStoryCard(s *types.Story) storyCard {
	c := storyCard{
		Id:         s.Id,
		Title:      s.Title,
		Author:     s.Author,
		Genre:      s.Structure.Genre,
		Status:     string(s.Status),
		Characters: len(s.CharacterIds),
	}

	if c.Author == "" {
		c.Author = "Unknown Author"
	}

	if c.Genre == "" {
		c.Genre = "Not specified"
	}

	return c
}
