package web

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"

	"storyuniverse/internal/storage/drafts"
	"storyuniverse/internal/types"
)

func (h *handler) storyForm(w http.ResponseWriter, r *http.Request) {
	d, err := h.loadDraft(r.Context(), drafts.KindStory, draftId(w, r), storySchema.Seed)
	if err != nil {
		h.rr.RespondAndLogError(w, r.Context(), err)
		return
	}

	h.render(w, r, http.StatusOK, pageStoryForm, newStoryPage(d.Values))
}

func (h *handler) createStory(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if err := r.ParseForm(); err != nil {
		h.rr.RespondAndLogCustom(w, ctx, fmt.Errorf("parsing story form: %w", err), slog.LevelWarn, http.StatusBadRequest)
		return
	}

	d, err := h.loadDraft(ctx, drafts.KindStory, draftId(w, r), storySchema.Seed)
	if err != nil {
		h.rr.RespondAndLogError(w, ctx, err)
		return
	}

	d.Values, err = d.Values.Apply(r.PostForm, storySchema.Names()...)
	if err != nil {
		h.rr.RespondAndLogError(w, ctx, fmt.Errorf("applying story form: %w", err))
		return
	}

	// saved before submitting so a failed attempt can be retried with the same values
	if err = h.drafts.Save(ctx, d); err != nil {
		h.rr.RespondAndLogError(w, ctx, fmt.Errorf("saving story draft: %w", err))
		return
	}

	page := newStoryPage(d.Values)

	if missing := storySchema.Missing(d.Values); len(missing) > 0 {
		page.Message = missing[0].Label + " is required"
		h.render(w, r, http.StatusUnprocessableEntity, pageStoryForm, page)
		return
	}

	story := storySchema.Decode(d.Values)

	// callers joining the same submit share it, so it must not die with the first caller's
	// request; the backend client timeout still bounds it
	res, err, _ := h.submits.Do(string(drafts.KindStory)+":"+d.Id, func() (any, error) {
		return h.backend.CreateStory(context.WithoutCancel(ctx), &story)
	})
	if err != nil {
		h.logger.ErrorContext(ctx, "Failed to create story: "+err.Error())
		page.Alert = "Failed to create story. Please try again."
		h.render(w, r, http.StatusBadGateway, pageStoryForm, page)
		return
	}

	created := res.(*types.Story)
	h.forgetDraft(ctx, drafts.KindStory, d.Id)

	http.Redirect(w, r, "/story/"+url.PathEscape(created.Id), http.StatusSeeOther)
}
