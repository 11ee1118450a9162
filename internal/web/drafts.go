package web

import (
	"context"
	"fmt"
	"net/http"

	"github.com/google/uuid"

	"storyuniverse/internal/form"
	"storyuniverse/internal/storage/drafts"
)

const draftCookie = "draft_id"

// draftId returns the draft id of the visitor, issuing a new cookie when it is missing or malformed
func draftId(w http.ResponseWriter, r *http.Request) string {
	if c, err := r.Cookie(draftCookie); err == nil {
		if _, err := uuid.Parse(c.Value); err == nil {
			return c.Value
		}
	}

	id := uuid.NewString()
	http.SetCookie(w, &http.Cookie{
		Name:     draftCookie,
		Value:    id,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})

	return id
}

// loadDraft never returns nil draft without an error: absent drafts start from seed
func (h *handler) loadDraft(ctx context.Context, kind drafts.Kind, id string, seed func() form.State) (*drafts.Draft, error) {
	d, err := h.drafts.Get(ctx, kind, id)
	if err != nil {
		return nil, fmt.Errorf("loading %s draft: %w", kind, err)
	}

	if d == nil {
		d = &drafts.Draft{
			Id:     id,
			Kind:   kind,
			Values: seed(),
		}
	}

	return d, nil
}

// forgetDraft is called after a successful submission, failures only cost a stale draft
func (h *handler) forgetDraft(ctx context.Context, kind drafts.Kind, id string) {
	if err := h.drafts.Delete(ctx, kind, id); err != nil {
		h.logger.WarnContext(ctx, "Failed to delete "+string(kind)+" draft "+id+": "+err.Error())
	}
}
