package web

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	"storyuniverse/internal/form"
	"storyuniverse/internal/storage/drafts"
	"storyuniverse/internal/types"
)

const (
	actionSubmit = "submit"
	actionSwitch = "switch:"
)

// characterSection resolves a section id, unknown ids fall back to the basic section
func characterSection(id string) *form.Section[types.Character] {
	if sec := characterSchema.Section(id); sec != nil {
		return sec
	}

	return characterSchema.Section(defaultCharacterSection)
}

func (h *handler) characterForm(w http.ResponseWriter, r *http.Request) {
	d, err := h.loadDraft(r.Context(), drafts.KindCharacter, draftId(w, r), characterSchema.Seed)
	if err != nil {
		h.rr.RespondAndLogError(w, r.Context(), err)
		return
	}

	id := r.URL.Query().Get("section")
	if id == "" {
		id = d.Section
	}

	h.render(w, r, http.StatusOK, pageCharacterForm, newCharacterPage(characterSection(id), d.Values))
}

// createCharacter handles both section switching and the final submission,
// each post carries the values of the section it was rendered with
func (h *handler) createCharacter(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if err := r.ParseForm(); err != nil {
		h.rr.RespondAndLogCustom(w, ctx, fmt.Errorf("parsing character form: %w", err), slog.LevelWarn, http.StatusBadRequest)
		return
	}

	d, err := h.loadDraft(ctx, drafts.KindCharacter, draftId(w, r), characterSchema.Seed)
	if err != nil {
		h.rr.RespondAndLogError(w, ctx, err)
		return
	}

	current := characterSection(r.PostForm.Get("_section"))

	d.Values, err = d.Values.Apply(r.PostForm, current.Names()...)
	if err != nil {
		h.rr.RespondAndLogError(w, ctx, fmt.Errorf("applying character form: %w", err))
		return
	}

	action := r.PostForm.Get("_action")

	next := current
	if strings.HasPrefix(action, actionSwitch) {
		next = characterSection(strings.TrimPrefix(action, actionSwitch))
	}
	d.Section = next.Id

	if err = h.drafts.Save(ctx, d); err != nil {
		h.rr.RespondAndLogError(w, ctx, fmt.Errorf("saving character draft: %w", err))
		return
	}

	if action != actionSubmit {
		http.Redirect(w, r, "/create-character?section="+url.QueryEscape(next.Id), http.StatusSeeOther)
		return
	}

	if missing := characterSchema.Missing(d.Values); len(missing) > 0 {
		page := newCharacterPage(characterSection(missing[0].Section), d.Values)
		page.Message = missing[0].Label + " is required"
		h.render(w, r, http.StatusUnprocessableEntity, pageCharacterForm, page)
		return
	}

	character := characterSchema.Decode(d.Values)

	_, err, _ = h.submits.Do(string(drafts.KindCharacter)+":"+d.Id, func() (any, error) {
		return h.backend.CreateCharacter(context.WithoutCancel(ctx), &character)
	})
	if err != nil {
		h.logger.ErrorContext(ctx, "Failed to create character: "+err.Error())
		page := newCharacterPage(current, d.Values)
		page.Alert = "Failed to create character. Please try again."
		h.render(w, r, http.StatusBadGateway, pageCharacterForm, page)
		return
	}

	h.forgetDraft(ctx, drafts.KindCharacter, d.Id)

	http.Redirect(w, r, "/", http.StatusSeeOther)
}
