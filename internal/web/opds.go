package web

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	"github.com/opds-community/libopds2-go/opds1"

	"storyuniverse/internal/types"
)

const (
	linkTypeCatalog = "application/atom+xml;profile=opds-catalog"
	linkTypeHtml    = "text/html"

	storyIdTemplate = "tag:storyuniverse,2024:story:%s"
)

// atomFeed pins the root element name and namespace of the marshalled catalog
type atomFeed struct {
	XMLName xml.Name `xml:"http://www.w3.org/2005/Atom feed"`
	opds1.Feed
}

func (h *handler) opdsStories(w http.ResponseWriter, r *http.Request) {
	stories, err := h.backend.Stories(r.Context())
	if err != nil {
		h.rr.RespondAndLogCustom(w, r.Context(), fmt.Errorf("building stories catalog: %w", err), slog.LevelError, http.StatusBadGateway)
		return
	}

	bs, err := xml.MarshalIndent(atomFeed{Feed: storiesFeed(stories)}, "", "  ")
	if err != nil {
		h.rr.RespondAndLogError(w, r.Context(), fmt.Errorf("marshalling stories catalog: %w", err))
		return
	}

	w.Header().Set("Content-Type", linkTypeCatalog+";kind=navigation; charset=utf-8")
	_, _ = io.WriteString(w, xml.Header)
	_, _ = io.Copy(w, bytes.NewReader(bs))
}

func storiesFeed(stories []*types.Story) opds1.Feed {
	feed := opds1.Feed{
		Title: "Story Universe: Your Stories",
		Links: []opds1.Link{
			{Rel: "self", Href: "/opds/stories", TypeLink: linkTypeCatalog},
			{Rel: "start", Href: "/opds/stories", TypeLink: linkTypeCatalog},
		},
		Entries: make([]opds1.Entry, 0, len(stories)),
	}

	for _, s := range stories {
		entry := opds1.Entry{
			ID:    fmt.Sprintf(storyIdTemplate, s.Id),
			Title: strings.TrimSpace(s.Title),
			Links: []opds1.Link{
				{Rel: "alternate", Href: "/story/" + url.PathEscape(s.Id), TypeLink: linkTypeHtml},
			},
		}

		if author := strings.TrimSpace(s.Author); author != "" {
			entry.Author = append(entry.Author, opds1.Author{Name: author})
		}

		if genre := strings.TrimSpace(s.Structure.Genre); genre != "" {
			entry.Category = append(entry.Category, opds1.Category{Term: genre})
		}

		entry.Content.Content = s.Synopsis

		feed.Entries = append(feed.Entries, entry)
	}

	return feed
}
