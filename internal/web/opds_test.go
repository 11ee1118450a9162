package web

import (
	"encoding/xml"
	"net/http"
	"testing"

	"github.com/opds-community/libopds2-go/opds1"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOPDSStories(t *testing.T) {
	app := newTestApp(t)
	app.backend.setList("/api/stories", `[
		{"id":"s1","title":" Dune ","author":"Frank","structure":{"genre":"Science fiction"},"synopsis":"Spice & sand"},
		{"id":"s2","title":"Untitled"}
	]`)

	rec := app.do(http.MethodGet, "/opds/stories", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get("Content-Type"), linkTypeCatalog)
	assert.Contains(t, rec.Body.String(), `<feed xmlns="http://www.w3.org/2005/Atom">`)

	var feed opds1.Feed
	require.NoError(t, xml.Unmarshal(rec.Body.Bytes(), &feed))

	assert.Equal(t, "Story Universe: Your Stories", feed.Title)
	require.Len(t, feed.Entries, 2)

	dune := feed.Entries[0]
	assert.Equal(t, "tag:storyuniverse,2024:story:s1", dune.ID)
	assert.Equal(t, "Dune", dune.Title)
	require.Len(t, dune.Author, 1)
	assert.Equal(t, "Frank", dune.Author[0].Name)
	require.Len(t, dune.Category, 1)
	assert.Equal(t, "Science fiction", dune.Category[0].Term)
	assert.Equal(t, "Spice & sand", dune.Content.Content)
	require.Len(t, dune.Links, 1)
	assert.Equal(t, "/story/s1", dune.Links[0].Href)
	assert.Equal(t, linkTypeHtml, dune.Links[0].TypeLink)

	assert.Empty(t, feed.Entries[1].Author)
	assert.Empty(t, feed.Entries[1].Category)
}

func TestOPDSStoriesBackendDown(t *testing.T) {
	app := newTestApp(t)
	app.backend.fail("/api/stories")

	rec := app.do(http.MethodGet, "/opds/stories", nil)
	assert.Equal(t, http.StatusBadGateway, rec.Code)
}

func TestOPDSStoriesSkipsNullEntries(t *testing.T) {
	app := newTestApp(t)
	app.backend.setList("/api/stories", `[null,{"id":"s1","title":"Dune"}]`)

	rec := app.do(http.MethodGet, "/opds/stories", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var feed opds1.Feed
	require.NoError(t, xml.Unmarshal(rec.Body.Bytes(), &feed))
	require.Len(t, feed.Entries, 1)
	assert.Equal(t, "Dune", feed.Entries[0].Title)
}
