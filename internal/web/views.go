package web

import (
	"embed"
	"html/template"

	"storyuniverse/internal/form"
	"storyuniverse/internal/types"
)

//go:embed templates/*.html
var templatesFS embed.FS

//go:embed static
var staticFS embed.FS

const (
	pageDashboard     = "dashboard"
	pageStoryForm     = "story_form"
	pageCharacterForm = "character_form"
	pagePlaceholder   = "placeholder"
	pageNotFound      = "not_found"
)

// every page is its own template set sharing layout.html, they all define "title" and "content"
var pages = func() map[string]*template.Template {
	ret := make(map[string]*template.Template)
	for _, name := range []string{pageDashboard, pageStoryForm, pageCharacterForm, pagePlaceholder, pageNotFound} {
		ret[name] = template.Must(template.New(name).ParseFS(templatesFS,
			"templates/layout.html", "templates/"+name+".html"))
	}

	return ret
}()

type fieldView struct {
	Name        string
	Label       string
	Placeholder string
	Widget      string
	Rows        int
	Required    bool
	Options     []form.Option
	Value       string
}

type sectionView struct {
	Id     string
	Title  string
	Icon   string
	Active bool
	Fields []fieldView
}

func viewSection[T any](sec *form.Section[T], st form.State) sectionView {
	sv := sectionView{
		Id:     sec.Id,
		Title:  sec.Title,
		Icon:   sec.Icon,
		Fields: make([]fieldView, 0, len(sec.Fields)),
	}

	for _, f := range sec.Fields {
		sv.Fields = append(sv.Fields, fieldView{
			Name:        f.Name,
			Label:       f.Label,
			Placeholder: f.Placeholder,
			Widget:      f.Widget.String(),
			Rows:        f.Rows,
			Required:    f.Required,
			Options:     f.Options,
			Value:       st.Get(f.Name),
		})
	}

	return sv
}

type storyCard struct {
	Id         string
	Title      string
	Author     string
	Genre      string
	Status     string
	Characters int
}

type dashboardPage struct {
	Stories        []storyCard
	StoryCount     int
	CharacterCount int
	WorldCount     int
}

type storyPage struct {
	Sections []sectionView
	Message  string
	Alert    string
}

type characterPage struct {
	Nav     []sectionView
	Active  sectionView
	Message string
	Alert   string
}

type placeholderPage struct {
	Title   string
	Message string
}

type notFoundPage struct {
	Path string
}

func newStoryPage(st form.State) storyPage {
	page := storyPage{Sections: make([]sectionView, 0, len(storySchema.Sections))}
	for ix := range storySchema.Sections {
		page.Sections = append(page.Sections, viewSection(&storySchema.Sections[ix], st))
	}

	return page
}

func newCharacterPage(active *form.Section[types.Character], st form.State) characterPage {
	page := characterPage{
		Nav:    make([]sectionView, 0, len(characterSchema.Sections)),
		Active: viewSection(active, st),
	}
	page.Active.Active = true

	for _, sec := range characterSchema.Sections {
		page.Nav = append(page.Nav, sectionView{
			Id:     sec.Id,
			Title:  sec.Title,
			Icon:   sec.Icon,
			Active: sec.Id == active.Id,
		})
	}

	return page
}
