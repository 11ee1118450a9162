package types

type StoryStatus string

const (
	StatusPlanning StoryStatus = "planning"
	StatusWriting  StoryStatus = "writing"
	StatusDraft    StoryStatus = "draft"
	StatusComplete StoryStatus = "complete"
)

// StoryStatuses lists statuses in the order they are offered to the user
var StoryStatuses = []StoryStatus{StatusPlanning, StatusWriting, StatusDraft, StatusComplete}

func (s StoryStatus) Title() string {
	switch s {
	case StatusPlanning:
		return "Planning"
	case StatusWriting:
		return "Writing"
	case StatusDraft:
		return "Draft"
	case StatusComplete:
		return "Complete"
	default:
		return string(s)
	}
}

type StoryStructure struct {
	Genre           string `json:"genre"`
	Theme           string `json:"theme"`
	Tone            string `json:"tone"`
	SettingOverview string `json:"setting_overview"`
	TargetAudience  string `json:"target_audience"`
}

type StoryPlot struct {
	Premise          string `json:"premise"`
	IncitingIncident string `json:"inciting_incident"`
	PlotPoints       string `json:"plot_points"`
	Climax           string `json:"climax"`
	Resolution       string `json:"resolution"`
}

type Story struct {
	Id        string         `json:"id,omitempty"`
	Title     string         `json:"title"`
	Author    string         `json:"author"`
	Structure StoryStructure `json:"structure"`
	Plot      StoryPlot      `json:"plot"`
	Synopsis  string         `json:"synopsis"`
	Notes     string         `json:"notes"`
	Status    StoryStatus    `json:"status"`

	// populated by the backend
	CharacterIds []string `json:"character_ids,omitempty"`
	WorldId      string   `json:"world_id,omitempty"`
}

// World has no fields the front end relies on, it is only counted
type World struct {
	Id   string `json:"id"`
	Name string `json:"name"`
}
