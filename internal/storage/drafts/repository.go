package drafts

import (
	"context"
	"time"

	"storyuniverse/internal/form"
)

type Kind string

const (
	KindStory     Kind = "story"
	KindCharacter Kind = "character"
)

// Draft is a form state kept between two page requests
type Draft struct {
	Id        string
	Kind      Kind
	Section   string
	Values    form.State
	UpdatedAt time.Time
}

type Repository interface {
	// Get returns nil without error when there is no such draft
	Get(ctx context.Context, kind Kind, id string) (*Draft, error)
	// Save stamps UpdatedAt
	Save(ctx context.Context, draft *Draft) error
	Delete(ctx context.Context, kind Kind, id string) error

	// DeleteStale removes drafts last saved before notAfter
	DeleteStale(ctx context.Context, notAfter time.Time) (int64, error)
}
