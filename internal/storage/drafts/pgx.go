package drafts

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"time"

	"github.com/doug-martin/goqu/v9"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"storyuniverse/internal/form"
)

const tableDraft = "draft"

const schemaDraft = `CREATE TABLE IF NOT EXISTS draft (
	kind        text        NOT NULL,
	id          text        NOT NULL,
	section     text        NOT NULL DEFAULT '',
	form_values text        NOT NULL,
	updated_at  timestamptz NOT NULL,
	PRIMARY KEY (kind, id)
)`

// EnsurePGXSchema creates the draft table when it does not exist yet
func EnsurePGXSchema(ctx context.Context, pg *pgxpool.Pool) error {
	_, err := pg.Exec(ctx, schemaDraft)
	return err
}

func NewPGXRepository(pg *pgxpool.Pool, l *slog.Logger) Repository {
	return &pgxRepo{pg: pg, g: goqu.Dialect("postgres"), l: l, now: time.Now}
}

type pgxRepo struct {
	pg  *pgxpool.Pool
	g   goqu.DialectWrapper
	l   *slog.Logger
	now func() time.Time
}

type pgxDraft struct {
	Kind      string    `db:"kind"`
	Id        string    `db:"id"`
	Section   string    `db:"section"`
	Values    string    `db:"form_values"`
	UpdatedAt time.Time `db:"updated_at"`
}

func (p *pgxRepo) Get(ctx context.Context, kind Kind, id string) (*Draft, error) {
	sql, params, err := p.selectSQL(kind, id)
	if err != nil {
		return nil, err
	}

	var row pgxDraft

	err = pgxscan.Get(ctx, p.pg, &row, sql, params...)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			err = nil
		}
		return nil, err
	}

	var values form.State
	if err := json.Unmarshal([]byte(row.Values), &values); err != nil {
		p.l.ErrorContext(ctx, "Failed to unmarshal draft values stored in DB ("+row.Kind+":"+row.Id+"): "+err.Error())
		return nil, nil
	}

	return &Draft{
		Id:        row.Id,
		Kind:      Kind(row.Kind),
		Section:   row.Section,
		Values:    values,
		UpdatedAt: row.UpdatedAt,
	}, nil
}

func (p *pgxRepo) Save(ctx context.Context, draft *Draft) error {
	draft.UpdatedAt = p.now()

	sql, params, err := p.upsertSQL(draft)
	if err != nil {
		return err
	}

	_, err = p.pg.Exec(ctx, sql, params...)
	return err
}

func (p *pgxRepo) Delete(ctx context.Context, kind Kind, id string) error {
	sql, params, err := p.g.Delete(tableDraft).
		Where(goqu.C("kind").Eq(string(kind)), goqu.C("id").Eq(id)).
		ToSQL()
	if err != nil {
		return err
	}

	_, err = p.pg.Exec(ctx, sql, params...)
	return err
}

func (p *pgxRepo) DeleteStale(ctx context.Context, notAfter time.Time) (int64, error) {
	sql, params, err := p.deleteStaleSQL(notAfter)
	if err != nil {
		return 0, err
	}

	tag, err := p.pg.Exec(ctx, sql, params...)
	if err != nil {
		return 0, err
	}

	return tag.RowsAffected(), nil
}

func (p *pgxRepo) selectSQL(kind Kind, id string) (string, []any, error) {
	return p.g.From(tableDraft).
		Where(goqu.C("kind").Eq(string(kind)), goqu.C("id").Eq(id)).
		ToSQL()
}

func (p *pgxRepo) upsertSQL(draft *Draft) (string, []any, error) {
	bs, err := json.Marshal(draft.Values)
	if err != nil {
		return "", nil, err
	}

	return p.g.Insert(tableDraft).
		Rows(pgxDraft{
			Kind:      string(draft.Kind),
			Id:        draft.Id,
			Section:   draft.Section,
			Values:    string(bs),
			UpdatedAt: draft.UpdatedAt,
		}).
		OnConflict(goqu.DoUpdate("kind, id", goqu.Record{
			"section":     goqu.L("excluded.section"),
			"form_values": goqu.L("excluded.form_values"),
			"updated_at":  goqu.L("excluded.updated_at"),
		})).
		ToSQL()
}

func (p *pgxRepo) deleteStaleSQL(notAfter time.Time) (string, []any, error) {
	return p.g.Delete(tableDraft).
		Where(goqu.C("updated_at").Lt(notAfter)).
		ToSQL()
}
