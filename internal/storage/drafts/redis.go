package drafts

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"

	"storyuniverse/internal/form"
)

const redisKeyPrefix = "draft:"

// NewRedisRepository stores drafts as JSON values expiring after ttl
func NewRedisRepository(rdb redis.UniversalClient, ttl time.Duration, l *slog.Logger) Repository {
	return &redisRepo{rdb: rdb, ttl: ttl, l: l, now: time.Now}
}

type redisRepo struct {
	rdb redis.UniversalClient
	ttl time.Duration
	l   *slog.Logger
	now func() time.Time
}

type redisDraft struct {
	Section   string     `json:"section"`
	Values    form.State `json:"values"`
	UpdatedAt time.Time  `json:"updated_at"`
}

func redisKey(kind Kind, id string) string {
	return redisKeyPrefix + string(kind) + ":" + id
}

func (r *redisRepo) Get(ctx context.Context, kind Kind, id string) (*Draft, error) {
	bs, err := r.rdb.Get(ctx, redisKey(kind, id)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			err = nil
		}
		return nil, err
	}

	var row redisDraft
	if err := json.Unmarshal(bs, &row); err != nil {
		r.l.ErrorContext(ctx, "Failed to unmarshal draft stored in redis ("+redisKey(kind, id)+"): "+err.Error())
		return nil, nil
	}

	return &Draft{
		Id:        id,
		Kind:      kind,
		Section:   row.Section,
		Values:    row.Values,
		UpdatedAt: row.UpdatedAt,
	}, nil
}

func (r *redisRepo) Save(ctx context.Context, draft *Draft) error {
	draft.UpdatedAt = r.now()

	bs, err := json.Marshal(redisDraft{
		Section:   draft.Section,
		Values:    draft.Values,
		UpdatedAt: draft.UpdatedAt,
	})
	if err != nil {
		return err
	}

	return r.rdb.Set(ctx, redisKey(draft.Kind, draft.Id), bs, r.ttl).Err()
}

func (r *redisRepo) Delete(ctx context.Context, kind Kind, id string) error {
	return r.rdb.Del(ctx, redisKey(kind, id)).Err()
}

// DeleteStale is a no-op, redis expires drafts by itself
func (r *redisRepo) DeleteStale(context.Context, time.Time) (int64, error) {
	return 0, nil
}
