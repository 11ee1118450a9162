package drafts

import (
	"context"
	"sync"
	"time"
)

func NewMemoryRepository() Repository {
	return &memRepo{rows: make(map[memKey]Draft), now: time.Now}
}

type memKey struct {
	kind Kind
	id   string
}

type memRepo struct {
	mu   sync.Mutex
	rows map[memKey]Draft
	now  func() time.Time
}

func (m *memRepo) Get(_ context.Context, kind Kind, id string) (*Draft, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	row, ok := m.rows[memKey{kind: kind, id: id}]
	if !ok {
		return nil, nil
	}

	// form.State is immutable, a shallow copy is enough
	return &row, nil
}

func (m *memRepo) Save(_ context.Context, draft *Draft) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	draft.UpdatedAt = m.now()
	m.rows[memKey{kind: draft.Kind, id: draft.Id}] = *draft

	return nil
}

func (m *memRepo) Delete(_ context.Context, kind Kind, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.rows, memKey{kind: kind, id: id})

	return nil
}

func (m *memRepo) DeleteStale(_ context.Context, notAfter time.Time) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	var n int64
	for k, row := range m.rows {
		if row.UpdatedAt.Before(notAfter) {
			delete(m.rows, k)
			n += 1
		}
	}

	return n, nil
}
