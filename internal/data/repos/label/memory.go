package label

import (
	"context"
	"sort"
	"sync"

	"github.com/yungbote/todolist-backend/internal/data/repos/repoerr"
	"github.com/yungbote/todolist-backend/internal/types"
)

// labelMemoryRepo is a process-local LabelRepo used by tests. A single
// RWMutex guards the store: reads share, mutations exclude. The name
// uniqueness check runs under the write lock, so it cannot race.
type labelMemoryRepo struct {
	mu     sync.RWMutex
	store  map[int32]types.Label
	nextID int32
}

// NewLabelMemoryRepo seeds the store with the given labels; ids keep
// counting up from the highest seeded one and are never reused.
func NewLabelMemoryRepo(seed ...types.Label) LabelRepo {
	store := make(map[int32]types.Label, len(seed))
	var nextID int32
	for _, l := range seed {
		store[l.ID] = l
		if l.ID > nextID {
			nextID = l.ID
		}
	}
	return &labelMemoryRepo{store: store, nextID: nextID}
}

func (r *labelMemoryRepo) Create(_ context.Context, name string) (*types.Label, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, existing := range r.store {
		if existing.Name == name {
			return nil, repoerr.Duplicate(existing.ID)
		}
	}

	r.nextID++
	label := types.Label{ID: r.nextID, Name: name}
	r.store[label.ID] = label
	return &label, nil
}

func (r *labelMemoryRepo) All(_ context.Context) ([]*types.Label, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	labels := make([]*types.Label, 0, len(r.store))
	for id := range r.store {
		l := r.store[id]
		labels = append(labels, &l)
	}
	sort.Slice(labels, func(i, j int) bool { return labels[i].ID < labels[j].ID })
	return labels, nil
}

func (r *labelMemoryRepo) Delete(_ context.Context, id int32) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.store[id]; !ok {
		return repoerr.NotFound(id)
	}
	delete(r.store, id)
	return nil
}
