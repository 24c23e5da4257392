package todo

import (
	"context"
	"sync"

	"github.com/yungbote/todolist-backend/internal/data/repos/repoerr"
	"github.com/yungbote/todolist-backend/internal/types"
)

// todoMemoryRepo is a process-local TodoRepo used by tests and as the
// reference semantics for the contract. A single RWMutex guards the
// store: Find/All share the lock, Create/Update/Delete hold it
// exclusively. Ids come from a counter that only moves forward, so a
// delete can never cause an id to be reused.
type todoMemoryRepo struct {
	mu     sync.RWMutex
	store  map[int32]*types.TodoEntity
	nextID int32
	labels []types.Label
}

// NewTodoMemoryRepo builds an in-memory repo resolving label ids
// against the given snapshot.
func NewTodoMemoryRepo(labels []types.Label) TodoRepo {
	return &todoMemoryRepo{
		store:  map[int32]*types.TodoEntity{},
		labels: labels,
	}
}

func (r *todoMemoryRepo) Create(_ context.Context, payload types.CreateTodo) (*types.TodoEntity, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.nextID++
	entity := &types.TodoEntity{
		ID:        r.nextID,
		Text:      payload.Text,
		Completed: false,
		Labels:    r.resolveLabels(payload.LabelIDs),
	}
	r.store[entity.ID] = entity
	return cloneEntity(entity), nil
}

func (r *todoMemoryRepo) Find(_ context.Context, id int32) (*types.TodoEntity, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	entity, ok := r.store[id]
	if !ok {
		return nil, repoerr.NotFound(id)
	}
	return cloneEntity(entity), nil
}

// All returns every todo in no particular order.
func (r *todoMemoryRepo) All(_ context.Context) ([]*types.TodoEntity, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	entities := make([]*types.TodoEntity, 0, len(r.store))
	for _, entity := range r.store {
		entities = append(entities, cloneEntity(entity))
	}
	return entities, nil
}

func (r *todoMemoryRepo) Update(_ context.Context, id int32, payload types.UpdateTodo) (*types.TodoEntity, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	entity, ok := r.store[id]
	if !ok {
		return nil, repoerr.NotFound(id)
	}

	if payload.Text != nil {
		entity.Text = *payload.Text
	}
	if payload.Completed != nil {
		entity.Completed = *payload.Completed
	}
	if payload.LabelIDs != nil {
		entity.Labels = r.resolveLabels(*payload.LabelIDs)
	}
	return cloneEntity(entity), nil
}

func (r *todoMemoryRepo) Delete(_ context.Context, id int32) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.store[id]; !ok {
		return repoerr.NotFound(id)
	}
	delete(r.store, id)
	return nil
}

// resolveLabels filters the snapshot down to the requested ids,
// keeping the input order and dropping ids with no matching label.
func (r *todoMemoryRepo) resolveLabels(ids []int32) []types.Label {
	resolved := make([]types.Label, 0, len(ids))
	for _, id := range ids {
		for _, l := range r.labels {
			if l.ID == id {
				resolved = append(resolved, l)
				break
			}
		}
	}
	return resolved
}

// cloneEntity hands callers their own copy so the store cannot be
// mutated from outside the lock.
func cloneEntity(entity *types.TodoEntity) *types.TodoEntity {
	clone := *entity
	clone.Labels = make([]types.Label, len(entity.Labels))
	copy(clone.Labels, entity.Labels)
	return &clone
}
