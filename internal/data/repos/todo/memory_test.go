package todo

import (
	"context"
	"errors"
	"reflect"
	"sync"
	"testing"

	"github.com/yungbote/todolist-backend/internal/data/repos/repoerr"
	"github.com/yungbote/todolist-backend/internal/types"
)

func boolPtr(v bool) *bool { return &v }

func requireNotFound(t *testing.T, err error, id int32) {
	t.Helper()
	var nf *repoerr.NotFoundError
	if !errors.As(err, &nf) {
		t.Fatalf("expected NotFound, got %v", err)
	}
	if nf.ID != id {
		t.Fatalf("expected NotFound for id %d, got %d", id, nf.ID)
	}
}

func TestTodoMemoryRepoCRUDScenario(t *testing.T) {
	labels := []types.Label{{ID: 1, Name: "work"}}
	repo := NewTodoMemoryRepo(labels)
	ctx := context.Background()

	created, err := repo.Create(ctx, types.CreateTodo{Text: "buy milk", LabelIDs: []int32{1}})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	want := &types.TodoEntity{ID: 1, Text: "buy milk", Completed: false, Labels: []types.Label{{ID: 1, Name: "work"}}}
	if !reflect.DeepEqual(created, want) {
		t.Fatalf("Create: unexpected entity: %+v", created)
	}

	found, err := repo.Find(ctx, created.ID)
	if err != nil {
		t.Fatalf("Find: %v", err)
	}
	if !reflect.DeepEqual(found, created) {
		t.Fatalf("Find: got %+v, want %+v", found, created)
	}

	all, err := repo.All(ctx)
	if err != nil {
		t.Fatalf("All: %v", err)
	}
	if len(all) != 1 || !reflect.DeepEqual(all[0], created) {
		t.Fatalf("All: unexpected result: %+v", all)
	}

	updated, err := repo.Update(ctx, created.ID, types.UpdateTodo{Completed: boolPtr(true)})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if !updated.Completed {
		t.Fatalf("Update: completed not applied")
	}
	if updated.Text != created.Text {
		t.Fatalf("Update: text changed: %q", updated.Text)
	}
	if !reflect.DeepEqual(updated.Labels, created.Labels) {
		t.Fatalf("Update: labels changed: %+v", updated.Labels)
	}

	if err := repo.Delete(ctx, created.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	_, err = repo.Find(ctx, created.ID)
	requireNotFound(t, err, created.ID)
}

func TestTodoMemoryRepoPartialUpdatePreservesFields(t *testing.T) {
	repo := NewTodoMemoryRepo([]types.Label{{ID: 1, Name: "work"}})
	ctx := context.Background()

	created, err := repo.Create(ctx, types.CreateTodo{Text: "original", LabelIDs: []int32{1}})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	afterText, err := repo.Update(ctx, created.ID, types.UpdateTodo{Text: str("changed")})
	if err != nil {
		t.Fatalf("Update text: %v", err)
	}
	if afterText.Text != "changed" || afterText.Completed != created.Completed {
		t.Fatalf("text-only update altered completed: %+v", afterText)
	}
	if !reflect.DeepEqual(afterText.Labels, created.Labels) {
		t.Fatalf("text-only update altered labels: %+v", afterText.Labels)
	}

	afterDone, err := repo.Update(ctx, created.ID, types.UpdateTodo{Completed: boolPtr(true)})
	if err != nil {
		t.Fatalf("Update completed: %v", err)
	}
	if afterDone.Text != "changed" || !afterDone.Completed {
		t.Fatalf("completed-only update altered text: %+v", afterDone)
	}
}

func TestTodoMemoryRepoClearsLabelsWithEmptySlice(t *testing.T) {
	repo := NewTodoMemoryRepo([]types.Label{{ID: 1, Name: "work"}})
	ctx := context.Background()

	created, err := repo.Create(ctx, types.CreateTodo{Text: "todo", LabelIDs: []int32{1}})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if len(created.Labels) != 1 {
		t.Fatalf("expected one label, got %+v", created.Labels)
	}

	// Omitting label_ids keeps the current set.
	kept, err := repo.Update(ctx, created.ID, types.UpdateTodo{Completed: boolPtr(true)})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if len(kept.Labels) != 1 {
		t.Fatalf("omitted label_ids cleared labels: %+v", kept.Labels)
	}

	// An explicit empty set clears every label, and stays empty when repeated.
	empty := []int32{}
	for i := 0; i < 2; i++ {
		cleared, err := repo.Update(ctx, created.ID, types.UpdateTodo{LabelIDs: &empty})
		if err != nil {
			t.Fatalf("Update clear labels: %v", err)
		}
		if len(cleared.Labels) != 0 {
			t.Fatalf("expected no labels, got %+v", cleared.Labels)
		}
	}
}

func TestTodoMemoryRepoResolvesLabelsInInputOrder(t *testing.T) {
	repo := NewTodoMemoryRepo([]types.Label{{ID: 1, Name: "work"}, {ID: 2, Name: "home"}})
	ctx := context.Background()

	created, err := repo.Create(ctx, types.CreateTodo{Text: "todo", LabelIDs: []int32{2, 99, 1}})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	want := []types.Label{{ID: 2, Name: "home"}, {ID: 1, Name: "work"}}
	if !reflect.DeepEqual(created.Labels, want) {
		t.Fatalf("unexpected resolved labels: %+v", created.Labels)
	}
}

func TestTodoMemoryRepoDeleteMissing(t *testing.T) {
	repo := NewTodoMemoryRepo(nil)
	err := repo.Delete(context.Background(), 42)
	requireNotFound(t, err, 42)
}

func TestTodoMemoryRepoDoesNotReuseIDs(t *testing.T) {
	repo := NewTodoMemoryRepo(nil)
	ctx := context.Background()

	first, err := repo.Create(ctx, types.CreateTodo{Text: "first"})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	second, err := repo.Create(ctx, types.CreateTodo{Text: "second"})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if err := repo.Delete(ctx, second.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}

	third, err := repo.Create(ctx, types.CreateTodo{Text: "third"})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if third.ID == first.ID || third.ID == second.ID {
		t.Fatalf("id %d was reused", third.ID)
	}
	if third.ID <= second.ID {
		t.Fatalf("ids must only move forward: got %d after %d", third.ID, second.ID)
	}
}

func TestTodoMemoryRepoReturnsCopies(t *testing.T) {
	repo := NewTodoMemoryRepo([]types.Label{{ID: 1, Name: "work"}})
	ctx := context.Background()

	created, err := repo.Create(ctx, types.CreateTodo{Text: "todo", LabelIDs: []int32{1}})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	created.Text = "mutated"
	created.Labels[0].Name = "mutated"

	found, err := repo.Find(ctx, created.ID)
	if err != nil {
		t.Fatalf("Find: %v", err)
	}
	if found.Text != "todo" || found.Labels[0].Name != "work" {
		t.Fatalf("store was mutated through a returned entity: %+v", found)
	}
}

func TestTodoMemoryRepoConcurrentCreates(t *testing.T) {
	repo := NewTodoMemoryRepo(nil)
	ctx := context.Background()

	const workers = 16
	const perWorker = 8

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < perWorker; i++ {
				if _, err := repo.Create(ctx, types.CreateTodo{Text: "concurrent"}); err != nil {
					t.Errorf("Create: %v", err)
				}
			}
		}()
	}
	wg.Wait()

	all, err := repo.All(ctx)
	if err != nil {
		t.Fatalf("All: %v", err)
	}
	if len(all) != workers*perWorker {
		t.Fatalf("expected %d todos, got %d", workers*perWorker, len(all))
	}
	seen := make(map[int32]bool, len(all))
	for _, entity := range all {
		if seen[entity.ID] {
			t.Fatalf("duplicate id %d", entity.ID)
		}
		seen[entity.ID] = true
	}
}
