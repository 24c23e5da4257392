package label

import (
	"context"
	"errors"
	"testing"

	"github.com/yungbote/todolist-backend/internal/data/repos/repoerr"
	"github.com/yungbote/todolist-backend/internal/data/repos/testutil"
)

func TestLabelRepoCRUDScenario(t *testing.T) {
	db := testutil.DB(t)
	tx := testutil.Tx(t, db)
	repo := NewLabelRepo(tx, testutil.Logger(t))
	ctx := context.Background()

	created, err := repo.Create(ctx, "test_label")
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if created.Name != "test_label" {
		t.Fatalf("Create: unexpected label: %+v", created)
	}

	all, err := repo.All(ctx)
	if err != nil {
		t.Fatalf("All: %v", err)
	}
	found := false
	for i := 1; i < len(all); i++ {
		if all[i-1].ID >= all[i].ID {
			t.Fatalf("All: ids not ascending: %d then %d", all[i-1].ID, all[i].ID)
		}
	}
	for _, l := range all {
		if l.ID == created.ID {
			found = true
		}
	}
	if !found {
		t.Fatalf("All: created label missing from %+v", all)
	}

	if err := repo.Delete(ctx, created.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	err = repo.Delete(ctx, created.ID)
	var nf *repoerr.NotFoundError
	if !errors.As(err, &nf) || nf.ID != created.ID {
		t.Fatalf("Delete missing: expected NotFound(%d), got %v", created.ID, err)
	}
}

func TestLabelRepoRejectsDuplicateName(t *testing.T) {
	db := testutil.DB(t)
	tx := testutil.Tx(t, db)
	repo := NewLabelRepo(tx, testutil.Logger(t))
	ctx := context.Background()

	first, err := repo.Create(ctx, "dup_label")
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	_, err = repo.Create(ctx, "dup_label")
	var dup *repoerr.DuplicateError
	if !errors.As(err, &dup) {
		t.Fatalf("expected Duplicate, got %v", err)
	}
	if dup.ID != first.ID {
		t.Fatalf("Duplicate should carry the existing id %d, got %d", first.ID, dup.ID)
	}

	// The failed insert must not poison the connection for later work.
	if _, err := repo.All(ctx); err != nil {
		t.Fatalf("All after duplicate: %v", err)
	}
}
