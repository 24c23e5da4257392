package label

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/yungbote/todolist-backend/internal/data/repos/repoerr"
	"github.com/yungbote/todolist-backend/internal/platform/logger"
	"github.com/yungbote/todolist-backend/internal/types"
)

type LabelRepo interface {
	Create(ctx context.Context, name string) (*types.Label, error)
	All(ctx context.Context) ([]*types.Label, error)
	Delete(ctx context.Context, id int32) error
}

type labelRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewLabelRepo(db *gorm.DB, baseLog *logger.Logger) LabelRepo {
	repoLog := baseLog.With("repo", "LabelRepo")
	return &labelRepo{db: db, log: repoLog}
}

// Create relies on the unique index on labels.name; a violation is the
// single source of Duplicate, so concurrent creates of the same name
// cannot both succeed.
func (r *labelRepo) Create(ctx context.Context, name string) (*types.Label, error) {
	label := types.Label{Name: name}
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Create(&label).Error
	})
	if err == nil {
		return &label, nil
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		var existing types.Label
		if lookupErr := r.db.WithContext(ctx).
			Where("name = ?", name).
			First(&existing).Error; lookupErr != nil {
			return nil, repoerr.Unexpected(err)
		}
		return nil, repoerr.Duplicate(existing.ID)
	}
	return nil, repoerr.Unexpected(err)
}

func (r *labelRepo) All(ctx context.Context) ([]*types.Label, error) {
	labels := make([]*types.Label, 0)
	if err := r.db.WithContext(ctx).
		Order("id ASC").
		Find(&labels).Error; err != nil {
		return nil, repoerr.Unexpected(err)
	}
	return labels, nil
}

func (r *labelRepo) Delete(ctx context.Context, id int32) error {
	res := r.db.WithContext(ctx).Delete(&types.Label{}, id)
	if res.Error != nil {
		return repoerr.Unexpected(res.Error)
	}
	if res.RowsAffected == 0 {
		return repoerr.NotFound(id)
	}
	return nil
}
