package todo

import (
	"context"

	"gorm.io/gorm"

	"github.com/yungbote/todolist-backend/internal/data/repos/repoerr"
	"github.com/yungbote/todolist-backend/internal/platform/logger"
	"github.com/yungbote/todolist-backend/internal/types"
)

type TodoRepo interface {
	Create(ctx context.Context, payload types.CreateTodo) (*types.TodoEntity, error)
	Find(ctx context.Context, id int32) (*types.TodoEntity, error)
	All(ctx context.Context) ([]*types.TodoEntity, error)
	Update(ctx context.Context, id int32, payload types.UpdateTodo) (*types.TodoEntity, error)
	Delete(ctx context.Context, id int32) error
}

const findSQL = `
SELECT todos.id, todos.text, todos.completed,
       labels.id AS label_id, labels.name AS label_name
FROM todos
LEFT OUTER JOIN todo_labels ON todos.id = todo_labels.todo_id
LEFT OUTER JOIN labels ON todo_labels.label_id = labels.id
WHERE todos.id = ?
ORDER BY labels.id ASC;
`

const allSQL = `
SELECT todos.id, todos.text, todos.completed,
       labels.id AS label_id, labels.name AS label_name
FROM todos
LEFT OUTER JOIN todo_labels ON todos.id = todo_labels.todo_id
LEFT OUTER JOIN labels ON todo_labels.label_id = labels.id
ORDER BY todos.id DESC, labels.id ASC;
`

type todoRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewTodoRepo(db *gorm.DB, baseLog *logger.Logger) TodoRepo {
	repoLog := baseLog.With("repo", "TodoRepo")
	return &todoRepo{db: db, log: repoLog}
}

func (r *todoRepo) Create(ctx context.Context, payload types.CreateTodo) (*types.TodoEntity, error) {
	var created *types.TodoEntity
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		row := types.Todo{Text: payload.Text, Completed: false}
		if err := tx.Create(&row).Error; err != nil {
			return err
		}
		if err := replaceLabels(tx, row.ID, payload.LabelIDs); err != nil {
			return err
		}
		entity, err := findOne(tx, row.ID)
		if err != nil {
			return err
		}
		created = entity
		return nil
	})
	if err != nil {
		return nil, repoerr.Wrap(err)
	}
	return created, nil
}

func (r *todoRepo) Find(ctx context.Context, id int32) (*types.TodoEntity, error) {
	entity, err := findOne(r.db.WithContext(ctx), id)
	if err != nil {
		return nil, repoerr.Wrap(err)
	}
	return entity, nil
}

func (r *todoRepo) All(ctx context.Context) ([]*types.TodoEntity, error) {
	var rows []TodoRow
	if err := r.db.WithContext(ctx).Raw(allSQL).Scan(&rows).Error; err != nil {
		return nil, repoerr.Unexpected(err)
	}
	return FoldRows(rows), nil
}

func (r *todoRepo) Update(ctx context.Context, id int32, payload types.UpdateTodo) (*types.TodoEntity, error) {
	var updated *types.TodoEntity
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		current, err := findOne(tx, id)
		if err != nil {
			return err
		}

		text := current.Text
		if payload.Text != nil {
			text = *payload.Text
		}
		completed := current.Completed
		if payload.Completed != nil {
			completed = *payload.Completed
		}

		if err := tx.Model(&types.Todo{}).
			Where("id = ?", id).
			Updates(map[string]any{
				"text":      text,
				"completed": completed,
			}).Error; err != nil {
			return err
		}

		if payload.LabelIDs != nil {
			if err := replaceLabels(tx, id, *payload.LabelIDs); err != nil {
				return err
			}
		}

		entity, err := findOne(tx, id)
		if err != nil {
			return err
		}
		updated = entity
		return nil
	})
	if err != nil {
		return nil, repoerr.Wrap(err)
	}
	return updated, nil
}

func (r *todoRepo) Delete(ctx context.Context, id int32) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("todo_id = ?", id).Delete(&types.TodoLabel{}).Error; err != nil {
			return err
		}
		res := tx.Delete(&types.Todo{}, id)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return repoerr.NotFound(id)
		}
		return nil
	})
	return repoerr.Wrap(err)
}

// findOne runs the joined query through the given handle so callers
// inside a transaction observe their own writes.
func findOne(tx *gorm.DB, id int32) (*types.TodoEntity, error) {
	var rows []TodoRow
	if err := tx.Raw(findSQL, id).Scan(&rows).Error; err != nil {
		return nil, repoerr.Unexpected(err)
	}
	entities := FoldRows(rows)
	if len(entities) == 0 {
		return nil, repoerr.NotFound(id)
	}
	return entities[0], nil
}

// replaceLabels swaps the todo's label set for the resolved subset of
// labelIDs. Ids with no matching label are dropped, not rejected.
func replaceLabels(tx *gorm.DB, todoID int32, labelIDs []int32) error {
	if err := tx.Where("todo_id = ?", todoID).Delete(&types.TodoLabel{}).Error; err != nil {
		return err
	}
	if len(labelIDs) == 0 {
		return nil
	}

	var validIDs []int32
	if err := tx.Model(&types.Label{}).
		Where("id IN ?", labelIDs).
		Order("id ASC").
		Pluck("id", &validIDs).Error; err != nil {
		return err
	}
	if len(validIDs) == 0 {
		return nil
	}

	assocs := make([]types.TodoLabel, 0, len(validIDs))
	for _, labelID := range validIDs {
		assocs = append(assocs, types.TodoLabel{TodoID: todoID, LabelID: labelID})
	}
	return tx.Create(&assocs).Error
}
