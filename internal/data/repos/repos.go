package repos

import (
	"gorm.io/gorm"

	"github.com/yungbote/todolist-backend/internal/data/repos/label"
	"github.com/yungbote/todolist-backend/internal/data/repos/todo"
	"github.com/yungbote/todolist-backend/internal/platform/logger"
	"github.com/yungbote/todolist-backend/internal/types"
)

type TodoRepo = todo.TodoRepo
type LabelRepo = label.LabelRepo

func NewTodoRepo(db *gorm.DB, baseLog *logger.Logger) TodoRepo {
	return todo.NewTodoRepo(db, baseLog)
}

func NewLabelRepo(db *gorm.DB, baseLog *logger.Logger) LabelRepo {
	return label.NewLabelRepo(db, baseLog)
}

func NewTodoMemoryRepo(labels []types.Label) TodoRepo {
	return todo.NewTodoMemoryRepo(labels)
}

func NewLabelMemoryRepo(seed ...types.Label) LabelRepo {
	return label.NewLabelMemoryRepo(seed...)
}
