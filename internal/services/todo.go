package services

import (
	"context"

	"github.com/yungbote/todolist-backend/internal/data/repos"
	"github.com/yungbote/todolist-backend/internal/platform/logger"
	"github.com/yungbote/todolist-backend/internal/types"
)

type TodoService interface {
	Create(ctx context.Context, payload types.CreateTodo) (*types.TodoEntity, error)
	Find(ctx context.Context, id int32) (*types.TodoEntity, error)
	All(ctx context.Context) ([]*types.TodoEntity, error)
	Update(ctx context.Context, id int32, payload types.UpdateTodo) (*types.TodoEntity, error)
	Delete(ctx context.Context, id int32) error
}

type todoService struct {
	log      *logger.Logger
	todoRepo repos.TodoRepo
}

func NewTodoService(baseLog *logger.Logger, todoRepo repos.TodoRepo) TodoService {
	serviceLog := baseLog.With("service", "TodoService")
	return &todoService{log: serviceLog, todoRepo: todoRepo}
}

func (s *todoService) Create(ctx context.Context, payload types.CreateTodo) (*types.TodoEntity, error) {
	created, err := s.todoRepo.Create(ctx, payload)
	if err != nil {
		s.log.Warn("failed to create todo", "error", err)
		return nil, err
	}
	s.log.Debug("created todo", "todo_id", created.ID, "labels", len(created.Labels))
	return created, nil
}

func (s *todoService) Find(ctx context.Context, id int32) (*types.TodoEntity, error) {
	return s.todoRepo.Find(ctx, id)
}

func (s *todoService) All(ctx context.Context) ([]*types.TodoEntity, error) {
	return s.todoRepo.All(ctx)
}

func (s *todoService) Update(ctx context.Context, id int32, payload types.UpdateTodo) (*types.TodoEntity, error) {
	updated, err := s.todoRepo.Update(ctx, id, payload)
	if err != nil {
		s.log.Warn("failed to update todo", "todo_id", id, "error", err)
		return nil, err
	}
	return updated, nil
}

func (s *todoService) Delete(ctx context.Context, id int32) error {
	if err := s.todoRepo.Delete(ctx, id); err != nil {
		s.log.Warn("failed to delete todo", "todo_id", id, "error", err)
		return err
	}
	return nil
}
