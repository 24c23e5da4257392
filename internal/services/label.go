package services

import (
	"context"

	"github.com/yungbote/todolist-backend/internal/data/repos"
	"github.com/yungbote/todolist-backend/internal/platform/logger"
	"github.com/yungbote/todolist-backend/internal/types"
)

type LabelService interface {
	Create(ctx context.Context, name string) (*types.Label, error)
	All(ctx context.Context) ([]*types.Label, error)
	Delete(ctx context.Context, id int32) error
}

type labelService struct {
	log       *logger.Logger
	labelRepo repos.LabelRepo
}

func NewLabelService(baseLog *logger.Logger, labelRepo repos.LabelRepo) LabelService {
	serviceLog := baseLog.With("service", "LabelService")
	return &labelService{log: serviceLog, labelRepo: labelRepo}
}

func (s *labelService) Create(ctx context.Context, name string) (*types.Label, error) {
	created, err := s.labelRepo.Create(ctx, name)
	if err != nil {
		s.log.Warn("failed to create label", "error", err)
		return nil, err
	}
	s.log.Debug("created label", "label_id", created.ID)
	return created, nil
}

func (s *labelService) All(ctx context.Context) ([]*types.Label, error) {
	return s.labelRepo.All(ctx)
}

func (s *labelService) Delete(ctx context.Context, id int32) error {
	if err := s.labelRepo.Delete(ctx, id); err != nil {
		s.log.Warn("failed to delete label", "label_id", id, "error", err)
		return err
	}
	return nil
}
