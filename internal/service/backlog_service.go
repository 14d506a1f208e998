package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/contentflow/backlog-api/internal/models"
	"github.com/contentflow/backlog-api/internal/repository"
	"github.com/contentflow/backlog-api/internal/transfer"
	gonanoid "github.com/matoous/go-nanoid/v2"
)

var ErrBacklogItemNotFound = errors.New("backlog item not found")

type BacklogService interface {
	Create(ctx context.Context, bc *transfer.BacklogCreation) (*models.BacklogItem, error)
	List(ctx context.Context, filter transfer.BacklogFilter) ([]*models.BacklogItem, error)
	GetInfo(ctx context.Context, id string) (*models.BacklogItem, error)
	Update(ctx context.Context, id string, bu *transfer.BacklogUpdate) (*models.BacklogItem, error)
}

type backlogService struct {
	br repository.BacklogRepository
}

func NewBacklogService(br repository.BacklogRepository) BacklogService {
	return &backlogService{
		br: br,
	}
}

func (s *backlogService) Create(ctx context.Context, bc *transfer.BacklogCreation) (*models.BacklogItem, error) {
	if bc == nil {
		err := errors.New("backlog creation data is nil")
		slog.Error(err.Error())
		return nil, err
	}
	if bc.Topic == "" {
		err := errors.New("topic cannot be empty")
		slog.Info(err.Error())
		return nil, err
	}

	status := bc.Status
	if status == "" {
		status = models.StatusIdea
	}
	if !models.IsValidStatus(status) {
		return nil, fmt.Errorf("invalid status: %s", status)
	}

	postType := bc.PostType
	if postType == "" {
		postType = models.PostTypeIgCarousel
	}
	if !models.IsValidPostType(postType) {
		return nil, fmt.Errorf("invalid post type: %s", postType)
	}

	audience := bc.TargetAudience
	if audience == "" {
		audience = models.AudienceYouth
	}
	if !models.IsValidAudience(audience) {
		return nil, fmt.Errorf("invalid target audience: %s", audience)
	}

	id, err := gonanoid.New()
	if err != nil {
		slog.Error(err.Error())
		return nil, err
	}

	item := &models.BacklogItem{
		ID:             id,
		Status:         status,
		Topic:          bc.Topic,
		PostType:       postType,
		TargetAudience: audience,
		MainMessage:    bc.MainMessage,
		Objective:      bc.Objective,
		Notes:          bc.Notes,
		SourceInsights: jsonText(bc.SourceInsights, "[]"),
		Structure:      jsonText(bc.Structure, "{}"),
		VisualPrompts:  jsonText(bc.VisualPrompts, "[]"),
		PlannedDate:    bc.PlannedDate,
	}

	if err := s.br.Create(ctx, item); err != nil {
		return nil, err
	}

	return item, nil
}

func (s *backlogService) List(ctx context.Context, filter transfer.BacklogFilter) ([]*models.BacklogItem, error) {
	return s.br.List(ctx, filter.Status, filter.PostType)
}

func (s *backlogService) GetInfo(ctx context.Context, id string) (*models.BacklogItem, error) {
	item, isExist, err := s.br.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if !isExist {
		slog.Info("backlog item not found", "id", id)
		return nil, ErrBacklogItemNotFound
	}

	return item, nil
}

func (s *backlogService) Update(ctx context.Context, id string, bu *transfer.BacklogUpdate) (*models.BacklogItem, error) {
	if bu == nil {
		err := errors.New("backlog update data is nil")
		slog.Error(err.Error())
		return nil, err
	}

	fields := make(map[string]interface{})

	if bu.Status != nil {
		if !models.IsValidStatus(*bu.Status) {
			return nil, fmt.Errorf("invalid status: %s", *bu.Status)
		}
		fields["status"] = *bu.Status
	}
	if bu.Topic != nil {
		if *bu.Topic == "" {
			return nil, errors.New("topic cannot be empty")
		}
		fields["topic"] = *bu.Topic
	}
	if bu.PostType != nil {
		if !models.IsValidPostType(*bu.PostType) {
			return nil, fmt.Errorf("invalid post type: %s", *bu.PostType)
		}
		fields["post_type"] = *bu.PostType
	}
	if bu.TargetAudience != nil {
		if !models.IsValidAudience(*bu.TargetAudience) {
			return nil, fmt.Errorf("invalid target audience: %s", *bu.TargetAudience)
		}
		fields["target_audience"] = *bu.TargetAudience
	}
	if bu.MainMessage != nil {
		fields["main_message"] = *bu.MainMessage
	}
	if bu.Objective != nil {
		fields["objective"] = *bu.Objective
	}
	if bu.Notes != nil {
		fields["notes"] = *bu.Notes
	}
	if bu.SourceInsights != nil {
		fields["source_insights"] = jsonText(bu.SourceInsights, "[]")
	}
	if bu.Structure != nil {
		fields["structure"] = jsonText(bu.Structure, "{}")
	}
	if bu.VisualPrompts != nil {
		fields["visual_prompts"] = jsonText(bu.VisualPrompts, "[]")
	}
	if bu.PlannedDate != nil {
		fields["planned_date"] = *bu.PlannedDate
	}

	item, isExist, err := s.br.Update(ctx, id, fields)
	if err != nil {
		return nil, err
	}

	if !isExist {
		slog.Info("backlog item not found", "id", id)
		return nil, ErrBacklogItemNotFound
	}

	return item, nil
}
