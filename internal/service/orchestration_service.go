package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/contentflow/backlog-api/internal/agent"
	"github.com/contentflow/backlog-api/internal/models"
	"github.com/contentflow/backlog-api/internal/transfer"
)

const (
	// Substituted when the caller sends no context string.
	defaultContext = "young audience, friendly and practical tone"

	// Spacing between successive planned publish times when the caller
	// does not choose one.
	defaultIntervalMinutes = 120

	agentNotRunningMessage = "Generation agent service is not running. Please start it and try again."
)

type AgentClient interface {
	RunFlow(ctx context.Context, topics []string, contextText string) ([]agent.Result, error)
}

type OrchestrationService interface {
	GenerateWeeklyContent(ctx context.Context, req *transfer.GenerateRequest) *transfer.FlowResponse
}

type orchestrationService struct {
	agent   AgentClient
	backlog BacklogService
	now     func() time.Time
}

func NewOrchestrationService(agentClient AgentClient, backlog BacklogService) OrchestrationService {
	return &orchestrationService{
		agent:   agentClient,
		backlog: backlog,
		now:     time.Now,
	}
}

// GenerateWeeklyContent calls the generation agent once and persists every
// returned draft as a backlog item with a computed publish schedule. It
// never returns a Go error: every failure is folded into the response
// envelope and callers must inspect Status.
func (s *orchestrationService) GenerateWeeklyContent(ctx context.Context, req *transfer.GenerateRequest) *transfer.FlowResponse {
	slog.Info("starting generation flow", "topics", strings.Join(req.Topics, ", "))

	contextText := req.Context
	if contextText == "" {
		contextText = defaultContext
	}

	anchor, interval := s.resolveSchedule(req.Schedule)

	results, err := s.agent.RunFlow(ctx, req.Topics, contextText)
	if err != nil {
		slog.Error("calling generation agent", "error", err)
		return errorResponse(err)
	}

	slog.Info("received results from agent", "count", len(results))

	items := make([]*models.BacklogItem, 0, len(results))
	for i, result := range results {
		item, err := s.persistResult(ctx, req.Context, result, anchor, i, interval)
		if err != nil {
			slog.Error("persisting generated item", "index", i, "error", err)
			return errorResponse(err)
		}
		items = append(items, item)
		slog.Info("created backlog item", "id", item.ID)
	}

	return &transfer.FlowResponse{
		Status:            "success",
		Message:           fmt.Sprintf("Successfully generated %d content items", len(items)),
		CreatedItemsCount: len(items),
		Items:             items,
		Schedule: &transfer.ScheduleInfo{
			StartAt:         anchor.Format(time.RFC3339),
			IntervalMinutes: interval,
		},
	}
}

// persistResult writes one agent result as a backlog item and then assigns
// its planned date with a follow-up partial update. The two store calls are
// deliberately not atomic; a crash in between leaves an unscheduled item.
func (s *orchestrationService) persistResult(ctx context.Context, requestContext string, result agent.Result, anchor time.Time, index, intervalMinutes int) (*models.BacklogItem, error) {
	postType := result.PostType
	if postType == "" {
		postType = models.PostTypeIgCarousel
	}

	objective := result.Objective
	if objective == "" {
		objective = "Generated via content agent"
	}

	notes := "Generated from context: None"
	if requestContext != "" {
		notes = "Generated from context: " + requestContext
	}

	item, err := s.backlog.Create(ctx, &transfer.BacklogCreation{
		Status:         models.StatusReadyForReview,
		Topic:          result.Topic,
		PostType:       postType,
		TargetAudience: models.AudienceYouth,
		MainMessage:    result.MainMessage,
		Objective:      objective,
		Notes:          notes,
		SourceInsights: result.SourceInsights,
		Structure:      result.Structure,
		VisualPrompts:  result.VisualPrompts,
	})
	if err != nil {
		return nil, err
	}

	plannedDate := anchor.Add(time.Duration(index*intervalMinutes) * time.Minute)
	return s.backlog.Update(ctx, item.ID, &transfer.BacklogUpdate{
		PlannedDate: &plannedDate,
	})
}

// resolveSchedule picks the batch's anchor time and interval. A missing or
// unparseable startAt falls back to today at 06:00 local time.
func (s *orchestrationService) resolveSchedule(schedule *transfer.ScheduleRequest) (time.Time, int) {
	interval := defaultIntervalMinutes
	if schedule != nil && schedule.IntervalMinutes > 0 {
		interval = schedule.IntervalMinutes
	}

	if schedule != nil && schedule.StartAt != "" {
		if anchor, err := time.Parse(time.RFC3339, schedule.StartAt); err == nil {
			return anchor, interval
		}
		slog.Info("unparseable startAt, using default anchor", "startAt", schedule.StartAt)
	}

	now := s.now()
	anchor := time.Date(now.Year(), now.Month(), now.Day(), 6, 0, 0, 0, now.Location())
	return anchor, interval
}

func errorResponse(err error) *transfer.FlowResponse {
	resp := &transfer.FlowResponse{
		Status:  "error",
		Message: err.Error(),
		Error:   err.Error(),
	}
	if errors.Is(err, agent.ErrAgentUnavailable) {
		resp.Error = agentNotRunningMessage
	}
	return resp
}
