package service

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/contentflow/backlog-api/internal/models"
)

// fakeBacklogRepo is an in-memory stand-in for the Postgres repository.
// Creation timestamps advance one second per insert so list ordering is
// deterministic.
type fakeBacklogRepo struct {
	mu         sync.Mutex
	items      map[string]*models.BacklogItem
	clock      time.Time
	failCreate error
	failUpdate error
}

func newFakeBacklogRepo() *fakeBacklogRepo {
	return &fakeBacklogRepo{
		items: make(map[string]*models.BacklogItem),
		clock: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
	}
}

func (f *fakeBacklogRepo) tick() time.Time {
	f.clock = f.clock.Add(time.Second)
	return f.clock
}

func copyItem(item *models.BacklogItem) *models.BacklogItem {
	clone := *item
	if item.PlannedDate != nil {
		planned := *item.PlannedDate
		clone.PlannedDate = &planned
	}
	return &clone
}

func (f *fakeBacklogRepo) Create(ctx context.Context, item *models.BacklogItem) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.failCreate != nil {
		return f.failCreate
	}

	now := f.tick()
	item.CreatedAt = now
	item.UpdatedAt = now
	f.items[item.ID] = copyItem(item)
	return nil
}

func (f *fakeBacklogRepo) List(ctx context.Context, status, postType string) ([]*models.BacklogItem, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	items := make([]*models.BacklogItem, 0)
	for _, item := range f.items {
		if status != "" && item.Status != status {
			continue
		}
		if postType != "" && item.PostType != postType {
			continue
		}
		items = append(items, copyItem(item))
	}

	sort.Slice(items, func(i, j int) bool {
		return items[i].CreatedAt.After(items[j].CreatedAt)
	})
	return items, nil
}

func (f *fakeBacklogRepo) GetByID(ctx context.Context, id string) (*models.BacklogItem, bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	item, ok := f.items[id]
	if !ok {
		return nil, false, nil
	}
	return copyItem(item), true, nil
}

func (f *fakeBacklogRepo) Update(ctx context.Context, id string, fields map[string]interface{}) (*models.BacklogItem, bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.failUpdate != nil {
		return nil, false, f.failUpdate
	}

	item, ok := f.items[id]
	if !ok {
		return nil, false, nil
	}

	for col, value := range fields {
		switch col {
		case "status":
			item.Status = value.(string)
		case "topic":
			item.Topic = value.(string)
		case "post_type":
			item.PostType = value.(string)
		case "target_audience":
			item.TargetAudience = value.(string)
		case "main_message":
			item.MainMessage = value.(string)
		case "objective":
			item.Objective = value.(string)
		case "notes":
			item.Notes = value.(string)
		case "source_insights":
			item.SourceInsights = value.(string)
		case "structure":
			item.Structure = value.(string)
		case "visual_prompts":
			item.VisualPrompts = value.(string)
		case "planned_date":
			planned := value.(time.Time)
			item.PlannedDate = &planned
		}
	}
	item.UpdatedAt = f.tick()

	return copyItem(item), true, nil
}

func (f *fakeBacklogRepo) ListDueForPublish(ctx context.Context, until time.Time) ([]*models.BacklogItem, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	items := make([]*models.BacklogItem, 0)
	for _, item := range f.items {
		if item.Status != models.StatusApproved || item.PlannedDate == nil {
			continue
		}
		if item.PlannedDate.After(until) {
			continue
		}
		items = append(items, copyItem(item))
	}

	sort.Slice(items, func(i, j int) bool {
		return items[i].PlannedDate.Before(*items[j].PlannedDate)
	})
	return items, nil
}

func (f *fakeBacklogRepo) UpdateStatusIfCurrent(ctx context.Context, id, from, to string) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	item, ok := f.items[id]
	if !ok || item.Status != from {
		return false, nil
	}
	item.Status = to
	item.UpdatedAt = f.tick()
	return true, nil
}
