package queue

import (
	"context"
	"testing"

	"github.com/contentflow/backlog-api/internal/models"
	"github.com/contentflow/backlog-api/internal/repository"
	"github.com/hibiken/asynq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubRepo struct {
	repository.BacklogRepository
	statuses map[string]string
}

func (s *stubRepo) UpdateStatusIfCurrent(ctx context.Context, id, from, to string) (bool, error) {
	current, ok := s.statuses[id]
	if !ok || current != from {
		return false, nil
	}
	s.statuses[id] = to
	return true, nil
}

func TestHandlePublishItemTask(t *testing.T) {
	repo := &stubRepo{statuses: map[string]string{"item-1": models.StatusApproved}}
	q := NewQueue(repo)

	task := asynq.NewTask(TaskTypePublishItem, []byte(`{"item_id": "item-1"}`))
	err := q.HandlePublishItemTask(context.Background(), task)
	require.NoError(t, err)

	assert.Equal(t, models.StatusPosted, repo.statuses["item-1"])
}

func TestHandlePublishItemTask_BadPayload(t *testing.T) {
	q := NewQueue(&stubRepo{statuses: map[string]string{}})

	task := asynq.NewTask(TaskTypePublishItem, []byte(`not json`))
	err := q.HandlePublishItemTask(context.Background(), task)
	assert.Error(t, err)
}

func TestPublishItem_SkipsWhenNotApproved(t *testing.T) {
	repo := &stubRepo{statuses: map[string]string{
		"drafting-item": models.StatusDrafting,
		"posted-item":   models.StatusPosted,
	}}
	q := NewQueue(repo)

	require.NoError(t, q.PublishItem(context.Background(), "drafting-item"))
	require.NoError(t, q.PublishItem(context.Background(), "posted-item"))
	require.NoError(t, q.PublishItem(context.Background(), "missing-item"))

	assert.Equal(t, models.StatusDrafting, repo.statuses["drafting-item"])
	assert.Equal(t, models.StatusPosted, repo.statuses["posted-item"])
}
