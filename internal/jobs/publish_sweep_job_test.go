package job

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/contentflow/backlog-api/internal/models"
	"github.com/contentflow/backlog-api/internal/queue"
	"github.com/contentflow/backlog-api/internal/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubRepo struct {
	repository.BacklogRepository
	due []*models.BacklogItem
	err error
}

func (s *stubRepo) ListDueForPublish(ctx context.Context, until time.Time) ([]*models.BacklogItem, error) {
	return s.due, s.err
}

func timePtr(t time.Time) *time.Time { return &t }

func TestSweep_EnqueuesDueItems(t *testing.T) {
	pastDue := timePtr(time.Now().Add(-10 * time.Minute))
	upcoming := timePtr(time.Now().Add(2 * time.Minute))

	repo := &stubRepo{due: []*models.BacklogItem{
		{ID: "late", Status: models.StatusApproved, PlannedDate: pastDue},
		{ID: "soon", Status: models.StatusApproved, PlannedDate: upcoming},
		{ID: "no-date", Status: models.StatusApproved},
	}}

	var payloads []queue.PublishItemPayload
	var delays []time.Duration
	j := &PublishSweepJob{
		br: repo,
		enqueue: func(payload queue.PublishItemPayload, delay time.Duration) error {
			payloads = append(payloads, payload)
			delays = append(delays, delay)
			return nil
		},
	}

	j.Sweep()

	require.Len(t, payloads, 2)
	assert.Equal(t, "late", payloads[0].ItemID)
	assert.Equal(t, time.Duration(0), delays[0], "overdue items are enqueued immediately")
	assert.Equal(t, "soon", payloads[1].ItemID)
	assert.True(t, delays[1] > 0 && delays[1] <= 2*time.Minute)
}

func TestSweep_ContinuesPastEnqueueErrors(t *testing.T) {
	repo := &stubRepo{due: []*models.BacklogItem{
		{ID: "first", Status: models.StatusApproved, PlannedDate: timePtr(time.Now())},
		{ID: "second", Status: models.StatusApproved, PlannedDate: timePtr(time.Now())},
	}}

	var attempted []string
	j := &PublishSweepJob{
		br: repo,
		enqueue: func(payload queue.PublishItemPayload, delay time.Duration) error {
			attempted = append(attempted, payload.ItemID)
			return errors.New("redis down")
		},
	}

	j.Sweep()

	assert.Equal(t, []string{"first", "second"}, attempted)
}

func TestSweep_RepositoryError(t *testing.T) {
	repo := &stubRepo{err: errors.New("db down")}

	called := false
	j := &PublishSweepJob{
		br: repo,
		enqueue: func(payload queue.PublishItemPayload, delay time.Duration) error {
			called = true
			return nil
		},
	}

	j.Sweep()
	assert.False(t, called)
}
