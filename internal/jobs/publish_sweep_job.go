package job

import (
	"context"
	"log/slog"
	"time"

	"github.com/contentflow/backlog-api/internal/queue"
	"github.com/contentflow/backlog-api/internal/repository"
	"github.com/hibiken/asynq"
)

// SweepWindow bounds how far ahead a single sweep looks when enqueueing
// publish tasks. Matches the cron cadence in main so no due item is missed.
const SweepWindow = 5 * time.Minute

type PublishSweepJob struct {
	br      repository.BacklogRepository
	enqueue func(payload queue.PublishItemPayload, delay time.Duration) error
}

func NewPublishSweepJob(br repository.BacklogRepository, client *asynq.Client) *PublishSweepJob {
	return &PublishSweepJob{
		br: br,
		enqueue: func(payload queue.PublishItemPayload, delay time.Duration) error {
			return queue.EnqueuePublish(client, payload, delay)
		},
	}
}

// Sweep enqueues a delayed publish task for every approved item whose
// planned date falls inside the upcoming window. The worker's status guard
// absorbs duplicates from overlapping sweeps.
func (j *PublishSweepJob) Sweep() {
	ctx := context.Background()

	until := time.Now().Add(SweepWindow)

	items, err := j.br.ListDueForPublish(ctx, until)
	if err != nil {
		slog.Info(err.Error())
		return
	}

	for _, item := range items {
		if item.PlannedDate == nil {
			continue
		}

		delay := time.Until(*item.PlannedDate)
		if delay < 0 {
			delay = 0
		}

		err := j.enqueue(queue.PublishItemPayload{ItemID: item.ID}, delay)
		if err != nil {
			slog.Error("enqueueing publish task", "id", item.ID, "error", err)
		}
	}
}
