package queue

import (
	"context"
	"encoding/json"
	"log/slog"

	"github.com/contentflow/backlog-api/internal/models"
	"github.com/hibiken/asynq"
)

func (j *Queue) HandlePublishItemTask(ctx context.Context, task *asynq.Task) error {
	var payload PublishItemPayload
	if err := json.Unmarshal(task.Payload(), &payload); err != nil {
		return err
	}

	return j.PublishItem(ctx, payload.ItemID)
}

// PublishItem flips an approved item to posted. The status guard makes
// duplicate tasks for the same item harmless: only the first one lands.
func (j *Queue) PublishItem(ctx context.Context, itemID string) error {
	updated, err := j.br.UpdateStatusIfCurrent(ctx, itemID, models.StatusApproved, models.StatusPosted)
	if err != nil {
		slog.Error("publishing backlog item", "id", itemID, "error", err)
		return err
	}

	if !updated {
		slog.Info("skipping publish, item no longer approved", "id", itemID)
		return nil
	}

	slog.Info("backlog item published", "id", itemID)
	return nil
}
