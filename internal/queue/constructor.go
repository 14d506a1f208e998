package queue

import (
	"github.com/contentflow/backlog-api/internal/repository"
)

type Queue struct {
	br repository.BacklogRepository
}

func NewQueue(br repository.BacklogRepository) *Queue {
	return &Queue{
		br: br,
	}
}

const TaskTypePublishItem = "publish:item"

type PublishItemPayload struct {
	ItemID string `json:"item_id"`
}
