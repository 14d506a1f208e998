package transfer

import "github.com/contentflow/backlog-api/internal/models"

type ScheduleRequest struct {
	StartAt         string `json:"startAt"`
	IntervalMinutes int    `json:"intervalMinutes"`
}

type GenerateRequest struct {
	Topics   []string         `json:"topics"`
	Context  string           `json:"context"`
	Schedule *ScheduleRequest `json:"schedule"`
}

type ScheduleInfo struct {
	StartAt         string `json:"startAt"`
	IntervalMinutes int    `json:"intervalMinutes"`
}

// FlowResponse is the envelope the orchestration endpoint always returns,
// success or failure. Callers must inspect Status, not the HTTP code.
type FlowResponse struct {
	Status            string                `json:"status"`
	Message           string                `json:"message"`
	CreatedItemsCount int                   `json:"createdItemsCount"`
	Items             []*models.BacklogItem `json:"items"`
	Schedule          *ScheduleInfo         `json:"schedule,omitempty"`
	Error             string                `json:"error,omitempty"`
}
