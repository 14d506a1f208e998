package transfer

import (
	"encoding/json"
	"time"
)

// BacklogCreation carries the fields a client may set when creating a
// backlog item. The three structured-document fields accept either a JSON
// string or a native object/array; they are flattened to text before the
// item reaches the store.
type BacklogCreation struct {
	Status         string          `json:"status"`
	Topic          string          `json:"topic"`
	PostType       string          `json:"postType"`
	TargetAudience string          `json:"targetAudience"`
	MainMessage    string          `json:"mainMessage"`
	Objective      string          `json:"objective"`
	Notes          string          `json:"notes"`
	SourceInsights json.RawMessage `json:"sourceInsights"`
	Structure      json.RawMessage `json:"structure"`
	VisualPrompts  json.RawMessage `json:"visualPrompts"`
	PlannedDate    *time.Time      `json:"plannedDate"`
}

// BacklogUpdate is a partial update. Nil fields are left untouched.
type BacklogUpdate struct {
	Status         *string         `json:"status"`
	Topic          *string         `json:"topic"`
	PostType       *string         `json:"postType"`
	TargetAudience *string         `json:"targetAudience"`
	MainMessage    *string         `json:"mainMessage"`
	Objective      *string         `json:"objective"`
	Notes          *string         `json:"notes"`
	SourceInsights json.RawMessage `json:"sourceInsights"`
	Structure      json.RawMessage `json:"structure"`
	VisualPrompts  json.RawMessage `json:"visualPrompts"`
	PlannedDate    *time.Time      `json:"plannedDate"`
}

type BacklogFilter struct {
	Status   string
	PostType string
}
