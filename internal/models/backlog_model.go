package models

import "time"

type BacklogItem struct {
	ID             string     `db:"id" json:"id"`
	Status         string     `db:"status" json:"status"`
	Topic          string     `db:"topic" json:"topic"`
	PostType       string     `db:"post_type" json:"postType"`
	TargetAudience string     `db:"target_audience" json:"targetAudience"`
	MainMessage    string     `db:"main_message" json:"mainMessage"`
	Objective      string     `db:"objective" json:"objective"`
	Notes          string     `db:"notes" json:"notes"`
	SourceInsights string     `db:"source_insights" json:"sourceInsights"`
	Structure      string     `db:"structure" json:"structure"`
	VisualPrompts  string     `db:"visual_prompts" json:"visualPrompts"`
	PlannedDate    *time.Time `db:"planned_date" json:"plannedDate"`
	CreatedAt      time.Time  `db:"created_at" json:"createdAt"`
	UpdatedAt      time.Time  `db:"updated_at" json:"updatedAt"`
}

const (
	StatusIdea           = "idea"
	StatusDrafting       = "drafting"
	StatusReadyForReview = "ready_for_review"
	StatusApproved       = "approved"
	StatusPosted         = "posted"
)

const (
	PostTypeIgCarousel   = "ig_carousel"
	PostTypeIgPost       = "ig_post"
	PostTypeStorySnippet = "story_snippet"
)

const (
	AudienceYouth         = "youth"
	AudienceTeachers      = "teachers"
	AudienceSchoolLeaders = "school_leaders"
	AudienceOther         = "other"
)

func IsValidStatus(s string) bool {
	switch s {
	case StatusIdea, StatusDrafting, StatusReadyForReview, StatusApproved, StatusPosted:
		return true
	}
	return false
}

func IsValidPostType(s string) bool {
	switch s {
	case PostTypeIgCarousel, PostTypeIgPost, PostTypeStorySnippet:
		return true
	}
	return false
}

func IsValidAudience(s string) bool {
	switch s {
	case AudienceYouth, AudienceTeachers, AudienceSchoolLeaders, AudienceOther:
		return true
	}
	return false
}
