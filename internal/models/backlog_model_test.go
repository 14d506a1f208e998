package models

import "testing"

func TestIsValidStatus(t *testing.T) {
	tests := []struct {
		status string
		valid  bool
	}{
		{StatusIdea, true},
		{StatusDrafting, true},
		{StatusReadyForReview, true},
		{StatusApproved, true},
		{StatusPosted, true},
		{"", false},
		{"published", false},
		{"READY_FOR_REVIEW", false},
	}
	for _, tt := range tests {
		t.Run(tt.status, func(t *testing.T) {
			if got := IsValidStatus(tt.status); got != tt.valid {
				t.Errorf("IsValidStatus(%q) = %v, want %v", tt.status, got, tt.valid)
			}
		})
	}
}

func TestIsValidPostType(t *testing.T) {
	tests := []struct {
		postType string
		valid    bool
	}{
		{PostTypeIgCarousel, true},
		{PostTypeIgPost, true},
		{PostTypeStorySnippet, true},
		{"", false},
		{"reel", false},
	}
	for _, tt := range tests {
		t.Run(tt.postType, func(t *testing.T) {
			if got := IsValidPostType(tt.postType); got != tt.valid {
				t.Errorf("IsValidPostType(%q) = %v, want %v", tt.postType, got, tt.valid)
			}
		})
	}
}

func TestIsValidAudience(t *testing.T) {
	tests := []struct {
		audience string
		valid    bool
	}{
		{AudienceYouth, true},
		{AudienceTeachers, true},
		{AudienceSchoolLeaders, true},
		{AudienceOther, true},
		{"", false},
		{"parents", false},
	}
	for _, tt := range tests {
		t.Run(tt.audience, func(t *testing.T) {
			if got := IsValidAudience(tt.audience); got != tt.valid {
				t.Errorf("IsValidAudience(%q) = %v, want %v", tt.audience, got, tt.valid)
			}
		})
	}
}
