package models

import "onboarding/src/types"

type Project struct {
	ID          uint   `gorm:"primarykey" json:"id"`
	ProjectName string `gorm:"not null;size:255" json:"project_name"`
	Description string `json:"description,omitempty"`

	types.Timestamps
}

// UserProject links a user to a project. A user appears at most once per project.
type UserProject struct {
	ID        uint `gorm:"primarykey" json:"id"`
	UserID    uint `gorm:"not null;uniqueIndex:idx_user_project" json:"user_id"`
	ProjectID uint `gorm:"not null;uniqueIndex:idx_user_project;index" json:"project_id"`

	types.Timestamps
}
