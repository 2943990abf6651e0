package models

import (
	"onboarding/src/types"
	"time"
)

// UserChecklist is a per-user copy of a template task. Edits to the template
// do not propagate once copied.
type UserChecklist struct {
	ID              uint             `gorm:"primarykey" json:"id"`
	UserID          uint             `gorm:"not null;index:idx_checklist_user_project" json:"user_id"`
	ProjectID       uint             `gorm:"not null;index:idx_checklist_user_project" json:"project_id"`
	TaskDescription string           `gorm:"not null;size:500" json:"task_description"`
	Status          types.TaskStatus `gorm:"not null;default:'pending';size:50" json:"status"`
	DueDate         time.Time        `gorm:"not null" json:"due_date"`
	Priority        string           `gorm:"not null;size:20" json:"priority"`
	Category        string           `gorm:"not null;size:50" json:"category"`
	Notes           *string          `json:"notes"`
	AssignedBy      uint             `gorm:"not null" json:"assigned_by"`
	CompletedAt     *time.Time       `json:"completed_at"`

	types.Timestamps
}

type UserChecklistView struct {
	UserChecklist
	UserEmail   string `json:"user_email"`
	ProjectName string `json:"project_name"`
	UserRole    string `json:"user_role,omitempty"`
}
