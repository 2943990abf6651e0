package models

import (
	"onboarding/src/types"
)

// Task is a manager-authored template scoped to a project and optionally a
// role or a single user.
type Task struct {
	ID          uint             `gorm:"primarykey" json:"id"`
	Description string           `gorm:"column:task;not null;size:500" json:"task"`
	ProjectID   uint             `gorm:"not null;index" json:"project_id"`
	RoleID      *uint            `gorm:"index" json:"role_id"`
	AssignedTo  *uint            `gorm:"index" json:"assigned_to"`
	Status      types.TaskStatus `gorm:"not null;default:'pending';size:50" json:"status"`

	types.Timestamps
}

// VisibleTo reports whether the task targets u directly, u's role, or no role.
func (t Task) VisibleTo(u *User) bool {
	if t.AssignedTo != nil && *t.AssignedTo == u.ID {
		return true
	}
	return t.RoleID == nil || *t.RoleID == u.RoleID
}

type TaskView struct {
	Task
	ProjectName string  `json:"project_name"`
	RoleName    *string `json:"role_name"`
}
