package models

import (
	"time"

	"onboarding/src/types"
)

type User struct {
	ID           uint   `gorm:"primarykey" json:"id"`
	Email        string `gorm:"uniqueIndex;not null;size:255" json:"email"`
	PasswordHash string `gorm:"not null" json:"-"`
	RoleID       uint   `gorm:"not null;index" json:"role_id"`

	Role Role `gorm:"foreignKey:RoleID" json:"-"`

	types.Timestamps
}

func (u User) IsManager() bool {
	return u.Role.IsManager()
}

// UserView is a user row joined with its role and project assignments.
type UserView struct {
	ID               uint   `json:"id"`
	Email            string `json:"email"`
	RoleID           uint   `json:"role_id"`
	RoleName         string `json:"role_name"`
	AssignedProjects string `json:"assigned_projects"`
	ProjectIDs       []uint `gorm:"-" json:"project_ids"`

	types.Timestamps
}

// UserSummary is the public shape of a single user.
type UserSummary struct {
	ID        uint      `json:"id"`
	Email     string    `json:"email"`
	RoleID    uint      `json:"role_id"`
	RoleName  string    `json:"role_name"`
	CreatedAt time.Time `json:"created_at"`
}

func (u User) Summary() UserSummary {
	return UserSummary{
		ID:        u.ID,
		Email:     u.Email,
		RoleID:    u.RoleID,
		RoleName:  u.Role.RoleName,
		CreatedAt: u.CreatedAt,
	}
}
