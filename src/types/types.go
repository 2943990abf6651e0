package types

import (
	"time"
)

const (
	ROLE_MANAGER  = "MANAGER"
	ROLE_EMPLOYEE = "EMPLOYEE"
)

type TaskStatus string

const (
	TASK_PENDING   TaskStatus = "pending"
	TASK_COMPLETED TaskStatus = "completed"
)

func (s TaskStatus) Valid() bool {
	return s == TASK_PENDING || s == TASK_COMPLETED
}

type ResourceType string

const (
	RESOURCE_LINK ResourceType = "link"
	RESOURCE_FILE ResourceType = "file"
)

const (
	PRIORITY_LOW    = "low"
	PRIORITY_MEDIUM = "medium"
	PRIORITY_HIGH   = "high"

	CATEGORY_PROJECT = "project"

	DEFAULT_DUE_IN = 7 * 24 * time.Hour
)

// RoleFilterAll disables role scoping on listings.
const RoleFilterAll = "all"

type Timestamps struct {
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
}

type LoginRequestBody struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type LoginResponse struct {
	Success   bool      `json:"success"`
	ID        uint      `json:"id"`
	Email     string    `json:"email"`
	RoleID    uint      `json:"role_id"`
	RoleName  string    `json:"role_name"`
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
}

type ProjectRequestBody struct {
	ProjectName string `json:"project_name" binding:"required"`
	Description string `json:"description,omitempty"`
}

type AssignProjectRequestBody struct {
	UserID    uint `json:"userId" binding:"required"`
	ProjectID uint `json:"projectId" binding:"required"`
}

type CreateTaskRequestBody struct {
	Task       string     `json:"task" binding:"required"`
	ProjectID  uint       `json:"projectId" binding:"required"`
	RoleID     *uint      `json:"roleId,omitempty"`
	AssignedTo *uint      `json:"assignedTo,omitempty"`
	Status     TaskStatus `json:"status,omitempty" binding:"omitempty,taskstatus"`
}

type UpdateStatusRequestBody struct {
	Status TaskStatus `json:"status" binding:"required,taskstatus"`
}

type CreateUserRequestBody struct {
	Email      string `json:"email" binding:"required,email"`
	Password   string `json:"password" binding:"required,min=8"`
	RoleID     uint   `json:"roleId" binding:"required"`
	ProjectIDs []uint `json:"projectIds" binding:"required,min=1"`
}

type UpdateUserRequestBody struct {
	Email      string `json:"email" binding:"required,email"`
	Password   string `json:"password,omitempty" binding:"omitempty,min=8"`
	RoleID     uint   `json:"roleId" binding:"required"`
	ProjectIDs []uint `json:"projectIds"`
}

type CreateUserTaskRequestBody struct {
	UserID          uint   `json:"userId" binding:"required"`
	ProjectID       uint   `json:"projectId" binding:"required"`
	TaskDescription string `json:"taskDescription" binding:"required"`
	DueDate         string `json:"dueDate,omitempty" binding:"omitempty,datetime=2006-01-02"`
	Priority        string `json:"priority,omitempty" binding:"omitempty,priority"`
	Category        string `json:"category,omitempty"`
	Notes           string `json:"notes,omitempty"`
}

type UpdateUserTaskRequestBody struct {
	Status TaskStatus `json:"status" binding:"required,taskstatus"`
	Notes  *string    `json:"notes,omitempty"`
}

// ResourceUpload is the decoded multipart form of POST /api/resources.
type ResourceUpload struct {
	Title       string
	Description string
	ProjectID   uint
	RoleID      *uint
	Link        string
	FileName    string
	MimeType    string
	Extension   string
}

type PendingTask struct {
	ID              uint   `json:"id"`
	TaskDescription string `json:"task_description"`
	AssignmentType  string `json:"assignment_type"`
}

type UserProgress struct {
	UserID           uint          `json:"user_id"`
	Email            string        `json:"email"`
	RoleName         string        `json:"role_name"`
	TotalTasks       int           `json:"total_tasks"`
	CompletedTasks   int           `json:"completed_tasks"`
	PendingTasks     int           `json:"pending_tasks"`
	PendingTasksList []PendingTask `json:"pending_tasks_list"`
}

type ProjectTaskStatus struct {
	ID              uint       `json:"id"`
	Task            string     `json:"task"`
	Status          TaskStatus `json:"status"`
	RoleName        *string    `json:"role_name"`
	AssignedToEmail *string    `json:"assigned_to_email"`
}

type ProjectStatus struct {
	TotalTasks     int                 `json:"totalTasks"`
	CompletedTasks int                 `json:"completedTasks"`
	Progress       float64             `json:"progress"`
	Tasks          []ProjectTaskStatus `json:"tasks"`
}

type StatusReport struct {
	ProjectStatus ProjectStatus  `json:"projectStatus"`
	UserProgress  []UserProgress `json:"userProgress"`
}
