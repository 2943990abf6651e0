package common

import (
	"fmt"
	"strings"

	"onboarding/src/models"
	"onboarding/src/models/scopes"
	"onboarding/src/types"

	"gorm.io/gorm"
)

// TaskFilter selects template tasks of a project. A nil RoleID lists every
// task; otherwise tasks of that role and tasks without a role match, or only
// tasks of exactly that role when Strict is set.
type TaskFilter struct {
	ProjectID uint
	RoleID    *uint
	Strict    bool
}

// ForCaller pins non-managers to their own role.
func (f TaskFilter) ForCaller(caller *models.User) TaskFilter {
	if caller != nil && !caller.IsManager() {
		roleID := caller.RoleID
		f.RoleID = &roleID
		f.Strict = false
	}
	return f
}

func ListTasks(db *gorm.DB, f TaskFilter) ([]models.TaskView, error) {
	roleScope := scopes.VisibleToRole("tasks", f.RoleID)
	if f.Strict {
		roleScope = scopes.WithRole("tasks", f.RoleID)
	}
	views := []models.TaskView{}
	if err := db.
		Table("tasks").
		Select("tasks.*, projects.project_name, roles.role_name").
		Joins("JOIN projects ON projects.id = tasks.project_id").
		Joins("LEFT JOIN roles ON roles.id = tasks.role_id").
		Scopes(scopes.ForProject("tasks", f.ProjectID), roleScope).
		Order("tasks.id").
		Scan(&views).
		Error; err != nil {
		return nil, err
	}
	return views, nil
}

func GetTask(db *gorm.DB, id uint) (*models.Task, error) {
	var task models.Task
	if err := db.Scopes(scopes.WithID(id)).First(&task).Error; err != nil {
		return nil, notFound(err, "task", id)
	}
	return &task, nil
}

func CreateTask(db *gorm.DB, body types.CreateTaskRequestBody) (*models.Task, error) {
	task := models.Task{
		Description: strings.TrimSpace(body.Task),
		ProjectID:   body.ProjectID,
		RoleID:      body.RoleID,
		AssignedTo:  body.AssignedTo,
		Status:      body.Status,
	}
	if task.Description == "" {
		return nil, fmt.Errorf("%w: task description is required", types.ErrValidation)
	}
	if task.Status == "" {
		task.Status = types.TASK_PENDING
	}
	if !task.Status.Valid() {
		return nil, fmt.Errorf("%w: invalid status %q", types.ErrValidation, task.Status)
	}
	if err := requireProject(db, task.ProjectID); err != nil {
		return nil, err
	}
	if task.RoleID != nil {
		if err := requireRole(db, *task.RoleID); err != nil {
			return nil, err
		}
	}
	if task.AssignedTo != nil {
		if err := requireUser(db, *task.AssignedTo); err != nil {
			return nil, err
		}
	}
	if err := db.Create(&task).Error; err != nil {
		return nil, err
	}
	return &task, nil
}

// UpdateTaskStatus sets the status of a template task. Non-managers must be
// assigned to its project and may only touch tasks of their role, tasks
// assigned to them, or tasks without a role.
func UpdateTaskStatus(db *gorm.DB, caller *models.User, id uint, status types.TaskStatus) (*models.Task, error) {
	if !status.Valid() {
		return nil, fmt.Errorf("%w: invalid status %q", types.ErrValidation, status)
	}
	task, err := GetTask(db, id)
	if err != nil {
		return nil, err
	}
	if err := RequireProjectAccess(db, caller, task.ProjectID); err != nil {
		return nil, err
	}
	if !caller.IsManager() && !task.VisibleTo(caller) {
		return nil, fmt.Errorf("%w: task %d belongs to another role", types.ErrForbidden, id)
	}
	if err := db.Model(task).Update("status", status).Error; err != nil {
		return nil, err
	}
	task.Status = status
	return task, nil
}

func DeleteTask(db *gorm.DB, id uint) error {
	res := db.Scopes(scopes.WithID(id)).Delete(&models.Task{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return notFound(gorm.ErrRecordNotFound, "task", id)
	}
	return nil
}
