package common

import (
	"fmt"

	"onboarding/src/models"
	"onboarding/src/models/scopes"
	"onboarding/src/types"

	"gorm.io/gorm"
)

const (
	assignedDirectly = "Assigned directly"
	assignedViaRole  = "Via role: %s"
)

type progressUser struct {
	ID       uint
	Email    string
	RoleID   uint
	RoleName string
}

// ProjectStatusReport aggregates completion of a project's template tasks,
// overall and per non-manager user. A user counts a task when it targets
// their role or is assigned to them; users with no such task are left out.
func ProjectStatusReport(db *gorm.DB, projectID uint) (*types.StatusReport, error) {
	if _, err := GetProject(db, projectID); err != nil {
		return nil, err
	}

	var tasks []models.Task
	if err := db.
		Model(&models.Task{}).
		Scopes(scopes.ForProject("tasks", projectID)).
		Order("tasks.id").
		Find(&tasks).
		Error; err != nil {
		return nil, err
	}
	rows := []types.ProjectTaskStatus{}
	if err := db.
		Table("tasks").
		Select("tasks.id, tasks.task, tasks.status, roles.role_name, users.email AS assigned_to_email").
		Joins("LEFT JOIN roles ON roles.id = tasks.role_id").
		Joins("LEFT JOIN users ON users.id = tasks.assigned_to").
		Scopes(scopes.ForProject("tasks", projectID)).
		Order("tasks.id").
		Scan(&rows).
		Error; err != nil {
		return nil, err
	}

	var users []progressUser
	if err := db.
		Table("users").
		Select("users.id, users.email, users.role_id, roles.role_name").
		Joins("JOIN roles ON roles.id = users.role_id").
		Where("roles.role_name <> ?", types.ROLE_MANAGER).
		Order("users.email").
		Scan(&users).
		Error; err != nil {
		return nil, err
	}

	report := &types.StatusReport{
		ProjectStatus: projectStatus(rows),
		UserProgress:  []types.UserProgress{},
	}
	for _, u := range users {
		if p, ok := userProgress(u, tasks); ok {
			report.UserProgress = append(report.UserProgress, p)
		}
	}
	return report, nil
}

func projectStatus(rows []types.ProjectTaskStatus) types.ProjectStatus {
	status := types.ProjectStatus{TotalTasks: len(rows), Tasks: rows}
	for _, row := range rows {
		if row.Status == types.TASK_COMPLETED {
			status.CompletedTasks++
		}
	}
	status.Progress = Progress(status.CompletedTasks, status.TotalTasks)
	return status
}

func userProgress(u progressUser, tasks []models.Task) (types.UserProgress, bool) {
	p := types.UserProgress{
		UserID:           u.ID,
		Email:            u.Email,
		RoleName:         u.RoleName,
		PendingTasksList: []types.PendingTask{},
	}
	for _, task := range tasks {
		direct := task.AssignedTo != nil && *task.AssignedTo == u.ID
		viaRole := task.RoleID != nil && *task.RoleID == u.RoleID
		if !direct && !viaRole {
			continue
		}
		p.TotalTasks++
		if task.Status == types.TASK_COMPLETED {
			p.CompletedTasks++
			continue
		}
		p.PendingTasks++
		assignment := assignedDirectly
		if !direct {
			assignment = fmt.Sprintf(assignedViaRole, u.RoleName)
		}
		p.PendingTasksList = append(p.PendingTasksList, types.PendingTask{
			ID:              task.ID,
			TaskDescription: task.Description,
			AssignmentType:  assignment,
		})
	}
	return p, p.TotalTasks > 0
}

// Progress is completed/total as a percentage, 0 when there is nothing to do.
func Progress(completed int, total int) float64 {
	if total == 0 {
		return 0
	}
	return float64(completed) / float64(total) * 100
}
