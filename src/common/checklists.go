package common

import (
	"fmt"
	"strings"
	"time"

	"onboarding/src/models"
	"onboarding/src/models/scopes"
	"onboarding/src/types"
	"onboarding/src/utils"

	"gorm.io/gorm"
)

const priorityOrder = "CASE user_checklists.priority WHEN 'high' THEN 0 WHEN 'medium' THEN 1 ELSE 2 END"

func checklistViews(db *gorm.DB) *gorm.DB {
	return db.
		Table("user_checklists").
		Select("user_checklists.*, users.email AS user_email, projects.project_name, roles.role_name AS user_role").
		Joins("JOIN users ON users.id = user_checklists.user_id").
		Joins("LEFT JOIN roles ON roles.id = users.role_id").
		Joins("JOIN projects ON projects.id = user_checklists.project_id")
}

// ListAllUserTasks returns the checklist items of every non-manager user,
// soonest due first.
func ListAllUserTasks(db *gorm.DB) ([]models.UserChecklistView, error) {
	views := []models.UserChecklistView{}
	if err := checklistViews(db).
		Where("roles.role_name IS NULL OR roles.role_name <> ?", types.ROLE_MANAGER).
		Order("user_checklists.due_date").
		Order(priorityOrder).
		Order("user_checklists.id").
		Scan(&views).
		Error; err != nil {
		return nil, err
	}
	return views, nil
}

func ListUserTasks(db *gorm.DB, userID uint) ([]models.UserChecklistView, error) {
	if _, err := GetUser(db, userID); err != nil {
		return nil, err
	}
	views := []models.UserChecklistView{}
	if err := checklistViews(db).
		Scopes(scopes.ForUser("user_checklists", userID)).
		Order("user_checklists.due_date").
		Order(priorityOrder).
		Order("user_checklists.id").
		Scan(&views).
		Error; err != nil {
		return nil, err
	}
	return views, nil
}

// ListUserChecklist returns a user's items for one project, pending first.
func ListUserChecklist(db *gorm.DB, userID uint, projectID uint) ([]models.UserChecklistView, error) {
	views := []models.UserChecklistView{}
	if err := checklistViews(db).
		Scopes(
			scopes.ForUser("user_checklists", userID),
			scopes.ForProject("user_checklists", projectID),
		).
		Order(fmt.Sprintf("CASE WHEN user_checklists.status = '%s' THEN 0 ELSE 1 END", types.TASK_PENDING)).
		Order("user_checklists.due_date").
		Order("user_checklists.id").
		Scan(&views).
		Error; err != nil {
		return nil, err
	}
	return views, nil
}

func GetChecklistItem(db *gorm.DB, id uint) (*models.UserChecklist, error) {
	var item models.UserChecklist
	if err := db.Scopes(scopes.WithID(id)).First(&item).Error; err != nil {
		return nil, notFound(err, "checklist item", id)
	}
	return &item, nil
}

// CreateUserTask adds an ad hoc checklist item for a user.
func CreateUserTask(db *gorm.DB, body types.CreateUserTaskRequestBody, actorID uint) (*models.UserChecklist, error) {
	description := strings.TrimSpace(body.TaskDescription)
	if description == "" {
		return nil, fmt.Errorf("%w: task description is required", types.ErrValidation)
	}
	if err := requireUser(db, body.UserID); err != nil {
		return nil, err
	}
	if err := requireProject(db, body.ProjectID); err != nil {
		return nil, err
	}
	due, err := utils.ParseDueDate(body.DueDate, time.Now())
	if err != nil {
		return nil, err
	}
	item := models.UserChecklist{
		UserID:          body.UserID,
		ProjectID:       body.ProjectID,
		TaskDescription: description,
		Status:          types.TASK_PENDING,
		DueDate:         due,
		Priority:        body.Priority,
		Category:        body.Category,
		AssignedBy:      actorID,
	}
	if item.Priority == "" {
		item.Priority = types.PRIORITY_MEDIUM
	}
	if item.Category == "" {
		item.Category = types.CATEGORY_PROJECT
	}
	if body.Notes != "" {
		item.Notes = &body.Notes
	}
	if err := db.Create(&item).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

// UpdateChecklistItem changes status and optionally notes of an item. Only
// its owner or a manager may do so. completed_at follows the status.
func UpdateChecklistItem(db *gorm.DB, caller *models.User, id uint, status types.TaskStatus, notes *string) (*models.UserChecklist, error) {
	if !status.Valid() {
		return nil, fmt.Errorf("%w: invalid status %q", types.ErrValidation, status)
	}
	item, err := GetChecklistItem(db, id)
	if err != nil {
		return nil, err
	}
	if !caller.IsManager() && item.UserID != caller.ID {
		return nil, fmt.Errorf("%w: checklist item %d belongs to another user", types.ErrForbidden, id)
	}

	var completedAt *time.Time
	if status == types.TASK_COMPLETED {
		completedAt = item.CompletedAt
		if completedAt == nil {
			now := time.Now()
			completedAt = &now
		}
	}
	updates := map[string]any{"status": status, "completed_at": completedAt}
	if notes != nil {
		updates["notes"] = *notes
	}
	if err := db.Model(&models.UserChecklist{}).Scopes(scopes.WithID(id)).Updates(updates).Error; err != nil {
		return nil, err
	}
	return GetChecklistItem(db, id)
}

func DeleteUserTask(db *gorm.DB, id uint) error {
	res := db.Scopes(scopes.WithID(id)).Delete(&models.UserChecklist{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return notFound(gorm.ErrRecordNotFound, "checklist item", id)
	}
	return nil
}
