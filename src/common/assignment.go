package common

import (
	"log"
	"time"

	"onboarding/src/models"
	"onboarding/src/models/scopes"
	"onboarding/src/types"

	"gorm.io/gorm"
)

// AssignProject links a user to a project and copies every template task of
// the project that targets the user's role, or no role, into the user's
// checklist. Assigning a project the user already has is a no-op.
//
// assignedBy is recorded on the copied items; zero falls back to the user.
func AssignProject(tx *gorm.DB, userID uint, projectID uint, assignedBy uint) error {
	var user models.User
	if err := tx.Select("id", "role_id").First(&user, userID).Error; err != nil {
		return notFound(err, "user", userID)
	}
	if err := requireProject(tx, projectID); err != nil {
		return err
	}

	var existing int64
	if err := tx.
		Model(&models.UserProject{}).
		Where(&models.UserProject{UserID: userID, ProjectID: projectID}).
		Count(&existing).
		Error; err != nil {
		return err
	}
	if existing > 0 {
		return nil
	}
	if err := tx.Create(&models.UserProject{UserID: userID, ProjectID: projectID}).Error; err != nil {
		return err
	}

	var tasks []models.Task
	if err := tx.
		Model(&models.Task{}).
		Scopes(
			scopes.ForProject("tasks", projectID),
			scopes.VisibleToRole("tasks", &user.RoleID),
		).
		Order("tasks.id").
		Find(&tasks).
		Error; err != nil {
		return err
	}
	if len(tasks) == 0 {
		return nil
	}

	if assignedBy == 0 {
		assignedBy = userID
	}
	due := time.Now().Add(types.DEFAULT_DUE_IN)
	items := make([]models.UserChecklist, 0, len(tasks))
	for _, task := range tasks {
		items = append(items, models.UserChecklist{
			UserID:          userID,
			ProjectID:       projectID,
			TaskDescription: task.Description,
			Status:          types.TASK_PENDING,
			DueDate:         due,
			Priority:        types.PRIORITY_MEDIUM,
			Category:        types.CATEGORY_PROJECT,
			AssignedBy:      assignedBy,
		})
	}
	if err := tx.Create(&items).Error; err != nil {
		return err
	}
	log.Printf("Assigned project %d to user %d with %d checklist items\n", projectID, userID, len(items))
	return nil
}

// UnassignProject removes the link between a user and a project together with
// the user's checklist items for that project.
func UnassignProject(tx *gorm.DB, userID uint, projectID uint) error {
	res := tx.
		Where(&models.UserProject{UserID: userID, ProjectID: projectID}).
		Delete(&models.UserProject{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return notFound(gorm.ErrRecordNotFound, "assignment for user", userID)
	}
	return tx.
		Scopes(
			scopes.ForUser("user_checklists", userID),
			scopes.ForProject("user_checklists", projectID),
		).
		Delete(&models.UserChecklist{}).
		Error
}
