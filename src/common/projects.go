package common

import (
	"context"
	"fmt"
	"log"
	"strings"

	"onboarding/src/lib"
	"onboarding/src/models"
	"onboarding/src/models/scopes"
	"onboarding/src/types"

	"gorm.io/gorm"
)

func ListProjects(db *gorm.DB) ([]models.Project, error) {
	var projects []models.Project
	if err := db.
		Model(&models.Project{}).
		Scopes(scopes.NewestFirst("projects")).
		Find(&projects).
		Error; err != nil {
		return nil, err
	}
	return projects, nil
}

func GetProject(db *gorm.DB, id uint) (*models.Project, error) {
	var project models.Project
	if err := db.Scopes(scopes.WithID(id)).First(&project).Error; err != nil {
		return nil, notFound(err, "project", id)
	}
	return &project, nil
}

// ListUserProjects returns the projects a user is assigned to.
func ListUserProjects(db *gorm.DB, userID uint) ([]models.Project, error) {
	if _, err := GetUser(db, userID); err != nil {
		return nil, err
	}
	var projects []models.Project
	if err := db.
		Model(&models.Project{}).
		Joins("JOIN user_projects ON user_projects.project_id = projects.id").
		Scopes(scopes.ForUser("user_projects", userID)).
		Order("projects.project_name").
		Find(&projects).
		Error; err != nil {
		return nil, err
	}
	return projects, nil
}

// IsAssigned reports whether the user has a link to the project.
func IsAssigned(db *gorm.DB, userID uint, projectID uint) (bool, error) {
	var n int64
	err := db.
		Model(&models.UserProject{}).
		Where(&models.UserProject{UserID: userID, ProjectID: projectID}).
		Count(&n).
		Error
	return n > 0, err
}

// RequireProjectAccess fails with ErrForbidden when a non-manager caller is
// not assigned to the project.
func RequireProjectAccess(db *gorm.DB, caller *models.User, projectID uint) error {
	if caller.IsManager() {
		return nil
	}
	assigned, err := IsAssigned(db, caller.ID, projectID)
	if err != nil {
		return err
	}
	if !assigned {
		return fmt.Errorf("%w: not assigned to project %d", types.ErrForbidden, projectID)
	}
	return nil
}

func validateProject(body *types.ProjectRequestBody) error {
	body.ProjectName = strings.TrimSpace(body.ProjectName)
	if body.ProjectName == "" {
		return fmt.Errorf("%w: project name is required", types.ErrValidation)
	}
	return nil
}

func CreateProject(db *gorm.DB, body types.ProjectRequestBody) (*models.Project, error) {
	if err := validateProject(&body); err != nil {
		return nil, err
	}
	project := models.Project{ProjectName: body.ProjectName, Description: body.Description}
	if err := db.Create(&project).Error; err != nil {
		return nil, err
	}
	return &project, nil
}

func UpdateProject(db *gorm.DB, id uint, body types.ProjectRequestBody) (*models.Project, error) {
	if err := validateProject(&body); err != nil {
		return nil, err
	}
	project, err := GetProject(db, id)
	if err != nil {
		return nil, err
	}
	project.ProjectName = body.ProjectName
	project.Description = body.Description
	if err := db.
		Model(project).
		Select("project_name", "description").
		Updates(project).
		Error; err != nil {
		return nil, err
	}
	return project, nil
}

// DeleteProject removes a project with its tasks, resources, assignments and
// checklist items in one transaction. Stored files of file resources are
// removed after commit; failures there are only logged.
func DeleteProject(ctx context.Context, db *gorm.DB, store lib.Storage, id uint) error {
	var files []string
	err := db.Transaction(func(tx *gorm.DB) error {
		if _, err := GetProject(tx, id); err != nil {
			return err
		}
		if err := tx.
			Model(&models.Resource{}).
			Scopes(scopes.ForProject("resources", id)).
			Where(&models.Resource{FileType: types.RESOURCE_FILE}).
			Pluck("file_path", &files).
			Error; err != nil {
			return err
		}
		for _, model := range []any{
			&models.UserChecklist{},
			&models.UserProject{},
			&models.Task{},
			&models.Resource{},
		} {
			if err := tx.Where("project_id = ?", id).Delete(model).Error; err != nil {
				return err
			}
		}
		return tx.Scopes(scopes.WithID(id)).Delete(&models.Project{}).Error
	})
	if err != nil {
		return err
	}
	removeFiles(ctx, store, files)
	return nil
}

func removeFiles(ctx context.Context, store lib.Storage, files []string) {
	if store == nil {
		return
	}
	for _, name := range files {
		if err := store.Remove(ctx, name); err != nil {
			log.Printf("Error removing stored file %s: %s\n", name, err.Error())
		}
	}
}
