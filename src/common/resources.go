package common

import (
	"context"
	"fmt"
	"io"
	"log"
	"strings"

	"onboarding/src/lib"
	"onboarding/src/models"
	"onboarding/src/models/scopes"
	"onboarding/src/types"

	"gorm.io/gorm"
)

// ListResources returns the resources of a project visible to caller.
// Non-managers must be assigned to the project and only see resources of
// their own role or without a role; managers filter by roleID, nil for all.
func ListResources(db *gorm.DB, caller *models.User, projectID uint, roleID *uint) ([]models.ResourceView, error) {
	if _, err := GetProject(db, projectID); err != nil {
		return nil, err
	}
	if err := RequireProjectAccess(db, caller, projectID); err != nil {
		return nil, err
	}
	if !caller.IsManager() {
		own := caller.RoleID
		roleID = &own
	}
	views := []models.ResourceView{}
	if err := db.
		Table("resources").
		Select("resources.*, projects.project_name, roles.role_name").
		Joins("JOIN projects ON projects.id = resources.project_id").
		Joins("LEFT JOIN roles ON roles.id = resources.role_id").
		Scopes(
			scopes.ForProject("resources", projectID),
			scopes.VisibleToRole("resources", roleID),
			scopes.NewestFirst("resources"),
		).
		Scan(&views).
		Error; err != nil {
		return nil, err
	}
	return views, nil
}

func GetResource(db *gorm.DB, id uint) (*models.Resource, error) {
	var resource models.Resource
	if err := db.Scopes(scopes.WithID(id)).First(&resource).Error; err != nil {
		return nil, notFound(err, "resource", id)
	}
	return &resource, nil
}

// CreateResource stores a link resource, or a file resource when file is
// non-nil. The stored object is removed again if the row cannot be written.
func CreateResource(ctx context.Context, db *gorm.DB, store lib.Storage, in types.ResourceUpload, file io.Reader, size int64) (*models.Resource, error) {
	resource := models.Resource{
		ProjectID:   in.ProjectID,
		RoleID:      in.RoleID,
		Title:       strings.TrimSpace(in.Title),
		Description: in.Description,
	}
	if resource.Title == "" || resource.ProjectID == 0 {
		return nil, fmt.Errorf("%w: title and projectId are required", types.ErrValidation)
	}
	if file == nil && strings.TrimSpace(in.Link) == "" {
		return nil, fmt.Errorf("%w: either a file or a link is required", types.ErrValidation)
	}
	if err := requireProject(db, resource.ProjectID); err != nil {
		return nil, err
	}
	if resource.RoleID != nil {
		if err := requireRole(db, *resource.RoleID); err != nil {
			return nil, err
		}
	}

	if file == nil {
		resource.FileType = types.RESOURCE_LINK
		resource.FilePath = strings.TrimSpace(in.Link)
		if err := db.Create(&resource).Error; err != nil {
			return nil, err
		}
		return &resource, nil
	}

	resource.FileType = types.RESOURCE_FILE
	resource.FilePath = in.FileName
	resource.MimeType = in.MimeType
	resource.Extension = in.Extension
	if err := store.Save(ctx, in.FileName, file, size, in.MimeType); err != nil {
		return nil, err
	}
	if err := db.Create(&resource).Error; err != nil {
		removeFiles(ctx, store, []string{in.FileName})
		return nil, err
	}
	log.Printf("Stored resource file %s for project %d\n", in.FileName, resource.ProjectID)
	return &resource, nil
}

// DeleteResource removes the row and, for file resources, the stored object.
func DeleteResource(ctx context.Context, db *gorm.DB, store lib.Storage, id uint) error {
	resource, err := GetResource(db, id)
	if err != nil {
		return err
	}
	if err := db.Delete(resource).Error; err != nil {
		return err
	}
	if resource.IsFile() {
		removeFiles(ctx, store, []string{resource.FilePath})
	}
	return nil
}
