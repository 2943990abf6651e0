package common

import (
	"fmt"
	"slices"
	"strings"

	"onboarding/src/lib"
	"onboarding/src/models"
	"onboarding/src/models/scopes"
	"onboarding/src/types"

	"gorm.io/gorm"
)

func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// GetUser loads a user with its role.
func GetUser(db *gorm.DB, id uint) (*models.User, error) {
	var user models.User
	if err := db.Preload("Role").Scopes(scopes.WithID(id)).First(&user).Error; err != nil {
		return nil, notFound(err, "user", id)
	}
	return &user, nil
}

func FindUserByEmail(db *gorm.DB, email string) (*models.User, error) {
	var user models.User
	if err := db.
		Preload("Role").
		Where(&models.User{Email: NormalizeEmail(email)}).
		First(&user).
		Error; err != nil {
		return nil, err
	}
	return &user, nil
}

type userProjectRow struct {
	UserID      uint
	ProjectID   uint
	ProjectName string
}

// ListUsers returns every user with role name and project assignments,
// newest first.
func ListUsers(db *gorm.DB) ([]models.UserView, error) {
	views := []models.UserView{}
	if err := db.
		Table("users").
		Select("users.id, users.email, users.role_id, users.created_at, roles.role_name").
		Joins("LEFT JOIN roles ON roles.id = users.role_id").
		Scopes(scopes.NewestFirst("users")).
		Scan(&views).
		Error; err != nil {
		return nil, err
	}

	var rows []userProjectRow
	if err := db.
		Table("user_projects").
		Select("user_projects.user_id, user_projects.project_id, projects.project_name").
		Joins("JOIN projects ON projects.id = user_projects.project_id").
		Order("projects.project_name").
		Scan(&rows).
		Error; err != nil {
		return nil, err
	}
	names := map[uint][]string{}
	ids := map[uint][]uint{}
	for _, row := range rows {
		names[row.UserID] = append(names[row.UserID], row.ProjectName)
		ids[row.UserID] = append(ids[row.UserID], row.ProjectID)
	}
	for i := range views {
		views[i].AssignedProjects = strings.Join(names[views[i].ID], ", ")
		views[i].ProjectIDs = ids[views[i].ID]
		if views[i].ProjectIDs == nil {
			views[i].ProjectIDs = []uint{}
		}
	}
	return views, nil
}

func validateUserFields(db *gorm.DB, email string, roleID uint, projectIDs []uint, exceptID uint) error {
	if email == "" {
		return fmt.Errorf("%w: email is required", types.ErrValidation)
	}
	if err := requireRole(db, roleID); err != nil {
		return err
	}
	if len(projectIDs) > 0 {
		var found int64
		if err := db.Model(&models.Project{}).Scopes(scopes.WithIDs(projectIDs...)).Count(&found).Error; err != nil {
			return err
		}
		if int(found) != len(projectIDs) {
			return fmt.Errorf("%w: one or more projects do not exist", types.ErrValidation)
		}
	}
	var taken int64
	q := db.Model(&models.User{}).Where(&models.User{Email: email})
	if exceptID != 0 {
		q = q.Where("id <> ?", exceptID)
	}
	if err := q.Count(&taken).Error; err != nil {
		return err
	}
	if taken > 0 {
		return fmt.Errorf("%w: email %s is already registered", types.ErrConflict, email)
	}
	return nil
}

func uniqueIDs(ids []uint) []uint {
	out := make([]uint, 0, len(ids))
	for _, id := range ids {
		if id != 0 && !slices.Contains(out, id) {
			out = append(out, id)
		}
	}
	return out
}

// CreateUser inserts a user and assigns the listed projects in one
// transaction. actorID is recorded as assigner of the copied checklist items.
func CreateUser(db *gorm.DB, body types.CreateUserRequestBody, actorID uint) (*models.User, error) {
	email := NormalizeEmail(body.Email)
	projectIDs := uniqueIDs(body.ProjectIDs)
	if len(projectIDs) == 0 {
		return nil, fmt.Errorf("%w: at least one project is required", types.ErrValidation)
	}
	if err := validateUserFields(db, email, body.RoleID, projectIDs, 0); err != nil {
		return nil, err
	}
	hash, err := lib.HashPassword(body.Password)
	if err != nil {
		return nil, err
	}

	user := models.User{Email: email, PasswordHash: hash, RoleID: body.RoleID}
	err = db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&user).Error; err != nil {
			return err
		}
		for _, projectID := range projectIDs {
			if err := AssignProject(tx, user.ID, projectID, actorID); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return GetUser(db, user.ID)
}

// UpdateUser rewrites a user's email, role and optionally password. When
// ProjectIDs is non-nil the assignments are reconciled against it: dropped
// projects are unassigned, new ones assigned, kept ones untouched.
func UpdateUser(db *gorm.DB, id uint, body types.UpdateUserRequestBody, actorID uint) (*models.User, error) {
	if _, err := GetUser(db, id); err != nil {
		return nil, err
	}
	email := NormalizeEmail(body.Email)
	var projectIDs []uint
	if body.ProjectIDs != nil {
		projectIDs = uniqueIDs(body.ProjectIDs)
	}
	if err := validateUserFields(db, email, body.RoleID, projectIDs, id); err != nil {
		return nil, err
	}
	updates := map[string]any{"email": email, "role_id": body.RoleID}
	if body.Password != "" {
		hash, err := lib.HashPassword(body.Password)
		if err != nil {
			return nil, err
		}
		updates["password_hash"] = hash
	}

	err := db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.User{}).Scopes(scopes.WithID(id)).Updates(updates).Error; err != nil {
			return err
		}
		if body.ProjectIDs == nil {
			return nil
		}
		var current []uint
		if err := tx.
			Model(&models.UserProject{}).
			Scopes(scopes.ForUser("user_projects", id)).
			Pluck("project_id", &current).
			Error; err != nil {
			return err
		}
		for _, projectID := range current {
			if !slices.Contains(projectIDs, projectID) {
				if err := UnassignProject(tx, id, projectID); err != nil {
					return err
				}
			}
		}
		for _, projectID := range projectIDs {
			if !slices.Contains(current, projectID) {
				if err := AssignProject(tx, id, projectID, actorID); err != nil {
					return err
				}
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return GetUser(db, id)
}

// DeleteUser removes a user with its assignments, checklist items and the
// template tasks assigned directly to it.
func DeleteUser(db *gorm.DB, id uint, actorID uint) error {
	if id == actorID {
		return fmt.Errorf("%w: you cannot delete your own account", types.ErrValidation)
	}
	return db.Transaction(func(tx *gorm.DB) error {
		if _, err := GetUser(tx, id); err != nil {
			return err
		}
		if err := tx.Where("user_id = ?", id).Delete(&models.UserProject{}).Error; err != nil {
			return err
		}
		if err := tx.Where("user_id = ?", id).Delete(&models.UserChecklist{}).Error; err != nil {
			return err
		}
		if err := tx.Where("assigned_to = ?", id).Delete(&models.Task{}).Error; err != nil {
			return err
		}
		return tx.Scopes(scopes.WithID(id)).Delete(&models.User{}).Error
	})
}
