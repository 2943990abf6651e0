package common

import (
	"errors"
	"fmt"

	"onboarding/src/models"
	"onboarding/src/types"

	"gorm.io/gorm"
)

func ListRoles(db *gorm.DB) ([]models.Role, error) {
	var roles []models.Role
	if err := db.Model(&models.Role{}).Order("role_name").Find(&roles).Error; err != nil {
		return nil, err
	}
	return roles, nil
}

func GetRoleByName(db *gorm.DB, name string) (*models.Role, error) {
	var role models.Role
	if err := db.Where(&models.Role{RoleName: name}).First(&role).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("role %s: %w", name, types.ErrNotFound)
		}
		return nil, err
	}
	return &role, nil
}

// requireRole fails with ErrValidation when roleID names no role.
func requireRole(db *gorm.DB, roleID uint) error {
	return requireRow(db, &models.Role{}, roleID, "role")
}

func requireProject(db *gorm.DB, projectID uint) error {
	return requireRow(db, &models.Project{}, projectID, "project")
}

func requireUser(db *gorm.DB, userID uint) error {
	return requireRow(db, &models.User{}, userID, "user")
}

func requireRow(db *gorm.DB, model any, id uint, name string) error {
	var n int64
	if err := db.Model(model).Where("id = ?", id).Count(&n).Error; err != nil {
		return err
	}
	if n == 0 {
		return fmt.Errorf("%w: %s %d does not exist", types.ErrValidation, name, id)
	}
	return nil
}

// notFound converts gorm.ErrRecordNotFound into a wrapped ErrNotFound.
func notFound(err error, name string, id uint) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("%s %d: %w", name, id, types.ErrNotFound)
	}
	return err
}
