package scopes

import (
	"fmt"

	"gorm.io/gorm"
)

func WithID(id uint) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("id = ?", id)
	}
}

func WithIDs(ids ...uint) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("id IN (?)", ids)
	}
}

// ForProject scopes rows of table to a project.
func ForProject(table string, projectID uint) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where(fmt.Sprintf("%s.project_id = ?", table), projectID)
	}
}

// ForUser scopes rows of table to a user.
func ForUser(table string, userID uint) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where(fmt.Sprintf("%s.user_id = ?", table), userID)
	}
}

// VisibleToRole keeps rows whose role matches roleID or that carry no role.
// A nil roleID disables the filter.
func VisibleToRole(table string, roleID *uint) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if roleID == nil {
			return db
		}
		return db.Where(fmt.Sprintf("(%s.role_id = ? OR %s.role_id IS NULL)", table, table), *roleID)
	}
}

// WithRole keeps rows whose role is exactly roleID. A nil roleID disables the filter.
func WithRole(table string, roleID *uint) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if roleID == nil {
			return db
		}
		return db.Where(fmt.Sprintf("%s.role_id = ?", table), *roleID)
	}
}

func NewestFirst(table string) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Order(fmt.Sprintf("%s.created_at DESC", table)).Order(fmt.Sprintf("%s.id DESC", table))
	}
}
