package models

import (
	"onboarding/src/types"
)

type Resource struct {
	ID          uint               `gorm:"primarykey" json:"id"`
	ProjectID   uint               `gorm:"not null;index" json:"project_id"`
	RoleID      *uint              `gorm:"index" json:"role_id"`
	Title       string             `gorm:"not null;size:255" json:"title"`
	Description string             `json:"description"`
	FileType    types.ResourceType `gorm:"not null;size:10" json:"file_type"`
	FilePath    string             `gorm:"not null" json:"file_path"`
	MimeType    string             `gorm:"size:100" json:"mime_type,omitempty"`
	Extension   string             `gorm:"size:10" json:"extension,omitempty"`

	types.Timestamps
}

func (r Resource) IsFile() bool {
	return r.FileType == types.RESOURCE_FILE
}

type ResourceView struct {
	Resource
	ProjectName string  `json:"project_name"`
	RoleName    *string `json:"role_name"`
}
