package models

import "onboarding/src/types"

type Role struct {
	ID       uint   `gorm:"primarykey" json:"id"`
	RoleName string `gorm:"uniqueIndex;not null;size:50" json:"role_name"`

	types.Timestamps
}

func (r Role) IsManager() bool {
	return r.RoleName == types.ROLE_MANAGER
}
