package model

import (
	"time"
)

type ProgressStatus string

const (
	StatusNotStarted ProgressStatus = "not-started"
	StatusInProgress ProgressStatus = "in-progress"
	StatusCompleted  ProgressStatus = "completed"
)

// ValidStatus reports whether s is one of the three ledger statuses.
func ValidStatus(s ProgressStatus) bool {
	switch s {
	case StatusNotStarted, StatusInProgress, StatusCompleted:
		return true
	}
	return false
}

// ModuleProgress is one ledger entry: a user's state for a single module.
// At most one row exists per (user, module); a missing row means
// not-started. StartedAt is set on the first transition and never changes,
// UpdatedAt moves on every transition.
type ModuleProgress struct {
	BaseModel
	UserID    uint           `gorm:"index:idx_user_module,unique;type:bigint unsigned;not null" json:"-"`
	ModuleID  int            `gorm:"index:idx_user_module,unique;not null" json:"moduleId"`
	Status    ProgressStatus `gorm:"type:enum('not-started','in-progress','completed');default:'not-started'" json:"status"`
	StartedAt time.Time      `json:"startedAt"`
}

func (ModuleProgress) TableName() string {
	return "module_progress"
}
