package model

import (
	"time"
)

// UserAchievement records an unlocked badge. Rows are append-only; the
// unique index keeps re-evaluation from duplicating an id.
type UserAchievement struct {
	BaseModel
	UserID     uint      `gorm:"index:idx_user_achievement,unique;type:bigint unsigned;not null" json:"-"`
	Code       string    `gorm:"index:idx_user_achievement,unique;size:64;not null" json:"code"`
	UnlockedAt time.Time `gorm:"not null" json:"unlockedAt"`
}

func (UserAchievement) TableName() string {
	return "user_achievements"
}
