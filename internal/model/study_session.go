package model

import (
	"time"
)

type SessionMode string

const (
	ModeFocus SessionMode = "focus"
	ModeBreak SessionMode = "break"
)

// StudySession is one logged timer interval (Pomodoro-style).
type StudySession struct {
	BaseModel
	UserID   uint        `gorm:"index;type:bigint unsigned;not null" json:"-"`
	Date     time.Time   `gorm:"not null" json:"date"`
	Duration int         `gorm:"not null" json:"duration"` // minutes
	Mode     SessionMode `gorm:"type:enum('focus','break');default:'focus'" json:"mode"`
}

func (StudySession) TableName() string {
	return "study_sessions"
}
