package model

import (
	"time"
)

// swagger:model User
type User struct {
	BaseModel
	Name           string     `gorm:"size:100;not null" json:"name"`
	Email          string     `gorm:"size:100;unique;not null" json:"email"`
	Password       string     `gorm:"size:100;not null" json:"-"`
	Avatar         string     `gorm:"size:255" json:"avatar"`
	Streak         int        `gorm:"default:0" json:"streak"` // consecutive study days
	LastUpdated    *time.Time `json:"lastUpdated"`             // last progress update, drives the streak
	TotalStudyTime int        `gorm:"default:0" json:"totalStudyTime"` // minutes
	LastSeen       time.Time  `gorm:"default:CURRENT_TIMESTAMP(3)" json:"lastSeen"`
}

func (User) TableName() string {
	return "users"
}
