package repository

import (
	"studytrack_backend/internal/model"

	"gorm.io/gorm"
)

type AchievementRepository struct {
	DB *gorm.DB
}

func NewAchievementRepository(db *gorm.DB) *AchievementRepository {
	return &AchievementRepository{DB: db}
}

func (r *AchievementRepository) FindByUserID(userID uint) ([]model.UserAchievement, error) {
	var achievements []model.UserAchievement
	err := r.DB.Where("user_id = ?", userID).Order("unlocked_at ASC").Find(&achievements).Error
	return achievements, err
}

