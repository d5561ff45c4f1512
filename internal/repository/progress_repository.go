package repository

import (
	"studytrack_backend/internal/model"

	"gorm.io/gorm"
)

type ProgressRepository struct {
	DB *gorm.DB
}

func NewProgressRepository(db *gorm.DB) *ProgressRepository {
	return &ProgressRepository{DB: db}
}

// FindByUser returns the user's full ledger ordered by module id.
func (r *ProgressRepository) FindByUser(userID uint) ([]model.ModuleProgress, error) {
	var records []model.ModuleProgress
	err := r.DB.Where("user_id = ?", userID).Order("module_id ASC").Find(&records).Error
	return records, err
}

// FindAll loads every ledger row; callers bucket by user.
func (r *ProgressRepository) FindAll() ([]model.ModuleProgress, error) {
	var records []model.ModuleProgress
	err := r.DB.Order("user_id ASC, module_id ASC").Find(&records).Error
	return records, err
}
