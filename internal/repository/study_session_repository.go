package repository

import (
	"time"

	"studytrack_backend/internal/model"

	"gorm.io/gorm"
)

type StudySessionRepository struct {
	DB *gorm.DB
}

func NewStudySessionRepository(db *gorm.DB) *StudySessionRepository {
	return &StudySessionRepository{DB: db}
}

func (r *StudySessionRepository) Create(session *model.StudySession) error {
	return r.DB.Create(session).Error
}

func (r *StudySessionRepository) FindByUser(userID uint, limit int) ([]model.StudySession, error) {
	var sessions []model.StudySession
	q := r.DB.Where("user_id = ?", userID).Order("date DESC")
	if limit > 0 {
		q = q.Limit(limit)
	}
	err := q.Find(&sessions).Error
	return sessions, err
}

func (r *StudySessionRepository) CountByUser(userID uint) (int64, error) {
	var count int64
	err := r.DB.Model(&model.StudySession{}).Where("user_id = ?", userID).Count(&count).Error
	return count, err
}

// SumFocusSince totals focus minutes logged at or after the cutoff.
func (r *StudySessionRepository) SumFocusSince(userID uint, cutoff time.Time) (int64, error) {
	var total int64
	err := r.DB.Model(&model.StudySession{}).
		Where("user_id = ? AND mode = ? AND date >= ?", userID, model.ModeFocus, cutoff).
		Select("COALESCE(SUM(duration), 0)").
		Scan(&total).Error
	return total, err
}
