package service

import (
	"errors"
	"time"

	"studytrack_backend/internal/model"
	"studytrack_backend/internal/repository"
	"studytrack_backend/internal/util"
	"studytrack_backend/pkg/monitoring"

	"gorm.io/gorm"
)

// ProgressService owns the module-status update flow: ledger mutation,
// streak recalculation and achievement unlocking, all in one transaction.
type ProgressService struct {
	ProgressRepo *repository.ProgressRepository
	Feed         *FeedService
	DB           *gorm.DB

	loc *time.Location
	now func() time.Time
}

func NewProgressService(
	progressRepo *repository.ProgressRepository,
	feed *FeedService,
	db *gorm.DB,
) *ProgressService {
	return &ProgressService{
		ProgressRepo: progressRepo,
		Feed:         feed,
		DB:           db,
		loc:          time.Local,
		now:          time.Now,
	}
}

// ComputeStreak derives the consecutive-day study streak from the previous
// streak and the last update time. Days are calendar days in loc, not
// 24-hour windows: an update the day after the last one extends the streak,
// a second update on the same day leaves it alone, anything else (a gap of
// two or more days, or a lastUpdated in the future) resets it to 1. A nil
// lastUpdated means first-ever activity.
func ComputeStreak(previous int, lastUpdated *time.Time, now time.Time, loc *time.Location) int {
	if lastUpdated == nil {
		return 1
	}

	last := calendarDay(lastUpdated.In(loc))
	today := calendarDay(now.In(loc))
	yesterday := calendarDay(now.In(loc).AddDate(0, 0, -1))

	switch last {
	case yesterday:
		return previous + 1
	case today:
		return previous
	default:
		return 1
	}
}

type day struct {
	year  int
	month time.Month
	dom   int
}

func calendarDay(t time.Time) day {
	y, m, d := t.Date()
	return day{year: y, month: m, dom: d}
}

// applyStatus produces the ledger row for (userID, moduleID) after one
// transition at now. With no existing row a fresh record starts life with
// StartedAt = now; an existing row keeps its identity and its StartedAt,
// only Status and UpdatedAt move. The caller persists the result, so the
// row count per (user, module) never goes above one.
func applyStatus(existing *model.ModuleProgress, userID uint, moduleID int, status model.ProgressStatus, now time.Time) model.ModuleProgress {
	if existing == nil {
		record := model.ModuleProgress{
			UserID:    userID,
			ModuleID:  moduleID,
			Status:    status,
			StartedAt: now,
		}
		record.CreatedAt = now
		record.UpdatedAt = now
		return record
	}

	record := *existing
	record.Status = status
	record.UpdatedAt = now
	return record
}

// ProgressUpdateResult is what a status update hands back to the caller.
type ProgressUpdateResult struct {
	Ledger        []model.ModuleProgress `json:"progress"`
	Streak        int                    `json:"streak"`
	NewlyUnlocked []string               `json:"newlyUnlocked"`
}

// UpdateModuleStatus applies one status transition for (userID, moduleID).
// A missing ledger row is created with startedAt = now; an existing one
// keeps its startedAt. The user's streak and lastUpdated move, then the
// achievement evaluator runs against the fresh ledger. Module ids are not
// checked against the catalog: unknown ids are stored as-is.
func (s *ProgressService) UpdateModuleStatus(userID uint, moduleID int, status model.ProgressStatus) (*ProgressUpdateResult, error) {
	if !model.ValidStatus(status) {
		return nil, util.ErrInvalidStatus
	}

	now := s.now()
	result := &ProgressUpdateResult{}

	err := s.DB.Transaction(func(tx *gorm.DB) error {
		var user model.User
		if err := tx.First(&user, userID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return util.ErrUserNotFound
			}
			return err
		}

		var record model.ModuleProgress
		err := tx.Where("user_id = ? AND module_id = ?", userID, moduleID).First(&record).Error
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			record = applyStatus(nil, userID, moduleID, status, now)
			if err := tx.Create(&record).Error; err != nil {
				return err
			}
		case err != nil:
			return err
		default:
			record = applyStatus(&record, userID, moduleID, status, now)
			if err := tx.Save(&record).Error; err != nil {
				return err
			}
		}

		streak := ComputeStreak(user.Streak, user.LastUpdated, now, s.loc)
		user.Streak = streak
		user.LastUpdated = &now
		if err := tx.Save(&user).Error; err != nil {
			return err
		}

		var ledger []model.ModuleProgress
		if err := tx.Where("user_id = ?", userID).Order("module_id ASC").Find(&ledger).Error; err != nil {
			return err
		}

		var existing []model.UserAchievement
		if err := tx.Where("user_id = ?", userID).Find(&existing).Error; err != nil {
			return err
		}
		unlocked := make(map[string]bool, len(existing))
		for _, a := range existing {
			unlocked[a.Code] = true
		}

		newly := EvaluateAchievements(ledger, streak, unlocked)
		for _, code := range newly {
			achievement := model.UserAchievement{
				UserID:     userID,
				Code:       code,
				UnlockedAt: now,
			}
			if err := tx.Create(&achievement).Error; err != nil {
				return err
			}
		}

		result.Ledger = ledger
		result.Streak = streak
		result.NewlyUnlocked = newly
		return nil
	})
	if err != nil {
		return nil, err
	}

	monitoring.ProgressUpdateCounter.WithLabelValues(string(status)).Inc()
	if n := len(result.NewlyUnlocked); n > 0 {
		monitoring.AchievementCounter.Add(float64(n))
	}

	if s.Feed != nil {
		s.Feed.Publish(FeedEvent{
			Type:      EventProgressUpdated,
			UserID:    userID,
			ModuleID:  moduleID,
			Status:    string(status),
			Streak:    result.Streak,
			Timestamp: now,
		})
		if len(result.NewlyUnlocked) > 0 {
			s.Feed.Publish(FeedEvent{
				Type:         EventAchievementUnlocked,
				UserID:       userID,
				Achievements: result.NewlyUnlocked,
				Timestamp:    now,
			})
		}
	}

	return result, nil
}

// GetLedger returns the user's progress records.
func (s *ProgressService) GetLedger(userID uint) ([]model.ModuleProgress, error) {
	return s.ProgressRepo.FindByUser(userID)
}
