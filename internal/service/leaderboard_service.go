package service

import (
	"sort"
	"time"

	"studytrack_backend/internal/model"
	"studytrack_backend/internal/repository"
)

type LeaderboardService struct {
	UserRepo     *repository.UserRepository
	ProgressRepo *repository.ProgressRepository

	loc *time.Location
	now func() time.Time
}

func NewLeaderboardService(userRepo *repository.UserRepository, progressRepo *repository.ProgressRepository) *LeaderboardService {
	return &LeaderboardService{
		UserRepo:     userRepo,
		ProgressRepo: progressRepo,
		loc:          time.Local,
		now:          time.Now,
	}
}

type LeaderboardEntry struct {
	Rank             int    `json:"rank"`
	UserID           uint   `json:"userId"`
	Name             string `json:"name"`
	Completion       int    `json:"completion"`
	CompletedModules int    `json:"completedModules"`
	Streak           int    `json:"streak"`
}

type WeeklyActivityEntry struct {
	Rank     int    `json:"rank"`
	UserID   uint   `json:"userId"`
	Name     string `json:"name"`
	ThisWeek int    `json:"thisWeek"`
}

// BuildLeaderboard ranks users by overall completion percentage,
// descending. The sort is stable: ties keep the input order.
func BuildLeaderboard(users []model.User, ledgers map[uint][]model.ModuleProgress) []LeaderboardEntry {
	entries := make([]LeaderboardEntry, len(users))
	for i, user := range users {
		ledger := ledgers[user.ID]
		entries[i] = LeaderboardEntry{
			UserID:           user.ID,
			Name:             user.Name,
			Completion:       CompletionPercent(ledger),
			CompletedModules: countCompleted(ledger),
			Streak:           user.Streak,
		}
	}

	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Completion > entries[j].Completion
	})
	for i := range entries {
		entries[i].Rank = i + 1
	}
	return entries
}

// StartOfWeek is midnight of the most recent Sunday in loc.
func StartOfWeek(now time.Time, loc *time.Location) time.Time {
	t := now.In(loc)
	midnight := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, loc)
	return midnight.AddDate(0, 0, -int(t.Weekday()))
}

// WeeklyCompletionCount counts modules completed since the start of the
// current week.
func WeeklyCompletionCount(ledger []model.ModuleProgress, now time.Time, loc *time.Location) int {
	start := StartOfWeek(now, loc)
	n := 0
	for _, rec := range ledger {
		if rec.Status == model.StatusCompleted && !rec.UpdatedAt.Before(start) {
			n++
		}
	}
	return n
}

// BuildWeeklyActivity ranks users by modules completed this week,
// descending, stable on ties.
func BuildWeeklyActivity(users []model.User, ledgers map[uint][]model.ModuleProgress, now time.Time, loc *time.Location) []WeeklyActivityEntry {
	entries := make([]WeeklyActivityEntry, len(users))
	for i, user := range users {
		entries[i] = WeeklyActivityEntry{
			UserID:   user.ID,
			Name:     user.Name,
			ThisWeek: WeeklyCompletionCount(ledgers[user.ID], now, loc),
		}
	}

	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].ThisWeek > entries[j].ThisWeek
	})
	for i := range entries {
		entries[i].Rank = i + 1
	}
	return entries
}

func (s *LeaderboardService) loadRoster() ([]model.User, map[uint][]model.ModuleProgress, error) {
	users, err := s.UserRepo.FindAll()
	if err != nil {
		return nil, nil, err
	}

	records, err := s.ProgressRepo.FindAll()
	if err != nil {
		return nil, nil, err
	}

	ledgers := make(map[uint][]model.ModuleProgress)
	for _, rec := range records {
		ledgers[rec.UserID] = append(ledgers[rec.UserID], rec)
	}
	return users, ledgers, nil
}

func (s *LeaderboardService) GetLeaderboard() ([]LeaderboardEntry, error) {
	users, ledgers, err := s.loadRoster()
	if err != nil {
		return nil, err
	}
	return BuildLeaderboard(users, ledgers), nil
}

func (s *LeaderboardService) GetWeeklyActivity() ([]WeeklyActivityEntry, error) {
	users, ledgers, err := s.loadRoster()
	if err != nil {
		return nil, err
	}
	return BuildWeeklyActivity(users, ledgers, s.now(), s.loc), nil
}
