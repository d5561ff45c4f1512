package service

import (
	"math"

	"studytrack_backend/internal/catalog"
	"studytrack_backend/internal/model"
	"studytrack_backend/internal/repository"
)

// CompletionPercent is the one percentage formula shared by the evaluator,
// the leaderboard and the dashboard: completed modules over the catalog
// size, rounded half up.
func CompletionPercent(ledger []model.ModuleProgress) int {
	return percent(countCompleted(ledger), catalog.TotalModules())
}

func percent(completed, total int) int {
	if total == 0 {
		return 0
	}
	return int(math.Round(float64(completed) / float64(total) * 100))
}

func countCompleted(ledger []model.ModuleProgress) int {
	n := 0
	for _, rec := range ledger {
		if rec.Status == model.StatusCompleted {
			n++
		}
	}
	return n
}

// EvaluateAchievements returns the badge ids newly earned by the given
// ledger and streak, skipping anything already in unlocked. It is pure:
// no I/O, no mutation of its inputs, and running it again on the same
// inputs plus its own output yields nothing.
func EvaluateAchievements(ledger []model.ModuleProgress, streak int, unlocked map[string]bool) []string {
	newly := []string{}
	seen := make(map[string]bool)
	award := func(code string) {
		if unlocked[code] || seen[code] {
			return
		}
		seen[code] = true
		newly = append(newly, code)
	}

	completedCount := countCompleted(ledger)

	if completedCount >= 1 {
		award(catalog.AchFirstModule)
	}
	if completedCount >= 5 {
		award(catalog.AchFiveModules)
	}
	if completedCount >= 10 {
		award(catalog.AchTenModules)
	}

	if streak >= 3 {
		award(catalog.AchThreeDayStreak)
	}
	if streak >= 7 {
		award(catalog.AchSevenDayStreak)
	}

	completedByModule := make(map[int]bool, len(ledger))
	for _, rec := range ledger {
		if rec.Status == model.StatusCompleted {
			completedByModule[rec.ModuleID] = true
		}
	}

	for _, cat := range catalog.Categories {
		ids := catalog.ModulesInCategory(cat.Name)
		total := len(ids)
		completed := 0
		for _, id := range ids {
			if completedByModule[id] {
				completed++
			}
		}

		// an odd-sized category needs the majority, not exactly half
		half := (total + 1) / 2
		if total > 0 && completed >= half {
			award(cat.ShortID + "_50")
		}
		if total > 0 && completed >= total {
			award(cat.ShortID + "_complete")
		}
	}

	overallPct := percent(completedCount, catalog.TotalModules())
	if overallPct >= 50 {
		award(catalog.AchHalfwayCourse)
	}
	if overallPct >= 75 {
		award(catalog.AchCourse75)
	}
	if overallPct >= 100 {
		award(catalog.AchCourseComplete)
	}

	return newly
}

type AchievementService struct {
	AchievementRepo *repository.AchievementRepository
	UserRepo        *repository.UserRepository
}

func NewAchievementService(
	achievementRepo *repository.AchievementRepository,
	userRepo *repository.UserRepository,
) *AchievementService {
	return &AchievementService{
		AchievementRepo: achievementRepo,
		UserRepo:        userRepo,
	}
}

// Badge is an achievement definition annotated with the user's unlock state.
type Badge struct {
	catalog.AchievementDef
	Unlocked   bool   `json:"unlocked"`
	UnlockedAt string `json:"unlockedAt,omitempty"`
}

type UserAchievements struct {
	Badges   []Badge `json:"badges"`
	Unlocked int     `json:"unlocked"`
	Total    int     `json:"total"`
}

// GetUserAchievements returns all 18 badge definitions with the user's
// unlock state stamped on.
func (s *AchievementService) GetUserAchievements(userID uint) (*UserAchievements, error) {
	rows, err := s.AchievementRepo.FindByUserID(userID)
	if err != nil {
		return nil, err
	}

	unlockedAt := make(map[string]string, len(rows))
	for _, row := range rows {
		unlockedAt[row.Code] = row.UnlockedAt.Format("2006-01-02T15:04:05Z07:00")
	}

	badges := make([]Badge, len(catalog.Achievements))
	unlocked := 0
	for i, def := range catalog.Achievements {
		badges[i] = Badge{AchievementDef: def}
		if at, ok := unlockedAt[def.ID]; ok {
			badges[i].Unlocked = true
			badges[i].UnlockedAt = at
			unlocked++
		}
	}

	return &UserAchievements{
		Badges:   badges,
		Unlocked: unlocked,
		Total:    len(badges),
	}, nil
}
