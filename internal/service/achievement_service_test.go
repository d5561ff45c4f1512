package service

import (
	"testing"

	"studytrack_backend/internal/catalog"
	"studytrack_backend/internal/model"

	"github.com/stretchr/testify/assert"
)

func ledgerOf(completed ...int) []model.ModuleProgress {
	ledger := make([]model.ModuleProgress, 0, len(completed))
	for _, id := range completed {
		ledger = append(ledger, model.ModuleProgress{
			ModuleID: id,
			Status:   model.StatusCompleted,
		})
	}
	return ledger
}

func rangeIDs(from, to int) []int {
	ids := make([]int, 0, to-from+1)
	for id := from; id <= to; id++ {
		ids = append(ids, id)
	}
	return ids
}

func TestEvaluateAchievementsCompletionCounts(t *testing.T) {
	newly := EvaluateAchievements(ledgerOf(1), 1, nil)
	assert.Contains(t, newly, catalog.AchFirstModule)
	assert.NotContains(t, newly, catalog.AchFiveModules)

	newly = EvaluateAchievements(ledgerOf(1, 2, 3, 4, 5), 1, nil)
	assert.Contains(t, newly, catalog.AchFiveModules)
	assert.NotContains(t, newly, catalog.AchTenModules)

	newly = EvaluateAchievements(ledgerOf(rangeIDs(1, 10)...), 1, nil)
	assert.Contains(t, newly, catalog.AchTenModules)
}

func TestEvaluateAchievementsInProgressDoesNotCount(t *testing.T) {
	ledger := []model.ModuleProgress{
		{ModuleID: 1, Status: model.StatusInProgress},
		{ModuleID: 2, Status: model.StatusNotStarted},
	}
	assert.Empty(t, EvaluateAchievements(ledger, 1, nil))
}

func TestEvaluateAchievementsStreaks(t *testing.T) {
	assert.Empty(t, EvaluateAchievements(nil, 2, nil))

	newly := EvaluateAchievements(nil, 3, nil)
	assert.Equal(t, []string{catalog.AchThreeDayStreak}, newly)

	newly = EvaluateAchievements(nil, 7, nil)
	assert.ElementsMatch(t, []string{catalog.AchThreeDayStreak, catalog.AchSevenDayStreak}, newly)
}

func TestEvaluateAchievementsCategoryHalfNeedsMajority(t *testing.T) {
	// JavaScript & DOM holds seven modules, so half rounds up to four.
	newly := EvaluateAchievements(ledgerOf(14, 15, 16), 1, nil)
	assert.NotContains(t, newly, "js_dom_50")

	newly = EvaluateAchievements(ledgerOf(14, 15, 16, 17), 1, nil)
	assert.Contains(t, newly, "js_dom_50")
	assert.NotContains(t, newly, "js_dom_complete")
}

func TestEvaluateAchievementsCategoryComplete(t *testing.T) {
	newly := EvaluateAchievements(ledgerOf(rangeIDs(14, 20)...), 1, nil)
	assert.Contains(t, newly, "js_dom_50")
	assert.Contains(t, newly, "js_dom_complete")
	assert.NotContains(t, newly, "html_css_50")
}

func TestEvaluateAchievementsOverallTiers(t *testing.T) {
	// 23 of 46 is exactly 50 percent.
	newly := EvaluateAchievements(ledgerOf(rangeIDs(1, 23)...), 1, nil)
	assert.Contains(t, newly, catalog.AchHalfwayCourse)
	assert.NotContains(t, newly, catalog.AchCourse75)

	// 22 of 46 rounds to 48 percent.
	newly = EvaluateAchievements(ledgerOf(rangeIDs(1, 22)...), 1, nil)
	assert.NotContains(t, newly, catalog.AchHalfwayCourse)

	// 35 of 46 rounds to 76 percent, 34 only to 74.
	newly = EvaluateAchievements(ledgerOf(rangeIDs(1, 34)...), 1, nil)
	assert.NotContains(t, newly, catalog.AchCourse75)
	newly = EvaluateAchievements(ledgerOf(rangeIDs(1, 35)...), 1, nil)
	assert.Contains(t, newly, catalog.AchCourse75)
}

func TestEvaluateAchievementsFullCourse(t *testing.T) {
	newly := EvaluateAchievements(ledgerOf(rangeIDs(1, 46)...), 7, nil)

	// Everything unlocks at once from a clean slate.
	assert.Len(t, newly, len(catalog.Achievements))
	assert.Contains(t, newly, catalog.AchCourseComplete)
}

func TestEvaluateAchievementsSkipsAlreadyUnlocked(t *testing.T) {
	unlocked := map[string]bool{
		catalog.AchFirstModule: true,
	}
	newly := EvaluateAchievements(ledgerOf(1, 2), 1, unlocked)
	assert.NotContains(t, newly, catalog.AchFirstModule)
}

func TestEvaluateAchievementsIdempotent(t *testing.T) {
	ledger := ledgerOf(rangeIDs(1, 23)...)

	first := EvaluateAchievements(ledger, 5, nil)
	assert.NotEmpty(t, first)

	unlocked := make(map[string]bool, len(first))
	for _, code := range first {
		unlocked[code] = true
	}
	assert.Empty(t, EvaluateAchievements(ledger, 5, unlocked))
}

func TestEvaluateAchievementsNoDuplicates(t *testing.T) {
	newly := EvaluateAchievements(ledgerOf(rangeIDs(1, 46)...), 10, nil)
	seen := make(map[string]bool)
	for _, code := range newly {
		assert.False(t, seen[code], "duplicate code %s", code)
		seen[code] = true
	}
}

func TestCompletionPercent(t *testing.T) {
	assert.Equal(t, 0, CompletionPercent(nil))
	assert.Equal(t, 2, CompletionPercent(ledgerOf(1)))
	assert.Equal(t, 50, CompletionPercent(ledgerOf(rangeIDs(1, 23)...)))
	assert.Equal(t, 100, CompletionPercent(ledgerOf(rangeIDs(1, 46)...)))
}
