package service

import (
	"testing"
	"time"

	"studytrack_backend/internal/catalog"
	"studytrack_backend/internal/model"

	"github.com/stretchr/testify/assert"
)

func TestCategoryBreakdown(t *testing.T) {
	// Two of seven JavaScript & DOM modules done.
	stats := CategoryBreakdown(ledgerOf(14, 15))

	assert.Len(t, stats, len(catalog.Categories))
	for _, cat := range stats {
		if cat.Name == "JavaScript & DOM" {
			assert.Equal(t, 2, cat.Completed)
			assert.Equal(t, 7, cat.Total)
			assert.Equal(t, 29, cat.Percentage)
		} else {
			assert.Equal(t, 0, cat.Completed)
		}
	}
}

func TestPickNextModule(t *testing.T) {
	// In-progress modules win over the sequence.
	ledger := []model.ModuleProgress{
		{ModuleID: 1, Status: model.StatusCompleted},
		{ModuleID: 5, Status: model.StatusInProgress},
	}
	next := PickNextModule(ledger)
	assert.Equal(t, 5, next.ID)
	assert.Equal(t, model.StatusInProgress, next.Status)

	// With nothing in progress, the first incomplete module in sequence.
	next = PickNextModule(ledgerOf(1, 2))
	assert.Equal(t, 3, next.ID)
	assert.Equal(t, model.StatusNotStarted, next.Status)

	// Everything done.
	next = PickNextModule(ledgerOf(rangeIDs(1, 46)...))
	assert.Equal(t, 46, next.ID)
	assert.Equal(t, "All modules completed!", next.Title)
	assert.Equal(t, model.StatusCompleted, next.Status)
}

func TestStudyHoursSeries(t *testing.T) {
	loc := time.UTC
	// Wednesday noon.
	now := time.Date(2025, time.March, 12, 12, 0, 0, 0, loc)

	done := func(id int, at time.Time) model.ModuleProgress {
		rec := model.ModuleProgress{ModuleID: id, Status: model.StatusCompleted}
		rec.UpdatedAt = at
		return rec
	}

	ledger := []model.ModuleProgress{
		done(1, time.Date(2025, time.March, 11, 9, 0, 0, 0, loc)),  // Tuesday
		done(2, time.Date(2025, time.March, 11, 20, 0, 0, 0, loc)), // Tuesday
		done(3, time.Date(2025, time.March, 9, 9, 0, 0, 0, loc)),   // Sunday
		done(4, time.Date(2025, time.January, 1, 9, 0, 0, 0, loc)), // far outside the window
	}
	ledger = append(ledger, model.ModuleProgress{ModuleID: 5, Status: model.StatusInProgress})

	series, total := StudyHoursSeries(ledger, now, loc)

	assert.Len(t, series, 7)
	assert.Equal(t, "Mon", series[0].Day)
	assert.Equal(t, 2*hoursPerModule, series[1].Hours) // Tue
	assert.Equal(t, hoursPerModule, series[6].Hours)   // Sun
	assert.Equal(t, 0.0, series[0].Hours)
	assert.Equal(t, 3*hoursPerModule, total)
}

func TestRecommendModulesFocusesWeakestCategories(t *testing.T) {
	// Front-End Fundamentals nearly done, the rest untouched.
	picks := RecommendModules(ledgerOf(rangeIDs(1, 12)...))

	assert.Len(t, picks, 3)
	for _, m := range picks {
		assert.NotEqual(t, "Front-End Fundamentals", m.Category)
	}
}

func TestRecommendModulesIncludesExplicitNotStartedRows(t *testing.T) {
	// A module knocked back to not-started keeps its ledger row; it must
	// still be recommended like a module that was never touched.
	ledger := []model.ModuleProgress{
		{ModuleID: 1, Status: model.StatusNotStarted},
	}

	picks := RecommendModules(ledger)

	assert.Len(t, picks, 3)
	assert.Equal(t, 1, picks[0].ID)
}

func TestRecommendModulesEmptyLedger(t *testing.T) {
	picks := RecommendModules(nil)

	assert.Len(t, picks, 3)
	// An empty ledger leaves every category at zero, so the first
	// modules in sequence come back.
	assert.Equal(t, 1, picks[0].ID)
}

func TestRecommendModulesFallsBackToInProgress(t *testing.T) {
	ledger := ledgerOf(rangeIDs(1, 46)...)
	ledger[9].Status = model.StatusInProgress // module 10

	picks := RecommendModules(ledger)

	assert.Len(t, picks, 1)
	assert.Equal(t, 10, picks[0].ID)
}

func TestRecommendModulesNothingLeft(t *testing.T) {
	assert.Empty(t, RecommendModules(ledgerOf(rangeIDs(1, 46)...)))
}
