package service

import (
	"testing"
	"time"

	"studytrack_backend/internal/model"

	"github.com/stretchr/testify/assert"
)

func TestBuildLeaderboardOrdersByCompletion(t *testing.T) {
	users := []model.User{
		{Name: "Ana"},
		{Name: "Ben"},
		{Name: "Cleo"},
	}
	users[0].ID = 1
	users[1].ID = 2
	users[2].ID = 3

	ledgers := map[uint][]model.ModuleProgress{
		1: ledgerOf(rangeIDs(1, 5)...),
		2: ledgerOf(rangeIDs(1, 20)...),
		3: ledgerOf(1),
	}

	entries := BuildLeaderboard(users, ledgers)

	assert.Len(t, entries, 3)
	assert.Equal(t, "Ben", entries[0].Name)
	assert.Equal(t, 1, entries[0].Rank)
	assert.Equal(t, 20, entries[0].CompletedModules)
	assert.Equal(t, "Ana", entries[1].Name)
	assert.Equal(t, "Cleo", entries[2].Name)
	assert.Equal(t, 3, entries[2].Rank)
}

func TestBuildLeaderboardStableOnTies(t *testing.T) {
	users := []model.User{
		{Name: "First"},
		{Name: "Second"},
		{Name: "Third"},
	}
	users[0].ID = 1
	users[1].ID = 2
	users[2].ID = 3

	// Second and Third tie, First trails.
	ledgers := map[uint][]model.ModuleProgress{
		1: ledgerOf(1),
		2: ledgerOf(rangeIDs(1, 10)...),
		3: ledgerOf(rangeIDs(11, 20)...),
	}

	entries := BuildLeaderboard(users, ledgers)

	assert.Equal(t, "Second", entries[0].Name)
	assert.Equal(t, "Third", entries[1].Name)
	assert.Equal(t, entries[0].Completion, entries[1].Completion)
	assert.Equal(t, "First", entries[2].Name)
}

func TestBuildLeaderboardUserWithoutLedger(t *testing.T) {
	users := []model.User{{Name: "Empty"}}
	users[0].ID = 7

	entries := BuildLeaderboard(users, nil)

	assert.Len(t, entries, 1)
	assert.Equal(t, 0, entries[0].Completion)
	assert.Equal(t, 0, entries[0].CompletedModules)
}

func TestStartOfWeek(t *testing.T) {
	loc := time.UTC

	// Wednesday March 12 2025 rolls back to Sunday March 9.
	now := time.Date(2025, time.March, 12, 15, 30, 0, 0, loc)
	assert.Equal(t, time.Date(2025, time.March, 9, 0, 0, 0, 0, loc), StartOfWeek(now, loc))

	// Sunday itself is already the start of the week.
	now = time.Date(2025, time.March, 9, 23, 0, 0, 0, loc)
	assert.Equal(t, time.Date(2025, time.March, 9, 0, 0, 0, 0, loc), StartOfWeek(now, loc))
}

func TestWeeklyCompletionCount(t *testing.T) {
	loc := time.UTC
	now := time.Date(2025, time.March, 12, 12, 0, 0, 0, loc)

	at := func(day int) time.Time {
		return time.Date(2025, time.March, day, 10, 0, 0, 0, loc)
	}

	ledger := []model.ModuleProgress{
		{ModuleID: 1, Status: model.StatusCompleted},
		{ModuleID: 2, Status: model.StatusCompleted},
		{ModuleID: 3, Status: model.StatusCompleted},
		{ModuleID: 4, Status: model.StatusInProgress},
	}
	ledger[0].UpdatedAt = at(10) // this week
	ledger[1].UpdatedAt = at(9)  // Sunday, still this week
	ledger[2].UpdatedAt = at(8)  // last week
	ledger[3].UpdatedAt = at(11) // this week but not completed

	assert.Equal(t, 2, WeeklyCompletionCount(ledger, now, loc))
}

func TestBuildWeeklyActivity(t *testing.T) {
	loc := time.UTC
	now := time.Date(2025, time.March, 12, 12, 0, 0, 0, loc)

	users := []model.User{{Name: "Ana"}, {Name: "Ben"}}
	users[0].ID = 1
	users[1].ID = 2

	recent := model.ModuleProgress{ModuleID: 1, Status: model.StatusCompleted}
	recent.UpdatedAt = time.Date(2025, time.March, 11, 9, 0, 0, 0, loc)
	stale := model.ModuleProgress{ModuleID: 2, Status: model.StatusCompleted}
	stale.UpdatedAt = time.Date(2025, time.February, 1, 9, 0, 0, 0, loc)

	ledgers := map[uint][]model.ModuleProgress{
		1: {stale},
		2: {recent, stale},
	}

	entries := BuildWeeklyActivity(users, ledgers, now, loc)

	assert.Equal(t, "Ben", entries[0].Name)
	assert.Equal(t, 1, entries[0].ThisWeek)
	assert.Equal(t, "Ana", entries[1].Name)
	assert.Equal(t, 0, entries[1].ThisWeek)
	assert.Equal(t, 2, entries[1].Rank)
}
