package service

import (
	"testing"
	"time"

	"studytrack_backend/internal/model"

	"github.com/stretchr/testify/assert"
)

func TestComputeStreak(t *testing.T) {
	loc := time.UTC
	now := time.Date(2025, time.March, 10, 15, 30, 0, 0, loc)

	ptr := func(t time.Time) *time.Time { return &t }

	tests := []struct {
		name        string
		previous    int
		lastUpdated *time.Time
		want        int
	}{
		{
			name:        "first ever activity",
			previous:    0,
			lastUpdated: nil,
			want:        1,
		},
		{
			name:        "updated yesterday extends",
			previous:    5,
			lastUpdated: ptr(time.Date(2025, time.March, 9, 23, 59, 0, 0, loc)),
			want:        6,
		},
		{
			name:        "second update today keeps streak",
			previous:    5,
			lastUpdated: ptr(time.Date(2025, time.March, 10, 8, 0, 0, 0, loc)),
			want:        5,
		},
		{
			name:        "two day gap resets",
			previous:    5,
			lastUpdated: ptr(time.Date(2025, time.March, 8, 12, 0, 0, 0, loc)),
			want:        1,
		},
		{
			name:        "long gap resets",
			previous:    30,
			lastUpdated: ptr(time.Date(2025, time.January, 1, 12, 0, 0, 0, loc)),
			want:        1,
		},
		{
			name:        "future timestamp resets",
			previous:    5,
			lastUpdated: ptr(time.Date(2025, time.March, 12, 0, 0, 0, 0, loc)),
			want:        1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ComputeStreak(tt.previous, tt.lastUpdated, now, loc)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestComputeStreakCalendarDaysNotWindows(t *testing.T) {
	loc := time.UTC

	// 11pm yesterday to 1am today is two hours apart but still counts
	// as consecutive days.
	last := time.Date(2025, time.March, 9, 23, 0, 0, 0, loc)
	now := time.Date(2025, time.March, 10, 1, 0, 0, 0, loc)
	assert.Equal(t, 4, ComputeStreak(3, &last, now, loc))

	// 1am yesterday to 11pm today is forty-six hours apart and still
	// only one day apart.
	last = time.Date(2025, time.March, 9, 1, 0, 0, 0, loc)
	now = time.Date(2025, time.March, 10, 23, 0, 0, 0, loc)
	assert.Equal(t, 4, ComputeStreak(3, &last, now, loc))
}

func TestComputeStreakAcrossMonthBoundary(t *testing.T) {
	loc := time.UTC
	last := time.Date(2025, time.February, 28, 20, 0, 0, 0, loc)
	now := time.Date(2025, time.March, 1, 9, 0, 0, 0, loc)
	assert.Equal(t, 8, ComputeStreak(7, &last, now, loc))
}

func TestApplyStatusCreatesThenUpdatesOneRow(t *testing.T) {
	loc := time.UTC
	first := time.Date(2025, time.March, 10, 9, 0, 0, 0, loc)
	second := time.Date(2025, time.March, 11, 18, 0, 0, 0, loc)

	created := applyStatus(nil, 7, 3, model.StatusInProgress, first)
	assert.Equal(t, uint(7), created.UserID)
	assert.Equal(t, 3, created.ModuleID)
	assert.Equal(t, model.StatusInProgress, created.Status)
	assert.Equal(t, first, created.StartedAt)
	assert.Equal(t, first, created.UpdatedAt)

	created.ID = 42 // persisted

	updated := applyStatus(&created, 7, 3, model.StatusCompleted, second)

	// Same row, not a second one.
	assert.Equal(t, created.ID, updated.ID)
	assert.Equal(t, created.UserID, updated.UserID)
	assert.Equal(t, created.ModuleID, updated.ModuleID)

	// StartedAt never moves after the first transition; UpdatedAt follows
	// the latest one.
	assert.Equal(t, first, updated.StartedAt)
	assert.Equal(t, second, updated.UpdatedAt)
	assert.Equal(t, model.StatusCompleted, updated.Status)

	// The input row is left untouched.
	assert.Equal(t, model.StatusInProgress, created.Status)
	assert.Equal(t, first, created.UpdatedAt)
}

func TestApplyStatusSameDayDoubleUpdate(t *testing.T) {
	loc := time.UTC
	first := time.Date(2025, time.March, 10, 9, 0, 0, 0, loc)
	second := first.Add(2 * time.Hour)

	row := applyStatus(nil, 1, 5, model.StatusInProgress, first)
	row.ID = 1
	row = applyStatus(&row, 1, 5, model.StatusInProgress, second)

	assert.Equal(t, first, row.StartedAt)
	assert.Equal(t, second, row.UpdatedAt)
}
