package catalog

import (
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCurriculumShape(t *testing.T) {
	assert.Equal(t, 46, TotalModules())
	assert.Len(t, Categories, 5)
	assert.Len(t, Achievements, 18)
}

func TestModulesAreSequential(t *testing.T) {
	for i, m := range Modules {
		assert.Equal(t, i+1, m.ID)
		assert.NotEmpty(t, m.Title)
		assert.NotNil(t, CategoryByName(m.Category), "module %d has unknown category %q", m.ID, m.Category)
	}
}

func TestCategoriesPartitionTheModules(t *testing.T) {
	seen := make(map[int]string)
	for _, cat := range Categories {
		for _, id := range ModulesInCategory(cat.Name) {
			owner, dup := seen[id]
			assert.False(t, dup, "module %d in both %q and %q", id, owner, cat.Name)
			seen[id] = cat.Name
		}
	}
	assert.Len(t, seen, TotalModules())
}

func TestCategoryRangesMatchMembership(t *testing.T) {
	for _, cat := range Categories {
		parts := strings.SplitN(cat.ModuleRange, "-", 2)
		require.Len(t, parts, 2)
		from, err := strconv.Atoi(parts[0])
		require.NoError(t, err)
		to, err := strconv.Atoi(parts[1])
		require.NoError(t, err)

		ids := ModulesInCategory(cat.Name)
		require.NotEmpty(t, ids)
		assert.Equal(t, from, ids[0])
		assert.Equal(t, to, ids[len(ids)-1])
		assert.Len(t, ids, to-from+1)
	}
}

func TestModuleByID(t *testing.T) {
	m := ModuleByID(1)
	require.NotNil(t, m)
	assert.Equal(t, 1, m.ID)

	assert.Nil(t, ModuleByID(0))
	assert.Nil(t, ModuleByID(47))
}

func TestAchievementIDs(t *testing.T) {
	byID := make(map[string]bool, len(Achievements))
	for _, def := range Achievements {
		assert.False(t, byID[def.ID], "duplicate achievement id %s", def.ID)
		byID[def.ID] = true
		assert.NotEmpty(t, def.Title)
		assert.NotEmpty(t, def.Description)
	}

	// Each category contributes a half and a complete badge.
	for _, cat := range Categories {
		assert.True(t, byID[cat.ShortID+"_50"], "missing %s_50", cat.ShortID)
		assert.True(t, byID[cat.ShortID+"_complete"], "missing %s_complete", cat.ShortID)
	}

	for _, id := range []string{
		AchFirstModule, AchFiveModules, AchTenModules,
		AchThreeDayStreak, AchSevenDayStreak,
		AchHalfwayCourse, AchCourse75, AchCourseComplete,
	} {
		assert.True(t, byID[id], "missing %s", id)
	}
}

func TestAchievementByID(t *testing.T) {
	def := AchievementByID(AchFirstModule)
	require.NotNil(t, def)
	assert.Equal(t, AchFirstModule, def.ID)

	assert.Nil(t, AchievementByID("nope"))
}
