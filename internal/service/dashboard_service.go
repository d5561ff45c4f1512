package service

import (
	"time"

	"studytrack_backend/internal/catalog"
	"studytrack_backend/internal/model"
	"studytrack_backend/internal/repository"
)

// hoursPerModule is the display heuristic for the study-hours chart.
const hoursPerModule = 1.5

type DashboardService struct {
	UserRepo        *repository.UserRepository
	ProgressRepo    *repository.ProgressRepository
	AchievementRepo *repository.AchievementRepository

	loc *time.Location
	now func() time.Time
}

func NewDashboardService(
	userRepo *repository.UserRepository,
	progressRepo *repository.ProgressRepository,
	achievementRepo *repository.AchievementRepository,
) *DashboardService {
	return &DashboardService{
		UserRepo:        userRepo,
		ProgressRepo:    progressRepo,
		AchievementRepo: achievementRepo,
		loc:             time.Local,
		now:             time.Now,
	}
}

type CategoryStat struct {
	Name       string `json:"name"`
	Color      string `json:"color"`
	Completed  int    `json:"completed"`
	Total      int    `json:"total"`
	Percentage int    `json:"percentage"`
}

// CategoryBreakdown computes per-category completion for a ledger.
func CategoryBreakdown(ledger []model.ModuleProgress) []CategoryStat {
	completedByModule := make(map[int]bool, len(ledger))
	for _, rec := range ledger {
		if rec.Status == model.StatusCompleted {
			completedByModule[rec.ModuleID] = true
		}
	}

	stats := make([]CategoryStat, len(catalog.Categories))
	for i, cat := range catalog.Categories {
		ids := catalog.ModulesInCategory(cat.Name)
		completed := 0
		for _, id := range ids {
			if completedByModule[id] {
				completed++
			}
		}
		stats[i] = CategoryStat{
			Name:       cat.Name,
			Color:      cat.Color,
			Completed:  completed,
			Total:      len(ids),
			Percentage: percent(completed, len(ids)),
		}
	}
	return stats
}

type NextModule struct {
	ID     int                  `json:"id"`
	Title  string               `json:"title"`
	Status model.ProgressStatus `json:"status"`
}

// PickNextModule suggests what to study next: the first in-progress module,
// else the first module in sequence not yet completed, else the last module.
func PickNextModule(ledger []model.ModuleProgress) NextModule {
	statusByModule := make(map[int]model.ProgressStatus, len(ledger))
	for _, rec := range ledger {
		statusByModule[rec.ModuleID] = rec.Status
	}

	for _, m := range catalog.Modules {
		if statusByModule[m.ID] == model.StatusInProgress {
			return NextModule{ID: m.ID, Title: m.Title, Status: model.StatusInProgress}
		}
	}

	for _, m := range catalog.Modules {
		if statusByModule[m.ID] != model.StatusCompleted {
			return NextModule{ID: m.ID, Title: m.Title, Status: model.StatusNotStarted}
		}
	}

	last := catalog.Modules[len(catalog.Modules)-1]
	return NextModule{ID: last.ID, Title: "All modules completed!", Status: model.StatusCompleted}
}

type DayHours struct {
	Day   string  `json:"day"`
	Hours float64 `json:"hours"`
}

// StudyHoursSeries estimates hours per day over the trailing seven days
// from module completions, at hoursPerModule each. Index 0 is Monday.
func StudyHoursSeries(ledger []model.ModuleProgress, now time.Time, loc *time.Location) ([]DayHours, float64) {
	days := []string{"Mon", "Tue", "Wed", "Thu", "Fri", "Sat", "Sun"}
	series := make([]DayHours, len(days))
	for i, d := range days {
		series[i] = DayHours{Day: d}
	}

	total := 0.0
	for _, rec := range ledger {
		if rec.Status != model.StatusCompleted {
			continue
		}
		daysAgo := int(now.Sub(rec.UpdatedAt).Hours() / 24)
		if daysAgo < 0 || daysAgo >= 7 {
			continue
		}
		weekday := int(rec.UpdatedAt.In(loc).Weekday()) // 0 = Sunday
		idx := (weekday + 6) % 7                        // Mon first
		series[idx].Hours += hoursPerModule
		total += hoursPerModule
	}
	return series, total
}

type Dashboard struct {
	Completion       int            `json:"completion"`
	CompletedModules int            `json:"completedModules"`
	TotalModules     int            `json:"totalModules"`
	Streak           int            `json:"streak"`
	Categories       []CategoryStat `json:"categories"`
	NextModule       NextModule     `json:"nextModule"`
	StudyHours       []DayHours     `json:"studyHours"`
	WeeklyStudyHours float64        `json:"weeklyStudyHours"`
	Achievements     int            `json:"achievementsUnlocked"`
}

func (s *DashboardService) GetDashboard(userID uint) (*Dashboard, error) {
	user, err := s.UserRepo.FindByID(userID)
	if err != nil {
		return nil, err
	}

	ledger, err := s.ProgressRepo.FindByUser(userID)
	if err != nil {
		return nil, err
	}

	achievements, err := s.AchievementRepo.FindByUserID(userID)
	if err != nil {
		return nil, err
	}

	series, weekly := StudyHoursSeries(ledger, s.now(), s.loc)

	return &Dashboard{
		Completion:       CompletionPercent(ledger),
		CompletedModules: countCompleted(ledger),
		TotalModules:     catalog.TotalModules(),
		Streak:           user.Streak,
		Categories:       CategoryBreakdown(ledger),
		NextModule:       PickNextModule(ledger),
		StudyHours:       series,
		WeeklyStudyHours: weekly,
		Achievements:     len(achievements),
	}, nil
}

type AnalyticsOverview struct {
	CompletionRate       int            `json:"completionRate"`
	TotalCompleted       int            `json:"totalCompleted"`
	CompletionsByWeekday []int          `json:"completionsByWeekday"` // Sunday first
	MostProductiveDay    string         `json:"mostProductiveDay"`
	StrongestCategory    string         `json:"strongestCategory"`
	Categories           []CategoryStat `json:"categories"`
	AvgMinutesPerModule  int            `json:"avgMinutesPerModule"`
}

func (s *DashboardService) GetAnalyticsOverview(userID uint) (*AnalyticsOverview, error) {
	user, err := s.UserRepo.FindByID(userID)
	if err != nil {
		return nil, err
	}

	ledger, err := s.ProgressRepo.FindByUser(userID)
	if err != nil {
		return nil, err
	}

	weekdays := []string{"Sunday", "Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday"}
	counts := make([]int, 7)
	for _, rec := range ledger {
		if rec.Status == model.StatusCompleted {
			counts[int(rec.UpdatedAt.In(s.loc).Weekday())]++
		}
	}
	best := 0
	for i, n := range counts {
		if n > counts[best] {
			best = i
		}
	}

	categories := CategoryBreakdown(ledger)
	strongest := ""
	maxPct := -1
	for _, cat := range categories {
		if cat.Percentage > maxPct {
			maxPct = cat.Percentage
			strongest = cat.Name
		}
	}

	completed := countCompleted(ledger)
	avg := 0
	if completed > 0 {
		avg = user.TotalStudyTime / completed
	}

	return &AnalyticsOverview{
		CompletionRate:       CompletionPercent(ledger),
		TotalCompleted:       completed,
		CompletionsByWeekday: counts,
		MostProductiveDay:    weekdays[best],
		StrongestCategory:    strongest,
		Categories:           categories,
		AvgMinutesPerModule:  avg,
	}, nil
}

var learningTips = []string{
	"Consistent daily practice, even in short sessions, is key to mastering programming skills.",
	"Teach what you learn to someone else; explaining a concept is the fastest way to find your gaps.",
	"Build something small with every module you finish, theory sticks when it ships.",
	"Take real breaks between focus sessions; tired debugging is slow debugging.",
	"Revisit a module you finished a week ago and skim it again; spaced repetition works for code too.",
}

type Recommendations struct {
	Modules []catalog.Module `json:"modules"`
	Tip     string           `json:"tip"`
}

// RecommendModules picks up to three not-started modules from the weakest
// categories (those under 50% complete, lowest first; falling back to the
// lowest overall). If everything is at least started, it falls back to
// in-progress modules, then to the next modules in sequence.
func RecommendModules(ledger []model.ModuleProgress) []catalog.Module {
	statusByModule := make(map[int]model.ProgressStatus, len(ledger))
	for _, rec := range ledger {
		statusByModule[rec.ModuleID] = rec.Status
	}

	stats := CategoryBreakdown(ledger)
	weakest := make([]CategoryStat, 0, len(stats))
	for _, cat := range stats {
		if cat.Percentage < 50 {
			weakest = append(weakest, cat)
		}
	}
	if len(weakest) == 0 {
		weakest = stats
	}
	// lowest percentage first, stable for ties
	for i := 1; i < len(weakest); i++ {
		for j := i; j > 0 && weakest[j].Percentage < weakest[j-1].Percentage; j-- {
			weakest[j], weakest[j-1] = weakest[j-1], weakest[j]
		}
	}
	if len(weakest) > 2 {
		weakest = weakest[:2]
	}

	focus := make(map[string]bool, len(weakest))
	for _, cat := range weakest {
		focus[cat.Name] = true
	}

	var picks []catalog.Module
	for _, m := range catalog.Modules {
		if len(picks) == 3 {
			return picks
		}
		// a missing ledger row and an explicit not-started row both count
		s := statusByModule[m.ID]
		if focus[m.Category] && (s == "" || s == model.StatusNotStarted) {
			picks = append(picks, m)
		}
	}
	if len(picks) > 0 {
		return picks
	}

	for _, m := range catalog.Modules {
		if len(picks) == 3 {
			return picks
		}
		if statusByModule[m.ID] == model.StatusInProgress {
			picks = append(picks, m)
		}
	}
	if len(picks) > 0 {
		return picks
	}

	for _, m := range catalog.Modules {
		if len(picks) == 3 {
			break
		}
		if statusByModule[m.ID] != model.StatusCompleted {
			picks = append(picks, m)
		}
	}
	return picks
}

func (s *DashboardService) GetRecommendations(userID uint) (*Recommendations, error) {
	ledger, err := s.ProgressRepo.FindByUser(userID)
	if err != nil {
		return nil, err
	}

	tip := learningTips[s.now().Unix()%int64(len(learningTips))]
	return &Recommendations{
		Modules: RecommendModules(ledger),
		Tip:     tip,
	}, nil
}
