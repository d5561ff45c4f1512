package catalog

// Achievement ids. Once unlocked for a user they are never removed.
const (
	AchFirstModule    = "first_module"
	AchFiveModules    = "five_modules"
	AchTenModules     = "ten_modules"
	AchThreeDayStreak = "three_day_streak"
	AchSevenDayStreak = "seven_day_streak"
	AchHalfwayCourse  = "halfway_course"
	AchCourse75       = "course_75"
	AchCourseComplete = "course_complete"
)

// AchievementDef carries the display metadata for a badge.
type AchievementDef struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
	Color       string `json:"color"`
}

// Achievements lists every badge the evaluator can award: three completion
// counts, two streaks, a 50%/complete pair per category, and three overall
// tiers. Eighteen in total.
var Achievements = []AchievementDef{
	{ID: AchFirstModule, Title: "First Steps", Description: "Completed your first module", Icon: "🌱", Color: "#4dff9d"},
	{ID: AchFiveModules, Title: "Getting Traction", Description: "Completed 5 modules", Icon: "🚀", Color: "#4d9aff"},
	{ID: AchTenModules, Title: "Serious Learner", Description: "Completed 10 modules", Icon: "📚", Color: "#c44dff"},
	{ID: AchThreeDayStreak, Title: "Consistency Begins", Description: "Maintained a 3-day study streak", Icon: "🔥", Color: "#ff9d4d"},
	{ID: AchSevenDayStreak, Title: "Week Warrior", Description: "Maintained a 7-day study streak", Icon: "🏆", Color: "#ffd700"},
	{ID: "html_css_50", Title: "HTML Apprentice", Description: "Reached 50% in Front-End Fundamentals", Icon: "📝", Color: "#FF5733"},
	{ID: "html_css_complete", Title: "CSS Stylist", Description: "Completed all Front-End Fundamentals modules", Icon: "🎨", Color: "#33B5FF"},
	{ID: "js_dom_50", Title: "Script Padawan", Description: "Reached 50% in JavaScript & DOM", Icon: "⚙️", Color: "#FFDD33"},
	{ID: "js_dom_complete", Title: "DOM Manipulator", Description: "Completed all JavaScript & DOM modules", Icon: "🧩", Color: "#33FF57"},
	{ID: "backend_50", Title: "Server Novice", Description: "Reached 50% in Backend Development", Icon: "🔌", Color: "#8A33FF"},
	{ID: "backend_complete", Title: "API Architect", Description: "Completed all Backend Development modules", Icon: "🏗️", Color: "#FF33A8"},
	{ID: "database_50", Title: "Data Collector", Description: "Reached 50% in Databases & Full Stack", Icon: "💾", Color: "#33FFC1"},
	{ID: "database_complete", Title: "Full Stack Engineer", Description: "Completed all Databases & Full Stack modules", Icon: "🔄", Color: "#C133FF"},
	{ID: "advanced_50", Title: "Advanced Explorer", Description: "Reached 50% in Advanced Topics", Icon: "🔍", Color: "#FF3333"},
	{ID: "advanced_complete", Title: "Technology Master", Description: "Completed all Advanced Topics modules", Icon: "🧠", Color: "#33FFEC"},
	{ID: AchHalfwayCourse, Title: "Halfway Hero", Description: "Completed 50% of the entire course", Icon: "🏄", Color: "#FFA533"},
	{ID: AchCourse75, Title: "Almost There", Description: "Completed 75% of the entire course", Icon: "🏂", Color: "#33FFA8"},
	{ID: AchCourseComplete, Title: "Coding Champion", Description: "Completed the entire bootcamp", Icon: "👑", Color: "#FFD700"},
}

// AchievementByID returns the badge definition for id, or nil.
func AchievementByID(id string) *AchievementDef {
	for i := range Achievements {
		if Achievements[i].ID == id {
			return &Achievements[i]
		}
	}
	return nil
}
