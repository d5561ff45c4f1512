package model

// CourseModule and CourseCategory are reference copies of the in-process
// catalog, seeded at migration time for reporting joins.

type CourseModule struct {
	BaseModel
	ModuleID    int    `gorm:"unique;not null" json:"moduleId"`
	Title       string `gorm:"size:255;not null" json:"title"`
	Category    string `gorm:"size:100;not null" json:"category"`
	Description string `gorm:"type:text" json:"description"`
}

func (CourseModule) TableName() string {
	return "course_modules"
}

type CourseCategory struct {
	BaseModel
	Name        string `gorm:"size:100;unique;not null" json:"name"`
	ShortID     string `gorm:"size:32;unique;not null" json:"shortId"`
	Color       string `gorm:"size:16" json:"color"`
	ModuleRange string `gorm:"size:16" json:"modules"`
}

func (CourseCategory) TableName() string {
	return "course_categories"
}
