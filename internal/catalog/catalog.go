// Package catalog holds the fixed curriculum: the ordered module list, the
// five categories that partition it, and the badge definitions derived from
// them. All of it is immutable at runtime.
package catalog

// Module is one unit of curriculum content.
type Module struct {
	ID          int    `json:"id"`
	Title       string `json:"title"`
	Category    string `json:"category"`
	Description string `json:"description"`
}

// Category groups a contiguous range of modules. ShortID is the stem used in
// achievement ids; it is an explicit table, deliberately independent of the
// display name.
type Category struct {
	Name        string `json:"name"`
	ShortID     string `json:"shortId"`
	Color       string `json:"color"`
	ModuleRange string `json:"modules"`
}

var Categories = []Category{
	{Name: "Front-End Fundamentals", ShortID: "html_css", Color: "#4299e1", ModuleRange: "1-13"},
	{Name: "JavaScript & DOM", ShortID: "js_dom", Color: "#f6ad55", ModuleRange: "14-20"},
	{Name: "Backend Development", ShortID: "backend", Color: "#68d391", ModuleRange: "21-28"},
	{Name: "Databases & Full Stack", ShortID: "database", Color: "#fc8181", ModuleRange: "29-37"},
	{Name: "Advanced Topics", ShortID: "advanced", Color: "#b794f4", ModuleRange: "38-46"},
}

// TotalModules is the size of the full curriculum.
func TotalModules() int {
	return len(Modules)
}

// ModuleByID returns the catalog entry for id, or nil for unknown ids.
func ModuleByID(id int) *Module {
	for i := range Modules {
		if Modules[i].ID == id {
			return &Modules[i]
		}
	}
	return nil
}

// CategoryByName returns the category with the given display name, or nil.
func CategoryByName(name string) *Category {
	for i := range Categories {
		if Categories[i].Name == name {
			return &Categories[i]
		}
	}
	return nil
}

// ModulesInCategory returns the module ids belonging to the named category.
func ModulesInCategory(name string) []int {
	var ids []int
	for _, m := range Modules {
		if m.Category == name {
			ids = append(ids, m.ID)
		}
	}
	return ids
}
