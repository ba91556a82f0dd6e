package models

// Skill categories accepted by the API. Stored as-is in the category column.
const (
	SkillCategoryLanguages  = "languages"
	SkillCategoryFrameworks = "frameworks"
	SkillCategoryOthers     = "others"
)

// Skill is a single entry of the skills collection. Display order is carried
// by Order, not by the primary key.
type Skill struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	Category string `json:"category"`
	Order    int64  `json:"order"`
}

// TableName returns the name of the database table
// associated with the Skill model.
func (s Skill) TableName() string {
	return "skills"
}

// ValidSkillCategory reports whether category is one of the accepted values.
func ValidSkillCategory(category string) bool {
	switch category {
	case SkillCategoryLanguages, SkillCategoryFrameworks, SkillCategoryOthers:
		return true
	}
	return false
}
