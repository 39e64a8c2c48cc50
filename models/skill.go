package models

// Skill proficiency levels, ordered weakest to strongest.
const (
	LevelBeginner     = "Beginner"
	LevelIntermediate = "Intermediate"
	LevelAdvanced     = "Advanced"
)

// Skill represents a single entry on the skills page
type Skill struct {
	ID       string `json:"id" db:"id" gorm:"type:uuid;primaryKey;not null"`
	Name     string `json:"name" db:"name" gorm:"type:text;not null"`
	Category string `json:"category" db:"category" gorm:"type:text;not null"`
	Level    string `json:"level" db:"level" gorm:"type:text;not null"`
	Icon     string `json:"icon,omitempty" db:"icon" gorm:"type:text"`
	Visible  bool   `json:"visible" db:"visible" gorm:"not null;default:true"`
}

// LevelRank maps a proficiency level to its ordering weight. Unknown
// levels rank below Beginner so they sort last.
func LevelRank(level string) int {
	switch level {
	case LevelAdvanced:
		return 3
	case LevelIntermediate:
		return 2
	case LevelBeginner:
		return 1
	default:
		return 0
	}
}
