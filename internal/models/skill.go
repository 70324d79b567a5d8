package models

// Skill rows are soft deleted through BaseModel.DeletedAt.
type Skill struct {
	BaseModel
	Name        string `gorm:"uniqueIndex;not null" json:"name"`
	Category    string `gorm:"index" json:"category"`
	Description string `json:"description"`
}

const (
	RoleTeach = "teach"
	RoleLearn = "learn"
)

type UserSkill struct {
	BaseModel
	UserID         uint   `gorm:"not null;uniqueIndex:idx_user_skill_role" json:"user_id"`
	SkillID        uint   `gorm:"not null;uniqueIndex:idx_user_skill_role" json:"skill_id"`
	Role           string `gorm:"not null;size:10;uniqueIndex:idx_user_skill_role;check:chk_user_skills_role,role IN ('teach','learn')" json:"role"`
	TeachingStyle  string `json:"teaching_style"`
	ExperienceNote string `json:"experience_note"`
	User           *User  `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Skill          *Skill `gorm:"foreignKey:SkillID" json:"skill,omitempty"`
}

type SkillFollow struct {
	BaseModel
	UserID  uint   `gorm:"not null;uniqueIndex:idx_skill_follow" json:"user_id"`
	SkillID uint   `gorm:"not null;uniqueIndex:idx_skill_follow" json:"skill_id"`
	Skill   *Skill `gorm:"foreignKey:SkillID" json:"skill,omitempty"`
}
