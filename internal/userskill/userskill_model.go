package userskill

type CreateUserSkillRequest struct {
	UserID         *uint  `json:"user_id,omitempty"`
	SkillID        uint   `json:"skill_id" binding:"required"`
	Role           string `json:"role" binding:"required,oneof=teach learn" example:"teach"`
	TeachingStyle  string `json:"teaching_style" binding:"omitempty,max=255"`
	ExperienceNote string `json:"experience_note" binding:"omitempty,max=1000"`
}

type UpdateUserSkillRequest struct {
	Role           *string `json:"role,omitempty" binding:"omitempty,oneof=teach learn"`
	TeachingStyle  *string `json:"teaching_style,omitempty" binding:"omitempty,max=255"`
	ExperienceNote *string `json:"experience_note,omitempty" binding:"omitempty,max=1000"`
}
