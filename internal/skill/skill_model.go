package skill

type CreateSkillRequest struct {
	Name        string `json:"name" binding:"required,max=100" example:"Guitar"`
	Category    string `json:"category" binding:"omitempty,max=100" example:"music"`
	Description string `json:"description" binding:"omitempty,max=2000"`
}

type FollowToggleResponse struct {
	Following bool `json:"following"`
}
