package portfolio

type CreatePortfolioItemRequest struct {
	Title       string `json:"title" binding:"required,min=1,max=200"`
	Description string `json:"description" binding:"omitempty,max=2000"`
	ItemType    string `json:"item_type" binding:"required,oneof=project certificate work_sample other" example:"project"`
	MediaURL    string `json:"media_url" binding:"omitempty,max=500"`
	LinkURL     string `json:"link_url" binding:"omitempty,url,max=500"`
}

type UpdatePortfolioItemRequest struct {
	Title       *string `json:"title,omitempty" binding:"omitempty,min=1,max=200"`
	Description *string `json:"description,omitempty" binding:"omitempty,max=2000"`
	ItemType    *string `json:"item_type,omitempty" binding:"omitempty,oneof=project certificate work_sample other"`
	MediaURL    *string `json:"media_url,omitempty" binding:"omitempty,max=500"`
	LinkURL     *string `json:"link_url,omitempty" binding:"omitempty,url,max=500"`
}
