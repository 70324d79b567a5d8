package review

type CreateReviewRequest struct {
	Rating  int    `json:"rating" binding:"required,min=1,max=5" example:"5"`
	Comment string `json:"comment" binding:"omitempty,max=2000"`
}
