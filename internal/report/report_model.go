package report

type CreateReportRequest struct {
	ReportedID uint   `json:"reported_id" binding:"required"`
	Reason     string `json:"reason" binding:"required,min=1,max=255"`
	Details    string `json:"details" binding:"omitempty,max=2000"`
}

type UpdateReportRequest struct {
	Status string `json:"status" binding:"required,oneof=pending reviewed dismissed" example:"reviewed"`
}
