package connection

import "github.com/DhavalSuthar-24/skillswap/internal/models"

type CreateConnectionRequest struct {
	RecipientID uint `json:"recipient_id" binding:"required"`
}

type UpdateConnectionRequest struct {
	Status models.ConnectionStatus `json:"status" binding:"required" example:"accepted"`
}

const (
	ListAccepted = "accepted"
	ListPending  = "pending"
	ListSent     = "sent"
)
