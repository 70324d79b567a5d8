package messaging

type StartConversationRequest struct {
	UserID uint `json:"user_id" binding:"required"`
}

// SendMessageRequest targets an existing conversation, or a recipient whose
// conversation with the sender is created on first use.
type SendMessageRequest struct {
	ConversationID *uint  `json:"conversation_id,omitempty" binding:"required_without=RecipientID"`
	RecipientID    *uint  `json:"recipient_id,omitempty" binding:"required_without=ConversationID"`
	Content        string `json:"content" binding:"required,min=1,max=5000"`
}
