package models

type ConnectionStatus string

const (
	ConnectionPending  ConnectionStatus = "pending"
	ConnectionAccepted ConnectionStatus = "accepted"
	ConnectionRejected ConnectionStatus = "rejected"
)

// Connection is unique per unordered user pair through PairKey.
type Connection struct {
	BaseModel
	RequesterID uint             `gorm:"not null;index" json:"requester_id"`
	RecipientID uint             `gorm:"not null;index" json:"recipient_id"`
	PairKey     string           `gorm:"not null;uniqueIndex" json:"-"`
	Status      ConnectionStatus `gorm:"not null;size:20;default:pending" json:"status"`
	Requester   *User            `gorm:"foreignKey:RequesterID" json:"requester,omitempty"`
	Recipient   *User            `gorm:"foreignKey:RecipientID" json:"recipient,omitempty"`
}

// Involves reports whether userID is either side of the connection.
func (c *Connection) Involves(userID uint) bool {
	return c.RequesterID == userID || c.RecipientID == userID
}
