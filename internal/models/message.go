package models

// Message represents a message between two practice accounts
type Message struct {
	BaseModel
	SenderID   string `json:"senderId"`
	ReceiverID string `json:"receiverId"`
	Subject    string `json:"subject,omitempty"`
	Content    string `json:"content"`
	Date       string `json:"date"`
	Read       bool   `json:"read"`
}
