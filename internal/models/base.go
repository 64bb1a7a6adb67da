package models

import (
	"time"

	"github.com/google/uuid"
)

// BaseModel contains the identifier shared by every stored record
type BaseModel struct {
	ID string `json:"id"`
}

// EnsureID sets a UUID when the record has no identifier yet
func (base *BaseModel) EnsureID() {
	if base.ID == "" {
		base.ID = uuid.New().String()
	}
}

// Timestamp formats t the way records store creation dates
func Timestamp(t time.Time) string {
	return t.UTC().Format(time.RFC3339)
}
