package models

import (
	"time"
)

// User rows are owned by the active auth provider; this service only
// upserts them on login.
type User struct {
	ID              string    `gorm:"primaryKey;size:64" json:"id"`
	Email           string    `gorm:"size:120" json:"email,omitempty"`
	FirstName       string    `gorm:"size:80" json:"firstName,omitempty"`
	LastName        string    `gorm:"size:80" json:"lastName,omitempty"`
	ProfileImageURL string    `gorm:"type:text" json:"profileImageUrl,omitempty"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
}
