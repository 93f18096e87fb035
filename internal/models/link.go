package models

import (
	"time"
)

// Link categories accepted on the create/update path. There is no database
// constraint behind these; the input validator is the only gate.
const (
	CategoryUS         = "us"
	CategoryNonUS      = "non-us"
	CategoryEverywhere = "everywhere"
	CategoryFaucet     = "faucet"
	CategorySocials    = "socials"
)

// Categories in the order the Telegram directory export renders them.
var Categories = []string{
	CategoryUS,
	CategoryNonUS,
	CategoryEverywhere,
	CategoryFaucet,
	CategorySocials,
}

type Link struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	Name       string    `gorm:"not null;type:text" json:"name"`
	URL        string    `gorm:"not null;type:text" json:"url"`
	Category   string    `gorm:"not null;size:20;index" json:"category"`
	Tags       []string  `gorm:"type:text;serializer:json" json:"tags"`
	PromoText  string    `gorm:"type:text" json:"promoText,omitempty"`
	IsPinned   bool      `gorm:"not null;index" json:"isPinned"`
	IsActive   bool      `gorm:"not null;index" json:"isActive"`
	ClickCount int       `gorm:"not null;default:0" json:"clickCount"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

func (Link) TableName() string {
	return "links"
}
