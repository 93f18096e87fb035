package models

import (
	"time"
)

// PromoEvent is a time-boxed promotional announcement tied to a casino name.
// AffiliateURL is best-effort: filled from the first active link whose name
// contains CasinoName when the admin leaves it blank.
type PromoEvent struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	Title        string    `gorm:"not null;type:text" json:"title"`
	Description  string    `gorm:"type:text" json:"description,omitempty"`
	PromoCode    string    `gorm:"type:text" json:"promoCode,omitempty"`
	CasinoName   string    `gorm:"not null;type:text" json:"casinoName"`
	StartDate    time.Time `gorm:"not null;index" json:"startDate"`
	EndDate      time.Time `gorm:"not null" json:"endDate"`
	IsActive     bool      `gorm:"not null;index" json:"isActive"`
	Tags         []string  `gorm:"type:text;serializer:json" json:"tags"`
	AffiliateURL string    `gorm:"type:text" json:"affiliateUrl,omitempty"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

func (PromoEvent) TableName() string {
	return "promo_events"
}
