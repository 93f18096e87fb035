package models

import (
	"time"
)

type AuditLog struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    string    `gorm:"size:64;index" json:"userId"`
	Action    string    `gorm:"size:50;not null" json:"action"` // e.g. "LOGIN", "CREATE_LINK", "DELETE_PROMO_EVENT"
	EntityID  string    `gorm:"size:50" json:"entityId"`
	Details   string    `gorm:"type:text" json:"details"`
	IPAddress string    `gorm:"size:45" json:"ipAddress"`
	Timestamp time.Time `json:"timestamp"`
}
