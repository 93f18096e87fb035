package services

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/Tyrock1988/gamblecodez-platform/internal/models"

	"gorm.io/gorm"
)

// AuditService persists an admin action trail off the request path. Entries
// go through a buffered channel; when the buffer is full the entry is dropped
// rather than blocking the request.
type AuditService struct {
	db      *gorm.DB
	logger  *slog.Logger
	entries chan models.AuditLog
}

func NewAuditService(db *gorm.DB, logger *slog.Logger) *AuditService {
	return &AuditService{
		db:      db,
		logger:  logger,
		entries: make(chan models.AuditLog, 100),
	}
}

func (s *AuditService) Start(ctx context.Context) {
	s.logger.Info("Audit worker starting")
	for {
		select {
		case entry := <-s.entries:
			if err := s.db.Create(&entry).Error; err != nil {
				s.logger.Error("Failed to write audit log", "error", err)
			}
		case <-ctx.Done():
			s.logger.Info("Audit worker stopping")
			return
		}
	}
}

func (s *AuditService) LogAction(userID, action, entityID string, details interface{}, ip string) {
	detailBytes, _ := json.Marshal(details)

	entry := models.AuditLog{
		UserID:    userID,
		Action:    action,
		EntityID:  entityID,
		Details:   string(detailBytes),
		IPAddress: ip,
		Timestamp: time.Now(),
	}

	select {
	case s.entries <- entry:
	default:
		s.logger.Warn("Audit channel full, dropping log", "action", action)
	}
}
