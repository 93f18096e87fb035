package services

import (
	"context"
	"log/slog"
	"os"
	"testing"
	"time"

	"github.com/Tyrock1988/gamblecodez-platform/internal/models"

	"github.com/stretchr/testify/assert"
)

func TestAuditService_LogAction(t *testing.T) {
	db := setupTestDB(t)
	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))
	svc := NewAuditService(db, logger)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go svc.Start(ctx)

	svc.LogAction("admin", "CREATE_LINK", "42", map[string]interface{}{"name": "Stake.com"}, "1.2.3.4")

	assert.Eventually(t, func() bool {
		var count int64
		db.Model(&models.AuditLog{}).Count(&count)
		return count == 1
	}, 2*time.Second, 10*time.Millisecond)

	var entry models.AuditLog
	assert.NoError(t, db.First(&entry).Error)
	assert.Equal(t, "admin", entry.UserID)
	assert.Equal(t, "CREATE_LINK", entry.Action)
	assert.Equal(t, "42", entry.EntityID)
	assert.Contains(t, entry.Details, "Stake.com")
	assert.Equal(t, "1.2.3.4", entry.IPAddress)
}

func TestAuditService_DropsWhenFull(t *testing.T) {
	db := setupTestDB(t)
	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))
	svc := NewAuditService(db, logger)

	// Worker never started; filling past the buffer must not block.
	done := make(chan struct{})
	go func() {
		for i := 0; i < 200; i++ {
			svc.LogAction("admin", "LOGIN", "", nil, "")
		}
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("LogAction blocked on a full channel")
	}
}
