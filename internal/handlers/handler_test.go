package handlers

import (
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"github.com/Tyrock1988/gamblecodez-platform/internal/config"
	"github.com/Tyrock1988/gamblecodez-platform/internal/models"
	"github.com/Tyrock1988/gamblecodez-platform/internal/services"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
)

func setupTestHandler(t *testing.T) (*Handler, *gorm.DB) {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to open test db: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("failed to get sql db: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)

	if err := db.AutoMigrate(&models.User{}, &models.Link{}, &models.PromoEvent{}, &models.AuditLog{}); err != nil {
		t.Fatalf("failed to migrate test db: %v", err)
	}

	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))
	cfg := config.Config{
		SessionSecret: "test-secret-12345678901234567890123456789012",
		AdminUsername: "admin",
		AdminPassword: "password123",
	}

	audit := services.NewAuditService(db, logger)
	links := services.NewLinkService(db)
	promos := services.NewPromoEventService(db, links)
	auth := services.NewAuthService(db)

	h := NewHandler(cfg, logger, db, links, promos, auth, audit)
	return h, db
}

func setupTestRouter(h *Handler) *gin.Engine {
	gin.SetMode(gin.TestMode)
	return h.SetupRouter()
}

// loginSession logs in with the test admin credentials and returns the
// session cookie header value.
func loginSession(t *testing.T, r *gin.Engine) string {
	w := httptest.NewRecorder()
	body := `{"username":"admin","password":"password123"}`
	req, _ := http.NewRequest("POST", "/api/auth/login", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("login failed: %d %s", w.Code, w.Body.String())
	}

	var parts []string
	for _, ck := range w.Result().Cookies() {
		parts = append(parts, ck.Name+"="+ck.Value)
	}
	if len(parts) == 0 {
		t.Fatal("login set no session cookie")
	}
	return strings.Join(parts, "; ")
}
