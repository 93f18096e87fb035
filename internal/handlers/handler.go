package handlers

import (
	"log/slog"

	"github.com/Tyrock1988/gamblecodez-platform/internal/config"
	"github.com/Tyrock1988/gamblecodez-platform/internal/services"

	"gorm.io/gorm"
)

type Handler struct {
	cfg          config.Config
	logger       *slog.Logger
	db           *gorm.DB
	linkService  *services.LinkService
	promoService *services.PromoEventService
	authService  *services.AuthService
	auditService *services.AuditService
}

func NewHandler(
	cfg config.Config,
	logger *slog.Logger,
	db *gorm.DB,
	linkService *services.LinkService,
	promoService *services.PromoEventService,
	authService *services.AuthService,
	auditService *services.AuditService,
) *Handler {
	return &Handler{
		cfg:          cfg,
		logger:       logger,
		db:           db,
		linkService:  linkService,
		promoService: promoService,
		authService:  authService,
		auditService: auditService,
	}
}
