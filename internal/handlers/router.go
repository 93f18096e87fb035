package handlers

import (
	"github.com/Tyrock1988/gamblecodez-platform/internal/metrics"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func (h *Handler) SetupRouter() *gin.Engine {
	r := gin.Default()

	r.Use(RequestID())
	r.Use(metrics.Middleware())

	store := cookie.NewStore([]byte(h.cfg.SessionSecret))
	store.Options(sessions.Options{
		Path:     "/",
		MaxAge:   7 * 24 * 60 * 60,
		HttpOnly: true,
		Secure:   h.cfg.AppEnv == "production",
	})
	r.Use(sessions.Sessions("gamblecodez_session", store))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "healthy"})
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Public routes
	r.GET("/api/links", h.ListLinks)
	r.GET("/api/links/promos", h.ListPromoLinks)
	r.POST("/api/links/:id/click", h.RegisterClick)
	r.GET("/api/links/:id/qr", h.LinkQR)

	// Auth routes
	r.POST("/api/auth/login", h.Login)
	r.POST("/api/auth/logout", h.Logout)
	r.GET("/api/auth/user", h.CurrentUser)

	// Protected admin routes
	admin := r.Group("/api/admin")
	admin.Use(h.AuthRequired())
	{
		admin.GET("/stats", h.LinkStats)
		admin.POST("/links", h.CreateLink)
		admin.PUT("/links/:id", h.UpdateLink)
		admin.DELETE("/links/:id", h.DeleteLink)
		admin.GET("/promo-events", h.ListPromoEvents)
		admin.GET("/promo-events/active", h.ListActivePromoEvents)
		admin.POST("/promo-events", h.CreatePromoEvent)
		admin.PUT("/promo-events/:id", h.UpdatePromoEvent)
		admin.DELETE("/promo-events/:id", h.DeletePromoEvent)
		admin.GET("/export/telegram", h.ExportTelegram)
	}

	return r
}
