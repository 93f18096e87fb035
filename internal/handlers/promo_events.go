package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/Tyrock1988/gamblecodez-platform/internal/services"

	"github.com/gin-gonic/gin"
)

type CreatePromoEventRequest struct {
	Title        string    `json:"title" binding:"required"`
	Description  string    `json:"description"`
	PromoCode    string    `json:"promoCode"`
	CasinoName   string    `json:"casinoName" binding:"required"`
	StartDate    time.Time `json:"startDate" binding:"required"`
	EndDate      time.Time `json:"endDate" binding:"required"`
	Tags         []string  `json:"tags"`
	AffiliateURL string    `json:"affiliateUrl"`
	IsActive     *bool     `json:"isActive"`
}

type UpdatePromoEventRequest struct {
	Title        *string    `json:"title" binding:"omitempty,min=1"`
	Description  *string    `json:"description"`
	PromoCode    *string    `json:"promoCode"`
	CasinoName   *string    `json:"casinoName" binding:"omitempty,min=1"`
	StartDate    *time.Time `json:"startDate"`
	EndDate      *time.Time `json:"endDate"`
	Tags         *[]string  `json:"tags"`
	AffiliateURL *string    `json:"affiliateUrl"`
	IsActive     *bool      `json:"isActive"`
}

// ListPromoEvents returns active events; with ?date=YYYY-MM-DD only the
// events whose interval overlaps that day.
func (h *Handler) ListPromoEvents(c *gin.Context) {
	var date *time.Time
	if dateStr := c.Query("date"); dateStr != "" {
		d, err := time.Parse("2006-01-02", dateStr)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{
				"message": "Invalid date",
				"errors":  []FieldError{{Field: "date", Message: "must be formatted YYYY-MM-DD"}},
			})
			return
		}
		date = &d
	}

	events, err := h.promoService.List(date)
	if err != nil {
		h.logger.Error("Failed to fetch promo events", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to fetch promo events"})
		return
	}
	c.JSON(http.StatusOK, events)
}

func (h *Handler) ListActivePromoEvents(c *gin.Context) {
	events, err := h.promoService.ListActive(time.Now().UTC())
	if err != nil {
		h.logger.Error("Failed to fetch active promo events", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to fetch active promo events"})
		return
	}
	c.JSON(http.StatusOK, events)
}

func (h *Handler) CreatePromoEvent(c *gin.Context) {
	var req CreatePromoEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid promo event data", "errors": bindingErrors(err)})
		return
	}

	event, err := h.promoService.Create(services.CreatePromoEventInput{
		Title:        req.Title,
		Description:  req.Description,
		PromoCode:    req.PromoCode,
		CasinoName:   req.CasinoName,
		StartDate:    req.StartDate,
		EndDate:      req.EndDate,
		Tags:         req.Tags,
		AffiliateURL: req.AffiliateURL,
		IsActive:     req.IsActive,
	})
	if err != nil {
		h.logger.Error("Failed to create promo event", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to create promo event"})
		return
	}

	h.auditService.LogAction(sessionUserID(c), "CREATE_PROMO_EVENT", strconv.FormatUint(uint64(event.ID), 10),
		map[string]interface{}{"title": event.Title, "casinoName": event.CasinoName}, c.ClientIP())

	c.JSON(http.StatusOK, event)
}

func (h *Handler) UpdatePromoEvent(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req UpdatePromoEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid promo event data", "errors": bindingErrors(err)})
		return
	}

	event, err := h.promoService.Update(id, services.UpdatePromoEventInput{
		Title:        req.Title,
		Description:  req.Description,
		PromoCode:    req.PromoCode,
		CasinoName:   req.CasinoName,
		StartDate:    req.StartDate,
		EndDate:      req.EndDate,
		Tags:         req.Tags,
		AffiliateURL: req.AffiliateURL,
		IsActive:     req.IsActive,
	})
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Promo event not found"})
			return
		}
		h.logger.Error("Failed to update promo event", "error", err, "event_id", id)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to update promo event"})
		return
	}

	h.auditService.LogAction(sessionUserID(c), "UPDATE_PROMO_EVENT", c.Param("id"), nil, c.ClientIP())

	c.JSON(http.StatusOK, event)
}

func (h *Handler) DeletePromoEvent(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := h.promoService.SoftDelete(id); err != nil {
		h.logger.Error("Failed to delete promo event", "error", err, "event_id", id)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to delete promo event"})
		return
	}

	h.auditService.LogAction(sessionUserID(c), "DELETE_PROMO_EVENT", c.Param("id"), nil, c.ClientIP())

	c.JSON(http.StatusOK, gin.H{"success": true})
}
