package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/Tyrock1988/gamblecodez-platform/internal/services"

	"github.com/gin-gonic/gin"
)

type CreateLinkRequest struct {
	Name      string   `json:"name" binding:"required"`
	URL       string   `json:"url" binding:"required"`
	Category  string   `json:"category" binding:"required,oneof=us non-us everywhere faucet socials"`
	Tags      []string `json:"tags"`
	PromoText string   `json:"promoText"`
	IsPinned  bool     `json:"isPinned"`
	IsActive  *bool    `json:"isActive"`
}

type UpdateLinkRequest struct {
	Name      *string   `json:"name" binding:"omitempty,min=1"`
	URL       *string   `json:"url" binding:"omitempty,min=1"`
	Category  *string   `json:"category" binding:"omitempty,oneof=us non-us everywhere faucet socials"`
	Tags      *[]string `json:"tags"`
	PromoText *string   `json:"promoText"`
	IsPinned  *bool     `json:"isPinned"`
	IsActive  *bool     `json:"isActive"`
}

func (h *Handler) ListLinks(c *gin.Context) {
	links, err := h.linkService.List(c.Query("category"))
	if err != nil {
		h.logger.Error("Failed to fetch links", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to fetch links"})
		return
	}
	c.JSON(http.StatusOK, links)
}

func (h *Handler) ListPromoLinks(c *gin.Context) {
	links, err := h.linkService.ListActivePromos()
	if err != nil {
		h.logger.Error("Failed to fetch promos", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to fetch promos"})
		return
	}
	c.JSON(http.StatusOK, links)
}

// RegisterClick bumps the click counter and always sends the visitor on their
// way; an unknown id is not an error worth reporting to the public.
func (h *Handler) RegisterClick(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := h.linkService.IncrementClicks(id); err != nil {
		h.logger.Error("Failed to increment click count", "error", err, "link_id", id)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to increment click count"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

func (h *Handler) LinkQR(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	link, err := h.linkService.GetByID(id)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Link not found"})
			return
		}
		h.logger.Error("Failed to fetch link", "error", err, "link_id", id)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to fetch link"})
		return
	}
	if !link.IsActive {
		c.JSON(http.StatusNotFound, gin.H{"message": "Link not found"})
		return
	}

	png, err := services.GenerateLinkQR(link.URL, 256)
	if err != nil {
		h.logger.Error("Failed to generate QR code", "error", err, "link_id", id)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to generate QR code"})
		return
	}
	c.Data(http.StatusOK, "image/png", png)
}

func (h *Handler) LinkStats(c *gin.Context) {
	stats, err := h.linkService.Stats()
	if err != nil {
		h.logger.Error("Failed to fetch stats", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to fetch stats"})
		return
	}
	c.JSON(http.StatusOK, stats)
}

func (h *Handler) CreateLink(c *gin.Context) {
	var req CreateLinkRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid link data", "errors": bindingErrors(err)})
		return
	}

	link, err := h.linkService.Create(services.CreateLinkInput{
		Name:      req.Name,
		URL:       req.URL,
		Category:  req.Category,
		Tags:      req.Tags,
		PromoText: req.PromoText,
		IsPinned:  req.IsPinned,
		IsActive:  req.IsActive,
	})
	if err != nil {
		h.logger.Error("Failed to create link", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to create link"})
		return
	}

	h.auditService.LogAction(sessionUserID(c), "CREATE_LINK", strconv.FormatUint(uint64(link.ID), 10),
		map[string]interface{}{"name": link.Name, "category": link.Category}, c.ClientIP())

	c.JSON(http.StatusOK, link)
}

func (h *Handler) UpdateLink(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req UpdateLinkRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid link data", "errors": bindingErrors(err)})
		return
	}

	link, err := h.linkService.Update(id, services.UpdateLinkInput{
		Name:      req.Name,
		URL:       req.URL,
		Category:  req.Category,
		Tags:      req.Tags,
		PromoText: req.PromoText,
		IsPinned:  req.IsPinned,
		IsActive:  req.IsActive,
	})
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Link not found"})
			return
		}
		h.logger.Error("Failed to update link", "error", err, "link_id", id)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to update link"})
		return
	}

	h.auditService.LogAction(sessionUserID(c), "UPDATE_LINK", c.Param("id"), nil, c.ClientIP())

	c.JSON(http.StatusOK, link)
}

func (h *Handler) DeleteLink(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := h.linkService.SoftDelete(id); err != nil {
		h.logger.Error("Failed to delete link", "error", err, "link_id", id)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to delete link"})
		return
	}

	h.auditService.LogAction(sessionUserID(c), "DELETE_LINK", c.Param("id"), nil, c.ClientIP())

	c.JSON(http.StatusOK, gin.H{"success": true})
}

func parseID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"message": "Invalid id",
			"errors":  []FieldError{{Field: "id", Message: "must be a positive integer"}},
		})
		return 0, false
	}
	return uint(id), true
}
