package handlers

import (
	"net/http"

	"github.com/Tyrock1988/gamblecodez-platform/internal/models"
	"github.com/Tyrock1988/gamblecodez-platform/internal/services"

	"github.com/gin-gonic/gin"
)

var exportCategories = map[string]bool{
	"promos":                  true,
	models.CategoryUS:         true,
	models.CategoryNonUS:      true,
	models.CategoryEverywhere: true,
	models.CategoryFaucet:     true,
	models.CategorySocials:    true,
}

// ExportTelegram returns clipboard-ready Telegram text: one category view
// when ?category= is given, the full directory otherwise.
func (h *Handler) ExportTelegram(c *gin.Context) {
	category := c.Query("category")

	if category == "" {
		links, err := h.linkService.List("")
		if err != nil {
			h.logger.Error("Failed to fetch links for export", "error", err)
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to export links"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"text": services.TelegramDirectory(links)})
		return
	}

	if !exportCategories[category] {
		c.JSON(http.StatusBadRequest, gin.H{
			"message": "Invalid category",
			"errors":  []FieldError{{Field: "category", Message: "must be one of: promos us non-us everywhere faucet socials"}},
		})
		return
	}

	var links []models.Link
	var err error
	if category == "promos" {
		links, err = h.linkService.ListActivePromos()
	} else {
		links, err = h.linkService.List(category)
	}
	if err != nil {
		h.logger.Error("Failed to fetch links for export", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to export links"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"text": services.TelegramCategoryText(category, links)})
}
