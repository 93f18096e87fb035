package services

import (
	"encoding/json"
	"errors"
	"strings"
	"time"

	"github.com/Tyrock1988/gamblecodez-platform/internal/models"

	"gorm.io/gorm"
)

type CreateLinkInput struct {
	Name      string
	URL       string
	Category  string
	Tags      []string
	PromoText string
	IsPinned  bool
	IsActive  *bool // defaults to true when nil
}

// UpdateLinkInput carries a partial update; nil fields are left untouched.
type UpdateLinkInput struct {
	Name      *string
	URL       *string
	Category  *string
	Tags      *[]string
	PromoText *string
	IsPinned  *bool
	IsActive  *bool
}

type LinkStats struct {
	TotalLinks   int `json:"totalLinks"`
	ActivePromos int `json:"activePromos"`
	SocialLinks  int `json:"socialLinks"`
	TotalClicks  int `json:"totalClicks"`
}

type LinkService struct {
	db *gorm.DB
}

func NewLinkService(db *gorm.DB) *LinkService {
	return &LinkService{db: db}
}

// List returns active links, pinned first, newest first within each group.
// An empty category returns links across all categories.
func (s *LinkService) List(category string) ([]models.Link, error) {
	links := []models.Link{}
	q := s.db.Where("is_active = ?", true)
	if category != "" {
		q = q.Where("category = ?", category)
	}
	if err := q.Order("is_pinned desc, created_at desc").Find(&links).Error; err != nil {
		return nil, err
	}
	return links, nil
}

// GetByID returns the link regardless of its active flag.
func (s *LinkService) GetByID(id uint) (*models.Link, error) {
	var link models.Link
	if err := s.db.First(&link, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &link, nil
}

func (s *LinkService) Create(in CreateLinkInput) (*models.Link, error) {
	active := true
	if in.IsActive != nil {
		active = *in.IsActive
	}
	tags := in.Tags
	if tags == nil {
		tags = []string{}
	}

	link := models.Link{
		Name:       in.Name,
		URL:        in.URL,
		Category:   in.Category,
		Tags:       tags,
		PromoText:  in.PromoText,
		IsPinned:   in.IsPinned,
		IsActive:   active,
		ClickCount: 0,
	}

	if err := s.db.Create(&link).Error; err != nil {
		return nil, err
	}
	return &link, nil
}

// Update applies only the supplied fields and refreshes updated_at.
func (s *LinkService) Update(id uint, in UpdateLinkInput) (*models.Link, error) {
	updates := map[string]interface{}{
		"updated_at": time.Now(),
	}
	if in.Name != nil {
		updates["name"] = *in.Name
	}
	if in.URL != nil {
		updates["url"] = *in.URL
	}
	if in.Category != nil {
		updates["category"] = *in.Category
	}
	if in.Tags != nil {
		// The tags column holds JSON text; map updates bypass the model
		// serializer, so marshal here.
		b, err := json.Marshal(*in.Tags)
		if err != nil {
			return nil, err
		}
		updates["tags"] = string(b)
	}
	if in.PromoText != nil {
		updates["promo_text"] = *in.PromoText
	}
	if in.IsPinned != nil {
		updates["is_pinned"] = *in.IsPinned
	}
	if in.IsActive != nil {
		updates["is_active"] = *in.IsActive
	}

	res := s.db.Model(&models.Link{}).Where("id = ?", id).Updates(updates)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, ErrNotFound
	}
	return s.GetByID(id)
}

// SoftDelete flips is_active off. Deleting an already-inactive link is a no-op.
func (s *LinkService) SoftDelete(id uint) error {
	return s.db.Model(&models.Link{}).Where("id = ?", id).
		UpdateColumn("is_active", false).Error
}

// IncrementClicks issues a single atomic add so concurrent clicks on the same
// link are never lost. A missing id is a silent no-op.
func (s *LinkService) IncrementClicks(id uint) error {
	return s.db.Model(&models.Link{}).Where("id = ?", id).
		UpdateColumn("click_count", gorm.Expr("click_count + ?", 1)).Error
}

// ListActivePromos returns active pinned links, newest first.
func (s *LinkService) ListActivePromos() ([]models.Link, error) {
	links := []models.Link{}
	err := s.db.Where("is_active = ? AND is_pinned = ?", true, true).
		Order("created_at desc").Find(&links).Error
	if err != nil {
		return nil, err
	}
	return links, nil
}

// Stats aggregates over the active rows at call time; nothing is cached.
func (s *LinkService) Stats() (*LinkStats, error) {
	var stats LinkStats
	err := s.db.Model(&models.Link{}).
		Where("is_active = ?", true).
		Select("COUNT(*) AS total_links, "+
			"COALESCE(SUM(CASE WHEN is_pinned THEN 1 ELSE 0 END), 0) AS active_promos, "+
			"COALESCE(SUM(CASE WHEN category = ? THEN 1 ELSE 0 END), 0) AS social_links, "+
			"COALESCE(SUM(click_count), 0) AS total_clicks", models.CategorySocials).
		Scan(&stats).Error
	if err != nil {
		return nil, err
	}
	return &stats, nil
}

// FindAffiliateLink returns the first active link whose name contains
// casinoName, case-insensitively. No ranking beyond store order; zero or
// multiple matches are both normal.
func (s *LinkService) FindAffiliateLink(casinoName string) (*models.Link, error) {
	var link models.Link
	err := s.db.Where("is_active = ?", true).
		Where("LOWER(name) LIKE ?", "%"+strings.ToLower(casinoName)+"%").
		First(&link).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &link, nil
}
