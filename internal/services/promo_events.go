package services

import (
	"encoding/json"
	"errors"
	"time"

	"github.com/Tyrock1988/gamblecodez-platform/internal/models"

	"gorm.io/gorm"
)

type CreatePromoEventInput struct {
	Title        string
	Description  string
	PromoCode    string
	CasinoName   string
	StartDate    time.Time
	EndDate      time.Time
	Tags         []string
	AffiliateURL string
	IsActive     *bool // defaults to true when nil
}

type UpdatePromoEventInput struct {
	Title        *string
	Description  *string
	PromoCode    *string
	CasinoName   *string
	StartDate    *time.Time
	EndDate      *time.Time
	Tags         *[]string
	AffiliateURL *string
	IsActive     *bool
}

type PromoEventService struct {
	db    *gorm.DB
	links *LinkService
}

func NewPromoEventService(db *gorm.DB, links *LinkService) *PromoEventService {
	return &PromoEventService{db: db, links: links}
}

// List returns active events, ordered by start date descending. When a date
// is given, only events whose [start, end] interval overlaps that whole UTC
// day are returned.
func (s *PromoEventService) List(date *time.Time) ([]models.PromoEvent, error) {
	events := []models.PromoEvent{}
	q := s.db.Where("is_active = ?", true)
	if date != nil {
		dayStart, dayEnd := dayBounds(*date)
		q = q.Where("start_date <= ? AND end_date >= ?", dayEnd, dayStart)
	}
	if err := q.Order("start_date desc").Find(&events).Error; err != nil {
		return nil, err
	}
	return events, nil
}

func (s *PromoEventService) GetByID(id uint) (*models.PromoEvent, error) {
	var event models.PromoEvent
	if err := s.db.First(&event, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &event, nil
}

func (s *PromoEventService) Create(in CreatePromoEventInput) (*models.PromoEvent, error) {
	// Best-effort affiliate enrichment: adopt the first matching active
	// link's url when the admin left affiliateUrl blank.
	if in.CasinoName != "" && in.AffiliateURL == "" {
		match, err := s.links.FindAffiliateLink(in.CasinoName)
		if err != nil {
			return nil, err
		}
		if match != nil {
			in.AffiliateURL = match.URL
		}
	}

	active := true
	if in.IsActive != nil {
		active = *in.IsActive
	}
	tags := in.Tags
	if tags == nil {
		tags = []string{}
	}

	event := models.PromoEvent{
		Title:        in.Title,
		Description:  in.Description,
		PromoCode:    in.PromoCode,
		CasinoName:   in.CasinoName,
		StartDate:    in.StartDate,
		EndDate:      in.EndDate,
		IsActive:     active,
		Tags:         tags,
		AffiliateURL: in.AffiliateURL,
	}

	if err := s.db.Create(&event).Error; err != nil {
		return nil, err
	}
	return &event, nil
}

func (s *PromoEventService) Update(id uint, in UpdatePromoEventInput) (*models.PromoEvent, error) {
	updates := map[string]interface{}{
		"updated_at": time.Now(),
	}
	if in.Title != nil {
		updates["title"] = *in.Title
	}
	if in.Description != nil {
		updates["description"] = *in.Description
	}
	if in.PromoCode != nil {
		updates["promo_code"] = *in.PromoCode
	}
	if in.CasinoName != nil {
		updates["casino_name"] = *in.CasinoName
	}
	if in.StartDate != nil {
		updates["start_date"] = *in.StartDate
	}
	if in.EndDate != nil {
		updates["end_date"] = *in.EndDate
	}
	if in.Tags != nil {
		b, err := json.Marshal(*in.Tags)
		if err != nil {
			return nil, err
		}
		updates["tags"] = string(b)
	}
	if in.AffiliateURL != nil {
		updates["affiliate_url"] = *in.AffiliateURL
	}
	if in.IsActive != nil {
		updates["is_active"] = *in.IsActive
	}

	// Same enrichment as on create when the payload names a casino but no url.
	if in.CasinoName != nil && *in.CasinoName != "" &&
		(in.AffiliateURL == nil || *in.AffiliateURL == "") {
		match, err := s.links.FindAffiliateLink(*in.CasinoName)
		if err != nil {
			return nil, err
		}
		if match != nil {
			updates["affiliate_url"] = match.URL
		}
	}

	res := s.db.Model(&models.PromoEvent{}).Where("id = ?", id).Updates(updates)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, ErrNotFound
	}
	return s.GetByID(id)
}

// SoftDelete is idempotent.
func (s *PromoEventService) SoftDelete(id uint) error {
	return s.db.Model(&models.PromoEvent{}).Where("id = ?", id).
		UpdateColumn("is_active", false).Error
}

// ListActive returns events running at the given instant.
func (s *PromoEventService) ListActive(now time.Time) ([]models.PromoEvent, error) {
	events := []models.PromoEvent{}
	err := s.db.Where("is_active = ? AND start_date <= ? AND end_date >= ?", true, now, now).
		Order("start_date desc").Find(&events).Error
	if err != nil {
		return nil, err
	}
	return events, nil
}

func dayBounds(date time.Time) (time.Time, time.Time) {
	d := date.UTC()
	start := time.Date(d.Year(), d.Month(), d.Day(), 0, 0, 0, 0, time.UTC)
	end := start.Add(24*time.Hour - time.Nanosecond)
	return start, end
}
