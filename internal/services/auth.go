package services

import (
	"errors"

	"github.com/Tyrock1988/gamblecodez-platform/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type AuthService struct {
	db *gorm.DB
}

func NewAuthService(db *gorm.DB) *AuthService {
	return &AuthService{db: db}
}

// UpsertUser inserts the user or, on an id conflict, refreshes the profile
// fields. Called once per login, whatever provider produced the identity.
func (s *AuthService) UpsertUser(user models.User) (*models.User, error) {
	err := s.db.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "id"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"email", "first_name", "last_name", "profile_image_url", "updated_at",
		}),
	}).Create(&user).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (s *AuthService) GetUser(id string) (*models.User, error) {
	var user models.User
	if err := s.db.First(&user, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &user, nil
}
