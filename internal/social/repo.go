package social

import (
	"context"

	"github.com/ecostylo/ecostylo-backend/pkg/db/models"
	"gorm.io/gorm"
)

// Repository exposes persistence for storefront social links.
type Repository struct {
	db *gorm.DB
}

// NewRepository constructs a social-media repo bound to the provided GORM DB.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// ListActive returns the links shown in the storefront footer.
func (r *Repository) ListActive(ctx context.Context) ([]models.SocialMedia, error) {
	var rows []models.SocialMedia
	err := r.db.WithContext(ctx).
		Where("active = ?", true).
		Order("name ASC").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

// Create inserts a new link.
func (r *Repository) Create(ctx context.Context, link *models.SocialMedia) (*models.SocialMedia, error) {
	if err := r.db.WithContext(ctx).Create(link).Error; err != nil {
		return nil, err
	}
	return link, nil
}
