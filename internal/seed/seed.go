package seed

import (
	"context"
	"fmt"

	"github.com/ecostylo/ecostylo-backend/pkg/config"
	"github.com/ecostylo/ecostylo-backend/pkg/db/models"
	"github.com/ecostylo/ecostylo-backend/pkg/enums"
	"github.com/ecostylo/ecostylo-backend/pkg/logger"
	"github.com/ecostylo/ecostylo-backend/pkg/security"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

const staffEmail = "staff@ecostylo.com"

// Products returns the sample catalog loaded into fresh environments.
func Products() []models.Product {
	return []models.Product{
		{
			Name:        "Organic Cotton Shirt",
			Description: "Soft shirt made from certified organic cotton.",
			Price:       decimal.RequireFromString("25.50"),
			Stock:       50,
			Active:      true,
		},
		{
			Name:        "Recycled Denim Jeans",
			Description: "Jeans woven from post-consumer recycled denim.",
			Price:       decimal.RequireFromString("45.00"),
			Stock:       30,
			Active:      true,
		},
		{
			Name:        "Canvas Tote",
			Description: "Reusable everyday tote in natural canvas.",
			Price:       decimal.RequireFromString("15.75"),
			Stock:       100,
			Active:      true,
		},
	}
}

// SocialLinks returns the storefront footer links.
func SocialLinks() []models.SocialMedia {
	return []models.SocialMedia{
		{Name: "Instagram", URL: "https://instagram.com/ecostylo", Icon: "instagram", Active: true},
		{Name: "Facebook", URL: "https://facebook.com/ecostylo", Icon: "facebook", Active: true},
		{Name: "TikTok", URL: "https://tiktok.com/@ecostylo", Icon: "tiktok", Active: true},
	}
}

// Params configure a seeding run.
type Params struct {
	DB       *gorm.DB
	Logger   *logger.Logger
	Password config.PasswordConfig
	// StaffPassword is the initial password for the staff account. Seeding
	// fails without it so a default credential never ships.
	StaffPassword string
}

// Run loads sample data. It is idempotent: rows matched by their natural key
// (product name, link name, staff email) are left untouched.
func Run(ctx context.Context, params Params) error {
	if params.DB == nil {
		return fmt.Errorf("db required")
	}
	if params.StaffPassword == "" {
		return fmt.Errorf("staff password required")
	}

	for _, product := range Products() {
		err := params.DB.WithContext(ctx).
			Where("name = ?", product.Name).
			FirstOrCreate(&models.Product{}, product).Error
		if err != nil {
			return fmt.Errorf("seed product %q: %w", product.Name, err)
		}
	}

	for _, link := range SocialLinks() {
		err := params.DB.WithContext(ctx).
			Where("name = ?", link.Name).
			FirstOrCreate(&models.SocialMedia{}, link).Error
		if err != nil {
			return fmt.Errorf("seed social link %q: %w", link.Name, err)
		}
	}

	hash, err := security.HashPassword(params.StaffPassword, params.Password)
	if err != nil {
		return fmt.Errorf("hash staff password: %w", err)
	}
	staff := models.User{
		Email:        staffEmail,
		PasswordHash: hash,
		FirstName:    "Store",
		LastName:     "Manager",
		Role:         enums.UserRoleStaff,
		IsActive:     true,
	}
	err = params.DB.WithContext(ctx).
		Where("email = ?", staff.Email).
		FirstOrCreate(&models.User{}, staff).Error
	if err != nil {
		return fmt.Errorf("seed staff user: %w", err)
	}

	if params.Logger != nil {
		params.Logger.Info(ctx, "sample data loaded")
	}
	return nil
}
