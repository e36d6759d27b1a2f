package models

import (
	"time"

	"github.com/google/uuid"
)

// SocialMedia is a managed storefront footer link.
type SocialMedia struct {
	ID        uuid.UUID `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey"`
	Name      string    `gorm:"column:name;not null"`
	URL       string    `gorm:"column:url;not null"`
	Icon      string    `gorm:"column:icon;not null;default:''"`
	Active    bool      `gorm:"column:active;not null;default:true"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime"`
}
