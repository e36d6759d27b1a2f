package products

import (
	"testing"

	"github.com/ecostylo/ecostylo-backend/pkg/db/models"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

func mustCreateTestProduct(t *testing.T, tx *gorm.DB, name string, price string, stock int, active bool) *models.Product {
	t.Helper()
	product := &models.Product{
		ID:          uuid.New(),
		Name:        name,
		Description: "test product",
		Price:       decimal.RequireFromString(price),
		Stock:       stock,
		Active:      active,
	}
	if err := tx.Create(product).Error; err != nil {
		t.Fatalf("create product: %v", err)
	}
	return product
}
