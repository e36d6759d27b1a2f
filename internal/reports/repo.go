package reports

import (
	"context"
	"time"

	"github.com/ecostylo/ecostylo-backend/pkg/db/models"
	"github.com/ecostylo/ecostylo-backend/pkg/enums"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// SalesTotals aggregates revenue and order count over a window.
type SalesTotals struct {
	Revenue    decimal.Decimal `json:"revenue"`
	OrderCount int64           `json:"order_count"`
}

// ProductSales is one row of the top-products ranking, grouped by the
// order-item name snapshot so renamed catalog entries keep their history.
type ProductSales struct {
	Name     string          `json:"name"`
	Quantity int64           `json:"quantity"`
	Revenue  decimal.Decimal `json:"revenue"`
}

// Repository runs the reporting aggregations.
type Repository struct {
	db *gorm.DB
}

// NewRepository constructs a reports repo bound to the provided GORM DB.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// SalesBetween sums total and counts orders created in [from, to), pending
// and cancelled orders excluded.
func (r *Repository) SalesBetween(ctx context.Context, from, to time.Time) (*SalesTotals, error) {
	var row struct {
		Revenue    decimal.Decimal
		OrderCount int64
	}
	err := r.db.WithContext(ctx).
		Model(&models.Order{}).
		Select("COALESCE(SUM(total), 0) AS revenue, COUNT(*) AS order_count").
		Where("status IN ?", enums.ReportableOrderStatuses).
		Where("created_at >= ? AND created_at < ?", from, to).
		Scan(&row).Error
	if err != nil {
		return nil, err
	}
	return &SalesTotals{Revenue: row.Revenue, OrderCount: row.OrderCount}, nil
}

// TopProducts ranks order lines by quantity sold in [from, to). Revenue per
// row is the sum of quantity times the frozen unit price.
func (r *Repository) TopProducts(ctx context.Context, from, to time.Time, limit int) ([]ProductSales, error) {
	var rows []ProductSales
	err := r.db.WithContext(ctx).
		Model(&models.OrderItem{}).
		Select("order_items.name AS name, SUM(order_items.quantity) AS quantity, COALESCE(SUM(order_items.quantity * order_items.unit_price), 0) AS revenue").
		Joins("JOIN orders ON orders.id = order_items.order_id").
		Where("orders.status IN ?", enums.ReportableOrderStatuses).
		Where("orders.created_at >= ? AND orders.created_at < ?", from, to).
		Group("order_items.name").
		Order("quantity DESC, name ASC").
		Limit(limit).
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}
