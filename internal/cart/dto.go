package cart

import (
	"time"

	"github.com/ecostylo/ecostylo-backend/pkg/db/models"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// AddItemRequest is the payload for adding a product to the cart.
type AddItemRequest struct {
	ProductID uuid.UUID `json:"product_id" validate:"required"`
	Quantity  int       `json:"quantity" validate:"required,gt=0"`
}

// UpdateItemRequest sets the absolute quantity of an existing line. Zero and
// negative values remove the line, so the field carries no validation tag.
type UpdateItemRequest struct {
	Quantity int `json:"quantity"`
}

// ItemDTO is one cart line priced at the catalog's current price.
type ItemDTO struct {
	ProductID   uuid.UUID       `json:"product_id"`
	Name        string          `json:"name"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	Quantity    int             `json:"quantity"`
	Subtotal    decimal.Decimal `json:"subtotal"`
	Unavailable bool            `json:"unavailable,omitempty"`
}

// CartDTO is the shopper-facing cart view.
type CartDTO struct {
	ID        uuid.UUID       `json:"id"`
	Items     []ItemDTO       `json:"items"`
	Total     decimal.Decimal `json:"total"`
	UpdatedAt time.Time       `json:"updated_at"`
}

// NewCartDTO prices the cart lines against the loaded products. Lines whose
// product has gone missing or inactive are flagged rather than dropped so the
// client can surface them.
func NewCartDTO(cart *models.Cart) *CartDTO {
	dto := &CartDTO{
		ID:        cart.ID,
		Items:     make([]ItemDTO, 0, len(cart.Items)),
		Total:     decimal.Zero,
		UpdatedAt: cart.UpdatedAt,
	}

	for _, item := range cart.Items {
		line := ItemDTO{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
		}
		if item.Product == nil || !item.Product.Active {
			line.Unavailable = true
			line.Subtotal = decimal.Zero
			if item.Product != nil {
				line.Name = item.Product.Name
			}
		} else {
			line.Name = item.Product.Name
			line.UnitPrice = item.Product.Price
			line.Subtotal = item.Product.Price.Mul(decimal.NewFromInt(int64(item.Quantity)))
			dto.Total = dto.Total.Add(line.Subtotal)
		}
		dto.Items = append(dto.Items, line)
	}

	return dto
}
