package checkout

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/ecostylo/ecostylo-backend/internal/cart"
	"github.com/ecostylo/ecostylo-backend/internal/orders"
	"github.com/ecostylo/ecostylo-backend/internal/products"
	"github.com/ecostylo/ecostylo-backend/internal/users"
	"github.com/ecostylo/ecostylo-backend/pkg/db/models"
	"github.com/ecostylo/ecostylo-backend/pkg/enums"
	pkgerrors "github.com/ecostylo/ecostylo-backend/pkg/errors"
	"github.com/ecostylo/ecostylo-backend/pkg/logger"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type txRunner interface {
	WithTx(ctx context.Context, fn func(tx *gorm.DB) error) error
}

// Notifier pushes a best-effort order notification to the merchant.
type Notifier interface {
	OrderPlaced(ctx context.Context, order *models.Order, customer *models.User) error
}

// Service executes checkout orchestration.
type Service interface {
	Execute(ctx context.Context, userID uuid.UUID) (*orders.OrderDTO, error)
}

type service struct {
	tx       txRunner
	notifier Notifier
	logg     *logger.Logger
}

// ServiceParams bundles the checkout dependencies.
type ServiceParams struct {
	DB       txRunner
	Notifier Notifier
	Logger   *logger.Logger
}

// NewService builds the checkout service.
func NewService(params ServiceParams) (Service, error) {
	if params.DB == nil {
		return nil, fmt.Errorf("tx runner required")
	}
	if params.Notifier == nil {
		return nil, fmt.Errorf("notifier required")
	}
	return &service{
		tx:       params.DB,
		notifier: params.Notifier,
		logg:     params.Logger,
	}, nil
}

// Execute converts the user's cart into an order inside one transaction:
// lock the products, validate availability, snapshot names and prices,
// decrement stock, and clear the cart. The merchant notification fires only
// after the transaction commits and never fails the checkout.
func (s *service) Execute(ctx context.Context, userID uuid.UUID) (*orders.OrderDTO, error) {
	if userID == uuid.Nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "user id required")
	}

	var (
		placed   *models.Order
		customer *models.User
	)
	err := s.tx.WithTx(ctx, func(tx *gorm.DB) error {
		cartRepo := cart.NewRepository(tx)
		productRepo := products.NewRepository(tx)
		orderRepo := orders.NewRepository(tx)
		userRepo := users.NewRepository(tx)

		record, err := cartRepo.FindByUserID(ctx, userID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return pkgerrors.New(pkgerrors.CodeValidation, "cart is empty")
			}
			return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "load cart")
		}
		if len(record.Items) == 0 {
			return pkgerrors.New(pkgerrors.CodeValidation, "cart is empty")
		}

		ids := make([]uuid.UUID, 0, len(record.Items))
		for _, item := range record.Items {
			ids = append(ids, item.ProductID)
		}
		locked, err := productRepo.FindForUpdate(ctx, ids)
		if err != nil {
			return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "lock products")
		}
		byID := make(map[uuid.UUID]*models.Product, len(locked))
		for i := range locked {
			byID[locked[i].ID] = &locked[i]
		}

		order, err := assembleOrder(record, byID, userID, time.Now().UTC())
		if err != nil {
			return err
		}

		for _, item := range order.Items {
			affected, err := productRepo.DecrementStock(ctx, item.ProductID, item.Quantity)
			if err != nil {
				return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "decrement stock")
			}
			if affected == 0 {
				return pkgerrors.New(pkgerrors.CodeValidation, "insufficient stock").
					WithDetails(map[string]any{"product_id": item.ProductID})
			}
		}

		if _, err := orderRepo.Create(ctx, order); err != nil {
			return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "create order")
		}

		if err := cartRepo.ClearItems(ctx, record.ID); err != nil {
			return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "clear cart")
		}

		customer, err = userRepo.FindByID(ctx, userID)
		if err != nil {
			return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "load customer")
		}

		placed = order
		return nil
	})
	if err != nil {
		return nil, err
	}

	if err := s.notifier.OrderPlaced(ctx, placed, customer); err != nil && s.logg != nil {
		notifyCtx := s.logg.WithFields(ctx, map[string]any{"order_number": placed.OrderNumber})
		s.logg.Warn(notifyCtx, "merchant notification failed")
	}

	return orders.NewOrderDTO(placed), nil
}

// assembleOrder validates every cart line against the locked products and
// freezes name, unit price, and total onto the new order.
func assembleOrder(record *models.Cart, byID map[uuid.UUID]*models.Product, userID uuid.UUID, now time.Time) (*models.Order, error) {
	order := &models.Order{
		UserID:      userID,
		OrderNumber: NewOrderNumber(now),
		Status:      enums.OrderStatusPending,
		Total:       decimal.Zero,
		Items:       make([]models.OrderItem, 0, len(record.Items)),
	}

	for _, item := range record.Items {
		product, ok := byID[item.ProductID]
		if !ok || !product.Active {
			return nil, pkgerrors.New(pkgerrors.CodeValidation, "product no longer available").
				WithDetails(map[string]any{"product_id": item.ProductID})
		}
		if item.Quantity <= 0 {
			return nil, pkgerrors.New(pkgerrors.CodeValidation, "invalid cart quantity").
				WithDetails(map[string]any{"product_id": item.ProductID})
		}
		if item.Quantity > product.Stock {
			return nil, pkgerrors.New(pkgerrors.CodeValidation, "insufficient stock").
				WithDetails(map[string]any{
					"product_id": item.ProductID,
					"requested":  item.Quantity,
					"available":  product.Stock,
				})
		}

		line := models.OrderItem{
			ProductID: product.ID,
			Name:      product.Name,
			Quantity:  item.Quantity,
			UnitPrice: product.Price,
		}
		order.Items = append(order.Items, line)
		order.Total = order.Total.Add(line.Subtotal())
	}

	return order, nil
}
