package cart

import (
	"context"
	"testing"

	"github.com/ecostylo/ecostylo-backend/pkg/db/models"
	pkgerrors "github.com/ecostylo/ecostylo-backend/pkg/errors"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

func TestServiceAddItemMergesDuplicates(t *testing.T) {
	userID := uuid.New()
	product := activeProduct("Organic Tote", "25.50", 10)
	store := newStubCartStore(userID, product)
	svc := mustNewService(t, store, store)

	ctx := context.Background()
	if _, err := svc.AddItem(ctx, userID, AddItemRequest{ProductID: product.ID, Quantity: 2}); err != nil {
		t.Fatalf("first add: %v", err)
	}
	dto, err := svc.AddItem(ctx, userID, AddItemRequest{ProductID: product.ID, Quantity: 3})
	if err != nil {
		t.Fatalf("second add: %v", err)
	}

	if len(dto.Items) != 1 {
		t.Fatalf("expected one merged line, got %d", len(dto.Items))
	}
	if dto.Items[0].Quantity != 5 {
		t.Fatalf("expected merged quantity 5, got %d", dto.Items[0].Quantity)
	}
	want := decimal.RequireFromString("127.50")
	if !dto.Total.Equal(want) {
		t.Fatalf("expected total %s, got %s", want, dto.Total)
	}
}

func TestServiceAddItemRejectsNonPositiveQuantity(t *testing.T) {
	userID := uuid.New()
	product := activeProduct("Organic Tote", "25.50", 10)
	store := newStubCartStore(userID, product)
	svc := mustNewService(t, store, store)

	for _, qty := range []int{0, -1} {
		_, err := svc.AddItem(context.Background(), userID, AddItemRequest{ProductID: product.ID, Quantity: qty})
		if err == nil {
			t.Fatalf("expected error for quantity %d", qty)
		}
		typed := pkgerrors.As(err)
		if typed == nil || typed.Code() != pkgerrors.CodeValidation {
			t.Fatalf("expected validation error, got %v", err)
		}
	}
}

func TestServiceAddItemUnknownProduct(t *testing.T) {
	userID := uuid.New()
	store := newStubCartStore(userID)
	svc := mustNewService(t, store, store)

	_, err := svc.AddItem(context.Background(), userID, AddItemRequest{ProductID: uuid.New(), Quantity: 1})
	assertNotFound(t, err)
}

func TestServiceUpdateItemZeroQuantityRemovesLine(t *testing.T) {
	userID := uuid.New()
	product := activeProduct("Organic Tote", "25.50", 10)
	store := newStubCartStore(userID, product)
	svc := mustNewService(t, store, store)

	ctx := context.Background()
	if _, err := svc.AddItem(ctx, userID, AddItemRequest{ProductID: product.ID, Quantity: 2}); err != nil {
		t.Fatalf("add: %v", err)
	}

	dto, err := svc.UpdateItem(ctx, userID, product.ID, UpdateItemRequest{Quantity: 0})
	if err != nil {
		t.Fatalf("update to zero: %v", err)
	}
	if len(dto.Items) != 0 {
		t.Fatalf("expected empty cart, got %d lines", len(dto.Items))
	}
}

func TestServiceUpdateItemUnknownLine(t *testing.T) {
	userID := uuid.New()
	product := activeProduct("Organic Tote", "25.50", 10)
	store := newStubCartStore(userID, product)
	svc := mustNewService(t, store, store)

	_, err := svc.UpdateItem(context.Background(), userID, product.ID, UpdateItemRequest{Quantity: 4})
	assertNotFound(t, err)
}

func TestServiceRemoveItemUnknownLine(t *testing.T) {
	userID := uuid.New()
	store := newStubCartStore(userID)
	svc := mustNewService(t, store, store)

	_, err := svc.RemoveItem(context.Background(), userID, uuid.New())
	assertNotFound(t, err)
}

func TestServiceGetFlagsInactiveProducts(t *testing.T) {
	userID := uuid.New()
	product := activeProduct("Organic Tote", "25.50", 10)
	store := newStubCartStore(userID, product)
	svc := mustNewService(t, store, store)

	ctx := context.Background()
	if _, err := svc.AddItem(ctx, userID, AddItemRequest{ProductID: product.ID, Quantity: 2}); err != nil {
		t.Fatalf("add: %v", err)
	}

	product.Active = false

	dto, err := svc.Get(ctx, userID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if len(dto.Items) != 1 {
		t.Fatalf("expected the line to survive, got %d lines", len(dto.Items))
	}
	if !dto.Items[0].Unavailable {
		t.Fatal("expected line to be flagged unavailable")
	}
	if !dto.Total.IsZero() {
		t.Fatalf("unavailable lines must not count toward the total, got %s", dto.Total)
	}
}

func mustNewService(t *testing.T, carts cartRepository, products productFinder) Service {
	t.Helper()
	svc, err := NewService(ServiceParams{CartRepo: carts, ProductRepo: products})
	if err != nil {
		t.Fatalf("new service: %v", err)
	}
	return svc
}

func assertNotFound(t *testing.T, err error) {
	t.Helper()
	if err == nil {
		t.Fatal("expected not found error")
	}
	typed := pkgerrors.As(err)
	if typed == nil || typed.Code() != pkgerrors.CodeNotFound {
		t.Fatalf("expected not found error, got %v", err)
	}
}

func activeProduct(name, price string, stock int) *models.Product {
	return &models.Product{
		ID:     uuid.New(),
		Name:   name,
		Price:  decimal.RequireFromString(price),
		Stock:  stock,
		Active: true,
	}
}

// stubCartStore backs both the cart repository and product finder interfaces
// with in-memory state.
type stubCartStore struct {
	cart     *models.Cart
	products map[uuid.UUID]*models.Product
}

func newStubCartStore(userID uuid.UUID, products ...*models.Product) *stubCartStore {
	index := make(map[uuid.UUID]*models.Product, len(products))
	for _, p := range products {
		index[p.ID] = p
	}
	return &stubCartStore{
		cart:     &models.Cart{ID: uuid.New(), UserID: userID},
		products: index,
	}
}

func (s *stubCartStore) FindActiveByID(ctx context.Context, id uuid.UUID) (*models.Product, error) {
	p, ok := s.products[id]
	if !ok || !p.Active {
		return nil, gorm.ErrRecordNotFound
	}
	return p, nil
}

func (s *stubCartStore) EnsureForUser(ctx context.Context, userID uuid.UUID) (*models.Cart, error) {
	return s.snapshot(), nil
}

func (s *stubCartStore) FindByUserID(ctx context.Context, userID uuid.UUID) (*models.Cart, error) {
	return s.snapshot(), nil
}

func (s *stubCartStore) UpsertItem(ctx context.Context, cartID, productID uuid.UUID, qty int) error {
	for i := range s.cart.Items {
		if s.cart.Items[i].ProductID == productID {
			s.cart.Items[i].Quantity += qty
			return nil
		}
	}
	s.cart.Items = append(s.cart.Items, models.CartItem{
		ID:        uuid.New(),
		CartID:    cartID,
		ProductID: productID,
		Quantity:  qty,
	})
	return nil
}

func (s *stubCartStore) SetItemQuantity(ctx context.Context, cartID, productID uuid.UUID, qty int) (int64, error) {
	for i := range s.cart.Items {
		if s.cart.Items[i].ProductID == productID {
			s.cart.Items[i].Quantity = qty
			return 1, nil
		}
	}
	return 0, nil
}

func (s *stubCartStore) RemoveItem(ctx context.Context, cartID, productID uuid.UUID) (int64, error) {
	for i := range s.cart.Items {
		if s.cart.Items[i].ProductID == productID {
			s.cart.Items = append(s.cart.Items[:i], s.cart.Items[i+1:]...)
			return 1, nil
		}
	}
	return 0, nil
}

func (s *stubCartStore) ClearItems(ctx context.Context, cartID uuid.UUID) error {
	s.cart.Items = nil
	return nil
}

func (s *stubCartStore) snapshot() *models.Cart {
	copied := *s.cart
	copied.Items = make([]models.CartItem, len(s.cart.Items))
	copy(copied.Items, s.cart.Items)
	for i := range copied.Items {
		copied.Items[i].Product = s.products[copied.Items[i].ProductID]
	}
	return &copied
}
