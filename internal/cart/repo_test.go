package cart

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/ecostylo/ecostylo-backend/pkg/db/models"
)

func setupCartTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file::memory:?cache=shared"), &gorm.Config{})
	require.NoError(t, err)

	carts := `
CREATE TABLE IF NOT EXISTS carts (
  id TEXT PRIMARY KEY DEFAULT (lower(hex(randomblob(16)))),
  user_id TEXT NOT NULL UNIQUE,
  created_at DATETIME,
  updated_at DATETIME
);`
	cartItems := `
CREATE TABLE IF NOT EXISTS cart_items (
  id TEXT PRIMARY KEY DEFAULT (lower(hex(randomblob(16)))),
  cart_id TEXT NOT NULL,
  product_id TEXT NOT NULL,
  quantity INTEGER NOT NULL,
  created_at DATETIME,
  updated_at DATETIME,
  UNIQUE (cart_id, product_id)
);`
	products := `
CREATE TABLE IF NOT EXISTS products (
  id TEXT PRIMARY KEY,
  name TEXT NOT NULL,
  description TEXT NOT NULL DEFAULT '',
  price TEXT NOT NULL,
  stock INTEGER NOT NULL,
  active INTEGER NOT NULL DEFAULT 1,
  created_at DATETIME,
  updated_at DATETIME
);`
	require.NoError(t, db.Exec(carts).Error)
	require.NoError(t, db.Exec(cartItems).Error)
	require.NoError(t, db.Exec(products).Error)
	return db
}

func createCatalogProduct(t *testing.T, db *gorm.DB, name string) *models.Product {
	t.Helper()

	product := &models.Product{
		ID:     uuid.New(),
		Name:   name,
		Price:  decimal.RequireFromString("25.50"),
		Stock:  50,
		Active: true,
	}
	require.NoError(t, db.Create(product).Error)
	return product
}

func openCart(t *testing.T, repo *Repository) *models.Cart {
	t.Helper()

	userID := uuid.New()
	_, err := repo.Create(context.Background(), userID)
	require.NoError(t, err)

	cart, err := repo.FindByUserID(context.Background(), userID)
	require.NoError(t, err)
	return cart
}

func TestRepositoryUpsertItemMergesDuplicateLines(t *testing.T) {
	db := setupCartTestDB(t)
	repo := NewRepository(db)
	cart := openCart(t, repo)
	shirt := createCatalogProduct(t, db, "Organic Cotton Shirt")
	tote := createCatalogProduct(t, db, "Canvas Tote")

	require.NoError(t, repo.UpsertItem(context.Background(), cart.ID, shirt.ID, 2))
	require.NoError(t, repo.UpsertItem(context.Background(), cart.ID, shirt.ID, 3))
	require.NoError(t, repo.UpsertItem(context.Background(), cart.ID, tote.ID, 1))

	items, err := repo.ListItems(context.Background(), cart.ID)
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, shirt.ID, items[0].ProductID)
	assert.Equal(t, 5, items[0].Quantity)
	assert.Equal(t, tote.ID, items[1].ProductID)
	assert.Equal(t, 1, items[1].Quantity)
}

func TestRepositorySetItemQuantityRowsAffected(t *testing.T) {
	db := setupCartTestDB(t)
	repo := NewRepository(db)
	cart := openCart(t, repo)
	shirt := createCatalogProduct(t, db, "Organic Cotton Shirt")

	require.NoError(t, repo.UpsertItem(context.Background(), cart.ID, shirt.ID, 2))

	affected, err := repo.SetItemQuantity(context.Background(), cart.ID, shirt.ID, 7)
	require.NoError(t, err)
	assert.Equal(t, int64(1), affected)

	items, err := repo.ListItems(context.Background(), cart.ID)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, 7, items[0].Quantity)

	affected, err = repo.SetItemQuantity(context.Background(), cart.ID, uuid.New(), 3)
	require.NoError(t, err)
	assert.Zero(t, affected)
}

func TestRepositoryRemoveItemRowsAffected(t *testing.T) {
	db := setupCartTestDB(t)
	repo := NewRepository(db)
	cart := openCart(t, repo)
	shirt := createCatalogProduct(t, db, "Organic Cotton Shirt")

	require.NoError(t, repo.UpsertItem(context.Background(), cart.ID, shirt.ID, 2))

	affected, err := repo.RemoveItem(context.Background(), cart.ID, shirt.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), affected)

	affected, err = repo.RemoveItem(context.Background(), cart.ID, shirt.ID)
	require.NoError(t, err)
	assert.Zero(t, affected)
}

func TestRepositoryClearItems(t *testing.T) {
	db := setupCartTestDB(t)
	repo := NewRepository(db)
	cart := openCart(t, repo)

	require.NoError(t, repo.UpsertItem(context.Background(), cart.ID, createCatalogProduct(t, db, "Organic Cotton Shirt").ID, 2))
	require.NoError(t, repo.UpsertItem(context.Background(), cart.ID, createCatalogProduct(t, db, "Canvas Tote").ID, 1))

	require.NoError(t, repo.ClearItems(context.Background(), cart.ID))

	items, err := repo.ListItems(context.Background(), cart.ID)
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestRepositoryEnsureForUserIsIdempotent(t *testing.T) {
	db := setupCartTestDB(t)
	repo := NewRepository(db)

	userID := uuid.New()
	_, err := repo.EnsureForUser(context.Background(), userID)
	require.NoError(t, err)

	again, err := repo.EnsureForUser(context.Background(), userID)
	require.NoError(t, err)
	assert.Equal(t, userID, again.UserID)

	var count int64
	require.NoError(t, db.Model(&models.Cart{}).Where("user_id = ?", userID).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}
