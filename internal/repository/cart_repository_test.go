package repository

import (
	"testing"
	"time"

	"github.com/pixelmart/internal/models"

	"github.com/glebarez/sqlite"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

func setupCartRepositoryTest(t *testing.T) (*GormCartRepository, *gorm.DB) {
	t.Helper()
	db, err := gorm.Open(sqlite.Open("file::memory:?cache=shared"), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite failed: %v", err)
	}
	if err := db.AutoMigrate(&models.Product{}, &models.Cart{}, &models.CartItem{}); err != nil {
		t.Fatalf("migrate cart tables failed: %v", err)
	}
	return NewCartRepository(db), db
}

func upsertCartItem(t *testing.T, repo *GormCartRepository, cartID, productID uint, name string) {
	t.Helper()
	now := time.Now()
	item := &models.CartItem{
		CartID:    cartID,
		ProductID: productID,
		Name:      name,
		Price:     models.NewMoneyFromDecimal(decimal.NewFromFloat(19.99)),
		Quantity:  1,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := repo.UpsertItem(item); err != nil {
		t.Fatalf("upsert cart item failed: %v", err)
	}
}

func TestEnsureForUserIsIdempotent(t *testing.T) {
	repo, _ := setupCartRepositoryTest(t)

	first, err := repo.EnsureForUser(101)
	if err != nil {
		t.Fatalf("ensure cart failed: %v", err)
	}
	if first.ID == 0 {
		t.Fatalf("ensure cart returned zero id")
	}
	second, err := repo.EnsureForUser(101)
	if err != nil {
		t.Fatalf("ensure cart again failed: %v", err)
	}
	if second.ID != first.ID {
		t.Fatalf("cart id want %d got %d", first.ID, second.ID)
	}
}

func TestUpsertItemIncrementsExistingRow(t *testing.T) {
	repo, db := setupCartRepositoryTest(t)
	cart, err := repo.EnsureForUser(102)
	if err != nil {
		t.Fatalf("ensure cart failed: %v", err)
	}

	upsertCartItem(t, repo, cart.ID, 11, "Nova Blade")
	upsertCartItem(t, repo, cart.ID, 11, "Nova Blade")
	upsertCartItem(t, repo, cart.ID, 12, "Nova Blade Keychain")

	var rowCount int64
	if err := db.Model(&models.CartItem{}).Where("cart_id = ?", cart.ID).Count(&rowCount).Error; err != nil {
		t.Fatalf("count cart rows failed: %v", err)
	}
	if rowCount != 2 {
		t.Fatalf("cart row count want 2 got %d", rowCount)
	}

	var repeated models.CartItem
	if err := db.Where("cart_id = ? AND product_id = ?", cart.ID, 11).First(&repeated).Error; err != nil {
		t.Fatalf("reload repeated item failed: %v", err)
	}
	if repeated.Quantity != 2 {
		t.Fatalf("repeated item quantity want 2 got %d", repeated.Quantity)
	}

	total, err := repo.CountItems(cart.ID)
	if err != nil {
		t.Fatalf("count items failed: %v", err)
	}
	if total != 3 {
		t.Fatalf("item total want 3 got %d", total)
	}
}

func TestUpdateItemQuantityReportsMissingRow(t *testing.T) {
	repo, _ := setupCartRepositoryTest(t)
	cart, err := repo.EnsureForUser(103)
	if err != nil {
		t.Fatalf("ensure cart failed: %v", err)
	}
	upsertCartItem(t, repo, cart.ID, 21, "Drift Racer")

	items, err := repo.ListItems(cart.ID)
	if err != nil {
		t.Fatalf("list items failed: %v", err)
	}
	if len(items) != 1 {
		t.Fatalf("item count want 1 got %d", len(items))
	}

	rows, err := repo.UpdateItemQuantity(items[0].ID, 5)
	if err != nil {
		t.Fatalf("update quantity failed: %v", err)
	}
	if rows != 1 {
		t.Fatalf("update quantity rows want 1 got %d", rows)
	}

	rows, err = repo.UpdateItemQuantity(999999, 2)
	if err != nil {
		t.Fatalf("update missing quantity failed: %v", err)
	}
	if rows != 0 {
		t.Fatalf("update missing quantity rows want 0 got %d", rows)
	}
}

func TestClearItemsOnEmptyCartAffectsZero(t *testing.T) {
	repo, _ := setupCartRepositoryTest(t)
	cart, err := repo.EnsureForUser(104)
	if err != nil {
		t.Fatalf("ensure cart failed: %v", err)
	}

	rows, err := repo.ClearItems(cart.ID)
	if err != nil {
		t.Fatalf("clear empty cart failed: %v", err)
	}
	if rows != 0 {
		t.Fatalf("clear empty cart rows want 0 got %d", rows)
	}

	upsertCartItem(t, repo, cart.ID, 31, "Comet Deck")
	rows, err = repo.ClearItems(cart.ID)
	if err != nil {
		t.Fatalf("clear cart failed: %v", err)
	}
	if rows != 1 {
		t.Fatalf("clear cart rows want 1 got %d", rows)
	}
}
