package service

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/pixelmart/internal/models"
	"github.com/pixelmart/internal/repository"

	"github.com/glebarez/sqlite"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

func setupCartServiceTest(t *testing.T) (*CartService, *gorm.DB) {
	t.Helper()
	db, err := gorm.Open(sqlite.Open("file::memory:?cache=shared"), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite failed: %v", err)
	}
	if err := db.AutoMigrate(&models.Product{}, &models.Cart{}, &models.CartItem{}); err != nil {
		t.Fatalf("migrate cart tables failed: %v", err)
	}
	models.DB = db
	return NewCartService(repository.NewCartRepository(db), 0), db
}

func addCartItem(t *testing.T, svc *CartService, userID, productID uint, name string) int {
	t.Helper()
	total, err := svc.AddItem(context.Background(), AddCartItemInput{
		UserID:    userID,
		ProductID: productID,
		Name:      name,
		Price:     models.NewMoneyFromDecimal(decimal.NewFromFloat(9.99)),
	})
	if err != nil {
		t.Fatalf("add cart item failed: %v", err)
	}
	return total
}

func TestAddItemLazyCartAndRunningTotal(t *testing.T) {
	svc, db := setupCartServiceTest(t)

	if total := addCartItem(t, svc, 601, 71, "Lunar Gambit"); total != 1 {
		t.Fatalf("total after first add want 1 got %d", total)
	}
	if total := addCartItem(t, svc, 601, 71, "Lunar Gambit"); total != 2 {
		t.Fatalf("total after repeat add want 2 got %d", total)
	}
	if total := addCartItem(t, svc, 601, 72, "Lunar Gambit Pin"); total != 3 {
		t.Fatalf("total after second product want 3 got %d", total)
	}

	var cartCount int64
	if err := db.Model(&models.Cart{}).Where("user_id = ?", 601).Count(&cartCount).Error; err != nil {
		t.Fatalf("count carts failed: %v", err)
	}
	if cartCount != 1 {
		t.Fatalf("cart count want 1 got %d", cartCount)
	}
}

func TestAddItemConcurrentSameProductConvergesToOneRow(t *testing.T) {
	svc, db := setupCartServiceTest(t)

	// 两个并发加购同一用户同一商品，必须收敛到一行累加
	errCh := make(chan error, 2)
	var wg sync.WaitGroup
	for i := 0; i < 2; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := svc.AddItem(context.Background(), AddCartItemInput{
				UserID:    605,
				ProductID: 75,
				Name:      "Quasar Drift Keycap",
				Price:     models.NewMoneyFromDecimal(decimal.NewFromFloat(4.50)),
			})
			errCh <- err
		}()
	}
	wg.Wait()
	close(errCh)
	for err := range errCh {
		if err != nil {
			t.Fatalf("concurrent add cart item failed: %v", err)
		}
	}

	var items []models.CartItem
	if err := db.Joins("JOIN carts ON carts.id = cart_items.cart_id").
		Where("carts.user_id = ?", 605).Find(&items).Error; err != nil {
		t.Fatalf("load cart items failed: %v", err)
	}
	if len(items) != 1 {
		t.Fatalf("cart item row count want 1 got %d", len(items))
	}
	if items[0].Quantity != 2 {
		t.Fatalf("quantity want 2 got %d", items[0].Quantity)
	}

	var cartCount int64
	if err := db.Model(&models.Cart{}).Where("user_id = ?", 605).Count(&cartCount).Error; err != nil {
		t.Fatalf("count carts failed: %v", err)
	}
	if cartCount != 1 {
		t.Fatalf("cart count want 1 got %d", cartCount)
	}
}

func TestGetCartWithoutCartReturnsEmptyView(t *testing.T) {
	svc, db := setupCartServiceTest(t)

	view, err := svc.GetCart(context.Background(), 602)
	if err != nil {
		t.Fatalf("get cart failed: %v", err)
	}
	if view.CartID != 0 {
		t.Fatalf("cart id want 0 got %d", view.CartID)
	}
	if len(view.Items) != 0 {
		t.Fatalf("item count want 0 got %d", len(view.Items))
	}

	// 读路径不得创建购物车
	var cartCount int64
	if err := db.Model(&models.Cart{}).Where("user_id = ?", 602).Count(&cartCount).Error; err != nil {
		t.Fatalf("count carts failed: %v", err)
	}
	if cartCount != 0 {
		t.Fatalf("cart count want 0 got %d", cartCount)
	}
}

func TestUpdateQuantityValidation(t *testing.T) {
	svc, _ := setupCartServiceTest(t)
	ctx := context.Background()

	if err := svc.UpdateQuantity(ctx, 1, 0); !errors.Is(err, ErrInvalidQuantity) {
		t.Fatalf("expected ErrInvalidQuantity got %v", err)
	}
	if err := svc.UpdateQuantity(ctx, 999999, 2); !errors.Is(err, ErrCartItemNotFound) {
		t.Fatalf("expected ErrCartItemNotFound got %v", err)
	}

	addCartItem(t, svc, 603, 73, "Tidal Siege")
	view, err := svc.GetCart(ctx, 603)
	if err != nil {
		t.Fatalf("get cart failed: %v", err)
	}
	if len(view.Items) != 1 {
		t.Fatalf("item count want 1 got %d", len(view.Items))
	}
	if err := svc.UpdateQuantity(ctx, view.Items[0].ID, 4); err != nil {
		t.Fatalf("update quantity failed: %v", err)
	}

	view, err = svc.GetCart(ctx, 603)
	if err != nil {
		t.Fatalf("reload cart failed: %v", err)
	}
	if view.Items[0].Quantity != 4 {
		t.Fatalf("quantity want 4 got %d", view.Items[0].Quantity)
	}
}

func TestRemoveItemMissingRow(t *testing.T) {
	svc, _ := setupCartServiceTest(t)

	if err := svc.RemoveItem(context.Background(), 999999); !errors.Is(err, ErrCartItemNotFound) {
		t.Fatalf("expected ErrCartItemNotFound got %v", err)
	}
}

func TestEmptyCartAlreadyEmptyIsSuccess(t *testing.T) {
	svc, _ := setupCartServiceTest(t)
	ctx := context.Background()

	addCartItem(t, svc, 604, 74, "Glacier March")
	view, err := svc.GetCart(ctx, 604)
	if err != nil {
		t.Fatalf("get cart failed: %v", err)
	}

	if err := svc.EmptyCart(ctx, view.CartID); err != nil {
		t.Fatalf("empty cart failed: %v", err)
	}
	// 再次清空已空购物车不是错误
	if err := svc.EmptyCart(ctx, view.CartID); err != nil {
		t.Fatalf("empty already empty cart failed: %v", err)
	}

	view, err = svc.GetCart(ctx, 604)
	if err != nil {
		t.Fatalf("reload cart failed: %v", err)
	}
	if len(view.Items) != 0 {
		t.Fatalf("item count want 0 got %d", len(view.Items))
	}
}
