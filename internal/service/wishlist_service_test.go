package service

import (
	"context"
	"errors"
	"testing"

	"github.com/pixelmart/internal/models"
	"github.com/pixelmart/internal/repository"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
)

func setupWishlistServiceTest(t *testing.T) *WishlistService {
	t.Helper()
	db, err := gorm.Open(sqlite.Open("file::memory:?cache=shared"), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite failed: %v", err)
	}
	if err := db.AutoMigrate(&models.Product{}, &models.WishlistItem{}); err != nil {
		t.Fatalf("migrate wishlist tables failed: %v", err)
	}
	models.DB = db
	return NewWishlistService(repository.NewWishlistRepository(db), 0)
}

func TestWishlistAddIsIdempotent(t *testing.T) {
	svc := setupWishlistServiceTest(t)
	ctx := context.Background()

	if err := svc.AddItem(ctx, 904, 95); err != nil {
		t.Fatalf("add wishlist item failed: %v", err)
	}
	if err := svc.AddItem(ctx, 904, 95); err != nil {
		t.Fatalf("repeat add wishlist item failed: %v", err)
	}

	items, err := svc.ListItems(ctx, 904)
	if err != nil {
		t.Fatalf("list wishlist failed: %v", err)
	}
	if len(items) != 1 {
		t.Fatalf("wishlist count want 1 got %d", len(items))
	}

	if err := svc.RemoveItem(ctx, 904, 95); err != nil {
		t.Fatalf("remove wishlist item failed: %v", err)
	}
	if err := svc.RemoveItem(ctx, 904, 95); !errors.Is(err, ErrWishlistItemNotFound) {
		t.Fatalf("expected ErrWishlistItemNotFound got %v", err)
	}
}
