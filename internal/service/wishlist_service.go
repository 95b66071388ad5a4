package service

import (
	"context"
	"time"

	"github.com/pixelmart/internal/models"
	"github.com/pixelmart/internal/repository"

	"gorm.io/gorm"
)

// WishlistService 心愿单服务
type WishlistService struct {
	wishlistRepo repository.WishlistRepository
	txTimeout    time.Duration
}

// NewWishlistService 创建心愿单服务
func NewWishlistService(wishlistRepo repository.WishlistRepository, txTimeout time.Duration) *WishlistService {
	return &WishlistService{wishlistRepo: wishlistRepo, txTimeout: txTimeout}
}

// AddItem 加入心愿单（重复加入幂等）
func (s *WishlistService) AddItem(ctx context.Context, userID, productID uint) error {
	if userID == 0 {
		return ErrInvalidUser
	}
	if productID == 0 {
		return ErrInvalidProduct
	}
	return models.WithTransaction(ctx, s.txTimeout, func(tx *gorm.DB) error {
		return s.wishlistRepo.WithTx(tx).Add(&models.WishlistItem{
			UserID:    userID,
			ProductID: productID,
		})
	})
}

// ListItems 获取用户心愿单
func (s *WishlistService) ListItems(ctx context.Context, userID uint) ([]models.WishlistItem, error) {
	if userID == 0 {
		return nil, ErrInvalidUser
	}
	var items []models.WishlistItem
	err := models.WithConnection(ctx, func(db *gorm.DB) error {
		var err error
		items, err = s.wishlistRepo.WithTx(db).ListByUser(userID)
		return err
	})
	if err != nil {
		return nil, err
	}
	return items, nil
}

// RemoveItem 移出心愿单，影响 0 行视为不存在
func (s *WishlistService) RemoveItem(ctx context.Context, userID, productID uint) error {
	if userID == 0 {
		return ErrInvalidUser
	}
	if productID == 0 {
		return ErrInvalidProduct
	}
	return models.WithTransaction(ctx, s.txTimeout, func(tx *gorm.DB) error {
		rows, err := s.wishlistRepo.WithTx(tx).Remove(userID, productID)
		if err != nil {
			return err
		}
		if rows == 0 {
			return ErrWishlistItemNotFound
		}
		return nil
	})
}
