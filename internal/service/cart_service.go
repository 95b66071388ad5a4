package service

import (
	"context"
	"strings"
	"time"

	"github.com/pixelmart/internal/models"
	"github.com/pixelmart/internal/repository"

	"gorm.io/gorm"
)

// CartView 购物车读取结果
type CartView struct {
	CartID uint              `json:"cart_id"`
	Items  []models.CartItem `json:"items"`
}

// AddCartItemInput 加购输入（名称与价格按调用方看到的快照落库）
type AddCartItemInput struct {
	UserID    uint
	ProductID uint
	Name      string
	Price     models.Money
}

// CartService 购物车服务
type CartService struct {
	cartRepo  repository.CartRepository
	txTimeout time.Duration
}

// NewCartService 创建购物车服务
func NewCartService(cartRepo repository.CartRepository, txTimeout time.Duration) *CartService {
	return &CartService{cartRepo: cartRepo, txTimeout: txTimeout}
}

// GetCart 读取用户购物车。购物车不存在时返回空结果而非错误，
// 读路径永不创建购物车。
func (s *CartService) GetCart(ctx context.Context, userID uint) (*CartView, error) {
	if userID == 0 {
		return nil, ErrInvalidUser
	}
	view := &CartView{Items: []models.CartItem{}}
	err := models.WithConnection(ctx, func(db *gorm.DB) error {
		repo := s.cartRepo.WithTx(db)
		cart, err := repo.GetByUser(userID)
		if err != nil {
			return err
		}
		if cart == nil {
			return nil
		}
		view.CartID = cart.ID
		items, err := repo.ListItems(cart.ID)
		if err != nil {
			return err
		}
		view.Items = items
		return nil
	})
	if err != nil {
		return nil, err
	}
	return view, nil
}

// AddItem 加购：购物车不存在则创建，同一商品已在车内则数量加 1，
// 否则插入数量为 1 的新行。整个序列在单个事务内执行，
// 同商品并发加购由 (cart_id, product_id) 唯一索引上的原子 upsert 收敛。
// 返回变更后的购物车商品总数（各行数量之和）。
func (s *CartService) AddItem(ctx context.Context, input AddCartItemInput) (int, error) {
	if input.UserID == 0 {
		return 0, ErrInvalidUser
	}
	if input.ProductID == 0 || strings.TrimSpace(input.Name) == "" {
		return 0, ErrInvalidOrderItem
	}

	var total int
	err := models.WithTransaction(ctx, s.txTimeout, func(tx *gorm.DB) error {
		repo := s.cartRepo.WithTx(tx)
		cart, err := repo.EnsureForUser(input.UserID)
		if err != nil {
			return err
		}
		now := time.Now()
		item := &models.CartItem{
			CartID:    cart.ID,
			ProductID: input.ProductID,
			Name:      input.Name,
			Price:     input.Price,
			Quantity:  1,
			CreatedAt: now,
			UpdatedAt: now,
		}
		if err := repo.UpsertItem(item); err != nil {
			return err
		}
		total, err = repo.CountItems(cart.ID)
		return err
	})
	if err != nil {
		return 0, err
	}
	return total, nil
}

// RemoveItem 按购物车项 ID 删除，影响 0 行视为不存在
func (s *CartService) RemoveItem(ctx context.Context, cartItemID uint) error {
	if cartItemID == 0 {
		return ErrCartItemNotFound
	}
	return models.WithTransaction(ctx, s.txTimeout, func(tx *gorm.DB) error {
		rows, err := s.cartRepo.WithTx(tx).DeleteItem(cartItemID)
		if err != nil {
			return err
		}
		if rows == 0 {
			return ErrCartItemNotFound
		}
		return nil
	})
}

// UpdateQuantity 直接设置购物车项数量。数量小于 1 视为参数错误，
// 避免出现语义不明的"数量 0"行。
func (s *CartService) UpdateQuantity(ctx context.Context, cartItemID uint, newQuantity int) error {
	if cartItemID == 0 || newQuantity < 1 {
		return ErrInvalidQuantity
	}
	return models.WithTransaction(ctx, s.txTimeout, func(tx *gorm.DB) error {
		rows, err := s.cartRepo.WithTx(tx).UpdateItemQuantity(cartItemID, newQuantity)
		if err != nil {
			return err
		}
		if rows == 0 {
			return ErrCartItemNotFound
		}
		return nil
	})
}

// EmptyCart 清空购物车。已经为空是合法终态，
// 影响 0 行不视为错误，但数据库错误必须向上传递。
func (s *CartService) EmptyCart(ctx context.Context, cartID uint) error {
	if cartID == 0 {
		return ErrInvalidCart
	}
	return models.WithTransaction(ctx, s.txTimeout, func(tx *gorm.DB) error {
		_, err := s.cartRepo.WithTx(tx).ClearItems(cartID)
		return err
	})
}
