package repository

import (
	"errors"

	"github.com/pixelmart/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// CartRepository 购物车数据访问接口
type CartRepository interface {
	GetByUser(userID uint) (*models.Cart, error)
	EnsureForUser(userID uint) (*models.Cart, error)
	UpsertItem(item *models.CartItem) error
	ListItems(cartID uint) ([]models.CartItem, error)
	CountItems(cartID uint) (int, error)
	UpdateItemQuantity(itemID uint, quantity int) (int64, error)
	DeleteItem(itemID uint) (int64, error)
	ClearItems(cartID uint) (int64, error)
	WithTx(tx *gorm.DB) CartRepository
}

// GormCartRepository GORM 实现
type GormCartRepository struct {
	db *gorm.DB
}

// NewCartRepository 创建购物车仓库
func NewCartRepository(db *gorm.DB) *GormCartRepository {
	return &GormCartRepository{db: db}
}

// WithTx 绑定事务
func (r *GormCartRepository) WithTx(tx *gorm.DB) CartRepository {
	if tx == nil {
		return r
	}
	return &GormCartRepository{db: tx}
}

// GetByUser 获取用户购物车（不存在返回 nil，读路径不创建）
func (r *GormCartRepository) GetByUser(userID uint) (*models.Cart, error) {
	var cart models.Cart
	if err := r.db.Where("user_id = ?", userID).First(&cart).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &cart, nil
}

// EnsureForUser 获取或创建用户购物车。
// 依赖 user_id 唯一索引，并发创建时冲突方静默落空后重读。
func (r *GormCartRepository) EnsureForUser(userID uint) (*models.Cart, error) {
	cart := models.Cart{UserID: userID}
	if err := r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}},
		DoNothing: true,
	}).Create(&cart).Error; err != nil {
		return nil, err
	}
	if cart.ID != 0 {
		return &cart, nil
	}
	return r.GetByUser(userID)
}

// UpsertItem 原子加购：不存在则插入数量 1，存在则数量加 1。
// 冲突目标是 (cart_id, product_id) 唯一索引，整条语句在数据库侧原子完成。
func (r *GormCartRepository) UpsertItem(item *models.CartItem) error {
	if item == nil {
		return nil
	}
	return r.db.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "cart_id"}, {Name: "product_id"}},
		DoUpdates: clause.Assignments(map[string]interface{}{
			"quantity":   gorm.Expr("quantity + 1"),
			"updated_at": item.UpdatedAt,
		}),
	}).Create(item).Error
}

// ListItems 获取购物车项（按加入时间排序）
func (r *GormCartRepository) ListItems(cartID uint) ([]models.CartItem, error) {
	var items []models.CartItem
	if err := r.db.Preload("Product").
		Where("cart_id = ?", cartID).
		Order("created_at ASC, id ASC").
		Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

// CountItems 统计购物车内商品总数（各行数量之和）
func (r *GormCartRepository) CountItems(cartID uint) (int, error) {
	var total int
	err := r.db.Model(&models.CartItem{}).
		Where("cart_id = ?", cartID).
		Select("COALESCE(SUM(quantity), 0)").
		Scan(&total).Error
	return total, err
}

// UpdateItemQuantity 直接设置购物车项数量
func (r *GormCartRepository) UpdateItemQuantity(itemID uint, quantity int) (int64, error) {
	result := r.db.Model(&models.CartItem{}).
		Where("id = ?", itemID).
		Update("quantity", quantity)
	return result.RowsAffected, result.Error
}

// DeleteItem 删除购物车项
func (r *GormCartRepository) DeleteItem(itemID uint) (int64, error) {
	result := r.db.Delete(&models.CartItem{}, itemID)
	return result.RowsAffected, result.Error
}

// ClearItems 清空购物车
func (r *GormCartRepository) ClearItems(cartID uint) (int64, error) {
	result := r.db.Where("cart_id = ?", cartID).Delete(&models.CartItem{})
	return result.RowsAffected, result.Error
}
