package repository

import (
	"errors"

	"github.com/pixelmart/internal/models"

	"gorm.io/gorm"
)

// OrderRepository 订单数据访问接口
type OrderRepository interface {
	Create(order *models.Order) (int64, error)
	CreateItem(item *models.OrderItem) (int64, error)
	GetByID(id uint) (*models.Order, error)
	ListByUser(userID uint) ([]models.Order, error)
	ListItemsByOrderIDs(orderIDs []uint) ([]models.OrderItem, error)
	WithTx(tx *gorm.DB) OrderRepository
}

// GormOrderRepository GORM 实现
type GormOrderRepository struct {
	db *gorm.DB
}

// NewOrderRepository 创建订单仓库
func NewOrderRepository(db *gorm.DB) *GormOrderRepository {
	return &GormOrderRepository{db: db}
}

// WithTx 绑定事务
func (r *GormOrderRepository) WithTx(tx *gorm.DB) OrderRepository {
	if tx == nil {
		return r
	}
	return &GormOrderRepository{db: tx}
}

// Create 插入订单头
func (r *GormOrderRepository) Create(order *models.Order) (int64, error) {
	result := r.db.Create(order)
	return result.RowsAffected, result.Error
}

// CreateItem 插入订单项
func (r *GormOrderRepository) CreateItem(item *models.OrderItem) (int64, error) {
	result := r.db.Create(item)
	return result.RowsAffected, result.Error
}

// GetByID 根据 ID 获取订单（带订单项与商品展示字段）
func (r *GormOrderRepository) GetByID(id uint) (*models.Order, error) {
	var order models.Order
	if err := r.db.Preload("Items.Product").First(&order, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &order, nil
}

// ListByUser 获取用户全部订单头（新单在前）
func (r *GormOrderRepository) ListByUser(userID uint) ([]models.Order, error) {
	var orders []models.Order
	if err := r.db.Where("user_id = ?", userID).
		Order("order_date DESC, id DESC").
		Find(&orders).Error; err != nil {
		return nil, err
	}
	return orders, nil
}

// ListItemsByOrderIDs 批量获取订单项（带商品展示字段）
func (r *GormOrderRepository) ListItemsByOrderIDs(orderIDs []uint) ([]models.OrderItem, error) {
	if len(orderIDs) == 0 {
		return []models.OrderItem{}, nil
	}
	var items []models.OrderItem
	if err := r.db.Preload("Product").
		Where("order_id IN ?", orderIDs).
		Order("order_id ASC, id ASC").
		Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}
