package models

import (
	"time"

	"gorm.io/gorm"
)

// Cart 购物车表（每个用户至多一个，首次写入时惰性创建）
type Cart struct {
	ID        uint           `gorm:"primarykey" json:"id"`            // 主键
	UserID    uint           `gorm:"uniqueIndex;not null" json:"user_id"` // 用户ID
	CreatedAt time.Time      `gorm:"index" json:"created_at"`         // 创建时间
	UpdatedAt time.Time      `json:"updated_at"`                      // 更新时间
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`                  // 软删除时间

	Items []CartItem `gorm:"foreignKey:CartID;constraint:OnDelete:CASCADE" json:"items,omitempty"` // 购物车项
}

// TableName 指定表名
func (Cart) TableName() string {
	return "carts"
}

// CartItem 购物车项（同一购物车内同一商品至多一行）
type CartItem struct {
	ID        uint      `gorm:"primarykey" json:"id"`                                      // 主键
	CartID    uint      `gorm:"not null;uniqueIndex:idx_cart_product" json:"cart_id"`      // 购物车ID
	ProductID uint      `gorm:"not null;uniqueIndex:idx_cart_product" json:"product_id"`   // 商品ID
	Name      string    `gorm:"not null" json:"name"`                                      // 加购时的名称快照
	Price     Money     `gorm:"type:decimal(20,2);not null;default:0" json:"price"`        // 加购时的价格快照
	Quantity  int       `gorm:"not null;default:1" json:"quantity"`                        // 数量（≥1）
	CreatedAt time.Time `gorm:"index" json:"created_at"`                                   // 创建时间
	UpdatedAt time.Time `gorm:"index" json:"updated_at"`                                   // 更新时间

	Product *Product `gorm:"foreignKey:ProductID" json:"product,omitempty"` // 关联商品
}

// TableName 指定表名
func (CartItem) TableName() string {
	return "cart_items"
}
