package models

import (
	"time"

	"gorm.io/gorm"
)

// Order 订单表（与订单项在同一事务内创建，创建后不再变更）
type Order struct {
	ID        uint           `gorm:"primarykey" json:"id"`                        // 主键
	UserID    uint           `gorm:"index;not null" json:"user_id"`               // 用户ID
	Status    string         `gorm:"index;not null" json:"status"`                // 订单状态
	OrderDate time.Time      `gorm:"index;not null" json:"order_date"`            // 下单时间（UTC，秒级精度）
	CreatedAt time.Time      `gorm:"index" json:"created_at"`                     // 创建时间
	UpdatedAt time.Time      `json:"updated_at"`                                  // 更新时间
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`                              // 软删除时间

	Items []OrderItem `gorm:"foreignKey:OrderID" json:"items,omitempty"` // 订单项

	// TotalPrice 派生字段（各项 price*quantity 之和），不写入数据库
	TotalPrice Money `gorm:"-" json:"total_price"`
}

// TableName 指定表名
func (Order) TableName() string {
	return "orders"
}
