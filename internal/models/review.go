package models

import (
	"time"

	"gorm.io/gorm"
)

// Review 商品评价表（只追加，不支持修改删除）
type Review struct {
	ID         uint           `gorm:"primarykey" json:"id"`                // 主键
	UserID     uint           `gorm:"index;not null" json:"user_id"`       // 用户ID
	ProductID  uint           `gorm:"index;not null" json:"product_id"`    // 商品ID
	ReviewText string         `gorm:"type:text;not null" json:"review_text"` // 评价内容
	ReviewDate time.Time      `gorm:"index;not null" json:"review_date"`   // 评价时间
	CreatedAt  time.Time      `json:"created_at"`                          // 创建时间
	DeletedAt  gorm.DeletedAt `gorm:"index" json:"-"`                      // 软删除时间

	Product *Product `gorm:"foreignKey:ProductID" json:"product,omitempty"` // 关联商品
	User    *User    `gorm:"foreignKey:UserID" json:"user,omitempty"`       // 关联用户
}

// TableName 指定表名
func (Review) TableName() string {
	return "reviews"
}
