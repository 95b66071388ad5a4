package models

import (
	"time"

	"gorm.io/gorm"
)

// Address 用户地址表（一个用户可有多条）
type Address struct {
	ID        uint           `gorm:"primarykey" json:"id"`                     // 主键
	UserID    uint           `gorm:"index;not null" json:"user_id"`            // 用户ID
	Street    string         `gorm:"not null" json:"street"`                   // 街道
	City      string         `gorm:"not null" json:"city"`                     // 城市
	Zip       string         `gorm:"type:varchar(20);not null" json:"zip"`     // 邮编
	Country   string         `gorm:"type:varchar(60);not null" json:"country"` // 国家
	Type      string         `gorm:"type:varchar(20);not null" json:"type"`    // 地址类型（shipping/billing）
	CreatedAt time.Time      `gorm:"index" json:"created_at"`                  // 创建时间
	UpdatedAt time.Time      `json:"updated_at"`                               // 更新时间
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`                           // 软删除时间
}

// TableName 指定表名
func (Address) TableName() string {
	return "addresses"
}
