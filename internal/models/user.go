package models

import (
	"time"

	"gorm.io/gorm"
)

// User 用户表（核心只消费鉴权层给出的身份，这里仅保留展示与通知所需字段）
type User struct {
	ID           uint           `gorm:"primarykey" json:"id"`              // 主键
	Email        string         `gorm:"uniqueIndex;not null" json:"email"` // 邮箱
	PasswordHash string         `gorm:"not null" json:"-"`                 // 密码哈希（不返回给前端）
	FirstName    string         `gorm:"default:''" json:"first_name"`      // 名
	LastName     string         `gorm:"default:''" json:"last_name"`       // 姓
	Newsletter   bool           `gorm:"default:false" json:"newsletter"`   // 是否订阅邮件通讯
	CreatedAt    time.Time      `gorm:"index" json:"created_at"`           // 创建时间
	UpdatedAt    time.Time      `json:"updated_at"`                        // 更新时间
	DeletedAt    gorm.DeletedAt `gorm:"index" json:"-"`                    // 软删除时间
}

// TableName 指定表名
func (User) TableName() string {
	return "users"
}
