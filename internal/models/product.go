package models

import (
	"time"

	"gorm.io/gorm"
)

// Product 商品基表（Game 与 Merchandise 共享同一身份）
type Product struct {
	ID                uint           `gorm:"primarykey" json:"id"`                                      // 主键
	Name              string         `gorm:"not null;index" json:"name"`                                // 商品名称
	Description       string         `gorm:"type:text" json:"description"`                              // 商品描述
	Price             Money          `gorm:"type:decimal(20,2);not null;default:0" json:"price"`       // 价格
	InventoryQuantity int            `gorm:"not null;default:0" json:"inventory_quantity"`              // 库存数量
	AverageRating     float64        `gorm:"not null;default:0" json:"average_rating"`                  // 平均评分（0-5）
	Category          string         `gorm:"type:varchar(20);not null;index" json:"category"`           // 商品类别（Game/Merchandise），创建后不变
	ImageURLs         StringArray    `gorm:"type:json" json:"image_urls"`                               // 图片数组
	CreatedAt         time.Time      `gorm:"index" json:"created_at"`                                   // 创建时间
	UpdatedAt         time.Time      `json:"updated_at"`                                                // 更新时间
	DeletedAt         gorm.DeletedAt `gorm:"index" json:"-"`                                            // 软删除时间

	// 关联（子类型行与基表行同生命周期，二者互斥）
	Game        *GameExtension        `gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE" json:"game,omitempty"`        // 游戏扩展
	Merchandise *MerchandiseExtension `gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE" json:"merchandise,omitempty"` // 周边扩展
}

// TableName 指定表名
func (Product) TableName() string {
	return "products"
}

// GameExtension 游戏子类型扩展表（与商品 1:1，无独立身份）
type GameExtension struct {
	ID          uint       `gorm:"primarykey" json:"-"`                       // 主键
	ProductID   uint       `gorm:"uniqueIndex;not null" json:"product_id"`    // 商品ID
	Platform    string     `gorm:"type:varchar(50)" json:"platform"`          // 游戏平台
	ReleaseDate *time.Time `json:"release_date"`                              // 发售日期
}

// TableName 指定表名
func (GameExtension) TableName() string {
	return "game_extensions"
}

// MerchandiseExtension 周边子类型扩展表（与商品 1:1）
type MerchandiseExtension struct {
	ID        uint   `gorm:"primarykey" json:"-"`                    // 主键
	ProductID uint   `gorm:"uniqueIndex;not null" json:"product_id"` // 商品ID
	Size      string `gorm:"type:varchar(20)" json:"size"`           // 尺寸
	Color     string `gorm:"type:varchar(30)" json:"color"`          // 颜色
}

// TableName 指定表名
func (MerchandiseExtension) TableName() string {
	return "merchandise_extensions"
}

// GameMerchandise 周边与游戏的联动关系表（派生连接行，不独立拥有身份）
type GameMerchandise struct {
	ID            uint `gorm:"primarykey" json:"-"`                                            // 主键
	MerchandiseID uint `gorm:"not null;uniqueIndex:idx_game_merch" json:"merchandise_id"`      // 周边扩展行ID
	GameProductID uint `gorm:"not null;uniqueIndex:idx_game_merch" json:"game_product_id"`     // 游戏商品ID
}

// TableName 指定表名
func (GameMerchandise) TableName() string {
	return "game_merchandise"
}
