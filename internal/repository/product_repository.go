package repository

import (
	"errors"
	"strings"

	"github.com/pixelmart/internal/models"

	"gorm.io/gorm"
)

// ProductRepository 商品数据访问接口
type ProductRepository interface {
	Create(product *models.Product) (int64, error)
	CreateGame(ext *models.GameExtension) (int64, error)
	CreateMerchandise(ext *models.MerchandiseExtension) (int64, error)
	LinkMerchandiseGame(productID, gameProductID uint) (int64, error)
	UpdateBase(product *models.Product) (int64, error)
	UpdateGame(ext *models.GameExtension) (int64, error)
	UpdateMerchandise(ext *models.MerchandiseExtension) (int64, error)
	Delete(id uint) (int64, error)
	DeleteExtensions(productID uint) error
	GetByID(id uint) (*models.Product, error)
	ListAll() ([]models.Product, error)
	SearchByName(nameSubstring string) ([]models.Product, error)
	DecrementInventory(productID uint, quantity int) (int64, error)
	WithTx(tx *gorm.DB) ProductRepository
}

// GormProductRepository GORM 实现
type GormProductRepository struct {
	db *gorm.DB
}

// NewProductRepository 创建商品仓库
func NewProductRepository(db *gorm.DB) *GormProductRepository {
	return &GormProductRepository{db: db}
}

// WithTx 绑定事务
func (r *GormProductRepository) WithTx(tx *gorm.DB) ProductRepository {
	if tx == nil {
		return r
	}
	return &GormProductRepository{db: tx}
}

// Create 插入商品基表行
func (r *GormProductRepository) Create(product *models.Product) (int64, error) {
	result := r.db.Create(product)
	return result.RowsAffected, result.Error
}

// CreateGame 插入游戏扩展行
func (r *GormProductRepository) CreateGame(ext *models.GameExtension) (int64, error) {
	result := r.db.Create(ext)
	return result.RowsAffected, result.Error
}

// CreateMerchandise 插入周边扩展行
func (r *GormProductRepository) CreateMerchandise(ext *models.MerchandiseExtension) (int64, error) {
	result := r.db.Create(ext)
	return result.RowsAffected, result.Error
}

// LinkMerchandiseGame 插入周边与游戏的联动行。
// 周边扩展行的自增 ID 由其 product_id 在同一条语句内反查得到。
func (r *GormProductRepository) LinkMerchandiseGame(productID, gameProductID uint) (int64, error) {
	result := r.db.Exec(
		"INSERT INTO game_merchandise (merchandise_id, game_product_id) "+
			"SELECT id, ? FROM merchandise_extensions WHERE product_id = ?",
		gameProductID, productID,
	)
	return result.RowsAffected, result.Error
}

// UpdateBase 更新商品基表行
func (r *GormProductRepository) UpdateBase(product *models.Product) (int64, error) {
	result := r.db.Model(&models.Product{}).
		Where("id = ?", product.ID).
		Updates(map[string]interface{}{
			"name":               product.Name,
			"description":        product.Description,
			"price":              product.Price,
			"inventory_quantity": product.InventoryQuantity,
			"average_rating":     product.AverageRating,
			"image_urls":         product.ImageURLs,
		})
	return result.RowsAffected, result.Error
}

// UpdateGame 更新游戏扩展行
func (r *GormProductRepository) UpdateGame(ext *models.GameExtension) (int64, error) {
	result := r.db.Model(&models.GameExtension{}).
		Where("product_id = ?", ext.ProductID).
		Updates(map[string]interface{}{
			"platform":     ext.Platform,
			"release_date": ext.ReleaseDate,
		})
	return result.RowsAffected, result.Error
}

// UpdateMerchandise 更新周边扩展行
func (r *GormProductRepository) UpdateMerchandise(ext *models.MerchandiseExtension) (int64, error) {
	result := r.db.Model(&models.MerchandiseExtension{}).
		Where("product_id = ?", ext.ProductID).
		Updates(map[string]interface{}{
			"size":  ext.Size,
			"color": ext.Color,
		})
	return result.RowsAffected, result.Error
}

// Delete 删除商品基表行
func (r *GormProductRepository) Delete(id uint) (int64, error) {
	result := r.db.Delete(&models.Product{}, id)
	return result.RowsAffected, result.Error
}

// DeleteExtensions 删除子类型行与联动行（扩展表不参与软删除，需显式清理）
func (r *GormProductRepository) DeleteExtensions(productID uint) error {
	if err := r.db.Exec(
		"DELETE FROM game_merchandise WHERE merchandise_id IN "+
			"(SELECT id FROM merchandise_extensions WHERE product_id = ?) OR game_product_id = ?",
		productID, productID,
	).Error; err != nil {
		return err
	}
	if err := r.db.Where("product_id = ?", productID).Delete(&models.GameExtension{}).Error; err != nil {
		return err
	}
	return r.db.Where("product_id = ?", productID).Delete(&models.MerchandiseExtension{}).Error
}

// GetByID 根据 ID 获取商品
func (r *GormProductRepository) GetByID(id uint) (*models.Product, error) {
	var product models.Product
	if err := r.db.Preload("Game").Preload("Merchandise").First(&product, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &product, nil
}

// ListAll 商品列表（带子类型字段，非匹配子类型为空）
func (r *GormProductRepository) ListAll() ([]models.Product, error) {
	var products []models.Product
	if err := r.db.Preload("Game").Preload("Merchandise").
		Order("id ASC").Find(&products).Error; err != nil {
		return nil, err
	}
	return products, nil
}

// SearchByName 名称子串搜索（大小写不敏感，按名称升序）
func (r *GormProductRepository) SearchByName(nameSubstring string) ([]models.Product, error) {
	like := "%" + strings.ToLower(strings.TrimSpace(nameSubstring)) + "%"
	var products []models.Product
	if err := r.db.Preload("Game").Preload("Merchandise").
		Where("LOWER(name) LIKE ?", like).
		Order("name ASC").
		Find(&products).Error; err != nil {
		return nil, err
	}
	return products, nil
}

// DecrementInventory 条件扣减库存（余量不足时影响 0 行）
func (r *GormProductRepository) DecrementInventory(productID uint, quantity int) (int64, error) {
	if productID == 0 || quantity <= 0 {
		return 0, errors.New("invalid inventory decrement params")
	}
	result := r.db.Model(&models.Product{}).
		Where("id = ? AND inventory_quantity >= ?", productID, quantity).
		Update("inventory_quantity", gorm.Expr("inventory_quantity - ?", quantity))
	return result.RowsAffected, result.Error
}
