package repository

import (
	"github.com/pixelmart/internal/models"

	"gorm.io/gorm"
)

// ReviewRepository 评价数据访问接口
type ReviewRepository interface {
	Create(review *models.Review) (int64, error)
	ListByUser(userID uint) ([]models.Review, error)
	ListByProduct(productID uint) ([]models.Review, error)
	WithTx(tx *gorm.DB) ReviewRepository
}

// GormReviewRepository GORM 实现
type GormReviewRepository struct {
	db *gorm.DB
}

// NewReviewRepository 创建评价仓库
func NewReviewRepository(db *gorm.DB) *GormReviewRepository {
	return &GormReviewRepository{db: db}
}

// WithTx 绑定事务
func (r *GormReviewRepository) WithTx(tx *gorm.DB) ReviewRepository {
	if tx == nil {
		return r
	}
	return &GormReviewRepository{db: tx}
}

// Create 插入评价
func (r *GormReviewRepository) Create(review *models.Review) (int64, error) {
	result := r.db.Create(review)
	return result.RowsAffected, result.Error
}

// ListByUser 获取用户全部评价（带商品展示字段）
func (r *GormReviewRepository) ListByUser(userID uint) ([]models.Review, error) {
	var reviews []models.Review
	if err := r.db.Preload("Product").
		Where("user_id = ?", userID).
		Order("review_date DESC, id DESC").
		Find(&reviews).Error; err != nil {
		return nil, err
	}
	return reviews, nil
}

// ListByProduct 获取商品全部评价（带用户展示字段）
func (r *GormReviewRepository) ListByProduct(productID uint) ([]models.Review, error) {
	var reviews []models.Review
	if err := r.db.Preload("User").
		Where("product_id = ?", productID).
		Order("review_date DESC, id DESC").
		Find(&reviews).Error; err != nil {
		return nil, err
	}
	return reviews, nil
}
