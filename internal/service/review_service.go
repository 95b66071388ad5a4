package service

import (
	"context"
	"strings"
	"time"

	"github.com/pixelmart/internal/models"
	"github.com/pixelmart/internal/repository"

	"gorm.io/gorm"
)

// AddReviewInput 添加评价输入
type AddReviewInput struct {
	UserID     uint
	ProductID  uint
	ReviewText string
}

// ReviewService 评价服务
type ReviewService struct {
	reviewRepo repository.ReviewRepository
	txTimeout  time.Duration
}

// NewReviewService 创建评价服务
func NewReviewService(reviewRepo repository.ReviewRepository, txTimeout time.Duration) *ReviewService {
	return &ReviewService{reviewRepo: reviewRepo, txTimeout: txTimeout}
}

// AddReview 添加评价（只追加，时间戳服务端捕获）
func (s *ReviewService) AddReview(ctx context.Context, input AddReviewInput) error {
	if input.UserID == 0 {
		return ErrInvalidUser
	}
	if input.ProductID == 0 || strings.TrimSpace(input.ReviewText) == "" {
		return ErrInvalidReview
	}
	review := &models.Review{
		UserID:     input.UserID,
		ProductID:  input.ProductID,
		ReviewText: input.ReviewText,
		ReviewDate: time.Now().UTC().Truncate(time.Second),
	}
	return models.WithTransaction(ctx, s.txTimeout, func(tx *gorm.DB) error {
		rows, err := s.reviewRepo.WithTx(tx).Create(review)
		if err != nil {
			return err
		}
		if rows == 0 {
			return ErrWriteFailed
		}
		return nil
	})
}

// GetReviewsByUser 获取用户全部评价
func (s *ReviewService) GetReviewsByUser(ctx context.Context, userID uint) ([]models.Review, error) {
	if userID == 0 {
		return nil, ErrInvalidUser
	}
	var reviews []models.Review
	err := models.WithConnection(ctx, func(db *gorm.DB) error {
		var err error
		reviews, err = s.reviewRepo.WithTx(db).ListByUser(userID)
		return err
	})
	if err != nil {
		return nil, err
	}
	return reviews, nil
}

// GetReviewsByProduct 获取商品全部评价
func (s *ReviewService) GetReviewsByProduct(ctx context.Context, productID uint) ([]models.Review, error) {
	if productID == 0 {
		return nil, ErrInvalidReview
	}
	var reviews []models.Review
	err := models.WithConnection(ctx, func(db *gorm.DB) error {
		var err error
		reviews, err = s.reviewRepo.WithTx(db).ListByProduct(productID)
		return err
	})
	if err != nil {
		return nil, err
	}
	return reviews, nil
}
