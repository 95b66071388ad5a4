package service

import (
	"context"
	"strings"
	"time"

	"github.com/pixelmart/internal/cache"
	"github.com/pixelmart/internal/constants"
	"github.com/pixelmart/internal/logger"
	"github.com/pixelmart/internal/models"
	"github.com/pixelmart/internal/repository"

	"gorm.io/gorm"
)

const catalogListCacheKey = "catalog:list"

// GameFields 游戏子类型字段
type GameFields struct {
	Platform    string
	ReleaseDate *time.Time
}

// MerchandiseFields 周边子类型字段
type MerchandiseFields struct {
	Size   string
	Color  string
	GameID uint // 可选：周边联动的游戏商品ID
}

// CreateProductInput 创建商品输入（Kind 决定必须携带哪组子类型字段）
type CreateProductInput struct {
	Kind              string
	Name              string
	Description       string
	Price             models.Money
	InventoryQuantity int
	ImageURLs         []string
	Game              *GameFields
	Merchandise       *MerchandiseFields
}

// UpdateProductInput 更新商品输入
type UpdateProductInput struct {
	ProductID         uint
	Kind              string
	Name              string
	Description       string
	Price             models.Money
	InventoryQuantity int
	AverageRating     float64
	ImageURLs         []string
	Game              *GameFields
	Merchandise       *MerchandiseFields
}

// CatalogService 商品目录服务
type CatalogService struct {
	productRepo repository.ProductRepository
	cacheTTL    time.Duration
	txTimeout   time.Duration
}

// NewCatalogService 创建商品目录服务
func NewCatalogService(productRepo repository.ProductRepository, cacheTTL, txTimeout time.Duration) *CatalogService {
	return &CatalogService{
		productRepo: productRepo,
		cacheTTL:    cacheTTL,
		txTimeout:   txTimeout,
	}
}

// CreateProduct 创建商品：同一事务内写入基表行、子类型行，
// 以及可选的游戏联动行。任何一步影响 0 行则整体回滚。
func (s *CatalogService) CreateProduct(ctx context.Context, input CreateProductInput) (uint, error) {
	if strings.TrimSpace(input.Name) == "" || input.InventoryQuantity < 0 {
		return 0, ErrInvalidProduct
	}
	switch input.Kind {
	case constants.CategoryGame:
		if input.Game == nil || input.Merchandise != nil {
			return 0, ErrInvalidProductKind
		}
	case constants.CategoryMerchandise:
		if input.Merchandise == nil || input.Game != nil {
			return 0, ErrInvalidProductKind
		}
	default:
		return 0, ErrInvalidProductKind
	}

	product := &models.Product{
		Name:              input.Name,
		Description:       input.Description,
		Price:             input.Price,
		InventoryQuantity: input.InventoryQuantity,
		Category:          input.Kind,
		ImageURLs:         models.StringArray(input.ImageURLs),
	}

	err := models.WithTransaction(ctx, s.txTimeout, func(tx *gorm.DB) error {
		repo := s.productRepo.WithTx(tx)
		rows, err := repo.Create(product)
		if err != nil {
			return err
		}
		if rows == 0 {
			return ErrWriteFailed
		}
		switch input.Kind {
		case constants.CategoryGame:
			rows, err = repo.CreateGame(&models.GameExtension{
				ProductID:   product.ID,
				Platform:    input.Game.Platform,
				ReleaseDate: input.Game.ReleaseDate,
			})
		case constants.CategoryMerchandise:
			rows, err = repo.CreateMerchandise(&models.MerchandiseExtension{
				ProductID: product.ID,
				Size:      input.Merchandise.Size,
				Color:     input.Merchandise.Color,
			})
		}
		if err != nil {
			return err
		}
		if rows == 0 {
			return ErrWriteFailed
		}
		if input.Kind == constants.CategoryMerchandise && input.Merchandise.GameID != 0 {
			game, err := repo.GetByID(input.Merchandise.GameID)
			if err != nil {
				return err
			}
			if game == nil || game.Category != constants.CategoryGame {
				return ErrInvalidProduct
			}
			rows, err = repo.LinkMerchandiseGame(product.ID, input.Merchandise.GameID)
			if err != nil {
				return err
			}
			if rows == 0 {
				return ErrWriteFailed
			}
		}
		return nil
	})
	if err != nil {
		return 0, err
	}

	s.invalidateListCache(ctx)
	return product.ID, nil
}

// UpdateProduct 更新商品：基表行与子类型行在同一事务内各更新 1 行，否则回滚
func (s *CatalogService) UpdateProduct(ctx context.Context, input UpdateProductInput) error {
	if input.ProductID == 0 || strings.TrimSpace(input.Name) == "" {
		return ErrInvalidProduct
	}
	switch input.Kind {
	case constants.CategoryGame:
		if input.Game == nil {
			return ErrInvalidProductKind
		}
	case constants.CategoryMerchandise:
		if input.Merchandise == nil {
			return ErrInvalidProductKind
		}
	default:
		return ErrInvalidProductKind
	}

	err := models.WithTransaction(ctx, s.txTimeout, func(tx *gorm.DB) error {
		repo := s.productRepo.WithTx(tx)
		rows, err := repo.UpdateBase(&models.Product{
			ID:                input.ProductID,
			Name:              input.Name,
			Description:       input.Description,
			Price:             input.Price,
			InventoryQuantity: input.InventoryQuantity,
			AverageRating:     input.AverageRating,
			ImageURLs:         models.StringArray(input.ImageURLs),
		})
		if err != nil {
			return err
		}
		if rows != 1 {
			return ErrWriteFailed
		}
		switch input.Kind {
		case constants.CategoryGame:
			rows, err = repo.UpdateGame(&models.GameExtension{
				ProductID:   input.ProductID,
				Platform:    input.Game.Platform,
				ReleaseDate: input.Game.ReleaseDate,
			})
		case constants.CategoryMerchandise:
			rows, err = repo.UpdateMerchandise(&models.MerchandiseExtension{
				ProductID: input.ProductID,
				Size:      input.Merchandise.Size,
				Color:     input.Merchandise.Color,
			})
		}
		if err != nil {
			return err
		}
		if rows != 1 {
			return ErrWriteFailed
		}
		return nil
	})
	if err != nil {
		return err
	}

	s.invalidateListCache(ctx)
	return nil
}

// DeleteProduct 删除商品：基表行影响 0 行视为不存在，子类型行随之清理
func (s *CatalogService) DeleteProduct(ctx context.Context, productID uint) error {
	if productID == 0 {
		return ErrInvalidProduct
	}
	err := models.WithTransaction(ctx, s.txTimeout, func(tx *gorm.DB) error {
		repo := s.productRepo.WithTx(tx)
		rows, err := repo.Delete(productID)
		if err != nil {
			return err
		}
		if rows == 0 {
			return ErrProductNotFound
		}
		return repo.DeleteExtensions(productID)
	})
	if err != nil {
		return err
	}

	s.invalidateListCache(ctx)
	return nil
}

// ListAll 商品列表（优先读缓存）
func (s *CatalogService) ListAll(ctx context.Context) ([]models.Product, error) {
	var cached []models.Product
	if hit, err := cache.GetJSON(ctx, catalogListCacheKey, &cached); err != nil {
		logger.Warnw("catalog_cache_read_failed", "error", err)
	} else if hit {
		return cached, nil
	}

	var products []models.Product
	err := models.WithConnection(ctx, func(db *gorm.DB) error {
		var err error
		products, err = s.productRepo.WithTx(db).ListAll()
		return err
	})
	if err != nil {
		return nil, err
	}

	if err := cache.SetJSON(ctx, catalogListCacheKey, products, s.cacheTTL); err != nil {
		logger.Warnw("catalog_cache_write_failed", "error", err)
	}
	return products, nil
}

// Search 名称子串搜索（不走缓存，按名称升序）
func (s *CatalogService) Search(ctx context.Context, nameSubstring string) ([]models.Product, error) {
	var products []models.Product
	err := models.WithConnection(ctx, func(db *gorm.DB) error {
		var err error
		products, err = s.productRepo.WithTx(db).SearchByName(nameSubstring)
		return err
	})
	if err != nil {
		return nil, err
	}
	return products, nil
}

// GetByID 获取单个商品
func (s *CatalogService) GetByID(ctx context.Context, productID uint) (*models.Product, error) {
	if productID == 0 {
		return nil, ErrInvalidProduct
	}
	var product *models.Product
	err := models.WithConnection(ctx, func(db *gorm.DB) error {
		var err error
		product, err = s.productRepo.WithTx(db).GetByID(productID)
		return err
	})
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, ErrProductNotFound
	}
	return product, nil
}

func (s *CatalogService) invalidateListCache(ctx context.Context) {
	if err := cache.Del(ctx, catalogListCacheKey); err != nil {
		logger.Warnw("catalog_cache_invalidate_failed", "error", err)
	}
}
