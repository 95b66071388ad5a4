package public

import (
	"strconv"
	"time"

	"github.com/pixelmart/internal/http/response"
	"github.com/pixelmart/internal/models"
	"github.com/pixelmart/internal/service"

	"github.com/gin-gonic/gin"
)

// GameFieldsRequest 游戏子类型字段请求
type GameFieldsRequest struct {
	Platform    string `json:"platform"`
	ReleaseDate string `json:"release_date"` // YYYY-MM-DD
}

// MerchandiseFieldsRequest 周边子类型字段请求
type MerchandiseFieldsRequest struct {
	Size   string `json:"size"`
	Color  string `json:"color"`
	GameID uint   `json:"game_id"`
}

// ProductRequest 商品写入请求
type ProductRequest struct {
	Kind              string                    `json:"kind" binding:"required"`
	Name              string                    `json:"name" binding:"required"`
	Description       string                    `json:"description"`
	Price             models.Money              `json:"price"`
	InventoryQuantity int                       `json:"inventory_quantity"`
	AverageRating     float64                   `json:"average_rating"`
	ImageURLs         []string                  `json:"image_urls"`
	Game              *GameFieldsRequest        `json:"game"`
	Merchandise       *MerchandiseFieldsRequest `json:"merchandise"`
}

func (r ProductRequest) gameFields(c *gin.Context) (*service.GameFields, bool) {
	if r.Game == nil {
		return nil, true
	}
	fields := &service.GameFields{Platform: r.Game.Platform}
	if r.Game.ReleaseDate != "" {
		parsed, err := time.Parse("2006-01-02", r.Game.ReleaseDate)
		if err != nil {
			respondError(c, response.CodeBadRequest, "release_date must be YYYY-MM-DD", nil)
			return nil, false
		}
		fields.ReleaseDate = &parsed
	}
	return fields, true
}

func (r ProductRequest) merchandiseFields() *service.MerchandiseFields {
	if r.Merchandise == nil {
		return nil
	}
	return &service.MerchandiseFields{
		Size:   r.Merchandise.Size,
		Color:  r.Merchandise.Color,
		GameID: r.Merchandise.GameID,
	}
}

func parseProductID(c *gin.Context) (uint, bool) {
	raw := c.Param("product_id")
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || id == 0 {
		respondError(c, response.CodeBadRequest, "invalid product id", nil)
		return 0, false
	}
	return uint(id), true
}

// ListProducts 商品列表（子类型字段左连接，非匹配子类型为空）
func (h *Handler) ListProducts(c *gin.Context) {
	products, err := h.CatalogService.ListAll(c.Request.Context())
	if err != nil {
		respondCatalogError(c, err)
		return
	}
	response.Success(c, gin.H{"products": products})
}

// SearchProducts 名称子串搜索
func (h *Handler) SearchProducts(c *gin.Context) {
	products, err := h.CatalogService.Search(c.Request.Context(), c.Query("name"))
	if err != nil {
		respondCatalogError(c, err)
		return
	}
	response.Success(c, gin.H{"products": products})
}

// GetProduct 商品详情
func (h *Handler) GetProduct(c *gin.Context) {
	productID, ok := parseProductID(c)
	if !ok {
		return
	}
	product, err := h.CatalogService.GetByID(c.Request.Context(), productID)
	if err != nil {
		respondCatalogError(c, err)
		return
	}
	response.Success(c, gin.H{"product": product})
}

// CreateProduct 创建商品（基表行、子类型行与可选联动行同一事务写入）
func (h *Handler) CreateProduct(c *gin.Context) {
	var req ProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "invalid request body", err)
		return
	}
	game, ok := req.gameFields(c)
	if !ok {
		return
	}
	productID, err := h.CatalogService.CreateProduct(c.Request.Context(), service.CreateProductInput{
		Kind:              req.Kind,
		Name:              req.Name,
		Description:       req.Description,
		Price:             req.Price,
		InventoryQuantity: req.InventoryQuantity,
		ImageURLs:         req.ImageURLs,
		Game:              game,
		Merchandise:       req.merchandiseFields(),
	})
	if err != nil {
		respondCatalogError(c, err)
		return
	}
	response.Created(c, gin.H{"product_id": productID})
}

// UpdateProduct 更新商品（基表行与子类型行各更新 1 行，否则回滚）
func (h *Handler) UpdateProduct(c *gin.Context) {
	productID, ok := parseProductID(c)
	if !ok {
		return
	}
	var req ProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "invalid request body", err)
		return
	}
	game, ok := req.gameFields(c)
	if !ok {
		return
	}
	if err := h.CatalogService.UpdateProduct(c.Request.Context(), service.UpdateProductInput{
		ProductID:         productID,
		Kind:              req.Kind,
		Name:              req.Name,
		Description:       req.Description,
		Price:             req.Price,
		InventoryQuantity: req.InventoryQuantity,
		AverageRating:     req.AverageRating,
		ImageURLs:         req.ImageURLs,
		Game:              game,
		Merchandise:       req.merchandiseFields(),
	}); err != nil {
		respondCatalogError(c, err)
		return
	}
	response.Success(c, gin.H{"updated": true})
}

// DeleteProduct 删除商品（不存在按 404 报告，不静默成功）
func (h *Handler) DeleteProduct(c *gin.Context) {
	productID, ok := parseProductID(c)
	if !ok {
		return
	}
	if err := h.CatalogService.DeleteProduct(c.Request.Context(), productID); err != nil {
		respondCatalogError(c, err)
		return
	}
	response.Success(c, gin.H{"deleted": true})
}
