package public

import (
	"strconv"

	"github.com/pixelmart/internal/http/response"

	"github.com/gin-gonic/gin"
)

// AddWishlistItemRequest 加入心愿单请求
type AddWishlistItemRequest struct {
	ProductID uint `json:"product_id" binding:"required"`
}

// AddWishlistItem 加入心愿单（重复加入幂等）
func (h *Handler) AddWishlistItem(c *gin.Context) {
	uid, ok := getUserID(c)
	if !ok {
		return
	}
	var req AddWishlistItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "invalid request body", err)
		return
	}
	if err := h.WishlistService.AddItem(c.Request.Context(), uid, req.ProductID); err != nil {
		respondWishlistError(c, err)
		return
	}
	response.Success(c, gin.H{"added": true})
}

// ListWishlist 心愿单列表
func (h *Handler) ListWishlist(c *gin.Context) {
	uid, ok := getUserID(c)
	if !ok {
		return
	}
	items, err := h.WishlistService.ListItems(c.Request.Context(), uid)
	if err != nil {
		respondWishlistError(c, err)
		return
	}
	response.Success(c, gin.H{"items": items})
}

// RemoveWishlistItem 移出心愿单
func (h *Handler) RemoveWishlistItem(c *gin.Context) {
	uid, ok := getUserID(c)
	if !ok {
		return
	}
	rawID := c.Param("product_id")
	productID, err := strconv.ParseUint(rawID, 10, 64)
	if err != nil || productID == 0 {
		respondError(c, response.CodeBadRequest, "invalid product id", nil)
		return
	}
	if err := h.WishlistService.RemoveItem(c.Request.Context(), uid, uint(productID)); err != nil {
		respondWishlistError(c, err)
		return
	}
	response.Success(c, gin.H{"removed": true})
}
