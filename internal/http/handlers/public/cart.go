package public

import (
	"strconv"

	"github.com/pixelmart/internal/http/response"
	"github.com/pixelmart/internal/models"
	"github.com/pixelmart/internal/service"

	"github.com/gin-gonic/gin"
)

// AddCartItemRequest 加购请求（名称与价格是用户当时看到的快照）
type AddCartItemRequest struct {
	ProductID uint         `json:"product_id" binding:"required"`
	Name      string       `json:"name" binding:"required"`
	Price     models.Money `json:"price"`
}

// UpdateCartQuantityRequest 修改数量请求（字段名沿用既有客户端的驼峰命名）
type UpdateCartQuantityRequest struct {
	CartItemID  uint `json:"cartItemId" binding:"required"`
	NewQuantity int  `json:"newQuantity" binding:"required"`
}

// GetCart 获取购物车（没有购物车返回空结果，不创建）
func (h *Handler) GetCart(c *gin.Context) {
	uid, ok := getUserID(c)
	if !ok {
		return
	}
	view, err := h.CartService.GetCart(c.Request.Context(), uid)
	if err != nil {
		respondCartError(c, err)
		return
	}
	response.Success(c, gin.H{
		"cart_id":   view.CartID,
		"cartItems": view.Items,
	})
}

// AddCartItem 加购：同一商品重复加购数量加 1，返回最新商品总数
func (h *Handler) AddCartItem(c *gin.Context) {
	uid, ok := getUserID(c)
	if !ok {
		return
	}
	var req AddCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "invalid request body", err)
		return
	}
	count, err := h.CartService.AddItem(c.Request.Context(), service.AddCartItemInput{
		UserID:    uid,
		ProductID: req.ProductID,
		Name:      req.Name,
		Price:     req.Price,
	})
	if err != nil {
		respondCartError(c, err)
		return
	}
	response.Success(c, gin.H{"cart_item_count": count})
}

// UpdateCartItemQuantity 直接设置购物车项数量（必须 ≥1）
func (h *Handler) UpdateCartItemQuantity(c *gin.Context) {
	if _, ok := getUserID(c); !ok {
		return
	}
	var req UpdateCartQuantityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "invalid request body", err)
		return
	}
	if err := h.CartService.UpdateQuantity(c.Request.Context(), req.CartItemID, req.NewQuantity); err != nil {
		respondCartError(c, err)
		return
	}
	response.Success(c, gin.H{"updated": true})
}

// DeleteCartItem 删除购物车项
func (h *Handler) DeleteCartItem(c *gin.Context) {
	if _, ok := getUserID(c); !ok {
		return
	}
	rawID := c.Param("cart_item_id")
	itemID, err := strconv.ParseUint(rawID, 10, 64)
	if err != nil || itemID == 0 {
		respondError(c, response.CodeBadRequest, "invalid cart item id", nil)
		return
	}
	if err := h.CartService.RemoveItem(c.Request.Context(), uint(itemID)); err != nil {
		respondCartError(c, err)
		return
	}
	response.Success(c, gin.H{"deleted": true})
}

// EmptyCart 清空购物车（已空也视为成功）
func (h *Handler) EmptyCart(c *gin.Context) {
	uid, ok := getUserID(c)
	if !ok {
		return
	}
	view, err := h.CartService.GetCart(c.Request.Context(), uid)
	if err != nil {
		respondCartError(c, err)
		return
	}
	if view.CartID == 0 {
		response.Success(c, gin.H{"emptied": true})
		return
	}
	if err := h.CartService.EmptyCart(c.Request.Context(), view.CartID); err != nil {
		respondCartError(c, err)
		return
	}
	response.Success(c, gin.H{"emptied": true})
}
