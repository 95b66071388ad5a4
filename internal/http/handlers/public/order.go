package public

import (
	"github.com/pixelmart/internal/http/response"
	"github.com/pixelmart/internal/models"
	"github.com/pixelmart/internal/service"

	"github.com/gin-gonic/gin"
)

// CheckoutItemRequest 结算行项（调用方提供的购物车快照）
type CheckoutItemRequest struct {
	ProductID uint         `json:"product_id" binding:"required"`
	Quantity  int          `json:"quantity" binding:"required"`
	Price     models.Money `json:"price"`
}

// CheckoutRequest 结算请求
type CheckoutRequest struct {
	CartItems []CheckoutItemRequest `json:"cartItems" binding:"required"`
}

// Checkout 下单：订单头与订单项同一事务写入，失败不产生半个订单
func (h *Handler) Checkout(c *gin.Context) {
	uid, ok := getUserID(c)
	if !ok {
		return
	}
	var req CheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "cartItems must be a non-empty list", err)
		return
	}
	items := make([]service.OrderLineItem, 0, len(req.CartItems))
	for _, item := range req.CartItems {
		items = append(items, service.OrderLineItem{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
			Price:     item.Price,
		})
	}
	orderID, err := h.OrderService.CompleteOrder(c.Request.Context(), service.CompleteOrderInput{
		UserID: uid,
		Items:  items,
	})
	if err != nil {
		respondOrderError(c, err)
		return
	}
	response.Created(c, gin.H{"order_id": orderID})
}

// ListOrders 用户订单列表（每单带明细与合计金额）
func (h *Handler) ListOrders(c *gin.Context) {
	uid, ok := getUserID(c)
	if !ok {
		return
	}
	orders, err := h.OrderService.GetOrders(c.Request.Context(), uid)
	if err != nil {
		respondOrderError(c, err)
		return
	}
	response.Success(c, gin.H{"orders": orders})
}
