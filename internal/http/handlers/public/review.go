package public

import (
	"strconv"

	"github.com/pixelmart/internal/http/response"
	"github.com/pixelmart/internal/service"

	"github.com/gin-gonic/gin"
)

// AddReviewRequest 添加评价请求
type AddReviewRequest struct {
	ProductID  uint   `json:"product_id" binding:"required"`
	ReviewText string `json:"review_text" binding:"required"`
}

// AddReview 添加评价
func (h *Handler) AddReview(c *gin.Context) {
	uid, ok := getUserID(c)
	if !ok {
		return
	}
	var req AddReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "invalid request body", err)
		return
	}
	if err := h.ReviewService.AddReview(c.Request.Context(), service.AddReviewInput{
		UserID:     uid,
		ProductID:  req.ProductID,
		ReviewText: req.ReviewText,
	}); err != nil {
		respondReviewError(c, err)
		return
	}
	response.Created(c, gin.H{"created": true})
}

// ListUserReviews 获取当前用户全部评价
func (h *Handler) ListUserReviews(c *gin.Context) {
	uid, ok := getUserID(c)
	if !ok {
		return
	}
	reviews, err := h.ReviewService.GetReviewsByUser(c.Request.Context(), uid)
	if err != nil {
		respondReviewError(c, err)
		return
	}
	response.Success(c, gin.H{"reviews": reviews})
}

// ListProductReviews 获取某商品全部评价
func (h *Handler) ListProductReviews(c *gin.Context) {
	rawID := c.Param("product_id")
	productID, err := strconv.ParseUint(rawID, 10, 64)
	if err != nil || productID == 0 {
		respondError(c, response.CodeBadRequest, "invalid product id", nil)
		return
	}
	reviews, err := h.ReviewService.GetReviewsByProduct(c.Request.Context(), uint(productID))
	if err != nil {
		respondReviewError(c, err)
		return
	}
	response.Success(c, gin.H{"reviews": reviews})
}
