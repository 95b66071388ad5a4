package service

import "errors"

// 业务哨兵错误，处理层用 errors.Is 归类为 HTTP 状态码
var (
	// 参数错误（进入任何 I/O 之前拦截）
	ErrInvalidUser        = errors.New("invalid user id")
	ErrInvalidProductKind = errors.New("invalid product kind")
	ErrInvalidProduct     = errors.New("invalid product fields")
	ErrInvalidQuantity    = errors.New("invalid quantity")
	ErrInvalidCart        = errors.New("invalid cart id")
	ErrInvalidOrderItem   = errors.New("invalid order item")
	ErrInvalidReview      = errors.New("invalid review")
	ErrInvalidAddress     = errors.New("invalid address")

	// 实体不存在
	ErrProductNotFound      = errors.New("product not found")
	ErrCartItemNotFound     = errors.New("cart item not found")
	ErrOrderNotFound        = errors.New("no orders found for user")
	ErrAddressNotFound      = errors.New("address not found")
	ErrWishlistItemNotFound = errors.New("wishlist item not found")

	// 写入一致性错误（预期影响 1 行却影响 0 行，必回滚）
	ErrWriteFailed = errors.New("write affected no rows")

	// 库存不足（仅在开启库存校验时出现）
	ErrInsufficientStock = errors.New("insufficient stock")
)
