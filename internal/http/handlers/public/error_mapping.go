package public

import (
	"errors"

	"github.com/pixelmart/internal/http/response"
	"github.com/pixelmart/internal/models"
	"github.com/pixelmart/internal/service"

	"github.com/gin-gonic/gin"
)

// mappedHandlerError 定义业务错误到接口错误响应的映射关系。
type mappedHandlerError struct {
	target error
	code   int
	msg    string
}

func respondWithMappedError(c *gin.Context, err error, rules []mappedHandlerError, fallbackCode int, fallbackMsg string) {
	for _, rule := range rules {
		if errors.Is(err, rule.target) {
			respondError(c, rule.code, rule.msg, nil)
			return
		}
	}
	respondError(c, fallbackCode, fallbackMsg, err)
}

// infraErrorRules 基础设施错误统一按 500 处理，不泄漏内部细节
var infraErrorRules = []mappedHandlerError{
	{target: models.ErrConnection, code: response.CodeInternal, msg: "service temporarily unavailable"},
	{target: models.ErrCommit, code: response.CodeInternal, msg: "operation could not be confirmed"},
	{target: models.ErrTxTimeout, code: response.CodeInternal, msg: "operation timed out"},
}

var catalogErrorRules = append([]mappedHandlerError{
	{target: service.ErrInvalidProductKind, code: response.CodeBadRequest, msg: "product kind must be Game or Merchandise"},
	{target: service.ErrInvalidProduct, code: response.CodeBadRequest, msg: "invalid product fields"},
	{target: service.ErrProductNotFound, code: response.CodeNotFound, msg: "product not found"},
	{target: service.ErrWriteFailed, code: response.CodeInternal, msg: "product write failed"},
}, infraErrorRules...)

var cartErrorRules = append([]mappedHandlerError{
	{target: service.ErrInvalidUser, code: response.CodeBadRequest, msg: "invalid user id"},
	{target: service.ErrInvalidOrderItem, code: response.CodeBadRequest, msg: "invalid cart item"},
	{target: service.ErrInvalidQuantity, code: response.CodeBadRequest, msg: "quantity must be at least 1"},
	{target: service.ErrInvalidCart, code: response.CodeBadRequest, msg: "invalid cart id"},
	{target: service.ErrCartItemNotFound, code: response.CodeNotFound, msg: "cart item not found"},
}, infraErrorRules...)

var orderErrorRules = append([]mappedHandlerError{
	{target: service.ErrInvalidUser, code: response.CodeBadRequest, msg: "invalid user id"},
	{target: service.ErrInvalidOrderItem, code: response.CodeBadRequest, msg: "order requires at least one valid line item"},
	{target: service.ErrInsufficientStock, code: response.CodeBadRequest, msg: "insufficient stock"},
	{target: service.ErrOrderNotFound, code: response.CodeNotFound, msg: "no orders found"},
	{target: service.ErrWriteFailed, code: response.CodeInternal, msg: "order write failed"},
}, infraErrorRules...)

var reviewErrorRules = append([]mappedHandlerError{
	{target: service.ErrInvalidUser, code: response.CodeBadRequest, msg: "invalid user id"},
	{target: service.ErrInvalidReview, code: response.CodeBadRequest, msg: "review requires a product and non-empty text"},
	{target: service.ErrWriteFailed, code: response.CodeInternal, msg: "review write failed"},
}, infraErrorRules...)

var addressErrorRules = append([]mappedHandlerError{
	{target: service.ErrInvalidUser, code: response.CodeBadRequest, msg: "invalid user id"},
	{target: service.ErrInvalidAddress, code: response.CodeBadRequest, msg: "invalid address fields"},
	{target: service.ErrAddressNotFound, code: response.CodeNotFound, msg: "address not found"},
	{target: service.ErrWriteFailed, code: response.CodeInternal, msg: "address write failed"},
}, infraErrorRules...)

var wishlistErrorRules = append([]mappedHandlerError{
	{target: service.ErrInvalidUser, code: response.CodeBadRequest, msg: "invalid user id"},
	{target: service.ErrInvalidProduct, code: response.CodeBadRequest, msg: "invalid product id"},
	{target: service.ErrWishlistItemNotFound, code: response.CodeNotFound, msg: "wishlist item not found"},
}, infraErrorRules...)

func respondCatalogError(c *gin.Context, err error) {
	respondWithMappedError(c, err, catalogErrorRules, response.CodeInternal, "catalog operation failed")
}

func respondCartError(c *gin.Context, err error) {
	respondWithMappedError(c, err, cartErrorRules, response.CodeInternal, "cart operation failed")
}

func respondOrderError(c *gin.Context, err error) {
	respondWithMappedError(c, err, orderErrorRules, response.CodeInternal, "order operation failed")
}

func respondReviewError(c *gin.Context, err error) {
	respondWithMappedError(c, err, reviewErrorRules, response.CodeInternal, "review operation failed")
}

func respondAddressError(c *gin.Context, err error) {
	respondWithMappedError(c, err, addressErrorRules, response.CodeInternal, "address operation failed")
}

func respondWishlistError(c *gin.Context, err error) {
	respondWithMappedError(c, err, wishlistErrorRules, response.CodeInternal, "wishlist operation failed")
}
