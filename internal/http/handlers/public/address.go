package public

import (
	"strconv"

	"github.com/pixelmart/internal/http/response"
	"github.com/pixelmart/internal/service"

	"github.com/gin-gonic/gin"
)

// AddressRequest 地址写入请求
type AddressRequest struct {
	Street  string `json:"street" binding:"required"`
	City    string `json:"city" binding:"required"`
	Zip     string `json:"zip" binding:"required"`
	Country string `json:"country" binding:"required"`
	Type    string `json:"type" binding:"required"`
}

func parseAddressID(c *gin.Context) (uint, bool) {
	raw := c.Param("address_id")
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || id == 0 {
		respondError(c, response.CodeBadRequest, "invalid address id", nil)
		return 0, false
	}
	return uint(id), true
}

// CreateAddress 新增地址
func (h *Handler) CreateAddress(c *gin.Context) {
	uid, ok := getUserID(c)
	if !ok {
		return
	}
	var req AddressRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "invalid request body", err)
		return
	}
	addressID, err := h.AddressService.CreateAddress(c.Request.Context(), service.AddressInput{
		UserID:  uid,
		Street:  req.Street,
		City:    req.City,
		Zip:     req.Zip,
		Country: req.Country,
		Type:    req.Type,
	})
	if err != nil {
		respondAddressError(c, err)
		return
	}
	response.Created(c, gin.H{"address_id": addressID})
}

// ListAddresses 地址列表
func (h *Handler) ListAddresses(c *gin.Context) {
	uid, ok := getUserID(c)
	if !ok {
		return
	}
	addresses, err := h.AddressService.ListAddresses(c.Request.Context(), uid)
	if err != nil {
		respondAddressError(c, err)
		return
	}
	response.Success(c, gin.H{"addresses": addresses})
}

// UpdateAddress 更新地址
func (h *Handler) UpdateAddress(c *gin.Context) {
	uid, ok := getUserID(c)
	if !ok {
		return
	}
	addressID, ok := parseAddressID(c)
	if !ok {
		return
	}
	var req AddressRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "invalid request body", err)
		return
	}
	if err := h.AddressService.UpdateAddress(c.Request.Context(), service.AddressInput{
		AddressID: addressID,
		UserID:    uid,
		Street:    req.Street,
		City:      req.City,
		Zip:       req.Zip,
		Country:   req.Country,
		Type:      req.Type,
	}); err != nil {
		respondAddressError(c, err)
		return
	}
	response.Success(c, gin.H{"updated": true})
}

// DeleteAddress 删除地址
func (h *Handler) DeleteAddress(c *gin.Context) {
	uid, ok := getUserID(c)
	if !ok {
		return
	}
	addressID, ok := parseAddressID(c)
	if !ok {
		return
	}
	if err := h.AddressService.DeleteAddress(c.Request.Context(), addressID, uid); err != nil {
		respondAddressError(c, err)
		return
	}
	response.Success(c, gin.H{"deleted": true})
}
