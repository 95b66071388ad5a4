package service

import (
	"context"
	"strings"
	"time"

	"github.com/pixelmart/internal/constants"
	"github.com/pixelmart/internal/models"
	"github.com/pixelmart/internal/repository"

	"gorm.io/gorm"
)

// AddressInput 地址写入输入
type AddressInput struct {
	AddressID uint // 更新时必填
	UserID    uint
	Street    string
	City      string
	Zip       string
	Country   string
	Type      string
}

// AddressService 地址服务
type AddressService struct {
	addressRepo repository.AddressRepository
	txTimeout   time.Duration
}

// NewAddressService 创建地址服务
func NewAddressService(addressRepo repository.AddressRepository, txTimeout time.Duration) *AddressService {
	return &AddressService{addressRepo: addressRepo, txTimeout: txTimeout}
}

func validateAddressInput(input AddressInput) error {
	if strings.TrimSpace(input.Street) == "" ||
		strings.TrimSpace(input.City) == "" ||
		strings.TrimSpace(input.Zip) == "" ||
		strings.TrimSpace(input.Country) == "" {
		return ErrInvalidAddress
	}
	switch input.Type {
	case constants.AddressTypeShipping, constants.AddressTypeBilling:
		return nil
	default:
		return ErrInvalidAddress
	}
}

// CreateAddress 新增地址
func (s *AddressService) CreateAddress(ctx context.Context, input AddressInput) (uint, error) {
	if input.UserID == 0 {
		return 0, ErrInvalidUser
	}
	if err := validateAddressInput(input); err != nil {
		return 0, err
	}
	address := &models.Address{
		UserID:  input.UserID,
		Street:  input.Street,
		City:    input.City,
		Zip:     input.Zip,
		Country: input.Country,
		Type:    input.Type,
	}
	err := models.WithTransaction(ctx, s.txTimeout, func(tx *gorm.DB) error {
		rows, err := s.addressRepo.WithTx(tx).Create(address)
		if err != nil {
			return err
		}
		if rows == 0 {
			return ErrWriteFailed
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return address.ID, nil
}

// ListAddresses 获取用户全部地址
func (s *AddressService) ListAddresses(ctx context.Context, userID uint) ([]models.Address, error) {
	if userID == 0 {
		return nil, ErrInvalidUser
	}
	var addresses []models.Address
	err := models.WithConnection(ctx, func(db *gorm.DB) error {
		var err error
		addresses, err = s.addressRepo.WithTx(db).ListByUser(userID)
		return err
	})
	if err != nil {
		return nil, err
	}
	if len(addresses) == 0 {
		return nil, ErrAddressNotFound
	}
	return addresses, nil
}

// UpdateAddress 更新地址（只允许更新归属本用户的行）
func (s *AddressService) UpdateAddress(ctx context.Context, input AddressInput) error {
	if input.UserID == 0 {
		return ErrInvalidUser
	}
	if input.AddressID == 0 {
		return ErrInvalidAddress
	}
	if err := validateAddressInput(input); err != nil {
		return err
	}
	return models.WithTransaction(ctx, s.txTimeout, func(tx *gorm.DB) error {
		rows, err := s.addressRepo.WithTx(tx).Update(&models.Address{
			ID:      input.AddressID,
			UserID:  input.UserID,
			Street:  input.Street,
			City:    input.City,
			Zip:     input.Zip,
			Country: input.Country,
			Type:    input.Type,
		})
		if err != nil {
			return err
		}
		if rows == 0 {
			return ErrAddressNotFound
		}
		return nil
	})
}

// DeleteAddress 删除地址（只允许删除归属本用户的行）
func (s *AddressService) DeleteAddress(ctx context.Context, addressID, userID uint) error {
	if userID == 0 {
		return ErrInvalidUser
	}
	if addressID == 0 {
		return ErrInvalidAddress
	}
	return models.WithTransaction(ctx, s.txTimeout, func(tx *gorm.DB) error {
		rows, err := s.addressRepo.WithTx(tx).Delete(addressID, userID)
		if err != nil {
			return err
		}
		if rows == 0 {
			return ErrAddressNotFound
		}
		return nil
	})
}
