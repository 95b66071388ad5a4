package service

import (
	"context"
	"errors"
	"testing"

	"github.com/pixelmart/internal/constants"
	"github.com/pixelmart/internal/models"
	"github.com/pixelmart/internal/repository"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
)

func setupAddressServiceTest(t *testing.T) *AddressService {
	t.Helper()
	db, err := gorm.Open(sqlite.Open("file::memory:?cache=shared"), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite failed: %v", err)
	}
	if err := db.AutoMigrate(&models.Address{}); err != nil {
		t.Fatalf("migrate address table failed: %v", err)
	}
	models.DB = db
	return NewAddressService(repository.NewAddressRepository(db), 0)
}

func shippingAddress(userID uint) AddressInput {
	return AddressInput{
		UserID:  userID,
		Street:  "14 Harbor Lane",
		City:    "Rotterdam",
		Zip:     "3011AB",
		Country: "NL",
		Type:    constants.AddressTypeShipping,
	}
}

func TestCreateAddressValidation(t *testing.T) {
	svc := setupAddressServiceTest(t)
	ctx := context.Background()

	input := shippingAddress(901)
	input.City = " "
	if _, err := svc.CreateAddress(ctx, input); !errors.Is(err, ErrInvalidAddress) {
		t.Fatalf("expected ErrInvalidAddress got %v", err)
	}

	input = shippingAddress(901)
	input.Type = "pickup"
	if _, err := svc.CreateAddress(ctx, input); !errors.Is(err, ErrInvalidAddress) {
		t.Fatalf("expected ErrInvalidAddress for bad type got %v", err)
	}
}

func TestAddressOwnershipScopedWrites(t *testing.T) {
	svc := setupAddressServiceTest(t)
	ctx := context.Background()

	id, err := svc.CreateAddress(ctx, shippingAddress(902))
	if err != nil {
		t.Fatalf("create address failed: %v", err)
	}
	if id == 0 {
		t.Fatalf("address id want nonzero")
	}

	// 其他用户不能更新或删除别人的地址
	foreign := shippingAddress(903)
	foreign.AddressID = id
	foreign.Street = "hijacked"
	if err := svc.UpdateAddress(ctx, foreign); !errors.Is(err, ErrAddressNotFound) {
		t.Fatalf("expected ErrAddressNotFound for foreign update got %v", err)
	}
	if err := svc.DeleteAddress(ctx, id, 903); !errors.Is(err, ErrAddressNotFound) {
		t.Fatalf("expected ErrAddressNotFound for foreign delete got %v", err)
	}

	own := shippingAddress(902)
	own.AddressID = id
	own.Street = "15 Harbor Lane"
	if err := svc.UpdateAddress(ctx, own); err != nil {
		t.Fatalf("update own address failed: %v", err)
	}

	addresses, err := svc.ListAddresses(ctx, 902)
	if err != nil {
		t.Fatalf("list addresses failed: %v", err)
	}
	if len(addresses) != 1 || addresses[0].Street != "15 Harbor Lane" {
		t.Fatalf("unexpected address list: %+v", addresses)
	}

	if err := svc.DeleteAddress(ctx, id, 902); err != nil {
		t.Fatalf("delete own address failed: %v", err)
	}
	if _, err = svc.ListAddresses(ctx, 902); !errors.Is(err, ErrAddressNotFound) {
		t.Fatalf("list after delete want ErrAddressNotFound got %v", err)
	}
}

func TestListAddressesEmptyIsNotFound(t *testing.T) {
	svc := setupAddressServiceTest(t)
	ctx := context.Background()

	if _, err := svc.ListAddresses(ctx, 903); !errors.Is(err, ErrAddressNotFound) {
		t.Fatalf("want ErrAddressNotFound got %v", err)
	}
}
