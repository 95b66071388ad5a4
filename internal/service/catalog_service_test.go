package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/pixelmart/internal/constants"
	"github.com/pixelmart/internal/models"
	"github.com/pixelmart/internal/repository"

	"github.com/glebarez/sqlite"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

func setupCatalogServiceTest(t *testing.T) (*CatalogService, *gorm.DB) {
	t.Helper()
	db, err := gorm.Open(sqlite.Open("file::memory:?cache=shared"), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite failed: %v", err)
	}
	if err := db.AutoMigrate(
		&models.Product{},
		&models.GameExtension{},
		&models.MerchandiseExtension{},
		&models.GameMerchandise{},
	); err != nil {
		t.Fatalf("migrate product tables failed: %v", err)
	}
	models.DB = db
	return NewCatalogService(repository.NewProductRepository(db), 0, 0), db
}

func TestCreateProductRejectsMismatchedKind(t *testing.T) {
	svc, _ := setupCatalogServiceTest(t)
	ctx := context.Background()
	price := models.NewMoneyFromDecimal(decimal.NewFromInt(30))

	cases := []struct {
		name  string
		input CreateProductInput
	}{
		{"unknown kind", CreateProductInput{Kind: "Book", Name: "Some Book", Price: price}},
		{"game without fields", CreateProductInput{Kind: constants.CategoryGame, Name: "No Fields", Price: price}},
		{"game with merch fields", CreateProductInput{
			Kind: constants.CategoryGame, Name: "Mixed", Price: price,
			Game:        &GameFields{Platform: "PC"},
			Merchandise: &MerchandiseFields{Size: "M"},
		}},
		{"merch without fields", CreateProductInput{Kind: constants.CategoryMerchandise, Name: "No Fields", Price: price}},
	}
	for _, tc := range cases {
		if _, err := svc.CreateProduct(ctx, tc.input); !errors.Is(err, ErrInvalidProductKind) {
			t.Fatalf("%s: expected ErrInvalidProductKind got %v", tc.name, err)
		}
	}
}

func TestCreateGameProductPopulatesExtension(t *testing.T) {
	svc, _ := setupCatalogServiceTest(t)
	ctx := context.Background()

	release := time.Date(2023, 9, 15, 0, 0, 0, 0, time.UTC)
	id, err := svc.CreateProduct(ctx, CreateProductInput{
		Kind:              constants.CategoryGame,
		Name:              "Crimson Orbit",
		Description:       "Tactical roguelike",
		Price:             models.NewMoneyFromDecimal(decimal.NewFromFloat(24.99)),
		InventoryQuantity: 10,
		Game:              &GameFields{Platform: "PC", ReleaseDate: &release},
	})
	if err != nil {
		t.Fatalf("create game product failed: %v", err)
	}

	product, err := svc.GetByID(ctx, id)
	if err != nil {
		t.Fatalf("get product failed: %v", err)
	}
	if product.Game == nil {
		t.Fatalf("game extension missing")
	}
	if product.Game.Platform != "PC" {
		t.Fatalf("platform want PC got %s", product.Game.Platform)
	}
	if product.Merchandise != nil {
		t.Fatalf("merchandise extension must be empty for game product")
	}
}

func TestCreateMerchandiseWithGameLink(t *testing.T) {
	svc, db := setupCatalogServiceTest(t)
	ctx := context.Background()

	gameID, err := svc.CreateProduct(ctx, CreateProductInput{
		Kind:  constants.CategoryGame,
		Name:  "Iron Harvest Moon",
		Price: models.NewMoneyFromDecimal(decimal.NewFromFloat(49.99)),
		Game:  &GameFields{Platform: "PC"},
	})
	if err != nil {
		t.Fatalf("create game failed: %v", err)
	}

	merchID, err := svc.CreateProduct(ctx, CreateProductInput{
		Kind:        constants.CategoryMerchandise,
		Name:        "Iron Harvest Moon Cap",
		Price:       models.NewMoneyFromDecimal(decimal.NewFromFloat(14.99)),
		Merchandise: &MerchandiseFields{Size: "One Size", Color: "Olive", GameID: gameID},
	})
	if err != nil {
		t.Fatalf("create merchandise failed: %v", err)
	}

	var ext models.MerchandiseExtension
	if err := db.Where("product_id = ?", merchID).First(&ext).Error; err != nil {
		t.Fatalf("reload merchandise extension failed: %v", err)
	}
	var link models.GameMerchandise
	if err := db.Where("merchandise_id = ? AND game_product_id = ?", ext.ID, gameID).First(&link).Error; err != nil {
		t.Fatalf("reload game link failed: %v", err)
	}
}

func TestCreateMerchandiseLinkToMissingGameRollsBack(t *testing.T) {
	svc, db := setupCatalogServiceTest(t)
	ctx := context.Background()

	name := "Phantom Circuit Scarf"
	productRepo := repository.NewProductRepository(db)
	beforeList, err := productRepo.SearchByName(name)
	if err != nil {
		t.Fatalf("search before failed: %v", err)
	}
	if len(beforeList) != 0 {
		t.Fatalf("unexpected pre-existing product")
	}

	_, err = svc.CreateProduct(ctx, CreateProductInput{
		Kind:        constants.CategoryMerchandise,
		Name:        name,
		Price:       models.NewMoneyFromDecimal(decimal.NewFromFloat(12.50)),
		Merchandise: &MerchandiseFields{Size: "M", Color: "Grey", GameID: 987654},
	})
	if !errors.Is(err, ErrInvalidProduct) {
		t.Fatalf("expected ErrInvalidProduct got %v", err)
	}

	afterList, err := productRepo.SearchByName(name)
	if err != nil {
		t.Fatalf("search after failed: %v", err)
	}
	if len(afterList) != 0 {
		t.Fatalf("rollback left %d product rows behind", len(afterList))
	}
}

func TestUpdateProductMissingRowFails(t *testing.T) {
	svc, _ := setupCatalogServiceTest(t)

	err := svc.UpdateProduct(context.Background(), UpdateProductInput{
		ProductID: 987653,
		Kind:      constants.CategoryGame,
		Name:      "Ghost Entry",
		Price:     models.NewMoneyFromDecimal(decimal.NewFromInt(10)),
		Game:      &GameFields{Platform: "PC"},
	})
	if !errors.Is(err, ErrWriteFailed) {
		t.Fatalf("expected ErrWriteFailed got %v", err)
	}
}

func TestDeleteProductMissingRow(t *testing.T) {
	svc, _ := setupCatalogServiceTest(t)

	err := svc.DeleteProduct(context.Background(), 987652)
	if !errors.Is(err, ErrProductNotFound) {
		t.Fatalf("expected ErrProductNotFound got %v", err)
	}
}

func TestDeleteProductRemovesExtension(t *testing.T) {
	svc, db := setupCatalogServiceTest(t)
	ctx := context.Background()

	id, err := svc.CreateProduct(ctx, CreateProductInput{
		Kind:  constants.CategoryGame,
		Name:  "Solstice Runner",
		Price: models.NewMoneyFromDecimal(decimal.NewFromFloat(34.99)),
		Game:  &GameFields{Platform: "Switch"},
	})
	if err != nil {
		t.Fatalf("create game failed: %v", err)
	}

	if err := svc.DeleteProduct(ctx, id); err != nil {
		t.Fatalf("delete product failed: %v", err)
	}

	if _, err := svc.GetByID(ctx, id); !errors.Is(err, ErrProductNotFound) {
		t.Fatalf("expected ErrProductNotFound got %v", err)
	}
	var extCount int64
	if err := db.Model(&models.GameExtension{}).Where("product_id = ?", id).Count(&extCount).Error; err != nil {
		t.Fatalf("count extensions failed: %v", err)
	}
	if extCount != 0 {
		t.Fatalf("extension count want 0 got %d", extCount)
	}
}
