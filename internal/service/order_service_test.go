package service

import (
	"context"
	"errors"
	"testing"

	"github.com/pixelmart/internal/models"
	"github.com/pixelmart/internal/repository"

	"github.com/glebarez/sqlite"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

func setupOrderServiceTest(t *testing.T, enforceStock bool) (*OrderService, *gorm.DB) {
	t.Helper()
	db, err := gorm.Open(sqlite.Open("file::memory:?cache=shared"), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite failed: %v", err)
	}
	if err := db.AutoMigrate(&models.Product{}, &models.Order{}, &models.OrderItem{}); err != nil {
		t.Fatalf("migrate order tables failed: %v", err)
	}
	models.DB = db
	svc := NewOrderService(
		repository.NewOrderRepository(db),
		repository.NewProductRepository(db),
		nil,
		enforceStock,
		0,
	)
	return svc, db
}

func createStockedProduct(t *testing.T, db *gorm.DB, name string, inventory int) *models.Product {
	t.Helper()
	product := &models.Product{
		Name:              name,
		Price:             models.NewMoneyFromDecimal(decimal.NewFromFloat(19.99)),
		InventoryQuantity: inventory,
		Category:          "Game",
	}
	if err := db.Create(product).Error; err != nil {
		t.Fatalf("create product %s failed: %v", name, err)
	}
	return product
}

func TestCompleteOrderSharesTimestampAcrossHeaderAndItems(t *testing.T) {
	svc, db := setupOrderServiceTest(t, false)

	orderID, err := svc.CompleteOrder(context.Background(), CompleteOrderInput{
		UserID: 501,
		Items: []OrderLineItem{
			{ProductID: 41, Quantity: 2, Price: models.NewMoneyFromDecimal(decimal.NewFromFloat(19.99))},
			{ProductID: 42, Quantity: 1, Price: models.NewMoneyFromDecimal(decimal.NewFromFloat(5.50))},
		},
	})
	if err != nil {
		t.Fatalf("complete order failed: %v", err)
	}
	if orderID == 0 {
		t.Fatalf("order id want nonzero")
	}

	var order models.Order
	if err := db.Preload("Items").First(&order, orderID).Error; err != nil {
		t.Fatalf("reload order failed: %v", err)
	}
	if len(order.Items) != 2 {
		t.Fatalf("order item count want 2 got %d", len(order.Items))
	}
	if order.OrderDate.Nanosecond() != 0 {
		t.Fatalf("order date sub-second precision not truncated: %v", order.OrderDate)
	}
	for _, item := range order.Items {
		if !item.DateCreated.Equal(order.OrderDate) {
			t.Fatalf("item timestamp %v differs from order timestamp %v", item.DateCreated, order.OrderDate)
		}
	}
}

func TestCompleteOrderRejectsInvalidLine(t *testing.T) {
	svc, db := setupOrderServiceTest(t, false)

	_, err := svc.CompleteOrder(context.Background(), CompleteOrderInput{
		UserID: 502,
		Items: []OrderLineItem{
			{ProductID: 43, Quantity: 1, Price: models.NewMoneyFromDecimal(decimal.NewFromInt(10))},
			{ProductID: 44, Quantity: 0, Price: models.NewMoneyFromDecimal(decimal.NewFromInt(10))},
		},
	})
	if !errors.Is(err, ErrInvalidOrderItem) {
		t.Fatalf("expected ErrInvalidOrderItem got %v", err)
	}

	var count int64
	if err := db.Model(&models.Order{}).Where("user_id = ?", 502).Count(&count).Error; err != nil {
		t.Fatalf("count orders failed: %v", err)
	}
	if count != 0 {
		t.Fatalf("order count want 0 got %d", count)
	}
}

func TestCompleteOrderEnforceStockRollsBackWhenInsufficient(t *testing.T) {
	svc, db := setupOrderServiceTest(t, true)
	product := createStockedProduct(t, db, "Aurora Quest", 1)

	_, err := svc.CompleteOrder(context.Background(), CompleteOrderInput{
		UserID: 503,
		Items: []OrderLineItem{
			{ProductID: product.ID, Quantity: 2, Price: models.NewMoneyFromDecimal(decimal.NewFromFloat(19.99))},
		},
	})
	if !errors.Is(err, ErrInsufficientStock) {
		t.Fatalf("expected ErrInsufficientStock got %v", err)
	}

	var orderCount int64
	if err := db.Model(&models.Order{}).Where("user_id = ?", 503).Count(&orderCount).Error; err != nil {
		t.Fatalf("count orders failed: %v", err)
	}
	if orderCount != 0 {
		t.Fatalf("order count want 0 got %d", orderCount)
	}

	var got models.Product
	if err := db.First(&got, product.ID).Error; err != nil {
		t.Fatalf("reload product failed: %v", err)
	}
	if got.InventoryQuantity != 1 {
		t.Fatalf("inventory want 1 got %d", got.InventoryQuantity)
	}
}

func TestCompleteOrderEnforceStockDecrementsInventory(t *testing.T) {
	svc, db := setupOrderServiceTest(t, true)
	product := createStockedProduct(t, db, "Aurora Quest II", 5)

	if _, err := svc.CompleteOrder(context.Background(), CompleteOrderInput{
		UserID: 504,
		Items: []OrderLineItem{
			{ProductID: product.ID, Quantity: 3, Price: models.NewMoneyFromDecimal(decimal.NewFromFloat(19.99))},
		},
	}); err != nil {
		t.Fatalf("complete order failed: %v", err)
	}

	var got models.Product
	if err := db.First(&got, product.ID).Error; err != nil {
		t.Fatalf("reload product failed: %v", err)
	}
	if got.InventoryQuantity != 2 {
		t.Fatalf("inventory want 2 got %d", got.InventoryQuantity)
	}
}

func TestGetOrdersComputesTotalsAndGroups(t *testing.T) {
	svc, _ := setupOrderServiceTest(t, false)
	ctx := context.Background()

	firstID, err := svc.CompleteOrder(ctx, CompleteOrderInput{
		UserID: 505,
		Items: []OrderLineItem{
			{ProductID: 51, Quantity: 2, Price: models.NewMoneyFromDecimal(decimal.NewFromFloat(19.99))},
			{ProductID: 52, Quantity: 1, Price: models.NewMoneyFromDecimal(decimal.NewFromFloat(5.50))},
		},
	})
	if err != nil {
		t.Fatalf("complete first order failed: %v", err)
	}
	secondID, err := svc.CompleteOrder(ctx, CompleteOrderInput{
		UserID: 505,
		Items: []OrderLineItem{
			{ProductID: 53, Quantity: 1, Price: models.NewMoneyFromDecimal(decimal.NewFromFloat(100))},
		},
	})
	if err != nil {
		t.Fatalf("complete second order failed: %v", err)
	}

	orders, err := svc.GetOrders(ctx, 505)
	if err != nil {
		t.Fatalf("get orders failed: %v", err)
	}
	if len(orders) != 2 {
		t.Fatalf("order count want 2 got %d", len(orders))
	}

	totals := map[uint]string{}
	itemCounts := map[uint]int{}
	for _, order := range orders {
		totals[order.ID] = order.TotalPrice.StringFixed(2)
		itemCounts[order.ID] = len(order.Items)
	}
	if totals[firstID] != "45.48" {
		t.Fatalf("first order total want 45.48 got %s", totals[firstID])
	}
	if itemCounts[firstID] != 2 {
		t.Fatalf("first order item count want 2 got %d", itemCounts[firstID])
	}
	if totals[secondID] != "100.00" {
		t.Fatalf("second order total want 100.00 got %s", totals[secondID])
	}
}

func TestGetOrdersForUserWithoutOrders(t *testing.T) {
	svc, _ := setupOrderServiceTest(t, false)

	_, err := svc.GetOrders(context.Background(), 506)
	if !errors.Is(err, ErrOrderNotFound) {
		t.Fatalf("expected ErrOrderNotFound got %v", err)
	}
}
