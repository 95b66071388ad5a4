package service

import (
	"context"
	"time"

	"github.com/pixelmart/internal/constants"
	"github.com/pixelmart/internal/logger"
	"github.com/pixelmart/internal/models"
	"github.com/pixelmart/internal/queue"
	"github.com/pixelmart/internal/repository"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// OrderLineItem 下单行项（调用方提供的快照，本服务不读取购物车）
type OrderLineItem struct {
	ProductID uint
	Quantity  int
	Price     models.Money
}

// CompleteOrderInput 下单输入
type CompleteOrderInput struct {
	UserID uint
	Items  []OrderLineItem
}

// OrderService 订单服务
type OrderService struct {
	orderRepo    repository.OrderRepository
	productRepo  repository.ProductRepository
	queueClient  *queue.Client
	enforceStock bool
	txTimeout    time.Duration
}

// NewOrderService 创建订单服务
func NewOrderService(orderRepo repository.OrderRepository, productRepo repository.ProductRepository, queueClient *queue.Client, enforceStock bool, txTimeout time.Duration) *OrderService {
	return &OrderService{
		orderRepo:    orderRepo,
		productRepo:  productRepo,
		queueClient:  queueClient,
		enforceStock: enforceStock,
		txTimeout:    txTimeout,
	}
}

// CompleteOrder 下单：订单头与全部订单项在同一事务内写入，
// 任何一步失败整体回滚，不产生可见的半个订单。
// 时间戳在服务端取一次（UTC，秒级精度），订单头与订单项共用。
// 返回生成的订单 ID。
func (s *OrderService) CompleteOrder(ctx context.Context, input CompleteOrderInput) (uint, error) {
	if input.UserID == 0 {
		return 0, ErrInvalidUser
	}
	if len(input.Items) == 0 {
		return 0, ErrInvalidOrderItem
	}
	for _, item := range input.Items {
		if item.ProductID == 0 || item.Quantity <= 0 {
			return 0, ErrInvalidOrderItem
		}
	}

	orderDate := time.Now().UTC().Truncate(time.Second)
	order := &models.Order{
		UserID:    input.UserID,
		Status:    constants.OrderStatusCompleted,
		OrderDate: orderDate,
	}

	err := models.WithTransaction(ctx, s.txTimeout, func(tx *gorm.DB) error {
		orderRepo := s.orderRepo.WithTx(tx)
		rows, err := orderRepo.Create(order)
		if err != nil {
			return err
		}
		if rows == 0 {
			return ErrWriteFailed
		}
		for _, item := range input.Items {
			rows, err = orderRepo.CreateItem(&models.OrderItem{
				OrderID:     order.ID,
				ProductID:   item.ProductID,
				Quantity:    item.Quantity,
				Price:       item.Price,
				DateCreated: orderDate,
			})
			if err != nil {
				return err
			}
			if rows == 0 {
				return ErrWriteFailed
			}
		}
		if s.enforceStock {
			productRepo := s.productRepo.WithTx(tx)
			for _, item := range input.Items {
				rows, err = productRepo.DecrementInventory(item.ProductID, item.Quantity)
				if err != nil {
					return err
				}
				if rows == 0 {
					return ErrInsufficientStock
				}
			}
		}
		return nil
	})
	if err != nil {
		return 0, err
	}

	// 通知在事务提交之后入队，失败只记录日志不影响订单结果
	if s.queueClient != nil {
		if err := s.queueClient.EnqueueOrderConfirmationEmail(queue.OrderConfirmationEmailPayload{
			OrderID: order.ID,
			UserID:  order.UserID,
		}); err != nil {
			logger.Warnw("order_enqueue_confirmation_email_failed",
				"order_id", order.ID,
				"error", err,
			)
		}
	}

	return order.ID, nil
}

// GetOrders 两步读取用户订单：先取订单头，再按订单 ID 批量取订单项，
// 在内存中归组并计算各订单的合计金额（price*quantity 之和）。
// 用户没有任何订单时返回 ErrOrderNotFound。
func (s *OrderService) GetOrders(ctx context.Context, userID uint) ([]models.Order, error) {
	if userID == 0 {
		return nil, ErrInvalidUser
	}

	var orders []models.Order
	err := models.WithConnection(ctx, func(db *gorm.DB) error {
		repo := s.orderRepo.WithTx(db)
		var err error
		orders, err = repo.ListByUser(userID)
		if err != nil {
			return err
		}
		if len(orders) == 0 {
			return ErrOrderNotFound
		}

		orderIDs := make([]uint, 0, len(orders))
		for _, order := range orders {
			orderIDs = append(orderIDs, order.ID)
		}
		items, err := repo.ListItemsByOrderIDs(orderIDs)
		if err != nil {
			return err
		}

		grouped := make(map[uint][]models.OrderItem, len(orders))
		for _, item := range items {
			grouped[item.OrderID] = append(grouped[item.OrderID], item)
		}
		for i := range orders {
			orders[i].Items = grouped[orders[i].ID]
			total := decimal.Zero
			for _, item := range orders[i].Items {
				total = total.Add(item.Price.Mul(decimal.NewFromInt(int64(item.Quantity))))
			}
			orders[i].TotalPrice = models.NewMoneyFromDecimal(total)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return orders, nil
}
