package provider

import (
	"time"

	"github.com/pixelmart/internal/cache"
	"github.com/pixelmart/internal/config"
	"github.com/pixelmart/internal/logger"
	"github.com/pixelmart/internal/models"
	"github.com/pixelmart/internal/queue"
	"github.com/pixelmart/internal/repository"
	"github.com/pixelmart/internal/service"
)

// OrderNotification 订单通知所需的数据摘要
type OrderNotification struct {
	OrderID   uint
	Email     string
	FirstName string
	Total     models.Money
	Items     []models.OrderItem
}

// OrderNotifier 外部通知方契约。核心只汇总数据，不负责发送。
type OrderNotifier interface {
	NotifyOrderConfirmed(notification OrderNotification) error
}

// LogOrderNotifier 默认通知实现：只把摘要写入日志，
// 供外部系统对接前占位。
type LogOrderNotifier struct{}

// NotifyOrderConfirmed 记录订单确认摘要
func (LogOrderNotifier) NotifyOrderConfirmed(n OrderNotification) error {
	logger.Infow("order_confirmation_ready",
		"order_id", n.OrderID,
		"receiver_email", n.Email,
		"total", n.Total.String(),
		"item_count", len(n.Items),
	)
	return nil
}

// Container 依赖注入容器
type Container struct {
	Config      *config.Config
	QueueClient *queue.Client

	// Repositories
	UserRepo     repository.UserRepository
	ProductRepo  repository.ProductRepository
	CartRepo     repository.CartRepository
	OrderRepo    repository.OrderRepository
	ReviewRepo   repository.ReviewRepository
	AddressRepo  repository.AddressRepository
	WishlistRepo repository.WishlistRepository

	// Services
	CatalogService  *service.CatalogService
	CartService     *service.CartService
	OrderService    *service.OrderService
	ReviewService   *service.ReviewService
	AddressService  *service.AddressService
	WishlistService *service.WishlistService

	// 外部协作方
	OrderNotifier OrderNotifier
}

// NewContainer 初始化容器
func NewContainer(cfg *config.Config) *Container {
	// 初始化缓存
	if err := cache.InitRedis(&cfg.Redis); err != nil {
		logger.Warnw("provider_init_redis_failed", "error", err)
	}

	// 初始化队列客户端
	var queueClient *queue.Client
	if cfg.Queue.Enabled {
		qc, err := queue.NewClient(&cfg.Queue)
		if err != nil {
			logger.Errorw("provider_init_queue_client_failed", "error", err)
		} else {
			queueClient = qc
		}
	}

	c := &Container{
		Config:        cfg,
		QueueClient:   queueClient,
		OrderNotifier: LogOrderNotifier{},
	}

	// 1. 初始化 Repositories
	c.initRepositories()

	// 2. 初始化 Services
	c.initServices()

	return c
}

func (c *Container) initRepositories() {
	db := models.DB
	c.UserRepo = repository.NewUserRepository(db)
	c.ProductRepo = repository.NewProductRepository(db)
	c.CartRepo = repository.NewCartRepository(db)
	c.OrderRepo = repository.NewOrderRepository(db)
	c.ReviewRepo = repository.NewReviewRepository(db)
	c.AddressRepo = repository.NewAddressRepository(db)
	c.WishlistRepo = repository.NewWishlistRepository(db)
}

func (c *Container) initServices() {
	txTimeout := time.Duration(c.Config.Checkout.TimeoutSeconds) * time.Second
	cacheTTL := time.Duration(c.Config.Catalog.CacheTTLSeconds) * time.Second

	c.CatalogService = service.NewCatalogService(c.ProductRepo, cacheTTL, txTimeout)
	c.CartService = service.NewCartService(c.CartRepo, txTimeout)
	c.OrderService = service.NewOrderService(c.OrderRepo, c.ProductRepo, c.QueueClient, c.Config.Checkout.EnforceStock, txTimeout)
	c.ReviewService = service.NewReviewService(c.ReviewRepo, txTimeout)
	c.AddressService = service.NewAddressService(c.AddressRepo, txTimeout)
	c.WishlistService = service.NewWishlistService(c.WishlistRepo, txTimeout)
}
