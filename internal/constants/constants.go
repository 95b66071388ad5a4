package constants

// 商品类别常量（与子类型表一一对应）
const (
	CategoryGame        = "Game"
	CategoryMerchandise = "Merchandise"
)

// 订单状态常量
const (
	OrderStatusCompleted = "completed"
)

// 地址类型常量
const (
	AddressTypeShipping = "shipping"
	AddressTypeBilling  = "billing"
)

// 队列名称常量
const (
	QueueDefault = "default"
)

// 异步任务类型常量
const (
	TaskOrderConfirmationEmail = "order:confirmation_email"
)
