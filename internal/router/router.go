package router

import (
	"github.com/pixelmart/internal/config"
	publichandlers "github.com/pixelmart/internal/http/handlers/public"
	"github.com/pixelmart/internal/logger"
	"github.com/pixelmart/internal/provider"

	"github.com/gin-gonic/gin"
)

// SetupRouter 初始化路由
func SetupRouter(cfg *config.Config, c *provider.Container) *gin.Engine {
	log := logger.L
	if log == nil {
		log = logger.Init(cfg.Server.Mode, cfg.Log.ToLoggerOptions())
	}
	r := gin.New()

	publicHandler := publichandlers.New(c)

	// 中间件
	r.Use(gin.Recovery())
	r.Use(RequestIDMiddleware())
	r.Use(LoggerMiddleware(log))
	r.Use(CORSMiddleware(cfg.CORS))

	// API 路由组
	apiV1 := r.Group("/api/v1")
	{
		// 公开接口（商品目录读取无需登录）
		public := apiV1.Group("/public")
		{
			public.GET("/products", publicHandler.ListProducts)
			public.GET("/products/search", publicHandler.SearchProducts)
			public.GET("/products/:product_id", publicHandler.GetProduct)
			public.GET("/products/:product_id/reviews", publicHandler.ListProductReviews)
		}

		// 目录管理接口（目录后台直接调用商品目录存储）
		catalog := apiV1.Group("/catalog")
		{
			catalog.POST("/products", publicHandler.CreateProduct)
			catalog.PUT("/products/:product_id", publicHandler.UpdateProduct)
			catalog.DELETE("/products/:product_id", publicHandler.DeleteProduct)
		}

		// 用户接口（身份由鉴权中间件注入）
		user := apiV1.Group("/user")
		user.Use(UserJWTAuthMiddleware(cfg.UserJWT.SecretKey, c.UserRepo))
		{
			user.GET("/cart", publicHandler.GetCart)
			user.POST("/cart/items", publicHandler.AddCartItem)
			user.PUT("/cart/items", publicHandler.UpdateCartItemQuantity)
			user.DELETE("/cart/items/:cart_item_id", publicHandler.DeleteCartItem)
			user.DELETE("/cart", publicHandler.EmptyCart)

			user.POST("/orders/checkout", publicHandler.Checkout)
			user.GET("/orders", publicHandler.ListOrders)

			user.POST("/reviews", publicHandler.AddReview)
			user.GET("/reviews", publicHandler.ListUserReviews)

			user.POST("/addresses", publicHandler.CreateAddress)
			user.GET("/addresses", publicHandler.ListAddresses)
			user.PUT("/addresses/:address_id", publicHandler.UpdateAddress)
			user.DELETE("/addresses/:address_id", publicHandler.DeleteAddress)

			user.POST("/wishlist", publicHandler.AddWishlistItem)
			user.GET("/wishlist", publicHandler.ListWishlist)
			user.DELETE("/wishlist/:product_id", publicHandler.RemoveWishlistItem)
		}
	}

	return r
}
