package app

import (
	catalogHandler "shopadmin-service/internal/handlers/catalog"
	dealHandler "shopadmin-service/internal/handlers/deal"
	displayHandler "shopadmin-service/internal/handlers/display"
	notifyHandler "shopadmin-service/internal/handlers/notification"
	orderHandler "shopadmin-service/internal/handlers/order"
	promoHandler "shopadmin-service/internal/handlers/promo"
	storefrontHandler "shopadmin-service/internal/handlers/storefront"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type Handlers struct {
	CategoryHandler   *catalogHandler.CategoryHandler
	ProductHandler    *catalogHandler.ProductHandler
	DealHandler       *dealHandler.DealHandler
	BannerHandler     *displayHandler.BannerHandler
	SectionHandler    *displayHandler.SectionHandler
	PromoHandler      *promoHandler.PromoHandler
	OrderHandler      *orderHandler.OrderHandler
	NotifHandler      *notifyHandler.NotificationHandler
	StorefrontHandler *storefrontHandler.StorefrontHandler
}

func SetupRouter(r *gin.Engine, logger *zap.Logger, h *Handlers) {
	api := r.Group("/api/v1")

	// ==================== Health Check ====================
	api.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok", "version": "1.0.0"})
	})

	// ==================== Storefront (public) ====================
	api.GET("/storefront/home", h.StorefrontHandler.HomeFeed)

	// ==================== Categories ====================
	categories := api.Group("/categories")
	{
		categories.POST("", h.CategoryHandler.CreateCategory)
		categories.GET("", h.CategoryHandler.ListCategories)
		categories.GET("/:id", h.CategoryHandler.GetCategory)
		categories.PUT("/:id", h.CategoryHandler.UpdateCategory)
		categories.DELETE("/:id", h.CategoryHandler.DeleteCategory)

		categories.POST("/:id/subcategories", h.CategoryHandler.CreateSubcategory)
		categories.GET("/:id/subcategories", h.CategoryHandler.ListSubcategories)
	}

	subcategories := api.Group("/subcategories")
	{
		subcategories.GET("/:id", h.CategoryHandler.GetSubcategory)
		subcategories.PUT("/:id", h.CategoryHandler.UpdateSubcategory)
		subcategories.DELETE("/:id", h.CategoryHandler.DeleteSubcategory)
	}

	// ==================== Products ====================
	products := api.Group("/products")
	{
		products.POST("", h.ProductHandler.CreateProduct)
		products.GET("", h.ProductHandler.ListProducts)
		products.GET("/:id", h.ProductHandler.GetProduct)
		products.PUT("/:id", h.ProductHandler.UpdateProduct)
		products.PUT("/:id/status", h.ProductHandler.UpdateProductStatus)
		products.DELETE("/:id", h.ProductHandler.DeleteProduct)
	}

	// ==================== Deals ====================
	deals := api.Group("/deals")
	{
		deals.POST("", h.DealHandler.CreateDeal)
		deals.GET("", h.DealHandler.ListDeals)
		deals.GET("/:id", h.DealHandler.GetDeal)
		deals.PUT("/:id", h.DealHandler.UpdateDeal)
		deals.PUT("/:id/status", h.DealHandler.UpdateDealStatus)
		deals.DELETE("/:id", h.DealHandler.DeleteDeal)
	}

	// ==================== Banners ====================
	banners := api.Group("/banners")
	{
		banners.POST("", h.BannerHandler.CreateBanner)
		banners.GET("", h.BannerHandler.ListBanners)
		banners.GET("/:id", h.BannerHandler.GetBanner)
		banners.PUT("/:id", h.BannerHandler.UpdateBanner)
		banners.DELETE("/:id", h.BannerHandler.DeleteBanner)
		banners.POST("/sweep", h.BannerHandler.SweepBannerStatuses)
	}

	// ==================== Homepage Sections ====================
	sections := api.Group("/sections")
	{
		sections.POST("", h.SectionHandler.CreateSection)
		sections.GET("", h.SectionHandler.ListSections)
		sections.GET("/:id", h.SectionHandler.GetSection)
		sections.PUT("/:id", h.SectionHandler.UpdateSection)
		sections.DELETE("/:id", h.SectionHandler.DeleteSection)
	}

	// ==================== Promo Codes ====================
	promos := api.Group("/promos")
	{
		promos.POST("", h.PromoHandler.CreatePromo)
		promos.GET("", h.PromoHandler.ListPromos)
		promos.GET("/:id", h.PromoHandler.GetPromo)
		promos.PUT("/:id", h.PromoHandler.UpdatePromo)
		promos.DELETE("/:id", h.PromoHandler.DeletePromo)
		promos.GET("/validate/:code", h.PromoHandler.ValidatePromo)
	}

	// ==================== Orders ====================
	orders := api.Group("/orders")
	{
		orders.POST("", h.OrderHandler.CreateOrder)
		orders.GET("", h.OrderHandler.ListOrders)
		orders.GET("/:id", h.OrderHandler.GetOrder)
		orders.GET("/reference/:reference", h.OrderHandler.GetOrderByReference)
		orders.PUT("/:id/status", h.OrderHandler.UpdateOrderStatus)
	}

	// ==================== Notifications ====================
	notifications := api.Group("/notifications")
	{
		notifications.POST("", h.NotifHandler.CreateNotification)
		notifications.GET("", h.NotifHandler.ListNotifications)
		notifications.GET("/latest", h.NotifHandler.LatestNotifications)
		notifications.GET("/count/unread", h.NotifHandler.UnreadCount)
		notifications.PUT("/:id/read", h.NotifHandler.MarkRead)
		notifications.PUT("/read-all", h.NotifHandler.MarkAllRead)
		notifications.DELETE("/:id", h.NotifHandler.DeleteNotification)
	}
}
