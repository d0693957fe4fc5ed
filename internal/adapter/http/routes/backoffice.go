package routes

import (
	"frota_backoffice/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

func addPingRoutes(rg *gin.RouterGroup) {
	rg.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{"message": "pong"})
	})
}

func addAuthRoutes(rg *gin.RouterGroup, h *handlers.AuthHandler) {
	rg.POST("/auth/login", h.Login)
}

func addSessionRoutes(rg *gin.RouterGroup, h *handlers.AuthHandler) {
	rg.GET("/session", h.Session)
	rg.POST("/auth/logout", h.Logout)
}

func addTruckRoutes(rg *gin.RouterGroup, h *handlers.TruckHandler) {
	trucks := rg.Group("/trucks")
	{
		trucks.GET("", h.List)
		trucks.GET("/stats", h.Stats)
		trucks.GET("/:id", h.Get)
		trucks.POST("", h.Create)
		trucks.PUT("/:id", h.Update)
		trucks.PATCH("/:id/status", h.UpdateStatus)
		trucks.DELETE("/:id", h.Delete)
	}
}

func addEmployeeRoutes(rg *gin.RouterGroup, h *handlers.EmployeeHandler) {
	employees := rg.Group("/employees")
	{
		employees.GET("", h.List)
		employees.GET("/:id", h.Get)
		employees.POST("", h.Create)
		employees.PUT("/:id", h.Update)
		employees.DELETE("/:id", h.Delete)
	}
}

func addCustomerRoutes(rg *gin.RouterGroup, h *handlers.CustomerHandler) {
	customers := rg.Group("/customers")
	{
		customers.GET("", h.List)
		customers.GET("/:id", h.Get)
		customers.POST("", h.Create)
		customers.PUT("/:id", h.Update)
		customers.DELETE("/:id", h.Delete)
	}
}

func addDeliveryRoutes(rg *gin.RouterGroup, h *handlers.DeliveryHandler) {
	deliveries := rg.Group("/deliveries")
	{
		deliveries.GET("", h.List)
		deliveries.GET("/stats", h.Stats)
		deliveries.GET("/:id", h.Get)
		deliveries.POST("", h.Create)
		deliveries.PUT("/:id", h.Update)
		deliveries.POST("/:id/moments", h.RegisterMoment)
		deliveries.DELETE("/:id", h.Delete)
	}
}

func addRouteRoutes(rg *gin.RouterGroup, h *handlers.RouteHandler) {
	routes := rg.Group("/routes")
	{
		routes.GET("", h.List)
		routes.GET("/:id", h.Get)
		routes.POST("", h.Create)
		routes.PUT("/:id", h.Update)
		routes.POST("/:id/moments", h.RegisterMoment)
		routes.DELETE("/:id", h.Delete)
	}
}

func addCityRoutes(rg *gin.RouterGroup, h *handlers.CityHandler) {
	cities := rg.Group("/cities")
	{
		cities.GET("", h.List)
		cities.POST("", h.Create)
		cities.PUT("/:id", h.Update)
		cities.DELETE("/:id", h.Delete)
	}
}

func addProductRoutes(rg *gin.RouterGroup, h *handlers.ProductHandler) {
	products := rg.Group("/products")
	{
		products.GET("", h.List)
		products.GET("/:id", h.Get)
		products.POST("", h.Create)
		products.PUT("/:id", h.Update)
		products.DELETE("/:id", h.Delete)
	}
}

func addMaintenanceRoutes(rg *gin.RouterGroup, h *handlers.MaintenanceHandler) {
	maintenance := rg.Group("/maintenance")
	{
		maintenance.GET("", h.List)
		maintenance.POST("", h.Create)
		maintenance.PATCH("/:id/complete", h.Complete)
		maintenance.DELETE("/:id", h.Delete)
	}
}

func addNotificationRoutes(rg *gin.RouterGroup, h *handlers.NotificationHandler) {
	notifications := rg.Group("/notifications")
	{
		notifications.GET("", h.List)
		notifications.GET("/badge", h.Badge)
		notifications.POST("/scan", h.Scan)
		notifications.PATCH("/read-all", h.MarkAllRead)
		notifications.PATCH("/:id/read", h.MarkRead)
		notifications.DELETE("/:id", h.Delete)
	}
}

func addChatRoutes(rg *gin.RouterGroup, h *handlers.ChatHandler) {
	chat := rg.Group("/chat")
	{
		chat.POST("/messages", h.Send)
		chat.GET("/conversations", h.Conversations)
		chat.PATCH("/conversations/:key/read", h.MarkRead)
		chat.DELETE("/conversations/:key", h.DeleteConversation)
		chat.GET("/badge", h.Badge)
		chat.GET("/logs", h.Logs)
	}
}

func addExportRoutes(rg *gin.RouterGroup, h *handlers.ExportHandler) {
	exports := rg.Group("/exports")
	{
		exports.GET("/:collection/csv", h.CSV)
		exports.GET("/:collection/json", h.JSON)
	}
}

func addSettingsRoutes(rg *gin.RouterGroup, h *handlers.SettingsHandler) {
	settings := rg.Group("/settings")
	{
		settings.GET("/system", h.GetSystem)
		settings.PUT("/system", h.PutSystem)
		settings.GET("/notifications", h.GetNotification)
		settings.PUT("/notifications", h.PutNotification)
	}
}
