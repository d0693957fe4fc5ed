package routes

import (
	"context"
	"log"
	"os"

	_ "frota_backoffice/docs" // This will be auto-generated
	"frota_backoffice/internal/adapter/http/handlers"
	"frota_backoffice/internal/adapter/persistence/kvstore"
	"frota_backoffice/internal/domain/entities"
	"frota_backoffice/internal/infrastructure/database"
	"frota_backoffice/internal/infrastructure/remote"
	"frota_backoffice/internal/usecase"
	"frota_backoffice/internal/usecase/interfaces"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

var router = gin.Default()

const defaultPort = "8080"

// Run will start the server
func Run() {
	setMiddlewares()

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	getRoutes()

	port := os.Getenv("PORT")
	if port == "" {
		port = defaultPort
	}
	if err := router.Run(":" + port); err != nil {
		log.Fatalf("Failed to startup the application: %v", err.Error())
	}
}

func getRoutes() {
	store := connectStore()
	sessions := connectSessionStore()

	employeeUseCase := usecase.NewEmployeeUseCase(store)
	authUseCase := usecase.NewAuthUseCase(employeeUseCase, sessions, jwtSecret())

	truckUseCase := usecase.NewTruckUseCase(store)
	customerUseCase := usecase.NewCustomerUseCase(store)
	productUseCase := usecase.NewProductUseCase(store)
	maintenanceUseCase := usecase.NewMaintenanceUseCase(store)
	deliveryUseCase := usecase.NewDeliveryUseCase(store)
	routeUseCase := usecase.NewRouteUseCase(store)
	cityUseCase := usecase.NewCityUseCase(store, connectCitiesRemote())
	chatLogUseCase := usecase.NewChatLogUseCase(store)
	chatUseCase := usecase.NewChatUseCase(store, chatLogUseCase)
	notificationUseCase := usecase.NewNotificationUseCase(store)
	settingsUseCase := usecase.NewSettingsUseCase(store)
	exportUseCase := usecase.NewExportUseCase(store)

	// The badge refreshers only care about writes to the collections that
	// feed them; everything else is ignored.
	store.Subscribe(func(key string) {
		switch key {
		case entities.CollectionNotifications, entities.CollectionChatMessages:
			log.Printf("[store] %s changed", key)
		}
	})

	cron := usecase.NewCronService(notificationUseCase, chatLogUseCase)
	cron.Start(context.Background())

	authHandler := handlers.NewAuthHandler(authUseCase)
	truckHandler := handlers.NewTruckHandler(truckUseCase)
	employeeHandler := handlers.NewEmployeeHandler(employeeUseCase)
	customerHandler := handlers.NewCustomerHandler(customerUseCase)
	deliveryHandler := handlers.NewDeliveryHandler(deliveryUseCase)
	routeHandler := handlers.NewRouteHandler(routeUseCase)
	cityHandler := handlers.NewCityHandler(cityUseCase)
	productHandler := handlers.NewProductHandler(productUseCase)
	maintenanceHandler := handlers.NewMaintenanceHandler(maintenanceUseCase)
	notificationHandler := handlers.NewNotificationHandler(notificationUseCase)
	chatHandler := handlers.NewChatHandler(chatUseCase, authUseCase, chatLogUseCase)
	exportHandler := handlers.NewExportHandler(exportUseCase)
	settingsHandler := handlers.NewSettingsHandler(settingsUseCase)

	// Rotas publicas
	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addAuthRoutes(v1, authHandler)

	// Rotas autenticadas
	private := router.Group("/v1")
	private.Use(authRequired(authUseCase))
	addSessionRoutes(private, authHandler)
	addTruckRoutes(private, truckHandler)
	addEmployeeRoutes(private, employeeHandler)
	addCustomerRoutes(private, customerHandler)
	addDeliveryRoutes(private, deliveryHandler)
	addRouteRoutes(private, routeHandler)
	addCityRoutes(private, cityHandler)
	addProductRoutes(private, productHandler)
	addMaintenanceRoutes(private, maintenanceHandler)
	addNotificationRoutes(private, notificationHandler)
	addChatRoutes(private, chatHandler)
	addExportRoutes(private, exportHandler)
	addSettingsRoutes(private, settingsHandler)
}

// connectStore picks the persistence backend. DynamoDB is the default;
// memory mode exists for local runs and tests. Whatever the backend, the
// store is wrapped so subscribers hear about writes.
func connectStore() *kvstore.PublishingStore {
	var backend interfaces.Store
	if os.Getenv("BACKOFFICE_STORAGE") == "memory" {
		log.Println("[store] using in-memory storage")
		backend = kvstore.NewMemoryStore()
	} else {
		ddb, err := database.ConnectDynamoDB(context.Background())
		if err != nil {
			log.Printf("[store] DynamoDB unavailable, falling back to memory: %v", err)
			backend = kvstore.NewMemoryStore()
		} else {
			backend = kvstore.NewFallbackStore(kvstore.NewDynamoStore(ddb))
		}
	}
	return kvstore.NewPublishingStore(backend)
}

func connectSessionStore() interfaces.SessionStore {
	redisURL := os.Getenv("REDIS_URL")
	if redisURL == "" {
		log.Println("[session] REDIS_URL not set, using in-memory sessions")
		return database.NewMemorySessionStore()
	}
	sessions, err := database.NewRedisSessionStore(redisURL)
	if err != nil {
		log.Printf("[session] Redis unavailable, using in-memory sessions: %v", err)
		return database.NewMemorySessionStore()
	}
	return sessions
}

func connectCitiesRemote() interfaces.ICitiesRemote {
	baseURL := os.Getenv("CITIES_API_URL")
	if baseURL == "" {
		log.Println("[cities] CITIES_API_URL not set, cities run local-only")
		return nil
	}
	return remote.NewCitiesClient(baseURL, os.Getenv("CITIES_API_TOKEN"))
}

func jwtSecret() string {
	if secret := os.Getenv("JWT_SECRET"); secret != "" {
		return secret
	}
	log.Println("[auth] JWT_SECRET not set, using development secret")
	return "frota-backoffice-dev"
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: false,
	}))
}
