package entities

// Collection names as they appear in the key-value store. Every collection
// holds a JSON array; the settings keys hold single JSON objects.
const (
	CollectionTrucks        = "trucks"
	CollectionEmployees     = "employees"
	CollectionCustomers     = "customers"
	CollectionDeliveries    = "deliveries"
	CollectionCities        = "cities"
	CollectionProducts      = "products"
	CollectionRoutes        = "routes"
	CollectionMaintenance   = "maintenance"
	CollectionNotifications = "notifications"
	CollectionChatMessages  = "employeeMessages"
	CollectionChatLogs      = "chatActionLogs"
	CollectionChatBackups   = "chatBackupLogs"

	KeySystemSettings       = "systemSettings"
	KeyNotificationSettings = "notificationSettings"
	KeySessionUserPrefix    = "session:"
)
