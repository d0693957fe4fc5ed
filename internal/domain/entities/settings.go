package entities

// SystemSettings and NotificationSettings are singleton values, stored as
// plain JSON objects rather than arrays.
type SystemSettings struct {
	CompanyName     string `json:"companyName"`
	Timezone        string `json:"timezone"`
	Currency        string `json:"currency"`
	MaintenanceMode bool   `json:"maintenanceMode"`
}

type NotificationSettings struct {
	Enabled          bool `json:"enabled"`
	ScanIntervalSec  int  `json:"scanIntervalSec"`
	StalePendingDays int  `json:"stalePendingDays"`
	BadgeRefreshSec  int  `json:"badgeRefreshSec"`
}
