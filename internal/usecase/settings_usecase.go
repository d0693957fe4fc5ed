package usecase

import (
	"context"

	"frota_backoffice/internal/adapter/persistence/kvstore"
	"frota_backoffice/internal/domain/entities"
	"frota_backoffice/internal/usecase/interfaces"
)

// SettingsUseCase reads and writes the singleton settings objects through
// the scalar side of the store contract.
type SettingsUseCase struct {
	store interfaces.Store
}

func NewSettingsUseCase(store interfaces.Store) *SettingsUseCase {
	return &SettingsUseCase{store: store}
}

func (u *SettingsUseCase) System(ctx context.Context) entities.SystemSettings {
	settings, ok := kvstore.GetScalar[entities.SystemSettings](ctx, u.store, entities.KeySystemSettings)
	if !ok {
		return entities.SystemSettings{
			CompanyName: "Frota Backoffice",
			Timezone:    "America/Sao_Paulo",
			Currency:    "BRL",
		}
	}
	return settings
}

func (u *SettingsUseCase) SaveSystem(ctx context.Context, settings entities.SystemSettings) error {
	return kvstore.PutScalar(ctx, u.store, entities.KeySystemSettings, settings)
}

func (u *SettingsUseCase) Notification(ctx context.Context) entities.NotificationSettings {
	settings, ok := kvstore.GetScalar[entities.NotificationSettings](ctx, u.store, entities.KeyNotificationSettings)
	if !ok {
		return entities.NotificationSettings{
			Enabled:          true,
			ScanIntervalSec:  30,
			StalePendingDays: 3,
			BadgeRefreshSec:  5,
		}
	}
	return settings
}

func (u *SettingsUseCase) SaveNotification(ctx context.Context, settings entities.NotificationSettings) error {
	return kvstore.PutScalar(ctx, u.store, entities.KeyNotificationSettings, settings)
}
