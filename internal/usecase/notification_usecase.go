package usecase

import (
	"context"
	"fmt"
	"time"

	"frota_backoffice/internal/domain/entities"
	"frota_backoffice/internal/usecase/interfaces"
)

const (
	notifTypeTruckMaintenance = "truck_maintenance"
	notifTypeStaleDelivery    = "stale_delivery"
)

// NotificationUseCase derives notifications from the state of the other
// collections and serves the badge. The scanner is idempotent: a
// notification is keyed by type+relatedId and never emitted twice for the
// same cause.
type NotificationUseCase struct {
	notifications *Collection[entities.Notification]
	trucks        *Collection[entities.Truck]
	deliveries    *Collection[entities.Delivery]
}

func NewNotificationUseCase(store interfaces.Store) *NotificationUseCase {
	return &NotificationUseCase{
		notifications: NewCollection(store, entities.CollectionNotifications,
			TimestampID[entities.Notification]("N"),
		),
		trucks: NewCollection(store, entities.CollectionTrucks,
			SequentialID[entities.Truck]("T", 2),
		),
		deliveries: NewCollection(store, entities.CollectionDeliveries,
			TimestampID[entities.Delivery]("D"),
		),
	}
}

type NotificationFilter struct {
	UnreadOnly bool
	Priority   string
}

func (u *NotificationUseCase) List(ctx context.Context, f NotificationFilter) []entities.Notification {
	rows := u.notifications.Load(ctx)
	if f.UnreadOnly {
		filtered := rows[:0:0]
		for _, n := range rows {
			if !n.Read {
				filtered = append(filtered, n)
			}
		}
		rows = filtered
	}
	rows = FilterByExactField(rows, f.Priority, func(n entities.Notification) string { return string(n.Priority) })
	return SortByDateDesc(rows, func(n entities.Notification) time.Time { return n.CreatedAt })
}

// BadgeCount is the unread total shown in the top bar.
func (u *NotificationUseCase) BadgeCount(ctx context.Context) int {
	count := 0
	for _, n := range u.notifications.Load(ctx) {
		if !n.Read {
			count++
		}
	}
	return count
}

func (u *NotificationUseCase) MarkRead(ctx context.Context, id string) (entities.Notification, error) {
	return u.notifications.Update(ctx, id, func(n entities.Notification) entities.Notification {
		n.Read = true
		return n
	})
}

func (u *NotificationUseCase) MarkAllRead(ctx context.Context) error {
	rows := u.notifications.Load(ctx)
	for i := range rows {
		rows[i].Read = true
	}
	return u.notifications.Replace(ctx, rows)
}

func (u *NotificationUseCase) Delete(ctx context.Context, id string) error {
	return u.notifications.Delete(ctx, id)
}

// Scan re-derives notifications from the current collections:
//   - a truck in "manutencao" raises an alta-priority notification
//   - a delivery still "pendente" past stalePendingDays raises a media one
//
// Returns how many new notifications were created.
func (u *NotificationUseCase) Scan(ctx context.Context, stalePendingDays int) (int, error) {
	existing := u.notifications.Load(ctx)
	known := make(map[string]bool, len(existing))
	for _, n := range existing {
		known[n.Type+":"+n.RelatedID] = true
	}

	created := 0
	emit := func(n entities.Notification) error {
		if known[n.Type+":"+n.RelatedID] {
			return nil
		}
		n.CreatedAt = time.Now().UTC()
		if _, err := u.notifications.Create(ctx, n); err != nil {
			return err
		}
		known[n.Type+":"+n.RelatedID] = true
		created++
		return nil
	}

	for _, t := range u.trucks.Load(ctx) {
		if t.Status != entities.TruckStatusManutencao {
			continue
		}
		if err := emit(entities.Notification{
			Type:      notifTypeTruckMaintenance,
			Title:     "Caminhão em manutenção",
			Message:   fmt.Sprintf("Caminhão %s (%s) está em manutenção", t.ID, t.Plate),
			Priority:  entities.PriorityAlta,
			RelatedID: t.ID,
		}); err != nil {
			return created, err
		}
	}

	staleCutoff := time.Now().UTC().AddDate(0, 0, -stalePendingDays).Format("2006-01-02")
	for _, d := range u.deliveries.Load(ctx) {
		if d.Status != entities.DeliveryStatusPendente || d.Date == "" || d.Date >= staleCutoff {
			continue
		}
		if err := emit(entities.Notification{
			Type:      notifTypeStaleDelivery,
			Title:     "Entrega pendente há muito tempo",
			Message:   fmt.Sprintf("Entrega %s pendente desde %s", d.TrackingCode, d.Date),
			Priority:  entities.PriorityMedia,
			RelatedID: d.ID,
		}); err != nil {
			return created, err
		}
	}
	return created, nil
}
