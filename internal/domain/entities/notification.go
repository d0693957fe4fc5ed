package entities

import "time"

type NotificationPriority string

const (
	PriorityBaixa   NotificationPriority = "baixa"
	PriorityMedia   NotificationPriority = "media"
	PriorityAlta    NotificationPriority = "alta"
	PriorityUrgente NotificationPriority = "urgente"
)

// Notification is derived by the periodic scanner from the state of other
// collections. RelatedID points at the record that caused it and is used to
// avoid emitting the same notification twice.
type Notification struct {
	ID        string               `json:"id"`
	Type      string               `json:"type"`
	Title     string               `json:"title"`
	Message   string               `json:"message"`
	Priority  NotificationPriority `json:"priority"`
	Read      bool                 `json:"read"`
	RelatedID string               `json:"relatedId,omitempty"`
	CreatedAt time.Time            `json:"createdAt"`
}

func (n Notification) EntityID() string { return n.ID }

func (n Notification) WithEntityID(id string) Notification {
	n.ID = id
	return n
}
