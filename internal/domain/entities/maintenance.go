package entities

import "time"

type MaintenanceStatus string

const (
	MaintenanceStatusPendente  MaintenanceStatus = "pendente"
	MaintenanceStatusConcluida MaintenanceStatus = "concluida"
)

// Maintenance rows are mostly created automatically when a truck moves into
// "manutencao"; Automatic records which ones.
type Maintenance struct {
	ID          string            `json:"id"`
	TruckID     string            `json:"truckId"`
	Description string            `json:"description,omitempty"`
	Status      MaintenanceStatus `json:"status"`
	Automatic   bool              `json:"automatic"`
	CreatedAt   time.Time         `json:"createdAt"`
	ClosedAt    *time.Time        `json:"closedAt,omitempty"`
}

func (m Maintenance) EntityID() string { return m.ID }

func (m Maintenance) WithEntityID(id string) Maintenance {
	m.ID = id
	return m
}
