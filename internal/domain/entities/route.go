package entities

import "time"

// MomentType is a driver-reported event on a route.
type MomentType string

const (
	MomentSaida   MomentType = "saida"
	MomentEntrega MomentType = "entrega"
)

func (m MomentType) Valid() bool {
	return m == MomentSaida || m == MomentEntrega
}

// Moment is appended to the owning route and cascades a status change to the
// route's deliveries: saida moves them to em_percurso, entrega to entregue.
type Moment struct {
	Type       MomentType `json:"type"`
	DriverID   string     `json:"driverId"`
	Note       string     `json:"note,omitempty"`
	ReportedAt time.Time  `json:"reportedAt"`
}

type RouteStatus string

const (
	RouteStatusPlanejada   RouteStatus = "planejada"
	RouteStatusEmAndamento RouteStatus = "em_andamento"
	RouteStatusConcluida   RouteStatus = "concluida"
)

type Route struct {
	ID          string      `json:"id"`
	Name        string      `json:"name"`
	Origin      string      `json:"origin"`
	Destination string      `json:"destination"`
	DriverID    string      `json:"driverId,omitempty"`
	TruckID     string      `json:"truckId,omitempty"`
	Status      RouteStatus `json:"status"`
	Date        string      `json:"date"`
	Moments     []Moment    `json:"moments,omitempty"`
}

func (r Route) EntityID() string { return r.ID }

func (r Route) WithEntityID(id string) Route {
	r.ID = id
	return r
}
