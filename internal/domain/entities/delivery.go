package entities

// DeliveryStatus is the lifecycle of a delivery. Transitions past
// "em_carregamento" are driven by driver-reported moments, not by edits.
type DeliveryStatus string

const (
	DeliveryStatusPendente       DeliveryStatus = "pendente"
	DeliveryStatusEmCarregamento DeliveryStatus = "em_carregamento"
	DeliveryStatusEmPercurso     DeliveryStatus = "em_percurso"
	DeliveryStatusEntregue       DeliveryStatus = "entregue"
	DeliveryStatusCancelada      DeliveryStatus = "cancelada"
)

func (s DeliveryStatus) Valid() bool {
	switch s {
	case DeliveryStatusPendente, DeliveryStatusEmCarregamento,
		DeliveryStatusEmPercurso, DeliveryStatusEntregue, DeliveryStatusCancelada:
		return true
	}
	return false
}

// Delivery references driver/truck/route by id only; a dangling reference is
// tolerated (existence checks happen in the use case, not in storage).
//
// Date is a "YYYY-MM-DD" string so range filters can compare it
// lexicographically, the same way the board screens filter it.
type Delivery struct {
	ID           string         `json:"id"`
	TrackingCode string         `json:"trackingCode"`
	CustomerID   string         `json:"customerId,omitempty"`
	Status       DeliveryStatus `json:"status"`
	TotalValue   float64        `json:"totalValue"`
	Discount     float64        `json:"discount"`
	DriverID     string         `json:"driverId,omitempty"`
	TruckID      string         `json:"truckId,omitempty"`
	RouteID      string         `json:"routeId,omitempty"`
	Date         string         `json:"date"`
}

func (d Delivery) EntityID() string { return d.ID }

func (d Delivery) WithEntityID(id string) Delivery {
	d.ID = id
	return d
}

// Revenue is the collectible value of the delivery.
func (d Delivery) Revenue() float64 { return d.TotalValue - d.Discount }
