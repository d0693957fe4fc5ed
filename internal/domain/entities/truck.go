package entities

// TruckStatus represents the operational state of a truck.
//
// Domain notes:
//   - "manutencao" is special: moving a truck into it auto-creates a
//     pending Maintenance record for the fleet board.
type TruckStatus string

const (
	TruckStatusDisponivel TruckStatus = "disponivel"
	TruckStatusEmRota     TruckStatus = "em_rota"
	TruckStatusParado     TruckStatus = "parado"
	TruckStatusManutencao TruckStatus = "manutencao"
)

func (s TruckStatus) Valid() bool {
	switch s {
	case TruckStatusDisponivel, TruckStatusEmRota, TruckStatusParado, TruckStatusManutencao:
		return true
	}
	return false
}

// Truck is a fleet vehicle. Image carries a data-URI thumbnail uploaded by
// the back-office; it is stored verbatim.
type Truck struct {
	ID       string      `json:"id"`
	Plate    string      `json:"plate"`
	Model    string      `json:"model"`
	Year     int         `json:"year"`
	Capacity float64     `json:"capacity"`
	Mileage  float64     `json:"mileage"`
	Status   TruckStatus `json:"status"`
	DriverID string      `json:"driverId,omitempty"`
	Image    string      `json:"image,omitempty"`
}

func (t Truck) EntityID() string { return t.ID }

func (t Truck) WithEntityID(id string) Truck {
	t.ID = id
	return t
}
