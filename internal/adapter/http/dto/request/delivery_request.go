package request

import "frota_backoffice/internal/domain/entities"

type DeliveryCreateRequest struct {
	ID           string  `json:"id"`
	TrackingCode string  `json:"trackingCode"`
	CustomerID   string  `json:"customerId"`
	Status       string  `json:"status"`
	TotalValue   float64 `json:"totalValue"`
	Discount     float64 `json:"discount"`
	DriverID     string  `json:"driverId"`
	TruckID      string  `json:"truckId"`
	RouteID      string  `json:"routeId"`
	Date         string  `json:"date" binding:"required"`
}

func (r DeliveryCreateRequest) ToEntity() entities.Delivery {
	return entities.Delivery{
		ID:           r.ID,
		TrackingCode: r.TrackingCode,
		CustomerID:   r.CustomerID,
		Status:       entities.DeliveryStatus(r.Status),
		TotalValue:   r.TotalValue,
		Discount:     r.Discount,
		DriverID:     r.DriverID,
		TruckID:      r.TruckID,
		RouteID:      r.RouteID,
		Date:         r.Date,
	}
}

type MomentRequest struct {
	Type     string `json:"type" binding:"required"`
	DriverID string `json:"driverId"`
	Note     string `json:"note"`
}

type RouteCreateRequest struct {
	ID          string `json:"id"`
	Name        string `json:"name" binding:"required"`
	Origin      string `json:"origin" binding:"required"`
	Destination string `json:"destination" binding:"required"`
	DriverID    string `json:"driverId"`
	TruckID     string `json:"truckId"`
	Date        string `json:"date"`
}

func (r RouteCreateRequest) ToEntity() entities.Route {
	return entities.Route{
		ID:          r.ID,
		Name:        r.Name,
		Origin:      r.Origin,
		Destination: r.Destination,
		DriverID:    r.DriverID,
		TruckID:     r.TruckID,
		Date:        r.Date,
	}
}
