package request

import "frota_backoffice/internal/domain/entities"

type TruckCreateRequest struct {
	ID       string  `json:"id"`
	Plate    string  `json:"plate" binding:"required"`
	Model    string  `json:"model" binding:"required"`
	Year     int     `json:"year"`
	Capacity float64 `json:"capacity"`
	Mileage  float64 `json:"mileage"`
	Status   string  `json:"status"`
	DriverID string  `json:"driverId"`
	Image    string  `json:"image"`
}

func (r TruckCreateRequest) ToEntity() entities.Truck {
	return entities.Truck{
		ID:       r.ID,
		Plate:    r.Plate,
		Model:    r.Model,
		Year:     r.Year,
		Capacity: r.Capacity,
		Mileage:  r.Mileage,
		Status:   entities.TruckStatus(r.Status),
		DriverID: r.DriverID,
		Image:    r.Image,
	}
}

type TruckStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

type EmployeeCreateRequest struct {
	ID     string `json:"id"`
	Name   string `json:"name" binding:"required"`
	Email  string `json:"email" binding:"required"`
	Role   string `json:"role"`
	Status string `json:"status"`
	Photo  string `json:"photo"`
}

func (r EmployeeCreateRequest) ToEntity() entities.Employee {
	return entities.Employee{
		ID:     r.ID,
		Name:   r.Name,
		Email:  r.Email,
		Role:   entities.EmployeeRole(r.Role),
		Status: r.Status,
		Photo:  r.Photo,
	}
}

type CustomerCreateRequest struct {
	ID       string           `json:"id"`
	Name     string           `json:"name" binding:"required"`
	Document string           `json:"document" binding:"required"`
	Type     string           `json:"type" binding:"required"`
	Email    string           `json:"email"`
	Phone    string           `json:"phone"`
	Address  entities.Address `json:"address"`
	Status   string           `json:"status"`
}

func (r CustomerCreateRequest) ToEntity() entities.Customer {
	return entities.Customer{
		ID:       r.ID,
		Name:     r.Name,
		Document: r.Document,
		Type:     entities.CustomerType(r.Type),
		Email:    r.Email,
		Phone:    r.Phone,
		Address:  r.Address,
		Status:   r.Status,
	}
}

type ProductCreateRequest struct {
	ID          string  `json:"id"`
	Name        string  `json:"name" binding:"required"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	WeightKg    float64 `json:"weightKg"`
	Status      string  `json:"status"`
}

func (r ProductCreateRequest) ToEntity() entities.Product {
	return entities.Product{
		ID:          r.ID,
		Name:        r.Name,
		Description: r.Description,
		Price:       r.Price,
		WeightKg:    r.WeightKg,
		Status:      r.Status,
	}
}

type MaintenanceCreateRequest struct {
	TruckID     string `json:"truckId" binding:"required"`
	Description string `json:"description"`
}

func (r MaintenanceCreateRequest) ToEntity() entities.Maintenance {
	return entities.Maintenance{
		TruckID:     r.TruckID,
		Description: r.Description,
	}
}
