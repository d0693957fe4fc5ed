package entities

type Product struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description,omitempty"`
	Price       float64 `json:"price"`
	WeightKg    float64 `json:"weightKg,omitempty"`
	Status      string  `json:"status"`
}

func (p Product) EntityID() string { return p.ID }

func (p Product) WithEntityID(id string) Product {
	p.ID = id
	return p
}
