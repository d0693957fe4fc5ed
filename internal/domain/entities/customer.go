package entities

// CustomerType distinguishes pessoa física (CPF) from pessoa jurídica (CNPJ).
type CustomerType string

const (
	CustomerTypePF CustomerType = "pf"
	CustomerTypePJ CustomerType = "pj"
)

type Address struct {
	Street     string `json:"street"`
	Number     string `json:"number"`
	District   string `json:"district"`
	City       string `json:"city"`
	State      string `json:"state"`
	PostalCode string `json:"postalCode"`
}

// Customer holds a CPF or CNPJ in Document. Uniqueness is enforced on the
// digit-normalized document, so "123.456.789-00" and "12345678900" are the
// same customer.
type Customer struct {
	ID       string       `json:"id"`
	Name     string       `json:"name"`
	Document string       `json:"document"`
	Type     CustomerType `json:"type"`
	Email    string       `json:"email,omitempty"`
	Phone    string       `json:"phone,omitempty"`
	Address  Address      `json:"address"`
	Status   string       `json:"status"`
}

func (c Customer) EntityID() string { return c.ID }

func (c Customer) WithEntityID(id string) Customer {
	c.ID = id
	return c
}
