package usecase

import (
	"context"
	"errors"

	"frota_backoffice/internal/domain/entities"
	"frota_backoffice/internal/usecase/interfaces"
)

var (
	ErrInvalidCustomerDoc  = errors.New("invalid customer document")
	ErrInvalidCustomerType = errors.New("invalid customer type")
)

type CustomerUseCase struct {
	customers *Collection[entities.Customer]
}

func NewCustomerUseCase(store interfaces.Store) *CustomerUseCase {
	return &CustomerUseCase{
		customers: NewCollection(store, entities.CollectionCustomers,
			SequentialID[entities.Customer]("C", 3),
			UniqueKey[entities.Customer]{
				Name:      "document",
				Value:     func(c entities.Customer) string { return c.Document },
				Normalize: NormalizeDocument,
			},
		),
	}
}

type CustomerFilter struct {
	Search string
	Type   string
}

func (u *CustomerUseCase) List(ctx context.Context, f CustomerFilter) []entities.Customer {
	customers := u.customers.Load(ctx)
	customers = FilterBySearchTerm(customers, f.Search,
		func(c entities.Customer) string { return c.Name },
		func(c entities.Customer) string { return c.Document },
		func(c entities.Customer) string { return c.Email },
	)
	customers = FilterByExactField(customers, f.Type, func(c entities.Customer) string { return string(c.Type) })
	return customers
}

func (u *CustomerUseCase) GetByID(ctx context.Context, id string) (entities.Customer, error) {
	customer, ok := u.customers.FindByID(ctx, id)
	if !ok {
		return entities.Customer{}, ErrNotFound
	}
	return customer, nil
}

func (u *CustomerUseCase) Create(ctx context.Context, customer entities.Customer) (entities.Customer, error) {
	if NormalizeDocument(customer.Document) == "" {
		return entities.Customer{}, ErrInvalidCustomerDoc
	}
	switch customer.Type {
	case entities.CustomerTypePF, entities.CustomerTypePJ:
	default:
		return entities.Customer{}, ErrInvalidCustomerType
	}
	if customer.Status == "" {
		customer.Status = "ativo"
	}
	return u.customers.Create(ctx, customer)
}

type CustomerPatch struct {
	Name    *string           `json:"name"`
	Email   *string           `json:"email"`
	Phone   *string           `json:"phone"`
	Address *entities.Address `json:"address"`
	Status  *string           `json:"status"`
}

func (u *CustomerUseCase) Update(ctx context.Context, id string, patch CustomerPatch) (entities.Customer, error) {
	return u.customers.Update(ctx, id, func(c entities.Customer) entities.Customer {
		if patch.Name != nil {
			c.Name = *patch.Name
		}
		if patch.Email != nil {
			c.Email = *patch.Email
		}
		if patch.Phone != nil {
			c.Phone = *patch.Phone
		}
		if patch.Address != nil {
			c.Address = *patch.Address
		}
		if patch.Status != nil {
			c.Status = *patch.Status
		}
		return c
	})
}

func (u *CustomerUseCase) Delete(ctx context.Context, id string) error {
	return u.customers.Delete(ctx, id)
}
