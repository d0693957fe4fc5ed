package usecase

import (
	"context"
	"errors"

	"frota_backoffice/internal/domain/entities"
	"frota_backoffice/internal/usecase/interfaces"
)

var ErrInvalidProductName = errors.New("invalid product name")

type ProductUseCase struct {
	products *Collection[entities.Product]
}

func NewProductUseCase(store interfaces.Store) *ProductUseCase {
	return &ProductUseCase{
		products: NewCollection(store, entities.CollectionProducts,
			SequentialID[entities.Product]("P", 3),
		),
	}
}

func (u *ProductUseCase) List(ctx context.Context, search string) []entities.Product {
	return FilterBySearchTerm(u.products.Load(ctx), search,
		func(p entities.Product) string { return p.Name },
		func(p entities.Product) string { return p.Description },
	)
}

func (u *ProductUseCase) GetByID(ctx context.Context, id string) (entities.Product, error) {
	product, ok := u.products.FindByID(ctx, id)
	if !ok {
		return entities.Product{}, ErrNotFound
	}
	return product, nil
}

func (u *ProductUseCase) Create(ctx context.Context, product entities.Product) (entities.Product, error) {
	if product.Name == "" {
		return entities.Product{}, ErrInvalidProductName
	}
	if product.Status == "" {
		product.Status = "ativo"
	}
	return u.products.Create(ctx, product)
}

type ProductPatch struct {
	Name        *string  `json:"name"`
	Description *string  `json:"description"`
	Price       *float64 `json:"price"`
	WeightKg    *float64 `json:"weightKg"`
	Status      *string  `json:"status"`
}

func (u *ProductUseCase) Update(ctx context.Context, id string, patch ProductPatch) (entities.Product, error) {
	return u.products.Update(ctx, id, func(p entities.Product) entities.Product {
		if patch.Name != nil {
			p.Name = *patch.Name
		}
		if patch.Description != nil {
			p.Description = *patch.Description
		}
		if patch.Price != nil {
			p.Price = *patch.Price
		}
		if patch.WeightKg != nil {
			p.WeightKg = *patch.WeightKg
		}
		if patch.Status != nil {
			p.Status = *patch.Status
		}
		return p
	})
}

func (u *ProductUseCase) Delete(ctx context.Context, id string) error {
	return u.products.Delete(ctx, id)
}
