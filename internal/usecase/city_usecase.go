package usecase

import (
	"context"
	"errors"
	"log"

	"frota_backoffice/internal/domain/entities"
	"frota_backoffice/internal/usecase/interfaces"
)

var ErrInvalidCityName = errors.New("invalid city name")

// CityUseCase is the one entity with an optional remote backend. Every
// operation tries the remote first; any failure falls back silently to the
// local collection and tags the result with source "local", so the screen
// can show the softened "saved locally" message.
type CityUseCase struct {
	remote interfaces.ICitiesRemote
	cities *Collection[entities.City]
}

// NewCityUseCase accepts a nil remote, which means local-only operation.
func NewCityUseCase(store interfaces.Store, remoteClient interfaces.ICitiesRemote) *CityUseCase {
	return &CityUseCase{
		remote: remoteClient,
		cities: NewCollection(store, entities.CollectionCities,
			SequentialID[entities.City]("CT", 3),
		),
	}
}

type CityResult struct {
	City   entities.City       `json:"city"`
	Source entities.CitySource `json:"source"`
}

func (u *CityUseCase) List(ctx context.Context) ([]entities.City, entities.CitySource) {
	if u.remote != nil {
		cities, err := u.remote.List(ctx)
		if err == nil {
			// Mirror the remote state so the fallback list stays fresh.
			_ = u.cities.Replace(ctx, cities)
			return cities, entities.CitySourceRemote
		}
		log.Printf("[cities] remote list failed, serving local: %v", err)
	}
	return u.cities.Load(ctx), entities.CitySourceLocal
}

func (u *CityUseCase) Create(ctx context.Context, city entities.City) (CityResult, error) {
	if city.Name == "" {
		return CityResult{}, ErrInvalidCityName
	}
	if u.remote != nil {
		created, err := u.remote.Create(ctx, city)
		if err == nil {
			if _, err := u.cities.Create(ctx, created); err != nil && !errors.Is(err, ErrDuplicateKey) {
				return CityResult{}, err
			}
			return CityResult{City: created, Source: entities.CitySourceRemote}, nil
		}
		log.Printf("[cities] remote create failed, saving locally: %v", err)
	}
	created, err := u.cities.Create(ctx, city)
	if err != nil {
		return CityResult{}, err
	}
	return CityResult{City: created, Source: entities.CitySourceLocal}, nil
}

func (u *CityUseCase) Update(ctx context.Context, id string, name, state string) (CityResult, error) {
	merge := func(c entities.City) entities.City {
		if name != "" {
			c.Name = name
		}
		if state != "" {
			c.State = state
		}
		return c
	}
	if u.remote != nil {
		current, ok := u.cities.FindByID(ctx, id)
		if ok {
			updated, err := u.remote.Update(ctx, merge(current))
			if err == nil {
				if _, err := u.cities.Update(ctx, id, merge); err != nil {
					return CityResult{}, err
				}
				return CityResult{City: updated, Source: entities.CitySourceRemote}, nil
			}
			log.Printf("[cities] remote update failed, saving locally: %v", err)
		}
	}
	updated, err := u.cities.Update(ctx, id, merge)
	if err != nil {
		return CityResult{}, err
	}
	return CityResult{City: updated, Source: entities.CitySourceLocal}, nil
}

func (u *CityUseCase) Delete(ctx context.Context, id string) (entities.CitySource, error) {
	if u.remote != nil {
		if err := u.remote.Delete(ctx, id); err == nil {
			if err := u.cities.Delete(ctx, id); err != nil && !errors.Is(err, ErrNotFound) {
				return entities.CitySourceRemote, err
			}
			return entities.CitySourceRemote, nil
		} else {
			log.Printf("[cities] remote delete failed, deleting locally: %v", err)
		}
	}
	if err := u.cities.Delete(ctx, id); err != nil {
		return entities.CitySourceLocal, err
	}
	return entities.CitySourceLocal, nil
}
