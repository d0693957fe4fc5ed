package interfaces

import (
	"context"

	"frota_backoffice/internal/domain/entities"
)

//go:generate mockgen -source=cities_remote_interface.go -destination=mocks/cities_remote_mock.go -package=mock_interfaces

// ICitiesRemote is the optional cities backend (GET/POST/PUT/DELETE
// /api/cities with a bearer token). Every method may fail; the city use
// case falls back to the local collection when it does.
type ICitiesRemote interface {
	List(ctx context.Context) ([]entities.City, error)
	Create(ctx context.Context, city entities.City) (entities.City, error)
	Update(ctx context.Context, city entities.City) (entities.City, error)
	Delete(ctx context.Context, id string) error
}
