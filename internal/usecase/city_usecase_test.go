package usecase

import (
	"context"
	"errors"
	"testing"

	"frota_backoffice/internal/adapter/persistence/kvstore"
	"frota_backoffice/internal/domain/entities"
	mock_interfaces "frota_backoffice/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestCityUseCase_LocalOnly(t *testing.T) {
	ctx := context.Background()
	uc := NewCityUseCase(kvstore.NewMemoryStore(), nil)

	created, err := uc.Create(ctx, entities.City{Name: "Curitiba", State: "PR"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if created.Source != entities.CitySourceLocal {
		t.Fatalf("expected local source without a remote, got %q", created.Source)
	}

	cities, source := uc.List(ctx)
	if source != entities.CitySourceLocal || len(cities) != 1 {
		t.Fatalf("unexpected list: %v %q", cities, source)
	}
}

func TestCityUseCase_CreateValidation(t *testing.T) {
	uc := NewCityUseCase(kvstore.NewMemoryStore(), nil)
	_, err := uc.Create(context.Background(), entities.City{State: "PR"})
	if !errors.Is(err, ErrInvalidCityName) {
		t.Fatalf("expected ErrInvalidCityName, got %v", err)
	}
}

func TestCityUseCase_RemoteFirst(t *testing.T) {
	ctx := context.Background()

	t.Run("list mirrors remote", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		remote := mock_interfaces.NewMockICitiesRemote(ctrl)
		store := kvstore.NewMemoryStore()
		uc := NewCityUseCase(store, remote)

		remoteCities := []entities.City{{ID: "CT001", Name: "Curitiba", State: "PR"}}
		remote.EXPECT().List(gomock.Any()).Return(remoteCities, nil)

		cities, source := uc.List(ctx)
		if source != entities.CitySourceRemote || len(cities) != 1 {
			t.Fatalf("unexpected list: %v %q", cities, source)
		}

		// The mirror keeps the fallback warm for the next outage.
		remote.EXPECT().List(gomock.Any()).Return(nil, errors.New("remote down"))
		cities, source = uc.List(ctx)
		if source != entities.CitySourceLocal || len(cities) != 1 {
			t.Fatalf("expected mirrored local copy, got %v %q", cities, source)
		}
	})

	t.Run("create falls back silently", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		remote := mock_interfaces.NewMockICitiesRemote(ctrl)
		uc := NewCityUseCase(kvstore.NewMemoryStore(), remote)

		remote.EXPECT().Create(gomock.Any(), gomock.Any()).Return(entities.City{}, errors.New("remote down"))

		created, err := uc.Create(ctx, entities.City{Name: "Londrina", State: "PR"})
		if err != nil {
			t.Fatalf("fallback must not surface the remote error, got %v", err)
		}
		if created.Source != entities.CitySourceLocal {
			t.Fatalf("expected local source, got %q", created.Source)
		}
		if created.City.ID == "" {
			t.Fatalf("expected a locally assigned id")
		}
	})

	t.Run("create lands remote", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		remote := mock_interfaces.NewMockICitiesRemote(ctrl)
		uc := NewCityUseCase(kvstore.NewMemoryStore(), remote)

		remote.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, c entities.City) (entities.City, error) {
				c.ID = "CT900"
				return c, nil
			},
		)

		created, err := uc.Create(ctx, entities.City{Name: "Maringa", State: "PR"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if created.Source != entities.CitySourceRemote || created.City.ID != "CT900" {
			t.Fatalf("unexpected result: %+v", created)
		}
	})

	t.Run("delete falls back", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		remote := mock_interfaces.NewMockICitiesRemote(ctrl)
		store := kvstore.NewMemoryStore()
		uc := NewCityUseCase(store, remote)

		remote.EXPECT().Create(gomock.Any(), gomock.Any()).Return(entities.City{}, errors.New("remote down"))
		created, err := uc.Create(ctx, entities.City{Name: "Cascavel", State: "PR"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		remote.EXPECT().Delete(gomock.Any(), created.City.ID).Return(errors.New("remote down"))
		source, err := uc.Delete(ctx, created.City.ID)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if source != entities.CitySourceLocal {
			t.Fatalf("expected local delete, got %q", source)
		}
	})
}
