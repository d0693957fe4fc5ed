package handlers

import (
	"errors"
	"net/http"

	"frota_backoffice/internal/usecase"
	"frota_backoffice/pkg"
)

var errInvalidPayload = pkg.NewDomainErrorSimple("INVALID_PAYLOAD", "Invalid request payload", http.StatusBadRequest)

var badRequestErrs = []error{
	usecase.ErrInvalidTruckStatus,
	usecase.ErrInvalidTruckPlate,
	usecase.ErrInvalidDeliveryStatus,
	usecase.ErrInvalidMoment,
	usecase.ErrInvalidCustomerDoc,
	usecase.ErrInvalidCustomerType,
	usecase.ErrInvalidEmployeeRole,
	usecase.ErrInvalidEmail,
	usecase.ErrInvalidProductName,
	usecase.ErrInvalidCityName,
	usecase.ErrEmptyMessage,
	usecase.ErrUnknownCollection,
}

// mapUseCaseError translates use-case sentinels into the AppError taxonomy:
// duplicates conflict, missing records 404, validation 400, the rest 500.
func mapUseCaseError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrDuplicateKey):
		return pkg.NewDomainError("DUPLICATE_KEY", "A record with this key already exists", err, http.StatusConflict)
	case errors.Is(err, usecase.ErrNotFound):
		return pkg.NewDomainErrorSimple("NOT_FOUND", "Record not found", http.StatusNotFound)
	}
	for _, bad := range badRequestErrs {
		if errors.Is(err, bad) {
			return pkg.NewDomainError("INVALID_REQUEST", bad.Error(), err, http.StatusBadRequest)
		}
	}
	return pkg.NewInternalError(err)
}
