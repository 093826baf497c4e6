package property

import (
	"math"

	"github.com/Luuchoh/Propiedades-premium/internal/domain/entity"
	apperrors "github.com/Luuchoh/Propiedades-premium/pkg/errors"
)

const statusMessage = "Estado debe ser Disponible, Vendido o Reservado"

func validateStatus(status entity.PropertyStatus) error {
	if status == "" || status.IsValid() {
		return nil
	}
	return apperrors.NewValidationError([]apperrors.FieldError{{Field: "status", Message: statusMessage}})
}

func validateSearch(filter entity.PropertyFilter, page entity.PaginationParams) []apperrors.FieldError {
	var errs []apperrors.FieldError

	nonNegative := func(field string, v *int64) {
		if v != nil && *v < 0 {
			errs = append(errs, apperrors.FieldError{Field: field, Message: field + " no puede ser negativo"})
		}
	}
	nonNegative("priceMin", filter.PriceMin)
	nonNegative("priceMax", filter.PriceMax)
	nonNegative("bedrooms", filter.MinRooms)
	nonNegative("bathrooms", filter.MinBathrooms)

	if filter.PriceMin != nil && filter.PriceMax != nil && *filter.PriceMin > *filter.PriceMax {
		errs = append(errs, apperrors.FieldError{Field: "priceMin", Message: "priceMin no puede ser mayor que priceMax"})
	}

	if filter.Status != "" && !filter.Status.IsValid() {
		errs = append(errs, apperrors.FieldError{Field: "status", Message: statusMessage})
	}
	if filter.SortBy != "" && !filter.SortBy.IsValid() {
		errs = append(errs, apperrors.FieldError{Field: "sortBy", Message: "sortBy debe ser price, date o area"})
	}
	if filter.SortOrder != "" && !filter.SortOrder.IsValid() {
		errs = append(errs, apperrors.FieldError{Field: "sortOrder", Message: "sortOrder debe ser asc o desc"})
	}

	if page.Page < 0 {
		errs = append(errs, apperrors.FieldError{Field: "page", Message: "page debe ser mayor que 0"})
	}
	if page.Limit < 0 {
		errs = append(errs, apperrors.FieldError{Field: "limit", Message: "limit debe ser mayor que 0"})
	}

	// the store offset (page-1)*limit must fit in an int
	normalized := page
	normalized.Normalize()
	if normalized.Page-1 > math.MaxInt/normalized.Limit {
		errs = append(errs, apperrors.FieldError{Field: "page", Message: "page está fuera de rango"})
	}

	return errs
}
