package dto

import (
	"strconv"

	"github.com/Luuchoh/Propiedades-premium/internal/domain/entity"
	apperrors "github.com/Luuchoh/Propiedades-premium/pkg/errors"
)

// SearchPropertiesRequest holds the raw query parameters of SearchProperties.
type SearchPropertiesRequest struct {
	PriceMin     string `query:"priceMin"`
	PriceMax     string `query:"priceMax"`
	Bedrooms     string `query:"bedrooms"`
	Rooms        string `query:"rooms"`
	Bathrooms    string `query:"bathrooms"`
	PropertyType string `query:"propertyType"`
	City         string `query:"city"`
	Status       string `query:"status"`
	IDOwner      string `query:"idOwner"`
	SortBy       string `query:"sortBy"`
	SortOrder    string `query:"sortOrder"`
	Page         string `query:"page"`
	Limit        string `query:"limit"`
}

// Parse converts the raw parameters. Non-numeric values are reported per
// field; range checks happen in the property use case.
func (r SearchPropertiesRequest) Parse() (entity.PropertyFilter, entity.PaginationParams, []apperrors.FieldError) {
	var (
		filter entity.PropertyFilter
		page   entity.PaginationParams
		errs   []apperrors.FieldError
	)

	parseInt := func(field, raw string) *int64 {
		if raw == "" {
			return nil
		}
		v, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			errs = append(errs, apperrors.FieldError{Field: field, Message: field + " debe ser un número entero"})
			return nil
		}
		return &v
	}

	filter.PriceMin = parseInt("priceMin", r.PriceMin)
	filter.PriceMax = parseInt("priceMax", r.PriceMax)
	if r.Bedrooms != "" {
		filter.MinRooms = parseInt("bedrooms", r.Bedrooms)
	} else {
		filter.MinRooms = parseInt("rooms", r.Rooms)
	}
	filter.MinBathrooms = parseInt("bathrooms", r.Bathrooms)
	filter.PropertyType = r.PropertyType
	filter.City = r.City
	filter.Status = entity.PropertyStatus(r.Status)
	filter.OwnerID = r.IDOwner
	filter.SortBy = entity.SortField(r.SortBy)
	filter.SortOrder = entity.SortOrder(r.SortOrder)

	if v := parseInt("page", r.Page); v != nil {
		page.Page = int(*v)
	}
	if v := parseInt("limit", r.Limit); v != nil {
		page.Limit = int(*v)
	}

	return filter, page, errs
}
