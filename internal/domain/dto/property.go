package dto

import (
	"time"

	"github.com/Luuchoh/Propiedades-premium/internal/domain/entity"
)

// PropertyImageRequest carries the image submitted with a property.
type PropertyImageRequest struct {
	IDPropertyImage string `json:"idPropertyImage,omitempty" yaml:"idPropertyImage"`
	File            string `json:"file" yaml:"file"`
	// Enable defaults to true when omitted.
	Enable *bool `json:"enable,omitempty" yaml:"enable"`
}

// PropertyRequest is the body of CreateProperty.
type PropertyRequest struct {
	IDOwner          string                `json:"idOwner" yaml:"idOwner"`
	PropertyName     string                `json:"propertyName" yaml:"propertyName" validate:"required"`
	PropertyType     string                `json:"propertyType" yaml:"propertyType" validate:"required"`
	Address          string                `json:"address" yaml:"address" validate:"required"`
	Price            int64                 `json:"price" yaml:"price" validate:"required,gt=0"`
	Rooms            int64                 `json:"rooms" yaml:"rooms" validate:"required,gt=0"`
	Bathrooms        int64                 `json:"bathrooms" yaml:"bathrooms" validate:"required,gt=0"`
	Area             int64                 `json:"area" yaml:"area" validate:"required,gt=0"`
	YearConstruction int64                 `json:"yearConstruction" yaml:"yearConstruction" validate:"required,gt=0"`
	AnnualTax        int64                 `json:"annualTax" yaml:"annualTax" validate:"required,gt=0"`
	MonthlyExpenses  int64                 `json:"monthlyExpenses" yaml:"monthlyExpenses" validate:"required,gt=0"`
	Description      string                `json:"description" yaml:"description" validate:"required"`
	Features         []string              `json:"features" yaml:"features" validate:"required,min=1"`
	Status           string                `json:"status,omitempty" yaml:"status" validate:"omitempty,oneof=Disponible Vendido Reservado"`
	Image            *PropertyImageRequest `json:"image,omitempty" yaml:"image"`
}

// Fields maps the request onto the property entity fields.
func (r PropertyRequest) Fields() entity.PropertyFields {
	return entity.PropertyFields{
		OwnerID:          r.IDOwner,
		Name:             r.PropertyName,
		Type:             r.PropertyType,
		Address:          r.Address,
		Description:      r.Description,
		Price:            r.Price,
		Rooms:            r.Rooms,
		Bathrooms:        r.Bathrooms,
		Area:             r.Area,
		YearConstruction: r.YearConstruction,
		AnnualTax:        r.AnnualTax,
		MonthlyExpenses:  r.MonthlyExpenses,
		Features:         r.Features,
		Status:           entity.PropertyStatus(r.Status),
	}
}

// UpdatePropertyRequest is the body of UpdateProperty.
type UpdatePropertyRequest struct {
	IDProperty string `json:"idProperty" validate:"required"`
	PropertyRequest
}

// PropertyImageResponse is the JSON shape of an image.
type PropertyImageResponse struct {
	IDPropertyImage string `json:"idPropertyImage"`
	IDProperty      string `json:"idProperty"`
	File            string `json:"file"`
	Enable          bool   `json:"enable"`
}

// PropertyResponse is the JSON shape of a property joined with its image.
// Image is null only when the image write failed, in which case PartialWrite is true.
type PropertyResponse struct {
	IDProperty       string                 `json:"idProperty"`
	IDOwner          string                 `json:"idOwner"`
	PropertyName     string                 `json:"propertyName"`
	PropertyType     string                 `json:"propertyType"`
	Address          string                 `json:"address"`
	Price            int64                  `json:"price"`
	Rooms            int64                  `json:"rooms"`
	Bathrooms        int64                  `json:"bathrooms"`
	Area             int64                  `json:"area"`
	YearConstruction int64                  `json:"yearConstruction"`
	AnnualTax        int64                  `json:"annualTax"`
	MonthlyExpenses  int64                  `json:"monthlyExpenses"`
	Description      string                 `json:"description"`
	Features         []string               `json:"features"`
	Status           string                 `json:"status"`
	Image            *PropertyImageResponse `json:"image"`
	PartialWrite     bool                   `json:"partialWrite,omitempty"`
	CreatedAt        time.Time              `json:"createdAt"`
	UpdatedAt        time.Time              `json:"updatedAt"`
}

func NewPropertyResponse(p *entity.PropertyWithImage) PropertyResponse {
	features := p.Features
	if features == nil {
		features = []string{}
	}

	resp := PropertyResponse{
		IDProperty:       p.ID,
		IDOwner:          p.OwnerID,
		PropertyName:     p.Name,
		PropertyType:     p.Type,
		Address:          p.Address,
		Price:            p.Price,
		Rooms:            p.Rooms,
		Bathrooms:        p.Bathrooms,
		Area:             p.Area,
		YearConstruction: p.YearConstruction,
		AnnualTax:        p.AnnualTax,
		MonthlyExpenses:  p.MonthlyExpenses,
		Description:      p.Description,
		Features:         features,
		Status:           string(p.Status),
		PartialWrite:     p.PartialWrite,
		CreatedAt:        p.CreatedAt,
		UpdatedAt:        p.UpdatedAt,
	}

	if p.Image != nil {
		resp.Image = &PropertyImageResponse{
			IDPropertyImage: p.Image.ID,
			IDProperty:      p.Image.PropertyID,
			File:            p.Image.File,
			Enable:          p.Image.Enable,
		}
	}

	return resp
}

func NewPropertyResponses(items []*entity.PropertyWithImage) []PropertyResponse {
	out := make([]PropertyResponse, 0, len(items))
	for _, p := range items {
		out = append(out, NewPropertyResponse(p))
	}
	return out
}

// PaginatedPropertiesResponse is the body of SearchProperties.
type PaginatedPropertiesResponse struct {
	Data       []PropertyResponse    `json:"data"`
	Pagination entity.PaginationMeta `json:"pagination"`
}
