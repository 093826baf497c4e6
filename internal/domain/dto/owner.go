package dto

import (
	"time"

	"github.com/Luuchoh/Propiedades-premium/internal/domain/entity"
)

// OwnerRequest is the body of CreateOwner.
type OwnerRequest struct {
	DNI       string `json:"dni" yaml:"dni" validate:"required"`
	OwnerName string `json:"ownerName" yaml:"ownerName" validate:"required"`
	Phone     string `json:"phone" yaml:"phone" validate:"required"`
	Email     string `json:"email" yaml:"email" validate:"required"`
	Address   string `json:"address" yaml:"address" validate:"required"`
	Photo     string `json:"photo" yaml:"photo" validate:"required"`
	Birthday  string `json:"birthday" yaml:"birthday" validate:"required"`
}

// Fields maps the request onto the owner entity fields.
func (r OwnerRequest) Fields() entity.OwnerFields {
	return entity.OwnerFields{
		DNI:      r.DNI,
		Name:     r.OwnerName,
		Phone:    r.Phone,
		Email:    r.Email,
		Address:  r.Address,
		Photo:    r.Photo,
		Birthday: r.Birthday,
	}
}

// UpdateOwnerRequest is the body of UpdateOwner.
type UpdateOwnerRequest struct {
	IDOwner string `json:"idOwner" validate:"required"`
	OwnerRequest
}

// OwnerResponse is the JSON shape of an owner.
type OwnerResponse struct {
	IDOwner   string    `json:"idOwner"`
	DNI       string    `json:"dni"`
	OwnerName string    `json:"ownerName"`
	Phone     string    `json:"phone"`
	Email     string    `json:"email"`
	Address   string    `json:"address"`
	Photo     string    `json:"photo"`
	Birthday  string    `json:"birthday"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func NewOwnerResponse(o *entity.Owner) OwnerResponse {
	return OwnerResponse{
		IDOwner:   o.ID,
		DNI:       o.DNI,
		OwnerName: o.Name,
		Phone:     o.Phone,
		Email:     o.Email,
		Address:   o.Address,
		Photo:     o.Photo,
		Birthday:  o.Birthday,
		CreatedAt: o.CreatedAt,
		UpdatedAt: o.UpdatedAt,
	}
}

func NewOwnerResponses(owners []*entity.Owner) []OwnerResponse {
	out := make([]OwnerResponse, 0, len(owners))
	for _, o := range owners {
		out = append(out, NewOwnerResponse(o))
	}
	return out
}
