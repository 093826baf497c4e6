package entity

import "time"

// PropertyStatus is the commercial state of a listing. Any transition is allowed.
type PropertyStatus string

const (
	PropertyStatusAvailable PropertyStatus = "Disponible"
	PropertyStatusSold      PropertyStatus = "Vendido"
	PropertyStatusReserved  PropertyStatus = "Reservado"
)

// PropertyStatuses lists every valid status in display order.
var PropertyStatuses = []PropertyStatus{
	PropertyStatusAvailable,
	PropertyStatusReserved,
	PropertyStatusSold,
}

// IsValid reports whether s is one of the known statuses.
func (s PropertyStatus) IsValid() bool {
	switch s {
	case PropertyStatusAvailable, PropertyStatusSold, PropertyStatusReserved:
		return true
	}
	return false
}

// ParsePropertyStatus maps raw to a status. Empty input yields Disponible.
func ParsePropertyStatus(raw string) (PropertyStatus, bool) {
	if raw == "" {
		return PropertyStatusAvailable, true
	}
	s := PropertyStatus(raw)
	return s, s.IsValid()
}

// PropertyFields are the property attributes supplied by clients.
type PropertyFields struct {
	OwnerID          string
	Name             string
	Type             string
	Address          string
	Description      string
	Price            int64
	Rooms            int64
	Bathrooms        int64
	Area             int64
	YearConstruction int64
	AnnualTax        int64
	MonthlyExpenses  int64
	Features         []string
	Status           PropertyStatus
}

// Property is a listing. OwnerID is a lookup key only.
type Property struct {
	ID string
	PropertyFields
	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewProperty builds a property stamped with now. An empty status becomes Disponible.
func NewProperty(fields PropertyFields, now time.Time) *Property {
	now = now.UTC().Truncate(time.Millisecond)
	if fields.Status == "" {
		fields.Status = PropertyStatusAvailable
	}
	fields.Features = copyFeatures(fields.Features)
	return &Property{
		PropertyFields: fields,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
}

// Replace overwrites every client field and advances UpdatedAt.
func (p *Property) Replace(fields PropertyFields, now time.Time) {
	if fields.Status == "" {
		fields.Status = p.Status
	}
	fields.Features = copyFeatures(fields.Features)
	p.PropertyFields = fields
	p.UpdatedAt = NextTimestamp(p.UpdatedAt, now)
}

func copyFeatures(features []string) []string {
	out := make([]string, len(features))
	copy(out, features)
	return out
}
