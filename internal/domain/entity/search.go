package entity

// SortField selects the ordering key of a property search.
type SortField string

const (
	SortByPrice SortField = "price"
	SortByDate  SortField = "date"
	SortByArea  SortField = "area"
)

// IsValid reports whether f is a known sort key.
func (f SortField) IsValid() bool {
	switch f {
	case SortByPrice, SortByDate, SortByArea:
		return true
	}
	return false
}

// SortOrder is asc or desc.
type SortOrder string

const (
	SortAsc  SortOrder = "asc"
	SortDesc SortOrder = "desc"
)

// IsValid reports whether o is asc or desc.
func (o SortOrder) IsValid() bool {
	return o == SortAsc || o == SortDesc
}

// PropertyFilter narrows a property search. Nil and empty values are ignored.
type PropertyFilter struct {
	PriceMin     *int64
	PriceMax     *int64
	MinRooms     *int64
	MinBathrooms *int64
	PropertyType string
	// City matches case-insensitively anywhere in the address.
	City      string
	Status    PropertyStatus
	OwnerID   string
	SortBy    SortField
	SortOrder SortOrder
}

// WithDefaults fills the sort key and order when unset.
func (f PropertyFilter) WithDefaults() PropertyFilter {
	if f.SortBy == "" {
		f.SortBy = SortByDate
	}
	if f.SortOrder == "" {
		f.SortOrder = SortDesc
	}
	return f
}
