package entity

import "time"

// OwnerFields are the owner attributes supplied by clients.
type OwnerFields struct {
	DNI      string
	Name     string
	Phone    string
	Email    string
	Address  string
	Photo    string
	Birthday string
}

// Owner is a property owner. DNI is the natural key; ID is assigned by the store.
type Owner struct {
	ID string
	OwnerFields
	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewOwner builds an owner stamped with now. The store assigns the ID.
func NewOwner(fields OwnerFields, now time.Time) *Owner {
	now = now.UTC().Truncate(time.Millisecond)
	return &Owner{
		OwnerFields: fields,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

// Replace overwrites every client field and advances UpdatedAt.
func (o *Owner) Replace(fields OwnerFields, now time.Time) {
	o.OwnerFields = fields
	o.UpdatedAt = NextTimestamp(o.UpdatedAt, now)
}
