package entity

// StatusCount aggregates properties sharing a status.
type StatusCount struct {
	Status     PropertyStatus
	Count      int64
	TotalPrice int64
}

// TypeCount aggregates properties sharing a property type.
type TypeCount struct {
	PropertyType string
	Count        int64
}
