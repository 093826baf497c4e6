package dto

// IDRequest carries a store id, named as the web client sends it.
type IDRequest struct {
	MongoGeneralID string `json:"mongoGeneralId" validate:"required"`
}

// DNIRequest is the body of GetOneOwnerByDNI.
type DNIRequest struct {
	DNI string `json:"dni" validate:"required"`
}
