package entity

// PropertyImage is the image record stored beside a property.
type PropertyImage struct {
	ID         string
	PropertyID string
	File       string
	Enable     bool
}

// NewPropertyImage builds an image for propertyID. Enable defaults to true
// only when enable is nil.
func NewPropertyImage(propertyID, file string, enable *bool) *PropertyImage {
	img := &PropertyImage{
		PropertyID: propertyID,
		File:       file,
		Enable:     true,
	}
	if enable != nil {
		img.Enable = *enable
	}
	return img
}

// EmptyPropertyImage is the placeholder joined to a property that has no image.
func EmptyPropertyImage(propertyID string) *PropertyImage {
	return &PropertyImage{PropertyID: propertyID}
}

// PropertyWithImage is the read model returned for every property.
type PropertyWithImage struct {
	*Property
	Image *PropertyImage
	// PartialWrite is set when the property was stored but its image was not.
	PartialWrite bool
}

// JoinImage pairs p with img, substituting the placeholder when img is nil.
func JoinImage(p *Property, img *PropertyImage) *PropertyWithImage {
	if img == nil {
		img = EmptyPropertyImage(p.ID)
	}
	return &PropertyWithImage{Property: p, Image: img}
}
