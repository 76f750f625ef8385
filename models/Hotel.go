package models

import (
	"encoding/json"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type Hotel struct {
	gorm.Model
	VendorID    uint           `json:"vendorID" gorm:"index"`
	Name        string         `json:"name"`
	Location    string         `json:"location"`
	Description string         `json:"description"`
	Amenities   datatypes.JSON `json:"amenities"`
	ImageURLs   datatypes.JSON `json:"imageURLs"`
	IsActive    *bool          `json:"isActive" gorm:"default:true"`
	Rooms       []Room         `json:"rooms,omitempty" gorm:"foreignKey:HotelID;references:ID"`
}

func (h *Hotel) MarshalJSON() ([]byte, error) {
	type Alias Hotel
	aux := &struct {
		Amenities []string `json:"amenities"`
		ImageURLs []string `json:"imageURLs"`
		*Alias
	}{
		Amenities: []string{},
		ImageURLs: []string{},
		Alias:     (*Alias)(h),
	}

	if h.Amenities != nil {
		var amenities []string
		if err := json.Unmarshal(h.Amenities, &amenities); err == nil {
			aux.Amenities = amenities
		}
	}

	if h.ImageURLs != nil {
		var imageURLs []string
		if err := json.Unmarshal(h.ImageURLs, &imageURLs); err == nil {
			aux.ImageURLs = imageURLs
		}
	}

	return json.Marshal(aux)
}
