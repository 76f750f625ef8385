package models

import "gorm.io/gorm"

type Room struct {
	gorm.Model
	HotelID       uint    `json:"hotelID" gorm:"index"`
	RoomType      string  `json:"roomType"` // e.g. Single, Double, Suite
	PricePerNight float64 `json:"pricePerNight"`
	Count         int     `json:"count" gorm:"default:1"`
	IsAvailable   *bool   `json:"isAvailable" gorm:"default:true"`
}
