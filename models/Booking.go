package models

import (
	"fmt"
	"time"

	"gorm.io/gorm"
)

type BookingStatus string

const (
	BookingConfirmed BookingStatus = "confirmed"
	BookingCancelled BookingStatus = "cancelled"
	BookingCompleted BookingStatus = "completed"
)

type Booking struct {
	gorm.Model
	UserID       uint          `json:"userID" gorm:"index"`
	RoomID       uint          `json:"roomID" gorm:"index"`
	HotelID      uint          `json:"hotelID" gorm:"index"` // denormalized from the room for query convenience
	CheckInDate  time.Time     `json:"checkInDate"`
	CheckOutDate time.Time     `json:"checkOutDate"`
	TotalPrice   float64       `json:"totalPrice"`
	Status       BookingStatus `json:"status" gorm:"type:varchar(20);default:confirmed;index"`
}

// Transition moves the booking to the given status. Cancellation is allowed
// from any state, including cancelled itself (re-cancelling is a no-op that
// succeeds). Nothing else transitions: a booking is born confirmed and
// completed only ever arrives from outside the API.
func (b *Booking) Transition(to BookingStatus) error {
	if to != BookingCancelled {
		return fmt.Errorf("booking %d: transition %s -> %s not allowed", b.ID, b.Status, to)
	}
	b.Status = to
	return nil
}
