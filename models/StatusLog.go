package models

import "gorm.io/gorm"

// StatusLog is the audit trail of booking status transitions.
type StatusLog struct {
	gorm.Model
	BookingID      uint          `json:"bookingID" gorm:"index"`
	PreviousStatus BookingStatus `json:"previousStatus"`
	NewStatus      BookingStatus `json:"newStatus"`
	UpdatedBy      uint          `json:"updatedBy"`
	Reason         string        `json:"reason"`
}
