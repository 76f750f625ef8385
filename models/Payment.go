package models

import (
	"time"

	"gorm.io/gorm"
)

const (
	PaymentPending   = "pending"
	PaymentCompleted = "completed"
	PaymentFailed    = "failed"
	PaymentRefunded  = "refunded"
)

type Payment struct {
	gorm.Model
	BookingID     uint       `json:"bookingID" gorm:"index"`
	Amount        float64    `json:"amount"`
	Method        string     `json:"method" gorm:"type:varchar(20);default:card"` // card, cash, upi, wallet
	Status        string     `json:"status" gorm:"type:varchar(20);default:pending"`
	TransactionID string     `json:"transactionID" gorm:"uniqueIndex"`
	PaidAt        *time.Time `json:"paidAt"`
}
