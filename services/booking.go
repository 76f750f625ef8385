package services

import (
	"errors"
	"math"
	"time"

	"github.com/Patelkeshav-03/staybook-booking-system/models"
	"github.com/Patelkeshav-03/staybook-booking-system/storage"
	"github.com/Patelkeshav-03/staybook-booking-system/utils"
	"gorm.io/gorm"
)

// CreateBooking books a room for the customer. The total is the room's
// nightly rate times the (ceiled) night count; the booking starts confirmed
// and denormalizes the room's hotel id. A completed payment row is written
// alongside it.
func CreateBooking(customerID uint, roomID uint, checkIn, checkOut time.Time) (*models.Booking, error) {
	if roomID == 0 || checkIn.IsZero() || checkOut.IsZero() {
		return nil, NewValidationError("Please include all fields")
	}

	var room models.Room
	if err := storage.DB.First(&room, roomID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, NewNotFoundError("Room not found")
		}
		return nil, err
	}

	nights := int(math.Ceil(checkOut.Sub(checkIn).Hours() / 24))
	if nights <= 0 {
		return nil, NewValidationError("Invalid dates")
	}

	// TODO: check remaining availability for the date range against room.Count
	// before confirming; concurrent bookings for the same room currently all
	// succeed.

	booking := models.Booking{
		UserID:       customerID,
		RoomID:       room.ID,
		HotelID:      room.HotelID,
		CheckInDate:  checkIn,
		CheckOutDate: checkOut,
		TotalPrice:   room.PricePerNight * float64(nights),
		Status:       models.BookingConfirmed,
	}
	if err := storage.DB.Create(&booking).Error; err != nil {
		return nil, err
	}

	recordPayment(&booking)

	return &booking, nil
}

// recordPayment writes the completed payment matching a confirmed booking.
func recordPayment(booking *models.Booking) {
	now := time.Now()
	payment := models.Payment{
		BookingID:     booking.ID,
		Amount:        booking.TotalPrice,
		Method:        "card",
		Status:        models.PaymentCompleted,
		TransactionID: "txn_" + utils.GenerateShortToken(12),
		PaidAt:        &now,
	}
	storage.DB.Create(&payment)
}

// CancelBooking sets the booking to cancelled. Only the renter may cancel;
// cancelling an already-cancelled booking succeeds idempotently.
func CancelBooking(callerID uint, bookingID uint) (*models.Booking, error) {
	var booking models.Booking
	if err := storage.DB.First(&booking, bookingID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, NewNotFoundError("Booking not found")
		}
		return nil, err
	}

	if booking.UserID != callerID {
		return nil, NewAuthorizationError("Not authorized")
	}

	previous := booking.Status
	if err := booking.Transition(models.BookingCancelled); err != nil {
		return nil, NewValidationError(err.Error())
	}
	if err := storage.DB.Save(&booking).Error; err != nil {
		return nil, err
	}

	logStatusChange(&booking, previous, callerID, "cancelled by customer")

	return &booking, nil
}

// logStatusChange appends the audit row for a booking status transition.
func logStatusChange(booking *models.Booking, previous models.BookingStatus, actorID uint, reason string) {
	entry := models.StatusLog{
		BookingID:      booking.ID,
		PreviousStatus: previous,
		NewStatus:      booking.Status,
		UpdatedBy:      actorID,
		Reason:         reason,
	}
	storage.DB.Create(&entry)
}

// BookingsForCustomer returns the caller's bookings, newest first, with
// hotel and room projections.
func BookingsForCustomer(customerID uint) ([]BookingView, error) {
	var bookings []models.Booking
	if err := storage.DB.Where("user_id = ?", customerID).
		Order("created_at DESC").
		Find(&bookings).Error; err != nil {
		return nil, err
	}
	return joinBookings(bookings, false), nil
}

// BookingsForVendor returns bookings against any hotel the vendor owns,
// newest first, with renter/hotel/room projections.
func BookingsForVendor(vendorID uint) ([]BookingView, error) {
	hotelIDs, err := vendorHotelIDs(vendorID)
	if err != nil {
		return nil, err
	}
	if len(hotelIDs) == 0 {
		return []BookingView{}, nil
	}

	var bookings []models.Booking
	if err := storage.DB.Where("hotel_id IN ?", hotelIDs).
		Order("created_at DESC").
		Find(&bookings).Error; err != nil {
		return nil, err
	}
	return joinBookings(bookings, true), nil
}

// AdminBookingFilter narrows the admin booking listing. The date range is
// inclusive on both ends and applies to the booking's creation time.
type AdminBookingFilter struct {
	Status    string
	StartDate *time.Time
	EndDate   *time.Time
}

// BookingsForAdmin returns all bookings matching the filter, newest first,
// with renter/hotel/room projections.
func BookingsForAdmin(filter AdminBookingFilter) ([]BookingView, error) {
	query := storage.DB.Model(&models.Booking{})
	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}
	if filter.StartDate != nil && filter.EndDate != nil {
		query = query.Where("created_at >= ? AND created_at <= ?", *filter.StartDate, *filter.EndDate)
	}

	var bookings []models.Booking
	if err := query.Order("created_at DESC").Find(&bookings).Error; err != nil {
		return nil, err
	}
	return joinBookings(bookings, true), nil
}

func vendorHotelIDs(vendorID uint) ([]uint, error) {
	var hotels []models.Hotel
	if err := storage.DB.Select("id").Where("vendor_id = ?", vendorID).Find(&hotels).Error; err != nil {
		return nil, err
	}
	ids := make([]uint, 0, len(hotels))
	for _, hotel := range hotels {
		ids = append(ids, hotel.ID)
	}
	return ids, nil
}
