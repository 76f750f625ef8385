package services

import (
	"encoding/json"

	"github.com/Patelkeshav-03/staybook-booking-system/models"
	"github.com/Patelkeshav-03/staybook-booking-system/storage"
)

// Every report here is recomputed from the store on each call; nothing is
// cached or maintained incrementally.

type OverviewStats struct {
	Users    int64   `json:"users"`
	Vendors  int64   `json:"vendors"`
	Hotels   int64   `json:"hotels"`
	Rooms    int64   `json:"rooms"`
	Bookings int64   `json:"bookings"`
	Revenue  float64 `json:"revenue"`
}

type AdminOverview struct {
	Stats        OverviewStats  `json:"stats"`
	RecentHotels []models.Hotel `json:"recentHotels"`
	RecentUsers  []models.User  `json:"recentUsers"`
}

// ComputeAdminOverview counts every collection and sums revenue over
// confirmed bookings only; cancelled and completed bookings contribute
// nothing.
func ComputeAdminOverview() (*AdminOverview, error) {
	var overview AdminOverview

	storage.DB.Model(&models.User{}).Count(&overview.Stats.Users)
	storage.DB.Model(&models.User{}).Where("role = ?", models.RoleVendor).Count(&overview.Stats.Vendors)
	storage.DB.Model(&models.Hotel{}).Count(&overview.Stats.Hotels)
	storage.DB.Model(&models.Room{}).Count(&overview.Stats.Rooms)
	storage.DB.Model(&models.Booking{}).Count(&overview.Stats.Bookings)

	var confirmed []models.Booking
	if err := storage.DB.Where("status = ?", models.BookingConfirmed).Find(&confirmed).Error; err != nil {
		return nil, err
	}
	for _, booking := range confirmed {
		overview.Stats.Revenue += booking.TotalPrice
	}

	overview.RecentHotels = []models.Hotel{}
	storage.DB.Order("created_at DESC").Limit(5).Find(&overview.RecentHotels)
	overview.RecentUsers = []models.User{}
	storage.DB.Order("created_at DESC").Limit(5).Find(&overview.RecentUsers)

	return &overview, nil
}

type VendorSummary struct {
	TotalHotels       int     `json:"totalHotels"`
	TotalRooms        int     `json:"totalRooms"`
	TotalBookings     int     `json:"totalBookings"`
	ConfirmedBookings int     `json:"confirmedBookings"`
	CancelledBookings int     `json:"cancelledBookings"`
	TotalEarnings     float64 `json:"totalEarnings"`
}

type VendorHotel struct {
	models.Hotel
	RoomCount int `json:"roomCount"`
}

// The embedded Hotel carries its own MarshalJSON, so merge roomCount in by
// hand or it would be dropped from the output.
func (vh *VendorHotel) MarshalJSON() ([]byte, error) {
	raw, err := vh.Hotel.MarshalJSON()
	if err != nil {
		return nil, err
	}
	var fields map[string]interface{}
	if err := json.Unmarshal(raw, &fields); err != nil {
		return nil, err
	}
	fields["roomCount"] = vh.RoomCount
	return json.Marshal(fields)
}

type VendorStats struct {
	Summary        VendorSummary `json:"summary"`
	Hotels         []VendorHotel `json:"hotels"`
	RecentBookings []BookingView `json:"recentBookings"`
	Bookings       []BookingView `json:"bookings"`
}

// ComputeVendorStats builds the vendor dashboard: counts over the vendor's
// hotels and rooms, the full booking list with projections, the
// confirmed/cancelled split and earnings over confirmed bookings only.
func ComputeVendorStats(vendorID uint) (*VendorStats, error) {
	var hotels []models.Hotel
	if err := storage.DB.Where("vendor_id = ?", vendorID).Find(&hotels).Error; err != nil {
		return nil, err
	}

	hotelIDs := make([]uint, 0, len(hotels))
	for _, hotel := range hotels {
		hotelIDs = append(hotelIDs, hotel.ID)
	}

	var rooms []models.Room
	if len(hotelIDs) > 0 {
		if err := storage.DB.Where("hotel_id IN ?", hotelIDs).Find(&rooms).Error; err != nil {
			return nil, err
		}
	}

	var bookings []models.Booking
	if len(hotelIDs) > 0 {
		if err := storage.DB.Where("hotel_id IN ?", hotelIDs).
			Order("created_at DESC").
			Find(&bookings).Error; err != nil {
			return nil, err
		}
	}

	stats := VendorStats{
		Summary: VendorSummary{
			TotalHotels:   len(hotels),
			TotalRooms:    len(rooms),
			TotalBookings: len(bookings),
		},
		Hotels: make([]VendorHotel, 0, len(hotels)),
	}

	for _, booking := range bookings {
		switch booking.Status {
		case models.BookingConfirmed:
			stats.Summary.ConfirmedBookings++
			stats.Summary.TotalEarnings += booking.TotalPrice
		case models.BookingCancelled:
			stats.Summary.CancelledBookings++
		}
	}

	for i := range hotels {
		hotel := hotels[i]
		hotel.Rooms = []models.Room{}
		for _, room := range rooms {
			if room.HotelID == hotel.ID {
				hotel.Rooms = append(hotel.Rooms, room)
			}
		}
		stats.Hotels = append(stats.Hotels, VendorHotel{Hotel: hotel, RoomCount: len(hotel.Rooms)})
	}

	views := joinBookings(bookings, true)
	stats.Bookings = views
	if len(views) > 5 {
		stats.RecentBookings = views[:5]
	} else {
		stats.RecentBookings = views
	}

	return &stats, nil
}

type CustomerTotals struct {
	TotalBookings     int     `json:"totalBookings"`
	UpcomingStays     int     `json:"upcomingStays"`
	CancelledBookings int     `json:"cancelledBookings"`
	TotalSpent        float64 `json:"totalSpent"`
}

type CustomerSummary struct {
	Summary         CustomerTotals   `json:"summary"`
	Bookings        []BookingView    `json:"bookings"`
	UpcomingBooking *BookingView     `json:"upcomingBooking,omitempty"`
	Payments        []models.Payment `json:"payments"`
	Wishlist        []models.Hotel   `json:"wishlist"`
	Recommendations []models.Hotel   `json:"recommendations"`
}

// ComputeCustomerSummary builds the customer dashboard. TotalSpent sums
// completed payments against the caller's bookings; the recommendation list
// is simply the first three hotels.
func ComputeCustomerSummary(customerID uint) (*CustomerSummary, error) {
	var bookings []models.Booking
	if err := storage.DB.Where("user_id = ?", customerID).
		Order("created_at DESC").
		Find(&bookings).Error; err != nil {
		return nil, err
	}

	summary := CustomerSummary{
		Bookings:        joinBookings(bookings, false),
		Payments:        []models.Payment{},
		Wishlist:        []models.Hotel{},
		Recommendations: []models.Hotel{},
	}
	summary.Summary.TotalBookings = len(bookings)

	bookingIDs := make([]uint, 0, len(bookings))
	for _, booking := range bookings {
		bookingIDs = append(bookingIDs, booking.ID)
		switch booking.Status {
		case models.BookingConfirmed:
			summary.Summary.UpcomingStays++
		case models.BookingCancelled:
			summary.Summary.CancelledBookings++
		}
	}

	for i := range summary.Bookings {
		if summary.Bookings[i].Status == models.BookingConfirmed {
			summary.UpcomingBooking = &summary.Bookings[i]
			break
		}
	}

	if len(bookingIDs) > 0 {
		if err := storage.DB.Where("booking_id IN ?", bookingIDs).
			Order("created_at DESC").
			Find(&summary.Payments).Error; err != nil {
			return nil, err
		}
		for _, payment := range summary.Payments {
			if payment.Status == models.PaymentCompleted {
				summary.Summary.TotalSpent += payment.Amount
			}
		}
	}

	var user models.User
	if err := storage.DB.First(&user, customerID).Error; err != nil {
		return nil, NewNotFoundError("User not found")
	}
	if wishlistIDs := user.WishlistIDs(); len(wishlistIDs) > 0 {
		storage.DB.Where("id IN ?", wishlistIDs).Find(&summary.Wishlist)
	}

	storage.DB.Limit(3).Find(&summary.Recommendations)

	return &summary, nil
}
