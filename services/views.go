package services

import (
	"github.com/Patelkeshav-03/staybook-booking-system/models"
	"github.com/Patelkeshav-03/staybook-booking-system/storage"
)

// Projections attached to bookings for display. Deliberately narrow field
// sets; UserSummary in particular never carries the password hash.
type UserSummary struct {
	ID    uint   `json:"ID"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

type HotelSummary struct {
	ID       uint   `json:"ID"`
	Name     string `json:"name"`
	Location string `json:"location"`
}

type RoomSummary struct {
	ID            uint    `json:"ID"`
	RoomType      string  `json:"roomType"`
	PricePerNight float64 `json:"pricePerNight"`
}

type BookingView struct {
	models.Booking
	User  *UserSummary  `json:"user,omitempty"`
	Hotel *HotelSummary `json:"hotel,omitempty"`
	Room  *RoomSummary  `json:"room,omitempty"`
}

// joinBookings attaches hotel/room (and optionally renter) projections to a
// booking list by id-matching in memory.
func joinBookings(bookings []models.Booking, withUser bool) []BookingView {
	views := make([]BookingView, 0, len(bookings))
	if len(bookings) == 0 {
		return views
	}

	hotelIDs := make([]uint, 0, len(bookings))
	roomIDs := make([]uint, 0, len(bookings))
	userIDs := make([]uint, 0, len(bookings))
	for _, booking := range bookings {
		hotelIDs = append(hotelIDs, booking.HotelID)
		roomIDs = append(roomIDs, booking.RoomID)
		userIDs = append(userIDs, booking.UserID)
	}

	var hotels []models.Hotel
	storage.DB.Select("id, name, location").Where("id IN ?", hotelIDs).Find(&hotels)
	hotelsByID := make(map[uint]*HotelSummary, len(hotels))
	for _, hotel := range hotels {
		hotelsByID[hotel.ID] = &HotelSummary{ID: hotel.ID, Name: hotel.Name, Location: hotel.Location}
	}

	var rooms []models.Room
	storage.DB.Select("id, room_type, price_per_night").Where("id IN ?", roomIDs).Find(&rooms)
	roomsByID := make(map[uint]*RoomSummary, len(rooms))
	for _, room := range rooms {
		roomsByID[room.ID] = &RoomSummary{ID: room.ID, RoomType: room.RoomType, PricePerNight: room.PricePerNight}
	}

	usersByID := map[uint]*UserSummary{}
	if withUser {
		var users []models.User
		storage.DB.Select("id, name, email").Where("id IN ?", userIDs).Find(&users)
		for _, user := range users {
			usersByID[user.ID] = &UserSummary{ID: user.ID, Name: user.Name, Email: user.Email}
		}
	}

	for _, booking := range bookings {
		view := BookingView{
			Booking: booking,
			Hotel:   hotelsByID[booking.HotelID],
			Room:    roomsByID[booking.RoomID],
		}
		if withUser {
			view.User = usersByID[booking.UserID]
		}
		views = append(views, view)
	}
	return views
}
