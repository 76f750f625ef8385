package routes

import (
	"encoding/json"

	"github.com/Patelkeshav-03/staybook-booking-system/models"
	"github.com/Patelkeshav-03/staybook-booking-system/services"
	"github.com/Patelkeshav-03/staybook-booking-system/storage"
	"github.com/Patelkeshav-03/staybook-booking-system/utils"
	"github.com/kataras/iris/v12"
)

// GetVendorStats returns the vendor dashboard aggregate.
func GetVendorStats(ctx iris.Context) {
	userID := ctx.Values().Get("userID").(uint)

	stats, err := services.ComputeVendorStats(userID)
	if err != nil {
		writeServiceError(err, ctx)
		return
	}

	ctx.JSON(stats)
}

type HotelInput struct {
	Name        string   `json:"name" validate:"required,max=50"`
	Location    string   `json:"location" validate:"required"`
	Description string   `json:"description" validate:"required,max=500"`
	Amenities   []string `json:"amenities"`
	Images      []string `json:"images"`
}

func CreateHotel(ctx iris.Context) {
	userID := ctx.Values().Get("userID").(uint)

	var input HotelInput
	if err := ctx.ReadJSON(&input); err != nil {
		utils.HandleValidationErrors(err, ctx)
		return
	}

	amenities, _ := json.Marshal(input.Amenities)
	imageURLs, _ := json.Marshal(input.Images)

	hotel := models.Hotel{
		VendorID:    userID,
		Name:        input.Name,
		Location:    input.Location,
		Description: input.Description,
		Amenities:   amenities,
		ImageURLs:   imageURLs,
	}

	if err := storage.DB.Create(&hotel).Error; err != nil {
		utils.CreateInternalServerError(ctx)
		return
	}

	ctx.StatusCode(iris.StatusCreated)
	ctx.JSON(&hotel)
}

type HotelUpdateInput struct {
	Name        string   `json:"name" validate:"omitempty,max=50"`
	Location    string   `json:"location"`
	Description string   `json:"description" validate:"omitempty,max=500"`
	Amenities   []string `json:"amenities"`
	Images      []string `json:"images"`
}

func UpdateHotel(ctx iris.Context) {
	userID := ctx.Values().Get("userID").(uint)

	hotel := getOwnedHotel(ctx, userID)
	if hotel == nil {
		return
	}

	var input HotelUpdateInput
	if err := ctx.ReadJSON(&input); err != nil {
		utils.HandleValidationErrors(err, ctx)
		return
	}

	if input.Name != "" {
		hotel.Name = input.Name
	}
	if input.Location != "" {
		hotel.Location = input.Location
	}
	if input.Description != "" {
		hotel.Description = input.Description
	}
	if input.Amenities != nil {
		amenities, _ := json.Marshal(input.Amenities)
		hotel.Amenities = amenities
	}
	if input.Images != nil {
		imageURLs, _ := json.Marshal(input.Images)
		hotel.ImageURLs = imageURLs
	}

	if err := storage.DB.Save(hotel).Error; err != nil {
		utils.CreateInternalServerError(ctx)
		return
	}

	ctx.JSON(hotel)
}

// DeleteHotel removes a hotel and all of its rooms. Existing bookings keep
// their denormalized hotel id and are left in place.
func DeleteHotel(ctx iris.Context) {
	userID := ctx.Values().Get("userID").(uint)

	hotel := getOwnedHotel(ctx, userID)
	if hotel == nil {
		return
	}

	if err := storage.DB.Delete(hotel).Error; err != nil {
		utils.CreateInternalServerError(ctx)
		return
	}
	storage.DB.Where("hotel_id = ?", hotel.ID).Delete(&models.Room{})

	ctx.JSON(iris.Map{"id": hotel.ID})
}

type RoomInput struct {
	RoomType      string  `json:"roomType" validate:"required"`
	PricePerNight float64 `json:"pricePerNight" validate:"required,gt=0"`
	Count         int     `json:"count" validate:"omitempty,min=1"`
}

func CreateRoom(ctx iris.Context) {
	userID := ctx.Values().Get("userID").(uint)

	hotel := getOwnedHotel(ctx, userID)
	if hotel == nil {
		return
	}

	var input RoomInput
	if err := ctx.ReadJSON(&input); err != nil {
		utils.HandleValidationErrors(err, ctx)
		return
	}

	count := input.Count
	if count == 0 {
		count = 1
	}

	room := models.Room{
		HotelID:       hotel.ID,
		RoomType:      input.RoomType,
		PricePerNight: input.PricePerNight,
		Count:         count,
	}

	if err := storage.DB.Create(&room).Error; err != nil {
		utils.CreateInternalServerError(ctx)
		return
	}

	ctx.StatusCode(iris.StatusCreated)
	ctx.JSON(room)
}

type RoomUpdateInput struct {
	RoomType      string   `json:"roomType"`
	PricePerNight *float64 `json:"pricePerNight" validate:"omitempty,gt=0"`
	Count         *int     `json:"count" validate:"omitempty,min=1"`
	IsAvailable   *bool    `json:"isAvailable"`
}

func UpdateRoom(ctx iris.Context) {
	userID := ctx.Values().Get("userID").(uint)

	room := getOwnedRoom(ctx, userID)
	if room == nil {
		return
	}

	var input RoomUpdateInput
	if err := ctx.ReadJSON(&input); err != nil {
		utils.HandleValidationErrors(err, ctx)
		return
	}

	if input.RoomType != "" {
		room.RoomType = input.RoomType
	}
	if input.PricePerNight != nil {
		room.PricePerNight = *input.PricePerNight
	}
	if input.Count != nil {
		room.Count = *input.Count
	}
	if input.IsAvailable != nil {
		room.IsAvailable = input.IsAvailable
	}

	if err := storage.DB.Save(room).Error; err != nil {
		utils.CreateInternalServerError(ctx)
		return
	}

	ctx.JSON(room)
}

func DeleteRoom(ctx iris.Context) {
	userID := ctx.Values().Get("userID").(uint)

	room := getOwnedRoom(ctx, userID)
	if room == nil {
		return
	}

	if err := storage.DB.Delete(room).Error; err != nil {
		utils.CreateInternalServerError(ctx)
		return
	}

	ctx.JSON(iris.Map{"id": room.ID})
}

// getOwnedHotel resolves the {id} route param to a hotel owned by the
// caller, writing the error response itself when it can't.
func getOwnedHotel(ctx iris.Context, userID uint) *models.Hotel {
	hotelID, err := ctx.Params().GetUint("id")
	if err != nil {
		utils.CreateError(iris.StatusBadRequest, "Validation Error", "Invalid hotel id", ctx)
		return nil
	}

	var hotel models.Hotel
	if err := storage.DB.First(&hotel, hotelID).Error; err != nil {
		utils.CreateError(iris.StatusNotFound, "Not Found", "Hotel not found", ctx)
		return nil
	}

	if hotel.VendorID != userID {
		utils.CreateError(iris.StatusUnauthorized, "Not Authorized", "User not authorized", ctx)
		return nil
	}

	return &hotel
}

func getOwnedRoom(ctx iris.Context, userID uint) *models.Room {
	roomID, err := ctx.Params().GetUint("id")
	if err != nil {
		utils.CreateError(iris.StatusBadRequest, "Validation Error", "Invalid room id", ctx)
		return nil
	}

	var room models.Room
	if err := storage.DB.First(&room, roomID).Error; err != nil {
		utils.CreateError(iris.StatusNotFound, "Not Found", "Room not found", ctx)
		return nil
	}

	var hotel models.Hotel
	if err := storage.DB.First(&hotel, room.HotelID).Error; err != nil {
		utils.CreateError(iris.StatusNotFound, "Not Found", "Hotel not found", ctx)
		return nil
	}
	if hotel.VendorID != userID {
		utils.CreateError(iris.StatusUnauthorized, "Not Authorized", "User not authorized", ctx)
		return nil
	}

	return &room
}
