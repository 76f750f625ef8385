package routes

import (
	"github.com/Patelkeshav-03/staybook-booking-system/models"
	"github.com/Patelkeshav-03/staybook-booking-system/storage"
	"github.com/Patelkeshav-03/staybook-booking-system/utils"
	"github.com/kataras/iris/v12"
)

// GetHotels lists every hotel for the public browse surface.
func GetHotels(ctx iris.Context) {
	hotels := []models.Hotel{}
	if err := storage.DB.Find(&hotels).Error; err != nil {
		utils.CreateInternalServerError(ctx)
		return
	}

	ctx.JSON(hotels)
}

// GetHotelRooms lists the rooms of one hotel.
func GetHotelRooms(ctx iris.Context) {
	hotelID, err := ctx.Params().GetUint("id")
	if err != nil {
		utils.CreateError(iris.StatusBadRequest, "Validation Error", "Invalid hotel id", ctx)
		return
	}

	rooms := []models.Room{}
	if err := storage.DB.Where("hotel_id = ?", hotelID).Find(&rooms).Error; err != nil {
		utils.CreateInternalServerError(ctx)
		return
	}

	ctx.JSON(rooms)
}
