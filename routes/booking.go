package routes

import (
	"errors"
	"time"

	"github.com/Patelkeshav-03/staybook-booking-system/services"
	"github.com/Patelkeshav-03/staybook-booking-system/utils"
	"github.com/kataras/iris/v12"
)

type BookRoomInput struct {
	RoomID       uint   `json:"roomID" validate:"required"`
	CheckInDate  string `json:"checkInDate" validate:"required"`
	CheckOutDate string `json:"checkOutDate" validate:"required"`
}

// BookRoom creates a booking for the authenticated customer.
func BookRoom(ctx iris.Context) {
	userID := ctx.Values().Get("userID").(uint)

	var input BookRoomInput
	if err := ctx.ReadJSON(&input); err != nil {
		utils.HandleValidationErrors(err, ctx)
		return
	}

	checkIn, err := time.Parse("2006-01-02", input.CheckInDate)
	if err != nil {
		utils.CreateError(iris.StatusBadRequest, "Validation Error", "Invalid check-in date format", ctx)
		return
	}
	checkOut, err := time.Parse("2006-01-02", input.CheckOutDate)
	if err != nil {
		utils.CreateError(iris.StatusBadRequest, "Validation Error", "Invalid check-out date format", ctx)
		return
	}

	booking, err := services.CreateBooking(userID, input.RoomID, checkIn, checkOut)
	if err != nil {
		writeServiceError(err, ctx)
		return
	}

	ctx.StatusCode(iris.StatusCreated)
	ctx.JSON(booking)
}

// GetCustomerBookings lists the caller's bookings, newest first.
func GetCustomerBookings(ctx iris.Context) {
	userID := ctx.Values().Get("userID").(uint)

	bookings, err := services.BookingsForCustomer(userID)
	if err != nil {
		writeServiceError(err, ctx)
		return
	}

	ctx.JSON(bookings)
}

// CancelBooking cancels one of the caller's own bookings.
func CancelBooking(ctx iris.Context) {
	userID := ctx.Values().Get("userID").(uint)

	bookingID, err := ctx.Params().GetUint("id")
	if err != nil {
		utils.CreateError(iris.StatusBadRequest, "Validation Error", "Invalid booking id", ctx)
		return
	}

	booking, svcErr := services.CancelBooking(userID, bookingID)
	if svcErr != nil {
		writeServiceError(svcErr, ctx)
		return
	}

	ctx.JSON(booking)
}

// GetVendorBookings lists bookings across the caller's hotels.
func GetVendorBookings(ctx iris.Context) {
	userID := ctx.Values().Get("userID").(uint)

	bookings, err := services.BookingsForVendor(userID)
	if err != nil {
		writeServiceError(err, ctx)
		return
	}

	ctx.JSON(bookings)
}

// GetAdminBookings lists all bookings; supports status and inclusive
// creation-date range filters (?status=&startDate=&endDate=).
func GetAdminBookings(ctx iris.Context) {
	filter := services.AdminBookingFilter{
		Status: ctx.URLParamDefault("status", ""),
	}

	startDate := ctx.URLParamDefault("startDate", "")
	endDate := ctx.URLParamDefault("endDate", "")
	if startDate != "" && endDate != "" {
		start, startErr := time.Parse("2006-01-02", startDate)
		end, endErr := time.Parse("2006-01-02", endDate)
		if startErr != nil || endErr != nil {
			utils.CreateError(iris.StatusBadRequest, "Validation Error", "Invalid date range", ctx)
			return
		}
		// End of day keeps the range inclusive of endDate itself.
		end = end.Add(24*time.Hour - time.Nanosecond)
		filter.StartDate = &start
		filter.EndDate = &end
	}

	bookings, err := services.BookingsForAdmin(filter)
	if err != nil {
		writeServiceError(err, ctx)
		return
	}

	ctx.JSON(bookings)
}

// writeServiceError maps a service error kind onto its HTTP status.
func writeServiceError(err error, ctx iris.Context) {
	var svcErr *services.Error
	if errors.As(err, &svcErr) {
		switch svcErr.Kind {
		case services.ValidationError:
			utils.CreateError(iris.StatusBadRequest, "Validation Error", svcErr.Message, ctx)
		case services.NotFoundError:
			utils.CreateError(iris.StatusNotFound, "Not Found", svcErr.Message, ctx)
		case services.AuthorizationError:
			utils.CreateError(iris.StatusUnauthorized, "Not Authorized", svcErr.Message, ctx)
		default:
			utils.CreateInternalServerError(ctx)
		}
		return
	}
	utils.CreateInternalServerError(ctx)
}
