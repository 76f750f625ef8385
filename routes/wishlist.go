package routes

import (
	"github.com/Patelkeshav-03/staybook-booking-system/models"
	"github.com/Patelkeshav-03/staybook-booking-system/storage"
	"github.com/Patelkeshav-03/staybook-booking-system/utils"
	"github.com/kataras/iris/v12"
	"golang.org/x/exp/slices"
)

type WishlistInput struct {
	HotelID uint `json:"hotelID" validate:"required"`
}

// AddToWishlist saves a hotel onto the caller's wishlist.
func AddToWishlist(ctx iris.Context) {
	userID := ctx.Values().Get("userID").(uint)

	var input WishlistInput
	if err := ctx.ReadJSON(&input); err != nil {
		utils.HandleValidationErrors(err, ctx)
		return
	}

	var hotel models.Hotel
	if err := storage.DB.First(&hotel, input.HotelID).Error; err != nil {
		utils.CreateError(iris.StatusNotFound, "Not Found", "Hotel not found", ctx)
		return
	}

	var user models.User
	if err := storage.DB.First(&user, userID).Error; err != nil {
		utils.CreateNotFound(ctx)
		return
	}

	wishlist := user.WishlistIDs()
	if slices.Contains(wishlist, input.HotelID) {
		utils.CreateError(iris.StatusBadRequest, "Validation Error", "Hotel already in wishlist", ctx)
		return
	}

	wishlist = append(wishlist, input.HotelID)
	user.SetWishlistIDs(wishlist)

	if err := storage.DB.Save(&user).Error; err != nil {
		utils.CreateInternalServerError(ctx)
		return
	}

	ctx.JSON(iris.Map{"message": "Hotel added to wishlist", "wishlist": wishlist})
}

// RemoveFromWishlist drops a hotel from the caller's wishlist. Removing an
// absent hotel succeeds quietly.
func RemoveFromWishlist(ctx iris.Context) {
	userID := ctx.Values().Get("userID").(uint)

	hotelID, err := ctx.Params().GetUint("hotelID")
	if err != nil {
		utils.CreateError(iris.StatusBadRequest, "Validation Error", "Invalid hotel id", ctx)
		return
	}

	var user models.User
	if err := storage.DB.First(&user, userID).Error; err != nil {
		utils.CreateNotFound(ctx)
		return
	}

	wishlist := user.WishlistIDs()
	if idx := slices.Index(wishlist, hotelID); idx >= 0 {
		wishlist = slices.Delete(wishlist, idx, idx+1)
	}
	user.SetWishlistIDs(wishlist)

	if err := storage.DB.Save(&user).Error; err != nil {
		utils.CreateInternalServerError(ctx)
		return
	}

	ctx.JSON(iris.Map{"message": "Hotel removed from wishlist", "wishlist": wishlist})
}

// GetWishlist returns the hotels on the caller's wishlist.
func GetWishlist(ctx iris.Context) {
	userID := ctx.Values().Get("userID").(uint)

	var user models.User
	if err := storage.DB.First(&user, userID).Error; err != nil {
		utils.CreateNotFound(ctx)
		return
	}

	hotels := []models.Hotel{}
	if ids := user.WishlistIDs(); len(ids) > 0 {
		storage.DB.Where("id IN ?", ids).Find(&hotels)
	}

	ctx.JSON(iris.Map{"wishlist": hotels})
}
