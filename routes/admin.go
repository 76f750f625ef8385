package routes

import (
	"encoding/json"
	"strings"

	"github.com/Patelkeshav-03/staybook-booking-system/models"
	"github.com/Patelkeshav-03/staybook-booking-system/services"
	"github.com/Patelkeshav-03/staybook-booking-system/storage"
	"github.com/Patelkeshav-03/staybook-booking-system/utils"
	"github.com/kataras/iris/v12"
	"golang.org/x/exp/slices"
)

// GetAdminOverview returns the platform-wide dashboard aggregate.
func GetAdminOverview(ctx iris.Context) {
	overview, err := services.ComputeAdminOverview()
	if err != nil {
		writeServiceError(err, ctx)
		return
	}

	ctx.JSON(overview)
}

// AdminListUsers - GET /api/admin/users?search=
func AdminListUsers(ctx iris.Context) {
	search := strings.TrimSpace(ctx.URLParamDefault("search", ""))

	query := storage.DB.Model(&models.User{}).Order("created_at DESC")
	if search != "" {
		like := "%" + strings.ToLower(search) + "%"
		query = query.Where("lower(name) LIKE ? OR lower(email) LIKE ?", like, like)
	}

	users := []models.User{}
	if err := query.Find(&users).Error; err != nil {
		utils.CreateInternalServerError(ctx)
		return
	}

	ctx.JSON(users)
}

// AdminToggleUserBlock flips a user's blocked flag. Admin accounts are
// exempt.
func AdminToggleUserBlock(ctx iris.Context) {
	user := getAdminTargetUser(ctx)
	if user == nil {
		return
	}

	if user.Role == models.RoleAdmin {
		utils.CreateError(iris.StatusBadRequest, "Validation Error", "Cannot block an admin", ctx)
		return
	}

	user.IsBlocked = !user.IsBlocked
	if err := storage.DB.Save(user).Error; err != nil {
		utils.CreateInternalServerError(ctx)
		return
	}

	ctx.JSON(user)
}

type UpdateRoleInput struct {
	Role string `json:"role" validate:"required,oneof=customer vendor admin"`
}

// AdminUpdateUserRole changes a non-admin user's role.
func AdminUpdateUserRole(ctx iris.Context) {
	var input UpdateRoleInput
	if err := ctx.ReadJSON(&input); err != nil {
		utils.HandleValidationErrors(err, ctx)
		return
	}

	user := getAdminTargetUser(ctx)
	if user == nil {
		return
	}

	if user.Role == models.RoleAdmin {
		utils.CreateError(iris.StatusBadRequest, "Validation Error", "Cannot change admin role here", ctx)
		return
	}

	user.Role = input.Role
	if err := storage.DB.Save(user).Error; err != nil {
		utils.CreateInternalServerError(ctx)
		return
	}

	ctx.JSON(user)
}

// AdminDeleteUser removes a non-admin user.
func AdminDeleteUser(ctx iris.Context) {
	user := getAdminTargetUser(ctx)
	if user == nil {
		return
	}

	if user.Role == models.RoleAdmin {
		utils.CreateError(iris.StatusBadRequest, "Validation Error", "Cannot delete admin user", ctx)
		return
	}

	if err := storage.DB.Delete(user).Error; err != nil {
		utils.CreateInternalServerError(ctx)
		return
	}

	ctx.JSON(iris.Map{"id": user.ID})
}

// AdminListVendors lists vendors with their hotel and booking counts
// attached.
func AdminListVendors(ctx iris.Context) {
	vendors := []models.User{}
	if err := storage.DB.Where("role = ?", models.RoleVendor).
		Order("created_at DESC").
		Find(&vendors).Error; err != nil {
		utils.CreateInternalServerError(ctx)
		return
	}

	// The user's own MarshalJSON hides the password; merge the counts into
	// its output rather than embedding (embedding would promote that
	// marshaller and drop the extra fields).
	out := make([]map[string]interface{}, 0, len(vendors))
	for i := range vendors {
		vendor := &vendors[i]

		var hotels []models.Hotel
		storage.DB.Select("id").Where("vendor_id = ?", vendor.ID).Find(&hotels)
		hotelIDs := make([]uint, 0, len(hotels))
		for _, hotel := range hotels {
			hotelIDs = append(hotelIDs, hotel.ID)
		}

		var bookingCount int64
		if len(hotelIDs) > 0 {
			storage.DB.Model(&models.Booking{}).Where("hotel_id IN ?", hotelIDs).Count(&bookingCount)
		}

		raw, err := json.Marshal(vendor)
		if err != nil {
			utils.CreateInternalServerError(ctx)
			return
		}
		var fields map[string]interface{}
		if err := json.Unmarshal(raw, &fields); err != nil {
			utils.CreateInternalServerError(ctx)
			return
		}
		fields["hotelCount"] = len(hotels)
		fields["bookingCount"] = bookingCount

		out = append(out, fields)
	}

	ctx.JSON(out)
}

type VendorStatusInput struct {
	Status string `json:"status"`
}

// AdminUpdateVendorStatus approves or rejects a vendor account.
func AdminUpdateVendorStatus(ctx iris.Context) {
	var input VendorStatusInput
	if err := ctx.ReadJSON(&input); err != nil {
		utils.HandleValidationErrors(err, ctx)
		return
	}

	allowed := []string{models.VendorStatusApproved, models.VendorStatusRejected, models.VendorStatusPending}
	if !slices.Contains(allowed, input.Status) {
		utils.CreateError(iris.StatusBadRequest, "Validation Error", "Invalid status", ctx)
		return
	}

	vendor := getAdminTargetUser(ctx)
	if vendor == nil {
		return
	}
	if vendor.Role != models.RoleVendor {
		utils.CreateError(iris.StatusNotFound, "Not Found", "Vendor not found", ctx)
		return
	}

	vendor.VendorStatus = input.Status
	if err := storage.DB.Save(vendor).Error; err != nil {
		utils.CreateInternalServerError(ctx)
		return
	}

	ctx.JSON(vendor)
}

// AdminListHotels lists every hotel, newest first.
func AdminListHotels(ctx iris.Context) {
	hotels := []models.Hotel{}
	if err := storage.DB.Order("created_at DESC").Find(&hotels).Error; err != nil {
		utils.CreateInternalServerError(ctx)
		return
	}

	ctx.JSON(hotels)
}

// AdminToggleHotelStatus flips a hotel's active flag.
func AdminToggleHotelStatus(ctx iris.Context) {
	hotelID, err := ctx.Params().GetUint("id")
	if err != nil {
		utils.CreateError(iris.StatusBadRequest, "Validation Error", "Invalid hotel id", ctx)
		return
	}

	var hotel models.Hotel
	if err := storage.DB.First(&hotel, hotelID).Error; err != nil {
		utils.CreateError(iris.StatusNotFound, "Not Found", "Hotel not found", ctx)
		return
	}

	active := hotel.IsActive == nil || !*hotel.IsActive
	hotel.IsActive = &active
	if err := storage.DB.Save(&hotel).Error; err != nil {
		utils.CreateInternalServerError(ctx)
		return
	}

	ctx.JSON(&hotel)
}

func getAdminTargetUser(ctx iris.Context) *models.User {
	userID, err := ctx.Params().GetUint("id")
	if err != nil {
		utils.CreateError(iris.StatusBadRequest, "Validation Error", "Invalid user id", ctx)
		return nil
	}

	var user models.User
	if err := storage.DB.First(&user, userID).Error; err != nil {
		utils.CreateError(iris.StatusNotFound, "Not Found", "User not found", ctx)
		return nil
	}

	return &user
}
