package utils

import (
	"github.com/Patelkeshav-03/staybook-booking-system/models"
	"github.com/Patelkeshav-03/staybook-booking-system/storage"
	"github.com/kataras/iris/v12"
	"github.com/kataras/iris/v12/middleware/jwt"
)

// UserIDFromTokenMiddleware extracts the user ID from the JWT claims and
// stores it in the request context for downstream handlers.
func UserIDFromTokenMiddleware(ctx iris.Context) {
	claims := jwt.Get(ctx).(*AccessToken)
	ctx.Values().Set("userID", claims.ID)
	ctx.Next()
}

// RoleMiddleware gates a party to one role. Blocked accounts are refused
// even with a valid token.
func RoleMiddleware(role string) iris.Handler {
	return func(ctx iris.Context) {
		claims := jwt.Get(ctx).(*AccessToken)
		if claims.Role != role {
			ctx.StatusCode(iris.StatusForbidden)
			ctx.JSON(iris.Map{"error": "forbidden", "message": role + " access required"})
			return
		}

		var user models.User
		if err := storage.DB.Select("id, is_blocked").First(&user, claims.ID).Error; err != nil {
			ctx.StatusCode(iris.StatusUnauthorized)
			ctx.JSON(iris.Map{"error": "unauthorized", "message": "account not found"})
			return
		}
		if user.IsBlocked {
			ctx.StatusCode(iris.StatusForbidden)
			ctx.JSON(iris.Map{"error": "forbidden", "message": "account is blocked"})
			return
		}

		ctx.Values().Set("userID", claims.ID)
		ctx.Next()
	}
}

func CustomerOnlyMiddleware(ctx iris.Context) { RoleMiddleware(models.RoleCustomer)(ctx) }

func AdminOnlyMiddleware(ctx iris.Context) { RoleMiddleware(models.RoleAdmin)(ctx) }

// VendorOnlyMiddleware additionally requires the vendor to have been
// approved by an admin before any vendor surface opens up.
func VendorOnlyMiddleware(ctx iris.Context) {
	claims := jwt.Get(ctx).(*AccessToken)
	if claims.Role != models.RoleVendor {
		ctx.StatusCode(iris.StatusForbidden)
		ctx.JSON(iris.Map{"error": "forbidden", "message": "vendor access required"})
		return
	}

	var user models.User
	if err := storage.DB.Select("id, is_blocked, vendor_status").First(&user, claims.ID).Error; err != nil {
		ctx.StatusCode(iris.StatusUnauthorized)
		ctx.JSON(iris.Map{"error": "unauthorized", "message": "account not found"})
		return
	}
	if user.IsBlocked {
		ctx.StatusCode(iris.StatusForbidden)
		ctx.JSON(iris.Map{"error": "forbidden", "message": "account is blocked"})
		return
	}
	if user.VendorStatus != models.VendorStatusApproved {
		ctx.StatusCode(iris.StatusForbidden)
		ctx.JSON(iris.Map{"error": "forbidden", "message": "vendor account pending approval"})
		return
	}

	ctx.Values().Set("userID", claims.ID)
	ctx.Next()
}
