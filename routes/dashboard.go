package routes

import (
	"github.com/Patelkeshav-03/staybook-booking-system/services"
	"github.com/kataras/iris/v12"
)

// GetCustomerSummary returns the customer dashboard aggregate: bookings with
// projections, spend, wishlist hotels and recommendations.
func GetCustomerSummary(ctx iris.Context) {
	userID := ctx.Values().Get("userID").(uint)

	summary, err := services.ComputeCustomerSummary(userID)
	if err != nil {
		writeServiceError(err, ctx)
		return
	}

	ctx.JSON(summary)
}
