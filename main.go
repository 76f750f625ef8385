package main

import (
	"os"

	"github.com/Patelkeshav-03/staybook-booking-system/routes"
	"github.com/Patelkeshav-03/staybook-booking-system/storage"
	"github.com/Patelkeshav-03/staybook-booking-system/utils"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/kataras/iris/v12"
	"github.com/kataras/iris/v12/middleware/jwt"
)

func main() {
	godotenv.Load()
	storage.InitializeDB()
	storage.InitializeRedis()

	app := iris.New()
	app.Validator = validator.New()

	app.AllowMethods(iris.MethodOptions)
	app.UseRouter(func(ctx iris.Context) {
		ctx.Header("Access-Control-Allow-Origin", ctx.GetHeader("Origin"))
		ctx.Header("Vary", "Origin")
		ctx.Header("Access-Control-Allow-Credentials", "true")
		ctx.Header("Access-Control-Allow-Headers", "Authorization, Content-Type, X-Requested-With")
		ctx.Header("Access-Control-Allow-Methods", "GET,POST,PATCH,PUT,DELETE,OPTIONS")
		if ctx.Method() == iris.MethodOptions {
			ctx.StatusCode(iris.StatusNoContent)
			return
		}
		ctx.Next()
	})

	app.Use(iris.Compression)

	accessTokenVerifier := jwt.NewVerifier(jwt.HS256, []byte(os.Getenv("ACCESS_TOKEN_SECRET")))
	accessTokenVerifier.WithDefaultBlocklist()
	accessTokenVerifierMiddleware := accessTokenVerifier.Verify(func() interface{} {
		return new(utils.AccessToken)
	})

	refreshTokenVerifier := jwt.NewVerifier(jwt.HS256, []byte(os.Getenv("REFRESH_TOKEN_SECRET")))
	refreshTokenVerifier.WithDefaultBlocklist()
	refreshTokenVerifierMiddleware := refreshTokenVerifier.Verify(func() interface{} {
		return new(jwt.Claims)
	})

	refreshTokenVerifier.Extractors = append(refreshTokenVerifier.Extractors, func(ctx iris.Context) string {
		var tokenInput utils.RefreshTokenInput
		err := ctx.ReadJSON(&tokenInput)
		if err != nil {
			return ""
		}

		return tokenInput.RefreshToken
	})

	auth := app.Party("/api/auth")
	{
		auth.Post("/register", routes.Register)
		auth.Post("/login", routes.Login)
		auth.Post("/refresh", refreshTokenVerifierMiddleware, utils.RefreshToken)
		auth.Get("/me", accessTokenVerifierMiddleware, routes.GetCurrentUser)
		auth.Patch("/me", accessTokenVerifierMiddleware, routes.UpdateProfile)
	}

	public := app.Party("/api/public")
	{
		public.Get("/hotels", routes.GetHotels)
		public.Get("/hotels/{id:uint}/rooms", routes.GetHotelRooms)
	}

	customer := app.Party("/api/customer", accessTokenVerifierMiddleware, utils.CustomerOnlyMiddleware)
	{
		customer.Get("/summary", routes.GetCustomerSummary)
		customer.Post("/bookings", routes.BookRoom)
		customer.Get("/bookings", routes.GetCustomerBookings)
		customer.Put("/bookings/{id:uint}/cancel", routes.CancelBooking)
		customer.Post("/wishlist", routes.AddToWishlist)
		customer.Get("/wishlist", routes.GetWishlist)
		customer.Delete("/wishlist/{hotelID:uint}", routes.RemoveFromWishlist)
	}

	vendor := app.Party("/api/vendor", accessTokenVerifierMiddleware, utils.VendorOnlyMiddleware)
	{
		vendor.Get("/stats", routes.GetVendorStats)
		vendor.Get("/bookings", routes.GetVendorBookings)
		vendor.Post("/hotels", routes.CreateHotel)
		vendor.Put("/hotels/{id:uint}", routes.UpdateHotel)
		vendor.Delete("/hotels/{id:uint}", routes.DeleteHotel)
		vendor.Post("/hotels/{id:uint}/rooms", routes.CreateRoom)
		vendor.Put("/rooms/{id:uint}", routes.UpdateRoom)
		vendor.Delete("/rooms/{id:uint}", routes.DeleteRoom)
	}

	admin := app.Party("/api/admin", accessTokenVerifierMiddleware, utils.AdminOnlyMiddleware)
	{
		admin.Get("/overview", routes.GetAdminOverview)
		admin.Get("/users", routes.AdminListUsers)
		admin.Put("/users/{id:uint}/block", routes.AdminToggleUserBlock)
		admin.Put("/users/{id:uint}/role", routes.AdminUpdateUserRole)
		admin.Delete("/users/{id:uint}", routes.AdminDeleteUser)
		admin.Get("/vendors", routes.AdminListVendors)
		admin.Put("/vendors/{id:uint}/status", routes.AdminUpdateVendorStatus)
		admin.Get("/hotels", routes.AdminListHotels)
		admin.Put("/hotels/{id:uint}/toggle", routes.AdminToggleHotelStatus)
		admin.Get("/bookings", routes.GetAdminBookings)
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = "5000"
	}

	app.Listen(":" + port)
}
