package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/example/maya-portal/internal/config"
	"github.com/example/maya-portal/internal/handlers"
	"github.com/example/maya-portal/internal/ledger"
	"github.com/example/maya-portal/internal/middleware"
	"github.com/example/maya-portal/internal/store"
)

// Register wires up all HTTP routes.
func Register(app *fiber.App, st store.Store, l *ledger.Ledger, cfg *config.Config) {
	authHandler := handlers.NewAuthHandler(st, cfg)
	catalogHandler := handlers.NewCatalogHandler(st, st)
	reservationHandler := handlers.NewReservationHandler(l)
	hotelHandler := handlers.NewHotelHandler(st)

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "healthy"})
	})

	api := app.Group("/api")

	// Auth routes
	auth := api.Group("/auth")
	auth.Post("/register", authHandler.Register)
	auth.Post("/login", authHandler.Login)

	// Public catalog routes
	api.Get("/hotels", catalogHandler.ListHotels)
	api.Get("/restaurants", catalogHandler.ListRestaurants)
	api.Get("/experiences", catalogHandler.ListExperiences)
	api.Get("/products", catalogHandler.ListProducts)
	api.Get("/products/:id", catalogHandler.GetProduct)

	// Protected routes
	protected := api.Group("", middleware.AuthMiddleware(cfg))

	protected.Get("/auth/me", authHandler.Me)

	protected.Post("/reservations/hotel", reservationHandler.CreateHotelReservation)
	protected.Post("/reservations/experience", reservationHandler.CreateExperienceReservation)
	protected.Post("/reservations/restaurant", reservationHandler.CreateRestaurantOrder)
	protected.Post("/purchases", reservationHandler.CreatePurchase)
	protected.Get("/user/history", reservationHandler.GetHistory)
	protected.Delete("/reservations/:id", reservationHandler.CancelReservation)

	protected.Get("/hotels/:id/ownership", hotelHandler.CheckOwnership)
}
