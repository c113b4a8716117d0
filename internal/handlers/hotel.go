package handlers

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/example/maya-portal/internal/auth"
	"github.com/example/maya-portal/internal/middleware"
	"github.com/example/maya-portal/internal/store"
)

// HotelHandler serves owner-scoped hotel endpoints.
type HotelHandler struct {
	hotels store.Hotels
}

// NewHotelHandler constructs HotelHandler.
func NewHotelHandler(hotels store.Hotels) *HotelHandler {
	return &HotelHandler{hotels: hotels}
}

// CheckOwnership reports whether the caller may manage the hotel.
// Admins are always allowed; a nonexistent hotel is simply not allowed.
func (h *HotelHandler) CheckOwnership(c *fiber.Ctx) error {
	identity, ok := middleware.GetCurrentUser(c)
	if !ok {
		return fiber.NewError(fiber.StatusUnauthorized, "unauthorized")
	}

	hotelID, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid id")
	}

	allowed, err := auth.AuthorizeHotelOwner(c.Context(), identity, hotelID, h.hotels)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "failed to verify ownership")
	}

	return c.JSON(fiber.Map{"success": true, "allowed": allowed})
}
