package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/example/maya-portal/internal/ledger"
	"github.com/example/maya-portal/internal/middleware"
)

// ReservationHandler manages the authenticated booking endpoints.
type ReservationHandler struct {
	ledger *ledger.Ledger
}

// NewReservationHandler constructs ReservationHandler.
func NewReservationHandler(l *ledger.Ledger) *ReservationHandler {
	return &ReservationHandler{ledger: l}
}

type createHotelReservationRequest struct {
	Name         string   `json:"name"`
	Total        float64  `json:"total"`
	CheckinDate  string   `json:"checkin_date"`
	CheckoutDate string   `json:"checkout_date"`
	Addons       []string `json:"addons"`
}

// CreateHotelReservation appends a hotel reservation to the caller's history.
func (h *ReservationHandler) CreateHotelReservation(c *fiber.Ctx) error {
	identity, ok := middleware.GetCurrentUser(c)
	if !ok {
		return fiber.NewError(fiber.StatusUnauthorized, "unauthorized")
	}

	var req createHotelReservationRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}
	if msg := validateBooking(req.Name, req.Total); msg != "" {
		return fiber.NewError(fiber.StatusBadRequest, msg)
	}

	reservation := h.ledger.AppendHotel(identity.ID, ledger.HotelRequest{
		Name:         req.Name,
		Total:        req.Total,
		CheckinDate:  req.CheckinDate,
		CheckoutDate: req.CheckoutDate,
		Addons:       req.Addons,
	})

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"success": true, "data": reservation})
}

type createExperienceReservationRequest struct {
	Name    string  `json:"name"`
	Total   float64 `json:"total"`
	Guests  int     `json:"personas"`
	Details string  `json:"details"`
}

// CreateExperienceReservation appends an experience reservation.
func (h *ReservationHandler) CreateExperienceReservation(c *fiber.Ctx) error {
	identity, ok := middleware.GetCurrentUser(c)
	if !ok {
		return fiber.NewError(fiber.StatusUnauthorized, "unauthorized")
	}

	var req createExperienceReservationRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}
	if msg := validateBooking(req.Name, req.Total); msg != "" {
		return fiber.NewError(fiber.StatusBadRequest, msg)
	}
	if req.Guests < 1 {
		return fiber.NewError(fiber.StatusBadRequest, "personas must be at least 1")
	}

	reservation := h.ledger.AppendExperience(identity.ID, ledger.ExperienceRequest{
		Name:    req.Name,
		Total:   req.Total,
		Guests:  req.Guests,
		Details: req.Details,
	})

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"success": true, "data": reservation})
}

type createRestaurantOrderRequest struct {
	Name  string   `json:"name"`
	Total float64  `json:"total"`
	Items []string `json:"items"`
}

// CreateRestaurantOrder appends a restaurant order.
func (h *ReservationHandler) CreateRestaurantOrder(c *fiber.Ctx) error {
	identity, ok := middleware.GetCurrentUser(c)
	if !ok {
		return fiber.NewError(fiber.StatusUnauthorized, "unauthorized")
	}

	var req createRestaurantOrderRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}
	if msg := validateBooking(req.Name, req.Total); msg != "" {
		return fiber.NewError(fiber.StatusBadRequest, msg)
	}

	order := h.ledger.AppendRestaurant(identity.ID, ledger.RestaurantRequest{
		Name:  req.Name,
		Total: req.Total,
		Items: req.Items,
	})

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"success": true, "data": order})
}

type createPurchaseRequest struct {
	Name  string   `json:"name"`
	Total float64  `json:"total"`
	Items []string `json:"items"`
}

// CreatePurchase appends a marketplace purchase.
func (h *ReservationHandler) CreatePurchase(c *fiber.Ctx) error {
	identity, ok := middleware.GetCurrentUser(c)
	if !ok {
		return fiber.NewError(fiber.StatusUnauthorized, "unauthorized")
	}

	var req createPurchaseRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}
	if msg := validateBooking(req.Name, req.Total); msg != "" {
		return fiber.NewError(fiber.StatusBadRequest, msg)
	}

	purchase := h.ledger.AppendPurchase(identity.ID, ledger.PurchaseRequest{
		Name:  req.Name,
		Total: req.Total,
		Items: req.Items,
	})

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"success": true, "data": purchase})
}

// GetHistory returns the caller's full booking history.
func (h *ReservationHandler) GetHistory(c *fiber.Ctx) error {
	identity, ok := middleware.GetCurrentUser(c)
	if !ok {
		return fiber.NewError(fiber.StatusUnauthorized, "unauthorized")
	}

	return c.JSON(fiber.Map{"success": true, "data": h.ledger.Snapshot(identity.ID)})
}

// CancelReservation cancels a reservation in the caller's history.
func (h *ReservationHandler) CancelReservation(c *fiber.Ctx) error {
	identity, ok := middleware.GetCurrentUser(c)
	if !ok {
		return fiber.NewError(fiber.StatusUnauthorized, "unauthorized")
	}

	id := c.Params("id")
	if id == "" {
		return fiber.NewError(fiber.StatusBadRequest, "invalid id")
	}

	if err := h.ledger.Cancel(identity.ID, id); err != nil {
		switch {
		case errors.Is(err, ledger.ErrNotFound):
			return fiber.NewError(fiber.StatusNotFound, "reservation not found")
		case errors.Is(err, ledger.ErrAlreadyCancelled):
			return fiber.NewError(fiber.StatusConflict, "reservation already cancelled")
		default:
			return err
		}
	}

	return c.JSON(fiber.Map{"success": true})
}

func validateBooking(name string, total float64) string {
	if name == "" {
		return "name is required"
	}
	if total < 0 {
		return "total must not be negative"
	}
	return ""
}
