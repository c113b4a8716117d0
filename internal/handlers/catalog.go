package handlers

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/example/maya-portal/internal/store"
	"github.com/example/maya-portal/internal/utils"
)

// CatalogHandler serves the public browsing endpoints.
type CatalogHandler struct {
	catalog store.Catalog
	hotels  store.Hotels
}

// NewCatalogHandler constructs CatalogHandler.
func NewCatalogHandler(catalog store.Catalog, hotels store.Hotels) *CatalogHandler {
	return &CatalogHandler{catalog: catalog, hotels: hotels}
}

// ListHotels returns all listed hotels.
func (h *CatalogHandler) ListHotels(c *fiber.Ctx) error {
	hotels, err := h.hotels.ListHotels(c.Context())
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{"success": true, "data": hotels})
}

// ListRestaurants returns all listed restaurants.
func (h *CatalogHandler) ListRestaurants(c *fiber.Ctx) error {
	restaurants, err := h.catalog.ListRestaurants(c.Context())
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{"success": true, "data": restaurants})
}

// ListExperiences returns all listed experiences.
func (h *CatalogHandler) ListExperiences(c *fiber.Ctx) error {
	experiences, err := h.catalog.ListExperiences(c.Context())
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{"success": true, "data": experiences})
}

// ListProducts returns paginated artisan products.
func (h *CatalogHandler) ListProducts(c *fiber.Ctx) error {
	pg := utils.ParsePagination(c)

	products, total, err := h.catalog.ListProducts(c.Context(), pg.Limit, pg.Offset)
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    products,
		"pagination": fiber.Map{
			"current_page":   pg.Page,
			"items_per_page": pg.Limit,
			"total_items":    total,
		},
	})
}

// GetProduct returns a single product by ID.
func (h *CatalogHandler) GetProduct(c *fiber.Ctx) error {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid id")
	}

	product, err := h.catalog.ProductByID(c.Context(), id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "product not found")
		}
		return err
	}

	return c.JSON(fiber.Map{"success": true, "data": product})
}
