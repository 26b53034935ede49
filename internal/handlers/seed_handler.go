package handlers

import (
	"log"

	"github.com/gofiber/fiber/v2"

	"github.com/FrancoPlomer/teslo-shop/internal/services"
)

// SeedHandler exposes the catalog reset workflow.
type SeedHandler struct {
	service *services.SeedService
}

// NewSeedHandler creates a new SeedHandler.
func NewSeedHandler(service *services.SeedService) *SeedHandler {
	return &SeedHandler{
		service: service,
	}
}

// RegisterRoutes registers the seed route with the Fiber app.
func (h *SeedHandler) RegisterRoutes(router fiber.Router) {
	router.Get("/seed", h.HandleSeed)
}

// HandleSeed wipes the catalog and reloads the fixture products.
func (h *SeedHandler) HandleSeed(c *fiber.Ctx) error {
	count, err := h.service.Run(c.Context())
	if err != nil {
		log.Printf("Error seeding catalog: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not seed catalog",
		})
	}

	return c.JSON(fiber.Map{
		"message": "Seed executed",
		"count":   count,
	})
}
