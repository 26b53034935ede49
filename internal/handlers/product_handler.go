package handlers

import (
	"errors"
	"fmt"
	"log"
	"net/url"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/FrancoPlomer/teslo-shop/internal/models"
	"github.com/FrancoPlomer/teslo-shop/internal/services"
)

// ProductHandler handles HTTP requests for products.
type ProductHandler struct {
	service  *services.ProductService
	validate *validator.Validate
}

// NewProductHandler creates a new ProductHandler.
func NewProductHandler(service *services.ProductService) *ProductHandler {
	return &ProductHandler{
		service:  service,
		validate: validator.New(),
	}
}

// RegisterRoutes registers the product routes with the Fiber app.
func (h *ProductHandler) RegisterRoutes(router fiber.Router) {
	productRoutes := router.Group("/products")
	productRoutes.Post("/", h.HandleCreateProduct)
	productRoutes.Get("/", h.HandleListProducts)
	productRoutes.Get("/:term", h.HandleGetProduct)
	productRoutes.Patch("/:id", h.HandleUpdateProduct)
	productRoutes.Delete("/:id", h.HandleDeleteProduct)
}

// HandleCreateProduct creates a new product.
func (h *ProductHandler) HandleCreateProduct(c *fiber.Ctx) error {
	var req models.CreateProductRequest
	if err := c.BodyParser(&req); err != nil {
		log.Printf("Error parsing create product request body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}

	if err := h.validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Validation failed",
			"errors":  validationErrorMap(err),
		})
	}

	product, err := h.service.CreateProduct(c.Context(), req)
	if err != nil {
		return h.handleServiceError(c, err, "Could not create product")
	}

	return c.Status(fiber.StatusCreated).JSON(product)
}

// HandleListProducts returns a window of products, images flattened.
func (h *ProductHandler) HandleListProducts(c *fiber.Ctx) error {
	var pagination models.Pagination
	if err := c.QueryParser(&pagination); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid pagination parameters",
			"error":   err.Error(),
		})
	}

	if err := h.validate.Struct(pagination); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Validation failed",
			"errors":  validationErrorMap(err),
		})
	}

	products, err := h.service.FindAllPlain(c.Context(), pagination)
	if err != nil {
		return h.handleServiceError(c, err, "Could not retrieve products")
	}

	return c.JSON(products)
}

// HandleGetProduct resolves a term (id, title or slug) to a product.
// Titles may carry spaces and apostrophes, so the path segment arrives
// percent-encoded.
func (h *ProductHandler) HandleGetProduct(c *fiber.Ctx) error {
	term := c.Params("term")
	if decoded, err := url.PathUnescape(term); err == nil {
		term = decoded
	}
	product, err := h.service.FindOnePlain(c.Context(), term)
	if err != nil {
		if errors.Is(err, models.ErrProductNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"message": fmt.Sprintf("Product with term %s not found", term),
			})
		}
		return h.handleServiceError(c, err, "Could not retrieve product")
	}
	return c.JSON(product)
}

// HandleUpdateProduct applies a partial update, replacing the image set
// atomically when the patch carries one.
func (h *ProductHandler) HandleUpdateProduct(c *fiber.Ctx) error {
	id := c.Params("id")
	if _, err := uuid.Parse(id); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Validation failed",
			"errors":  fiber.Map{"id": "id must be a UUID"},
		})
	}

	var req models.UpdateProductRequest
	if err := c.BodyParser(&req); err != nil {
		log.Printf("Error parsing update product request body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}

	if err := h.validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Validation failed",
			"errors":  validationErrorMap(err),
		})
	}

	product, err := h.service.UpdateProduct(c.Context(), id, req)
	if err != nil {
		if errors.Is(err, models.ErrProductNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"message": fmt.Sprintf("Product with ID %s not found", id),
			})
		}
		return h.handleServiceError(c, err, "Could not update product")
	}

	return c.JSON(product)
}

// HandleDeleteProduct deletes a product and, through ownership, its images.
func (h *ProductHandler) HandleDeleteProduct(c *fiber.Ctx) error {
	id := c.Params("id")
	if _, err := uuid.Parse(id); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Validation failed",
			"errors":  fiber.Map{"id": "id must be a UUID"},
		})
	}

	if err := h.service.DeleteProduct(c.Context(), id); err != nil {
		if errors.Is(err, models.ErrProductNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"message": fmt.Sprintf("Product with ID %s not found", id),
			})
		}
		return h.handleServiceError(c, err, "Could not delete product")
	}

	return c.JSON(fiber.Map{
		"message": "Product deleted successfully",
	})
}

// handleServiceError maps classified service errors to HTTP responses.
// Conflicts surface their constraint detail as a bad request; anything
// else was already logged where it happened and stays opaque here.
func (h *ProductHandler) handleServiceError(c *fiber.Ctx, err error, message string) error {
	var conflict *models.ConflictError
	if errors.As(err, &conflict) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": message,
			"error":   conflict.Detail,
		})
	}

	log.Printf("%s: %v", message, err)
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
		"message": "Unexpected error, check server logs",
	})
}

// validationErrorMap flattens validator errors into a field → message map.
func validationErrorMap(err error) map[string]string {
	errorMessages := make(map[string]string)
	var validationErrors validator.ValidationErrors
	if errors.As(err, &validationErrors) {
		for _, e := range validationErrors {
			errorMessages[e.Field()] = fmt.Sprintf("Field '%s' failed on the '%s' tag", e.Field(), e.Tag())
		}
	}
	return errorMessages
}
