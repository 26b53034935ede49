package handlers

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// maxUploadSize caps product image uploads at 1MB.
const maxUploadSize = 1 * 1024 * 1024

// allowedImageSubtypes is the MIME subtype allow-list for product image
// uploads.
var allowedImageSubtypes = map[string]bool{
	"jpg":  true,
	"jpeg": true,
	"png":  true,
	"gif":  true,
	"webp": true,
}

// FileHandler stores uploaded product images on disk and serves them
// back. It gives each file a collision-resistant uuid name and returns
// the URL the catalog stores as the image reference.
type FileHandler struct {
	uploadDir string
	hostAPI   string
}

// NewFileHandler creates a new FileHandler writing into uploadDir.
func NewFileHandler(uploadDir, hostAPI string) *FileHandler {
	return &FileHandler{
		uploadDir: uploadDir,
		hostAPI:   hostAPI,
	}
}

// RegisterRoutes registers the file routes with the Fiber app.
func (h *FileHandler) RegisterRoutes(router fiber.Router) {
	fileRoutes := router.Group("/files")
	fileRoutes.Post("/product", h.HandleUploadProductImage)
	fileRoutes.Get("/product/:imageName", h.HandleGetProductImage)
}

// HandleUploadProductImage accepts a multipart "file" field, checks its
// MIME subtype against the allow-list, stores the bytes under a uuid
// filename and responds with the retrievable URL.
func (h *FileHandler) HandleUploadProductImage(c *fiber.Ctx) error {
	file, err := c.FormFile("file")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Make sure that file is valid",
			"error":   err.Error(),
		})
	}

	if file.Size > maxUploadSize {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": fmt.Sprintf("File exceeds the %d byte limit", maxUploadSize),
		})
	}

	subtype := mimeSubtype(file.Header.Get("Content-Type"))
	if !allowedImageSubtypes[subtype] {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": fmt.Sprintf("File type %q is not allowed", subtype),
		})
	}

	if err := os.MkdirAll(h.uploadDir, 0o755); err != nil {
		log.Printf("Error creating upload directory %s: %v", h.uploadDir, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not store file",
		})
	}

	fileName := fmt.Sprintf("%s.%s", uuid.New().String(), subtype)
	if err := c.SaveFile(file, filepath.Join(h.uploadDir, fileName)); err != nil {
		log.Printf("Error saving uploaded file %s: %v", fileName, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not store file",
		})
	}

	secureURL := fmt.Sprintf("%s/api/files/product/%s", h.hostAPI, fileName)
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"secureUrl": secureURL,
		"fileName":  fileName,
	})
}

// HandleGetProductImage serves a previously stored product image.
func (h *FileHandler) HandleGetProductImage(c *fiber.Ctx) error {
	// Base strips any path traversal out of the parameter.
	imageName := filepath.Base(c.Params("imageName"))
	imagePath := filepath.Join(h.uploadDir, imageName)

	if _, err := os.Stat(imagePath); err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"message": fmt.Sprintf("No product image found with name %s", imageName),
		})
	}

	return c.SendFile(imagePath)
}

// mimeSubtype extracts the subtype from a media type like "image/jpeg".
func mimeSubtype(contentType string) string {
	_, subtype, found := strings.Cut(contentType, "/")
	if !found {
		return ""
	}
	return strings.ToLower(subtype)
}
