package handlers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/FrancoPlomer/teslo-shop/internal/handlers"
	"github.com/FrancoPlomer/teslo-shop/internal/models"
	"github.com/FrancoPlomer/teslo-shop/internal/repositories"
	"github.com/FrancoPlomer/teslo-shop/internal/services"
)

// newTestApp wires the product and seed routes over the in-memory
// repository, the way main does over GORM.
func newTestApp() *fiber.App {
	repo := repositories.NewMockProductRepository()
	productService := services.NewProductService(repo, nil)
	seedService := services.NewSeedService(productService)

	app := fiber.New()
	api := app.Group("/api")
	handlers.NewProductHandler(productService).RegisterRoutes(api)
	handlers.NewSeedHandler(seedService).RegisterRoutes(api)
	return app
}

func doJSON(t *testing.T, app *fiber.App, method, url string, body interface{}) (*http.Response, []byte) {
	t.Helper()

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	}

	req := httptest.NewRequest(method, url, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := app.Test(req)
	require.NoError(t, err)

	respBody, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	resp.Body.Close()
	return resp, respBody
}

func createProduct(t *testing.T, app *fiber.App, req models.CreateProductRequest) models.PlainProduct {
	t.Helper()

	resp, body := doJSON(t, app, http.MethodPost, "/api/products", req)
	require.Equal(t, http.StatusCreated, resp.StatusCode, "create failed: %s", body)

	var product models.PlainProduct
	require.NoError(t, json.Unmarshal(body, &product))
	return product
}

func TestProductLifecycle(t *testing.T) {
	app := newTestApp()

	created := createProduct(t, app, models.CreateProductRequest{
		Title:  "Men's Jacket",
		Price:  120,
		Sizes:  []string{"M", "L"},
		Gender: models.GenderMen,
		Images: []string{"jacket1.jpg", "jacket2.jpg"},
	})
	assert.Equal(t, "mens_jacket", created.Slug)
	assert.Equal(t, []string{"jacket1.jpg", "jacket2.jpg"}, created.Images)

	// Lookup by id, by slug, and by case-insensitive title.
	for _, term := range []string{created.ID, "mens_jacket", "MEN'S JACKET"} {
		resp, body := doJSON(t, app, http.MethodGet, "/api/products/"+url.PathEscape(term), nil)
		require.Equal(t, http.StatusOK, resp.StatusCode, "lookup by %q failed: %s", term, body)

		var found models.PlainProduct
		require.NoError(t, json.Unmarshal(body, &found))
		assert.Equal(t, created.ID, found.ID, "term %q resolved to the wrong product", term)
	}

	// Patch fields plus a wholesale image replacement.
	resp, body := doJSON(t, app, http.MethodPatch, "/api/products/"+created.ID, map[string]interface{}{
		"stock":  9,
		"images": []string{"fresh.jpg"},
	})
	require.Equal(t, http.StatusOK, resp.StatusCode, "update failed: %s", body)

	var updated models.PlainProduct
	require.NoError(t, json.Unmarshal(body, &updated))
	assert.Equal(t, 9, updated.Stock)
	assert.Equal(t, []string{"fresh.jpg"}, updated.Images)

	// Delete, then delete again: the second must be a structured 404.
	resp, _ = doJSON(t, app, http.MethodDelete, "/api/products/"+created.ID, nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	resp, _ = doJSON(t, app, http.MethodDelete, "/api/products/"+created.ID, nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestListProducts_Pagination(t *testing.T) {
	app := newTestApp()

	for i := 1; i <= 5; i++ {
		createProduct(t, app, models.CreateProductRequest{
			Title:  fmt.Sprintf("Product %d", i),
			Gender: models.GenderUnisex,
		})
	}

	resp, body := doJSON(t, app, http.MethodGet, "/api/products?limit=2&offset=0", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var firstPage []models.PlainProduct
	require.NoError(t, json.Unmarshal(body, &firstPage))
	require.Len(t, firstPage, 2)

	resp, body = doJSON(t, app, http.MethodGet, "/api/products?limit=2&offset=2", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var secondPage []models.PlainProduct
	require.NoError(t, json.Unmarshal(body, &secondPage))
	require.Len(t, secondPage, 2)

	assert.NotEqual(t, firstPage[0].ID, secondPage[0].ID)
	assert.NotEqual(t, firstPage[1].ID, secondPage[1].ID)
}

func TestCreateProduct_Validation(t *testing.T) {
	app := newTestApp()

	t.Run("MissingTitle", func(t *testing.T) {
		resp, _ := doJSON(t, app, http.MethodPost, "/api/products", map[string]interface{}{
			"gender": "men",
		})
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})

	t.Run("BadGender", func(t *testing.T) {
		resp, body := doJSON(t, app, http.MethodPost, "/api/products", map[string]interface{}{
			"title":  "Odd Product",
			"gender": "robot",
		})
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		assert.Contains(t, string(body), "Gender")
	})
}

func TestCreateProduct_DuplicateTitleIsConflict(t *testing.T) {
	app := newTestApp()

	createProduct(t, app, models.CreateProductRequest{
		Title:  "Red Shoes",
		Gender: models.GenderWomen,
	})

	resp, body := doJSON(t, app, http.MethodPost, "/api/products", models.CreateProductRequest{
		Title:  "Red Shoes",
		Slug:   "another_slug",
		Gender: models.GenderWomen,
	})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Contains(t, string(body), "already exists")
}

func TestUpdateProduct_RequiresUUID(t *testing.T) {
	app := newTestApp()

	resp, _ := doJSON(t, app, http.MethodPatch, "/api/products/not-a-uuid", map[string]interface{}{
		"stock": 1,
	})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestUpdateProduct_WithoutImagesKeepsExisting(t *testing.T) {
	app := newTestApp()

	created := createProduct(t, app, models.CreateProductRequest{
		Title:  "Puffer Jacket",
		Gender: models.GenderWomen,
		Images: []string{"keep1.jpg", "keep2.jpg"},
	})

	resp, body := doJSON(t, app, http.MethodPatch, "/api/products/"+created.ID, map[string]interface{}{
		"price": 250,
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var updated models.PlainProduct
	require.NoError(t, json.Unmarshal(body, &updated))
	assert.Equal(t, float64(250), updated.Price)
	assert.Equal(t, []string{"keep1.jpg", "keep2.jpg"}, updated.Images)
}

func TestSeed_ResetsAndLoadsCatalog(t *testing.T) {
	app := newTestApp()

	// Pre-existing data must not survive a seed run.
	createProduct(t, app, models.CreateProductRequest{
		Title:  "Leftover Product",
		Gender: models.GenderUnisex,
	})

	resp, body := doJSON(t, app, http.MethodGet, "/api/seed", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode, "seed failed: %s", body)

	resp, body = doJSON(t, app, http.MethodGet, "/api/products?limit=100", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var products []models.PlainProduct
	require.NoError(t, json.Unmarshal(body, &products))
	assert.NotEmpty(t, products)
	for _, p := range products {
		assert.NotEqual(t, "Leftover Product", p.Title)
		assert.NotEmpty(t, p.Slug)
	}
}
