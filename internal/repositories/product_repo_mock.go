package repositories

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/google/uuid"

	"github.com/FrancoPlomer/teslo-shop/internal/models"
)

// MockProductRepository is an in-memory implementation of
// ProductRepository. It upholds the same invariants as the GORM
// implementation: unique title and slug, normalized slugs on every write,
// wholesale image replacement, and images that never outlive their owner.
type MockProductRepository struct {
	products map[string]models.Product
	order    []string // insertion order, stands in for storage-default order
	nextImg  uint
	mu       sync.RWMutex
}

// NewMockProductRepository creates a new instance of MockProductRepository.
func NewMockProductRepository() *MockProductRepository {
	return &MockProductRepository{
		products: make(map[string]models.Product),
	}
}

// Create adds a new product with its images.
func (r *MockProductRepository) Create(_ context.Context, product *models.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if product.ID == "" {
		product.ID = uuid.New().String()
	}
	product.Normalize()
	if err := r.checkUnique(product); err != nil {
		return err
	}
	for i := range product.Images {
		r.nextImg++
		product.Images[i].ID = r.nextImg
		product.Images[i].ProductID = product.ID
	}
	r.products[product.ID] = *product
	r.order = append(r.order, product.ID)
	return nil
}

// FindPage returns a window over the products in insertion order.
func (r *MockProductRepository) FindPage(_ context.Context, limit, offset int) ([]models.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	page := make([]models.Product, 0, limit)
	for i := offset; i < len(r.order) && len(page) < limit; i++ {
		page = append(page, r.products[r.order[i]])
	}
	return page, nil
}

// FindByID returns a product by its ID.
func (r *MockProductRepository) FindByID(_ context.Context, id string) (*models.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	product, ok := r.products[id]
	if !ok {
		return nil, models.ErrProductNotFound
	}
	return &product, nil
}

// FindByTitleOrSlug matches on case-insensitive title or lower-cased slug.
func (r *MockProductRepository) FindByTitleOrSlug(_ context.Context, term string) (*models.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	lower := strings.ToLower(term)
	for _, id := range r.order {
		product := r.products[id]
		if strings.EqualFold(product.Title, term) || product.Slug == lower {
			return &product, nil
		}
	}
	return nil, models.ErrProductNotFound
}

// Update merges the product back into the store, replacing the image set
// when a non-nil list is supplied. The map write is all-or-nothing, so
// the in-memory store cannot be observed half updated.
func (r *MockProductRepository) Update(_ context.Context, product *models.Product, images []string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	existing, ok := r.products[product.ID]
	if !ok {
		return models.ErrProductNotFound
	}
	product.Normalize()
	if err := r.checkUnique(product); err != nil {
		return err
	}
	if images == nil {
		product.Images = existing.Images
	} else {
		product.Images = make([]models.ProductImage, 0, len(images))
		for _, url := range images {
			r.nextImg++
			product.Images = append(product.Images, models.ProductImage{
				ID:        r.nextImg,
				URL:       url,
				ProductID: product.ID,
			})
		}
	}
	r.products[product.ID] = *product
	return nil
}

// Delete removes a product; its images live inside the product value, so
// they are gone with it.
func (r *MockProductRepository) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.products[id]; !ok {
		return models.ErrProductNotFound
	}
	delete(r.products, id)
	for i, pid := range r.order {
		if pid == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return nil
}

// DeleteAll empties the store.
func (r *MockProductRepository) DeleteAll(_ context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.products = make(map[string]models.Product)
	r.order = nil
	return nil
}

// checkUnique enforces the title/slug uniqueness invariants the way the
// database's unique indexes do, reporting violations as conflicts.
func (r *MockProductRepository) checkUnique(product *models.Product) error {
	for id, other := range r.products {
		if id == product.ID {
			continue
		}
		if other.Title == product.Title {
			return &models.ConflictError{Detail: fmt.Sprintf("Key (title)=(%s) already exists.", product.Title)}
		}
		if other.Slug == product.Slug {
			return &models.ConflictError{Detail: fmt.Sprintf("Key (slug)=(%s) already exists.", product.Slug)}
		}
	}
	return nil
}
