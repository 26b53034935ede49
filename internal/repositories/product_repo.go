package repositories

import (
	"context"

	"github.com/FrancoPlomer/teslo-shop/internal/models"
)

// ProductRepository defines the interface for product data access.
// Every operation takes a context because each one may block on
// storage I/O; implementations must not hold locks across those calls.
type ProductRepository interface {
	// Create persists the product together with its owned images as a
	// single insert. A duplicate title or slug yields a ConflictError.
	Create(ctx context.Context, product *models.Product) error

	// FindPage returns up to limit products, skipping offset, in
	// storage-default order, with images eagerly loaded. No total count
	// is computed.
	FindPage(ctx context.Context, limit, offset int) ([]models.Product, error)

	// FindByID retrieves a product by its surrogate identifier.
	FindByID(ctx context.Context, id string) (*models.Product, error)

	// FindByTitleOrSlug matches a product whose upper-cased title equals
	// the upper-cased term or whose slug equals the lower-cased term, in
	// one query, with images eagerly attached.
	FindByTitleOrSlug(ctx context.Context, term string) (*models.Product, error)

	// Update saves the already-merged product. When images is non-nil it
	// atomically deletes every existing image owned by the product and
	// inserts the new list alongside the field update; any failure rolls
	// the whole replacement back. A nil images slice is a plain
	// merge-and-save that leaves the image set untouched.
	Update(ctx context.Context, product *models.Product, images []string) error

	// Delete removes a product by id, cascading to its images. A missing
	// id yields ErrProductNotFound.
	Delete(ctx context.Context, id string) error

	// DeleteAll removes every product. Used by seeding, not general
	// traffic.
	DeleteAll(ctx context.Context) error
}
