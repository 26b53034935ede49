package repositories

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/FrancoPlomer/teslo-shop/internal/models"
)

// GORMProductRepository is a GORM implementation of ProductRepository.
type GORMProductRepository struct {
	db *gorm.DB
}

// NewGORMProductRepository creates a new instance of GORMProductRepository.
func NewGORMProductRepository(db *gorm.DB) *GORMProductRepository {
	return &GORMProductRepository{
		db: db,
	}
}

// Create persists a new product and its owned images in one insert.
func (r *GORMProductRepository) Create(ctx context.Context, product *models.Product) error {
	if product.ID == "" {
		product.ID = uuid.New().String()
	}
	if err := r.db.WithContext(ctx).Create(product).Error; err != nil {
		return classifyStorageError(err, "failed to create product")
	}
	return nil
}

// FindPage retrieves a window of products with their images eagerly loaded.
func (r *GORMProductRepository) FindPage(ctx context.Context, limit, offset int) ([]models.Product, error) {
	var products []models.Product
	err := r.db.WithContext(ctx).
		Preload("Images").
		Limit(limit).
		Offset(offset).
		Find(&products).Error
	if err != nil {
		return nil, classifyStorageError(err, "failed to list products")
	}
	return products, nil
}

// FindByID retrieves a single product by its surrogate identifier.
func (r *GORMProductRepository) FindByID(ctx context.Context, id string) (*models.Product, error) {
	var product models.Product
	err := r.db.WithContext(ctx).
		Preload("Images").
		First(&product, "id = ?", id).Error
	if err != nil {
		return nil, classifyStorageError(err, fmt.Sprintf("failed to get product by ID %s", id))
	}
	return &product, nil
}

// FindByTitleOrSlug resolves a natural-key term in a single query: the
// upper-cased title must equal the upper-cased term, or the slug must
// equal the lower-cased term.
func (r *GORMProductRepository) FindByTitleOrSlug(ctx context.Context, term string) (*models.Product, error) {
	var product models.Product
	err := r.db.WithContext(ctx).
		Preload("Images").
		Where("UPPER(title) = ? OR slug = ?", strings.ToUpper(term), strings.ToLower(term)).
		First(&product).Error
	if err != nil {
		return nil, classifyStorageError(err, fmt.Sprintf("failed to resolve product by term %q", term))
	}
	return &product, nil
}

// Update saves the merged product. A non-nil images slice triggers the
// transactional wholesale replacement of the product's image set: the
// old images are deleted and the new ones inserted together with the
// field update, and every step is rolled back if any of them fails.
// GORM's Transaction commits on a nil return, rolls back otherwise, and
// releases the handle on both paths.
func (r *GORMProductRepository) Update(ctx context.Context, product *models.Product, images []string) error {
	if images == nil {
		err := r.db.WithContext(ctx).Omit("Images").Save(product).Error
		if err != nil {
			return classifyStorageError(err, fmt.Sprintf("failed to update product %s", product.ID))
		}
		return nil
	}

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("product_id = ?", product.ID).Delete(&models.ProductImage{}).Error; err != nil {
			return err
		}
		product.Images = make([]models.ProductImage, 0, len(images))
		for _, url := range images {
			product.Images = append(product.Images, models.ProductImage{
				URL:       url,
				ProductID: product.ID,
			})
		}
		return tx.Save(product).Error
	})
	if err != nil {
		return classifyStorageError(err, fmt.Sprintf("failed to update product %s", product.ID))
	}
	return nil
}

// Delete removes a product and its images. Deleting an id that does not
// exist yields ErrProductNotFound, detected via RowsAffected since GORM
// does not report it as an error.
func (r *GORMProductRepository) Delete(ctx context.Context, id string) error {
	res := r.db.WithContext(ctx).
		Select(clause.Associations).
		Delete(&models.Product{ID: id})
	if res.Error != nil {
		return classifyStorageError(res.Error, fmt.Sprintf("failed to delete product %s", id))
	}
	if res.RowsAffected == 0 {
		return models.ErrProductNotFound
	}
	return nil
}

// DeleteAll wipes every product row. Image rows go with their owners
// through the cascade relationship.
func (r *GORMProductRepository) DeleteAll(ctx context.Context) error {
	if err := r.db.WithContext(ctx).Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(&models.ProductImage{}).Error; err != nil {
		return classifyStorageError(err, "failed to delete product images")
	}
	if err := r.db.WithContext(ctx).Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(&models.Product{}).Error; err != nil {
		return classifyStorageError(err, "failed to delete all products")
	}
	return nil
}

// classifyStorageError maps a storage failure to one of the error kinds
// callers are allowed to see. Record-not-found becomes ErrProductNotFound,
// unique-constraint violations become ConflictError with the constraint
// detail attached, and anything else is logged here in full and wrapped so
// only an opaque message crosses the repository boundary.
func classifyStorageError(err error, op string) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.ErrProductNotFound
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		return &models.ConflictError{Detail: pgErr.Detail}
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return &models.ConflictError{Detail: err.Error()}
	}

	log.Printf("storage error: %s: %v", op, err)
	return fmt.Errorf("%s: %w", op, err)
}
