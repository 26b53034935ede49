package services

import (
	"context"
	"log"

	"github.com/google/uuid"

	"github.com/FrancoPlomer/teslo-shop/internal/models"
	"github.com/FrancoPlomer/teslo-shop/internal/repositories"
)

// CatalogEventPublisher publishes product lifecycle events to a message
// broker. A nil publisher disables events without touching the write path.
type CatalogEventPublisher interface {
	PublishCatalogEvent(event string, payload map[string]interface{}) error
}

// ProductService handles business logic related to products: resolving
// lookup terms, projecting images down to plain URLs, and coordinating
// the transactional image replacement on update.
type ProductService struct {
	repo      repositories.ProductRepository
	publisher CatalogEventPublisher
}

// NewProductService creates a new ProductService. publisher may be nil.
func NewProductService(repo repositories.ProductRepository, publisher CatalogEventPublisher) *ProductService {
	return &ProductService{
		repo:      repo,
		publisher: publisher,
	}
}

// CreateProduct builds a product and its owned images from the request
// and persists them as one insert. The returned projection carries the
// original image URL list.
func (s *ProductService) CreateProduct(ctx context.Context, req models.CreateProductRequest) (*models.PlainProduct, error) {
	product := &models.Product{
		Title:       req.Title,
		Price:       req.Price,
		Description: req.Description,
		Slug:        req.Slug,
		Stock:       req.Stock,
		Sizes:       req.Sizes,
		Gender:      req.Gender,
		Tags:        req.Tags,
	}
	if product.Sizes == nil {
		product.Sizes = []string{}
	}
	if product.Tags == nil {
		product.Tags = []string{}
	}
	for _, url := range req.Images {
		product.Images = append(product.Images, models.ProductImage{URL: url})
	}

	if err := s.repo.Create(ctx, product); err != nil {
		return nil, err
	}

	s.publishEvent("product.created", product)
	return product.Plain(), nil
}

// FindAllPlain returns a window of products with images flattened to URLs.
func (s *ProductService) FindAllPlain(ctx context.Context, pagination models.Pagination) ([]models.PlainProduct, error) {
	limit, offset := pagination.Window()
	products, err := s.repo.FindPage(ctx, limit, offset)
	if err != nil {
		return nil, err
	}

	plain := make([]models.PlainProduct, 0, len(products))
	for i := range products {
		plain = append(plain, *products[i].Plain())
	}
	return plain, nil
}

// FindOne resolves a lookup term to a product. A term shaped like a
// surrogate identifier is matched by exact id; anything else goes through
// the single title-or-slug query. Storage failures propagate classified,
// never folded into "not found".
func (s *ProductService) FindOne(ctx context.Context, term string) (*models.Product, error) {
	if isSurrogateID(term) {
		return s.repo.FindByID(ctx, term)
	}
	return s.repo.FindByTitleOrSlug(ctx, term)
}

// FindOnePlain resolves a term and projects the result's images down to a
// plain URL list.
func (s *ProductService) FindOnePlain(ctx context.Context, term string) (*models.PlainProduct, error) {
	product, err := s.FindOne(ctx, term)
	if err != nil {
		return nil, err
	}
	return product.Plain(), nil
}

// UpdateProduct merges the patch onto the stored product and saves it.
// When the patch carries an image list the repository replaces the whole
// image set atomically with the field update. The result is re-read
// through the same resolution path FindOnePlain uses. A missing id fails
// before any transaction is opened.
func (s *ProductService) UpdateProduct(ctx context.Context, id string, req models.UpdateProductRequest) (*models.PlainProduct, error) {
	product, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	req.ApplyTo(product)

	if err := s.repo.Update(ctx, product, req.Images); err != nil {
		return nil, err
	}

	s.publishEvent("product.updated", product)
	return s.FindOnePlain(ctx, id)
}

// DeleteProduct deletes a product by id, cascading to its images.
func (s *ProductService) DeleteProduct(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	if s.publisher != nil {
		if err := s.publisher.PublishCatalogEvent("product.deleted", map[string]interface{}{"productID": id}); err != nil {
			log.Printf("Warning: Failed to publish product deleted event for %s: %v", id, err)
		}
	}
	return nil
}

// DeleteAllProducts wipes the catalog. Only seeding workflows call this.
func (s *ProductService) DeleteAllProducts(ctx context.Context) error {
	return s.repo.DeleteAll(ctx)
}

// publishEvent emits a lifecycle event for a product. Publish failures are
// logged and never fail the request that triggered them.
func (s *ProductService) publishEvent(event string, product *models.Product) {
	if s.publisher == nil {
		return
	}
	payload := map[string]interface{}{
		"productID": product.ID,
		"title":     product.Title,
		"slug":      product.Slug,
	}
	if err := s.publisher.PublishCatalogEvent(event, payload); err != nil {
		log.Printf("Warning: Failed to publish %s event for product %s: %v", event, product.ID, err)
	}
}

// isSurrogateID reports whether term has the 36-character canonical UUID
// shape used for surrogate identifiers. uuid.Parse alone also accepts
// braced and un-hyphenated forms, which are not valid lookup ids here.
func isSurrogateID(term string) bool {
	if len(term) != 36 {
		return false
	}
	_, err := uuid.Parse(term)
	return err == nil
}
