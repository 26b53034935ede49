package models

// CreateProductRequest is the validated input for creating a product.
// Images are plain URL strings handed over by the upload collaborator;
// the service turns them into owned ProductImage records.
type CreateProductRequest struct {
	Title       string   `json:"title" validate:"required,min=1"`
	Price       float64  `json:"price" validate:"gte=0"`
	Description string   `json:"description"`
	Slug        string   `json:"slug"`
	Stock       int      `json:"stock" validate:"gte=0"`
	Sizes       []string `json:"sizes" validate:"dive,min=1"`
	Gender      string   `json:"gender" validate:"required,oneof=men women kid unisex"`
	Tags        []string `json:"tags" validate:"omitempty,dive,min=1"`
	Images      []string `json:"images" validate:"omitempty,dive,min=1"`
}

// UpdateProductRequest is a partial patch for an existing product. Nil
// pointers and nil slices mean "leave untouched"; a non-nil Images slice
// requests a wholesale replacement of the product's image set.
type UpdateProductRequest struct {
	Title       *string  `json:"title" validate:"omitempty,min=1"`
	Price       *float64 `json:"price" validate:"omitempty,gte=0"`
	Description *string  `json:"description"`
	Slug        *string  `json:"slug"`
	Stock       *int     `json:"stock" validate:"omitempty,gte=0"`
	Sizes       []string `json:"sizes" validate:"omitempty,dive,min=1"`
	Gender      *string  `json:"gender" validate:"omitempty,oneof=men women kid unisex"`
	Tags        []string `json:"tags" validate:"omitempty,dive,min=1"`
	Images      []string `json:"images" validate:"omitempty,dive,min=1"`
}

// ApplyTo merges the patch's non-image fields onto product in memory.
// The image list is deliberately excluded: replacing it is the
// transactional part of an update and is handled by the repository.
func (r *UpdateProductRequest) ApplyTo(product *Product) {
	if r.Title != nil {
		product.Title = *r.Title
	}
	if r.Price != nil {
		product.Price = *r.Price
	}
	if r.Description != nil {
		product.Description = *r.Description
	}
	if r.Slug != nil {
		product.Slug = *r.Slug
	}
	if r.Stock != nil {
		product.Stock = *r.Stock
	}
	if r.Sizes != nil {
		product.Sizes = r.Sizes
	}
	if r.Gender != nil {
		product.Gender = *r.Gender
	}
	if r.Tags != nil {
		product.Tags = r.Tags
	}
}
