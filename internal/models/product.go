package models

import (
	"strings"
	"time"

	"gorm.io/gorm"
)

// Gender values accepted for a product.
const (
	GenderMen    = "men"
	GenderWomen  = "women"
	GenderKid    = "kid"
	GenderUnisex = "unisex"
)

// Product represents a catalog product. Title and Slug are unique across
// all products; Images is an owned collection that is deleted with the
// product and only ever replaced wholesale, never partially updated.
type Product struct {
	ID          string         `json:"id" gorm:"primaryKey;type:varchar(36)" validate:"omitempty,uuid"`
	Title       string         `json:"title" gorm:"uniqueIndex;not null" validate:"required,min=1"`
	Price       float64        `json:"price" gorm:"default:0" validate:"gte=0"`
	Description string         `json:"description"`
	Slug        string         `json:"slug" gorm:"uniqueIndex;not null"`
	Stock       int            `json:"stock" gorm:"default:0" validate:"gte=0"`
	Sizes       []string       `json:"sizes" gorm:"serializer:json"`
	Gender      string         `json:"gender" gorm:"not null" validate:"required,oneof=men women kid unisex"`
	Tags        []string       `json:"tags" gorm:"serializer:json"`
	Images      []ProductImage `json:"images,omitempty" gorm:"constraint:OnDelete:CASCADE"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
}

// ProductImage is a stored image reference owned by exactly one Product.
// Deleting the product cascades to its images.
type ProductImage struct {
	ID        uint   `json:"id" gorm:"primaryKey"`
	URL       string `json:"url" gorm:"not null"`
	ProductID string `json:"-" gorm:"type:varchar(36);index"`
}

// Normalize derives the slug from the title when none was supplied and
// rewrites it into its canonical URL-safe form: lower-cased, spaces
// replaced with underscores, apostrophes removed. It is total: no input
// produces an error.
func (p *Product) Normalize() {
	if p.Slug == "" {
		p.Slug = p.Title
	}
	p.Slug = strings.ToLower(p.Slug)
	p.Slug = strings.ReplaceAll(p.Slug, " ", "_")
	p.Slug = strings.ReplaceAll(p.Slug, "'", "")
}

// BeforeSave runs on every create and every update, immediately before the
// row is written, so a product can never be persisted with a raw slug.
func (p *Product) BeforeSave(_ *gorm.DB) error {
	p.Normalize()
	return nil
}

// PlainProduct is the outward projection of a Product with the image
// records flattened down to their URL strings.
type PlainProduct struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Price       float64   `json:"price"`
	Description string    `json:"description"`
	Slug        string    `json:"slug"`
	Stock       int       `json:"stock"`
	Sizes       []string  `json:"sizes"`
	Gender      string    `json:"gender"`
	Tags        []string  `json:"tags"`
	Images      []string  `json:"images"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// Plain flattens the product's image collection to a list of URLs.
func (p *Product) Plain() *PlainProduct {
	images := make([]string, 0, len(p.Images))
	for _, img := range p.Images {
		images = append(images, img.URL)
	}
	return &PlainProduct{
		ID:          p.ID,
		Title:       p.Title,
		Price:       p.Price,
		Description: p.Description,
		Slug:        p.Slug,
		Stock:       p.Stock,
		Sizes:       p.Sizes,
		Gender:      p.Gender,
		Tags:        p.Tags,
		Images:      images,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}
