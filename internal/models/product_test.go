package models_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/FrancoPlomer/teslo-shop/internal/models"
)

func TestProductNormalize(t *testing.T) {
	tests := []struct {
		name  string
		title string
		slug  string
		want  string
	}{
		{"DerivedFromTitle", "Men's Chill Crew Neck Sweatshirt", "", "mens_chill_crew_neck_sweatshirt"},
		{"ExplicitSlugLowercased", "Anything", "Some SLUG", "some_slug"},
		{"ApostrophesRemoved", "Anything", "men's jacket", "mens_jacket"},
		{"AlreadyNormalized", "Anything", "plain_slug", "plain_slug"},
		{"EmptyTitleAndSlug", "", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := models.Product{Title: tt.title, Slug: tt.slug}
			p.Normalize()
			assert.Equal(t, tt.want, p.Slug)
		})
	}
}

func TestProductNormalizeIsIdempotent(t *testing.T) {
	p := models.Product{Title: "Women's T Logo Tee"}
	p.Normalize()
	first := p.Slug
	p.Normalize()
	assert.Equal(t, first, p.Slug)
}

func TestPlainFlattensImagesToURLs(t *testing.T) {
	p := models.Product{
		ID:    "some-id",
		Title: "Red Shoes",
		Images: []models.ProductImage{
			{ID: 1, URL: "a.jpg"},
			{ID: 2, URL: "b.jpg"},
		},
	}

	plain := p.Plain()
	assert.Equal(t, []string{"a.jpg", "b.jpg"}, plain.Images)
}

func TestPlainWithNoImagesIsEmptyList(t *testing.T) {
	p := models.Product{ID: "some-id", Title: "Bare Product"}
	assert.NotNil(t, p.Plain().Images)
	assert.Empty(t, p.Plain().Images)
}

func TestPaginationWindow(t *testing.T) {
	tests := []struct {
		name       string
		pagination models.Pagination
		wantLimit  int
		wantOffset int
	}{
		{"Defaults", models.Pagination{}, 10, 0},
		{"ExplicitWindow", models.Pagination{Limit: 2, Offset: 4}, 2, 4},
		{"OffsetOnly", models.Pagination{Offset: 3}, 10, 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			limit, offset := tt.pagination.Window()
			assert.Equal(t, tt.wantLimit, limit)
			assert.Equal(t, tt.wantOffset, offset)
		})
	}
}

func TestUpdateRequestApplyToSkipsNilFields(t *testing.T) {
	product := models.Product{
		Title: "Red Shoes",
		Price: 50,
		Stock: 3,
		Tags:  []string{"shoes"},
	}

	stock := 7
	patch := models.UpdateProductRequest{Stock: &stock}
	patch.ApplyTo(&product)

	assert.Equal(t, 7, product.Stock)
	assert.Equal(t, "Red Shoes", product.Title)
	assert.Equal(t, float64(50), product.Price)
	assert.Equal(t, []string{"shoes"}, product.Tags)
}
