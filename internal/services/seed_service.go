package services

import (
	"context"
	"fmt"
	"log"

	"github.com/FrancoPlomer/teslo-shop/internal/models"
)

// SeedService resets the catalog to a known fixture set. It goes through
// the normal create path so seeded products get real ids, normalized
// slugs and owned image rows like any other write.
type SeedService struct {
	productService *ProductService
}

// NewSeedService creates a new SeedService.
func NewSeedService(productService *ProductService) *SeedService {
	return &SeedService{
		productService: productService,
	}
}

// Run wipes every product and loads the fixture catalog.
func (s *SeedService) Run(ctx context.Context) (int, error) {
	if err := s.productService.DeleteAllProducts(ctx); err != nil {
		return 0, fmt.Errorf("failed to reset catalog before seeding: %w", err)
	}

	for _, req := range seedProducts() {
		if _, err := s.productService.CreateProduct(ctx, req); err != nil {
			return 0, fmt.Errorf("failed to seed product %q: %w", req.Title, err)
		}
		log.Printf("Seeded product: %s", req.Title)
	}
	return len(seedProducts()), nil
}

func seedProducts() []models.CreateProductRequest {
	return []models.CreateProductRequest{
		{
			Title:       "Men's Chill Crew Neck Sweatshirt",
			Price:       75,
			Description: "Introducing the Tesla Chill Collection. The Men's Chill Crew Neck Sweatshirt has a premium, heavyweight exterior and soft fleece interior.",
			Stock:       7,
			Sizes:       []string{"XS", "S", "M", "L", "XL", "XXL"},
			Gender:      models.GenderMen,
			Tags:        []string{"sweatshirt"},
			Images:      []string{"1740176-00-A_0_2000.jpg", "1740176-00-A_1.jpg"},
		},
		{
			Title:       "Men's Quilted Shirt Jacket",
			Price:       200,
			Description: "The Men's Quilted Shirt Jacket features a uniquely fit, quilted design for warmth and mobility in cold weather seasons.",
			Stock:       5,
			Sizes:       []string{"XS", "S", "M", "XL", "XXL"},
			Gender:      models.GenderMen,
			Tags:        []string{"jacket"},
			Images:      []string{"1740507-00-A_0_2000.jpg", "1740507-00-A_1.jpg"},
		},
		{
			Title:       "Women's Cropped Puffer Jacket",
			Price:       225,
			Description: "The Women's Cropped Puffer Jacket features a uniquely cropped silhouette for the perfect, modern style.",
			Stock:       85,
			Sizes:       []string{"XS", "S", "M"},
			Gender:      models.GenderWomen,
			Tags:        []string{"jacket", "women"},
			Images:      []string{"1654219-00-A_0_2000.jpg", "1654219-00-A_1.jpg"},
		},
		{
			Title:       "Women's T Logo Short Sleeve Scoop Neck Tee",
			Price:       35,
			Description: "Designed for style and comfort, the ultrasoft Women's T Logo Short Sleeve Scoop Neck Tee features a tonal 3D silicone-printed T logo.",
			Stock:       30,
			Sizes:       []string{"XS", "S", "M", "L", "XL", "XXL"},
			Gender:      models.GenderWomen,
			Tags:        []string{"shirt"},
			Images:      []string{"8765090-00-A_0_2000.jpg", "8765090-00-A_1.jpg"},
		},
		{
			Title:       "Kids Cyberquad Bomber Jacket",
			Price:       65,
			Description: "Wear your love for Cyberquad with the Kids Cyberquad Bomber Jacket, featuring graphics inspired by the Cyberquad for Kids.",
			Stock:       10,
			Sizes:       []string{"XS", "S", "M"},
			Gender:      models.GenderKid,
			Tags:        []string{"shirt"},
			Images:      []string{"1742702-00-A_0_2000.jpg", "1742702-00-A_1.jpg"},
		},
		{
			Title:       "Cybertruck Graffiti Hoodie",
			Price:       60,
			Description: "The Cybertruck Graffiti Hoodie features a bold, graffiti-style Cybertruck graphic on soft fleece.",
			Stock:       13,
			Sizes:       []string{"XS", "S", "M", "L", "XL", "XXL"},
			Gender:      models.GenderUnisex,
			Tags:        []string{"hoodie"},
			Images:      []string{"7654420-00-A_0_2000.jpg", "7654420-00-A_1.jpg"},
		},
	}
}
