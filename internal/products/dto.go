package products

import (
	"time"

	"github.com/davidcastanon/shopmart-backend/pkg/db/models"
	"github.com/davidcastanon/shopmart-backend/pkg/pagination"
	"github.com/shopspring/decimal"
)

// ProductDTO is the catalog transport shape.
type ProductDTO struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Price       float64   `json:"price"`
	Category    string    `json:"category"`
	Image       string    `json:"image"`
	Stock       int       `json:"stock"`
	Rating      float64   `json:"rating"`
	CreatedAt   time.Time `json:"created_at"`
}

// PageDTO is the paginated catalog view.
type PageDTO struct {
	Items      []ProductDTO    `json:"items"`
	Pagination pagination.Meta `json:"pagination"`
}

// CreateProductInput carries the fields accepted when seeding or adding a
// listing. Stock and rating default to zero when absent.
type CreateProductInput struct {
	Name        string          `json:"name" validate:"required"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price" validate:"required"`
	Category    string          `json:"category"`
	Image       string          `json:"image"`
	Stock       *int            `json:"stock,omitempty"`
	Rating      *float64        `json:"rating,omitempty"`
}

func FromModel(p *models.Product) ProductDTO {
	return ProductDTO{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		Price:       p.Price.InexactFloat64(),
		Category:    p.Category,
		Image:       p.Image,
		Stock:       p.Stock,
		Rating:      p.Rating.InexactFloat64(),
		CreatedAt:   p.CreatedAt,
	}
}

func fromModels(rows []models.Product) []ProductDTO {
	items := make([]ProductDTO, 0, len(rows))
	for i := range rows {
		items = append(items, FromModel(&rows[i]))
	}
	return items
}
