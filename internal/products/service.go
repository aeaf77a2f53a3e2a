package products

import (
	"context"
	"strings"

	"github.com/davidcastanon/shopmart-backend/pkg/db/models"
	"github.com/davidcastanon/shopmart-backend/pkg/errors"
	"github.com/davidcastanon/shopmart-backend/pkg/pagination"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Service exposes the product catalog.
type Service interface {
	// List returns one page of the catalog, optionally filtered by an
	// exact category match. Pages past the end come back empty with the
	// real totals intact.
	List(ctx context.Context, category string, params pagination.Params) (*PageDTO, error)
	// GetByID returns (nil, nil) for an unknown product id.
	GetByID(ctx context.Context, id string) (*ProductDTO, error)
	// Search matches the query against name, description and category,
	// ignoring case. A blank query returns no results.
	Search(ctx context.Context, query string) ([]ProductDTO, error)
	// Categories lists the distinct category names in the catalog.
	Categories(ctx context.Context) ([]string, error)
	// Create adds a listing and returns the stored product.
	Create(ctx context.Context, input CreateProductInput) (*ProductDTO, error)
}

type service struct {
	repo *Repository
}

// NewService builds a catalog service over the provided repository.
func NewService(repo *Repository) (Service, error) {
	if repo == nil {
		return nil, errors.New(errors.CodeInternal, "product repository is required")
	}
	return &service{repo: repo}, nil
}

func (s *service) List(ctx context.Context, category string, params pagination.Params) (*PageDTO, error) {
	params = pagination.Normalize(params)

	total, err := s.repo.Count(ctx, category)
	if err != nil {
		return nil, errors.Wrap(errors.CodeInternal, err, "count products")
	}

	rows, err := s.repo.List(ctx, category, params.Offset(), params.Limit)
	if err != nil {
		return nil, errors.Wrap(errors.CodeInternal, err, "list products")
	}

	return &PageDTO{
		Items:      fromModels(rows),
		Pagination: pagination.MetaFor(params, total),
	}, nil
}

func (s *service) GetByID(ctx context.Context, id string) (*ProductDTO, error) {
	if id == "" {
		return nil, errors.New(errors.CodeValidation, "product id is required")
	}
	row, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, errors.Wrap(errors.CodeInternal, err, "find product")
	}
	if row == nil {
		return nil, nil
	}
	dto := FromModel(row)
	return &dto, nil
}

func (s *service) Search(ctx context.Context, query string) ([]ProductDTO, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return []ProductDTO{}, nil
	}
	rows, err := s.repo.Search(ctx, query)
	if err != nil {
		return nil, errors.Wrap(errors.CodeInternal, err, "search products")
	}
	return fromModels(rows), nil
}

func (s *service) Categories(ctx context.Context) ([]string, error) {
	names, err := s.repo.Categories(ctx)
	if err != nil {
		return nil, errors.Wrap(errors.CodeInternal, err, "list categories")
	}
	return names, nil
}

func (s *service) Create(ctx context.Context, input CreateProductInput) (*ProductDTO, error) {
	if strings.TrimSpace(input.Name) == "" {
		return nil, errors.New(errors.CodeValidation, "product name is required")
	}
	if input.Price.IsNegative() {
		return nil, errors.New(errors.CodeValidation, "product price must not be negative")
	}

	row := &models.Product{
		ID:          uuid.NewString(),
		Name:        strings.TrimSpace(input.Name),
		Description: input.Description,
		Price:       input.Price,
		Category:    input.Category,
		Image:       input.Image,
	}
	if input.Stock != nil {
		if *input.Stock < 0 {
			return nil, errors.New(errors.CodeValidation, "product stock must not be negative")
		}
		row.Stock = *input.Stock
	}
	if input.Rating != nil {
		if *input.Rating < 0 || *input.Rating > 5 {
			return nil, errors.New(errors.CodeValidation, "product rating must be between 0 and 5")
		}
		row.Rating = decimal.NewFromFloat(*input.Rating)
	}

	if err := s.repo.Create(ctx, row); err != nil {
		return nil, errors.Wrap(errors.CodeInternal, err, "create product")
	}

	dto := FromModel(row)
	return &dto, nil
}
