package products

import (
	"context"
	"strings"

	"github.com/davidcastanon/shopmart-backend/pkg/db/models"
	"gorm.io/gorm"
)

// Repository provides catalog access on top of gorm.
type Repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

func (r *Repository) Create(ctx context.Context, p *models.Product) error {
	return r.db.WithContext(ctx).Create(p).Error
}

// FindByID returns (nil, nil) when the product does not exist.
func (r *Repository) FindByID(ctx context.Context, id string) (*models.Product, error) {
	var p models.Product
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&p).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}
	return &p, nil
}

// List returns one page of the catalog, newest first. An empty category
// means no filter; a non-empty one matches exactly, including case.
func (r *Repository) List(ctx context.Context, category string, offset, limit int) ([]models.Product, error) {
	q := r.db.WithContext(ctx).Model(&models.Product{})
	if category != "" {
		q = q.Where("category = ?", category)
	}
	var rows []models.Product
	err := q.Order("created_at DESC").Offset(offset).Limit(limit).Find(&rows).Error
	return rows, err
}

// Count returns the catalog size, optionally scoped to a category.
func (r *Repository) Count(ctx context.Context, category string) (int64, error) {
	q := r.db.WithContext(ctx).Model(&models.Product{})
	if category != "" {
		q = q.Where("category = ?", category)
	}
	var total int64
	err := q.Count(&total).Error
	return total, err
}

// Search matches the query case-insensitively against name, description
// and category. Results come back newest first.
func (r *Repository) Search(ctx context.Context, query string) ([]models.Product, error) {
	needle := "%" + strings.ToLower(query) + "%"
	var rows []models.Product
	err := r.db.WithContext(ctx).
		Where("LOWER(name) LIKE ? OR LOWER(description) LIKE ? OR LOWER(category) LIKE ?", needle, needle, needle).
		Order("created_at DESC").
		Find(&rows).Error
	return rows, err
}

// Categories returns the distinct category names present in the catalog.
func (r *Repository) Categories(ctx context.Context) ([]string, error) {
	var names []string
	err := r.db.WithContext(ctx).
		Model(&models.Product{}).
		Distinct().
		Order("category ASC").
		Pluck("category", &names).Error
	return names, err
}
