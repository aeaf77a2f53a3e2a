package wishlist

import (
	"context"
	"time"

	"github.com/davidcastanon/shopmart-backend/pkg/db/models"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Repository provides wishlist access on top of gorm.
type Repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// Insert adds a membership row if it does not already exist. The composite
// unique index absorbs duplicates via ON CONFLICT DO NOTHING, so repeating the
// call for the same pair affects zero rows and is not an error.
func (r *Repository) Insert(ctx context.Context, userID, productID string) error {
	entry := models.WishlistEntry{UserID: userID, ProductID: productID}
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}, {Name: "product_id"}},
			DoNothing: true,
		}).
		Create(&entry).Error
}

// Find returns the membership row for the pair, or (nil, nil) when absent.
func (r *Repository) Find(ctx context.Context, userID, productID string) (*models.WishlistEntry, error) {
	var entry models.WishlistEntry
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND product_id = ?", userID, productID).
		First(&entry).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}
	return &entry, nil
}

// Delete removes the membership row and reports whether one existed.
func (r *Repository) Delete(ctx context.Context, userID, productID string) (bool, error) {
	res := r.db.WithContext(ctx).
		Where("user_id = ? AND product_id = ?", userID, productID).
		Delete(&models.WishlistEntry{})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

// ListForUser returns the user's membership rows, most recently added first.
func (r *Repository) ListForUser(ctx context.Context, userID string) ([]models.WishlistEntry, error) {
	var rows []models.WishlistEntry
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("added_at DESC").
		Find(&rows).Error
	return rows, err
}

// joinedRow is the scan target for the wishlist/products join.
type joinedRow struct {
	ID        int64
	ProductID string
	Name      string
	Price     decimal.Decimal
	Category  string
	Image     string
	Stock     int
	Rating    decimal.Decimal
	AddedAt   time.Time
}

// ListWithProducts joins each membership row with its product. Entries whose
// product has been deleted drop out of the result by way of the inner join.
func (r *Repository) ListWithProducts(ctx context.Context, userID string) ([]EntryWithProductDTO, error) {
	var rows []joinedRow
	err := r.db.WithContext(ctx).
		Table("wishlist").
		Select("wishlist.id, wishlist.product_id, products.name, products.price, products.category, products.image, products.stock, products.rating, wishlist.added_at").
		Joins("JOIN products ON products.id = wishlist.product_id").
		Where("wishlist.user_id = ?", userID).
		Order("wishlist.added_at DESC").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	items := make([]EntryWithProductDTO, 0, len(rows))
	for _, row := range rows {
		items = append(items, EntryWithProductDTO{
			ID:        row.ID,
			ProductID: row.ProductID,
			Name:      row.Name,
			Price:     row.Price.InexactFloat64(),
			Category:  row.Category,
			Image:     row.Image,
			Stock:     row.Stock,
			Rating:    row.Rating.InexactFloat64(),
			AddedAt:   row.AddedAt,
		})
	}
	return items, nil
}
