package wishlist

import (
	"time"

	"github.com/davidcastanon/shopmart-backend/pkg/db/models"
)

// EntryDTO is the bare wishlist membership row.
type EntryDTO struct {
	ID        int64     `json:"id"`
	UserID    string    `json:"userId"`
	ProductID string    `json:"productId"`
	AddedAt   time.Time `json:"addedAt"`
}

// EntryWithProductDTO joins a membership row with its product so clients can
// render a wishlist page in one round trip.
type EntryWithProductDTO struct {
	ID        int64     `json:"id"`
	ProductID string    `json:"productId"`
	Name      string    `json:"name"`
	Price     float64   `json:"price"`
	Category  string    `json:"category"`
	Image     string    `json:"image"`
	Stock     int       `json:"stock"`
	Rating    float64   `json:"rating"`
	AddedAt   time.Time `json:"addedAt"`
}

func entryFromModel(e *models.WishlistEntry) EntryDTO {
	return EntryDTO{
		ID:        e.ID,
		UserID:    e.UserID,
		ProductID: e.ProductID,
		AddedAt:   e.AddedAt,
	}
}

func entriesFromModels(rows []models.WishlistEntry) []EntryDTO {
	items := make([]EntryDTO, 0, len(rows))
	for i := range rows {
		items = append(items, entryFromModel(&rows[i]))
	}
	return items
}
