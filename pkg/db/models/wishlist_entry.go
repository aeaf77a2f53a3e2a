package models

import "time"

// WishlistEntry links a user to a saved product. The composite unique index is
// the sole mechanism keeping concurrent duplicate adds down to one row.
type WishlistEntry struct {
	ID        int64     `gorm:"column:id;primaryKey;autoIncrement"`
	UserID    string    `gorm:"column:user_id;not null;index:wishlist_user_id_idx;uniqueIndex:wishlist_user_product_key"`
	ProductID string    `gorm:"column:product_id;not null;uniqueIndex:wishlist_user_product_key"`
	AddedAt   time.Time `gorm:"column:added_at;autoCreateTime"`
}

// TableName keeps the historical table name.
func (WishlistEntry) TableName() string {
	return "wishlist"
}
