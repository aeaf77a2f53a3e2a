package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product represents a catalog listing. Read-heavy, rarely mutated.
type Product struct {
	ID          string          `gorm:"column:id;primaryKey"`
	Name        string          `gorm:"column:name;not null"`
	Description string          `gorm:"column:description"`
	Price       decimal.Decimal `gorm:"column:price;type:numeric(10,2);not null"`
	Category    string          `gorm:"column:category;index:products_category_idx"`
	Image       string          `gorm:"column:image"`
	Stock       int             `gorm:"column:stock;not null;default:0"`
	Rating      decimal.Decimal `gorm:"column:rating;type:numeric(3,1);not null;default:0"`
	CreatedAt   time.Time       `gorm:"column:created_at;autoCreateTime"`
}
