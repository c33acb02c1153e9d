package schema

import "time"

// Offer represents the offers table - one row per collection on primary
// sale. Cancellation soft-clears the sale fields but the row persists for
// audit; AmountSold is a monotonic counter.
type Offer struct {
	// ID is the collection id
	ID string `gorm:"column:id;primaryKey;type:text"`
	// PrimarySalePrice is the current unit price in wei, nil once cancelled
	PrimarySalePrice *string `gorm:"column:primary_sale_price;type:numeric(78,0)"`
	// StartTime is the sale start, unix seconds as recorded on chain
	StartTime uint64 `gorm:"column:start_time;not null;default:0"`
	// AmountSold counts garments sold from this offer, never decreases
	AmountSold uint64 `gorm:"column:amount_sold;not null;default:0"`
	// CollectionID references the offered collection, nil once cancelled
	CollectionID *string `gorm:"column:collection_id;type:text"`
	// CreatedAt is the timestamp when this record was first projected
	CreatedAt time.Time `gorm:"column:created_at;not null"`
	// UpdatedAt is the timestamp when this record was last updated
	UpdatedAt time.Time `gorm:"column:updated_at;not null"`
}

// TableName specifies the table name for the Offer model
func (Offer) TableName() string {
	return "offers"
}
