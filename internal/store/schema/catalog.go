package schema

import "time"

// DesignerSet represents the designer_sets table - catalog membership lists
// used for browsing. SetRemoved nulls the membership array (soft-clear).
type DesignerSet struct {
	// ID is the set id on the catalog index contract
	ID string `gorm:"column:id;primaryKey;type:text"`
	// GarmentIDs is the full membership list, replaced on every set event
	GarmentIDs []string `gorm:"column:garment_ids;serializer:json"`
	// CreatedAt is the timestamp when this record was first projected
	CreatedAt time.Time `gorm:"column:created_at;not null"`
	// UpdatedAt is the timestamp when this record was last updated
	UpdatedAt time.Time `gorm:"column:updated_at;not null"`
}

// TableName specifies the table name for the DesignerSet model
func (DesignerSet) TableName() string {
	return "designer_sets"
}

// AuctionSet represents the auction_sets table - auction membership lists
// used for browsing
type AuctionSet struct {
	// ID is the set id on the catalog index contract
	ID string `gorm:"column:id;primaryKey;type:text"`
	// GarmentIDs is the full membership list, replaced on every set event
	GarmentIDs []string `gorm:"column:garment_ids;serializer:json"`
	// CreatedAt is the timestamp when this record was first projected
	CreatedAt time.Time `gorm:"column:created_at;not null"`
	// UpdatedAt is the timestamp when this record was last updated
	UpdatedAt time.Time `gorm:"column:updated_at;not null"`
}

// TableName specifies the table name for the AuctionSet model
func (AuctionSet) TableName() string {
	return "auction_sets"
}
