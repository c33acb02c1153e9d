package schema

import "time"

// Collector, Designer, Resident and Staker are the lazily created
// cross-cutting entities. They are only ever created through the registry's
// load-or-create factories and are never destroyed, only appended to.

// Collector represents the collectors table, keyed by wallet address
type Collector struct {
	// ID is the collector's address
	ID string `gorm:"column:id;primaryKey;type:text"`
	// GarmentIDs are garments currently or previously held
	GarmentIDs []string `gorm:"column:garment_ids;serializer:json"`
	// CreatedAt is the timestamp when this record was first projected
	CreatedAt time.Time `gorm:"column:created_at;not null"`
	// UpdatedAt is the timestamp when this record was last updated
	UpdatedAt time.Time `gorm:"column:updated_at;not null"`
}

// TableName specifies the table name for the Collector model
func (Collector) TableName() string {
	return "collectors"
}

// Designer represents the designers table, keyed by designer id
type Designer struct {
	// ID is the designer identifier as recorded on chain
	ID string `gorm:"column:id;primaryKey;type:text"`
	// InfoURI is the designer's off-chain info URL
	InfoURI string `gorm:"column:info_uri;not null;default:'';type:text"`
	// GarmentIDs are garments attributed to this designer
	GarmentIDs []string `gorm:"column:garment_ids;serializer:json"`
	// ListingIDs are auction listings created for this designer's garments
	ListingIDs []string `gorm:"column:listing_ids;serializer:json"`
	// CreatedAt is the timestamp when this record was first projected
	CreatedAt time.Time `gorm:"column:created_at;not null"`
	// UpdatedAt is the timestamp when this record was last updated
	UpdatedAt time.Time `gorm:"column:updated_at;not null"`
}

// TableName specifies the table name for the Designer model
func (Designer) TableName() string {
	return "designers"
}

// Resident represents the residents table, keyed by wallet address
type Resident struct {
	// ID is the resident's address
	ID string `gorm:"column:id;primaryKey;type:text"`
	// GarmentIDs are garments linked to this resident
	GarmentIDs []string `gorm:"column:garment_ids;serializer:json"`
	// CreatedAt is the timestamp when this record was first projected
	CreatedAt time.Time `gorm:"column:created_at;not null"`
	// UpdatedAt is the timestamp when this record was last updated
	UpdatedAt time.Time `gorm:"column:updated_at;not null"`
}

// TableName specifies the table name for the Resident model
func (Resident) TableName() string {
	return "residents"
}

// Staker represents the stakers table, keyed by staking address.
// TotalRewardsClaimed only ever increases.
type Staker struct {
	// ID is the staker's address
	ID string `gorm:"column:id;primaryKey;type:text"`
	// GarmentIDs are garments currently locked in staking
	GarmentIDs []string `gorm:"column:garment_ids;serializer:json"`
	// TotalRewardsClaimed accumulates paid rewards in wei
	TotalRewardsClaimed string `gorm:"column:total_rewards_claimed;not null;default:0;type:numeric(78,0)"`
	// CreatedAt is the timestamp when this record was first projected
	CreatedAt time.Time `gorm:"column:created_at;not null"`
	// UpdatedAt is the timestamp when this record was last updated
	UpdatedAt time.Time `gorm:"column:updated_at;not null"`
}

// TableName specifies the table name for the Staker model
func (Staker) TableName() string {
	return "stakers"
}
