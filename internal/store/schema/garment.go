package schema

import "time"

// Garment represents the garments table - the composable parent NFT. On
// burn the descriptive fields are nulled but the row is retained, unlike
// Look tokens which are removed outright.
type Garment struct {
	// ID is the garment token id
	ID string `gorm:"column:id;primaryKey;type:text"`
	// DesignerID references the creating designer
	DesignerID *string `gorm:"column:designer_id;type:text;index"`
	// Owner is the current owner address
	Owner *string `gorm:"column:owner;type:text;index"`
	// PrimarySalePrice is the mint-time primary sale price in wei
	PrimarySalePrice *string `gorm:"column:primary_sale_price;type:numeric(78,0)"`
	// TokenURI is the garment metadata URI
	TokenURI *string `gorm:"column:token_uri;type:text"`
	// ChildIDs are composite keys of child strands composed into this garment
	ChildIDs []string `gorm:"column:child_ids;serializer:json"`
	// StakedBy is the staking owner while the garment is locked in staking
	StakedBy *string `gorm:"column:staked_by;type:text"`
	// CreatedAt is the timestamp when this record was first projected
	CreatedAt time.Time `gorm:"column:created_at;not null"`
	// UpdatedAt is the timestamp when this record was last updated
	UpdatedAt time.Time `gorm:"column:updated_at;not null"`
}

// TableName specifies the table name for the Garment model
func (Garment) TableName() string {
	return "garments"
}

// GarmentChild represents the garment_children table - composable child
// strands keyed by {parentId}-{childId}. Amount accumulates across repeated
// receipts of the same pair.
type GarmentChild struct {
	// ID is the composite {parentId}-{childId} key
	ID string `gorm:"column:id;primaryKey;type:text"`
	// ParentID references the owning garment
	ParentID string `gorm:"column:parent_id;not null;type:text;index"`
	// ChildTokenID is the child token id on the child contract
	ChildTokenID string `gorm:"column:child_token_id;not null;type:text"`
	// Contract is the child (strand) contract address
	Contract string `gorm:"column:contract;not null;type:text"`
	// TokenURI is the child metadata URI
	TokenURI string `gorm:"column:token_uri;not null;default:'';type:text"`
	// Amount is the accumulated quantity composed into the parent
	Amount string `gorm:"column:amount;not null;default:0;type:numeric(78,0)"`
	// CreatedAt is the timestamp when this record was first projected
	CreatedAt time.Time `gorm:"column:created_at;not null"`
	// UpdatedAt is the timestamp when this record was last updated
	UpdatedAt time.Time `gorm:"column:updated_at;not null"`
}

// TableName specifies the table name for the GarmentChild model
func (GarmentChild) TableName() string {
	return "garment_children"
}

// Look represents the looks table - display-only NFTs. Burn removes the row
// entirely, the one hard delete in the projection.
type Look struct {
	// ID is the look token id
	ID string `gorm:"column:id;primaryKey;type:text"`
	// Owner is the current owner address
	Owner string `gorm:"column:owner;not null;type:text;index"`
	// TokenURI is the look metadata URI
	TokenURI string `gorm:"column:token_uri;not null;default:'';type:text"`
	// CreatedAt is the timestamp when this record was first projected
	CreatedAt time.Time `gorm:"column:created_at;not null"`
	// UpdatedAt is the timestamp when this record was last updated
	UpdatedAt time.Time `gorm:"column:updated_at;not null"`
}

// TableName specifies the table name for the Look model
func (Look) TableName() string {
	return "looks"
}
