package schema

import "time"

// Collection represents the collections table. A burn nulls the fields, the
// row itself persists.
type Collection struct {
	// ID is the collection id
	ID string `gorm:"column:id;primaryKey;type:text"`
	// TokenIDs are the garment token ids minted under this collection
	TokenIDs []string `gorm:"column:token_ids;serializer:json"`
	// TokenURI is the shared metadata URI of the collection
	TokenURI *string `gorm:"column:token_uri;type:text"`
	// DesignerID references the collection's designer
	DesignerID *string `gorm:"column:designer_id;type:text;index"`
	// CreatedAt is the timestamp when this record was first projected
	CreatedAt time.Time `gorm:"column:created_at;not null"`
	// UpdatedAt is the timestamp when this record was last updated
	UpdatedAt time.Time `gorm:"column:updated_at;not null"`
}

// TableName specifies the table name for the Collection model
func (Collection) TableName() string {
	return "collections"
}
