package schema

import (
	"time"

	"gorm.io/datatypes"
)

// PurchaseHistory represents the purchase_histories table - one immutable
// row per marketplace purchase, keyed by the purchased garment token id.
// An existing row is the idempotency signal for OfferPurchased replays.
type PurchaseHistory struct {
	// ID is the purchased garment token id
	ID string `gorm:"column:id;primaryKey;type:text"`
	// Buyer is the purchasing address
	Buyer string `gorm:"column:buyer;not null;type:text;index"`
	// Value is the primary sale price paid, in wei
	Value string `gorm:"column:value;not null;type:numeric(78,0)"`
	// IsPaidWithMona marks purchases settled in the Mona ERC-20 token
	IsPaidWithMona bool `gorm:"column:is_paid_with_mona;not null;default:false"`
	// MonaTransferredAmount is the Mona amount moved, zero for ETH purchases
	MonaTransferredAmount string `gorm:"column:mona_transferred_amount;not null;default:0;type:numeric(78,0)"`
	// Discount is the global Mona discount at purchase time, zero for ETH
	Discount string `gorm:"column:discount;not null;default:0;type:numeric(78,0)"`
	// PlatformFee is the marketplace fee applied to this purchase
	PlatformFee string `gorm:"column:platform_fee;not null;default:0;type:numeric(78,0)"`
	// CollectionID references the offer's collection
	CollectionID string `gorm:"column:collection_id;not null;type:text;index"`
	// TxHash is the purchasing transaction hash
	TxHash string `gorm:"column:tx_hash;not null;type:text"`
	// Timestamp is the block timestamp of the purchase
	Timestamp time.Time `gorm:"column:timestamp;not null"`
	// Raw contains the decoded event payload as JSON for debugging
	Raw datatypes.JSON `gorm:"column:raw;type:jsonb"`
	// CreatedAt is the timestamp when this record was projected
	CreatedAt time.Time `gorm:"column:created_at;not null"`
}

// TableName specifies the table name for the PurchaseHistory model
func (PurchaseHistory) TableName() string {
	return "purchase_histories"
}
