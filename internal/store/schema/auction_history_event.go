package schema

import (
	"time"

	"gorm.io/datatypes"
)

// AuctionEventName is the lifecycle event recorded in the auction audit log
type AuctionEventName string

const (
	AuctionEventCreated      AuctionEventName = "AuctionCreated"
	AuctionEventBidPlaced    AuctionEventName = "BidPlaced"
	AuctionEventBidWithdrawn AuctionEventName = "BidWithdrawn"
	AuctionEventResulted     AuctionEventName = "AuctionResulted"
	AuctionEventCancelled    AuctionEventName = "AuctionCancelled"
)

// AuctionHistoryEvent represents the auction_history_events table - an
// append-only audit log, one immutable row per emission. The primary key
// (tokenId-txHash-txIndex) doubles as the idempotency check: an existing row
// means the event's effects were already applied.
type AuctionHistoryEvent struct {
	// ID is tokenId-txHash-txIndex, globally unique per emission
	ID string `gorm:"column:id;primaryKey;type:text"`
	// EventName is the auction lifecycle event recorded
	EventName AuctionEventName `gorm:"column:event_name;not null;type:text"`
	// TokenID references the auctioned garment token
	TokenID string `gorm:"column:token_id;not null;type:text;index"`
	// Bidder is the bidding address for bid events, nil otherwise
	Bidder *string `gorm:"column:bidder;type:text"`
	// Value is the raw bid parameter from the event, preserved verbatim for
	// audit even when it is not the winning bid of the block
	Value *string `gorm:"column:value;type:numeric(78,0)"`
	// Timestamp is the block timestamp of the emission
	Timestamp time.Time `gorm:"column:timestamp;not null"`
	// TxHash is the emitting transaction hash
	TxHash string `gorm:"column:tx_hash;not null;type:text"`
	// Raw contains the decoded event payload as JSON for debugging
	Raw datatypes.JSON `gorm:"column:raw;type:jsonb"`
	// CreatedAt is the timestamp when this record was projected
	CreatedAt time.Time `gorm:"column:created_at;not null"`
}

// TableName specifies the table name for the AuctionHistoryEvent model
func (AuctionHistoryEvent) TableName() string {
	return "auction_history_events"
}
