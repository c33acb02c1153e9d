package schema

import "time"

// Auction represents the auctions table - one row per auctioned garment token.
// TopBidder, TopBid and LastBidTime are set and cleared together: either all
// three are present or all three are null.
type Auction struct {
	// ID is the garment token id
	ID string `gorm:"column:id;primaryKey;type:text"`
	// GarmentID references the auctioned garment
	GarmentID string `gorm:"column:garment_id;not null;type:text"`
	// DesignerID references the garment's designer
	DesignerID string `gorm:"column:designer_id;not null;type:text;index"`
	// Contract is the auction contract address this auction lives on
	Contract string `gorm:"column:contract;not null;type:text;index"`
	// ReservePrice is copied from the authoritative on-chain read at creation
	ReservePrice string `gorm:"column:reserve_price;not null;type:numeric(78,0)"`
	// StartTime is the auction start, unix seconds as recorded on chain
	StartTime uint64 `gorm:"column:start_time;not null"`
	// EndTime is the auction end, unix seconds as recorded on chain
	EndTime uint64 `gorm:"column:end_time;not null"`
	// Resulted marks the auction as settled (terminal for bid accounting)
	Resulted bool `gorm:"column:resulted;not null;default:false"`
	// ResultedTime is the block timestamp of the AuctionResulted event
	ResultedTime *time.Time `gorm:"column:resulted_time"`
	// TopBidder is the current highest bidder's address
	TopBidder *string `gorm:"column:top_bidder;type:text"`
	// TopBid is the current highest bid in wei
	TopBid *string `gorm:"column:top_bid;type:numeric(78,0)"`
	// LastBidTime is the unix timestamp of the current highest bid
	LastBidTime *uint64 `gorm:"column:last_bid_time"`
	// CreatedAt is the timestamp when this record was first projected
	CreatedAt time.Time `gorm:"column:created_at;not null"`
	// UpdatedAt is the timestamp when this record was last updated
	UpdatedAt time.Time `gorm:"column:updated_at;not null"`
}

// TableName specifies the table name for the Auction model
func (Auction) TableName() string {
	return "auctions"
}

// HasTopBid reports whether a top bid is currently recorded
func (a *Auction) HasTopBid() bool {
	return a.TopBidder != nil
}

// ClearTopBid nulls the top-bid field triplet
func (a *Auction) ClearTopBid() {
	a.TopBidder = nil
	a.TopBid = nil
	a.LastBidTime = nil
}
