package schema

import "time"

// AuctionContractConfig represents the auction_contract_configs table - one
// row per deployed auction contract version. TotalSales is a running sum and
// only ever increases.
type AuctionContractConfig struct {
	// ID is the auction contract address
	ID string `gorm:"column:id;primaryKey;type:text"`
	// MinBidIncrement is the minimum wei step between consecutive bids
	MinBidIncrement string `gorm:"column:min_bid_increment;not null;default:0;type:numeric(78,0)"`
	// BidWithdrawalLockTime is the lock window in seconds before a bid may be withdrawn
	BidWithdrawalLockTime uint64 `gorm:"column:bid_withdrawal_lock_time;not null;default:0"`
	// PlatformFee is the fee in basis points taken on resulted auctions
	PlatformFee string `gorm:"column:platform_fee;not null;default:0;type:numeric(78,0)"`
	// PlatformFeeRecipient receives the platform fee
	PlatformFeeRecipient string `gorm:"column:platform_fee_recipient;not null;default:'';type:text"`
	// TotalSales accumulates winning bids of resulted auctions, in wei
	TotalSales string `gorm:"column:total_sales;not null;default:0;type:numeric(78,0)"`
	// UpdatedAt is the timestamp when this record was last updated
	UpdatedAt time.Time `gorm:"column:updated_at;not null"`
}

// TableName specifies the table name for the AuctionContractConfig model
func (AuctionContractConfig) TableName() string {
	return "auction_contract_configs"
}
