package schema

import "time"

// DayBucket represents the day_buckets table - rolling per-day bid
// statistics, keyed by UTC calendar day and created on first touch.
// TotalNetBidActivity is maintained as TotalBidValue - TotalWithdrawalValue.
type DayBucket struct {
	// ID is the UTC calendar day, YYYY-MM-DD
	ID string `gorm:"column:id;primaryKey;type:text"`
	// TotalBidValue is the running net top-bid value placed this day, in wei
	TotalBidValue string `gorm:"column:total_bid_value;not null;default:0;type:numeric(78,0)"`
	// TotalWithdrawalValue is the running withdrawn bid value this day, in wei
	TotalWithdrawalValue string `gorm:"column:total_withdrawal_value;not null;default:0;type:numeric(78,0)"`
	// TotalNetBidActivity is TotalBidValue - TotalWithdrawalValue
	TotalNetBidActivity string `gorm:"column:total_net_bid_activity;not null;default:0;type:numeric(78,0)"`
	// CreatedAt is the timestamp when this record was first projected
	CreatedAt time.Time `gorm:"column:created_at;not null"`
	// UpdatedAt is the timestamp when this record was last updated
	UpdatedAt time.Time `gorm:"column:updated_at;not null"`
}

// TableName specifies the table name for the DayBucket model
func (DayBucket) TableName() string {
	return "day_buckets"
}

// GlobalStats represents the global_stats singleton (id = "1"). All
// aggregates are adjusted by relative deltas in emission order, never by
// blind overwrite; TotalActiveBidsValue must never go negative.
type GlobalStats struct {
	// ID is always "1"
	ID string `gorm:"column:id;primaryKey;type:text"`
	// TotalSalesValue accumulates winning bids of resulted auctions, in wei
	TotalSalesValue string `gorm:"column:total_sales_value;not null;default:0;type:numeric(78,0)"`
	// TotalActiveBidsValue is the sum of live top bids across all auctions
	TotalActiveBidsValue string `gorm:"column:total_active_bids_value;not null;default:0;type:numeric(78,0)"`
	// TotalMarketplaceSalesETH accumulates ETH-settled marketplace sales
	TotalMarketplaceSalesETH string `gorm:"column:total_marketplace_sales_eth;not null;default:0;type:numeric(78,0)"`
	// TotalMarketplaceSalesMona accumulates Mona-settled marketplace sales
	TotalMarketplaceSalesMona string `gorm:"column:total_marketplace_sales_mona;not null;default:0;type:numeric(78,0)"`
	// MonaPerEth is the current oracle Mona/ETH rate
	MonaPerEth string `gorm:"column:mona_per_eth;not null;default:0;type:numeric(78,0)"`
	// PlatformFee is the current marketplace platform fee
	PlatformFee string `gorm:"column:platform_fee;not null;default:0;type:numeric(78,0)"`
	// MonaDiscount is the current discount for paying in Mona
	MonaDiscount string `gorm:"column:mona_discount;not null;default:0;type:numeric(78,0)"`
	// UpdatedAt is the timestamp when this record was last updated
	UpdatedAt time.Time `gorm:"column:updated_at;not null"`
}

// TableName specifies the table name for the GlobalStats model
func (GlobalStats) TableName() string {
	return "global_stats"
}
