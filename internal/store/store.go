package store

import (
	"context"

	"github.com/atelier-labs/fashion-indexer/internal/domain"
	"github.com/atelier-labs/fashion-indexer/internal/store/schema"
)

// Store defines the interface for database operations. Every derived entity
// is addressable by its string primary key; Get methods return (nil, nil)
// when no record exists. The projection engine is the single writer, so no
// method takes locks beyond the database transaction it runs in.
//
//go:generate mockgen -source=store.go -destination=../mocks/store.go -package=mocks -mock_names=Store=MockStore
type Store interface {
	// GetAuction retrieves an auction by garment token id
	GetAuction(ctx context.Context, id string) (*schema.Auction, error)
	// SaveAuction upserts an auction
	SaveAuction(ctx context.Context, auction *schema.Auction) error

	// GetAuctionHistoryEvent retrieves an audit log row by emission id
	GetAuctionHistoryEvent(ctx context.Context, id string) (*schema.AuctionHistoryEvent, error)
	// CreateAuctionHistoryEvent appends an immutable audit log row
	CreateAuctionHistoryEvent(ctx context.Context, event *schema.AuctionHistoryEvent) error

	// GetAuctionContractConfig retrieves per-contract auction configuration
	GetAuctionContractConfig(ctx context.Context, contract string) (*schema.AuctionContractConfig, error)
	// SaveAuctionContractConfig upserts per-contract auction configuration
	SaveAuctionContractConfig(ctx context.Context, config *schema.AuctionContractConfig) error

	// GetOffer retrieves an offer by collection id
	GetOffer(ctx context.Context, id string) (*schema.Offer, error)
	// SaveOffer upserts an offer
	SaveOffer(ctx context.Context, offer *schema.Offer) error

	// GetPurchaseHistory retrieves a purchase by garment token id
	GetPurchaseHistory(ctx context.Context, id string) (*schema.PurchaseHistory, error)
	// CreatePurchaseHistory appends an immutable purchase row
	CreatePurchaseHistory(ctx context.Context, purchase *schema.PurchaseHistory) error

	// GetCollection retrieves a collection by id
	GetCollection(ctx context.Context, id string) (*schema.Collection, error)
	// SaveCollection upserts a collection
	SaveCollection(ctx context.Context, collection *schema.Collection) error

	// GetGarment retrieves a garment by token id
	GetGarment(ctx context.Context, id string) (*schema.Garment, error)
	// SaveGarment upserts a garment
	SaveGarment(ctx context.Context, garment *schema.Garment) error

	// GetGarmentChild retrieves a composed child by {parentId}-{childId}
	GetGarmentChild(ctx context.Context, id string) (*schema.GarmentChild, error)
	// SaveGarmentChild upserts a composed child
	SaveGarmentChild(ctx context.Context, child *schema.GarmentChild) error

	// GetLook retrieves a look token by id
	GetLook(ctx context.Context, id string) (*schema.Look, error)
	// SaveLook upserts a look token
	SaveLook(ctx context.Context, look *schema.Look) error
	// DeleteLook removes a look token record; burned looks are the one
	// entity that is physically deleted
	DeleteLook(ctx context.Context, id string) error

	// GetCollector retrieves a collector by address
	GetCollector(ctx context.Context, id string) (*schema.Collector, error)
	// SaveCollector upserts a collector
	SaveCollector(ctx context.Context, collector *schema.Collector) error

	// GetDesigner retrieves a designer by id
	GetDesigner(ctx context.Context, id string) (*schema.Designer, error)
	// SaveDesigner upserts a designer
	SaveDesigner(ctx context.Context, designer *schema.Designer) error

	// GetResident retrieves a resident by address
	GetResident(ctx context.Context, id string) (*schema.Resident, error)
	// SaveResident upserts a resident
	SaveResident(ctx context.Context, resident *schema.Resident) error

	// GetStaker retrieves a staker by address
	GetStaker(ctx context.Context, id string) (*schema.Staker, error)
	// SaveStaker upserts a staker
	SaveStaker(ctx context.Context, staker *schema.Staker) error

	// GetDesignerSet retrieves a catalog designer set by id
	GetDesignerSet(ctx context.Context, id string) (*schema.DesignerSet, error)
	// SaveDesignerSet upserts a catalog designer set
	SaveDesignerSet(ctx context.Context, set *schema.DesignerSet) error

	// GetAuctionSet retrieves a catalog auction set by id
	GetAuctionSet(ctx context.Context, id string) (*schema.AuctionSet, error)
	// SaveAuctionSet upserts a catalog auction set
	SaveAuctionSet(ctx context.Context, set *schema.AuctionSet) error

	// GetDayBucket retrieves a day bucket by its YYYY-MM-DD key
	GetDayBucket(ctx context.Context, id string) (*schema.DayBucket, error)
	// SaveDayBucket upserts a day bucket
	SaveDayBucket(ctx context.Context, bucket *schema.DayBucket) error

	// GetGlobalStats retrieves the global stats singleton
	GetGlobalStats(ctx context.Context, id string) (*schema.GlobalStats, error)
	// SaveGlobalStats upserts the global stats singleton
	SaveGlobalStats(ctx context.Context, stats *schema.GlobalStats) error

	// GetEventCursor retrieves the last committed event ordering triple
	GetEventCursor(ctx context.Context, chain string) (domain.Cursor, error)
	// SetEventCursor stores the last committed event ordering triple
	SetEventCursor(ctx context.Context, chain string, cursor domain.Cursor) error

	// GetBlockCursor retrieves the last processed block number for a chain
	GetBlockCursor(ctx context.Context, chain string) (uint64, error)
	// SetBlockCursor stores the last processed block number for a chain
	SetBlockCursor(ctx context.Context, chain string, blockNumber uint64) error
}
