// Package registry provides the load-or-create factories for cross-cutting
// entities. Entities covered here must never be instantiated any other way,
// so their zero-valued defaults stay consistent across handlers.
package registry

import (
	"context"
	"fmt"

	"github.com/atelier-labs/fashion-indexer/internal/domain"
	"github.com/atelier-labs/fashion-indexer/internal/store"
	"github.com/atelier-labs/fashion-indexer/internal/store/schema"
)

// Registry hands out existing records or freshly initialized ones. Creation
// is idempotent: two calls with the same key observe the same record.
type Registry struct {
	store store.Store
}

// New creates a registry over the given store
func New(st store.Store) *Registry {
	return &Registry{store: st}
}

// Collector loads or creates a collector by address
func (r *Registry) Collector(ctx context.Context, address string) (*schema.Collector, error) {
	collector, err := r.store.GetCollector(ctx, address)
	if err != nil {
		return nil, err
	}
	if collector != nil {
		return collector, nil
	}

	collector = &schema.Collector{ID: address, GarmentIDs: []string{}}
	if err := r.store.SaveCollector(ctx, collector); err != nil {
		return nil, fmt.Errorf("failed to create collector %q: %w", address, err)
	}

	return collector, nil
}

// Designer loads or creates a designer by id
func (r *Registry) Designer(ctx context.Context, id string) (*schema.Designer, error) {
	designer, err := r.store.GetDesigner(ctx, id)
	if err != nil {
		return nil, err
	}
	if designer != nil {
		return designer, nil
	}

	designer = &schema.Designer{ID: id, GarmentIDs: []string{}, ListingIDs: []string{}}
	if err := r.store.SaveDesigner(ctx, designer); err != nil {
		return nil, fmt.Errorf("failed to create designer %q: %w", id, err)
	}

	return designer, nil
}

// Resident loads or creates a resident by address
func (r *Registry) Resident(ctx context.Context, address string) (*schema.Resident, error) {
	resident, err := r.store.GetResident(ctx, address)
	if err != nil {
		return nil, err
	}
	if resident != nil {
		return resident, nil
	}

	resident = &schema.Resident{ID: address, GarmentIDs: []string{}}
	if err := r.store.SaveResident(ctx, resident); err != nil {
		return nil, fmt.Errorf("failed to create resident %q: %w", address, err)
	}

	return resident, nil
}

// Staker loads or creates a staker by address
func (r *Registry) Staker(ctx context.Context, address string) (*schema.Staker, error) {
	staker, err := r.store.GetStaker(ctx, address)
	if err != nil {
		return nil, err
	}
	if staker != nil {
		return staker, nil
	}

	staker = &schema.Staker{ID: address, GarmentIDs: []string{}, TotalRewardsClaimed: "0"}
	if err := r.store.SaveStaker(ctx, staker); err != nil {
		return nil, fmt.Errorf("failed to create staker %q: %w", address, err)
	}

	return staker, nil
}

// DayBucket loads or creates the rolling stats bucket for a day key
func (r *Registry) DayBucket(ctx context.Context, dayKey string) (*schema.DayBucket, error) {
	bucket, err := r.store.GetDayBucket(ctx, dayKey)
	if err != nil {
		return nil, err
	}
	if bucket != nil {
		return bucket, nil
	}

	bucket = &schema.DayBucket{
		ID:                   dayKey,
		TotalBidValue:        "0",
		TotalWithdrawalValue: "0",
		TotalNetBidActivity:  "0",
	}
	if err := r.store.SaveDayBucket(ctx, bucket); err != nil {
		return nil, fmt.Errorf("failed to create day bucket %q: %w", dayKey, err)
	}

	return bucket, nil
}

// GlobalStats loads or creates the global stats singleton
func (r *Registry) GlobalStats(ctx context.Context) (*schema.GlobalStats, error) {
	stats, err := r.store.GetGlobalStats(ctx, domain.GLOBAL_STATS_ID)
	if err != nil {
		return nil, err
	}
	if stats != nil {
		return stats, nil
	}

	stats = &schema.GlobalStats{
		ID:                        domain.GLOBAL_STATS_ID,
		TotalSalesValue:           "0",
		TotalActiveBidsValue:      "0",
		TotalMarketplaceSalesETH:  "0",
		TotalMarketplaceSalesMona: "0",
		MonaPerEth:                "0",
		PlatformFee:               "0",
		MonaDiscount:              "0",
	}
	if err := r.store.SaveGlobalStats(ctx, stats); err != nil {
		return nil, fmt.Errorf("failed to create global stats: %w", err)
	}

	return stats, nil
}

// AuctionContractConfig loads or creates the per-contract auction config
func (r *Registry) AuctionContractConfig(ctx context.Context, contract string) (*schema.AuctionContractConfig, error) {
	config, err := r.store.GetAuctionContractConfig(ctx, contract)
	if err != nil {
		return nil, err
	}
	if config != nil {
		return config, nil
	}

	config = &schema.AuctionContractConfig{
		ID:              contract,
		MinBidIncrement: "0",
		PlatformFee:     "0",
		TotalSales:      "0",
	}
	if err := r.store.SaveAuctionContractConfig(ctx, config); err != nil {
		return nil, fmt.Errorf("failed to create auction contract config %q: %w", contract, err)
	}

	return config, nil
}
