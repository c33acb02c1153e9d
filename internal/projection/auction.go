package projection

import (
	"context"
	"fmt"
	"math/big"

	"gorm.io/datatypes"

	"github.com/atelier-labs/fashion-indexer/internal/chain"
	"github.com/atelier-labs/fashion-indexer/internal/domain"
	"github.com/atelier-labs/fashion-indexer/internal/store/schema"
	"github.com/atelier-labs/fashion-indexer/internal/types"
)

// auctionHistoryApplied reports whether the emission's audit row already
// exists, meaning its effects were applied in a previous delivery.
func (e *Engine) auctionHistoryApplied(ctx context.Context, event *domain.Event, tokenID string) (bool, error) {
	record, err := e.store.GetAuctionHistoryEvent(ctx, event.EmissionID(tokenID))
	if err != nil {
		return false, err
	}
	return record != nil, nil
}

// appendAuctionHistory writes the immutable audit row for an emission
func (e *Engine) appendAuctionHistory(ctx context.Context, event *domain.Event, name schema.AuctionEventName, tokenID string, bidder, value *string) error {
	return e.store.CreateAuctionHistoryEvent(ctx, &schema.AuctionHistoryEvent{
		ID:        event.EmissionID(tokenID),
		EventName: name,
		TokenID:   tokenID,
		Bidder:    bidder,
		Value:     value,
		Timestamp: event.Timestamp,
		TxHash:    event.TxHash,
		Raw:       datatypes.JSON(event.Params),
	})
}

// requireAuction loads an auction and fails loudly when it is missing. A
// missing auction on a lifecycle event means out-of-order delivery or an
// upstream bug; skipping would leave the aggregates inconsistent.
func (e *Engine) requireAuction(ctx context.Context, tokenID string) (*schema.Auction, error) {
	auction, err := e.store.GetAuction(ctx, tokenID)
	if err != nil {
		return nil, err
	}
	if auction == nil {
		return nil, fmt.Errorf("%w: auction %s", domain.ErrEntityNotFound, tokenID)
	}
	return auction, nil
}

func (e *Engine) handleAuctionCreated(ctx context.Context, event *domain.Event, p *domain.AuctionCreated) error {
	applied, err := e.auctionHistoryApplied(ctx, event, p.TokenID)
	if err != nil {
		return err
	}
	if applied {
		return nil
	}

	// Auction parameters come from the authoritative on-chain read at the
	// event's block, not from other events
	state, err := readWithRetry(ctx, e, func() (*chain.AuctionState, error) {
		return e.reader.Auction(ctx, event.Contract, p.TokenID, event.BlockNumber)
	})
	if err != nil {
		return fmt.Errorf("failed to read auction %s: %w", p.TokenID, err)
	}

	designerID := ""
	garment, err := e.store.GetGarment(ctx, p.TokenID)
	if err != nil {
		return err
	}
	if garment != nil {
		designerID = types.SafeString(garment.DesignerID)
	}

	auction := &schema.Auction{
		ID:           p.TokenID,
		GarmentID:    p.TokenID,
		DesignerID:   designerID,
		Contract:     event.Contract,
		ReservePrice: types.FormatWei(state.ReservePrice),
		StartTime:    state.StartTime,
		EndTime:      state.EndTime,
		Resulted:     state.Resulted,
	}
	if err := e.store.SaveAuction(ctx, auction); err != nil {
		return err
	}

	if designerID != "" {
		designer, err := e.registry.Designer(ctx, designerID)
		if err != nil {
			return err
		}
		designer.ListingIDs = types.AppendUnique(designer.ListingIDs, p.TokenID)
		if err := e.store.SaveDesigner(ctx, designer); err != nil {
			return err
		}
	}

	return e.appendAuctionHistory(ctx, event, schema.AuctionEventCreated, p.TokenID, nil, nil)
}

func (e *Engine) handleBidPlaced(ctx context.Context, event *domain.Event, p *domain.BidPlaced) error {
	applied, err := e.auctionHistoryApplied(ctx, event, p.TokenID)
	if err != nil {
		return err
	}
	if applied {
		return nil
	}

	auction, err := e.requireAuction(ctx, p.TokenID)
	if err != nil {
		return err
	}

	// Multiple bids in one block may supersede each other before this
	// handler runs, so the standing top bid comes from the contract
	highestBid, err := readWithRetry(ctx, e, func() (*chain.HighestBidState, error) {
		return e.reader.HighestBid(ctx, event.Contract, p.TokenID, event.BlockNumber)
	})
	if err != nil {
		return fmt.Errorf("failed to read highest bid for %s: %w", p.TokenID, err)
	}

	previousTopBid := new(big.Int)
	if auction.HasTopBid() {
		previousTopBid, err = types.ParseWei(types.SafeString(auction.TopBid))
		if err != nil {
			return err
		}
	}

	newTopBid := new(big.Int)
	if highestBid.HasBidder() {
		newTopBid = highestBid.Bid
	}

	delta := new(big.Int).Sub(newTopBid, previousTopBid)

	bucket, err := e.registry.DayBucket(ctx, types.DayKey(event.Timestamp))
	if err != nil {
		return err
	}
	bucket.TotalBidValue, err = types.AddWei(bucket.TotalBidValue, delta)
	if err != nil {
		return err
	}
	if err := e.recomputeNetBidActivity(bucket); err != nil {
		return err
	}
	if err := e.store.SaveDayBucket(ctx, bucket); err != nil {
		return err
	}

	stats, err := e.registry.GlobalStats(ctx)
	if err != nil {
		return err
	}
	if err := e.adjustActiveBids(ctx, stats, delta); err != nil {
		return err
	}
	if err := e.store.SaveGlobalStats(ctx, stats); err != nil {
		return err
	}

	if highestBid.HasBidder() {
		auction.TopBidder = types.StringPtr(highestBid.Bidder)
		auction.TopBid = types.StringPtr(types.FormatWei(highestBid.Bid))
		lastBidTime := highestBid.LastBidTime
		auction.LastBidTime = &lastBidTime
	} else {
		auction.ClearTopBid()
	}
	if err := e.store.SaveAuction(ctx, auction); err != nil {
		return err
	}

	// The raw event bid is preserved verbatim for audit; it may differ from
	// the authoritative top bid when this is not the winning bid of the block
	return e.appendAuctionHistory(ctx, event, schema.AuctionEventBidPlaced, p.TokenID,
		types.StringPtr(p.Bidder), types.StringPtr(p.Bid))
}

func (e *Engine) handleBidWithdrawn(ctx context.Context, event *domain.Event, p *domain.BidWithdrawn) error {
	applied, err := e.auctionHistoryApplied(ctx, event, p.TokenID)
	if err != nil {
		return err
	}
	if applied {
		return nil
	}

	auction, err := e.requireAuction(ctx, p.TokenID)
	if err != nil {
		return err
	}

	bid, err := types.ParseWei(p.Bid)
	if err != nil {
		return err
	}

	auction.ClearTopBid()
	if err := e.store.SaveAuction(ctx, auction); err != nil {
		return err
	}

	bucket, err := e.registry.DayBucket(ctx, types.DayKey(event.Timestamp))
	if err != nil {
		return err
	}
	bucket.TotalWithdrawalValue, err = types.AddWei(bucket.TotalWithdrawalValue, bid)
	if err != nil {
		return err
	}
	if err := e.recomputeNetBidActivity(bucket); err != nil {
		return err
	}
	if err := e.store.SaveDayBucket(ctx, bucket); err != nil {
		return err
	}

	stats, err := e.registry.GlobalStats(ctx)
	if err != nil {
		return err
	}
	if err := e.adjustActiveBids(ctx, stats, new(big.Int).Neg(bid)); err != nil {
		return err
	}
	if err := e.store.SaveGlobalStats(ctx, stats); err != nil {
		return err
	}

	return e.appendAuctionHistory(ctx, event, schema.AuctionEventBidWithdrawn, p.TokenID,
		types.StringPtr(p.Bidder), types.StringPtr(p.Bid))
}

func (e *Engine) handleAuctionResulted(ctx context.Context, event *domain.Event, p *domain.AuctionResulted) error {
	applied, err := e.auctionHistoryApplied(ctx, event, p.TokenID)
	if err != nil {
		return err
	}
	if applied {
		return nil
	}

	auction, err := e.requireAuction(ctx, p.TokenID)
	if err != nil {
		return err
	}

	winningBid, err := types.ParseWei(p.WinningBid)
	if err != nil {
		return err
	}

	resultedTime := event.Timestamp
	auction.Resulted = true
	auction.ResultedTime = &resultedTime
	if err := e.store.SaveAuction(ctx, auction); err != nil {
		return err
	}

	config, err := e.registry.AuctionContractConfig(ctx, event.Contract)
	if err != nil {
		return err
	}
	config.TotalSales, err = types.AddWei(config.TotalSales, winningBid)
	if err != nil {
		return err
	}
	if err := e.store.SaveAuctionContractConfig(ctx, config); err != nil {
		return err
	}

	stats, err := e.registry.GlobalStats(ctx)
	if err != nil {
		return err
	}
	stats.TotalSalesValue, err = types.AddWei(stats.TotalSalesValue, winningBid)
	if err != nil {
		return err
	}
	if err := e.adjustActiveBids(ctx, stats, new(big.Int).Neg(winningBid)); err != nil {
		return err
	}
	if err := e.store.SaveGlobalStats(ctx, stats); err != nil {
		return err
	}

	return e.appendAuctionHistory(ctx, event, schema.AuctionEventResulted, p.TokenID,
		types.StringPtr(p.Winner), types.StringPtr(p.WinningBid))
}

func (e *Engine) handleAuctionCancelled(ctx context.Context, event *domain.Event, p *domain.AuctionCancelled) error {
	applied, err := e.auctionHistoryApplied(ctx, event, p.TokenID)
	if err != nil {
		return err
	}
	if applied {
		return nil
	}

	auction, err := e.requireAuction(ctx, p.TokenID)
	if err != nil {
		return err
	}

	if auction.HasTopBid() {
		topBid, err := types.ParseWei(types.SafeString(auction.TopBid))
		if err != nil {
			return err
		}

		stats, err := e.registry.GlobalStats(ctx)
		if err != nil {
			return err
		}
		if err := e.adjustActiveBids(ctx, stats, new(big.Int).Neg(topBid)); err != nil {
			return err
		}
		if err := e.store.SaveGlobalStats(ctx, stats); err != nil {
			return err
		}

		auction.ClearTopBid()
	}

	if err := e.store.SaveAuction(ctx, auction); err != nil {
		return err
	}

	return e.appendAuctionHistory(ctx, event, schema.AuctionEventCancelled, p.TokenID, nil, nil)
}

func (e *Engine) handleUpdateAuctionReservePrice(ctx context.Context, event *domain.Event, p *domain.UpdateAuctionReservePrice) error {
	auction, err := e.requireAuction(ctx, p.TokenID)
	if err != nil {
		return err
	}

	auction.ReservePrice = p.ReservePrice
	return e.store.SaveAuction(ctx, auction)
}

func (e *Engine) handleUpdateAuctionStartTime(ctx context.Context, event *domain.Event, p *domain.UpdateAuctionStartTime) error {
	auction, err := e.requireAuction(ctx, p.TokenID)
	if err != nil {
		return err
	}

	auction.StartTime = p.StartTime
	return e.store.SaveAuction(ctx, auction)
}

func (e *Engine) handleUpdateAuctionEndTime(ctx context.Context, event *domain.Event, p *domain.UpdateAuctionEndTime) error {
	auction, err := e.requireAuction(ctx, p.TokenID)
	if err != nil {
		return err
	}

	auction.EndTime = p.EndTime
	return e.store.SaveAuction(ctx, auction)
}

func (e *Engine) handleUpdateMinBidIncrement(ctx context.Context, event *domain.Event, p *domain.UpdateMinBidIncrement) error {
	config, err := e.registry.AuctionContractConfig(ctx, event.Contract)
	if err != nil {
		return err
	}

	config.MinBidIncrement = p.MinBidIncrement
	return e.store.SaveAuctionContractConfig(ctx, config)
}

func (e *Engine) handleUpdateBidWithdrawalLockTime(ctx context.Context, event *domain.Event, p *domain.UpdateBidWithdrawalLockTime) error {
	config, err := e.registry.AuctionContractConfig(ctx, event.Contract)
	if err != nil {
		return err
	}

	config.BidWithdrawalLockTime = p.BidWithdrawalLockTime
	return e.store.SaveAuctionContractConfig(ctx, config)
}

func (e *Engine) handleUpdatePlatformFee(ctx context.Context, event *domain.Event, p *domain.UpdatePlatformFee) error {
	config, err := e.registry.AuctionContractConfig(ctx, event.Contract)
	if err != nil {
		return err
	}

	config.PlatformFee = p.PlatformFee
	return e.store.SaveAuctionContractConfig(ctx, config)
}

func (e *Engine) handleUpdatePlatformFeeRecipient(ctx context.Context, event *domain.Event, p *domain.UpdatePlatformFeeRecipient) error {
	config, err := e.registry.AuctionContractConfig(ctx, event.Contract)
	if err != nil {
		return err
	}

	config.PlatformFeeRecipient = p.PlatformFeeRecipient
	return e.store.SaveAuctionContractConfig(ctx, config)
}

// recomputeNetBidActivity maintains totalNetBidActivity as
// totalBidValue - totalWithdrawalValue
func (e *Engine) recomputeNetBidActivity(bucket *schema.DayBucket) error {
	withdrawn, err := types.ParseWei(bucket.TotalWithdrawalValue)
	if err != nil {
		return err
	}

	net, err := types.SubWei(bucket.TotalBidValue, withdrawn)
	if err != nil {
		return err
	}
	bucket.TotalNetBidActivity = net

	return nil
}
