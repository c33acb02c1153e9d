// Package projection is the event-to-state core: one handler per event
// type, each turning an emission into deterministic mutations of the
// derived entities. The engine is single-threaded and strictly ordered;
// every aggregate mutation is a relative delta applied in emission order,
// so a handler failure halts processing rather than skipping (a silent
// skip would corrupt the delta-based aggregates permanently).
package projection

import (
	"context"
	"fmt"
	"math/big"
	"time"

	"github.com/cenkalti/backoff/v4"
	"go.uber.org/zap"

	"github.com/atelier-labs/fashion-indexer/internal/chain"
	"github.com/atelier-labs/fashion-indexer/internal/domain"
	"github.com/atelier-labs/fashion-indexer/internal/logger"
	"github.com/atelier-labs/fashion-indexer/internal/registry"
	"github.com/atelier-labs/fashion-indexer/internal/store"
	"github.com/atelier-labs/fashion-indexer/internal/store/schema"
	"github.com/atelier-labs/fashion-indexer/internal/types"
)

// Config holds the configuration for the projection engine
type Config struct {
	// Chain keys the persisted event cursor
	Chain string
	// ReadRetryMaxElapsed bounds retries of authoritative contract reads
	ReadRetryMaxElapsed time.Duration
}

// Engine applies normalized platform events to the entity store
type Engine struct {
	store    store.Store
	registry *registry.Registry
	reader   chain.Reader
	config   Config
}

// NewEngine creates a projection engine over the given store and chain reader
func NewEngine(st store.Store, reader chain.Reader, cfg Config) *Engine {
	if cfg.ReadRetryMaxElapsed == 0 {
		cfg.ReadRetryMaxElapsed = 30 * time.Second
	}

	return &Engine{
		store:    st,
		registry: registry.New(st),
		reader:   reader,
		config:   cfg,
	}
}

// ProcessEvent applies a single event and commits the event cursor. Events
// at or before the persisted cursor are skipped without side effects, which
// makes redelivery after a crash safe.
func (e *Engine) ProcessEvent(ctx context.Context, event *domain.Event) error {
	if !event.Valid() {
		return fmt.Errorf("invalid event envelope: name=%q tx=%q contract=%q", event.Name, event.TxHash, event.Contract)
	}

	cursor, err := e.store.GetEventCursor(ctx, e.config.Chain)
	if err != nil {
		return fmt.Errorf("failed to get event cursor: %w", err)
	}

	if !cursor.IsZero() && !event.Cursor().After(cursor) {
		logger.InfoCtx(ctx, "Skipping already committed event",
			zap.String("name", string(event.Name)),
			zap.String("txHash", event.TxHash),
			zap.Uint64("block", event.BlockNumber),
		)
		return nil
	}

	if err := e.apply(ctx, event); err != nil {
		return fmt.Errorf("failed to apply %s at %s: %w", event.Name, event.TxHash, err)
	}

	if err := e.store.SetEventCursor(ctx, e.config.Chain, event.Cursor()); err != nil {
		return fmt.Errorf("failed to commit event cursor: %w", err)
	}

	return nil
}

// apply dispatches the event to its projection handler by payload type
func (e *Engine) apply(ctx context.Context, event *domain.Event) error {
	payload, err := event.DecodeParams()
	if err != nil {
		return err
	}

	switch p := payload.(type) {
	case *domain.AuctionCreated:
		return e.handleAuctionCreated(ctx, event, p)
	case *domain.BidPlaced:
		return e.handleBidPlaced(ctx, event, p)
	case *domain.BidWithdrawn:
		return e.handleBidWithdrawn(ctx, event, p)
	case *domain.AuctionResulted:
		return e.handleAuctionResulted(ctx, event, p)
	case *domain.AuctionCancelled:
		return e.handleAuctionCancelled(ctx, event, p)
	case *domain.UpdateAuctionReservePrice:
		return e.handleUpdateAuctionReservePrice(ctx, event, p)
	case *domain.UpdateAuctionStartTime:
		return e.handleUpdateAuctionStartTime(ctx, event, p)
	case *domain.UpdateAuctionEndTime:
		return e.handleUpdateAuctionEndTime(ctx, event, p)
	case *domain.UpdateMinBidIncrement:
		return e.handleUpdateMinBidIncrement(ctx, event, p)
	case *domain.UpdateBidWithdrawalLockTime:
		return e.handleUpdateBidWithdrawalLockTime(ctx, event, p)
	case *domain.UpdatePlatformFee:
		return e.handleUpdatePlatformFee(ctx, event, p)
	case *domain.UpdatePlatformFeeRecipient:
		return e.handleUpdatePlatformFeeRecipient(ctx, event, p)

	case *domain.OfferCreated:
		return e.handleOfferCreated(ctx, event, p)
	case *domain.UpdateOfferPrimarySalePrice:
		return e.handleUpdateOfferPrimarySalePrice(ctx, event, p)
	case *domain.OfferPurchased:
		return e.handleOfferPurchased(ctx, event, p)
	case *domain.OfferCancelled:
		return e.handleOfferCancelled(ctx, event, p)
	case *domain.UpdateMarketplacePlatformFee:
		return e.handleUpdateMarketplacePlatformFee(ctx, p)
	case *domain.UpdateMarketplaceDiscount:
		return e.handleUpdateMarketplaceDiscount(ctx, p)
	case *domain.UpdateMonaPerEth:
		return e.handleUpdateMonaPerEth(ctx, p)

	case *domain.GarmentTransfer:
		return e.handleGarmentTransfer(ctx, event, p)
	case *domain.ReceivedChild:
		return e.handleReceivedChild(ctx, event, p)
	case *domain.GarmentTokenURIUpdated:
		return e.handleGarmentTokenURIUpdated(ctx, p)
	case *domain.MintGarmentCollection:
		return e.handleMintGarmentCollection(ctx, event, p)
	case *domain.BurnGarmentCollection:
		return e.handleBurnGarmentCollection(ctx, p)
	case *domain.LookTransfer:
		return e.handleLookTransfer(ctx, event, p)

	case *domain.DesignerSetAdded:
		return e.handleDesignerSetMembership(ctx, p.SetID, p.TokenIDs)
	case *domain.DesignerSetUpdated:
		return e.handleDesignerSetMembership(ctx, p.SetID, p.TokenIDs)
	case *domain.DesignerSetRemoved:
		return e.handleDesignerSetRemoved(ctx, p)
	case *domain.AuctionSetAdded:
		return e.handleAuctionSetMembership(ctx, p.SetID, p.TokenIDs)
	case *domain.AuctionSetUpdated:
		return e.handleAuctionSetMembership(ctx, p.SetID, p.TokenIDs)
	case *domain.AuctionSetRemoved:
		return e.handleAuctionSetRemoved(ctx, p)
	case *domain.DesignerInfoUpdated:
		return e.handleDesignerInfoUpdated(ctx, p)

	case *domain.Staked:
		return e.handleStaked(ctx, p)
	case *domain.Unstaked:
		return e.handleUnstaked(ctx, p)
	case *domain.EmergencyUnstaked:
		return e.handleUnstaked(ctx, (*domain.Unstaked)(p))
	case *domain.RewardPaid:
		return e.handleRewardPaid(ctx, p)
	}

	return fmt.Errorf("%w: %s", domain.ErrUnknownEvent, event.Name)
}

// readWithRetry runs an authoritative contract read with exponential
// backoff. A retry-exhausted read aborts the event without advancing the
// cursor.
func readWithRetry[T any](ctx context.Context, e *Engine, read func() (T, error)) (T, error) {
	var out T

	bo := backoff.NewExponentialBackOff()
	bo.MaxElapsedTime = e.config.ReadRetryMaxElapsed

	err := backoff.Retry(func() error {
		v, err := read()
		if err != nil {
			return err
		}
		out = v
		return nil
	}, backoff.WithContext(bo, ctx))

	return out, err
}

// adjustActiveBids applies a signed delta to the running sum of live top
// bids. The sum must never go negative; a delta that would drive it below
// zero is clamped with an error log instead of corrupting the aggregate.
func (e *Engine) adjustActiveBids(ctx context.Context, stats *schema.GlobalStats, delta *big.Int) error {
	if delta.Sign() >= 0 {
		value, err := types.AddWei(stats.TotalActiveBidsValue, delta)
		if err != nil {
			return err
		}
		stats.TotalActiveBidsValue = value
		return nil
	}

	value, clamped, err := types.SubWeiFloor(stats.TotalActiveBidsValue, new(big.Int).Neg(delta))
	if err != nil {
		return err
	}
	if clamped {
		logger.ErrorCtx(ctx, fmt.Errorf("active bids value would go negative"),
			zap.String("totalActiveBidsValue", stats.TotalActiveBidsValue),
			zap.String("delta", delta.String()),
		)
	}
	stats.TotalActiveBidsValue = value

	return nil
}
