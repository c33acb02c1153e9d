package projection

import (
	"context"
	"fmt"

	"gorm.io/datatypes"

	"github.com/atelier-labs/fashion-indexer/internal/chain"
	"github.com/atelier-labs/fashion-indexer/internal/domain"
	"github.com/atelier-labs/fashion-indexer/internal/store/schema"
	"github.com/atelier-labs/fashion-indexer/internal/types"
)

// requireOffer loads an offer and fails loudly when it is missing
func (e *Engine) requireOffer(ctx context.Context, collectionID string) (*schema.Offer, error) {
	offer, err := e.store.GetOffer(ctx, collectionID)
	if err != nil {
		return nil, err
	}
	if offer == nil {
		return nil, fmt.Errorf("%w: offer %s", domain.ErrEntityNotFound, collectionID)
	}
	return offer, nil
}

func (e *Engine) handleOfferCreated(ctx context.Context, event *domain.Event, p *domain.OfferCreated) error {
	// Price and start time come from the contract, not from the event
	state, err := readWithRetry(ctx, e, func() (*chain.OfferState, error) {
		return e.reader.Offer(ctx, event.Contract, p.CollectionID, event.BlockNumber)
	})
	if err != nil {
		return fmt.Errorf("failed to read offer %s: %w", p.CollectionID, err)
	}

	offer, err := e.store.GetOffer(ctx, p.CollectionID)
	if err != nil {
		return err
	}
	if offer == nil {
		offer = &schema.Offer{ID: p.CollectionID}
	}

	offer.PrimarySalePrice = types.StringPtr(types.FormatWei(state.PrimarySalePrice))
	offer.StartTime = state.StartTime
	offer.CollectionID = types.StringPtr(p.CollectionID)

	return e.store.SaveOffer(ctx, offer)
}

func (e *Engine) handleUpdateOfferPrimarySalePrice(ctx context.Context, event *domain.Event, p *domain.UpdateOfferPrimarySalePrice) error {
	offer, err := e.requireOffer(ctx, p.CollectionID)
	if err != nil {
		return err
	}

	offer.PrimarySalePrice = types.StringPtr(p.PrimarySalePrice)
	return e.store.SaveOffer(ctx, offer)
}

func (e *Engine) handleOfferPurchased(ctx context.Context, event *domain.Event, p *domain.OfferPurchased) error {
	// The purchase row keyed by the garment token id is the idempotency
	// signal: one purchase event sells exactly one token
	existing, err := e.store.GetPurchaseHistory(ctx, p.GarmentTokenID)
	if err != nil {
		return err
	}
	if existing != nil {
		return nil
	}

	offer, err := e.requireOffer(ctx, p.CollectionID)
	if err != nil {
		return err
	}

	stats, err := e.registry.GlobalStats(ctx)
	if err != nil {
		return err
	}

	discount := "0"
	if p.IsPaidWithMona {
		discount = stats.MonaDiscount

		mona, err := types.ParseWei(p.MonaTransferredAmount)
		if err != nil {
			return err
		}
		stats.TotalMarketplaceSalesMona, err = types.AddWei(stats.TotalMarketplaceSalesMona, mona)
		if err != nil {
			return err
		}
	} else {
		price, err := types.ParseWei(p.PrimarySalePrice)
		if err != nil {
			return err
		}
		stats.TotalMarketplaceSalesETH, err = types.AddWei(stats.TotalMarketplaceSalesETH, price)
		if err != nil {
			return err
		}
	}
	if err := e.store.SaveGlobalStats(ctx, stats); err != nil {
		return err
	}

	offer.AmountSold++
	if err := e.store.SaveOffer(ctx, offer); err != nil {
		return err
	}

	return e.store.CreatePurchaseHistory(ctx, &schema.PurchaseHistory{
		ID:                    p.GarmentTokenID,
		Buyer:                 p.Buyer,
		Value:                 p.PrimarySalePrice,
		IsPaidWithMona:        p.IsPaidWithMona,
		MonaTransferredAmount: p.MonaTransferredAmount,
		Discount:              discount,
		PlatformFee:           p.PlatformFee,
		CollectionID:          p.CollectionID,
		TxHash:                event.TxHash,
		Timestamp:             event.Timestamp,
		Raw:                   datatypes.JSON(event.Params),
	})
}

func (e *Engine) handleOfferCancelled(ctx context.Context, event *domain.Event, p *domain.OfferCancelled) error {
	offer, err := e.requireOffer(ctx, p.CollectionID)
	if err != nil {
		return err
	}

	// Soft-clear: the row persists for audit, amountSold is retained
	offer.PrimarySalePrice = nil
	offer.CollectionID = nil

	return e.store.SaveOffer(ctx, offer)
}

func (e *Engine) handleUpdateMarketplacePlatformFee(ctx context.Context, p *domain.UpdateMarketplacePlatformFee) error {
	stats, err := e.registry.GlobalStats(ctx)
	if err != nil {
		return err
	}

	stats.PlatformFee = p.PlatformFee
	return e.store.SaveGlobalStats(ctx, stats)
}

func (e *Engine) handleUpdateMarketplaceDiscount(ctx context.Context, p *domain.UpdateMarketplaceDiscount) error {
	stats, err := e.registry.GlobalStats(ctx)
	if err != nil {
		return err
	}

	stats.MonaDiscount = p.Discount
	return e.store.SaveGlobalStats(ctx, stats)
}

func (e *Engine) handleUpdateMonaPerEth(ctx context.Context, p *domain.UpdateMonaPerEth) error {
	stats, err := e.registry.GlobalStats(ctx)
	if err != nil {
		return err
	}

	stats.MonaPerEth = p.MonaPerEth
	return e.store.SaveGlobalStats(ctx, stats)
}
