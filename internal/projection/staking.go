package projection

import (
	"context"

	"github.com/atelier-labs/fashion-indexer/internal/domain"
	"github.com/atelier-labs/fashion-indexer/internal/types"
)

func (e *Engine) handleStaked(ctx context.Context, p *domain.Staked) error {
	garment, err := e.requireGarment(ctx, p.TokenID)
	if err != nil {
		return err
	}

	staker, err := e.registry.Staker(ctx, p.Owner)
	if err != nil {
		return err
	}
	staker.GarmentIDs = types.AppendUnique(staker.GarmentIDs, p.TokenID)
	if err := e.store.SaveStaker(ctx, staker); err != nil {
		return err
	}

	garment.StakedBy = types.StringPtr(p.Owner)
	return e.store.SaveGarment(ctx, garment)
}

// handleUnstaked covers both the regular and the emergency exit; they
// differ only in the on-chain reward settlement, which the projection does
// not track.
func (e *Engine) handleUnstaked(ctx context.Context, p *domain.Unstaked) error {
	garment, err := e.requireGarment(ctx, p.TokenID)
	if err != nil {
		return err
	}

	staker, err := e.registry.Staker(ctx, p.Owner)
	if err != nil {
		return err
	}
	staker.GarmentIDs = types.Remove(staker.GarmentIDs, p.TokenID)
	if err := e.store.SaveStaker(ctx, staker); err != nil {
		return err
	}

	garment.StakedBy = nil
	return e.store.SaveGarment(ctx, garment)
}

func (e *Engine) handleRewardPaid(ctx context.Context, p *domain.RewardPaid) error {
	staker, err := e.registry.Staker(ctx, p.Owner)
	if err != nil {
		return err
	}

	reward, err := types.ParseWei(p.Reward)
	if err != nil {
		return err
	}

	// Monotonic accumulator
	staker.TotalRewardsClaimed, err = types.AddWei(staker.TotalRewardsClaimed, reward)
	if err != nil {
		return err
	}

	return e.store.SaveStaker(ctx, staker)
}
