package projection

import (
	"context"
	"fmt"

	"github.com/atelier-labs/fashion-indexer/internal/domain"
	"github.com/atelier-labs/fashion-indexer/internal/store/schema"
	"github.com/atelier-labs/fashion-indexer/internal/types"
)

// resolveMembers verifies each token id against an existing Garment record.
// A membership event referencing an unknown token means out-of-order
// delivery or an upstream bug and aborts the event.
func (e *Engine) resolveMembers(ctx context.Context, tokenIDs []string) ([]string, error) {
	members := make([]string, 0, len(tokenIDs))
	for _, tokenID := range tokenIDs {
		garment, err := e.store.GetGarment(ctx, tokenID)
		if err != nil {
			return nil, err
		}
		if garment == nil {
			return nil, fmt.Errorf("%w: set member garment %s", domain.ErrEntityNotFound, tokenID)
		}
		members = types.AppendUnique(members, tokenID)
	}
	return members, nil
}

// handleDesignerSetMembership replaces a designer set's full membership
// list. Added and Updated share one implementation.
func (e *Engine) handleDesignerSetMembership(ctx context.Context, setID string, tokenIDs []string) error {
	members, err := e.resolveMembers(ctx, tokenIDs)
	if err != nil {
		return err
	}

	set, err := e.store.GetDesignerSet(ctx, setID)
	if err != nil {
		return err
	}
	if set == nil {
		set = &schema.DesignerSet{ID: setID}
	}

	set.GarmentIDs = members
	return e.store.SaveDesignerSet(ctx, set)
}

func (e *Engine) handleDesignerSetRemoved(ctx context.Context, p *domain.DesignerSetRemoved) error {
	set, err := e.store.GetDesignerSet(ctx, p.SetID)
	if err != nil {
		return err
	}
	if set == nil {
		return fmt.Errorf("%w: designer set %s", domain.ErrEntityNotFound, p.SetID)
	}

	// Soft-clear
	set.GarmentIDs = nil
	return e.store.SaveDesignerSet(ctx, set)
}

// handleAuctionSetMembership replaces an auction set's full membership list
func (e *Engine) handleAuctionSetMembership(ctx context.Context, setID string, tokenIDs []string) error {
	members, err := e.resolveMembers(ctx, tokenIDs)
	if err != nil {
		return err
	}

	set, err := e.store.GetAuctionSet(ctx, setID)
	if err != nil {
		return err
	}
	if set == nil {
		set = &schema.AuctionSet{ID: setID}
	}

	set.GarmentIDs = members
	return e.store.SaveAuctionSet(ctx, set)
}

func (e *Engine) handleAuctionSetRemoved(ctx context.Context, p *domain.AuctionSetRemoved) error {
	set, err := e.store.GetAuctionSet(ctx, p.SetID)
	if err != nil {
		return err
	}
	if set == nil {
		return fmt.Errorf("%w: auction set %s", domain.ErrEntityNotFound, p.SetID)
	}

	set.GarmentIDs = nil
	return e.store.SaveAuctionSet(ctx, set)
}

func (e *Engine) handleDesignerInfoUpdated(ctx context.Context, p *domain.DesignerInfoUpdated) error {
	designer, err := e.registry.Designer(ctx, p.DesignerID)
	if err != nil {
		return err
	}

	designer.InfoURI = p.InfoURI
	return e.store.SaveDesigner(ctx, designer)
}
