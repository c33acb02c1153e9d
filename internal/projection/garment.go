package projection

import (
	"context"
	"fmt"
	"math/big"

	"github.com/atelier-labs/fashion-indexer/internal/chain"
	"github.com/atelier-labs/fashion-indexer/internal/domain"
	"github.com/atelier-labs/fashion-indexer/internal/store/schema"
	"github.com/atelier-labs/fashion-indexer/internal/types"
)

// requireGarment loads a garment and fails loudly when it is missing
func (e *Engine) requireGarment(ctx context.Context, tokenID string) (*schema.Garment, error) {
	garment, err := e.store.GetGarment(ctx, tokenID)
	if err != nil {
		return nil, err
	}
	if garment == nil {
		return nil, fmt.Errorf("%w: garment %s", domain.ErrEntityNotFound, tokenID)
	}
	return garment, nil
}

func (e *Engine) handleGarmentTransfer(ctx context.Context, event *domain.Event, p *domain.GarmentTransfer) error {
	switch {
	case p.IsMint():
		return e.mintGarment(ctx, event, p)
	case p.IsBurn():
		return e.burnGarment(ctx, p)
	default:
		return e.transferGarment(ctx, p)
	}
}

func (e *Engine) mintGarment(ctx context.Context, event *domain.Event, p *domain.GarmentTransfer) error {
	// Designer, price and URI are not carried by the Transfer log; pull
	// them from the contract at this block
	designerID, err := readWithRetry(ctx, e, func() (string, error) {
		return e.reader.GarmentDesigner(ctx, event.Contract, p.TokenID, event.BlockNumber)
	})
	if err != nil {
		return fmt.Errorf("failed to read designer of garment %s: %w", p.TokenID, err)
	}

	price, err := readWithRetry(ctx, e, func() (*big.Int, error) {
		return e.reader.PrimarySalePrice(ctx, event.Contract, p.TokenID, event.BlockNumber)
	})
	if err != nil {
		return fmt.Errorf("failed to read primary sale price of garment %s: %w", p.TokenID, err)
	}

	tokenURI, err := readWithRetry(ctx, e, func() (string, error) {
		return e.reader.TokenURI(ctx, event.Contract, p.TokenID, event.BlockNumber)
	})
	if err != nil {
		return fmt.Errorf("failed to read token URI of garment %s: %w", p.TokenID, err)
	}

	garment := &schema.Garment{
		ID:               p.TokenID,
		Owner:            types.StringPtr(p.To),
		PrimarySalePrice: types.StringPtr(types.FormatWei(price)),
		TokenURI:         types.StringPtr(tokenURI),
		ChildIDs:         []string{},
	}
	if designerID != "" {
		garment.DesignerID = types.StringPtr(designerID)
	}
	if err := e.store.SaveGarment(ctx, garment); err != nil {
		return err
	}

	if designerID != "" {
		designer, err := e.registry.Designer(ctx, designerID)
		if err != nil {
			return err
		}
		designer.GarmentIDs = types.AppendUnique(designer.GarmentIDs, p.TokenID)
		if err := e.store.SaveDesigner(ctx, designer); err != nil {
			return err
		}
	}

	return e.recordCollectorHolding(ctx, p.To, p.TokenID)
}

func (e *Engine) burnGarment(ctx context.Context, p *domain.GarmentTransfer) error {
	garment, err := e.requireGarment(ctx, p.TokenID)
	if err != nil {
		return err
	}

	// Soft-clear: the row is retained with nulled fields, only Look tokens
	// are physically removed on burn
	garment.Owner = nil
	garment.PrimarySalePrice = nil
	garment.TokenURI = nil
	garment.StakedBy = nil

	return e.store.SaveGarment(ctx, garment)
}

func (e *Engine) transferGarment(ctx context.Context, p *domain.GarmentTransfer) error {
	garment, err := e.requireGarment(ctx, p.TokenID)
	if err != nil {
		return err
	}

	garment.Owner = types.StringPtr(p.To)
	if err := e.store.SaveGarment(ctx, garment); err != nil {
		return err
	}

	return e.recordCollectorHolding(ctx, p.To, p.TokenID)
}

// recordCollectorHolding appends the garment to the receiving collector's
// holdings. Collectors are never destroyed, only appended to.
func (e *Engine) recordCollectorHolding(ctx context.Context, address, tokenID string) error {
	collector, err := e.registry.Collector(ctx, address)
	if err != nil {
		return err
	}

	collector.GarmentIDs = types.AppendUnique(collector.GarmentIDs, tokenID)
	return e.store.SaveCollector(ctx, collector)
}

func (e *Engine) handleReceivedChild(ctx context.Context, event *domain.Event, p *domain.ReceivedChild) error {
	parent, err := e.requireGarment(ctx, p.ParentTokenID)
	if err != nil {
		return err
	}

	amount, err := types.ParseWei(p.Amount)
	if err != nil {
		return err
	}

	childID := p.ChildID()
	child, err := e.store.GetGarmentChild(ctx, childID)
	if err != nil {
		return err
	}

	if child == nil {
		tokenURI, err := readWithRetry(ctx, e, func() (string, error) {
			return e.reader.ChildURI(ctx, p.ChildContract, p.ChildTokenID, event.BlockNumber)
		})
		if err != nil {
			return fmt.Errorf("failed to read URI of child %s: %w", childID, err)
		}

		child = &schema.GarmentChild{
			ID:           childID,
			ParentID:     p.ParentTokenID,
			ChildTokenID: p.ChildTokenID,
			Contract:     p.ChildContract,
			TokenURI:     tokenURI,
			Amount:       types.FormatWei(amount),
		}
	} else {
		// Repeat receipt of the same pair accumulates, never overwrites
		child.Amount, err = types.AddWei(child.Amount, amount)
		if err != nil {
			return err
		}
	}
	if err := e.store.SaveGarmentChild(ctx, child); err != nil {
		return err
	}

	parent.ChildIDs = types.AppendUnique(parent.ChildIDs, childID)
	return e.store.SaveGarment(ctx, parent)
}

func (e *Engine) handleGarmentTokenURIUpdated(ctx context.Context, p *domain.GarmentTokenURIUpdated) error {
	garment, err := e.requireGarment(ctx, p.TokenID)
	if err != nil {
		return err
	}

	garment.TokenURI = types.StringPtr(p.TokenURI)
	return e.store.SaveGarment(ctx, garment)
}

func (e *Engine) handleMintGarmentCollection(ctx context.Context, event *domain.Event, p *domain.MintGarmentCollection) error {
	// The full collection tuple is re-read from the contract rather than
	// reconstructed from prior events
	state, err := readWithRetry(ctx, e, func() (*chain.CollectionState, error) {
		return e.reader.Collection(ctx, event.Contract, p.CollectionID, event.BlockNumber)
	})
	if err != nil {
		return fmt.Errorf("failed to read collection %s: %w", p.CollectionID, err)
	}

	collection, err := e.store.GetCollection(ctx, p.CollectionID)
	if err != nil {
		return err
	}
	if collection == nil {
		collection = &schema.Collection{ID: p.CollectionID}
	}

	collection.TokenIDs = state.TokenIDs
	collection.TokenURI = types.StringPtr(state.TokenURI)
	if state.DesignerID != "" {
		collection.DesignerID = types.StringPtr(state.DesignerID)

		if _, err := e.registry.Designer(ctx, state.DesignerID); err != nil {
			return err
		}
	}

	return e.store.SaveCollection(ctx, collection)
}

func (e *Engine) handleBurnGarmentCollection(ctx context.Context, p *domain.BurnGarmentCollection) error {
	collection, err := e.store.GetCollection(ctx, p.CollectionID)
	if err != nil {
		return err
	}
	if collection == nil {
		return fmt.Errorf("%w: collection %s", domain.ErrEntityNotFound, p.CollectionID)
	}

	// Nulled, not deleted
	collection.TokenIDs = nil
	collection.TokenURI = nil
	collection.DesignerID = nil

	return e.store.SaveCollection(ctx, collection)
}

func (e *Engine) handleLookTransfer(ctx context.Context, event *domain.Event, p *domain.LookTransfer) error {
	if p.IsBurn() {
		// Looks are display-only projections: burn removes the row outright
		return e.store.DeleteLook(ctx, p.TokenID)
	}

	if p.IsMint() {
		tokenURI, err := readWithRetry(ctx, e, func() (string, error) {
			return e.reader.TokenURI(ctx, event.Contract, p.TokenID, event.BlockNumber)
		})
		if err != nil {
			return fmt.Errorf("failed to read token URI of look %s: %w", p.TokenID, err)
		}

		return e.store.SaveLook(ctx, &schema.Look{
			ID:       p.TokenID,
			Owner:    p.To,
			TokenURI: tokenURI,
		})
	}

	look, err := e.store.GetLook(ctx, p.TokenID)
	if err != nil {
		return err
	}
	if look == nil {
		return fmt.Errorf("%w: look %s", domain.ErrEntityNotFound, p.TokenID)
	}

	look.Owner = p.To
	return e.store.SaveLook(ctx, look)
}
