// Package chain performs the authoritative read-through calls the
// projection handlers rely on. Several handlers deliberately re-query
// contract state instead of trusting event parameters (e.g. the top bidder
// after BidPlaced, since multiple bids in one block may supersede each other
// before a handler runs). Every call is evaluated at the block of the event
// being processed.
package chain

import (
	"context"
	"fmt"
	"math/big"
	"strings"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"

	"github.com/atelier-labs/fashion-indexer/internal/adapter"
)

// AuctionState is the on-chain auction tuple at a given block
type AuctionState struct {
	ReservePrice *big.Int
	StartTime    uint64
	EndTime      uint64
	Resulted     bool
}

// HighestBidState is the on-chain highest bid tuple at a given block.
// A zero-address bidder means no bid is standing.
type HighestBidState struct {
	Bidder      string
	Bid         *big.Int
	LastBidTime uint64
}

// HasBidder reports whether a bid is standing
func (h *HighestBidState) HasBidder() bool {
	return h.Bidder != "" && h.Bidder != (common.Address{}).Hex()
}

// OfferState is the on-chain marketplace offer tuple at a given block
type OfferState struct {
	PrimarySalePrice *big.Int
	StartTime        uint64
}

// CollectionState is the on-chain garment collection tuple at a given block
type CollectionState struct {
	TokenIDs   []string
	TokenURI   string
	DesignerID string
}

// Reader defines the point-in-time read-only calls against the platform
// contracts
//
//go:generate mockgen -source=reader.go -destination=../mocks/chain_reader.go -package=mocks -mock_names=Reader=MockChainReader
type Reader interface {
	// Auction reads the auctions(tokenId) tuple
	Auction(ctx context.Context, contract, tokenID string, blockNumber uint64) (*AuctionState, error)
	// HighestBid reads the highestBids(tokenId) tuple
	HighestBid(ctx context.Context, contract, tokenID string, blockNumber uint64) (*HighestBidState, error)
	// Offer reads the getOffer(collectionId) tuple
	Offer(ctx context.Context, contract, collectionID string, blockNumber uint64) (*OfferState, error)
	// Collection reads the getCollection(collectionId) tuple
	Collection(ctx context.Context, contract, collectionID string, blockNumber uint64) (*CollectionState, error)
	// GarmentDesigner reads the designer id of a garment token
	GarmentDesigner(ctx context.Context, contract, tokenID string, blockNumber uint64) (string, error)
	// PrimarySalePrice reads the mint-time primary sale price of a garment token
	PrimarySalePrice(ctx context.Context, contract, tokenID string, blockNumber uint64) (*big.Int, error)
	// TokenURI reads tokenURI(tokenId)
	TokenURI(ctx context.Context, contract, tokenID string, blockNumber uint64) (string, error)
	// OwnerOf reads ownerOf(tokenId)
	OwnerOf(ctx context.Context, contract, tokenID string, blockNumber uint64) (string, error)
	// ChildURI reads uri(childId) on the child strand contract
	ChildURI(ctx context.Context, contract, childID string, blockNumber uint64) (string, error)
	// Close closes the underlying connection
	Close()
}

// Contract ABIs, reduced to the read-only surface the projection needs
var (
	auctionABI = mustABI(`[
		{"constant":true,"inputs":[{"name":"tokenId","type":"uint256"}],"name":"auctions","outputs":[{"name":"reservePrice","type":"uint256"},{"name":"startTime","type":"uint256"},{"name":"endTime","type":"uint256"},{"name":"resulted","type":"bool"}],"stateMutability":"view","type":"function"},
		{"constant":true,"inputs":[{"name":"tokenId","type":"uint256"}],"name":"highestBids","outputs":[{"name":"bidder","type":"address"},{"name":"bid","type":"uint256"},{"name":"lastBidTime","type":"uint256"}],"stateMutability":"view","type":"function"}
	]`)

	marketplaceABI = mustABI(`[
		{"constant":true,"inputs":[{"name":"collectionId","type":"uint256"}],"name":"getOffer","outputs":[{"name":"primarySalePrice","type":"uint256"},{"name":"startTime","type":"uint256"}],"stateMutability":"view","type":"function"}
	]`)

	collectionABI = mustABI(`[
		{"constant":true,"inputs":[{"name":"collectionId","type":"uint256"}],"name":"getCollection","outputs":[{"name":"tokenIds","type":"uint256[]"},{"name":"tokenUri","type":"string"},{"name":"designer","type":"string"}],"stateMutability":"view","type":"function"}
	]`)

	garmentABI = mustABI(`[
		{"constant":true,"inputs":[{"name":"tokenId","type":"uint256"}],"name":"garmentDesigners","outputs":[{"name":"","type":"string"}],"stateMutability":"view","type":"function"},
		{"constant":true,"inputs":[{"name":"tokenId","type":"uint256"}],"name":"primarySalePrice","outputs":[{"name":"","type":"uint256"}],"stateMutability":"view","type":"function"},
		{"constant":true,"inputs":[{"name":"tokenId","type":"uint256"}],"name":"tokenURI","outputs":[{"name":"","type":"string"}],"stateMutability":"view","type":"function"},
		{"constant":true,"inputs":[{"name":"tokenId","type":"uint256"}],"name":"ownerOf","outputs":[{"name":"","type":"address"}],"stateMutability":"view","type":"function"}
	]`)

	childABI = mustABI(`[
		{"constant":true,"inputs":[{"name":"id","type":"uint256"}],"name":"uri","outputs":[{"name":"","type":"string"}],"stateMutability":"view","type":"function"}
	]`)
)

func mustABI(definition string) abi.ABI {
	parsed, err := abi.JSON(strings.NewReader(definition))
	if err != nil {
		panic(fmt.Sprintf("invalid ABI definition: %v", err))
	}
	return parsed
}

type reader struct {
	client adapter.EthClient
}

// NewReader creates a chain reader over an Ethereum client
func NewReader(client adapter.EthClient) Reader {
	return &reader{client: client}
}

// call packs a method call, executes it at the given block and unpacks the
// raw outputs
func (r *reader) call(ctx context.Context, contract string, contractABI abi.ABI, method string, blockNumber uint64, args ...any) ([]any, error) {
	data, err := contractABI.Pack(method, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to pack %s call: %w", method, err)
	}

	contractAddr := common.HexToAddress(contract)
	result, err := r.client.CallContract(ctx, ethereum.CallMsg{
		To:   &contractAddr,
		Data: data,
	}, new(big.Int).SetUint64(blockNumber))
	if err != nil {
		return nil, fmt.Errorf("failed to call %s on %s: %w", method, contract, err)
	}

	values, err := contractABI.Unpack(method, result)
	if err != nil {
		return nil, fmt.Errorf("failed to unpack %s result: %w", method, err)
	}

	return values, nil
}

func parseTokenID(tokenID string) (*big.Int, error) {
	id, ok := new(big.Int).SetString(tokenID, 10)
	if !ok {
		return nil, fmt.Errorf("invalid token id: %s", tokenID)
	}
	return id, nil
}

// Auction reads the auctions(tokenId) tuple
func (r *reader) Auction(ctx context.Context, contract, tokenID string, blockNumber uint64) (*AuctionState, error) {
	id, err := parseTokenID(tokenID)
	if err != nil {
		return nil, err
	}

	values, err := r.call(ctx, contract, auctionABI, "auctions", blockNumber, id)
	if err != nil {
		return nil, err
	}

	return &AuctionState{
		ReservePrice: values[0].(*big.Int),
		StartTime:    values[1].(*big.Int).Uint64(),
		EndTime:      values[2].(*big.Int).Uint64(),
		Resulted:     values[3].(bool),
	}, nil
}

// HighestBid reads the highestBids(tokenId) tuple
func (r *reader) HighestBid(ctx context.Context, contract, tokenID string, blockNumber uint64) (*HighestBidState, error) {
	id, err := parseTokenID(tokenID)
	if err != nil {
		return nil, err
	}

	values, err := r.call(ctx, contract, auctionABI, "highestBids", blockNumber, id)
	if err != nil {
		return nil, err
	}

	return &HighestBidState{
		Bidder:      values[0].(common.Address).Hex(),
		Bid:         values[1].(*big.Int),
		LastBidTime: values[2].(*big.Int).Uint64(),
	}, nil
}

// Offer reads the getOffer(collectionId) tuple
func (r *reader) Offer(ctx context.Context, contract, collectionID string, blockNumber uint64) (*OfferState, error) {
	id, err := parseTokenID(collectionID)
	if err != nil {
		return nil, err
	}

	values, err := r.call(ctx, contract, marketplaceABI, "getOffer", blockNumber, id)
	if err != nil {
		return nil, err
	}

	return &OfferState{
		PrimarySalePrice: values[0].(*big.Int),
		StartTime:        values[1].(*big.Int).Uint64(),
	}, nil
}

// Collection reads the getCollection(collectionId) tuple
func (r *reader) Collection(ctx context.Context, contract, collectionID string, blockNumber uint64) (*CollectionState, error) {
	id, err := parseTokenID(collectionID)
	if err != nil {
		return nil, err
	}

	values, err := r.call(ctx, contract, collectionABI, "getCollection", blockNumber, id)
	if err != nil {
		return nil, err
	}

	rawIDs := values[0].([]*big.Int)
	tokenIDs := make([]string, 0, len(rawIDs))
	for _, raw := range rawIDs {
		tokenIDs = append(tokenIDs, raw.String())
	}

	return &CollectionState{
		TokenIDs:   tokenIDs,
		TokenURI:   values[1].(string),
		DesignerID: values[2].(string),
	}, nil
}

// GarmentDesigner reads the designer id of a garment token
func (r *reader) GarmentDesigner(ctx context.Context, contract, tokenID string, blockNumber uint64) (string, error) {
	id, err := parseTokenID(tokenID)
	if err != nil {
		return "", err
	}

	values, err := r.call(ctx, contract, garmentABI, "garmentDesigners", blockNumber, id)
	if err != nil {
		return "", err
	}

	return values[0].(string), nil
}

// PrimarySalePrice reads the mint-time primary sale price of a garment token
func (r *reader) PrimarySalePrice(ctx context.Context, contract, tokenID string, blockNumber uint64) (*big.Int, error) {
	id, err := parseTokenID(tokenID)
	if err != nil {
		return nil, err
	}

	values, err := r.call(ctx, contract, garmentABI, "primarySalePrice", blockNumber, id)
	if err != nil {
		return nil, err
	}

	return values[0].(*big.Int), nil
}

// TokenURI reads tokenURI(tokenId)
func (r *reader) TokenURI(ctx context.Context, contract, tokenID string, blockNumber uint64) (string, error) {
	id, err := parseTokenID(tokenID)
	if err != nil {
		return "", err
	}

	values, err := r.call(ctx, contract, garmentABI, "tokenURI", blockNumber, id)
	if err != nil {
		return "", err
	}

	return values[0].(string), nil
}

// OwnerOf reads ownerOf(tokenId)
func (r *reader) OwnerOf(ctx context.Context, contract, tokenID string, blockNumber uint64) (string, error) {
	id, err := parseTokenID(tokenID)
	if err != nil {
		return "", err
	}

	values, err := r.call(ctx, contract, garmentABI, "ownerOf", blockNumber, id)
	if err != nil {
		return "", err
	}

	return values[0].(common.Address).Hex(), nil
}

// ChildURI reads uri(childId) on the child strand contract
func (r *reader) ChildURI(ctx context.Context, contract, childID string, blockNumber uint64) (string, error) {
	id, err := parseTokenID(childID)
	if err != nil {
		return "", err
	}

	values, err := r.call(ctx, contract, childABI, "uri", blockNumber, id)
	if err != nil {
		return "", err
	}

	return values[0].(string), nil
}

// Close closes the underlying connection
func (r *reader) Close() {
	if r.client != nil {
		r.client.Close()
	}
}
