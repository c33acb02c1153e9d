package ethereum

import (
	"context"
	"fmt"
	"math/big"
	"strings"
	"time"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"

	"github.com/atelier-labs/fashion-indexer/internal/adapter"
	"github.com/atelier-labs/fashion-indexer/internal/domain"
)

// Contracts maps each deployed platform contract address to its kind. The
// decoder needs the kind to disambiguate shared signatures (Transfer is
// emitted by both the garment and the look contract).
type Contracts map[string]domain.ContractKind

// Addresses returns the contract addresses for log filtering
func (c Contracts) Addresses() []common.Address {
	addresses := make([]common.Address, 0, len(c))
	for addr := range c {
		addresses = append(addresses, common.HexToAddress(addr))
	}
	return addresses
}

// Kind resolves the contract kind for an address
func (c Contracts) Kind(address common.Address) (domain.ContractKind, bool) {
	kind, ok := c[strings.ToLower(address.Hex())]
	if !ok {
		// Config files may carry checksummed addresses
		kind, ok = c[address.Hex()]
	}
	return kind, ok
}

// eventsABI declares every platform event the emitter decodes. Log topic 0
// is resolved against it with EventByID.
var eventsABI = func() abi.ABI {
	parsed, err := abi.JSON(strings.NewReader(`[
		{"type":"event","name":"AuctionCreated","inputs":[{"name":"garmentTokenId","type":"uint256","indexed":true}]},
		{"type":"event","name":"BidPlaced","inputs":[{"name":"garmentTokenId","type":"uint256","indexed":true},{"name":"bidder","type":"address","indexed":true},{"name":"bid","type":"uint256","indexed":false}]},
		{"type":"event","name":"BidWithdrawn","inputs":[{"name":"garmentTokenId","type":"uint256","indexed":true},{"name":"bidder","type":"address","indexed":true},{"name":"bid","type":"uint256","indexed":false}]},
		{"type":"event","name":"AuctionResulted","inputs":[{"name":"garmentTokenId","type":"uint256","indexed":true},{"name":"winner","type":"address","indexed":true},{"name":"winningBid","type":"uint256","indexed":false}]},
		{"type":"event","name":"AuctionCancelled","inputs":[{"name":"garmentTokenId","type":"uint256","indexed":true}]},
		{"type":"event","name":"UpdateAuctionReservePrice","inputs":[{"name":"garmentTokenId","type":"uint256","indexed":true},{"name":"reservePrice","type":"uint256","indexed":false}]},
		{"type":"event","name":"UpdateAuctionStartTime","inputs":[{"name":"garmentTokenId","type":"uint256","indexed":true},{"name":"startTime","type":"uint256","indexed":false}]},
		{"type":"event","name":"UpdateAuctionEndTime","inputs":[{"name":"garmentTokenId","type":"uint256","indexed":true},{"name":"endTime","type":"uint256","indexed":false}]},
		{"type":"event","name":"UpdateMinBidIncrement","inputs":[{"name":"minBidIncrement","type":"uint256","indexed":false}]},
		{"type":"event","name":"UpdateBidWithdrawalLockTime","inputs":[{"name":"bidWithdrawalLockTime","type":"uint256","indexed":false}]},
		{"type":"event","name":"UpdatePlatformFee","inputs":[{"name":"platformFee","type":"uint256","indexed":false}]},
		{"type":"event","name":"UpdatePlatformFeeRecipient","inputs":[{"name":"platformFeeRecipient","type":"address","indexed":false}]},
		{"type":"event","name":"OfferCreated","inputs":[{"name":"garmentCollectionId","type":"uint256","indexed":true}]},
		{"type":"event","name":"UpdateOfferPrimarySalePrice","inputs":[{"name":"garmentCollectionId","type":"uint256","indexed":true},{"name":"primarySalePrice","type":"uint256","indexed":false}]},
		{"type":"event","name":"OfferPurchased","inputs":[{"name":"garmentTokenId","type":"uint256","indexed":true},{"name":"garmentCollectionId","type":"uint256","indexed":true},{"name":"buyer","type":"address","indexed":true},{"name":"primarySalePrice","type":"uint256","indexed":false},{"name":"paidInMona","type":"bool","indexed":false},{"name":"monaTransferredAmount","type":"uint256","indexed":false},{"name":"platformFee","type":"uint256","indexed":false}]},
		{"type":"event","name":"OfferCancelled","inputs":[{"name":"garmentCollectionId","type":"uint256","indexed":true}]},
		{"type":"event","name":"UpdateMarketplacePlatformFee","inputs":[{"name":"platformFee","type":"uint256","indexed":false}]},
		{"type":"event","name":"UpdateMarketplaceDiscountToPayInErc20","inputs":[{"name":"discount","type":"uint256","indexed":false}]},
		{"type":"event","name":"UpdateMonaPerEth","inputs":[{"name":"monaPerEth","type":"uint256","indexed":false}]},
		{"type":"event","name":"Transfer","inputs":[{"name":"from","type":"address","indexed":true},{"name":"to","type":"address","indexed":true},{"name":"tokenId","type":"uint256","indexed":true}]},
		{"type":"event","name":"ReceivedChild","inputs":[{"name":"from","type":"address","indexed":true},{"name":"tokenId","type":"uint256","indexed":true},{"name":"childContract","type":"address","indexed":true},{"name":"childTokenId","type":"uint256","indexed":false},{"name":"amount","type":"uint256","indexed":false}]},
		{"type":"event","name":"GarmentTokenURIUpdated","inputs":[{"name":"tokenId","type":"uint256","indexed":true},{"name":"tokenUri","type":"string","indexed":false}]},
		{"type":"event","name":"MintGarmentCollection","inputs":[{"name":"collectionId","type":"uint256","indexed":true}]},
		{"type":"event","name":"BurnGarmentCollection","inputs":[{"name":"collectionId","type":"uint256","indexed":true}]},
		{"type":"event","name":"DesignerSetAdded","inputs":[{"name":"setId","type":"uint256","indexed":true},{"name":"tokenIds","type":"uint256[]","indexed":false}]},
		{"type":"event","name":"DesignerSetUpdated","inputs":[{"name":"setId","type":"uint256","indexed":true},{"name":"tokenIds","type":"uint256[]","indexed":false}]},
		{"type":"event","name":"DesignerSetRemoved","inputs":[{"name":"setId","type":"uint256","indexed":true}]},
		{"type":"event","name":"AuctionSetAdded","inputs":[{"name":"setId","type":"uint256","indexed":true},{"name":"tokenIds","type":"uint256[]","indexed":false}]},
		{"type":"event","name":"AuctionSetUpdated","inputs":[{"name":"setId","type":"uint256","indexed":true},{"name":"tokenIds","type":"uint256[]","indexed":false}]},
		{"type":"event","name":"AuctionSetRemoved","inputs":[{"name":"setId","type":"uint256","indexed":true}]},
		{"type":"event","name":"DesignerInfoUpdated","inputs":[{"name":"designerId","type":"uint256","indexed":true},{"name":"uri","type":"string","indexed":false}]},
		{"type":"event","name":"Staked","inputs":[{"name":"owner","type":"address","indexed":true},{"name":"tokenId","type":"uint256","indexed":false}]},
		{"type":"event","name":"Unstaked","inputs":[{"name":"owner","type":"address","indexed":true},{"name":"tokenId","type":"uint256","indexed":false}]},
		{"type":"event","name":"EmergencyUnstake","inputs":[{"name":"owner","type":"address","indexed":true},{"name":"tokenId","type":"uint256","indexed":false}]},
		{"type":"event","name":"RewardPaid","inputs":[{"name":"user","type":"address","indexed":true},{"name":"reward","type":"uint256","indexed":false}]}
	]`))
	if err != nil {
		panic(fmt.Sprintf("invalid events ABI: %v", err))
	}
	return parsed
}()

// EthereumClient parses raw logs into normalized platform events
type EthereumClient interface {
	// ParseEventLog parses an Ethereum log into a normalized platform event.
	// Returns (nil, nil) for logs of unknown contracts or event signatures.
	ParseEventLog(ctx context.Context, vLog types.Log) (*domain.Event, error)

	// SubscribeFilterLogs subscribes to filter logs
	SubscribeFilterLogs(ctx context.Context, query ethereum.FilterQuery, ch chan<- types.Log) (ethereum.Subscription, error)

	// HeaderByNumber returns a header by number
	HeaderByNumber(ctx context.Context, number *big.Int) (*types.Header, error)

	// Close closes the connection
	Close()
}

type ethereumClient struct {
	client    adapter.EthClient
	contracts Contracts

	// Block timestamps are immutable once confirmed, cache them forever
	blockTimestamps map[uint64]time.Time
}

// NewClient creates a decoder over an Ethereum client for the configured
// platform contracts
func NewClient(client adapter.EthClient, contracts Contracts) EthereumClient {
	return &ethereumClient{
		client:          client,
		contracts:       contracts,
		blockTimestamps: make(map[uint64]time.Time),
	}
}

// SubscribeFilterLogs subscribes to filter logs
func (c *ethereumClient) SubscribeFilterLogs(ctx context.Context, query ethereum.FilterQuery, ch chan<- types.Log) (ethereum.Subscription, error) {
	return c.client.SubscribeFilterLogs(ctx, query, ch)
}

// HeaderByNumber returns a header by number
func (c *ethereumClient) HeaderByNumber(ctx context.Context, number *big.Int) (*types.Header, error) {
	return c.client.HeaderByNumber(ctx, number)
}

// blockTimestamp returns the timestamp of a block, fetching the header once
func (c *ethereumClient) blockTimestamp(ctx context.Context, blockNumber uint64) (time.Time, error) {
	if ts, ok := c.blockTimestamps[blockNumber]; ok {
		return ts, nil
	}

	header, err := c.client.HeaderByNumber(ctx, new(big.Int).SetUint64(blockNumber))
	if err != nil {
		return time.Time{}, fmt.Errorf("failed to get header for block %d: %w", blockNumber, err)
	}

	ts := time.Unix(int64(header.Time), 0).UTC()
	c.blockTimestamps[blockNumber] = ts
	return ts, nil
}

// ParseEventLog parses an Ethereum log into a normalized platform event
func (c *ethereumClient) ParseEventLog(ctx context.Context, vLog types.Log) (*domain.Event, error) {
	kind, ok := c.contracts.Kind(vLog.Address)
	if !ok {
		return nil, nil
	}

	if len(vLog.Topics) == 0 {
		return nil, nil
	}

	abiEvent, err := eventsABI.EventByID(vLog.Topics[0])
	if err != nil {
		// Unknown signature on a watched contract, not an error
		return nil, nil
	}

	params, err := unpackLog(abiEvent, vLog)
	if err != nil {
		return nil, fmt.Errorf("failed to unpack %s log: %w", abiEvent.Name, err)
	}

	payload, name, err := buildPayload(kind, abiEvent.Name, params)
	if err != nil {
		return nil, err
	}
	if payload == nil {
		return nil, nil
	}

	timestamp, err := c.blockTimestamp(ctx, vLog.BlockNumber)
	if err != nil {
		return nil, err
	}

	event := &domain.Event{
		Contract:    vLog.Address.Hex(),
		Kind:        kind,
		Name:        name,
		BlockNumber: vLog.BlockNumber,
		TxHash:      vLog.TxHash.Hex(),
		TxIndex:     vLog.TxIndex,
		LogIndex:    vLog.Index,
		Timestamp:   timestamp,
	}
	if err := event.SetParams(payload); err != nil {
		return nil, err
	}

	return event, nil
}

// unpackLog decodes indexed topics and non-indexed data into one map
func unpackLog(abiEvent *abi.Event, vLog types.Log) (map[string]any, error) {
	params := make(map[string]any)

	if len(vLog.Data) > 0 {
		if err := eventsABI.UnpackIntoMap(params, abiEvent.Name, vLog.Data); err != nil {
			return nil, err
		}
	}

	var indexed abi.Arguments
	for _, arg := range abiEvent.Inputs {
		if arg.Indexed {
			indexed = append(indexed, arg)
		}
	}
	if err := abi.ParseTopicsIntoMap(params, indexed, vLog.Topics[1:]); err != nil {
		return nil, err
	}

	return params, nil
}

func bigParam(params map[string]any, key string) string {
	if v, ok := params[key].(*big.Int); ok && v != nil {
		return v.String()
	}
	return "0"
}

func addrParam(params map[string]any, key string) string {
	if v, ok := params[key].(common.Address); ok {
		return v.Hex()
	}
	return ""
}

func stringParam(params map[string]any, key string) string {
	if v, ok := params[key].(string); ok {
		return v
	}
	return ""
}

func boolParam(params map[string]any, key string) bool {
	v, _ := params[key].(bool)
	return v
}

func bigSliceParam(params map[string]any, key string) []string {
	raw, ok := params[key].([]*big.Int)
	if !ok {
		return []string{}
	}
	out := make([]string, 0, len(raw))
	for _, v := range raw {
		out = append(out, v.String())
	}
	return out
}

// buildPayload maps decoded params into the typed domain payload. The
// contract kind disambiguates Transfer (garment vs. look) and drops events
// a contract kind is not expected to emit.
func buildPayload(kind domain.ContractKind, abiName string, params map[string]any) (any, domain.EventName, error) {
	switch abiName {
	case "AuctionCreated":
		return &domain.AuctionCreated{TokenID: bigParam(params, "garmentTokenId")}, domain.EventAuctionCreated, nil
	case "BidPlaced":
		return &domain.BidPlaced{
			TokenID: bigParam(params, "garmentTokenId"),
			Bidder:  addrParam(params, "bidder"),
			Bid:     bigParam(params, "bid"),
		}, domain.EventBidPlaced, nil
	case "BidWithdrawn":
		return &domain.BidWithdrawn{
			TokenID: bigParam(params, "garmentTokenId"),
			Bidder:  addrParam(params, "bidder"),
			Bid:     bigParam(params, "bid"),
		}, domain.EventBidWithdrawn, nil
	case "AuctionResulted":
		return &domain.AuctionResulted{
			TokenID:    bigParam(params, "garmentTokenId"),
			Winner:     addrParam(params, "winner"),
			WinningBid: bigParam(params, "winningBid"),
		}, domain.EventAuctionResulted, nil
	case "AuctionCancelled":
		return &domain.AuctionCancelled{TokenID: bigParam(params, "garmentTokenId")}, domain.EventAuctionCancelled, nil
	case "UpdateAuctionReservePrice":
		return &domain.UpdateAuctionReservePrice{
			TokenID:      bigParam(params, "garmentTokenId"),
			ReservePrice: bigParam(params, "reservePrice"),
		}, domain.EventUpdateAuctionReservePrice, nil
	case "UpdateAuctionStartTime":
		return &domain.UpdateAuctionStartTime{
			TokenID:   bigParam(params, "garmentTokenId"),
			StartTime: bigUint64(params, "startTime"),
		}, domain.EventUpdateAuctionStartTime, nil
	case "UpdateAuctionEndTime":
		return &domain.UpdateAuctionEndTime{
			TokenID: bigParam(params, "garmentTokenId"),
			EndTime: bigUint64(params, "endTime"),
		}, domain.EventUpdateAuctionEndTime, nil
	case "UpdateMinBidIncrement":
		return &domain.UpdateMinBidIncrement{MinBidIncrement: bigParam(params, "minBidIncrement")}, domain.EventUpdateMinBidIncrement, nil
	case "UpdateBidWithdrawalLockTime":
		return &domain.UpdateBidWithdrawalLockTime{BidWithdrawalLockTime: bigUint64(params, "bidWithdrawalLockTime")}, domain.EventUpdateBidWithdrawalLockTime, nil
	case "UpdatePlatformFee":
		if kind == domain.ContractMarketplace {
			return &domain.UpdateMarketplacePlatformFee{PlatformFee: bigParam(params, "platformFee")}, domain.EventUpdateMarketplacePlatformFee, nil
		}
		return &domain.UpdatePlatformFee{PlatformFee: bigParam(params, "platformFee")}, domain.EventUpdatePlatformFee, nil
	case "UpdatePlatformFeeRecipient":
		return &domain.UpdatePlatformFeeRecipient{PlatformFeeRecipient: addrParam(params, "platformFeeRecipient")}, domain.EventUpdatePlatformFeeRecipient, nil
	case "OfferCreated":
		return &domain.OfferCreated{CollectionID: bigParam(params, "garmentCollectionId")}, domain.EventOfferCreated, nil
	case "UpdateOfferPrimarySalePrice":
		return &domain.UpdateOfferPrimarySalePrice{
			CollectionID:     bigParam(params, "garmentCollectionId"),
			PrimarySalePrice: bigParam(params, "primarySalePrice"),
		}, domain.EventUpdateOfferPrimarySalePrice, nil
	case "OfferPurchased":
		return &domain.OfferPurchased{
			GarmentTokenID:        bigParam(params, "garmentTokenId"),
			CollectionID:          bigParam(params, "garmentCollectionId"),
			Buyer:                 addrParam(params, "buyer"),
			PrimarySalePrice:      bigParam(params, "primarySalePrice"),
			IsPaidWithMona:        boolParam(params, "paidInMona"),
			MonaTransferredAmount: bigParam(params, "monaTransferredAmount"),
			PlatformFee:           bigParam(params, "platformFee"),
		}, domain.EventOfferPurchased, nil
	case "OfferCancelled":
		return &domain.OfferCancelled{CollectionID: bigParam(params, "garmentCollectionId")}, domain.EventOfferCancelled, nil
	case "UpdateMarketplacePlatformFee":
		return &domain.UpdateMarketplacePlatformFee{PlatformFee: bigParam(params, "platformFee")}, domain.EventUpdateMarketplacePlatformFee, nil
	case "UpdateMarketplaceDiscountToPayInErc20":
		return &domain.UpdateMarketplaceDiscount{Discount: bigParam(params, "discount")}, domain.EventUpdateMarketplaceDiscount, nil
	case "UpdateMonaPerEth":
		return &domain.UpdateMonaPerEth{MonaPerEth: bigParam(params, "monaPerEth")}, domain.EventUpdateMonaPerEth, nil
	case "Transfer":
		transfer := domain.GarmentTransfer{
			From:    addrParam(params, "from"),
			To:      addrParam(params, "to"),
			TokenID: bigParam(params, "tokenId"),
		}
		if kind == domain.ContractLook {
			look := domain.LookTransfer(transfer)
			return &look, domain.EventLookTransfer, nil
		}
		if kind != domain.ContractGarment {
			return nil, "", nil
		}
		return &transfer, domain.EventGarmentTransfer, nil
	case "ReceivedChild":
		return &domain.ReceivedChild{
			From:          addrParam(params, "from"),
			ParentTokenID: bigParam(params, "tokenId"),
			ChildContract: addrParam(params, "childContract"),
			ChildTokenID:  bigParam(params, "childTokenId"),
			Amount:        bigParam(params, "amount"),
		}, domain.EventReceivedChild, nil
	case "GarmentTokenURIUpdated":
		return &domain.GarmentTokenURIUpdated{
			TokenID:  bigParam(params, "tokenId"),
			TokenURI: stringParam(params, "tokenUri"),
		}, domain.EventGarmentTokenURIUpdated, nil
	case "MintGarmentCollection":
		return &domain.MintGarmentCollection{CollectionID: bigParam(params, "collectionId")}, domain.EventMintGarmentCollection, nil
	case "BurnGarmentCollection":
		return &domain.BurnGarmentCollection{CollectionID: bigParam(params, "collectionId")}, domain.EventBurnGarmentCollection, nil
	case "DesignerSetAdded":
		return &domain.DesignerSetAdded{SetID: bigParam(params, "setId"), TokenIDs: bigSliceParam(params, "tokenIds")}, domain.EventDesignerSetAdded, nil
	case "DesignerSetUpdated":
		return &domain.DesignerSetUpdated{SetID: bigParam(params, "setId"), TokenIDs: bigSliceParam(params, "tokenIds")}, domain.EventDesignerSetUpdated, nil
	case "DesignerSetRemoved":
		return &domain.DesignerSetRemoved{SetID: bigParam(params, "setId")}, domain.EventDesignerSetRemoved, nil
	case "AuctionSetAdded":
		return &domain.AuctionSetAdded{SetID: bigParam(params, "setId"), TokenIDs: bigSliceParam(params, "tokenIds")}, domain.EventAuctionSetAdded, nil
	case "AuctionSetUpdated":
		return &domain.AuctionSetUpdated{SetID: bigParam(params, "setId"), TokenIDs: bigSliceParam(params, "tokenIds")}, domain.EventAuctionSetUpdated, nil
	case "AuctionSetRemoved":
		return &domain.AuctionSetRemoved{SetID: bigParam(params, "setId")}, domain.EventAuctionSetRemoved, nil
	case "DesignerInfoUpdated":
		return &domain.DesignerInfoUpdated{
			DesignerID: bigParam(params, "designerId"),
			InfoURI:    stringParam(params, "uri"),
		}, domain.EventDesignerInfoUpdated, nil
	case "Staked":
		return &domain.Staked{Owner: addrParam(params, "owner"), TokenID: bigParam(params, "tokenId")}, domain.EventStaked, nil
	case "Unstaked":
		return &domain.Unstaked{Owner: addrParam(params, "owner"), TokenID: bigParam(params, "tokenId")}, domain.EventUnstaked, nil
	case "EmergencyUnstake":
		return &domain.EmergencyUnstaked{Owner: addrParam(params, "owner"), TokenID: bigParam(params, "tokenId")}, domain.EventEmergencyUnstaked, nil
	case "RewardPaid":
		return &domain.RewardPaid{Owner: addrParam(params, "user"), Reward: bigParam(params, "reward")}, domain.EventRewardPaid, nil
	}

	return nil, "", nil
}

func bigUint64(params map[string]any, key string) uint64 {
	if v, ok := params[key].(*big.Int); ok && v != nil {
		return v.Uint64()
	}
	return 0
}

// Close closes the connection
func (c *ethereumClient) Close() {
	if c.client != nil {
		c.client.Close()
	}
}
