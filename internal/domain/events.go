package domain

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/ethereum/go-ethereum/common"
)

// ContractKind identifies which platform contract family emitted an event
type ContractKind string

const (
	ContractAuction     ContractKind = "auction"
	ContractMarketplace ContractKind = "marketplace"
	ContractGarment     ContractKind = "garment"
	ContractCollection  ContractKind = "collection"
	ContractLook        ContractKind = "look"
	ContractCatalog     ContractKind = "catalog"
	ContractStaking     ContractKind = "staking"
)

// EventName identifies the decoded event type
type EventName string

const (
	// Auction contract
	EventAuctionCreated              EventName = "AuctionCreated"
	EventBidPlaced                   EventName = "BidPlaced"
	EventBidWithdrawn                EventName = "BidWithdrawn"
	EventAuctionResulted             EventName = "AuctionResulted"
	EventAuctionCancelled            EventName = "AuctionCancelled"
	EventUpdateAuctionReservePrice   EventName = "UpdateAuctionReservePrice"
	EventUpdateAuctionStartTime      EventName = "UpdateAuctionStartTime"
	EventUpdateAuctionEndTime        EventName = "UpdateAuctionEndTime"
	EventUpdateMinBidIncrement       EventName = "UpdateMinBidIncrement"
	EventUpdateBidWithdrawalLockTime EventName = "UpdateBidWithdrawalLockTime"
	EventUpdatePlatformFee           EventName = "UpdatePlatformFee"
	EventUpdatePlatformFeeRecipient  EventName = "UpdatePlatformFeeRecipient"

	// Marketplace contract
	EventOfferCreated                 EventName = "OfferCreated"
	EventUpdateOfferPrimarySalePrice  EventName = "UpdateOfferPrimarySalePrice"
	EventOfferPurchased               EventName = "OfferPurchased"
	EventOfferCancelled               EventName = "OfferCancelled"
	EventUpdateMarketplacePlatformFee EventName = "UpdateMarketplacePlatformFee"
	EventUpdateMarketplaceDiscount    EventName = "UpdateMarketplaceDiscountToPayInErc20"
	EventUpdateMonaPerEth             EventName = "UpdateMonaPerEth"

	// Garment NFT contract
	EventGarmentTransfer        EventName = "Transfer"
	EventReceivedChild          EventName = "ReceivedChild"
	EventGarmentTokenURIUpdated EventName = "GarmentTokenURIUpdated"

	// Collection contract
	EventMintGarmentCollection EventName = "MintGarmentCollection"
	EventBurnGarmentCollection EventName = "BurnGarmentCollection"

	// Look NFT contract
	EventLookTransfer EventName = "LookTransfer"

	// Catalog index contract
	EventDesignerSetAdded    EventName = "DesignerSetAdded"
	EventDesignerSetUpdated  EventName = "DesignerSetUpdated"
	EventDesignerSetRemoved  EventName = "DesignerSetRemoved"
	EventAuctionSetAdded     EventName = "AuctionSetAdded"
	EventAuctionSetUpdated   EventName = "AuctionSetUpdated"
	EventAuctionSetRemoved   EventName = "AuctionSetRemoved"
	EventDesignerInfoUpdated EventName = "DesignerInfoUpdated"

	// Staking contract
	EventStaked            EventName = "Staked"
	EventUnstaked          EventName = "Unstaked"
	EventEmergencyUnstaked EventName = "EmergencyUnstaked"
	EventRewardPaid        EventName = "RewardPaid"
)

// Event is the normalized envelope published to NATS. The typed parameter
// payload travels as raw JSON and is decoded by name on the consumer side.
type Event struct {
	Contract    string          `json:"contract"`
	Kind        ContractKind    `json:"contract_kind"`
	Name        EventName       `json:"event_name"`
	BlockNumber uint64          `json:"block_number"`
	TxHash      string          `json:"tx_hash"`
	TxIndex     uint            `json:"tx_index"`
	LogIndex    uint            `json:"log_index"`
	Timestamp   time.Time       `json:"timestamp"`
	Params      json.RawMessage `json:"params"`
}

// Cursor returns the event's ordering triple
func (e *Event) Cursor() Cursor {
	return Cursor{BlockNumber: e.BlockNumber, TxIndex: e.TxIndex, LogIndex: e.LogIndex}
}

// EmissionID returns the globally unique id of this emission, used as the
// primary key of append-only history records.
func (e *Event) EmissionID(entityID string) string {
	return fmt.Sprintf("%s-%s-%d", entityID, e.TxHash, e.TxIndex)
}

// Valid performs basic envelope validation
func (e *Event) Valid() bool {
	if e.Name == "" || e.TxHash == "" {
		return false
	}
	return common.IsHexAddress(e.Contract)
}

// SetParams marshals a typed payload into the envelope
func (e *Event) SetParams(payload any) error {
	data, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal event params: %w", err)
	}
	e.Params = data
	return nil
}

// DecodeParams decodes the raw params into the typed payload for the
// envelope's event name. Returns ErrUnknownEvent for unregistered names.
func (e *Event) DecodeParams() (any, error) {
	factory, ok := payloadFactories[e.Name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownEvent, e.Name)
	}

	payload := factory()
	if err := json.Unmarshal(e.Params, payload); err != nil {
		return nil, fmt.Errorf("failed to decode %s params: %w", e.Name, err)
	}

	return payload, nil
}

// payloadFactories maps event names to constructors of their typed payloads
var payloadFactories = map[EventName]func() any{
	EventAuctionCreated:              func() any { return &AuctionCreated{} },
	EventBidPlaced:                   func() any { return &BidPlaced{} },
	EventBidWithdrawn:                func() any { return &BidWithdrawn{} },
	EventAuctionResulted:             func() any { return &AuctionResulted{} },
	EventAuctionCancelled:            func() any { return &AuctionCancelled{} },
	EventUpdateAuctionReservePrice:   func() any { return &UpdateAuctionReservePrice{} },
	EventUpdateAuctionStartTime:      func() any { return &UpdateAuctionStartTime{} },
	EventUpdateAuctionEndTime:        func() any { return &UpdateAuctionEndTime{} },
	EventUpdateMinBidIncrement:       func() any { return &UpdateMinBidIncrement{} },
	EventUpdateBidWithdrawalLockTime: func() any { return &UpdateBidWithdrawalLockTime{} },
	EventUpdatePlatformFee:           func() any { return &UpdatePlatformFee{} },
	EventUpdatePlatformFeeRecipient:  func() any { return &UpdatePlatformFeeRecipient{} },

	EventOfferCreated:                 func() any { return &OfferCreated{} },
	EventUpdateOfferPrimarySalePrice:  func() any { return &UpdateOfferPrimarySalePrice{} },
	EventOfferPurchased:               func() any { return &OfferPurchased{} },
	EventOfferCancelled:               func() any { return &OfferCancelled{} },
	EventUpdateMarketplacePlatformFee: func() any { return &UpdateMarketplacePlatformFee{} },
	EventUpdateMarketplaceDiscount:    func() any { return &UpdateMarketplaceDiscount{} },
	EventUpdateMonaPerEth:             func() any { return &UpdateMonaPerEth{} },

	EventGarmentTransfer:        func() any { return &GarmentTransfer{} },
	EventReceivedChild:          func() any { return &ReceivedChild{} },
	EventGarmentTokenURIUpdated: func() any { return &GarmentTokenURIUpdated{} },

	EventMintGarmentCollection: func() any { return &MintGarmentCollection{} },
	EventBurnGarmentCollection: func() any { return &BurnGarmentCollection{} },

	EventLookTransfer: func() any { return &LookTransfer{} },

	EventDesignerSetAdded:    func() any { return &DesignerSetAdded{} },
	EventDesignerSetUpdated:  func() any { return &DesignerSetUpdated{} },
	EventDesignerSetRemoved:  func() any { return &DesignerSetRemoved{} },
	EventAuctionSetAdded:     func() any { return &AuctionSetAdded{} },
	EventAuctionSetUpdated:   func() any { return &AuctionSetUpdated{} },
	EventAuctionSetRemoved:   func() any { return &AuctionSetRemoved{} },
	EventDesignerInfoUpdated: func() any { return &DesignerInfoUpdated{} },

	EventStaked:            func() any { return &Staked{} },
	EventUnstaked:          func() any { return &Unstaked{} },
	EventEmergencyUnstaked: func() any { return &EmergencyUnstaked{} },
	EventRewardPaid:        func() any { return &RewardPaid{} },
}

// Monetary amounts are decimal wei strings to survive JSON round trips
// without precision loss (on-chain values can reach 78 digits).

// AuctionCreated is emitted when a garment auction is listed
type AuctionCreated struct {
	TokenID string `json:"token_id"`
}

// BidPlaced is emitted for every bid, winning or not
type BidPlaced struct {
	TokenID string `json:"token_id"`
	Bidder  string `json:"bidder"`
	Bid     string `json:"bid"`
}

// BidWithdrawn is emitted when the top bidder withdraws
type BidWithdrawn struct {
	TokenID string `json:"token_id"`
	Bidder  string `json:"bidder"`
	Bid     string `json:"bid"`
}

// AuctionResulted is emitted when an auction settles with a winner
type AuctionResulted struct {
	TokenID    string `json:"token_id"`
	Winner     string `json:"winner"`
	WinningBid string `json:"winning_bid"`
}

// AuctionCancelled is emitted when an admin cancels an auction
type AuctionCancelled struct {
	TokenID string `json:"token_id"`
}

type UpdateAuctionReservePrice struct {
	TokenID      string `json:"token_id"`
	ReservePrice string `json:"reserve_price"`
}

type UpdateAuctionStartTime struct {
	TokenID   string `json:"token_id"`
	StartTime uint64 `json:"start_time"`
}

type UpdateAuctionEndTime struct {
	TokenID string `json:"token_id"`
	EndTime uint64 `json:"end_time"`
}

type UpdateMinBidIncrement struct {
	MinBidIncrement string `json:"min_bid_increment"`
}

type UpdateBidWithdrawalLockTime struct {
	BidWithdrawalLockTime uint64 `json:"bid_withdrawal_lock_time"`
}

type UpdatePlatformFee struct {
	PlatformFee string `json:"platform_fee"`
}

type UpdatePlatformFeeRecipient struct {
	PlatformFeeRecipient string `json:"platform_fee_recipient"`
}

// OfferCreated is emitted when a collection goes on primary sale
type OfferCreated struct {
	CollectionID string `json:"collection_id"`
}

type UpdateOfferPrimarySalePrice struct {
	CollectionID     string `json:"collection_id"`
	PrimarySalePrice string `json:"primary_sale_price"`
}

// OfferPurchased is emitted once per garment token sold from an offer
type OfferPurchased struct {
	GarmentTokenID        string `json:"garment_token_id"`
	CollectionID          string `json:"collection_id"`
	Buyer                 string `json:"buyer"`
	PrimarySalePrice      string `json:"primary_sale_price"`
	IsPaidWithMona        bool   `json:"is_paid_with_mona"`
	MonaTransferredAmount string `json:"mona_transferred_amount"`
	PlatformFee           string `json:"platform_fee"`
}

type OfferCancelled struct {
	CollectionID string `json:"collection_id"`
}

type UpdateMarketplacePlatformFee struct {
	PlatformFee string `json:"platform_fee"`
}

type UpdateMarketplaceDiscount struct {
	Discount string `json:"discount"`
}

// UpdateMonaPerEth is the oracle push refreshing the Mona/ETH rate
type UpdateMonaPerEth struct {
	MonaPerEth string `json:"mona_per_eth"`
}

// GarmentTransfer covers mint (from == zero), transfer, and burn (to == zero)
type GarmentTransfer struct {
	From    string `json:"from"`
	To      string `json:"to"`
	TokenID string `json:"token_id"`
}

// IsMint reports whether this transfer is a mint
func (t *GarmentTransfer) IsMint() bool {
	return t.From == ETHEREUM_ZERO_ADDRESS || t.From == ""
}

// IsBurn reports whether this transfer is a burn
func (t *GarmentTransfer) IsBurn() bool {
	return t.To == ETHEREUM_ZERO_ADDRESS || t.To == ""
}

// ReceivedChild is emitted when a child strand token is composed into a garment
type ReceivedChild struct {
	From          string `json:"from"`
	ParentTokenID string `json:"parent_token_id"`
	ChildContract string `json:"child_contract"`
	ChildTokenID  string `json:"child_token_id"`
	Amount        string `json:"amount"`
}

// ChildID returns the composite key of the parent/child pair
func (r *ReceivedChild) ChildID() string {
	return fmt.Sprintf("%s-%s", r.ParentTokenID, r.ChildTokenID)
}

type GarmentTokenURIUpdated struct {
	TokenID  string `json:"token_id"`
	TokenURI string `json:"token_uri"`
}

type MintGarmentCollection struct {
	CollectionID string `json:"collection_id"`
}

type BurnGarmentCollection struct {
	CollectionID string `json:"collection_id"`
}

// LookTransfer covers mint/transfer/burn of display-only look tokens
type LookTransfer struct {
	From    string `json:"from"`
	To      string `json:"to"`
	TokenID string `json:"token_id"`
}

func (t *LookTransfer) IsMint() bool {
	return t.From == ETHEREUM_ZERO_ADDRESS || t.From == ""
}

func (t *LookTransfer) IsBurn() bool {
	return t.To == ETHEREUM_ZERO_ADDRESS || t.To == ""
}

type DesignerSetAdded struct {
	SetID    string   `json:"set_id"`
	TokenIDs []string `json:"token_ids"`
}

type DesignerSetUpdated struct {
	SetID    string   `json:"set_id"`
	TokenIDs []string `json:"token_ids"`
}

type DesignerSetRemoved struct {
	SetID string `json:"set_id"`
}

type AuctionSetAdded struct {
	SetID    string   `json:"set_id"`
	TokenIDs []string `json:"token_ids"`
}

type AuctionSetUpdated struct {
	SetID    string   `json:"set_id"`
	TokenIDs []string `json:"token_ids"`
}

type AuctionSetRemoved struct {
	SetID string `json:"set_id"`
}

type DesignerInfoUpdated struct {
	DesignerID string `json:"designer_id"`
	InfoURI    string `json:"info_uri"`
}

type Staked struct {
	Owner   string `json:"owner"`
	TokenID string `json:"token_id"`
}

type Unstaked struct {
	Owner   string `json:"owner"`
	TokenID string `json:"token_id"`
}

type EmergencyUnstaked struct {
	Owner   string `json:"owner"`
	TokenID string `json:"token_id"`
}

type RewardPaid struct {
	Owner  string `json:"owner"`
	Reward string `json:"reward"`
}

// Subject builds the NATS subject for this event
// Format: fashion.events.{contract_kind}.{event_name}
func (e *Event) Subject() string {
	return fmt.Sprintf("fashion.events.%s.%s", e.Kind, strings.ToLower(string(e.Name)))
}
