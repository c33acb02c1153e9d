package ethereum

import (
	"context"
	"math/big"
	"testing"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/atelier-labs/fashion-indexer/internal/domain"
	"github.com/atelier-labs/fashion-indexer/internal/mocks"
)

var (
	testAuctionAddress = common.HexToAddress("0x0b22380b7c423470979ac3ed7d3c07696773dea1")
	testCatalogAddress = common.HexToAddress("0x3af5c1d1c9fd183ddde54b0e4b4f7a0db6cd44f7")
	testBidderAddress  = common.HexToAddress("0xbb22bb22bb22bb22bb22bb22bb22bb22bb22bb22")
)

func testContracts() Contracts {
	return Contracts{
		"0x0b22380b7c423470979ac3ed7d3c07696773dea1": domain.ContractAuction,
		"0x3af5c1d1c9fd183ddde54b0e4b4f7a0db6cd44f7": domain.ContractCatalog,
	}
}

// addressTopic encodes an address as an indexed log topic
func addressTopic(addr common.Address) common.Hash {
	return common.BytesToHash(common.LeftPadBytes(addr.Bytes(), 32))
}

func TestParseEventLog_BidPlaced(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ethClient := mocks.NewMockEthClient(ctrl)
	ethClient.EXPECT().
		HeaderByNumber(gomock.Any(), new(big.Int).SetUint64(100)).
		Return(&types.Header{Time: 1_615_718_400}, nil)

	client := NewClient(ethClient, testContracts())

	bid := big.NewInt(2_000_000_000_000_000_000)
	data, err := eventsABI.Events["BidPlaced"].Inputs.NonIndexed().Pack(bid)
	require.NoError(t, err)

	vLog := types.Log{
		Address: testAuctionAddress,
		Topics: []common.Hash{
			eventsABI.Events["BidPlaced"].ID,
			common.BigToHash(big.NewInt(1)),
			addressTopic(testBidderAddress),
		},
		Data:        data,
		BlockNumber: 100,
		TxHash:      common.HexToHash("0xabc1"),
		TxIndex:     3,
		Index:       7,
	}

	event, err := client.ParseEventLog(context.Background(), vLog)
	require.NoError(t, err)
	require.NotNil(t, event)
	assert.Equal(t, domain.ContractAuction, event.Kind)
	assert.Equal(t, domain.EventBidPlaced, event.Name)
	assert.Equal(t, uint64(100), event.BlockNumber)
	assert.Equal(t, uint(3), event.TxIndex)
	assert.Equal(t, uint(7), event.LogIndex)
	assert.Equal(t, time.Unix(1_615_718_400, 0).UTC(), event.Timestamp)

	payload, err := event.DecodeParams()
	require.NoError(t, err)
	bidPlaced, ok := payload.(*domain.BidPlaced)
	require.True(t, ok)
	assert.Equal(t, "1", bidPlaced.TokenID)
	assert.Equal(t, testBidderAddress.Hex(), bidPlaced.Bidder)
	assert.Equal(t, "2000000000000000000", bidPlaced.Bid)
}

func TestParseEventLog_DesignerSetAdded(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ethClient := mocks.NewMockEthClient(ctrl)
	ethClient.EXPECT().
		HeaderByNumber(gomock.Any(), gomock.Any()).
		Return(&types.Header{Time: 1_615_718_400}, nil)

	client := NewClient(ethClient, testContracts())

	data, err := eventsABI.Events["DesignerSetAdded"].Inputs.NonIndexed().Pack(
		[]*big.Int{big.NewInt(10), big.NewInt(11)})
	require.NoError(t, err)

	vLog := types.Log{
		Address: testCatalogAddress,
		Topics: []common.Hash{
			eventsABI.Events["DesignerSetAdded"].ID,
			common.BigToHash(big.NewInt(4)),
		},
		Data:        data,
		BlockNumber: 200,
		TxHash:      common.HexToHash("0xabc2"),
	}

	event, err := client.ParseEventLog(context.Background(), vLog)
	require.NoError(t, err)
	require.NotNil(t, event)
	assert.Equal(t, domain.EventDesignerSetAdded, event.Name)

	payload, err := event.DecodeParams()
	require.NoError(t, err)
	setAdded, ok := payload.(*domain.DesignerSetAdded)
	require.True(t, ok)
	assert.Equal(t, "4", setAdded.SetID)
	assert.Equal(t, []string{"10", "11"}, setAdded.TokenIDs)
}

func TestParseEventLog_UnknownContract(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	client := NewClient(mocks.NewMockEthClient(ctrl), testContracts())

	vLog := types.Log{
		Address: common.HexToAddress("0x9999999999999999999999999999999999999999"),
		Topics:  []common.Hash{eventsABI.Events["BidPlaced"].ID},
	}

	event, err := client.ParseEventLog(context.Background(), vLog)
	require.NoError(t, err)
	assert.Nil(t, event)
}

func TestParseEventLog_UnknownSignature(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	client := NewClient(mocks.NewMockEthClient(ctrl), testContracts())

	vLog := types.Log{
		Address: testAuctionAddress,
		Topics:  []common.Hash{common.HexToHash("0xdead")},
	}

	event, err := client.ParseEventLog(context.Background(), vLog)
	require.NoError(t, err)
	assert.Nil(t, event)
}

func TestParseEventLog_CachesBlockTimestamp(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ethClient := mocks.NewMockEthClient(ctrl)
	// One header fetch serves every log of the block
	ethClient.EXPECT().
		HeaderByNumber(gomock.Any(), gomock.Any()).
		Return(&types.Header{Time: 1_615_718_400}, nil).
		Times(1)

	client := NewClient(ethClient, testContracts())

	vLog := types.Log{
		Address:     testAuctionAddress,
		Topics:      []common.Hash{eventsABI.Events["AuctionCreated"].ID, common.BigToHash(big.NewInt(1))},
		BlockNumber: 100,
		TxHash:      common.HexToHash("0xabc3"),
	}

	for i := 0; i < 2; i++ {
		event, err := client.ParseEventLog(context.Background(), vLog)
		require.NoError(t, err)
		require.NotNil(t, event)
	}
}

func TestBuildPayload_TransferRouting(t *testing.T) {
	params := map[string]any{
		"from":    common.Address{},
		"to":      testBidderAddress,
		"tokenId": big.NewInt(9),
	}

	payload, name, err := buildPayload(domain.ContractGarment, "Transfer", params)
	require.NoError(t, err)
	assert.Equal(t, domain.EventGarmentTransfer, name)
	transfer, ok := payload.(*domain.GarmentTransfer)
	require.True(t, ok)
	assert.True(t, transfer.IsMint())
	assert.Equal(t, "9", transfer.TokenID)

	payload, name, err = buildPayload(domain.ContractLook, "Transfer", params)
	require.NoError(t, err)
	assert.Equal(t, domain.EventLookTransfer, name)
	_, ok = payload.(*domain.LookTransfer)
	assert.True(t, ok)

	// Transfer from a contract kind that is not an NFT collection is dropped
	payload, _, err = buildPayload(domain.ContractStaking, "Transfer", params)
	require.NoError(t, err)
	assert.Nil(t, payload)
}

func TestBuildPayload_PlatformFeeRouting(t *testing.T) {
	params := map[string]any{"platformFee": big.NewInt(120)}

	payload, name, err := buildPayload(domain.ContractAuction, "UpdatePlatformFee", params)
	require.NoError(t, err)
	assert.Equal(t, domain.EventUpdatePlatformFee, name)
	_, ok := payload.(*domain.UpdatePlatformFee)
	assert.True(t, ok)

	payload, name, err = buildPayload(domain.ContractMarketplace, "UpdatePlatformFee", params)
	require.NoError(t, err)
	assert.Equal(t, domain.EventUpdateMarketplacePlatformFee, name)
	_, ok = payload.(*domain.UpdateMarketplacePlatformFee)
	assert.True(t, ok)
}

func TestContracts_Kind(t *testing.T) {
	contracts := testContracts()

	kind, ok := contracts.Kind(testAuctionAddress)
	assert.True(t, ok)
	assert.Equal(t, domain.ContractAuction, kind)

	_, ok = contracts.Kind(common.HexToAddress("0x9999999999999999999999999999999999999999"))
	assert.False(t, ok)

	assert.Len(t, contracts.Addresses(), 2)
}
