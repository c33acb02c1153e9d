package projection_test

import (
	"context"
	"math/big"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/atelier-labs/fashion-indexer/internal/chain"
	"github.com/atelier-labs/fashion-indexer/internal/domain"
	"github.com/atelier-labs/fashion-indexer/internal/store/schema"
	"github.com/atelier-labs/fashion-indexer/internal/types"
)

func TestAuctionCreated(t *testing.T) {
	te := setupTestEngine(t)
	defer tearDownTestEngine(te)
	ctx := context.Background()

	seedGarment(t, te, "1", "designer-1")

	te.reader.EXPECT().
		Auction(gomock.Any(), auctionContract, "1", uint64(100)).
		Return(&chain.AuctionState{
			ReservePrice: big.NewInt(1_500_000_000_000_000_000),
			StartTime:    1_615_000_000,
			EndTime:      1_615_700_000,
			Resulted:     false,
		}, nil)

	event := newTestEvent(t, auctionContract, domain.ContractAuction, domain.EventAuctionCreated, 100,
		&domain.AuctionCreated{TokenID: "1"})
	require.NoError(t, te.engine.ProcessEvent(ctx, event))

	auction, err := te.store.GetAuction(ctx, "1")
	require.NoError(t, err)
	require.NotNil(t, auction)
	assert.Equal(t, "1", auction.GarmentID)
	assert.Equal(t, "designer-1", auction.DesignerID)
	assert.Equal(t, "1500000000000000000", auction.ReservePrice)
	assert.Equal(t, uint64(1_615_000_000), auction.StartTime)
	assert.Equal(t, uint64(1_615_700_000), auction.EndTime)
	assert.False(t, auction.Resulted)
	assert.False(t, auction.HasTopBid())

	designer, err := te.store.GetDesigner(ctx, "designer-1")
	require.NoError(t, err)
	require.NotNil(t, designer)
	assert.Contains(t, designer.ListingIDs, "1")

	record, err := te.store.GetAuctionHistoryEvent(ctx, event.EmissionID("1"))
	require.NoError(t, err)
	require.NotNil(t, record)
	assert.Equal(t, schema.AuctionEventCreated, record.EventName)
}

func TestAuctionCreated_RedeliveredEmissionIsNoop(t *testing.T) {
	te := setupTestEngine(t)
	defer tearDownTestEngine(te)
	ctx := context.Background()

	seedGarment(t, te, "1", "designer-1")

	// The contract read must happen exactly once across both deliveries
	te.reader.EXPECT().
		Auction(gomock.Any(), auctionContract, "1", uint64(100)).
		Return(&chain.AuctionState{ReservePrice: big.NewInt(1), StartTime: 1, EndTime: 2}, nil).
		Times(1)

	event := newTestEvent(t, auctionContract, domain.ContractAuction, domain.EventAuctionCreated, 100,
		&domain.AuctionCreated{TokenID: "1"})
	require.NoError(t, te.engine.ProcessEvent(ctx, event))

	// Same emission, later log index: ahead of the cursor but the history
	// row for this tx already exists
	redelivered := newTestEvent(t, auctionContract, domain.ContractAuction, domain.EventAuctionCreated, 100,
		&domain.AuctionCreated{TokenID: "1"})
	redelivered.LogIndex = 1
	require.NoError(t, te.engine.ProcessEvent(ctx, redelivered))

	designer, err := te.store.GetDesigner(ctx, "designer-1")
	require.NoError(t, err)
	assert.Equal(t, []string{"1"}, designer.ListingIDs)
}

func TestBidPlaced_FirstBid(t *testing.T) {
	te := setupTestEngine(t)
	defer tearDownTestEngine(te)
	ctx := context.Background()

	seedGarment(t, te, "1", "designer-1")
	seedAuction(t, te, "1")

	te.reader.EXPECT().
		HighestBid(gomock.Any(), auctionContract, "1", uint64(100)).
		Return(&chain.HighestBidState{
			Bidder:      bidderAddress,
			Bid:         big.NewInt(2_000_000_000_000_000_000),
			LastBidTime: 1_615_100_000,
		}, nil)

	event := newTestEvent(t, auctionContract, domain.ContractAuction, domain.EventBidPlaced, 100,
		&domain.BidPlaced{TokenID: "1", Bidder: bidderAddress, Bid: "2000000000000000000"})
	require.NoError(t, te.engine.ProcessEvent(ctx, event))

	auction, err := te.store.GetAuction(ctx, "1")
	require.NoError(t, err)
	require.True(t, auction.HasTopBid())
	assert.Equal(t, bidderAddress, types.SafeString(auction.TopBidder))
	assert.Equal(t, "2000000000000000000", types.SafeString(auction.TopBid))
	assert.Equal(t, uint64(1_615_100_000), *auction.LastBidTime)

	bucket, err := te.store.GetDayBucket(ctx, "2021-03-14")
	require.NoError(t, err)
	require.NotNil(t, bucket)
	assert.Equal(t, "2000000000000000000", bucket.TotalBidValue)
	assert.Equal(t, "0", bucket.TotalWithdrawalValue)
	assert.Equal(t, "2000000000000000000", bucket.TotalNetBidActivity)

	stats, err := te.store.GetGlobalStats(ctx, domain.GLOBAL_STATS_ID)
	require.NoError(t, err)
	assert.Equal(t, "2000000000000000000", stats.TotalActiveBidsValue)
}

func TestBidPlaced_OutbidAddsOnlyTheDelta(t *testing.T) {
	te := setupTestEngine(t)
	defer tearDownTestEngine(te)
	ctx := context.Background()

	seedGarment(t, te, "1", "designer-1")
	auction := seedAuction(t, te, "1")
	auction.TopBidder = types.StringPtr(collectorAddress)
	auction.TopBid = types.StringPtr("1000000000000000000")
	lastBidTime := uint64(1_615_050_000)
	auction.LastBidTime = &lastBidTime
	require.NoError(t, te.store.SaveAuction(ctx, auction))
	seedGlobalStats(t, te, "1000000000000000000")

	te.reader.EXPECT().
		HighestBid(gomock.Any(), auctionContract, "1", uint64(100)).
		Return(&chain.HighestBidState{
			Bidder:      bidderAddress,
			Bid:         big.NewInt(3_000_000_000_000_000_000),
			LastBidTime: 1_615_100_000,
		}, nil)

	event := newTestEvent(t, auctionContract, domain.ContractAuction, domain.EventBidPlaced, 100,
		&domain.BidPlaced{TokenID: "1", Bidder: bidderAddress, Bid: "3000000000000000000"})
	require.NoError(t, te.engine.ProcessEvent(ctx, event))

	// The superseded bid leaves the aggregate, only the difference is added
	bucket, err := te.store.GetDayBucket(ctx, "2021-03-14")
	require.NoError(t, err)
	assert.Equal(t, "2000000000000000000", bucket.TotalBidValue)

	stats, err := te.store.GetGlobalStats(ctx, domain.GLOBAL_STATS_ID)
	require.NoError(t, err)
	assert.Equal(t, "3000000000000000000", stats.TotalActiveBidsValue)
}

func TestBidPlaced_HistoryKeepsRawBid(t *testing.T) {
	te := setupTestEngine(t)
	defer tearDownTestEngine(te)
	ctx := context.Background()

	seedGarment(t, te, "1", "designer-1")
	seedAuction(t, te, "1")

	// The read reflects a later bid in the same block superseding this one
	te.reader.EXPECT().
		HighestBid(gomock.Any(), auctionContract, "1", uint64(100)).
		Return(&chain.HighestBidState{
			Bidder:      collectorAddress,
			Bid:         big.NewInt(5_000_000_000_000_000_000),
			LastBidTime: 1_615_100_000,
		}, nil)

	event := newTestEvent(t, auctionContract, domain.ContractAuction, domain.EventBidPlaced, 100,
		&domain.BidPlaced{TokenID: "1", Bidder: bidderAddress, Bid: "2000000000000000000"})
	require.NoError(t, te.engine.ProcessEvent(ctx, event))

	auction, err := te.store.GetAuction(ctx, "1")
	require.NoError(t, err)
	assert.Equal(t, "5000000000000000000", types.SafeString(auction.TopBid))
	assert.Equal(t, collectorAddress, types.SafeString(auction.TopBidder))

	record, err := te.store.GetAuctionHistoryEvent(ctx, event.EmissionID("1"))
	require.NoError(t, err)
	require.NotNil(t, record)
	assert.Equal(t, "2000000000000000000", types.SafeString(record.Value))
	assert.Equal(t, bidderAddress, types.SafeString(record.Bidder))
}

func TestBidPlaced_NoStandingBidClearsTriplet(t *testing.T) {
	te := setupTestEngine(t)
	defer tearDownTestEngine(te)
	ctx := context.Background()

	seedGarment(t, te, "1", "designer-1")
	auction := seedAuction(t, te, "1")
	auction.TopBidder = types.StringPtr(bidderAddress)
	auction.TopBid = types.StringPtr("2000000000000000000")
	lastBidTime := uint64(1_615_050_000)
	auction.LastBidTime = &lastBidTime
	require.NoError(t, te.store.SaveAuction(ctx, auction))
	seedGlobalStats(t, te, "2000000000000000000")

	te.reader.EXPECT().
		HighestBid(gomock.Any(), auctionContract, "1", uint64(100)).
		Return(&chain.HighestBidState{Bidder: "0x0000000000000000000000000000000000000000", Bid: big.NewInt(0)}, nil)

	event := newTestEvent(t, auctionContract, domain.ContractAuction, domain.EventBidPlaced, 100,
		&domain.BidPlaced{TokenID: "1", Bidder: bidderAddress, Bid: "2000000000000000000"})
	require.NoError(t, te.engine.ProcessEvent(ctx, event))

	auction, err := te.store.GetAuction(ctx, "1")
	require.NoError(t, err)
	assert.False(t, auction.HasTopBid())
	assert.Nil(t, auction.TopBid)
	assert.Nil(t, auction.LastBidTime)

	stats, err := te.store.GetGlobalStats(ctx, domain.GLOBAL_STATS_ID)
	require.NoError(t, err)
	assert.Equal(t, "0", stats.TotalActiveBidsValue)
}

func TestBidWithdrawn(t *testing.T) {
	te := setupTestEngine(t)
	defer tearDownTestEngine(te)
	ctx := context.Background()

	seedGarment(t, te, "1", "designer-1")
	auction := seedAuction(t, te, "1")
	auction.TopBidder = types.StringPtr(bidderAddress)
	auction.TopBid = types.StringPtr("2000000000000000000")
	lastBidTime := uint64(1_615_050_000)
	auction.LastBidTime = &lastBidTime
	require.NoError(t, te.store.SaveAuction(ctx, auction))
	seedGlobalStats(t, te, "2000000000000000000")

	event := newTestEvent(t, auctionContract, domain.ContractAuction, domain.EventBidWithdrawn, 100,
		&domain.BidWithdrawn{TokenID: "1", Bidder: bidderAddress, Bid: "2000000000000000000"})
	require.NoError(t, te.engine.ProcessEvent(ctx, event))

	auction, err := te.store.GetAuction(ctx, "1")
	require.NoError(t, err)
	assert.False(t, auction.HasTopBid())

	bucket, err := te.store.GetDayBucket(ctx, "2021-03-14")
	require.NoError(t, err)
	assert.Equal(t, "2000000000000000000", bucket.TotalWithdrawalValue)
	// Withdrawals on a day without bids drive the net negative
	assert.Equal(t, "-2000000000000000000", bucket.TotalNetBidActivity)

	stats, err := te.store.GetGlobalStats(ctx, domain.GLOBAL_STATS_ID)
	require.NoError(t, err)
	assert.Equal(t, "0", stats.TotalActiveBidsValue)

	record, err := te.store.GetAuctionHistoryEvent(ctx, event.EmissionID("1"))
	require.NoError(t, err)
	require.NotNil(t, record)
	assert.Equal(t, schema.AuctionEventBidWithdrawn, record.EventName)
}

func TestAuctionResulted(t *testing.T) {
	te := setupTestEngine(t)
	defer tearDownTestEngine(te)
	ctx := context.Background()

	seedGarment(t, te, "1", "designer-1")
	auction := seedAuction(t, te, "1")
	auction.TopBidder = types.StringPtr(bidderAddress)
	auction.TopBid = types.StringPtr("2000000000000000000")
	require.NoError(t, te.store.SaveAuction(ctx, auction))
	seedGlobalStats(t, te, "2000000000000000000")

	event := newTestEvent(t, auctionContract, domain.ContractAuction, domain.EventAuctionResulted, 100,
		&domain.AuctionResulted{TokenID: "1", Winner: bidderAddress, WinningBid: "2000000000000000000"})
	require.NoError(t, te.engine.ProcessEvent(ctx, event))

	auction, err := te.store.GetAuction(ctx, "1")
	require.NoError(t, err)
	assert.True(t, auction.Resulted)
	require.NotNil(t, auction.ResultedTime)
	assert.Equal(t, testTimestamp.Unix(), auction.ResultedTime.Unix())

	config, err := te.store.GetAuctionContractConfig(ctx, auctionContract)
	require.NoError(t, err)
	require.NotNil(t, config)
	assert.Equal(t, "2000000000000000000", config.TotalSales)

	stats, err := te.store.GetGlobalStats(ctx, domain.GLOBAL_STATS_ID)
	require.NoError(t, err)
	assert.Equal(t, "2000000000000000000", stats.TotalSalesValue)
	assert.Equal(t, "0", stats.TotalActiveBidsValue)
}

func TestAuctionResulted_ClampsActiveBidsAtZero(t *testing.T) {
	te := setupTestEngine(t)
	defer tearDownTestEngine(te)
	ctx := context.Background()

	seedGarment(t, te, "1", "designer-1")
	seedAuction(t, te, "1")
	seedGlobalStats(t, te, "1000000000000000000")

	event := newTestEvent(t, auctionContract, domain.ContractAuction, domain.EventAuctionResulted, 100,
		&domain.AuctionResulted{TokenID: "1", Winner: bidderAddress, WinningBid: "2000000000000000000"})
	require.NoError(t, te.engine.ProcessEvent(ctx, event))

	stats, err := te.store.GetGlobalStats(ctx, domain.GLOBAL_STATS_ID)
	require.NoError(t, err)
	assert.Equal(t, "0", stats.TotalActiveBidsValue)
	assert.Equal(t, "2000000000000000000", stats.TotalSalesValue)
}

func TestAuctionCancelled_ReleasesTopBid(t *testing.T) {
	te := setupTestEngine(t)
	defer tearDownTestEngine(te)
	ctx := context.Background()

	seedGarment(t, te, "1", "designer-1")
	auction := seedAuction(t, te, "1")
	auction.TopBidder = types.StringPtr(bidderAddress)
	auction.TopBid = types.StringPtr("2000000000000000000")
	require.NoError(t, te.store.SaveAuction(ctx, auction))
	seedGlobalStats(t, te, "2000000000000000000")

	event := newTestEvent(t, auctionContract, domain.ContractAuction, domain.EventAuctionCancelled, 100,
		&domain.AuctionCancelled{TokenID: "1"})
	require.NoError(t, te.engine.ProcessEvent(ctx, event))

	auction, err := te.store.GetAuction(ctx, "1")
	require.NoError(t, err)
	assert.False(t, auction.HasTopBid())

	stats, err := te.store.GetGlobalStats(ctx, domain.GLOBAL_STATS_ID)
	require.NoError(t, err)
	assert.Equal(t, "0", stats.TotalActiveBidsValue)

	record, err := te.store.GetAuctionHistoryEvent(ctx, event.EmissionID("1"))
	require.NoError(t, err)
	require.NotNil(t, record)
	assert.Equal(t, schema.AuctionEventCancelled, record.EventName)
}

func TestUpdateAuctionParameters(t *testing.T) {
	te := setupTestEngine(t)
	defer tearDownTestEngine(te)
	ctx := context.Background()

	seedGarment(t, te, "1", "designer-1")
	seedAuction(t, te, "1")

	require.NoError(t, te.engine.ProcessEvent(ctx,
		newTestEvent(t, auctionContract, domain.ContractAuction, domain.EventUpdateAuctionReservePrice, 100,
			&domain.UpdateAuctionReservePrice{TokenID: "1", ReservePrice: "5000000000000000000"})))
	require.NoError(t, te.engine.ProcessEvent(ctx,
		newTestEvent(t, auctionContract, domain.ContractAuction, domain.EventUpdateAuctionStartTime, 101,
			&domain.UpdateAuctionStartTime{TokenID: "1", StartTime: 1_616_000_000})))
	require.NoError(t, te.engine.ProcessEvent(ctx,
		newTestEvent(t, auctionContract, domain.ContractAuction, domain.EventUpdateAuctionEndTime, 102,
			&domain.UpdateAuctionEndTime{TokenID: "1", EndTime: 1_616_700_000})))

	auction, err := te.store.GetAuction(ctx, "1")
	require.NoError(t, err)
	assert.Equal(t, "5000000000000000000", auction.ReservePrice)
	assert.Equal(t, uint64(1_616_000_000), auction.StartTime)
	assert.Equal(t, uint64(1_616_700_000), auction.EndTime)
}

func TestUpdateAuctionContractConfig(t *testing.T) {
	te := setupTestEngine(t)
	defer tearDownTestEngine(te)
	ctx := context.Background()

	require.NoError(t, te.engine.ProcessEvent(ctx,
		newTestEvent(t, auctionContract, domain.ContractAuction, domain.EventUpdateMinBidIncrement, 100,
			&domain.UpdateMinBidIncrement{MinBidIncrement: "100000000000000000"})))
	require.NoError(t, te.engine.ProcessEvent(ctx,
		newTestEvent(t, auctionContract, domain.ContractAuction, domain.EventUpdateBidWithdrawalLockTime, 101,
			&domain.UpdateBidWithdrawalLockTime{BidWithdrawalLockTime: 1200})))
	require.NoError(t, te.engine.ProcessEvent(ctx,
		newTestEvent(t, auctionContract, domain.ContractAuction, domain.EventUpdatePlatformFee, 102,
			&domain.UpdatePlatformFee{PlatformFee: "120"})))
	require.NoError(t, te.engine.ProcessEvent(ctx,
		newTestEvent(t, auctionContract, domain.ContractAuction, domain.EventUpdatePlatformFeeRecipient, 103,
			&domain.UpdatePlatformFeeRecipient{PlatformFeeRecipient: collectorAddress})))

	config, err := te.store.GetAuctionContractConfig(ctx, auctionContract)
	require.NoError(t, err)
	require.NotNil(t, config)
	assert.Equal(t, "100000000000000000", config.MinBidIncrement)
	assert.Equal(t, uint64(1200), config.BidWithdrawalLockTime)
	assert.Equal(t, "120", config.PlatformFee)
	assert.Equal(t, collectorAddress, config.PlatformFeeRecipient)
}
