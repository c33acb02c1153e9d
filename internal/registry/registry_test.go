package registry_test

import (
	"context"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/atelier-labs/fashion-indexer/internal/domain"
	"github.com/atelier-labs/fashion-indexer/internal/mocks"
	"github.com/atelier-labs/fashion-indexer/internal/registry"
	"github.com/atelier-labs/fashion-indexer/internal/store/schema"
)

func TestRegistry_Collector_LoadsExisting(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	st := mocks.NewMockStore(ctrl)
	reg := registry.New(st)

	existing := &schema.Collector{ID: "0xabc", GarmentIDs: []string{"1"}}
	st.EXPECT().GetCollector(gomock.Any(), "0xabc").Return(existing, nil)

	collector, err := reg.Collector(context.Background(), "0xabc")
	require.NoError(t, err)
	assert.Same(t, existing, collector)
}

func TestRegistry_Collector_CreatesMissing(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	st := mocks.NewMockStore(ctrl)
	reg := registry.New(st)

	st.EXPECT().GetCollector(gomock.Any(), "0xabc").Return(nil, nil)
	st.EXPECT().SaveCollector(gomock.Any(), gomock.Any()).Return(nil)

	collector, err := reg.Collector(context.Background(), "0xabc")
	require.NoError(t, err)
	assert.Equal(t, "0xabc", collector.ID)
	assert.NotNil(t, collector.GarmentIDs)
	assert.Empty(t, collector.GarmentIDs)
}

func TestRegistry_Designer_CreatesMissing(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	st := mocks.NewMockStore(ctrl)
	reg := registry.New(st)

	st.EXPECT().GetDesigner(gomock.Any(), "designer-1").Return(nil, nil)
	st.EXPECT().SaveDesigner(gomock.Any(), gomock.Any()).Return(nil)

	designer, err := reg.Designer(context.Background(), "designer-1")
	require.NoError(t, err)
	assert.Equal(t, "designer-1", designer.ID)
	assert.Empty(t, designer.GarmentIDs)
	assert.Empty(t, designer.ListingIDs)
}

func TestRegistry_Staker_CreatesWithZeroRewards(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	st := mocks.NewMockStore(ctrl)
	reg := registry.New(st)

	st.EXPECT().GetStaker(gomock.Any(), "0xstaker").Return(nil, nil)
	st.EXPECT().SaveStaker(gomock.Any(), gomock.Any()).Return(nil)

	staker, err := reg.Staker(context.Background(), "0xstaker")
	require.NoError(t, err)
	assert.Equal(t, "0", staker.TotalRewardsClaimed)
}

func TestRegistry_DayBucket_CreatesZeroed(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	st := mocks.NewMockStore(ctrl)
	reg := registry.New(st)

	st.EXPECT().GetDayBucket(gomock.Any(), "2021-03-14").Return(nil, nil)
	st.EXPECT().SaveDayBucket(gomock.Any(), gomock.Any()).Return(nil)

	bucket, err := reg.DayBucket(context.Background(), "2021-03-14")
	require.NoError(t, err)
	assert.Equal(t, "2021-03-14", bucket.ID)
	assert.Equal(t, "0", bucket.TotalBidValue)
	assert.Equal(t, "0", bucket.TotalWithdrawalValue)
	assert.Equal(t, "0", bucket.TotalNetBidActivity)
}

func TestRegistry_GlobalStats_CreatesSingleton(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	st := mocks.NewMockStore(ctrl)
	reg := registry.New(st)

	st.EXPECT().GetGlobalStats(gomock.Any(), domain.GLOBAL_STATS_ID).Return(nil, nil)
	st.EXPECT().SaveGlobalStats(gomock.Any(), gomock.Any()).Return(nil)

	stats, err := reg.GlobalStats(context.Background())
	require.NoError(t, err)
	assert.Equal(t, domain.GLOBAL_STATS_ID, stats.ID)
	assert.Equal(t, "0", stats.TotalActiveBidsValue)
	assert.Equal(t, "0", stats.MonaPerEth)
}

func TestRegistry_GlobalStats_LoadsExisting(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	st := mocks.NewMockStore(ctrl)
	reg := registry.New(st)

	existing := &schema.GlobalStats{ID: domain.GLOBAL_STATS_ID, TotalActiveBidsValue: "500"}
	st.EXPECT().GetGlobalStats(gomock.Any(), domain.GLOBAL_STATS_ID).Return(existing, nil)

	stats, err := reg.GlobalStats(context.Background())
	require.NoError(t, err)
	assert.Same(t, existing, stats)
}

func TestRegistry_AuctionContractConfig_CreatesMissing(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	st := mocks.NewMockStore(ctrl)
	reg := registry.New(st)

	st.EXPECT().GetAuctionContractConfig(gomock.Any(), "0xauction").Return(nil, nil)
	st.EXPECT().SaveAuctionContractConfig(gomock.Any(), gomock.Any()).Return(nil)

	config, err := reg.AuctionContractConfig(context.Background(), "0xauction")
	require.NoError(t, err)
	assert.Equal(t, "0xauction", config.ID)
	assert.Equal(t, "0", config.TotalSales)
}

func TestRegistry_PropagatesStoreError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	st := mocks.NewMockStore(ctrl)
	reg := registry.New(st)

	st.EXPECT().GetCollector(gomock.Any(), "0xabc").Return(nil, assert.AnError)

	_, err := reg.Collector(context.Background(), "0xabc")
	assert.Error(t, err)
}
