package projection_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/atelier-labs/fashion-indexer/internal/domain"
	"github.com/atelier-labs/fashion-indexer/internal/types"
)

const stakerAddress = "0xcc33cc33cc33cc33cc33cc33cc33cc33cc33cc33"

func TestStaked(t *testing.T) {
	te := setupTestEngine(t)
	defer tearDownTestEngine(te)
	ctx := context.Background()

	seedGarment(t, te, "1", "designer-1")

	event := newTestEvent(t, stakingContract, domain.ContractStaking, domain.EventStaked, 100,
		&domain.Staked{Owner: stakerAddress, TokenID: "1"})
	require.NoError(t, te.engine.ProcessEvent(ctx, event))

	staker, err := te.store.GetStaker(ctx, stakerAddress)
	require.NoError(t, err)
	require.NotNil(t, staker)
	assert.Equal(t, []string{"1"}, staker.GarmentIDs)

	garment, err := te.store.GetGarment(ctx, "1")
	require.NoError(t, err)
	assert.Equal(t, stakerAddress, types.SafeString(garment.StakedBy))
}

func TestUnstaked(t *testing.T) {
	te := setupTestEngine(t)
	defer tearDownTestEngine(te)
	ctx := context.Background()

	seedGarment(t, te, "1", "designer-1")

	require.NoError(t, te.engine.ProcessEvent(ctx,
		newTestEvent(t, stakingContract, domain.ContractStaking, domain.EventStaked, 100,
			&domain.Staked{Owner: stakerAddress, TokenID: "1"})))
	require.NoError(t, te.engine.ProcessEvent(ctx,
		newTestEvent(t, stakingContract, domain.ContractStaking, domain.EventUnstaked, 101,
			&domain.Unstaked{Owner: stakerAddress, TokenID: "1"})))

	staker, err := te.store.GetStaker(ctx, stakerAddress)
	require.NoError(t, err)
	assert.Empty(t, staker.GarmentIDs)

	garment, err := te.store.GetGarment(ctx, "1")
	require.NoError(t, err)
	assert.Nil(t, garment.StakedBy)
}

func TestEmergencyUnstaked(t *testing.T) {
	te := setupTestEngine(t)
	defer tearDownTestEngine(te)
	ctx := context.Background()

	seedGarment(t, te, "1", "designer-1")

	require.NoError(t, te.engine.ProcessEvent(ctx,
		newTestEvent(t, stakingContract, domain.ContractStaking, domain.EventStaked, 100,
			&domain.Staked{Owner: stakerAddress, TokenID: "1"})))
	require.NoError(t, te.engine.ProcessEvent(ctx,
		newTestEvent(t, stakingContract, domain.ContractStaking, domain.EventEmergencyUnstaked, 101,
			&domain.EmergencyUnstaked{Owner: stakerAddress, TokenID: "1"})))

	staker, err := te.store.GetStaker(ctx, stakerAddress)
	require.NoError(t, err)
	assert.Empty(t, staker.GarmentIDs)

	garment, err := te.store.GetGarment(ctx, "1")
	require.NoError(t, err)
	assert.Nil(t, garment.StakedBy)
}

func TestStaked_MissingGarment(t *testing.T) {
	te := setupTestEngine(t)
	defer tearDownTestEngine(te)

	event := newTestEvent(t, stakingContract, domain.ContractStaking, domain.EventStaked, 100,
		&domain.Staked{Owner: stakerAddress, TokenID: "404"})

	err := te.engine.ProcessEvent(context.Background(), event)
	assert.ErrorIs(t, err, domain.ErrEntityNotFound)
}

func TestRewardPaid_Accumulates(t *testing.T) {
	te := setupTestEngine(t)
	defer tearDownTestEngine(te)
	ctx := context.Background()

	require.NoError(t, te.engine.ProcessEvent(ctx,
		newTestEvent(t, stakingContract, domain.ContractStaking, domain.EventRewardPaid, 100,
			&domain.RewardPaid{Owner: stakerAddress, Reward: "100000000000000000"})))
	require.NoError(t, te.engine.ProcessEvent(ctx,
		newTestEvent(t, stakingContract, domain.ContractStaking, domain.EventRewardPaid, 101,
			&domain.RewardPaid{Owner: stakerAddress, Reward: "250000000000000000"})))

	staker, err := te.store.GetStaker(ctx, stakerAddress)
	require.NoError(t, err)
	require.NotNil(t, staker)
	assert.Equal(t, "350000000000000000", staker.TotalRewardsClaimed)
}
