package domain

const (
	// Blockchain constants
	ETHEREUM_ZERO_ADDRESS = "0x0000000000000000000000000000000000000000"

	// GlobalStatsID is the primary key of the GlobalStats singleton
	GLOBAL_STATS_ID = "1"
)
