package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"

	"gorm.io/gorm"

	"github.com/atelier-labs/fashion-indexer/internal/domain"
	"github.com/atelier-labs/fashion-indexer/internal/store/schema"
)

type gormStore struct {
	db *gorm.DB
}

// NewStore creates a store backed by a GORM database connection. Production
// runs on PostgreSQL; tests use the same store against in-memory sqlite.
func NewStore(db *gorm.DB) Store {
	return &gormStore{db: db}
}

// Migrate creates or updates all projection tables
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&schema.Auction{},
		&schema.AuctionHistoryEvent{},
		&schema.AuctionContractConfig{},
		&schema.Offer{},
		&schema.PurchaseHistory{},
		&schema.Collection{},
		&schema.Garment{},
		&schema.GarmentChild{},
		&schema.Look{},
		&schema.Collector{},
		&schema.Designer{},
		&schema.Resident{},
		&schema.Staker{},
		&schema.DesignerSet{},
		&schema.AuctionSet{},
		&schema.DayBucket{},
		&schema.GlobalStats{},
		&schema.KeyValueStore{},
	)
}

// ConfigureConnectionPool configures the connection pool settings for a GORM
// database connection. Zero values fall back to defaults.
func ConfigureConnectionPool(db *gorm.DB, maxOpenConns, maxIdleConns int, connMaxLifetime, connMaxIdleTime time.Duration) error {
	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}

	if maxOpenConns == 0 {
		maxOpenConns = 10
	}
	if maxIdleConns == 0 {
		maxIdleConns = 2
	}
	if connMaxLifetime == 0 {
		connMaxLifetime = 5 * time.Minute
	}
	if connMaxIdleTime == 0 {
		connMaxIdleTime = 10 * time.Minute
	}
	if maxIdleConns > maxOpenConns {
		maxIdleConns = maxOpenConns
	}

	sqlDB.SetMaxOpenConns(maxOpenConns)
	sqlDB.SetMaxIdleConns(maxIdleConns)
	sqlDB.SetConnMaxLifetime(connMaxLifetime)
	sqlDB.SetConnMaxIdleTime(connMaxIdleTime)

	return nil
}

// getByID loads a record by string primary key, returning (nil, nil) when
// no record exists
func getByID[T any](ctx context.Context, db *gorm.DB, id string) (*T, error) {
	var record T
	err := db.WithContext(ctx).Where("id = ?", id).First(&record).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to load record %q: %w", id, err)
	}
	return &record, nil
}

// save upserts a record keyed by its primary key
func save[T any](ctx context.Context, db *gorm.DB, record *T) error {
	if err := db.WithContext(ctx).Save(record).Error; err != nil {
		return fmt.Errorf("failed to save record: %w", err)
	}
	return nil
}

// create inserts a new record, failing on primary key collision
func create[T any](ctx context.Context, db *gorm.DB, record *T) error {
	if err := db.WithContext(ctx).Create(record).Error; err != nil {
		return fmt.Errorf("failed to create record: %w", err)
	}
	return nil
}

func (s *gormStore) GetAuction(ctx context.Context, id string) (*schema.Auction, error) {
	return getByID[schema.Auction](ctx, s.db, id)
}

func (s *gormStore) SaveAuction(ctx context.Context, auction *schema.Auction) error {
	return save(ctx, s.db, auction)
}

func (s *gormStore) GetAuctionHistoryEvent(ctx context.Context, id string) (*schema.AuctionHistoryEvent, error) {
	return getByID[schema.AuctionHistoryEvent](ctx, s.db, id)
}

func (s *gormStore) CreateAuctionHistoryEvent(ctx context.Context, event *schema.AuctionHistoryEvent) error {
	return create(ctx, s.db, event)
}

func (s *gormStore) GetAuctionContractConfig(ctx context.Context, contract string) (*schema.AuctionContractConfig, error) {
	return getByID[schema.AuctionContractConfig](ctx, s.db, contract)
}

func (s *gormStore) SaveAuctionContractConfig(ctx context.Context, config *schema.AuctionContractConfig) error {
	return save(ctx, s.db, config)
}

func (s *gormStore) GetOffer(ctx context.Context, id string) (*schema.Offer, error) {
	return getByID[schema.Offer](ctx, s.db, id)
}

func (s *gormStore) SaveOffer(ctx context.Context, offer *schema.Offer) error {
	return save(ctx, s.db, offer)
}

func (s *gormStore) GetPurchaseHistory(ctx context.Context, id string) (*schema.PurchaseHistory, error) {
	return getByID[schema.PurchaseHistory](ctx, s.db, id)
}

func (s *gormStore) CreatePurchaseHistory(ctx context.Context, purchase *schema.PurchaseHistory) error {
	return create(ctx, s.db, purchase)
}

func (s *gormStore) GetCollection(ctx context.Context, id string) (*schema.Collection, error) {
	return getByID[schema.Collection](ctx, s.db, id)
}

func (s *gormStore) SaveCollection(ctx context.Context, collection *schema.Collection) error {
	return save(ctx, s.db, collection)
}

func (s *gormStore) GetGarment(ctx context.Context, id string) (*schema.Garment, error) {
	return getByID[schema.Garment](ctx, s.db, id)
}

func (s *gormStore) SaveGarment(ctx context.Context, garment *schema.Garment) error {
	return save(ctx, s.db, garment)
}

func (s *gormStore) GetGarmentChild(ctx context.Context, id string) (*schema.GarmentChild, error) {
	return getByID[schema.GarmentChild](ctx, s.db, id)
}

func (s *gormStore) SaveGarmentChild(ctx context.Context, child *schema.GarmentChild) error {
	return save(ctx, s.db, child)
}

func (s *gormStore) GetLook(ctx context.Context, id string) (*schema.Look, error) {
	return getByID[schema.Look](ctx, s.db, id)
}

func (s *gormStore) SaveLook(ctx context.Context, look *schema.Look) error {
	return save(ctx, s.db, look)
}

func (s *gormStore) DeleteLook(ctx context.Context, id string) error {
	err := s.db.WithContext(ctx).Where("id = ?", id).Delete(&schema.Look{}).Error
	if err != nil {
		return fmt.Errorf("failed to delete look %q: %w", id, err)
	}
	return nil
}

func (s *gormStore) GetCollector(ctx context.Context, id string) (*schema.Collector, error) {
	return getByID[schema.Collector](ctx, s.db, id)
}

func (s *gormStore) SaveCollector(ctx context.Context, collector *schema.Collector) error {
	return save(ctx, s.db, collector)
}

func (s *gormStore) GetDesigner(ctx context.Context, id string) (*schema.Designer, error) {
	return getByID[schema.Designer](ctx, s.db, id)
}

func (s *gormStore) SaveDesigner(ctx context.Context, designer *schema.Designer) error {
	return save(ctx, s.db, designer)
}

func (s *gormStore) GetResident(ctx context.Context, id string) (*schema.Resident, error) {
	return getByID[schema.Resident](ctx, s.db, id)
}

func (s *gormStore) SaveResident(ctx context.Context, resident *schema.Resident) error {
	return save(ctx, s.db, resident)
}

func (s *gormStore) GetStaker(ctx context.Context, id string) (*schema.Staker, error) {
	return getByID[schema.Staker](ctx, s.db, id)
}

func (s *gormStore) SaveStaker(ctx context.Context, staker *schema.Staker) error {
	return save(ctx, s.db, staker)
}

func (s *gormStore) GetDesignerSet(ctx context.Context, id string) (*schema.DesignerSet, error) {
	return getByID[schema.DesignerSet](ctx, s.db, id)
}

func (s *gormStore) SaveDesignerSet(ctx context.Context, set *schema.DesignerSet) error {
	return save(ctx, s.db, set)
}

func (s *gormStore) GetAuctionSet(ctx context.Context, id string) (*schema.AuctionSet, error) {
	return getByID[schema.AuctionSet](ctx, s.db, id)
}

func (s *gormStore) SaveAuctionSet(ctx context.Context, set *schema.AuctionSet) error {
	return save(ctx, s.db, set)
}

func (s *gormStore) GetDayBucket(ctx context.Context, id string) (*schema.DayBucket, error) {
	return getByID[schema.DayBucket](ctx, s.db, id)
}

func (s *gormStore) SaveDayBucket(ctx context.Context, bucket *schema.DayBucket) error {
	return save(ctx, s.db, bucket)
}

func (s *gormStore) GetGlobalStats(ctx context.Context, id string) (*schema.GlobalStats, error) {
	return getByID[schema.GlobalStats](ctx, s.db, id)
}

func (s *gormStore) SaveGlobalStats(ctx context.Context, stats *schema.GlobalStats) error {
	return save(ctx, s.db, stats)
}

// GetEventCursor retrieves the last committed event ordering triple
func (s *gormStore) GetEventCursor(ctx context.Context, chain string) (domain.Cursor, error) {
	key := fmt.Sprintf("event_cursor:%s", chain)

	var kv schema.KeyValueStore
	err := s.db.WithContext(ctx).Where("key = ?", key).First(&kv).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.Cursor{}, nil // Zero cursor if none committed yet
		}
		return domain.Cursor{}, fmt.Errorf("failed to get event cursor: %w", err)
	}

	var cursor domain.Cursor
	if err := json.Unmarshal([]byte(kv.Value), &cursor); err != nil {
		return domain.Cursor{}, fmt.Errorf("failed to parse event cursor: %w", err)
	}

	return cursor, nil
}

// SetEventCursor stores the last committed event ordering triple
func (s *gormStore) SetEventCursor(ctx context.Context, chain string, cursor domain.Cursor) error {
	key := fmt.Sprintf("event_cursor:%s", chain)

	value, err := json.Marshal(cursor)
	if err != nil {
		return fmt.Errorf("failed to marshal event cursor: %w", err)
	}

	kv := schema.KeyValueStore{
		Key:   key,
		Value: string(value),
	}

	if err := s.db.WithContext(ctx).Save(&kv).Error; err != nil {
		return fmt.Errorf("failed to set event cursor: %w", err)
	}

	return nil
}

// GetBlockCursor retrieves the last processed block number for a chain
func (s *gormStore) GetBlockCursor(ctx context.Context, chain string) (uint64, error) {
	key := fmt.Sprintf("block_cursor:%s", chain)

	var kv schema.KeyValueStore
	err := s.db.WithContext(ctx).Where("key = ?", key).First(&kv).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, nil
		}
		return 0, fmt.Errorf("failed to get block cursor: %w", err)
	}

	blockNumber, err := strconv.ParseUint(kv.Value, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("failed to parse block cursor: %w", err)
	}

	return blockNumber, nil
}

// SetBlockCursor stores the last processed block number for a chain
func (s *gormStore) SetBlockCursor(ctx context.Context, chain string, blockNumber uint64) error {
	key := fmt.Sprintf("block_cursor:%s", chain)

	kv := schema.KeyValueStore{
		Key:   key,
		Value: strconv.FormatUint(blockNumber, 10),
	}

	if err := s.db.WithContext(ctx).Save(&kv).Error; err != nil {
		return fmt.Errorf("failed to set block cursor: %w", err)
	}

	return nil
}
