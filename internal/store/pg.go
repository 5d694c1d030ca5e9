package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/cenkalti/backoff/v4"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	gormlogger "gorm.io/gorm/logger"

	"github.com/eos420/indexer-api/internal/logger"
	"github.com/eos420/indexer-api/internal/store/schema"
)

type pgStore struct {
	db *gorm.DB
}

// NewPGStore creates a new PostgreSQL store instance
func NewPGStore(db *gorm.DB) Store {
	return &pgStore{db: db}
}

// Open connects to PostgreSQL, retrying with exponential backoff until
// maxElapsed has passed or ctx is done
func Open(ctx context.Context, dsn string, maxElapsed time.Duration) (*gorm.DB, error) {
	b := backoff.NewExponentialBackOff()
	b.InitialInterval = 500 * time.Millisecond
	b.MaxInterval = 15 * time.Second
	b.MaxElapsedTime = maxElapsed

	var db *gorm.DB
	operation := func() error {
		var err error
		db, err = gorm.Open(postgres.Open(dsn), &gorm.Config{
			Logger: gormlogger.Default.LogMode(gormlogger.Silent),
		})
		return err
	}

	var attemptCount int
	notifyOnError := func(err error, duration time.Duration) {
		attemptCount++
		logger.WarnCtx(ctx, "Database connection failed, retrying",
			zap.Error(err),
			zap.Int("attempt", attemptCount),
			zap.Duration("next_retry_in", duration),
		)
	}

	if err := backoff.RetryNotify(operation, backoff.WithContext(b, ctx), notifyOnError); err != nil {
		return nil, fmt.Errorf("failed to connect to database after %d attempts: %w", attemptCount+1, err)
	}
	return db, nil
}

// AutoMigrate creates or updates every table. Used by development setups and tests;
// production schemas are owned by the indexer's migrations.
func AutoMigrate(db *gorm.DB) error {
	if err := db.AutoMigrate(schema.Models()...); err != nil {
		return fmt.Errorf("failed to migrate schema: %w", err)
	}
	return nil
}

// ConfigureConnectionPool configures the connection pool settings for a GORM database connection.
// It accesses the underlying *sql.DB and sets the pool configuration.
// If any of the pool settings are 0 or empty, reasonable defaults are used:
//   - MaxOpenConns: 20 (if 0)
//   - MaxIdleConns: 5 (if 0)
//   - ConnMaxLifetime: 5 minutes (if 0)
//   - ConnMaxIdleTime: 10 minutes (if 0)
func ConfigureConnectionPool(db *gorm.DB, maxOpenConns, maxIdleConns int, connMaxLifetime, connMaxIdleTime time.Duration) error {
	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}

	maxOpenConns, maxIdleConns, connMaxLifetime, connMaxIdleTime =
		NormalizeConnectionPoolSettings(maxOpenConns, maxIdleConns, connMaxLifetime, connMaxIdleTime)

	sqlDB.SetMaxOpenConns(maxOpenConns)
	sqlDB.SetMaxIdleConns(maxIdleConns)
	sqlDB.SetConnMaxLifetime(connMaxLifetime)
	sqlDB.SetConnMaxIdleTime(connMaxIdleTime)

	return nil
}

// NormalizeConnectionPoolSettings applies defaults and clamps pool settings into safe values.
//
// Defaults (when zero):
//   - MaxOpenConns: 20
//   - MaxIdleConns: 5
//   - ConnMaxLifetime: 5 minutes
//   - ConnMaxIdleTime: 10 minutes
//
// Notes:
//   - database/sql treats MaxOpenConns=0 as "unlimited"
//   - database/sql treats MaxIdleConns=0 as "no idle connections"
func NormalizeConnectionPoolSettings(maxOpenConns, maxIdleConns int, connMaxLifetime, connMaxIdleTime time.Duration) (int, int, time.Duration, time.Duration) {
	if maxOpenConns == 0 {
		maxOpenConns = 20
	}
	if maxIdleConns == 0 {
		maxIdleConns = 5
	}
	if connMaxLifetime == 0 {
		connMaxLifetime = 5 * time.Minute
	}
	if connMaxIdleTime == 0 {
		connMaxIdleTime = 10 * time.Minute
	}

	// Ensure MaxIdleConns doesn't exceed MaxOpenConns
	if maxIdleConns > maxOpenConns {
		maxIdleConns = maxOpenConns
	}

	return maxOpenConns, maxIdleConns, connMaxLifetime, connMaxIdleTime
}

// scoped applies the filters of a query to a statement on model
func (s *pgStore) scoped(ctx context.Context, model any, filters []Filter) *gorm.DB {
	tx := s.db.WithContext(ctx).Model(model)
	for _, f := range filters {
		if f.expr == nil {
			continue
		}
		tx = tx.Where(f.expr)
	}
	return tx
}

// find runs q against the table of T
func find[T any](ctx context.Context, s *pgStore, q Query) ([]T, error) {
	var rows []T
	tx := s.scoped(ctx, new(T), q.Filters)
	for _, o := range q.Orders {
		tx = tx.Order(clause.OrderByColumn{Column: clause.Column{Name: o.Column}, Desc: o.Desc})
	}
	if q.Limit > 0 {
		tx = tx.Limit(q.Limit)
	}
	if q.Offset > 0 {
		tx = tx.Offset(q.Offset)
	}
	if err := tx.Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

// count counts the rows of the table of T matching filters
func count[T any](ctx context.Context, s *pgStore, filters []Filter) (int64, error) {
	var n int64
	if err := s.scoped(ctx, new(T), filters).Count(&n).Error; err != nil {
		return 0, err
	}
	return n, nil
}

// FindBlocks retrieves blocks matching the query
func (s *pgStore) FindBlocks(ctx context.Context, q Query) ([]schema.Block, error) {
	rows, err := find[schema.Block](ctx, s, q)
	if err != nil {
		return nil, fmt.Errorf("failed to find blocks: %w", err)
	}
	return rows, nil
}

// CountBlocks counts blocks matching all filters
func (s *pgStore) CountBlocks(ctx context.Context, filters ...Filter) (int64, error) {
	n, err := count[schema.Block](ctx, s, filters)
	if err != nil {
		return 0, fmt.Errorf("failed to count blocks: %w", err)
	}
	return n, nil
}

// FindTransactions retrieves transactions matching the query
func (s *pgStore) FindTransactions(ctx context.Context, q Query) ([]schema.Transaction, error) {
	rows, err := find[schema.Transaction](ctx, s, q)
	if err != nil {
		return nil, fmt.Errorf("failed to find transactions: %w", err)
	}
	return rows, nil
}

// CountTransactions counts transactions matching all filters
func (s *pgStore) CountTransactions(ctx context.Context, filters ...Filter) (int64, error) {
	n, err := count[schema.Transaction](ctx, s, filters)
	if err != nil {
		return 0, fmt.Errorf("failed to count transactions: %w", err)
	}
	return n, nil
}

// FindExtrinsics retrieves extrinsics matching the query
func (s *pgStore) FindExtrinsics(ctx context.Context, q Query) ([]schema.Extrinsic, error) {
	rows, err := find[schema.Extrinsic](ctx, s, q)
	if err != nil {
		return nil, fmt.Errorf("failed to find extrinsics: %w", err)
	}
	return rows, nil
}

// CountExtrinsics counts extrinsics matching all filters
func (s *pgStore) CountExtrinsics(ctx context.Context, filters ...Filter) (int64, error) {
	n, err := count[schema.Extrinsic](ctx, s, filters)
	if err != nil {
		return 0, fmt.Errorf("failed to count extrinsics: %w", err)
	}
	return n, nil
}

// GetContractByID retrieves a contract by its snowflake id
func (s *pgStore) GetContractByID(ctx context.Context, id int64) (*schema.Contract, error) {
	var contract schema.Contract
	err := s.db.WithContext(ctx).Where("id = ?", id).First(&contract).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get contract: %w", err)
	}
	return &contract, nil
}

// FindContracts retrieves contracts matching the query
func (s *pgStore) FindContracts(ctx context.Context, q Query) ([]schema.Contract, error) {
	rows, err := find[schema.Contract](ctx, s, q)
	if err != nil {
		return nil, fmt.Errorf("failed to find contracts: %w", err)
	}
	return rows, nil
}

// CountContracts counts contracts matching all filters
func (s *pgStore) CountContracts(ctx context.Context, filters ...Filter) (int64, error) {
	n, err := count[schema.Contract](ctx, s, filters)
	if err != nil {
		return 0, fmt.Errorf("failed to count contracts: %w", err)
	}
	return n, nil
}

// GetClassByID retrieves a class by its snowflake id
func (s *pgStore) GetClassByID(ctx context.Context, id int64) (*schema.Class, error) {
	var class schema.Class
	err := s.db.WithContext(ctx).Where("id = ?", id).First(&class).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get class: %w", err)
	}
	return &class, nil
}

// FindAssets retrieves assets matching the query
func (s *pgStore) FindAssets(ctx context.Context, q Query) ([]schema.Asset, error) {
	rows, err := find[schema.Asset](ctx, s, q)
	if err != nil {
		return nil, fmt.Errorf("failed to find assets: %w", err)
	}
	return rows, nil
}

// CountAssets counts assets matching all filters
func (s *pgStore) CountAssets(ctx context.Context, filters ...Filter) (int64, error) {
	n, err := count[schema.Asset](ctx, s, filters)
	if err != nil {
		return 0, fmt.Errorf("failed to count assets: %w", err)
	}
	return n, nil
}

// AssetHolders returns the addresses holding the most asset rows of a contract, largest first
func (s *pgStore) AssetHolders(ctx context.Context, contractID int64, limit int) ([]HolderCount, error) {
	var holders []HolderCount
	err := s.db.WithContext(ctx).
		Model(&schema.Asset{}).
		Select("address, COUNT(id) AS count").
		Where("contract_id = ?", contractID).
		Group("address").
		Order("count DESC, address ASC").
		Limit(limit).
		Scan(&holders).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get asset holders: %w", err)
	}
	return holders, nil
}

// CountAssetHolders counts the distinct addresses holding assets of a contract
func (s *pgStore) CountAssetHolders(ctx context.Context, contractID int64) (int64, error) {
	var n int64
	err := s.db.WithContext(ctx).
		Model(&schema.Asset{}).
		Where("contract_id = ?", contractID).
		Distinct("address").
		Count(&n).Error
	if err != nil {
		return 0, fmt.Errorf("failed to count asset holders: %w", err)
	}
	return n, nil
}

// FindLockedAssets retrieves locked assets matching the query
func (s *pgStore) FindLockedAssets(ctx context.Context, q Query) ([]schema.LockedAsset, error) {
	rows, err := find[schema.LockedAsset](ctx, s, q)
	if err != nil {
		return nil, fmt.Errorf("failed to find locked assets: %w", err)
	}
	return rows, nil
}
