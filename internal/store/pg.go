package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
	"gorm.io/plugin/dbresolver"

	"github.com/assethub-tools/nft-migrator/internal/domain"
	"github.com/assethub-tools/nft-migrator/internal/store/schema"
)

// DBConfig holds database connection settings
type DBConfig struct {
	DSN string
	// ReadDSN, when set, routes read queries to a replica
	ReadDSN         string
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
	ConnMaxIdleTime time.Duration
}

// OpenDB opens a GORM PostgreSQL connection, attaches the read replica when
// configured, and applies connection pool settings
func OpenDB(cfg DBConfig) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(cfg.DSN), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if cfg.ReadDSN != "" {
		err = db.Use(dbresolver.Register(dbresolver.Config{
			Replicas: []gorm.Dialector{postgres.Open(cfg.ReadDSN)},
			Policy:   dbresolver.RandomPolicy{},
		}))
		if err != nil {
			return nil, fmt.Errorf("failed to register read replica: %w", err)
		}
	}

	if err := configureConnectionPool(db, cfg); err != nil {
		return nil, err
	}

	return db, nil
}

func configureConnectionPool(db *gorm.DB, cfg DBConfig) error {
	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}

	maxOpen := cfg.MaxOpenConns
	if maxOpen == 0 {
		maxOpen = 20
	}
	maxIdle := cfg.MaxIdleConns
	if maxIdle == 0 {
		maxIdle = 5
	}
	if maxIdle > maxOpen {
		maxIdle = maxOpen
	}
	lifetime := cfg.ConnMaxLifetime
	if lifetime == 0 {
		lifetime = 5 * time.Minute
	}
	idleTime := cfg.ConnMaxIdleTime
	if idleTime == 0 {
		idleTime = 10 * time.Minute
	}

	sqlDB.SetMaxOpenConns(maxOpen)
	sqlDB.SetMaxIdleConns(maxIdle)
	sqlDB.SetConnMaxLifetime(lifetime)
	sqlDB.SetConnMaxIdleTime(idleTime)

	return nil
}

// Migrate creates or updates the journal schema
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&schema.ClaimRecord{})
}

type pgStore struct {
	db *gorm.DB
}

// NewPGStore creates a new PostgreSQL store instance
func NewPGStore(db *gorm.DB) Store {
	return &pgStore{db: db}
}

// CreateClaimRecord journals one submitted extrinsic outcome
func (s *pgStore) CreateClaimRecord(ctx context.Context, record *schema.ClaimRecord) error {
	if err := s.db.WithContext(ctx).Create(record).Error; err != nil {
		return fmt.Errorf("failed to create claim record: %w", err)
	}
	return nil
}

// ListClaimRecords retrieves journal rows for a target collection, newest first
func (s *pgStore) ListClaimRecords(ctx context.Context, target domain.CollectionID, limit, offset int) ([]schema.ClaimRecord, error) {
	var records []schema.ClaimRecord
	err := s.db.WithContext(ctx).
		Where("target_collection = ?", string(target)).
		Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&records).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to list claim records: %w", err)
	}
	return records, nil
}

// ListClaimRecordsByAccount retrieves journal rows for a claiming account,
// newest first
func (s *pgStore) ListClaimRecordsByAccount(ctx context.Context, account string, limit, offset int) ([]schema.ClaimRecord, error) {
	var records []schema.ClaimRecord
	err := s.db.WithContext(ctx).
		Where("account = ?", account).
		Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&records).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to list claim records: %w", err)
	}
	return records, nil
}
