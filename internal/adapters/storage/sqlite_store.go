package storage

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/mattn/go-sqlite3"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/contentply/contentply/internal/config"
	"github.com/contentply/contentply/internal/domain"
	"github.com/contentply/contentply/internal/logging"
	"github.com/contentply/contentply/internal/ports"
)

const defaultMaxRetries = 5

// SQLiteStore implements ports.StateStore as a key/value table using GORM
type SQLiteStore struct {
	db *gorm.DB
}

// Verify interface compliance at compile time
var _ ports.StateStore = (*SQLiteStore)(nil)

// NewSQLiteStore opens (and creates if needed) the state database at dbPath
func NewSQLiteStore(dbPath string) (*SQLiteStore, error) {
	dbPath = config.ExpandPath(dbPath)

	if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
		return nil, fmt.Errorf("failed to create directory: %w", err)
	}

	db, err := gorm.Open(sqlite.Open(dbPath), &gorm.Config{
		NowFunc: func() time.Time { return time.Now().UTC() },
		Logger:  newGormLogger(),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// Enable WAL mode for concurrent access
	db.Exec("PRAGMA journal_mode=WAL")
	db.Exec("PRAGMA busy_timeout=5000")
	db.Exec("PRAGMA synchronous=NORMAL")

	if err := db.AutoMigrate(&StateEntryModel{}); err != nil {
		return nil, fmt.Errorf("failed to migrate state_entries schema: %w", err)
	}

	logging.Logger.Debug("State store opened", "path", dbPath)
	return &SQLiteStore{db: db}, nil
}

// Close closes the database connection
func (s *SQLiteStore) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// Get implements StateStore.Get
func (s *SQLiteStore) Get(ctx context.Context, key string) ([]byte, error) {
	var entry StateEntryModel
	err := withRetry(func() error {
		return s.db.WithContext(ctx).Where("`key` = ?", key).First(&entry).Error
	}, defaultMaxRetries)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrStateNotFound
		}
		return nil, fmt.Errorf("failed to read state entry %s: %w", key, err)
	}
	return []byte(entry.Value), nil
}

// Put implements StateStore.Put
func (s *SQLiteStore) Put(ctx context.Context, key string, value []byte) error {
	entry := StateEntryModel{Key: key, Value: string(value)}
	err := withRetry(func() error {
		return s.db.WithContext(ctx).Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "key"}},
			DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
		}).Create(&entry).Error
	}, defaultMaxRetries)
	if err != nil {
		return fmt.Errorf("failed to write state entry %s: %w", key, err)
	}
	return nil
}

// withRetry retries fn while SQLite reports the database as busy or locked
func withRetry(fn func() error, maxRetries int) error {
	for i := 0; i < maxRetries; i++ {
		err := fn()
		if err == nil {
			return nil
		}

		var sqliteErr sqlite3.Error
		if errors.As(err, &sqliteErr) && (sqliteErr.Code == sqlite3.ErrBusy || sqliteErr.Code == sqlite3.ErrLocked) {
			time.Sleep(time.Millisecond * time.Duration(50*(i+1)))
			continue
		}

		return err
	}
	return fmt.Errorf("operation failed after %d retries", maxRetries)
}
