package sqlite

import (
	"context"
	"fmt"
	"time"

	sqlite "github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	gormlogger "gorm.io/gorm/logger"

	"github.com/manthan-jsharma/coding-contest-tracker-Backend/internal/domain"
	"github.com/manthan-jsharma/coding-contest-tracker-Backend/internal/logger"
)

// Store is the canonical contest store. SQLite is opened single-writer
// so upsert transactions serialize naturally.
type Store struct {
	db *gorm.DB
}

// Open establishes the SQLite connection and migrates the schema.
// Use path ":memory:" for tests.
func Open(path string, log logger.Logger) (*Store, error) {
	if path == "" {
		return nil, fmt.Errorf("database path is required")
	}

	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open sqlite at %s: %w", path, err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(1)

	if err := db.AutoMigrate(&domain.Contest{}); err != nil {
		return nil, fmt.Errorf("failed to migrate contests schema: %w", err)
	}

	if log != nil {
		log.Info("contest store initialized", logger.String("path", path))
	}
	return &Store{db: db}, nil
}

// Upsert atomically inserts the contest or replaces all mutable fields
// of the stored row with the same ID. It reports which branch occurred.
//
// The insert attempt and the fallback update run inside one transaction
// so the classification cannot race with a concurrent run: the insert
// uses ON CONFLICT DO NOTHING and its affected-row count decides the
// branch. CreatedAt is preserved on the update branch.
func (s *Store) Upsert(ctx context.Context, c domain.Contest) (inserted bool, err error) {
	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Clauses(clause.OnConflict{DoNothing: true}).Create(&c)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 1 {
			inserted = true
			return nil
		}
		return tx.Model(&domain.Contest{}).
			Where("id = ?", c.ID).
			Updates(map[string]any{
				"name":         c.Name,
				"url":          c.URL,
				"platform":     c.Platform,
				"start_time":   c.StartTime,
				"end_time":     c.EndTime,
				"duration_sec": c.DurationSec,
			}).Error
	})
	if err != nil {
		return false, fmt.Errorf("failed to upsert contest %s: %w", c.ID, err)
	}
	return inserted, nil
}

// Get retrieves one contest by ID. Returns (nil, nil) when absent.
func (s *Store) Get(ctx context.Context, id string) (*domain.Contest, error) {
	var c domain.Contest
	err := s.db.WithContext(ctx).First(&c, "id = ?", id).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get contest %s: %w", id, err)
	}
	return &c, nil
}

// List returns stored contests ascending by start time. A non-empty
// platform restricts the result to that platform.
func (s *Store) List(ctx context.Context, platform domain.Platform) ([]domain.Contest, error) {
	q := s.db.WithContext(ctx).Order("start_time asc")
	if platform != "" {
		q = q.Where("platform = ?", platform)
	}
	var contests []domain.Contest
	if err := q.Find(&contests).Error; err != nil {
		return nil, fmt.Errorf("failed to list contests: %w", err)
	}
	return contests, nil
}

// Count reports the number of stored contests.
func (s *Store) Count(ctx context.Context) (int64, error) {
	var n int64
	if err := s.db.WithContext(ctx).Model(&domain.Contest{}).Count(&n).Error; err != nil {
		return 0, fmt.Errorf("failed to count contests: %w", err)
	}
	return n, nil
}

// DeleteEndedBefore removes contests on the given platforms whose end
// time is known and older than cutoff. Contests without an end time are
// never swept.
func (s *Store) DeleteEndedBefore(ctx context.Context, cutoff time.Time, platforms []domain.Platform) (int64, error) {
	if len(platforms) == 0 {
		return 0, nil
	}
	res := s.db.WithContext(ctx).
		Where("platform IN ? AND end_time IS NOT NULL AND end_time < ?", platforms, cutoff).
		Delete(&domain.Contest{})
	if res.Error != nil {
		return 0, fmt.Errorf("failed to delete stale contests: %w", res.Error)
	}
	return res.RowsAffected, nil
}

// Ping verifies the underlying connection, for readiness checks.
func (s *Store) Ping(ctx context.Context) error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}
