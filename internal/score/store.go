// Package score persists the best-score scalar in a local SQLite database.
// The pure-Go driver keeps the game binary free of cgo. Persistence is
// optional: callers treat a failed open as "no store" and the game proceeds
// with a zero high score.
package score

import (
	"errors"
	"fmt"
	"time"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// highScore is the single-row table holding the record.
type highScore struct {
	ID        uint `gorm:"primarykey"`
	Value     int
	UpdatedAt time.Time
}

// Store reads and writes the high score.
type Store struct {
	db *gorm.DB
}

// Open opens (or creates) the database at path and migrates the schema.
// Pass ":memory:" for an ephemeral store.
func Open(path string) (*Store, error) {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("open high score db: %w", err)
	}
	if err := db.AutoMigrate(&highScore{}); err != nil {
		return nil, fmt.Errorf("migrate high score db: %w", err)
	}
	return &Store{db: db}, nil
}

// Load returns the stored high score, or zero when none has been saved yet.
func (s *Store) Load() (int, error) {
	var row highScore
	err := s.db.First(&row, 1).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("load high score: %w", err)
	}
	return row.Value, nil
}

// Save overwrites the stored high score.
func (s *Store) Save(value int) error {
	row := highScore{ID: 1, Value: value}
	if err := s.db.Save(&row).Error; err != nil {
		return fmt.Errorf("save high score: %w", err)
	}
	return nil
}

// Close releases the underlying database connection.
func (s *Store) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
