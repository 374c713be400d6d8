package db

import (
	"fmt"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/gorm/logger"
)

// Keys the dashboard persists. The post list is the only structured value;
// the rest are single strings.
const (
	KeyPosts    = "communityPosts"
	KeyTheme    = "theme"
	KeyLanguage = "language"
)

// Setting is one row of the key-value settings table. Everything the
// dashboard stores durably lives under a handful of string keys.
type Setting struct {
	Key   string `gorm:"primaryKey;size:64"`
	Value string `gorm:"type:text"`
}

// KV is the local single-device settings store backed by SQLite.
type KV struct {
	conn *gorm.DB
}

// Open connects to the database at path, creating it and the settings table
// on first run. Use ":memory:" in tests.
func Open(path string) (*KV, error) {
	conn, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("open settings db: %w", err)
	}
	if err := conn.AutoMigrate(&Setting{}); err != nil {
		return nil, fmt.Errorf("migrate settings db: %w", err)
	}
	return &KV{conn: conn}, nil
}

// Get returns the stored value for key and whether the key exists. A read
// error is reported as absence; callers fall back to defaults.
func (kv *KV) Get(key string) (string, bool) {
	var s Setting
	if err := kv.conn.First(&s, "key = ?", key).Error; err != nil {
		return "", false
	}
	return s.Value, true
}

// Set stores value under key, replacing any previous value.
func (kv *KV) Set(key, value string) error {
	return kv.conn.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value"}),
	}).Create(&Setting{Key: key, Value: value}).Error
}
