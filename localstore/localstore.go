// Package localstore is the server-side counterpart of the client's browser
// local storage: string keys mapped to JSON-serialized values, persisted
// best-effort. A malformed stored value is treated as absent so a corrupt
// draft skips restoration instead of failing it.
package localstore

import (
	"encoding/json"
	"time"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
)

type Entry struct {
	Key       string `gorm:"primaryKey"`
	Value     string
	UpdatedAt time.Time
}

type Store struct {
	db *gorm.DB
}

// Open opens (creating if needed) the sqlite-backed store at path. Use
// ":memory:" for tests.
func Open(path string) (*Store, error) {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{})
	if err != nil {
		return nil, err
	}
	if err := db.AutoMigrate(&Entry{}); err != nil {
		return nil, err
	}
	return &Store{db: db}, nil
}

// Set marshals value as JSON under key, replacing any previous value.
func (s *Store) Set(key string, value interface{}) error {
	data, err := json.Marshal(value)
	if err != nil {
		return err
	}
	entry := Entry{Key: key, Value: string(data), UpdatedAt: time.Now()}
	return s.db.Save(&entry).Error
}

// Get unmarshals the value stored under key into dest and reports whether a
// usable value was found. Missing keys and malformed payloads both report
// false; corruption is swallowed, not surfaced.
func (s *Store) Get(key string, dest interface{}) bool {
	var entry Entry
	if err := s.db.First(&entry, "key = ?", key).Error; err != nil {
		return false
	}
	if err := json.Unmarshal([]byte(entry.Value), dest); err != nil {
		return false
	}
	return true
}

func (s *Store) Remove(key string) error {
	return s.db.Delete(&Entry{}, "key = ?", key).Error
}

// PurgeOlderThan removes entries with the given key prefix not updated since
// the cutoff. Returns the number of rows removed.
func (s *Store) PurgeOlderThan(prefix string, cutoff time.Time) (int64, error) {
	res := s.db.Where("key LIKE ? AND updated_at < ?", prefix+"%", cutoff).Delete(&Entry{})
	return res.RowsAffected, res.Error
}
