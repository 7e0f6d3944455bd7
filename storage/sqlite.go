package storage

import (
	"encoding/json"
	"errors"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/gorm/logger"
)

// record is one row of the key/value table backing the SQLite driver.
type record struct {
	Key   string `gorm:"primaryKey;column:key"`
	Value string `gorm:"column:value;not null"`
}

func (record) TableName() string { return "records" }

// SQLite stores every record in a single upsert-on-save table, keeping the
// whole-record replacement semantics of the port.
type SQLite struct {
	db *gorm.DB
}

func NewSQLite(path string) (*SQLite, error) {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return nil, err
	}
	if err := db.AutoMigrate(&record{}); err != nil {
		return nil, err
	}
	return &SQLite{db: db}, nil
}

func (s *SQLite) Load(key string, dest any) error {
	var rec record
	err := s.db.First(&rec, "key = ?", key).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNoRecord
	}
	if err != nil {
		return err
	}
	return json.Unmarshal([]byte(rec.Value), dest)
}

func (s *SQLite) Save(key string, value any) error {
	data, err := json.Marshal(value)
	if err != nil {
		return err
	}
	rec := record{Key: key, Value: string(data)}
	return s.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value"}),
	}).Create(&rec).Error
}

func (s *SQLite) Delete(key string) error {
	return s.db.Delete(&record{}, "key = ?", key).Error
}
