package storage

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// kvEntry is one row of the kv_entries table
type kvEntry struct {
	Key       string    `gorm:"column:kv_key;primaryKey;size:191"`
	Value     []byte    `gorm:"column:kv_value;type:longblob;not null"`
	UpdatedAt time.Time `gorm:"column:updated_at"`
}

func (kvEntry) TableName() string {
	return "kv_entries"
}

// GormBackend stores values in a SQL table through gorm.
type GormBackend struct {
	DB *gorm.DB
}

// OpenMySQL connects to MySQL and migrates the kv_entries table.
func OpenMySQL(dsn string) (*GormBackend, error) {
	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to MySQL: %w", err)
	}
	return NewGormBackend(db)
}

// NewGormBackend migrates the kv_entries table on an existing connection.
func NewGormBackend(db *gorm.DB) (*GormBackend, error) {
	if err := db.AutoMigrate(&kvEntry{}); err != nil {
		return nil, fmt.Errorf("failed to migrate kv_entries: %w", err)
	}
	return &GormBackend{DB: db}, nil
}

func (g *GormBackend) Get(ctx context.Context, key string) ([]byte, error) {
	var entry kvEntry
	if err := g.DB.WithContext(ctx).First(&entry, "kv_key = ?", key).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return entry.Value, nil
}

func (g *GormBackend) Set(ctx context.Context, key string, value []byte) error {
	entry := kvEntry{Key: key, Value: value, UpdatedAt: time.Now()}
	return g.DB.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "kv_key"}},
		DoUpdates: clause.AssignmentColumns([]string{"kv_value", "updated_at"}),
	}).Create(&entry).Error
}

func (g *GormBackend) Delete(ctx context.Context, key string) error {
	return g.DB.WithContext(ctx).Delete(&kvEntry{}, "kv_key = ?", key).Error
}

func (g *GormBackend) Close() error {
	sqlDB, err := g.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
