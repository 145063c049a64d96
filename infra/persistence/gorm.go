// Package persistence provides the database-backed implementation of the
// snapshot port for deployments that want snapshots to survive the process.
package persistence

import (
	"context"
	"errors"
	"time"

	"github.com/securebank/securebank/pkg/persistence"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type snapshotRow struct {
	Key       string `gorm:"primaryKey;column:key"`
	Data      []byte `gorm:"type:jsonb"`
	UpdatedAt time.Time
}

func (snapshotRow) TableName() string { return "snapshots" }

// GormStore persists one snapshot row per key.
type GormStore struct {
	db *gorm.DB
}

// Open connects to Postgres and migrates the snapshots table.
func Open(databaseURL string) (*GormStore, error) {
	if databaseURL == "" {
		return nil, errors.New("database URL is not set")
	}
	db, err := gorm.Open(postgres.Open(databaseURL), &gorm.Config{SkipDefaultTransaction: true})
	if err != nil {
		return nil, err
	}
	if err := db.AutoMigrate(&snapshotRow{}); err != nil {
		return nil, err
	}
	return &GormStore{db: db}, nil
}

// Load reads the snapshot row for key; a missing row means never saved.
func (g *GormStore) Load(ctx context.Context, key string) (persistence.Record, bool, error) {
	var row snapshotRow
	err := g.db.WithContext(ctx).First(&row, "key = ?", key).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return persistence.Record(row.Data), true, nil
}

// Save upserts the snapshot row for key.
func (g *GormStore) Save(ctx context.Context, key string, rec persistence.Record) error {
	row := snapshotRow{Key: key, Data: rec, UpdatedAt: time.Now()}
	return g.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "key"}},
			DoUpdates: clause.AssignmentColumns([]string{"data", "updated_at"}),
		}).
		Create(&row).Error
}
