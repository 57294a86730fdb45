// Package database opens the SQLite store, migrates the schema and seeds the
// administrator account and sample content on first start.
package database

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/folio-panel/folio/config"
	"github.com/folio-panel/folio/database/model"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Migrate creates or updates the tables of every entity.
func Migrate(db *gorm.DB) error {
	models := []any{
		&model.User{},
		&model.Profile{},
		&model.Experience{},
		&model.Education{},
		&model.Project{},
		&model.Achievement{},
		&model.Technology{},
	}
	for _, m := range models {
		if err := db.AutoMigrate(m); err != nil {
			return fmt.Errorf("auto migrate %T: %w", m, err)
		}
	}
	return nil
}

// OpenDB opens the database file, creating its directory when needed.
// It does not touch the schema.
func OpenDB(dbPath string) (*gorm.DB, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), fs.ModePerm); err != nil {
		return nil, err
	}

	var gormLogger logger.Interface
	if config.IsDebug() {
		gormLogger = logger.Default
	} else {
		gormLogger = logger.Discard
	}

	c := &gorm.Config{
		Logger:                 gormLogger,
		SkipDefaultTransaction: true,
		PrepareStmt:            true,
	}

	dsn := dbPath + "?_journal_mode=WAL&_synchronous=NORMAL&_busy_timeout=5000"
	db, err := gorm.Open(sqlite.Open(dsn), c)
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	if _, err = sqlDB.Exec("PRAGMA cache_size = -64000;"); err != nil {
		return nil, err
	}
	if _, err = sqlDB.Exec("PRAGMA temp_store = MEMORY;"); err != nil {
		return nil, err
	}
	return db, nil
}

// InitDB opens the store and runs the bootstrap routine. It is safe to call
// on every start.
func InitDB(dbPath string) (*gorm.DB, error) {
	db, err := OpenDB(dbPath)
	if err != nil {
		return nil, err
	}
	if err := Bootstrap(db); err != nil {
		_ = CloseDB(db)
		return nil, err
	}
	return db, nil
}

// Bootstrap creates the schema, the default administrator and the sample
// content. Existing rows are never duplicated.
func Bootstrap(db *gorm.DB) error {
	if err := Migrate(db); err != nil {
		return err
	}
	if err := EnsureAdminAccount(db, defaultUsername, defaultPassword); err != nil {
		return err
	}
	return EnsureSampleContent(db)
}

func CloseDB(db *gorm.DB) error {
	if db == nil {
		return nil
	}
	if err := Checkpoint(db); err != nil {
		return err
	}
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

func IsNotFound(err error) bool {
	return errors.Is(err, gorm.ErrRecordNotFound)
}

func isTableEmpty(db *gorm.DB, m any) (bool, error) {
	var count int64
	err := db.Model(m).Count(&count).Error
	return count == 0, err
}

// Checkpoint flushes the WAL into the main database file.
func Checkpoint(db *gorm.DB) error {
	return db.Exec("PRAGMA wal_checkpoint;").Error
}
