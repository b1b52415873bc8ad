package blob

import (
	"errors"
	"fmt"
	"time"

	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/driver/sqlserver"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	gormlogger "gorm.io/gorm/logger"

	"github.com/shashiranjanraj/dukaan/config"
)

// blobRow is the key/value table backing the database driver.
type blobRow struct {
	Key   string `gorm:"primaryKey;size:191;column:blob_key"`
	Value []byte `gorm:"column:blob_value"`
}

func (blobRow) TableName() string { return "blobs" }

// databaseStore persists blobs as rows in a relational table. The driver
// (sqlite by default) and DSN come from config, mirroring the rest of the
// storefront's layered configuration.
type databaseStore struct {
	db *gorm.DB
}

func newDatabaseStore() (*databaseStore, error) {
	driver := config.DatabaseDriver()
	dsn := config.DatabaseDSN()

	dialector, err := buildDialector(driver, dsn)
	if err != nil {
		return nil, fmt.Errorf("database: build dialector: %w", err)
	}

	gormCfg := &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent), // pkg/logger owns output
	}

	db, err := gorm.Open(dialector, gormCfg)
	if err != nil {
		return nil, fmt.Errorf("database: open: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("database: get sql.DB: %w", err)
	}
	sqlDB.SetMaxOpenConns(25)
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetConnMaxLifetime(5 * time.Minute)

	if err := sqlDB.Ping(); err != nil {
		return nil, fmt.Errorf("database: ping: %w", err)
	}

	if err := db.AutoMigrate(&blobRow{}); err != nil {
		return nil, fmt.Errorf("database: migrate blobs table: %w", err)
	}

	return &databaseStore{db: db}, nil
}

func buildDialector(driver, dsn string) (gorm.Dialector, error) {
	switch driver {
	case "sqlite":
		return sqlite.Open(dsn), nil
	case "postgres":
		return postgres.Open(dsn), nil
	case "mysql":
		return mysql.Open(dsn), nil
	case "sqlserver":
		return sqlserver.Open(dsn), nil
	default:
		return nil, fmt.Errorf("unsupported DB_DRIVER %q (supported: sqlite, postgres, mysql, sqlserver)", driver)
	}
}

func (s *databaseStore) Get(key string) ([]byte, error) {
	var row blobRow
	err := s.db.First(&row, "blob_key = ?", key).Error
	if err != nil {
		return nil, fmt.Errorf("blob/database: get %s: %w", key, err)
	}
	return row.Value, nil
}

func (s *databaseStore) Put(key string, value []byte) error {
	row := blobRow{Key: key, Value: value}
	err := s.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "blob_key"}},
		DoUpdates: clause.AssignmentColumns([]string{"blob_value"}),
	}).Create(&row).Error
	if err != nil {
		return fmt.Errorf("blob/database: put %s: %w", key, err)
	}
	return nil
}

func (s *databaseStore) Exists(key string) bool {
	var row blobRow
	err := s.db.Select("blob_key").First(&row, "blob_key = ?", key).Error
	return !errors.Is(err, gorm.ErrRecordNotFound) && err == nil
}

func (s *databaseStore) Delete(key string) error {
	if err := s.db.Delete(&blobRow{}, "blob_key = ?", key).Error; err != nil {
		return fmt.Errorf("blob/database: delete %s: %w", key, err)
	}
	return nil
}
