package db

import (
	"context"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// PostgresDB wraps a gorm connection with the handful of operations the
// repositories need.
type PostgresDB struct {
	ConnectionString string
	DB               *gorm.DB
}

func NewPostgresDB(connectionString string) *PostgresDB {
	return &PostgresDB{ConnectionString: connectionString}
}

func (db *PostgresDB) Init() error {
	gdb, err := gorm.Open(postgres.Open(db.ConnectionString), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return err
	}
	db.DB = gdb
	return nil
}

func (db *PostgresDB) Close() error {
	sqlDB, err := db.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

func (db *PostgresDB) Migrate(models ...interface{}) error {
	return db.DB.AutoMigrate(models...)
}

func (db *PostgresDB) Create(ctx context.Context, model interface{}) error {
	return db.DB.WithContext(ctx).Create(model).Error
}

func (db *PostgresDB) Save(ctx context.Context, model interface{}) error {
	return db.DB.WithContext(ctx).Save(model).Error
}

func (db *PostgresDB) Find(ctx context.Context, dest interface{}, query interface{}, args ...interface{}) error {
	return db.DB.WithContext(ctx).Where(query, args...).Find(dest).Error
}

// FindPage loads a sorted slice of a query, offset/limit style. order is a
// raw ORDER BY clause, so callers must build it from known column names only.
func (db *PostgresDB) FindPage(ctx context.Context, dest interface{}, order string, offset, limit int, query interface{}, args ...interface{}) error {
	return db.DB.WithContext(ctx).Where(query, args...).Order(order).Offset(offset).Limit(limit).Find(dest).Error
}

// First loads a single row; gorm.ErrRecordNotFound when nothing matches.
func (db *PostgresDB) First(ctx context.Context, dest interface{}, query interface{}, args ...interface{}) error {
	return db.DB.WithContext(ctx).Where(query, args...).First(dest).Error
}

func (db *PostgresDB) Count(ctx context.Context, model interface{}, query interface{}, args ...interface{}) (int64, error) {
	var count int64
	err := db.DB.WithContext(ctx).Model(model).Where(query, args...).Count(&count).Error
	return count, err
}

// RawScan runs a raw statement and scans its result, used for single-trip
// atomic updates with RETURNING.
func (db *PostgresDB) RawScan(ctx context.Context, dest interface{}, sql string, args ...interface{}) error {
	return db.DB.WithContext(ctx).Raw(sql, args...).Scan(dest).Error
}

// Transaction runs fn inside one transaction on a raw gorm handle.
func (db *PostgresDB) Transaction(ctx context.Context, fn func(tx *gorm.DB) error) error {
	return db.DB.WithContext(ctx).Transaction(fn)
}
