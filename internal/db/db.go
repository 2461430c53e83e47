package db

import (
	"context"
	"fmt"

	"github.com/MyelinBots/nabeatsu-go/config"
	"github.com/MyelinBots/nabeatsu-go/internal/log"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// DB wraps the process-wide gorm handle. Repositories receive it by injection.
type DB struct {
	DB *gorm.DB
}

func NewDatabase(cfg config.DBConfig) (*DB, error) {
	d, err := Open(cfg.DSN())
	if err != nil {
		return nil, err
	}

	sqlDB, err := d.DB.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(cfg.MaxOpenConns)
	sqlDB.SetMaxIdleConns(cfg.MaxIdleConns)
	sqlDB.SetConnMaxIdleTime(cfg.ConnMaxIdleTime())
	sqlDB.SetConnMaxLifetime(cfg.ConnMaxLifetime())

	log.Info.Printf("connected to postgres %s:%d/%s", cfg.Host, cfg.Port, cfg.DataBase)
	return d, nil
}

// Open connects with dsn, which may be key/value or a postgres:// URL, using
// the driver's default pool.
func Open(dsn string) (*DB, error) {
	gdb, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger:         log.GormLogger(),
		TranslateError: true,
	})
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	return &DB{DB: gdb}, nil
}

func (d *DB) Ping(ctx context.Context) error {
	sqlDB, err := d.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}

func (d *DB) Close() error {
	sqlDB, err := d.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
