// Package postgres opens the GORM connection used by the postgres storage driver
// and owns its schema migration.
//
// Usage:
//
//	db, err := postgres.Open(postgres.DSN(cfg.DBHost, cfg.DBPort, cfg.DBUser, cfg.DBPassword, cfg.DBName, cfg.DBSslMode))
//	if err != nil {
//	    return err
//	}
//	if err := postgres.Migrate(db); err != nil {
//	    return err
//	}
//	orders := orderrepo.NewGormOrderRepository(db)
//	tickets := ticketrepo.NewGormTicketRepository(db)
package postgres

import (
	"fmt"

	"ordering/internal/adapters/out/postgres/orderrepo"
	"ordering/internal/adapters/out/postgres/ticketrepo"

	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// DSN builds a libpq style connection string.
func DSN(host, port, user, password, name, sslMode string) string {
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		host, port, user, password, name, sslMode,
	)
}

// Open connects to Postgres. Driver errors are translated to gorm sentinels
// such as gorm.ErrDuplicatedKey.
func Open(dsn string) (*gorm.DB, error) {
	db, err := gorm.Open(postgresdriver.Open(dsn), Config())
	if err != nil {
		return nil, fmt.Errorf("open postgres: %w", err)
	}
	return db, nil
}

// Config is the gorm configuration shared by Open and the integration tests.
func Config() *gorm.Config {
	return &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Warn),
	}
}

// Migrate creates or updates the orders and kitchen_tickets tables.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(&orderrepo.OrderDTO{}, &ticketrepo.TicketDTO{}); err != nil {
		return fmt.Errorf("migrate schema: %w", err)
	}
	return nil
}
