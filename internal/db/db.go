package db

import (
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	migrate "github.com/golang-migrate/migrate/v4"
	// Blank imports register the postgres driver and file source for golang-migrate.
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/wingseng/parts-catalog/internal/models"
)

// ConnectAndMigrate opens the configured database and brings the schema up to
// date. An empty DSN falls back to a local sqlite file for development; a
// postgres DSN is retried a few times so the server survives a database that
// is still booting.
func ConnectAndMigrate(dsn string) (*gorm.DB, error) {
	dsn = NormalizeDSN(dsn)
	logLevel := logger.Silent
	if os.Getenv("DB_DEBUG") == "1" {
		logLevel = logger.Info
	}
	cfg := &gorm.Config{Logger: logger.Default.LogMode(logLevel)}

	var conn *gorm.DB
	var err error
	if IsPostgres(dsn) {
		for i := 0; i < 10; i++ {
			conn, err = gorm.Open(postgres.Open(dsn), cfg)
			if err == nil {
				break
			}
			log.Println("retrying DB connection...", err)
			time.Sleep(2 * time.Second)
		}
		if err != nil {
			return nil, fmt.Errorf("connect database after retries: %w", err)
		}
	} else {
		if dsn == "" {
			dsn = "parts.db"
		}
		conn, err = gorm.Open(sqlite.Open(dsn), cfg)
		if err != nil {
			return nil, fmt.Errorf("open sqlite %s: %w", dsn, err)
		}
	}

	if pingErr := conn.Exec("SELECT 1").Error; pingErr != nil {
		return nil, fmt.Errorf("db ping failed: %w", pingErr)
	}

	// MIGRATIONS=1 runs SQL migrations via golang-migrate (postgres);
	// otherwise AutoMigrate keeps dev and tests convenient.
	if v := strings.ToLower(os.Getenv("MIGRATIONS")); v == "1" || v == "true" || v == "yes" {
		if !IsPostgres(dsn) {
			return nil, fmt.Errorf("SQL migrations require a postgres DSN")
		}
		if err := runSQLMigrations(dsn); err != nil {
			return nil, fmt.Errorf("sql migrations failed: %w", err)
		}
	} else {
		if err := AutoMigrate(conn); err != nil {
			return nil, err
		}
	}

	if v := strings.ToLower(os.Getenv("DB_SEED")); v == "1" || v == "true" || v == "yes" {
		Seed(conn)
	}
	return conn, nil
}

// AutoMigrate creates/updates all application tables.
func AutoMigrate(conn *gorm.DB) error {
	for _, m := range []any{&models.Product{}, &models.Inquiry{}, &models.Quote{}, &models.QuoteItem{}, &models.AdminUser{}} {
		if err := conn.AutoMigrate(m); err != nil {
			return fmt.Errorf("automigrate %T: %w", m, err)
		}
	}
	return nil
}

func runSQLMigrations(dsn string) error {
	m, err := migrate.New("file://migrations", dsn)
	if err != nil {
		return err
	}
	if err = m.Up(); err != nil && err != migrate.ErrNoChange {
		return err
	}
	return nil
}

// Seed inserts a small demo catalog so a fresh dev database has something to
// browse. Rows are keyed by part number and never duplicated.
func Seed(conn *gorm.DB) {
	price := func(v float64) *float64 { return &v }
	lead := func(d int) *int { return &d }
	parts := []models.Product{
		{Name: "Oil Filter", Brand: "Lister Petter", Model: "LPW", PartNumber: "LP-201", Category: "engine-components", ShortDescription: "Spin-on oil filter for LPW series engines", Price: price(1000), Currency: "KES", StockQuantity: 25, CompatibleEngines: []string{"LPW2", "LPW3", "LPW4"}},
		{Name: "Fuel Injection Pump", Brand: "Lister Petter", Model: "LPWS", PartNumber: "LP-455", Category: "fuel-system", ShortDescription: "Genuine fuel injection pump", Price: price(48000), Currency: "KES", StockQuantity: 3, CompatibleEngines: []string{"LPWS2", "LPWS3"}},
		{Name: "Head Gasket Set", Brand: "Perkins", Model: "400 Series", PartNumber: "PK-310", Category: "gaskets-seals", ShortDescription: "Complete top gasket set", Price: price(12500), Currency: "KES", StockQuantity: 0, LeadTimeDays: lead(7), CompatibleEngines: []string{"400 Series", "403D-15"}},
		{Name: "Starter Motor 12V", Brand: "Cummins", PartNumber: "CM-12S", Category: "electrical", ShortDescription: "12V starter motor", Price: price(32000), Currency: "KES", StockQuantity: 4, CompatibleEngines: []string{"4BT", "6BT"}},
		{Name: "Alternator Drive Belt", Brand: "CAT", PartNumber: "CT-900", Category: "belts-hoses", ShortDescription: "Drive belt for C4.4 generator sets", Price: price(5500), Currency: "KES", StockQuantity: 0, LeadTimeDays: lead(21), CompatibleEngines: []string{"C4.4"}},
	}
	for _, p := range parts {
		var existing models.Product
		if err := conn.Where("part_number = ?", p.PartNumber).First(&existing).Error; err == gorm.ErrRecordNotFound {
			conn.Create(&p)
		}
	}
}
