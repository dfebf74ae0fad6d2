// Package db bootstraps the GORM database connection.
package db

import (
	"fmt"
	"log"
	"os"
	"time"

	gpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"

	authentity "broker_backend/internal/feature/auth/domain/entity"
	quotesentity "broker_backend/internal/feature/quotes/domain/entity"
	tradingentity "broker_backend/internal/feature/trading/domain/entity"
)

// OpenDB connects to Postgres using environment configuration, retrying for
// up to a minute so the service survives a database that is still starting.
// With RUN_MIGRATIONS=true the schema is migrated on startup.
func OpenDB() *gorm.DB {
	user := os.Getenv("DB_USER")
	pass := os.Getenv("DB_PASSWORD")
	name := os.Getenv("DB_NAME")
	host := os.Getenv("DB_HOST")
	port := os.Getenv("DB_PORT")
	if port == "" {
		port = "5432"
	}

	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable TimeZone=UTC",
		host, port, user, pass, name)

	var (
		db  *gorm.DB
		err error
	)

	deadline := time.Now().Add(60 * time.Second)
	for {
		// TranslateError turns driver unique-key violations into
		// gorm.ErrDuplicatedKey, which the adapters depend on.
		db, err = gorm.Open(gpostgres.Open(dsn), &gorm.Config{TranslateError: true})
		if err == nil {
			break
		}
		if time.Now().After(deadline) {
			log.Fatalf("DB connect failed after 60s: %v", err)
		}
		log.Printf("DB connect failed, retrying...: %v", err)
		time.Sleep(3 * time.Second)
	}

	if os.Getenv("RUN_MIGRATIONS") == "true" {
		if err := db.AutoMigrate(
			&authentity.User{},
			&quotesentity.Quote{},
			&tradingentity.Holding{},
			&tradingentity.Transaction{},
		); err != nil {
			log.Fatalf("failed to migrate: %v", err)
		}
	}

	return db
}
