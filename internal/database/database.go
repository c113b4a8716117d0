package database

import (
	"database/sql"
	"log"
	"net/url"
	"strings"

	"github.com/lib/pq"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/example/maya-portal/internal/models"
	"github.com/example/maya-portal/internal/store"
)

var db *gorm.DB

// Connect initializes the database connection, runs migrations and
// seeds the demo catalog.
func Connect(dsn string) *gorm.DB {
	if db != nil {
		return db
	}

	if err := ensureDatabase(dsn); err != nil {
		log.Fatalf("failed to ensure database: %v", err)
	}

	conn, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Warn),
		TranslateError: true,
	})
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}

	if err := migrate(conn); err != nil {
		log.Fatalf("database migration failed: %v", err)
	}

	if err := seed(conn); err != nil {
		log.Fatalf("database seeding failed: %v", err)
	}

	db = conn
	return db
}

// DB exposes the initialized gorm.DB instance.
func DB() *gorm.DB {
	return db
}

func migrate(conn *gorm.DB) error {
	migrations := []interface{}{
		&models.User{},
		&models.Hotel{},
		&models.Restaurant{},
		&models.Experience{},
		&models.Product{},
	}

	for _, migration := range migrations {
		if err := conn.AutoMigrate(migration); err != nil {
			return err
		}
	}

	return nil
}

// seed inserts the demo catalog rows when the tables are empty.
func seed(conn *gorm.DB) error {
	var count int64
	if err := conn.Model(&models.Hotel{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	hotels := store.SeedHotels()
	if err := conn.Create(&hotels).Error; err != nil {
		return err
	}
	restaurants := store.SeedRestaurants()
	if err := conn.Create(&restaurants).Error; err != nil {
		return err
	}
	experiences := store.SeedExperiences()
	if err := conn.Create(&experiences).Error; err != nil {
		return err
	}
	products := store.SeedProducts()
	return conn.Create(&products).Error
}

// ensureDatabase creates the target database when it does not exist yet.
func ensureDatabase(dsn string) error {
	if !strings.HasPrefix(dsn, "postgres://") && !strings.HasPrefix(dsn, "postgresql://") {
		return nil
	}

	parsed, err := url.Parse(dsn)
	if err != nil {
		return err
	}

	dbName := strings.TrimPrefix(parsed.Path, "/")
	if dbName == "" {
		return nil
	}

	parsed.Path = "/postgres"
	masterDSN := parsed.String()

	sqlDB, err := sql.Open("postgres", masterDSN)
	if err != nil {
		return err
	}
	defer sqlDB.Close()

	if err := sqlDB.Ping(); err != nil {
		return err
	}

	var exists bool
	if err := sqlDB.QueryRow("SELECT EXISTS (SELECT 1 FROM pg_database WHERE datname = $1)", dbName).Scan(&exists); err != nil {
		return err
	}

	if exists {
		return nil
	}

	_, err = sqlDB.Exec("CREATE DATABASE " + pq.QuoteIdentifier(dbName))
	return err
}
