package database

import (
	"fmt"
	"log"
	"os"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"pkl/models"
)

// DbInstance struct holds the database connection instance
type DbInstance struct {
	Db *gorm.DB
}

// Database is the global database instance
var Database DbInstance

// ConnectDb establishes a connection to PostgreSQL
func ConnectDb() {
	dsn := fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
		os.Getenv("DB_HOST"),
		os.Getenv("DB_USER"),
		os.Getenv("DB_PASSWORD"),
		os.Getenv("DB_NAME"),
		os.Getenv("DB_PORT"),
	)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect to PostgreSQL: %v", err)
		os.Exit(2)
	}

	// Set up connection pooling
	sqlDB, err := db.DB()
	if err != nil {
		log.Fatalf("Failed to get database instance: %v", err)
	}

	sqlDB.SetMaxOpenConns(10)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(0)

	runMigrations(db)

	// Save database instance globally
	Database = DbInstance{Db: db}
}

// runMigrations performs database migrations
func runMigrations(db *gorm.DB) {
	log.Println("Running Migrations...")

	err := db.AutoMigrate(
		&models.User{},
		&models.Sertifikasi{},
		&models.Batch{},
		&models.PosisiPKL{},
		&models.PendaftaranSertifikasi{},
		&models.PendaftaranPKL{},
		&models.PenilaianSertifikasi{},
		&models.PenilaianPKL{},
		&models.Sertifikat{},
	)
	if err != nil {
		log.Fatalf("Migration failed: %v", err)
	}

	if err := EnsureRegistrationIndexes(db); err != nil {
		log.Fatalf("Migration failed (unique indexes): %v", err)
	}

	log.Println("Migrations completed successfully.")
}

// EnsureRegistrationIndexes creates the partial unique indexes that
// serialize the eligibility guard at the storage layer; the
// read-then-insert check alone leaves a race between two concurrent
// submissions. The certification index spans Pengajuan and Disetujui
// since a registration in either state is a duplicate for the same
// batch. The internship index covers Pengajuan only: an approved
// registration keeps status Disetujui after a passing grade, and
// whether it still blocks a new submission depends on its assessment,
// which the application guard resolves.
func EnsureRegistrationIndexes(db *gorm.DB) error {
	if err := db.Exec(`CREATE UNIQUE INDEX IF NOT EXISTS idx_pendaftaran_sertifikasi_aktif
		ON pendaftaran_sertifikasi (user_id, sertifikasi_id, batch_id)
		WHERE status IN ('Pengajuan','Disetujui') AND is_deleted = false`).Error; err != nil {
		return err
	}
	return db.Exec(`CREATE UNIQUE INDEX IF NOT EXISTS idx_pendaftaran_pkl_aktif
		ON pendaftaran_pkl (user_id)
		WHERE status = 'Pengajuan' AND is_deleted = false`).Error
}
