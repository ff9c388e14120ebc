package database

import (
	"context"
	"embed"
	"fmt"
	"log"
	"time"

	"github.com/cenkalti/backoff/v4"
	migrate "github.com/rubenv/sql-migrate"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/johnquangdev/smart-voice-assistant/pkg/config"
)

//go:embed migrations/*.sql
var migrationFiles embed.FS

// Migration directions accepted by Migrate
const (
	DirectionUp   = "up"
	DirectionDown = "down"
)

// NewPostgresDB creates a new PostgreSQL database connection using GORM.
// Connecting is retried with exponential backoff for up to DB_CONNECT_TIMEOUT.
func NewPostgresDB(cfg *config.Config) (*gorm.DB, error) {
	dsn := cfg.GetDatabaseDSN()

	gormLogger := logger.Default.LogMode(logger.Warn)
	if cfg.IsProduction() {
		gormLogger = logger.Default.LogMode(logger.Error)
	}

	var db *gorm.DB
	connect := func() error {
		conn, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
			Logger: gormLogger,
			NowFunc: func() time.Time {
				return time.Now().UTC()
			},
		})
		if err != nil {
			return err
		}

		sqlDB, err := conn.DB()
		if err != nil {
			return backoff.Permanent(fmt.Errorf("failed to get database object: %w", err))
		}
		if err := sqlDB.Ping(); err != nil {
			sqlDB.Close()
			return err
		}

		db = conn
		return nil
	}

	policy := backoff.NewExponentialBackOff()
	policy.MaxElapsedTime = cfg.Database.ConnectTimeout

	notify := func(err error, wait time.Duration) {
		log.Printf("⏳ Database not ready (%v), retrying in %s", err, wait.Round(time.Millisecond))
	}
	if err := backoff.RetryNotify(connect, policy, notify); err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database object: %w", err)
	}
	sqlDB.SetMaxOpenConns(cfg.Database.MaxConns)
	sqlDB.SetMaxIdleConns(cfg.Database.MinConns)
	sqlDB.SetConnMaxLifetime(time.Hour)

	log.Println("✅ Database connected successfully")

	return db, nil
}

// MigrationSource returns the embedded migration set
func MigrationSource() migrate.MigrationSource {
	return &migrate.EmbedFileSystemMigrationSource{
		FileSystem: migrationFiles,
		Root:       "migrations",
	}
}

// AutoMigrate applies every pending migration
func AutoMigrate(db *gorm.DB) error {
	log.Println("🔄 Applying embedded migrations using sql-migrate...")

	n, err := Migrate(db, DirectionUp, 0)
	if err != nil {
		return err
	}

	log.Printf("✅ Applied %d migrations!\n", n)
	return nil
}

// Migrate applies up to limit migrations in direction; 0 means all
func Migrate(db *gorm.DB, direction string, limit int) (int, error) {
	var dir migrate.MigrationDirection
	switch direction {
	case DirectionUp:
		dir = migrate.Up
	case DirectionDown:
		dir = migrate.Down
	default:
		return 0, fmt.Errorf("unknown migration direction %q", direction)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return 0, fmt.Errorf("failed to get db connection during migrate %s, error: %v", direction, err)
	}

	n, err := migrate.ExecMax(sqlDB, "postgres", MigrationSource(), dir, limit)
	if err != nil {
		return n, fmt.Errorf("failed to apply migration, error: %v", err)
	}
	return n, nil
}

// MigrationStatus lists every known migration and when it was applied
func MigrationStatus(ctx context.Context, db *gorm.DB) ([]MigrationRecord, error) {
	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database object: %w", err)
	}
	if err := sqlDB.PingContext(ctx); err != nil {
		return nil, err
	}

	known, err := MigrationSource().FindMigrations()
	if err != nil {
		return nil, fmt.Errorf("failed to read migrations: %w", err)
	}

	applied, err := migrate.GetMigrationRecords(sqlDB, "postgres")
	if err != nil {
		return nil, fmt.Errorf("failed to read migration records: %w", err)
	}
	appliedAt := make(map[string]time.Time, len(applied))
	for _, rec := range applied {
		appliedAt[rec.Id] = rec.AppliedAt
	}

	records := make([]MigrationRecord, 0, len(known))
	for _, m := range known {
		rec := MigrationRecord{ID: m.Id}
		if at, ok := appliedAt[m.Id]; ok {
			rec.Applied = true
			rec.AppliedAt = at
		}
		records = append(records, rec)
	}
	return records, nil
}

// MigrationRecord is one row of MigrationStatus
type MigrationRecord struct {
	ID        string
	Applied   bool
	AppliedAt time.Time
}

// CloseDB closes the database connection
func CloseDB(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("failed to get database object: %w", err)
	}

	if err := sqlDB.Close(); err != nil {
		return fmt.Errorf("failed to close database: %w", err)
	}

	log.Println("✅ Database connection closed")
	return nil
}
