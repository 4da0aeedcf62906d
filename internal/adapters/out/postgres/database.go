package postgres

import (
	"fmt"
	"log/slog"
	"time"

	"laborders/internal/adapters/out/postgres/orderrepo"
	"laborders/internal/adapters/out/postgres/userrepo"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// Models lists every table managed by Migrate, parents first.
func Models() []any {
	return []any{&userrepo.UserDTO{}, &orderrepo.OrderDTO{}, &orderrepo.OrderServiceDTO{}}
}

// Open connects to PostgreSQL. Errors are translated so unique violations
// surface as gorm.ErrDuplicatedKey. SQL warnings and slow queries go to logger.
func Open(dsn string, logger *slog.Logger) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		TranslateError: true,
		Logger: gormlogger.New(
			slog.NewLogLogger(logger.With("component", "gorm").Handler(), slog.LevelWarn),
			gormlogger.Config{
				SlowThreshold:             200 * time.Millisecond,
				LogLevel:                  gormlogger.Warn,
				IgnoreRecordNotFoundError: true,
			},
		),
	})
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	return db, nil
}

// Migrate creates or updates the schema.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(Models()...); err != nil {
		return fmt.Errorf("migrate database: %w", err)
	}
	return nil
}
