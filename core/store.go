package core

import (
	"fmt"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type LogLevel int

const (
	LogLevelSilent LogLevel = iota + 1
	LogLevelError
	LogLevelWarn
	LogLevelInfo
)

// Store owns the connection pool. It is constructed once at startup and
// passed by reference into the handlers; nothing in this package keeps a
// package-level handle.
type Store struct {
	DB *gorm.DB
}

// NewStore opens the postgres pool described by cfg and verifies it with a
// ping before returning.
func NewStore(cfg DatabaseConfig) (*Store, error) {
	store, err := Open(postgres.Open(cfg.DSN), cfg.GormLogLevel())
	if err != nil {
		return nil, err
	}

	sqlDB, err := store.DB.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get pool: %w", err)
	}

	maxConns := cfg.MaxOpenConns
	if maxConns <= 0 {
		maxConns = 10
	}
	sqlDB.SetMaxOpenConns(maxConns)
	sqlDB.SetMaxIdleConns(maxConns)
	sqlDB.SetConnMaxLifetime(5 * time.Minute)

	if err := sqlDB.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping pool: %w", err)
	}

	return store, nil
}

// Open wraps an already-chosen dialector. NewStore uses it for postgres;
// tests use it with an in-memory database.
func Open(dialector gorm.Dialector, level LogLevel) (*Store, error) {
	db, err := gorm.Open(dialector, &gorm.Config{
		Logger: logger.Default.LogMode(gormLogLevel(level)),
		// Constraint violations must come back as gorm.ErrDuplicatedKey /
		// gorm.ErrForeignKeyViolated so the services can classify them.
		TranslateError: true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open gorm: %w", err)
	}
	return &Store{DB: db}, nil
}

// Migrate creates or updates the employees and attendance tables, including
// the employee_id unique index, the (employee_id, date) composite unique
// index and the foreign key between the two tables.
func (s *Store) Migrate() error {
	return s.DB.AutoMigrate(&Employee{}, &AttendanceRecord{})
}

// Close closes the underlying pool.
func (s *Store) Close() error {
	sqlDB, err := s.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

func gormLogLevel(level LogLevel) logger.LogLevel {
	switch level {
	case LogLevelError:
		return logger.Error
	case LogLevelWarn:
		return logger.Warn
	case LogLevelInfo:
		return logger.Info
	case LogLevelSilent:
		return logger.Silent
	default:
		return logger.Warn
	}
}
