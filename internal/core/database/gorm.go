package database

import (
	"strings"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
)

type Opts struct {
	Driver             string
	DSN                string
	MaxOpenConns       int
	MaxIdleConns       int
	ConnMaxLifetimeMin int
	LogLevel           string
}

func NewGorm(o Opts) (*gorm.DB, error) {
	var dial gorm.Dialector
	switch o.Driver {
	case "postgres", "":
		dial = postgres.Open(normalizePostgresDSN(o.DSN))
	case "mysql":
		dial = mysql.Open(o.DSN)
	default:
		return nil, ErrUnsupportedDriver
	}

	lvl := logger.Warn
	switch o.LogLevel {
	case "silent":
		lvl = logger.Silent
	case "error":
		lvl = logger.Error
	case "info":
		lvl = logger.Info
	}

	db, err := gorm.Open(dial, &gorm.Config{
		Logger: logger.Default.LogMode(lvl),
	})
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(o.MaxOpenConns)
	sqlDB.SetMaxIdleConns(o.MaxIdleConns)
	sqlDB.SetConnMaxLifetime(time.Duration(o.ConnMaxLifetimeMin) * time.Minute)

	db = db.Session(&gorm.Session{
		PrepareStmt:            true,
		SkipDefaultTransaction: true, // every request issues at most one write
	})
	return db, nil
}

// normalizePostgresDSN makes hosted-Postgres URLs work out of the box.
// Managed providers require TLS but usually hand out certs that fail chain
// verification, so when the URL carries no sslmode we pin "require", which
// encrypts without verifying the server certificate.
func normalizePostgresDSN(dsn string) string {
	in := strings.TrimSpace(dsn)
	if in == "" {
		return in
	}
	if !strings.HasPrefix(in, "postgres://") && !strings.HasPrefix(in, "postgresql://") {
		// key=value DSN, leave it to the driver
		return in
	}
	if strings.Contains(in, "sslmode=") {
		return in
	}
	sep := "?"
	if strings.Contains(in, "?") {
		sep = "&"
	}
	return in + sep + "sslmode=require"
}

var ErrUnsupportedDriver = gorm.ErrInvalidDB
