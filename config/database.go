package config

import (
	"fmt"
	"log"
	"strings"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// DSN builds the postgres DSN for env from the <ENV>_DB_* variables.
func DSN(env string) (string, error) {
	var prefix string
	switch env {
	case "dev", "qc", "prod":
		prefix = strings.ToUpper(env) + "_DB_"
	default:
		return "", fmt.Errorf("unknown environment: %q", env)
	}

	return fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=%s TimeZone=UTC",
		GetEnv(prefix+"HOST", "localhost"),
		GetEnv(prefix+"USER", "postgres"),
		GetEnv(prefix+"PASSWORD", ""),
		GetEnv(prefix+"NAME", "mysterystays"),
		GetEnv(prefix+"PORT", "5432"),
		GetEnv(prefix+"SSLMODE", "disable"),
	), nil
}

// ConnectDB opens the database selected by ENV (default dev).
func ConnectDB() (*gorm.DB, error) {
	dsn, err := DSN(GetEnv("ENV", "dev"))
	if err != nil {
		return nil, err
	}

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		return nil, fmt.Errorf("fail to connect to db: %w", err)
	}

	log.Println("Successfully connected to db")
	return db, nil
}
