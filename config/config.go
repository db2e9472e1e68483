package config

import (
	"fmt"
	"os"

	"gorm.io/driver/mysql"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// InitDB opens the relational store. MySQL in any real deployment,
// a local SQLite file when DB_DRIVER=sqlite (handy for development).
func InitDB() (*gorm.DB, error) {
	gormConfig := &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	}

	if getEnv("DB_DRIVER", "mysql") == "sqlite" {
		path := getEnv("DB_PATH", "digital_menu.db")
		return gorm.Open(sqlite.Open(path), gormConfig)
	}

	dsn := fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=Local",
		getEnv("DB_USER", "root"),
		os.Getenv("DB_PASSWORD"),
		getEnv("DB_HOST", "127.0.0.1"),
		getEnv("DB_PORT", "3306"),
		getEnv("DB_NAME", "digital_menu"),
	)
	return gorm.Open(mysql.Open(dsn), gormConfig)
}
