// Package db はGORMによるデータベース接続の確立とマイグレーションを提供します。
package db

import (
	"fmt"
	"log"
	"os"
	"time"

	gmysql "gorm.io/driver/mysql"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	authentity "levels_backend/internal/feature/auth/domain/entity"
	candleadapters "levels_backend/internal/feature/candles/adapters"
	symbolentity "levels_backend/internal/feature/symbollist/domain/entity"
)

// Config holds database connection settings.
type Config struct {
	User         string
	Password     string
	Name         string
	Host         string
	Port         string
	InstanceName string // Cloud SQL instance connection name (takes precedence over Host/Port)
}

// LoadConfigFromEnv は環境変数からデータベース設定を読み込みます。
func LoadConfigFromEnv() Config {
	return Config{
		User:         os.Getenv("DB_USER"),
		Password:     os.Getenv("DB_PASSWORD"),
		Name:         os.Getenv("DB_NAME"),
		Host:         os.Getenv("DB_HOST"),
		Port:         os.Getenv("DB_PORT"),
		InstanceName: os.Getenv("INSTANCE_CONNECTION_NAME"),
	}
}

// BuildDSN は設定からMySQL用のDSN文字列を生成します。
// InstanceNameが設定されている場合はCloud SQLのUnixソケット形式を使用します。
func BuildDSN(cfg Config) string {
	if cfg.InstanceName != "" {
		return fmt.Sprintf("%s:%s@unix(/cloudsql/%s)/%s?charset=utf8mb4&parseTime=true&loc=Local",
			cfg.User, cfg.Password, cfg.InstanceName, cfg.Name)
	}
	return fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=true&loc=Local",
		cfg.User, cfg.Password, cfg.Host, cfg.Port, cfg.Name)
}

// Opener abstracts gorm.Open for testing.
type Opener func(dsn string) (*gorm.DB, error)

// ConnectWithRetry は指定されたタイムアウトまで3秒間隔で接続をリトライします。
func ConnectWithRetry(dsn string, timeout time.Duration, open Opener) (*gorm.DB, error) {
	deadline := time.Now().Add(timeout)
	for {
		db, err := open(dsn)
		if err == nil {
			return db, nil
		}
		if time.Now().After(deadline) {
			return nil, fmt.Errorf("DB connect failed after %v: %w", timeout, err)
		}
		log.Printf("DB connect failed, retrying...: %v", err)
		time.Sleep(3 * time.Second)
	}
}

// OpenDB はデータベース接続を確立し、必要に応じてマイグレーションを実行します。
// LOCAL_SQLITEが設定されている場合はファイルベースのSQLiteを使用します（ローカル開発用）。
func OpenDB() *gorm.DB {
	var (
		db  *gorm.DB
		err error
	)

	if path := os.Getenv("LOCAL_SQLITE"); path != "" {
		db, err = gorm.Open(sqlite.Open(path), &gorm.Config{})
		if err != nil {
			log.Fatalf("failed to open sqlite %s: %v", path, err)
		}
	} else {
		dsn := BuildDSN(LoadConfigFromEnv())
		db, err = ConnectWithRetry(dsn, 60*time.Second, func(dsn string) (*gorm.DB, error) {
			return gorm.Open(gmysql.Open(dsn), &gorm.Config{})
		})
		if err != nil {
			log.Fatalf("%v", err)
		}
	}

	if os.Getenv("RUN_MIGRATIONS") == "true" {
		// マイグレーション（User, Candle, Symbol）
		if err := db.AutoMigrate(
			&authentity.User{},
			&candleadapters.CandleModel{},
			&symbolentity.Symbol{},
		); err != nil {
			log.Fatalf("failed to migrate: %v", err)
		}
	}

	return db
}
