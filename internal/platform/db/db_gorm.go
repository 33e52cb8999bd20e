// Package db はGORMによるデータベース接続の確立とマイグレーションを担当します。
package db

import (
	"fmt"
	"log"
	"os"
	"time"

	gpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"

	authentity "card_backend/internal/feature/auth/domain/entity"
	binderentity "card_backend/internal/feature/binder/domain/entity"
	catalogadapters "card_backend/internal/feature/catalog/adapters"
)

// Config はデータベース接続設定を保持します。
type Config struct {
	User     string
	Password string
	Name     string
	Host     string
	Port     string

	// InstanceName はCloud SQLインスタンス接続名です。設定されている場合、
	// Host/PortではなくUnixソケット経由で接続します。
	InstanceName string
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

// BuildDSN は設定からPostgreSQLのDSN文字列を組み立てます。
// InstanceNameが設定されている場合はCloud SQLのUnixソケット接続を優先します。
func BuildDSN(cfg Config) string {
	if cfg.InstanceName != "" {
		return fmt.Sprintf("host=/cloudsql/%s user=%s password=%s dbname=%s sslmode=disable TimeZone=UTC",
			cfg.InstanceName, cfg.User, cfg.Password, cfg.Name)
	}
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable TimeZone=UTC",
		cfg.Host, cfg.Port, cfg.User, cfg.Password, cfg.Name)
}

// Opener は1回分の接続試行を抽象化します（テストで差し替え可能にするため）。
type Opener func(dsn string) (*gorm.DB, error)

// ConnectWithRetry は指定された猶予時間内で接続を繰り返し試行します。
// コンテナ起動直後にデータベースの準備が整っていないケースを吸収します。
func ConnectWithRetry(dsn string, timeout time.Duration, open Opener) (*gorm.DB, error) {
	deadline := time.Now().Add(timeout)
	for {
		db, err := open(dsn)
		if err == nil {
			return db, nil
		}
		if time.Now().After(deadline) {
			return nil, fmt.Errorf("db connect failed after %v: %w", timeout, err)
		}
		log.Printf("DB connect failed, retrying...: %v", err)
		time.Sleep(3 * time.Second)
	}
}

// OpenDB は環境変数の設定でデータベースへ接続し、必要に応じてマイグレーションを実行します。
// 接続できない場合はプロセスを終了します。
func OpenDB() *gorm.DB {
	cfg := LoadConfigFromEnv()

	db, err := ConnectWithRetry(BuildDSN(cfg), 60*time.Second, func(dsn string) (*gorm.DB, error) {
		return gorm.Open(gpostgres.Open(dsn), &gorm.Config{})
	})
	if err != nil {
		log.Fatalf("%v", err)
	}

	if os.Getenv("RUN_MIGRATIONS") == "true" {
		if err := db.AutoMigrate(
			&authentity.User{},
			&binderentity.Binder{},
			&binderentity.BinderCard{},
			&catalogadapters.SetModel{},
			&catalogadapters.CardModel{},
			&catalogadapters.CardTypeModel{},
			&catalogadapters.CardSubtypeModel{},
			&catalogadapters.AttackModel{},
			&catalogadapters.AttackCostModel{},
			&catalogadapters.AbilityModel{},
			&catalogadapters.CardWeaknessModel{},
			&catalogadapters.CardResistanceModel{},
			&catalogadapters.CardPokedexNumberModel{},
			&catalogadapters.PriceModel{},
		); err != nil {
			log.Fatalf("failed to migrate: %v", err)
		}
	}

	return db
}
