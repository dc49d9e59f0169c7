package database

import (
	"fmt"
	"log/slog"

	"github.com/uiseong-market/form-server/internal/config"
	"github.com/uiseong-market/form-server/internal/model"

	"gorm.io/gorm"
)

// Migrate executes database migration based on configuration
func Migrate(db *gorm.DB, cfg *config.Config) error {
	if !cfg.Database.IsAutoMigrate {
		// 로컬 SQLite 파일은 비어 있을 수 있으므로 없는 테이블만 생성 (삭제 없음)
		if cfg.Database.Driver == config.DriverSQLite {
			slog.Info("SQLite 스키마 확인 중", "path", cfg.Database.Path)
			return AutoMigrate(db)
		}
		slog.Info("⏭️  데이터베이스 마이그레이션 비활성화됨",
			"auto_migrate", false, "env", cfg.App.Env,
		)
		return nil
	}

	slog.Warn("🔧 데이터베이스 마이그레이션 시작 - 모든 테이블이 삭제되고 재생성됩니다!",
		"auto_migrate", true, "env", cfg.App.Env,
	)

	// Safety check: prevent accidental data loss in production
	if cfg.App.Env == "prod" || cfg.App.Env == "production" {
		return fmt.Errorf("🚨 PRODUCTION 환경에서는 DB_AUTO_MIGRATE=true를 사용할 수 없습니다! 데이터 손실 방지를 위해 차단됨")
	}

	// Step 1: Drop all tables
	slog.Info("🗑️  기존 테이블 삭제 중...")

	// Order matters: document_fields references documents
	tableNames := []string{"document_fields", "documents"}

	for _, tableName := range tableNames {
		if !db.Migrator().HasTable(tableName) {
			continue
		}
		if err := dropTable(db, cfg, tableName); err != nil {
			slog.Debug("테이블 삭제 실패", "table", tableName, "error", err)
		} else {
			slog.Debug("테이블 삭제 성공", "table", tableName)
		}
	}

	// Step 2: Create tables with IDENTITY columns
	slog.Info("📦 새 테이블 생성 중...")
	if err := AutoMigrate(db); err != nil {
		return fmt.Errorf("테이블 생성 실패: %w", err)
	}

	slog.Info("✅ 마이그레이션 완료!")
	return nil
}

// AutoMigrate creates tables based on model definitions
func AutoMigrate(db *gorm.DB) error {
	// 중요: 의존성 순서대로 생성 (FK 참조 순서)
	// 1. 독립 테이블 먼저
	// 2. FK 참조하는 테이블은 나중에
	models := []interface{}{
		// Independent tables (no foreign keys)
		&model.Document{},
		// document_id -> documents.id
		&model.DocumentField{},
	}

	for _, m := range models {
		if err := db.AutoMigrate(m); err != nil {
			return fmt.Errorf("%T 마이그레이션 실패: %w", m, err)
		}
		slog.Debug("테이블 생성됨", "model", fmt.Sprintf("%T", m))
	}

	return nil
}

// dropTable drops a single table, using CASCADE CONSTRAINTS on Oracle
func dropTable(db *gorm.DB, cfg *config.Config, tableName string) error {
	if cfg.Database.Driver == config.DriverOracle {
		return db.Exec(fmt.Sprintf("DROP TABLE %s CASCADE CONSTRAINTS", tableName)).Error
	}
	return db.Migrator().DropTable(tableName)
}
