package infra

import (
	"fmt"

	"github.com/IgnacioAlcaraz/inmobiliaria/internal/model"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// NewDatabase establishes a GORM connection backed by pgx, runs AutoMigrate to
// create / update all tables, then applies the idempotent SQL patches that
// AutoMigrate cannot express (partial indexes).
func NewDatabase(dsn string) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(25)
	sqlDB.SetMaxIdleConns(5)

	if err := RunMigrations(db); err != nil {
		return nil, err
	}

	return db, nil
}

// RunMigrations applies the model schema plus the schema patches. Also used by
// integration tests against a disposable database.
func RunMigrations(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&model.Profile{},
		&model.ManagerVendedor{},
		&model.Captacion{},
		&model.Cierre{},
		&model.Trackeo{},
		&model.Objetivo{},
		&model.ContactoTag{},
		&model.Contacto{},
		&model.ChatMessage{},
	); err != nil {
		return fmt.Errorf("AutoMigrate: %w", err)
	}
	return applySchemaPatches(db)
}

// applySchemaPatches runs idempotent DDL that AutoMigrate cannot handle.
func applySchemaPatches(db *gorm.DB) error {
	patches := []string{
		// Partial index for the daily reminder sweep: only rows with a pending
		// reminder are ever scanned.
		`DO $$ BEGIN
		  IF NOT EXISTS (SELECT 1 FROM pg_indexes WHERE indexname = 'idx_contactos_recordatorio_pendiente') THEN
		    CREATE INDEX idx_contactos_recordatorio_pendiente
		        ON contactos (seguimiento_fecha)
		        WHERE seguimiento_recordatorio AND NOT seguimiento_hecho;
		  END IF;
		END $$`,
		// Chat history is always read newest-first for one (user, scope, target)
		// tuple.
		`DO $$ BEGIN
		  IF NOT EXISTS (SELECT 1 FROM pg_indexes WHERE indexname = 'idx_chat_messages_tupla') THEN
		    CREATE INDEX idx_chat_messages_tupla
		        ON chat_messages (user_id, scope, target_user_id, created_at DESC);
		  END IF;
		END $$`,
	}

	for _, sql := range patches {
		if err := db.Exec(sql).Error; err != nil {
			return fmt.Errorf("patch %q: %w", sql[:min(len(sql), 60)], err)
		}
	}
	return nil
}
