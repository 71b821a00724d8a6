package infra

import (
	"fmt"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/jfrosalesgt/dicki-backend/internal/model"
)

// NewDatabase establishes a GORM connection backed by pgx and runs AutoMigrate
// to create / update all tables. TranslateError is enabled so unique-violation
// errors surface as gorm.ErrDuplicatedKey and the services can map them to
// conflicts.
func NewDatabase(dsn string) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
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

// RunMigrations creates or updates the schema and applies the SQL patches that
// AutoMigrate cannot express. Also used by integration tests.
func RunMigrations(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&model.Usuario{},
		&model.Perfil{},
		&model.Role{},
		&model.Modulo{},
		&model.UsuarioPerfil{},
		&model.UsuarioRole{},
		&model.PerfilModulo{},
		&model.Fiscalia{},
		&model.TipoIndicio{},
		&model.Investigacion{},
		&model.Escena{},
		&model.Indicio{},
	); err != nil {
		return fmt.Errorf("AutoMigrate: %w", err)
	}
	return applySchemaPatches(db)
}

// applySchemaPatches runs idempotent DDL that AutoMigrate cannot handle on its
// own. Each statement uses IF NOT EXISTS semantics so re-running is safe.
func applySchemaPatches(db *gorm.DB) error {
	patches := []string{
		// Hot path for the coordination review queue
		`DO $$ BEGIN
		  IF NOT EXISTS (SELECT 1 FROM pg_indexes WHERE indexname = 'idx_investigaciones_estado') THEN
		    CREATE INDEX idx_investigaciones_estado
		        ON investigaciones (estado_revision_dicri);
		  END IF;
		END $$`,
		// Revision report filters by review date range
		`DO $$ BEGIN
		  IF NOT EXISTS (SELECT 1 FROM pg_indexes WHERE indexname = 'idx_investigaciones_fecha_revision') THEN
		    CREATE INDEX idx_investigaciones_fecha_revision
		        ON investigaciones (fecha_revision)
		        WHERE fecha_revision IS NOT NULL;
		  END IF;
		END $$`,
		`DO $$ BEGIN
		  IF NOT EXISTS (SELECT 1 FROM pg_indexes WHERE indexname = 'idx_escenas_investigacion') THEN
		    CREATE INDEX idx_escenas_investigacion
		        ON escenas (id_investigacion);
		  END IF;
		END $$`,
		`DO $$ BEGIN
		  IF NOT EXISTS (SELECT 1 FROM pg_indexes WHERE indexname = 'idx_indicios_escena') THEN
		    CREATE INDEX idx_indicios_escena
		        ON indicios (id_escena);
		  END IF;
		END $$`,
	}

	for _, sql := range patches {
		if err := db.Exec(sql).Error; err != nil {
			return fmt.Errorf("schema patch: %w", err)
		}
	}
	return nil
}
