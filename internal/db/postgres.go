package db

import (
	"fmt"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/yungbote/todolist-backend/internal/platform/envutil"
	"github.com/yungbote/todolist-backend/internal/platform/logger"
	"github.com/yungbote/todolist-backend/internal/types"
)

type PostgresService struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewPostgresService(baseLog *logger.Logger) (*PostgresService, error) {
	serviceLog := baseLog.With("service", "PostgresService")

	postgresHost := envutil.String("POSTGRES_HOST", "localhost")
	postgresPort := envutil.String("POSTGRES_PORT", "5432")
	postgresUser := envutil.String("POSTGRES_USER", "postgres")
	postgresPassword := envutil.String("POSTGRES_PASSWORD", "")
	postgresName := envutil.String("POSTGRES_NAME", "todolist")

	dsn := fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable",
		postgresUser, postgresPassword, postgresHost, postgresPort, postgresName)

	serviceLog.Info("Connecting to Postgres...", "host", postgresHost, "db", postgresName)
	gormDB, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		DisableForeignKeyConstraintWhenMigrating: true,
		TranslateError:                           true,
	})
	if err != nil {
		serviceLog.Error("Failed to connect to Postgres", "error", err)
		return nil, fmt.Errorf("failed to connect to Postgres: %w", err)
	}

	return &PostgresService{db: gormDB, log: serviceLog}, nil
}

func (s *PostgresService) AutoMigrateAll() error {
	s.log.Info("Auto migrating postgres tables...")
	if err := s.db.AutoMigrate(
		&types.Todo{},
		&types.Label{},
		&types.TodoLabel{},
	); err != nil {
		s.log.Error("Auto migration failed for postgres tables", "error", err)
		return err
	}

	s.log.Info("Configuring foreign key relationships for postgres tables...")
	constraints := []struct {
		name string
		sql  string
	}{
		{
			name: "fk_todo_labels_todo_id",
			sql: `ALTER TABLE "todo_labels"
				ADD CONSTRAINT "fk_todo_labels_todo_id"
				FOREIGN KEY ("todo_id") REFERENCES "todos"("id")
				ON DELETE CASCADE`,
		},
		{
			name: "fk_todo_labels_label_id",
			sql: `ALTER TABLE "todo_labels"
				ADD CONSTRAINT "fk_todo_labels_label_id"
				FOREIGN KEY ("label_id") REFERENCES "labels"("id")
				ON DELETE CASCADE`,
		},
	}
	for _, c := range constraints {
		drop := fmt.Sprintf(`ALTER TABLE "todo_labels" DROP CONSTRAINT IF EXISTS %q`, c.name)
		if err := s.db.Exec(drop).Error; err != nil {
			return fmt.Errorf("failed to drop %s: %w", c.name, err)
		}
		if err := s.db.Exec(c.sql).Error; err != nil {
			return fmt.Errorf("failed to add %s: %w", c.name, err)
		}
	}
	return nil
}

func (s *PostgresService) DB() *gorm.DB {
	return s.db
}
