package migration

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"log"
	"time"
)

type migrationStep struct {
	Name string
	SQL  string
}

var steps = []migrationStep{
	{
		Name: "create_table_master_plan_documents",
		SQL: `CREATE TABLE IF NOT EXISTS master_plan_documents (
  id            BIGSERIAL   PRIMARY KEY,
  doc_id        TEXT        NOT NULL UNIQUE,
  doc_type      TEXT        NOT NULL,
  doc_title     TEXT        NOT NULL,
  revision_no   TEXT        NOT NULL,
  year          INTEGER     NOT NULL,
  quarter       TEXT,
  owner         TEXT        NOT NULL,
  status        TEXT        NOT NULL,
  doc_status    TEXT        NOT NULL DEFAULT 'Open',
  is_uploaded   BOOLEAN     NOT NULL DEFAULT FALSE,
  uploaded_file TEXT,
  file_type     TEXT,
  file_size     BIGINT      CHECK (file_size IS NULL OR file_size >= 0),
  storage_path  TEXT,
  download_url  TEXT,
  uploaded_at   TIMESTAMPTZ,
  created_at    TIMESTAMPTZ NOT NULL,
  updated_at    TIMESTAMPTZ NOT NULL
);`,
	},
	{
		Name: "create_index_master_plan_documents_created_at",
		SQL:  `CREATE INDEX IF NOT EXISTS idx_master_plan_documents_created_at ON master_plan_documents (created_at);`,
	},
	{
		Name: "create_index_master_plan_documents_doc_type",
		SQL:  `CREATE INDEX IF NOT EXISTS idx_master_plan_documents_doc_type ON master_plan_documents (doc_type);`,
	},
	{
		Name: "create_index_master_plan_documents_owner",
		SQL:  `CREATE INDEX IF NOT EXISTS idx_master_plan_documents_owner ON master_plan_documents (owner);`,
	},
}

// EnsureMigrated checks if the 'master_plan_documents' table exists and runs
// the ordered migration steps if it doesn't.
func EnsureMigrated(ctx context.Context, db *sql.DB, dbHost string) error {
	start := time.Now()

	logJSON(map[string]any{
		"component": "database",
		"event":     "db_migration_check",
		"status":    "starting",
		"db_host":   dbHost,
	})

	var exists bool
	query := "SELECT to_regclass('public.master_plan_documents') IS NOT NULL"
	if err := db.QueryRowContext(ctx, query).Scan(&exists); err != nil {
		logJSON(map[string]any{
			"component":     "database",
			"event":         "db_migration_failed",
			"status":        "error",
			"error_message": fmt.Sprintf("failed to check sentinel table: %v", err),
			"db_host":       dbHost,
			"duration_ms":   time.Since(start).Milliseconds(),
		})
		return fmt.Errorf("failed to check sentinel table: %w", err)
	}

	if exists {
		logJSON(map[string]any{
			"component":   "database",
			"event":       "db_migration_skip",
			"status":      "success",
			"msg":         "schema already exists, skipping migration",
			"db_host":     dbHost,
			"duration_ms": time.Since(start).Milliseconds(),
		})
		return nil
	}

	for _, step := range steps {
		stepStart := time.Now()
		if _, err := db.ExecContext(ctx, step.SQL); err != nil {
			logJSON(map[string]any{
				"component":        "database",
				"event":            "db_migration_failed",
				"status":           "error",
				"migration_step":   step.Name,
				"error_message":    err.Error(),
				"db_host":          dbHost,
				"duration_ms":      time.Since(start).Milliseconds(),
				"step_duration_ms": time.Since(stepStart).Milliseconds(),
			})
			return fmt.Errorf("migration step %s failed: %w", step.Name, err)
		}

		logJSON(map[string]any{
			"component":        "database",
			"event":            "db_migration_step",
			"status":           "success",
			"migration_step":   step.Name,
			"db_host":          dbHost,
			"step_duration_ms": time.Since(stepStart).Milliseconds(),
		})
	}

	logJSON(map[string]any{
		"component":   "database",
		"event":       "db_migration_success",
		"status":      "success",
		"db_host":     dbHost,
		"duration_ms": time.Since(start).Milliseconds(),
	})

	return nil
}

func logJSON(data map[string]any) {
	data["ts"] = time.Now().UTC().Format(time.RFC3339Nano)
	if _, ok := data["level"]; !ok {
		if data["status"] == "error" {
			data["level"] = "error"
		} else {
			data["level"] = "info"
		}
	}

	b, err := json.Marshal(data)
	if err != nil {
		log.Printf("failed to marshal migration log: %v", err)
		return
	}
	log.SetFlags(0)
	log.Println(string(b))
}
