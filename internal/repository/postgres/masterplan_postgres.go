package postgres

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jackc/pgx/v5/pgconn"

	"planregistry/internal/model"
	"planregistry/internal/repository"
)

// pgUniqueViolation is the PostgreSQL error code for unique_violation.
const pgUniqueViolation = "23505"

// MasterPlanPostgres is a PostgreSQL implementation of repository.MasterPlanRepository.
// It uses database/sql with parameterized queries and contains no business logic.
type MasterPlanPostgres struct {
	db *sql.DB
}

// NewMasterPlanPostgres creates a new MasterPlanPostgres repository.
func NewMasterPlanPostgres(db *sql.DB) *MasterPlanPostgres {
	return &MasterPlanPostgres{db: db}
}

var _ repository.MasterPlanRepository = (*MasterPlanPostgres)(nil)

const columns = `id, doc_id, doc_type, doc_title, revision_no, year, quarter, owner, status,
		doc_status, is_uploaded, uploaded_file, file_type, file_size, storage_path,
		download_url, uploaded_at, created_at, updated_at`

func scanPlan(row interface{ Scan(...any) error }) (*model.MasterPlan, error) {
	var d model.MasterPlan
	if err := row.Scan(
		&d.ID,
		&d.DocID,
		&d.DocType,
		&d.DocTitle,
		&d.RevisionNo,
		&d.Year,
		&d.Quarter,
		&d.Owner,
		&d.Status,
		&d.DocStatus,
		&d.IsUploaded,
		&d.UploadedFile,
		&d.FileType,
		&d.FileSize,
		&d.StoragePath,
		&d.DownloadURL,
		&d.UploadedAt,
		&d.CreatedAt,
		&d.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &d, nil
}

// Create inserts a new document row and returns the stored record with its
// generated surrogate id. A unique_violation on doc_id is translated to
// repository.ErrDuplicateDocID.
func (r *MasterPlanPostgres) Create(ctx context.Context, doc *model.MasterPlan) (*model.MasterPlan, error) {
	const q = `
		INSERT INTO master_plan_documents (
			doc_id, doc_type, doc_title, revision_no, year, quarter, owner, status,
			doc_status, is_uploaded, uploaded_file, file_type, file_size, storage_path,
			download_url, uploaded_at, created_at, updated_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18)
		RETURNING ` + columns
	row := r.db.QueryRowContext(ctx, q,
		doc.DocID,
		doc.DocType,
		doc.DocTitle,
		doc.RevisionNo,
		doc.Year,
		doc.Quarter,
		doc.Owner,
		doc.Status,
		doc.DocStatus,
		doc.IsUploaded,
		doc.UploadedFile,
		doc.FileType,
		doc.FileSize,
		doc.StoragePath,
		doc.DownloadURL,
		doc.UploadedAt,
		doc.CreatedAt,
		doc.UpdatedAt,
	)
	out, err := scanPlan(row)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
			return nil, repository.ErrDuplicateDocID
		}
		return nil, err
	}
	return out, nil
}

// FindByID fetches a single document by its surrogate id.
func (r *MasterPlanPostgres) FindByID(ctx context.Context, id int64) (*model.MasterPlan, error) {
	const q = `
		SELECT ` + columns + `
		FROM master_plan_documents
		WHERE id = $1
	`
	return scanPlan(r.db.QueryRowContext(ctx, q, id))
}

// ExistsByDocID reports whether the external doc_id is already registered.
func (r *MasterPlanPostgres) ExistsByDocID(ctx context.Context, docID string) (bool, error) {
	const q = `SELECT EXISTS (SELECT 1 FROM master_plan_documents WHERE doc_id = $1)`
	var exists bool
	if err := r.db.QueryRowContext(ctx, q, docID).Scan(&exists); err != nil {
		return false, err
	}
	return exists, nil
}

// List returns every document ordered by creation time, newest first.
func (r *MasterPlanPostgres) List(ctx context.Context) ([]model.MasterPlan, error) {
	const q = `
		SELECT ` + columns + `
		FROM master_plan_documents
		ORDER BY created_at DESC, id DESC
	`
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]model.MasterPlan, 0)
	for rows.Next() {
		d, err := scanPlan(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, *d)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}
