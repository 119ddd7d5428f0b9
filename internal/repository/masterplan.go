package repository

import (
	"context"
	"errors"

	"planregistry/internal/model"
)

// ErrDuplicateDocID is returned by Create when the doc_id unique constraint
// rejects the insert. The constraint is the single arbiter for concurrent
// registrations of the same doc_id.
var ErrDuplicateDocID = errors.New("doc_id already exists")

// MasterPlanRepository defines data access for master-plan documents using SQL
// queries only. No business logic here — strictly persistence operations.
type MasterPlanRepository interface {
	// Create inserts a new document row. The caller stamps CreatedAt/UpdatedAt;
	// the store generates the surrogate id. Returns ErrDuplicateDocID when the
	// doc_id is already taken.
	Create(ctx context.Context, doc *model.MasterPlan) (*model.MasterPlan, error)

	// FindByID returns a document by its surrogate id, or sql.ErrNoRows.
	FindByID(ctx context.Context, id int64) (*model.MasterPlan, error)

	// ExistsByDocID reports whether a row with the given external doc_id exists.
	ExistsByDocID(ctx context.Context, docID string) (bool, error)

	// List returns all documents ordered by creation time, newest first.
	// Filtering and pagination are client-side concerns in this design.
	List(ctx context.Context) ([]model.MasterPlan, error)
}
