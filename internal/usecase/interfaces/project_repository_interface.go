package interfaces

import (
	"context"

	"projeto_solar/internal/domain/entities"
)

// ProjectGraph is the fully-resolved aggregate handed to the gateway for a
// single atomic write. Client and Technician use derived natural-key ids,
// so their writes are idempotent upserts inside the same transaction as the
// project row.
type ProjectGraph struct {
	Client     entities.Client
	Technician *entities.Technician
	Access     *entities.AccessRecord
	Project    entities.Project
	Kits       []entities.Kit
}

// IProjectRepository is the persistence gateway for project aggregates.
//
// CreateAggregate must be atomic: either every row of the graph (client,
// technician, access record, project, number guard, kits) commits, or none
// does. A num_projeto collision must surface as
// *ConflictError{Field:"num_projeto"} with nothing persisted.
type IProjectRepository interface {
	CreateAggregate(ctx context.Context, graph ProjectGraph) error

	// NextProjectSequence returns a monotonically increasing candidate
	// for project-number derivation. Uniqueness authority stays with the
	// guard row inside CreateAggregate.
	NextProjectSequence(ctx context.Context) (int64, error)

	// GetByID returns the zero value when the project does not exist.
	GetByID(ctx context.Context, id string) (entities.Project, error)

	// GetRecord loads the denormalized view of a project. Zero value when
	// absent.
	GetRecord(ctx context.Context, id string) (entities.ProjectRecord, error)

	ListByUserID(ctx context.Context, userID string) ([]entities.Project, error)
}
