package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"projeto_solar/internal/domain/entities"
	"projeto_solar/internal/domain/wizard"
	"projeto_solar/internal/usecase/interfaces"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrProjectNotFound   = errors.New("project not found")
	ErrEquipmentNotFound = errors.New("equipment item not found")
	ErrInvalidProjectID  = errors.New("invalid project id")
	ErrInvalidUserID     = errors.New("invalid user id")
)

// OwnershipMismatchError rejects an equipment reference owned by another
// user. The reference is never silently substituted or dropped.
type OwnershipMismatchError struct {
	ItemID string
}

func (e *OwnershipMismatchError) Error() string {
	return "equipment item " + e.ItemID + " does not belong to the submitting user"
}

// CategoryMismatchError rejects an equipment reference whose stored
// category differs from the wizard slot it was selected for.
type CategoryMismatchError struct {
	ItemID string
	Want   entities.EquipmentCategory
	Got    entities.EquipmentCategory
}

func (e *CategoryMismatchError) Error() string {
	return fmt.Sprintf("equipment item %s is a %s, not a %s", e.ItemID, e.Got, e.Want)
}

// maxNumberAttempts bounds the retry loop when a generated project number
// races with a concurrent submission. Exhaustion surfaces the last
// ConflictError to the caller instead of retrying forever.
const maxNumberAttempts = 3

// IProjectUseCase is the project registration orchestrator.
type IProjectUseCase interface {
	CreateProject(ctx context.Context, userID string, sub wizard.Submission) (entities.ProjectRecord, error)
	GetRecord(ctx context.Context, id string) (entities.ProjectRecord, error)
	ListByUser(ctx context.Context, userID string) ([]entities.Project, error)
}

type ProjectUseCase struct {
	projects  interfaces.IProjectRepository
	equipment interfaces.IEquipmentRepository
}

var _ IProjectUseCase = (*ProjectUseCase)(nil)

func NewProjectUseCase(projects interfaces.IProjectRepository, equipment interfaces.IEquipmentRepository) *ProjectUseCase {
	return &ProjectUseCase{projects: projects, equipment: equipment}
}

// CreateProject turns a validated wizard submission into one consistent set
// of records:
//
//  1. the aggregate payload is re-validated (pure, storage-free);
//  2. equipment references are resolved before any write, so referential
//     failures surface as validation errors rather than transaction aborts;
//  3. the whole graph (client/technician upserts, access record, project,
//     number guard, kits) is written in a single atomic transaction;
//  4. a num_projeto collision re-derives the candidate and retries, at most
//     maxNumberAttempts times.
//
// The returned record is a snapshot assembled from the data just committed,
// never a live reference.
func (u *ProjectUseCase) CreateProject(ctx context.Context, userID string, sub wizard.Submission) (entities.ProjectRecord, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return entities.ProjectRecord{}, ErrInvalidUserID
	}

	sub, ferrs := wizard.ValidateAggregate(sub)
	if ferrs != nil {
		return entities.ProjectRecord{}, ferrs
	}

	resolved, err := u.resolveEquipment(ctx, userID, sub.Equipamentos.Itens)
	if err != nil {
		return entities.ProjectRecord{}, err
	}

	graph := buildGraph(userID, sub)

	var lastErr error
	for attempt := 0; attempt < maxNumberAttempts; attempt++ {
		seq, err := u.projects.NextProjectSequence(ctx)
		if err != nil {
			return entities.ProjectRecord{}, err
		}
		graph.Project.NumProjeto = FormatProjectNumber(seq)

		if err := u.projects.CreateAggregate(ctx, graph); err != nil {
			if interfaces.IsConflict(err, "num_projeto") {
				// The candidate is re-derivable; race lost, try a fresh one.
				lastErr = err
				continue
			}
			return entities.ProjectRecord{}, err
		}
		return assembleRecord(graph, resolved), nil
	}
	return entities.ProjectRecord{}, lastErr
}

func (u *ProjectUseCase) GetRecord(ctx context.Context, id string) (entities.ProjectRecord, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.ProjectRecord{}, ErrInvalidProjectID
	}

	rec, err := u.projects.GetRecord(ctx, id)
	if err != nil {
		return entities.ProjectRecord{}, err
	}
	if rec.Project.ID == "" {
		return entities.ProjectRecord{}, ErrProjectNotFound
	}
	return rec.Snapshot(), nil
}

func (u *ProjectUseCase) ListByUser(ctx context.Context, userID string) ([]entities.Project, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return nil, ErrInvalidUserID
	}
	return u.projects.ListByUserID(ctx, userID)
}

// resolveEquipment confirms each referenced item exists, belongs to the
// submitting user and matches the declared category. Read-only; it runs
// to completion before the write transaction opens.
func (u *ProjectUseCase) resolveEquipment(ctx context.Context, userID string, refs []wizard.EquipmentRef) ([]entities.EquipmentItem, error) {
	items := make([]entities.EquipmentItem, 0, len(refs))
	for _, ref := range refs {
		item, err := u.equipment.GetByID(ctx, ref.ItemID)
		if err != nil {
			return nil, err
		}
		if item.ID == "" {
			return nil, fmt.Errorf("%w: %s", ErrEquipmentNotFound, ref.ItemID)
		}
		if item.UserID != userID {
			return nil, &OwnershipMismatchError{ItemID: ref.ItemID}
		}
		if item.Categoria != entities.EquipmentCategory(ref.Categoria) {
			return nil, &CategoryMismatchError{
				ItemID: ref.ItemID,
				Want:   entities.EquipmentCategory(ref.Categoria),
				Got:    item.Categoria,
			}
		}
		items = append(items, item)
	}
	return items, nil
}

// FormatProjectNumber renders a sequence value as the human-facing project
// number.
func FormatProjectNumber(seq int64) string {
	return fmt.Sprintf("FV-%06d", seq)
}

func buildGraph(userID string, sub wizard.Submission) interfaces.ProjectGraph {
	now := time.Now().UTC()

	client := entities.Client{
		ID:         entities.ClientID(sub.Cliente.CPFCNPJ),
		Nome:       sub.Cliente.Nome,
		TipoPessoa: entities.TipoPessoa(sub.Cliente.TipoPessoa),
		CPFCNPJ:    sub.Cliente.CPFCNPJ,
		Email:      sub.Cliente.Email,
		Telefone:   sub.Cliente.Telefone,
		Endereco:   sub.Cliente.Endereco.ToEntity(),
	}

	project := entities.Project{
		ID:        uuid.NewString(),
		UserID:    userID,
		ClientID:  client.ID,
		CreatedAt: now,
	}

	graph := interfaces.ProjectGraph{Client: client, Project: project}

	if sub.Tecnico != nil && !sub.Tecnico.Empty() {
		tec := entities.Technician{
			ID:           entities.TechnicianID(sub.Tecnico.Registro),
			Nome:         sub.Tecnico.Nome,
			Registro:     sub.Tecnico.Registro,
			TipoRegistro: entities.TipoRegistro(sub.Tecnico.TipoRegistro),
			Email:        sub.Tecnico.Email,
			Telefone:     sub.Tecnico.Telefone,
			Endereco:     sub.Tecnico.Endereco.ToEntity(),
		}
		graph.Technician = &tec
		graph.Project.TechnicianID = tec.ID
	}

	// A present but empty optional payload means the step was skipped; it
	// must never materialize a row keyed by the client document.
	if sub.Acesso != nil && !sub.Acesso.Empty() {
		acc := entities.AccessRecord{
			ID:                entities.AccessRecordID(client.CPFCNPJ),
			ClientTaxID:       client.CPFCNPJ,
			TipoLigacao:       entities.TipoLigacao(sub.Acesso.TipoLigacao),
			TensaoAtendimento: sub.Acesso.TensaoAtendimento,
			Concessionaria:    sub.Acesso.Concessionaria,
			PotenciaInstalada: parseRating(sub.Acesso.PotenciaInstalada),
			Latitude:          parseCoordinate(sub.Acesso.Latitude),
			Longitude:         parseCoordinate(sub.Acesso.Longitude),
		}
		graph.Access = &acc
		graph.Project.AccessRecordID = acc.ID
	}

	graph.Kits = make([]entities.Kit, 0, len(sub.Equipamentos.Itens))
	for _, ref := range sub.Equipamentos.Itens {
		graph.Kits = append(graph.Kits, entities.Kit{
			ID:          uuid.NewString(),
			ProjectID:   project.ID,
			EquipmentID: ref.ItemID,
			Categoria:   entities.EquipmentCategory(ref.Categoria),
			Quantidade:  ref.Quantidade,
		})
	}
	return graph
}

func assembleRecord(graph interfaces.ProjectGraph, items []entities.EquipmentItem) entities.ProjectRecord {
	byID := make(map[string]entities.EquipmentItem, len(items))
	for _, it := range items {
		byID[it.ID] = it
	}

	rec := entities.ProjectRecord{
		Project:    graph.Project,
		Client:     graph.Client,
		Technician: graph.Technician,
		Access:     graph.Access,
		Kits:       make([]entities.KitRecord, 0, len(graph.Kits)),
	}
	for _, kit := range graph.Kits {
		rec.Kits = append(rec.Kits, entities.KitRecord{Kit: kit, Equipment: byID[kit.EquipmentID]})
	}
	return rec.Snapshot()
}

// parseRating parses an already-validated decimal string at the declared
// rating scale. Empty input yields zero.
func parseRating(s string) decimal.Decimal {
	if s == "" {
		return decimal.Zero
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero
	}
	return d.Round(entities.RatingScale)
}

// parseCoordinate keeps up to 6 decimal places, enough for ~11cm precision.
func parseCoordinate(s string) decimal.Decimal {
	if s == "" {
		return decimal.Zero
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero
	}
	return d.Round(6)
}
