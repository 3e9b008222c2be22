package usecase

import (
	"context"
	"errors"
	"strings"

	"projeto_solar/internal/domain/entities"
	"projeto_solar/internal/usecase/interfaces"
)

var (
	ErrAccessNotFound     = errors.New("access record not found")
	ErrInvalidClientTaxID = errors.New("invalid client tax id")
	ErrEmptyAccessUpdate  = errors.New("access update has no fields")
	ErrInvalidTipoLigacao = errors.New("invalid connection type")
)

// IAccessUseCase maintains access records after project creation.
type IAccessUseCase interface {
	GetByClientTaxID(ctx context.Context, clientTaxID string) (entities.AccessRecord, error)
	UpdateByClientTaxID(ctx context.Context, clientTaxID string, update interfaces.AccessUpdate) (entities.AccessRecord, error)
}

type AccessUseCase struct {
	repo interfaces.IAccessRepository
}

var _ IAccessUseCase = (*AccessUseCase)(nil)

func NewAccessUseCase(repo interfaces.IAccessRepository) *AccessUseCase {
	return &AccessUseCase{repo: repo}
}

func (u *AccessUseCase) GetByClientTaxID(ctx context.Context, clientTaxID string) (entities.AccessRecord, error) {
	clientTaxID = sanitizeTaxID(clientTaxID)
	if clientTaxID == "" {
		return entities.AccessRecord{}, ErrInvalidClientTaxID
	}

	rec, err := u.repo.GetByClientTaxID(ctx, clientTaxID)
	if err != nil {
		return entities.AccessRecord{}, err
	}
	if rec.ID == "" {
		return entities.AccessRecord{}, ErrAccessNotFound
	}
	return rec, nil
}

// UpdateByClientTaxID applies a partial update to an existing access
// record. Updating never creates a record: absence is a not-found, so
// project identity stays untouched.
func (u *AccessUseCase) UpdateByClientTaxID(ctx context.Context, clientTaxID string, update interfaces.AccessUpdate) (entities.AccessRecord, error) {
	clientTaxID = sanitizeTaxID(clientTaxID)
	if clientTaxID == "" {
		return entities.AccessRecord{}, ErrInvalidClientTaxID
	}
	if update.Empty() {
		return entities.AccessRecord{}, ErrEmptyAccessUpdate
	}
	if update.TipoLigacao != nil {
		switch *update.TipoLigacao {
		case entities.LigacaoMonofasica, entities.LigacaoBifasica, entities.LigacaoTrifasica:
		default:
			return entities.AccessRecord{}, ErrInvalidTipoLigacao
		}
	}

	rec, err := u.repo.UpdateByClientTaxID(ctx, clientTaxID, update)
	if err != nil {
		return entities.AccessRecord{}, err
	}
	if rec.ID == "" {
		return entities.AccessRecord{}, ErrAccessNotFound
	}
	return rec, nil
}

func sanitizeTaxID(s string) string {
	var b strings.Builder
	for _, r := range strings.TrimSpace(s) {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}
