package interfaces

import (
	"context"

	"projeto_solar/internal/domain/entities"

	"github.com/shopspring/decimal"
)

// AccessUpdate carries the partially-updatable fields of an access record.
// Nil pointers mean "leave unchanged".
type AccessUpdate struct {
	TipoLigacao       *entities.TipoLigacao
	TensaoAtendimento *string
	Concessionaria    *string
	PotenciaInstalada *decimal.Decimal
	Latitude          *decimal.Decimal
	Longitude         *decimal.Decimal
}

// Empty reports whether the update touches no field.
func (u AccessUpdate) Empty() bool {
	return u.TipoLigacao == nil && u.TensaoAtendimento == nil && u.Concessionaria == nil &&
		u.PotenciaInstalada == nil && u.Latitude == nil && u.Longitude == nil
}

// IAccessRepository maintains access records independently of project
// creation. UpdateByClientTaxID returns the zero value when no record
// exists for that client.
type IAccessRepository interface {
	GetByClientTaxID(ctx context.Context, clientTaxID string) (entities.AccessRecord, error)
	UpdateByClientTaxID(ctx context.Context, clientTaxID string, update AccessUpdate) (entities.AccessRecord, error)
}
