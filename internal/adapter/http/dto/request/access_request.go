package request

import (
	"projeto_solar/internal/domain/entities"
	"projeto_solar/internal/usecase/interfaces"

	"github.com/shopspring/decimal"
)

// AccessUpdateRequest is the partial update accepted by
// PUT /access/{clientTaxId}. Absent fields stay untouched.
type AccessUpdateRequest struct {
	TipoLigacao       *string  `json:"tipo_ligacao,omitempty"`
	TensaoAtendimento *string  `json:"tensao_atendimento,omitempty"`
	Concessionaria    *string  `json:"concessionaria,omitempty"`
	PotenciaInstalada *float64 `json:"potencia_instalada,omitempty"`
	Latitude          *float64 `json:"latitude,omitempty"`
	Longitude         *float64 `json:"longitude,omitempty"`
}

func (r AccessUpdateRequest) ToUpdate() interfaces.AccessUpdate {
	var update interfaces.AccessUpdate
	if r.TipoLigacao != nil {
		tipo := entities.TipoLigacao(*r.TipoLigacao)
		update.TipoLigacao = &tipo
	}
	update.TensaoAtendimento = r.TensaoAtendimento
	update.Concessionaria = r.Concessionaria
	if r.PotenciaInstalada != nil {
		d := decimal.NewFromFloat(*r.PotenciaInstalada)
		update.PotenciaInstalada = &d
	}
	if r.Latitude != nil {
		d := decimal.NewFromFloat(*r.Latitude)
		update.Latitude = &d
	}
	if r.Longitude != nil {
		d := decimal.NewFromFloat(*r.Longitude)
		update.Longitude = &d
	}
	return update
}
