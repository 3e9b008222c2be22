package request

import (
	"projeto_solar/internal/domain/entities"
	"projeto_solar/internal/usecase"

	"github.com/shopspring/decimal"
)

// EquipmentRequest registers one catalog item. Ratings arrive as JSON
// numbers and are converted to fixed-point decimals before they reach the
// use case.
type EquipmentRequest struct {
	ClientID     string  `json:"client_id"`
	Categoria    string  `json:"categoria" binding:"required"`
	Fabricante   string  `json:"fabricante" binding:"required"`
	Modelo       string  `json:"modelo" binding:"required"`
	PotenciaW    float64 `json:"potencia_w"`
	TensaoMaxV   float64 `json:"tensao_max_v"`
	CorrenteMaxA float64 `json:"corrente_max_a"`
}

func (r EquipmentRequest) ToInput() usecase.EquipmentInput {
	return usecase.EquipmentInput{
		ClientID:     r.ClientID,
		Categoria:    entities.EquipmentCategory(r.Categoria),
		Fabricante:   r.Fabricante,
		Modelo:       r.Modelo,
		PotenciaW:    decimal.NewFromFloat(r.PotenciaW),
		TensaoMaxV:   decimal.NewFromFloat(r.TensaoMaxV),
		CorrenteMaxA: decimal.NewFromFloat(r.CorrenteMaxA),
	}
}
