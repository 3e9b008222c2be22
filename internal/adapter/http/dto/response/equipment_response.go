package response

import (
	"time"

	"projeto_solar/internal/domain/entities"
)

// EquipmentResponse exposes an equipment item with ratings converted back
// to floating point at the API boundary.
type EquipmentResponse struct {
	ID           string    `json:"id"`
	ClientID     string    `json:"client_id,omitempty"`
	Categoria    string    `json:"categoria"`
	Fabricante   string    `json:"fabricante"`
	Modelo       string    `json:"modelo"`
	PotenciaW    float64   `json:"potencia_w"`
	TensaoMaxV   float64   `json:"tensao_max_v"`
	CorrenteMaxA float64   `json:"corrente_max_a"`
	CreatedAt    time.Time `json:"created_at"`
}

func FromEquipmentItem(e entities.EquipmentItem) EquipmentResponse {
	return EquipmentResponse{
		ID:           e.ID,
		ClientID:     e.ClientID,
		Categoria:    string(e.Categoria),
		Fabricante:   e.Fabricante,
		Modelo:       e.Modelo,
		PotenciaW:    e.PotenciaW.InexactFloat64(),
		TensaoMaxV:   e.TensaoMaxV.InexactFloat64(),
		CorrenteMaxA: e.CorrenteMaxA.InexactFloat64(),
		CreatedAt:    e.CreatedAt,
	}
}

func FromEquipmentItems(items []entities.EquipmentItem) []EquipmentResponse {
	out := make([]EquipmentResponse, 0, len(items))
	for _, it := range items {
		out = append(out, FromEquipmentItem(it))
	}
	return out
}
