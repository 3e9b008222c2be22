package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

// EquipmentCategory identifies the wizard slot an equipment item can fill.
type EquipmentCategory string

const (
	CategoriaInversor   EquipmentCategory = "inversor"
	CategoriaModulo     EquipmentCategory = "modulo"
	CategoriaProtecaoCA EquipmentCategory = "protecao_ca"
	CategoriaProtecaoCC EquipmentCategory = "protecao_cc"
)

// RatingScale is the declared decimal scale of electrical ratings. Values
// are persisted as fixed-point decimals at this scale and converted to
// floating point only at the API boundary.
const RatingScale = 2

// ValidCategory reports whether c is one of the known equipment categories.
func ValidCategory(c EquipmentCategory) bool {
	switch c {
	case CategoriaInversor, CategoriaModulo, CategoriaProtecaoCA, CategoriaProtecaoCC:
		return true
	}
	return false
}

// EquipmentItem is a catalog entry owned by the registering user.
//
// Storage model:
//   - PK: id
//   - GSI: user_id-index (PK: user_id)
type EquipmentItem struct {
	ID         string            `json:"id"`
	UserID     string            `json:"user_id"`
	ClientID   string            `json:"client_id,omitempty"`
	Categoria  EquipmentCategory `json:"categoria"`
	Fabricante string            `json:"fabricante"`
	Modelo     string            `json:"modelo"`

	// Electrical ratings, fixed-point at RatingScale.
	PotenciaW    decimal.Decimal `json:"potencia_w"`
	TensaoMaxV   decimal.Decimal `json:"tensao_max_v"`
	CorrenteMaxA decimal.Decimal `json:"corrente_max_a"`

	CreatedAt time.Time `json:"created_at"`
}
