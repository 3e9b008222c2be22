package interfaces

import (
	"context"

	"projeto_solar/internal/domain/entities"
)

// IEquipmentRepository persists the user-owned equipment catalog.
//
// Lookups return the zero value (empty ID) when the item does not exist,
// leaving not-found semantics to the use case.
type IEquipmentRepository interface {
	Create(ctx context.Context, item entities.EquipmentItem) (entities.EquipmentItem, error)
	GetByID(ctx context.Context, id string) (entities.EquipmentItem, error)

	// ListByUserID filters by category when categoria is non-empty and by
	// linked client when clientID is non-empty.
	ListByUserID(ctx context.Context, userID string, categoria entities.EquipmentCategory, clientID string) ([]entities.EquipmentItem, error)
}
