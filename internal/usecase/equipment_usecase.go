package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"projeto_solar/internal/domain/entities"
	"projeto_solar/internal/usecase/interfaces"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrInvalidEquipmentCategory = errors.New("invalid equipment category")
	ErrInvalidEquipmentName     = errors.New("manufacturer and model are required")
	ErrInvalidEquipmentRating   = errors.New("electrical ratings must not be negative")
)

// EquipmentInput is the registration command for a new catalog item.
type EquipmentInput struct {
	ClientID     string
	Categoria    entities.EquipmentCategory
	Fabricante   string
	Modelo       string
	PotenciaW    decimal.Decimal
	TensaoMaxV   decimal.Decimal
	CorrenteMaxA decimal.Decimal
}

// IEquipmentUseCase exposes the equipment catalog operations.
type IEquipmentUseCase interface {
	Register(ctx context.Context, userID string, in EquipmentInput) (entities.EquipmentItem, error)
	ListByUser(ctx context.Context, userID string, categoria entities.EquipmentCategory, clientID string) ([]entities.EquipmentItem, error)
}

type EquipmentUseCase struct {
	repo interfaces.IEquipmentRepository
}

var _ IEquipmentUseCase = (*EquipmentUseCase)(nil)

func NewEquipmentUseCase(repo interfaces.IEquipmentRepository) *EquipmentUseCase {
	return &EquipmentUseCase{repo: repo}
}

func (u *EquipmentUseCase) Register(ctx context.Context, userID string, in EquipmentInput) (entities.EquipmentItem, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return entities.EquipmentItem{}, ErrInvalidUserID
	}
	if !entities.ValidCategory(in.Categoria) {
		return entities.EquipmentItem{}, ErrInvalidEquipmentCategory
	}

	in.Fabricante = strings.TrimSpace(in.Fabricante)
	in.Modelo = strings.TrimSpace(in.Modelo)
	if in.Fabricante == "" || in.Modelo == "" {
		return entities.EquipmentItem{}, ErrInvalidEquipmentName
	}
	if in.PotenciaW.IsNegative() || in.TensaoMaxV.IsNegative() || in.CorrenteMaxA.IsNegative() {
		return entities.EquipmentItem{}, ErrInvalidEquipmentRating
	}

	item := entities.EquipmentItem{
		ID:           uuid.NewString(),
		UserID:       userID,
		ClientID:     strings.TrimSpace(in.ClientID),
		Categoria:    in.Categoria,
		Fabricante:   in.Fabricante,
		Modelo:       in.Modelo,
		PotenciaW:    in.PotenciaW.Round(entities.RatingScale),
		TensaoMaxV:   in.TensaoMaxV.Round(entities.RatingScale),
		CorrenteMaxA: in.CorrenteMaxA.Round(entities.RatingScale),
		CreatedAt:    time.Now().UTC(),
	}
	return u.repo.Create(ctx, item)
}

func (u *EquipmentUseCase) ListByUser(ctx context.Context, userID string, categoria entities.EquipmentCategory, clientID string) ([]entities.EquipmentItem, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return nil, ErrInvalidUserID
	}
	if categoria != "" && !entities.ValidCategory(categoria) {
		return nil, ErrInvalidEquipmentCategory
	}
	return u.repo.ListByUserID(ctx, userID, categoria, strings.TrimSpace(clientID))
}
