package usecase

import (
	"context"
	"errors"
	"testing"

	"projeto_solar/internal/domain/entities"
	"projeto_solar/internal/usecase/interfaces"
	mock_interfaces "projeto_solar/internal/usecase/interfaces/mocks"

	"github.com/shopspring/decimal"
	"go.uber.org/mock/gomock"
)

func TestAccessUseCase_GetByClientTaxID(t *testing.T) {
	t.Run("invalid tax id", func(t *testing.T) {
		uc := NewAccessUseCase(nil)
		_, err := uc.GetByClientTaxID(context.Background(), "abc")
		if !errors.Is(err, ErrInvalidClientTaxID) {
			t.Fatalf("expected ErrInvalidClientTaxID, got %v", err)
		}
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIAccessRepository(ctrl)
		uc := NewAccessUseCase(repo)

		repo.EXPECT().GetByClientTaxID(gomock.Any(), "52998224725").Return(entities.AccessRecord{}, nil)

		_, err := uc.GetByClientTaxID(context.Background(), "52998224725")
		if !errors.Is(err, ErrAccessNotFound) {
			t.Fatalf("expected ErrAccessNotFound, got %v", err)
		}
	})

	t.Run("success strips formatting from the document", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIAccessRepository(ctrl)
		uc := NewAccessUseCase(repo)

		expected := entities.AccessRecord{ID: "acc-52998224725", ClientTaxID: "52998224725"}
		repo.EXPECT().GetByClientTaxID(gomock.Any(), "52998224725").Return(expected, nil)

		rec, err := uc.GetByClientTaxID(context.Background(), " 529.982.247-25 ")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if rec.ID != expected.ID {
			t.Fatalf("unexpected record: %+v", rec)
		}
	})
}

func TestAccessUseCase_UpdateByClientTaxID(t *testing.T) {
	tipo := entities.LigacaoTrifasica
	potencia := decimal.RequireFromString("7.25")

	t.Run("empty update", func(t *testing.T) {
		uc := NewAccessUseCase(nil)
		_, err := uc.UpdateByClientTaxID(context.Background(), "52998224725", interfaces.AccessUpdate{})
		if !errors.Is(err, ErrEmptyAccessUpdate) {
			t.Fatalf("expected ErrEmptyAccessUpdate, got %v", err)
		}
	})

	t.Run("invalid connection type", func(t *testing.T) {
		uc := NewAccessUseCase(nil)
		bad := entities.TipoLigacao("tetrafasico")
		_, err := uc.UpdateByClientTaxID(context.Background(), "52998224725", interfaces.AccessUpdate{TipoLigacao: &bad})
		if !errors.Is(err, ErrInvalidTipoLigacao) {
			t.Fatalf("expected ErrInvalidTipoLigacao, got %v", err)
		}
	})

	t.Run("updating never creates", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIAccessRepository(ctrl)
		uc := NewAccessUseCase(repo)

		repo.EXPECT().UpdateByClientTaxID(gomock.Any(), "52998224725", gomock.Any()).Return(entities.AccessRecord{}, nil)

		_, err := uc.UpdateByClientTaxID(context.Background(), "52998224725", interfaces.AccessUpdate{TipoLigacao: &tipo})
		if !errors.Is(err, ErrAccessNotFound) {
			t.Fatalf("expected ErrAccessNotFound, got %v", err)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIAccessRepository(ctrl)
		uc := NewAccessUseCase(repo)

		update := interfaces.AccessUpdate{TipoLigacao: &tipo, PotenciaInstalada: &potencia}
		expected := entities.AccessRecord{
			ID:                "acc-52998224725",
			ClientTaxID:       "52998224725",
			TipoLigacao:       tipo,
			PotenciaInstalada: potencia,
		}
		repo.EXPECT().UpdateByClientTaxID(gomock.Any(), "52998224725", update).Return(expected, nil)

		rec, err := uc.UpdateByClientTaxID(context.Background(), "529.982.247-25", update)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if rec.TipoLigacao != tipo {
			t.Fatalf("unexpected record: %+v", rec)
		}
	})
}
