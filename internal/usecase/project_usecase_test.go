package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"

	"projeto_solar/internal/domain/entities"
	"projeto_solar/internal/domain/wizard"
	"projeto_solar/internal/usecase/interfaces"
	mock_interfaces "projeto_solar/internal/usecase/interfaces/mocks"

	"github.com/shopspring/decimal"
	"go.uber.org/mock/gomock"
)

func validSubmission() wizard.Submission {
	return wizard.Submission{
		Cliente: wizard.ClientePayload{
			Nome:       "Maria Silva",
			TipoPessoa: "fisica",
			CPFCNPJ:    "52998224725",
			Endereco: wizard.EnderecoPayload{
				Logradouro: "Rua das Flores",
				Numero:     "100",
				Cidade:     "São Paulo",
				UF:         "SP",
				CEP:        "01001000",
			},
		},
		Equipamentos: wizard.EquipamentosPayload{Itens: []wizard.EquipmentRef{
			{ItemID: "eq-1", Categoria: "inversor", Quantidade: 1},
			{ItemID: "eq-2", Categoria: "modulo", Quantidade: 10},
		}},
	}
}

func ownedItem(id, categoria string) entities.EquipmentItem {
	return entities.EquipmentItem{
		ID:        id,
		UserID:    "user-1",
		Categoria: entities.EquipmentCategory(categoria),
		PotenciaW: decimal.NewFromInt(5000),
	}
}

func TestProjectUseCase_CreateProject(t *testing.T) {
	t.Run("invalid user id", func(t *testing.T) {
		uc := NewProjectUseCase(nil, nil)
		_, err := uc.CreateProject(context.Background(), "  ", validSubmission())
		if !errors.Is(err, ErrInvalidUserID) {
			t.Fatalf("expected ErrInvalidUserID, got %v", err)
		}
	})

	t.Run("invalid submission yields field errors without repo calls", func(t *testing.T) {
		uc := NewProjectUseCase(nil, nil)
		_, err := uc.CreateProject(context.Background(), "user-1", wizard.Submission{})
		var ferrs wizard.FieldErrors
		if !errors.As(err, &ferrs) || len(ferrs) == 0 {
			t.Fatalf("expected field errors, got %v", err)
		}
	})

	t.Run("equipment not found blocks before any write", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		projects := mock_interfaces.NewMockIProjectRepository(ctrl)
		equipment := mock_interfaces.NewMockIEquipmentRepository(ctrl)
		uc := NewProjectUseCase(projects, equipment)

		equipment.EXPECT().GetByID(gomock.Any(), "eq-1").Return(entities.EquipmentItem{}, nil)

		_, err := uc.CreateProject(context.Background(), "user-1", validSubmission())
		if !errors.Is(err, ErrEquipmentNotFound) {
			t.Fatalf("expected ErrEquipmentNotFound, got %v", err)
		}
	})

	t.Run("ownership mismatch blocks before any write", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		projects := mock_interfaces.NewMockIProjectRepository(ctrl)
		equipment := mock_interfaces.NewMockIEquipmentRepository(ctrl)
		uc := NewProjectUseCase(projects, equipment)

		foreign := ownedItem("eq-1", "inversor")
		foreign.UserID = "user-2"
		equipment.EXPECT().GetByID(gomock.Any(), "eq-1").Return(foreign, nil)

		_, err := uc.CreateProject(context.Background(), "user-1", validSubmission())
		var mismatch *OwnershipMismatchError
		if !errors.As(err, &mismatch) || mismatch.ItemID != "eq-1" {
			t.Fatalf("expected ownership mismatch on eq-1, got %v", err)
		}
	})

	t.Run("category mismatch blocks before any write", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		projects := mock_interfaces.NewMockIProjectRepository(ctrl)
		equipment := mock_interfaces.NewMockIEquipmentRepository(ctrl)
		uc := NewProjectUseCase(projects, equipment)

		equipment.EXPECT().GetByID(gomock.Any(), "eq-1").Return(ownedItem("eq-1", "modulo"), nil)

		_, err := uc.CreateProject(context.Background(), "user-1", validSubmission())
		var mismatch *CategoryMismatchError
		if !errors.As(err, &mismatch) {
			t.Fatalf("expected category mismatch, got %v", err)
		}
		if mismatch.Want != entities.CategoriaInversor || mismatch.Got != entities.CategoriaModulo {
			t.Fatalf("unexpected mismatch: %+v", mismatch)
		}
	})

	t.Run("success writes the whole graph once", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		projects := mock_interfaces.NewMockIProjectRepository(ctrl)
		equipment := mock_interfaces.NewMockIEquipmentRepository(ctrl)
		uc := NewProjectUseCase(projects, equipment)

		equipment.EXPECT().GetByID(gomock.Any(), "eq-1").Return(ownedItem("eq-1", "inversor"), nil)
		equipment.EXPECT().GetByID(gomock.Any(), "eq-2").Return(ownedItem("eq-2", "modulo"), nil)
		projects.EXPECT().NextProjectSequence(gomock.Any()).Return(int64(7), nil)
		projects.EXPECT().CreateAggregate(gomock.Any(), gomock.AssignableToTypeOf(interfaces.ProjectGraph{})).DoAndReturn(
			func(_ context.Context, graph interfaces.ProjectGraph) error {
				if graph.Project.NumProjeto != "FV-000007" {
					t.Fatalf("unexpected project number: %s", graph.Project.NumProjeto)
				}
				if graph.Client.ID != entities.ClientID("52998224725") {
					t.Fatalf("unexpected client id: %s", graph.Client.ID)
				}
				if graph.Technician != nil || graph.Access != nil {
					t.Fatalf("expected skipped optional relations to stay nil")
				}
				if len(graph.Kits) != 2 {
					t.Fatalf("expected 2 kits, got %d", len(graph.Kits))
				}
				for _, kit := range graph.Kits {
					if kit.ProjectID != graph.Project.ID {
						t.Fatalf("kit not linked to project: %+v", kit)
					}
				}
				return nil
			},
		)

		rec, err := uc.CreateProject(context.Background(), "user-1", validSubmission())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if rec.Project.NumProjeto != "FV-000007" {
			t.Fatalf("unexpected number: %s", rec.Project.NumProjeto)
		}
		if len(rec.Kits) != 2 || rec.Kits[0].Equipment.ID != "eq-1" {
			t.Fatalf("expected joined kit equipment, got %+v", rec.Kits)
		}
	})

	t.Run("number conflict retries with a fresh candidate", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		projects := mock_interfaces.NewMockIProjectRepository(ctrl)
		equipment := mock_interfaces.NewMockIEquipmentRepository(ctrl)
		uc := NewProjectUseCase(projects, equipment)

		equipment.EXPECT().GetByID(gomock.Any(), "eq-1").Return(ownedItem("eq-1", "inversor"), nil)
		equipment.EXPECT().GetByID(gomock.Any(), "eq-2").Return(ownedItem("eq-2", "modulo"), nil)

		gomock.InOrder(
			projects.EXPECT().NextProjectSequence(gomock.Any()).Return(int64(7), nil),
			projects.EXPECT().CreateAggregate(gomock.Any(), gomock.Any()).Return(&interfaces.ConflictError{Field: "num_projeto"}),
			projects.EXPECT().NextProjectSequence(gomock.Any()).Return(int64(8), nil),
			projects.EXPECT().CreateAggregate(gomock.Any(), gomock.Any()).Return(nil),
		)

		rec, err := uc.CreateProject(context.Background(), "user-1", validSubmission())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if rec.Project.NumProjeto != "FV-000008" {
			t.Fatalf("expected retried number, got %s", rec.Project.NumProjeto)
		}
	})

	t.Run("retries are bounded", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		projects := mock_interfaces.NewMockIProjectRepository(ctrl)
		equipment := mock_interfaces.NewMockIEquipmentRepository(ctrl)
		uc := NewProjectUseCase(projects, equipment)

		equipment.EXPECT().GetByID(gomock.Any(), "eq-1").Return(ownedItem("eq-1", "inversor"), nil)
		equipment.EXPECT().GetByID(gomock.Any(), "eq-2").Return(ownedItem("eq-2", "modulo"), nil)

		projects.EXPECT().NextProjectSequence(gomock.Any()).Return(int64(9), nil).Times(maxNumberAttempts)
		projects.EXPECT().CreateAggregate(gomock.Any(), gomock.Any()).
			Return(&interfaces.ConflictError{Field: "num_projeto"}).Times(maxNumberAttempts)

		_, err := uc.CreateProject(context.Background(), "user-1", validSubmission())
		if !interfaces.IsConflict(err, "num_projeto") {
			t.Fatalf("expected surfaced conflict, got %v", err)
		}
	})

	t.Run("other gateway errors are not retried", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		projects := mock_interfaces.NewMockIProjectRepository(ctrl)
		equipment := mock_interfaces.NewMockIEquipmentRepository(ctrl)
		uc := NewProjectUseCase(projects, equipment)

		equipment.EXPECT().GetByID(gomock.Any(), "eq-1").Return(ownedItem("eq-1", "inversor"), nil)
		equipment.EXPECT().GetByID(gomock.Any(), "eq-2").Return(ownedItem("eq-2", "modulo"), nil)

		boom := &interfaces.PersistenceError{Op: "projects.create", Err: errors.New("throttled")}
		projects.EXPECT().NextProjectSequence(gomock.Any()).Return(int64(10), nil)
		projects.EXPECT().CreateAggregate(gomock.Any(), gomock.Any()).Return(boom)

		_, err := uc.CreateProject(context.Background(), "user-1", validSubmission())
		var perr *interfaces.PersistenceError
		if !errors.As(err, &perr) {
			t.Fatalf("expected persistence error, got %v", err)
		}
	})
}

func TestProjectUseCase_CreateProject_TechnicianAndAccess(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	projects := mock_interfaces.NewMockIProjectRepository(ctrl)
	equipment := mock_interfaces.NewMockIEquipmentRepository(ctrl)
	uc := NewProjectUseCase(projects, equipment)

	sub := validSubmission()
	sub.Tecnico = &wizard.TecnicoPayload{
		Nome:         "José Ramos",
		Registro:     "CREA-12345",
		TipoRegistro: "crea",
		Endereco: wizard.EnderecoPayload{
			Logradouro: "Av. Central",
			Numero:     "22",
			Cidade:     "Campinas",
			UF:         "SP",
			CEP:        "13010000",
		},
	}
	sub.Acesso = &wizard.AcessoPayload{
		TipoLigacao:       "trifasico",
		TensaoAtendimento: "380V",
		Concessionaria:    "CPFL",
		PotenciaInstalada: "5.50",
		Latitude:          "-22.907104",
		Longitude:         "-47.063240",
	}

	equipment.EXPECT().GetByID(gomock.Any(), "eq-1").Return(ownedItem("eq-1", "inversor"), nil)
	equipment.EXPECT().GetByID(gomock.Any(), "eq-2").Return(ownedItem("eq-2", "modulo"), nil)
	projects.EXPECT().NextProjectSequence(gomock.Any()).Return(int64(1), nil)
	projects.EXPECT().CreateAggregate(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, graph interfaces.ProjectGraph) error {
			if graph.Technician == nil || graph.Technician.ID != entities.TechnicianID("CREA-12345") {
				t.Fatalf("expected derived technician id, got %+v", graph.Technician)
			}
			if graph.Access == nil || graph.Access.ID != entities.AccessRecordID("52998224725") {
				t.Fatalf("expected derived access id, got %+v", graph.Access)
			}
			if graph.Project.TechnicianID != graph.Technician.ID || graph.Project.AccessRecordID != graph.Access.ID {
				t.Fatalf("project not linked to relations: %+v", graph.Project)
			}
			if graph.Access.PotenciaInstalada.StringFixed(2) != "5.50" {
				t.Fatalf("unexpected potencia: %s", graph.Access.PotenciaInstalada)
			}
			return nil
		},
	)

	rec, err := uc.CreateProject(context.Background(), "user-1", sub)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Technician == nil || rec.Access == nil {
		t.Fatalf("expected relations in the record")
	}
}

func TestProjectUseCase_GetRecord(t *testing.T) {
	t.Run("invalid id", func(t *testing.T) {
		uc := NewProjectUseCase(nil, nil)
		_, err := uc.GetRecord(context.Background(), " ")
		if !errors.Is(err, ErrInvalidProjectID) {
			t.Fatalf("expected ErrInvalidProjectID, got %v", err)
		}
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		projects := mock_interfaces.NewMockIProjectRepository(ctrl)
		uc := NewProjectUseCase(projects, nil)

		projects.EXPECT().GetRecord(gomock.Any(), "p-1").Return(entities.ProjectRecord{}, nil)

		_, err := uc.GetRecord(context.Background(), "p-1")
		if !errors.Is(err, ErrProjectNotFound) {
			t.Fatalf("expected ErrProjectNotFound, got %v", err)
		}
	})

	t.Run("success returns a snapshot", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		projects := mock_interfaces.NewMockIProjectRepository(ctrl)
		uc := NewProjectUseCase(projects, nil)

		stored := entities.ProjectRecord{
			Project: entities.Project{ID: "p-1", NumProjeto: "FV-000001", UserID: "user-1"},
			Access:  &entities.AccessRecord{ID: "acc-1"},
		}
		projects.EXPECT().GetRecord(gomock.Any(), "p-1").Return(stored, nil)

		rec, err := uc.GetRecord(context.Background(), " p-1 ")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if rec.Access == stored.Access {
			t.Fatalf("expected copied access record, got shared pointer")
		}
	})
}

func TestProjectUseCase_ListByUser(t *testing.T) {
	t.Run("invalid user id", func(t *testing.T) {
		uc := NewProjectUseCase(nil, nil)
		_, err := uc.ListByUser(context.Background(), "")
		if !errors.Is(err, ErrInvalidUserID) {
			t.Fatalf("expected ErrInvalidUserID, got %v", err)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		projects := mock_interfaces.NewMockIProjectRepository(ctrl)
		uc := NewProjectUseCase(projects, nil)

		projects.EXPECT().ListByUserID(gomock.Any(), "user-1").Return([]entities.Project{{ID: "p-1"}}, nil)

		res, err := uc.ListByUser(context.Background(), " user-1 ")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(res) != 1 || res[0].ID != "p-1" {
			t.Fatalf("unexpected result: %+v", res)
		}
	})
}

func TestFormatProjectNumber(t *testing.T) {
	if got := FormatProjectNumber(7); got != "FV-000007" {
		t.Fatalf("unexpected format: %s", got)
	}
	if got := FormatProjectNumber(1234567); !strings.HasPrefix(got, "FV-") {
		t.Fatalf("unexpected format: %s", got)
	}
}

func TestProjectUseCase_SkippedOptionalSteps(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	projects := mock_interfaces.NewMockIProjectRepository(ctrl)
	equipment := mock_interfaces.NewMockIEquipmentRepository(ctrl)
	uc := NewProjectUseCase(projects, equipment)

	// Present but empty optional payloads mean the steps were skipped; no
	// technician or access rows may be written for them.
	sub := validSubmission()
	sub.Tecnico = &wizard.TecnicoPayload{}
	sub.Acesso = &wizard.AcessoPayload{}

	equipment.EXPECT().GetByID(gomock.Any(), "eq-1").Return(ownedItem("eq-1", "inversor"), nil)
	equipment.EXPECT().GetByID(gomock.Any(), "eq-2").Return(ownedItem("eq-2", "modulo"), nil)
	projects.EXPECT().NextProjectSequence(gomock.Any()).Return(int64(9), nil)
	projects.EXPECT().CreateAggregate(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, graph interfaces.ProjectGraph) error {
			if graph.Technician != nil || graph.Access != nil {
				t.Fatalf("skipped steps produced rows: %+v", graph)
			}
			if graph.Project.TechnicianID != "" || graph.Project.AccessRecordID != "" {
				t.Fatalf("project links to skipped rows: %+v", graph.Project)
			}
			return nil
		},
	)

	rec, err := uc.CreateProject(context.Background(), "user-1", sub)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Technician != nil || rec.Access != nil {
		t.Fatalf("record exposes skipped relations: %+v", rec)
	}
}
