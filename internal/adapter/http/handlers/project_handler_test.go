package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	request "projeto_solar/internal/adapter/http/dto/request"
	"projeto_solar/internal/adapter/http/handlers/mocks"
	"projeto_solar/internal/domain/entities"
	"projeto_solar/internal/domain/wizard"
	"projeto_solar/internal/usecase"
	"projeto_solar/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func authAs(userID string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if userID != "" {
			c.Set("user_id", userID)
		}
		c.Next()
	}
}

func validProjectRequest() request.ProjectRequest {
	return request.ProjectRequest{
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
		}},
	}
}

func postJSON(t *testing.T, r *gin.Engine, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	raw, err := json.Marshal(body)
	if err != nil {
		t.Fatalf("marshal body: %v", err)
	}
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewBuffer(raw))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestProjectHandler_CreateProject(t *testing.T) {
	gin.SetMode(gin.TestMode)

	newRouter := func(uc *mocks.MockIProjectUseCase, userID string) *gin.Engine {
		h := NewProjectHandler(uc)
		r := gin.New()
		r.POST("/v1/projects", authAs(userID), h.CreateProject)
		return r
	}

	t.Run("no session", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		r := newRouter(mocks.NewMockIProjectUseCase(ctrl), "")

		w := postJSON(t, r, "/v1/projects", validProjectRequest())
		if w.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", w.Code)
		}
	})

	t.Run("invalid json", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		r := newRouter(mocks.NewMockIProjectUseCase(ctrl), "user-1")

		req := httptest.NewRequest(http.MethodPost, "/v1/projects", bytes.NewBufferString("{"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("incomplete wizard never reaches the orchestrator", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIProjectUseCase(ctrl)
		r := newRouter(uc, "user-1")

		payload := validProjectRequest()
		payload.Cliente = wizard.ClientePayload{}

		w := postJSON(t, r, "/v1/projects", payload)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}

		var body struct {
			Success bool               `json:"success"`
			Errors  wizard.FieldErrors `json:"errors"`
		}
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("unmarshal: %v", err)
		}
		if body.Success || len(body.Errors) == 0 {
			t.Fatalf("expected field errors, got %s", w.Body.String())
		}
	})

	t.Run("referential failure maps to 400", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIProjectUseCase(ctrl)
		r := newRouter(uc, "user-1")

		uc.EXPECT().CreateProject(gomock.Any(), "user-1", gomock.Any()).
			Return(entities.ProjectRecord{}, &usecase.OwnershipMismatchError{ItemID: "eq-1"})

		w := postJSON(t, r, "/v1/projects", validProjectRequest())
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("number conflict maps to 409", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIProjectUseCase(ctrl)
		r := newRouter(uc, "user-1")

		uc.EXPECT().CreateProject(gomock.Any(), "user-1", gomock.Any()).
			Return(entities.ProjectRecord{}, &interfaces.ConflictError{Field: "num_projeto"})

		w := postJSON(t, r, "/v1/projects", validProjectRequest())
		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIProjectUseCase(ctrl)
		r := newRouter(uc, "user-1")

		rec := entities.ProjectRecord{
			Project: entities.Project{ID: "p-1", NumProjeto: "FV-000001", UserID: "user-1"},
			Client:  entities.Client{ID: "cli-52998224725", Nome: "Maria Silva"},
			Kits: []entities.KitRecord{{
				Kit:       entities.Kit{ID: "kit-1", ProjectID: "p-1", EquipmentID: "eq-1", Categoria: entities.CategoriaInversor, Quantidade: 1},
				Equipment: entities.EquipmentItem{ID: "eq-1", Categoria: entities.CategoriaInversor},
			}},
		}
		uc.EXPECT().CreateProject(gomock.Any(), "user-1", gomock.Any()).DoAndReturn(
			func(_ any, _ string, sub wizard.Submission) (entities.ProjectRecord, error) {
				if sub.Cliente.CPFCNPJ != "52998224725" {
					t.Fatalf("unexpected submission: %+v", sub.Cliente)
				}
				return rec, nil
			},
		)

		w := postJSON(t, r, "/v1/projects", validProjectRequest())
		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
		}

		var body struct {
			Success bool `json:"success"`
			Data    struct {
				NumProjeto string `json:"num_projeto"`
			} `json:"data"`
		}
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("unmarshal: %v", err)
		}
		if !body.Success || body.Data.NumProjeto != "FV-000001" {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})
}

func TestProjectHandler_ValidateStep(t *testing.T) {
	gin.SetMode(gin.TestMode)

	newRouter := func() *gin.Engine {
		h := NewProjectHandler(nil)
		r := gin.New()
		r.POST("/v1/projects/steps/:step/validate", h.ValidateStep)
		return r
	}

	t.Run("unknown step", func(t *testing.T) {
		r := newRouter()
		w := postJSON(t, r, "/v1/projects/steps/pagamento/validate", gin.H{})
		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("field errors", func(t *testing.T) {
		r := newRouter()
		w := postJSON(t, r, "/v1/projects/steps/cliente/validate", gin.H{"nome": "x"})
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("sanitized payload comes back", func(t *testing.T) {
		r := newRouter()
		payload := validProjectRequest().Cliente
		payload.CPFCNPJ = "529.982.247-25"

		w := postJSON(t, r, "/v1/projects/steps/cliente/validate", payload)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
		}

		var body struct {
			Success bool                  `json:"success"`
			Data    wizard.ClientePayload `json:"data"`
		}
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("unmarshal: %v", err)
		}
		if body.Data.CPFCNPJ != "52998224725" {
			t.Fatalf("expected sanitized document, got %q", body.Data.CPFCNPJ)
		}
	})

	t.Run("optional step accepts empty payload", func(t *testing.T) {
		r := newRouter()
		w := postJSON(t, r, "/v1/projects/steps/tecnico/validate", gin.H{})
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
		}
	})
}

func TestProjectHandler_GetProject(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("another user's project reads as not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIProjectUseCase(ctrl)
		h := NewProjectHandler(uc)
		r := gin.New()
		r.GET("/v1/projects/:id", authAs("user-1"), h.GetProject)

		uc.EXPECT().GetRecord(gomock.Any(), "p-1").
			Return(entities.ProjectRecord{Project: entities.Project{ID: "p-1", UserID: "user-2"}}, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/projects/p-1", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIProjectUseCase(ctrl)
		h := NewProjectHandler(uc)
		r := gin.New()
		r.GET("/v1/projects/:id", authAs("user-1"), h.GetProject)

		uc.EXPECT().GetRecord(gomock.Any(), "p-1").
			Return(entities.ProjectRecord{Project: entities.Project{ID: "p-1", UserID: "user-1", NumProjeto: "FV-000003"}}, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/projects/p-1", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}

func TestProjectHandler_ListProjects(t *testing.T) {
	gin.SetMode(gin.TestMode)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockIProjectUseCase(ctrl)
	h := NewProjectHandler(uc)
	r := gin.New()
	r.GET("/v1/projects", authAs("user-1"), h.ListProjects)

	uc.EXPECT().ListByUser(gomock.Any(), "user-1").
		Return([]entities.Project{{ID: "p-1", NumProjeto: "FV-000001"}}, nil)

	req := httptest.NewRequest(http.MethodGet, "/v1/projects", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var body struct {
		Success bool `json:"success"`
		Data    []struct {
			NumProjeto string `json:"num_projeto"`
		} `json:"data"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if len(body.Data) != 1 || body.Data[0].NumProjeto != "FV-000001" {
		t.Fatalf("unexpected body: %s", w.Body.String())
	}
}

func TestProjectHandler_StorageFailure(t *testing.T) {
	gin.SetMode(gin.TestMode)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockIProjectUseCase(ctrl)
	h := NewProjectHandler(uc)

	var recorded []*gin.Error
	r := gin.New()
	r.POST("/v1/projects", authAs("user-1"), func(c *gin.Context) {
		c.Next()
		recorded = c.Errors
	}, h.CreateProject)

	cause := errors.New("socket closed mid transaction")
	uc.EXPECT().CreateProject(gomock.Any(), "user-1", gomock.Any()).
		Return(entities.ProjectRecord{}, &interfaces.PersistenceError{Op: "projects.create", Err: cause})

	w := postJSON(t, r, "/v1/projects", validProjectRequest())

	if w.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", w.Code)
	}
	if strings.Contains(w.Body.String(), "socket closed") {
		t.Fatalf("internal cause leaked into the response: %s", w.Body.String())
	}
	if len(recorded) != 1 || !strings.Contains(recorded[0].Error(), "socket closed") {
		t.Fatalf("internal cause not recorded on the context: %v", recorded)
	}
}
