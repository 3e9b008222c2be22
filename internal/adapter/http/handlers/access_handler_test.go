package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"projeto_solar/internal/adapter/http/handlers/mocks"
	"projeto_solar/internal/domain/entities"
	"projeto_solar/internal/usecase"
	"projeto_solar/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"go.uber.org/mock/gomock"
)

func putJSON(t *testing.T, r *gin.Engine, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPut, path, bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestAccessHandler_UpdateAccess(t *testing.T) {
	gin.SetMode(gin.TestMode)

	newRouter := func(uc *mocks.MockIAccessUseCase) *gin.Engine {
		h := NewAccessHandler(uc)
		r := gin.New()
		r.PUT("/v1/access/:clientTaxId", h.UpdateAccess)
		return r
	}

	t.Run("invalid json", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		r := newRouter(mocks.NewMockIAccessUseCase(ctrl))

		w := putJSON(t, r, "/v1/access/52998224725", "{")
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("empty update maps to 400", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIAccessUseCase(ctrl)
		r := newRouter(uc)

		uc.EXPECT().UpdateByClientTaxID(gomock.Any(), "52998224725", gomock.Any()).
			Return(entities.AccessRecord{}, usecase.ErrEmptyAccessUpdate)

		w := putJSON(t, r, "/v1/access/52998224725", "{}")
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("absent record maps to 404", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIAccessUseCase(ctrl)
		r := newRouter(uc)

		uc.EXPECT().UpdateByClientTaxID(gomock.Any(), "52998224725", gomock.Any()).
			Return(entities.AccessRecord{}, usecase.ErrAccessNotFound)

		w := putJSON(t, r, "/v1/access/52998224725", `{"concessionaria":"Enel"}`)
		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("success returns the updated record with map url", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIAccessUseCase(ctrl)
		r := newRouter(uc)

		uc.EXPECT().UpdateByClientTaxID(gomock.Any(), "52998224725", gomock.Any()).DoAndReturn(
			func(_ any, _ string, update interfaces.AccessUpdate) (entities.AccessRecord, error) {
				if update.Concessionaria == nil || *update.Concessionaria != "Enel" {
					t.Fatalf("unexpected update: %+v", update)
				}
				return entities.AccessRecord{
					ID:             "acc-52998224725",
					ClientTaxID:    "52998224725",
					TipoLigacao:    entities.LigacaoBifasica,
					Concessionaria: "Enel",
					Latitude:       decimal.RequireFromString("-23.55052"),
					Longitude:      decimal.RequireFromString("-46.633308"),
				}, nil
			},
		)

		w := putJSON(t, r, "/v1/access/52998224725", `{"concessionaria":"Enel"}`)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
		}

		var body struct {
			Success bool `json:"success"`
			Data    struct {
				Concessionaria string `json:"concessionaria"`
				MapaURL        string `json:"mapa_url"`
			} `json:"data"`
		}
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("unmarshal: %v", err)
		}
		if body.Data.Concessionaria != "Enel" {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
		if body.Data.MapaURL != "https://www.google.com/maps?q=-23.55052,-46.633308" {
			t.Fatalf("unexpected map url: %q", body.Data.MapaURL)
		}
	})
}

func TestAccessHandler_GetAccess(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIAccessUseCase(ctrl)
		h := NewAccessHandler(uc)
		r := gin.New()
		r.GET("/v1/access/:clientTaxId", h.GetAccess)

		uc.EXPECT().GetByClientTaxID(gomock.Any(), "52998224725").
			Return(entities.AccessRecord{}, usecase.ErrAccessNotFound)

		req := httptest.NewRequest(http.MethodGet, "/v1/access/52998224725", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIAccessUseCase(ctrl)
		h := NewAccessHandler(uc)
		r := gin.New()
		r.GET("/v1/access/:clientTaxId", h.GetAccess)

		uc.EXPECT().GetByClientTaxID(gomock.Any(), "52998224725").
			Return(entities.AccessRecord{ID: "acc-52998224725", TipoLigacao: entities.LigacaoMonofasica}, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/access/52998224725", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}
