package backend_test

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/samandr77/microservices/voucher/internal/clients/backend"
	"github.com/samandr77/microservices/voucher/internal/entity"
	"github.com/samandr77/microservices/voucher/pkg/config"
)

const requisitionJSON = `{
	"id": 42,
	"data_emissao": "2026-03-01T10:00:00.000-03:00",
	"km_atual": 12000,
	"destino": "Centro",
	"preco_unitario": null,
	"quantidade_litros": null,
	"valor_total": null,
	"valor_limite": "100.00",
	"completar_tanque": false,
	"voucher_codigo": "A7F9-29QK-4C1M-XYZW",
	"voucher_status": "pendente",
	"voucher_validade": "2026-03-02T10:00:00-03:00",
	"g_veiculo_id": 3,
	"c_posto_id": 5,
	"c_tipo_combustivel_id": 1,
	"g_centro_custo_id": 9,
	"c_posto": {"id": 5, "nome_fantasia": "Posto Central"},
	"g_veiculo": {"id": 3, "placa": "ABC1D23"},
	"c_tipo_combustivel": {"id": 1, "descricao": "Gasolina Comum"},
	"g_centro_custo": {"id": 9, "nome": "Saúde"}
}`

func newClient(t *testing.T, h http.Handler) *backend.Client {
	t.Helper()

	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)

	return backend.NewClient(config.Backend{
		BaseURL:            srv.URL + "/",
		ServiceToken:       "service-token",
		Timeout:            time.Second * 5,
		PriceRetryAttempts: 2,
	}, nil)
}

func writeEnvelope(w http.ResponseWriter, status int, data string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = io.WriteString(w, `{"status":"success","data":`+data+`}`)
}

func TestClient_FindByCode(t *testing.T) {
	t.Parallel()

	c := newClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodGet, r.Method)
		require.Equal(t, "/api/v1/requisicoes/find_by_code", r.URL.Path)
		require.Equal(t, "A7F9-29QK-4C1M-XYZW", r.URL.Query().Get("codigo"))
		require.Equal(t, "Bearer user-token", r.Header.Get("Authorization"))

		writeEnvelope(w, http.StatusOK, requisitionJSON)
	}))

	ctx := entity.CtxWithJWT(context.Background(), "user-token")

	req, err := c.FindByCode(ctx, "A7F9-29QK-4C1M-XYZW")
	require.NoError(t, err)

	require.Equal(t, int64(42), req.ID)
	require.Equal(t, "A7F9-29QK-4C1M-XYZW", req.Code)
	require.Equal(t, entity.RequisitionStatusPending, req.Status)
	require.True(t, req.Limit.Valid)
	require.Equal(t, "100", req.Limit.Decimal.String())
	require.False(t, req.FillTank)
	require.Equal(t, int64(3), req.VehicleID)
	require.Equal(t, int64(5), req.StationID)
	require.Equal(t, int64(1), req.FuelTypeID)
	require.Equal(t, int64(9), req.CostCenterID)
	require.Equal(t, int64(12000), req.Odometer)
	require.Equal(t, "ABC1D23", req.VehiclePlate)
	require.Equal(t, "Posto Central", req.StationName)
	require.Equal(t, "Gasolina Comum", req.FuelTypeName)
	require.Equal(t, "Saúde", req.CostCenterName)
	require.True(t, req.ExpiresAt.After(req.IssuedAt))
	require.True(t, req.SettledAt.IsZero())
}

func TestClient_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		status  int
		body    string
		wantErr error
		wantMsg string
	}{
		{
			name:    "not found",
			status:  http.StatusNotFound,
			body:    `{"status":"error","message":"Voucher não encontrado"}`,
			wantErr: entity.ErrNotFound,
			wantMsg: "Voucher não encontrado",
		},
		{
			name:    "already settled",
			status:  http.StatusUnprocessableEntity,
			body:    `{"status":"error","message":"Voucher já utilizado"}`,
			wantErr: entity.ErrConflict,
			wantMsg: "Voucher já utilizado",
		},
		{
			name:    "unauthorized",
			status:  http.StatusUnauthorized,
			body:    `{"status":"error","message":"Token inválido"}`,
			wantErr: entity.ErrAuth,
			wantMsg: "Token inválido",
		},
		{
			name:    "forbidden raw body",
			status:  http.StatusForbidden,
			body:    `forbidden`,
			wantErr: entity.ErrAuth,
			wantMsg: "forbidden",
		},
		{
			name:    "server error",
			status:  http.StatusInternalServerError,
			body:    `boom`,
			wantErr: entity.ErrBackend,
			wantMsg: "boom",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			c := newClient(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = io.WriteString(w, tt.body)
			}))

			_, err := c.Settle(context.Background(), 42, decimal.RequireFromString("10"), decimal.RequireFromString("58.9"))
			require.ErrorIs(t, err, tt.wantErr)

			var be *entity.BackendError
			require.True(t, errors.As(err, &be))
			require.Equal(t, tt.status, be.StatusCode)
			require.Equal(t, tt.wantMsg, be.Message)
		})
	}
}

func TestClient_Settle(t *testing.T) {
	t.Parallel()

	c := newClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPatch, r.Method)
		require.Equal(t, "/api/v1/requisicoes/42/validar_voucher", r.URL.Path)
		require.Equal(t, "Bearer service-token", r.Header.Get("Authorization"))

		var body map[string]json.RawMessage
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		require.Equal(t, `"23.5"`, string(body["quantidade_litros"]))
		require.Equal(t, `"140"`, string(body["valor_total"]))

		writeEnvelope(w, http.StatusOK, `{
			"id": 42,
			"data_emissao": "2026-03-01T10:00:00Z",
			"preco_unitario": 5.96,
			"quantidade_litros": 23.5,
			"valor_total": "140.00",
			"valor_limite": "150.00",
			"completar_tanque": false,
			"voucher_codigo": "A7F9-29QK-4C1M-XYZW",
			"voucher_status": "validado",
			"voucher_validado_em": "2026-03-01 11:00:00"
		}`)
	}))

	req, err := c.Settle(context.Background(), 42, decimal.RequireFromString("23.5"), decimal.RequireFromString("140"))
	require.NoError(t, err)
	require.Equal(t, entity.RequisitionStatusValidated, req.Status)
	require.Equal(t, "23.5", req.LitersDispensed.String())
	require.Equal(t, "140", req.TotalAmount.String())
	require.False(t, req.SettledAt.IsZero())
}

func TestClient_BadResponse(t *testing.T) {
	t.Parallel()

	tests := map[string]string{
		"unknown status":   `{"id": 1, "voucher_status": "perdido"}`,
		"malformed number": `{"id": 1, "voucher_status": "pendente", "valor_limite": "cem"}`,
		"bad date":         `{"id": 1, "voucher_status": "pendente", "voucher_validade": "amanhã"}`,
		"missing id":       `{"voucher_status": "pendente"}`,
		"null data":        `null`,
	}

	for name, data := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			c := newClient(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				writeEnvelope(w, http.StatusOK, data)
			}))

			_, err := c.Requisition(context.Background(), 1)
			require.ErrorIs(t, err, entity.ErrBadResponse)
		})
	}
}

func TestClient_NetworkError(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.NotFoundHandler())
	srv.Close()

	c := backend.NewClient(config.Backend{BaseURL: srv.URL, Timeout: time.Second}, nil)

	_, err := c.Settle(context.Background(), 1, decimal.NewFromInt(1), decimal.NewFromInt(1))
	require.ErrorIs(t, err, entity.ErrNetwork)
}

func TestClient_FuelPrices(t *testing.T) {
	t.Parallel()

	var calls atomic.Int32

	c := newClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/v1/combustiveis", r.URL.Path)

		// the first call fails so the retrying client has to try again
		if calls.Add(1) == 1 {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}

		switch r.URL.Query().Get("page") {
		case "1":
			writeEnvelope(w, http.StatusOK, `{
				"pagy": {"current_page": 1, "total_pages": 2, "total_count": 2, "per_page": 1},
				"items": [{"id": 1, "preco": "5.89", "validade": "2099-01-01", "c_tipo_combustivel_id": 1,
					"c_tipo_combustivel": {"id": 1, "descricao": "Gasolina Comum"}}]
			}`)
		case "2":
			writeEnvelope(w, http.StatusOK, `{
				"pagy": {"current_page": 2, "total_pages": 2, "total_count": 2, "per_page": 1},
				"items": [{"id": 2, "preco": 6.2, "validade": null, "c_tipo_combustivel_id": 2}]
			}`)
		default:
			t.Errorf("unexpected page %q", r.URL.Query().Get("page"))
		}
	}))

	prices, err := c.FuelPrices(context.Background())
	require.NoError(t, err)
	require.Len(t, prices, 2)

	require.Equal(t, "Gasolina Comum", prices[0].FuelType)
	require.Equal(t, "5.89", prices[0].Price.String())
	require.Equal(t, 2099, prices[0].ValidUntil.Year())

	require.Equal(t, int64(2), prices[1].FuelTypeID)
	require.True(t, prices[1].ValidUntil.IsZero())
	require.Equal(t, int32(3), calls.Load())
}

func TestClient_FuelPricesByType(t *testing.T) {
	t.Parallel()

	c := newClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "7", r.URL.Query().Get("c_tipo_combustivel_id"))

		writeEnvelope(w, http.StatusOK, `{"pagy": {"current_page": 1, "total_pages": 1}, "items": [
			{"id": 10, "preco": "7.10", "c_tipo_combustivel_id": 7}
		]}`)
	}))

	prices, err := c.FuelPricesByType(context.Background(), 7)
	require.NoError(t, err)
	require.Len(t, prices, 1)
	require.Equal(t, int64(10), prices[0].ID)
}

func TestClient_CreateRequisition(t *testing.T) {
	t.Parallel()

	c := newClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/api/v1/requisicoes", r.URL.Path)

		var body backend.CreateRequisitionRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))

		require.Equal(t, int64(3), body.Requisition.GVeiculoID)
		require.True(t, body.Requisition.CompletarTanque)
		require.False(t, body.Requisition.ValorLimite.Valid)
		require.Nil(t, body.Requisition.GCentroCustoID)
		require.Equal(t, "ABCD-EFGH-JKMN-PQRS", body.Requisition.VoucherCodigo)

		writeEnvelope(w, http.StatusCreated, `{"id": 77, "voucher_status": "pendente", "completar_tanque": true,
			"voucher_codigo": "ABCD-EFGH-JKMN-PQRS"}`)
	}))

	req, err := c.CreateRequisition(context.Background(), entity.IssueRequest{
		VehicleID:  3,
		StationID:  5,
		FuelTypeID: 1,
		FillTank:   true,
		Code:       "ABCD-EFGH-JKMN-PQRS",
	})
	require.NoError(t, err)
	require.Equal(t, int64(77), req.ID)
	require.True(t, req.FillTank)
}

func TestClient_Me(t *testing.T) {
	t.Parallel()

	c := newClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/v1/auth/me", r.URL.Path)

		writeEnvelope(w, http.StatusOK, `{"user": {"id": 8, "nome": "Ana", "email": "ana@posto.com",
			"tipo_usuario": "fornecedor", "fornecedor": {"id": 4, "nome_fantasia": "Posto Central"}}}`)
	}))

	user, err := c.Me(entity.CtxWithJWT(context.Background(), "user-token"))
	require.NoError(t, err)
	require.Equal(t, entity.User{
		ID:         8,
		Name:       "Ana",
		Email:      "ana@posto.com",
		Type:       entity.UserTypeSupplier,
		SupplierID: 4,
	}, user)
}
