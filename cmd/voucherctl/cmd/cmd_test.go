package cmd

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func requisitionJSON(status string, extra string) string {
	return `{
		"id": 42,
		"data_emissao": "2026-03-01T10:00:00-03:00",
		"valor_limite": "100.00",
		"completar_tanque": false,
		"voucher_codigo": "A7F9-29QK-4C1M-8XZT",
		"voucher_status": "` + status + `",
		"voucher_validade": "` + time.Now().Add(24*time.Hour).Format(time.RFC3339) + `",
		"g_veiculo_id": 3,
		"c_posto_id": 5,
		"c_tipo_combustivel_id": 1,
		"c_posto": {"id": 5, "nome_fantasia": "Posto Central"},
		"g_veiculo": {"id": 3, "placa": "ABC1D23"},
		"c_tipo_combustivel": {"id": 1, "descricao": "Gasolina Comum"}` + extra + `
	}`
}

func envelope(w http.ResponseWriter, status int, data string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = io.WriteString(w, `{"status":"success","data":`+data+`}`)
}

func fakeBackend(t *testing.T) *httptest.Server {
	t.Helper()

	mux := http.NewServeMux()

	mux.HandleFunc("GET /api/v1/auth/me", func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Bearer station-token" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}

		envelope(w, http.StatusOK, `{"user": {"id": 7, "nome": "Ana", "email": "ana@posto.com", "tipo_usuario": "fornecedor"}}`)
	})

	mux.HandleFunc("GET /api/v1/requisicoes/find_by_code", func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("codigo") != "A7F9-29QK-4C1M-8XZT" {
			w.WriteHeader(http.StatusNotFound)
			return
		}

		envelope(w, http.StatusOK, requisitionJSON("pendente", ""))
	})

	mux.HandleFunc("GET /api/v1/combustiveis", func(w http.ResponseWriter, _ *http.Request) {
		envelope(w, http.StatusOK, `{"pagy": {"current_page": 1, "total_pages": 1}, "items": [
			{"id": 10, "preco": "5.89", "c_tipo_combustivel_id": 1}
		]}`)
	})

	mux.HandleFunc("PATCH /api/v1/requisicoes/42/validar_voucher", func(w http.ResponseWriter, r *http.Request) {
		var body map[string]json.Number
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))

		envelope(w, http.StatusOK, requisitionJSON("validado",
			`, "quantidade_litros": "`+body["quantidade_litros"].String()+`", "valor_total": "`+body["valor_total"].String()+
				`", "voucher_validado_em": "`+time.Now().Format(time.RFC3339)+`"`))
	})

	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)

	return srv
}

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()

	root := NewRootCmd()

	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(io.Discard)
	root.SetArgs(append(args, "--config", filepath.Join(t.TempDir(), "missing.env")))

	err := root.Execute()

	return out.String(), err
}

func TestLocate(t *testing.T) {
	srv := fakeBackend(t)
	t.Setenv("BACKEND_BASE_URL", srv.URL)
	t.Setenv(tokenEnv, "station-token")

	out, err := run(t, "locate", "a7f9-29qk-4c1m-8xzt")
	require.NoError(t, err)
	require.Contains(t, out, "Requisition:  42")
	require.Contains(t, out, "Limit:        R$ 100.00")
	require.Contains(t, out, "Price/liter:  R$ 5.89")
	require.Contains(t, out, "Estimate:     16.977 L")
}

func TestLocate_UnknownCode(t *testing.T) {
	srv := fakeBackend(t)
	t.Setenv("BACKEND_BASE_URL", srv.URL)

	_, err := run(t, "locate", "ZZZZ-ZZZZ", "--token", "station-token")
	require.ErrorIs(t, err, errCodeNotFound)
	require.Equal(t, "code not found, already used or incorrect", err.Error())
}

func TestLocate_UsedCodeReadsAsUnknown(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/v1/auth/me", func(w http.ResponseWriter, _ *http.Request) {
		envelope(w, http.StatusOK, `{"user": {"id": 7, "nome": "Ana", "email": "ana@posto.com", "tipo_usuario": "fornecedor"}}`)
	})
	mux.HandleFunc("GET /api/v1/requisicoes/find_by_code", func(w http.ResponseWriter, _ *http.Request) {
		envelope(w, http.StatusOK, requisitionJSON("validado", ""))
	})

	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	t.Setenv("BACKEND_BASE_URL", srv.URL)

	_, err := run(t, "locate", "A7F9-29QK-4C1M-8XZT", "--token", "station-token")
	require.ErrorIs(t, err, errCodeNotFound)
	require.NotContains(t, err.Error(), "VALIDATED")
}

func TestLocate_NoToken(t *testing.T) {
	srv := fakeBackend(t)
	t.Setenv("BACKEND_BASE_URL", srv.URL)
	t.Setenv(tokenEnv, "")

	_, err := run(t, "locate", "A7F9-29QK-4C1M-8XZT")
	require.ErrorIs(t, err, errNoToken)
}

func TestSettle(t *testing.T) {
	srv := fakeBackend(t)
	t.Setenv("BACKEND_BASE_URL", srv.URL)

	receipt := filepath.Join(t.TempDir(), "comprovante.pdf")

	out, err := run(t, "settle", "42", "--liters", "23.5", "--amount", "140.00",
		"--receipt", receipt, "--token", "station-token")
	require.NoError(t, err)
	require.Contains(t, out, "Status:       VALIDATED")
	require.Contains(t, out, "Unit price:   R$ 5.96")

	pdf, err := os.ReadFile(receipt)
	require.NoError(t, err)
	require.True(t, bytes.HasPrefix(pdf, []byte("%PDF")))
}

func TestSettle_ZeroLiters(t *testing.T) {
	srv := fakeBackend(t)
	t.Setenv("BACKEND_BASE_URL", srv.URL)

	_, err := run(t, "settle", "42", "--liters", "0", "--amount", "140.00", "--token", "station-token")
	require.Error(t, err)
	require.True(t, strings.Contains(err.Error(), "liters"))
}

func TestQRDecodeRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "voucher.png")

	_, err := run(t, "qr", "a7f9-29qk-4c1m-8xzt", "-o", path)
	require.NoError(t, err)

	out, err := run(t, "decode", path)
	require.NoError(t, err)
	require.Equal(t, "A7F9-29QK-4C1M-8XZT\n", out)
}
