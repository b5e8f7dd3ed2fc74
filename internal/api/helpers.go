package api

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/samandr77/microservices/voucher/internal/entity"
)

const (
	msgInvalidJSON     = "JSON inválido"
	msgInvalidData     = "Dados inválidos"
	msgCodeNotFound    = "Código não encontrado, já utilizado ou incorreto"
	msgExpired         = "Voucher expirado"
	msgConflict        = "Voucher já utilizado ou valor acima do limite"
	msgSessionExpired  = "Sessão expirada, faça login novamente"
	msgForbidden       = "Permissão insuficiente para esta ação"
	msgBackendDown     = "Servidor indisponível, tente novamente"
	msgInternal        = "Erro interno"
	msgReceiptNotFound = "Comprovante não encontrado"
)

type ErrorResponse struct {
	Message     string `json:"message"`
	Description string `json:"description,omitempty"`
}

func SendJSONErr(ctx context.Context, w http.ResponseWriter, code int, originErr error, msgToSend string) {
	if originErr == nil {
		originErr = errors.New(msgToSend)
	}

	slog.ErrorContext(ctx, "api error", "error", originErr.Error(), "status", code)
	SendJSON(ctx, w, code, ErrorResponse{Message: msgToSend, Description: originErr.Error()})
}

func SendJSON(ctx context.Context, w http.ResponseWriter, code int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)

	err := json.NewEncoder(w).Encode(data)
	if err != nil {
		slog.ErrorContext(ctx, "encode response", "error", err)
	}
}

// SendServiceErr maps workflow errors onto HTTP statuses. Backend conflict messages are passed through
// verbatim; not-found carries no description, so used codes can't be told from unknown ones.
func SendServiceErr(ctx context.Context, w http.ResponseWriter, err error, notFoundMsg string) {
	switch {
	case errors.Is(err, entity.ErrValidation):
		SendJSONErr(ctx, w, http.StatusUnprocessableEntity, err, orDefault(entity.UserMessage(err), msgInvalidData))
	case errors.Is(err, entity.ErrNotFound):
		slog.InfoContext(ctx, "api error", "error", err.Error(), "status", http.StatusNotFound)
		SendJSON(ctx, w, http.StatusNotFound, ErrorResponse{Message: notFoundMsg})
	case errors.Is(err, entity.ErrExpired):
		SendJSONErr(ctx, w, http.StatusGone, err, msgExpired)
	case errors.Is(err, entity.ErrConflict):
		SendJSONErr(ctx, w, http.StatusConflict, err, orDefault(entity.UserMessage(err), msgConflict))
	case errors.Is(err, entity.ErrAuth), errors.Is(err, entity.ErrUnauthenticated):
		SendJSONErr(ctx, w, http.StatusUnauthorized, err, msgSessionExpired)
	case errors.Is(err, entity.ErrForbidden):
		SendJSONErr(ctx, w, http.StatusForbidden, err, msgForbidden)
	case errors.Is(err, entity.ErrNetwork), errors.Is(err, entity.ErrBackend), errors.Is(err, entity.ErrBadResponse):
		SendJSONErr(ctx, w, http.StatusBadGateway, err, msgBackendDown)
	default:
		SendJSONErr(ctx, w, http.StatusInternalServerError, err, msgInternal)
	}
}

func orDefault(s, def string) string {
	if s == "" {
		return def
	}

	return s
}
