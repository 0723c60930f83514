package handler

import (
	"net/http"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/vfg2006/retailbot-api/internal/domain"
	"github.com/vfg2006/retailbot-api/internal/tooling"
	"github.com/vfg2006/retailbot-api/pkg/apiErrors"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// writeJSON envia a resposta JSON com status 200
func writeJSON(w http.ResponseWriter, payload any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		logrus.Error("handler: error encoding response:", err)
	}
}

// handleQueryError mapeia os erros dos serviços de consulta para os códigos da API
func handleQueryError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domain.ErrDatasetUnavailable):
		apiErrors.WriteError(w, apiErrors.ErrDatasetUnavailable, "Dataset indisponível, tente novamente em instantes", nil)

	case errors.Is(err, domain.ErrResourceNotFound):
		apiErrors.WriteError(w, apiErrors.ErrResourceNotFound, "Registro não encontrado", nil)

	case errors.Is(err, tooling.ErrUnknownTool):
		apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, err.Error(), nil)

	case errors.Is(err, tooling.ErrInvalidArguments):
		apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, err.Error(), nil)

	default:
		logrus.Error("handler: unexpected error:", err)
		apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro interno do servidor", nil)
	}
}
