package handler

import (
	"io"
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/sirupsen/logrus"

	"github.com/vfg2006/retailbot-api/internal/tooling"
	"github.com/vfg2006/retailbot-api/pkg/apiErrors"
)

// ListTools publica o catálogo de ferramentas para o orquestrador de IA
func ListTools() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, map[string]any{
			"tools": tooling.Definitions(),
		})
	}
}

// InvokeTool executa uma ferramenta do catálogo com os argumentos JSON do
// corpo da requisição e devolve o resultado estruturado
func InvokeTool(dispatcher *tooling.Dispatcher) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		name := httprouter.ParamsFromContext(r.Context()).ByName("name")

		rawArgs, err := io.ReadAll(r.Body)
		if err != nil {
			logrus.Error("handler: error reading tool invocation body:", err)
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Erro ao ler o corpo da requisição", nil)
			return
		}

		result, err := dispatcher.Invoke(r.Context(), name, rawArgs)
		if err != nil {
			handleQueryError(w, err)
			return
		}

		writeJSON(w, map[string]any{
			"tool":   name,
			"result": result,
		})
	}
}
