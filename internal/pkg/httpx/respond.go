// Package httpx reúne as funções de escrita de resposta JSON usadas por handlers,
// middlewares e pelo roteador.
package httpx

import (
	"encoding/json"
	"fmt"
	"net/http"

	apperror "gocadastro/internal/errors"
	"gocadastro/internal/pkg/logger"
)

// JSON escreve data como corpo JSON com o status informado.
func JSON(w http.ResponseWriter, log logger.Logger, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)

	if data == nil {
		return
	}
	if err := json.NewEncoder(w).Encode(data); err != nil && log != nil {
		log.Error("Falha ao codificar JSON de resposta", err)
	}
}

// Error traduz err para o corpo de erro padronizado ({code, category, message, details}).
// Erros 5xx são registrados com a causa; erros de cliente apenas em Debug.
func Error(w http.ResponseWriter, r *http.Request, log logger.Logger, err error) {
	status, body := apperror.MapToResponse(err)

	if log != nil {
		if status >= http.StatusInternalServerError {
			log.Error(fmt.Sprintf("Erro de Servidor: %s", body.Category), err)
		} else {
			log.Debug(fmt.Sprintf("Requisição rejeitada com status %d. Categoria: %s", status, body.Category), map[string]interface{}{"path": r.URL.Path})
		}
	}

	JSON(w, log, status, body)
}
