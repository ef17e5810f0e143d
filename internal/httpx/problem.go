package httpx

import (
	"log/slog"
	"net/http"

	"github.com/jcmexdev/modular-commerce/internal/pkg/fault"
)

// Problem is the RFC 7807 body returned on every failure.
type Problem struct {
	Type   string   `json:"type"`
	Title  string   `json:"title"`
	Status int      `json:"status"`
	Detail string   `json:"detail"`
	Errors []string `json:"errors,omitempty"`
}

const errorTypeBase = "https://api.seusistema.com/errors/"

// writeProblem translates a use-case error into its HTTP problem body.
// Unclassified errors are treated as internal and their detail is not
// leaked to the client.
func writeProblem(w http.ResponseWriter, r *http.Request, err error) {
	var p Problem
	switch fault.KindOf(err) {
	case fault.Validation:
		p = Problem{
			Type:   errorTypeBase + "validacao",
			Title:  "Erro de validação",
			Status: http.StatusBadRequest,
			Detail: err.Error(),
			Errors: fault.FieldsOf(err),
		}
	case fault.NotFound:
		p = Problem{
			Type:   errorTypeBase + "nao-encontrado",
			Title:  "Recurso não encontrado",
			Status: http.StatusNotFound,
			Detail: err.Error(),
		}
	case fault.Conflict:
		p = Problem{
			Type:   errorTypeBase + "conflito",
			Title:  "Conflito de dados",
			Status: http.StatusConflict,
			Detail: err.Error(),
		}
	case fault.BusinessRule:
		p = Problem{
			Type:   errorTypeBase + "regra-negocio",
			Title:  "Regra de negócio violada",
			Status: http.StatusConflict,
			Detail: err.Error(),
		}
	default:
		slog.ErrorContext(r.Context(), "unhandled error", "error", err, "path", r.URL.Path)
		p = Problem{
			Type:   errorTypeBase + "interno",
			Title:  "Erro interno",
			Status: http.StatusInternalServerError,
			Detail: "Erro interno do servidor.",
		}
	}
	writeJSON(w, p.Status, p)
}
