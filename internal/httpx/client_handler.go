package httpx

import (
	"net/http"

	clientapp "github.com/jcmexdev/modular-commerce/internal/client/app"
	"github.com/jcmexdev/modular-commerce/internal/pkg/fault"
)

func (h *Handler) RegisterClient(w http.ResponseWriter, r *http.Request) {
	var req RegisterClientRequest
	if err := decodeJSON(r, &req); err != nil {
		writeProblem(w, r, fault.Validationf("Corpo da requisição inválido."))
		return
	}

	out, err := h.clients.Register(r.Context(), clientapp.RegisterInput{
		Name:  req.Name,
		Email: req.Email,
		Phone: req.Phone,
		Addresses: []clientapp.AddressInput{{
			Street:  req.Rua,
			Number:  req.Numero,
			City:    req.Cidade,
			State:   req.Estado,
			ZipCode: req.CEP,
		}},
	})
	if err != nil {
		writeProblem(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, RegisterClientResponse{ClientID: out.Client.ID, Message: out.Message})
}
