package http

import (
	"net/http"

	"github.com/vncsmyrnk/manifesto/internal/core/domain"
	"github.com/vncsmyrnk/manifesto/internal/core/ports"
	"go.uber.org/zap"
)

type UserHandler struct {
	service ports.UserService
	responder
}

func NewUserHandler(service ports.UserService, log *zap.Logger) *UserHandler {
	return &UserHandler{
		service:   service,
		responder: responder{log: log},
	}
}

func (h *UserHandler) GetMe(w http.ResponseWriter, r *http.Request) {
	userID, err := currentUser(r)
	if err != nil {
		h.error(w, r, err)
		return
	}

	user, err := h.service.GetByID(r.Context(), userID)
	if err != nil {
		h.error(w, r, err)
		return
	}
	if user == nil {
		h.error(w, r, domain.ErrUserNotFound)
		return
	}
	h.json(w, http.StatusOK, user)
}
