package http

import (
	"net/http"

	"github.com/vncsmyrnk/manifesto/internal/core/domain"
	"github.com/vncsmyrnk/manifesto/internal/core/ports"
	"go.uber.org/zap"
)

type DebateHandler struct {
	service  ports.DebateService
	composer ports.ComposerService
	responder
}

func NewDebateHandler(service ports.DebateService, composer ports.ComposerService, log *zap.Logger) *DebateHandler {
	return &DebateHandler{
		service:   service,
		composer:  composer,
		responder: responder{log: log},
	}
}

type createDebateRequest struct {
	Title       string       `json:"title"`
	Description string       `json:"description"`
	Topic       string       `json:"topic"`
	Links       domain.Links `json:"links"`
}

type reactRequest struct {
	Reaction domain.Reaction `json:"reaction"`
}

type reactResponse struct {
	OK   bool               `json:"ok"`
	Kind domain.OutcomeKind `json:"kind"`
}

func (h *DebateHandler) CreateDebate(w http.ResponseWriter, r *http.Request) {
	userID, err := currentUser(r)
	if err != nil {
		h.error(w, r, err)
		return
	}

	var req createDebateRequest
	if err := h.decode(r, &req); err != nil {
		h.error(w, r, err)
		return
	}

	created, err := h.composer.CreateDebate(r.Context(), ports.CreateDebateInput{
		AuthorID:    userID,
		Title:       req.Title,
		Description: req.Description,
		Topic:       req.Topic,
		Links:       req.Links,
	})
	if err != nil {
		h.error(w, r, err)
		return
	}
	h.json(w, http.StatusCreated, created)
}

func (h *DebateHandler) ListDebates(w http.ResponseWriter, r *http.Request) {
	limit, err := queryLimit(r)
	if err != nil {
		h.error(w, r, err)
		return
	}
	projectID, err := queryUUID(r, "project_id")
	if err != nil {
		h.error(w, r, err)
		return
	}

	debates, err := h.service.List(r.Context(), ports.DebateFilter{
		Limit:     limit,
		TopicKey:  r.URL.Query().Get("topic"),
		ProjectID: projectID,
	})
	if err != nil {
		h.error(w, r, err)
		return
	}
	h.json(w, http.StatusOK, debates)
}

func (h *DebateHandler) GetDebate(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		h.error(w, r, err)
		return
	}

	debate, err := h.service.Get(r.Context(), id)
	if err != nil {
		h.error(w, r, err)
		return
	}
	h.json(w, http.StatusOK, debate)
}

// React godoc
// @Summary      Records the caller's reaction to a debate
// @Description  Repeating the current reaction changes nothing; a different one moves the vote between buckets.
// @Tags         debates
// @Accept       json
// @Produce      json
// @Success      200
// @Failure      400,401,404,409
// @Router       /debates/{id}/reactions [post]
func (h *DebateHandler) React(w http.ResponseWriter, r *http.Request) {
	debateID, err := pathID(r)
	if err != nil {
		h.error(w, r, err)
		return
	}
	userID, err := currentUser(r)
	if err != nil {
		h.error(w, r, err)
		return
	}

	var req reactRequest
	if err := h.decode(r, &req); err != nil {
		h.error(w, r, err)
		return
	}

	outcome, err := h.service.React(r.Context(), ports.ReactInput{
		DebateID: debateID,
		UserID:   userID,
		Reaction: req.Reaction,
	})
	if err != nil {
		h.error(w, r, err)
		return
	}
	h.json(w, http.StatusOK, reactResponse{OK: true, Kind: outcome.Kind})
}
