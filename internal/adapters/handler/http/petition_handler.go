package http

import (
	"net/http"
	"time"

	"github.com/vncsmyrnk/manifesto/internal/core/domain"
	"github.com/vncsmyrnk/manifesto/internal/core/ports"
	"go.uber.org/zap"
)

type PetitionHandler struct {
	service  ports.PetitionService
	composer ports.ComposerService
	responder
}

func NewPetitionHandler(service ports.PetitionService, composer ports.ComposerService, log *zap.Logger) *PetitionHandler {
	return &PetitionHandler{
		service:   service,
		composer:  composer,
		responder: responder{log: log},
	}
}

type createPetitionRequest struct {
	Title          string       `json:"title"`
	Description    string       `json:"description"`
	Goal           int64        `json:"goal"`
	TargetDeadline time.Time    `json:"target_deadline"`
	Links          domain.Links `json:"links"`
}

type signResponse struct {
	OK bool `json:"ok"`
	domain.SignResult
}

func (h *PetitionHandler) CreatePetition(w http.ResponseWriter, r *http.Request) {
	userID, err := currentUser(r)
	if err != nil {
		h.error(w, r, err)
		return
	}

	var req createPetitionRequest
	if err := h.decode(r, &req); err != nil {
		h.error(w, r, err)
		return
	}

	created, err := h.composer.CreatePetition(r.Context(), ports.CreatePetitionInput{
		AuthorID:       userID,
		Title:          req.Title,
		Description:    req.Description,
		Goal:           req.Goal,
		TargetDeadline: req.TargetDeadline,
		Links:          req.Links,
	})
	if err != nil {
		h.error(w, r, err)
		return
	}
	h.json(w, http.StatusCreated, created)
}

func (h *PetitionHandler) ListPetitions(w http.ResponseWriter, r *http.Request) {
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

	petitions, err := h.service.List(r.Context(), ports.PetitionFilter{
		Limit:     limit,
		Status:    domain.PetitionStatus(r.URL.Query().Get("status")),
		ProjectID: projectID,
	})
	if err != nil {
		h.error(w, r, err)
		return
	}
	h.json(w, http.StatusOK, petitions)
}

func (h *PetitionHandler) GetPetition(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		h.error(w, r, err)
		return
	}

	petition, err := h.service.Get(r.Context(), id)
	if err != nil {
		h.error(w, r, err)
		return
	}
	h.json(w, http.StatusOK, petition)
}

// Sign godoc
// @Summary      Signs a petition as the caller
// @Description  Returns the new signature count and status. Reaching the goal makes the petition successful.
// @Tags         petitions
// @Produce      json
// @Success      200
// @Failure      401,404,409
// @Router       /petitions/{id}/signatures [post]
func (h *PetitionHandler) Sign(w http.ResponseWriter, r *http.Request) {
	petitionID, err := pathID(r)
	if err != nil {
		h.error(w, r, err)
		return
	}
	userID, err := currentUser(r)
	if err != nil {
		h.error(w, r, err)
		return
	}

	result, err := h.service.Sign(r.Context(), ports.SignInput{PetitionID: petitionID, UserID: userID})
	if err != nil {
		h.error(w, r, err)
		return
	}
	h.json(w, http.StatusOK, signResponse{OK: true, SignResult: *result})
}
