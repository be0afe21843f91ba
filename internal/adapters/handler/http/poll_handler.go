package http

import (
	"net/http"
	"strconv"
	"time"

	"github.com/vncsmyrnk/manifesto/internal/core/domain"
	"github.com/vncsmyrnk/manifesto/internal/core/ports"
	"go.uber.org/zap"
)

type PollHandler struct {
	service  ports.PollService
	composer ports.ComposerService
	responder
}

func NewPollHandler(service ports.PollService, composer ports.ComposerService, log *zap.Logger) *PollHandler {
	return &PollHandler{
		service:   service,
		composer:  composer,
		responder: responder{log: log},
	}
}

type createPollRequest struct {
	Title            string       `json:"title"`
	Description      string       `json:"description"`
	Options          []string     `json:"options"`
	IsMultipleChoice bool         `json:"is_multiple_choice"`
	EndDate          *time.Time   `json:"end_date"`
	Links            domain.Links `json:"links"`
}

type voteRequest struct {
	OptionIDs []string `json:"option_ids"`
}

func (h *PollHandler) CreatePoll(w http.ResponseWriter, r *http.Request) {
	userID, err := currentUser(r)
	if err != nil {
		h.error(w, r, err)
		return
	}

	var req createPollRequest
	if err := h.decode(r, &req); err != nil {
		h.error(w, r, err)
		return
	}

	created, err := h.composer.CreatePoll(r.Context(), ports.CreatePollInput{
		AuthorID:         userID,
		Title:            req.Title,
		Description:      req.Description,
		Options:          req.Options,
		IsMultipleChoice: req.IsMultipleChoice,
		EndDate:          req.EndDate,
		Links:            req.Links,
	})
	if err != nil {
		h.error(w, r, err)
		return
	}
	h.json(w, http.StatusCreated, created)
}

func (h *PollHandler) ListPolls(w http.ResponseWriter, r *http.Request) {
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

	var activeOnly bool
	if raw := r.URL.Query().Get("active_only"); raw != "" {
		if activeOnly, err = strconv.ParseBool(raw); err != nil {
			h.error(w, r, domain.Invalid("invalid active_only %q", raw))
			return
		}
	}

	polls, err := h.service.List(r.Context(), ports.PollFilter{
		Limit:      limit,
		ProjectID:  projectID,
		ActiveOnly: activeOnly,
	})
	if err != nil {
		h.error(w, r, err)
		return
	}
	h.json(w, http.StatusOK, polls)
}

func (h *PollHandler) GetPoll(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		h.error(w, r, err)
		return
	}

	poll, err := h.service.Get(r.Context(), id)
	if err != nil {
		h.error(w, r, err)
		return
	}
	h.json(w, http.StatusOK, poll)
}

// Vote godoc
// @Summary      Casts the caller's ballot
// @Description  A ballot is final. Multiple-choice polls accept several option ids.
// @Tags         polls
// @Accept       json
// @Produce      json
// @Success      200
// @Failure      400,401,404,409
// @Router       /polls/{id}/votes [post]
func (h *PollHandler) Vote(w http.ResponseWriter, r *http.Request) {
	pollID, err := pathID(r)
	if err != nil {
		h.error(w, r, err)
		return
	}
	userID, err := currentUser(r)
	if err != nil {
		h.error(w, r, err)
		return
	}

	var req voteRequest
	if err := h.decode(r, &req); err != nil {
		h.error(w, r, err)
		return
	}

	_, err = h.service.Vote(r.Context(), ports.VoteInput{
		PollID:    pollID,
		UserID:    userID,
		OptionIDs: req.OptionIDs,
	})
	if err != nil {
		h.error(w, r, err)
		return
	}
	h.json(w, http.StatusOK, okResponse{OK: true})
}

func (h *PollHandler) MyVote(w http.ResponseWriter, r *http.Request) {
	pollID, err := pathID(r)
	if err != nil {
		h.error(w, r, err)
		return
	}
	userID, err := currentUser(r)
	if err != nil {
		h.error(w, r, err)
		return
	}

	vote, err := h.service.MyVote(r.Context(), pollID, userID)
	if err != nil {
		h.error(w, r, err)
		return
	}
	h.json(w, http.StatusOK, vote)
}
