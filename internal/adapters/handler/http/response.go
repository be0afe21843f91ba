package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/vncsmyrnk/manifesto/internal/core/domain"
	"go.uber.org/zap"
)

var errUnauthorized = errors.New("missing or invalid access token")

type errorResponse struct {
	Error     string   `json:"error"`
	Message   string   `json:"message"`
	OptionIDs []string `json:"option_ids,omitempty"`
}

type okResponse struct {
	OK bool `json:"ok"`
}

// classify maps an error to its status code and stable error code.
func classify(err error) (int, string) {
	switch {
	case errors.Is(err, errUnauthorized):
		return http.StatusUnauthorized, "unauthorized"
	case errors.Is(err, domain.ErrEntityNotFound):
		return http.StatusNotFound, "not_found"
	case errors.Is(err, domain.ErrAlreadyVoted):
		return http.StatusConflict, "already_voted"
	case errors.Is(err, domain.ErrAlreadySigned):
		return http.StatusConflict, "already_signed"
	case errors.Is(err, domain.ErrAlreadyReacted):
		return http.StatusConflict, "already_reacted"
	case errors.Is(err, domain.ErrPollClosed):
		return http.StatusConflict, "poll_closed"
	case errors.Is(err, domain.ErrPetitionNotActive):
		return http.StatusConflict, "petition_not_active"
	case errors.Is(err, domain.ErrPetitionExpired):
		return http.StatusConflict, "petition_expired"
	case errors.Is(err, domain.ErrDebateArchived):
		return http.StatusConflict, "debate_archived"
	case errors.Is(err, domain.ErrInvalidOption):
		return http.StatusBadRequest, "invalid_option"
	case errors.Is(err, domain.ErrSingleChoice):
		return http.StatusBadRequest, "single_choice"
	case errors.Is(err, domain.ErrInvalidReaction):
		return http.StatusBadRequest, "invalid_reaction"
	case errors.Is(err, domain.ErrInvalidInput):
		return http.StatusBadRequest, "invalid_input"
	default:
		return http.StatusInternalServerError, "internal"
	}
}

type responder struct {
	log *zap.Logger
}

func (rs responder) json(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		rs.log.Warn("failed to encode response", zap.Error(err))
	}
}

func (rs responder) error(w http.ResponseWriter, r *http.Request, err error) {
	status, code := classify(err)
	body := errorResponse{Error: code, Message: err.Error()}

	if status == http.StatusInternalServerError {
		rs.log.Error("request failed",
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Error(err),
		)
		body.Message = "internal server error"
	}

	var invalid *domain.InvalidOptionError
	if errors.As(err, &invalid) {
		body.OptionIDs = invalid.IDs
	}

	rs.json(w, status, body)
}

func (rs responder) decode(r *http.Request, v any) error {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		return domain.Invalid("invalid request body")
	}
	return nil
}

func pathID(r *http.Request) (uuid.UUID, error) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		return uuid.Nil, domain.Invalid("invalid id %q", chi.URLParam(r, "id"))
	}
	return id, nil
}

func queryLimit(r *http.Request) (int, error) {
	raw := r.URL.Query().Get("limit")
	if raw == "" {
		return 0, nil
	}
	limit, err := strconv.Atoi(raw)
	if err != nil || limit < 0 {
		return 0, domain.Invalid("invalid limit %q", raw)
	}
	return limit, nil
}

func queryUUID(r *http.Request, key string) (*uuid.UUID, error) {
	raw := r.URL.Query().Get(key)
	if raw == "" {
		return nil, nil
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return nil, domain.Invalid("invalid %s %q", key, raw)
	}
	return &id, nil
}
