package http

import (
	"net/http"

	"github.com/vncsmyrnk/manifesto/internal/core/domain"
	"github.com/vncsmyrnk/manifesto/internal/core/ports"
	"go.uber.org/zap"
)

type PostHandler struct {
	service ports.FeedService
	responder
}

func NewPostHandler(service ports.FeedService, log *zap.Logger) *PostHandler {
	return &PostHandler{
		service:   service,
		responder: responder{log: log},
	}
}

type createPostRequest struct {
	Type      domain.PostType `json:"type"`
	Title     string          `json:"title"`
	Body      string          `json:"body"`
	Tags      []string        `json:"tags"`
	MediaURLs []string        `json:"media_urls"`
	Links     domain.Links    `json:"links"`
}

// CreatePost godoc
// @Summary      Publishes a media or update post
// @Description  Media urls point at files hosted elsewhere. Debates, polls and petitions have their own endpoints.
// @Tags         posts
// @Accept       json
// @Produce      json
// @Success      201
// @Failure      400
// @Failure      401
// @Router       /posts [post]
func (h *PostHandler) CreatePost(w http.ResponseWriter, r *http.Request) {
	userID, err := currentUser(r)
	if err != nil {
		h.error(w, r, err)
		return
	}

	var req createPostRequest
	if err := h.decode(r, &req); err != nil {
		h.error(w, r, err)
		return
	}

	post, err := h.service.Create(r.Context(), ports.CreatePostInput{
		AuthorID:  userID,
		Type:      req.Type,
		Title:     req.Title,
		Body:      req.Body,
		Tags:      req.Tags,
		MediaURLs: req.MediaURLs,
		Links:     req.Links,
	})
	if err != nil {
		h.error(w, r, err)
		return
	}
	h.json(w, http.StatusCreated, post)
}

// ListPosts godoc
// @Summary      Lists the feed
// @Description  Newest posts first, optionally restricted to one post type.
// @Tags         posts
// @Produce      json
// @Param        limit  query  int     false  "page size (default 50, max 200)"
// @Param        type   query  string  false  "debate, poll, petition, media or update"
// @Success      200
// @Failure      400
// @Router       /posts [get]
func (h *PostHandler) ListPosts(w http.ResponseWriter, r *http.Request) {
	limit, err := queryLimit(r)
	if err != nil {
		h.error(w, r, err)
		return
	}

	posts, err := h.service.List(r.Context(), ports.PostFilter{
		Limit: limit,
		Type:  domain.PostType(r.URL.Query().Get("type")),
	})
	if err != nil {
		h.error(w, r, err)
		return
	}
	h.json(w, http.StatusOK, posts)
}

func (h *PostHandler) GetPost(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		h.error(w, r, err)
		return
	}

	post, err := h.service.Get(r.Context(), id)
	if err != nil {
		h.error(w, r, err)
		return
	}
	h.json(w, http.StatusOK, post)
}

func (h *PostHandler) LikePost(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		h.error(w, r, err)
		return
	}

	post, err := h.service.Like(r.Context(), id)
	if err != nil {
		h.error(w, r, err)
		return
	}
	h.json(w, http.StatusOK, post)
}
