package http

import (
	"net/http"
	"slices"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"go.uber.org/zap"
)

type Handlers struct {
	Posts      *PostHandler
	Debates    *DebateHandler
	Polls      *PollHandler
	Petitions  *PetitionHandler
	Users      *UserHandler
	Government *GovernmentHandler
}

type RouterConfig struct {
	JWTSecret   []byte
	CORSOrigins []string
	Log         *zap.Logger
}

func NewHandler(h Handlers, cfg RouterConfig) http.Handler {
	log := cfg.Log
	if log == nil {
		log = zap.NewNop()
	}
	rs := responder{log: log}
	auth := AuthMiddleware(cfg.JWTSecret, rs)

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(requestLogger(log))
	r.Use(recoverer(rs))
	r.Use(cors.Handler(corsOptions(cfg.CORSOrigins)))

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		rs.json(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	r.Route("/api", func(r chi.Router) {
		r.Get("/", func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte("welcome"))
		})

		r.With(auth).Get("/me", h.Users.GetMe)

		r.Route("/posts", func(r chi.Router) {
			r.Get("/", h.Posts.ListPosts)
			r.Get("/{id}", h.Posts.GetPost)
			r.Group(func(r chi.Router) {
				r.Use(auth)
				r.Post("/", h.Posts.CreatePost)
				r.Post("/{id}/like", h.Posts.LikePost)
			})
		})

		r.Route("/debates", func(r chi.Router) {
			r.Get("/", h.Debates.ListDebates)
			r.Get("/{id}", h.Debates.GetDebate)
			r.Group(func(r chi.Router) {
				r.Use(auth)
				r.Post("/", h.Debates.CreateDebate)
				r.Post("/{id}/reactions", h.Debates.React)
			})
		})

		r.Route("/polls", func(r chi.Router) {
			r.Get("/", h.Polls.ListPolls)
			r.Get("/{id}", h.Polls.GetPoll)
			r.Group(func(r chi.Router) {
				r.Use(auth)
				r.Post("/", h.Polls.CreatePoll)
				r.Post("/{id}/votes", h.Polls.Vote)
				r.Get("/{id}/my-vote", h.Polls.MyVote)
			})
		})

		r.Route("/petitions", func(r chi.Router) {
			r.Get("/", h.Petitions.ListPetitions)
			r.Get("/{id}", h.Petitions.GetPetition)
			r.Group(func(r chi.Router) {
				r.Use(auth)
				r.Post("/", h.Petitions.CreatePetition)
				r.Post("/{id}/signatures", h.Petitions.Sign)
			})
		})

		r.Get("/leaders", h.Government.ListLeaders)
		r.Get("/leaders/{id}", h.Government.GetLeader)
		r.Get("/departments", h.Government.ListDepartments)
		r.Get("/departments/{id}", h.Government.GetDepartment)
		r.Get("/projects", h.Government.ListProjects)
		r.Get("/projects/{id}", h.Government.GetProject)
		r.Get("/parliament", h.Government.ListParliament)
	})

	return r
}

// corsOptions only allows credentials for an explicit origin list. With a
// wildcard, browsers get anonymous cross-origin reads and no cookie.
func corsOptions(origins []string) cors.Options {
	return cors.Options{
		AllowedOrigins:   origins,
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: len(origins) > 0 && !slices.Contains(origins, "*"),
		MaxAge:           300,
	}
}
