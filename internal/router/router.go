package router

import (
	"encoding/json"
	"net/http"

	"github.com/MyelinBots/nabeatsu-go/internal/healthcheck"
	"github.com/MyelinBots/nabeatsu-go/internal/log"
	"github.com/MyelinBots/nabeatsu-go/internal/services/comments"
	"github.com/MyelinBots/nabeatsu-go/internal/services/context_manager"
	"github.com/MyelinBots/nabeatsu-go/internal/services/game"
	"github.com/MyelinBots/nabeatsu-go/internal/services/likes"
	"github.com/MyelinBots/nabeatsu-go/internal/services/uploads"
	"github.com/MyelinBots/nabeatsu-go/internal/services/users"
	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"
)

// LineUserHeader carries the caller's external identity.
const LineUserHeader = "line_user_id"

// Services is everything the handlers need. Health may be nil, in which case
// /healthz is not mounted.
type Services struct {
	Users          users.Service
	Comments       comments.Service
	Likes          likes.Service
	Game           game.Service
	Uploads        uploads.Service
	Health         healthcheck.Pinger
	MaxUploadBytes int64
}

type RouterContext struct {
	services  *Services
	commentID uint
	page      comments.Page
	sort      string
}

type HTTPError struct {
	Level     int    `json:"-"`
	IError    error  `json:"-"`
	Status    int    `json:"status"`
	Message   string `json:"message"`
	ErrorCode string `json:"error_code"`
}

type Handler func(rc *RouterContext, w http.ResponseWriter, r *http.Request) *HTTPError

func Handle(s *Services, handlers ...Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rc := &RouterContext{services: s}
		w.Header().Set("Content-Type", "application/json")

		for _, handler := range handlers {
			e := handler(rc, w, r)
			if e == nil {
				continue
			}

			// Level 1: respond without logging.
			// Level 2: log as a warning and keep going, the response is already out.
			// Level 3: log server side, then respond.
			if e.Level == 2 {
				log.Warn.Printf("[%s] %s %s: %v", context_manager.GetRequestIDContext(r.Context()), r.Method, r.URL.Path, e.IError)
				continue
			}
			if e.Level >= 3 {
				log.Error.Printf("[%s] %s %s: %v", context_manager.GetRequestIDContext(r.Context()), r.Method, r.URL.Path, e.IError)
			}
			w.WriteHeader(e.Status)
			if err := json.NewEncoder(w).Encode(e); err != nil {
				log.Error.Printf("encode error response: %v", err)
			}
			return
		}
	})
}

func Init(s *Services) http.Handler {
	r := mux.NewRouter()

	api := r.PathPrefix("/api").Subrouter()

	api.Handle("/users/login", Handle(s,
		Login(),
	)).Methods(http.MethodPost)

	api.Handle("/comments", Handle(s,
		parsePage(true),
		ListComments(),
	)).Methods(http.MethodGet)

	api.Handle("/comments", Handle(s,
		CreateComment(),
	)).Methods(http.MethodPost)

	api.Handle("/comments/{id}", Handle(s,
		parseCommentID(),
		UpdateComment(),
	)).Methods(http.MethodPut)

	api.Handle("/comments/{id}", Handle(s,
		parseCommentID(),
		DeleteComment(),
	)).Methods(http.MethodDelete)

	api.Handle("/comments/{id}/replies", Handle(s,
		parseCommentID(),
		parsePage(false),
		ListReplies(),
	)).Methods(http.MethodGet)

	api.Handle("/comments/{id}/like", Handle(s,
		parseCommentID(),
		ToggleLike(),
	)).Methods(http.MethodPost)

	api.Handle("/game-data", Handle(s,
		GetGameData(),
	)).Methods(http.MethodGet)

	api.Handle("/settings", Handle(s,
		UpdateSettings(),
	)).Methods(http.MethodPut)

	api.Handle("/upload", Handle(s,
		Upload(),
	)).Methods(http.MethodPost)

	if s.Uploads != nil {
		r.PathPrefix("/uploads/").Handler(http.StripPrefix("/uploads/", staticFiles(s.Uploads.Dir()))).Methods(http.MethodGet, http.MethodHead)
	}
	if s.Health != nil {
		r.Handle("/healthz", healthcheck.HealthCheckHandler(s.Health)).Methods(http.MethodGet)
	}

	r.Use(requestLogger)

	cors := handlers.CORS(
		handlers.AllowedOrigins([]string{"*"}),
		handlers.AllowedMethods([]string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions}),
		handlers.AllowedHeaders([]string{"Content-Type", LineUserHeader}),
	)
	return handlers.RecoveryHandler(handlers.RecoveryLogger(log.Error))(cors(r))
}
