package server

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/MyelinBots/nabeatsu-go/config"
	"github.com/MyelinBots/nabeatsu-go/internal/db"
	"github.com/MyelinBots/nabeatsu-go/internal/db/repositories/comment"
	"github.com/MyelinBots/nabeatsu-go/internal/db/repositories/gameconfig"
	"github.com/MyelinBots/nabeatsu-go/internal/db/repositories/like"
	"github.com/MyelinBots/nabeatsu-go/internal/db/repositories/user"
	"github.com/MyelinBots/nabeatsu-go/internal/log"
	"github.com/MyelinBots/nabeatsu-go/internal/router"
	"github.com/MyelinBots/nabeatsu-go/internal/services/comments"
	"github.com/MyelinBots/nabeatsu-go/internal/services/game"
	"github.com/MyelinBots/nabeatsu-go/internal/services/likes"
	"github.com/MyelinBots/nabeatsu-go/internal/services/uploads"
	"github.com/MyelinBots/nabeatsu-go/internal/services/users"
)

const shutdownTimeout = 10 * time.Second

// NewServices wires repositories over database into the services the router
// serves.
func NewServices(cfg config.AppConfig, database *db.DB) *router.Services {
	userService := users.New(user.NewUserRepository(database))

	return &router.Services{
		Users:          userService,
		Comments:       comments.New(comment.NewCommentRepository(database), userService),
		Likes:          likes.New(like.NewLikeRepository(database), userService),
		Game:           game.New(gameconfig.NewGameConfigRepository(database)),
		Uploads:        uploads.New(cfg.UploadDir),
		Health:         database,
		MaxUploadBytes: cfg.MaxUploadBytes,
	}
}

func New(cfg config.AppConfig, handler http.Handler) *http.Server {
	return &http.Server{
		Addr:              cfg.Addr(),
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       60 * time.Second,
		WriteTimeout:      60 * time.Second,
		IdleTimeout:       120 * time.Second,
	}
}

// Run serves until ctx is cancelled, then drains in-flight requests.
func Run(ctx context.Context, srv *http.Server) error {
	errCh := make(chan error, 1)
	go func() {
		log.Info.Printf("listening on %s", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	log.Info.Printf("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	return <-errCh
}
