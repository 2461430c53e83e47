package router

import (
	"net/http"
	"os"
	"path"
	"time"

	"github.com/MyelinBots/nabeatsu-go/internal/log"
	"github.com/MyelinBots/nabeatsu-go/internal/services/context_manager"
	"github.com/google/uuid"
)

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (s *statusRecorder) WriteHeader(code int) {
	s.status = code
	s.ResponseWriter.WriteHeader(code)
}

// requestLogger tags the request with an id and the caller's line_user_id,
// then logs the outcome.
func requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		requestID := uuid.NewString()

		ctx := context_manager.SetRequestIDContext(r.Context(), requestID)
		ctx = context_manager.SetLineUserContext(ctx, r.Header.Get(LineUserHeader))
		w.Header().Set("X-Request-ID", requestID)

		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r.WithContext(ctx))

		log.Info.Printf("[%s] %s %s %d %s", requestID, r.Method, r.URL.Path, rec.status, time.Since(start))
	})
}

// noListingFS hides directories so /uploads/ cannot be browsed.
type noListingFS struct {
	http.FileSystem
}

func (fs noListingFS) Open(name string) (http.File, error) {
	f, err := fs.FileSystem.Open(path.Clean(name))
	if err != nil {
		return nil, err
	}
	stat, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, err
	}
	if stat.IsDir() {
		f.Close()
		return nil, os.ErrNotExist
	}
	return f, nil
}

func staticFiles(dir string) http.Handler {
	return http.FileServer(noListingFS{http.Dir(dir)})
}
