package healthcheck

import (
	"context"
	"net/http"
	"time"

	"github.com/MyelinBots/nabeatsu-go/internal/log"
)

type Pinger interface {
	Ping(ctx context.Context) error
}

// HealthCheckHandler answers OK while the database is reachable
func HealthCheckHandler(p Pinger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()

		if err := p.Ping(ctx); err != nil {
			log.Warn.Printf("healthcheck: %v", err)
			w.WriteHeader(http.StatusServiceUnavailable)
			w.Write([]byte("UNAVAILABLE"))
			return
		}
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	}
}
