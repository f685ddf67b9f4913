package middleware

import (
	"context"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/dcamargo/restaurant-finder/internal/domain"
	"github.com/dcamargo/restaurant-finder/internal/service"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"
)

// Audit records one transaction per completed request on the routes it is
// mounted on. The write happens in a detached goroutine after the response
// is finalized; the client never waits on it and write failures are only
// logged. The user id comes from an unverified decode of the bearer token,
// so even rejected requests are attributed when possible.
func Audit(transactionService *service.TransactionService) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			var userID *uuid.UUID
			if bearer := r.Header.Get("Authorization"); bearer != "" {
				if token, found := strings.CutPrefix(bearer, "Bearer "); found {
					if sub, ok := service.UnverifiedSubject(token); ok {
						userID = &sub
					}
				}
			}

			ww := chiMiddleware.NewWrapResponseWriter(w, r.ProtoMajor)
			endpoint := r.URL.Path
			method := r.Method

			next.ServeHTTP(ww, r)

			entry := &domain.Transaction{
				UserID:     userID,
				Endpoint:   endpoint,
				Method:     method,
				StatusCode: ww.Status(),
				CreatedAt:  time.Now(),
			}

			// Detached from the request context so the write survives the
			// handler returning and a client disconnect.
			go func() {
				ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
				defer cancel()

				if err := transactionService.Record(ctx, entry); err != nil {
					log.Printf("ERROR [middleware.Audit] failed to record transaction: %v", err)
				}
			}()
		})
	}
}
