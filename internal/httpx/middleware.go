package httpx

import (
	"net/http"

	"github.com/go-chi/chi/v5/middleware"

	"github.com/jcmexdev/modular-commerce/internal/pkg/metadata"
)

// AttachMetadata copies the chi request id and the client's idempotency
// key into context so use cases can read them without touching HTTP.
func AttachMetadata(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := metadata.WithRequestID(r.Context(), middleware.GetReqID(r.Context()))
		ctx = metadata.WithIdempotencyKey(ctx, r.Header.Get(metadata.HeaderXIdempotencyKey))
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
