package handler

import (
	"log/slog"
	"net/http"

	"github.com/mcoot/crosswordgen/internal/api/apierr"
	"github.com/mcoot/crosswordgen/internal/middleware"
)

// writeError writes err as a JSON error response. Errors that map to a
// server error are logged, since their message is not sent to the client.
func writeError(w http.ResponseWriter, r *http.Request, logger *slog.Logger, err error) {
	if apierr.StatusOf(err) >= http.StatusInternalServerError {
		logger.Error("request failed",
			slog.String("request_id", middleware.RequestID(r.Context())),
			slog.String("path", r.URL.Path),
			slog.String("error", err.Error()),
		)
	}
	apierr.WriteError(w, err)
}
