package api

import (
	"log/slog"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/mcoot/crosswordgen/internal/api/apierr"
	"github.com/mcoot/crosswordgen/internal/api/handler"
	"github.com/mcoot/crosswordgen/internal/api/response"
	"github.com/mcoot/crosswordgen/internal/dependencies/random"
	"github.com/mcoot/crosswordgen/internal/middleware"
	"github.com/mcoot/crosswordgen/internal/services/generator"
	"github.com/mcoot/crosswordgen/internal/services/wordbank"
)

// RouterConfig holds configuration for the API router
type RouterConfig struct {
	Logger    *slog.Logger
	Random    random.Random
	WordBank  wordbank.ServiceInterface
	Generator generator.ServiceInterface
}

// NewRouter creates a new API router with all routes configured
func NewRouter(cfg RouterConfig) http.Handler {
	r := mux.NewRouter()

	puzzleHandler := handler.NewPuzzleHandler(cfg.Generator, cfg.Logger)
	wordListHandler := handler.NewWordListHandler(cfg.WordBank, cfg.Logger)

	api := r.PathPrefix("/api/v1").Subrouter()
	api.Use(middleware.Logging(cfg.Logger, cfg.Random))
	api.Use(middleware.Recovery(cfg.Logger, apiPanicHandler))

	api.HandleFunc("/health", healthHandler).Methods(http.MethodGet)

	api.HandleFunc("/puzzles", puzzleHandler.Create).Methods(http.MethodPost)

	api.HandleFunc("/wordlists", wordListHandler.List).Methods(http.MethodGet)
	api.HandleFunc("/wordlists/{name}", wordListHandler.Put).Methods(http.MethodPut)
	api.HandleFunc("/wordlists/{name}", wordListHandler.Get).Methods(http.MethodGet)
	api.HandleFunc("/wordlists/{name}", wordListHandler.Delete).Methods(http.MethodDelete)
	api.HandleFunc("/wordlists/{name}/puzzles", puzzleHandler.CreateFromList).Methods(http.MethodPost)

	return r
}

func healthHandler(w http.ResponseWriter, _ *http.Request) {
	response.JSON(w, http.StatusOK, response.Health{Status: "ok"})
}

func apiPanicHandler(w http.ResponseWriter, _ *http.Request, _ any) {
	apierr.WriteError(w, apierr.NewInternalError())
}
