package handler

import (
	"log/slog"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/mcoot/crosswordgen/internal/api/apierr"
	"github.com/mcoot/crosswordgen/internal/api/request"
	"github.com/mcoot/crosswordgen/internal/api/response"
	"github.com/mcoot/crosswordgen/internal/services/generator"
)

// PuzzleHandler handles puzzle generation endpoints
type PuzzleHandler struct {
	generator generator.ServiceInterface
	logger    *slog.Logger
}

// NewPuzzleHandler creates a new puzzle handler
func NewPuzzleHandler(gen generator.ServiceInterface, logger *slog.Logger) *PuzzleHandler {
	return &PuzzleHandler{
		generator: gen,
		logger:    logger,
	}
}

// Create handles POST /api/v1/puzzles
func (h *PuzzleHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req request.GeneratePuzzleRequest
	if err := request.Decode(w, r, &req, false); err != nil {
		writeError(w, r, h.logger, err)
		return
	}
	if len(req.Words) == 0 {
		writeError(w, r, h.logger, apierr.NewInvalidRequestError("words is required"))
		return
	}

	opts, err := req.Options()
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}

	puzzle, err := h.generator.Generate(r.Context(), req.Words, opts)
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}

	response.JSON(w, http.StatusCreated, puzzle)
}

// CreateFromList handles POST /api/v1/wordlists/{name}/puzzles
func (h *PuzzleHandler) CreateFromList(w http.ResponseWriter, r *http.Request) {
	name := mux.Vars(r)["name"]

	var req request.GenerateOptions
	if err := request.Decode(w, r, &req, true); err != nil {
		writeError(w, r, h.logger, err)
		return
	}

	opts, err := req.Options()
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}

	puzzle, err := h.generator.GenerateFromList(r.Context(), name, opts)
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}

	response.JSON(w, http.StatusCreated, puzzle)
}
