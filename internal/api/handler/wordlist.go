package handler

import (
	"log/slog"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/mcoot/crosswordgen/internal/api/request"
	"github.com/mcoot/crosswordgen/internal/api/response"
	"github.com/mcoot/crosswordgen/internal/services/wordbank"
)

// WordListHandler handles word list endpoints
type WordListHandler struct {
	wordbank wordbank.ServiceInterface
	logger   *slog.Logger
}

// NewWordListHandler creates a new word list handler
func NewWordListHandler(wb wordbank.ServiceInterface, logger *slog.Logger) *WordListHandler {
	return &WordListHandler{
		wordbank: wb,
		logger:   logger,
	}
}

// Put handles PUT /api/v1/wordlists/{name}
func (h *WordListHandler) Put(w http.ResponseWriter, r *http.Request) {
	name := mux.Vars(r)["name"]

	var req request.PutWordListRequest
	if err := request.Decode(w, r, &req, false); err != nil {
		writeError(w, r, h.logger, err)
		return
	}

	list, err := h.wordbank.Save(r.Context(), name, req.Words)
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}

	response.JSON(w, http.StatusOK, response.WordListFromModel(list))
}

// Get handles GET /api/v1/wordlists/{name}
func (h *WordListHandler) Get(w http.ResponseWriter, r *http.Request) {
	list, err := h.wordbank.Get(r.Context(), mux.Vars(r)["name"])
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}

	response.JSON(w, http.StatusOK, response.WordListFromModel(list))
}

// List handles GET /api/v1/wordlists
func (h *WordListHandler) List(w http.ResponseWriter, r *http.Request) {
	names, err := h.wordbank.List(r.Context())
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}
	if names == nil {
		names = []string{}
	}

	response.JSON(w, http.StatusOK, response.WordListNames{Names: names})
}

// Delete handles DELETE /api/v1/wordlists/{name}
func (h *WordListHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.wordbank.Delete(r.Context(), mux.Vars(r)["name"]); err != nil {
		writeError(w, r, h.logger, err)
		return
	}

	response.NoContent(w)
}
