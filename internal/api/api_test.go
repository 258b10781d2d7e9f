package api_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"unicode"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mcoot/crosswordgen/internal/api"
	"github.com/mcoot/crosswordgen/internal/api/apierr"
	"github.com/mcoot/crosswordgen/internal/api/response"
	"github.com/mcoot/crosswordgen/internal/factory"
	"github.com/mcoot/crosswordgen/internal/testutil"
)

type testServer struct {
	handler http.Handler
	app     *factory.TestApp
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()

	app := factory.NewTestApp()
	require.NoError(t, app.LoadTestWordList(t.Context()))

	router := api.NewRouter(api.RouterConfig{
		Logger:    testutil.NopLogger(),
		Random:    app.Random,
		WordBank:  app.WordBank,
		Generator: app.Generator,
	})

	return &testServer{handler: router, app: app}
}

func (ts *testServer) request(method, path string, body any) *httptest.ResponseRecorder {
	var reqBody *bytes.Buffer
	switch b := body.(type) {
	case nil:
		reqBody = bytes.NewBuffer(nil)
	case string:
		reqBody = bytes.NewBufferString(b)
	default:
		data, _ := json.Marshal(body)
		reqBody = bytes.NewBuffer(data)
	}

	req := httptest.NewRequest(method, path, reqBody)
	req.Header.Set("Content-Type", "application/json")

	rr := httptest.NewRecorder()
	ts.handler.ServeHTTP(rr, req)
	return rr
}

func decodeError(t *testing.T, rr *httptest.ResponseRecorder) apierr.APIError {
	t.Helper()
	var resp apierr.ErrorResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	return resp.Error
}

func TestHealthCheck(t *testing.T) {
	ts := newTestServer(t)
	ts.app.MockRandom.QueueString("REQ000000001")

	rr := ts.request(http.MethodGet, "/api/v1/health", nil)
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), "ok")
	assert.Equal(t, "REQ000000001", rr.Header().Get("X-Request-ID"))
}

func TestGeneratePuzzle(t *testing.T) {
	ts := newTestServer(t)
	ts.app.MockRandom.QueueString("REQUEST", "PUZZLE000001")

	body := map[string]any{
		"words":      []string{"contoh", "dummy", "lorem", "a", "1"},
		"max_height": 25,
		"max_width":  60,
	}
	rr := ts.request(http.MethodPost, "/api/v1/puzzles", body)
	require.Equal(t, http.StatusCreated, rr.Code, rr.Body.String())

	var puzzle response.Puzzle
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &puzzle))

	assert.Equal(t, "PUZZLE000001", puzzle.ID)
	assert.ElementsMatch(t, []string{"CONTOH", "DUMMY", "LOREM"}, puzzle.WordsUsed)
	assert.Empty(t, puzzle.WordsRejected)
	assert.Len(t, append(puzzle.Across, puzzle.Down...), 3)
	assert.LessOrEqual(t, len(puzzle.Board), 25)
	for _, line := range puzzle.Clueless {
		assert.False(t, strings.ContainsFunc(line, unicode.IsLetter))
	}
}

func TestGeneratePuzzleNoUsableWords(t *testing.T) {
	ts := newTestServer(t)

	rr := ts.request(http.MethodPost, "/api/v1/puzzles", map[string]any{"words": []string{"a", "1", ""}})
	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Equal(t, apierr.CodeInvalidInput, decodeError(t, rr).Code)
}

func TestGeneratePuzzleValidation(t *testing.T) {
	ts := newTestServer(t)

	tests := []struct {
		name string
		body any
	}{
		{"missing words", map[string]any{}},
		{"bad json", "{"},
		{"negative bounds", map[string]any{"words": []string{"cat"}, "max_width": -1}},
		{"negative retries", map[string]any{"words": []string{"cat"}, "max_retry_rounds": -2}},
		{"unknown policy", map[string]any{"words": []string{"cat"}, "bounds_policy": "sometimes"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rr := ts.request(http.MethodPost, "/api/v1/puzzles", tt.body)
			assert.Equal(t, http.StatusBadRequest, rr.Code)
			assert.Equal(t, apierr.CodeInvalidRequest, decodeError(t, rr).Code)
		})
	}
}

func TestGeneratePuzzleWithPolicy(t *testing.T) {
	ts := newTestServer(t)

	body := map[string]any{
		"words":         []string{"horse", "ore", "he"},
		"max_height":    5,
		"bounds_policy": "abort",
	}
	rr := ts.request(http.MethodPost, "/api/v1/puzzles", body)
	require.Equal(t, http.StatusCreated, rr.Code)

	var puzzle response.Puzzle
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &puzzle))
	assert.Equal(t, []string{"HORSE"}, puzzle.WordsUsed)
	assert.Equal(t, []string{"ORE", "HE"}, puzzle.WordsRejected)
}

func TestWordListLifecycle(t *testing.T) {
	ts := newTestServer(t)

	rr := ts.request(http.MethodPut, "/api/v1/wordlists/animals", map[string]any{"words": []string{"cat", "dog", "x"}})
	require.Equal(t, http.StatusOK, rr.Code)

	var list response.WordList
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &list))
	assert.Equal(t, "animals", list.Name)
	assert.Equal(t, []string{"CAT", "DOG"}, list.Words)

	rr = ts.request(http.MethodGet, "/api/v1/wordlists/animals", nil)
	require.Equal(t, http.StatusOK, rr.Code)

	rr = ts.request(http.MethodGet, "/api/v1/wordlists", nil)
	require.Equal(t, http.StatusOK, rr.Code)
	var names response.WordListNames
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &names))
	assert.Equal(t, []string{"animals", factory.TestWordListName}, names.Names)

	rr = ts.request(http.MethodDelete, "/api/v1/wordlists/animals", nil)
	assert.Equal(t, http.StatusNoContent, rr.Code)

	rr = ts.request(http.MethodGet, "/api/v1/wordlists/animals", nil)
	assert.Equal(t, http.StatusNotFound, rr.Code)
	assert.Equal(t, apierr.CodeWordListNotFound, decodeError(t, rr).Code)
}

func TestPutWordListErrors(t *testing.T) {
	ts := newTestServer(t)

	rr := ts.request(http.MethodPut, "/api/v1/wordlists/Bad%20Name", map[string]any{"words": []string{"cat"}})
	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Equal(t, apierr.CodeInvalidWordListName, decodeError(t, rr).Code)

	rr = ts.request(http.MethodPut, "/api/v1/wordlists/empty", map[string]any{"words": []string{"1"}})
	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Equal(t, apierr.CodeInvalidInput, decodeError(t, rr).Code)
}

func TestGenerateFromList(t *testing.T) {
	ts := newTestServer(t)

	rr := ts.request(http.MethodPost, "/api/v1/wordlists/"+factory.TestWordListName+"/puzzles", nil)
	require.Equal(t, http.StatusCreated, rr.Code, rr.Body.String())

	var puzzle response.Puzzle
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &puzzle))
	assert.Equal(t, "CROSSWORD", puzzle.WordsUsed[0])
	assert.Equal(t, 2*puzzle.Rows+1, len(puzzle.Board))
}

func TestGenerateFromMissingList(t *testing.T) {
	ts := newTestServer(t)

	rr := ts.request(http.MethodPost, "/api/v1/wordlists/missing/puzzles", map[string]any{"refresh": true})
	assert.Equal(t, http.StatusNotFound, rr.Code)
}

func TestDeleteMissingList(t *testing.T) {
	ts := newTestServer(t)

	rr := ts.request(http.MethodDelete, "/api/v1/wordlists/missing", nil)
	assert.Equal(t, http.StatusNotFound, rr.Code)
}
