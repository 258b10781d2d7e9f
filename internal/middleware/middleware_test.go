package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mcoot/crosswordgen/internal/dependencies/mocks"
	"github.com/mcoot/crosswordgen/internal/testutil"
)

func TestLoggingGeneratesRequestID(t *testing.T) {
	rnd := mocks.NewMockRandom()
	rnd.QueueString("REQ1")

	logger, logs := testutil.RecordingLogger()
	var seen string
	handler := Logging(logger, rnd)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = RequestID(r.Context())
		w.WriteHeader(http.StatusTeapot)
	}))

	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, "REQ1", seen)
	assert.Equal(t, "REQ1", rr.Header().Get(RequestIDHeader))
	assert.Equal(t, http.StatusTeapot, rr.Code)

	records := logs.Records("http request")
	require.Len(t, records, 1)
	assert.Equal(t, "REQ1", records[0]["request_id"])
	assert.EqualValues(t, http.StatusTeapot, records[0]["status"])
}

func TestLoggingKeepsIncomingRequestID(t *testing.T) {
	handler := Logging(testutil.NopLogger(), mocks.NewMockRandom())(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("ok"))
	}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(RequestIDHeader, "abc")
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	assert.Equal(t, "abc", rr.Header().Get(RequestIDHeader))
}

func TestRecovery(t *testing.T) {
	logger, logs := testutil.RecordingLogger()
	rnd := mocks.NewMockRandom()
	rnd.QueueString("REQ2")

	handler := Logging(logger, rnd)(Recovery(logger, PlainPanicHandler)(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		panic("boom")
	})))

	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, httptest.NewRequest(http.MethodPost, "/puzzles", nil))

	assert.Equal(t, http.StatusInternalServerError, rr.Code)

	panics := logs.Records("panic recovered")
	require.Len(t, panics, 1)
	assert.Equal(t, "boom", panics[0]["error"])
	assert.Equal(t, "REQ2", panics[0]["request_id"])
	assert.Equal(t, "/puzzles", panics[0]["path"])

	requests := logs.Records("http request")
	require.Len(t, requests, 1)
	assert.EqualValues(t, http.StatusInternalServerError, requests[0]["status"])
}
