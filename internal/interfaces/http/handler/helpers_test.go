package handler

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"github.com/invoicely/backend/internal/interfaces/http/dto"
	"github.com/invoicely/backend/internal/interfaces/http/middleware"
	"github.com/invoicely/backend/internal/interfaces/http/router"
)

// newTestEngine builds a gin engine with the given registrars mounted
// under the /api/v1 prefix, mirroring the production route layout.
func newTestEngine(t *testing.T, registrars ...router.RouteRegistrar) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	middleware.SetupValidator()

	engine := gin.New()
	r := router.NewRouter(engine)
	for _, registrar := range registrars {
		r.Register(registrar)
	}
	r.Setup()

	return engine
}

// performRequest runs one request through the engine and records the
// response
func performRequest(engine *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	if body != nil {
		payload, _ := json.Marshal(body)
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)
	return w
}

// decodeResponse unmarshals the envelope from a recorded response
func decodeResponse(t *testing.T, w *httptest.ResponseRecorder) dto.Response {
	t.Helper()

	var resp dto.Response
	err := json.Unmarshal(w.Body.Bytes(), &resp)
	require.NoError(t, err)
	return resp
}

// rawRequest sends a request with a literal body, for malformed JSON
// cases that json.Marshal cannot produce
func rawRequest(engine *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, bytes.NewReader([]byte(body)))
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)
	return w
}
