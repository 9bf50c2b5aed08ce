package handler

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/invoicely/backend/internal/domain/shared"
	"github.com/invoicely/backend/internal/interfaces/http/dto"
)

func newBaseContext(t *testing.T) (*gin.Context, *httptest.ResponseRecorder) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
	return c, w
}

func TestBaseHandler_Success(t *testing.T) {
	var h BaseHandler
	c, w := newBaseContext(t)

	h.Success(c, map[string]string{"key": "value"})

	assert.Equal(t, http.StatusOK, w.Code)

	resp := decodeResponse(t, w)
	assert.True(t, resp.Success)
	assert.Equal(t, "value", resp.Data.(map[string]any)["key"])
}

func TestBaseHandler_SuccessWithMeta(t *testing.T) {
	var h BaseHandler
	c, w := newBaseContext(t)

	h.SuccessWithMeta(c, []string{"a", "b"}, 45, 2, 10)

	assert.Equal(t, http.StatusOK, w.Code)

	resp := decodeResponse(t, w)
	assert.Equal(t, int64(45), resp.Meta.Total)
	assert.Equal(t, 2, resp.Meta.Page)
	assert.Equal(t, 5, resp.Meta.TotalPages)
}

func TestBaseHandler_Created(t *testing.T) {
	var h BaseHandler
	c, w := newBaseContext(t)

	h.Created(c, map[string]string{"id": "new"})

	assert.Equal(t, http.StatusCreated, w.Code)
}

func TestBaseHandler_NoContent(t *testing.T) {
	var h BaseHandler
	c, w := newBaseContext(t)

	h.NoContent(c)
	c.Writer.WriteHeaderNow()

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Empty(t, w.Body.Bytes())
}

func TestBaseHandler_HandleError(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
	}{
		{
			name:       "not found",
			err:        shared.NewNotFound("Invoice not found"),
			wantStatus: http.StatusNotFound,
			wantCode:   dto.ErrCodeNotFound,
		},
		{
			name:       "invalid input",
			err:        shared.NewInvalidInput("Due date cannot be before invoice date"),
			wantStatus: http.StatusBadRequest,
			wantCode:   dto.ErrCodeInvalidInput,
		},
		{
			name:       "store failure",
			err:        shared.NewStoreFailure("insert failed"),
			wantStatus: http.StatusInternalServerError,
			wantCode:   dto.ErrCodeStoreFailure,
		},
		{
			name:       "wrapped domain error",
			err:        fmt.Errorf("listing invoices: %w", shared.NewNotFound("Client not found")),
			wantStatus: http.StatusNotFound,
			wantCode:   dto.ErrCodeNotFound,
		},
		{
			name:       "unknown error normalizes to 500",
			err:        fmt.Errorf("driver crashed"),
			wantStatus: http.StatusInternalServerError,
			wantCode:   dto.ErrCodeInternal,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var h BaseHandler
			c, w := newBaseContext(t)

			h.HandleError(c, tt.err)

			assert.Equal(t, tt.wantStatus, w.Code)

			resp := decodeResponse(t, w)
			assert.False(t, resp.Success)
			assert.Equal(t, tt.wantCode, resp.Error.Code)
		})
	}
}

func TestBaseHandler_HandleError_NilIsNoop(t *testing.T) {
	var h BaseHandler
	c, w := newBaseContext(t)

	h.HandleError(c, nil)

	assert.Empty(t, w.Body.Bytes())
}
