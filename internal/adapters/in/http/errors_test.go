package http_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	httpin "ordering/internal/adapters/in/http"
	"ordering/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestErrorHandler(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		code    int
		message string
	}{
		{
			name:    "query binding failure",
			err:     echo.NewBindingError("limit", []string{"many"}, "failed to bind field value to int", nil),
			code:    http.StatusBadRequest,
			message: "limit: failed to bind field value to int",
		},
		{
			name:    "echo http error",
			err:     echo.NewHTTPError(http.StatusUnsupportedMediaType, "unsupported media type"),
			code:    http.StatusUnsupportedMediaType,
			message: "unsupported media type",
		},
		{
			name:    "missing order",
			err:     errs.NewObjectNotFoundError("orderNumber", "ORD-1"),
			code:    http.StatusNotFound,
			message: "object not found: ORD-1",
		},
		{
			name:    "unexpected failure",
			err:     errors.New("disk on fire"),
			code:    http.StatusInternalServerError,
			message: "Internal Server Error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := echo.New()
			e.HTTPErrorHandler = httpin.NewErrorHandler(zap.NewNop())
			e.GET("/fail", func(echo.Context) error { return tt.err })

			rec := httptest.NewRecorder()
			e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/fail", nil))

			require.Equal(t, tt.code, rec.Code)
			var body httpin.Error
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.Equal(t, tt.code, body.Code)
			assert.Equal(t, tt.message, body.Message)
		})
	}
}

func TestStatusOf(t *testing.T) {
	assert.Equal(t, http.StatusBadRequest, httpin.StatusOf(errs.NewValueIsInvalidErrorWithCause("limit", errors.New("not a number"))))
	assert.Equal(t, http.StatusConflict, httpin.StatusOf(errs.NewObjectAlreadyExistsError("orderNumber", "ORD-1")))
	assert.Equal(t, http.StatusBadRequest, httpin.StatusOf(errs.NewInvalidCartError("empty")))
	assert.Equal(t, http.StatusInternalServerError, httpin.StatusOf(errs.NewStorageError("save", errors.New("boom"))))
}
