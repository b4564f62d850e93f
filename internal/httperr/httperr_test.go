package httperr

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestBusinessErrorStatus(t *testing.T) {
	assert.Equal(t, http.StatusBadRequest, ErrValidation("bad", "bad").(BusinessError).Status())
	assert.Equal(t, http.StatusNotFound, ErrNotFound("missing", "gone").(BusinessError).Status())
	assert.Equal(t, http.StatusConflict, ErrConflict("dup", "dup").(BusinessError).Status())
	assert.Equal(t, http.StatusBadRequest, ErrBusiness("legacy").(BusinessError).Status())
}

func TestIsBusinessAndKindThroughWrapping(t *testing.T) {
	err := fmt.Errorf("create appointment: %w", ErrNotFound("garage_not_found", "Garage not found"))

	assert.True(t, IsBusiness(err, "garage_not_found"))
	assert.False(t, IsBusiness(err, "customer_not_found"))
	assert.True(t, IsKind(err, KindNotFound))
	assert.False(t, IsKind(err, KindValidation))
	assert.False(t, IsKind(errors.New("plain"), KindNotFound))
}

func TestRespond(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name   string
		err    error
		status int
		body   string
	}{
		{
			name:   "not found",
			err:    fmt.Errorf("wrap: %w", ErrNotFound("appointment_not_found", "Appointment not found")),
			status: http.StatusNotFound,
			body:   `{"error_code":"appointment_not_found","message":"Appointment not found"}`,
		},
		{
			name:   "unexpected",
			err:    errors.New("connection reset"),
			status: http.StatusInternalServerError,
			body:   `{"error_code":"internal_error","message":"Something went wrong."}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)
			c.Request = httptest.NewRequest(http.MethodGet, "/", nil)

			Respond(c, tt.err)

			assert.Equal(t, tt.status, w.Code)
			assert.JSONEq(t, tt.body, w.Body.String())
		})
	}
}
