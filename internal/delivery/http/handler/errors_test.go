package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	appErrors "github.com/hgarciaospina/backend-cafe-management-system/pkg/errors"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatusFor(t *testing.T) {
	cases := []struct {
		err  error
		want int
	}{
		{appErrors.ErrUnauthorized, http.StatusUnauthorized},
		{appErrors.ErrInvalidSignature, http.StatusUnauthorized},
		{appErrors.InvalidData(errors.New("bad")), http.StatusBadRequest},
		{appErrors.NotFound("Product with id %d does not exist.", 3), http.StatusNotFound},
		{appErrors.ErrUserIDNotFound, http.StatusNotFound},
		{appErrors.CategoryNotFound(9), http.StatusBadRequest},
		{appErrors.ErrIncorrectOldPassword, http.StatusBadRequest},
		{appErrors.ErrEmailAlreadyExists, http.StatusBadRequest},
		{appErrors.ErrBadCredentials, http.StatusBadRequest},
		{appErrors.ErrPendingApproval, http.StatusBadRequest},
		{appErrors.ErrUserNotFoundByEmail, http.StatusBadRequest},
		{fmt.Errorf("wrapped: %w", appErrors.ErrBadCredentials), http.StatusBadRequest},
		{appErrors.NewAppError("SOMETHING_ELSE", "odd", nil), http.StatusInternalServerError},
		{errors.New("db exploded"), http.StatusInternalServerError},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.want, StatusFor(tc.err), tc.err.Error())
	}
}

func TestRespondWithError_HidesInternalErrors(t *testing.T) {
	gin.SetMode(gin.TestMode)

	cases := map[string]struct {
		err         error
		wantStatus  int
		wantMessage string
	}{
		"coded":    {appErrors.ErrPendingApproval, http.StatusBadRequest, "Wait for admin approval."},
		"internal": {errors.New("pq: connection refused"), http.StatusInternalServerError, MsgSomethingWentWrong},
		"unknown code": {
			appErrors.NewAppError("SOMETHING_ELSE", "leaky detail", nil),
			http.StatusInternalServerError, MsgSomethingWentWrong,
		},
	}

	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)
			c.Request = httptest.NewRequest(http.MethodGet, "/x", nil)

			respondWithError(c, tc.err)

			assert.Equal(t, tc.wantStatus, w.Code)
			var body map[string]string
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
			assert.Equal(t, tc.wantMessage, body["message"])
		})
	}
}
