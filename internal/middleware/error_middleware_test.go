package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/sanad-app/sanad-backend/internal/pkg/apperrors"
)

func handleErr(t *testing.T, err error) *httptest.ResponseRecorder {
	t.Helper()
	gin.SetMode(gin.TestMode)
	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
	HandleAPIError(c, err)
	return rec
}

func TestHandleAPIErrorStatuses(t *testing.T) {
	cases := []struct {
		name   string
		err    error
		status int
	}{
		{"not found", apperrors.ErrCampaignNotFound, http.StatusNotFound},
		// duplicate rows are refused with 400, never 409
		{"duplicate cin", apperrors.ErrCINAlreadyExists, http.StatusBadRequest},
		{"duplicate reference", apperrors.ErrReferenceAlreadyExists, http.StatusBadRequest},
		{"duplicate entry", apperrors.ErrEntryAlreadyExists, http.StatusBadRequest},
		{"duplicate email", apperrors.ErrEmailAlreadyExists, http.StatusBadRequest},
		{"protected role", apperrors.ErrRoleImmutable, http.StatusForbidden},
		{"bad credentials", apperrors.ErrInvalidCredentials, http.StatusUnauthorized},
		{"unknown error", errors.New("boom"), http.StatusInternalServerError},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rec := handleErr(t, tc.err)
			assert.Equal(t, tc.status, rec.Code)
		})
	}
}

func TestHandleAPIErrorWrappedSentinel(t *testing.T) {
	wrapped := apperrors.NewCustomError(apperrors.ErrCINAlreadyExists, "cin AB1234 already registered")
	rec := handleErr(t, wrapped)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "AB1234")
}
