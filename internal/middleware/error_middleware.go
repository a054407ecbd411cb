package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/sanad-app/sanad-backend/internal/app/models/dto"
	"github.com/sanad-app/sanad-backend/internal/pkg/apperrors"
	"github.com/sanad-app/sanad-backend/internal/pkg/logger"
)

// DebugMode controls whether internal error details leak into 500 responses.
// Set once at startup from the server config.
var DebugMode bool

type errorMapping struct {
	status int
	code   dto.ErrorCode
}

// sentinelMappings maps every domain sentinel to its HTTP status and error
// code. CustomError wrappers keep their message; bare sentinels use their
// own text.
var sentinelMappings = []struct {
	err error
	errorMapping
}{
	// 404
	{apperrors.ErrCampaignNotFound, errorMapping{http.StatusNotFound, dto.ErrorCodeResourceNotFound}},
	{apperrors.ErrParticipantNotFound, errorMapping{http.StatusNotFound, dto.ErrorCodeResourceNotFound}},
	{apperrors.ErrBeneficiaryNotFound, errorMapping{http.StatusNotFound, dto.ErrorCodeResourceNotFound}},
	{apperrors.ErrMedicalAssistanceNotFound, errorMapping{http.StatusNotFound, dto.ErrorCodeResourceNotFound}},
	{apperrors.ErrKafalaNotFound, errorMapping{http.StatusNotFound, dto.ErrorCodeResourceNotFound}},
	{apperrors.ErrKafalaDocumentNotFound, errorMapping{http.StatusNotFound, dto.ErrorCodeResourceNotFound}},
	{apperrors.ErrDictionaryKindNotFound, errorMapping{http.StatusNotFound, dto.ErrorCodeResourceNotFound}},
	{apperrors.ErrEntryNotFound, errorMapping{http.StatusNotFound, dto.ErrorCodeResourceNotFound}},
	{apperrors.ErrRoleNotFound, errorMapping{http.StatusNotFound, dto.ErrorCodeResourceNotFound}},
	{apperrors.ErrUserNotFound, errorMapping{http.StatusNotFound, dto.ErrorCodeResourceNotFound}},
	{apperrors.ErrResourceNotFound, errorMapping{http.StatusNotFound, dto.ErrorCodeResourceNotFound}},

	// duplicates are business-rule refusals, not 409s
	{apperrors.ErrCINAlreadyExists, errorMapping{http.StatusBadRequest, dto.ErrorCodeResourceAlreadyExists}},
	{apperrors.ErrAlreadyInCampaign, errorMapping{http.StatusBadRequest, dto.ErrorCodeResourceAlreadyExists}},
	{apperrors.ErrReferenceAlreadyExists, errorMapping{http.StatusBadRequest, dto.ErrorCodeResourceAlreadyExists}},
	{apperrors.ErrEntryAlreadyExists, errorMapping{http.StatusBadRequest, dto.ErrorCodeResourceAlreadyExists}},
	{apperrors.ErrRoleAlreadyExists, errorMapping{http.StatusBadRequest, dto.ErrorCodeResourceAlreadyExists}},
	{apperrors.ErrEmailAlreadyExists, errorMapping{http.StatusBadRequest, dto.ErrorCodeResourceAlreadyExists}},
	{apperrors.ErrResourceAlreadyExists, errorMapping{http.StatusBadRequest, dto.ErrorCodeResourceAlreadyExists}},
	{apperrors.ErrConflict, errorMapping{http.StatusBadRequest, dto.ErrorCodeResourceAlreadyExists}},

	// 400 business rules
	{apperrors.ErrCampaignHasBeneficiaries, errorMapping{http.StatusBadRequest, dto.ErrorCodeBusinessRule}},
	{apperrors.ErrAlreadyReturned, errorMapping{http.StatusBadRequest, dto.ErrorCodeBusinessRule}},
	{apperrors.ErrDocumentNotPDF, errorMapping{http.StatusBadRequest, dto.ErrorCodeBusinessRule}},
	{apperrors.ErrEntryInUse, errorMapping{http.StatusBadRequest, dto.ErrorCodeResourceInUse}},
	{apperrors.ErrRoleInUse, errorMapping{http.StatusBadRequest, dto.ErrorCodeResourceInUse}},
	{apperrors.ErrUnknownPermission, errorMapping{http.StatusBadRequest, dto.ErrorCodeBusinessRule}},
	{apperrors.ErrNoRowsImported, errorMapping{http.StatusBadRequest, dto.ErrorCodeBusinessRule}},
	{apperrors.ErrEmptySheet, errorMapping{http.StatusBadRequest, dto.ErrorCodeBusinessRule}},
	{apperrors.ErrBadRequest, errorMapping{http.StatusBadRequest, dto.ErrorCodeBusinessRule}},

	// 403
	{apperrors.ErrRoleImmutable, errorMapping{http.StatusForbidden, dto.ErrorCodeImmutableRole}},
	{apperrors.ErrSelfAction, errorMapping{http.StatusForbidden, dto.ErrorCodeSelfAction}},
	{apperrors.ErrPermissionDenied, errorMapping{http.StatusForbidden, dto.ErrorCodeForbidden}},

	// 401
	{apperrors.ErrInvalidCredentials, errorMapping{http.StatusUnauthorized, dto.ErrorCodeInvalidCredentials}},
	{apperrors.ErrAccountDisabled, errorMapping{http.StatusUnauthorized, dto.ErrorCodeAccountDisabled}},
	{apperrors.ErrTokenExpired, errorMapping{http.StatusUnauthorized, dto.ErrorCodeExpiredToken}},
	{apperrors.ErrTokenInvalid, errorMapping{http.StatusUnauthorized, dto.ErrorCodeInvalidToken}},
	{apperrors.ErrTokenNotFound, errorMapping{http.StatusUnauthorized, dto.ErrorCodeTokenNotFound}},
	{apperrors.ErrTokenRevoked, errorMapping{http.StatusUnauthorized, dto.ErrorCodeInvalidToken}},

	// 422
	{apperrors.ErrValidationFailed, errorMapping{dto.ValidationStatusCode, dto.ErrorCodeValidationFailed}},
}

// HandleAPIError maps service errors to the standard error envelope. Unknown
// errors become an opaque 500; their text is only exposed in debug mode.
func HandleAPIError(c *gin.Context, err error) {
	for _, m := range sentinelMappings {
		if errors.Is(err, m.err) {
			detail := dto.NewErrorDetail(m.code, err.Error())
			c.JSON(m.status, dto.NewErrorResponse(detail))
			return
		}
	}

	logger.Error().Err(err).
		Str("path", c.FullPath()).
		Str("method", c.Request.Method).
		Msg("Unhandled API error")

	detail := dto.NewErrorDetail(dto.ErrorCodeInternalServer, "Internal server error")
	if DebugMode {
		detail = detail.WithDebugInfo("%v", err)
	}
	c.JSON(http.StatusInternalServerError, dto.NewErrorResponse(detail))
}
