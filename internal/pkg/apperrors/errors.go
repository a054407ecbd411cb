package apperrors

import "errors"

// Common errors
var (
	// Resource errors
	ErrResourceNotFound      = errors.New("resource not found")
	ErrResourceAlreadyExists = errors.New("resource already exists")
	ErrConflict              = errors.New("conflict")

	// Authentication errors
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrTokenExpired       = errors.New("token expired")
	ErrTokenInvalid       = errors.New("invalid token")
	ErrTokenNotFound      = errors.New("token not found")
	ErrTokenRevoked       = errors.New("token revoked")
	ErrAccountDisabled    = errors.New("account is disabled")

	// Authorization errors
	ErrPermissionDenied = errors.New("permission denied")

	// Validation errors
	ErrValidationFailed = errors.New("validation failed")
	ErrBadRequest       = errors.New("bad request")

	// User errors
	ErrUserNotFound       = errors.New("user not found")
	ErrEmailAlreadyExists = errors.New("email already exists")
	ErrSelfAction         = errors.New("cannot perform this action on your own account")
)

// Campaign errors
var (
	ErrCampaignNotFound         = errors.New("campaign not found")
	ErrCampaignHasBeneficiaries = errors.New("campaign has beneficiaries and cannot be deleted")
)

// Participant / beneficiary errors
var (
	ErrParticipantNotFound = errors.New("participant not found")
	ErrBeneficiaryNotFound = errors.New("beneficiary not found")
	ErrCINAlreadyExists    = errors.New("national identity number already exists")
	ErrAlreadyInCampaign   = errors.New("a beneficiary with this national identity number already exists in the target campaign")
)

// Medical assistance errors
var (
	ErrMedicalAssistanceNotFound = errors.New("medical assistance record not found")
	ErrAlreadyReturned           = errors.New("device already marked as returned")
)

// Kafala errors
var (
	ErrKafalaNotFound         = errors.New("kafala case not found")
	ErrKafalaDocumentNotFound = errors.New("kafala case has no document")
	ErrReferenceAlreadyExists = errors.New("kafala reference already exists")
	ErrDocumentNotPDF         = errors.New("kafala document must be a PDF file")
)

// Dictionary errors
var (
	ErrDictionaryKindNotFound = errors.New("dictionary kind not found")
	ErrEntryNotFound          = errors.New("dictionary entry not found")
	ErrEntryAlreadyExists     = errors.New("dictionary entry with this name already exists")
	ErrEntryInUse             = errors.New("dictionary entry is referenced by existing records and cannot be deleted")
)

// Role errors
var (
	ErrRoleNotFound      = errors.New("role not found")
	ErrRoleAlreadyExists = errors.New("role with this name already exists")
	ErrRoleInUse         = errors.New("role is assigned to users and cannot be deleted")
	ErrRoleImmutable     = errors.New("the admin_si role cannot be modified or deleted")
	ErrUnknownPermission = errors.New("unknown permission key")
)

// Import errors
var (
	ErrNoRowsImported = errors.New("no rows could be imported")
	ErrEmptySheet     = errors.New("spreadsheet contains no data rows")
)

// NewResourceNotFoundError creates a new custom error for resource not found with a message
func NewResourceNotFoundError(message string) error {
	return &CustomError{
		Err:     ErrResourceNotFound,
		Message: message,
	}
}

// NewConflictError creates a new custom error for conflict situations with a message
func NewConflictError(message string) error {
	return &CustomError{
		Err:     ErrConflict,
		Message: message,
	}
}

// NewForbiddenError creates a new custom error for permission denied with a message
func NewForbiddenError(message string) error {
	return &CustomError{
		Err:     ErrPermissionDenied,
		Message: message,
	}
}

// NewBadRequestError creates a new custom error for bad request with a message
func NewBadRequestError(message string) error {
	return &CustomError{
		Err:     ErrBadRequest,
		Message: message,
	}
}

// CustomError represents application-specific errors with additional context
type CustomError struct {
	Err     error
	Message string
	Code    string
	Details map[string]interface{}
}

// Error implements error interface
func (e *CustomError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return "unknown error"
}

// Unwrap implements errors.Unwrap interface
func (e *CustomError) Unwrap() error {
	return e.Err
}

// NewCustomError creates a CustomError with underlying error
func NewCustomError(err error, message string) *CustomError {
	return &CustomError{
		Err:     err,
		Message: message,
	}
}

// WithDetails adds context details to the error
func (e *CustomError) WithDetails(details map[string]interface{}) *CustomError {
	e.Details = details
	return e
}

// WithCode adds an error code
func (e *CustomError) WithCode(code string) *CustomError {
	e.Code = code
	return e
}
