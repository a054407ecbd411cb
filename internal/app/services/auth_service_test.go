package services

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/sanad-app/sanad-backend/internal/app/models/dto"
)

// ResetPassword must hash the new password before it opens the transaction
// that consumes the reset token. The service below has no database pool, so
// any storage access would panic: an unhashable password has to fail on the
// hashing step alone, leaving the token untouched.
func TestResetPasswordHashFailureLeavesTokenIntact(t *testing.T) {
	svc := NewAuthService(nil, nil, nil, nil, nil, nil, "")

	req := &dto.ResetPasswordRequest{
		Token:       "11f4c2a8-0000-0000-0000-000000000000",
		NewPassword: strings.Repeat("a", 80), // past bcrypt's 72-byte limit
	}

	err := svc.ResetPassword(context.Background(), req)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "hashing password")
}
