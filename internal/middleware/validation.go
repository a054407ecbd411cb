package middleware

import (
	"encoding/json"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"github.com/sanad-app/sanad-backend/internal/app/models/dto"
)

// BindJSON binds and validates a JSON body. On failure it writes the 422
// envelope with per-field messages and returns false.
func BindJSON(c *gin.Context, obj interface{}) bool {
	if err := c.ShouldBindJSON(obj); err != nil {
		if _, ok := err.(validator.ValidationErrors); ok {
			c.JSON(dto.ValidationStatusCode, dto.NewErrorResponse(dto.HandleValidationError(err)))
		} else {
			detail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid request format").
				WithDetails(err.Error())
			c.JSON(dto.ValidationStatusCode, dto.NewErrorResponse(detail))
		}
		c.Abort()
		return false
	}
	return true
}

// BindJSONString validates a JSON document carried inside a multipart form
// field, applying the same binding rules as a JSON body.
func BindJSONString(c *gin.Context, raw string, obj interface{}) bool {
	if err := json.Unmarshal([]byte(raw), obj); err != nil {
		detail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid request format").
			WithDetails(err.Error())
		c.JSON(dto.ValidationStatusCode, dto.NewErrorResponse(detail))
		c.Abort()
		return false
	}
	if binding.Validator != nil {
		if err := binding.Validator.ValidateStruct(obj); err != nil {
			if _, ok := err.(validator.ValidationErrors); ok {
				c.JSON(dto.ValidationStatusCode, dto.NewErrorResponse(dto.HandleValidationError(err)))
			} else {
				detail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid request data").
					WithDetails(err.Error())
				c.JSON(dto.ValidationStatusCode, dto.NewErrorResponse(detail))
			}
			c.Abort()
			return false
		}
	}
	return true
}

// BindQuery binds and validates query parameters the same way BindJSON does
// for bodies.
func BindQuery(c *gin.Context, obj interface{}) bool {
	if err := c.ShouldBindQuery(obj); err != nil {
		if _, ok := err.(validator.ValidationErrors); ok {
			c.JSON(dto.ValidationStatusCode, dto.NewErrorResponse(dto.HandleValidationError(err)))
		} else {
			detail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid query parameters").
				WithDetails(err.Error())
			c.JSON(dto.ValidationStatusCode, dto.NewErrorResponse(detail))
		}
		c.Abort()
		return false
	}
	return true
}
