package controllers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/sanad-app/sanad-backend/internal/app/models/dto"
)

// parseIDParam reads a positive integer path parameter, writing a 400
// response itself when the value is not a valid id.
func parseIDParam(ctx *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(ctx.Param(name), 10, 64)
	if err != nil || id < 1 {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid "+name+" parameter")
		errorDetail = errorDetail.WithDetails(name + " must be a positive number")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return 0, false
	}
	return id, true
}

// queryInt64 reads an optional integer query parameter, 0 when absent or
// malformed.
func queryInt64(ctx *gin.Context, name string) int64 {
	v, err := strconv.ParseInt(ctx.Query(name), 10, 64)
	if err != nil || v < 0 {
		return 0
	}
	return v
}

// queryBoolPtr reads an optional tri-state boolean query parameter
func queryBoolPtr(ctx *gin.Context, name string) *bool {
	switch ctx.Query(name) {
	case "true", "1":
		v := true
		return &v
	case "false", "0":
		v := false
		return &v
	}
	return nil
}

func respondOK(ctx *gin.Context, data interface{}) {
	ctx.JSON(http.StatusOK, dto.APIResponse{
		Success:   true,
		Data:      data,
		Timestamp: time.Now(),
	})
}

func respondCreated(ctx *gin.Context, data interface{}) {
	ctx.JSON(http.StatusCreated, dto.APIResponse{
		Success:   true,
		Data:      data,
		Timestamp: time.Now(),
	})
}

func respondMessage(ctx *gin.Context, message string) {
	ctx.JSON(http.StatusOK, dto.APIResponse{
		Success:   true,
		Message:   message,
		Timestamp: time.Now(),
	})
}

func respondPage(ctx *gin.Context, items interface{}, pagination dto.PaginationInfo) {
	respondOK(ctx, dto.PaginatedResponse{Items: items, Pagination: pagination})
}

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// streamAttachment writes binary content with a download disposition
func streamAttachment(ctx *gin.Context, filename, contentType string, data []byte) {
	ctx.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	ctx.Data(http.StatusOK, contentType, data)
}
