package controllers

import (
	"github.com/gin-gonic/gin"

	"github.com/sanad-app/sanad-backend/internal/app/models/dto"
	"github.com/sanad-app/sanad-backend/internal/app/repositories"
	"github.com/sanad-app/sanad-backend/internal/app/services"
	"github.com/sanad-app/sanad-backend/internal/middleware"
	"github.com/sanad-app/sanad-backend/internal/pkg/helpers"
)

// MedicalAssistanceController handles device loan and donation operations
type MedicalAssistanceController struct {
	medicalService services.MedicalAssistanceService
}

// NewMedicalAssistanceController creates a new MedicalAssistanceController
func NewMedicalAssistanceController(medicalService services.MedicalAssistanceService) *MedicalAssistanceController {
	return &MedicalAssistanceController{medicalService: medicalService}
}

// CreateAssistance records an assistance for a beneficiary
// @Summary Create a medical assistance record
// @Description Records a device loan or donation for a beneficiary
// @Tags medical-assistances
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Beneficiary ID"
// @Param request body dto.CreateMedicalAssistanceRequest true "Assistance information"
// @Success 201 {object} dto.APIResponse{data=dto.MedicalAssistanceResponse} "Assistance created"
// @Failure 404 {object} dto.ErrorResponse "Beneficiary or reference entry not found"
// @Router /beneficiaries/{id}/assistances [post]
func (c *MedicalAssistanceController) CreateAssistance(ctx *gin.Context) {
	beneficiaryID, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}
	var req dto.CreateMedicalAssistanceRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}

	assistance, err := c.medicalService.CreateAssistance(ctx, beneficiaryID, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	respondCreated(ctx, dto.FromMedicalAssistance(assistance))
}

// GetAssistance retrieves one assistance record
// @Summary Get assistance by ID
// @Tags medical-assistances
// @Produce json
// @Security BearerAuth
// @Param id path int true "Assistance ID"
// @Success 200 {object} dto.APIResponse{data=dto.MedicalAssistanceResponse} "Assistance retrieved"
// @Failure 404 {object} dto.ErrorResponse "Assistance not found"
// @Router /assistances/{id} [get]
func (c *MedicalAssistanceController) GetAssistance(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	assistance, err := c.medicalService.GetAssistanceByID(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	respondOK(ctx, dto.FromMedicalAssistance(assistance))
}

// ListAssistances retrieves assistance records matching the filters
// @Summary List medical assistance records
// @Tags medical-assistances
// @Produce json
// @Security BearerAuth
// @Param beneficiary_id query int false "Filter by beneficiary"
// @Param assistance_type_id query int false "Filter by assistance type"
// @Param returned query bool false "Filter by return state"
// @Param page query int false "Page number"
// @Param per_page query int false "Page size"
// @Success 200 {object} dto.APIResponse{data=dto.PaginatedResponse} "Assistances retrieved"
// @Router /assistances [get]
func (c *MedicalAssistanceController) ListAssistances(ctx *gin.Context) {
	page, size := helpers.ParsePaginationParams(ctx)
	filter := repositories.MedicalAssistanceFilter{
		BeneficiaryID:    queryInt64(ctx, "beneficiary_id"),
		AssistanceTypeID: queryInt64(ctx, "assistance_type_id"),
		Returned:         queryBoolPtr(ctx, "returned"),
	}

	assistances, pagination, err := c.medicalService.ListAssistances(ctx, filter, page, size)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	items := make([]dto.MedicalAssistanceResponse, 0, len(assistances))
	for _, a := range assistances {
		items = append(items, dto.FromMedicalAssistance(a))
	}
	respondPage(ctx, items, pagination)
}

// UpdateAssistance handles assistance updates
// @Summary Update a medical assistance record
// @Tags medical-assistances
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Assistance ID"
// @Param request body dto.UpdateMedicalAssistanceRequest true "Assistance information"
// @Success 200 {object} dto.APIResponse{data=dto.MedicalAssistanceResponse} "Assistance updated"
// @Failure 404 {object} dto.ErrorResponse "Assistance not found"
// @Router /assistances/{id} [put]
func (c *MedicalAssistanceController) UpdateAssistance(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}
	var req dto.UpdateMedicalAssistanceRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}

	assistance, err := c.medicalService.UpdateAssistance(ctx, id, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	respondOK(ctx, dto.FromMedicalAssistance(assistance))
}

// MarkReturned records the device return
// @Summary Mark a loaned device as returned
// @Description Records the actual return date; a second call is refused
// @Tags medical-assistances
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Assistance ID"
// @Param request body dto.ReturnRequest false "Return date, defaults to today"
// @Success 200 {object} dto.APIResponse{data=dto.MedicalAssistanceResponse} "Return recorded"
// @Failure 400 {object} dto.ErrorResponse "Device already returned"
// @Failure 404 {object} dto.ErrorResponse "Assistance not found"
// @Router /assistances/{id}/return [post]
func (c *MedicalAssistanceController) MarkReturned(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}
	var req dto.ReturnRequest
	if ctx.Request.ContentLength > 0 && !middleware.BindJSON(ctx, &req) {
		return
	}

	assistance, err := c.medicalService.MarkReturned(ctx, id, req.ReturnDate)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	respondOK(ctx, dto.FromMedicalAssistance(assistance))
}

// DeleteAssistance handles assistance deletion
// @Summary Delete a medical assistance record
// @Tags medical-assistances
// @Produce json
// @Security BearerAuth
// @Param id path int true "Assistance ID"
// @Success 200 {object} dto.APIResponse "Assistance deleted"
// @Failure 404 {object} dto.ErrorResponse "Assistance not found"
// @Router /assistances/{id} [delete]
func (c *MedicalAssistanceController) DeleteAssistance(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	if err := c.medicalService.DeleteAssistance(ctx, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	respondMessage(ctx, "Assistance deleted successfully")
}
