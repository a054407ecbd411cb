package controllers

import (
	"mime/multipart"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/sanad-app/sanad-backend/internal/app/models"
	"github.com/sanad-app/sanad-backend/internal/app/models/dto"
	"github.com/sanad-app/sanad-backend/internal/app/repositories"
	"github.com/sanad-app/sanad-backend/internal/app/services"
	"github.com/sanad-app/sanad-backend/internal/middleware"
	"github.com/sanad-app/sanad-backend/internal/pkg/helpers"
)

// ParticipantController handles participant intake and triage operations
type ParticipantController struct {
	participantService services.ParticipantService
	importService      services.ImportService
	exportService      services.ExportService
}

// NewParticipantController creates a new ParticipantController
func NewParticipantController(
	participantService services.ParticipantService,
	importService services.ImportService,
	exportService services.ExportService,
) *ParticipantController {
	return &ParticipantController{
		participantService: participantService,
		importService:      importService,
		exportService:      exportService,
	}
}

// CreateParticipant registers a participant into a campaign
// @Summary Create a participant
// @Tags participants
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Campaign ID"
// @Param request body dto.CreateParticipantRequest true "Participant information"
// @Success 201 {object} dto.APIResponse{data=dto.ParticipantResponse} "Participant created"
// @Failure 404 {object} dto.ErrorResponse "Campaign not found"
// @Failure 400 {object} dto.ErrorResponse "National id already registered"
// @Router /campaigns/{id}/participants [post]
func (c *ParticipantController) CreateParticipant(ctx *gin.Context) {
	campaignID, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}
	var req dto.CreateParticipantRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}
	req.CampaignID = campaignID
	actorID, _ := middleware.CurrentUserID(ctx)

	participant, err := c.participantService.CreateParticipant(ctx, &req, actorID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	respondCreated(ctx, dto.FromParticipant(participant))
}

// ListParticipants lists participants of a campaign
// @Summary List campaign participants
// @Tags participants
// @Produce json
// @Security BearerAuth
// @Param id path int true "Campaign ID"
// @Param status query string false "Triage status filter" Enums(awaiting, yes, no)
// @Param commune_id query int false "Filter by commune"
// @Param q query string false "Search in name or national id"
// @Param page query int false "Page number"
// @Param per_page query int false "Page size"
// @Success 200 {object} dto.APIResponse{data=dto.PaginatedResponse} "Participants retrieved"
// @Failure 404 {object} dto.ErrorResponse "Campaign not found"
// @Router /campaigns/{id}/participants [get]
func (c *ParticipantController) ListParticipants(ctx *gin.Context) {
	campaignID, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}
	page, size := helpers.ParsePaginationParams(ctx)
	filter := repositories.ParticipantFilter{
		Status:    models.ParticipantStatus(ctx.Query("status")),
		CommuneID: queryInt64(ctx, "commune_id"),
		Query:     ctx.Query("q"),
	}

	participants, pagination, err := c.participantService.ListParticipants(ctx, campaignID, filter, page, size)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	items := make([]dto.ParticipantResponse, 0, len(participants))
	for _, p := range participants {
		items = append(items, dto.FromParticipant(p))
	}
	respondPage(ctx, items, pagination)
}

// GetParticipant retrieves one participant
// @Summary Get participant by ID
// @Tags participants
// @Produce json
// @Security BearerAuth
// @Param id path int true "Participant ID"
// @Success 200 {object} dto.APIResponse{data=dto.ParticipantResponse} "Participant retrieved"
// @Failure 404 {object} dto.ErrorResponse "Participant not found"
// @Router /participants/{id} [get]
func (c *ParticipantController) GetParticipant(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	participant, err := c.participantService.GetParticipantByID(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	respondOK(ctx, dto.FromParticipant(participant))
}

// UpdateParticipant handles participant updates
// @Summary Update a participant
// @Tags participants
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Participant ID"
// @Param request body dto.UpdateParticipantRequest true "Participant information"
// @Success 200 {object} dto.APIResponse{data=dto.ParticipantResponse} "Participant updated"
// @Failure 404 {object} dto.ErrorResponse "Participant not found"
// @Failure 400 {object} dto.ErrorResponse "National id already registered"
// @Router /participants/{id} [put]
func (c *ParticipantController) UpdateParticipant(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}
	var req dto.UpdateParticipantRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}
	actorID, _ := middleware.CurrentUserID(ctx)

	participant, err := c.participantService.UpdateParticipant(ctx, id, &req, actorID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	respondOK(ctx, dto.FromParticipant(participant))
}

// TriageParticipant records a call-center triage outcome
// @Summary Triage a participant
// @Description Records the call outcome, date and note of the triage call
// @Tags participants
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Participant ID"
// @Param request body dto.TriageRequest true "Triage outcome"
// @Success 200 {object} dto.APIResponse{data=dto.ParticipantResponse} "Participant triaged"
// @Failure 404 {object} dto.ErrorResponse "Participant not found"
// @Router /participants/{id}/triage [post]
func (c *ParticipantController) TriageParticipant(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}
	var req dto.TriageRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}
	actorID, _ := middleware.CurrentUserID(ctx)

	participant, err := c.participantService.Triage(ctx, id, &req, actorID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	respondOK(ctx, dto.FromParticipant(participant))
}

// ConvertParticipant promotes a participant into a beneficiary
// @Summary Convert participant to beneficiary
// @Description Copies the participant identity into a new pending beneficiary
// @Tags participants
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Participant ID"
// @Param request body dto.ConvertParticipantRequest true "Target campaign"
// @Success 201 {object} dto.APIResponse{data=dto.BeneficiaryResponse} "Beneficiary created"
// @Failure 404 {object} dto.ErrorResponse "Participant or campaign not found"
// @Failure 400 {object} dto.ErrorResponse "Already a beneficiary of the campaign"
// @Router /participants/{id}/convert [post]
func (c *ParticipantController) ConvertParticipant(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}
	var req dto.ConvertParticipantRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}
	actorID, _ := middleware.CurrentUserID(ctx)

	beneficiary, err := c.participantService.ConvertToBeneficiary(ctx, id, &req, actorID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	respondCreated(ctx, dto.FromBeneficiary(beneficiary))
}

// DeleteParticipant handles participant deletion
// @Summary Delete a participant
// @Tags participants
// @Produce json
// @Security BearerAuth
// @Param id path int true "Participant ID"
// @Success 200 {object} dto.APIResponse "Participant deleted"
// @Failure 404 {object} dto.ErrorResponse "Participant not found"
// @Router /participants/{id} [delete]
func (c *ParticipantController) DeleteParticipant(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	if err := c.participantService.DeleteParticipant(ctx, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	respondMessage(ctx, "Participant deleted successfully")
}

// ImportParticipants imports a participant spreadsheet into a campaign
// @Summary Import participants from a spreadsheet
// @Description Upserts rows by national id; the batch commits only if at least one row succeeds
// @Tags participants
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param id path int true "Campaign ID"
// @Param file formData file true "Spreadsheet file (.xlsx)"
// @Success 200 {object} dto.APIResponse{data=dto.ImportResult} "Import summary"
// @Failure 400 {object} dto.ErrorResponse "Empty sheet or no importable rows"
// @Failure 404 {object} dto.ErrorResponse "Campaign not found"
// @Router /campaigns/{id}/participants/import [post]
func (c *ParticipantController) ImportParticipants(ctx *gin.Context) {
	campaignID, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}
	file, err := openUpload(ctx)
	if err != nil {
		return
	}
	defer file.Close()
	actorID, _ := middleware.CurrentUserID(ctx)

	result, err := c.importService.ImportParticipants(ctx, campaignID, file, actorID)
	if err != nil {
		respondImportFailure(ctx, result, err)
		return
	}
	respondOK(ctx, result)
}

// ExportParticipants downloads the participants of a campaign as a workbook
// @Summary Export participants to a spreadsheet
// @Tags participants
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Security BearerAuth
// @Param id path int true "Campaign ID"
// @Success 200 {file} binary "Workbook"
// @Failure 404 {object} dto.ErrorResponse "Campaign not found"
// @Router /campaigns/{id}/participants/export [get]
func (c *ParticipantController) ExportParticipants(ctx *gin.Context) {
	campaignID, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	buf, filename, err := c.exportService.ExportParticipants(ctx, campaignID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	streamAttachment(ctx, filename, xlsxContentType, buf.Bytes())
}

// ParticipantTemplate downloads an empty import template
// @Summary Download the participant import template
// @Tags participants
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Security BearerAuth
// @Success 200 {file} binary "Workbook template"
// @Router /templates/participants [get]
func (c *ParticipantController) ParticipantTemplate(ctx *gin.Context) {
	buf, filename, err := c.exportService.ParticipantTemplate(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	streamAttachment(ctx, filename, xlsxContentType, buf.Bytes())
}

// openUpload extracts the uploaded spreadsheet from the multipart form,
// answering 400 itself when the part is missing.
func openUpload(ctx *gin.Context) (multipart.File, error) {
	header, err := ctx.FormFile("file")
	if err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Missing file upload")
		errorDetail = errorDetail.WithDetails("A multipart field named 'file' is required")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return nil, err
	}
	file, err := header.Open()
	if err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Unreadable file upload")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return nil, err
	}
	return file, nil
}

// respondImportFailure reports a batch that wrote nothing, keeping the
// per-row error list visible to the caller.
func respondImportFailure(ctx *gin.Context, result *dto.ImportResult, err error) {
	if result == nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	errorDetail := dto.NewErrorDetail(dto.ErrorCodeBusinessRule, "No rows could be imported")
	errorDetail = errorDetail.WithDetails(result)
	ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
}
