package controllers

import (
	"github.com/gin-gonic/gin"

	"github.com/sanad-app/sanad-backend/internal/app/models"
	"github.com/sanad-app/sanad-backend/internal/app/models/dto"
	"github.com/sanad-app/sanad-backend/internal/app/repositories"
	"github.com/sanad-app/sanad-backend/internal/app/services"
	"github.com/sanad-app/sanad-backend/internal/middleware"
	"github.com/sanad-app/sanad-backend/internal/pkg/helpers"
)

// BeneficiaryController handles beneficiary decision operations
type BeneficiaryController struct {
	beneficiaryService services.BeneficiaryService
	importService      services.ImportService
	exportService      services.ExportService
}

// NewBeneficiaryController creates a new BeneficiaryController
func NewBeneficiaryController(
	beneficiaryService services.BeneficiaryService,
	importService services.ImportService,
	exportService services.ExportService,
) *BeneficiaryController {
	return &BeneficiaryController{
		beneficiaryService: beneficiaryService,
		importService:      importService,
		exportService:      exportService,
	}
}

// CreateBeneficiary handles beneficiary creation
// @Summary Create a beneficiary
// @Description Creates a beneficiary, with or without a campaign link
// @Tags beneficiaries
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateBeneficiaryRequest true "Beneficiary information"
// @Success 201 {object} dto.APIResponse{data=dto.BeneficiaryResponse} "Beneficiary created"
// @Failure 404 {object} dto.ErrorResponse "Campaign not found"
// @Failure 400 {object} dto.ErrorResponse "National id already registered"
// @Router /beneficiaries [post]
func (c *BeneficiaryController) CreateBeneficiary(ctx *gin.Context) {
	var req dto.CreateBeneficiaryRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}
	actorID, _ := middleware.CurrentUserID(ctx)

	beneficiary, err := c.beneficiaryService.CreateBeneficiary(ctx, &req, actorID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	respondCreated(ctx, dto.FromBeneficiary(beneficiary))
}

// GetBeneficiary retrieves one beneficiary
// @Summary Get beneficiary by ID
// @Tags beneficiaries
// @Produce json
// @Security BearerAuth
// @Param id path int true "Beneficiary ID"
// @Success 200 {object} dto.APIResponse{data=dto.BeneficiaryResponse} "Beneficiary retrieved"
// @Failure 404 {object} dto.ErrorResponse "Beneficiary not found"
// @Router /beneficiaries/{id} [get]
func (c *BeneficiaryController) GetBeneficiary(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	beneficiary, err := c.beneficiaryService.GetBeneficiaryByID(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	respondOK(ctx, dto.FromBeneficiary(beneficiary))
}

// ListBeneficiaries retrieves beneficiaries matching the filters
// @Summary List beneficiaries
// @Description Lists beneficiaries filtered by campaign, decision, commune and text search
// @Tags beneficiaries
// @Produce json
// @Security BearerAuth
// @Param campaign_id query int false "Filter by campaign"
// @Param out_of_campaign query bool false "Only records without a campaign"
// @Param decision query string false "Decision filter" Enums(accepted, pending, refused)
// @Param has_benefited query bool false "Filter by prior benefit flag"
// @Param commune_id query int false "Filter by commune"
// @Param q query string false "Search in name or national id"
// @Param page query int false "Page number"
// @Param per_page query int false "Page size"
// @Success 200 {object} dto.APIResponse{data=dto.PaginatedResponse} "Beneficiaries retrieved"
// @Router /beneficiaries [get]
func (c *BeneficiaryController) ListBeneficiaries(ctx *gin.Context) {
	page, size := helpers.ParsePaginationParams(ctx)
	outOfCampaign := queryBoolPtr(ctx, "out_of_campaign")
	filter := repositories.BeneficiaryFilter{
		CampaignID:    queryInt64(ctx, "campaign_id"),
		OutOfCampaign: outOfCampaign != nil && *outOfCampaign,
		Decision:      models.Decision(ctx.Query("decision")),
		HasBenefited:  queryBoolPtr(ctx, "has_benefited"),
		CommuneID:     queryInt64(ctx, "commune_id"),
		Query:         ctx.Query("q"),
	}

	beneficiaries, pagination, err := c.beneficiaryService.ListBeneficiaries(ctx, filter, page, size)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	items := make([]dto.BeneficiaryResponse, 0, len(beneficiaries))
	for _, b := range beneficiaries {
		items = append(items, dto.FromBeneficiary(b))
	}
	respondPage(ctx, items, pagination)
}

// UpdateBeneficiary handles beneficiary updates
// @Summary Update a beneficiary
// @Tags beneficiaries
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Beneficiary ID"
// @Param request body dto.UpdateBeneficiaryRequest true "Beneficiary information"
// @Success 200 {object} dto.APIResponse{data=dto.BeneficiaryResponse} "Beneficiary updated"
// @Failure 404 {object} dto.ErrorResponse "Beneficiary not found"
// @Failure 400 {object} dto.ErrorResponse "National id already registered"
// @Router /beneficiaries/{id} [put]
func (c *BeneficiaryController) UpdateBeneficiary(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}
	var req dto.UpdateBeneficiaryRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}
	actorID, _ := middleware.CurrentUserID(ctx)

	beneficiary, err := c.beneficiaryService.UpdateBeneficiary(ctx, id, &req, actorID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	respondOK(ctx, dto.FromBeneficiary(beneficiary))
}

// UpdateDecision records an eligibility decision
// @Summary Update the eligibility decision
// @Description All decision transitions are allowed; there is no terminal state
// @Tags beneficiaries
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Beneficiary ID"
// @Param request body dto.DecisionRequest true "Decision"
// @Success 200 {object} dto.APIResponse{data=dto.BeneficiaryResponse} "Decision updated"
// @Failure 404 {object} dto.ErrorResponse "Beneficiary not found"
// @Router /beneficiaries/{id}/decision [put]
func (c *BeneficiaryController) UpdateDecision(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}
	var req dto.DecisionRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}
	actorID, _ := middleware.CurrentUserID(ctx)

	beneficiary, err := c.beneficiaryService.UpdateDecision(ctx, id, &req, actorID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	respondOK(ctx, dto.FromBeneficiary(beneficiary))
}

// DeleteBeneficiary handles beneficiary deletion
// @Summary Delete a beneficiary
// @Description Deletes a beneficiary that has no medical assistance records
// @Tags beneficiaries
// @Produce json
// @Security BearerAuth
// @Param id path int true "Beneficiary ID"
// @Success 200 {object} dto.APIResponse "Beneficiary deleted"
// @Failure 400 {object} dto.ErrorResponse "Beneficiary has assistance records"
// @Failure 404 {object} dto.ErrorResponse "Beneficiary not found"
// @Router /beneficiaries/{id} [delete]
func (c *BeneficiaryController) DeleteBeneficiary(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	if err := c.beneficiaryService.DeleteBeneficiary(ctx, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	respondMessage(ctx, "Beneficiary deleted successfully")
}

// ImportBeneficiaries imports a beneficiary spreadsheet into a campaign
// @Summary Import beneficiaries from a spreadsheet
// @Tags beneficiaries
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param id path int true "Campaign ID"
// @Param file formData file true "Spreadsheet file (.xlsx)"
// @Success 200 {object} dto.APIResponse{data=dto.ImportResult} "Import summary"
// @Failure 400 {object} dto.ErrorResponse "Empty sheet or no importable rows"
// @Failure 404 {object} dto.ErrorResponse "Campaign not found"
// @Router /campaigns/{id}/beneficiaries/import [post]
func (c *BeneficiaryController) ImportBeneficiaries(ctx *gin.Context) {
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

	result, err := c.importService.ImportBeneficiaries(ctx, campaignID, file, actorID)
	if err != nil {
		respondImportFailure(ctx, result, err)
		return
	}
	respondOK(ctx, result)
}

// ExportBeneficiaries downloads the beneficiaries of a campaign as a workbook
// @Summary Export beneficiaries to a spreadsheet
// @Tags beneficiaries
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Security BearerAuth
// @Param id path int true "Campaign ID"
// @Success 200 {file} binary "Workbook"
// @Failure 404 {object} dto.ErrorResponse "Campaign not found"
// @Router /campaigns/{id}/beneficiaries/export [get]
func (c *BeneficiaryController) ExportBeneficiaries(ctx *gin.Context) {
	campaignID, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	buf, filename, err := c.exportService.ExportBeneficiaries(ctx, campaignID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	streamAttachment(ctx, filename, xlsxContentType, buf.Bytes())
}

// BeneficiaryTemplate downloads an empty import template
// @Summary Download the beneficiary import template
// @Tags beneficiaries
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Security BearerAuth
// @Success 200 {file} binary "Workbook template"
// @Router /templates/beneficiaries [get]
func (c *BeneficiaryController) BeneficiaryTemplate(ctx *gin.Context) {
	buf, filename, err := c.exportService.BeneficiaryTemplate(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	streamAttachment(ctx, filename, xlsxContentType, buf.Bytes())
}
