package controllers

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/sanad-app/sanad-backend/internal/app/models"
	"github.com/sanad-app/sanad-backend/internal/app/models/dto"
	"github.com/sanad-app/sanad-backend/internal/app/repositories"
	"github.com/sanad-app/sanad-backend/internal/app/services"
	"github.com/sanad-app/sanad-backend/internal/middleware"
	"github.com/sanad-app/sanad-backend/internal/pkg/helpers"
)

// CampaignController handles campaign operations
type CampaignController struct {
	campaignService services.CampaignService
	statsService    services.StatsService
	reportService   services.ReportService
}

// NewCampaignController creates a new CampaignController
func NewCampaignController(campaignService services.CampaignService, statsService services.StatsService, reportService services.ReportService) *CampaignController {
	return &CampaignController{
		campaignService: campaignService,
		statsService:    statsService,
		reportService:   reportService,
	}
}

// CreateCampaign handles campaign creation
// @Summary Create a campaign
// @Description Creates a campaign with an assistance type, date window and budget
// @Tags campaigns
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateCampaignRequest true "Campaign information"
// @Success 201 {object} dto.APIResponse{data=dto.CampaignResponse} "Campaign created"
// @Failure 404 {object} dto.ErrorResponse "Assistance type not found"
// @Failure 422 {object} dto.ErrorResponse "Validation failed"
// @Router /campaigns [post]
func (c *CampaignController) CreateCampaign(ctx *gin.Context) {
	var req dto.CreateCampaignRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}

	campaign, err := c.campaignService.CreateCampaign(ctx, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	respondCreated(ctx, dto.FromCampaign(campaign, time.Now()))
}

// GetCampaign retrieves one campaign
// @Summary Get campaign by ID
// @Tags campaigns
// @Produce json
// @Security BearerAuth
// @Param id path int true "Campaign ID"
// @Success 200 {object} dto.APIResponse{data=dto.CampaignResponse} "Campaign retrieved"
// @Failure 404 {object} dto.ErrorResponse "Campaign not found"
// @Router /campaigns/{id} [get]
func (c *CampaignController) GetCampaign(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	campaign, err := c.campaignService.GetCampaignByID(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	respondOK(ctx, dto.FromCampaign(campaign, time.Now()))
}

// ListCampaigns retrieves campaigns matching the filters
// @Summary List campaigns
// @Description Lists campaigns filtered by text search, assistance type and derived status
// @Tags campaigns
// @Produce json
// @Security BearerAuth
// @Param q query string false "Search in name or location"
// @Param assistance_type_id query int false "Filter by assistance type"
// @Param year query int false "Filter by start year"
// @Param status query string false "Derived status filter" Enums(upcoming, ongoing, ended)
// @Param page query int false "Page number"
// @Param per_page query int false "Page size"
// @Success 200 {object} dto.APIResponse{data=dto.PaginatedResponse} "Campaigns retrieved"
// @Router /campaigns [get]
func (c *CampaignController) ListCampaigns(ctx *gin.Context) {
	page, size := helpers.ParsePaginationParams(ctx)
	filter := repositories.CampaignFilter{
		Query:            ctx.Query("q"),
		AssistanceTypeID: queryInt64(ctx, "assistance_type_id"),
		Year:             int(queryInt64(ctx, "year")),
		Status:           models.CampaignStatus(ctx.Query("status")),
	}

	campaigns, pagination, err := c.campaignService.ListCampaigns(ctx, filter, page, size)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	now := time.Now()
	items := make([]dto.CampaignResponse, 0, len(campaigns))
	for _, campaign := range campaigns {
		items = append(items, dto.FromCampaign(campaign, now))
	}
	respondPage(ctx, items, pagination)
}

// UpdateCampaign handles campaign updates
// @Summary Update a campaign
// @Tags campaigns
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Campaign ID"
// @Param request body dto.UpdateCampaignRequest true "Campaign information"
// @Success 200 {object} dto.APIResponse{data=dto.CampaignResponse} "Campaign updated"
// @Failure 404 {object} dto.ErrorResponse "Campaign not found"
// @Router /campaigns/{id} [put]
func (c *CampaignController) UpdateCampaign(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}
	var req dto.UpdateCampaignRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}

	campaign, err := c.campaignService.UpdateCampaign(ctx, id, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	respondOK(ctx, dto.FromCampaign(campaign, time.Now()))
}

// DeleteCampaign handles campaign deletion
// @Summary Delete a campaign
// @Description Deletes a campaign that has no beneficiaries
// @Tags campaigns
// @Produce json
// @Security BearerAuth
// @Param id path int true "Campaign ID"
// @Success 200 {object} dto.APIResponse "Campaign deleted"
// @Failure 400 {object} dto.ErrorResponse "Campaign has beneficiaries"
// @Failure 404 {object} dto.ErrorResponse "Campaign not found"
// @Router /campaigns/{id} [delete]
func (c *CampaignController) DeleteCampaign(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	if err := c.campaignService.DeleteCampaign(ctx, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	respondMessage(ctx, "Campaign deleted successfully")
}

// GetCampaignStats aggregates campaign statistics
// @Summary Get campaign statistics
// @Description Aggregates triage, decision, demographic and financial figures
// @Tags campaigns
// @Produce json
// @Security BearerAuth
// @Param id path int true "Campaign ID"
// @Success 200 {object} dto.APIResponse{data=dto.CampaignStatsResponse} "Statistics retrieved"
// @Failure 404 {object} dto.ErrorResponse "Campaign not found"
// @Router /campaigns/{id}/stats [get]
func (c *CampaignController) GetCampaignStats(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	stats, err := c.statsService.CampaignStats(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	respondOK(ctx, stats)
}

// GetCampaignStatsPDF renders the statistics report as a PDF
// @Summary Download campaign statistics report
// @Tags campaigns
// @Produce application/pdf
// @Security BearerAuth
// @Param id path int true "Campaign ID"
// @Success 200 {file} binary "PDF report"
// @Failure 404 {object} dto.ErrorResponse "Campaign not found"
// @Router /campaigns/{id}/stats/pdf [get]
func (c *CampaignController) GetCampaignStatsPDF(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	data, filename, err := c.reportService.CampaignStatsPDF(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	streamAttachment(ctx, filename, "application/pdf", data)
}
