package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/sanad-app/sanad-backend/internal/app/models/dto"
	"github.com/sanad-app/sanad-backend/internal/app/services"
	"github.com/sanad-app/sanad-backend/internal/middleware"
	"github.com/sanad-app/sanad-backend/internal/pkg/helpers"
)

// KafalaController handles guardianship case operations
type KafalaController struct {
	kafalaService services.KafalaService
	reportService services.ReportService
}

// NewKafalaController creates a new KafalaController
func NewKafalaController(kafalaService services.KafalaService, reportService services.ReportService) *KafalaController {
	return &KafalaController{
		kafalaService: kafalaService,
		reportService: reportService,
	}
}

// CreateKafala handles guardianship case creation
// @Summary Create a kafala case
// @Description Creates a guardianship case; the reference is generated when omitted. An optional PDF document may be attached in the same request.
// @Tags kafalas
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param data formData string true "Case fields as JSON"
// @Param document formData file false "Case document (PDF)"
// @Success 201 {object} dto.APIResponse{data=dto.KafalaResponse} "Case created"
// @Failure 400 {object} dto.ErrorResponse "Reference already used or document is not a PDF"
// @Router /kafalas [post]
func (c *KafalaController) CreateKafala(ctx *gin.Context) {
	req, ok := bindKafalaForm(ctx)
	if !ok {
		return
	}
	document, _ := ctx.FormFile("document")

	kafala, err := c.kafalaService.CreateKafala(ctx, req, document)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	respondCreated(ctx, dto.FromKafala(kafala))
}

// GetKafala retrieves one guardianship case
// @Summary Get kafala case by ID
// @Tags kafalas
// @Produce json
// @Security BearerAuth
// @Param id path int true "Kafala ID"
// @Success 200 {object} dto.APIResponse{data=dto.KafalaResponse} "Case retrieved"
// @Failure 404 {object} dto.ErrorResponse "Case not found"
// @Router /kafalas/{id} [get]
func (c *KafalaController) GetKafala(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	kafala, err := c.kafalaService.GetKafalaByID(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	respondOK(ctx, dto.FromKafala(kafala))
}

// ListKafalas retrieves guardianship cases
// @Summary List kafala cases
// @Description Lists cases filtered by a text search across reference, names and national ids
// @Tags kafalas
// @Produce json
// @Security BearerAuth
// @Param q query string false "Search text"
// @Param page query int false "Page number"
// @Param per_page query int false "Page size"
// @Success 200 {object} dto.APIResponse{data=dto.PaginatedResponse} "Cases retrieved"
// @Router /kafalas [get]
func (c *KafalaController) ListKafalas(ctx *gin.Context) {
	page, size := helpers.ParsePaginationParams(ctx)

	kafalas, pagination, err := c.kafalaService.ListKafalas(ctx, ctx.Query("q"), page, size)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	items := make([]dto.KafalaResponse, 0, len(kafalas))
	for _, k := range kafalas {
		items = append(items, dto.FromKafala(k))
	}
	respondPage(ctx, items, pagination)
}

// UpdateKafala handles guardianship case updates
// @Summary Update a kafala case
// @Tags kafalas
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Kafala ID"
// @Param request body dto.UpdateKafalaRequest true "Case information"
// @Success 200 {object} dto.APIResponse{data=dto.KafalaResponse} "Case updated"
// @Failure 404 {object} dto.ErrorResponse "Case not found"
// @Failure 400 {object} dto.ErrorResponse "Reference already used"
// @Router /kafalas/{id} [put]
func (c *KafalaController) UpdateKafala(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}
	var req dto.UpdateKafalaRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}

	kafala, err := c.kafalaService.UpdateKafala(ctx, id, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	respondOK(ctx, dto.FromKafala(kafala))
}

// AttachDocument uploads or replaces the case document
// @Summary Attach the case document
// @Description Stores a PDF document on the case, replacing any previous one
// @Tags kafalas
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param id path int true "Kafala ID"
// @Param document formData file true "Case document (PDF)"
// @Success 200 {object} dto.APIResponse{data=dto.KafalaResponse} "Document attached"
// @Failure 400 {object} dto.ErrorResponse "Document is not a PDF"
// @Failure 404 {object} dto.ErrorResponse "Case not found"
// @Router /kafalas/{id}/document [post]
func (c *KafalaController) AttachDocument(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}
	document, err := ctx.FormFile("document")
	if err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Missing document upload")
		errorDetail = errorDetail.WithDetails("A multipart field named 'document' is required")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	kafala, err := c.kafalaService.AttachDocument(ctx, id, document)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	respondOK(ctx, dto.FromKafala(kafala))
}

// DownloadDocument streams the case document
// @Summary Download the case document
// @Tags kafalas
// @Produce application/pdf
// @Security BearerAuth
// @Param id path int true "Kafala ID"
// @Success 200 {file} binary "Case document"
// @Failure 404 {object} dto.ErrorResponse "Case or document not found"
// @Router /kafalas/{id}/document [get]
func (c *KafalaController) DownloadDocument(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	path, name, err := c.kafalaService.DocumentPath(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.FileAttachment(path, name)
}

// RemoveDocument deletes the case document
// @Summary Remove the case document
// @Tags kafalas
// @Produce json
// @Security BearerAuth
// @Param id path int true "Kafala ID"
// @Success 200 {object} dto.APIResponse "Document removed"
// @Failure 404 {object} dto.ErrorResponse "Case or document not found"
// @Router /kafalas/{id}/document [delete]
func (c *KafalaController) RemoveDocument(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	if err := c.kafalaService.RemoveDocument(ctx, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	respondMessage(ctx, "Document removed successfully")
}

// GetKafalaPDF renders the case sheet as a PDF
// @Summary Download the kafala case sheet
// @Tags kafalas
// @Produce application/pdf
// @Security BearerAuth
// @Param id path int true "Kafala ID"
// @Success 200 {file} binary "Case sheet"
// @Failure 404 {object} dto.ErrorResponse "Case not found"
// @Router /kafalas/{id}/sheet [get]
func (c *KafalaController) GetKafalaPDF(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	data, filename, err := c.reportService.KafalaSheetPDF(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	streamAttachment(ctx, filename, "application/pdf", data)
}

// DeleteKafala handles guardianship case deletion
// @Summary Delete a kafala case
// @Tags kafalas
// @Produce json
// @Security BearerAuth
// @Param id path int true "Kafala ID"
// @Success 200 {object} dto.APIResponse "Case deleted"
// @Failure 404 {object} dto.ErrorResponse "Case not found"
// @Router /kafalas/{id} [delete]
func (c *KafalaController) DeleteKafala(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	if err := c.kafalaService.DeleteKafala(ctx, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	respondMessage(ctx, "Case deleted successfully")
}

// bindKafalaForm parses the JSON payload carried in the multipart "data"
// field, falling back to a plain JSON body when no form is present.
func bindKafalaForm(ctx *gin.Context) (*dto.CreateKafalaRequest, bool) {
	var req dto.CreateKafalaRequest
	if raw := ctx.PostForm("data"); raw != "" {
		if !middleware.BindJSONString(ctx, raw, &req) {
			return nil, false
		}
		return &req, true
	}
	if !middleware.BindJSON(ctx, &req) {
		return nil, false
	}
	return &req, true
}
