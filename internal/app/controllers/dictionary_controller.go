package controllers

import (
	"github.com/gin-gonic/gin"

	"github.com/sanad-app/sanad-backend/internal/app/models"
	"github.com/sanad-app/sanad-backend/internal/app/models/dto"
	"github.com/sanad-app/sanad-backend/internal/app/services"
	"github.com/sanad-app/sanad-backend/internal/middleware"
)

// DictionaryController handles reference-data CRUD for every dictionary kind
type DictionaryController struct {
	dictionaryService services.DictionaryService
}

// NewDictionaryController creates a new DictionaryController
func NewDictionaryController(dictionaryService services.DictionaryService) *DictionaryController {
	return &DictionaryController{dictionaryService: dictionaryService}
}

// ListKinds enumerates the supported dictionary kinds
// @Summary List dictionary kinds
// @Tags dictionaries
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=[]string} "Kinds retrieved"
// @Router /dictionaries [get]
func (c *DictionaryController) ListKinds(ctx *gin.Context) {
	respondOK(ctx, c.dictionaryService.Kinds())
}

// ListEntries lists the entries of one dictionary kind
// @Summary List dictionary entries
// @Tags dictionaries
// @Produce json
// @Security BearerAuth
// @Param kind path string true "Dictionary kind" Enums(communes, assistance_types, donation_states, file_states)
// @Success 200 {object} dto.APIResponse{data=[]dto.DictionaryEntryResponse} "Entries retrieved"
// @Failure 404 {object} dto.ErrorResponse "Unknown dictionary kind"
// @Router /dictionaries/{kind} [get]
func (c *DictionaryController) ListEntries(ctx *gin.Context) {
	kind := models.DictionaryKind(ctx.Param("kind"))

	entries, err := c.dictionaryService.ListEntries(ctx, kind)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	items := make([]dto.DictionaryEntryResponse, 0, len(entries))
	for _, e := range entries {
		items = append(items, dto.FromDictionaryEntry(e))
	}
	respondOK(ctx, items)
}

// GetEntry retrieves one dictionary entry
// @Summary Get dictionary entry by ID
// @Tags dictionaries
// @Produce json
// @Security BearerAuth
// @Param kind path string true "Dictionary kind"
// @Param id path int true "Entry ID"
// @Success 200 {object} dto.APIResponse{data=dto.DictionaryEntryResponse} "Entry retrieved"
// @Failure 404 {object} dto.ErrorResponse "Kind or entry not found"
// @Router /dictionaries/{kind}/{id} [get]
func (c *DictionaryController) GetEntry(ctx *gin.Context) {
	kind := models.DictionaryKind(ctx.Param("kind"))
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	entry, err := c.dictionaryService.GetEntry(ctx, kind, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	respondOK(ctx, dto.FromDictionaryEntry(entry))
}

// CreateEntry creates a dictionary entry
// @Summary Create a dictionary entry
// @Tags dictionaries
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param kind path string true "Dictionary kind"
// @Param request body dto.DictionaryEntryRequest true "Entry data"
// @Success 201 {object} dto.APIResponse{data=dto.DictionaryEntryResponse} "Entry created"
// @Failure 404 {object} dto.ErrorResponse "Unknown dictionary kind"
// @Failure 400 {object} dto.ErrorResponse "Name already used"
// @Router /dictionaries/{kind} [post]
func (c *DictionaryController) CreateEntry(ctx *gin.Context) {
	kind := models.DictionaryKind(ctx.Param("kind"))
	var req dto.DictionaryEntryRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}

	entry, err := c.dictionaryService.CreateEntry(ctx, kind, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	respondCreated(ctx, dto.FromDictionaryEntry(entry))
}

// UpdateEntry updates a dictionary entry
// @Summary Update a dictionary entry
// @Tags dictionaries
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param kind path string true "Dictionary kind"
// @Param id path int true "Entry ID"
// @Param request body dto.DictionaryEntryRequest true "Entry data"
// @Success 200 {object} dto.APIResponse{data=dto.DictionaryEntryResponse} "Entry updated"
// @Failure 404 {object} dto.ErrorResponse "Kind or entry not found"
// @Failure 400 {object} dto.ErrorResponse "Name already used"
// @Router /dictionaries/{kind}/{id} [put]
func (c *DictionaryController) UpdateEntry(ctx *gin.Context) {
	kind := models.DictionaryKind(ctx.Param("kind"))
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}
	var req dto.DictionaryEntryRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}

	entry, err := c.dictionaryService.UpdateEntry(ctx, kind, id, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	respondOK(ctx, dto.FromDictionaryEntry(entry))
}

// DeleteEntry deletes a dictionary entry
// @Summary Delete a dictionary entry
// @Description Deletion is refused while the entry is referenced by existing records
// @Tags dictionaries
// @Produce json
// @Security BearerAuth
// @Param kind path string true "Dictionary kind"
// @Param id path int true "Entry ID"
// @Success 200 {object} dto.APIResponse "Entry deleted"
// @Failure 400 {object} dto.ErrorResponse "Entry is in use"
// @Failure 404 {object} dto.ErrorResponse "Kind or entry not found"
// @Router /dictionaries/{kind}/{id} [delete]
func (c *DictionaryController) DeleteEntry(ctx *gin.Context) {
	kind := models.DictionaryKind(ctx.Param("kind"))
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	if err := c.dictionaryService.DeleteEntry(ctx, kind, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	respondMessage(ctx, "Entry deleted successfully")
}
