package handlers

import (
	"errors"

	"edilians-parkinfo/internal/adapters/persistence/models"
	"edilians-parkinfo/internal/core/domain"
	"edilians-parkinfo/internal/core/services"
	"edilians-parkinfo/internal/pkg/response"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// AssetHandler handles the asset collection endpoints
type AssetHandler struct {
	assetService *services.AssetService
	validate     *validator.Validate
}

// NewAssetHandler creates a new asset handler
func NewAssetHandler(assetService *services.AssetService) *AssetHandler {
	return &AssetHandler{
		assetService: assetService,
		validate:     newValidator(),
	}
}

// AssetRequest represents a full asset record as submitted by the
// wizard or the inline editor
type AssetRequest struct {
	ID           string `json:"id" validate:"required"`
	Name         string `json:"name" validate:"required"`
	Type         string `json:"type" validate:"required,oneof=workstation laptop printer bab-unit other"`
	Status       string `json:"status" validate:"required,oneof=in-service in-maintenance out-of-service"`
	User         string `json:"user"`
	InstallDate  string `json:"installDate"`
	Site         string `json:"site" validate:"omitempty,site"`
	Function     string `json:"function" validate:"omitempty,function"`
	Brand        string `json:"brand"`
	Model        string `json:"model"`
	SerialNumber string `json:"serialNumber"`
	Operator     string `json:"operator"`
	Comments     string `json:"comments"`
	Service      string `json:"service"`
	IPAddress    string `json:"ipAddress"`
	MACAddress   string `json:"macAddress"`
}

func (r *AssetRequest) toRecord() models.Asset {
	return models.Asset{
		ID:           r.ID,
		Name:         r.Name,
		Type:         models.AssetType(r.Type),
		Status:       models.AssetStatus(r.Status),
		User:         r.User,
		InstallDate:  r.InstallDate,
		Site:         r.Site,
		Function:     r.Function,
		Brand:        r.Brand,
		Model:        r.Model,
		SerialNumber: r.SerialNumber,
		Operator:     r.Operator,
		Comments:     r.Comments,
		Service:      r.Service,
		IPAddress:    r.IPAddress,
		MACAddress:   r.MACAddress,
	}
}

// ListAssets handles the asset table view: category filter, then
// search, then sort.
// @Summary List assets
// @Description List assets with optional category filter, search and sort
// @Tags Assets
// @Produce json
// @Security BearerAuth
// @Param type query string false "Category filter"
// @Param q query string false "Search query"
// @Param sort query string false "Sort field (id,user,brand,model,status,operator)"
// @Param dir query string false "Sort direction" default(asc)
// @Success 200 {object} response.Response
// @Failure 401 {object} response.Response
// @Router /assets [get]
func (h *AssetHandler) ListAssets(c *fiber.Ctx) error {
	assets := h.assetService.FilterByType(models.AssetType(c.Query("type")))
	assets = services.SearchAssets(assets, c.Query("q"))
	assets = services.SortAssets(assets, c.Query("sort"), services.SortDirection(c.Query("dir", "asc")))

	return response.Success(c, "Assets retrieved successfully", fiber.Map{
		"assets": assets,
		"total":  len(assets),
	})
}

// NextID previews the id the wizard will assign
// @Summary Next asset id
// @Description Derive the next free id for the given category
// @Tags Assets
// @Produce json
// @Security BearerAuth
// @Param type query string true "Category"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Router /assets/next-id [get]
func (h *AssetHandler) NextID(c *fiber.Ctx) error {
	t := c.Query("type")
	if t == "" {
		return response.BadRequest(c, "Category is required")
	}

	id, err := h.assetService.NextID(models.AssetType(t))
	if err != nil {
		return response.BadRequest(c, "Unknown asset category")
	}

	return response.Success(c, "Next id derived", fiber.Map{
		"id": id,
	})
}

// CreateAsset handles asset creation
// @Summary Create asset
// @Description Create a new asset with a pre-assigned id
// @Tags Assets
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body AssetRequest true "Asset record"
// @Success 201 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 409 {object} response.Response
// @Router /assets [post]
func (h *AssetHandler) CreateAsset(c *fiber.Ctx) error {
	var req AssetRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}
	if err := h.validate.Struct(&req); err != nil {
		return response.BadRequest(c, "Invalid asset record: "+err.Error())
	}

	asset := req.toRecord()
	if err := h.assetService.Create(c.Context(), asset); err != nil {
		if errors.Is(err, domain.ErrDuplicateID) {
			return response.Conflict(c, "Asset id already exists")
		}
		return response.InternalServerError(c, "Failed to create asset")
	}

	return response.Created(c, "Asset created successfully", fiber.Map{
		"asset": asset,
	})
}

// UpdateAsset handles full-record replace; the deleted flag is
// preserved from the stored record
// @Summary Update asset
// @Description Replace an asset record (deleted flag preserved)
// @Tags Assets
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Asset id"
// @Param body body AssetRequest true "Asset record"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Router /assets/{id} [put]
func (h *AssetHandler) UpdateAsset(c *fiber.Ctx) error {
	var req AssetRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}
	req.ID = c.Params("id")
	if err := h.validate.Struct(&req); err != nil {
		return response.BadRequest(c, "Invalid asset record: "+err.Error())
	}

	if err := h.assetService.Update(c.Context(), c.Params("id"), req.toRecord()); err != nil {
		return response.InternalServerError(c, "Failed to update asset")
	}

	return response.Success(c, "Asset updated successfully", nil)
}

// ToggleDeleted handles soft-delete and restore
// @Summary Toggle asset deletion
// @Description Flip the soft-delete flag; status follows the toggle
// @Tags Assets
// @Produce json
// @Security BearerAuth
// @Param id path string true "Asset id"
// @Success 200 {object} response.Response
// @Router /assets/{id}/deleted [patch]
func (h *AssetHandler) ToggleDeleted(c *fiber.Ctx) error {
	asset, err := h.assetService.ToggleDeleted(c.Context(), c.Params("id"))
	if err != nil {
		return response.InternalServerError(c, "Failed to toggle asset")
	}
	if asset == nil {
		// Unknown id is a no-op, not an error
		return response.Success(c, "No matching asset", nil)
	}

	return response.Success(c, "Asset toggled successfully", fiber.Map{
		"asset": asset,
	})
}

// DeleteAsset handles hard deletion (Admin only)
// @Summary Delete asset
// @Description Permanently remove an asset (Admin only)
// @Tags Assets
// @Produce json
// @Security BearerAuth
// @Param id path string true "Asset id"
// @Success 200 {object} response.Response
// @Failure 403 {object} response.Response
// @Router /assets/{id} [delete]
func (h *AssetHandler) DeleteAsset(c *fiber.Ctx) error {
	if err := h.assetService.Remove(c.Context(), c.Params("id")); err != nil {
		return response.InternalServerError(c, "Failed to delete asset")
	}

	return response.Success(c, "Asset deleted successfully", nil)
}
