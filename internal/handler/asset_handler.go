package handler

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"gstbill/internal/domain"
	"gstbill/internal/service"
)

// AssetHandler handles business asset upload and download.
type AssetHandler struct {
	*ErrorHandler
	assetService service.AssetService
}

// NewAssetHandler creates a new AssetHandler.
func NewAssetHandler(assetService service.AssetService, errs *ErrorHandler) *AssetHandler {
	return &AssetHandler{ErrorHandler: errs, assetService: assetService}
}

// Upload handles POST /api/v1/businesses/:business_id/assets
// @Summary Upload a business asset
// @Description Upload a logo, signature or payment QR code (JPG or PNG).
// @Tags assets
// @Accept multipart/form-data
// @Produce json
// @Param business_id path string true "Business ID"
// @Param file formData file true "Image to upload (JPG or PNG)"
// @Param asset_type formData string true "LOGO, SIGNATURE or QR"
// @Success 201 {object} Response{data=domain.BusinessAsset} "Asset uploaded successfully"
// @Failure 400 {object} ErrorResponseBody "Missing file or unsupported type"
// @Failure 413 {object} ErrorResponseBody "File too large"
// @Failure 500 {object} ErrorResponseBody "Upload failed"
// @Router /businesses/{business_id}/assets [post]
func (h *AssetHandler) Upload(c *gin.Context) {
	bizID, ok := businessID(c)
	if !ok {
		return
	}

	file, header, err := c.Request.FormFile("file")
	if err != nil {
		RespondError(c, http.StatusBadRequest, "MISSING_FILE", "file field is required")
		return
	}
	defer func() { _ = file.Close() }()

	asset, err := h.assetService.Upload(c.Request.Context(), service.AssetUploadInput{
		BusinessID: bizID,
		Type:       domain.AssetType(strings.ToUpper(strings.TrimSpace(c.PostForm("asset_type")))),
		File:       file,
		Header:     header,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}

	RespondCreated(c, asset)
}

// List handles GET /api/v1/businesses/:business_id/assets
// @Summary List business assets
// @Tags assets
// @Produce json
// @Param business_id path string true "Business ID"
// @Success 200 {object} Response{data=[]domain.BusinessAsset}
// @Router /businesses/{business_id}/assets [get]
func (h *AssetHandler) List(c *gin.Context) {
	bizID, ok := businessID(c)
	if !ok {
		return
	}

	assets, err := h.assetService.List(c.Request.Context(), bizID)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	RespondOK(c, assets)
}

// Download handles GET /api/v1/businesses/:business_id/assets/:id/download
// @Summary Get a presigned download URL
// @Tags assets
// @Produce json
// @Param business_id path string true "Business ID"
// @Param id path string true "Asset ID"
// @Success 200 {object} Response{data=DownloadURLResponse}
// @Failure 404 {object} ErrorResponseBody "Asset not found"
// @Router /businesses/{business_id}/assets/{id}/download [get]
func (h *AssetHandler) Download(c *gin.Context) {
	bizID, ok := businessID(c)
	if !ok {
		return
	}
	assetID, ok := pathID(c, "id", "asset")
	if !ok {
		return
	}

	url, err := h.assetService.GetDownloadURL(c.Request.Context(), bizID, assetID)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	RespondOK(c, gin.H{"download_url": url})
}

// Delete handles DELETE /api/v1/businesses/:business_id/assets/:id
// @Summary Delete a business asset
// @Tags assets
// @Produce json
// @Param business_id path string true "Business ID"
// @Param id path string true "Asset ID"
// @Success 200 {object} Response{data=MessageResponse}
// @Failure 404 {object} ErrorResponseBody "Asset not found"
// @Router /businesses/{business_id}/assets/{id} [delete]
func (h *AssetHandler) Delete(c *gin.Context) {
	bizID, ok := businessID(c)
	if !ok {
		return
	}
	assetID, ok := pathID(c, "id", "asset")
	if !ok {
		return
	}

	if err := h.assetService.Delete(c.Request.Context(), bizID, assetID); err != nil {
		h.HandleError(c, err)
		return
	}

	RespondOK(c, gin.H{"message": "asset deleted"})
}
