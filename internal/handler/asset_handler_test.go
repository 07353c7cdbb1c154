package handler_test

import (
	"bytes"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"gstbill/internal/domain"
	"gstbill/internal/handler"
	"gstbill/internal/middleware"
	"gstbill/internal/service"
	"gstbill/mocks"
)

func newAssetHandler() (*handler.AssetHandler, *mocks.MockAssetService) {
	mockSvc := new(mocks.MockAssetService)
	return handler.NewAssetHandler(mockSvc, testErrors()), mockSvc
}

func multipartContext(t *testing.T, bizID uuid.UUID, assetType string, withFile bool) (*gin.Context, *httptest.ResponseRecorder) {
	t.Helper()
	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	if withFile {
		part, err := mw.CreateFormFile("file", "logo.png")
		require.NoError(t, err)
		_, err = part.Write([]byte("\x89PNG\r\n\x1a\n0000"))
		require.NoError(t, err)
	}
	require.NoError(t, mw.WriteField("asset_type", assetType))
	require.NoError(t, mw.Close())

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/assets", &body)
	c.Request.Header.Set("Content-Type", mw.FormDataContentType())
	c.Set(middleware.ContextKeyBusinessID, bizID)
	return c, w
}

func TestAssetHandler_Upload(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		h, mockSvc := newAssetHandler()
		bizID := uuid.New()
		mockSvc.On("Upload", mock.Anything, mock.MatchedBy(func(in service.AssetUploadInput) bool {
			return in.BusinessID == bizID && in.Type == domain.AssetTypeLogo && in.Header.Filename == "logo.png"
		})).Return(&domain.BusinessAsset{ID: uuid.New(), Type: domain.AssetTypeLogo}, nil)

		c, w := multipartContext(t, bizID, " logo ", true)
		h.Upload(c)

		assert.Equal(t, http.StatusCreated, w.Code)
		mockSvc.AssertExpectations(t)
	})

	t.Run("missing_file", func(t *testing.T) {
		h, mockSvc := newAssetHandler()
		c, w := multipartContext(t, uuid.New(), "LOGO", false)
		h.Upload(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "MISSING_FILE", decodeResponse(t, w).Error.Code)
		mockSvc.AssertNotCalled(t, "Upload", mock.Anything, mock.Anything)
	})

	t.Run("too_large", func(t *testing.T) {
		h, mockSvc := newAssetHandler()
		mockSvc.On("Upload", mock.Anything, mock.AnythingOfType("service.AssetUploadInput")).Return(nil, domain.ErrFileTooLarge)

		c, w := multipartContext(t, uuid.New(), "QR", true)
		h.Upload(c)

		assert.Equal(t, http.StatusRequestEntityTooLarge, w.Code)
	})
}

func TestAssetHandler_List(t *testing.T) {
	h, mockSvc := newAssetHandler()
	bizID := uuid.New()
	mockSvc.On("List", mock.Anything, bizID).Return([]domain.BusinessAsset{{ID: uuid.New()}}, nil)

	c, w := newContext(http.MethodGet, "/assets", bizID, nil)
	h.List(c)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestAssetHandler_Download(t *testing.T) {
	h, mockSvc := newAssetHandler()
	bizID, assetID := uuid.New(), uuid.New()
	mockSvc.On("GetDownloadURL", mock.Anything, bizID, assetID).Return("https://bucket.s3/logo.png?sig=1", nil)

	c, w := newContext(http.MethodGet, "/assets/x/download", bizID, nil, idParam(assetID))
	h.Download(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"download_url":"https://bucket.s3/logo.png?sig=1"`)
}

func TestAssetHandler_Delete(t *testing.T) {
	h, mockSvc := newAssetHandler()
	bizID, assetID := uuid.New(), uuid.New()
	mockSvc.On("Delete", mock.Anything, bizID, assetID).Return(domain.ErrAssetNotFound)

	c, w := newContext(http.MethodDelete, "/assets/x", bizID, nil, idParam(assetID))
	h.Delete(c)

	assert.Equal(t, http.StatusNotFound, w.Code)
}
