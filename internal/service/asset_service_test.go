package service_test

import (
	"bytes"
	"context"
	"errors"
	"mime/multipart"
	"net/textproto"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"gstbill/internal/config"
	"gstbill/internal/domain"
	"gstbill/internal/port"
	"gstbill/internal/service"
	"gstbill/mocks"
)

func testS3Config() config.S3Config {
	return config.S3Config{
		Region:        "ap-south-1",
		Bucket:        "test-bucket",
		MaxFileSizeMB: 1,
		PresignExpiry: 600,
	}
}

// createMultipartFile builds a multipart upload the way gin hands it to handlers.
func createMultipartFile(filename string, content []byte, contentType string) (multipart.File, *multipart.FileHeader) {
	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)

	h := make(textproto.MIMEHeader)
	h.Set("Content-Disposition", `form-data; name="file"; filename="`+filename+`"`)
	h.Set("Content-Type", contentType)

	part, _ := writer.CreatePart(h)
	_, _ = part.Write(content)
	writer.Close()

	reader := multipart.NewReader(body, writer.Boundary())
	form, _ := reader.ReadForm(int64(len(content) + 1024))
	file, _ := form.File["file"][0].Open()
	return file, form.File["file"][0]
}

// pngContent returns bytes that start with the PNG signature.
func pngContent() []byte {
	header := []byte{0x89, 0x50, 0x4E, 0x47, 0x0D, 0x0A, 0x1A, 0x0A}
	return append(header, bytes.Repeat([]byte{0x00}, 100)...)
}

func newAssetService() (service.AssetService, *mocks.MockAssetRepo, *mocks.MockObjectStorage) {
	repo := new(mocks.MockAssetRepo)
	storage := new(mocks.MockObjectStorage)
	cfg := testS3Config()
	return service.NewAssetService(repo, storage, &cfg, zap.NewNop()), repo, storage
}

func TestAssetService_Upload(t *testing.T) {
	bizID := uuid.New()

	t.Run("png_logo", func(t *testing.T) {
		svc, repo, storage := newAssetService()
		file, header := createMultipartFile("logo.png", pngContent(), "image/png")
		defer file.Close()

		storage.On("Put", mock.Anything, mock.MatchedBy(func(in port.PutObjectInput) bool {
			return in.Bucket == "test-bucket" &&
				in.ContentType == "image/png" &&
				strings.HasPrefix(in.Key, "businesses/"+bizID.String()+"/assets/logo/") &&
				strings.HasSuffix(in.Key, ".png")
		})).Return("https://test-bucket.s3.amazonaws.com/x", nil)
		repo.On("Create", mock.Anything, mock.AnythingOfType("*domain.BusinessAsset")).Return(nil)

		asset, err := svc.Upload(context.Background(), service.AssetUploadInput{
			BusinessID: bizID, Type: domain.AssetTypeLogo, File: file, Header: header,
		})
		require.NoError(t, err)
		assert.Equal(t, domain.AssetTypeLogo, asset.Type)
		assert.Equal(t, "logo.png", asset.FileName)
		assert.Equal(t, "test-bucket", asset.S3Bucket)
		storage.AssertExpectations(t)
		repo.AssertExpectations(t)
	})

	t.Run("unknown_asset_type", func(t *testing.T) {
		svc, _, _ := newAssetService()
		file, header := createMultipartFile("logo.png", pngContent(), "image/png")
		defer file.Close()

		_, err := svc.Upload(context.Background(), service.AssetUploadInput{BusinessID: bizID, Type: "BANNER", File: file, Header: header})
		assert.Equal(t, []string{"asset_type"}, violationFields(t, err))
	})

	t.Run("rejects_extension", func(t *testing.T) {
		svc, _, storage := newAssetService()
		file, header := createMultipartFile("logo.gif", pngContent(), "image/gif")
		defer file.Close()

		_, err := svc.Upload(context.Background(), service.AssetUploadInput{BusinessID: bizID, Type: domain.AssetTypeLogo, File: file, Header: header})
		assert.ErrorIs(t, err, domain.ErrUnsupportedFileType)
		storage.AssertNotCalled(t, "Put", mock.Anything, mock.Anything)
	})

	t.Run("rejects_disguised_content", func(t *testing.T) {
		svc, _, _ := newAssetService()
		file, header := createMultipartFile("logo.png", []byte("%PDF-1.4 not an image at all"), "image/png")
		defer file.Close()

		_, err := svc.Upload(context.Background(), service.AssetUploadInput{BusinessID: bizID, Type: domain.AssetTypeLogo, File: file, Header: header})
		assert.ErrorIs(t, err, domain.ErrUnsupportedFileType)
	})

	t.Run("rejects_large_file", func(t *testing.T) {
		svc, _, _ := newAssetService()
		file, header := createMultipartFile("sign.png", pngContent(), "image/png")
		defer file.Close()
		header.Size = 2 * 1024 * 1024

		_, err := svc.Upload(context.Background(), service.AssetUploadInput{BusinessID: bizID, Type: domain.AssetTypeSignature, File: file, Header: header})
		assert.ErrorIs(t, err, domain.ErrFileTooLarge)
	})

	t.Run("storage_failure", func(t *testing.T) {
		svc, repo, storage := newAssetService()
		file, header := createMultipartFile("qr.png", pngContent(), "image/png")
		defer file.Close()
		storage.On("Put", mock.Anything, mock.AnythingOfType("port.PutObjectInput")).Return("", errors.New("timeout"))

		_, err := svc.Upload(context.Background(), service.AssetUploadInput{BusinessID: bizID, Type: domain.AssetTypeQR, File: file, Header: header})
		assert.ErrorIs(t, err, domain.ErrUploadFailed)
		repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("metadata_failure_removes_object", func(t *testing.T) {
		svc, repo, storage := newAssetService()
		file, header := createMultipartFile("qr.png", pngContent(), "image/png")
		defer file.Close()
		storage.On("Put", mock.Anything, mock.AnythingOfType("port.PutObjectInput")).Return("loc", nil)
		repo.On("Create", mock.Anything, mock.AnythingOfType("*domain.BusinessAsset")).Return(errors.New("db down"))
		storage.On("Delete", mock.Anything, "test-bucket", mock.AnythingOfType("string")).Return(nil)

		_, err := svc.Upload(context.Background(), service.AssetUploadInput{BusinessID: bizID, Type: domain.AssetTypeQR, File: file, Header: header})
		assert.Error(t, err)
		storage.AssertCalled(t, "Delete", mock.Anything, "test-bucket", mock.AnythingOfType("string"))
	})
}

func TestAssetService_GetDownloadURL(t *testing.T) {
	bizID, assetID := uuid.New(), uuid.New()
	svc, repo, storage := newAssetService()
	repo.On("GetByID", mock.Anything, bizID, assetID).Return(&domain.BusinessAsset{S3Bucket: "test-bucket", S3Key: "k"}, nil)
	storage.On("PresignGet", mock.Anything, "test-bucket", "k", 600*time.Second).Return("https://signed", nil)

	url, err := svc.GetDownloadURL(context.Background(), bizID, assetID)
	require.NoError(t, err)
	assert.Equal(t, "https://signed", url)
}

func TestAssetService_LatestURLs(t *testing.T) {
	bizID := uuid.New()
	svc, repo, storage := newAssetService()
	repo.On("LatestByType", mock.Anything, bizID).Return(map[domain.AssetType]domain.BusinessAsset{
		domain.AssetTypeLogo: {S3Bucket: "b", S3Key: "logo"},
		domain.AssetTypeQR:   {S3Bucket: "b", S3Key: "qr"},
	}, nil)
	storage.On("PresignGet", mock.Anything, "b", "logo", mock.Anything).Return("https://logo", nil)
	storage.On("PresignGet", mock.Anything, "b", "qr", mock.Anything).Return("https://qr", nil)

	urls, err := svc.LatestURLs(context.Background(), bizID)
	require.NoError(t, err)
	assert.Equal(t, map[domain.AssetType]string{
		domain.AssetTypeLogo: "https://logo",
		domain.AssetTypeQR:   "https://qr",
	}, urls)
}

func TestAssetService_Delete(t *testing.T) {
	bizID, assetID := uuid.New(), uuid.New()

	t.Run("success", func(t *testing.T) {
		svc, repo, storage := newAssetService()
		repo.On("GetByID", mock.Anything, bizID, assetID).Return(&domain.BusinessAsset{S3Bucket: "b", S3Key: "k"}, nil)
		storage.On("Delete", mock.Anything, "b", "k").Return(nil)
		repo.On("Delete", mock.Anything, bizID, assetID).Return(nil)

		require.NoError(t, svc.Delete(context.Background(), bizID, assetID))
		repo.AssertExpectations(t)
	})

	t.Run("storage_failure_keeps_metadata", func(t *testing.T) {
		svc, repo, storage := newAssetService()
		repo.On("GetByID", mock.Anything, bizID, assetID).Return(&domain.BusinessAsset{S3Bucket: "b", S3Key: "k"}, nil)
		storage.On("Delete", mock.Anything, "b", "k").Return(errors.New("denied"))

		assert.Error(t, svc.Delete(context.Background(), bizID, assetID))
		repo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything, mock.Anything)
	})
}
