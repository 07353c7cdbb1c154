package handler_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"gstbill/internal/handler"
	"gstbill/internal/middleware"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func testErrors() *handler.ErrorHandler {
	return handler.NewErrorHandler(zap.NewNop())
}

// newContext builds a test context scoped to bizID. body is JSON-encoded
// unless it is nil.
func newContext(method, target string, bizID uuid.UUID, body any, params ...gin.Param) (*gin.Context, *httptest.ResponseRecorder) {
	var reader io.Reader = http.NoBody
	if body != nil {
		raw, _ := json.Marshal(body)
		reader = bytes.NewReader(raw)
	}

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(method, target, reader)
	if body != nil {
		c.Request.Header.Set("Content-Type", "application/json")
	}
	c.Set(middleware.ContextKeyBusinessID, bizID)
	c.Params = params
	return c, w
}

func idParam(id uuid.UUID) gin.Param {
	return gin.Param{Key: "id", Value: id.String()}
}

func decodeResponse(t *testing.T, w *httptest.ResponseRecorder) handler.APIResponse {
	t.Helper()
	var resp handler.APIResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp
}

func ginParam(key, value string) gin.Param {
	return gin.Param{Key: key, Value: value}
}
