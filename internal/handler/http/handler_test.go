package http

import (
	"bytes"
	"context"
	"compress/gzip"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-lock-keeper/internal/config"
	"github.com/MKhiriev/go-lock-keeper/internal/logger"
	"github.com/MKhiriev/go-lock-keeper/internal/mock"
	"github.com/MKhiriev/go-lock-keeper/internal/service"
	"github.com/MKhiriev/go-lock-keeper/models"
)

const (
	testToken   = "test-token"
	testVaultID = "0x1111111111111111111111111111111111111111"
)

var testCaller = common.HexToAddress("0x0000000000000000000000000000000000000002")

// ─────────────────────────────────────────────
// Fixture
// ─────────────────────────────────────────────

type handlerFixture struct {
	vaults  *mock.MockVaultService
	auth    *mock.MockAuthService
	appInfo *mock.MockAppInfoService
	router  http.Handler
}

func newHandlerFixture(t *testing.T) *handlerFixture {
	t.Helper()

	ctrl := gomock.NewController(t)
	f := &handlerFixture{
		vaults:  mock.NewMockVaultService(ctrl),
		auth:    mock.NewMockAuthService(ctrl),
		appInfo: mock.NewMockAppInfoService(ctrl),
	}

	services := &service.Services{
		AuthService:    f.auth,
		AppInfoService: f.appInfo,
		VaultService:   f.vaults,
	}
	f.router = NewHandler(services, config.Server{RequestTimeout: time.Second}, logger.Nop()).Init()
	return f
}

func (f *handlerFixture) expectValidToken() {
	f.auth.EXPECT().ParseToken(gomock.Any(), testToken).Return(models.Token{Address: testCaller}, nil)
}

func (f *handlerFixture) do(method, path string, body string, authorized bool) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if authorized {
		req.Header.Set("Authorization", "Bearer "+testToken)
	}
	rec := httptest.NewRecorder()
	f.router.ServeHTTP(rec, req)
	return rec
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) models.ErrorResponse {
	t.Helper()
	var body models.ErrorResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	return body
}

// ─────────────────────────────────────────────
// Routes
// ─────────────────────────────────────────────

func TestInit_UnknownRouteReturns404(t *testing.T) {
	f := newHandlerFixture(t)

	rec := f.do(http.MethodGet, "/api/nonexistent", "", false)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, ErrRouteNotFound.Error(), decodeError(t, rec).Error)
}

func TestInit_WrongMethodReturns405(t *testing.T) {
	f := newHandlerFixture(t)

	rec := f.do(http.MethodPost, "/api/version/", "", false)

	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}

func TestInit_AuthenticatedRoutesRequireToken(t *testing.T) {
	f := newHandlerFixture(t)

	for _, path := range []string{
		"/api/vaults/fixed",
		"/api/vaults/vesting",
		"/api/vaults/" + testVaultID + "/withdraw",
		"/api/vaults/" + testVaultID + "/reclaim",
	} {
		t.Run(path, func(t *testing.T) {
			rec := f.do(http.MethodPost, path, "{}", false)
			assert.Equal(t, http.StatusUnauthorized, rec.Code)
		})
	}
}

func TestGetServerVersion_WritesVersion(t *testing.T) {
	f := newHandlerFixture(t)
	f.appInfo.EXPECT().GetAppVersion(gomock.Any()).Return("1.2.3")

	rec := f.do(http.MethodGet, "/api/version/", "", false)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "text/plain; charset=utf-8", rec.Header().Get("Content-Type"))
	assert.Equal(t, "1.2.3", rec.Body.String())
}

// ─────────────────────────────────────────────
// Middleware
// ─────────────────────────────────────────────

func TestWithTraceID(t *testing.T) {
	f := newHandlerFixture(t)
	f.appInfo.EXPECT().GetAppVersion(gomock.Any()).Return("v").Times(3)

	rec := f.do(http.MethodGet, "/api/version/", "", false)
	generated := rec.Header().Get(traceIDHeader)
	_, err := uuid.Parse(generated)
	assert.NoError(t, err)

	traceID := uuid.NewString()
	req := httptest.NewRequest(http.MethodGet, "/api/version/", nil)
	req.Header.Set(traceIDHeader, traceID)
	rec = httptest.NewRecorder()
	f.router.ServeHTTP(rec, req)
	assert.Equal(t, traceID, rec.Header().Get(traceIDHeader))

	req = httptest.NewRequest(http.MethodGet, "/api/version/", nil)
	req.Header.Set(traceIDHeader, "not a uuid")
	rec = httptest.NewRecorder()
	f.router.ServeHTTP(rec, req)
	assert.NotEqual(t, "not a uuid", rec.Header().Get(traceIDHeader))
}

func TestWithGZip_CompressesResponse(t *testing.T) {
	f := newHandlerFixture(t)
	f.appInfo.EXPECT().GetAppVersion(gomock.Any()).Return("1.2.3")

	req := httptest.NewRequest(http.MethodGet, "/api/version/", nil)
	req.Header.Set("Accept-Encoding", "gzip")
	rec := httptest.NewRecorder()
	f.router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "gzip", rec.Header().Get("Content-Encoding"))

	zr, err := gzip.NewReader(rec.Body)
	require.NoError(t, err)
	body, err := io.ReadAll(zr)
	require.NoError(t, err)
	assert.Equal(t, "1.2.3", string(body))
}

func TestWithGZip_DecompressesRequest(t *testing.T) {
	f := newHandlerFixture(t)
	f.expectValidToken()
	f.vaults.EXPECT().CreateFixedLock(gomock.Any(), testCaller, gomock.Any()).DoAndReturn(
		func(_ context.Context, _ common.Address, req models.FixedLockRequest) (models.CreateVaultResponse, error) {
			assert.Equal(t, uint64(100), req.Duration)
			return models.CreateVaultResponse{ID: testVaultID, Created: true}, nil
		})

	var buf bytes.Buffer
	zw := gzip.NewWriter(&buf)
	_, err := zw.Write([]byte(fixedLockBody))
	require.NoError(t, err)
	require.NoError(t, zw.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/vaults/fixed", &buf)
	req.Header.Set("Content-Encoding", "gzip")
	req.Header.Set("Authorization", "Bearer "+testToken)
	rec := httptest.NewRecorder()
	f.router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusCreated, rec.Code)
}

func TestWithGZip_InvalidBody(t *testing.T) {
	f := newHandlerFixture(t)

	req := httptest.NewRequest(http.MethodPost, "/api/vaults/fixed", strings.NewReader("plain"))
	req.Header.Set("Content-Encoding", "gzip")
	rec := httptest.NewRecorder()
	f.router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestAuth_Rejections(t *testing.T) {
	tests := []struct {
		name   string
		header string
		setup  func(f *handlerFixture)
	}{
		{name: "missing header"},
		{name: "wrong scheme", header: "Basic dXNlcjpwYXNz"},
		{name: "missing token", header: "Bearer"},
		{
			name:   "invalid token",
			header: "Bearer " + testToken,
			setup: func(f *handlerFixture) {
				f.auth.EXPECT().ParseToken(gomock.Any(), testToken).Return(models.Token{}, service.ErrTokenIsExpiredOrInvalid)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newHandlerFixture(t)
			if tt.setup != nil {
				tt.setup(f)
			}

			req := httptest.NewRequest(http.MethodPost, "/api/vaults/"+testVaultID+"/withdraw", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rec := httptest.NewRecorder()
			f.router.ServeHTTP(rec, req)

			assert.Equal(t, http.StatusUnauthorized, rec.Code)
			assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
		})
	}
}

func TestGetTokenFromAuthHeader(t *testing.T) {
	token, err := getTokenFromAuthHeader("bearer abc")
	require.NoError(t, err)
	assert.Equal(t, "abc", token)

	_, err = getTokenFromAuthHeader("abc")
	assert.ErrorIs(t, err, ErrInvalidAuthorizationHeader)
}
