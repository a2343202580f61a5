// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/resto-reviews/internal/config"
	"github.com/MKhiriev/resto-reviews/internal/logger"
	"github.com/MKhiriev/resto-reviews/internal/mock"
	"github.com/MKhiriev/resto-reviews/internal/service"
	"github.com/MKhiriev/resto-reviews/models"
)

var (
	ana   = models.UserIdentity{UserID: 1, Username: "ana", Email: "ana@test.io"}
	bo    = models.UserIdentity{UserID: 2, Username: "bo", Email: "bo@test.io"}
	admin = models.AdminIdentity{Username: "admin"}
)

const (
	anaToken   = "token-ana"
	boToken    = "token-bo"
	adminToken = "token-admin"
)

// testAPI is the router wired to mocked services.
type testAPI struct {
	auth        *mock.MockAuthService
	restaurants *mock.MockRestaurantService
	comments    *mock.MockCommentService
	leads       *mock.MockLeadService
	appInfo     *mock.MockAppInfoService

	handler *Handler
	router  http.Handler
}

func newTestAPI(t *testing.T) *testAPI {
	t.Helper()
	ctrl := gomock.NewController(t)

	api := &testAPI{
		auth:        mock.NewMockAuthService(ctrl),
		restaurants: mock.NewMockRestaurantService(ctrl),
		comments:    mock.NewMockCommentService(ctrl),
		leads:       mock.NewMockLeadService(ctrl),
		appInfo:     mock.NewMockAppInfoService(ctrl),
	}
	api.handler = NewHandler(&service.Services{
		AuthService:       api.auth,
		RestaurantService: api.restaurants,
		CommentService:    api.comments,
		LeadService:       api.leads,
		AppInfoService:    api.appInfo,
	}, config.Server{}, logger.Nop())
	api.router = api.handler.Init()

	for token, identity := range map[string]models.Identity{anaToken: ana, boToken: bo, adminToken: admin} {
		api.auth.EXPECT().ParseToken(gomock.Any(), token).
			Return(models.Token{SignedString: token, Identity: identity}, nil).AnyTimes()
	}
	return api
}

func (a *testAPI) do(t *testing.T, method, path, body, token string) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	a.router.ServeHTTP(rec, req)
	return rec
}

func decodeBody[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &v), rec.Body.String())
	return v
}

// requireErrorEnvelope checks the status line and the error envelope.
func requireErrorEnvelope(t *testing.T, rec *httptest.ResponseRecorder, status int, message string) {
	t.Helper()
	require.Equal(t, status, rec.Code, rec.Body.String())
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	body := decodeBody[models.ErrorResponse](t, rec)
	assert.False(t, body.Success)
	assert.Equal(t, status, body.Error.Status)
	if message != "" {
		assert.Equal(t, message, body.Error.Message)
	}
}

func TestNewHandler(t *testing.T) {
	services := &service.Services{}
	cfg := config.Server{HTTPAddress: ":8080"}

	h := NewHandler(services, cfg, logger.Nop())

	require.NotNil(t, h)
	assert.Same(t, services, h.services)
	assert.Equal(t, cfg, h.cfg)
}

func TestInit_UnknownRoute(t *testing.T) {
	api := newTestAPI(t)

	rec := api.do(t, http.MethodGet, "/nowhere", "", "")
	requireErrorEnvelope(t, rec, http.StatusNotFound, "route not found")
}

func TestInit_WrongMethod(t *testing.T) {
	api := newTestAPI(t)

	rec := api.do(t, http.MethodPatch, "/restaurants", "", "")
	requireErrorEnvelope(t, rec, http.StatusMethodNotAllowed, "method not allowed")
}

func TestInit_Health(t *testing.T) {
	api := newTestAPI(t)
	api.appInfo.EXPECT().CheckHealth(gomock.Any()).Return(nil)

	rec := api.do(t, http.MethodGet, "/health", "", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}

func TestInit_HealthStorageDown(t *testing.T) {
	api := newTestAPI(t)
	api.appInfo.EXPECT().CheckHealth(gomock.Any()).
		Return(fmt.Errorf("%w: %w", service.ErrStorageUnavailable, errors.New("connection refused")))

	rec := api.do(t, http.MethodGet, "/health", "", "")
	requireErrorEnvelope(t, rec, http.StatusServiceUnavailable, "storage unavailable")
}

func TestInit_Version(t *testing.T) {
	api := newTestAPI(t)
	api.appInfo.EXPECT().GetAppVersion(gomock.Any()).Return("1.2.3")

	rec := api.do(t, http.MethodGet, "/version", "", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "text/plain", rec.Header().Get("Content-Type"))
	assert.Equal(t, "1.2.3", rec.Body.String())
}

func TestInit_TraceIDEchoed(t *testing.T) {
	api := newTestAPI(t)

	api.appInfo.EXPECT().CheckHealth(gomock.Any()).Return(nil)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set(traceIDHeader, "trace-123")
	rec := httptest.NewRecorder()
	api.router.ServeHTTP(rec, req)

	assert.Equal(t, "trace-123", rec.Header().Get(traceIDHeader))
}

func TestInit_CORSPreflight(t *testing.T) {
	api := newTestAPI(t)

	req := httptest.NewRequest(http.MethodOptions, "/restaurants", nil)
	req.Header.Set("Origin", "http://front.test")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	req.Header.Set("Access-Control-Request-Headers", "Authorization, Content-Type")
	rec := httptest.NewRecorder()
	api.router.ServeHTTP(rec, req)

	assert.Less(t, rec.Code, 300)
	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
}

func TestInit_BodyTooLarge(t *testing.T) {
	api := newTestAPI(t)

	body := `{"nombre":"` + strings.Repeat("a", maxRequestBodySize) + `"}`
	rec := api.do(t, http.MethodPost, "/fanfan/leads", body, "")
	requireErrorEnvelope(t, rec, http.StatusRequestEntityTooLarge, "request body too large")
}
