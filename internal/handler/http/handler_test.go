package http

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/jaychenthinkfast/OneTabCloud/internal/config"
	"github.com/jaychenthinkfast/OneTabCloud/internal/logger"
	"github.com/jaychenthinkfast/OneTabCloud/internal/mock"
	"github.com/jaychenthinkfast/OneTabCloud/internal/service"
	"github.com/jaychenthinkfast/OneTabCloud/internal/store"
	"github.com/jaychenthinkfast/OneTabCloud/models"
)

const testCredential = "s3cret-token"

// newTestServerHandler builds a Handler over the given container service
// with a fixed build info and the test credential.
func newTestServerHandler(t *testing.T, containers service.ContainerService) *Handler {
	t.Helper()

	appInfo, err := service.NewAppInfoService(models.NewAppBuildInfo("1.2.3", "2026-01-02", "abc123"))
	require.NoError(t, err)

	return NewHandler(
		&service.Services{AppInfoService: appInfo, ContainerService: containers},
		config.Server{Credential: testCredential, RequestTimeout: 5 * time.Second},
		logger.Nop(),
	)
}

func doRequest(router http.Handler, method, path, body string, authorized bool) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if authorized {
		req.Header.Set("Authorization", "Bearer "+testCredential)
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

// ── NewHandler ───────────────────────────────────────────────────────────────

func TestNewHandler(t *testing.T) {
	svcs := &service.Services{}
	log := logger.Nop()
	h := NewHandler(svcs, config.Server{Credential: "c", RequestTimeout: time.Second}, log)

	require.NotNil(t, h)
	assert.Same(t, svcs, h.services)
	assert.Same(t, log, h.logger)
	assert.Equal(t, "c", h.credential)
	assert.Equal(t, time.Second, h.requestTimeout)
	assert.NotNil(t, h.validator)
}

// ── Init: route registration ─ ────────────────────────────────────────────────

func TestInit_RegistersAllRoutes(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	router := newTestServerHandler(t, mock.NewMockContainerService(ctrl)).Init()

	routes := []struct {
		method string
		path   string
	}{
		{http.MethodGet, "/containers"},
		{http.MethodPost, "/containers"},
		{http.MethodGet, "/containers/abc"},
		{http.MethodPatch, "/containers/abc"},
	}
	for _, tc := range routes {
		t.Run(tc.method+" "+tc.path, func(t *testing.T) {
			// protected routes answer 401 without a credential, which proves
			// they are registered
			rec := doRequest(router, tc.method, tc.path, "", false)
			assert.Equal(t, http.StatusUnauthorized, rec.Code)
		})
	}
}

func TestInit_VersionNeedsNoCredential(t *testing.T) {
	router := newTestServerHandler(t, nil).Init()

	rec := doRequest(router, http.MethodGet, "/version", "", false)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"version":"1.2.3","date":"2026-01-02","commit":"abc123"}`, rec.Body.String())
	assert.NotEmpty(t, rec.Header().Get("X-Trace-ID"))
}

func TestInit_UnknownRouteReturns404(t *testing.T) {
	router := newTestServerHandler(t, nil).Init()

	rec := doRequest(router, http.MethodGet, "/nonexistent", "", true)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestInit_WrongMethodReturns404(t *testing.T) {
	router := newTestServerHandler(t, nil).Init()

	rec := doRequest(router, http.MethodDelete, "/containers", "", true)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = doRequest(router, http.MethodPost, "/version", "", false)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestInit_RecoversFromPanic(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	containers := mock.NewMockContainerService(ctrl)
	containers.EXPECT().List(gomock.Any()).DoAndReturn(func(context.Context) ([]models.Container, error) {
		panic("boom")
	})

	router := newTestServerHandler(t, containers).Init()
	rec := doRequest(router, http.MethodGet, "/containers", "", true)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

// ── Container handlers ───────────────────────────────────────────────────────

func TestListContainers(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	containers := mock.NewMockContainerService(ctrl)
	containers.EXPECT().List(gomock.Any()).Return([]models.Container{
		{ID: "1", Description: "OneTabCloud Sync Data"},
		{ID: "2", Description: "other"},
	}, nil)

	router := newTestServerHandler(t, containers).Init()
	rec := doRequest(router, http.MethodGet, "/containers", "", true)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	assert.JSONEq(t, `[
		{"id":"1","description":"OneTabCloud Sync Data","public":false},
		{"id":"2","description":"other","public":false}
	]`, rec.Body.String())
}

func TestListContainers_ServiceError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	containers := mock.NewMockContainerService(ctrl)
	containers.EXPECT().List(gomock.Any()).Return(nil, store.ErrStoreClosed)

	router := newTestServerHandler(t, containers).Init()
	rec := doRequest(router, http.MethodGet, "/containers", "", true)

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestCreateContainer(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	containers := mock.NewMockContainerService(ctrl)
	want := models.CreateContainerRequest{
		Description: "OneTabCloud Sync Data",
		Files:       map[string]models.ContainerFile{"index.json": {Content: `{"version":1,"files":[]}`}},
	}
	containers.EXPECT().Create(gomock.Any(), want).Return(models.Container{
		ID:          "new-id",
		Description: want.Description,
		Files:       want.Files,
	}, nil)

	router := newTestServerHandler(t, containers).Init()
	body := `{"description":"OneTabCloud Sync Data","public":false,"files":{"index.json":{"content":"{\"version\":1,\"files\":[]}"}}}`
	rec := doRequest(router, http.MethodPost, "/containers", body, true)

	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var got models.Container
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, "new-id", got.ID)
}

func TestCreateContainer_BadRequests(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	containers := mock.NewMockContainerService(ctrl)
	containers.EXPECT().Create(gomock.Any(), gomock.Any()).Times(0)
	router := newTestServerHandler(t, containers).Init()

	tests := []struct {
		name       string
		body       string
		wantStatus int
	}{
		{name: "not json", body: `{`, wantStatus: http.StatusBadRequest},
		{name: "missing description", body: `{"files":{}}`, wantStatus: http.StatusUnprocessableEntity},
		{name: "empty file name", body: `{"description":"d","files":{"":{"content":"x"}}}`, wantStatus: http.StatusUnprocessableEntity},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := doRequest(router, http.MethodPost, "/containers", tt.body, true)
			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}

func TestGetContainer(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	containers := mock.NewMockContainerService(ctrl)
	containers.EXPECT().Get(gomock.Any(), "abc").Return(models.Container{
		ID:    "abc",
		Files: map[string]models.ContainerFile{"chunk_0.json": {Content: `[{"id":"1"}]`}},
	}, nil)
	containers.EXPECT().Get(gomock.Any(), "missing").Return(models.Container{}, service.ErrContainerNotFound)

	router := newTestServerHandler(t, containers).Init()

	rec := doRequest(router, http.MethodGet, "/containers/abc", "", true)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"chunk_0.json"`)

	rec = doRequest(router, http.MethodGet, "/containers/missing", "", true)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestUpdateContainer_NullDeletes(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	containers := mock.NewMockContainerService(ctrl)
	containers.EXPECT().
		Update(gomock.Any(), "abc", gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, req models.UpdateContainerRequest) (models.Container, error) {
			require.Len(t, req.Files, 2)
			assert.Nil(t, req.Files["chunk_1.json"])
			require.NotNil(t, req.Files["chunk_0.json"])
			assert.Equal(t, "[]", req.Files["chunk_0.json"].Content)
			return models.Container{ID: "abc"}, nil
		})

	router := newTestServerHandler(t, containers).Init()
	body := `{"files":{"chunk_0.json":{"content":"[]"},"chunk_1.json":null}}`
	rec := doRequest(router, http.MethodPatch, "/containers/abc", body, true)

	assert.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
}

func TestUpdateContainer_Errors(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	containers := mock.NewMockContainerService(ctrl)
	containers.EXPECT().Update(gomock.Any(), "missing", gomock.Any()).Return(models.Container{}, service.ErrContainerNotFound)
	router := newTestServerHandler(t, containers).Init()

	rec := doRequest(router, http.MethodPatch, "/containers/missing", `{"files":{"a":{"content":"x"}}}`, true)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = doRequest(router, http.MethodPatch, "/containers/abc", `{}`, true)
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code, "files are required")

	rec = doRequest(router, http.MethodPatch, "/containers/abc", `[`, true)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestUpdateContainer_BodyTooLarge(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	containers := mock.NewMockContainerService(ctrl)
	router := newTestServerHandler(t, containers).Init()

	big := `{"files":{"a":{"content":"` + strings.Repeat("x", maxRequestBody) + `"}}}`
	req := httptest.NewRequest(http.MethodPatch, "/containers/abc", bytes.NewBufferString(big))
	req.Header.Set("Authorization", "Bearer "+testCredential)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

// ── statusFromError ──────────────────────────────────────────────────────────

func TestStatusFromError(t *testing.T) {
	assert.Equal(t, http.StatusNotFound, statusFromError(service.ErrContainerNotFound))
	assert.Equal(t, http.StatusBadRequest, statusFromError(service.ErrInvalidDataProvided))
	assert.Equal(t, http.StatusInternalServerError, statusFromError(store.ErrCorruptValue))
	assert.Equal(t, http.StatusInternalServerError, statusFromError(assert.AnError))
}
