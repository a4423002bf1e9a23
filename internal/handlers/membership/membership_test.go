package membership

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/GlebRadaev/coopportal/internal/domain"
	"github.com/GlebRadaev/coopportal/internal/dto"
	"github.com/GlebRadaev/coopportal/internal/service/membershipservice"
	"github.com/GlebRadaev/coopportal/pkg/auth"
	"github.com/GlebRadaev/coopportal/pkg/upload"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gomock "go.uber.org/mock/gomock"
)

var pngBytes = append([]byte("\x89PNG\r\n\x1a\n"), bytes.Repeat([]byte{0}, 64)...)

func NewMock(t *testing.T) (*MembershipHandler, *MockService, string) {
	ctrl := gomock.NewController(t)
	service := NewMockService(ctrl)
	dir := t.TempDir()
	handler := New(service, upload.NewStore(dir, 1024))
	return handler, service, dir
}

type file struct {
	field   string
	name    string
	content []byte
}

func validFields() map[string]string {
	return map[string]string{
		"first_name":     "Maria",
		"last_name":      "Santos",
		"birth_date":     "1990-05-01",
		"gender":         "Female",
		"civil_status":   "single",
		"contact_number": "09171234567",
		"email":          "maria@example.org",
		"address":        "12 Rizal St",
		"occupation":     "Nurse",
		"monthly_income": "25,000",
	}
}

func multipartRequest(t *testing.T, fields map[string]string, files ...file) *http.Request {
	t.Helper()
	body := &bytes.Buffer{}
	mw := multipart.NewWriter(body)
	for k, v := range fields {
		require.NoError(t, mw.WriteField(k, v))
	}
	for _, f := range files {
		fw, err := mw.CreateFormFile(f.field, f.name)
		require.NoError(t, err)
		_, err = fw.Write(f.content)
		require.NoError(t, err)
	}
	require.NoError(t, mw.Close())

	r := httptest.NewRequest(http.MethodPost, "/api/membership-application", body)
	r.Header.Set("Content-Type", mw.FormDataContentType())
	return r
}

func storedFiles(t *testing.T, dir string) int {
	t.Helper()
	entries, err := os.ReadDir(filepath.Join(dir, uploadKind))
	if os.IsNotExist(err) {
		return 0
	}
	require.NoError(t, err)
	return len(entries)
}

func withID(r *http.Request, id string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add("id", id)
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

func withStaff(r *http.Request, id int) *http.Request {
	return r.WithContext(auth.WithPrincipal(r.Context(), auth.Principal{UserID: id, Kind: auth.KindStaff, Role: "manager"}))
}

func TestSubmitHandler(t *testing.T) {
	tests := []struct {
		name          string
		fields        func() map[string]string
		files         []file
		prepareMock   func(service *MockService)
		expectedCode  int
		expectedError string
		expectedFiles int
	}{
		{
			name:   "Application with two images",
			fields: validFields,
			files:  []file{{"photo", "me.png", pngBytes}, {"valid_id", "id.png", pngBytes}},
			prepareMock: func(service *MockService) {
				service.EXPECT().Submit(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, app *domain.MembershipApplication) (*domain.MembershipApplication, error) {
						assert.Equal(t, "female", app.Gender)
						assert.Equal(t, 25000.0, app.MonthlyIncome)
						assert.Equal(t, time.Date(1990, 5, 1, 0, 0, 0, 0, time.UTC), app.BirthDate)
						require.NotNil(t, app.PhotoPath)
						require.NotNil(t, app.ValidIDPath)
						assert.True(t, strings.HasPrefix(*app.PhotoPath, "membership/"))
						app.ID = 12
						return app, nil
					})
			},
			expectedCode:  http.StatusCreated,
			expectedFiles: 2,
		},
		{
			name:   "Application without attachments",
			fields: validFields,
			prepareMock: func(service *MockService) {
				service.EXPECT().Submit(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, app *domain.MembershipApplication) (*domain.MembershipApplication, error) {
						assert.Nil(t, app.PhotoPath)
						assert.Nil(t, app.ValidIDPath)
						app.ID = 13
						return app, nil
					})
			},
			expectedCode: http.StatusCreated,
		},
		{
			name: "Missing required field",
			fields: func() map[string]string {
				f := validFields()
				delete(f, "last_name")
				return f
			},
			prepareMock:   func(*MockService) {},
			expectedCode:  http.StatusBadRequest,
			expectedError: "last_name is required",
		},
		{
			name: "Income is not a number",
			fields: func() map[string]string {
				f := validFields()
				f["monthly_income"] = "a lot"
				return f
			},
			prepareMock:   func(*MockService) {},
			expectedCode:  http.StatusBadRequest,
			expectedError: "monthly_income must be a number",
		},
		{
			name:          "Text file instead of image",
			fields:        validFields,
			files:         []file{{"photo", "me.png", pngBytes}, {"valid_id", "id.png", []byte("plain text")}},
			prepareMock:   func(*MockService) {},
			expectedCode:  http.StatusBadRequest,
			expectedError: "only image files are allowed",
		},
		{
			name:   "Database failure removes staged files",
			fields: validFields,
			files:  []file{{"photo", "me.png", pngBytes}},
			prepareMock: func(service *MockService) {
				service.EXPECT().Submit(gomock.Any(), gomock.Any()).Return(nil, errors.New("connection refused"))
			},
			expectedCode:  http.StatusInternalServerError,
			expectedError: "Internal server error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler, service, dir := NewMock(t)
			tt.prepareMock(service)

			w := httptest.NewRecorder()
			handler.Submit(w, multipartRequest(t, tt.fields(), tt.files...))

			assert.Equal(t, tt.expectedCode, w.Code)
			if tt.expectedError != "" {
				assert.Contains(t, w.Body.String(), tt.expectedError)
				assert.NotContains(t, w.Body.String(), "connection refused")
			}
			if tt.expectedCode == http.StatusCreated {
				var resp dto.SubmitResponse
				require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
				assert.True(t, resp.Success)
				assert.NotZero(t, resp.ApplicationID)
			}
			assert.Equal(t, tt.expectedFiles, storedFiles(t, dir))
		})
	}
}

func TestSubmitHandler_NotMultipart(t *testing.T) {
	handler, _, _ := NewMock(t)

	r := httptest.NewRequest(http.MethodPost, "/api/membership-application", strings.NewReader(`{"first_name":"Maria"}`))
	r.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	handler.Submit(w, r)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "invalid multipart form")
}

func TestSubmitHandler_StorageFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	service := NewMockService(ctrl)
	uploader := NewMockUploader(ctrl)
	handler := New(service, uploader)

	r := multipartRequest(t, validFields())
	uploader.EXPECT().ParseForm(gomock.Any(), r).DoAndReturn(func(_ http.ResponseWriter, r *http.Request) error {
		return r.ParseMultipartForm(1 << 20)
	})
	uploader.EXPECT().Stage(uploadKind, gomock.Any()).Return(nil, errors.New("read-only file system"))

	w := httptest.NewRecorder()
	handler.Submit(w, r)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.NotContains(t, w.Body.String(), "read-only")
}

func TestListHandler(t *testing.T) {
	tests := []struct {
		name         string
		query        string
		prepareMock  func(service *MockService)
		expectedCode int
		expectedLen  int
	}{
		{
			name:  "All applications",
			query: "",
			prepareMock: func(service *MockService) {
				service.EXPECT().List(gomock.Any(), "").Return([]domain.MembershipApplication{
					{ID: 2, Status: domain.StatusPending},
					{ID: 1, Status: domain.StatusApproved},
				}, nil)
			},
			expectedCode: http.StatusOK,
			expectedLen:  2,
		},
		{
			name:  "Empty list",
			query: "?status=returned",
			prepareMock: func(service *MockService) {
				service.EXPECT().List(gomock.Any(), "returned").Return([]domain.MembershipApplication{}, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name:  "Unknown status",
			query: "?status=archived",
			prepareMock: func(service *MockService) {
				service.EXPECT().List(gomock.Any(), "archived").Return(nil, domain.ErrUnknownStatus)
			},
			expectedCode: http.StatusBadRequest,
		},
		{
			name: "Internal error",
			prepareMock: func(service *MockService) {
				service.EXPECT().List(gomock.Any(), "").Return(nil, errors.New("boom"))
			},
			expectedCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler, service, _ := NewMock(t)
			tt.prepareMock(service)

			w := httptest.NewRecorder()
			handler.List(w, httptest.NewRequest(http.MethodGet, "/api/membership-applications"+tt.query, nil))

			assert.Equal(t, tt.expectedCode, w.Code)
			if tt.expectedCode == http.StatusOK {
				var resp dto.MembershipApplicationsResponse
				require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
				assert.True(t, resp.Success)
				assert.NotNil(t, resp.Applications)
				assert.Len(t, resp.Applications, tt.expectedLen)
			}
		})
	}
}

func TestGetHandler(t *testing.T) {
	tests := []struct {
		name         string
		id           string
		prepareMock  func(service *MockService)
		expectedCode int
	}{
		{
			name: "Found",
			id:   "7",
			prepareMock: func(service *MockService) {
				service.EXPECT().Get(gomock.Any(), 7).Return(&domain.MembershipApplication{ID: 7, Status: domain.StatusPending}, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name:         "Invalid id",
			id:           "abc",
			prepareMock:  func(*MockService) {},
			expectedCode: http.StatusBadRequest,
		},
		{
			name: "Not found",
			id:   "99",
			prepareMock: func(service *MockService) {
				service.EXPECT().Get(gomock.Any(), 99).Return(nil, membershipservice.ErrNotFound)
			},
			expectedCode: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler, service, _ := NewMock(t)
			tt.prepareMock(service)

			w := httptest.NewRecorder()
			handler.Get(w, withID(httptest.NewRequest(http.MethodGet, "/", nil), tt.id))

			assert.Equal(t, tt.expectedCode, w.Code)
		})
	}
}

func TestUpdateStatusHandler(t *testing.T) {
	number := "M-0012"

	tests := []struct {
		name          string
		body          string
		prepareMock   func(service *MockService)
		expectedCode  int
		expectedError string
	}{
		{
			name: "Approve with membership number",
			body: `{"status":"approved","reviewNotes":"ok","membershipNumber":"M-0012"}`,
			prepareMock: func(service *MockService) {
				service.EXPECT().UpdateStatus(gomock.Any(), 5, "approved", 3, "ok", &number).
					Return(&domain.MembershipApplication{ID: 5, Status: domain.StatusApproved, MembershipNumber: &number}, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name:          "Invalid body",
			body:          `{"status":`,
			prepareMock:   func(*MockService) {},
			expectedCode:  http.StatusBadRequest,
			expectedError: "Invalid request body",
		},
		{
			name:          "Missing status",
			body:          `{"reviewNotes":"ok"}`,
			prepareMock:   func(*MockService) {},
			expectedCode:  http.StatusBadRequest,
			expectedError: "status is required",
		},
		{
			name: "Unknown status",
			body: `{"status":"archived"}`,
			prepareMock: func(service *MockService) {
				service.EXPECT().UpdateStatus(gomock.Any(), 5, "archived", 3, "", nil).Return(nil, domain.ErrUnknownStatus)
			},
			expectedCode: http.StatusBadRequest,
		},
		{
			name: "Not found",
			body: `{"status":"under_review"}`,
			prepareMock: func(service *MockService) {
				service.EXPECT().UpdateStatus(gomock.Any(), 5, "under_review", 3, "", nil).Return(nil, membershipservice.ErrNotFound)
			},
			expectedCode: http.StatusNotFound,
		},
		{
			name: "Illegal transition",
			body: `{"status":"pending"}`,
			prepareMock: func(service *MockService) {
				service.EXPECT().UpdateStatus(gomock.Any(), 5, "pending", 3, "", nil).Return(nil, domain.ErrInvalidTransition)
			},
			expectedCode: http.StatusConflict,
		},
		{
			name: "Concurrent update",
			body: `{"status":"approved"}`,
			prepareMock: func(service *MockService) {
				service.EXPECT().UpdateStatus(gomock.Any(), 5, "approved", 3, "", nil).Return(nil, membershipservice.ErrStatusConflict)
			},
			expectedCode: http.StatusConflict,
		},
		{
			name: "Membership number already assigned",
			body: `{"status":"approved","membershipNumber":"M-0012"}`,
			prepareMock: func(service *MockService) {
				service.EXPECT().UpdateStatus(gomock.Any(), 5, "approved", 3, "", &number).Return(nil, membershipservice.ErrNumberTaken)
			},
			expectedCode:  http.StatusConflict,
			expectedError: "membership number is already assigned",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler, service, _ := NewMock(t)
			tt.prepareMock(service)

			r := httptest.NewRequest(http.MethodPut, "/", strings.NewReader(tt.body))
			w := httptest.NewRecorder()
			handler.UpdateStatus(w, withStaff(withID(r, "5"), 3))

			assert.Equal(t, tt.expectedCode, w.Code)
			if tt.expectedError != "" {
				assert.Contains(t, w.Body.String(), tt.expectedError)
			}
		})
	}
}

func TestUpdateStatusHandler_NoPrincipal(t *testing.T) {
	handler, _, _ := NewMock(t)

	w := httptest.NewRecorder()
	handler.UpdateStatus(w, withID(httptest.NewRequest(http.MethodPut, "/", strings.NewReader(`{}`)), "5"))

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
