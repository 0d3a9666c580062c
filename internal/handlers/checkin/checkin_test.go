package checkin

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/roboss/washpoint/internal/apperrors"
	"github.com/roboss/washpoint/internal/domain"
	"github.com/roboss/washpoint/internal/dto"
	pkgauth "github.com/roboss/washpoint/pkg/auth"
	"github.com/roboss/washpoint/pkg/utils"
)

const validCode = "1234567890123452"

func NewMock(t *testing.T) (*CheckinHandler, *MockService) {
	ctrl := gomock.NewController(t)
	service := NewMockService(ctrl)
	handler := New(service)
	defer ctrl.Finish()
	return handler, service
}

func TestGenerateHandler(t *testing.T) {
	handler, service := NewMock(t)

	t.Run("Issues code", func(t *testing.T) {
		expiresAt := time.Now().Add(5 * time.Minute)
		service.EXPECT().Generate(gomock.Any(), "u1").Return(&domain.CheckinCode{
			Code:      validCode,
			ExpiresAt: expiresAt,
		}, nil)

		req := httptest.NewRequest("POST", "/api/checkin/code", nil)
		req = req.WithContext(context.WithValue(req.Context(), pkgauth.UserIDKey, "u1"))
		rr := httptest.NewRecorder()

		handler.Generate(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		var resp dto.CheckinCodeResponseDTO
		err := json.NewDecoder(rr.Body).Decode(&resp)
		assert.NoError(t, err)
		assert.Equal(t, validCode, resp.Code)
	})

	t.Run("Unknown user", func(t *testing.T) {
		service.EXPECT().Generate(gomock.Any(), "missing").Return(nil, apperrors.ErrNotFound)

		req := httptest.NewRequest("POST", "/api/checkin/code", nil)
		req = req.WithContext(context.WithValue(req.Context(), pkgauth.UserIDKey, "missing"))
		rr := httptest.NewRecorder()

		handler.Generate(rr, req)

		assert.Equal(t, http.StatusNotFound, rr.Code)
	})

	t.Run("Missing user in context", func(t *testing.T) {
		rr := httptest.NewRecorder()
		handler.Generate(rr, httptest.NewRequest("POST", "/api/checkin/code", nil))

		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})
}

func TestScanHandler(t *testing.T) {
	handler, service := NewMock(t)

	tests := []struct {
		name          string
		body          string
		prepareMock   func()
		expectedCode  int
		expectedError string
	}{
		{
			name: "Resolves member",
			body: `{"code":"` + validCode + `"}`,
			prepareMock: func() {
				service.EXPECT().Scan(gomock.Any(), validCode).Return(&domain.User{
					ID:         "u1",
					Name:       "Somchai",
					Points:     120,
					MemberTier: domain.TierSilver,
				}, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name: "Malformed code",
			body: `{"code":"1234"}`,
			prepareMock: func() {
				service.EXPECT().Scan(gomock.Any(), "1234").Return(nil, apperrors.ErrInvalidInput)
			},
			expectedCode:  http.StatusBadRequest,
			expectedError: "Malformed code",
		},
		{
			name: "Unknown code",
			body: `{"code":"` + validCode + `"}`,
			prepareMock: func() {
				service.EXPECT().Scan(gomock.Any(), validCode).Return(nil, apperrors.ErrNotFound)
			},
			expectedCode:  http.StatusNotFound,
			expectedError: "Unknown code",
		},
		{
			name: "Code already used",
			body: `{"code":"` + validCode + `"}`,
			prepareMock: func() {
				service.EXPECT().Scan(gomock.Any(), validCode).Return(nil, apperrors.ErrCodeUsed)
			},
			expectedCode:  http.StatusConflict,
			expectedError: "Code already used",
		},
		{
			name: "Code expired",
			body: `{"code":"` + validCode + `"}`,
			prepareMock: func() {
				service.EXPECT().Scan(gomock.Any(), validCode).Return(nil, apperrors.ErrCodeExpired)
			},
			expectedCode:  http.StatusGone,
			expectedError: "Code expired",
		},
		{
			name:          "Invalid request body",
			body:          `{invalid json`,
			prepareMock:   func() {},
			expectedCode:  http.StatusBadRequest,
			expectedError: "Invalid request body",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			req := httptest.NewRequest("POST", "/api/checkin/scan", bytes.NewReader([]byte(tt.body)))
			rr := httptest.NewRecorder()

			handler.Scan(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)

			if tt.expectedError != "" {
				var resp utils.Response
				err := json.NewDecoder(rr.Body).Decode(&resp)
				assert.NoError(t, err)
				assert.Equal(t, tt.expectedError, resp.Message)
			}
			if tt.expectedCode == http.StatusOK {
				var resp dto.CheckinScanResponseDTO
				err := json.NewDecoder(rr.Body).Decode(&resp)
				assert.NoError(t, err)
				assert.Equal(t, "u1", resp.User.ID)
				assert.Equal(t, "Somchai", resp.User.Name)
			}
		})
	}
}
