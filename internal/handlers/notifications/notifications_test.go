package notifications

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/roboss/washpoint/internal/apperrors"
	"github.com/roboss/washpoint/internal/domain"
	"github.com/roboss/washpoint/internal/dto"
	pkgauth "github.com/roboss/washpoint/pkg/auth"
)

func NewMock(t *testing.T) (*NotificationHandler, *MockService) {
	ctrl := gomock.NewController(t)
	service := NewMockService(ctrl)
	handler := New(service)
	defer ctrl.Finish()
	return handler, service
}

func authedRequest(method, target, id string) *http.Request {
	req := httptest.NewRequest(method, target, nil)
	ctx := context.WithValue(req.Context(), pkgauth.UserIDKey, "u1")
	if id != "" {
		rctx := chi.NewRouteContext()
		rctx.URLParams.Add("id", id)
		ctx = context.WithValue(ctx, chi.RouteCtxKey, rctx)
	}
	return req.WithContext(ctx)
}

func TestGetNotificationsHandler(t *testing.T) {
	handler, service := NewMock(t)

	t.Run("Lists notifications", func(t *testing.T) {
		service.EXPECT().GetNotifications(gomock.Any(), "u1").Return([]domain.Notification{
			{ID: "n1", Title: "Wash completed", Type: "success", IsRead: false},
			{ID: "n2", Title: "Tier upgraded", Type: "info", IsRead: true},
		}, nil)

		rr := httptest.NewRecorder()
		handler.GetNotifications(rr, authedRequest("GET", "/api/notifications", ""))

		assert.Equal(t, http.StatusOK, rr.Code)
		var resp []dto.NotificationResponseDTO
		err := json.NewDecoder(rr.Body).Decode(&resp)
		assert.NoError(t, err)
		assert.Len(t, resp, 2)
		assert.False(t, resp[0].IsRead)
	})

	t.Run("Service failure", func(t *testing.T) {
		service.EXPECT().GetNotifications(gomock.Any(), "u1").Return(nil, errors.New("db error"))

		rr := httptest.NewRecorder()
		handler.GetNotifications(rr, authedRequest("GET", "/api/notifications", ""))

		assert.Equal(t, http.StatusInternalServerError, rr.Code)
	})

	t.Run("Missing user in context", func(t *testing.T) {
		rr := httptest.NewRecorder()
		handler.GetNotifications(rr, httptest.NewRequest("GET", "/api/notifications", nil))

		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})
}

func TestMarkReadHandler(t *testing.T) {
	handler, service := NewMock(t)

	t.Run("Marks notification read", func(t *testing.T) {
		service.EXPECT().MarkRead(gomock.Any(), "u1", "n1").Return(nil)

		rr := httptest.NewRecorder()
		handler.MarkRead(rr, authedRequest("POST", "/api/notifications/n1/read", "n1"))

		assert.Equal(t, http.StatusOK, rr.Code)
	})

	t.Run("Notification not found", func(t *testing.T) {
		service.EXPECT().MarkRead(gomock.Any(), "u1", "missing").Return(apperrors.ErrNotFound)

		rr := httptest.NewRecorder()
		handler.MarkRead(rr, authedRequest("POST", "/api/notifications/missing/read", "missing"))

		assert.Equal(t, http.StatusNotFound, rr.Code)
	})
}

func TestMarkAllReadHandler(t *testing.T) {
	handler, service := NewMock(t)

	service.EXPECT().MarkAllRead(gomock.Any(), "u1").Return(nil)

	rr := httptest.NewRecorder()
	handler.MarkAllRead(rr, authedRequest("POST", "/api/notifications/read-all", ""))

	assert.Equal(t, http.StatusOK, rr.Code)
}
