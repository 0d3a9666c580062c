package authservice

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/roboss/washpoint/internal/apperrors"
	"github.com/roboss/washpoint/internal/domain"
	"github.com/roboss/washpoint/pkg/auth"
	"github.com/roboss/washpoint/pkg/clients"
)

type mocks struct {
	repo        *MockRepo
	hashService *auth.MockHashServiceInterface
	jwtService  *auth.MockJWTServiceInterface
	lineClient  *clients.MockHTTPClientI
}

func NewMock(t *testing.T) (*Service, *mocks) {
	ctrl := gomock.NewController(t)
	m := &mocks{
		repo:        NewMockRepo(ctrl),
		hashService: auth.NewMockHashServiceInterface(ctrl),
		jwtService:  auth.NewMockJWTServiceInterface(ctrl),
		lineClient:  clients.NewMockHTTPClientI(ctrl),
	}
	service := New(m.repo, m.hashService, m.jwtService, m.lineClient, "https://api.line.me")
	defer ctrl.Finish()
	return service, m
}

func TestRegister(t *testing.T) {
	service, m := NewMock(t)

	tests := []struct {
		name          string
		prepareMock   func()
		expectedError error
	}{
		{
			name: "Registers new user with defaults",
			prepareMock: func() {
				m.repo.EXPECT().FindByEmail(gomock.Any(), "somchai@example.com").Return(nil, nil)
				m.hashService.EXPECT().HashPassword("s3cr3tpass").Return("hashed", nil)
				m.repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
					func(ctx context.Context, user *domain.User) (*domain.User, error) {
						assert.NotEmpty(t, user.ID)
						assert.Equal(t, "hashed", user.PasswordHash)
						assert.Equal(t, DefaultTotalStamps, user.TotalStamps)
						assert.Equal(t, domain.TierSilver, user.MemberTier)
						return user, nil
					})
			},
		},
		{
			name: "Email already taken",
			prepareMock: func() {
				m.repo.EXPECT().FindByEmail(gomock.Any(), "somchai@example.com").Return(&domain.User{
					ID: "user-1", Email: "somchai@example.com",
				}, nil)
			},
			expectedError: apperrors.ErrEmailTaken,
		},
		{
			name: "Hashing failure propagates",
			prepareMock: func() {
				m.repo.EXPECT().FindByEmail(gomock.Any(), "somchai@example.com").Return(nil, nil)
				m.hashService.EXPECT().HashPassword("s3cr3tpass").Return("", errors.New("hash error"))
			},
			expectedError: errors.New("hash error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.prepareMock != nil {
				tt.prepareMock()
			}

			user, err := service.Register(context.Background(), "somchai@example.com", "s3cr3tpass", "Somchai")
			if tt.expectedError != nil {
				assert.Error(t, err)
				assert.Nil(t, user)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, "somchai@example.com", user.Email)
		})
	}
}

func TestAuthenticate(t *testing.T) {
	service, m := NewMock(t)

	tests := []struct {
		name          string
		prepareMock   func()
		expectedError error
	}{
		{
			name: "Valid credentials",
			prepareMock: func() {
				m.repo.EXPECT().FindByEmail(gomock.Any(), "somchai@example.com").Return(&domain.User{
					ID: "user-1", Email: "somchai@example.com", PasswordHash: "hashed",
				}, nil)
				m.hashService.EXPECT().ComparePassword("hashed", "s3cr3tpass").Return(true)
			},
		},
		{
			name: "Unknown email",
			prepareMock: func() {
				m.repo.EXPECT().FindByEmail(gomock.Any(), "somchai@example.com").Return(nil, nil)
			},
			expectedError: apperrors.ErrInvalidCredentials,
		},
		{
			name: "Wrong password",
			prepareMock: func() {
				m.repo.EXPECT().FindByEmail(gomock.Any(), "somchai@example.com").Return(&domain.User{
					ID: "user-1", PasswordHash: "hashed",
				}, nil)
				m.hashService.EXPECT().ComparePassword("hashed", "s3cr3tpass").Return(false)
			},
			expectedError: apperrors.ErrInvalidCredentials,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.prepareMock != nil {
				tt.prepareMock()
			}

			user, err := service.Authenticate(context.Background(), "somchai@example.com", "s3cr3tpass")
			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				assert.Nil(t, user)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, "user-1", user.ID)
		})
	}
}

func TestAuthenticateLine(t *testing.T) {
	service, m := NewMock(t)

	profileBody := []byte(`{"userId":"U1234","displayName":"Somchai"}`)

	tests := []struct {
		name          string
		prepareMock   func()
		expectedError error
	}{
		{
			name: "Existing LINE user logs in",
			prepareMock: func() {
				m.lineClient.EXPECT().Get("https://api.line.me/v2/profile", gomock.Any()).
					Return(http.StatusOK, profileBody, nil, nil)
				m.repo.EXPECT().FindByLineUserID(gomock.Any(), "U1234").Return(&domain.User{
					ID: "user-1", LineUserID: "U1234",
				}, nil)
			},
		},
		{
			name: "First login creates user",
			prepareMock: func() {
				m.lineClient.EXPECT().Get("https://api.line.me/v2/profile", gomock.Any()).
					Return(http.StatusOK, profileBody, nil, nil)
				m.repo.EXPECT().FindByLineUserID(gomock.Any(), "U1234").Return(nil, nil)
				m.repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
					func(ctx context.Context, user *domain.User) (*domain.User, error) {
						assert.Equal(t, "U1234", user.LineUserID)
						assert.Equal(t, "line-U1234@line.local", user.Email)
						assert.Equal(t, "Somchai", user.Name)
						return user, nil
					})
			},
		},
		{
			name: "Rejected token",
			prepareMock: func() {
				m.lineClient.EXPECT().Get("https://api.line.me/v2/profile", gomock.Any()).
					Return(http.StatusUnauthorized, nil, nil, nil)
			},
			expectedError: apperrors.ErrInvalidCredentials,
		},
		{
			name: "Profile without user id",
			prepareMock: func() {
				m.lineClient.EXPECT().Get("https://api.line.me/v2/profile", gomock.Any()).
					Return(http.StatusOK, []byte(`{}`), nil, nil)
			},
			expectedError: apperrors.ErrInvalidCredentials,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.prepareMock != nil {
				tt.prepareMock()
			}

			user, err := service.AuthenticateLine(context.Background(), "line-token")
			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				assert.Nil(t, user)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, "U1234", user.LineUserID)
		})
	}
}

func TestGetUser(t *testing.T) {
	service, m := NewMock(t)

	m.repo.EXPECT().FindByID(gomock.Any(), "user-1").Return(nil, nil)

	user, err := service.GetUser(context.Background(), "user-1")
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
	assert.Nil(t, user)
}

func TestGenerateToken(t *testing.T) {
	service, m := NewMock(t)

	m.jwtService.EXPECT().GenerateJWT("user-1", gomock.Any()).Return("token", nil)

	token, err := service.GenerateToken("user-1")
	assert.NoError(t, err)
	assert.Equal(t, "token", token)
}
