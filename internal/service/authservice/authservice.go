package authservice

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/roboss/washpoint/internal/apperrors"
	"github.com/roboss/washpoint/internal/domain"
	"github.com/roboss/washpoint/pkg/auth"
	"github.com/roboss/washpoint/pkg/clients"
)

// DefaultTotalStamps is the stamp-card size assigned at registration.
const DefaultTotalStamps = 10

const tokenTTL = 24 * time.Hour

type Repo interface {
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	FindByID(ctx context.Context, id string) (*domain.User, error)
	FindByLineUserID(ctx context.Context, lineUserID string) (*domain.User, error)
}

type Service struct {
	userRepo    Repo
	hashService auth.HashServiceInterface
	jwtService  auth.JWTServiceInterface
	lineClient  clients.HTTPClientI
	lineAPIURL  string
}

func New(repo Repo, hashService auth.HashServiceInterface, jwtService auth.JWTServiceInterface, lineClient clients.HTTPClientI, lineAPIURL string) *Service {
	return &Service{
		userRepo:    repo,
		hashService: hashService,
		jwtService:  jwtService,
		lineClient:  lineClient,
		lineAPIURL:  lineAPIURL,
	}
}

func (s *Service) Register(ctx context.Context, email, password, name string) (*domain.User, error) {
	existingUser, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		zap.L().Error("can't find user: ", zap.Error(err))
		return nil, err
	}
	if existingUser != nil {
		zap.L().Info("user already exists", zap.String("email", email))
		return nil, apperrors.ErrEmailTaken
	}
	hashedPassword, err := s.hashService.HashPassword(password)
	if err != nil {
		zap.L().Error("can't hash password: ", zap.Error(err))
		return nil, err
	}

	user := &domain.User{
		ID:           uuid.NewString(),
		Email:        email,
		PasswordHash: hashedPassword,
		Name:         name,
		TotalStamps:  DefaultTotalStamps,
		MemberTier:   domain.TierSilver,
	}
	newUser, err := s.userRepo.Create(ctx, user)
	if err != nil {
		zap.L().Error("can't create user: ", zap.Error(err))
		return nil, err
	}

	zap.L().Info("user successfully registered", zap.String("email", email))
	return newUser, nil
}

func (s *Service) Authenticate(ctx context.Context, email, password string) (*domain.User, error) {
	user, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil || user == nil {
		zap.L().Error("invalid credentials", zap.Error(err))
		return nil, apperrors.ErrInvalidCredentials
	}
	if ok := s.hashService.ComparePassword(user.PasswordHash, password); !ok {
		zap.L().Error("invalid credentials", zap.String("email", email))
		return nil, apperrors.ErrInvalidCredentials
	}
	zap.L().Info("user successfully authenticated", zap.String("email", email))
	return user, nil
}

type lineProfile struct {
	UserID      string `json:"userId"`
	DisplayName string `json:"displayName"`
}

// AuthenticateLine exchanges a LINE access token for a local session,
// creating the user on first login.
func (s *Service) AuthenticateLine(ctx context.Context, lineAccessToken string) (*domain.User, error) {
	headers := http.Header{}
	headers.Set("Authorization", "Bearer "+lineAccessToken)

	statusCode, body, _, err := s.lineClient.Get(s.lineAPIURL+"/v2/profile", headers)
	if err != nil {
		zap.L().Error("can't fetch LINE profile", zap.Error(err))
		return nil, err
	}
	if statusCode != http.StatusOK {
		zap.L().Info("LINE rejected access token", zap.Int("status", statusCode))
		return nil, apperrors.ErrInvalidCredentials
	}

	var profile lineProfile
	if err := json.Unmarshal(body, &profile); err != nil {
		zap.L().Error("can't decode LINE profile", zap.Error(err))
		return nil, err
	}
	if profile.UserID == "" {
		return nil, apperrors.ErrInvalidCredentials
	}

	user, err := s.userRepo.FindByLineUserID(ctx, profile.UserID)
	if err != nil {
		return nil, err
	}
	if user != nil {
		return user, nil
	}

	user = &domain.User{
		ID:          uuid.NewString(),
		Email:       fmt.Sprintf("line-%s@line.local", profile.UserID),
		Name:        profile.DisplayName,
		TotalStamps: DefaultTotalStamps,
		MemberTier:  domain.TierSilver,
		LineUserID:  profile.UserID,
	}
	newUser, err := s.userRepo.Create(ctx, user)
	if err != nil {
		zap.L().Error("can't create LINE user: ", zap.Error(err))
		return nil, err
	}
	zap.L().Info("LINE user registered", zap.String("line_user_id", profile.UserID))
	return newUser, nil
}

func (s *Service) GetUser(ctx context.Context, userID string) (*domain.User, error) {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, fmt.Errorf("user %q: %w", userID, apperrors.ErrNotFound)
	}
	return user, nil
}

func (s *Service) GenerateToken(userID string) (string, error) {
	expirationTime := time.Now().Add(tokenTTL)

	token, err := s.jwtService.GenerateJWT(userID, expirationTime)
	if err != nil {
		zap.L().Error("can't generate token: ", zap.Error(err))
		return "", err
	}
	return token, nil
}
