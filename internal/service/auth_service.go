package service

import (
	"context"
	"errors"
	"os"
	"time"

	"mentora-be/internal/dto"
	"mentora-be/internal/repository/specification"
	"mentora-be/internal/repository/unitofwork"
	"mentora-be/pkg/events"
	pktNats "mentora-be/pkg/nats"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

type IAuthService interface {
	LoginAdmin(ctx context.Context, req *dto.AdminLoginRequest) (*dto.AdminLoginResponse, error)
	ChangeChatbotPassword(ctx context.Context, req *dto.ChangeChatbotPasswordRequest) error
}

type authService struct {
	uowFactory     unitofwork.RepositoryFactory
	eventPublisher *pktNats.Publisher
}

func NewAuthService(uowFactory unitofwork.RepositoryFactory, eventPublisher *pktNats.Publisher) IAuthService {
	return &authService{
		uowFactory:     uowFactory,
		eventPublisher: eventPublisher,
	}
}

func (s *authService) LoginAdmin(ctx context.Context, req *dto.AdminLoginRequest) (*dto.AdminLoginResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	admin, err := uow.AdminUserRepository().FindOne(ctx, specification.ByUsername{Username: req.Username})
	if err != nil {
		return nil, errors.New("invalid credentials")
	}
	if admin == nil {
		return nil, errors.New("invalid credentials")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte(req.Password)); err != nil {
		return nil, errors.New("invalid credentials")
	}

	claims := jwt.MapClaims{
		"admin_id": admin.Id.String(),
		"role":     "admin",
		"exp":      time.Now().Add(24 * time.Hour).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		secret = "default_secret"
	}
	signedToken, err := token.SignedString([]byte(secret))
	if err != nil {
		return nil, err
	}

	return &dto.AdminLoginResponse{Token: signedToken}, nil
}

// ChangeChatbotPassword rotates the shared student password. Bumping
// LastChanged invalidates every session issued before this instant.
func (s *authService) ChangeChatbotPassword(ctx context.Context, req *dto.ChangeChatbotPasswordRequest) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	cred, err := uow.CredentialRepository().FindOne(ctx)
	if err != nil {
		return err
	}
	if cred == nil {
		return errors.New("chatbot credential not configured")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	cred.PasswordHash = string(hash)
	cred.LastChanged = time.Now().UTC().Format(time.RFC3339)
	if err := uow.CredentialRepository().Update(ctx, cred); err != nil {
		return err
	}

	if s.eventPublisher != nil {
		evt := events.NewPasswordChangedEvent(cred.LastChanged)
		_ = s.eventPublisher.Publish(ctx, evt)
	}

	return nil
}
