package service

import (
	"context"
	"testing"
	"time"

	"mentora-be/internal/dto"
	"mentora-be/internal/entity"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestLoginAdminIssuesToken(t *testing.T) {
	adminID := uuid.New()
	s := &fakeStore{
		admins: []*entity.AdminUser{
			{Id: adminID, Username: "admin", PasswordHash: hashOf(t, "admin123")},
		},
	}
	svc := NewAuthService(&fakeFactory{store: s}, nil)
	t.Setenv("JWT_SECRET", "test_secret")

	res, err := svc.LoginAdmin(context.Background(), &dto.AdminLoginRequest{Username: "admin", Password: "admin123"})
	require.NoError(t, err)
	require.NotEmpty(t, res.Token)

	token, err := jwt.Parse(res.Token, func(tok *jwt.Token) (interface{}, error) {
		return []byte("test_secret"), nil
	})
	require.NoError(t, err)

	claims, ok := token.Claims.(jwt.MapClaims)
	require.True(t, ok)
	assert.Equal(t, adminID.String(), claims["admin_id"])
	assert.Equal(t, "admin", claims["role"])
}

func TestLoginAdminRejectsBadCredentials(t *testing.T) {
	s := &fakeStore{
		admins: []*entity.AdminUser{
			{Id: uuid.New(), Username: "admin", PasswordHash: hashOf(t, "admin123")},
		},
	}
	svc := NewAuthService(&fakeFactory{store: s}, nil)

	_, err := svc.LoginAdmin(context.Background(), &dto.AdminLoginRequest{Username: "admin", Password: "wrong"})
	assert.EqualError(t, err, "invalid credentials")

	_, err = svc.LoginAdmin(context.Background(), &dto.AdminLoginRequest{Username: "ghost", Password: "admin123"})
	assert.EqualError(t, err, "invalid credentials")
}

func TestChangeChatbotPasswordInvalidatesOldSessions(t *testing.T) {
	s := validStore(t)
	authSvc := NewAuthService(&fakeFactory{store: s}, nil)
	chat := newChatFixture(t, s)

	// Session issued before the rotation.
	id := openSession(chat, time.Now().UTC().Add(-time.Minute).Format(time.RFC3339))

	require.NoError(t, authSvc.ChangeChatbotPassword(context.Background(), &dto.ChangeChatbotPasswordRequest{NewPassword: "rotated1"}))

	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(s.credential.PasswordHash), []byte("rotated1")))
	assert.Error(t, bcrypt.CompareHashAndPassword([]byte(s.credential.PasswordHash), []byte("letmein")))

	res, err := chat.svc.Chat(context.Background(), &dto.ChatRequest{SessionId: id, Message: "hello"})
	require.NoError(t, err)
	assert.Equal(t, "session_expired", res.Intent)

	// A fresh login against the new password opens a working session.
	login, err := chat.svc.Login(context.Background(), &dto.ChatbotLoginRequest{Password: "rotated1"})
	require.NoError(t, err)

	res, err = chat.svc.Chat(context.Background(), &dto.ChatRequest{SessionId: login.SessionId, Message: "hello"})
	require.NoError(t, err)
	assert.Equal(t, "greeting", res.Intent)
}
