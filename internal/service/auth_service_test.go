package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"xintern-backend/internal/config"
	"xintern-backend/internal/domain"
	"xintern-backend/internal/repository"
	"xintern-backend/internal/service"
)

type mockSessionRepo struct{ mock.Mock }

func (m *mockSessionRepo) Create(ctx context.Context, session *repository.Session) error {
	return m.Called(ctx, session).Error(0)
}

func (m *mockSessionRepo) GetByTokenHash(ctx context.Context, tokenHash string) (*repository.Session, error) {
	args := m.Called(ctx, tokenHash)
	session, _ := args.Get(0).(*repository.Session)
	return session, args.Error(1)
}

func (m *mockSessionRepo) Revoke(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

func (m *mockSessionRepo) RevokeAllForUser(ctx context.Context, userID uuid.UUID) error {
	return m.Called(ctx, userID).Error(0)
}

// noopEmail stands in for the real sender; Register fires it from a
// goroutine, so a plain stub avoids racing a mock recorder.
type noopEmail struct{}

func (noopEmail) SendWelcomeEmail(ctx context.Context, toEmail, fullName string) error { return nil }

func authConfig() *config.Config {
	return &config.Config{
		JWTSecret:        "test-secret",
		JWTAccessExpiry:  15 * time.Minute,
		JWTRefreshExpiry: 7 * 24 * time.Hour,
	}
}

func TestRegisterAndValidateToken(t *testing.T) {
	users := &mockUserRepo{}
	sessions := &mockSessionRepo{}
	svc := service.NewAuthService(users, sessions, noopEmail{}, authConfig())

	users.On("ExistsByEmail", mock.Anything, "intern@example.com").Return(false, nil)
	users.On("Create", mock.Anything, mock.AnythingOfType("*domain.User")).Return(nil)
	sessions.On("Create", mock.Anything, mock.AnythingOfType("*repository.Session")).Return(nil)

	user, tokens, err := svc.Register(context.Background(), domain.CreateUserInput{
		Email:    "intern@example.com",
		Password: "hunter22",
		FullName: "Sam Intern",
	}, nil)

	require.NoError(t, err)
	require.NotNil(t, tokens)
	assert.NotEqual(t, user.PasswordHash, "hunter22")
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("hunter22")))

	claims, err := svc.ValidateAccessToken(tokens.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, user.ID, claims.UserID)
	assert.Equal(t, "intern@example.com", claims.Email)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	users := &mockUserRepo{}
	sessions := &mockSessionRepo{}
	svc := service.NewAuthService(users, sessions, noopEmail{}, authConfig())

	users.On("ExistsByEmail", mock.Anything, "taken@example.com").Return(true, nil)

	_, _, err := svc.Register(context.Background(), domain.CreateUserInput{
		Email:    "taken@example.com",
		Password: "pw",
		FullName: "X",
	}, nil)

	assert.ErrorIs(t, err, service.ErrEmailExists)
	users.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestLoginWrongPassword(t *testing.T) {
	users := &mockUserRepo{}
	sessions := &mockSessionRepo{}
	svc := service.NewAuthService(users, sessions, noopEmail{}, authConfig())

	hash, err := bcrypt.GenerateFromPassword([]byte("right"), bcrypt.MinCost)
	require.NoError(t, err)
	users.On("GetByEmail", mock.Anything, "intern@example.com").
		Return(&domain.User{ID: uuid.New(), Email: "intern@example.com", PasswordHash: string(hash)}, nil)

	_, _, err = svc.Login(context.Background(), domain.LoginInput{
		Email:    "intern@example.com",
		Password: "wrong",
	}, nil)

	assert.ErrorIs(t, err, service.ErrInvalidCredentials)
}

func TestValidateAccessTokenRejectsGarbage(t *testing.T) {
	svc := service.NewAuthService(&mockUserRepo{}, &mockSessionRepo{}, noopEmail{}, authConfig())

	_, err := svc.ValidateAccessToken("not-a-jwt")

	assert.ErrorIs(t, err, service.ErrInvalidToken)
}
